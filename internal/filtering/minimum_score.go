package filtering

import (
	"context"
	"errors"
	"strconv"

	"github.com/spigell/resume-matcher/internal/jobs"
	"github.com/spigell/resume-matcher/internal/matching"

	"go.uber.org/zap"
)

var errMinimumScoreRange = errors.New("minimum-score must be between 0 and 100")

type minimumScoreFilter struct {
	toggle
	minimum int
}

// NewMinimumScore creates a filter that drops postings scoring below filters.minimum-score
// against the resume analysis passed in Deps.
func NewMinimumScore() Filter {
	return &minimumScoreFilter{}
}

func (f *minimumScoreFilter) Name() string { return "minimum_score" }

func (f *minimumScoreFilter) Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	if cfg.MinimumScore < 0 || cfg.MinimumScore > 100 {
		return errMinimumScoreRange
	}
	f.minimum = cfg.MinimumScore
	return nil
}

func (f *minimumScoreFilter) Apply(_ context.Context, deps Deps, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()
	if f.minimum == 0 || deps.Analysis == nil {
		return p, Step{Initial: initial, Left: initial}, nil
	}

	scorer := deps.Scorer
	if scorer == nil {
		scorer = matching.NewScorer(matching.DefaultConfig())
	}

	removed := p.Retain(func(posting *jobs.Posting) bool {
		score := scorer.Score(deps.Analysis, posting).MatchScore
		if score < f.minimum {
			deps.Logger.Debug("posting below minimum score",
				zap.String("id", posting.ID),
				zap.Int("score", score),
			)
			return false
		}
		return true
	})

	return p, Step{Initial: initial, Dropped: len(removed), Left: p.Len()}, nil
}

func (f *minimumScoreFilter) Status() Status {
	return f.status(f.Name(), map[string]string{"minimum": strconv.Itoa(f.minimum)})
}
