package filtering

import (
	"context"
	"strings"

	"github.com/spigell/resume-matcher/internal/jobs"

	"go.uber.org/zap"
)

type jobTypesFilter struct {
	toggle
	types []string
}

// NewJobTypes creates a filter that keeps only postings of the configured employment types
// (full-time, contract and so on). An empty list keeps everything.
func NewJobTypes() Filter {
	return &jobTypesFilter{}
}

func (f *jobTypesFilter) Name() string { return "job_types" }

func (f *jobTypesFilter) Validate(cfg *Config) error {
	if cfg != nil {
		f.types = cfg.JobTypes
	}
	return nil
}

func (f *jobTypesFilter) Apply(_ context.Context, deps Deps, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()
	if len(f.types) == 0 {
		return p, Step{Initial: initial, Left: initial}, nil
	}

	removed := p.Retain(func(posting *jobs.Posting) bool {
		return equalFoldAny(posting.Type, f.types)
	})

	if len(removed) > 0 {
		deps.Logger.Debug("excluding postings by type",
			zap.Strings("types", f.types),
			zap.Strings("excluded_postings", removed),
		)
	}

	return p, Step{Initial: initial, Dropped: len(removed), Left: p.Len()}, nil
}

func (f *jobTypesFilter) Status() Status {
	return f.status(f.Name(), map[string]string{"types": strings.Join(f.types, ",")})
}
