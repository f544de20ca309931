package filtering

import (
	"context"

	"github.com/spigell/resume-matcher/internal/jobs"

	"go.uber.org/zap"
)

type activeOnlyFilter struct {
	toggle
	enabled bool
}

// NewActiveOnly creates a filter that drops closed and draft postings when filters.active-only is set.
func NewActiveOnly() Filter {
	return &activeOnlyFilter{}
}

func (f *activeOnlyFilter) Name() string { return "active_only" }

func (f *activeOnlyFilter) Validate(cfg *Config) error {
	f.enabled = cfg != nil && cfg.ActiveOnly
	return nil
}

func (f *activeOnlyFilter) Apply(_ context.Context, deps Deps, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()
	if !f.enabled {
		return p, Step{Initial: initial, Left: initial}, nil
	}

	removed := p.Retain((*jobs.Posting).IsActive)
	if len(removed) > 0 {
		deps.Logger.Info("excluding postings that are not active",
			zap.Strings("excluded_postings", removed),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(removed), Left: p.Len()}, nil
}

func (f *activeOnlyFilter) Status() Status {
	return f.status(f.Name(), map[string]string{"active_only": boolString(f.enabled)})
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
