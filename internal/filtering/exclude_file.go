package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/resume-matcher/internal/jobs"
)

type excludeFileFilter struct {
	toggle
	path string
}

// NewExcludeFile creates a filter that removes postings listed in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	if cfg != nil {
		f.path = cfg.ExcludeFile
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, _ Deps, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()
	if f.path == "" {
		return p, Step{Initial: initial, Left: initial}, nil
	}

	excluded, err := jobs.LoadExcluded(f.path)
	if err != nil {
		return p, Step{}, fmt.Errorf("getting excluded postings from file: %w", err)
	}

	removed := p.Exclude(jobs.PostingIDField, excluded.IDs())

	return p, Step{Initial: initial, Dropped: len(removed), Left: p.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	return f.status(f.Name(), map[string]string{"path": f.path})
}
