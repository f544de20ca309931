package filtering

import (
	"context"
	"strings"

	"github.com/spigell/resume-matcher/internal/jobs"

	"go.uber.org/zap"
)

type companiesFilter struct {
	toggle
	companies []string
}

// NewCompanies creates a filter that drops postings from the configured companies.
// Company names are compared case-insensitively.
func NewCompanies() Filter {
	return &companiesFilter{}
}

func (f *companiesFilter) Name() string { return "companies" }

func (f *companiesFilter) Validate(cfg *Config) error {
	if cfg != nil {
		f.companies = cfg.ExcludeCompanies
	}
	return nil
}

func (f *companiesFilter) Apply(_ context.Context, deps Deps, p *jobs.Postings) (*jobs.Postings, Step, error) {
	initial := p.Len()
	if len(f.companies) == 0 {
		return p, Step{Initial: initial, Left: initial}, nil
	}

	removed := p.Retain(func(posting *jobs.Posting) bool {
		return !equalFoldAny(posting.Company, f.companies)
	})

	if len(removed) > 0 {
		deps.Logger.Info("excluding postings by company",
			zap.Strings("companies", f.companies),
			zap.Strings("excluded_postings", removed),
			zap.Int("postings_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(removed), Left: p.Len()}, nil
}

func (f *companiesFilter) Status() Status {
	return f.status(f.Name(), map[string]string{"companies": strings.Join(f.companies, ",")})
}

func equalFoldAny(value string, targets []string) bool {
	value = strings.TrimSpace(value)
	for _, target := range targets {
		if strings.EqualFold(value, strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
