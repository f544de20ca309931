// Package analyzer extracts a structured resume analysis from plain resume text using vocabulary scans
// and line-based heuristics.
package analyzer

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/resume"

	"go.uber.org/zap"
)

const (
	// ProducerName identifies this producer in logs.
	ProducerName = "heuristic"

	// DefaultMinTextLength is the shortest trimmed text that is still analyzed.
	DefaultMinTextLength = 50

	MaxTechnicalSkills = 15
	MaxTools           = 15
	MaxSoftSkills      = 10
	MaxImprovements    = 6
	MaxStrengths       = 5

	highKeywords   = 8
	mediumKeywords = 6
	lowKeywords    = 4
)

// Analyzer is the heuristic resume.Producer. It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	vocabulary     *Vocabulary
	weights        Weights
	minTextLength  int
	now            func() time.Time
	logger         *zap.Logger
	companyPattern *regexp.Regexp
}

type Option func(*Analyzer)

func WithVocabulary(v *Vocabulary) Option {
	return func(a *Analyzer) {
		if v != nil {
			a.vocabulary = v
		}
	}
}

func WithWeights(w Weights) Option {
	return func(a *Analyzer) {
		a.weights = w
	}
}

// WithMinTextLength ignores non-positive values.
func WithMinTextLength(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.minTextLength = n
		}
	}
}

// WithClock sets the source of the current year used by the years-of-experience estimate.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		vocabulary:    DefaultVocabulary(),
		weights:       DefaultWeights,
		minTextLength: DefaultMinTextLength,
		now:           time.Now,
		logger:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.companyPattern = companyPattern(a.vocabulary.CompanySuffixes)
	a.logger = logger.WithFields(a.logger, logger.ProducerFields(ProducerName)...)

	return a
}

// Analyze returns an *InsufficientTextError when the trimmed text is shorter than the configured minimum.
// Any other text yields an analysis, possibly with empty lists.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*resume.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n < a.minTextLength {
		a.logger.Debug("rejecting resume text", zap.Int("length", n), zap.Int("minimum", a.minTextLength))
		return nil, &InsufficientTextError{Length: n, Minimum: a.minTextLength}
	}

	technical := FindKeywords(text, a.vocabulary.TechnicalSkills)
	tools := FindKeywords(text, a.vocabulary.Tools)
	soft := FindKeywords(text, a.vocabulary.SoftSkills)
	titles := FindKeywords(text, a.vocabulary.JobTitles)

	sections := SplitSections(text)
	lines := nonBlankLines(text)
	experience := a.extractExperience(lines)
	education := a.extractEducation(lines)
	years := estimateYears(text, a.now().Year(), countPresent(strings.ToLower(text), a.vocabulary.JobTitles))

	narrative := narrativeInput{
		text:       text,
		sections:   sections,
		technical:  hitTerms(technical),
		tools:      hitTerms(tools),
		soft:       hitTerms(soft),
		experience: experience,
		education:  education,
		years:      years,
	}

	analysis := &resume.Analysis{
		ATSScore: a.weights.score(atsInput{
			text:       text,
			technical:  len(technical),
			tools:      len(tools),
			experience: len(experience),
			education:  len(education),
			sections:   sections,
		}),
		Summary: summarize(narrative),
		Skills: resume.Skills{
			Technical: truncate(narrative.technical, MaxTechnicalSkills),
			Tools:     truncate(narrative.tools, MaxTools),
			Soft:      truncate(narrative.soft, MaxSoftSkills),
		},
		Experience:        experience,
		Education:         education,
		Keywords:          keywords(technical, tools, soft),
		Improvements:      a.improvements(narrative),
		Strengths:         strengths(narrative),
		YearsOfExperience: years,
	}

	a.logger.Debug("resume analyzed",
		zap.Int("ats_score", analysis.ATSScore),
		zap.Int("technical", len(technical)),
		zap.Int("tools", len(tools)),
		zap.Int("soft", len(soft)),
		zap.Int("titles", len(titles)),
		zap.Int("experience", len(experience)),
		zap.Int("education", len(education)),
		zap.Int("years", years),
	)

	return analysis, nil
}

// keywords samples the top technical, tool and soft-skill hits with their importance.
func keywords(technical, tools, soft []Hit) []resume.Keyword {
	result := make([]resume.Keyword, 0, highKeywords+mediumKeywords+lowKeywords)

	sample := func(hits []Hit, n int, importance resume.Importance) {
		for _, h := range hits[:min(n, len(hits))] {
			result = append(result, resume.Keyword{Keyword: h.Term, Count: h.Count, Importance: importance})
		}
	}

	sample(technical, highKeywords, resume.ImportanceHigh)
	sample(tools, mediumKeywords, resume.ImportanceMedium)
	sample(soft, lowKeywords, resume.ImportanceLow)

	return result
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
