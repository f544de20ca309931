package skills

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the edit-distance similarity above which two spellings count as the same skill.
// It is uncalibrated and kept for score parity; override it with WithThreshold.
const DefaultThreshold = 0.85

// Matcher decides whether two skill strings denote the same skill.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	threshold float64
	synonyms  []SynonymGroup
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold sets the similarity threshold. Values outside (0, 1] are ignored.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		if threshold > 0 && threshold <= 1 {
			m.threshold = threshold
		}
	}
}

// WithSynonyms replaces the synonym table, mostly for tests with small fixtures.
func WithSynonyms(groups []SynonymGroup) Option {
	return func(m *Matcher) {
		m.synonyms = groups
	}
}

// NewMatcher returns a Matcher using DefaultThreshold and DefaultSynonyms unless overridden.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		threshold: DefaultThreshold,
		synonyms:  DefaultSynonyms,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Threshold reports the configured similarity threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Variations expands skill with the matcher's synonym table.
func (m *Matcher) Variations(skill string) []string {
	return variations(skill, m.synonyms)
}

// Matches reports whether any variation of a equals, contains, is contained in,
// or is similar enough to any variation of b.
func (m *Matcher) Matches(a, b string) bool {
	left := m.Variations(a)
	right := m.Variations(b)

	for _, l := range left {
		for _, r := range right {
			if l == r || strings.Contains(l, r) || strings.Contains(r, l) {
				return true
			}
			if Similarity(l, r) > m.threshold {
				return true
			}
		}
	}

	return false
}

// Similarity returns (maxLen - editDistance) / maxLen over runes, and 1 for two empty strings.
func Similarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-distance) / float64(maxLen)
}
