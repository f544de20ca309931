// Package matching scores resume analyses against job postings and ranks the results.
package matching

import (
	"math"
	"strings"

	"github.com/spigell/resume-matcher/internal/jobs"
	"github.com/spigell/resume-matcher/internal/resume"
	"github.com/spigell/resume-matcher/internal/skills"
)

// MatchType is the tier label derived from a match score.
type MatchType string

const (
	MatchHigh   MatchType = "High"
	MatchMedium MatchType = "Medium"
	MatchLow    MatchType = "Low"

	HighMatchThreshold   = 80
	MediumMatchThreshold = 60
)

// TypeFor is the only place score tiers are decided.
func TypeFor(score int) MatchType {
	switch {
	case score >= HighMatchThreshold:
		return MatchHigh
	case score >= MediumMatchThreshold:
		return MatchMedium
	default:
		return MatchLow
	}
}

// Result is the outcome of scoring one analysis against one posting.
// MatchingSkills and MissingSkills partition the posting requirements, in requirement order.
type Result struct {
	MatchScore     int
	MatchingSkills []string
	MissingSkills  []string
}

// Scorer is stateless apart from its configuration and safe for concurrent use.
type Scorer struct {
	config  Config
	matcher *skills.Matcher
}

func NewScorer(config Config) *Scorer {
	return &Scorer{
		config:  config,
		matcher: skills.NewMatcher(skills.WithThreshold(config.SimilarityThreshold)),
	}
}

// Score never fails. A nil analysis scores as one without skills or keywords.
func (s *Scorer) Score(analysis *resume.Analysis, posting *jobs.Posting) Result {
	if analysis == nil {
		analysis = &resume.Analysis{}
	}
	if posting == nil {
		posting = &jobs.Posting{}
	}

	result := Result{
		MatchingSkills: make([]string, 0, len(posting.Requirements)),
		MissingSkills:  make([]string, 0),
	}

	candidateSkills := analysis.Skills.All()
	for _, requirement := range posting.Requirements {
		if s.anyMatches(requirement, candidateSkills) {
			result.MatchingSkills = append(result.MatchingSkills, requirement)
		} else {
			result.MissingSkills = append(result.MissingSkills, requirement)
		}
	}

	score := s.config.NoRequirementsScore
	if len(posting.Requirements) > 0 {
		score = 100 * float64(len(result.MatchingSkills)) / float64(len(posting.Requirements))
	}

	score = clamp(score + s.seniorityDelta(posting.Title, analysis.YearsOfExperience))

	if analysis.ATSScore >= s.config.ATSBonusThreshold {
		score = clamp(score + s.config.ATSBonus)
	}

	score = clamp(score + s.keywordBonus(analysis.HighImportanceKeywords(), posting.Description))

	result.MatchScore = int(clamp(math.Round(score)))
	return result
}

func (s *Scorer) anyMatches(requirement string, candidateSkills []string) bool {
	for _, skill := range candidateSkills {
		if s.matcher.Matches(requirement, skill) {
			return true
		}
	}
	return false
}

func (s *Scorer) seniorityDelta(title string, years int) float64 {
	title = strings.ToLower(title)

	for _, band := range s.config.Seniority {
		if !containsAny(title, band.Keywords) {
			continue
		}
		for _, adj := range band.Adjustments {
			if adj.Years.Contains(years) {
				return adj.Delta
			}
		}
		return 0
	}
	return 0
}

func (s *Scorer) keywordBonus(high []string, description string) float64 {
	if len(high) == 0 {
		return 0
	}

	description = strings.ToLower(description)
	matched := 0
	for _, keyword := range high {
		if strings.Contains(description, strings.ToLower(keyword)) {
			matched++
		}
	}

	return float64(matched) / float64(len(high)) * s.config.KeywordBonus
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if sub != "" && strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
