// Package resume holds the structured resume analysis shared by every analysis producer and the match scorer.
package resume

import "context"

// Importance ranks a keyword by the vocabulary it was found in.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Analysis is the structured result of analyzing one resume.
type Analysis struct {
	ATSScore          int          `json:"atsScore"`
	Summary           string       `json:"summary"`
	Skills            Skills       `json:"skills"`
	Experience        []Experience `json:"experience"`
	Education         []Education  `json:"education"`
	Keywords          []Keyword    `json:"keywords"`
	Improvements      []string     `json:"improvements"`
	Strengths         []string     `json:"strengths"`
	YearsOfExperience int          `json:"yearsOfExperience"`
}

// Skills are disjoint lists ordered by descending frequency in the source text.
type Skills struct {
	Technical []string `json:"technical"`
	Tools     []string `json:"tools"`
	Soft      []string `json:"soft"`
}

// All returns technical, tools and soft skills in that order. Duplicates across lists are kept.
func (s Skills) All() []string {
	all := make([]string, 0, len(s.Technical)+len(s.Tools)+len(s.Soft))
	all = append(all, s.Technical...)
	all = append(all, s.Tools...)
	all = append(all, s.Soft...)
	return all
}

type Experience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Duration   string   `json:"duration"`
	Highlights []string `json:"highlights"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Keyword struct {
	Keyword    string     `json:"keyword"`
	Count      int        `json:"count"`
	Importance Importance `json:"importance"`
}

// Producer builds an Analysis from already extracted resume text.
// The heuristic analyzer and the LLM-backed analyzer are interchangeable producers.
type Producer interface {
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

// HighImportanceKeywords returns the keyword texts tagged ImportanceHigh.
func (a *Analysis) HighImportanceKeywords() []string {
	if a == nil {
		return nil
	}

	result := make([]string, 0, len(a.Keywords))
	for _, k := range a.Keywords {
		if k.Importance == ImportanceHigh {
			result = append(result, k.Keyword)
		}
	}
	return result
}

// ClampScore keeps a score within [0, 100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
