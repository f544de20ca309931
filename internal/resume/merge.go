package resume

import "unicode/utf8"

// Caps applied when reconciling two analyses.
const (
	MergedTechnicalCap   = 20
	MergedToolsCap       = 15
	MergedSoftCap        = 10
	MergedKeywordsCap    = 20
	MergedImprovementCap = 8
	MergedStrengthsCap   = 6

	minMergedSummaryLength = 20
)

// Merge reconciles a heuristic analysis with one produced by an external model.
// The model's values are preferred where they look usable; the heuristic result fills the gaps.
// A nil model analysis yields a copy of the heuristic one. Neither input is modified.
func Merge(heuristic, model *Analysis) *Analysis {
	if heuristic == nil && model == nil {
		return nil
	}
	if heuristic == nil {
		heuristic = &Analysis{}
	}
	if model == nil {
		merged := *heuristic
		return &merged
	}

	merged := &Analysis{
		ATSScore:          heuristic.ATSScore,
		Summary:           heuristic.Summary,
		YearsOfExperience: heuristic.YearsOfExperience,
	}

	if model.ATSScore > 0 {
		merged.ATSScore = ClampScore(roundedMean(model.ATSScore, heuristic.ATSScore))
	}

	if utf8.RuneCountInString(model.Summary) > minMergedSummaryLength {
		merged.Summary = model.Summary
	}

	merged.Skills = Skills{
		Technical: union(MergedTechnicalCap, model.Skills.Technical, heuristic.Skills.Technical),
		Tools:     union(MergedToolsCap, model.Skills.Tools, heuristic.Skills.Tools),
		Soft:      union(MergedSoftCap, model.Skills.Soft, heuristic.Skills.Soft),
	}

	switch {
	case len(model.Experience) > len(heuristic.Experience):
		merged.Experience = model.Experience
	case len(heuristic.Experience) > 0:
		merged.Experience = heuristic.Experience
	default:
		merged.Experience = model.Experience
	}

	merged.Education = heuristic.Education
	if len(model.Education) > 0 {
		merged.Education = model.Education
	}

	merged.Keywords = mergeKeywords(heuristic.Keywords, model.Keywords)
	merged.Improvements = union(MergedImprovementCap, model.Improvements, heuristic.Improvements)
	merged.Strengths = union(MergedStrengthsCap, model.Strengths, heuristic.Strengths)

	if model.YearsOfExperience > 0 {
		merged.YearsOfExperience = roundedMean(model.YearsOfExperience, heuristic.YearsOfExperience)
	}

	return merged
}

// mergeKeywords keys entries by keyword text. Later entries replace earlier ones in place.
func mergeKeywords(first, second []Keyword) []Keyword {
	index := make(map[string]int)
	result := make([]Keyword, 0, len(first)+len(second))

	for _, list := range [][]Keyword{first, second} {
		for _, k := range list {
			if i, ok := index[k.Keyword]; ok {
				result[i] = k
				continue
			}
			index[k.Keyword] = len(result)
			result = append(result, k)
		}
	}

	if len(result) > MergedKeywordsCap {
		result = result[:MergedKeywordsCap]
	}
	return result
}

func union(limit int, lists ...[]string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)

	for _, list := range lists {
		for _, item := range list {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			result = append(result, item)
			if len(result) == limit {
				return result
			}
		}
	}

	return result
}

// roundedMean rounds half away from zero, matching the rounding used for scores elsewhere.
func roundedMean(a, b int) int {
	sum := a + b
	if sum >= 0 {
		return (sum + 1) / 2
	}
	return (sum - 1) / 2
}
