package analyzer

import (
	"regexp"
	"strconv"
)

const (
	earliestCareerYear = 1990
	yearsPerTitle      = 2
	maxEstimatedYears  = 15
)

var anyYearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// estimateYears spans the distinct plausible years in text. With fewer than two of them it falls back
// to two years per distinct job title found, capped at maxEstimatedYears.
func estimateYears(text string, currentYear, titlesFound int) int {
	seen := make(map[int]struct{})
	lowest, highest := 0, 0

	for _, m := range anyYearPattern.FindAllString(text, -1) {
		year, err := strconv.Atoi(m)
		if err != nil || year < earliestCareerYear || year > currentYear {
			continue
		}
		if len(seen) == 0 || year < lowest {
			lowest = year
		}
		if len(seen) == 0 || year > highest {
			highest = year
		}
		seen[year] = struct{}{}
	}

	if len(seen) >= 2 {
		return min(highest-lowest, currentYear-lowest)
	}

	return min(yearsPerTitle*titlesFound, maxEstimatedYears)
}
