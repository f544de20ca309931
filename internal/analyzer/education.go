package analyzer

import (
	"regexp"
	"strings"

	"github.com/spigell/resume-matcher/internal/resume"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// PlaceholderInstitution is used when no institution could be recognized near a degree.
	PlaceholderInstitution = "Educational Institution"
	// PlaceholderYear is used when the degree line carries no year.
	PlaceholderYear = "N/A"
)

var (
	graduationYearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	institutionPattern    = regexp.MustCompile(`(?:[A-Z][\w&'.-]*\s+)*(?i:university|college|institute|school|academy)(?:\s+of)?[^,\n]*`)
)

func (a *Analyzer) extractEducation(lines []string) []resume.Education {
	title := cases.Title(language.English)
	education := make([]resume.Education, 0)

	for i, line := range lines {
		term := firstTerm(strings.ToLower(line), a.vocabulary.Degrees)
		if term == "" || hasDegree(education, term) {
			continue
		}

		year := PlaceholderYear
		if years := graduationYearPattern.FindAllString(line, -1); len(years) > 0 {
			year = years[len(years)-1]
		}

		institution := findInstitution(line)
		if institution == "" && i+1 < len(lines) {
			institution = findInstitution(lines[i+1])
		}
		if institution == "" {
			institution = PlaceholderInstitution
		}

		education = append(education, resume.Education{
			Degree:      title.String(term),
			Institution: institution,
			Year:        year,
		})
	}

	return education
}

// hasDegree treats a degree as known when an earlier entry already contains its term.
func hasDegree(education []resume.Education, term string) bool {
	for _, e := range education {
		if strings.Contains(strings.ToLower(e.Degree), term) {
			return true
		}
	}
	return false
}

func findInstitution(line string) string {
	return strings.TrimSpace(institutionPattern.FindString(line))
}
