package analyzer

import (
	"regexp"
	"strings"

	"github.com/spigell/resume-matcher/internal/resume"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// PlaceholderCompany is used when no company could be recognized near a title.
	PlaceholderCompany = "Company"
	// PlaceholderDuration is used when no date range could be recognized near a title.
	PlaceholderDuration = "N/A"

	maxHighlights      = 5
	durationLookahead  = 2
	highlightLookahead = 9
)

var (
	dateRangePattern = regexp.MustCompile(`(?i)(\d{4}|\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s,]*\d{4})\s*[-–—]\s*(\d{4}|present|current)`)
	atCompanyPattern = regexp.MustCompile(`(?i)(?:\bat|@)\s+([^,|(\n]+)`)
	bulletPattern    = regexp.MustCompile(`^(?:[•*-]|\d+\.)\s*`)
)

// companyPattern matches a run of capitalized words followed by one of the suffixes, e.g. "Acme Widgets, Inc.".
func companyPattern(suffixes []string) *regexp.Regexp {
	if len(suffixes) == 0 {
		return nil
	}

	quoted := make([]string, len(suffixes))
	for i, s := range suffixes {
		quoted[i] = regexp.QuoteMeta(s)
	}

	return regexp.MustCompile(`(?:[A-Z][\w&'-]*\s+)*[A-Z][\w&'-]*,?\s+(?i:` + strings.Join(quoted, "|") + `)\b\.?`)
}

func (a *Analyzer) extractExperience(lines []string) []resume.Experience {
	title := cases.Title(language.English)
	seen := make(map[string]struct{})
	experience := make([]resume.Experience, 0)

	for i, line := range lines {
		term := firstTerm(strings.ToLower(line), a.vocabulary.JobTitles)
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}

		duration := findDuration(lines, i)
		company := a.findCompany(line, duration)

		if duration == "" {
			duration = PlaceholderDuration
		}
		if company == "" {
			company = PlaceholderCompany
		}

		experience = append(experience, resume.Experience{
			Title:      title.String(term),
			Company:    company,
			Duration:   duration,
			Highlights: a.findHighlights(lines, i),
		})
	}

	return experience
}

func findDuration(lines []string, i int) string {
	last := min(i+durationLookahead, len(lines)-1)
	for j := i; j <= last; j++ {
		if m := dateRangePattern.FindString(lines[j]); m != "" {
			return m
		}
	}
	return ""
}

func (a *Analyzer) findCompany(line, duration string) string {
	if a.companyPattern != nil {
		if m := a.companyPattern.FindString(line); m != "" {
			return strings.TrimSpace(m)
		}
	}

	m := atCompanyPattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}

	company := m[1]
	if duration != "" {
		if idx := strings.Index(company, duration); idx >= 0 {
			company = company[:idx]
		}
	}
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(company), "-–—"))
}

// findHighlights collects bullet lines after a title line until the next title line.
// Non-bullet lines in between are skipped.
func (a *Analyzer) findHighlights(lines []string, i int) []string {
	highlights := make([]string, 0)
	last := min(i+highlightLookahead, len(lines)-1)

	for j := i + 1; j <= last; j++ {
		line := lines[j]
		if loc := bulletPattern.FindStringIndex(line); loc != nil {
			highlights = append(highlights, line[loc[1]:])
			continue
		}
		if firstTerm(strings.ToLower(line), a.vocabulary.JobTitles) != "" {
			break
		}
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

// firstTerm returns the first term, in vocabulary order, that occurs in lower as a plain substring,
// so "internship" yields "intern".
func firstTerm(lower string, terms []string) string {
	for _, term := range terms {
		if term != "" && strings.Contains(lower, term) {
			return term
		}
	}
	return ""
}

// nonBlankLines returns the trimmed non-empty lines of text.
func nonBlankLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
