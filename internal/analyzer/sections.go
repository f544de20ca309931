package analyzer

import (
	"regexp"
	"strings"
)

// Section names recognized in resume text. Content before the first recognized header goes to SectionHeader.
const (
	SectionHeader         = "header"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionSummary        = "summary"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{SectionExperience, regexp.MustCompile(`(?i)(?:experience|employment|work history|professional experience)`)},
	{SectionEducation, regexp.MustCompile(`(?i)(?:education|academic|qualifications|degrees)`)},
	{SectionSkills, regexp.MustCompile(`(?i)(?:skills|technical skills|technologies|competencies)`)},
	{SectionSummary, regexp.MustCompile(`(?i)(?:summary|profile|objective|about me|professional summary)`)},
	{SectionProjects, regexp.MustCompile(`(?i)(?:projects|portfolio|personal projects)`)},
	{SectionCertifications, regexp.MustCompile(`(?i)(?:certifications|certificates|licenses)`)},
}

// Sections maps a section name to its trimmed, newline-joined lines.
type Sections map[string]string

// Has reports whether the section was found and has content.
func (s Sections) Has(name string) bool {
	return s[name] != ""
}

// SplitSections walks text line by line, switching the current section on header lines.
// Blank lines are skipped and header lines themselves are not kept.
func SplitSections(text string) Sections {
	lines := make(map[string][]string)
	current := SectionHeader

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if name, ok := sectionHeader(line); ok {
			current = name
			continue
		}

		lines[current] = append(lines[current], line)
	}

	sections := make(Sections, len(lines))
	for name, content := range lines {
		sections[name] = strings.Join(content, "\n")
	}
	return sections
}

// sectionHeader reports the first section whose pattern occurs anywhere in line.
// Prose mentioning "experience" or "skills" therefore starts a new section too.
func sectionHeader(line string) (string, bool) {
	for _, s := range sectionPatterns {
		if s.pattern.MatchString(line) {
			return s.name, true
		}
	}
	return "", false
}
