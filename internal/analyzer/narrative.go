package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-matcher/internal/resume"
)

const (
	minSummarySectionLength = 50
	minSummarySentence      = 20
	summarySentences        = 2
	summarySkills           = 5

	minActionVerbs       = 3
	minTechnicalSkills   = 5
	minGithubSkills      = 3
	minHighlights        = 3
	minResumeLength      = 1500
	strongToolsCount     = 5
	strongSoftCount      = 3
	strongExperienceSize = 2

	// FallbackSummary is used when neither a summary section nor enough data for a synthesized one exists.
	FallbackSummary = "Resume uploaded for analysis. Key information has been extracted."
)

// Improvement suggestions in evaluation order.
const (
	ImproveSummary     = "Add a professional summary at the top of your resume to quickly capture recruiter attention."
	ImproveQuantify    = "Include quantifiable achievements (e.g., 'Increased sales by 25%' or 'Managed team of 10')."
	ImproveActionVerbs = "Use more action verbs to describe your achievements (e.g., 'Led', 'Developed', 'Implemented')."
	ImproveLinkedIn    = "Add your LinkedIn profile URL to increase credibility."
	ImproveGithub      = "Consider adding your GitHub profile to showcase your code and projects."
	ImproveSkills      = "Expand your skills section with more specific technical skills relevant to your target role."
	ImproveHighlights  = "Add 3-5 bullet points for each work experience highlighting your key achievements."
	ImproveLength      = "Your resume appears short. Consider adding more details about your experience and projects."
)

const (
	StrengthTools          = "Proficient in multiple industry-standard tools and platforms."
	StrengthAdvancedDegree = "Advanced educational background demonstrates commitment to learning."
	StrengthEducation      = "Educational foundation supports professional qualifications."
	StrengthQuantified     = "Resume includes quantifiable achievements which strengthen impact."
)

var (
	sentenceSplit        = regexp.MustCompile(`[.!?]+`)
	improvementQuantity  = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s*(?:users|customers|projects|clients|team members)`)
	strengthQuantity     = regexp.MustCompile(`(?i)\d+%|\$[\d,]+|\d+\s*(?:users|customers|projects)`)
	advancedDegreeTokens = []string{"master", "phd", "ph.d", "doctor"}
)

type narrativeInput struct {
	text       string
	sections   Sections
	technical  []string
	tools      []string
	soft       []string
	experience []resume.Experience
	education  []resume.Education
	years      int
}

func summarize(in narrativeInput) string {
	if section := in.sections[SectionSummary]; utf8.RuneCountInString(section) >= minSummarySectionLength {
		sentences := make([]string, 0, summarySentences)
		for _, s := range sentenceSplit.Split(section, -1) {
			s = strings.Join(strings.Fields(s), " ")
			if utf8.RuneCountInString(s) > minSummarySentence {
				sentences = append(sentences, s)
			}
			if len(sentences) == summarySentences {
				break
			}
		}
		if len(sentences) > 0 {
			return strings.Join(sentences, ". ") + "."
		}
	}

	if in.years > 0 && len(in.technical) > 0 {
		top := in.technical[:min(summarySkills, len(in.technical))]
		return fmt.Sprintf("Professional with approximately %d years of experience. Key skills include %s.",
			in.years, strings.Join(top, ", "))
	}

	return FallbackSummary
}

func (a *Analyzer) improvements(in narrativeInput) []string {
	lower := strings.ToLower(in.text)
	result := make([]string, 0, MaxImprovements)

	add := func(cond bool, s string) {
		if cond && len(result) < MaxImprovements {
			result = append(result, s)
		}
	}

	add(utf8.RuneCountInString(in.sections[SectionSummary]) < minSummarySectionLength, ImproveSummary)
	add(!improvementQuantity.MatchString(in.text), ImproveQuantify)
	add(countPresent(lower, a.vocabulary.ActionVerbs) < minActionVerbs, ImproveActionVerbs)
	add(!strings.Contains(lower, "linkedin"), ImproveLinkedIn)
	add(!strings.Contains(lower, "github") && len(in.technical) >= minGithubSkills, ImproveGithub)
	add(len(in.technical) < minTechnicalSkills, ImproveSkills)
	add(len(in.experience) > 0 && allShortOnHighlights(in.experience), ImproveHighlights)
	add(utf8.RuneCountInString(in.text) < minResumeLength, ImproveLength)

	return result
}

func strengths(in narrativeInput) []string {
	result := make([]string, 0, MaxStrengths)

	add := func(cond bool, s string) {
		if cond && len(result) < MaxStrengths {
			result = append(result, s)
		}
	}

	add(len(in.technical) >= minTechnicalSkills,
		fmt.Sprintf("Strong technical foundation with %d key technical skills identified.", len(in.technical)))
	add(len(in.tools) >= strongToolsCount, StrengthTools)
	if len(in.soft) >= strongSoftCount {
		add(true, fmt.Sprintf("Well-rounded professional with strong soft skills including %s.",
			strings.Join(in.soft[:strongSoftCount], ", ")))
	}
	add(len(in.experience) >= strongExperienceSize,
		fmt.Sprintf("Solid professional experience with %d relevant positions.", len(in.experience)))
	if len(in.education) > 0 {
		if hasAdvancedDegree(in.education) {
			add(true, StrengthAdvancedDegree)
		} else {
			add(true, StrengthEducation)
		}
	}
	add(strengthQuantity.MatchString(in.text), StrengthQuantified)

	return result
}

// countPresent counts the terms occurring in lower as plain substrings.
func countPresent(lower string, terms []string) int {
	n := 0
	for _, term := range terms {
		if term != "" && strings.Contains(lower, term) {
			n++
		}
	}
	return n
}

func allShortOnHighlights(experience []resume.Experience) bool {
	for _, e := range experience {
		if len(e.Highlights) >= minHighlights {
			return false
		}
	}
	return true
}

func hasAdvancedDegree(education []resume.Education) bool {
	for _, e := range education {
		degree := strings.ToLower(e.Degree)
		for _, token := range advancedDegreeTokens {
			if strings.Contains(degree, token) {
				return true
			}
		}
	}
	return false
}
