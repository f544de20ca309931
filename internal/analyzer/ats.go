package analyzer

import (
	"regexp"
	"strings"

	"github.com/spigell/resume-matcher/internal/resume"
)

// Weights drive the ATS compatibility score. Every field is a fixed point value or cap.
type Weights struct {
	TechnicalSkill  int `mapstructure:"technical-skill"`
	TechnicalCap    int `mapstructure:"technical-cap"`
	Tool            int `mapstructure:"tool"`
	ToolsCap        int `mapstructure:"tools-cap"`
	ExperienceEntry int `mapstructure:"experience-entry"`
	ExperienceCap   int `mapstructure:"experience-cap"`
	EducationEntry  int `mapstructure:"education-entry"`
	EducationCap    int `mapstructure:"education-cap"`

	Email   int `mapstructure:"email"`
	Phone   int `mapstructure:"phone"`
	Profile int `mapstructure:"profile"`

	ExperienceSection int `mapstructure:"experience-section"`
	EducationSection  int `mapstructure:"education-section"`
	SkillsSection     int `mapstructure:"skills-section"`
	SummarySection    int `mapstructure:"summary-section"`
}

// DefaultWeights sum to at most 100 for a resume that hits every signal.
var DefaultWeights = Weights{
	TechnicalSkill:  3,
	TechnicalCap:    30,
	Tool:            2,
	ToolsCap:        15,
	ExperienceEntry: 6,
	ExperienceCap:   25,
	EducationEntry:  8,
	EducationCap:    15,

	Email:   2,
	Phone:   2,
	Profile: 1,

	ExperienceSection: 3,
	EducationSection:  3,
	SkillsSection:     2,
	SummarySection:    2,
}

var phonePattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)

type atsInput struct {
	text       string
	technical  int
	tools      int
	experience int
	education  int
	sections   Sections
}

func (w Weights) score(in atsInput) int {
	lower := strings.ToLower(in.text)

	score := min(in.technical*w.TechnicalSkill, w.TechnicalCap)
	score += min(in.tools*w.Tool, w.ToolsCap)
	score += min(in.experience*w.ExperienceEntry, w.ExperienceCap)
	score += min(in.education*w.EducationEntry, w.EducationCap)

	if strings.Contains(lower, "@") || strings.Contains(lower, "email") {
		score += w.Email
	}
	if phonePattern.MatchString(lower) {
		score += w.Phone
	}
	if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
		score += w.Profile
	}

	if in.sections.Has(SectionExperience) {
		score += w.ExperienceSection
	}
	if in.sections.Has(SectionEducation) {
		score += w.EducationSection
	}
	if in.sections.Has(SectionSkills) {
		score += w.SkillsSection
	}
	if in.sections.Has(SectionSummary) {
		score += w.SummarySection
	}

	return resume.ClampScore(score)
}
