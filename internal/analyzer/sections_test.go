package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSections(t *testing.T) {
	text := `Jane Doe
jane@example.com

Summary
Backend engineer with eight years building distributed systems.
Led a cross-team experience redesign for the checkout flow.
Experience:
Software Engineer at Acme

EDUCATION
BS Computer Science
Technical Skills
Go, Kafka`

	sections := SplitSections(text)

	assert.Equal(t, Sections{
		SectionHeader:     "Jane Doe\njane@example.com",
		SectionSummary:    "Backend engineer with eight years building distributed systems.",
		SectionExperience: "Software Engineer at Acme",
		SectionEducation:  "BS Computer Science",
		SectionSkills:     "Go, Kafka",
	}, sections)

	assert.True(t, sections.Has(SectionSkills))
	assert.False(t, sections.Has(SectionProjects))
}

func TestSplitSections_ProseLineSwitchesSection(t *testing.T) {
	text := "Summary\nEngineer with ten years of professional experience in payments and distributed systems work.\nShipped a ledger"

	sections := SplitSections(text)

	assert.False(t, sections.Has(SectionSummary))
	assert.Equal(t, "Shipped a ledger", sections[SectionExperience])
}

func TestSplitSections_EmptySectionIsNotPresent(t *testing.T) {
	sections := SplitSections("Projects\nCertifications\nAWS Solutions Architect")

	assert.False(t, sections.Has(SectionProjects))
	assert.Equal(t, "AWS Solutions Architect", sections[SectionCertifications])
}

func TestSplitSections_NoHeaders(t *testing.T) {
	sections := SplitSections("just a line\n\n  another line  ")
	assert.Equal(t, Sections{SectionHeader: "just a line\nanother line"}, sections)
}
