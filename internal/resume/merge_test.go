package resume

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heuristicFixture() *Analysis {
	return &Analysis{
		ATSScore: 70,
		Summary:  "Professional with approximately 5 years of experience. Key skills include go.",
		Skills: Skills{
			Technical: []string{"go", "python"},
			Tools:     []string{"docker"},
			Soft:      []string{"leadership"},
		},
		Experience: []Experience{{Title: "Software Engineer", Company: "Acme Inc", Duration: "2019 - 2024"}},
		Education:  []Education{{Degree: "Bachelor", Institution: "State University", Year: "2018"}},
		Keywords: []Keyword{
			{Keyword: "go", Count: 4, Importance: ImportanceHigh},
			{Keyword: "docker", Count: 2, Importance: ImportanceMedium},
		},
		Improvements:      []string{"Add your LinkedIn profile URL to increase credibility."},
		Strengths:         []string{"Solid professional experience."},
		YearsOfExperience: 5,
	}
}

func TestMerge_NilModelReturnsCopy(t *testing.T) {
	h := heuristicFixture()

	merged := Merge(h, nil)
	require.NotNil(t, merged)
	assert.Equal(t, *h, *merged)

	merged.ATSScore = 1
	assert.Equal(t, 70, h.ATSScore)
}

func TestMerge_BothNil(t *testing.T) {
	assert.Nil(t, Merge(nil, nil))
}

func TestMerge_PrefersModelWhereUsable(t *testing.T) {
	h := heuristicFixture()
	m := &Analysis{
		ATSScore: 85,
		Summary:  "Backend engineer focused on distributed systems and developer tooling.",
		Skills: Skills{
			Technical: []string{"Go", "go", "Kafka"},
			Tools:     []string{"docker", "Terraform"},
			Soft:      []string{"Mentoring"},
		},
		Experience: []Experience{
			{Title: "Senior Engineer", Company: "Globex"},
			{Title: "Engineer", Company: "Acme"},
		},
		Keywords: []Keyword{
			{Keyword: "go", Count: 9, Importance: ImportanceHigh},
			{Keyword: "kafka", Count: 1, Importance: ImportanceHigh},
		},
		Improvements:      []string{"Quantify impact."},
		Strengths:         []string{"Solid professional experience."},
		YearsOfExperience: 8,
	}

	merged := Merge(h, m)

	assert.Equal(t, 78, merged.ATSScore)
	assert.Equal(t, m.Summary, merged.Summary)
	assert.Equal(t, []string{"Go", "go", "Kafka", "python"}, merged.Skills.Technical)
	assert.Equal(t, []string{"docker", "Terraform"}, merged.Skills.Tools)
	assert.Equal(t, []string{"Mentoring", "leadership"}, merged.Skills.Soft)
	assert.Equal(t, m.Experience, merged.Experience)
	assert.Equal(t, h.Education, merged.Education)
	assert.Equal(t, []Keyword{
		{Keyword: "go", Count: 9, Importance: ImportanceHigh},
		{Keyword: "docker", Count: 2, Importance: ImportanceMedium},
		{Keyword: "kafka", Count: 1, Importance: ImportanceHigh},
	}, merged.Keywords)
	assert.Equal(t, []string{"Quantify impact.", "Add your LinkedIn profile URL to increase credibility."}, merged.Improvements)
	assert.Equal(t, []string{"Solid professional experience."}, merged.Strengths)
	assert.Equal(t, 7, merged.YearsOfExperience)
}

func TestMerge_FallsBackToHeuristic(t *testing.T) {
	h := heuristicFixture()
	m := &Analysis{Summary: "too short"}

	merged := Merge(h, m)

	assert.Equal(t, h.ATSScore, merged.ATSScore)
	assert.Equal(t, h.Summary, merged.Summary)
	assert.Equal(t, h.Experience, merged.Experience)
	assert.Equal(t, h.Education, merged.Education)
	assert.Equal(t, h.YearsOfExperience, merged.YearsOfExperience)
}

func TestMerge_SummaryLengthCountsCharacters(t *testing.T) {
	h := heuristicFixture()

	// 12 two-byte characters: 24 bytes but below the threshold.
	short := Merge(h, &Analysis{Summary: "éééééééééééé"})
	assert.Equal(t, h.Summary, short.Summary)

	long := Merge(h, &Analysis{Summary: "Инженер распределённых систем"})
	assert.Equal(t, "Инженер распределённых систем", long.Summary)
}

func TestMerge_EmptyHeuristicExperienceUsesModel(t *testing.T) {
	h := heuristicFixture()
	h.Experience = nil
	m := &Analysis{}

	merged := Merge(h, m)
	assert.Empty(t, merged.Experience)
}

func TestMerge_Caps(t *testing.T) {
	many := func(prefix string, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s-%d", prefix, i)
		}
		return out
	}

	h := &Analysis{
		Skills:       Skills{Technical: many("t", 15), Tools: many("o", 15), Soft: many("s", 10)},
		Improvements: many("i", 6),
		Strengths:    many("g", 5),
	}
	m := &Analysis{
		Skills:       Skills{Technical: many("mt", 15), Tools: many("mo", 15), Soft: many("ms", 10)},
		Improvements: many("mi", 6),
		Strengths:    many("mg", 5),
	}
	for i := 0; i < 30; i++ {
		m.Keywords = append(m.Keywords, Keyword{Keyword: fmt.Sprintf("k%d", i), Count: 1, Importance: ImportanceLow})
	}

	merged := Merge(h, m)

	assert.Len(t, merged.Skills.Technical, MergedTechnicalCap)
	assert.Len(t, merged.Skills.Tools, MergedToolsCap)
	assert.Len(t, merged.Skills.Soft, MergedSoftCap)
	assert.Len(t, merged.Keywords, MergedKeywordsCap)
	assert.Len(t, merged.Improvements, MergedImprovementCap)
	assert.Len(t, merged.Strengths, MergedStrengthsCap)
	assert.Equal(t, "mt-0", merged.Skills.Technical[0])
}

func TestSkillsAll(t *testing.T) {
	s := Skills{Technical: []string{"go"}, Tools: []string{"git"}, Soft: []string{"go"}}
	assert.Equal(t, []string{"go", "git", "go"}, s.All())
}

func TestHighImportanceKeywords(t *testing.T) {
	a := heuristicFixture()
	assert.Equal(t, []string{"go"}, a.HighImportanceKeywords())

	var empty *Analysis
	assert.Nil(t, empty.HighImportanceKeywords())
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-3))
	assert.Equal(t, 55, ClampScore(55))
	assert.Equal(t, 100, ClampScore(140))
}
