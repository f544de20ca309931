package matching

import (
	"math"

	"github.com/spigell/resume-matcher/internal/skills"
)

const (
	// Unbounded marks an open upper end of a YearsRange.
	Unbounded = -1
	// NoMinimum marks an open lower end of a YearsRange, so negative or unknown years still match.
	NoMinimum = math.MinInt
)

// YearsRange is an inclusive range of years of experience.
type YearsRange struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

func (r YearsRange) Contains(years int) bool {
	return years >= r.Min && (r.Max == Unbounded || years <= r.Max)
}

// Adjustment shifts the score when the candidate's years fall into Years.
type Adjustment struct {
	Years YearsRange `mapstructure:"years"`
	Delta float64    `mapstructure:"delta"`
}

// SeniorityBand applies to postings whose title contains any of Keywords.
// Only the first matching adjustment of the first matching band is used.
type SeniorityBand struct {
	Name        string       `mapstructure:"name"`
	Keywords    []string     `mapstructure:"keywords"`
	Adjustments []Adjustment `mapstructure:"adjustments"`
}

type Config struct {
	SimilarityThreshold float64         `mapstructure:"similarity-threshold"`
	NoRequirementsScore float64         `mapstructure:"no-requirements-score"`
	Seniority           []SeniorityBand `mapstructure:"seniority"`
	ATSBonusThreshold   int             `mapstructure:"ats-bonus-threshold"`
	ATSBonus            float64         `mapstructure:"ats-bonus"`
	KeywordBonus        float64         `mapstructure:"keyword-bonus"`
	Workers             int             `mapstructure:"workers"`
}

// DefaultConfig returns the calibrated scoring constants.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: skills.DefaultThreshold,
		NoRequirementsScore: 50,
		Seniority: []SeniorityBand{
			{
				Name:     "senior",
				Keywords: []string{"senior", "lead"},
				Adjustments: []Adjustment{
					{Years: YearsRange{Min: 5, Max: Unbounded}, Delta: 10},
					{Years: YearsRange{Min: NoMinimum, Max: 2}, Delta: -15},
				},
			},
			{
				Name:     "junior",
				Keywords: []string{"junior", "entry"},
				Adjustments: []Adjustment{
					{Years: YearsRange{Min: NoMinimum, Max: 2}, Delta: 5},
					{Years: YearsRange{Min: 6, Max: Unbounded}, Delta: -5},
				},
			},
			{
				Name:     "mid",
				Keywords: []string{"mid", "intermediate"},
				Adjustments: []Adjustment{
					{Years: YearsRange{Min: 2, Max: 5}, Delta: 5},
				},
			},
		},
		ATSBonusThreshold: 80,
		ATSBonus:          5,
		KeywordBonus:      10,
		Workers:           1,
	}
}
