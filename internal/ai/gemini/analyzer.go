package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/resume"
	"github.com/spigell/resume-matcher/internal/utils"

	"go.uber.org/zap"
)

// NoSummary replaces an empty model summary.
const NoSummary = "No summary available"

const defaultMaxLogLength = 200

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Analyzer is a resume.Producer backed by a Gemini generator.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAnalyzer(generator contentGenerator, l *zap.Logger, maxLogLength int) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Analyzer{
		generator: generator,
		logger:    logger.WithFields(l, logger.ProducerFields(Provider)...),
		maxLogLen: maxLogLength,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*resume.Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("resume text is required")
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{RESUME_TEXT}}", text)

	a.logger.Debug("gemini analysis request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini analysis response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return parseAnalysis(raw)
}

func parseAnalysis(raw string) (*resume.Analysis, error) {
	var analysis resume.Analysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	normalize(&analysis)
	return &analysis, nil
}

func normalize(a *resume.Analysis) {
	a.ATSScore = resume.ClampScore(a.ATSScore)
	a.Summary = strings.TrimSpace(a.Summary)
	if a.Summary == "" {
		a.Summary = NoSummary
	}
	if a.YearsOfExperience < 0 {
		a.YearsOfExperience = 0
	}

	a.Skills.Technical = orEmpty(a.Skills.Technical)
	a.Skills.Tools = orEmpty(a.Skills.Tools)
	a.Skills.Soft = orEmpty(a.Skills.Soft)
	a.Improvements = orEmpty(a.Improvements)
	a.Strengths = orEmpty(a.Strengths)

	if a.Experience == nil {
		a.Experience = []resume.Experience{}
	}
	for i := range a.Experience {
		a.Experience[i].Highlights = orEmpty(a.Experience[i].Highlights)
	}
	if a.Education == nil {
		a.Education = []resume.Education{}
	}

	keywords := make([]resume.Keyword, 0, len(a.Keywords))
	for _, k := range a.Keywords {
		switch k.Importance {
		case resume.ImportanceHigh, resume.ImportanceMedium, resume.ImportanceLow:
		default:
			k.Importance = resume.ImportanceLow
		}
		keywords = append(keywords, k)
	}
	a.Keywords = keywords
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// extractJSON strips a leading ```json or ``` fence and a trailing ``` fence.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```json") {
		raw = raw[len("```json"):]
	} else if strings.HasPrefix(raw, "```") {
		raw = raw[len("```"):]
	}
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}
