// Package gemini produces resume analyses with Google Gemini models.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/utils"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	Provider = "gemini"

	DefaultMaxRetries = 3
	DefaultRetryDelay = 5 * time.Second
)

// DefaultModels are tried in order. Each model may have its own quota.
var DefaultModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-pro",
	"gemini-1.5-flash-002",
	"gemini-2.0-flash-exp",
}

// ErrQuotaExhausted is returned when every model reported a zero quota.
var ErrQuotaExhausted = errors.New("gemini quota exhausted for all models")

type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config configures a Generator.
type Config struct {
	APIKey     string        `mapstructure:"-"`
	Models     []string      `mapstructure:"models"`
	MaxRetries int           `mapstructure:"max-retries"`
	RetryDelay time.Duration `mapstructure:"retry-delay"`
}

// Generator wraps the Google GenAI client with retries and model fallback.
type Generator struct {
	models     modelsAPI
	fallback   []string
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, cfg Config, l *zap.Logger) (*Generator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGenerator(client.Models, cfg, l), nil
}

func newGenerator(models modelsAPI, cfg Config, l *zap.Logger) *Generator {
	g := &Generator{
		models:     models,
		fallback:   DefaultModels,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		logger:     logger.WithFields(l, logger.AIFields(Provider, "")...),
	}

	if names := trimmed(cfg.Models); len(names) > 0 {
		g.fallback = names
	}
	if cfg.MaxRetries > 0 {
		g.maxRetries = cfg.MaxRetries
	}
	if cfg.RetryDelay > 0 {
		g.retryDelay = cfg.RetryDelay
	}

	return g
}

// Models returns the fallback order.
func (g *Generator) Models() []string {
	return append([]string(nil), g.fallback...)
}

// GenerateContent sends the prompt to each model in turn and returns the first textual response.
// A 429 is retried on the same model with a linear backoff unless the quota is zero.
// Any other failure moves on to the next model.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	config := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}

	var lastErr error
	exhausted := 0

	for _, model := range g.fallback {
		log := g.logger.With(zap.String(logger.FieldModel, model))

		for attempt := 1; attempt <= g.maxRetries; attempt++ {
			log.Debug("gemini generate content", zap.Int("attempt", attempt), zap.Int("max_retries", g.maxRetries))

			output, err := g.generate(ctx, model, prompt, config)
			if err == nil {
				log.Info("gemini generate content succeeded", zap.Int("attempt", attempt))
				return output, nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}

			lastErr = err
			log.Warn("gemini generate content failed", zap.Int("attempt", attempt), zap.Error(err))

			code, message := classify(err)
			if code != http.StatusTooManyRequests {
				break
			}
			if strings.Contains(message, "limit: 0") {
				log.Info("gemini model quota exhausted, trying next model")
				exhausted++
				break
			}
			if attempt == g.maxRetries {
				break
			}

			wait := g.retryDelay * time.Duration(attempt)
			log.Info("gemini rate limited, waiting before retry", zap.Duration("wait", wait))
			if err := utils.WaitFor(ctx, wait); err != nil {
				return "", err
			}
		}
	}

	if exhausted == len(g.fallback) {
		return "", ErrQuotaExhausted
	}
	return "", fmt.Errorf("all gemini models failed: %w", lastErr)
}

func (g *Generator) generate(ctx context.Context, model, prompt string, config *genai.GenerateContentConfig) (string, error) {
	resp, err := g.models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil {
		return "", errors.New("gemini api returned empty response")
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

// classify returns the HTTP status of an API error. Errors without a status
// fall back to searching the message for "429" and "404".
func classify(err error) (int, string) {
	message := err.Error()

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return apiErr.Code, message
	}

	switch {
	case strings.Contains(message, "429"):
		return http.StatusTooManyRequests, message
	case strings.Contains(message, "404"):
		return http.StatusNotFound, message
	default:
		return 0, message
	}
}

func trimmed(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
