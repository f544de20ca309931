package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spigell/resume-matcher/internal/ai/gemini"
	"github.com/spigell/resume-matcher/internal/analyzer"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/resume"
	"github.com/spigell/resume-matcher/internal/secrets"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// setup builds the logger and the decoded config shared by every command.
// Each invocation gets its own run_id to correlate log lines.
func setup(command string) (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	l = l.With(zap.String("run_id", uuid.NewString()), zap.String("command", command))

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l.Info("starting the "+app, zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	l.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return l, config
}

func newHeuristicAnalyzer(cfg *AnalyzerConfig, l *zap.Logger) (*analyzer.Analyzer, error) {
	opts := []analyzer.Option{
		analyzer.WithLogger(l),
		analyzer.WithMinTextLength(cfg.MinTextLength),
	}

	if path := strings.TrimSpace(cfg.VocabularyFile); path != "" {
		vocabulary, err := analyzer.LoadVocabulary(path)
		if err != nil {
			return nil, fmt.Errorf("loading vocabulary: %w", err)
		}
		opts = append(opts, analyzer.WithVocabulary(vocabulary))
	}

	return analyzer.New(opts...), nil
}

func newAIProducer(ctx context.Context, cfg *AIConfig, l *zap.Logger) (resume.Producer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		Env:  "GEMINI_API_KEY",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, gemini.Config{
		APIKey:     apiKey,
		Models:     cfg.Gemini.Models,
		MaxRetries: cfg.Gemini.MaxRetries,
		RetryDelay: cfg.Gemini.RetryDelay,
	}, l)
	if err != nil {
		return nil, err
	}

	return gemini.NewAnalyzer(generator, l, cfg.Gemini.MaxLogLength), nil
}

// readAnalysis loads a ResumeAnalysis document written by the analyze command.
func readAnalysis(path string) (*resume.Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var analysis resume.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("parsing analysis %s: %w", path, err)
	}
	return &analysis, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
