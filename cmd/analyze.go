package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spigell/resume-matcher/internal/analyzer"
	"github.com/spigell/resume-matcher/internal/extract"
	"github.com/spigell/resume-matcher/internal/resume"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume>",
	Short: "Analyze a resume (.pdf, .txt, .md) and print the analysis as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Bool("ai", false, "also analyze with the configured AI provider and merge the results")
	analyzeCmd.Flags().StringP("output", "o", "", "write the analysis to a file instead of stdout")

	viper.BindPFlag("ai.enabled", analyzeCmd.Flags().Lookup("ai"))
}

func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()
	logger, config := setup("analyze")

	text, err := extract.FromFile(path)
	if err != nil {
		logger.Fatal("extracting resume text", zap.String("path", path), zap.Error(err))
	}

	heuristic, err := newHeuristicAnalyzer(config.Analyzer, logger)
	if err != nil {
		logger.Fatal("building analyzer", zap.Error(err))
	}

	analysis, err := heuristic.Analyze(ctx, text)
	if err != nil {
		if errors.Is(err, analyzer.ErrInsufficientText) {
			logger.Fatal("resume has too little text, it is probably a scanned image", zap.Error(err))
		}
		logger.Fatal("analyzing resume", zap.Error(err))
	}

	if config.AI.Enabled {
		analysis = withAI(ctx, config, logger, text, analysis)
	}

	out := os.Stdout
	if file, _ := cmd.Flags().GetString("output"); file != "" {
		f, err := os.Create(file)
		if err != nil {
			logger.Fatal("creating output file", zap.Error(err))
		}
		defer f.Close()
		out = f
	}

	if err := writeJSON(out, analysis); err != nil {
		logger.Fatal("writing analysis", zap.Error(err))
	}
}

// withAI merges the model analysis into the heuristic one. Model failures are
// logged and the heuristic analysis is kept.
func withAI(ctx context.Context, config *Config, logger *zap.Logger, text string, heuristic *resume.Analysis) *resume.Analysis {
	producer, err := newAIProducer(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping ai analysis", zap.Error(err))
		return heuristic
	}

	model, err := producer.Analyze(ctx, text)
	if err != nil {
		logger.Warn("ai analysis failed, using heuristic analysis only", zap.Error(err))
		return heuristic
	}

	return resume.Merge(heuristic, model)
}
