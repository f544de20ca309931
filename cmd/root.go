package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spigell/resume-matcher/internal/analyzer"
	"github.com/spigell/resume-matcher/internal/filtering"
	"github.com/spigell/resume-matcher/internal/matching"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-matcher"
)

type Config struct {
	Analyzer *AnalyzerConfig   `mapstructure:"analyzer"`
	Matching *matching.Config  `mapstructure:"matching"`
	Filters  *filtering.Config `mapstructure:"filters"`
	AI       *AIConfig         `mapstructure:"ai"`
}

type AnalyzerConfig struct {
	MinTextLength  int    `mapstructure:"min-text-length"`
	VocabularyFile string `mapstructure:"vocabulary-file"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string        `mapstructure:"api-key-file"`
	Models       []string      `mapstructure:"models"`
	MaxRetries   int           `mapstructure:"max-retries"`
	RetryDelay   time.Duration `mapstructure:"retry-delay"`
	MaxLogLength int           `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-matcher analyzes resumes and ranks job postings against them",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A missing .env is fine, variables may come from the shell.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The default config file is optional, an explicit one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func defaultConfig() *Config {
	m := matching.DefaultConfig()
	return &Config{
		Analyzer: &AnalyzerConfig{MinTextLength: analyzer.DefaultMinTextLength},
		Matching: &m,
		Filters:  &filtering.Config{},
		AI:       &AIConfig{Gemini: &GeminiConfig{}},
	}
}

func getConfig() (*Config, error) {
	config := defaultConfig()
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.Analyzer == nil {
		config.Analyzer = &AnalyzerConfig{MinTextLength: analyzer.DefaultMinTextLength}
	}
	if config.Matching == nil {
		m := matching.DefaultConfig()
		config.Matching = &m
	}
	if config.Filters == nil {
		config.Filters = &filtering.Config{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}

	return config, nil
}
