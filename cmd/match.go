package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spigell/resume-matcher/internal/filtering"
	"github.com/spigell/resume-matcher/internal/jobs"
	"github.com/spigell/resume-matcher/internal/matching"
	"github.com/spigell/resume-matcher/internal/resume"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShow                = "Show matches"
	PromptExit                = "Exit"
	PromptBack                = "back"
	PromptReportByCompanies   = "Report by companies"
	PromptPostingsToFile      = "Dump postings to file"
	PromptAppendToExcludeFile = "Append all postings to exclude file"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Procced?",
	Items: []string{PromptShow, PromptReportByCompanies, PromptPostingsToFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a resume analysis",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("analysis", "a", "", "analysis JSON produced by the analyze command")
	matchCmd.Flags().StringP("jobs", "p", "", "job postings file (JSON or YAML)")
	matchCmd.Flags().StringP("format", "f", "json", "output format: json or text")
	matchCmd.Flags().BoolP("interactive", "i", false, "browse matches interactively")
	matchCmd.Flags().StringP("exclude-file", "e", "", "special file with postings to exclude. Default is unset.")
	matchCmd.Flags().StringSlice("disable-filter", nil, "filters to skip by name")

	matchCmd.MarkFlagRequired("analysis")
	matchCmd.MarkFlagRequired("jobs")

	viper.BindPFlag("filters.exclude-file", matchCmd.Flags().Lookup("exclude-file"))
}

func match(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup("match")

	analysisFile, _ := cmd.Flags().GetString("analysis")
	jobsFile, _ := cmd.Flags().GetString("jobs")

	analysis, err := readAnalysis(analysisFile)
	if err != nil {
		logger.Fatal("reading analysis", zap.Error(err))
	}

	postings, err := jobs.LoadFile(jobsFile)
	if err != nil {
		logger.Fatal("loading job postings", zap.Error(err))
	}

	logger.Info("loaded job postings", zap.Int("count", postings.Len()), zap.Int("active", postings.Active().Len()))

	steps := filtering.Default()
	disabled, _ := cmd.Flags().GetStringSlice("disable-filter")
	for _, name := range disabled {
		filtering.DisableByName(steps, name, "disabled by flag")
	}

	deps := filtering.Deps{
		Logger:   logger,
		Analysis: analysis,
		Scorer:   matching.NewScorer(*config.Matching),
	}

	postings, err = filtering.Run(ctx, config.Filters, deps, steps, postings)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	logFilterStatuses(logger, steps)

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings left after filters"))
		return
	}

	matcher := matching.New(matching.WithConfig(*config.Matching), matching.WithLogger(logger))

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		if err := browse(logger, config, matcher, analysis, postings); err != nil && !errors.Is(err, errExit) {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	format, _ := cmd.Flags().GetString("format")
	if err := printJobMatches(format, matcher.MatchResumeWithJobs(analysis, postings.Items)); err != nil {
		logger.Fatal("printing matches", zap.Error(err))
	}
}

func logFilterStatuses(logger *zap.Logger, steps []filtering.Filter) {
	for _, s := range filtering.Describe(steps) {
		logger.Info("filter status",
			zap.String("name", s.Name),
			zap.Bool("enabled", s.Enabled),
			zap.String("reason", s.Reason),
			zap.Any("details", s.Details),
		)
	}
}

func printJobMatches(format string, matches []matching.JobMatch) error {
	switch strings.ToLower(format) {
	case "json":
		return writeJSON(os.Stdout, matches)
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tTYPE\tID\tTITLE\tCOMPANY\tMISSING")
		for _, m := range matches {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				m.MatchScore, m.MatchType, m.JobID, m.Title, m.Company, strings.Join(m.MissingSkills, ", "))
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func browse(logger *zap.Logger, config *Config, matcher *matching.Matcher, analysis *resume.Analysis, postings *jobs.Postings) error {
	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		logger.Info("current list of postings", zap.Int("count", postings.Len()))

		if err := handleAction(action, logger, config, matcher, analysis, postings); err != nil {
			return err
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, matcher *matching.Matcher, analysis *resume.Analysis, postings *jobs.Postings) error {
	switch action {
	case PromptShow:
		return pickMatch(logger, config.Filters.ExcludeFile, matcher, analysis, postings)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByCompanies:
		pretty, _ := json.MarshalIndent(postings.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("postings count", postings.Len()))
		return nil
	case PromptPostingsToFile:
		filename, err := postings.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// pickMatch lists ranked postings and shows the skill gap of the chosen one.
func pickMatch(logger *zap.Logger, excludeFile string, matcher *matching.Matcher, analysis *resume.Analysis, postings *jobs.Postings) error {
	for {
		matches := matcher.MatchResumeWithJobs(analysis, postings.Items)

		items := make([]string, 0, len(matches)+2)
		for _, m := range matches {
			items = append(items, fmt.Sprintf("%s %d%% %s / %s", m.JobID, m.MatchScore, m.Title, m.Company))
		}

		if excludeFile != "" && postings.Len() != 0 {
			items = append(items, PromptAppendToExcludeFile)
		}

		matchPrompt := promptui.Select{
			Label: "Choose a posting and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := matchPrompt.Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptBack:
			return nil
		case PromptAppendToExcludeFile:
			excluded, err := jobs.LoadExcluded(excludeFile)
			if err != nil {
				return err
			}

			excluded.Append(postings.ToExcluded(time.Now()))

			if err = excluded.ToFile(excludeFile); err != nil {
				return err
			}

			logger.Info("appended to exclude file", zap.String("filename", excludeFile))

			postings.Exclude(jobs.PostingIDField, excluded.IDs())
		default:
			id := strings.Split(selected, " ")[0]
			for _, m := range matches {
				if m.JobID != id {
					continue
				}
				logger.Info("skill gap",
					zap.String("job_id", m.JobID),
					zap.Int("score", m.MatchScore),
					zap.String("match_type", string(m.MatchType)),
					zap.Strings("matching_skills", m.MatchingSkills),
					zap.Strings("missing_skills", m.MissingSkills),
				)
			}
		}
	}
}
