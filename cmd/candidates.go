package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spigell/resume-matcher/internal/jobs"
	"github.com/spigell/resume-matcher/internal/matching"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// candidatesKey holds the candidate list in YAML or JSON object files.
const candidatesKey = "candidates"

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Rank analyzed candidates against one job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		candidates(cmd)
	},
}

func init() {
	rootCmd.AddCommand(candidatesCmd)

	candidatesCmd.Flags().StringP("jobs", "p", "", "job postings file (JSON or YAML)")
	candidatesCmd.Flags().String("job", "", "id of the posting to rank candidates for")
	candidatesCmd.Flags().StringP("candidates", "c", "", "candidates file with user fields and analyses (JSON or YAML)")
	candidatesCmd.Flags().StringP("format", "f", "json", "output format: json or text")

	candidatesCmd.MarkFlagRequired("jobs")
	candidatesCmd.MarkFlagRequired("job")
	candidatesCmd.MarkFlagRequired("candidates")
}

func candidates(cmd *cobra.Command) {
	logger, config := setup("candidates")

	jobsFile, _ := cmd.Flags().GetString("jobs")
	jobID, _ := cmd.Flags().GetString("job")
	candidatesFile, _ := cmd.Flags().GetString("candidates")

	postings, err := jobs.LoadFile(jobsFile)
	if err != nil {
		logger.Fatal("loading job postings", zap.Error(err))
	}

	posting := postings.FindByID(jobID)
	if posting == nil {
		logger.Fatal("posting with given id not found", zap.String("job_id", jobID))
	}

	list, err := loadCandidates(candidatesFile)
	if err != nil {
		logger.Fatal("loading candidates", zap.Error(err))
	}

	logger.Info("loaded candidates", zap.Int("count", len(list)))

	matcher := matching.New(matching.WithConfig(*config.Matching), matching.WithLogger(logger))
	matches := matcher.MatchJobWithResumes(posting, list)

	format, _ := cmd.Flags().GetString("format")
	if err := printCandidateMatches(format, matches); err != nil {
		logger.Fatal("printing matches", zap.Error(err))
	}
}

func loadCandidates(path string) ([]matching.Candidate, error) {
	items, err := jobs.ReadItems(path, candidatesKey)
	if err != nil {
		return nil, err
	}

	var list []matching.Candidate
	if err := jobs.Decode(items, &list); err != nil {
		return nil, fmt.Errorf("decoding candidates from %s: %w", path, err)
	}
	return list, nil
}

func printCandidateMatches(format string, matches []matching.CandidateMatch) error {
	switch strings.ToLower(format) {
	case "json":
		return writeJSON(os.Stdout, matches)
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tTYPE\tUSER\tNAME\tYEARS\tATS\tMISSING")
		for _, m := range matches {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
				m.MatchScore, m.MatchType, m.UserID, m.UserName, m.YearsOfExperience, m.ATSScore, strings.Join(m.MissingSkills, ", "))
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
