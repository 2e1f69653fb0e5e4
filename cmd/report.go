package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abelsk/learnpulse/internal/analytics"
	"github.com/abelsk/learnpulse/internal/dataset"
	"github.com/abelsk/learnpulse/internal/modnames"
	"github.com/abelsk/learnpulse/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <student-id>",
	Short: "Generate a report for one student",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().Bool("save", false, "Persist the generated report")
	reportCmd.Flags().String("excluded", "", "Path to a JSON array of student ids excluded from topic stats")
	reportCmd.Flags().String("modules", "", "Path to a JSON object mapping topic bucket to module name")
}

func runReport(cmd *cobra.Command, args []string) error {
	userID := args[0]

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	in, err := loadInputs(cmd, s)
	if err != nil {
		return err
	}

	report := analytics.GenerateStudentReport(userID, in)
	if report == nil {
		return fmt.Errorf("no performance or curve data for student %q", userID)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Println(string(out))

	if save, _ := cmd.Flags().GetBool("save"); save {
		id, err := s.ReportRepo().Save(context.Background(), report)
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Saved report", id)
	}
	return nil
}

// loadInputs assembles the engine input bundle from the store plus the
// optional excluded-ids and module-names documents.
func loadInputs(cmd *cobra.Command, s *store.Store) (analytics.Inputs, error) {
	ctx := context.Background()
	var in analytics.Inputs
	var err error

	if in.Submissions, err = s.EventRepo().AllSubmissions(ctx); err != nil {
		return in, fmt.Errorf("load submissions: %w", err)
	}
	rows := s.RowRepo()
	if in.Performance, err = rows.Performance(ctx); err != nil {
		return in, fmt.Errorf("load performance rows: %w", err)
	}
	if in.Curves, err = rows.Curves(ctx); err != nil {
		return in, fmt.Errorf("load curve summaries: %w", err)
	}
	if in.Series, err = rows.Series(ctx); err != nil {
		return in, fmt.Errorf("load series points: %w", err)
	}

	if path, _ := cmd.Flags().GetString("excluded"); path != "" {
		if in.ExcludedIDs, err = dataset.LoadExcluded(path); err != nil {
			return in, err
		}
	}
	if path, _ := cmd.Flags().GetString("modules"); path != "" {
		cache := modnames.New(modnames.FileLookup(path), time.Now, modnames.DefaultTTL)
		in.TopicNamer = cache.TopicNamer()
	}
	return in, nil
}
