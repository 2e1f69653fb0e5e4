package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abelsk/learnpulse/internal/batch"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate reports for every student with a performance row",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().IntP("concurrency", "c", batch.DefaultConcurrency, "Number of reports generated in parallel")
	batchCmd.Flags().Bool("save", false, "Persist every generated report")
	batchCmd.Flags().String("excluded", "", "Path to a JSON array of student ids excluded from topic stats")
	batchCmd.Flags().String("modules", "", "Path to a JSON object mapping topic bucket to module name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	in, err := loadInputs(cmd, s)
	if err != nil {
		return err
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	ctx := context.Background()

	outcome, err := batch.Run(ctx, batch.UserIDs(in.Performance), in, concurrency)
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}

	out, err := json.MarshalIndent(outcome.Reports, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	fmt.Println(string(out))

	if save, _ := cmd.Flags().GetBool("save"); save {
		repo := s.ReportRepo()
		for _, r := range outcome.Reports {
			if _, err := repo.Save(ctx, r); err != nil {
				return fmt.Errorf("save report for %s: %w", r.UserID, err)
			}
		}
		fmt.Fprintf(os.Stderr, "Saved %d reports.\n", len(outcome.Reports))
	}

	fmt.Fprintf(os.Stderr, "Generated %d reports.\n", len(outcome.Reports))
	if len(outcome.NotFound) > 0 {
		fmt.Fprintf(os.Stderr, "Skipped (missing curve data): %s\n",
			strings.Join(outcome.NotFound, ", "))
	}
	return nil
}
