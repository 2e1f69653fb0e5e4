package cmd

import (
	"context"
	"fmt"

	"github.com/abelsk/learnpulse/internal/dataset"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Validate dataset files and load them into the database",
	Long: `Read the four cohort documents, validate each against its JSON schema,
and load them into the database. Submissions append to the event log in file
order; performance, curve and series tables are replaced wholesale.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().String("submissions", "", "Path to the raw submission log (JSON array)")
	ingestCmd.Flags().String("performance", "", "Path to per-student performance rows (JSON array)")
	ingestCmd.Flags().String("curves", "", "Path to per-student activity-curve summaries (JSON array)")
	ingestCmd.Flags().String("series", "", "Path to the daily activity time series (JSON array)")
	for _, f := range []string{"submissions", "performance", "curves", "series"} {
		_ = ingestCmd.MarkFlagRequired(f)
	}
}

func runIngest(cmd *cobra.Command, args []string) error {
	paths := dataset.Paths{}
	paths.Submissions, _ = cmd.Flags().GetString("submissions")
	paths.Performance, _ = cmd.Flags().GetString("performance")
	paths.Curves, _ = cmd.Flags().GetString("curves")
	paths.Series, _ = cmd.Flags().GetString("series")

	ds, err := dataset.Load(paths)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	rows := s.RowRepo()
	if err := rows.ReplacePerformance(ctx, ds.Performance); err != nil {
		return fmt.Errorf("store performance rows: %w", err)
	}
	if err := rows.ReplaceCurves(ctx, ds.Curves); err != nil {
		return fmt.Errorf("store curve summaries: %w", err)
	}
	if err := rows.ReplaceSeries(ctx, ds.Series); err != nil {
		return fmt.Errorf("store series points: %w", err)
	}

	written, err := s.EventRepo().AppendSubmissions(ctx, ds.Submissions)
	if err != nil {
		return fmt.Errorf("store submissions: %w", err)
	}

	fmt.Printf("Ingested %d submissions, %d performance rows, %d curves, %d series points.\n",
		written, len(ds.Performance), len(ds.Curves), len(ds.Series))
	return nil
}
