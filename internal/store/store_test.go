package store

import (
	"context"
	"testing"

	"github.com/abelsk/learnpulse/internal/analytics"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"submission_events",
		"performance_rows",
		"curve_summaries",
		"series_points",
		"report_records",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndReadSubmissionsInOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	subs := []analytics.Submission{
		{UserID: "u1", StepID: "step10", Status: "wrong"},
		{UserID: "u1", StepID: "step10", Status: "correct"},
		{UserID: "u2", StepID: "step20", Status: "correct"},
	}
	n, err := repo.AppendSubmissions(ctx, subs)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if n != 3 {
		t.Errorf("written = %d, want 3", n)
	}

	got, err := repo.AllSubmissions(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Ingest order must survive the round trip. The first-attempt flag for
	// u1/step10 depends on the wrong event coming back before the correct one.
	for i, want := range subs {
		if got[i] != want {
			t.Errorf("sub[%d] = %+v, want %+v", i, got[i], want)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestAppendAcrossBatchesKeepsOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	first := []analytics.Submission{{UserID: "u1", StepID: "step10", Status: "wrong"}}
	second := []analytics.Submission{{UserID: "u1", StepID: "step10", Status: "correct"}}

	if _, err := repo.AppendSubmissions(ctx, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if _, err := repo.AppendSubmissions(ctx, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	got, err := repo.AllSubmissions(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Status != "wrong" || got[1].Status != "correct" {
		t.Errorf("statuses = %q, %q; want wrong, correct", got[0].Status, got[1].Status)
	}
}

func TestReplacePerformanceSwapsTable(t *testing.T) {
	s := openTestStore(t)
	repo := s.RowRepo()
	ctx := context.Background()

	err := repo.ReplacePerformance(ctx, []analytics.PerformanceRow{
		{UserID: "u1", TotalPct: 50},
		{UserID: "u2", TotalPct: 60},
	})
	if err != nil {
		t.Fatalf("first replace: %v", err)
	}

	err = repo.ReplacePerformance(ctx, []analytics.PerformanceRow{
		{UserID: "u3", TotalPct: 70, SuccessRate: 80, ConsistencyIndex: 0.5},
	})
	if err != nil {
		t.Fatalf("second replace: %v", err)
	}

	rows, err := repo.Performance(ctx)
	if err != nil {
		t.Fatalf("performance: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0].UserID != "u3" {
		t.Errorf("user id = %q, want u3", rows[0].UserID)
	}
	if rows[0].TotalPct != 70 || rows[0].SuccessRate != 80 || rows[0].ConsistencyIndex != 0.5 {
		t.Errorf("row fields not preserved: %+v", rows[0])
	}
}

func TestReplaceCurvesAndSeriesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RowRepo()
	ctx := context.Background()

	curves := []analytics.CurveSummary{
		{UserID: "u1", EasingLabel: "linear", FrontloadIndex: 0.2, Consistency: 0.7, Burstiness: 0.3, T25: 5, T50: 10, T75: 15},
	}
	if err := repo.ReplaceCurves(ctx, curves); err != nil {
		t.Fatalf("replace curves: %v", err)
	}

	points := []analytics.SeriesPoint{
		{UserID: "u1", DateISO: "2025-01-02", ActivityTotal: 3},
		{UserID: "u1", DateISO: "2025-01-01", ActivityTotal: 2},
	}
	if err := repo.ReplaceSeries(ctx, points); err != nil {
		t.Fatalf("replace series: %v", err)
	}

	gotCurves, err := repo.Curves(ctx)
	if err != nil {
		t.Fatalf("curves: %v", err)
	}
	if len(gotCurves) != 1 || gotCurves[0] != curves[0] {
		t.Errorf("curves = %+v, want %+v", gotCurves, curves)
	}

	gotPoints, err := repo.Series(ctx)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(gotPoints) != 2 {
		t.Fatalf("series len = %d, want 2", len(gotPoints))
	}
	// Series comes back sorted by user id then date.
	if gotPoints[0].DateISO != "2025-01-01" || gotPoints[1].DateISO != "2025-01-02" {
		t.Errorf("series dates = %q, %q; want sorted ascending",
			gotPoints[0].DateISO, gotPoints[1].DateISO)
	}
}

func TestReportSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReportRepo()
	ctx := context.Background()

	// No report yet.
	saved, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if saved != nil {
		t.Fatal("expected nil when no report exists")
	}

	id, err := repo.Save(ctx, &analytics.StudentReport{
		UserID:     "u1",
		CurveLabel: "linear",
		Momentum:   analytics.Momentum{Trend: analytics.TrendUp, Delta: 0.25},
		NextSteps:  []string{"Keep a steady study rhythm."},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty report id")
	}

	saved, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if saved == nil {
		t.Fatal("expected non-nil saved report")
	}
	if saved.ReportID != id {
		t.Errorf("report id = %q, want %q", saved.ReportID, id)
	}
	if saved.Report.UserID != "u1" {
		t.Errorf("user id = %q, want u1", saved.Report.UserID)
	}
	if saved.Report.Momentum.Trend != analytics.TrendUp {
		t.Errorf("momentum trend = %q, want %q", saved.Report.Momentum.Trend, analytics.TrendUp)
	}
	if saved.Report.Momentum.Delta != 0.25 {
		t.Errorf("momentum delta = %v, want 0.25", saved.Report.Momentum.Delta)
	}
}

func TestReportLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReportRepo()
	ctx := context.Background()

	var lastID string
	for i := 0; i < 3; i++ {
		id, err := repo.Save(ctx, &analytics.StudentReport{
			UserID:   "u1",
			Momentum: analytics.Momentum{Delta: float64(i)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		lastID = id
	}

	saved, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if saved == nil {
		t.Fatal("expected non-nil saved report")
	}
	if saved.ReportID != lastID {
		t.Errorf("report id = %q, want newest %q", saved.ReportID, lastID)
	}
}

func TestReportLatestScopedByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReportRepo()
	ctx := context.Background()

	if _, err := repo.Save(ctx, &analytics.StudentReport{UserID: "u1"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	saved, err := repo.Latest(ctx, "u2")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if saved != nil {
		t.Fatal("expected nil for a student with no saved report")
	}
}
