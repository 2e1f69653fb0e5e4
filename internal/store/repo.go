package store

import (
	"context"
	"time"

	"github.com/abelsk/learnpulse/internal/analytics"
)

// EventRepo provides append and ordered read access to the raw submission
// log. Append preserves input order via the global sequence; All returns
// events in that order, which the engine's first-attempt semantics rely on.
type EventRepo interface {
	// AppendSubmissions records a batch of raw submission events.
	// Returns the number of events written.
	AppendSubmissions(ctx context.Context, subs []analytics.Submission) (int, error)

	// AllSubmissions returns every submission event in ingest order.
	AllSubmissions(ctx context.Context) ([]analytics.Submission, error)

	// Count returns the number of stored submission events.
	Count(ctx context.Context) (int, error)
}

// RowRepo manages the externally computed per-student aggregates. Replace
// methods swap an entire table in one transaction; ingests are whole-file.
type RowRepo interface {
	ReplacePerformance(ctx context.Context, rows []analytics.PerformanceRow) error
	ReplaceCurves(ctx context.Context, rows []analytics.CurveSummary) error
	ReplaceSeries(ctx context.Context, points []analytics.SeriesPoint) error

	Performance(ctx context.Context) ([]analytics.PerformanceRow, error)
	Curves(ctx context.Context) ([]analytics.CurveSummary, error)
	Series(ctx context.Context) ([]analytics.SeriesPoint, error)
}

// SavedReport wraps a persisted report with its storage metadata.
type SavedReport struct {
	ReportID    string
	GeneratedAt time.Time
	Report      *analytics.StudentReport
}

// ReportRepo persists generated reports for downstream rendering.
type ReportRepo interface {
	// Save stores a generated report and returns its assigned id.
	Save(ctx context.Context, report *analytics.StudentReport) (string, error)

	// Latest returns the most recent saved report for a student, or nil if
	// none exists.
	Latest(ctx context.Context, userID string) (*SavedReport, error)
}
