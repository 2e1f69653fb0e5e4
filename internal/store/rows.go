package store

import (
	"context"
	"fmt"

	"github.com/abelsk/learnpulse/ent"
	"github.com/abelsk/learnpulse/ent/curvesummary"
	"github.com/abelsk/learnpulse/ent/performancerow"
	"github.com/abelsk/learnpulse/ent/seriespoint"
	"github.com/abelsk/learnpulse/internal/analytics"
)

// rowRepo implements RowRepo using the ent client.
type rowRepo struct {
	client *ent.Client
}

// withTx runs fn inside a transaction, rolling back on error.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *rowRepo) ReplacePerformance(ctx context.Context, rows []analytics.PerformanceRow) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		if _, err := tx.PerformanceRow.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("clear performance rows: %w", err)
		}
		builders := make([]*ent.PerformanceRowCreate, len(rows))
		for i, row := range rows {
			builders[i] = tx.PerformanceRow.Create().
				SetUserID(row.UserID).
				SetSegment(row.Segment).
				SetTotalPct(row.TotalPct).
				SetSuccessRate(row.SuccessRate).
				SetConsistencyIndex(row.ConsistencyIndex).
				SetStruggleIndex(row.StruggleIndex).
				SetEffortIndex(row.EffortIndex).
				SetActiveDaysRatio(row.ActiveDaysRatio).
				SetMeetingsAttendedPct(row.MeetingsAttendedPct)
		}
		if _, err := tx.PerformanceRow.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("insert performance rows: %w", err)
		}
		return nil
	})
}

func (r *rowRepo) ReplaceCurves(ctx context.Context, rows []analytics.CurveSummary) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		if _, err := tx.CurveSummary.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("clear curve summaries: %w", err)
		}
		builders := make([]*ent.CurveSummaryCreate, len(rows))
		for i, row := range rows {
			builders[i] = tx.CurveSummary.Create().
				SetUserID(row.UserID).
				SetEasingLabel(row.EasingLabel).
				SetFrontloadIndex(row.FrontloadIndex).
				SetConsistency(row.Consistency).
				SetBurstiness(row.Burstiness).
				SetT25(row.T25).
				SetT50(row.T50).
				SetT75(row.T75)
		}
		if _, err := tx.CurveSummary.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("insert curve summaries: %w", err)
		}
		return nil
	})
}

func (r *rowRepo) ReplaceSeries(ctx context.Context, points []analytics.SeriesPoint) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		if _, err := tx.SeriesPoint.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("clear series points: %w", err)
		}
		builders := make([]*ent.SeriesPointCreate, len(points))
		for i, p := range points {
			builders[i] = tx.SeriesPoint.Create().
				SetUserID(p.UserID).
				SetDateIso(p.DateISO).
				SetActivityTotal(p.ActivityTotal)
		}
		if _, err := tx.SeriesPoint.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("insert series points: %w", err)
		}
		return nil
	})
}

func (r *rowRepo) Performance(ctx context.Context) ([]analytics.PerformanceRow, error) {
	rows, err := r.client.PerformanceRow.Query().
		Order(ent.Asc(performancerow.FieldUserID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query performance rows: %w", err)
	}
	out := make([]analytics.PerformanceRow, len(rows))
	for i, row := range rows {
		out[i] = analytics.PerformanceRow{
			UserID:              row.UserID,
			Segment:             row.Segment,
			TotalPct:            row.TotalPct,
			SuccessRate:         row.SuccessRate,
			ConsistencyIndex:    row.ConsistencyIndex,
			StruggleIndex:       row.StruggleIndex,
			EffortIndex:         row.EffortIndex,
			ActiveDaysRatio:     row.ActiveDaysRatio,
			MeetingsAttendedPct: row.MeetingsAttendedPct,
		}
	}
	return out, nil
}

func (r *rowRepo) Curves(ctx context.Context) ([]analytics.CurveSummary, error) {
	rows, err := r.client.CurveSummary.Query().
		Order(ent.Asc(curvesummary.FieldUserID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query curve summaries: %w", err)
	}
	out := make([]analytics.CurveSummary, len(rows))
	for i, row := range rows {
		out[i] = analytics.CurveSummary{
			UserID:         row.UserID,
			EasingLabel:    row.EasingLabel,
			FrontloadIndex: row.FrontloadIndex,
			Consistency:    row.Consistency,
			Burstiness:     row.Burstiness,
			T25:            row.T25,
			T50:            row.T50,
			T75:            row.T75,
		}
	}
	return out, nil
}

func (r *rowRepo) Series(ctx context.Context) ([]analytics.SeriesPoint, error) {
	rows, err := r.client.SeriesPoint.Query().
		Order(ent.Asc(seriespoint.FieldUserID), ent.Asc(seriespoint.FieldDateIso)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query series points: %w", err)
	}
	out := make([]analytics.SeriesPoint, len(rows))
	for i, row := range rows {
		out[i] = analytics.SeriesPoint{
			UserID:        row.UserID,
			DateISO:       row.DateIso,
			ActivityTotal: row.ActivityTotal,
		}
	}
	return out, nil
}
