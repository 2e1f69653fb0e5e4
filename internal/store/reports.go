package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abelsk/learnpulse/ent"
	"github.com/abelsk/learnpulse/ent/reportrecord"
	"github.com/abelsk/learnpulse/internal/analytics"
)

// reportRepo implements ReportRepo using the ent client.
type reportRepo struct {
	client *ent.Client
}

func (r *reportRepo) Save(ctx context.Context, report *analytics.StudentReport) (string, error) {
	dataMap, err := reportToMap(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	id := uuid.NewString()
	_, err = r.client.ReportRecord.Create().
		SetReportID(id).
		SetUserID(report.UserID).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("save report record: %w", err)
	}
	return id, nil
}

func (r *reportRepo) Latest(ctx context.Context, userID string) (*SavedReport, error) {
	rec, err := r.client.ReportRecord.Query().
		Where(reportrecord.UserID(userID)).
		Order(ent.Desc(reportrecord.FieldGeneratedAt), ent.Desc(reportrecord.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest report: %w", err)
	}

	report, err := reportFromMap(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal report %s: %w", rec.ReportID, err)
	}
	return &SavedReport{
		ReportID:    rec.ReportID,
		GeneratedAt: rec.GeneratedAt,
		Report:      report,
	}, nil
}

// reportToMap converts a report to map[string]any for ent JSON storage.
func reportToMap(report *analytics.StudentReport) (map[string]any, error) {
	b, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// reportFromMap converts stored JSON back into a report.
func reportFromMap(m map[string]any) (*analytics.StudentReport, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var report analytics.StudentReport
	if err := json.Unmarshal(b, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
