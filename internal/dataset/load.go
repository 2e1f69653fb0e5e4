package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abelsk/learnpulse/internal/analytics"
)

// Dataset bundles one cohort's worth of engine inputs.
type Dataset struct {
	Submissions []analytics.Submission
	Performance []analytics.PerformanceRow
	Curves      []analytics.CurveSummary
	Series      []analytics.SeriesPoint
	ExcludedIDs []string
}

// Paths names the JSON documents to load. Excluded is optional; the other
// four are required.
type Paths struct {
	Submissions string
	Performance string
	Curves      string
	Series      string
	Excluded    string
}

// Load reads, validates and decodes all documents.
func Load(p Paths) (*Dataset, error) {
	ds := &Dataset{}
	var err error

	if ds.Submissions, err = LoadSubmissions(p.Submissions); err != nil {
		return nil, fmt.Errorf("submissions: %w", err)
	}
	if ds.Performance, err = loadTyped[analytics.PerformanceRow](p.Performance, PerformanceSchema); err != nil {
		return nil, fmt.Errorf("performance rows: %w", err)
	}
	if ds.Curves, err = loadTyped[analytics.CurveSummary](p.Curves, CurvesSchema); err != nil {
		return nil, fmt.Errorf("curve summaries: %w", err)
	}
	if ds.Series, err = loadTyped[analytics.SeriesPoint](p.Series, SeriesSchema); err != nil {
		return nil, fmt.Errorf("series points: %w", err)
	}
	if p.Excluded != "" {
		if ds.ExcludedIDs, err = loadTyped[string](p.Excluded, ExcludedSchema); err != nil {
			return nil, fmt.Errorf("excluded ids: %w", err)
		}
	}
	return ds, nil
}

// Inputs converts the dataset into the engine's input bundle.
func (d *Dataset) Inputs() analytics.Inputs {
	return analytics.Inputs{
		Submissions: d.Submissions,
		Performance: d.Performance,
		Curves:      d.Curves,
		Series:      d.Series,
		ExcludedIDs: d.ExcludedIDs,
	}
}

// LoadExcluded reads a standalone excluded-ids document. Used by the CLI,
// where the exclusion list is supplied at report time rather than ingested.
func LoadExcluded(path string) ([]string, error) {
	ids, err := loadTyped[string](path, ExcludedSchema)
	if err != nil {
		return nil, fmt.Errorf("excluded ids: %w", err)
	}
	return ids, nil
}

// LoadSubmissions reads the raw submission log. Records use flexible field
// names (user_id/userid, step_id/stepid/step, status/result); rows that
// resolve to an empty user id are dropped here, rows with an empty step id
// are kept and discarded later by the engine's own filter.
func LoadSubmissions(path string) ([]analytics.Submission, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	parsed, err := validateDocument(SubmissionsSchema, raw)
	if err != nil {
		return nil, err
	}

	records, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", parsed)
	}

	subs := make([]analytics.Submission, 0, len(records))
	for _, rec := range records {
		m, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		sub := analytics.Submission{
			UserID: firstString(m, "user_id", "userid"),
			StepID: firstString(m, "step_id", "stepid", "step"),
			Status: firstString(m, "status", "result"),
		}
		if sub.UserID == "" {
			continue
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// loadTyped reads a file, validates it against schema, and decodes it into
// a typed slice.
func loadTyped[T any](path string, schema *Schema) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if _, err := validateDocument(schema, raw); err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// firstString returns the first non-empty string value among the keys.
// Non-string values (numeric step ids in some exports) are stringified.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return trimFloat(v)
		}
	}
	return ""
}

// trimFloat renders a JSON number the way the source spreadsheet shows it:
// integers without a decimal point.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
