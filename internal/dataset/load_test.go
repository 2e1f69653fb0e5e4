package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSubmissions_AliasResolution(t *testing.T) {
	path := writeFile(t, "subs.json", `[
		{"user_id": "u1", "step_id": "10", "status": "correct"},
		{"userid": "u2", "stepid": "11", "result": "wrong"},
		{"userid": "u3", "step": 12, "status": "correct"},
		{"step_id": "13", "status": "correct"},
		{"user_id": "u4", "status": "correct"}
	]`)

	subs, err := LoadSubmissions(path)
	require.NoError(t, err)

	// The record without any user id is dropped; the one without a step id
	// is kept for the engine to discard.
	require.Len(t, subs, 4)
	assert.Equal(t, "u1", subs[0].UserID)
	assert.Equal(t, "u2", subs[1].UserID)
	assert.Equal(t, "wrong", subs[1].Status)
	assert.Equal(t, "12", subs[2].StepID, "numeric step ids are stringified")
	assert.Equal(t, "", subs[3].StepID)
}

func TestLoadSubmissions_RejectsNonArray(t *testing.T) {
	path := writeFile(t, "subs.json", `{"rows": []}`)
	_, err := LoadSubmissions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoad_FullDataset(t *testing.T) {
	p := Paths{
		Submissions: writeFile(t, "subs.json", `[{"user_id": "u1", "step_id": "10", "status": "correct"}]`),
		Performance: writeFile(t, "perf.json", `[{"user_id": "u1", "segment": "core", "total_pct": 82.5, "success_rate": 90}]`),
		Curves:      writeFile(t, "curves.json", `[{"user_id": "u1", "easing_label": "ease-out", "t25": 0.2, "t75": 0.7}]`),
		Series:      writeFile(t, "series.json", `[{"user_id": "u1", "date_iso": "2024-01-01", "activity_total": 3}]`),
		Excluded:    writeFile(t, "excluded.json", `["mentor-1"]`),
	}

	ds, err := Load(p)
	require.NoError(t, err)

	assert.Len(t, ds.Submissions, 1)
	require.Len(t, ds.Performance, 1)
	assert.Equal(t, 82.5, ds.Performance[0].TotalPct)
	require.Len(t, ds.Curves, 1)
	assert.Equal(t, "ease-out", ds.Curves[0].EasingLabel)
	assert.Len(t, ds.Series, 1)
	assert.Equal(t, []string{"mentor-1"}, ds.ExcludedIDs)

	in := ds.Inputs()
	assert.Equal(t, ds.Submissions, in.Submissions)
	assert.Equal(t, ds.ExcludedIDs, in.ExcludedIDs)
}

func TestLoad_InvalidEasingLabel(t *testing.T) {
	p := Paths{
		Submissions: writeFile(t, "subs.json", `[]`),
		Performance: writeFile(t, "perf.json", `[]`),
		Curves:      writeFile(t, "curves.json", `[{"user_id": "u1", "easing_label": "zigzag"}]`),
		Series:      writeFile(t, "series.json", `[]`),
	}
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "curve summaries")
}

func TestLoad_MissingRequiredField(t *testing.T) {
	p := Paths{
		Submissions: writeFile(t, "subs.json", `[]`),
		Performance: writeFile(t, "perf.json", `[{"user_id": "u1"}]`),
		Curves:      writeFile(t, "curves.json", `[]`),
		Series:      writeFile(t, "series.json", `[]`),
	}
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "performance rows")
}

func TestLoad_BadDate(t *testing.T) {
	p := Paths{
		Submissions: writeFile(t, "subs.json", `[]`),
		Performance: writeFile(t, "perf.json", `[]`),
		Curves:      writeFile(t, "curves.json", `[]`),
		Series:      writeFile(t, "series.json", `[{"user_id": "u1", "date_iso": "Jan 1", "activity_total": 2}]`),
	}
	_, err := Load(p)
	require.Error(t, err)
}
