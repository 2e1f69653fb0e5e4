// Package dataset loads the externally computed inputs of the analytics
// engine from JSON documents: the raw submission log, per-student
// performance rows, activity-curve summaries, daily activity series, and
// the excluded-id list. Each document is validated against a JSON schema
// before decoding, so malformed uploads fail loudly at the boundary instead
// of leaking partial rows into the engine.
package dataset

// Schema pairs a name with a JSON-schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// studentRow is the common shape of per-student aggregate rows: every row
// must carry a user id; numeric fields are validated per document below.
func studentRow(required []any, numeric ...string) map[string]any {
	props := map[string]any{
		"user_id": map[string]any{"type": "string", "minLength": 1},
	}
	for _, f := range numeric {
		props[f] = map[string]any{"type": "number"}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func arrayOf(item map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": item}
}

// SubmissionsSchema accepts the loosely shaped raw submission log. Field
// aliases (user_id/userid, step_id/stepid/step, status/result) are resolved
// during decoding, so the schema only pins the container shape.
var SubmissionsSchema = &Schema{
	Name: "submissions",
	Definition: arrayOf(map[string]any{
		"type": "object",
	}),
}

// PerformanceSchema validates the per-student performance aggregates.
var PerformanceSchema = &Schema{
	Name: "performance-rows",
	Definition: arrayOf(studentRow(
		[]any{"user_id", "total_pct", "success_rate"},
		"total_pct", "success_rate", "consistency_index", "struggle_index",
		"effort_index", "active_days_ratio", "meetings_attended_pct",
	)),
}

// CurvesSchema validates the activity-curve summaries.
var CurvesSchema = &Schema{
	Name: "curve-summaries",
	Definition: arrayOf(func() map[string]any {
		row := studentRow(
			[]any{"user_id", "easing_label"},
			"frontload_index", "consistency", "burstiness", "t25", "t50", "t75",
		)
		row["properties"].(map[string]any)["easing_label"] = map[string]any{
			"type": "string",
			"enum": []any{"linear", "ease", "ease-in", "ease-out", "ease-in-out", "no-activity"},
		}
		return row
	}()),
}

// SeriesSchema validates the per-day activity points.
var SeriesSchema = &Schema{
	Name: "series-points",
	Definition: arrayOf(func() map[string]any {
		row := studentRow([]any{"user_id", "date_iso", "activity_total"}, "activity_total")
		row["properties"].(map[string]any)["date_iso"] = map[string]any{
			"type":    "string",
			"pattern": `^\d{4}-\d{2}-\d{2}$`,
		}
		return row
	}()),
}

// ExcludedSchema validates the excluded-user-id list.
var ExcludedSchema = &Schema{
	Name: "excluded-ids",
	Definition: arrayOf(map[string]any{
		"type": "string",
	}),
}
