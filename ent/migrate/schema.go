// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CurveSummariesColumns holds the columns for the "curve_summaries" table.
	CurveSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "easing_label", Type: field.TypeString},
		{Name: "frontload_index", Type: field.TypeFloat64, Default: 0},
		{Name: "consistency", Type: field.TypeFloat64, Default: 0},
		{Name: "burstiness", Type: field.TypeFloat64, Default: 0},
		{Name: "t25", Type: field.TypeFloat64, Default: 0},
		{Name: "t50", Type: field.TypeFloat64, Default: 0},
		{Name: "t75", Type: field.TypeFloat64, Default: 0},
	}
	// CurveSummariesTable holds the schema information for the "curve_summaries" table.
	CurveSummariesTable = &schema.Table{
		Name:       "curve_summaries",
		Columns:    CurveSummariesColumns,
		PrimaryKey: []*schema.Column{CurveSummariesColumns[0]},
	}
	// PerformanceRowsColumns holds the columns for the "performance_rows" table.
	PerformanceRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "segment", Type: field.TypeString, Default: ""},
		{Name: "total_pct", Type: field.TypeFloat64},
		{Name: "success_rate", Type: field.TypeFloat64},
		{Name: "consistency_index", Type: field.TypeFloat64, Default: 0},
		{Name: "struggle_index", Type: field.TypeFloat64, Default: 0},
		{Name: "effort_index", Type: field.TypeFloat64, Default: 0},
		{Name: "active_days_ratio", Type: field.TypeFloat64, Default: 0},
		{Name: "meetings_attended_pct", Type: field.TypeFloat64, Default: 0},
	}
	// PerformanceRowsTable holds the schema information for the "performance_rows" table.
	PerformanceRowsTable = &schema.Table{
		Name:       "performance_rows",
		Columns:    PerformanceRowsColumns,
		PrimaryKey: []*schema.Column{PerformanceRowsColumns[0]},
	}
	// ReportRecordsColumns holds the columns for the "report_records" table.
	ReportRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ReportRecordsTable holds the schema information for the "report_records" table.
	ReportRecordsTable = &schema.Table{
		Name:       "report_records",
		Columns:    ReportRecordsColumns,
		PrimaryKey: []*schema.Column{ReportRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reportrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReportRecordsColumns[2]},
			},
			{
				Name:    "reportrecord_generated_at",
				Unique:  false,
				Columns: []*schema.Column{ReportRecordsColumns[3]},
			},
		},
	}
	// SeriesPointsColumns holds the columns for the "series_points" table.
	SeriesPointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "date_iso", Type: field.TypeString},
		{Name: "activity_total", Type: field.TypeFloat64},
	}
	// SeriesPointsTable holds the schema information for the "series_points" table.
	SeriesPointsTable = &schema.Table{
		Name:       "series_points",
		Columns:    SeriesPointsColumns,
		PrimaryKey: []*schema.Column{SeriesPointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "seriespoint_user_id_date_iso",
				Unique:  true,
				Columns: []*schema.Column{SeriesPointsColumns[1], SeriesPointsColumns[2]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "ingested_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3]},
			},
			{
				Name:    "submissionevent_step_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CurveSummariesTable,
		PerformanceRowsTable,
		ReportRecordsTable,
		SeriesPointsTable,
		SubmissionEventsTable,
	}
)

func init() {
}
