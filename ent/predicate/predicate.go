// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CurveSummary is the predicate function for curvesummary builders.
type CurveSummary func(*sql.Selector)

// PerformanceRow is the predicate function for performancerow builders.
type PerformanceRow func(*sql.Selector)

// ReportRecord is the predicate function for reportrecord builders.
type ReportRecord func(*sql.Selector)

// SeriesPoint is the predicate function for seriespoint builders.
type SeriesPoint func(*sql.Selector)

// SubmissionEvent is the predicate function for submissionevent builders.
type SubmissionEvent func(*sql.Selector)
