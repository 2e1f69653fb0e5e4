// Code generated by ent, DO NOT EDIT.

package performancerow

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the performancerow type in the database.
	Label = "performance_row"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSegment holds the string denoting the segment field in the database.
	FieldSegment = "segment"
	// FieldTotalPct holds the string denoting the total_pct field in the database.
	FieldTotalPct = "total_pct"
	// FieldSuccessRate holds the string denoting the success_rate field in the database.
	FieldSuccessRate = "success_rate"
	// FieldConsistencyIndex holds the string denoting the consistency_index field in the database.
	FieldConsistencyIndex = "consistency_index"
	// FieldStruggleIndex holds the string denoting the struggle_index field in the database.
	FieldStruggleIndex = "struggle_index"
	// FieldEffortIndex holds the string denoting the effort_index field in the database.
	FieldEffortIndex = "effort_index"
	// FieldActiveDaysRatio holds the string denoting the active_days_ratio field in the database.
	FieldActiveDaysRatio = "active_days_ratio"
	// FieldMeetingsAttendedPct holds the string denoting the meetings_attended_pct field in the database.
	FieldMeetingsAttendedPct = "meetings_attended_pct"
	// Table holds the table name of the performancerow in the database.
	Table = "performance_rows"
)

// Columns holds all SQL columns for performancerow fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSegment,
	FieldTotalPct,
	FieldSuccessRate,
	FieldConsistencyIndex,
	FieldStruggleIndex,
	FieldEffortIndex,
	FieldActiveDaysRatio,
	FieldMeetingsAttendedPct,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultSegment holds the default value on creation for the "segment" field.
	DefaultSegment string
	// DefaultConsistencyIndex holds the default value on creation for the "consistency_index" field.
	DefaultConsistencyIndex float64
	// DefaultStruggleIndex holds the default value on creation for the "struggle_index" field.
	DefaultStruggleIndex float64
	// DefaultEffortIndex holds the default value on creation for the "effort_index" field.
	DefaultEffortIndex float64
	// DefaultActiveDaysRatio holds the default value on creation for the "active_days_ratio" field.
	DefaultActiveDaysRatio float64
	// DefaultMeetingsAttendedPct holds the default value on creation for the "meetings_attended_pct" field.
	DefaultMeetingsAttendedPct float64
)

// OrderOption defines the ordering options for the PerformanceRow queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySegment orders the results by the segment field.
func BySegment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegment, opts...).ToFunc()
}

// ByTotalPct orders the results by the total_pct field.
func ByTotalPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPct, opts...).ToFunc()
}

// BySuccessRate orders the results by the success_rate field.
func BySuccessRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessRate, opts...).ToFunc()
}

// ByConsistencyIndex orders the results by the consistency_index field.
func ByConsistencyIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsistencyIndex, opts...).ToFunc()
}

// ByStruggleIndex orders the results by the struggle_index field.
func ByStruggleIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStruggleIndex, opts...).ToFunc()
}

// ByEffortIndex orders the results by the effort_index field.
func ByEffortIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffortIndex, opts...).ToFunc()
}

// ByActiveDaysRatio orders the results by the active_days_ratio field.
func ByActiveDaysRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveDaysRatio, opts...).ToFunc()
}

// ByMeetingsAttendedPct orders the results by the meetings_attended_pct field.
func ByMeetingsAttendedPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingsAttendedPct, opts...).ToFunc()
}
