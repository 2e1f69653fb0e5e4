// Code generated by ent, DO NOT EDIT.

package curvesummary

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the curvesummary type in the database.
	Label = "curve_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEasingLabel holds the string denoting the easing_label field in the database.
	FieldEasingLabel = "easing_label"
	// FieldFrontloadIndex holds the string denoting the frontload_index field in the database.
	FieldFrontloadIndex = "frontload_index"
	// FieldConsistency holds the string denoting the consistency field in the database.
	FieldConsistency = "consistency"
	// FieldBurstiness holds the string denoting the burstiness field in the database.
	FieldBurstiness = "burstiness"
	// FieldT25 holds the string denoting the t25 field in the database.
	FieldT25 = "t25"
	// FieldT50 holds the string denoting the t50 field in the database.
	FieldT50 = "t50"
	// FieldT75 holds the string denoting the t75 field in the database.
	FieldT75 = "t75"
	// Table holds the table name of the curvesummary in the database.
	Table = "curve_summaries"
)

// Columns holds all SQL columns for curvesummary fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldEasingLabel,
	FieldFrontloadIndex,
	FieldConsistency,
	FieldBurstiness,
	FieldT25,
	FieldT50,
	FieldT75,
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
	// EasingLabelValidator is a validator for the "easing_label" field. It is called by the builders before save.
	EasingLabelValidator func(string) error
	// DefaultFrontloadIndex holds the default value on creation for the "frontload_index" field.
	DefaultFrontloadIndex float64
	// DefaultConsistency holds the default value on creation for the "consistency" field.
	DefaultConsistency float64
	// DefaultBurstiness holds the default value on creation for the "burstiness" field.
	DefaultBurstiness float64
	// DefaultT25 holds the default value on creation for the "t25" field.
	DefaultT25 float64
	// DefaultT50 holds the default value on creation for the "t50" field.
	DefaultT50 float64
	// DefaultT75 holds the default value on creation for the "t75" field.
	DefaultT75 float64
)

// OrderOption defines the ordering options for the CurveSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByEasingLabel orders the results by the easing_label field.
func ByEasingLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasingLabel, opts...).ToFunc()
}

// ByFrontloadIndex orders the results by the frontload_index field.
func ByFrontloadIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrontloadIndex, opts...).ToFunc()
}

// ByConsistency orders the results by the consistency field.
func ByConsistency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsistency, opts...).ToFunc()
}

// ByBurstiness orders the results by the burstiness field.
func ByBurstiness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBurstiness, opts...).ToFunc()
}

// ByT25 orders the results by the t25 field.
func ByT25(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldT25, opts...).ToFunc()
}

// ByT50 orders the results by the t50 field.
func ByT50(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldT50, opts...).ToFunc()
}

// ByT75 orders the results by the t75 field.
func ByT75(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldT75, opts...).ToFunc()
}
