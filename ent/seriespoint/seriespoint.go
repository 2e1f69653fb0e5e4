// Code generated by ent, DO NOT EDIT.

package seriespoint

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the seriespoint type in the database.
	Label = "series_point"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDateIso holds the string denoting the date_iso field in the database.
	FieldDateIso = "date_iso"
	// FieldActivityTotal holds the string denoting the activity_total field in the database.
	FieldActivityTotal = "activity_total"
	// Table holds the table name of the seriespoint in the database.
	Table = "series_points"
)

// Columns holds all SQL columns for seriespoint fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDateIso,
	FieldActivityTotal,
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
	// DateIsoValidator is a validator for the "date_iso" field. It is called by the builders before save.
	DateIsoValidator func(string) error
)

// OrderOption defines the ordering options for the SeriesPoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDateIso orders the results by the date_iso field.
func ByDateIso(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateIso, opts...).ToFunc()
}

// ByActivityTotal orders the results by the activity_total field.
func ByActivityTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityTotal, opts...).ToFunc()
}
