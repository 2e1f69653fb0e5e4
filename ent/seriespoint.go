// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abelsk/learnpulse/ent/seriespoint"
)

// SeriesPoint is the model entity for the SeriesPoint schema.
type SeriesPoint struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// YYYY-MM-DD; lexicographic order is chronological order
	DateIso string `json:"date_iso,omitempty"`
	// ActivityTotal holds the value of the "activity_total" field.
	ActivityTotal float64 `json:"activity_total,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SeriesPoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case seriespoint.FieldActivityTotal:
			values[i] = new(sql.NullFloat64)
		case seriespoint.FieldID:
			values[i] = new(sql.NullInt64)
		case seriespoint.FieldUserID, seriespoint.FieldDateIso:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SeriesPoint fields.
func (sp *SeriesPoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case seriespoint.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sp.ID = int(value.Int64)
		case seriespoint.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				sp.UserID = value.String
			}
		case seriespoint.FieldDateIso:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_iso", values[i])
			} else if value.Valid {
				sp.DateIso = value.String
			}
		case seriespoint.FieldActivityTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field activity_total", values[i])
			} else if value.Valid {
				sp.ActivityTotal = value.Float64
			}
		default:
			sp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SeriesPoint.
// This includes values selected through modifiers, order, etc.
func (sp *SeriesPoint) Value(name string) (ent.Value, error) {
	return sp.selectValues.Get(name)
}

// Update returns a builder for updating this SeriesPoint.
// Note that you need to call SeriesPoint.Unwrap() before calling this method if this SeriesPoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (sp *SeriesPoint) Update() *SeriesPointUpdateOne {
	return NewSeriesPointClient(sp.config).UpdateOne(sp)
}

// Unwrap unwraps the SeriesPoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sp *SeriesPoint) Unwrap() *SeriesPoint {
	_tx, ok := sp.config.driver.(*txDriver)
	if !ok {
		panic("ent: SeriesPoint is not a transactional entity")
	}
	sp.config.driver = _tx.drv
	return sp
}

// String implements the fmt.Stringer.
func (sp *SeriesPoint) String() string {
	var builder strings.Builder
	builder.WriteString("SeriesPoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sp.ID))
	builder.WriteString("user_id=")
	builder.WriteString(sp.UserID)
	builder.WriteString(", ")
	builder.WriteString("date_iso=")
	builder.WriteString(sp.DateIso)
	builder.WriteString(", ")
	builder.WriteString("activity_total=")
	builder.WriteString(fmt.Sprintf("%v", sp.ActivityTotal))
	builder.WriteByte(')')
	return builder.String()
}

// SeriesPoints is a parsable slice of SeriesPoint.
type SeriesPoints []*SeriesPoint
