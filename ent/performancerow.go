// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abelsk/learnpulse/ent/performancerow"
)

// PerformanceRow is the model entity for the PerformanceRow schema.
type PerformanceRow struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Segment holds the value of the "segment" field.
	Segment string `json:"segment,omitempty"`
	// TotalPct holds the value of the "total_pct" field.
	TotalPct float64 `json:"total_pct,omitempty"`
	// SuccessRate holds the value of the "success_rate" field.
	SuccessRate float64 `json:"success_rate,omitempty"`
	// ConsistencyIndex holds the value of the "consistency_index" field.
	ConsistencyIndex float64 `json:"consistency_index,omitempty"`
	// StruggleIndex holds the value of the "struggle_index" field.
	StruggleIndex float64 `json:"struggle_index,omitempty"`
	// EffortIndex holds the value of the "effort_index" field.
	EffortIndex float64 `json:"effort_index,omitempty"`
	// ActiveDaysRatio holds the value of the "active_days_ratio" field.
	ActiveDaysRatio float64 `json:"active_days_ratio,omitempty"`
	// MeetingsAttendedPct holds the value of the "meetings_attended_pct" field.
	MeetingsAttendedPct float64 `json:"meetings_attended_pct,omitempty"`
	selectValues        sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PerformanceRow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case performancerow.FieldTotalPct, performancerow.FieldSuccessRate, performancerow.FieldConsistencyIndex, performancerow.FieldStruggleIndex, performancerow.FieldEffortIndex, performancerow.FieldActiveDaysRatio, performancerow.FieldMeetingsAttendedPct:
			values[i] = new(sql.NullFloat64)
		case performancerow.FieldID:
			values[i] = new(sql.NullInt64)
		case performancerow.FieldUserID, performancerow.FieldSegment:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PerformanceRow fields.
func (pr *PerformanceRow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case performancerow.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pr.ID = int(value.Int64)
		case performancerow.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				pr.UserID = value.String
			}
		case performancerow.FieldSegment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field segment", values[i])
			} else if value.Valid {
				pr.Segment = value.String
			}
		case performancerow.FieldTotalPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_pct", values[i])
			} else if value.Valid {
				pr.TotalPct = value.Float64
			}
		case performancerow.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				pr.SuccessRate = value.Float64
			}
		case performancerow.FieldConsistencyIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consistency_index", values[i])
			} else if value.Valid {
				pr.ConsistencyIndex = value.Float64
			}
		case performancerow.FieldStruggleIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field struggle_index", values[i])
			} else if value.Valid {
				pr.StruggleIndex = value.Float64
			}
		case performancerow.FieldEffortIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field effort_index", values[i])
			} else if value.Valid {
				pr.EffortIndex = value.Float64
			}
		case performancerow.FieldActiveDaysRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field active_days_ratio", values[i])
			} else if value.Valid {
				pr.ActiveDaysRatio = value.Float64
			}
		case performancerow.FieldMeetingsAttendedPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field meetings_attended_pct", values[i])
			} else if value.Valid {
				pr.MeetingsAttendedPct = value.Float64
			}
		default:
			pr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PerformanceRow.
// This includes values selected through modifiers, order, etc.
func (pr *PerformanceRow) Value(name string) (ent.Value, error) {
	return pr.selectValues.Get(name)
}

// Update returns a builder for updating this PerformanceRow.
// Note that you need to call PerformanceRow.Unwrap() before calling this method if this PerformanceRow
// was returned from a transaction, and the transaction was committed or rolled back.
func (pr *PerformanceRow) Update() *PerformanceRowUpdateOne {
	return NewPerformanceRowClient(pr.config).UpdateOne(pr)
}

// Unwrap unwraps the PerformanceRow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pr *PerformanceRow) Unwrap() *PerformanceRow {
	_tx, ok := pr.config.driver.(*txDriver)
	if !ok {
		panic("ent: PerformanceRow is not a transactional entity")
	}
	pr.config.driver = _tx.drv
	return pr
}

// String implements the fmt.Stringer.
func (pr *PerformanceRow) String() string {
	var builder strings.Builder
	builder.WriteString("PerformanceRow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pr.ID))
	builder.WriteString("user_id=")
	builder.WriteString(pr.UserID)
	builder.WriteString(", ")
	builder.WriteString("segment=")
	builder.WriteString(pr.Segment)
	builder.WriteString(", ")
	builder.WriteString("total_pct=")
	builder.WriteString(fmt.Sprintf("%v", pr.TotalPct))
	builder.WriteString(", ")
	builder.WriteString("success_rate=")
	builder.WriteString(fmt.Sprintf("%v", pr.SuccessRate))
	builder.WriteString(", ")
	builder.WriteString("consistency_index=")
	builder.WriteString(fmt.Sprintf("%v", pr.ConsistencyIndex))
	builder.WriteString(", ")
	builder.WriteString("struggle_index=")
	builder.WriteString(fmt.Sprintf("%v", pr.StruggleIndex))
	builder.WriteString(", ")
	builder.WriteString("effort_index=")
	builder.WriteString(fmt.Sprintf("%v", pr.EffortIndex))
	builder.WriteString(", ")
	builder.WriteString("active_days_ratio=")
	builder.WriteString(fmt.Sprintf("%v", pr.ActiveDaysRatio))
	builder.WriteString(", ")
	builder.WriteString("meetings_attended_pct=")
	builder.WriteString(fmt.Sprintf("%v", pr.MeetingsAttendedPct))
	builder.WriteByte(')')
	return builder.String()
}

// PerformanceRows is a parsable slice of PerformanceRow.
type PerformanceRows []*PerformanceRow
