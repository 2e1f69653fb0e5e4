// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abelsk/learnpulse/ent/curvesummary"
)

// CurveSummary is the model entity for the CurveSummary schema.
type CurveSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// linear, ease, ease-in, ease-out, ease-in-out or no-activity
	EasingLabel string `json:"easing_label,omitempty"`
	// FrontloadIndex holds the value of the "frontload_index" field.
	FrontloadIndex float64 `json:"frontload_index,omitempty"`
	// Consistency holds the value of the "consistency" field.
	Consistency float64 `json:"consistency,omitempty"`
	// Burstiness holds the value of the "burstiness" field.
	Burstiness float64 `json:"burstiness,omitempty"`
	// T25 holds the value of the "t25" field.
	T25 float64 `json:"t25,omitempty"`
	// T50 holds the value of the "t50" field.
	T50 float64 `json:"t50,omitempty"`
	// T75 holds the value of the "t75" field.
	T75          float64 `json:"t75,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CurveSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case curvesummary.FieldFrontloadIndex, curvesummary.FieldConsistency, curvesummary.FieldBurstiness, curvesummary.FieldT25, curvesummary.FieldT50, curvesummary.FieldT75:
			values[i] = new(sql.NullFloat64)
		case curvesummary.FieldID:
			values[i] = new(sql.NullInt64)
		case curvesummary.FieldUserID, curvesummary.FieldEasingLabel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CurveSummary fields.
func (cs *CurveSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case curvesummary.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cs.ID = int(value.Int64)
		case curvesummary.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				cs.UserID = value.String
			}
		case curvesummary.FieldEasingLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field easing_label", values[i])
			} else if value.Valid {
				cs.EasingLabel = value.String
			}
		case curvesummary.FieldFrontloadIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field frontload_index", values[i])
			} else if value.Valid {
				cs.FrontloadIndex = value.Float64
			}
		case curvesummary.FieldConsistency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consistency", values[i])
			} else if value.Valid {
				cs.Consistency = value.Float64
			}
		case curvesummary.FieldBurstiness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field burstiness", values[i])
			} else if value.Valid {
				cs.Burstiness = value.Float64
			}
		case curvesummary.FieldT25:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field t25", values[i])
			} else if value.Valid {
				cs.T25 = value.Float64
			}
		case curvesummary.FieldT50:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field t50", values[i])
			} else if value.Valid {
				cs.T50 = value.Float64
			}
		case curvesummary.FieldT75:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field t75", values[i])
			} else if value.Valid {
				cs.T75 = value.Float64
			}
		default:
			cs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CurveSummary.
// This includes values selected through modifiers, order, etc.
func (cs *CurveSummary) Value(name string) (ent.Value, error) {
	return cs.selectValues.Get(name)
}

// Update returns a builder for updating this CurveSummary.
// Note that you need to call CurveSummary.Unwrap() before calling this method if this CurveSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (cs *CurveSummary) Update() *CurveSummaryUpdateOne {
	return NewCurveSummaryClient(cs.config).UpdateOne(cs)
}

// Unwrap unwraps the CurveSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cs *CurveSummary) Unwrap() *CurveSummary {
	_tx, ok := cs.config.driver.(*txDriver)
	if !ok {
		panic("ent: CurveSummary is not a transactional entity")
	}
	cs.config.driver = _tx.drv
	return cs
}

// String implements the fmt.Stringer.
func (cs *CurveSummary) String() string {
	var builder strings.Builder
	builder.WriteString("CurveSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cs.ID))
	builder.WriteString("user_id=")
	builder.WriteString(cs.UserID)
	builder.WriteString(", ")
	builder.WriteString("easing_label=")
	builder.WriteString(cs.EasingLabel)
	builder.WriteString(", ")
	builder.WriteString("frontload_index=")
	builder.WriteString(fmt.Sprintf("%v", cs.FrontloadIndex))
	builder.WriteString(", ")
	builder.WriteString("consistency=")
	builder.WriteString(fmt.Sprintf("%v", cs.Consistency))
	builder.WriteString(", ")
	builder.WriteString("burstiness=")
	builder.WriteString(fmt.Sprintf("%v", cs.Burstiness))
	builder.WriteString(", ")
	builder.WriteString("t25=")
	builder.WriteString(fmt.Sprintf("%v", cs.T25))
	builder.WriteString(", ")
	builder.WriteString("t50=")
	builder.WriteString(fmt.Sprintf("%v", cs.T50))
	builder.WriteString(", ")
	builder.WriteString("t75=")
	builder.WriteString(fmt.Sprintf("%v", cs.T75))
	builder.WriteByte(')')
	return builder.String()
}

// CurveSummaries is a parsable slice of CurveSummary.
type CurveSummaries []*CurveSummary
