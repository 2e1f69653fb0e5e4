// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abelsk/learnpulse/ent/reportrecord"
)

// ReportRecord is the model entity for the ReportRecord schema.
type ReportRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at save time
	ReportID string `json:"report_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	// Serialized analytics.StudentReport
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportrecord.FieldData:
			values[i] = new([]byte)
		case reportrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case reportrecord.FieldReportID, reportrecord.FieldUserID:
			values[i] = new(sql.NullString)
		case reportrecord.FieldGeneratedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportRecord fields.
func (rr *ReportRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			rr.ID = int(value.Int64)
		case reportrecord.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				rr.ReportID = value.String
			}
		case reportrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				rr.UserID = value.String
			}
		case reportrecord.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				rr.GeneratedAt = value.Time
			}
		case reportrecord.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &rr.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			rr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportRecord.
// This includes values selected through modifiers, order, etc.
func (rr *ReportRecord) Value(name string) (ent.Value, error) {
	return rr.selectValues.Get(name)
}

// Update returns a builder for updating this ReportRecord.
// Note that you need to call ReportRecord.Unwrap() before calling this method if this ReportRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (rr *ReportRecord) Update() *ReportRecordUpdateOne {
	return NewReportRecordClient(rr.config).UpdateOne(rr)
}

// Unwrap unwraps the ReportRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rr *ReportRecord) Unwrap() *ReportRecord {
	_tx, ok := rr.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportRecord is not a transactional entity")
	}
	rr.config.driver = _tx.drv
	return rr
}

// String implements the fmt.Stringer.
func (rr *ReportRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ReportRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rr.ID))
	builder.WriteString("report_id=")
	builder.WriteString(rr.ReportID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(rr.UserID)
	builder.WriteString(", ")
	builder.WriteString("generated_at=")
	builder.WriteString(rr.GeneratedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", rr.Data))
	builder.WriteByte(')')
	return builder.String()
}

// ReportRecords is a parsable slice of ReportRecord.
type ReportRecords []*ReportRecord
