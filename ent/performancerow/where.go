// Code generated by ent, DO NOT EDIT.

package performancerow

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abelsk/learnpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldUserID, v))
}

// Segment applies equality check predicate on the "segment" field. It's identical to SegmentEQ.
func Segment(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldSegment, v))
}

// TotalPct applies equality check predicate on the "total_pct" field. It's identical to TotalPctEQ.
func TotalPct(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldTotalPct, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldSuccessRate, v))
}

// ConsistencyIndex applies equality check predicate on the "consistency_index" field. It's identical to ConsistencyIndexEQ.
func ConsistencyIndex(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldConsistencyIndex, v))
}

// StruggleIndex applies equality check predicate on the "struggle_index" field. It's identical to StruggleIndexEQ.
func StruggleIndex(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldStruggleIndex, v))
}

// EffortIndex applies equality check predicate on the "effort_index" field. It's identical to EffortIndexEQ.
func EffortIndex(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldEffortIndex, v))
}

// ActiveDaysRatio applies equality check predicate on the "active_days_ratio" field. It's identical to ActiveDaysRatioEQ.
func ActiveDaysRatio(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldActiveDaysRatio, v))
}

// MeetingsAttendedPct applies equality check predicate on the "meetings_attended_pct" field. It's identical to MeetingsAttendedPctEQ.
func MeetingsAttendedPct(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldMeetingsAttendedPct, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldContainsFold(FieldUserID, v))
}

// SegmentEQ applies the EQ predicate on the "segment" field.
func SegmentEQ(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldSegment, v))
}

// SegmentNEQ applies the NEQ predicate on the "segment" field.
func SegmentNEQ(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldSegment, v))
}

// SegmentIn applies the In predicate on the "segment" field.
func SegmentIn(vs ...string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldSegment, vs...))
}

// SegmentNotIn applies the NotIn predicate on the "segment" field.
func SegmentNotIn(vs ...string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldSegment, vs...))
}

// SegmentGT applies the GT predicate on the "segment" field.
func SegmentGT(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldSegment, v))
}

// SegmentGTE applies the GTE predicate on the "segment" field.
func SegmentGTE(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldSegment, v))
}

// SegmentLT applies the LT predicate on the "segment" field.
func SegmentLT(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldSegment, v))
}

// SegmentLTE applies the LTE predicate on the "segment" field.
func SegmentLTE(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldSegment, v))
}

// SegmentContains applies the Contains predicate on the "segment" field.
func SegmentContains(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldContains(FieldSegment, v))
}

// SegmentHasPrefix applies the HasPrefix predicate on the "segment" field.
func SegmentHasPrefix(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldHasPrefix(FieldSegment, v))
}

// SegmentHasSuffix applies the HasSuffix predicate on the "segment" field.
func SegmentHasSuffix(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldHasSuffix(FieldSegment, v))
}

// SegmentEqualFold applies the EqualFold predicate on the "segment" field.
func SegmentEqualFold(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEqualFold(FieldSegment, v))
}

// SegmentContainsFold applies the ContainsFold predicate on the "segment" field.
func SegmentContainsFold(v string) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldContainsFold(FieldSegment, v))
}

// TotalPctEQ applies the EQ predicate on the "total_pct" field.
func TotalPctEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldTotalPct, v))
}

// TotalPctNEQ applies the NEQ predicate on the "total_pct" field.
func TotalPctNEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldTotalPct, v))
}

// TotalPctIn applies the In predicate on the "total_pct" field.
func TotalPctIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldTotalPct, vs...))
}

// TotalPctNotIn applies the NotIn predicate on the "total_pct" field.
func TotalPctNotIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldTotalPct, vs...))
}

// TotalPctGT applies the GT predicate on the "total_pct" field.
func TotalPctGT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldTotalPct, v))
}

// TotalPctGTE applies the GTE predicate on the "total_pct" field.
func TotalPctGTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldTotalPct, v))
}

// TotalPctLT applies the LT predicate on the "total_pct" field.
func TotalPctLT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldTotalPct, v))
}

// TotalPctLTE applies the LTE predicate on the "total_pct" field.
func TotalPctLTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldTotalPct, v))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldSuccessRate, v))
}

// ConsistencyIndexEQ applies the EQ predicate on the "consistency_index" field.
func ConsistencyIndexEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldConsistencyIndex, v))
}

// ConsistencyIndexNEQ applies the NEQ predicate on the "consistency_index" field.
func ConsistencyIndexNEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldConsistencyIndex, v))
}

// ConsistencyIndexIn applies the In predicate on the "consistency_index" field.
func ConsistencyIndexIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldConsistencyIndex, vs...))
}

// ConsistencyIndexNotIn applies the NotIn predicate on the "consistency_index" field.
func ConsistencyIndexNotIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldConsistencyIndex, vs...))
}

// ConsistencyIndexGT applies the GT predicate on the "consistency_index" field.
func ConsistencyIndexGT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldConsistencyIndex, v))
}

// ConsistencyIndexGTE applies the GTE predicate on the "consistency_index" field.
func ConsistencyIndexGTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldConsistencyIndex, v))
}

// ConsistencyIndexLT applies the LT predicate on the "consistency_index" field.
func ConsistencyIndexLT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldConsistencyIndex, v))
}

// ConsistencyIndexLTE applies the LTE predicate on the "consistency_index" field.
func ConsistencyIndexLTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldConsistencyIndex, v))
}

// StruggleIndexEQ applies the EQ predicate on the "struggle_index" field.
func StruggleIndexEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldStruggleIndex, v))
}

// StruggleIndexNEQ applies the NEQ predicate on the "struggle_index" field.
func StruggleIndexNEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldStruggleIndex, v))
}

// StruggleIndexIn applies the In predicate on the "struggle_index" field.
func StruggleIndexIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldStruggleIndex, vs...))
}

// StruggleIndexNotIn applies the NotIn predicate on the "struggle_index" field.
func StruggleIndexNotIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldStruggleIndex, vs...))
}

// StruggleIndexGT applies the GT predicate on the "struggle_index" field.
func StruggleIndexGT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldStruggleIndex, v))
}

// StruggleIndexGTE applies the GTE predicate on the "struggle_index" field.
func StruggleIndexGTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldStruggleIndex, v))
}

// StruggleIndexLT applies the LT predicate on the "struggle_index" field.
func StruggleIndexLT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldStruggleIndex, v))
}

// StruggleIndexLTE applies the LTE predicate on the "struggle_index" field.
func StruggleIndexLTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldStruggleIndex, v))
}

// EffortIndexEQ applies the EQ predicate on the "effort_index" field.
func EffortIndexEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldEffortIndex, v))
}

// EffortIndexNEQ applies the NEQ predicate on the "effort_index" field.
func EffortIndexNEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldEffortIndex, v))
}

// EffortIndexIn applies the In predicate on the "effort_index" field.
func EffortIndexIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldEffortIndex, vs...))
}

// EffortIndexNotIn applies the NotIn predicate on the "effort_index" field.
func EffortIndexNotIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldEffortIndex, vs...))
}

// EffortIndexGT applies the GT predicate on the "effort_index" field.
func EffortIndexGT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldEffortIndex, v))
}

// EffortIndexGTE applies the GTE predicate on the "effort_index" field.
func EffortIndexGTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldEffortIndex, v))
}

// EffortIndexLT applies the LT predicate on the "effort_index" field.
func EffortIndexLT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldEffortIndex, v))
}

// EffortIndexLTE applies the LTE predicate on the "effort_index" field.
func EffortIndexLTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldEffortIndex, v))
}

// ActiveDaysRatioEQ applies the EQ predicate on the "active_days_ratio" field.
func ActiveDaysRatioEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldActiveDaysRatio, v))
}

// ActiveDaysRatioNEQ applies the NEQ predicate on the "active_days_ratio" field.
func ActiveDaysRatioNEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldActiveDaysRatio, v))
}

// ActiveDaysRatioIn applies the In predicate on the "active_days_ratio" field.
func ActiveDaysRatioIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldActiveDaysRatio, vs...))
}

// ActiveDaysRatioNotIn applies the NotIn predicate on the "active_days_ratio" field.
func ActiveDaysRatioNotIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldActiveDaysRatio, vs...))
}

// ActiveDaysRatioGT applies the GT predicate on the "active_days_ratio" field.
func ActiveDaysRatioGT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldActiveDaysRatio, v))
}

// ActiveDaysRatioGTE applies the GTE predicate on the "active_days_ratio" field.
func ActiveDaysRatioGTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldActiveDaysRatio, v))
}

// ActiveDaysRatioLT applies the LT predicate on the "active_days_ratio" field.
func ActiveDaysRatioLT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldActiveDaysRatio, v))
}

// ActiveDaysRatioLTE applies the LTE predicate on the "active_days_ratio" field.
func ActiveDaysRatioLTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldActiveDaysRatio, v))
}

// MeetingsAttendedPctEQ applies the EQ predicate on the "meetings_attended_pct" field.
func MeetingsAttendedPctEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldEQ(FieldMeetingsAttendedPct, v))
}

// MeetingsAttendedPctNEQ applies the NEQ predicate on the "meetings_attended_pct" field.
func MeetingsAttendedPctNEQ(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNEQ(FieldMeetingsAttendedPct, v))
}

// MeetingsAttendedPctIn applies the In predicate on the "meetings_attended_pct" field.
func MeetingsAttendedPctIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldIn(FieldMeetingsAttendedPct, vs...))
}

// MeetingsAttendedPctNotIn applies the NotIn predicate on the "meetings_attended_pct" field.
func MeetingsAttendedPctNotIn(vs ...float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldNotIn(FieldMeetingsAttendedPct, vs...))
}

// MeetingsAttendedPctGT applies the GT predicate on the "meetings_attended_pct" field.
func MeetingsAttendedPctGT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGT(FieldMeetingsAttendedPct, v))
}

// MeetingsAttendedPctGTE applies the GTE predicate on the "meetings_attended_pct" field.
func MeetingsAttendedPctGTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldGTE(FieldMeetingsAttendedPct, v))
}

// MeetingsAttendedPctLT applies the LT predicate on the "meetings_attended_pct" field.
func MeetingsAttendedPctLT(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLT(FieldMeetingsAttendedPct, v))
}

// MeetingsAttendedPctLTE applies the LTE predicate on the "meetings_attended_pct" field.
func MeetingsAttendedPctLTE(v float64) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.FieldLTE(FieldMeetingsAttendedPct, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PerformanceRow) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PerformanceRow) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PerformanceRow) predicate.PerformanceRow {
	return predicate.PerformanceRow(sql.NotPredicates(p))
}
