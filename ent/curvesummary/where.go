// Code generated by ent, DO NOT EDIT.

package curvesummary

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abelsk/learnpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldUserID, v))
}

// EasingLabel applies equality check predicate on the "easing_label" field. It's identical to EasingLabelEQ.
func EasingLabel(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldEasingLabel, v))
}

// FrontloadIndex applies equality check predicate on the "frontload_index" field. It's identical to FrontloadIndexEQ.
func FrontloadIndex(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldFrontloadIndex, v))
}

// Consistency applies equality check predicate on the "consistency" field. It's identical to ConsistencyEQ.
func Consistency(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldConsistency, v))
}

// Burstiness applies equality check predicate on the "burstiness" field. It's identical to BurstinessEQ.
func Burstiness(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldBurstiness, v))
}

// T25 applies equality check predicate on the "t25" field. It's identical to T25EQ.
func T25(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldT25, v))
}

// T50 applies equality check predicate on the "t50" field. It's identical to T50EQ.
func T50(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldT50, v))
}

// T75 applies equality check predicate on the "t75" field. It's identical to T75EQ.
func T75(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldT75, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldContainsFold(FieldUserID, v))
}

// EasingLabelEQ applies the EQ predicate on the "easing_label" field.
func EasingLabelEQ(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldEasingLabel, v))
}

// EasingLabelNEQ applies the NEQ predicate on the "easing_label" field.
func EasingLabelNEQ(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldEasingLabel, v))
}

// EasingLabelIn applies the In predicate on the "easing_label" field.
func EasingLabelIn(vs ...string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldEasingLabel, vs...))
}

// EasingLabelNotIn applies the NotIn predicate on the "easing_label" field.
func EasingLabelNotIn(vs ...string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldEasingLabel, vs...))
}

// EasingLabelGT applies the GT predicate on the "easing_label" field.
func EasingLabelGT(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldEasingLabel, v))
}

// EasingLabelGTE applies the GTE predicate on the "easing_label" field.
func EasingLabelGTE(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldEasingLabel, v))
}

// EasingLabelLT applies the LT predicate on the "easing_label" field.
func EasingLabelLT(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldEasingLabel, v))
}

// EasingLabelLTE applies the LTE predicate on the "easing_label" field.
func EasingLabelLTE(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldEasingLabel, v))
}

// EasingLabelContains applies the Contains predicate on the "easing_label" field.
func EasingLabelContains(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldContains(FieldEasingLabel, v))
}

// EasingLabelHasPrefix applies the HasPrefix predicate on the "easing_label" field.
func EasingLabelHasPrefix(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldHasPrefix(FieldEasingLabel, v))
}

// EasingLabelHasSuffix applies the HasSuffix predicate on the "easing_label" field.
func EasingLabelHasSuffix(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldHasSuffix(FieldEasingLabel, v))
}

// EasingLabelEqualFold applies the EqualFold predicate on the "easing_label" field.
func EasingLabelEqualFold(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEqualFold(FieldEasingLabel, v))
}

// EasingLabelContainsFold applies the ContainsFold predicate on the "easing_label" field.
func EasingLabelContainsFold(v string) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldContainsFold(FieldEasingLabel, v))
}

// FrontloadIndexEQ applies the EQ predicate on the "frontload_index" field.
func FrontloadIndexEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldFrontloadIndex, v))
}

// FrontloadIndexNEQ applies the NEQ predicate on the "frontload_index" field.
func FrontloadIndexNEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldFrontloadIndex, v))
}

// FrontloadIndexIn applies the In predicate on the "frontload_index" field.
func FrontloadIndexIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldFrontloadIndex, vs...))
}

// FrontloadIndexNotIn applies the NotIn predicate on the "frontload_index" field.
func FrontloadIndexNotIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldFrontloadIndex, vs...))
}

// FrontloadIndexGT applies the GT predicate on the "frontload_index" field.
func FrontloadIndexGT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldFrontloadIndex, v))
}

// FrontloadIndexGTE applies the GTE predicate on the "frontload_index" field.
func FrontloadIndexGTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldFrontloadIndex, v))
}

// FrontloadIndexLT applies the LT predicate on the "frontload_index" field.
func FrontloadIndexLT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldFrontloadIndex, v))
}

// FrontloadIndexLTE applies the LTE predicate on the "frontload_index" field.
func FrontloadIndexLTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldFrontloadIndex, v))
}

// ConsistencyEQ applies the EQ predicate on the "consistency" field.
func ConsistencyEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldConsistency, v))
}

// ConsistencyNEQ applies the NEQ predicate on the "consistency" field.
func ConsistencyNEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldConsistency, v))
}

// ConsistencyIn applies the In predicate on the "consistency" field.
func ConsistencyIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldConsistency, vs...))
}

// ConsistencyNotIn applies the NotIn predicate on the "consistency" field.
func ConsistencyNotIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldConsistency, vs...))
}

// ConsistencyGT applies the GT predicate on the "consistency" field.
func ConsistencyGT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldConsistency, v))
}

// ConsistencyGTE applies the GTE predicate on the "consistency" field.
func ConsistencyGTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldConsistency, v))
}

// ConsistencyLT applies the LT predicate on the "consistency" field.
func ConsistencyLT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldConsistency, v))
}

// ConsistencyLTE applies the LTE predicate on the "consistency" field.
func ConsistencyLTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldConsistency, v))
}

// BurstinessEQ applies the EQ predicate on the "burstiness" field.
func BurstinessEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldBurstiness, v))
}

// BurstinessNEQ applies the NEQ predicate on the "burstiness" field.
func BurstinessNEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldBurstiness, v))
}

// BurstinessIn applies the In predicate on the "burstiness" field.
func BurstinessIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldBurstiness, vs...))
}

// BurstinessNotIn applies the NotIn predicate on the "burstiness" field.
func BurstinessNotIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldBurstiness, vs...))
}

// BurstinessGT applies the GT predicate on the "burstiness" field.
func BurstinessGT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldBurstiness, v))
}

// BurstinessGTE applies the GTE predicate on the "burstiness" field.
func BurstinessGTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldBurstiness, v))
}

// BurstinessLT applies the LT predicate on the "burstiness" field.
func BurstinessLT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldBurstiness, v))
}

// BurstinessLTE applies the LTE predicate on the "burstiness" field.
func BurstinessLTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldBurstiness, v))
}

// T25EQ applies the EQ predicate on the "t25" field.
func T25EQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldT25, v))
}

// T25NEQ applies the NEQ predicate on the "t25" field.
func T25NEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldT25, v))
}

// T25In applies the In predicate on the "t25" field.
func T25In(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldT25, vs...))
}

// T25NotIn applies the NotIn predicate on the "t25" field.
func T25NotIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldT25, vs...))
}

// T25GT applies the GT predicate on the "t25" field.
func T25GT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldT25, v))
}

// T25GTE applies the GTE predicate on the "t25" field.
func T25GTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldT25, v))
}

// T25LT applies the LT predicate on the "t25" field.
func T25LT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldT25, v))
}

// T25LTE applies the LTE predicate on the "t25" field.
func T25LTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldT25, v))
}

// T50EQ applies the EQ predicate on the "t50" field.
func T50EQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldT50, v))
}

// T50NEQ applies the NEQ predicate on the "t50" field.
func T50NEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldT50, v))
}

// T50In applies the In predicate on the "t50" field.
func T50In(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldT50, vs...))
}

// T50NotIn applies the NotIn predicate on the "t50" field.
func T50NotIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldT50, vs...))
}

// T50GT applies the GT predicate on the "t50" field.
func T50GT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldT50, v))
}

// T50GTE applies the GTE predicate on the "t50" field.
func T50GTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldT50, v))
}

// T50LT applies the LT predicate on the "t50" field.
func T50LT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldT50, v))
}

// T50LTE applies the LTE predicate on the "t50" field.
func T50LTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldT50, v))
}

// T75EQ applies the EQ predicate on the "t75" field.
func T75EQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldEQ(FieldT75, v))
}

// T75NEQ applies the NEQ predicate on the "t75" field.
func T75NEQ(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNEQ(FieldT75, v))
}

// T75In applies the In predicate on the "t75" field.
func T75In(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldIn(FieldT75, vs...))
}

// T75NotIn applies the NotIn predicate on the "t75" field.
func T75NotIn(vs ...float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldNotIn(FieldT75, vs...))
}

// T75GT applies the GT predicate on the "t75" field.
func T75GT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGT(FieldT75, v))
}

// T75GTE applies the GTE predicate on the "t75" field.
func T75GTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldGTE(FieldT75, v))
}

// T75LT applies the LT predicate on the "t75" field.
func T75LT(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLT(FieldT75, v))
}

// T75LTE applies the LTE predicate on the "t75" field.
func T75LTE(v float64) predicate.CurveSummary {
	return predicate.CurveSummary(sql.FieldLTE(FieldT75, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CurveSummary) predicate.CurveSummary {
	return predicate.CurveSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CurveSummary) predicate.CurveSummary {
	return predicate.CurveSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CurveSummary) predicate.CurveSummary {
	return predicate.CurveSummary(sql.NotPredicates(p))
}
