// Code generated by ent, DO NOT EDIT.

package seriespoint

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abelsk/learnpulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEQ(FieldUserID, v))
}

// DateIso applies equality check predicate on the "date_iso" field. It's identical to DateIsoEQ.
func DateIso(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEQ(FieldDateIso, v))
}

// ActivityTotal applies equality check predicate on the "activity_total" field. It's identical to ActivityTotalEQ.
func ActivityTotal(v float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEQ(FieldActivityTotal, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldContainsFold(FieldUserID, v))
}

// DateIsoEQ applies the EQ predicate on the "date_iso" field.
func DateIsoEQ(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEQ(FieldDateIso, v))
}

// DateIsoNEQ applies the NEQ predicate on the "date_iso" field.
func DateIsoNEQ(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldNEQ(FieldDateIso, v))
}

// DateIsoIn applies the In predicate on the "date_iso" field.
func DateIsoIn(vs ...string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldIn(FieldDateIso, vs...))
}

// DateIsoNotIn applies the NotIn predicate on the "date_iso" field.
func DateIsoNotIn(vs ...string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldNotIn(FieldDateIso, vs...))
}

// DateIsoGT applies the GT predicate on the "date_iso" field.
func DateIsoGT(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldGT(FieldDateIso, v))
}

// DateIsoGTE applies the GTE predicate on the "date_iso" field.
func DateIsoGTE(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldGTE(FieldDateIso, v))
}

// DateIsoLT applies the LT predicate on the "date_iso" field.
func DateIsoLT(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldLT(FieldDateIso, v))
}

// DateIsoLTE applies the LTE predicate on the "date_iso" field.
func DateIsoLTE(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldLTE(FieldDateIso, v))
}

// DateIsoContains applies the Contains predicate on the "date_iso" field.
func DateIsoContains(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldContains(FieldDateIso, v))
}

// DateIsoHasPrefix applies the HasPrefix predicate on the "date_iso" field.
func DateIsoHasPrefix(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldHasPrefix(FieldDateIso, v))
}

// DateIsoHasSuffix applies the HasSuffix predicate on the "date_iso" field.
func DateIsoHasSuffix(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldHasSuffix(FieldDateIso, v))
}

// DateIsoEqualFold applies the EqualFold predicate on the "date_iso" field.
func DateIsoEqualFold(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEqualFold(FieldDateIso, v))
}

// DateIsoContainsFold applies the ContainsFold predicate on the "date_iso" field.
func DateIsoContainsFold(v string) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldContainsFold(FieldDateIso, v))
}

// ActivityTotalEQ applies the EQ predicate on the "activity_total" field.
func ActivityTotalEQ(v float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldEQ(FieldActivityTotal, v))
}

// ActivityTotalNEQ applies the NEQ predicate on the "activity_total" field.
func ActivityTotalNEQ(v float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldNEQ(FieldActivityTotal, v))
}

// ActivityTotalIn applies the In predicate on the "activity_total" field.
func ActivityTotalIn(vs ...float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldIn(FieldActivityTotal, vs...))
}

// ActivityTotalNotIn applies the NotIn predicate on the "activity_total" field.
func ActivityTotalNotIn(vs ...float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldNotIn(FieldActivityTotal, vs...))
}

// ActivityTotalGT applies the GT predicate on the "activity_total" field.
func ActivityTotalGT(v float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldGT(FieldActivityTotal, v))
}

// ActivityTotalGTE applies the GTE predicate on the "activity_total" field.
func ActivityTotalGTE(v float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldGTE(FieldActivityTotal, v))
}

// ActivityTotalLT applies the LT predicate on the "activity_total" field.
func ActivityTotalLT(v float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldLT(FieldActivityTotal, v))
}

// ActivityTotalLTE applies the LTE predicate on the "activity_total" field.
func ActivityTotalLTE(v float64) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.FieldLTE(FieldActivityTotal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SeriesPoint) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SeriesPoint) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SeriesPoint) predicate.SeriesPoint {
	return predicate.SeriesPoint(sql.NotPredicates(p))
}
