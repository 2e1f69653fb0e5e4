// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/performancerow"
	"github.com/abelsk/learnpulse/ent/predicate"
)

// PerformanceRowUpdate is the builder for updating PerformanceRow entities.
type PerformanceRowUpdate struct {
	config
	hooks    []Hook
	mutation *PerformanceRowMutation
}

// Where appends a list predicates to the PerformanceRowUpdate builder.
func (pru *PerformanceRowUpdate) Where(ps ...predicate.PerformanceRow) *PerformanceRowUpdate {
	pru.mutation.Where(ps...)
	return pru
}

// SetUserID sets the "user_id" field.
func (pru *PerformanceRowUpdate) SetUserID(s string) *PerformanceRowUpdate {
	pru.mutation.SetUserID(s)
	return pru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableUserID(s *string) *PerformanceRowUpdate {
	if s != nil {
		pru.SetUserID(*s)
	}
	return pru
}

// SetSegment sets the "segment" field.
func (pru *PerformanceRowUpdate) SetSegment(s string) *PerformanceRowUpdate {
	pru.mutation.SetSegment(s)
	return pru
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableSegment(s *string) *PerformanceRowUpdate {
	if s != nil {
		pru.SetSegment(*s)
	}
	return pru
}

// SetTotalPct sets the "total_pct" field.
func (pru *PerformanceRowUpdate) SetTotalPct(f float64) *PerformanceRowUpdate {
	pru.mutation.ResetTotalPct()
	pru.mutation.SetTotalPct(f)
	return pru
}

// SetNillableTotalPct sets the "total_pct" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableTotalPct(f *float64) *PerformanceRowUpdate {
	if f != nil {
		pru.SetTotalPct(*f)
	}
	return pru
}

// AddTotalPct adds f to the "total_pct" field.
func (pru *PerformanceRowUpdate) AddTotalPct(f float64) *PerformanceRowUpdate {
	pru.mutation.AddTotalPct(f)
	return pru
}

// SetSuccessRate sets the "success_rate" field.
func (pru *PerformanceRowUpdate) SetSuccessRate(f float64) *PerformanceRowUpdate {
	pru.mutation.ResetSuccessRate()
	pru.mutation.SetSuccessRate(f)
	return pru
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableSuccessRate(f *float64) *PerformanceRowUpdate {
	if f != nil {
		pru.SetSuccessRate(*f)
	}
	return pru
}

// AddSuccessRate adds f to the "success_rate" field.
func (pru *PerformanceRowUpdate) AddSuccessRate(f float64) *PerformanceRowUpdate {
	pru.mutation.AddSuccessRate(f)
	return pru
}

// SetConsistencyIndex sets the "consistency_index" field.
func (pru *PerformanceRowUpdate) SetConsistencyIndex(f float64) *PerformanceRowUpdate {
	pru.mutation.ResetConsistencyIndex()
	pru.mutation.SetConsistencyIndex(f)
	return pru
}

// SetNillableConsistencyIndex sets the "consistency_index" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableConsistencyIndex(f *float64) *PerformanceRowUpdate {
	if f != nil {
		pru.SetConsistencyIndex(*f)
	}
	return pru
}

// AddConsistencyIndex adds f to the "consistency_index" field.
func (pru *PerformanceRowUpdate) AddConsistencyIndex(f float64) *PerformanceRowUpdate {
	pru.mutation.AddConsistencyIndex(f)
	return pru
}

// SetStruggleIndex sets the "struggle_index" field.
func (pru *PerformanceRowUpdate) SetStruggleIndex(f float64) *PerformanceRowUpdate {
	pru.mutation.ResetStruggleIndex()
	pru.mutation.SetStruggleIndex(f)
	return pru
}

// SetNillableStruggleIndex sets the "struggle_index" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableStruggleIndex(f *float64) *PerformanceRowUpdate {
	if f != nil {
		pru.SetStruggleIndex(*f)
	}
	return pru
}

// AddStruggleIndex adds f to the "struggle_index" field.
func (pru *PerformanceRowUpdate) AddStruggleIndex(f float64) *PerformanceRowUpdate {
	pru.mutation.AddStruggleIndex(f)
	return pru
}

// SetEffortIndex sets the "effort_index" field.
func (pru *PerformanceRowUpdate) SetEffortIndex(f float64) *PerformanceRowUpdate {
	pru.mutation.ResetEffortIndex()
	pru.mutation.SetEffortIndex(f)
	return pru
}

// SetNillableEffortIndex sets the "effort_index" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableEffortIndex(f *float64) *PerformanceRowUpdate {
	if f != nil {
		pru.SetEffortIndex(*f)
	}
	return pru
}

// AddEffortIndex adds f to the "effort_index" field.
func (pru *PerformanceRowUpdate) AddEffortIndex(f float64) *PerformanceRowUpdate {
	pru.mutation.AddEffortIndex(f)
	return pru
}

// SetActiveDaysRatio sets the "active_days_ratio" field.
func (pru *PerformanceRowUpdate) SetActiveDaysRatio(f float64) *PerformanceRowUpdate {
	pru.mutation.ResetActiveDaysRatio()
	pru.mutation.SetActiveDaysRatio(f)
	return pru
}

// SetNillableActiveDaysRatio sets the "active_days_ratio" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableActiveDaysRatio(f *float64) *PerformanceRowUpdate {
	if f != nil {
		pru.SetActiveDaysRatio(*f)
	}
	return pru
}

// AddActiveDaysRatio adds f to the "active_days_ratio" field.
func (pru *PerformanceRowUpdate) AddActiveDaysRatio(f float64) *PerformanceRowUpdate {
	pru.mutation.AddActiveDaysRatio(f)
	return pru
}

// SetMeetingsAttendedPct sets the "meetings_attended_pct" field.
func (pru *PerformanceRowUpdate) SetMeetingsAttendedPct(f float64) *PerformanceRowUpdate {
	pru.mutation.ResetMeetingsAttendedPct()
	pru.mutation.SetMeetingsAttendedPct(f)
	return pru
}

// SetNillableMeetingsAttendedPct sets the "meetings_attended_pct" field if the given value is not nil.
func (pru *PerformanceRowUpdate) SetNillableMeetingsAttendedPct(f *float64) *PerformanceRowUpdate {
	if f != nil {
		pru.SetMeetingsAttendedPct(*f)
	}
	return pru
}

// AddMeetingsAttendedPct adds f to the "meetings_attended_pct" field.
func (pru *PerformanceRowUpdate) AddMeetingsAttendedPct(f float64) *PerformanceRowUpdate {
	pru.mutation.AddMeetingsAttendedPct(f)
	return pru
}

// Mutation returns the PerformanceRowMutation object of the builder.
func (pru *PerformanceRowUpdate) Mutation() *PerformanceRowMutation {
	return pru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pru *PerformanceRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pru.sqlSave, pru.mutation, pru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pru *PerformanceRowUpdate) SaveX(ctx context.Context) int {
	affected, err := pru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pru *PerformanceRowUpdate) Exec(ctx context.Context) error {
	_, err := pru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pru *PerformanceRowUpdate) ExecX(ctx context.Context) {
	if err := pru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pru *PerformanceRowUpdate) check() error {
	if v, ok := pru.mutation.UserID(); ok {
		if err := performancerow.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceRow.user_id": %w`, err)}
		}
	}
	return nil
}

func (pru *PerformanceRowUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancerow.Table, performancerow.Columns, sqlgraph.NewFieldSpec(performancerow.FieldID, field.TypeInt))
	if ps := pru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pru.mutation.UserID(); ok {
		_spec.SetField(performancerow.FieldUserID, field.TypeString, value)
	}
	if value, ok := pru.mutation.Segment(); ok {
		_spec.SetField(performancerow.FieldSegment, field.TypeString, value)
	}
	if value, ok := pru.mutation.TotalPct(); ok {
		_spec.SetField(performancerow.FieldTotalPct, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.AddedTotalPct(); ok {
		_spec.AddField(performancerow.FieldTotalPct, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.SuccessRate(); ok {
		_spec.SetField(performancerow.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.AddedSuccessRate(); ok {
		_spec.AddField(performancerow.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.ConsistencyIndex(); ok {
		_spec.SetField(performancerow.FieldConsistencyIndex, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.AddedConsistencyIndex(); ok {
		_spec.AddField(performancerow.FieldConsistencyIndex, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.StruggleIndex(); ok {
		_spec.SetField(performancerow.FieldStruggleIndex, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.AddedStruggleIndex(); ok {
		_spec.AddField(performancerow.FieldStruggleIndex, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.EffortIndex(); ok {
		_spec.SetField(performancerow.FieldEffortIndex, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.AddedEffortIndex(); ok {
		_spec.AddField(performancerow.FieldEffortIndex, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.ActiveDaysRatio(); ok {
		_spec.SetField(performancerow.FieldActiveDaysRatio, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.AddedActiveDaysRatio(); ok {
		_spec.AddField(performancerow.FieldActiveDaysRatio, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.MeetingsAttendedPct(); ok {
		_spec.SetField(performancerow.FieldMeetingsAttendedPct, field.TypeFloat64, value)
	}
	if value, ok := pru.mutation.AddedMeetingsAttendedPct(); ok {
		_spec.AddField(performancerow.FieldMeetingsAttendedPct, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancerow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pru.mutation.done = true
	return n, nil
}

// PerformanceRowUpdateOne is the builder for updating a single PerformanceRow entity.
type PerformanceRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PerformanceRowMutation
}

// SetUserID sets the "user_id" field.
func (pruo *PerformanceRowUpdateOne) SetUserID(s string) *PerformanceRowUpdateOne {
	pruo.mutation.SetUserID(s)
	return pruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableUserID(s *string) *PerformanceRowUpdateOne {
	if s != nil {
		pruo.SetUserID(*s)
	}
	return pruo
}

// SetSegment sets the "segment" field.
func (pruo *PerformanceRowUpdateOne) SetSegment(s string) *PerformanceRowUpdateOne {
	pruo.mutation.SetSegment(s)
	return pruo
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableSegment(s *string) *PerformanceRowUpdateOne {
	if s != nil {
		pruo.SetSegment(*s)
	}
	return pruo
}

// SetTotalPct sets the "total_pct" field.
func (pruo *PerformanceRowUpdateOne) SetTotalPct(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.ResetTotalPct()
	pruo.mutation.SetTotalPct(f)
	return pruo
}

// SetNillableTotalPct sets the "total_pct" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableTotalPct(f *float64) *PerformanceRowUpdateOne {
	if f != nil {
		pruo.SetTotalPct(*f)
	}
	return pruo
}

// AddTotalPct adds f to the "total_pct" field.
func (pruo *PerformanceRowUpdateOne) AddTotalPct(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.AddTotalPct(f)
	return pruo
}

// SetSuccessRate sets the "success_rate" field.
func (pruo *PerformanceRowUpdateOne) SetSuccessRate(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.ResetSuccessRate()
	pruo.mutation.SetSuccessRate(f)
	return pruo
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableSuccessRate(f *float64) *PerformanceRowUpdateOne {
	if f != nil {
		pruo.SetSuccessRate(*f)
	}
	return pruo
}

// AddSuccessRate adds f to the "success_rate" field.
func (pruo *PerformanceRowUpdateOne) AddSuccessRate(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.AddSuccessRate(f)
	return pruo
}

// SetConsistencyIndex sets the "consistency_index" field.
func (pruo *PerformanceRowUpdateOne) SetConsistencyIndex(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.ResetConsistencyIndex()
	pruo.mutation.SetConsistencyIndex(f)
	return pruo
}

// SetNillableConsistencyIndex sets the "consistency_index" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableConsistencyIndex(f *float64) *PerformanceRowUpdateOne {
	if f != nil {
		pruo.SetConsistencyIndex(*f)
	}
	return pruo
}

// AddConsistencyIndex adds f to the "consistency_index" field.
func (pruo *PerformanceRowUpdateOne) AddConsistencyIndex(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.AddConsistencyIndex(f)
	return pruo
}

// SetStruggleIndex sets the "struggle_index" field.
func (pruo *PerformanceRowUpdateOne) SetStruggleIndex(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.ResetStruggleIndex()
	pruo.mutation.SetStruggleIndex(f)
	return pruo
}

// SetNillableStruggleIndex sets the "struggle_index" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableStruggleIndex(f *float64) *PerformanceRowUpdateOne {
	if f != nil {
		pruo.SetStruggleIndex(*f)
	}
	return pruo
}

// AddStruggleIndex adds f to the "struggle_index" field.
func (pruo *PerformanceRowUpdateOne) AddStruggleIndex(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.AddStruggleIndex(f)
	return pruo
}

// SetEffortIndex sets the "effort_index" field.
func (pruo *PerformanceRowUpdateOne) SetEffortIndex(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.ResetEffortIndex()
	pruo.mutation.SetEffortIndex(f)
	return pruo
}

// SetNillableEffortIndex sets the "effort_index" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableEffortIndex(f *float64) *PerformanceRowUpdateOne {
	if f != nil {
		pruo.SetEffortIndex(*f)
	}
	return pruo
}

// AddEffortIndex adds f to the "effort_index" field.
func (pruo *PerformanceRowUpdateOne) AddEffortIndex(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.AddEffortIndex(f)
	return pruo
}

// SetActiveDaysRatio sets the "active_days_ratio" field.
func (pruo *PerformanceRowUpdateOne) SetActiveDaysRatio(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.ResetActiveDaysRatio()
	pruo.mutation.SetActiveDaysRatio(f)
	return pruo
}

// SetNillableActiveDaysRatio sets the "active_days_ratio" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableActiveDaysRatio(f *float64) *PerformanceRowUpdateOne {
	if f != nil {
		pruo.SetActiveDaysRatio(*f)
	}
	return pruo
}

// AddActiveDaysRatio adds f to the "active_days_ratio" field.
func (pruo *PerformanceRowUpdateOne) AddActiveDaysRatio(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.AddActiveDaysRatio(f)
	return pruo
}

// SetMeetingsAttendedPct sets the "meetings_attended_pct" field.
func (pruo *PerformanceRowUpdateOne) SetMeetingsAttendedPct(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.ResetMeetingsAttendedPct()
	pruo.mutation.SetMeetingsAttendedPct(f)
	return pruo
}

// SetNillableMeetingsAttendedPct sets the "meetings_attended_pct" field if the given value is not nil.
func (pruo *PerformanceRowUpdateOne) SetNillableMeetingsAttendedPct(f *float64) *PerformanceRowUpdateOne {
	if f != nil {
		pruo.SetMeetingsAttendedPct(*f)
	}
	return pruo
}

// AddMeetingsAttendedPct adds f to the "meetings_attended_pct" field.
func (pruo *PerformanceRowUpdateOne) AddMeetingsAttendedPct(f float64) *PerformanceRowUpdateOne {
	pruo.mutation.AddMeetingsAttendedPct(f)
	return pruo
}

// Mutation returns the PerformanceRowMutation object of the builder.
func (pruo *PerformanceRowUpdateOne) Mutation() *PerformanceRowMutation {
	return pruo.mutation
}

// Where appends a list predicates to the PerformanceRowUpdate builder.
func (pruo *PerformanceRowUpdateOne) Where(ps ...predicate.PerformanceRow) *PerformanceRowUpdateOne {
	pruo.mutation.Where(ps...)
	return pruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pruo *PerformanceRowUpdateOne) Select(field string, fields ...string) *PerformanceRowUpdateOne {
	pruo.fields = append([]string{field}, fields...)
	return pruo
}

// Save executes the query and returns the updated PerformanceRow entity.
func (pruo *PerformanceRowUpdateOne) Save(ctx context.Context) (*PerformanceRow, error) {
	return withHooks(ctx, pruo.sqlSave, pruo.mutation, pruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pruo *PerformanceRowUpdateOne) SaveX(ctx context.Context) *PerformanceRow {
	node, err := pruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pruo *PerformanceRowUpdateOne) Exec(ctx context.Context) error {
	_, err := pruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pruo *PerformanceRowUpdateOne) ExecX(ctx context.Context) {
	if err := pruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pruo *PerformanceRowUpdateOne) check() error {
	if v, ok := pruo.mutation.UserID(); ok {
		if err := performancerow.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceRow.user_id": %w`, err)}
		}
	}
	return nil
}

func (pruo *PerformanceRowUpdateOne) sqlSave(ctx context.Context) (_node *PerformanceRow, err error) {
	if err := pruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(performancerow.Table, performancerow.Columns, sqlgraph.NewFieldSpec(performancerow.FieldID, field.TypeInt))
	id, ok := pruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PerformanceRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, performancerow.FieldID)
		for _, f := range fields {
			if !performancerow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != performancerow.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pruo.mutation.UserID(); ok {
		_spec.SetField(performancerow.FieldUserID, field.TypeString, value)
	}
	if value, ok := pruo.mutation.Segment(); ok {
		_spec.SetField(performancerow.FieldSegment, field.TypeString, value)
	}
	if value, ok := pruo.mutation.TotalPct(); ok {
		_spec.SetField(performancerow.FieldTotalPct, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.AddedTotalPct(); ok {
		_spec.AddField(performancerow.FieldTotalPct, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.SuccessRate(); ok {
		_spec.SetField(performancerow.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.AddedSuccessRate(); ok {
		_spec.AddField(performancerow.FieldSuccessRate, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.ConsistencyIndex(); ok {
		_spec.SetField(performancerow.FieldConsistencyIndex, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.AddedConsistencyIndex(); ok {
		_spec.AddField(performancerow.FieldConsistencyIndex, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.StruggleIndex(); ok {
		_spec.SetField(performancerow.FieldStruggleIndex, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.AddedStruggleIndex(); ok {
		_spec.AddField(performancerow.FieldStruggleIndex, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.EffortIndex(); ok {
		_spec.SetField(performancerow.FieldEffortIndex, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.AddedEffortIndex(); ok {
		_spec.AddField(performancerow.FieldEffortIndex, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.ActiveDaysRatio(); ok {
		_spec.SetField(performancerow.FieldActiveDaysRatio, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.AddedActiveDaysRatio(); ok {
		_spec.AddField(performancerow.FieldActiveDaysRatio, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.MeetingsAttendedPct(); ok {
		_spec.SetField(performancerow.FieldMeetingsAttendedPct, field.TypeFloat64, value)
	}
	if value, ok := pruo.mutation.AddedMeetingsAttendedPct(); ok {
		_spec.AddField(performancerow.FieldMeetingsAttendedPct, field.TypeFloat64, value)
	}
	_node = &PerformanceRow{config: pruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{performancerow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pruo.mutation.done = true
	return _node, nil
}
