// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/performancerow"
)

// PerformanceRowCreate is the builder for creating a PerformanceRow entity.
type PerformanceRowCreate struct {
	config
	mutation *PerformanceRowMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (prc *PerformanceRowCreate) SetUserID(s string) *PerformanceRowCreate {
	prc.mutation.SetUserID(s)
	return prc
}

// SetSegment sets the "segment" field.
func (prc *PerformanceRowCreate) SetSegment(s string) *PerformanceRowCreate {
	prc.mutation.SetSegment(s)
	return prc
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (prc *PerformanceRowCreate) SetNillableSegment(s *string) *PerformanceRowCreate {
	if s != nil {
		prc.SetSegment(*s)
	}
	return prc
}

// SetTotalPct sets the "total_pct" field.
func (prc *PerformanceRowCreate) SetTotalPct(f float64) *PerformanceRowCreate {
	prc.mutation.SetTotalPct(f)
	return prc
}

// SetSuccessRate sets the "success_rate" field.
func (prc *PerformanceRowCreate) SetSuccessRate(f float64) *PerformanceRowCreate {
	prc.mutation.SetSuccessRate(f)
	return prc
}

// SetConsistencyIndex sets the "consistency_index" field.
func (prc *PerformanceRowCreate) SetConsistencyIndex(f float64) *PerformanceRowCreate {
	prc.mutation.SetConsistencyIndex(f)
	return prc
}

// SetNillableConsistencyIndex sets the "consistency_index" field if the given value is not nil.
func (prc *PerformanceRowCreate) SetNillableConsistencyIndex(f *float64) *PerformanceRowCreate {
	if f != nil {
		prc.SetConsistencyIndex(*f)
	}
	return prc
}

// SetStruggleIndex sets the "struggle_index" field.
func (prc *PerformanceRowCreate) SetStruggleIndex(f float64) *PerformanceRowCreate {
	prc.mutation.SetStruggleIndex(f)
	return prc
}

// SetNillableStruggleIndex sets the "struggle_index" field if the given value is not nil.
func (prc *PerformanceRowCreate) SetNillableStruggleIndex(f *float64) *PerformanceRowCreate {
	if f != nil {
		prc.SetStruggleIndex(*f)
	}
	return prc
}

// SetEffortIndex sets the "effort_index" field.
func (prc *PerformanceRowCreate) SetEffortIndex(f float64) *PerformanceRowCreate {
	prc.mutation.SetEffortIndex(f)
	return prc
}

// SetNillableEffortIndex sets the "effort_index" field if the given value is not nil.
func (prc *PerformanceRowCreate) SetNillableEffortIndex(f *float64) *PerformanceRowCreate {
	if f != nil {
		prc.SetEffortIndex(*f)
	}
	return prc
}

// SetActiveDaysRatio sets the "active_days_ratio" field.
func (prc *PerformanceRowCreate) SetActiveDaysRatio(f float64) *PerformanceRowCreate {
	prc.mutation.SetActiveDaysRatio(f)
	return prc
}

// SetNillableActiveDaysRatio sets the "active_days_ratio" field if the given value is not nil.
func (prc *PerformanceRowCreate) SetNillableActiveDaysRatio(f *float64) *PerformanceRowCreate {
	if f != nil {
		prc.SetActiveDaysRatio(*f)
	}
	return prc
}

// SetMeetingsAttendedPct sets the "meetings_attended_pct" field.
func (prc *PerformanceRowCreate) SetMeetingsAttendedPct(f float64) *PerformanceRowCreate {
	prc.mutation.SetMeetingsAttendedPct(f)
	return prc
}

// SetNillableMeetingsAttendedPct sets the "meetings_attended_pct" field if the given value is not nil.
func (prc *PerformanceRowCreate) SetNillableMeetingsAttendedPct(f *float64) *PerformanceRowCreate {
	if f != nil {
		prc.SetMeetingsAttendedPct(*f)
	}
	return prc
}

// Mutation returns the PerformanceRowMutation object of the builder.
func (prc *PerformanceRowCreate) Mutation() *PerformanceRowMutation {
	return prc.mutation
}

// Save creates the PerformanceRow in the database.
func (prc *PerformanceRowCreate) Save(ctx context.Context) (*PerformanceRow, error) {
	prc.defaults()
	return withHooks(ctx, prc.sqlSave, prc.mutation, prc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (prc *PerformanceRowCreate) SaveX(ctx context.Context) *PerformanceRow {
	v, err := prc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (prc *PerformanceRowCreate) Exec(ctx context.Context) error {
	_, err := prc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (prc *PerformanceRowCreate) ExecX(ctx context.Context) {
	if err := prc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (prc *PerformanceRowCreate) defaults() {
	if _, ok := prc.mutation.Segment(); !ok {
		v := performancerow.DefaultSegment
		prc.mutation.SetSegment(v)
	}
	if _, ok := prc.mutation.ConsistencyIndex(); !ok {
		v := performancerow.DefaultConsistencyIndex
		prc.mutation.SetConsistencyIndex(v)
	}
	if _, ok := prc.mutation.StruggleIndex(); !ok {
		v := performancerow.DefaultStruggleIndex
		prc.mutation.SetStruggleIndex(v)
	}
	if _, ok := prc.mutation.EffortIndex(); !ok {
		v := performancerow.DefaultEffortIndex
		prc.mutation.SetEffortIndex(v)
	}
	if _, ok := prc.mutation.ActiveDaysRatio(); !ok {
		v := performancerow.DefaultActiveDaysRatio
		prc.mutation.SetActiveDaysRatio(v)
	}
	if _, ok := prc.mutation.MeetingsAttendedPct(); !ok {
		v := performancerow.DefaultMeetingsAttendedPct
		prc.mutation.SetMeetingsAttendedPct(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (prc *PerformanceRowCreate) check() error {
	if _, ok := prc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PerformanceRow.user_id"`)}
	}
	if v, ok := prc.mutation.UserID(); ok {
		if err := performancerow.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PerformanceRow.user_id": %w`, err)}
		}
	}
	if _, ok := prc.mutation.Segment(); !ok {
		return &ValidationError{Name: "segment", err: errors.New(`ent: missing required field "PerformanceRow.segment"`)}
	}
	if _, ok := prc.mutation.TotalPct(); !ok {
		return &ValidationError{Name: "total_pct", err: errors.New(`ent: missing required field "PerformanceRow.total_pct"`)}
	}
	if _, ok := prc.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "PerformanceRow.success_rate"`)}
	}
	if _, ok := prc.mutation.ConsistencyIndex(); !ok {
		return &ValidationError{Name: "consistency_index", err: errors.New(`ent: missing required field "PerformanceRow.consistency_index"`)}
	}
	if _, ok := prc.mutation.StruggleIndex(); !ok {
		return &ValidationError{Name: "struggle_index", err: errors.New(`ent: missing required field "PerformanceRow.struggle_index"`)}
	}
	if _, ok := prc.mutation.EffortIndex(); !ok {
		return &ValidationError{Name: "effort_index", err: errors.New(`ent: missing required field "PerformanceRow.effort_index"`)}
	}
	if _, ok := prc.mutation.ActiveDaysRatio(); !ok {
		return &ValidationError{Name: "active_days_ratio", err: errors.New(`ent: missing required field "PerformanceRow.active_days_ratio"`)}
	}
	if _, ok := prc.mutation.MeetingsAttendedPct(); !ok {
		return &ValidationError{Name: "meetings_attended_pct", err: errors.New(`ent: missing required field "PerformanceRow.meetings_attended_pct"`)}
	}
	return nil
}

func (prc *PerformanceRowCreate) sqlSave(ctx context.Context) (*PerformanceRow, error) {
	if err := prc.check(); err != nil {
		return nil, err
	}
	_node, _spec := prc.createSpec()
	if err := sqlgraph.CreateNode(ctx, prc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	prc.mutation.id = &_node.ID
	prc.mutation.done = true
	return _node, nil
}

func (prc *PerformanceRowCreate) createSpec() (*PerformanceRow, *sqlgraph.CreateSpec) {
	var (
		_node = &PerformanceRow{config: prc.config}
		_spec = sqlgraph.NewCreateSpec(performancerow.Table, sqlgraph.NewFieldSpec(performancerow.FieldID, field.TypeInt))
	)
	if value, ok := prc.mutation.UserID(); ok {
		_spec.SetField(performancerow.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := prc.mutation.Segment(); ok {
		_spec.SetField(performancerow.FieldSegment, field.TypeString, value)
		_node.Segment = value
	}
	if value, ok := prc.mutation.TotalPct(); ok {
		_spec.SetField(performancerow.FieldTotalPct, field.TypeFloat64, value)
		_node.TotalPct = value
	}
	if value, ok := prc.mutation.SuccessRate(); ok {
		_spec.SetField(performancerow.FieldSuccessRate, field.TypeFloat64, value)
		_node.SuccessRate = value
	}
	if value, ok := prc.mutation.ConsistencyIndex(); ok {
		_spec.SetField(performancerow.FieldConsistencyIndex, field.TypeFloat64, value)
		_node.ConsistencyIndex = value
	}
	if value, ok := prc.mutation.StruggleIndex(); ok {
		_spec.SetField(performancerow.FieldStruggleIndex, field.TypeFloat64, value)
		_node.StruggleIndex = value
	}
	if value, ok := prc.mutation.EffortIndex(); ok {
		_spec.SetField(performancerow.FieldEffortIndex, field.TypeFloat64, value)
		_node.EffortIndex = value
	}
	if value, ok := prc.mutation.ActiveDaysRatio(); ok {
		_spec.SetField(performancerow.FieldActiveDaysRatio, field.TypeFloat64, value)
		_node.ActiveDaysRatio = value
	}
	if value, ok := prc.mutation.MeetingsAttendedPct(); ok {
		_spec.SetField(performancerow.FieldMeetingsAttendedPct, field.TypeFloat64, value)
		_node.MeetingsAttendedPct = value
	}
	return _node, _spec
}

// PerformanceRowCreateBulk is the builder for creating many PerformanceRow entities in bulk.
type PerformanceRowCreateBulk struct {
	config
	err      error
	builders []*PerformanceRowCreate
}

// Save creates the PerformanceRow entities in the database.
func (prcb *PerformanceRowCreateBulk) Save(ctx context.Context) ([]*PerformanceRow, error) {
	if prcb.err != nil {
		return nil, prcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(prcb.builders))
	nodes := make([]*PerformanceRow, len(prcb.builders))
	mutators := make([]Mutator, len(prcb.builders))
	for i := range prcb.builders {
		func(i int, root context.Context) {
			builder := prcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PerformanceRowMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, prcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, prcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, prcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (prcb *PerformanceRowCreateBulk) SaveX(ctx context.Context) []*PerformanceRow {
	v, err := prcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (prcb *PerformanceRowCreateBulk) Exec(ctx context.Context) error {
	_, err := prcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (prcb *PerformanceRowCreateBulk) ExecX(ctx context.Context) {
	if err := prcb.Exec(ctx); err != nil {
		panic(err)
	}
}
