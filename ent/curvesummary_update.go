// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/curvesummary"
	"github.com/abelsk/learnpulse/ent/predicate"
)

// CurveSummaryUpdate is the builder for updating CurveSummary entities.
type CurveSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *CurveSummaryMutation
}

// Where appends a list predicates to the CurveSummaryUpdate builder.
func (csu *CurveSummaryUpdate) Where(ps ...predicate.CurveSummary) *CurveSummaryUpdate {
	csu.mutation.Where(ps...)
	return csu
}

// SetUserID sets the "user_id" field.
func (csu *CurveSummaryUpdate) SetUserID(s string) *CurveSummaryUpdate {
	csu.mutation.SetUserID(s)
	return csu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (csu *CurveSummaryUpdate) SetNillableUserID(s *string) *CurveSummaryUpdate {
	if s != nil {
		csu.SetUserID(*s)
	}
	return csu
}

// SetEasingLabel sets the "easing_label" field.
func (csu *CurveSummaryUpdate) SetEasingLabel(s string) *CurveSummaryUpdate {
	csu.mutation.SetEasingLabel(s)
	return csu
}

// SetNillableEasingLabel sets the "easing_label" field if the given value is not nil.
func (csu *CurveSummaryUpdate) SetNillableEasingLabel(s *string) *CurveSummaryUpdate {
	if s != nil {
		csu.SetEasingLabel(*s)
	}
	return csu
}

// SetFrontloadIndex sets the "frontload_index" field.
func (csu *CurveSummaryUpdate) SetFrontloadIndex(f float64) *CurveSummaryUpdate {
	csu.mutation.ResetFrontloadIndex()
	csu.mutation.SetFrontloadIndex(f)
	return csu
}

// SetNillableFrontloadIndex sets the "frontload_index" field if the given value is not nil.
func (csu *CurveSummaryUpdate) SetNillableFrontloadIndex(f *float64) *CurveSummaryUpdate {
	if f != nil {
		csu.SetFrontloadIndex(*f)
	}
	return csu
}

// AddFrontloadIndex adds f to the "frontload_index" field.
func (csu *CurveSummaryUpdate) AddFrontloadIndex(f float64) *CurveSummaryUpdate {
	csu.mutation.AddFrontloadIndex(f)
	return csu
}

// SetConsistency sets the "consistency" field.
func (csu *CurveSummaryUpdate) SetConsistency(f float64) *CurveSummaryUpdate {
	csu.mutation.ResetConsistency()
	csu.mutation.SetConsistency(f)
	return csu
}

// SetNillableConsistency sets the "consistency" field if the given value is not nil.
func (csu *CurveSummaryUpdate) SetNillableConsistency(f *float64) *CurveSummaryUpdate {
	if f != nil {
		csu.SetConsistency(*f)
	}
	return csu
}

// AddConsistency adds f to the "consistency" field.
func (csu *CurveSummaryUpdate) AddConsistency(f float64) *CurveSummaryUpdate {
	csu.mutation.AddConsistency(f)
	return csu
}

// SetBurstiness sets the "burstiness" field.
func (csu *CurveSummaryUpdate) SetBurstiness(f float64) *CurveSummaryUpdate {
	csu.mutation.ResetBurstiness()
	csu.mutation.SetBurstiness(f)
	return csu
}

// SetNillableBurstiness sets the "burstiness" field if the given value is not nil.
func (csu *CurveSummaryUpdate) SetNillableBurstiness(f *float64) *CurveSummaryUpdate {
	if f != nil {
		csu.SetBurstiness(*f)
	}
	return csu
}

// AddBurstiness adds f to the "burstiness" field.
func (csu *CurveSummaryUpdate) AddBurstiness(f float64) *CurveSummaryUpdate {
	csu.mutation.AddBurstiness(f)
	return csu
}

// SetT25 sets the "t25" field.
func (csu *CurveSummaryUpdate) SetT25(f float64) *CurveSummaryUpdate {
	csu.mutation.ResetT25()
	csu.mutation.SetT25(f)
	return csu
}

// SetNillableT25 sets the "t25" field if the given value is not nil.
func (csu *CurveSummaryUpdate) SetNillableT25(f *float64) *CurveSummaryUpdate {
	if f != nil {
		csu.SetT25(*f)
	}
	return csu
}

// AddT25 adds f to the "t25" field.
func (csu *CurveSummaryUpdate) AddT25(f float64) *CurveSummaryUpdate {
	csu.mutation.AddT25(f)
	return csu
}

// SetT50 sets the "t50" field.
func (csu *CurveSummaryUpdate) SetT50(f float64) *CurveSummaryUpdate {
	csu.mutation.ResetT50()
	csu.mutation.SetT50(f)
	return csu
}

// SetNillableT50 sets the "t50" field if the given value is not nil.
func (csu *CurveSummaryUpdate) SetNillableT50(f *float64) *CurveSummaryUpdate {
	if f != nil {
		csu.SetT50(*f)
	}
	return csu
}

// AddT50 adds f to the "t50" field.
func (csu *CurveSummaryUpdate) AddT50(f float64) *CurveSummaryUpdate {
	csu.mutation.AddT50(f)
	return csu
}

// SetT75 sets the "t75" field.
func (csu *CurveSummaryUpdate) SetT75(f float64) *CurveSummaryUpdate {
	csu.mutation.ResetT75()
	csu.mutation.SetT75(f)
	return csu
}

// SetNillableT75 sets the "t75" field if the given value is not nil.
func (csu *CurveSummaryUpdate) SetNillableT75(f *float64) *CurveSummaryUpdate {
	if f != nil {
		csu.SetT75(*f)
	}
	return csu
}

// AddT75 adds f to the "t75" field.
func (csu *CurveSummaryUpdate) AddT75(f float64) *CurveSummaryUpdate {
	csu.mutation.AddT75(f)
	return csu
}

// Mutation returns the CurveSummaryMutation object of the builder.
func (csu *CurveSummaryUpdate) Mutation() *CurveSummaryMutation {
	return csu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (csu *CurveSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, csu.sqlSave, csu.mutation, csu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (csu *CurveSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := csu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (csu *CurveSummaryUpdate) Exec(ctx context.Context) error {
	_, err := csu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csu *CurveSummaryUpdate) ExecX(ctx context.Context) {
	if err := csu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (csu *CurveSummaryUpdate) check() error {
	if v, ok := csu.mutation.UserID(); ok {
		if err := curvesummary.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CurveSummary.user_id": %w`, err)}
		}
	}
	if v, ok := csu.mutation.EasingLabel(); ok {
		if err := curvesummary.EasingLabelValidator(v); err != nil {
			return &ValidationError{Name: "easing_label", err: fmt.Errorf(`ent: validator failed for field "CurveSummary.easing_label": %w`, err)}
		}
	}
	return nil
}

func (csu *CurveSummaryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := csu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(curvesummary.Table, curvesummary.Columns, sqlgraph.NewFieldSpec(curvesummary.FieldID, field.TypeInt))
	if ps := csu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := csu.mutation.UserID(); ok {
		_spec.SetField(curvesummary.FieldUserID, field.TypeString, value)
	}
	if value, ok := csu.mutation.EasingLabel(); ok {
		_spec.SetField(curvesummary.FieldEasingLabel, field.TypeString, value)
	}
	if value, ok := csu.mutation.FrontloadIndex(); ok {
		_spec.SetField(curvesummary.FieldFrontloadIndex, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.AddedFrontloadIndex(); ok {
		_spec.AddField(curvesummary.FieldFrontloadIndex, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.Consistency(); ok {
		_spec.SetField(curvesummary.FieldConsistency, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.AddedConsistency(); ok {
		_spec.AddField(curvesummary.FieldConsistency, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.Burstiness(); ok {
		_spec.SetField(curvesummary.FieldBurstiness, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.AddedBurstiness(); ok {
		_spec.AddField(curvesummary.FieldBurstiness, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.T25(); ok {
		_spec.SetField(curvesummary.FieldT25, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.AddedT25(); ok {
		_spec.AddField(curvesummary.FieldT25, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.T50(); ok {
		_spec.SetField(curvesummary.FieldT50, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.AddedT50(); ok {
		_spec.AddField(curvesummary.FieldT50, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.T75(); ok {
		_spec.SetField(curvesummary.FieldT75, field.TypeFloat64, value)
	}
	if value, ok := csu.mutation.AddedT75(); ok {
		_spec.AddField(curvesummary.FieldT75, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, csu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curvesummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	csu.mutation.done = true
	return n, nil
}

// CurveSummaryUpdateOne is the builder for updating a single CurveSummary entity.
type CurveSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CurveSummaryMutation
}

// SetUserID sets the "user_id" field.
func (csuo *CurveSummaryUpdateOne) SetUserID(s string) *CurveSummaryUpdateOne {
	csuo.mutation.SetUserID(s)
	return csuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (csuo *CurveSummaryUpdateOne) SetNillableUserID(s *string) *CurveSummaryUpdateOne {
	if s != nil {
		csuo.SetUserID(*s)
	}
	return csuo
}

// SetEasingLabel sets the "easing_label" field.
func (csuo *CurveSummaryUpdateOne) SetEasingLabel(s string) *CurveSummaryUpdateOne {
	csuo.mutation.SetEasingLabel(s)
	return csuo
}

// SetNillableEasingLabel sets the "easing_label" field if the given value is not nil.
func (csuo *CurveSummaryUpdateOne) SetNillableEasingLabel(s *string) *CurveSummaryUpdateOne {
	if s != nil {
		csuo.SetEasingLabel(*s)
	}
	return csuo
}

// SetFrontloadIndex sets the "frontload_index" field.
func (csuo *CurveSummaryUpdateOne) SetFrontloadIndex(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.ResetFrontloadIndex()
	csuo.mutation.SetFrontloadIndex(f)
	return csuo
}

// SetNillableFrontloadIndex sets the "frontload_index" field if the given value is not nil.
func (csuo *CurveSummaryUpdateOne) SetNillableFrontloadIndex(f *float64) *CurveSummaryUpdateOne {
	if f != nil {
		csuo.SetFrontloadIndex(*f)
	}
	return csuo
}

// AddFrontloadIndex adds f to the "frontload_index" field.
func (csuo *CurveSummaryUpdateOne) AddFrontloadIndex(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.AddFrontloadIndex(f)
	return csuo
}

// SetConsistency sets the "consistency" field.
func (csuo *CurveSummaryUpdateOne) SetConsistency(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.ResetConsistency()
	csuo.mutation.SetConsistency(f)
	return csuo
}

// SetNillableConsistency sets the "consistency" field if the given value is not nil.
func (csuo *CurveSummaryUpdateOne) SetNillableConsistency(f *float64) *CurveSummaryUpdateOne {
	if f != nil {
		csuo.SetConsistency(*f)
	}
	return csuo
}

// AddConsistency adds f to the "consistency" field.
func (csuo *CurveSummaryUpdateOne) AddConsistency(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.AddConsistency(f)
	return csuo
}

// SetBurstiness sets the "burstiness" field.
func (csuo *CurveSummaryUpdateOne) SetBurstiness(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.ResetBurstiness()
	csuo.mutation.SetBurstiness(f)
	return csuo
}

// SetNillableBurstiness sets the "burstiness" field if the given value is not nil.
func (csuo *CurveSummaryUpdateOne) SetNillableBurstiness(f *float64) *CurveSummaryUpdateOne {
	if f != nil {
		csuo.SetBurstiness(*f)
	}
	return csuo
}

// AddBurstiness adds f to the "burstiness" field.
func (csuo *CurveSummaryUpdateOne) AddBurstiness(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.AddBurstiness(f)
	return csuo
}

// SetT25 sets the "t25" field.
func (csuo *CurveSummaryUpdateOne) SetT25(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.ResetT25()
	csuo.mutation.SetT25(f)
	return csuo
}

// SetNillableT25 sets the "t25" field if the given value is not nil.
func (csuo *CurveSummaryUpdateOne) SetNillableT25(f *float64) *CurveSummaryUpdateOne {
	if f != nil {
		csuo.SetT25(*f)
	}
	return csuo
}

// AddT25 adds f to the "t25" field.
func (csuo *CurveSummaryUpdateOne) AddT25(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.AddT25(f)
	return csuo
}

// SetT50 sets the "t50" field.
func (csuo *CurveSummaryUpdateOne) SetT50(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.ResetT50()
	csuo.mutation.SetT50(f)
	return csuo
}

// SetNillableT50 sets the "t50" field if the given value is not nil.
func (csuo *CurveSummaryUpdateOne) SetNillableT50(f *float64) *CurveSummaryUpdateOne {
	if f != nil {
		csuo.SetT50(*f)
	}
	return csuo
}

// AddT50 adds f to the "t50" field.
func (csuo *CurveSummaryUpdateOne) AddT50(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.AddT50(f)
	return csuo
}

// SetT75 sets the "t75" field.
func (csuo *CurveSummaryUpdateOne) SetT75(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.ResetT75()
	csuo.mutation.SetT75(f)
	return csuo
}

// SetNillableT75 sets the "t75" field if the given value is not nil.
func (csuo *CurveSummaryUpdateOne) SetNillableT75(f *float64) *CurveSummaryUpdateOne {
	if f != nil {
		csuo.SetT75(*f)
	}
	return csuo
}

// AddT75 adds f to the "t75" field.
func (csuo *CurveSummaryUpdateOne) AddT75(f float64) *CurveSummaryUpdateOne {
	csuo.mutation.AddT75(f)
	return csuo
}

// Mutation returns the CurveSummaryMutation object of the builder.
func (csuo *CurveSummaryUpdateOne) Mutation() *CurveSummaryMutation {
	return csuo.mutation
}

// Where appends a list predicates to the CurveSummaryUpdate builder.
func (csuo *CurveSummaryUpdateOne) Where(ps ...predicate.CurveSummary) *CurveSummaryUpdateOne {
	csuo.mutation.Where(ps...)
	return csuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (csuo *CurveSummaryUpdateOne) Select(field string, fields ...string) *CurveSummaryUpdateOne {
	csuo.fields = append([]string{field}, fields...)
	return csuo
}

// Save executes the query and returns the updated CurveSummary entity.
func (csuo *CurveSummaryUpdateOne) Save(ctx context.Context) (*CurveSummary, error) {
	return withHooks(ctx, csuo.sqlSave, csuo.mutation, csuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (csuo *CurveSummaryUpdateOne) SaveX(ctx context.Context) *CurveSummary {
	node, err := csuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (csuo *CurveSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := csuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csuo *CurveSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := csuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (csuo *CurveSummaryUpdateOne) check() error {
	if v, ok := csuo.mutation.UserID(); ok {
		if err := curvesummary.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CurveSummary.user_id": %w`, err)}
		}
	}
	if v, ok := csuo.mutation.EasingLabel(); ok {
		if err := curvesummary.EasingLabelValidator(v); err != nil {
			return &ValidationError{Name: "easing_label", err: fmt.Errorf(`ent: validator failed for field "CurveSummary.easing_label": %w`, err)}
		}
	}
	return nil
}

func (csuo *CurveSummaryUpdateOne) sqlSave(ctx context.Context) (_node *CurveSummary, err error) {
	if err := csuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(curvesummary.Table, curvesummary.Columns, sqlgraph.NewFieldSpec(curvesummary.FieldID, field.TypeInt))
	id, ok := csuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CurveSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := csuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, curvesummary.FieldID)
		for _, f := range fields {
			if !curvesummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != curvesummary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := csuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := csuo.mutation.UserID(); ok {
		_spec.SetField(curvesummary.FieldUserID, field.TypeString, value)
	}
	if value, ok := csuo.mutation.EasingLabel(); ok {
		_spec.SetField(curvesummary.FieldEasingLabel, field.TypeString, value)
	}
	if value, ok := csuo.mutation.FrontloadIndex(); ok {
		_spec.SetField(curvesummary.FieldFrontloadIndex, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.AddedFrontloadIndex(); ok {
		_spec.AddField(curvesummary.FieldFrontloadIndex, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.Consistency(); ok {
		_spec.SetField(curvesummary.FieldConsistency, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.AddedConsistency(); ok {
		_spec.AddField(curvesummary.FieldConsistency, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.Burstiness(); ok {
		_spec.SetField(curvesummary.FieldBurstiness, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.AddedBurstiness(); ok {
		_spec.AddField(curvesummary.FieldBurstiness, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.T25(); ok {
		_spec.SetField(curvesummary.FieldT25, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.AddedT25(); ok {
		_spec.AddField(curvesummary.FieldT25, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.T50(); ok {
		_spec.SetField(curvesummary.FieldT50, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.AddedT50(); ok {
		_spec.AddField(curvesummary.FieldT50, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.T75(); ok {
		_spec.SetField(curvesummary.FieldT75, field.TypeFloat64, value)
	}
	if value, ok := csuo.mutation.AddedT75(); ok {
		_spec.AddField(curvesummary.FieldT75, field.TypeFloat64, value)
	}
	_node = &CurveSummary{config: csuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, csuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{curvesummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	csuo.mutation.done = true
	return _node, nil
}
