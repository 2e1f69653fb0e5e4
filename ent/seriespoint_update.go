// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/predicate"
	"github.com/abelsk/learnpulse/ent/seriespoint"
)

// SeriesPointUpdate is the builder for updating SeriesPoint entities.
type SeriesPointUpdate struct {
	config
	hooks    []Hook
	mutation *SeriesPointMutation
}

// Where appends a list predicates to the SeriesPointUpdate builder.
func (spu *SeriesPointUpdate) Where(ps ...predicate.SeriesPoint) *SeriesPointUpdate {
	spu.mutation.Where(ps...)
	return spu
}

// SetUserID sets the "user_id" field.
func (spu *SeriesPointUpdate) SetUserID(s string) *SeriesPointUpdate {
	spu.mutation.SetUserID(s)
	return spu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (spu *SeriesPointUpdate) SetNillableUserID(s *string) *SeriesPointUpdate {
	if s != nil {
		spu.SetUserID(*s)
	}
	return spu
}

// SetDateIso sets the "date_iso" field.
func (spu *SeriesPointUpdate) SetDateIso(s string) *SeriesPointUpdate {
	spu.mutation.SetDateIso(s)
	return spu
}

// SetNillableDateIso sets the "date_iso" field if the given value is not nil.
func (spu *SeriesPointUpdate) SetNillableDateIso(s *string) *SeriesPointUpdate {
	if s != nil {
		spu.SetDateIso(*s)
	}
	return spu
}

// SetActivityTotal sets the "activity_total" field.
func (spu *SeriesPointUpdate) SetActivityTotal(f float64) *SeriesPointUpdate {
	spu.mutation.ResetActivityTotal()
	spu.mutation.SetActivityTotal(f)
	return spu
}

// SetNillableActivityTotal sets the "activity_total" field if the given value is not nil.
func (spu *SeriesPointUpdate) SetNillableActivityTotal(f *float64) *SeriesPointUpdate {
	if f != nil {
		spu.SetActivityTotal(*f)
	}
	return spu
}

// AddActivityTotal adds f to the "activity_total" field.
func (spu *SeriesPointUpdate) AddActivityTotal(f float64) *SeriesPointUpdate {
	spu.mutation.AddActivityTotal(f)
	return spu
}

// Mutation returns the SeriesPointMutation object of the builder.
func (spu *SeriesPointUpdate) Mutation() *SeriesPointMutation {
	return spu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (spu *SeriesPointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, spu.sqlSave, spu.mutation, spu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (spu *SeriesPointUpdate) SaveX(ctx context.Context) int {
	affected, err := spu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (spu *SeriesPointUpdate) Exec(ctx context.Context) error {
	_, err := spu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spu *SeriesPointUpdate) ExecX(ctx context.Context) {
	if err := spu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (spu *SeriesPointUpdate) check() error {
	if v, ok := spu.mutation.UserID(); ok {
		if err := seriespoint.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SeriesPoint.user_id": %w`, err)}
		}
	}
	if v, ok := spu.mutation.DateIso(); ok {
		if err := seriespoint.DateIsoValidator(v); err != nil {
			return &ValidationError{Name: "date_iso", err: fmt.Errorf(`ent: validator failed for field "SeriesPoint.date_iso": %w`, err)}
		}
	}
	return nil
}

func (spu *SeriesPointUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := spu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(seriespoint.Table, seriespoint.Columns, sqlgraph.NewFieldSpec(seriespoint.FieldID, field.TypeInt))
	if ps := spu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := spu.mutation.UserID(); ok {
		_spec.SetField(seriespoint.FieldUserID, field.TypeString, value)
	}
	if value, ok := spu.mutation.DateIso(); ok {
		_spec.SetField(seriespoint.FieldDateIso, field.TypeString, value)
	}
	if value, ok := spu.mutation.ActivityTotal(); ok {
		_spec.SetField(seriespoint.FieldActivityTotal, field.TypeFloat64, value)
	}
	if value, ok := spu.mutation.AddedActivityTotal(); ok {
		_spec.AddField(seriespoint.FieldActivityTotal, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, spu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{seriespoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	spu.mutation.done = true
	return n, nil
}

// SeriesPointUpdateOne is the builder for updating a single SeriesPoint entity.
type SeriesPointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SeriesPointMutation
}

// SetUserID sets the "user_id" field.
func (spuo *SeriesPointUpdateOne) SetUserID(s string) *SeriesPointUpdateOne {
	spuo.mutation.SetUserID(s)
	return spuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (spuo *SeriesPointUpdateOne) SetNillableUserID(s *string) *SeriesPointUpdateOne {
	if s != nil {
		spuo.SetUserID(*s)
	}
	return spuo
}

// SetDateIso sets the "date_iso" field.
func (spuo *SeriesPointUpdateOne) SetDateIso(s string) *SeriesPointUpdateOne {
	spuo.mutation.SetDateIso(s)
	return spuo
}

// SetNillableDateIso sets the "date_iso" field if the given value is not nil.
func (spuo *SeriesPointUpdateOne) SetNillableDateIso(s *string) *SeriesPointUpdateOne {
	if s != nil {
		spuo.SetDateIso(*s)
	}
	return spuo
}

// SetActivityTotal sets the "activity_total" field.
func (spuo *SeriesPointUpdateOne) SetActivityTotal(f float64) *SeriesPointUpdateOne {
	spuo.mutation.ResetActivityTotal()
	spuo.mutation.SetActivityTotal(f)
	return spuo
}

// SetNillableActivityTotal sets the "activity_total" field if the given value is not nil.
func (spuo *SeriesPointUpdateOne) SetNillableActivityTotal(f *float64) *SeriesPointUpdateOne {
	if f != nil {
		spuo.SetActivityTotal(*f)
	}
	return spuo
}

// AddActivityTotal adds f to the "activity_total" field.
func (spuo *SeriesPointUpdateOne) AddActivityTotal(f float64) *SeriesPointUpdateOne {
	spuo.mutation.AddActivityTotal(f)
	return spuo
}

// Mutation returns the SeriesPointMutation object of the builder.
func (spuo *SeriesPointUpdateOne) Mutation() *SeriesPointMutation {
	return spuo.mutation
}

// Where appends a list predicates to the SeriesPointUpdate builder.
func (spuo *SeriesPointUpdateOne) Where(ps ...predicate.SeriesPoint) *SeriesPointUpdateOne {
	spuo.mutation.Where(ps...)
	return spuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (spuo *SeriesPointUpdateOne) Select(field string, fields ...string) *SeriesPointUpdateOne {
	spuo.fields = append([]string{field}, fields...)
	return spuo
}

// Save executes the query and returns the updated SeriesPoint entity.
func (spuo *SeriesPointUpdateOne) Save(ctx context.Context) (*SeriesPoint, error) {
	return withHooks(ctx, spuo.sqlSave, spuo.mutation, spuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (spuo *SeriesPointUpdateOne) SaveX(ctx context.Context) *SeriesPoint {
	node, err := spuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (spuo *SeriesPointUpdateOne) Exec(ctx context.Context) error {
	_, err := spuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spuo *SeriesPointUpdateOne) ExecX(ctx context.Context) {
	if err := spuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (spuo *SeriesPointUpdateOne) check() error {
	if v, ok := spuo.mutation.UserID(); ok {
		if err := seriespoint.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SeriesPoint.user_id": %w`, err)}
		}
	}
	if v, ok := spuo.mutation.DateIso(); ok {
		if err := seriespoint.DateIsoValidator(v); err != nil {
			return &ValidationError{Name: "date_iso", err: fmt.Errorf(`ent: validator failed for field "SeriesPoint.date_iso": %w`, err)}
		}
	}
	return nil
}

func (spuo *SeriesPointUpdateOne) sqlSave(ctx context.Context) (_node *SeriesPoint, err error) {
	if err := spuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(seriespoint.Table, seriespoint.Columns, sqlgraph.NewFieldSpec(seriespoint.FieldID, field.TypeInt))
	id, ok := spuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SeriesPoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := spuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, seriespoint.FieldID)
		for _, f := range fields {
			if !seriespoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != seriespoint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := spuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := spuo.mutation.UserID(); ok {
		_spec.SetField(seriespoint.FieldUserID, field.TypeString, value)
	}
	if value, ok := spuo.mutation.DateIso(); ok {
		_spec.SetField(seriespoint.FieldDateIso, field.TypeString, value)
	}
	if value, ok := spuo.mutation.ActivityTotal(); ok {
		_spec.SetField(seriespoint.FieldActivityTotal, field.TypeFloat64, value)
	}
	if value, ok := spuo.mutation.AddedActivityTotal(); ok {
		_spec.AddField(seriespoint.FieldActivityTotal, field.TypeFloat64, value)
	}
	_node = &SeriesPoint{config: spuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, spuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{seriespoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	spuo.mutation.done = true
	return _node, nil
}
