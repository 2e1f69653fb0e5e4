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
	"github.com/abelsk/learnpulse/ent/reportrecord"
)

// ReportRecordUpdate is the builder for updating ReportRecord entities.
type ReportRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ReportRecordMutation
}

// Where appends a list predicates to the ReportRecordUpdate builder.
func (rru *ReportRecordUpdate) Where(ps ...predicate.ReportRecord) *ReportRecordUpdate {
	rru.mutation.Where(ps...)
	return rru
}

// SetUserID sets the "user_id" field.
func (rru *ReportRecordUpdate) SetUserID(s string) *ReportRecordUpdate {
	rru.mutation.SetUserID(s)
	return rru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rru *ReportRecordUpdate) SetNillableUserID(s *string) *ReportRecordUpdate {
	if s != nil {
		rru.SetUserID(*s)
	}
	return rru
}

// SetData sets the "data" field.
func (rru *ReportRecordUpdate) SetData(m map[string]interface{}) *ReportRecordUpdate {
	rru.mutation.SetData(m)
	return rru
}

// Mutation returns the ReportRecordMutation object of the builder.
func (rru *ReportRecordUpdate) Mutation() *ReportRecordMutation {
	return rru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rru *ReportRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rru.sqlSave, rru.mutation, rru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rru *ReportRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := rru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rru *ReportRecordUpdate) Exec(ctx context.Context) error {
	_, err := rru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rru *ReportRecordUpdate) ExecX(ctx context.Context) {
	if err := rru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rru *ReportRecordUpdate) check() error {
	if v, ok := rru.mutation.UserID(); ok {
		if err := reportrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReportRecord.user_id": %w`, err)}
		}
	}
	return nil
}

func (rru *ReportRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := rru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportrecord.Table, reportrecord.Columns, sqlgraph.NewFieldSpec(reportrecord.FieldID, field.TypeInt))
	if ps := rru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rru.mutation.UserID(); ok {
		_spec.SetField(reportrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := rru.mutation.Data(); ok {
		_spec.SetField(reportrecord.FieldData, field.TypeJSON, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rru.mutation.done = true
	return n, nil
}

// ReportRecordUpdateOne is the builder for updating a single ReportRecord entity.
type ReportRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportRecordMutation
}

// SetUserID sets the "user_id" field.
func (rruo *ReportRecordUpdateOne) SetUserID(s string) *ReportRecordUpdateOne {
	rruo.mutation.SetUserID(s)
	return rruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (rruo *ReportRecordUpdateOne) SetNillableUserID(s *string) *ReportRecordUpdateOne {
	if s != nil {
		rruo.SetUserID(*s)
	}
	return rruo
}

// SetData sets the "data" field.
func (rruo *ReportRecordUpdateOne) SetData(m map[string]interface{}) *ReportRecordUpdateOne {
	rruo.mutation.SetData(m)
	return rruo
}

// Mutation returns the ReportRecordMutation object of the builder.
func (rruo *ReportRecordUpdateOne) Mutation() *ReportRecordMutation {
	return rruo.mutation
}

// Where appends a list predicates to the ReportRecordUpdate builder.
func (rruo *ReportRecordUpdateOne) Where(ps ...predicate.ReportRecord) *ReportRecordUpdateOne {
	rruo.mutation.Where(ps...)
	return rruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rruo *ReportRecordUpdateOne) Select(field string, fields ...string) *ReportRecordUpdateOne {
	rruo.fields = append([]string{field}, fields...)
	return rruo
}

// Save executes the query and returns the updated ReportRecord entity.
func (rruo *ReportRecordUpdateOne) Save(ctx context.Context) (*ReportRecord, error) {
	return withHooks(ctx, rruo.sqlSave, rruo.mutation, rruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rruo *ReportRecordUpdateOne) SaveX(ctx context.Context) *ReportRecord {
	node, err := rruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rruo *ReportRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := rruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rruo *ReportRecordUpdateOne) ExecX(ctx context.Context) {
	if err := rruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rruo *ReportRecordUpdateOne) check() error {
	if v, ok := rruo.mutation.UserID(); ok {
		if err := reportrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReportRecord.user_id": %w`, err)}
		}
	}
	return nil
}

func (rruo *ReportRecordUpdateOne) sqlSave(ctx context.Context) (_node *ReportRecord, err error) {
	if err := rruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportrecord.Table, reportrecord.Columns, sqlgraph.NewFieldSpec(reportrecord.FieldID, field.TypeInt))
	id, ok := rruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportrecord.FieldID)
		for _, f := range fields {
			if !reportrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rruo.mutation.UserID(); ok {
		_spec.SetField(reportrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := rruo.mutation.Data(); ok {
		_spec.SetField(reportrecord.FieldData, field.TypeJSON, value)
	}
	_node = &ReportRecord{config: rruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rruo.mutation.done = true
	return _node, nil
}
