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
	"github.com/abelsk/learnpulse/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (seu *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetUserID sets the "user_id" field.
func (seu *SubmissionEventUpdate) SetUserID(s string) *SubmissionEventUpdate {
	seu.mutation.SetUserID(s)
	return seu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (seu *SubmissionEventUpdate) SetNillableUserID(s *string) *SubmissionEventUpdate {
	if s != nil {
		seu.SetUserID(*s)
	}
	return seu
}

// SetStepID sets the "step_id" field.
func (seu *SubmissionEventUpdate) SetStepID(s string) *SubmissionEventUpdate {
	seu.mutation.SetStepID(s)
	return seu
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (seu *SubmissionEventUpdate) SetNillableStepID(s *string) *SubmissionEventUpdate {
	if s != nil {
		seu.SetStepID(*s)
	}
	return seu
}

// SetStatus sets the "status" field.
func (seu *SubmissionEventUpdate) SetStatus(s string) *SubmissionEventUpdate {
	seu.mutation.SetStatus(s)
	return seu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (seu *SubmissionEventUpdate) SetNillableStatus(s *string) *SubmissionEventUpdate {
	if s != nil {
		seu.SetStatus(*s)
	}
	return seu
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (seu *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SubmissionEventUpdate) check() error {
	if v, ok := seu.mutation.UserID(); ok {
		if err := submissionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (seu *SubmissionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.UserID(); ok {
		_spec.SetField(submissionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := seu.mutation.StepID(); ok {
		_spec.SetField(submissionevent.FieldStepID, field.TypeString, value)
	}
	if value, ok := seu.mutation.Status(); ok {
		_spec.SetField(submissionevent.FieldStatus, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetUserID sets the "user_id" field.
func (seuo *SubmissionEventUpdateOne) SetUserID(s string) *SubmissionEventUpdateOne {
	seuo.mutation.SetUserID(s)
	return seuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (seuo *SubmissionEventUpdateOne) SetNillableUserID(s *string) *SubmissionEventUpdateOne {
	if s != nil {
		seuo.SetUserID(*s)
	}
	return seuo
}

// SetStepID sets the "step_id" field.
func (seuo *SubmissionEventUpdateOne) SetStepID(s string) *SubmissionEventUpdateOne {
	seuo.mutation.SetStepID(s)
	return seuo
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (seuo *SubmissionEventUpdateOne) SetNillableStepID(s *string) *SubmissionEventUpdateOne {
	if s != nil {
		seuo.SetStepID(*s)
	}
	return seuo
}

// SetStatus sets the "status" field.
func (seuo *SubmissionEventUpdateOne) SetStatus(s string) *SubmissionEventUpdateOne {
	seuo.mutation.SetStatus(s)
	return seuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (seuo *SubmissionEventUpdateOne) SetNillableStatus(s *string) *SubmissionEventUpdateOne {
	if s != nil {
		seuo.SetStatus(*s)
	}
	return seuo
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (seuo *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (seuo *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (seuo *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SubmissionEventUpdateOne) check() error {
	if v, ok := seuo.mutation.UserID(); ok {
		if err := submissionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (seuo *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.UserID(); ok {
		_spec.SetField(submissionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.StepID(); ok {
		_spec.SetField(submissionevent.FieldStepID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Status(); ok {
		_spec.SetField(submissionevent.FieldStatus, field.TypeString, value)
	}
	_node = &SubmissionEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
