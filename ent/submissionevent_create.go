// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/submissionevent"
)

// SubmissionEventCreate is the builder for creating a SubmissionEvent entity.
type SubmissionEventCreate struct {
	config
	mutation *SubmissionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (sec *SubmissionEventCreate) SetSequence(i int64) *SubmissionEventCreate {
	sec.mutation.SetSequence(i)
	return sec
}

// SetIngestedAt sets the "ingested_at" field.
func (sec *SubmissionEventCreate) SetIngestedAt(t time.Time) *SubmissionEventCreate {
	sec.mutation.SetIngestedAt(t)
	return sec
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (sec *SubmissionEventCreate) SetNillableIngestedAt(t *time.Time) *SubmissionEventCreate {
	if t != nil {
		sec.SetIngestedAt(*t)
	}
	return sec
}

// SetUserID sets the "user_id" field.
func (sec *SubmissionEventCreate) SetUserID(s string) *SubmissionEventCreate {
	sec.mutation.SetUserID(s)
	return sec
}

// SetStepID sets the "step_id" field.
func (sec *SubmissionEventCreate) SetStepID(s string) *SubmissionEventCreate {
	sec.mutation.SetStepID(s)
	return sec
}

// SetStatus sets the "status" field.
func (sec *SubmissionEventCreate) SetStatus(s string) *SubmissionEventCreate {
	sec.mutation.SetStatus(s)
	return sec
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (sec *SubmissionEventCreate) Mutation() *SubmissionEventMutation {
	return sec.mutation
}

// Save creates the SubmissionEvent in the database.
func (sec *SubmissionEventCreate) Save(ctx context.Context) (*SubmissionEvent, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *SubmissionEventCreate) SaveX(ctx context.Context) *SubmissionEvent {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *SubmissionEventCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *SubmissionEventCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *SubmissionEventCreate) defaults() {
	if _, ok := sec.mutation.IngestedAt(); !ok {
		v := submissionevent.DefaultIngestedAt()
		sec.mutation.SetIngestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *SubmissionEventCreate) check() error {
	if _, ok := sec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SubmissionEvent.sequence"`)}
	}
	if _, ok := sec.mutation.IngestedAt(); !ok {
		return &ValidationError{Name: "ingested_at", err: errors.New(`ent: missing required field "SubmissionEvent.ingested_at"`)}
	}
	if _, ok := sec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SubmissionEvent.user_id"`)}
	}
	if v, ok := sec.mutation.UserID(); ok {
		if err := submissionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "SubmissionEvent.step_id"`)}
	}
	if _, ok := sec.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubmissionEvent.status"`)}
	}
	return nil
}

func (sec *SubmissionEventCreate) sqlSave(ctx context.Context) (*SubmissionEvent, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *SubmissionEventCreate) createSpec() (*SubmissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionEvent{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(submissionevent.Table, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	)
	if value, ok := sec.mutation.Sequence(); ok {
		_spec.SetField(submissionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := sec.mutation.IngestedAt(); ok {
		_spec.SetField(submissionevent.FieldIngestedAt, field.TypeTime, value)
		_node.IngestedAt = value
	}
	if value, ok := sec.mutation.UserID(); ok {
		_spec.SetField(submissionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := sec.mutation.StepID(); ok {
		_spec.SetField(submissionevent.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := sec.mutation.Status(); ok {
		_spec.SetField(submissionevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// SubmissionEventCreateBulk is the builder for creating many SubmissionEvent entities in bulk.
type SubmissionEventCreateBulk struct {
	config
	err      error
	builders []*SubmissionEventCreate
}

// Save creates the SubmissionEvent entities in the database.
func (secb *SubmissionEventCreateBulk) Save(ctx context.Context) ([]*SubmissionEvent, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*SubmissionEvent, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionEventMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *SubmissionEventCreateBulk) SaveX(ctx context.Context) []*SubmissionEvent {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *SubmissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *SubmissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
