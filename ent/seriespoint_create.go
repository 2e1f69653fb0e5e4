// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/seriespoint"
)

// SeriesPointCreate is the builder for creating a SeriesPoint entity.
type SeriesPointCreate struct {
	config
	mutation *SeriesPointMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (spc *SeriesPointCreate) SetUserID(s string) *SeriesPointCreate {
	spc.mutation.SetUserID(s)
	return spc
}

// SetDateIso sets the "date_iso" field.
func (spc *SeriesPointCreate) SetDateIso(s string) *SeriesPointCreate {
	spc.mutation.SetDateIso(s)
	return spc
}

// SetActivityTotal sets the "activity_total" field.
func (spc *SeriesPointCreate) SetActivityTotal(f float64) *SeriesPointCreate {
	spc.mutation.SetActivityTotal(f)
	return spc
}

// Mutation returns the SeriesPointMutation object of the builder.
func (spc *SeriesPointCreate) Mutation() *SeriesPointMutation {
	return spc.mutation
}

// Save creates the SeriesPoint in the database.
func (spc *SeriesPointCreate) Save(ctx context.Context) (*SeriesPoint, error) {
	return withHooks(ctx, spc.sqlSave, spc.mutation, spc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (spc *SeriesPointCreate) SaveX(ctx context.Context) *SeriesPoint {
	v, err := spc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (spc *SeriesPointCreate) Exec(ctx context.Context) error {
	_, err := spc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spc *SeriesPointCreate) ExecX(ctx context.Context) {
	if err := spc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (spc *SeriesPointCreate) check() error {
	if _, ok := spc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SeriesPoint.user_id"`)}
	}
	if v, ok := spc.mutation.UserID(); ok {
		if err := seriespoint.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SeriesPoint.user_id": %w`, err)}
		}
	}
	if _, ok := spc.mutation.DateIso(); !ok {
		return &ValidationError{Name: "date_iso", err: errors.New(`ent: missing required field "SeriesPoint.date_iso"`)}
	}
	if v, ok := spc.mutation.DateIso(); ok {
		if err := seriespoint.DateIsoValidator(v); err != nil {
			return &ValidationError{Name: "date_iso", err: fmt.Errorf(`ent: validator failed for field "SeriesPoint.date_iso": %w`, err)}
		}
	}
	if _, ok := spc.mutation.ActivityTotal(); !ok {
		return &ValidationError{Name: "activity_total", err: errors.New(`ent: missing required field "SeriesPoint.activity_total"`)}
	}
	return nil
}

func (spc *SeriesPointCreate) sqlSave(ctx context.Context) (*SeriesPoint, error) {
	if err := spc.check(); err != nil {
		return nil, err
	}
	_node, _spec := spc.createSpec()
	if err := sqlgraph.CreateNode(ctx, spc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	spc.mutation.id = &_node.ID
	spc.mutation.done = true
	return _node, nil
}

func (spc *SeriesPointCreate) createSpec() (*SeriesPoint, *sqlgraph.CreateSpec) {
	var (
		_node = &SeriesPoint{config: spc.config}
		_spec = sqlgraph.NewCreateSpec(seriespoint.Table, sqlgraph.NewFieldSpec(seriespoint.FieldID, field.TypeInt))
	)
	if value, ok := spc.mutation.UserID(); ok {
		_spec.SetField(seriespoint.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := spc.mutation.DateIso(); ok {
		_spec.SetField(seriespoint.FieldDateIso, field.TypeString, value)
		_node.DateIso = value
	}
	if value, ok := spc.mutation.ActivityTotal(); ok {
		_spec.SetField(seriespoint.FieldActivityTotal, field.TypeFloat64, value)
		_node.ActivityTotal = value
	}
	return _node, _spec
}

// SeriesPointCreateBulk is the builder for creating many SeriesPoint entities in bulk.
type SeriesPointCreateBulk struct {
	config
	err      error
	builders []*SeriesPointCreate
}

// Save creates the SeriesPoint entities in the database.
func (spcb *SeriesPointCreateBulk) Save(ctx context.Context) ([]*SeriesPoint, error) {
	if spcb.err != nil {
		return nil, spcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(spcb.builders))
	nodes := make([]*SeriesPoint, len(spcb.builders))
	mutators := make([]Mutator, len(spcb.builders))
	for i := range spcb.builders {
		func(i int, root context.Context) {
			builder := spcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SeriesPointMutation)
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
					_, err = mutators[i+1].Mutate(root, spcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, spcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, spcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (spcb *SeriesPointCreateBulk) SaveX(ctx context.Context) []*SeriesPoint {
	v, err := spcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (spcb *SeriesPointCreateBulk) Exec(ctx context.Context) error {
	_, err := spcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spcb *SeriesPointCreateBulk) ExecX(ctx context.Context) {
	if err := spcb.Exec(ctx); err != nil {
		panic(err)
	}
}
