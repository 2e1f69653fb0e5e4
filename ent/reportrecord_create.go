// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/reportrecord"
)

// ReportRecordCreate is the builder for creating a ReportRecord entity.
type ReportRecordCreate struct {
	config
	mutation *ReportRecordMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (rrc *ReportRecordCreate) SetReportID(s string) *ReportRecordCreate {
	rrc.mutation.SetReportID(s)
	return rrc
}

// SetUserID sets the "user_id" field.
func (rrc *ReportRecordCreate) SetUserID(s string) *ReportRecordCreate {
	rrc.mutation.SetUserID(s)
	return rrc
}

// SetGeneratedAt sets the "generated_at" field.
func (rrc *ReportRecordCreate) SetGeneratedAt(t time.Time) *ReportRecordCreate {
	rrc.mutation.SetGeneratedAt(t)
	return rrc
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (rrc *ReportRecordCreate) SetNillableGeneratedAt(t *time.Time) *ReportRecordCreate {
	if t != nil {
		rrc.SetGeneratedAt(*t)
	}
	return rrc
}

// SetData sets the "data" field.
func (rrc *ReportRecordCreate) SetData(m map[string]interface{}) *ReportRecordCreate {
	rrc.mutation.SetData(m)
	return rrc
}

// Mutation returns the ReportRecordMutation object of the builder.
func (rrc *ReportRecordCreate) Mutation() *ReportRecordMutation {
	return rrc.mutation
}

// Save creates the ReportRecord in the database.
func (rrc *ReportRecordCreate) Save(ctx context.Context) (*ReportRecord, error) {
	rrc.defaults()
	return withHooks(ctx, rrc.sqlSave, rrc.mutation, rrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rrc *ReportRecordCreate) SaveX(ctx context.Context) *ReportRecord {
	v, err := rrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rrc *ReportRecordCreate) Exec(ctx context.Context) error {
	_, err := rrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rrc *ReportRecordCreate) ExecX(ctx context.Context) {
	if err := rrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rrc *ReportRecordCreate) defaults() {
	if _, ok := rrc.mutation.GeneratedAt(); !ok {
		v := reportrecord.DefaultGeneratedAt()
		rrc.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rrc *ReportRecordCreate) check() error {
	if _, ok := rrc.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "ReportRecord.report_id"`)}
	}
	if v, ok := rrc.mutation.ReportID(); ok {
		if err := reportrecord.ReportIDValidator(v); err != nil {
			return &ValidationError{Name: "report_id", err: fmt.Errorf(`ent: validator failed for field "ReportRecord.report_id": %w`, err)}
		}
	}
	if _, ok := rrc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReportRecord.user_id"`)}
	}
	if v, ok := rrc.mutation.UserID(); ok {
		if err := reportrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReportRecord.user_id": %w`, err)}
		}
	}
	if _, ok := rrc.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "ReportRecord.generated_at"`)}
	}
	if _, ok := rrc.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ReportRecord.data"`)}
	}
	return nil
}

func (rrc *ReportRecordCreate) sqlSave(ctx context.Context) (*ReportRecord, error) {
	if err := rrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rrc.mutation.id = &_node.ID
	rrc.mutation.done = true
	return _node, nil
}

func (rrc *ReportRecordCreate) createSpec() (*ReportRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportRecord{config: rrc.config}
		_spec = sqlgraph.NewCreateSpec(reportrecord.Table, sqlgraph.NewFieldSpec(reportrecord.FieldID, field.TypeInt))
	)
	if value, ok := rrc.mutation.ReportID(); ok {
		_spec.SetField(reportrecord.FieldReportID, field.TypeString, value)
		_node.ReportID = value
	}
	if value, ok := rrc.mutation.UserID(); ok {
		_spec.SetField(reportrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := rrc.mutation.GeneratedAt(); ok {
		_spec.SetField(reportrecord.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := rrc.mutation.Data(); ok {
		_spec.SetField(reportrecord.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// ReportRecordCreateBulk is the builder for creating many ReportRecord entities in bulk.
type ReportRecordCreateBulk struct {
	config
	err      error
	builders []*ReportRecordCreate
}

// Save creates the ReportRecord entities in the database.
func (rrcb *ReportRecordCreateBulk) Save(ctx context.Context) ([]*ReportRecord, error) {
	if rrcb.err != nil {
		return nil, rrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rrcb.builders))
	nodes := make([]*ReportRecord, len(rrcb.builders))
	mutators := make([]Mutator, len(rrcb.builders))
	for i := range rrcb.builders {
		func(i int, root context.Context) {
			builder := rrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportRecordMutation)
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
					_, err = mutators[i+1].Mutate(root, rrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rrcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rrcb *ReportRecordCreateBulk) SaveX(ctx context.Context) []*ReportRecord {
	v, err := rrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rrcb *ReportRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := rrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rrcb *ReportRecordCreateBulk) ExecX(ctx context.Context) {
	if err := rrcb.Exec(ctx); err != nil {
		panic(err)
	}
}
