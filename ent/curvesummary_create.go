// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/curvesummary"
)

// CurveSummaryCreate is the builder for creating a CurveSummary entity.
type CurveSummaryCreate struct {
	config
	mutation *CurveSummaryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (csc *CurveSummaryCreate) SetUserID(s string) *CurveSummaryCreate {
	csc.mutation.SetUserID(s)
	return csc
}

// SetEasingLabel sets the "easing_label" field.
func (csc *CurveSummaryCreate) SetEasingLabel(s string) *CurveSummaryCreate {
	csc.mutation.SetEasingLabel(s)
	return csc
}

// SetFrontloadIndex sets the "frontload_index" field.
func (csc *CurveSummaryCreate) SetFrontloadIndex(f float64) *CurveSummaryCreate {
	csc.mutation.SetFrontloadIndex(f)
	return csc
}

// SetNillableFrontloadIndex sets the "frontload_index" field if the given value is not nil.
func (csc *CurveSummaryCreate) SetNillableFrontloadIndex(f *float64) *CurveSummaryCreate {
	if f != nil {
		csc.SetFrontloadIndex(*f)
	}
	return csc
}

// SetConsistency sets the "consistency" field.
func (csc *CurveSummaryCreate) SetConsistency(f float64) *CurveSummaryCreate {
	csc.mutation.SetConsistency(f)
	return csc
}

// SetNillableConsistency sets the "consistency" field if the given value is not nil.
func (csc *CurveSummaryCreate) SetNillableConsistency(f *float64) *CurveSummaryCreate {
	if f != nil {
		csc.SetConsistency(*f)
	}
	return csc
}

// SetBurstiness sets the "burstiness" field.
func (csc *CurveSummaryCreate) SetBurstiness(f float64) *CurveSummaryCreate {
	csc.mutation.SetBurstiness(f)
	return csc
}

// SetNillableBurstiness sets the "burstiness" field if the given value is not nil.
func (csc *CurveSummaryCreate) SetNillableBurstiness(f *float64) *CurveSummaryCreate {
	if f != nil {
		csc.SetBurstiness(*f)
	}
	return csc
}

// SetT25 sets the "t25" field.
func (csc *CurveSummaryCreate) SetT25(f float64) *CurveSummaryCreate {
	csc.mutation.SetT25(f)
	return csc
}

// SetNillableT25 sets the "t25" field if the given value is not nil.
func (csc *CurveSummaryCreate) SetNillableT25(f *float64) *CurveSummaryCreate {
	if f != nil {
		csc.SetT25(*f)
	}
	return csc
}

// SetT50 sets the "t50" field.
func (csc *CurveSummaryCreate) SetT50(f float64) *CurveSummaryCreate {
	csc.mutation.SetT50(f)
	return csc
}

// SetNillableT50 sets the "t50" field if the given value is not nil.
func (csc *CurveSummaryCreate) SetNillableT50(f *float64) *CurveSummaryCreate {
	if f != nil {
		csc.SetT50(*f)
	}
	return csc
}

// SetT75 sets the "t75" field.
func (csc *CurveSummaryCreate) SetT75(f float64) *CurveSummaryCreate {
	csc.mutation.SetT75(f)
	return csc
}

// SetNillableT75 sets the "t75" field if the given value is not nil.
func (csc *CurveSummaryCreate) SetNillableT75(f *float64) *CurveSummaryCreate {
	if f != nil {
		csc.SetT75(*f)
	}
	return csc
}

// Mutation returns the CurveSummaryMutation object of the builder.
func (csc *CurveSummaryCreate) Mutation() *CurveSummaryMutation {
	return csc.mutation
}

// Save creates the CurveSummary in the database.
func (csc *CurveSummaryCreate) Save(ctx context.Context) (*CurveSummary, error) {
	csc.defaults()
	return withHooks(ctx, csc.sqlSave, csc.mutation, csc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (csc *CurveSummaryCreate) SaveX(ctx context.Context) *CurveSummary {
	v, err := csc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (csc *CurveSummaryCreate) Exec(ctx context.Context) error {
	_, err := csc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (csc *CurveSummaryCreate) ExecX(ctx context.Context) {
	if err := csc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (csc *CurveSummaryCreate) defaults() {
	if _, ok := csc.mutation.FrontloadIndex(); !ok {
		v := curvesummary.DefaultFrontloadIndex
		csc.mutation.SetFrontloadIndex(v)
	}
	if _, ok := csc.mutation.Consistency(); !ok {
		v := curvesummary.DefaultConsistency
		csc.mutation.SetConsistency(v)
	}
	if _, ok := csc.mutation.Burstiness(); !ok {
		v := curvesummary.DefaultBurstiness
		csc.mutation.SetBurstiness(v)
	}
	if _, ok := csc.mutation.T25(); !ok {
		v := curvesummary.DefaultT25
		csc.mutation.SetT25(v)
	}
	if _, ok := csc.mutation.T50(); !ok {
		v := curvesummary.DefaultT50
		csc.mutation.SetT50(v)
	}
	if _, ok := csc.mutation.T75(); !ok {
		v := curvesummary.DefaultT75
		csc.mutation.SetT75(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (csc *CurveSummaryCreate) check() error {
	if _, ok := csc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CurveSummary.user_id"`)}
	}
	if v, ok := csc.mutation.UserID(); ok {
		if err := curvesummary.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CurveSummary.user_id": %w`, err)}
		}
	}
	if _, ok := csc.mutation.EasingLabel(); !ok {
		return &ValidationError{Name: "easing_label", err: errors.New(`ent: missing required field "CurveSummary.easing_label"`)}
	}
	if v, ok := csc.mutation.EasingLabel(); ok {
		if err := curvesummary.EasingLabelValidator(v); err != nil {
			return &ValidationError{Name: "easing_label", err: fmt.Errorf(`ent: validator failed for field "CurveSummary.easing_label": %w`, err)}
		}
	}
	if _, ok := csc.mutation.FrontloadIndex(); !ok {
		return &ValidationError{Name: "frontload_index", err: errors.New(`ent: missing required field "CurveSummary.frontload_index"`)}
	}
	if _, ok := csc.mutation.Consistency(); !ok {
		return &ValidationError{Name: "consistency", err: errors.New(`ent: missing required field "CurveSummary.consistency"`)}
	}
	if _, ok := csc.mutation.Burstiness(); !ok {
		return &ValidationError{Name: "burstiness", err: errors.New(`ent: missing required field "CurveSummary.burstiness"`)}
	}
	if _, ok := csc.mutation.T25(); !ok {
		return &ValidationError{Name: "t25", err: errors.New(`ent: missing required field "CurveSummary.t25"`)}
	}
	if _, ok := csc.mutation.T50(); !ok {
		return &ValidationError{Name: "t50", err: errors.New(`ent: missing required field "CurveSummary.t50"`)}
	}
	if _, ok := csc.mutation.T75(); !ok {
		return &ValidationError{Name: "t75", err: errors.New(`ent: missing required field "CurveSummary.t75"`)}
	}
	return nil
}

func (csc *CurveSummaryCreate) sqlSave(ctx context.Context) (*CurveSummary, error) {
	if err := csc.check(); err != nil {
		return nil, err
	}
	_node, _spec := csc.createSpec()
	if err := sqlgraph.CreateNode(ctx, csc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	csc.mutation.id = &_node.ID
	csc.mutation.done = true
	return _node, nil
}

func (csc *CurveSummaryCreate) createSpec() (*CurveSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &CurveSummary{config: csc.config}
		_spec = sqlgraph.NewCreateSpec(curvesummary.Table, sqlgraph.NewFieldSpec(curvesummary.FieldID, field.TypeInt))
	)
	if value, ok := csc.mutation.UserID(); ok {
		_spec.SetField(curvesummary.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := csc.mutation.EasingLabel(); ok {
		_spec.SetField(curvesummary.FieldEasingLabel, field.TypeString, value)
		_node.EasingLabel = value
	}
	if value, ok := csc.mutation.FrontloadIndex(); ok {
		_spec.SetField(curvesummary.FieldFrontloadIndex, field.TypeFloat64, value)
		_node.FrontloadIndex = value
	}
	if value, ok := csc.mutation.Consistency(); ok {
		_spec.SetField(curvesummary.FieldConsistency, field.TypeFloat64, value)
		_node.Consistency = value
	}
	if value, ok := csc.mutation.Burstiness(); ok {
		_spec.SetField(curvesummary.FieldBurstiness, field.TypeFloat64, value)
		_node.Burstiness = value
	}
	if value, ok := csc.mutation.T25(); ok {
		_spec.SetField(curvesummary.FieldT25, field.TypeFloat64, value)
		_node.T25 = value
	}
	if value, ok := csc.mutation.T50(); ok {
		_spec.SetField(curvesummary.FieldT50, field.TypeFloat64, value)
		_node.T50 = value
	}
	if value, ok := csc.mutation.T75(); ok {
		_spec.SetField(curvesummary.FieldT75, field.TypeFloat64, value)
		_node.T75 = value
	}
	return _node, _spec
}

// CurveSummaryCreateBulk is the builder for creating many CurveSummary entities in bulk.
type CurveSummaryCreateBulk struct {
	config
	err      error
	builders []*CurveSummaryCreate
}

// Save creates the CurveSummary entities in the database.
func (cscb *CurveSummaryCreateBulk) Save(ctx context.Context) ([]*CurveSummary, error) {
	if cscb.err != nil {
		return nil, cscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cscb.builders))
	nodes := make([]*CurveSummary, len(cscb.builders))
	mutators := make([]Mutator, len(cscb.builders))
	for i := range cscb.builders {
		func(i int, root context.Context) {
			builder := cscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CurveSummaryMutation)
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
					_, err = mutators[i+1].Mutate(root, cscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cscb *CurveSummaryCreateBulk) SaveX(ctx context.Context) []*CurveSummary {
	v, err := cscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cscb *CurveSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := cscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cscb *CurveSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := cscb.Exec(ctx); err != nil {
		panic(err)
	}
}
