// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/performancerow"
	"github.com/abelsk/learnpulse/ent/predicate"
)

// PerformanceRowDelete is the builder for deleting a PerformanceRow entity.
type PerformanceRowDelete struct {
	config
	hooks    []Hook
	mutation *PerformanceRowMutation
}

// Where appends a list predicates to the PerformanceRowDelete builder.
func (prd *PerformanceRowDelete) Where(ps ...predicate.PerformanceRow) *PerformanceRowDelete {
	prd.mutation.Where(ps...)
	return prd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (prd *PerformanceRowDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, prd.sqlExec, prd.mutation, prd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (prd *PerformanceRowDelete) ExecX(ctx context.Context) int {
	n, err := prd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (prd *PerformanceRowDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(performancerow.Table, sqlgraph.NewFieldSpec(performancerow.FieldID, field.TypeInt))
	if ps := prd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, prd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	prd.mutation.done = true
	return affected, err
}

// PerformanceRowDeleteOne is the builder for deleting a single PerformanceRow entity.
type PerformanceRowDeleteOne struct {
	prd *PerformanceRowDelete
}

// Where appends a list predicates to the PerformanceRowDelete builder.
func (prdo *PerformanceRowDeleteOne) Where(ps ...predicate.PerformanceRow) *PerformanceRowDeleteOne {
	prdo.prd.mutation.Where(ps...)
	return prdo
}

// Exec executes the deletion query.
func (prdo *PerformanceRowDeleteOne) Exec(ctx context.Context) error {
	n, err := prdo.prd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{performancerow.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (prdo *PerformanceRowDeleteOne) ExecX(ctx context.Context) {
	if err := prdo.Exec(ctx); err != nil {
		panic(err)
	}
}
