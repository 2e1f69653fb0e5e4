// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/curvesummary"
	"github.com/abelsk/learnpulse/ent/predicate"
)

// CurveSummaryDelete is the builder for deleting a CurveSummary entity.
type CurveSummaryDelete struct {
	config
	hooks    []Hook
	mutation *CurveSummaryMutation
}

// Where appends a list predicates to the CurveSummaryDelete builder.
func (csd *CurveSummaryDelete) Where(ps ...predicate.CurveSummary) *CurveSummaryDelete {
	csd.mutation.Where(ps...)
	return csd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (csd *CurveSummaryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, csd.sqlExec, csd.mutation, csd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (csd *CurveSummaryDelete) ExecX(ctx context.Context) int {
	n, err := csd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (csd *CurveSummaryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(curvesummary.Table, sqlgraph.NewFieldSpec(curvesummary.FieldID, field.TypeInt))
	if ps := csd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, csd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	csd.mutation.done = true
	return affected, err
}

// CurveSummaryDeleteOne is the builder for deleting a single CurveSummary entity.
type CurveSummaryDeleteOne struct {
	csd *CurveSummaryDelete
}

// Where appends a list predicates to the CurveSummaryDelete builder.
func (csdo *CurveSummaryDeleteOne) Where(ps ...predicate.CurveSummary) *CurveSummaryDeleteOne {
	csdo.csd.mutation.Where(ps...)
	return csdo
}

// Exec executes the deletion query.
func (csdo *CurveSummaryDeleteOne) Exec(ctx context.Context) error {
	n, err := csdo.csd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{curvesummary.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (csdo *CurveSummaryDeleteOne) ExecX(ctx context.Context) {
	if err := csdo.Exec(ctx); err != nil {
		panic(err)
	}
}
