// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/predicate"
	"github.com/abelsk/learnpulse/ent/seriespoint"
)

// SeriesPointDelete is the builder for deleting a SeriesPoint entity.
type SeriesPointDelete struct {
	config
	hooks    []Hook
	mutation *SeriesPointMutation
}

// Where appends a list predicates to the SeriesPointDelete builder.
func (spd *SeriesPointDelete) Where(ps ...predicate.SeriesPoint) *SeriesPointDelete {
	spd.mutation.Where(ps...)
	return spd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (spd *SeriesPointDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, spd.sqlExec, spd.mutation, spd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (spd *SeriesPointDelete) ExecX(ctx context.Context) int {
	n, err := spd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (spd *SeriesPointDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(seriespoint.Table, sqlgraph.NewFieldSpec(seriespoint.FieldID, field.TypeInt))
	if ps := spd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, spd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	spd.mutation.done = true
	return affected, err
}

// SeriesPointDeleteOne is the builder for deleting a single SeriesPoint entity.
type SeriesPointDeleteOne struct {
	spd *SeriesPointDelete
}

// Where appends a list predicates to the SeriesPointDelete builder.
func (spdo *SeriesPointDeleteOne) Where(ps ...predicate.SeriesPoint) *SeriesPointDeleteOne {
	spdo.spd.mutation.Where(ps...)
	return spdo
}

// Exec executes the deletion query.
func (spdo *SeriesPointDeleteOne) Exec(ctx context.Context) error {
	n, err := spdo.spd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{seriespoint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (spdo *SeriesPointDeleteOne) ExecX(ctx context.Context) {
	if err := spdo.Exec(ctx); err != nil {
		panic(err)
	}
}
