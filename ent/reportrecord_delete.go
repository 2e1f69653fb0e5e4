// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/predicate"
	"github.com/abelsk/learnpulse/ent/reportrecord"
)

// ReportRecordDelete is the builder for deleting a ReportRecord entity.
type ReportRecordDelete struct {
	config
	hooks    []Hook
	mutation *ReportRecordMutation
}

// Where appends a list predicates to the ReportRecordDelete builder.
func (rrd *ReportRecordDelete) Where(ps ...predicate.ReportRecord) *ReportRecordDelete {
	rrd.mutation.Where(ps...)
	return rrd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rrd *ReportRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rrd.sqlExec, rrd.mutation, rrd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rrd *ReportRecordDelete) ExecX(ctx context.Context) int {
	n, err := rrd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rrd *ReportRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reportrecord.Table, sqlgraph.NewFieldSpec(reportrecord.FieldID, field.TypeInt))
	if ps := rrd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rrd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rrd.mutation.done = true
	return affected, err
}

// ReportRecordDeleteOne is the builder for deleting a single ReportRecord entity.
type ReportRecordDeleteOne struct {
	rrd *ReportRecordDelete
}

// Where appends a list predicates to the ReportRecordDelete builder.
func (rrdo *ReportRecordDeleteOne) Where(ps ...predicate.ReportRecord) *ReportRecordDeleteOne {
	rrdo.rrd.mutation.Where(ps...)
	return rrdo
}

// Exec executes the deletion query.
func (rrdo *ReportRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := rrdo.rrd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reportrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rrdo *ReportRecordDeleteOne) ExecX(ctx context.Context) {
	if err := rrdo.Exec(ctx); err != nil {
		panic(err)
	}
}
