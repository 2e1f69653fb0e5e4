// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abelsk/learnpulse/ent/predicate"
	"github.com/abelsk/learnpulse/ent/reportrecord"
)

// ReportRecordQuery is the builder for querying ReportRecord entities.
type ReportRecordQuery struct {
	config
	ctx        *QueryContext
	order      []reportrecord.OrderOption
	inters     []Interceptor
	predicates []predicate.ReportRecord
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReportRecordQuery builder.
func (rrq *ReportRecordQuery) Where(ps ...predicate.ReportRecord) *ReportRecordQuery {
	rrq.predicates = append(rrq.predicates, ps...)
	return rrq
}

// Limit the number of records to be returned by this query.
func (rrq *ReportRecordQuery) Limit(limit int) *ReportRecordQuery {
	rrq.ctx.Limit = &limit
	return rrq
}

// Offset to start from.
func (rrq *ReportRecordQuery) Offset(offset int) *ReportRecordQuery {
	rrq.ctx.Offset = &offset
	return rrq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (rrq *ReportRecordQuery) Unique(unique bool) *ReportRecordQuery {
	rrq.ctx.Unique = &unique
	return rrq
}

// Order specifies how the records should be ordered.
func (rrq *ReportRecordQuery) Order(o ...reportrecord.OrderOption) *ReportRecordQuery {
	rrq.order = append(rrq.order, o...)
	return rrq
}

// First returns the first ReportRecord entity from the query.
// Returns a *NotFoundError when no ReportRecord was found.
func (rrq *ReportRecordQuery) First(ctx context.Context) (*ReportRecord, error) {
	nodes, err := rrq.Limit(1).All(setContextOp(ctx, rrq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reportrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (rrq *ReportRecordQuery) FirstX(ctx context.Context) *ReportRecord {
	node, err := rrq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReportRecord ID from the query.
// Returns a *NotFoundError when no ReportRecord ID was found.
func (rrq *ReportRecordQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rrq.Limit(1).IDs(setContextOp(ctx, rrq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reportrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (rrq *ReportRecordQuery) FirstIDX(ctx context.Context) int {
	id, err := rrq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReportRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReportRecord entity is found.
// Returns a *NotFoundError when no ReportRecord entities are found.
func (rrq *ReportRecordQuery) Only(ctx context.Context) (*ReportRecord, error) {
	nodes, err := rrq.Limit(2).All(setContextOp(ctx, rrq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reportrecord.Label}
	default:
		return nil, &NotSingularError{reportrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (rrq *ReportRecordQuery) OnlyX(ctx context.Context) *ReportRecord {
	node, err := rrq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReportRecord ID in the query.
// Returns a *NotSingularError when more than one ReportRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (rrq *ReportRecordQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rrq.Limit(2).IDs(setContextOp(ctx, rrq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reportrecord.Label}
	default:
		err = &NotSingularError{reportrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (rrq *ReportRecordQuery) OnlyIDX(ctx context.Context) int {
	id, err := rrq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReportRecords.
func (rrq *ReportRecordQuery) All(ctx context.Context) ([]*ReportRecord, error) {
	ctx = setContextOp(ctx, rrq.ctx, ent.OpQueryAll)
	if err := rrq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReportRecord, *ReportRecordQuery]()
	return withInterceptors[[]*ReportRecord](ctx, rrq, qr, rrq.inters)
}

// AllX is like All, but panics if an error occurs.
func (rrq *ReportRecordQuery) AllX(ctx context.Context) []*ReportRecord {
	nodes, err := rrq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReportRecord IDs.
func (rrq *ReportRecordQuery) IDs(ctx context.Context) (ids []int, err error) {
	if rrq.ctx.Unique == nil && rrq.path != nil {
		rrq.Unique(true)
	}
	ctx = setContextOp(ctx, rrq.ctx, ent.OpQueryIDs)
	if err = rrq.Select(reportrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (rrq *ReportRecordQuery) IDsX(ctx context.Context) []int {
	ids, err := rrq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (rrq *ReportRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, rrq.ctx, ent.OpQueryCount)
	if err := rrq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, rrq, querierCount[*ReportRecordQuery](), rrq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (rrq *ReportRecordQuery) CountX(ctx context.Context) int {
	count, err := rrq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (rrq *ReportRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, rrq.ctx, ent.OpQueryExist)
	switch _, err := rrq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (rrq *ReportRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := rrq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReportRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (rrq *ReportRecordQuery) Clone() *ReportRecordQuery {
	if rrq == nil {
		return nil
	}
	return &ReportRecordQuery{
		config:     rrq.config,
		ctx:        rrq.ctx.Clone(),
		order:      append([]reportrecord.OrderOption{}, rrq.order...),
		inters:     append([]Interceptor{}, rrq.inters...),
		predicates: append([]predicate.ReportRecord{}, rrq.predicates...),
		// clone intermediate query.
		sql:  rrq.sql.Clone(),
		path: rrq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ReportID string `json:"report_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReportRecord.Query().
//		GroupBy(reportrecord.FieldReportID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (rrq *ReportRecordQuery) GroupBy(field string, fields ...string) *ReportRecordGroupBy {
	rrq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReportRecordGroupBy{build: rrq}
	grbuild.flds = &rrq.ctx.Fields
	grbuild.label = reportrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ReportID string `json:"report_id,omitempty"`
//	}
//
//	client.ReportRecord.Query().
//		Select(reportrecord.FieldReportID).
//		Scan(ctx, &v)
func (rrq *ReportRecordQuery) Select(fields ...string) *ReportRecordSelect {
	rrq.ctx.Fields = append(rrq.ctx.Fields, fields...)
	sbuild := &ReportRecordSelect{ReportRecordQuery: rrq}
	sbuild.label = reportrecord.Label
	sbuild.flds, sbuild.scan = &rrq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReportRecordSelect configured with the given aggregations.
func (rrq *ReportRecordQuery) Aggregate(fns ...AggregateFunc) *ReportRecordSelect {
	return rrq.Select().Aggregate(fns...)
}

func (rrq *ReportRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range rrq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, rrq); err != nil {
				return err
			}
		}
	}
	for _, f := range rrq.ctx.Fields {
		if !reportrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if rrq.path != nil {
		prev, err := rrq.path(ctx)
		if err != nil {
			return err
		}
		rrq.sql = prev
	}
	return nil
}

func (rrq *ReportRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReportRecord, error) {
	var (
		nodes = []*ReportRecord{}
		_spec = rrq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReportRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReportRecord{config: rrq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, rrq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (rrq *ReportRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := rrq.querySpec()
	_spec.Node.Columns = rrq.ctx.Fields
	if len(rrq.ctx.Fields) > 0 {
		_spec.Unique = rrq.ctx.Unique != nil && *rrq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, rrq.driver, _spec)
}

func (rrq *ReportRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reportrecord.Table, reportrecord.Columns, sqlgraph.NewFieldSpec(reportrecord.FieldID, field.TypeInt))
	_spec.From = rrq.sql
	if unique := rrq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if rrq.path != nil {
		_spec.Unique = true
	}
	if fields := rrq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportrecord.FieldID)
		for i := range fields {
			if fields[i] != reportrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := rrq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := rrq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := rrq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := rrq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (rrq *ReportRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(rrq.driver.Dialect())
	t1 := builder.Table(reportrecord.Table)
	columns := rrq.ctx.Fields
	if len(columns) == 0 {
		columns = reportrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if rrq.sql != nil {
		selector = rrq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if rrq.ctx.Unique != nil && *rrq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range rrq.predicates {
		p(selector)
	}
	for _, p := range rrq.order {
		p(selector)
	}
	if offset := rrq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := rrq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ReportRecordGroupBy is the group-by builder for ReportRecord entities.
type ReportRecordGroupBy struct {
	selector
	build *ReportRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rrgb *ReportRecordGroupBy) Aggregate(fns ...AggregateFunc) *ReportRecordGroupBy {
	rrgb.fns = append(rrgb.fns, fns...)
	return rrgb
}

// Scan applies the selector query and scans the result into the given value.
func (rrgb *ReportRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rrgb.build.ctx, ent.OpQueryGroupBy)
	if err := rrgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportRecordQuery, *ReportRecordGroupBy](ctx, rrgb.build, rrgb, rrgb.build.inters, v)
}

func (rrgb *ReportRecordGroupBy) sqlScan(ctx context.Context, root *ReportRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rrgb.fns))
	for _, fn := range rrgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rrgb.flds)+len(rrgb.fns))
		for _, f := range *rrgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rrgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rrgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReportRecordSelect is the builder for selecting fields of ReportRecord entities.
type ReportRecordSelect struct {
	*ReportRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (rrs *ReportRecordSelect) Aggregate(fns ...AggregateFunc) *ReportRecordSelect {
	rrs.fns = append(rrs.fns, fns...)
	return rrs
}

// Scan applies the selector query and scans the result into the given value.
func (rrs *ReportRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rrs.ctx, ent.OpQuerySelect)
	if err := rrs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportRecordQuery, *ReportRecordSelect](ctx, rrs.ReportRecordQuery, rrs, rrs.inters, v)
}

func (rrs *ReportRecordSelect) sqlScan(ctx context.Context, root *ReportRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(rrs.fns))
	for _, fn := range rrs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*rrs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rrs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
