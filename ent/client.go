// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abelsk/learnpulse/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abelsk/learnpulse/ent/curvesummary"
	"github.com/abelsk/learnpulse/ent/performancerow"
	"github.com/abelsk/learnpulse/ent/reportrecord"
	"github.com/abelsk/learnpulse/ent/seriespoint"
	"github.com/abelsk/learnpulse/ent/submissionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CurveSummary is the client for interacting with the CurveSummary builders.
	CurveSummary *CurveSummaryClient
	// PerformanceRow is the client for interacting with the PerformanceRow builders.
	PerformanceRow *PerformanceRowClient
	// ReportRecord is the client for interacting with the ReportRecord builders.
	ReportRecord *ReportRecordClient
	// SeriesPoint is the client for interacting with the SeriesPoint builders.
	SeriesPoint *SeriesPointClient
	// SubmissionEvent is the client for interacting with the SubmissionEvent builders.
	SubmissionEvent *SubmissionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CurveSummary = NewCurveSummaryClient(c.config)
	c.PerformanceRow = NewPerformanceRowClient(c.config)
	c.ReportRecord = NewReportRecordClient(c.config)
	c.SeriesPoint = NewSeriesPointClient(c.config)
	c.SubmissionEvent = NewSubmissionEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		CurveSummary:    NewCurveSummaryClient(cfg),
		PerformanceRow:  NewPerformanceRowClient(cfg),
		ReportRecord:    NewReportRecordClient(cfg),
		SeriesPoint:     NewSeriesPointClient(cfg),
		SubmissionEvent: NewSubmissionEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		CurveSummary:    NewCurveSummaryClient(cfg),
		PerformanceRow:  NewPerformanceRowClient(cfg),
		ReportRecord:    NewReportRecordClient(cfg),
		SeriesPoint:     NewSeriesPointClient(cfg),
		SubmissionEvent: NewSubmissionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CurveSummary.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CurveSummary.Use(hooks...)
	c.PerformanceRow.Use(hooks...)
	c.ReportRecord.Use(hooks...)
	c.SeriesPoint.Use(hooks...)
	c.SubmissionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CurveSummary.Intercept(interceptors...)
	c.PerformanceRow.Intercept(interceptors...)
	c.ReportRecord.Intercept(interceptors...)
	c.SeriesPoint.Intercept(interceptors...)
	c.SubmissionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CurveSummaryMutation:
		return c.CurveSummary.mutate(ctx, m)
	case *PerformanceRowMutation:
		return c.PerformanceRow.mutate(ctx, m)
	case *ReportRecordMutation:
		return c.ReportRecord.mutate(ctx, m)
	case *SeriesPointMutation:
		return c.SeriesPoint.mutate(ctx, m)
	case *SubmissionEventMutation:
		return c.SubmissionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CurveSummaryClient is a client for the CurveSummary schema.
type CurveSummaryClient struct {
	config
}

// NewCurveSummaryClient returns a client for the CurveSummary from the given config.
func NewCurveSummaryClient(c config) *CurveSummaryClient {
	return &CurveSummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `curvesummary.Hooks(f(g(h())))`.
func (c *CurveSummaryClient) Use(hooks ...Hook) {
	c.hooks.CurveSummary = append(c.hooks.CurveSummary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `curvesummary.Intercept(f(g(h())))`.
func (c *CurveSummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CurveSummary = append(c.inters.CurveSummary, interceptors...)
}

// Create returns a builder for creating a CurveSummary entity.
func (c *CurveSummaryClient) Create() *CurveSummaryCreate {
	mutation := newCurveSummaryMutation(c.config, OpCreate)
	return &CurveSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CurveSummary entities.
func (c *CurveSummaryClient) CreateBulk(builders ...*CurveSummaryCreate) *CurveSummaryCreateBulk {
	return &CurveSummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CurveSummaryClient) MapCreateBulk(slice any, setFunc func(*CurveSummaryCreate, int)) *CurveSummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CurveSummaryCreateBulk{err: fmt.Errorf("calling to CurveSummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CurveSummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CurveSummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CurveSummary.
func (c *CurveSummaryClient) Update() *CurveSummaryUpdate {
	mutation := newCurveSummaryMutation(c.config, OpUpdate)
	return &CurveSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CurveSummaryClient) UpdateOne(cs *CurveSummary) *CurveSummaryUpdateOne {
	mutation := newCurveSummaryMutation(c.config, OpUpdateOne, withCurveSummary(cs))
	return &CurveSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CurveSummaryClient) UpdateOneID(id int) *CurveSummaryUpdateOne {
	mutation := newCurveSummaryMutation(c.config, OpUpdateOne, withCurveSummaryID(id))
	return &CurveSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CurveSummary.
func (c *CurveSummaryClient) Delete() *CurveSummaryDelete {
	mutation := newCurveSummaryMutation(c.config, OpDelete)
	return &CurveSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CurveSummaryClient) DeleteOne(cs *CurveSummary) *CurveSummaryDeleteOne {
	return c.DeleteOneID(cs.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CurveSummaryClient) DeleteOneID(id int) *CurveSummaryDeleteOne {
	builder := c.Delete().Where(curvesummary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CurveSummaryDeleteOne{builder}
}

// Query returns a query builder for CurveSummary.
func (c *CurveSummaryClient) Query() *CurveSummaryQuery {
	return &CurveSummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCurveSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a CurveSummary entity by its id.
func (c *CurveSummaryClient) Get(ctx context.Context, id int) (*CurveSummary, error) {
	return c.Query().Where(curvesummary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CurveSummaryClient) GetX(ctx context.Context, id int) *CurveSummary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CurveSummaryClient) Hooks() []Hook {
	return c.hooks.CurveSummary
}

// Interceptors returns the client interceptors.
func (c *CurveSummaryClient) Interceptors() []Interceptor {
	return c.inters.CurveSummary
}

func (c *CurveSummaryClient) mutate(ctx context.Context, m *CurveSummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CurveSummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CurveSummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CurveSummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CurveSummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CurveSummary mutation op: %q", m.Op())
	}
}

// PerformanceRowClient is a client for the PerformanceRow schema.
type PerformanceRowClient struct {
	config
}

// NewPerformanceRowClient returns a client for the PerformanceRow from the given config.
func NewPerformanceRowClient(c config) *PerformanceRowClient {
	return &PerformanceRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `performancerow.Hooks(f(g(h())))`.
func (c *PerformanceRowClient) Use(hooks ...Hook) {
	c.hooks.PerformanceRow = append(c.hooks.PerformanceRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `performancerow.Intercept(f(g(h())))`.
func (c *PerformanceRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.PerformanceRow = append(c.inters.PerformanceRow, interceptors...)
}

// Create returns a builder for creating a PerformanceRow entity.
func (c *PerformanceRowClient) Create() *PerformanceRowCreate {
	mutation := newPerformanceRowMutation(c.config, OpCreate)
	return &PerformanceRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PerformanceRow entities.
func (c *PerformanceRowClient) CreateBulk(builders ...*PerformanceRowCreate) *PerformanceRowCreateBulk {
	return &PerformanceRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PerformanceRowClient) MapCreateBulk(slice any, setFunc func(*PerformanceRowCreate, int)) *PerformanceRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PerformanceRowCreateBulk{err: fmt.Errorf("calling to PerformanceRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PerformanceRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PerformanceRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PerformanceRow.
func (c *PerformanceRowClient) Update() *PerformanceRowUpdate {
	mutation := newPerformanceRowMutation(c.config, OpUpdate)
	return &PerformanceRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PerformanceRowClient) UpdateOne(pr *PerformanceRow) *PerformanceRowUpdateOne {
	mutation := newPerformanceRowMutation(c.config, OpUpdateOne, withPerformanceRow(pr))
	return &PerformanceRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PerformanceRowClient) UpdateOneID(id int) *PerformanceRowUpdateOne {
	mutation := newPerformanceRowMutation(c.config, OpUpdateOne, withPerformanceRowID(id))
	return &PerformanceRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PerformanceRow.
func (c *PerformanceRowClient) Delete() *PerformanceRowDelete {
	mutation := newPerformanceRowMutation(c.config, OpDelete)
	return &PerformanceRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PerformanceRowClient) DeleteOne(pr *PerformanceRow) *PerformanceRowDeleteOne {
	return c.DeleteOneID(pr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PerformanceRowClient) DeleteOneID(id int) *PerformanceRowDeleteOne {
	builder := c.Delete().Where(performancerow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PerformanceRowDeleteOne{builder}
}

// Query returns a query builder for PerformanceRow.
func (c *PerformanceRowClient) Query() *PerformanceRowQuery {
	return &PerformanceRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerformanceRow},
		inters: c.Interceptors(),
	}
}

// Get returns a PerformanceRow entity by its id.
func (c *PerformanceRowClient) Get(ctx context.Context, id int) (*PerformanceRow, error) {
	return c.Query().Where(performancerow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PerformanceRowClient) GetX(ctx context.Context, id int) *PerformanceRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PerformanceRowClient) Hooks() []Hook {
	return c.hooks.PerformanceRow
}

// Interceptors returns the client interceptors.
func (c *PerformanceRowClient) Interceptors() []Interceptor {
	return c.inters.PerformanceRow
}

func (c *PerformanceRowClient) mutate(ctx context.Context, m *PerformanceRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PerformanceRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PerformanceRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PerformanceRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PerformanceRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PerformanceRow mutation op: %q", m.Op())
	}
}

// ReportRecordClient is a client for the ReportRecord schema.
type ReportRecordClient struct {
	config
}

// NewReportRecordClient returns a client for the ReportRecord from the given config.
func NewReportRecordClient(c config) *ReportRecordClient {
	return &ReportRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportrecord.Hooks(f(g(h())))`.
func (c *ReportRecordClient) Use(hooks ...Hook) {
	c.hooks.ReportRecord = append(c.hooks.ReportRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportrecord.Intercept(f(g(h())))`.
func (c *ReportRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportRecord = append(c.inters.ReportRecord, interceptors...)
}

// Create returns a builder for creating a ReportRecord entity.
func (c *ReportRecordClient) Create() *ReportRecordCreate {
	mutation := newReportRecordMutation(c.config, OpCreate)
	return &ReportRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportRecord entities.
func (c *ReportRecordClient) CreateBulk(builders ...*ReportRecordCreate) *ReportRecordCreateBulk {
	return &ReportRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportRecordClient) MapCreateBulk(slice any, setFunc func(*ReportRecordCreate, int)) *ReportRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportRecordCreateBulk{err: fmt.Errorf("calling to ReportRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportRecord.
func (c *ReportRecordClient) Update() *ReportRecordUpdate {
	mutation := newReportRecordMutation(c.config, OpUpdate)
	return &ReportRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportRecordClient) UpdateOne(rr *ReportRecord) *ReportRecordUpdateOne {
	mutation := newReportRecordMutation(c.config, OpUpdateOne, withReportRecord(rr))
	return &ReportRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportRecordClient) UpdateOneID(id int) *ReportRecordUpdateOne {
	mutation := newReportRecordMutation(c.config, OpUpdateOne, withReportRecordID(id))
	return &ReportRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportRecord.
func (c *ReportRecordClient) Delete() *ReportRecordDelete {
	mutation := newReportRecordMutation(c.config, OpDelete)
	return &ReportRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportRecordClient) DeleteOne(rr *ReportRecord) *ReportRecordDeleteOne {
	return c.DeleteOneID(rr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportRecordClient) DeleteOneID(id int) *ReportRecordDeleteOne {
	builder := c.Delete().Where(reportrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportRecordDeleteOne{builder}
}

// Query returns a query builder for ReportRecord.
func (c *ReportRecordClient) Query() *ReportRecordQuery {
	return &ReportRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportRecord entity by its id.
func (c *ReportRecordClient) Get(ctx context.Context, id int) (*ReportRecord, error) {
	return c.Query().Where(reportrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportRecordClient) GetX(ctx context.Context, id int) *ReportRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReportRecordClient) Hooks() []Hook {
	return c.hooks.ReportRecord
}

// Interceptors returns the client interceptors.
func (c *ReportRecordClient) Interceptors() []Interceptor {
	return c.inters.ReportRecord
}

func (c *ReportRecordClient) mutate(ctx context.Context, m *ReportRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportRecord mutation op: %q", m.Op())
	}
}

// SeriesPointClient is a client for the SeriesPoint schema.
type SeriesPointClient struct {
	config
}

// NewSeriesPointClient returns a client for the SeriesPoint from the given config.
func NewSeriesPointClient(c config) *SeriesPointClient {
	return &SeriesPointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `seriespoint.Hooks(f(g(h())))`.
func (c *SeriesPointClient) Use(hooks ...Hook) {
	c.hooks.SeriesPoint = append(c.hooks.SeriesPoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `seriespoint.Intercept(f(g(h())))`.
func (c *SeriesPointClient) Intercept(interceptors ...Interceptor) {
	c.inters.SeriesPoint = append(c.inters.SeriesPoint, interceptors...)
}

// Create returns a builder for creating a SeriesPoint entity.
func (c *SeriesPointClient) Create() *SeriesPointCreate {
	mutation := newSeriesPointMutation(c.config, OpCreate)
	return &SeriesPointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SeriesPoint entities.
func (c *SeriesPointClient) CreateBulk(builders ...*SeriesPointCreate) *SeriesPointCreateBulk {
	return &SeriesPointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SeriesPointClient) MapCreateBulk(slice any, setFunc func(*SeriesPointCreate, int)) *SeriesPointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SeriesPointCreateBulk{err: fmt.Errorf("calling to SeriesPointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SeriesPointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SeriesPointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SeriesPoint.
func (c *SeriesPointClient) Update() *SeriesPointUpdate {
	mutation := newSeriesPointMutation(c.config, OpUpdate)
	return &SeriesPointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SeriesPointClient) UpdateOne(sp *SeriesPoint) *SeriesPointUpdateOne {
	mutation := newSeriesPointMutation(c.config, OpUpdateOne, withSeriesPoint(sp))
	return &SeriesPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SeriesPointClient) UpdateOneID(id int) *SeriesPointUpdateOne {
	mutation := newSeriesPointMutation(c.config, OpUpdateOne, withSeriesPointID(id))
	return &SeriesPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SeriesPoint.
func (c *SeriesPointClient) Delete() *SeriesPointDelete {
	mutation := newSeriesPointMutation(c.config, OpDelete)
	return &SeriesPointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SeriesPointClient) DeleteOne(sp *SeriesPoint) *SeriesPointDeleteOne {
	return c.DeleteOneID(sp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SeriesPointClient) DeleteOneID(id int) *SeriesPointDeleteOne {
	builder := c.Delete().Where(seriespoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SeriesPointDeleteOne{builder}
}

// Query returns a query builder for SeriesPoint.
func (c *SeriesPointClient) Query() *SeriesPointQuery {
	return &SeriesPointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSeriesPoint},
		inters: c.Interceptors(),
	}
}

// Get returns a SeriesPoint entity by its id.
func (c *SeriesPointClient) Get(ctx context.Context, id int) (*SeriesPoint, error) {
	return c.Query().Where(seriespoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SeriesPointClient) GetX(ctx context.Context, id int) *SeriesPoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SeriesPointClient) Hooks() []Hook {
	return c.hooks.SeriesPoint
}

// Interceptors returns the client interceptors.
func (c *SeriesPointClient) Interceptors() []Interceptor {
	return c.inters.SeriesPoint
}

func (c *SeriesPointClient) mutate(ctx context.Context, m *SeriesPointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SeriesPointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SeriesPointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SeriesPointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SeriesPointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SeriesPoint mutation op: %q", m.Op())
	}
}

// SubmissionEventClient is a client for the SubmissionEvent schema.
type SubmissionEventClient struct {
	config
}

// NewSubmissionEventClient returns a client for the SubmissionEvent from the given config.
func NewSubmissionEventClient(c config) *SubmissionEventClient {
	return &SubmissionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submissionevent.Hooks(f(g(h())))`.
func (c *SubmissionEventClient) Use(hooks ...Hook) {
	c.hooks.SubmissionEvent = append(c.hooks.SubmissionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submissionevent.Intercept(f(g(h())))`.
func (c *SubmissionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubmissionEvent = append(c.inters.SubmissionEvent, interceptors...)
}

// Create returns a builder for creating a SubmissionEvent entity.
func (c *SubmissionEventClient) Create() *SubmissionEventCreate {
	mutation := newSubmissionEventMutation(c.config, OpCreate)
	return &SubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubmissionEvent entities.
func (c *SubmissionEventClient) CreateBulk(builders ...*SubmissionEventCreate) *SubmissionEventCreateBulk {
	return &SubmissionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionEventClient) MapCreateBulk(slice any, setFunc func(*SubmissionEventCreate, int)) *SubmissionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionEventCreateBulk{err: fmt.Errorf("calling to SubmissionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubmissionEvent.
func (c *SubmissionEventClient) Update() *SubmissionEventUpdate {
	mutation := newSubmissionEventMutation(c.config, OpUpdate)
	return &SubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionEventClient) UpdateOne(se *SubmissionEvent) *SubmissionEventUpdateOne {
	mutation := newSubmissionEventMutation(c.config, OpUpdateOne, withSubmissionEvent(se))
	return &SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionEventClient) UpdateOneID(id int) *SubmissionEventUpdateOne {
	mutation := newSubmissionEventMutation(c.config, OpUpdateOne, withSubmissionEventID(id))
	return &SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubmissionEvent.
func (c *SubmissionEventClient) Delete() *SubmissionEventDelete {
	mutation := newSubmissionEventMutation(c.config, OpDelete)
	return &SubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionEventClient) DeleteOne(se *SubmissionEvent) *SubmissionEventDeleteOne {
	return c.DeleteOneID(se.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionEventClient) DeleteOneID(id int) *SubmissionEventDeleteOne {
	builder := c.Delete().Where(submissionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionEventDeleteOne{builder}
}

// Query returns a query builder for SubmissionEvent.
func (c *SubmissionEventClient) Query() *SubmissionEventQuery {
	return &SubmissionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmissionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SubmissionEvent entity by its id.
func (c *SubmissionEventClient) Get(ctx context.Context, id int) (*SubmissionEvent, error) {
	return c.Query().Where(submissionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionEventClient) GetX(ctx context.Context, id int) *SubmissionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubmissionEventClient) Hooks() []Hook {
	return c.hooks.SubmissionEvent
}

// Interceptors returns the client interceptors.
func (c *SubmissionEventClient) Interceptors() []Interceptor {
	return c.inters.SubmissionEvent
}

func (c *SubmissionEventClient) mutate(ctx context.Context, m *SubmissionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubmissionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CurveSummary, PerformanceRow, ReportRecord, SeriesPoint,
		SubmissionEvent []ent.Hook
	}
	inters struct {
		CurveSummary, PerformanceRow, ReportRecord, SeriesPoint,
		SubmissionEvent []ent.Interceptor
	}
)
