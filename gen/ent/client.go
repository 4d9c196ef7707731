// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ocrmark/ocrmark/gen/ent/batchrun"
	"github.com/ocrmark/ocrmark/gen/ent/ocrjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BatchRun is the client for interacting with the BatchRun builders.
	BatchRun *BatchRunClient
	// OcrJob is the client for interacting with the OcrJob builders.
	OcrJob *OcrJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BatchRun = NewBatchRunClient(c.config)
	c.OcrJob = NewOcrJobClient(c.config)
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
		ctx:      ctx,
		config:   cfg,
		BatchRun: NewBatchRunClient(cfg),
		OcrJob:   NewOcrJobClient(cfg),
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
		ctx:      ctx,
		config:   cfg,
		BatchRun: NewBatchRunClient(cfg),
		OcrJob:   NewOcrJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BatchRun.
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
	c.BatchRun.Use(hooks...)
	c.OcrJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BatchRun.Intercept(interceptors...)
	c.OcrJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BatchRunMutation:
		return c.BatchRun.mutate(ctx, m)
	case *OcrJobMutation:
		return c.OcrJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BatchRunClient is a client for the BatchRun schema.
type BatchRunClient struct {
	config
}

// NewBatchRunClient returns a client for the BatchRun from the given config.
func NewBatchRunClient(c config) *BatchRunClient {
	return &BatchRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchrun.Hooks(f(g(h())))`.
func (c *BatchRunClient) Use(hooks ...Hook) {
	c.hooks.BatchRun = append(c.hooks.BatchRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchrun.Intercept(f(g(h())))`.
func (c *BatchRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchRun = append(c.inters.BatchRun, interceptors...)
}

// Create returns a builder for creating a BatchRun entity.
func (c *BatchRunClient) Create() *BatchRunCreate {
	mutation := newBatchRunMutation(c.config, OpCreate)
	return &BatchRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchRun entities.
func (c *BatchRunClient) CreateBulk(builders ...*BatchRunCreate) *BatchRunCreateBulk {
	return &BatchRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchRunClient) MapCreateBulk(slice any, setFunc func(*BatchRunCreate, int)) *BatchRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchRunCreateBulk{err: fmt.Errorf("calling to BatchRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchRun.
func (c *BatchRunClient) Update() *BatchRunUpdate {
	mutation := newBatchRunMutation(c.config, OpUpdate)
	return &BatchRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchRunClient) UpdateOne(_m *BatchRun) *BatchRunUpdateOne {
	mutation := newBatchRunMutation(c.config, OpUpdateOne, withBatchRun(_m))
	return &BatchRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchRunClient) UpdateOneID(id uuid.UUID) *BatchRunUpdateOne {
	mutation := newBatchRunMutation(c.config, OpUpdateOne, withBatchRunID(id))
	return &BatchRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchRun.
func (c *BatchRunClient) Delete() *BatchRunDelete {
	mutation := newBatchRunMutation(c.config, OpDelete)
	return &BatchRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchRunClient) DeleteOne(_m *BatchRun) *BatchRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchRunClient) DeleteOneID(id uuid.UUID) *BatchRunDeleteOne {
	builder := c.Delete().Where(batchrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchRunDeleteOne{builder}
}

// Query returns a query builder for BatchRun.
func (c *BatchRunClient) Query() *BatchRunQuery {
	return &BatchRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchRun},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchRun entity by its id.
func (c *BatchRunClient) Get(ctx context.Context, id uuid.UUID) (*BatchRun, error) {
	return c.Query().Where(batchrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchRunClient) GetX(ctx context.Context, id uuid.UUID) *BatchRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a BatchRun.
func (c *BatchRunClient) QueryJobs(_m *BatchRun) *OcrJobQuery {
	query := (&OcrJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batchrun.Table, batchrun.FieldID, id),
			sqlgraph.To(ocrjob.Table, ocrjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, batchrun.JobsTable, batchrun.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchRunClient) Hooks() []Hook {
	return c.hooks.BatchRun
}

// Interceptors returns the client interceptors.
func (c *BatchRunClient) Interceptors() []Interceptor {
	return c.inters.BatchRun
}

func (c *BatchRunClient) mutate(ctx context.Context, m *BatchRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchRun mutation op: %q", m.Op())
	}
}

// OcrJobClient is a client for the OcrJob schema.
type OcrJobClient struct {
	config
}

// NewOcrJobClient returns a client for the OcrJob from the given config.
func NewOcrJobClient(c config) *OcrJobClient {
	return &OcrJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ocrjob.Hooks(f(g(h())))`.
func (c *OcrJobClient) Use(hooks ...Hook) {
	c.hooks.OcrJob = append(c.hooks.OcrJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ocrjob.Intercept(f(g(h())))`.
func (c *OcrJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.OcrJob = append(c.inters.OcrJob, interceptors...)
}

// Create returns a builder for creating a OcrJob entity.
func (c *OcrJobClient) Create() *OcrJobCreate {
	mutation := newOcrJobMutation(c.config, OpCreate)
	return &OcrJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OcrJob entities.
func (c *OcrJobClient) CreateBulk(builders ...*OcrJobCreate) *OcrJobCreateBulk {
	return &OcrJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OcrJobClient) MapCreateBulk(slice any, setFunc func(*OcrJobCreate, int)) *OcrJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OcrJobCreateBulk{err: fmt.Errorf("calling to OcrJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OcrJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OcrJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OcrJob.
func (c *OcrJobClient) Update() *OcrJobUpdate {
	mutation := newOcrJobMutation(c.config, OpUpdate)
	return &OcrJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OcrJobClient) UpdateOne(_m *OcrJob) *OcrJobUpdateOne {
	mutation := newOcrJobMutation(c.config, OpUpdateOne, withOcrJob(_m))
	return &OcrJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OcrJobClient) UpdateOneID(id uuid.UUID) *OcrJobUpdateOne {
	mutation := newOcrJobMutation(c.config, OpUpdateOne, withOcrJobID(id))
	return &OcrJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OcrJob.
func (c *OcrJobClient) Delete() *OcrJobDelete {
	mutation := newOcrJobMutation(c.config, OpDelete)
	return &OcrJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OcrJobClient) DeleteOne(_m *OcrJob) *OcrJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OcrJobClient) DeleteOneID(id uuid.UUID) *OcrJobDeleteOne {
	builder := c.Delete().Where(ocrjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OcrJobDeleteOne{builder}
}

// Query returns a query builder for OcrJob.
func (c *OcrJobClient) Query() *OcrJobQuery {
	return &OcrJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOcrJob},
		inters: c.Interceptors(),
	}
}

// Get returns a OcrJob entity by its id.
func (c *OcrJobClient) Get(ctx context.Context, id uuid.UUID) (*OcrJob, error) {
	return c.Query().Where(ocrjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OcrJobClient) GetX(ctx context.Context, id uuid.UUID) *OcrJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a OcrJob.
func (c *OcrJobClient) QueryRun(_m *OcrJob) *BatchRunQuery {
	query := (&BatchRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ocrjob.Table, ocrjob.FieldID, id),
			sqlgraph.To(batchrun.Table, batchrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ocrjob.RunTable, ocrjob.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OcrJobClient) Hooks() []Hook {
	return c.hooks.OcrJob
}

// Interceptors returns the client interceptors.
func (c *OcrJobClient) Interceptors() []Interceptor {
	return c.inters.OcrJob
}

func (c *OcrJobClient) mutate(ctx context.Context, m *OcrJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OcrJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OcrJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OcrJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OcrJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OcrJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BatchRun, OcrJob []ent.Hook
	}
	inters struct {
		BatchRun, OcrJob []ent.Interceptor
	}
)
