// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/pixelrelay/upscaled/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pixelrelay/upscaled/ent/processedcallback"
	"github.com/pixelrelay/upscaled/ent/tile"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ProcessedCallback is the client for interacting with the ProcessedCallback builders.
	ProcessedCallback *ProcessedCallbackClient
	// Tile is the client for interacting with the Tile builders.
	Tile *TileClient
	// UpscaleJob is the client for interacting with the UpscaleJob builders.
	UpscaleJob *UpscaleJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ProcessedCallback = NewProcessedCallbackClient(c.config)
	c.Tile = NewTileClient(c.config)
	c.UpscaleJob = NewUpscaleJobClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ProcessedCallback: NewProcessedCallbackClient(cfg),
		Tile:              NewTileClient(cfg),
		UpscaleJob:        NewUpscaleJobClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ProcessedCallback: NewProcessedCallbackClient(cfg),
		Tile:              NewTileClient(cfg),
		UpscaleJob:        NewUpscaleJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ProcessedCallback.
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
	c.ProcessedCallback.Use(hooks...)
	c.Tile.Use(hooks...)
	c.UpscaleJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ProcessedCallback.Intercept(interceptors...)
	c.Tile.Intercept(interceptors...)
	c.UpscaleJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ProcessedCallbackMutation:
		return c.ProcessedCallback.mutate(ctx, m)
	case *TileMutation:
		return c.Tile.mutate(ctx, m)
	case *UpscaleJobMutation:
		return c.UpscaleJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ProcessedCallbackClient is a client for the ProcessedCallback schema.
type ProcessedCallbackClient struct {
	config
}

// NewProcessedCallbackClient returns a client for the ProcessedCallback from the given config.
func NewProcessedCallbackClient(c config) *ProcessedCallbackClient {
	return &ProcessedCallbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processedcallback.Hooks(f(g(h())))`.
func (c *ProcessedCallbackClient) Use(hooks ...Hook) {
	c.hooks.ProcessedCallback = append(c.hooks.ProcessedCallback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processedcallback.Intercept(f(g(h())))`.
func (c *ProcessedCallbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedCallback = append(c.inters.ProcessedCallback, interceptors...)
}

// Create returns a builder for creating a ProcessedCallback entity.
func (c *ProcessedCallbackClient) Create() *ProcessedCallbackCreate {
	mutation := newProcessedCallbackMutation(c.config, OpCreate)
	return &ProcessedCallbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedCallback entities.
func (c *ProcessedCallbackClient) CreateBulk(builders ...*ProcessedCallbackCreate) *ProcessedCallbackCreateBulk {
	return &ProcessedCallbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedCallbackClient) MapCreateBulk(slice any, setFunc func(*ProcessedCallbackCreate, int)) *ProcessedCallbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedCallbackCreateBulk{err: fmt.Errorf("calling to ProcessedCallbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedCallbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedCallbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedCallback.
func (c *ProcessedCallbackClient) Update() *ProcessedCallbackUpdate {
	mutation := newProcessedCallbackMutation(c.config, OpUpdate)
	return &ProcessedCallbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedCallbackClient) UpdateOne(_m *ProcessedCallback) *ProcessedCallbackUpdateOne {
	mutation := newProcessedCallbackMutation(c.config, OpUpdateOne, withProcessedCallback(_m))
	return &ProcessedCallbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedCallbackClient) UpdateOneID(id string) *ProcessedCallbackUpdateOne {
	mutation := newProcessedCallbackMutation(c.config, OpUpdateOne, withProcessedCallbackID(id))
	return &ProcessedCallbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedCallback.
func (c *ProcessedCallbackClient) Delete() *ProcessedCallbackDelete {
	mutation := newProcessedCallbackMutation(c.config, OpDelete)
	return &ProcessedCallbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedCallbackClient) DeleteOne(_m *ProcessedCallback) *ProcessedCallbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedCallbackClient) DeleteOneID(id string) *ProcessedCallbackDeleteOne {
	builder := c.Delete().Where(processedcallback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedCallbackDeleteOne{builder}
}

// Query returns a query builder for ProcessedCallback.
func (c *ProcessedCallbackClient) Query() *ProcessedCallbackQuery {
	return &ProcessedCallbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedCallback},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedCallback entity by its id.
func (c *ProcessedCallbackClient) Get(ctx context.Context, id string) (*ProcessedCallback, error) {
	return c.Query().Where(processedcallback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedCallbackClient) GetX(ctx context.Context, id string) *ProcessedCallback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessedCallbackClient) Hooks() []Hook {
	return c.hooks.ProcessedCallback
}

// Interceptors returns the client interceptors.
func (c *ProcessedCallbackClient) Interceptors() []Interceptor {
	return c.inters.ProcessedCallback
}

func (c *ProcessedCallbackClient) mutate(ctx context.Context, m *ProcessedCallbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedCallbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedCallbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedCallbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedCallbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessedCallback mutation op: %q", m.Op())
	}
}

// TileClient is a client for the Tile schema.
type TileClient struct {
	config
}

// NewTileClient returns a client for the Tile from the given config.
func NewTileClient(c config) *TileClient {
	return &TileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tile.Hooks(f(g(h())))`.
func (c *TileClient) Use(hooks ...Hook) {
	c.hooks.Tile = append(c.hooks.Tile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tile.Intercept(f(g(h())))`.
func (c *TileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tile = append(c.inters.Tile, interceptors...)
}

// Create returns a builder for creating a Tile entity.
func (c *TileClient) Create() *TileCreate {
	mutation := newTileMutation(c.config, OpCreate)
	return &TileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tile entities.
func (c *TileClient) CreateBulk(builders ...*TileCreate) *TileCreateBulk {
	return &TileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TileClient) MapCreateBulk(slice any, setFunc func(*TileCreate, int)) *TileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TileCreateBulk{err: fmt.Errorf("calling to TileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tile.
func (c *TileClient) Update() *TileUpdate {
	mutation := newTileMutation(c.config, OpUpdate)
	return &TileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TileClient) UpdateOne(_m *Tile) *TileUpdateOne {
	mutation := newTileMutation(c.config, OpUpdateOne, withTile(_m))
	return &TileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TileClient) UpdateOneID(id int) *TileUpdateOne {
	mutation := newTileMutation(c.config, OpUpdateOne, withTileID(id))
	return &TileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tile.
func (c *TileClient) Delete() *TileDelete {
	mutation := newTileMutation(c.config, OpDelete)
	return &TileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TileClient) DeleteOne(_m *Tile) *TileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TileClient) DeleteOneID(id int) *TileDeleteOne {
	builder := c.Delete().Where(tile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TileDeleteOne{builder}
}

// Query returns a query builder for Tile.
func (c *TileClient) Query() *TileQuery {
	return &TileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTile},
		inters: c.Interceptors(),
	}
}

// Get returns a Tile entity by its id.
func (c *TileClient) Get(ctx context.Context, id int) (*Tile, error) {
	return c.Query().Where(tile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TileClient) GetX(ctx context.Context, id int) *Tile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a Tile.
func (c *TileClient) QueryJob(_m *Tile) *UpscaleJobQuery {
	query := (&UpscaleJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tile.Table, tile.FieldID, id),
			sqlgraph.To(upscalejob.Table, upscalejob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tile.JobTable, tile.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TileClient) Hooks() []Hook {
	return c.hooks.Tile
}

// Interceptors returns the client interceptors.
func (c *TileClient) Interceptors() []Interceptor {
	return c.inters.Tile
}

func (c *TileClient) mutate(ctx context.Context, m *TileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tile mutation op: %q", m.Op())
	}
}

// UpscaleJobClient is a client for the UpscaleJob schema.
type UpscaleJobClient struct {
	config
}

// NewUpscaleJobClient returns a client for the UpscaleJob from the given config.
func NewUpscaleJobClient(c config) *UpscaleJobClient {
	return &UpscaleJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `upscalejob.Hooks(f(g(h())))`.
func (c *UpscaleJobClient) Use(hooks ...Hook) {
	c.hooks.UpscaleJob = append(c.hooks.UpscaleJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `upscalejob.Intercept(f(g(h())))`.
func (c *UpscaleJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.UpscaleJob = append(c.inters.UpscaleJob, interceptors...)
}

// Create returns a builder for creating a UpscaleJob entity.
func (c *UpscaleJobClient) Create() *UpscaleJobCreate {
	mutation := newUpscaleJobMutation(c.config, OpCreate)
	return &UpscaleJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UpscaleJob entities.
func (c *UpscaleJobClient) CreateBulk(builders ...*UpscaleJobCreate) *UpscaleJobCreateBulk {
	return &UpscaleJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UpscaleJobClient) MapCreateBulk(slice any, setFunc func(*UpscaleJobCreate, int)) *UpscaleJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UpscaleJobCreateBulk{err: fmt.Errorf("calling to UpscaleJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UpscaleJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UpscaleJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UpscaleJob.
func (c *UpscaleJobClient) Update() *UpscaleJobUpdate {
	mutation := newUpscaleJobMutation(c.config, OpUpdate)
	return &UpscaleJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UpscaleJobClient) UpdateOne(_m *UpscaleJob) *UpscaleJobUpdateOne {
	mutation := newUpscaleJobMutation(c.config, OpUpdateOne, withUpscaleJob(_m))
	return &UpscaleJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UpscaleJobClient) UpdateOneID(id string) *UpscaleJobUpdateOne {
	mutation := newUpscaleJobMutation(c.config, OpUpdateOne, withUpscaleJobID(id))
	return &UpscaleJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UpscaleJob.
func (c *UpscaleJobClient) Delete() *UpscaleJobDelete {
	mutation := newUpscaleJobMutation(c.config, OpDelete)
	return &UpscaleJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UpscaleJobClient) DeleteOne(_m *UpscaleJob) *UpscaleJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UpscaleJobClient) DeleteOneID(id string) *UpscaleJobDeleteOne {
	builder := c.Delete().Where(upscalejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UpscaleJobDeleteOne{builder}
}

// Query returns a query builder for UpscaleJob.
func (c *UpscaleJobClient) Query() *UpscaleJobQuery {
	return &UpscaleJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUpscaleJob},
		inters: c.Interceptors(),
	}
}

// Get returns a UpscaleJob entity by its id.
func (c *UpscaleJobClient) Get(ctx context.Context, id string) (*UpscaleJob, error) {
	return c.Query().Where(upscalejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UpscaleJobClient) GetX(ctx context.Context, id string) *UpscaleJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTiles queries the tiles edge of a UpscaleJob.
func (c *UpscaleJobClient) QueryTiles(_m *UpscaleJob) *TileQuery {
	query := (&TileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upscalejob.Table, upscalejob.FieldID, id),
			sqlgraph.To(tile.Table, tile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upscalejob.TilesTable, upscalejob.TilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UpscaleJobClient) Hooks() []Hook {
	return c.hooks.UpscaleJob
}

// Interceptors returns the client interceptors.
func (c *UpscaleJobClient) Interceptors() []Interceptor {
	return c.inters.UpscaleJob
}

func (c *UpscaleJobClient) mutate(ctx context.Context, m *UpscaleJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UpscaleJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UpscaleJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UpscaleJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UpscaleJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UpscaleJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ProcessedCallback, Tile, UpscaleJob []ent.Hook
	}
	inters struct {
		ProcessedCallback, Tile, UpscaleJob []ent.Interceptor
	}
)
