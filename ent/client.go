// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/sourabhkumawat/healops/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/sourabhkumawat/healops/ent/agentevent"
	"github.com/sourabhkumawat/healops/ent/agentplan"
	"github.com/sourabhkumawat/healops/ent/agentrecord"
	"github.com/sourabhkumawat/healops/ent/agentworkspace"
	"github.com/sourabhkumawat/healops/ent/incident"
	"github.com/sourabhkumawat/healops/ent/integration"
	"github.com/sourabhkumawat/healops/ent/knowledgechunk"
	"github.com/sourabhkumawat/healops/ent/logentry"
	"github.com/sourabhkumawat/healops/ent/memoryrecord"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentEvent is the client for interacting with the AgentEvent builders.
	AgentEvent *AgentEventClient
	// AgentPlan is the client for interacting with the AgentPlan builders.
	AgentPlan *AgentPlanClient
	// AgentRecord is the client for interacting with the AgentRecord builders.
	AgentRecord *AgentRecordClient
	// AgentWorkspace is the client for interacting with the AgentWorkspace builders.
	AgentWorkspace *AgentWorkspaceClient
	// Incident is the client for interacting with the Incident builders.
	Incident *IncidentClient
	// Integration is the client for interacting with the Integration builders.
	Integration *IntegrationClient
	// KnowledgeChunk is the client for interacting with the KnowledgeChunk builders.
	KnowledgeChunk *KnowledgeChunkClient
	// LogEntry is the client for interacting with the LogEntry builders.
	LogEntry *LogEntryClient
	// MemoryRecord is the client for interacting with the MemoryRecord builders.
	MemoryRecord *MemoryRecordClient
	// ResolutionRequest is the client for interacting with the ResolutionRequest builders.
	ResolutionRequest *ResolutionRequestClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentEvent = NewAgentEventClient(c.config)
	c.AgentPlan = NewAgentPlanClient(c.config)
	c.AgentRecord = NewAgentRecordClient(c.config)
	c.AgentWorkspace = NewAgentWorkspaceClient(c.config)
	c.Incident = NewIncidentClient(c.config)
	c.Integration = NewIntegrationClient(c.config)
	c.KnowledgeChunk = NewKnowledgeChunkClient(c.config)
	c.LogEntry = NewLogEntryClient(c.config)
	c.MemoryRecord = NewMemoryRecordClient(c.config)
	c.ResolutionRequest = NewResolutionRequestClient(c.config)
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
		AgentEvent:        NewAgentEventClient(cfg),
		AgentPlan:         NewAgentPlanClient(cfg),
		AgentRecord:       NewAgentRecordClient(cfg),
		AgentWorkspace:    NewAgentWorkspaceClient(cfg),
		Incident:          NewIncidentClient(cfg),
		Integration:       NewIntegrationClient(cfg),
		KnowledgeChunk:    NewKnowledgeChunkClient(cfg),
		LogEntry:          NewLogEntryClient(cfg),
		MemoryRecord:      NewMemoryRecordClient(cfg),
		ResolutionRequest: NewResolutionRequestClient(cfg),
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
		AgentEvent:        NewAgentEventClient(cfg),
		AgentPlan:         NewAgentPlanClient(cfg),
		AgentRecord:       NewAgentRecordClient(cfg),
		AgentWorkspace:    NewAgentWorkspaceClient(cfg),
		Incident:          NewIncidentClient(cfg),
		Integration:       NewIntegrationClient(cfg),
		KnowledgeChunk:    NewKnowledgeChunkClient(cfg),
		LogEntry:          NewLogEntryClient(cfg),
		MemoryRecord:      NewMemoryRecordClient(cfg),
		ResolutionRequest: NewResolutionRequestClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentEvent, c.AgentPlan, c.AgentRecord, c.AgentWorkspace, c.Incident,
		c.Integration, c.KnowledgeChunk, c.LogEntry, c.MemoryRecord,
		c.ResolutionRequest,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentEvent, c.AgentPlan, c.AgentRecord, c.AgentWorkspace, c.Incident,
		c.Integration, c.KnowledgeChunk, c.LogEntry, c.MemoryRecord,
		c.ResolutionRequest,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentEventMutation:
		return c.AgentEvent.mutate(ctx, m)
	case *AgentPlanMutation:
		return c.AgentPlan.mutate(ctx, m)
	case *AgentRecordMutation:
		return c.AgentRecord.mutate(ctx, m)
	case *AgentWorkspaceMutation:
		return c.AgentWorkspace.mutate(ctx, m)
	case *IncidentMutation:
		return c.Incident.mutate(ctx, m)
	case *IntegrationMutation:
		return c.Integration.mutate(ctx, m)
	case *KnowledgeChunkMutation:
		return c.KnowledgeChunk.mutate(ctx, m)
	case *LogEntryMutation:
		return c.LogEntry.mutate(ctx, m)
	case *MemoryRecordMutation:
		return c.MemoryRecord.mutate(ctx, m)
	case *ResolutionRequestMutation:
		return c.ResolutionRequest.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentEventClient is a client for the AgentEvent schema.
type AgentEventClient struct {
	config
}

// NewAgentEventClient returns a client for the AgentEvent from the given config.
func NewAgentEventClient(c config) *AgentEventClient {
	return &AgentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentevent.Hooks(f(g(h())))`.
func (c *AgentEventClient) Use(hooks ...Hook) {
	c.hooks.AgentEvent = append(c.hooks.AgentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentevent.Intercept(f(g(h())))`.
func (c *AgentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentEvent = append(c.inters.AgentEvent, interceptors...)
}

// Create returns a builder for creating a AgentEvent entity.
func (c *AgentEventClient) Create() *AgentEventCreate {
	mutation := newAgentEventMutation(c.config, OpCreate)
	return &AgentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentEvent entities.
func (c *AgentEventClient) CreateBulk(builders ...*AgentEventCreate) *AgentEventCreateBulk {
	return &AgentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentEventClient) MapCreateBulk(slice any, setFunc func(*AgentEventCreate, int)) *AgentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentEventCreateBulk{err: fmt.Errorf("calling to AgentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentEvent.
func (c *AgentEventClient) Update() *AgentEventUpdate {
	mutation := newAgentEventMutation(c.config, OpUpdate)
	return &AgentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentEventClient) UpdateOne(_m *AgentEvent) *AgentEventUpdateOne {
	mutation := newAgentEventMutation(c.config, OpUpdateOne, withAgentEvent(_m))
	return &AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentEventClient) UpdateOneID(id string) *AgentEventUpdateOne {
	mutation := newAgentEventMutation(c.config, OpUpdateOne, withAgentEventID(id))
	return &AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentEvent.
func (c *AgentEventClient) Delete() *AgentEventDelete {
	mutation := newAgentEventMutation(c.config, OpDelete)
	return &AgentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentEventClient) DeleteOne(_m *AgentEvent) *AgentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentEventClient) DeleteOneID(id string) *AgentEventDeleteOne {
	builder := c.Delete().Where(agentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentEventDeleteOne{builder}
}

// Query returns a query builder for AgentEvent.
func (c *AgentEventClient) Query() *AgentEventQuery {
	return &AgentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentEvent entity by its id.
func (c *AgentEventClient) Get(ctx context.Context, id string) (*AgentEvent, error) {
	return c.Query().Where(agentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentEventClient) GetX(ctx context.Context, id string) *AgentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentEventClient) Hooks() []Hook {
	return c.hooks.AgentEvent
}

// Interceptors returns the client interceptors.
func (c *AgentEventClient) Interceptors() []Interceptor {
	return c.inters.AgentEvent
}

func (c *AgentEventClient) mutate(ctx context.Context, m *AgentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentEvent mutation op: %q", m.Op())
	}
}

// AgentPlanClient is a client for the AgentPlan schema.
type AgentPlanClient struct {
	config
}

// NewAgentPlanClient returns a client for the AgentPlan from the given config.
func NewAgentPlanClient(c config) *AgentPlanClient {
	return &AgentPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentplan.Hooks(f(g(h())))`.
func (c *AgentPlanClient) Use(hooks ...Hook) {
	c.hooks.AgentPlan = append(c.hooks.AgentPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentplan.Intercept(f(g(h())))`.
func (c *AgentPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentPlan = append(c.inters.AgentPlan, interceptors...)
}

// Create returns a builder for creating a AgentPlan entity.
func (c *AgentPlanClient) Create() *AgentPlanCreate {
	mutation := newAgentPlanMutation(c.config, OpCreate)
	return &AgentPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentPlan entities.
func (c *AgentPlanClient) CreateBulk(builders ...*AgentPlanCreate) *AgentPlanCreateBulk {
	return &AgentPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentPlanClient) MapCreateBulk(slice any, setFunc func(*AgentPlanCreate, int)) *AgentPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentPlanCreateBulk{err: fmt.Errorf("calling to AgentPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentPlan.
func (c *AgentPlanClient) Update() *AgentPlanUpdate {
	mutation := newAgentPlanMutation(c.config, OpUpdate)
	return &AgentPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentPlanClient) UpdateOne(_m *AgentPlan) *AgentPlanUpdateOne {
	mutation := newAgentPlanMutation(c.config, OpUpdateOne, withAgentPlan(_m))
	return &AgentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentPlanClient) UpdateOneID(id string) *AgentPlanUpdateOne {
	mutation := newAgentPlanMutation(c.config, OpUpdateOne, withAgentPlanID(id))
	return &AgentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentPlan.
func (c *AgentPlanClient) Delete() *AgentPlanDelete {
	mutation := newAgentPlanMutation(c.config, OpDelete)
	return &AgentPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentPlanClient) DeleteOne(_m *AgentPlan) *AgentPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentPlanClient) DeleteOneID(id string) *AgentPlanDeleteOne {
	builder := c.Delete().Where(agentplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentPlanDeleteOne{builder}
}

// Query returns a query builder for AgentPlan.
func (c *AgentPlanClient) Query() *AgentPlanQuery {
	return &AgentPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentPlan entity by its id.
func (c *AgentPlanClient) Get(ctx context.Context, id string) (*AgentPlan, error) {
	return c.Query().Where(agentplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentPlanClient) GetX(ctx context.Context, id string) *AgentPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentPlanClient) Hooks() []Hook {
	return c.hooks.AgentPlan
}

// Interceptors returns the client interceptors.
func (c *AgentPlanClient) Interceptors() []Interceptor {
	return c.inters.AgentPlan
}

func (c *AgentPlanClient) mutate(ctx context.Context, m *AgentPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentPlan mutation op: %q", m.Op())
	}
}

// AgentRecordClient is a client for the AgentRecord schema.
type AgentRecordClient struct {
	config
}

// NewAgentRecordClient returns a client for the AgentRecord from the given config.
func NewAgentRecordClient(c config) *AgentRecordClient {
	return &AgentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrecord.Hooks(f(g(h())))`.
func (c *AgentRecordClient) Use(hooks ...Hook) {
	c.hooks.AgentRecord = append(c.hooks.AgentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrecord.Intercept(f(g(h())))`.
func (c *AgentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRecord = append(c.inters.AgentRecord, interceptors...)
}

// Create returns a builder for creating a AgentRecord entity.
func (c *AgentRecordClient) Create() *AgentRecordCreate {
	mutation := newAgentRecordMutation(c.config, OpCreate)
	return &AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRecord entities.
func (c *AgentRecordClient) CreateBulk(builders ...*AgentRecordCreate) *AgentRecordCreateBulk {
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRecordClient) MapCreateBulk(slice any, setFunc func(*AgentRecordCreate, int)) *AgentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRecordCreateBulk{err: fmt.Errorf("calling to AgentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRecord.
func (c *AgentRecordClient) Update() *AgentRecordUpdate {
	mutation := newAgentRecordMutation(c.config, OpUpdate)
	return &AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRecordClient) UpdateOne(_m *AgentRecord) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecord(_m))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRecordClient) UpdateOneID(id string) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecordID(id))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRecord.
func (c *AgentRecordClient) Delete() *AgentRecordDelete {
	mutation := newAgentRecordMutation(c.config, OpDelete)
	return &AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRecordClient) DeleteOne(_m *AgentRecord) *AgentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRecordClient) DeleteOneID(id string) *AgentRecordDeleteOne {
	builder := c.Delete().Where(agentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRecordDeleteOne{builder}
}

// Query returns a query builder for AgentRecord.
func (c *AgentRecordClient) Query() *AgentRecordQuery {
	return &AgentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRecord entity by its id.
func (c *AgentRecordClient) Get(ctx context.Context, id string) (*AgentRecord, error) {
	return c.Query().Where(agentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRecordClient) GetX(ctx context.Context, id string) *AgentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentRecordClient) Hooks() []Hook {
	return c.hooks.AgentRecord
}

// Interceptors returns the client interceptors.
func (c *AgentRecordClient) Interceptors() []Interceptor {
	return c.inters.AgentRecord
}

func (c *AgentRecordClient) mutate(ctx context.Context, m *AgentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRecord mutation op: %q", m.Op())
	}
}

// AgentWorkspaceClient is a client for the AgentWorkspace schema.
type AgentWorkspaceClient struct {
	config
}

// NewAgentWorkspaceClient returns a client for the AgentWorkspace from the given config.
func NewAgentWorkspaceClient(c config) *AgentWorkspaceClient {
	return &AgentWorkspaceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentworkspace.Hooks(f(g(h())))`.
func (c *AgentWorkspaceClient) Use(hooks ...Hook) {
	c.hooks.AgentWorkspace = append(c.hooks.AgentWorkspace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentworkspace.Intercept(f(g(h())))`.
func (c *AgentWorkspaceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentWorkspace = append(c.inters.AgentWorkspace, interceptors...)
}

// Create returns a builder for creating a AgentWorkspace entity.
func (c *AgentWorkspaceClient) Create() *AgentWorkspaceCreate {
	mutation := newAgentWorkspaceMutation(c.config, OpCreate)
	return &AgentWorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentWorkspace entities.
func (c *AgentWorkspaceClient) CreateBulk(builders ...*AgentWorkspaceCreate) *AgentWorkspaceCreateBulk {
	return &AgentWorkspaceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentWorkspaceClient) MapCreateBulk(slice any, setFunc func(*AgentWorkspaceCreate, int)) *AgentWorkspaceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentWorkspaceCreateBulk{err: fmt.Errorf("calling to AgentWorkspaceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentWorkspaceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentWorkspaceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentWorkspace.
func (c *AgentWorkspaceClient) Update() *AgentWorkspaceUpdate {
	mutation := newAgentWorkspaceMutation(c.config, OpUpdate)
	return &AgentWorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentWorkspaceClient) UpdateOne(_m *AgentWorkspace) *AgentWorkspaceUpdateOne {
	mutation := newAgentWorkspaceMutation(c.config, OpUpdateOne, withAgentWorkspace(_m))
	return &AgentWorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentWorkspaceClient) UpdateOneID(id string) *AgentWorkspaceUpdateOne {
	mutation := newAgentWorkspaceMutation(c.config, OpUpdateOne, withAgentWorkspaceID(id))
	return &AgentWorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentWorkspace.
func (c *AgentWorkspaceClient) Delete() *AgentWorkspaceDelete {
	mutation := newAgentWorkspaceMutation(c.config, OpDelete)
	return &AgentWorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentWorkspaceClient) DeleteOne(_m *AgentWorkspace) *AgentWorkspaceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentWorkspaceClient) DeleteOneID(id string) *AgentWorkspaceDeleteOne {
	builder := c.Delete().Where(agentworkspace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentWorkspaceDeleteOne{builder}
}

// Query returns a query builder for AgentWorkspace.
func (c *AgentWorkspaceClient) Query() *AgentWorkspaceQuery {
	return &AgentWorkspaceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentWorkspace},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentWorkspace entity by its id.
func (c *AgentWorkspaceClient) Get(ctx context.Context, id string) (*AgentWorkspace, error) {
	return c.Query().Where(agentworkspace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentWorkspaceClient) GetX(ctx context.Context, id string) *AgentWorkspace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentWorkspaceClient) Hooks() []Hook {
	return c.hooks.AgentWorkspace
}

// Interceptors returns the client interceptors.
func (c *AgentWorkspaceClient) Interceptors() []Interceptor {
	return c.inters.AgentWorkspace
}

func (c *AgentWorkspaceClient) mutate(ctx context.Context, m *AgentWorkspaceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentWorkspaceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentWorkspaceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentWorkspaceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentWorkspaceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentWorkspace mutation op: %q", m.Op())
	}
}

// IncidentClient is a client for the Incident schema.
type IncidentClient struct {
	config
}

// NewIncidentClient returns a client for the Incident from the given config.
func NewIncidentClient(c config) *IncidentClient {
	return &IncidentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `incident.Hooks(f(g(h())))`.
func (c *IncidentClient) Use(hooks ...Hook) {
	c.hooks.Incident = append(c.hooks.Incident, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `incident.Intercept(f(g(h())))`.
func (c *IncidentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Incident = append(c.inters.Incident, interceptors...)
}

// Create returns a builder for creating a Incident entity.
func (c *IncidentClient) Create() *IncidentCreate {
	mutation := newIncidentMutation(c.config, OpCreate)
	return &IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Incident entities.
func (c *IncidentClient) CreateBulk(builders ...*IncidentCreate) *IncidentCreateBulk {
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IncidentClient) MapCreateBulk(slice any, setFunc func(*IncidentCreate, int)) *IncidentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IncidentCreateBulk{err: fmt.Errorf("calling to IncidentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IncidentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IncidentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Incident.
func (c *IncidentClient) Update() *IncidentUpdate {
	mutation := newIncidentMutation(c.config, OpUpdate)
	return &IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IncidentClient) UpdateOne(_m *Incident) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncident(_m))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IncidentClient) UpdateOneID(id string) *IncidentUpdateOne {
	mutation := newIncidentMutation(c.config, OpUpdateOne, withIncidentID(id))
	return &IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Incident.
func (c *IncidentClient) Delete() *IncidentDelete {
	mutation := newIncidentMutation(c.config, OpDelete)
	return &IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IncidentClient) DeleteOne(_m *Incident) *IncidentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IncidentClient) DeleteOneID(id string) *IncidentDeleteOne {
	builder := c.Delete().Where(incident.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IncidentDeleteOne{builder}
}

// Query returns a query builder for Incident.
func (c *IncidentClient) Query() *IncidentQuery {
	return &IncidentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIncident},
		inters: c.Interceptors(),
	}
}

// Get returns a Incident entity by its id.
func (c *IncidentClient) Get(ctx context.Context, id string) (*Incident, error) {
	return c.Query().Where(incident.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IncidentClient) GetX(ctx context.Context, id string) *Incident {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IncidentClient) Hooks() []Hook {
	return c.hooks.Incident
}

// Interceptors returns the client interceptors.
func (c *IncidentClient) Interceptors() []Interceptor {
	return c.inters.Incident
}

func (c *IncidentClient) mutate(ctx context.Context, m *IncidentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IncidentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IncidentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IncidentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IncidentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Incident mutation op: %q", m.Op())
	}
}

// IntegrationClient is a client for the Integration schema.
type IntegrationClient struct {
	config
}

// NewIntegrationClient returns a client for the Integration from the given config.
func NewIntegrationClient(c config) *IntegrationClient {
	return &IntegrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `integration.Hooks(f(g(h())))`.
func (c *IntegrationClient) Use(hooks ...Hook) {
	c.hooks.Integration = append(c.hooks.Integration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `integration.Intercept(f(g(h())))`.
func (c *IntegrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Integration = append(c.inters.Integration, interceptors...)
}

// Create returns a builder for creating a Integration entity.
func (c *IntegrationClient) Create() *IntegrationCreate {
	mutation := newIntegrationMutation(c.config, OpCreate)
	return &IntegrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Integration entities.
func (c *IntegrationClient) CreateBulk(builders ...*IntegrationCreate) *IntegrationCreateBulk {
	return &IntegrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntegrationClient) MapCreateBulk(slice any, setFunc func(*IntegrationCreate, int)) *IntegrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntegrationCreateBulk{err: fmt.Errorf("calling to IntegrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntegrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntegrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Integration.
func (c *IntegrationClient) Update() *IntegrationUpdate {
	mutation := newIntegrationMutation(c.config, OpUpdate)
	return &IntegrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntegrationClient) UpdateOne(_m *Integration) *IntegrationUpdateOne {
	mutation := newIntegrationMutation(c.config, OpUpdateOne, withIntegration(_m))
	return &IntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntegrationClient) UpdateOneID(id string) *IntegrationUpdateOne {
	mutation := newIntegrationMutation(c.config, OpUpdateOne, withIntegrationID(id))
	return &IntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Integration.
func (c *IntegrationClient) Delete() *IntegrationDelete {
	mutation := newIntegrationMutation(c.config, OpDelete)
	return &IntegrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntegrationClient) DeleteOne(_m *Integration) *IntegrationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntegrationClient) DeleteOneID(id string) *IntegrationDeleteOne {
	builder := c.Delete().Where(integration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntegrationDeleteOne{builder}
}

// Query returns a query builder for Integration.
func (c *IntegrationClient) Query() *IntegrationQuery {
	return &IntegrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntegration},
		inters: c.Interceptors(),
	}
}

// Get returns a Integration entity by its id.
func (c *IntegrationClient) Get(ctx context.Context, id string) (*Integration, error) {
	return c.Query().Where(integration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntegrationClient) GetX(ctx context.Context, id string) *Integration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IntegrationClient) Hooks() []Hook {
	return c.hooks.Integration
}

// Interceptors returns the client interceptors.
func (c *IntegrationClient) Interceptors() []Interceptor {
	return c.inters.Integration
}

func (c *IntegrationClient) mutate(ctx context.Context, m *IntegrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntegrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntegrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntegrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntegrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Integration mutation op: %q", m.Op())
	}
}

// KnowledgeChunkClient is a client for the KnowledgeChunk schema.
type KnowledgeChunkClient struct {
	config
}

// NewKnowledgeChunkClient returns a client for the KnowledgeChunk from the given config.
func NewKnowledgeChunkClient(c config) *KnowledgeChunkClient {
	return &KnowledgeChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgechunk.Hooks(f(g(h())))`.
func (c *KnowledgeChunkClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeChunk = append(c.hooks.KnowledgeChunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgechunk.Intercept(f(g(h())))`.
func (c *KnowledgeChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeChunk = append(c.inters.KnowledgeChunk, interceptors...)
}

// Create returns a builder for creating a KnowledgeChunk entity.
func (c *KnowledgeChunkClient) Create() *KnowledgeChunkCreate {
	mutation := newKnowledgeChunkMutation(c.config, OpCreate)
	return &KnowledgeChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeChunk entities.
func (c *KnowledgeChunkClient) CreateBulk(builders ...*KnowledgeChunkCreate) *KnowledgeChunkCreateBulk {
	return &KnowledgeChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeChunkClient) MapCreateBulk(slice any, setFunc func(*KnowledgeChunkCreate, int)) *KnowledgeChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeChunkCreateBulk{err: fmt.Errorf("calling to KnowledgeChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeChunk.
func (c *KnowledgeChunkClient) Update() *KnowledgeChunkUpdate {
	mutation := newKnowledgeChunkMutation(c.config, OpUpdate)
	return &KnowledgeChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeChunkClient) UpdateOne(_m *KnowledgeChunk) *KnowledgeChunkUpdateOne {
	mutation := newKnowledgeChunkMutation(c.config, OpUpdateOne, withKnowledgeChunk(_m))
	return &KnowledgeChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeChunkClient) UpdateOneID(id string) *KnowledgeChunkUpdateOne {
	mutation := newKnowledgeChunkMutation(c.config, OpUpdateOne, withKnowledgeChunkID(id))
	return &KnowledgeChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeChunk.
func (c *KnowledgeChunkClient) Delete() *KnowledgeChunkDelete {
	mutation := newKnowledgeChunkMutation(c.config, OpDelete)
	return &KnowledgeChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeChunkClient) DeleteOne(_m *KnowledgeChunk) *KnowledgeChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeChunkClient) DeleteOneID(id string) *KnowledgeChunkDeleteOne {
	builder := c.Delete().Where(knowledgechunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeChunkDeleteOne{builder}
}

// Query returns a query builder for KnowledgeChunk.
func (c *KnowledgeChunkClient) Query() *KnowledgeChunkQuery {
	return &KnowledgeChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeChunk entity by its id.
func (c *KnowledgeChunkClient) Get(ctx context.Context, id string) (*KnowledgeChunk, error) {
	return c.Query().Where(knowledgechunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeChunkClient) GetX(ctx context.Context, id string) *KnowledgeChunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *KnowledgeChunkClient) Hooks() []Hook {
	return c.hooks.KnowledgeChunk
}

// Interceptors returns the client interceptors.
func (c *KnowledgeChunkClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeChunk
}

func (c *KnowledgeChunkClient) mutate(ctx context.Context, m *KnowledgeChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeChunk mutation op: %q", m.Op())
	}
}

// LogEntryClient is a client for the LogEntry schema.
type LogEntryClient struct {
	config
}

// NewLogEntryClient returns a client for the LogEntry from the given config.
func NewLogEntryClient(c config) *LogEntryClient {
	return &LogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `logentry.Hooks(f(g(h())))`.
func (c *LogEntryClient) Use(hooks ...Hook) {
	c.hooks.LogEntry = append(c.hooks.LogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `logentry.Intercept(f(g(h())))`.
func (c *LogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LogEntry = append(c.inters.LogEntry, interceptors...)
}

// Create returns a builder for creating a LogEntry entity.
func (c *LogEntryClient) Create() *LogEntryCreate {
	mutation := newLogEntryMutation(c.config, OpCreate)
	return &LogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LogEntry entities.
func (c *LogEntryClient) CreateBulk(builders ...*LogEntryCreate) *LogEntryCreateBulk {
	return &LogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LogEntryClient) MapCreateBulk(slice any, setFunc func(*LogEntryCreate, int)) *LogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LogEntryCreateBulk{err: fmt.Errorf("calling to LogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LogEntry.
func (c *LogEntryClient) Update() *LogEntryUpdate {
	mutation := newLogEntryMutation(c.config, OpUpdate)
	return &LogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LogEntryClient) UpdateOne(_m *LogEntry) *LogEntryUpdateOne {
	mutation := newLogEntryMutation(c.config, OpUpdateOne, withLogEntry(_m))
	return &LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LogEntryClient) UpdateOneID(id string) *LogEntryUpdateOne {
	mutation := newLogEntryMutation(c.config, OpUpdateOne, withLogEntryID(id))
	return &LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LogEntry.
func (c *LogEntryClient) Delete() *LogEntryDelete {
	mutation := newLogEntryMutation(c.config, OpDelete)
	return &LogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LogEntryClient) DeleteOne(_m *LogEntry) *LogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LogEntryClient) DeleteOneID(id string) *LogEntryDeleteOne {
	builder := c.Delete().Where(logentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LogEntryDeleteOne{builder}
}

// Query returns a query builder for LogEntry.
func (c *LogEntryClient) Query() *LogEntryQuery {
	return &LogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a LogEntry entity by its id.
func (c *LogEntryClient) Get(ctx context.Context, id string) (*LogEntry, error) {
	return c.Query().Where(logentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LogEntryClient) GetX(ctx context.Context, id string) *LogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LogEntryClient) Hooks() []Hook {
	return c.hooks.LogEntry
}

// Interceptors returns the client interceptors.
func (c *LogEntryClient) Interceptors() []Interceptor {
	return c.inters.LogEntry
}

func (c *LogEntryClient) mutate(ctx context.Context, m *LogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LogEntry mutation op: %q", m.Op())
	}
}

// MemoryRecordClient is a client for the MemoryRecord schema.
type MemoryRecordClient struct {
	config
}

// NewMemoryRecordClient returns a client for the MemoryRecord from the given config.
func NewMemoryRecordClient(c config) *MemoryRecordClient {
	return &MemoryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `memoryrecord.Hooks(f(g(h())))`.
func (c *MemoryRecordClient) Use(hooks ...Hook) {
	c.hooks.MemoryRecord = append(c.hooks.MemoryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `memoryrecord.Intercept(f(g(h())))`.
func (c *MemoryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MemoryRecord = append(c.inters.MemoryRecord, interceptors...)
}

// Create returns a builder for creating a MemoryRecord entity.
func (c *MemoryRecordClient) Create() *MemoryRecordCreate {
	mutation := newMemoryRecordMutation(c.config, OpCreate)
	return &MemoryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MemoryRecord entities.
func (c *MemoryRecordClient) CreateBulk(builders ...*MemoryRecordCreate) *MemoryRecordCreateBulk {
	return &MemoryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemoryRecordClient) MapCreateBulk(slice any, setFunc func(*MemoryRecordCreate, int)) *MemoryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemoryRecordCreateBulk{err: fmt.Errorf("calling to MemoryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemoryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemoryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MemoryRecord.
func (c *MemoryRecordClient) Update() *MemoryRecordUpdate {
	mutation := newMemoryRecordMutation(c.config, OpUpdate)
	return &MemoryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemoryRecordClient) UpdateOne(_m *MemoryRecord) *MemoryRecordUpdateOne {
	mutation := newMemoryRecordMutation(c.config, OpUpdateOne, withMemoryRecord(_m))
	return &MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemoryRecordClient) UpdateOneID(id int) *MemoryRecordUpdateOne {
	mutation := newMemoryRecordMutation(c.config, OpUpdateOne, withMemoryRecordID(id))
	return &MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MemoryRecord.
func (c *MemoryRecordClient) Delete() *MemoryRecordDelete {
	mutation := newMemoryRecordMutation(c.config, OpDelete)
	return &MemoryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemoryRecordClient) DeleteOne(_m *MemoryRecord) *MemoryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemoryRecordClient) DeleteOneID(id int) *MemoryRecordDeleteOne {
	builder := c.Delete().Where(memoryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemoryRecordDeleteOne{builder}
}

// Query returns a query builder for MemoryRecord.
func (c *MemoryRecordClient) Query() *MemoryRecordQuery {
	return &MemoryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMemoryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MemoryRecord entity by its id.
func (c *MemoryRecordClient) Get(ctx context.Context, id int) (*MemoryRecord, error) {
	return c.Query().Where(memoryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemoryRecordClient) GetX(ctx context.Context, id int) *MemoryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemoryRecordClient) Hooks() []Hook {
	return c.hooks.MemoryRecord
}

// Interceptors returns the client interceptors.
func (c *MemoryRecordClient) Interceptors() []Interceptor {
	return c.inters.MemoryRecord
}

func (c *MemoryRecordClient) mutate(ctx context.Context, m *MemoryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemoryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemoryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemoryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemoryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MemoryRecord mutation op: %q", m.Op())
	}
}

// ResolutionRequestClient is a client for the ResolutionRequest schema.
type ResolutionRequestClient struct {
	config
}

// NewResolutionRequestClient returns a client for the ResolutionRequest from the given config.
func NewResolutionRequestClient(c config) *ResolutionRequestClient {
	return &ResolutionRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resolutionrequest.Hooks(f(g(h())))`.
func (c *ResolutionRequestClient) Use(hooks ...Hook) {
	c.hooks.ResolutionRequest = append(c.hooks.ResolutionRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resolutionrequest.Intercept(f(g(h())))`.
func (c *ResolutionRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResolutionRequest = append(c.inters.ResolutionRequest, interceptors...)
}

// Create returns a builder for creating a ResolutionRequest entity.
func (c *ResolutionRequestClient) Create() *ResolutionRequestCreate {
	mutation := newResolutionRequestMutation(c.config, OpCreate)
	return &ResolutionRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResolutionRequest entities.
func (c *ResolutionRequestClient) CreateBulk(builders ...*ResolutionRequestCreate) *ResolutionRequestCreateBulk {
	return &ResolutionRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResolutionRequestClient) MapCreateBulk(slice any, setFunc func(*ResolutionRequestCreate, int)) *ResolutionRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResolutionRequestCreateBulk{err: fmt.Errorf("calling to ResolutionRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResolutionRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResolutionRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResolutionRequest.
func (c *ResolutionRequestClient) Update() *ResolutionRequestUpdate {
	mutation := newResolutionRequestMutation(c.config, OpUpdate)
	return &ResolutionRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResolutionRequestClient) UpdateOne(_m *ResolutionRequest) *ResolutionRequestUpdateOne {
	mutation := newResolutionRequestMutation(c.config, OpUpdateOne, withResolutionRequest(_m))
	return &ResolutionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResolutionRequestClient) UpdateOneID(id int) *ResolutionRequestUpdateOne {
	mutation := newResolutionRequestMutation(c.config, OpUpdateOne, withResolutionRequestID(id))
	return &ResolutionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResolutionRequest.
func (c *ResolutionRequestClient) Delete() *ResolutionRequestDelete {
	mutation := newResolutionRequestMutation(c.config, OpDelete)
	return &ResolutionRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResolutionRequestClient) DeleteOne(_m *ResolutionRequest) *ResolutionRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResolutionRequestClient) DeleteOneID(id int) *ResolutionRequestDeleteOne {
	builder := c.Delete().Where(resolutionrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResolutionRequestDeleteOne{builder}
}

// Query returns a query builder for ResolutionRequest.
func (c *ResolutionRequestClient) Query() *ResolutionRequestQuery {
	return &ResolutionRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResolutionRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ResolutionRequest entity by its id.
func (c *ResolutionRequestClient) Get(ctx context.Context, id int) (*ResolutionRequest, error) {
	return c.Query().Where(resolutionrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResolutionRequestClient) GetX(ctx context.Context, id int) *ResolutionRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResolutionRequestClient) Hooks() []Hook {
	return c.hooks.ResolutionRequest
}

// Interceptors returns the client interceptors.
func (c *ResolutionRequestClient) Interceptors() []Interceptor {
	return c.inters.ResolutionRequest
}

func (c *ResolutionRequestClient) mutate(ctx context.Context, m *ResolutionRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResolutionRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResolutionRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResolutionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResolutionRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResolutionRequest mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentEvent, AgentPlan, AgentRecord, AgentWorkspace, Incident, Integration,
		KnowledgeChunk, LogEntry, MemoryRecord, ResolutionRequest []ent.Hook
	}
	inters struct {
		AgentEvent, AgentPlan, AgentRecord, AgentWorkspace, Incident, Integration,
		KnowledgeChunk, LogEntry, MemoryRecord, ResolutionRequest []ent.Interceptor
	}
)
