// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
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
	"github.com/sourabhkumawat/healops/ent/predicate"
	"github.com/sourabhkumawat/healops/ent/resolutionrequest"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentEvent        = "AgentEvent"
	TypeAgentPlan         = "AgentPlan"
	TypeAgentRecord       = "AgentRecord"
	TypeAgentWorkspace    = "AgentWorkspace"
	TypeIncident          = "Incident"
	TypeIntegration       = "Integration"
	TypeKnowledgeChunk    = "KnowledgeChunk"
	TypeLogEntry          = "LogEntry"
	TypeMemoryRecord      = "MemoryRecord"
	TypeResolutionRequest = "ResolutionRequest"
)

// AgentEventMutation represents an operation that mutates the AgentEvent nodes in the graph.
type AgentEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	incident_id   *string
	_type         *string
	agent_name    *string
	data          *map[string]interface{}
	timestamp     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentEvent, error)
	predicates    []predicate.AgentEvent
}

var _ ent.Mutation = (*AgentEventMutation)(nil)

// agenteventOption allows management of the mutation configuration using functional options.
type agenteventOption func(*AgentEventMutation)

// newAgentEventMutation creates new mutation for the AgentEvent entity.
func newAgentEventMutation(c config, op Op, opts ...agenteventOption) *AgentEventMutation {
	m := &AgentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentEventID sets the ID field of the mutation.
func withAgentEventID(id string) agenteventOption {
	return func(m *AgentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentEvent
		)
		m.oldValue = func(ctx context.Context) (*AgentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentEvent sets the old AgentEvent of the mutation.
func withAgentEvent(node *AgentEvent) agenteventOption {
	return func(m *AgentEventMutation) {
		m.oldValue = func(context.Context) (*AgentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentEvent entities.
func (m *AgentEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *AgentEventMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AgentEventMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AgentEventMutation) ResetIncidentID() {
	m.incident_id = nil
}

// SetType sets the "type" field.
func (m *AgentEventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *AgentEventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AgentEventMutation) ResetType() {
	m._type = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentEventMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentEventMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *AgentEventMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[agentevent.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *AgentEventMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentEventMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, agentevent.FieldAgentName)
}

// SetData sets the "data" field.
func (m *AgentEventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *AgentEventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *AgentEventMutation) ClearData() {
	m.data = nil
	m.clearedFields[agentevent.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *AgentEventMutation) DataCleared() bool {
	_, ok := m.clearedFields[agentevent.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *AgentEventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, agentevent.FieldData)
}

// SetTimestamp sets the "timestamp" field.
func (m *AgentEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AgentEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AgentEvent entity.
// If the AgentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AgentEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the AgentEventMutation builder.
func (m *AgentEventMutation) Where(ps ...predicate.AgentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentEvent).
func (m *AgentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.incident_id != nil {
		fields = append(fields, agentevent.FieldIncidentID)
	}
	if m._type != nil {
		fields = append(fields, agentevent.FieldType)
	}
	if m.agent_name != nil {
		fields = append(fields, agentevent.FieldAgentName)
	}
	if m.data != nil {
		fields = append(fields, agentevent.FieldData)
	}
	if m.timestamp != nil {
		fields = append(fields, agentevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentevent.FieldIncidentID:
		return m.IncidentID()
	case agentevent.FieldType:
		return m.GetType()
	case agentevent.FieldAgentName:
		return m.AgentName()
	case agentevent.FieldData:
		return m.Data()
	case agentevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentevent.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case agentevent.FieldType:
		return m.OldType(ctx)
	case agentevent.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentevent.FieldData:
		return m.OldData(ctx)
	case agentevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown AgentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentevent.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case agentevent.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case agentevent.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentevent.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case agentevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown AgentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentevent.FieldAgentName) {
		fields = append(fields, agentevent.FieldAgentName)
	}
	if m.FieldCleared(agentevent.FieldData) {
		fields = append(fields, agentevent.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentEventMutation) ClearField(name string) error {
	switch name {
	case agentevent.FieldAgentName:
		m.ClearAgentName()
		return nil
	case agentevent.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentEventMutation) ResetField(name string) error {
	switch name {
	case agentevent.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case agentevent.FieldType:
		m.ResetType()
		return nil
	case agentevent.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentevent.FieldData:
		m.ResetData()
		return nil
	case agentevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown AgentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentEvent edge %s", name)
}

// AgentPlanMutation represents an operation that mutates the AgentPlan nodes in the graph.
type AgentPlanMutation struct {
	config
	op            Op
	typ           string
	id            *string
	incident_id   *string
	version       *int
	addversion    *int
	steps         *[]map[string]interface{}
	appendsteps   []map[string]interface{}
	replan_reason *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentPlan, error)
	predicates    []predicate.AgentPlan
}

var _ ent.Mutation = (*AgentPlanMutation)(nil)

// agentplanOption allows management of the mutation configuration using functional options.
type agentplanOption func(*AgentPlanMutation)

// newAgentPlanMutation creates new mutation for the AgentPlan entity.
func newAgentPlanMutation(c config, op Op, opts ...agentplanOption) *AgentPlanMutation {
	m := &AgentPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentPlanID sets the ID field of the mutation.
func withAgentPlanID(id string) agentplanOption {
	return func(m *AgentPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentPlan
		)
		m.oldValue = func(ctx context.Context) (*AgentPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentPlan sets the old AgentPlan of the mutation.
func withAgentPlan(node *AgentPlan) agentplanOption {
	return func(m *AgentPlanMutation) {
		m.oldValue = func(context.Context) (*AgentPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentPlan entities.
func (m *AgentPlanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentPlanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentPlanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *AgentPlanMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AgentPlanMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the AgentPlan entity.
// If the AgentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPlanMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AgentPlanMutation) ResetIncidentID() {
	m.incident_id = nil
}

// SetVersion sets the "version" field.
func (m *AgentPlanMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentPlanMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentPlan entity.
// If the AgentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPlanMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentPlanMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentPlanMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentPlanMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetSteps sets the "steps" field.
func (m *AgentPlanMutation) SetSteps(value []map[string]interface{}) {
	m.steps = &value
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *AgentPlanMutation) Steps() (r []map[string]interface{}, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the AgentPlan entity.
// If the AgentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPlanMutation) OldSteps(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds value to the "steps" field.
func (m *AgentPlanMutation) AppendSteps(value []map[string]interface{}) {
	m.appendsteps = append(m.appendsteps, value...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *AgentPlanMutation) AppendedSteps() ([]map[string]interface{}, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *AgentPlanMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
}

// SetReplanReason sets the "replan_reason" field.
func (m *AgentPlanMutation) SetReplanReason(s string) {
	m.replan_reason = &s
}

// ReplanReason returns the value of the "replan_reason" field in the mutation.
func (m *AgentPlanMutation) ReplanReason() (r string, exists bool) {
	v := m.replan_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReplanReason returns the old "replan_reason" field's value of the AgentPlan entity.
// If the AgentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPlanMutation) OldReplanReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplanReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplanReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplanReason: %w", err)
	}
	return oldValue.ReplanReason, nil
}

// ClearReplanReason clears the value of the "replan_reason" field.
func (m *AgentPlanMutation) ClearReplanReason() {
	m.replan_reason = nil
	m.clearedFields[agentplan.FieldReplanReason] = struct{}{}
}

// ReplanReasonCleared returns if the "replan_reason" field was cleared in this mutation.
func (m *AgentPlanMutation) ReplanReasonCleared() bool {
	_, ok := m.clearedFields[agentplan.FieldReplanReason]
	return ok
}

// ResetReplanReason resets all changes to the "replan_reason" field.
func (m *AgentPlanMutation) ResetReplanReason() {
	m.replan_reason = nil
	delete(m.clearedFields, agentplan.FieldReplanReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentPlanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentPlanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentPlan entity.
// If the AgentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPlanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentPlanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentPlanMutation builder.
func (m *AgentPlanMutation) Where(ps ...predicate.AgentPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentPlan).
func (m *AgentPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentPlanMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.incident_id != nil {
		fields = append(fields, agentplan.FieldIncidentID)
	}
	if m.version != nil {
		fields = append(fields, agentplan.FieldVersion)
	}
	if m.steps != nil {
		fields = append(fields, agentplan.FieldSteps)
	}
	if m.replan_reason != nil {
		fields = append(fields, agentplan.FieldReplanReason)
	}
	if m.created_at != nil {
		fields = append(fields, agentplan.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentplan.FieldIncidentID:
		return m.IncidentID()
	case agentplan.FieldVersion:
		return m.Version()
	case agentplan.FieldSteps:
		return m.Steps()
	case agentplan.FieldReplanReason:
		return m.ReplanReason()
	case agentplan.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentplan.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case agentplan.FieldVersion:
		return m.OldVersion(ctx)
	case agentplan.FieldSteps:
		return m.OldSteps(ctx)
	case agentplan.FieldReplanReason:
		return m.OldReplanReason(ctx)
	case agentplan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentplan.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case agentplan.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentplan.FieldSteps:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case agentplan.FieldReplanReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplanReason(v)
		return nil
	case agentplan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentPlanMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, agentplan.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentPlanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentplan.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentplan.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentPlanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentplan.FieldReplanReason) {
		fields = append(fields, agentplan.FieldReplanReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentPlanMutation) ClearField(name string) error {
	switch name {
	case agentplan.FieldReplanReason:
		m.ClearReplanReason()
		return nil
	}
	return fmt.Errorf("unknown AgentPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentPlanMutation) ResetField(name string) error {
	switch name {
	case agentplan.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case agentplan.FieldVersion:
		m.ResetVersion()
		return nil
	case agentplan.FieldSteps:
		m.ResetSteps()
		return nil
	case agentplan.FieldReplanReason:
		m.ResetReplanReason()
		return nil
	case agentplan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentPlan edge %s", name)
}

// AgentRecordMutation represents an operation that mutates the AgentRecord nodes in the graph.
type AgentRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	role                  *string
	keywords              *[]string
	appendkeywords        []string
	status                *agentrecord.Status
	current_task          *string
	completed_tasks       *[]map[string]interface{}
	appendcompleted_tasks []map[string]interface{}
	last_active_at        *time.Time
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*AgentRecord, error)
	predicates            []predicate.AgentRecord
}

var _ ent.Mutation = (*AgentRecordMutation)(nil)

// agentrecordOption allows management of the mutation configuration using functional options.
type agentrecordOption func(*AgentRecordMutation)

// newAgentRecordMutation creates new mutation for the AgentRecord entity.
func newAgentRecordMutation(c config, op Op, opts ...agentrecordOption) *AgentRecordMutation {
	m := &AgentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRecordID sets the ID field of the mutation.
func withAgentRecordID(id string) agentrecordOption {
	return func(m *AgentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRecord
		)
		m.oldValue = func(ctx context.Context) (*AgentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRecord sets the old AgentRecord of the mutation.
func withAgentRecord(node *AgentRecord) agentrecordOption {
	return func(m *AgentRecordMutation) {
		m.oldValue = func(context.Context) (*AgentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRecord entities.
func (m *AgentRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentRecordMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentRecordMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentRecordMutation) ResetName() {
	m.name = nil
}

// SetRole sets the "role" field.
func (m *AgentRecordMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentRecordMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *AgentRecordMutation) ClearRole() {
	m.role = nil
	m.clearedFields[agentrecord.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *AgentRecordMutation) RoleCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *AgentRecordMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, agentrecord.FieldRole)
}

// SetKeywords sets the "keywords" field.
func (m *AgentRecordMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *AgentRecordMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *AgentRecordMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *AgentRecordMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *AgentRecordMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[agentrecord.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *AgentRecordMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *AgentRecordMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, agentrecord.FieldKeywords)
}

// SetStatus sets the "status" field.
func (m *AgentRecordMutation) SetStatus(a agentrecord.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRecordMutation) Status() (r agentrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldStatus(ctx context.Context) (v agentrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRecordMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentTask sets the "current_task" field.
func (m *AgentRecordMutation) SetCurrentTask(s string) {
	m.current_task = &s
}

// CurrentTask returns the value of the "current_task" field in the mutation.
func (m *AgentRecordMutation) CurrentTask() (r string, exists bool) {
	v := m.current_task
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTask returns the old "current_task" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldCurrentTask(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTask: %w", err)
	}
	return oldValue.CurrentTask, nil
}

// ClearCurrentTask clears the value of the "current_task" field.
func (m *AgentRecordMutation) ClearCurrentTask() {
	m.current_task = nil
	m.clearedFields[agentrecord.FieldCurrentTask] = struct{}{}
}

// CurrentTaskCleared returns if the "current_task" field was cleared in this mutation.
func (m *AgentRecordMutation) CurrentTaskCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldCurrentTask]
	return ok
}

// ResetCurrentTask resets all changes to the "current_task" field.
func (m *AgentRecordMutation) ResetCurrentTask() {
	m.current_task = nil
	delete(m.clearedFields, agentrecord.FieldCurrentTask)
}

// SetCompletedTasks sets the "completed_tasks" field.
func (m *AgentRecordMutation) SetCompletedTasks(value []map[string]interface{}) {
	m.completed_tasks = &value
	m.appendcompleted_tasks = nil
}

// CompletedTasks returns the value of the "completed_tasks" field in the mutation.
func (m *AgentRecordMutation) CompletedTasks() (r []map[string]interface{}, exists bool) {
	v := m.completed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedTasks returns the old "completed_tasks" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldCompletedTasks(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedTasks: %w", err)
	}
	return oldValue.CompletedTasks, nil
}

// AppendCompletedTasks adds value to the "completed_tasks" field.
func (m *AgentRecordMutation) AppendCompletedTasks(value []map[string]interface{}) {
	m.appendcompleted_tasks = append(m.appendcompleted_tasks, value...)
}

// AppendedCompletedTasks returns the list of values that were appended to the "completed_tasks" field in this mutation.
func (m *AgentRecordMutation) AppendedCompletedTasks() ([]map[string]interface{}, bool) {
	if len(m.appendcompleted_tasks) == 0 {
		return nil, false
	}
	return m.appendcompleted_tasks, true
}

// ClearCompletedTasks clears the value of the "completed_tasks" field.
func (m *AgentRecordMutation) ClearCompletedTasks() {
	m.completed_tasks = nil
	m.appendcompleted_tasks = nil
	m.clearedFields[agentrecord.FieldCompletedTasks] = struct{}{}
}

// CompletedTasksCleared returns if the "completed_tasks" field was cleared in this mutation.
func (m *AgentRecordMutation) CompletedTasksCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldCompletedTasks]
	return ok
}

// ResetCompletedTasks resets all changes to the "completed_tasks" field.
func (m *AgentRecordMutation) ResetCompletedTasks() {
	m.completed_tasks = nil
	m.appendcompleted_tasks = nil
	delete(m.clearedFields, agentrecord.FieldCompletedTasks)
}

// SetLastActiveAt sets the "last_active_at" field.
func (m *AgentRecordMutation) SetLastActiveAt(t time.Time) {
	m.last_active_at = &t
}

// LastActiveAt returns the value of the "last_active_at" field in the mutation.
func (m *AgentRecordMutation) LastActiveAt() (r time.Time, exists bool) {
	v := m.last_active_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveAt returns the old "last_active_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldLastActiveAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveAt: %w", err)
	}
	return oldValue.LastActiveAt, nil
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (m *AgentRecordMutation) ClearLastActiveAt() {
	m.last_active_at = nil
	m.clearedFields[agentrecord.FieldLastActiveAt] = struct{}{}
}

// LastActiveAtCleared returns if the "last_active_at" field was cleared in this mutation.
func (m *AgentRecordMutation) LastActiveAtCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldLastActiveAt]
	return ok
}

// ResetLastActiveAt resets all changes to the "last_active_at" field.
func (m *AgentRecordMutation) ResetLastActiveAt() {
	m.last_active_at = nil
	delete(m.clearedFields, agentrecord.FieldLastActiveAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AgentRecordMutation builder.
func (m *AgentRecordMutation) Where(ps ...predicate.AgentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRecord).
func (m *AgentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, agentrecord.FieldName)
	}
	if m.role != nil {
		fields = append(fields, agentrecord.FieldRole)
	}
	if m.keywords != nil {
		fields = append(fields, agentrecord.FieldKeywords)
	}
	if m.status != nil {
		fields = append(fields, agentrecord.FieldStatus)
	}
	if m.current_task != nil {
		fields = append(fields, agentrecord.FieldCurrentTask)
	}
	if m.completed_tasks != nil {
		fields = append(fields, agentrecord.FieldCompletedTasks)
	}
	if m.last_active_at != nil {
		fields = append(fields, agentrecord.FieldLastActiveAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrecord.FieldName:
		return m.Name()
	case agentrecord.FieldRole:
		return m.Role()
	case agentrecord.FieldKeywords:
		return m.Keywords()
	case agentrecord.FieldStatus:
		return m.Status()
	case agentrecord.FieldCurrentTask:
		return m.CurrentTask()
	case agentrecord.FieldCompletedTasks:
		return m.CompletedTasks()
	case agentrecord.FieldLastActiveAt:
		return m.LastActiveAt()
	case agentrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrecord.FieldName:
		return m.OldName(ctx)
	case agentrecord.FieldRole:
		return m.OldRole(ctx)
	case agentrecord.FieldKeywords:
		return m.OldKeywords(ctx)
	case agentrecord.FieldStatus:
		return m.OldStatus(ctx)
	case agentrecord.FieldCurrentTask:
		return m.OldCurrentTask(ctx)
	case agentrecord.FieldCompletedTasks:
		return m.OldCompletedTasks(ctx)
	case agentrecord.FieldLastActiveAt:
		return m.OldLastActiveAt(ctx)
	case agentrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrecord.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agentrecord.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentrecord.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case agentrecord.FieldStatus:
		v, ok := value.(agentrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrecord.FieldCurrentTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTask(v)
		return nil
	case agentrecord.FieldCompletedTasks:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedTasks(v)
		return nil
	case agentrecord.FieldLastActiveAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveAt(v)
		return nil
	case agentrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrecord.FieldRole) {
		fields = append(fields, agentrecord.FieldRole)
	}
	if m.FieldCleared(agentrecord.FieldKeywords) {
		fields = append(fields, agentrecord.FieldKeywords)
	}
	if m.FieldCleared(agentrecord.FieldCurrentTask) {
		fields = append(fields, agentrecord.FieldCurrentTask)
	}
	if m.FieldCleared(agentrecord.FieldCompletedTasks) {
		fields = append(fields, agentrecord.FieldCompletedTasks)
	}
	if m.FieldCleared(agentrecord.FieldLastActiveAt) {
		fields = append(fields, agentrecord.FieldLastActiveAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRecordMutation) ClearField(name string) error {
	switch name {
	case agentrecord.FieldRole:
		m.ClearRole()
		return nil
	case agentrecord.FieldKeywords:
		m.ClearKeywords()
		return nil
	case agentrecord.FieldCurrentTask:
		m.ClearCurrentTask()
		return nil
	case agentrecord.FieldCompletedTasks:
		m.ClearCompletedTasks()
		return nil
	case agentrecord.FieldLastActiveAt:
		m.ClearLastActiveAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRecordMutation) ResetField(name string) error {
	switch name {
	case agentrecord.FieldName:
		m.ResetName()
		return nil
	case agentrecord.FieldRole:
		m.ResetRole()
		return nil
	case agentrecord.FieldKeywords:
		m.ResetKeywords()
		return nil
	case agentrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrecord.FieldCurrentTask:
		m.ResetCurrentTask()
		return nil
	case agentrecord.FieldCompletedTasks:
		m.ResetCompletedTasks()
		return nil
	case agentrecord.FieldLastActiveAt:
		m.ResetLastActiveAt()
		return nil
	case agentrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentRecord edge %s", name)
}

// AgentWorkspaceMutation represents an operation that mutates the AgentWorkspace nodes in the graph.
type AgentWorkspaceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	incident_id   *string
	files         *map[string]string
	notes         *[]map[string]interface{}
	appendnotes   []map[string]interface{}
	plan_progress *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentWorkspace, error)
	predicates    []predicate.AgentWorkspace
}

var _ ent.Mutation = (*AgentWorkspaceMutation)(nil)

// agentworkspaceOption allows management of the mutation configuration using functional options.
type agentworkspaceOption func(*AgentWorkspaceMutation)

// newAgentWorkspaceMutation creates new mutation for the AgentWorkspace entity.
func newAgentWorkspaceMutation(c config, op Op, opts ...agentworkspaceOption) *AgentWorkspaceMutation {
	m := &AgentWorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentWorkspaceID sets the ID field of the mutation.
func withAgentWorkspaceID(id string) agentworkspaceOption {
	return func(m *AgentWorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentWorkspace
		)
		m.oldValue = func(ctx context.Context) (*AgentWorkspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentWorkspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentWorkspace sets the old AgentWorkspace of the mutation.
func withAgentWorkspace(node *AgentWorkspace) agentworkspaceOption {
	return func(m *AgentWorkspaceMutation) {
		m.oldValue = func(context.Context) (*AgentWorkspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentWorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentWorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentWorkspace entities.
func (m *AgentWorkspaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentWorkspaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentWorkspaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentWorkspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *AgentWorkspaceMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *AgentWorkspaceMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the AgentWorkspace entity.
// If the AgentWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentWorkspaceMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *AgentWorkspaceMutation) ResetIncidentID() {
	m.incident_id = nil
}

// SetFiles sets the "files" field.
func (m *AgentWorkspaceMutation) SetFiles(value map[string]string) {
	m.files = &value
}

// Files returns the value of the "files" field in the mutation.
func (m *AgentWorkspaceMutation) Files() (r map[string]string, exists bool) {
	v := m.files
	if v == nil {
		return
	}
	return *v, true
}

// OldFiles returns the old "files" field's value of the AgentWorkspace entity.
// If the AgentWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentWorkspaceMutation) OldFiles(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiles: %w", err)
	}
	return oldValue.Files, nil
}

// ClearFiles clears the value of the "files" field.
func (m *AgentWorkspaceMutation) ClearFiles() {
	m.files = nil
	m.clearedFields[agentworkspace.FieldFiles] = struct{}{}
}

// FilesCleared returns if the "files" field was cleared in this mutation.
func (m *AgentWorkspaceMutation) FilesCleared() bool {
	_, ok := m.clearedFields[agentworkspace.FieldFiles]
	return ok
}

// ResetFiles resets all changes to the "files" field.
func (m *AgentWorkspaceMutation) ResetFiles() {
	m.files = nil
	delete(m.clearedFields, agentworkspace.FieldFiles)
}

// SetNotes sets the "notes" field.
func (m *AgentWorkspaceMutation) SetNotes(value []map[string]interface{}) {
	m.notes = &value
	m.appendnotes = nil
}

// Notes returns the value of the "notes" field in the mutation.
func (m *AgentWorkspaceMutation) Notes() (r []map[string]interface{}, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the AgentWorkspace entity.
// If the AgentWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentWorkspaceMutation) OldNotes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// AppendNotes adds value to the "notes" field.
func (m *AgentWorkspaceMutation) AppendNotes(value []map[string]interface{}) {
	m.appendnotes = append(m.appendnotes, value...)
}

// AppendedNotes returns the list of values that were appended to the "notes" field in this mutation.
func (m *AgentWorkspaceMutation) AppendedNotes() ([]map[string]interface{}, bool) {
	if len(m.appendnotes) == 0 {
		return nil, false
	}
	return m.appendnotes, true
}

// ClearNotes clears the value of the "notes" field.
func (m *AgentWorkspaceMutation) ClearNotes() {
	m.notes = nil
	m.appendnotes = nil
	m.clearedFields[agentworkspace.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *AgentWorkspaceMutation) NotesCleared() bool {
	_, ok := m.clearedFields[agentworkspace.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *AgentWorkspaceMutation) ResetNotes() {
	m.notes = nil
	m.appendnotes = nil
	delete(m.clearedFields, agentworkspace.FieldNotes)
}

// SetPlanProgress sets the "plan_progress" field.
func (m *AgentWorkspaceMutation) SetPlanProgress(value map[string]interface{}) {
	m.plan_progress = &value
}

// PlanProgress returns the value of the "plan_progress" field in the mutation.
func (m *AgentWorkspaceMutation) PlanProgress() (r map[string]interface{}, exists bool) {
	v := m.plan_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanProgress returns the old "plan_progress" field's value of the AgentWorkspace entity.
// If the AgentWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentWorkspaceMutation) OldPlanProgress(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanProgress: %w", err)
	}
	return oldValue.PlanProgress, nil
}

// ClearPlanProgress clears the value of the "plan_progress" field.
func (m *AgentWorkspaceMutation) ClearPlanProgress() {
	m.plan_progress = nil
	m.clearedFields[agentworkspace.FieldPlanProgress] = struct{}{}
}

// PlanProgressCleared returns if the "plan_progress" field was cleared in this mutation.
func (m *AgentWorkspaceMutation) PlanProgressCleared() bool {
	_, ok := m.clearedFields[agentworkspace.FieldPlanProgress]
	return ok
}

// ResetPlanProgress resets all changes to the "plan_progress" field.
func (m *AgentWorkspaceMutation) ResetPlanProgress() {
	m.plan_progress = nil
	delete(m.clearedFields, agentworkspace.FieldPlanProgress)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentWorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentWorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentWorkspace entity.
// If the AgentWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentWorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentWorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentWorkspaceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentWorkspaceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentWorkspace entity.
// If the AgentWorkspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentWorkspaceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentWorkspaceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentWorkspaceMutation builder.
func (m *AgentWorkspaceMutation) Where(ps ...predicate.AgentWorkspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentWorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentWorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentWorkspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentWorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentWorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentWorkspace).
func (m *AgentWorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentWorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.incident_id != nil {
		fields = append(fields, agentworkspace.FieldIncidentID)
	}
	if m.files != nil {
		fields = append(fields, agentworkspace.FieldFiles)
	}
	if m.notes != nil {
		fields = append(fields, agentworkspace.FieldNotes)
	}
	if m.plan_progress != nil {
		fields = append(fields, agentworkspace.FieldPlanProgress)
	}
	if m.created_at != nil {
		fields = append(fields, agentworkspace.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentworkspace.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentWorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentworkspace.FieldIncidentID:
		return m.IncidentID()
	case agentworkspace.FieldFiles:
		return m.Files()
	case agentworkspace.FieldNotes:
		return m.Notes()
	case agentworkspace.FieldPlanProgress:
		return m.PlanProgress()
	case agentworkspace.FieldCreatedAt:
		return m.CreatedAt()
	case agentworkspace.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentWorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentworkspace.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case agentworkspace.FieldFiles:
		return m.OldFiles(ctx)
	case agentworkspace.FieldNotes:
		return m.OldNotes(ctx)
	case agentworkspace.FieldPlanProgress:
		return m.OldPlanProgress(ctx)
	case agentworkspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentworkspace.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentWorkspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentWorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentworkspace.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case agentworkspace.FieldFiles:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiles(v)
		return nil
	case agentworkspace.FieldNotes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case agentworkspace.FieldPlanProgress:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanProgress(v)
		return nil
	case agentworkspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentworkspace.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentWorkspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentWorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentWorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentWorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentWorkspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentWorkspaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentworkspace.FieldFiles) {
		fields = append(fields, agentworkspace.FieldFiles)
	}
	if m.FieldCleared(agentworkspace.FieldNotes) {
		fields = append(fields, agentworkspace.FieldNotes)
	}
	if m.FieldCleared(agentworkspace.FieldPlanProgress) {
		fields = append(fields, agentworkspace.FieldPlanProgress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentWorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentWorkspaceMutation) ClearField(name string) error {
	switch name {
	case agentworkspace.FieldFiles:
		m.ClearFiles()
		return nil
	case agentworkspace.FieldNotes:
		m.ClearNotes()
		return nil
	case agentworkspace.FieldPlanProgress:
		m.ClearPlanProgress()
		return nil
	}
	return fmt.Errorf("unknown AgentWorkspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentWorkspaceMutation) ResetField(name string) error {
	switch name {
	case agentworkspace.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case agentworkspace.FieldFiles:
		m.ResetFiles()
		return nil
	case agentworkspace.FieldNotes:
		m.ResetNotes()
		return nil
	case agentworkspace.FieldPlanProgress:
		m.ResetPlanProgress()
		return nil
	case agentworkspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentworkspace.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentWorkspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentWorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentWorkspaceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentWorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentWorkspaceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentWorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentWorkspaceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentWorkspaceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentWorkspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentWorkspaceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentWorkspace edge %s", name)
}

// IncidentMutation represents an operation that mutates the Incident nodes in the graph.
type IncidentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	title                  *string
	description            *string
	severity               *incident.Severity
	status                 *incident.Status
	service_name           *string
	source                 *string
	user_id                *string
	integration_id         *string
	repo_name              *string
	log_ids                *[]string
	appendlog_ids          []string
	trigger_event          *map[string]interface{}
	metadata               *map[string]interface{}
	first_seen_at          *time.Time
	last_seen_at           *time.Time
	created_at             *time.Time
	resolved_at            *time.Time
	root_cause             *string
	action_taken           *string
	code_fix_explanation   *string
	pr_url                 *string
	pr_number              *int
	addpr_number           *int
	pr_files_changed       *[]string
	appendpr_files_changed []string
	pr_original_contents   *map[string]string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Incident, error)
	predicates             []predicate.Incident
}

var _ ent.Mutation = (*IncidentMutation)(nil)

// incidentOption allows management of the mutation configuration using functional options.
type incidentOption func(*IncidentMutation)

// newIncidentMutation creates new mutation for the Incident entity.
func newIncidentMutation(c config, op Op, opts ...incidentOption) *IncidentMutation {
	m := &IncidentMutation{
		config:        c,
		op:            op,
		typ:           TypeIncident,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIncidentID sets the ID field of the mutation.
func withIncidentID(id string) incidentOption {
	return func(m *IncidentMutation) {
		var (
			err   error
			once  sync.Once
			value *Incident
		)
		m.oldValue = func(ctx context.Context) (*Incident, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Incident.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIncident sets the old Incident of the mutation.
func withIncident(node *Incident) incidentOption {
	return func(m *IncidentMutation) {
		m.oldValue = func(context.Context) (*Incident, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IncidentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IncidentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Incident entities.
func (m *IncidentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IncidentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IncidentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Incident.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *IncidentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IncidentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IncidentMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *IncidentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IncidentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *IncidentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[incident.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *IncidentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[incident.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *IncidentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, incident.FieldDescription)
}

// SetSeverity sets the "severity" field.
func (m *IncidentMutation) SetSeverity(i incident.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IncidentMutation) Severity() (r incident.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSeverity(ctx context.Context) (v incident.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IncidentMutation) ResetSeverity() {
	m.severity = nil
}

// SetStatus sets the "status" field.
func (m *IncidentMutation) SetStatus(i incident.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IncidentMutation) Status() (r incident.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldStatus(ctx context.Context) (v incident.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IncidentMutation) ResetStatus() {
	m.status = nil
}

// SetServiceName sets the "service_name" field.
func (m *IncidentMutation) SetServiceName(s string) {
	m.service_name = &s
}

// ServiceName returns the value of the "service_name" field in the mutation.
func (m *IncidentMutation) ServiceName() (r string, exists bool) {
	v := m.service_name
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceName returns the old "service_name" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldServiceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceName: %w", err)
	}
	return oldValue.ServiceName, nil
}

// ResetServiceName resets all changes to the "service_name" field.
func (m *IncidentMutation) ResetServiceName() {
	m.service_name = nil
}

// SetSource sets the "source" field.
func (m *IncidentMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *IncidentMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *IncidentMutation) ResetSource() {
	m.source = nil
}

// SetUserID sets the "user_id" field.
func (m *IncidentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IncidentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IncidentMutation) ResetUserID() {
	m.user_id = nil
}

// SetIntegrationID sets the "integration_id" field.
func (m *IncidentMutation) SetIntegrationID(s string) {
	m.integration_id = &s
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *IncidentMutation) IntegrationID() (r string, exists bool) {
	v := m.integration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldIntegrationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ClearIntegrationID clears the value of the "integration_id" field.
func (m *IncidentMutation) ClearIntegrationID() {
	m.integration_id = nil
	m.clearedFields[incident.FieldIntegrationID] = struct{}{}
}

// IntegrationIDCleared returns if the "integration_id" field was cleared in this mutation.
func (m *IncidentMutation) IntegrationIDCleared() bool {
	_, ok := m.clearedFields[incident.FieldIntegrationID]
	return ok
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *IncidentMutation) ResetIntegrationID() {
	m.integration_id = nil
	delete(m.clearedFields, incident.FieldIntegrationID)
}

// SetRepoName sets the "repo_name" field.
func (m *IncidentMutation) SetRepoName(s string) {
	m.repo_name = &s
}

// RepoName returns the value of the "repo_name" field in the mutation.
func (m *IncidentMutation) RepoName() (r string, exists bool) {
	v := m.repo_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoName returns the old "repo_name" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldRepoName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoName: %w", err)
	}
	return oldValue.RepoName, nil
}

// ClearRepoName clears the value of the "repo_name" field.
func (m *IncidentMutation) ClearRepoName() {
	m.repo_name = nil
	m.clearedFields[incident.FieldRepoName] = struct{}{}
}

// RepoNameCleared returns if the "repo_name" field was cleared in this mutation.
func (m *IncidentMutation) RepoNameCleared() bool {
	_, ok := m.clearedFields[incident.FieldRepoName]
	return ok
}

// ResetRepoName resets all changes to the "repo_name" field.
func (m *IncidentMutation) ResetRepoName() {
	m.repo_name = nil
	delete(m.clearedFields, incident.FieldRepoName)
}

// SetLogIds sets the "log_ids" field.
func (m *IncidentMutation) SetLogIds(s []string) {
	m.log_ids = &s
	m.appendlog_ids = nil
}

// LogIds returns the value of the "log_ids" field in the mutation.
func (m *IncidentMutation) LogIds() (r []string, exists bool) {
	v := m.log_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldLogIds returns the old "log_ids" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldLogIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogIds: %w", err)
	}
	return oldValue.LogIds, nil
}

// AppendLogIds adds s to the "log_ids" field.
func (m *IncidentMutation) AppendLogIds(s []string) {
	m.appendlog_ids = append(m.appendlog_ids, s...)
}

// AppendedLogIds returns the list of values that were appended to the "log_ids" field in this mutation.
func (m *IncidentMutation) AppendedLogIds() ([]string, bool) {
	if len(m.appendlog_ids) == 0 {
		return nil, false
	}
	return m.appendlog_ids, true
}

// ResetLogIds resets all changes to the "log_ids" field.
func (m *IncidentMutation) ResetLogIds() {
	m.log_ids = nil
	m.appendlog_ids = nil
}

// SetTriggerEvent sets the "trigger_event" field.
func (m *IncidentMutation) SetTriggerEvent(value map[string]interface{}) {
	m.trigger_event = &value
}

// TriggerEvent returns the value of the "trigger_event" field in the mutation.
func (m *IncidentMutation) TriggerEvent() (r map[string]interface{}, exists bool) {
	v := m.trigger_event
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerEvent returns the old "trigger_event" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldTriggerEvent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerEvent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerEvent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerEvent: %w", err)
	}
	return oldValue.TriggerEvent, nil
}

// ClearTriggerEvent clears the value of the "trigger_event" field.
func (m *IncidentMutation) ClearTriggerEvent() {
	m.trigger_event = nil
	m.clearedFields[incident.FieldTriggerEvent] = struct{}{}
}

// TriggerEventCleared returns if the "trigger_event" field was cleared in this mutation.
func (m *IncidentMutation) TriggerEventCleared() bool {
	_, ok := m.clearedFields[incident.FieldTriggerEvent]
	return ok
}

// ResetTriggerEvent resets all changes to the "trigger_event" field.
func (m *IncidentMutation) ResetTriggerEvent() {
	m.trigger_event = nil
	delete(m.clearedFields, incident.FieldTriggerEvent)
}

// SetMetadata sets the "metadata" field.
func (m *IncidentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *IncidentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *IncidentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[incident.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *IncidentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[incident.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *IncidentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, incident.FieldMetadata)
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *IncidentMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *IncidentMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *IncidentMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *IncidentMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *IncidentMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *IncidentMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IncidentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IncidentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IncidentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *IncidentMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *IncidentMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *IncidentMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[incident.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *IncidentMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[incident.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *IncidentMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, incident.FieldResolvedAt)
}

// SetRootCause sets the "root_cause" field.
func (m *IncidentMutation) SetRootCause(s string) {
	m.root_cause = &s
}

// RootCause returns the value of the "root_cause" field in the mutation.
func (m *IncidentMutation) RootCause() (r string, exists bool) {
	v := m.root_cause
	if v == nil {
		return
	}
	return *v, true
}

// OldRootCause returns the old "root_cause" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldRootCause(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootCause: %w", err)
	}
	return oldValue.RootCause, nil
}

// ClearRootCause clears the value of the "root_cause" field.
func (m *IncidentMutation) ClearRootCause() {
	m.root_cause = nil
	m.clearedFields[incident.FieldRootCause] = struct{}{}
}

// RootCauseCleared returns if the "root_cause" field was cleared in this mutation.
func (m *IncidentMutation) RootCauseCleared() bool {
	_, ok := m.clearedFields[incident.FieldRootCause]
	return ok
}

// ResetRootCause resets all changes to the "root_cause" field.
func (m *IncidentMutation) ResetRootCause() {
	m.root_cause = nil
	delete(m.clearedFields, incident.FieldRootCause)
}

// SetActionTaken sets the "action_taken" field.
func (m *IncidentMutation) SetActionTaken(s string) {
	m.action_taken = &s
}

// ActionTaken returns the value of the "action_taken" field in the mutation.
func (m *IncidentMutation) ActionTaken() (r string, exists bool) {
	v := m.action_taken
	if v == nil {
		return
	}
	return *v, true
}

// OldActionTaken returns the old "action_taken" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldActionTaken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionTaken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionTaken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionTaken: %w", err)
	}
	return oldValue.ActionTaken, nil
}

// ClearActionTaken clears the value of the "action_taken" field.
func (m *IncidentMutation) ClearActionTaken() {
	m.action_taken = nil
	m.clearedFields[incident.FieldActionTaken] = struct{}{}
}

// ActionTakenCleared returns if the "action_taken" field was cleared in this mutation.
func (m *IncidentMutation) ActionTakenCleared() bool {
	_, ok := m.clearedFields[incident.FieldActionTaken]
	return ok
}

// ResetActionTaken resets all changes to the "action_taken" field.
func (m *IncidentMutation) ResetActionTaken() {
	m.action_taken = nil
	delete(m.clearedFields, incident.FieldActionTaken)
}

// SetCodeFixExplanation sets the "code_fix_explanation" field.
func (m *IncidentMutation) SetCodeFixExplanation(s string) {
	m.code_fix_explanation = &s
}

// CodeFixExplanation returns the value of the "code_fix_explanation" field in the mutation.
func (m *IncidentMutation) CodeFixExplanation() (r string, exists bool) {
	v := m.code_fix_explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeFixExplanation returns the old "code_fix_explanation" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldCodeFixExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeFixExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeFixExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeFixExplanation: %w", err)
	}
	return oldValue.CodeFixExplanation, nil
}

// ClearCodeFixExplanation clears the value of the "code_fix_explanation" field.
func (m *IncidentMutation) ClearCodeFixExplanation() {
	m.code_fix_explanation = nil
	m.clearedFields[incident.FieldCodeFixExplanation] = struct{}{}
}

// CodeFixExplanationCleared returns if the "code_fix_explanation" field was cleared in this mutation.
func (m *IncidentMutation) CodeFixExplanationCleared() bool {
	_, ok := m.clearedFields[incident.FieldCodeFixExplanation]
	return ok
}

// ResetCodeFixExplanation resets all changes to the "code_fix_explanation" field.
func (m *IncidentMutation) ResetCodeFixExplanation() {
	m.code_fix_explanation = nil
	delete(m.clearedFields, incident.FieldCodeFixExplanation)
}

// SetPrURL sets the "pr_url" field.
func (m *IncidentMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *IncidentMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldPrURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *IncidentMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[incident.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *IncidentMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[incident.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *IncidentMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, incident.FieldPrURL)
}

// SetPrNumber sets the "pr_number" field.
func (m *IncidentMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *IncidentMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldPrNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *IncidentMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *IncidentMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *IncidentMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[incident.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *IncidentMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[incident.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *IncidentMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, incident.FieldPrNumber)
}

// SetPrFilesChanged sets the "pr_files_changed" field.
func (m *IncidentMutation) SetPrFilesChanged(s []string) {
	m.pr_files_changed = &s
	m.appendpr_files_changed = nil
}

// PrFilesChanged returns the value of the "pr_files_changed" field in the mutation.
func (m *IncidentMutation) PrFilesChanged() (r []string, exists bool) {
	v := m.pr_files_changed
	if v == nil {
		return
	}
	return *v, true
}

// OldPrFilesChanged returns the old "pr_files_changed" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldPrFilesChanged(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrFilesChanged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrFilesChanged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrFilesChanged: %w", err)
	}
	return oldValue.PrFilesChanged, nil
}

// AppendPrFilesChanged adds s to the "pr_files_changed" field.
func (m *IncidentMutation) AppendPrFilesChanged(s []string) {
	m.appendpr_files_changed = append(m.appendpr_files_changed, s...)
}

// AppendedPrFilesChanged returns the list of values that were appended to the "pr_files_changed" field in this mutation.
func (m *IncidentMutation) AppendedPrFilesChanged() ([]string, bool) {
	if len(m.appendpr_files_changed) == 0 {
		return nil, false
	}
	return m.appendpr_files_changed, true
}

// ClearPrFilesChanged clears the value of the "pr_files_changed" field.
func (m *IncidentMutation) ClearPrFilesChanged() {
	m.pr_files_changed = nil
	m.appendpr_files_changed = nil
	m.clearedFields[incident.FieldPrFilesChanged] = struct{}{}
}

// PrFilesChangedCleared returns if the "pr_files_changed" field was cleared in this mutation.
func (m *IncidentMutation) PrFilesChangedCleared() bool {
	_, ok := m.clearedFields[incident.FieldPrFilesChanged]
	return ok
}

// ResetPrFilesChanged resets all changes to the "pr_files_changed" field.
func (m *IncidentMutation) ResetPrFilesChanged() {
	m.pr_files_changed = nil
	m.appendpr_files_changed = nil
	delete(m.clearedFields, incident.FieldPrFilesChanged)
}

// SetPrOriginalContents sets the "pr_original_contents" field.
func (m *IncidentMutation) SetPrOriginalContents(value map[string]string) {
	m.pr_original_contents = &value
}

// PrOriginalContents returns the value of the "pr_original_contents" field in the mutation.
func (m *IncidentMutation) PrOriginalContents() (r map[string]string, exists bool) {
	v := m.pr_original_contents
	if v == nil {
		return
	}
	return *v, true
}

// OldPrOriginalContents returns the old "pr_original_contents" field's value of the Incident entity.
// If the Incident object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IncidentMutation) OldPrOriginalContents(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrOriginalContents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrOriginalContents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrOriginalContents: %w", err)
	}
	return oldValue.PrOriginalContents, nil
}

// ClearPrOriginalContents clears the value of the "pr_original_contents" field.
func (m *IncidentMutation) ClearPrOriginalContents() {
	m.pr_original_contents = nil
	m.clearedFields[incident.FieldPrOriginalContents] = struct{}{}
}

// PrOriginalContentsCleared returns if the "pr_original_contents" field was cleared in this mutation.
func (m *IncidentMutation) PrOriginalContentsCleared() bool {
	_, ok := m.clearedFields[incident.FieldPrOriginalContents]
	return ok
}

// ResetPrOriginalContents resets all changes to the "pr_original_contents" field.
func (m *IncidentMutation) ResetPrOriginalContents() {
	m.pr_original_contents = nil
	delete(m.clearedFields, incident.FieldPrOriginalContents)
}

// Where appends a list predicates to the IncidentMutation builder.
func (m *IncidentMutation) Where(ps ...predicate.Incident) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IncidentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IncidentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Incident, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IncidentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IncidentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Incident).
func (m *IncidentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IncidentMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.title != nil {
		fields = append(fields, incident.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, incident.FieldDescription)
	}
	if m.severity != nil {
		fields = append(fields, incident.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, incident.FieldStatus)
	}
	if m.service_name != nil {
		fields = append(fields, incident.FieldServiceName)
	}
	if m.source != nil {
		fields = append(fields, incident.FieldSource)
	}
	if m.user_id != nil {
		fields = append(fields, incident.FieldUserID)
	}
	if m.integration_id != nil {
		fields = append(fields, incident.FieldIntegrationID)
	}
	if m.repo_name != nil {
		fields = append(fields, incident.FieldRepoName)
	}
	if m.log_ids != nil {
		fields = append(fields, incident.FieldLogIds)
	}
	if m.trigger_event != nil {
		fields = append(fields, incident.FieldTriggerEvent)
	}
	if m.metadata != nil {
		fields = append(fields, incident.FieldMetadata)
	}
	if m.first_seen_at != nil {
		fields = append(fields, incident.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, incident.FieldLastSeenAt)
	}
	if m.created_at != nil {
		fields = append(fields, incident.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, incident.FieldResolvedAt)
	}
	if m.root_cause != nil {
		fields = append(fields, incident.FieldRootCause)
	}
	if m.action_taken != nil {
		fields = append(fields, incident.FieldActionTaken)
	}
	if m.code_fix_explanation != nil {
		fields = append(fields, incident.FieldCodeFixExplanation)
	}
	if m.pr_url != nil {
		fields = append(fields, incident.FieldPrURL)
	}
	if m.pr_number != nil {
		fields = append(fields, incident.FieldPrNumber)
	}
	if m.pr_files_changed != nil {
		fields = append(fields, incident.FieldPrFilesChanged)
	}
	if m.pr_original_contents != nil {
		fields = append(fields, incident.FieldPrOriginalContents)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IncidentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldTitle:
		return m.Title()
	case incident.FieldDescription:
		return m.Description()
	case incident.FieldSeverity:
		return m.Severity()
	case incident.FieldStatus:
		return m.Status()
	case incident.FieldServiceName:
		return m.ServiceName()
	case incident.FieldSource:
		return m.Source()
	case incident.FieldUserID:
		return m.UserID()
	case incident.FieldIntegrationID:
		return m.IntegrationID()
	case incident.FieldRepoName:
		return m.RepoName()
	case incident.FieldLogIds:
		return m.LogIds()
	case incident.FieldTriggerEvent:
		return m.TriggerEvent()
	case incident.FieldMetadata:
		return m.Metadata()
	case incident.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case incident.FieldLastSeenAt:
		return m.LastSeenAt()
	case incident.FieldCreatedAt:
		return m.CreatedAt()
	case incident.FieldResolvedAt:
		return m.ResolvedAt()
	case incident.FieldRootCause:
		return m.RootCause()
	case incident.FieldActionTaken:
		return m.ActionTaken()
	case incident.FieldCodeFixExplanation:
		return m.CodeFixExplanation()
	case incident.FieldPrURL:
		return m.PrURL()
	case incident.FieldPrNumber:
		return m.PrNumber()
	case incident.FieldPrFilesChanged:
		return m.PrFilesChanged()
	case incident.FieldPrOriginalContents:
		return m.PrOriginalContents()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IncidentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case incident.FieldTitle:
		return m.OldTitle(ctx)
	case incident.FieldDescription:
		return m.OldDescription(ctx)
	case incident.FieldSeverity:
		return m.OldSeverity(ctx)
	case incident.FieldStatus:
		return m.OldStatus(ctx)
	case incident.FieldServiceName:
		return m.OldServiceName(ctx)
	case incident.FieldSource:
		return m.OldSource(ctx)
	case incident.FieldUserID:
		return m.OldUserID(ctx)
	case incident.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case incident.FieldRepoName:
		return m.OldRepoName(ctx)
	case incident.FieldLogIds:
		return m.OldLogIds(ctx)
	case incident.FieldTriggerEvent:
		return m.OldTriggerEvent(ctx)
	case incident.FieldMetadata:
		return m.OldMetadata(ctx)
	case incident.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case incident.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case incident.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case incident.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case incident.FieldRootCause:
		return m.OldRootCause(ctx)
	case incident.FieldActionTaken:
		return m.OldActionTaken(ctx)
	case incident.FieldCodeFixExplanation:
		return m.OldCodeFixExplanation(ctx)
	case incident.FieldPrURL:
		return m.OldPrURL(ctx)
	case incident.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case incident.FieldPrFilesChanged:
		return m.OldPrFilesChanged(ctx)
	case incident.FieldPrOriginalContents:
		return m.OldPrOriginalContents(ctx)
	}
	return nil, fmt.Errorf("unknown Incident field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case incident.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case incident.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case incident.FieldSeverity:
		v, ok := value.(incident.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case incident.FieldStatus:
		v, ok := value.(incident.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case incident.FieldServiceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceName(v)
		return nil
	case incident.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case incident.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case incident.FieldIntegrationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case incident.FieldRepoName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoName(v)
		return nil
	case incident.FieldLogIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogIds(v)
		return nil
	case incident.FieldTriggerEvent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerEvent(v)
		return nil
	case incident.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case incident.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case incident.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case incident.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case incident.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case incident.FieldRootCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootCause(v)
		return nil
	case incident.FieldActionTaken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionTaken(v)
		return nil
	case incident.FieldCodeFixExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeFixExplanation(v)
		return nil
	case incident.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case incident.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case incident.FieldPrFilesChanged:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrFilesChanged(v)
		return nil
	case incident.FieldPrOriginalContents:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrOriginalContents(v)
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IncidentMutation) AddedFields() []string {
	var fields []string
	if m.addpr_number != nil {
		fields = append(fields, incident.FieldPrNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IncidentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case incident.FieldPrNumber:
		return m.AddedPrNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IncidentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case incident.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Incident numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IncidentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(incident.FieldDescription) {
		fields = append(fields, incident.FieldDescription)
	}
	if m.FieldCleared(incident.FieldIntegrationID) {
		fields = append(fields, incident.FieldIntegrationID)
	}
	if m.FieldCleared(incident.FieldRepoName) {
		fields = append(fields, incident.FieldRepoName)
	}
	if m.FieldCleared(incident.FieldTriggerEvent) {
		fields = append(fields, incident.FieldTriggerEvent)
	}
	if m.FieldCleared(incident.FieldMetadata) {
		fields = append(fields, incident.FieldMetadata)
	}
	if m.FieldCleared(incident.FieldResolvedAt) {
		fields = append(fields, incident.FieldResolvedAt)
	}
	if m.FieldCleared(incident.FieldRootCause) {
		fields = append(fields, incident.FieldRootCause)
	}
	if m.FieldCleared(incident.FieldActionTaken) {
		fields = append(fields, incident.FieldActionTaken)
	}
	if m.FieldCleared(incident.FieldCodeFixExplanation) {
		fields = append(fields, incident.FieldCodeFixExplanation)
	}
	if m.FieldCleared(incident.FieldPrURL) {
		fields = append(fields, incident.FieldPrURL)
	}
	if m.FieldCleared(incident.FieldPrNumber) {
		fields = append(fields, incident.FieldPrNumber)
	}
	if m.FieldCleared(incident.FieldPrFilesChanged) {
		fields = append(fields, incident.FieldPrFilesChanged)
	}
	if m.FieldCleared(incident.FieldPrOriginalContents) {
		fields = append(fields, incident.FieldPrOriginalContents)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IncidentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IncidentMutation) ClearField(name string) error {
	switch name {
	case incident.FieldDescription:
		m.ClearDescription()
		return nil
	case incident.FieldIntegrationID:
		m.ClearIntegrationID()
		return nil
	case incident.FieldRepoName:
		m.ClearRepoName()
		return nil
	case incident.FieldTriggerEvent:
		m.ClearTriggerEvent()
		return nil
	case incident.FieldMetadata:
		m.ClearMetadata()
		return nil
	case incident.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case incident.FieldRootCause:
		m.ClearRootCause()
		return nil
	case incident.FieldActionTaken:
		m.ClearActionTaken()
		return nil
	case incident.FieldCodeFixExplanation:
		m.ClearCodeFixExplanation()
		return nil
	case incident.FieldPrURL:
		m.ClearPrURL()
		return nil
	case incident.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case incident.FieldPrFilesChanged:
		m.ClearPrFilesChanged()
		return nil
	case incident.FieldPrOriginalContents:
		m.ClearPrOriginalContents()
		return nil
	}
	return fmt.Errorf("unknown Incident nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IncidentMutation) ResetField(name string) error {
	switch name {
	case incident.FieldTitle:
		m.ResetTitle()
		return nil
	case incident.FieldDescription:
		m.ResetDescription()
		return nil
	case incident.FieldSeverity:
		m.ResetSeverity()
		return nil
	case incident.FieldStatus:
		m.ResetStatus()
		return nil
	case incident.FieldServiceName:
		m.ResetServiceName()
		return nil
	case incident.FieldSource:
		m.ResetSource()
		return nil
	case incident.FieldUserID:
		m.ResetUserID()
		return nil
	case incident.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case incident.FieldRepoName:
		m.ResetRepoName()
		return nil
	case incident.FieldLogIds:
		m.ResetLogIds()
		return nil
	case incident.FieldTriggerEvent:
		m.ResetTriggerEvent()
		return nil
	case incident.FieldMetadata:
		m.ResetMetadata()
		return nil
	case incident.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case incident.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case incident.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case incident.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case incident.FieldRootCause:
		m.ResetRootCause()
		return nil
	case incident.FieldActionTaken:
		m.ResetActionTaken()
		return nil
	case incident.FieldCodeFixExplanation:
		m.ResetCodeFixExplanation()
		return nil
	case incident.FieldPrURL:
		m.ResetPrURL()
		return nil
	case incident.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case incident.FieldPrFilesChanged:
		m.ResetPrFilesChanged()
		return nil
	case incident.FieldPrOriginalContents:
		m.ResetPrOriginalContents()
		return nil
	}
	return fmt.Errorf("unknown Incident field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IncidentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IncidentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IncidentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IncidentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IncidentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IncidentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IncidentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Incident unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IncidentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Incident edge %s", name)
}

// IntegrationMutation represents an operation that mutates the Integration nodes in the graph.
type IntegrationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	provider      *integration.Provider
	status        *integration.Status
	last_log_time *time.Time
	_config       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Integration, error)
	predicates    []predicate.Integration
}

var _ ent.Mutation = (*IntegrationMutation)(nil)

// integrationOption allows management of the mutation configuration using functional options.
type integrationOption func(*IntegrationMutation)

// newIntegrationMutation creates new mutation for the Integration entity.
func newIntegrationMutation(c config, op Op, opts ...integrationOption) *IntegrationMutation {
	m := &IntegrationMutation{
		config:        c,
		op:            op,
		typ:           TypeIntegration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntegrationID sets the ID field of the mutation.
func withIntegrationID(id string) integrationOption {
	return func(m *IntegrationMutation) {
		var (
			err   error
			once  sync.Once
			value *Integration
		)
		m.oldValue = func(ctx context.Context) (*Integration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Integration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntegration sets the old Integration of the mutation.
func withIntegration(node *Integration) integrationOption {
	return func(m *IntegrationMutation) {
		m.oldValue = func(context.Context) (*Integration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntegrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntegrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Integration entities.
func (m *IntegrationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntegrationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntegrationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Integration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *IntegrationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *IntegrationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *IntegrationMutation) ResetUserID() {
	m.user_id = nil
}

// SetProvider sets the "provider" field.
func (m *IntegrationMutation) SetProvider(i integration.Provider) {
	m.provider = &i
}

// Provider returns the value of the "provider" field in the mutation.
func (m *IntegrationMutation) Provider() (r integration.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldProvider(ctx context.Context) (v integration.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *IntegrationMutation) ResetProvider() {
	m.provider = nil
}

// SetStatus sets the "status" field.
func (m *IntegrationMutation) SetStatus(i integration.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IntegrationMutation) Status() (r integration.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldStatus(ctx context.Context) (v integration.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IntegrationMutation) ResetStatus() {
	m.status = nil
}

// SetLastLogTime sets the "last_log_time" field.
func (m *IntegrationMutation) SetLastLogTime(t time.Time) {
	m.last_log_time = &t
}

// LastLogTime returns the value of the "last_log_time" field in the mutation.
func (m *IntegrationMutation) LastLogTime() (r time.Time, exists bool) {
	v := m.last_log_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLogTime returns the old "last_log_time" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldLastLogTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLogTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLogTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLogTime: %w", err)
	}
	return oldValue.LastLogTime, nil
}

// ClearLastLogTime clears the value of the "last_log_time" field.
func (m *IntegrationMutation) ClearLastLogTime() {
	m.last_log_time = nil
	m.clearedFields[integration.FieldLastLogTime] = struct{}{}
}

// LastLogTimeCleared returns if the "last_log_time" field was cleared in this mutation.
func (m *IntegrationMutation) LastLogTimeCleared() bool {
	_, ok := m.clearedFields[integration.FieldLastLogTime]
	return ok
}

// ResetLastLogTime resets all changes to the "last_log_time" field.
func (m *IntegrationMutation) ResetLastLogTime() {
	m.last_log_time = nil
	delete(m.clearedFields, integration.FieldLastLogTime)
}

// SetConfig sets the "config" field.
func (m *IntegrationMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *IntegrationMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *IntegrationMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[integration.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *IntegrationMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[integration.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *IntegrationMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, integration.FieldConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *IntegrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntegrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntegrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IntegrationMutation builder.
func (m *IntegrationMutation) Where(ps ...predicate.Integration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntegrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntegrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Integration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntegrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntegrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Integration).
func (m *IntegrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntegrationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, integration.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, integration.FieldProvider)
	}
	if m.status != nil {
		fields = append(fields, integration.FieldStatus)
	}
	if m.last_log_time != nil {
		fields = append(fields, integration.FieldLastLogTime)
	}
	if m._config != nil {
		fields = append(fields, integration.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, integration.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntegrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case integration.FieldUserID:
		return m.UserID()
	case integration.FieldProvider:
		return m.Provider()
	case integration.FieldStatus:
		return m.Status()
	case integration.FieldLastLogTime:
		return m.LastLogTime()
	case integration.FieldConfig:
		return m.Config()
	case integration.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntegrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case integration.FieldUserID:
		return m.OldUserID(ctx)
	case integration.FieldProvider:
		return m.OldProvider(ctx)
	case integration.FieldStatus:
		return m.OldStatus(ctx)
	case integration.FieldLastLogTime:
		return m.OldLastLogTime(ctx)
	case integration.FieldConfig:
		return m.OldConfig(ctx)
	case integration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Integration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case integration.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case integration.FieldProvider:
		v, ok := value.(integration.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case integration.FieldStatus:
		v, ok := value.(integration.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case integration.FieldLastLogTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLogTime(v)
		return nil
	case integration.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case integration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Integration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntegrationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntegrationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Integration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntegrationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(integration.FieldLastLogTime) {
		fields = append(fields, integration.FieldLastLogTime)
	}
	if m.FieldCleared(integration.FieldConfig) {
		fields = append(fields, integration.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntegrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntegrationMutation) ClearField(name string) error {
	switch name {
	case integration.FieldLastLogTime:
		m.ClearLastLogTime()
		return nil
	case integration.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown Integration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntegrationMutation) ResetField(name string) error {
	switch name {
	case integration.FieldUserID:
		m.ResetUserID()
		return nil
	case integration.FieldProvider:
		m.ResetProvider()
		return nil
	case integration.FieldStatus:
		m.ResetStatus()
		return nil
	case integration.FieldLastLogTime:
		m.ResetLastLogTime()
		return nil
	case integration.FieldConfig:
		m.ResetConfig()
		return nil
	case integration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Integration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntegrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntegrationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntegrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntegrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntegrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntegrationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntegrationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Integration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntegrationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Integration edge %s", name)
}

// KnowledgeChunkMutation represents an operation that mutates the KnowledgeChunk nodes in the graph.
type KnowledgeChunkMutation struct {
	config
	op              Op
	typ             string
	id              *string
	content         *string
	source          *knowledgechunk.Source
	metadata        *map[string]interface{}
	embedding       *[]float64
	appendembedding []float64
	content_hash    *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*KnowledgeChunk, error)
	predicates      []predicate.KnowledgeChunk
}

var _ ent.Mutation = (*KnowledgeChunkMutation)(nil)

// knowledgechunkOption allows management of the mutation configuration using functional options.
type knowledgechunkOption func(*KnowledgeChunkMutation)

// newKnowledgeChunkMutation creates new mutation for the KnowledgeChunk entity.
func newKnowledgeChunkMutation(c config, op Op, opts ...knowledgechunkOption) *KnowledgeChunkMutation {
	m := &KnowledgeChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeChunkID sets the ID field of the mutation.
func withKnowledgeChunkID(id string) knowledgechunkOption {
	return func(m *KnowledgeChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeChunk
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeChunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeChunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeChunk sets the old KnowledgeChunk of the mutation.
func withKnowledgeChunk(node *KnowledgeChunk) knowledgechunkOption {
	return func(m *KnowledgeChunkMutation) {
		m.oldValue = func(context.Context) (*KnowledgeChunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeChunk entities.
func (m *KnowledgeChunkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeChunkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeChunkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeChunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContent sets the "content" field.
func (m *KnowledgeChunkMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *KnowledgeChunkMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *KnowledgeChunkMutation) ResetContent() {
	m.content = nil
}

// SetSource sets the "source" field.
func (m *KnowledgeChunkMutation) SetSource(k knowledgechunk.Source) {
	m.source = &k
}

// Source returns the value of the "source" field in the mutation.
func (m *KnowledgeChunkMutation) Source() (r knowledgechunk.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldSource(ctx context.Context) (v knowledgechunk.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *KnowledgeChunkMutation) ResetSource() {
	m.source = nil
}

// SetMetadata sets the "metadata" field.
func (m *KnowledgeChunkMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *KnowledgeChunkMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *KnowledgeChunkMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[knowledgechunk.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *KnowledgeChunkMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[knowledgechunk.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *KnowledgeChunkMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, knowledgechunk.FieldMetadata)
}

// SetEmbedding sets the "embedding" field.
func (m *KnowledgeChunkMutation) SetEmbedding(f []float64) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *KnowledgeChunkMutation) Embedding() (r []float64, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldEmbedding(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *KnowledgeChunkMutation) AppendEmbedding(f []float64) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *KnowledgeChunkMutation) AppendedEmbedding() ([]float64, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *KnowledgeChunkMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
}

// SetContentHash sets the "content_hash" field.
func (m *KnowledgeChunkMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *KnowledgeChunkMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *KnowledgeChunkMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeChunkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeChunkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeChunk entity.
// If the KnowledgeChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeChunkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeChunkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the KnowledgeChunkMutation builder.
func (m *KnowledgeChunkMutation) Where(ps ...predicate.KnowledgeChunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeChunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeChunk).
func (m *KnowledgeChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeChunkMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.content != nil {
		fields = append(fields, knowledgechunk.FieldContent)
	}
	if m.source != nil {
		fields = append(fields, knowledgechunk.FieldSource)
	}
	if m.metadata != nil {
		fields = append(fields, knowledgechunk.FieldMetadata)
	}
	if m.embedding != nil {
		fields = append(fields, knowledgechunk.FieldEmbedding)
	}
	if m.content_hash != nil {
		fields = append(fields, knowledgechunk.FieldContentHash)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgechunk.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgechunk.FieldContent:
		return m.Content()
	case knowledgechunk.FieldSource:
		return m.Source()
	case knowledgechunk.FieldMetadata:
		return m.Metadata()
	case knowledgechunk.FieldEmbedding:
		return m.Embedding()
	case knowledgechunk.FieldContentHash:
		return m.ContentHash()
	case knowledgechunk.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgechunk.FieldContent:
		return m.OldContent(ctx)
	case knowledgechunk.FieldSource:
		return m.OldSource(ctx)
	case knowledgechunk.FieldMetadata:
		return m.OldMetadata(ctx)
	case knowledgechunk.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case knowledgechunk.FieldContentHash:
		return m.OldContentHash(ctx)
	case knowledgechunk.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeChunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgechunk.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case knowledgechunk.FieldSource:
		v, ok := value.(knowledgechunk.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case knowledgechunk.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case knowledgechunk.FieldEmbedding:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case knowledgechunk.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case knowledgechunk.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeChunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeChunkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeChunkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeChunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgechunk.FieldMetadata) {
		fields = append(fields, knowledgechunk.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeChunkMutation) ClearField(name string) error {
	switch name {
	case knowledgechunk.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeChunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeChunkMutation) ResetField(name string) error {
	switch name {
	case knowledgechunk.FieldContent:
		m.ResetContent()
		return nil
	case knowledgechunk.FieldSource:
		m.ResetSource()
		return nil
	case knowledgechunk.FieldMetadata:
		m.ResetMetadata()
		return nil
	case knowledgechunk.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case knowledgechunk.FieldContentHash:
		m.ResetContentHash()
		return nil
	case knowledgechunk.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeChunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeChunkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeChunkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeChunkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeChunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeChunkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeChunk edge %s", name)
}

// LogEntryMutation represents an operation that mutates the LogEntry nodes in the graph.
type LogEntryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	timestamp      *time.Time
	service_name   *string
	severity       *logentry.Severity
	message        *string
	source         *string
	user_id        *string
	integration_id *string
	metadata       *map[string]interface{}
	is_email       *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*LogEntry, error)
	predicates     []predicate.LogEntry
}

var _ ent.Mutation = (*LogEntryMutation)(nil)

// logentryOption allows management of the mutation configuration using functional options.
type logentryOption func(*LogEntryMutation)

// newLogEntryMutation creates new mutation for the LogEntry entity.
func newLogEntryMutation(c config, op Op, opts ...logentryOption) *LogEntryMutation {
	m := &LogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogEntryID sets the ID field of the mutation.
func withLogEntryID(id string) logentryOption {
	return func(m *LogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LogEntry
		)
		m.oldValue = func(ctx context.Context) (*LogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogEntry sets the old LogEntry of the mutation.
func withLogEntry(node *LogEntry) logentryOption {
	return func(m *LogEntryMutation) {
		m.oldValue = func(context.Context) (*LogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LogEntry entities.
func (m *LogEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LogEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LogEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LogEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetServiceName sets the "service_name" field.
func (m *LogEntryMutation) SetServiceName(s string) {
	m.service_name = &s
}

// ServiceName returns the value of the "service_name" field in the mutation.
func (m *LogEntryMutation) ServiceName() (r string, exists bool) {
	v := m.service_name
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceName returns the old "service_name" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldServiceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceName: %w", err)
	}
	return oldValue.ServiceName, nil
}

// ResetServiceName resets all changes to the "service_name" field.
func (m *LogEntryMutation) ResetServiceName() {
	m.service_name = nil
}

// SetSeverity sets the "severity" field.
func (m *LogEntryMutation) SetSeverity(l logentry.Severity) {
	m.severity = &l
}

// Severity returns the value of the "severity" field in the mutation.
func (m *LogEntryMutation) Severity() (r logentry.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldSeverity(ctx context.Context) (v logentry.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *LogEntryMutation) ResetSeverity() {
	m.severity = nil
}

// SetMessage sets the "message" field.
func (m *LogEntryMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *LogEntryMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *LogEntryMutation) ResetMessage() {
	m.message = nil
}

// SetSource sets the "source" field.
func (m *LogEntryMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LogEntryMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LogEntryMutation) ResetSource() {
	m.source = nil
}

// SetUserID sets the "user_id" field.
func (m *LogEntryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LogEntryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LogEntryMutation) ResetUserID() {
	m.user_id = nil
}

// SetIntegrationID sets the "integration_id" field.
func (m *LogEntryMutation) SetIntegrationID(s string) {
	m.integration_id = &s
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *LogEntryMutation) IntegrationID() (r string, exists bool) {
	v := m.integration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldIntegrationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ClearIntegrationID clears the value of the "integration_id" field.
func (m *LogEntryMutation) ClearIntegrationID() {
	m.integration_id = nil
	m.clearedFields[logentry.FieldIntegrationID] = struct{}{}
}

// IntegrationIDCleared returns if the "integration_id" field was cleared in this mutation.
func (m *LogEntryMutation) IntegrationIDCleared() bool {
	_, ok := m.clearedFields[logentry.FieldIntegrationID]
	return ok
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *LogEntryMutation) ResetIntegrationID() {
	m.integration_id = nil
	delete(m.clearedFields, logentry.FieldIntegrationID)
}

// SetMetadata sets the "metadata" field.
func (m *LogEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *LogEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *LogEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[logentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *LogEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[logentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *LogEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, logentry.FieldMetadata)
}

// SetIsEmail sets the "is_email" field.
func (m *LogEntryMutation) SetIsEmail(b bool) {
	m.is_email = &b
}

// IsEmail returns the value of the "is_email" field in the mutation.
func (m *LogEntryMutation) IsEmail() (r bool, exists bool) {
	v := m.is_email
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEmail returns the old "is_email" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldIsEmail(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEmail: %w", err)
	}
	return oldValue.IsEmail, nil
}

// ResetIsEmail resets all changes to the "is_email" field.
func (m *LogEntryMutation) ResetIsEmail() {
	m.is_email = nil
}

// Where appends a list predicates to the LogEntryMutation builder.
func (m *LogEntryMutation) Where(ps ...predicate.LogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LogEntry).
func (m *LogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.timestamp != nil {
		fields = append(fields, logentry.FieldTimestamp)
	}
	if m.service_name != nil {
		fields = append(fields, logentry.FieldServiceName)
	}
	if m.severity != nil {
		fields = append(fields, logentry.FieldSeverity)
	}
	if m.message != nil {
		fields = append(fields, logentry.FieldMessage)
	}
	if m.source != nil {
		fields = append(fields, logentry.FieldSource)
	}
	if m.user_id != nil {
		fields = append(fields, logentry.FieldUserID)
	}
	if m.integration_id != nil {
		fields = append(fields, logentry.FieldIntegrationID)
	}
	if m.metadata != nil {
		fields = append(fields, logentry.FieldMetadata)
	}
	if m.is_email != nil {
		fields = append(fields, logentry.FieldIsEmail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logentry.FieldTimestamp:
		return m.Timestamp()
	case logentry.FieldServiceName:
		return m.ServiceName()
	case logentry.FieldSeverity:
		return m.Severity()
	case logentry.FieldMessage:
		return m.Message()
	case logentry.FieldSource:
		return m.Source()
	case logentry.FieldUserID:
		return m.UserID()
	case logentry.FieldIntegrationID:
		return m.IntegrationID()
	case logentry.FieldMetadata:
		return m.Metadata()
	case logentry.FieldIsEmail:
		return m.IsEmail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case logentry.FieldServiceName:
		return m.OldServiceName(ctx)
	case logentry.FieldSeverity:
		return m.OldSeverity(ctx)
	case logentry.FieldMessage:
		return m.OldMessage(ctx)
	case logentry.FieldSource:
		return m.OldSource(ctx)
	case logentry.FieldUserID:
		return m.OldUserID(ctx)
	case logentry.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case logentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case logentry.FieldIsEmail:
		return m.OldIsEmail(ctx)
	}
	return nil, fmt.Errorf("unknown LogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case logentry.FieldServiceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceName(v)
		return nil
	case logentry.FieldSeverity:
		v, ok := value.(logentry.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case logentry.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case logentry.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case logentry.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case logentry.FieldIntegrationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case logentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case logentry.FieldIsEmail:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEmail(v)
		return nil
	}
	return fmt.Errorf("unknown LogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(logentry.FieldIntegrationID) {
		fields = append(fields, logentry.FieldIntegrationID)
	}
	if m.FieldCleared(logentry.FieldMetadata) {
		fields = append(fields, logentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogEntryMutation) ClearField(name string) error {
	switch name {
	case logentry.FieldIntegrationID:
		m.ClearIntegrationID()
		return nil
	case logentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown LogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogEntryMutation) ResetField(name string) error {
	switch name {
	case logentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case logentry.FieldServiceName:
		m.ResetServiceName()
		return nil
	case logentry.FieldSeverity:
		m.ResetSeverity()
		return nil
	case logentry.FieldMessage:
		m.ResetMessage()
		return nil
	case logentry.FieldSource:
		m.ResetSource()
		return nil
	case logentry.FieldUserID:
		m.ResetUserID()
		return nil
	case logentry.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case logentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case logentry.FieldIsEmail:
		m.ResetIsEmail()
		return nil
	}
	return fmt.Errorf("unknown LogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LogEntry edge %s", name)
}

// MemoryRecordMutation represents an operation that mutates the MemoryRecord nodes in the graph.
type MemoryRecordMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	fingerprint                  *string
	error_type                   *string
	known_fixes                  *[]map[string]interface{}
	appendknown_fixes            []map[string]interface{}
	past_errors                  *[]map[string]interface{}
	appendpast_errors            []map[string]interface{}
	typical_files_read           *[]string
	appendtypical_files_read     []string
	typical_files_modified       *[]string
	appendtypical_files_modified []string
	confidence_score             *int
	addconfidence_score          *int
	times_seen                   *int
	addtimes_seen                *int
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*MemoryRecord, error)
	predicates                   []predicate.MemoryRecord
}

var _ ent.Mutation = (*MemoryRecordMutation)(nil)

// memoryrecordOption allows management of the mutation configuration using functional options.
type memoryrecordOption func(*MemoryRecordMutation)

// newMemoryRecordMutation creates new mutation for the MemoryRecord entity.
func newMemoryRecordMutation(c config, op Op, opts ...memoryrecordOption) *MemoryRecordMutation {
	m := &MemoryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryRecordID sets the ID field of the mutation.
func withMemoryRecordID(id int) memoryrecordOption {
	return func(m *MemoryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryRecord
		)
		m.oldValue = func(ctx context.Context) (*MemoryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryRecord sets the old MemoryRecord of the mutation.
func withMemoryRecord(node *MemoryRecord) memoryrecordOption {
	return func(m *MemoryRecordMutation) {
		m.oldValue = func(context.Context) (*MemoryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *MemoryRecordMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *MemoryRecordMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *MemoryRecordMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetErrorType sets the "error_type" field.
func (m *MemoryRecordMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *MemoryRecordMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *MemoryRecordMutation) ResetErrorType() {
	m.error_type = nil
}

// SetKnownFixes sets the "known_fixes" field.
func (m *MemoryRecordMutation) SetKnownFixes(value []map[string]interface{}) {
	m.known_fixes = &value
	m.appendknown_fixes = nil
}

// KnownFixes returns the value of the "known_fixes" field in the mutation.
func (m *MemoryRecordMutation) KnownFixes() (r []map[string]interface{}, exists bool) {
	v := m.known_fixes
	if v == nil {
		return
	}
	return *v, true
}

// OldKnownFixes returns the old "known_fixes" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldKnownFixes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnownFixes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnownFixes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnownFixes: %w", err)
	}
	return oldValue.KnownFixes, nil
}

// AppendKnownFixes adds value to the "known_fixes" field.
func (m *MemoryRecordMutation) AppendKnownFixes(value []map[string]interface{}) {
	m.appendknown_fixes = append(m.appendknown_fixes, value...)
}

// AppendedKnownFixes returns the list of values that were appended to the "known_fixes" field in this mutation.
func (m *MemoryRecordMutation) AppendedKnownFixes() ([]map[string]interface{}, bool) {
	if len(m.appendknown_fixes) == 0 {
		return nil, false
	}
	return m.appendknown_fixes, true
}

// ClearKnownFixes clears the value of the "known_fixes" field.
func (m *MemoryRecordMutation) ClearKnownFixes() {
	m.known_fixes = nil
	m.appendknown_fixes = nil
	m.clearedFields[memoryrecord.FieldKnownFixes] = struct{}{}
}

// KnownFixesCleared returns if the "known_fixes" field was cleared in this mutation.
func (m *MemoryRecordMutation) KnownFixesCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldKnownFixes]
	return ok
}

// ResetKnownFixes resets all changes to the "known_fixes" field.
func (m *MemoryRecordMutation) ResetKnownFixes() {
	m.known_fixes = nil
	m.appendknown_fixes = nil
	delete(m.clearedFields, memoryrecord.FieldKnownFixes)
}

// SetPastErrors sets the "past_errors" field.
func (m *MemoryRecordMutation) SetPastErrors(value []map[string]interface{}) {
	m.past_errors = &value
	m.appendpast_errors = nil
}

// PastErrors returns the value of the "past_errors" field in the mutation.
func (m *MemoryRecordMutation) PastErrors() (r []map[string]interface{}, exists bool) {
	v := m.past_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldPastErrors returns the old "past_errors" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldPastErrors(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPastErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPastErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPastErrors: %w", err)
	}
	return oldValue.PastErrors, nil
}

// AppendPastErrors adds value to the "past_errors" field.
func (m *MemoryRecordMutation) AppendPastErrors(value []map[string]interface{}) {
	m.appendpast_errors = append(m.appendpast_errors, value...)
}

// AppendedPastErrors returns the list of values that were appended to the "past_errors" field in this mutation.
func (m *MemoryRecordMutation) AppendedPastErrors() ([]map[string]interface{}, bool) {
	if len(m.appendpast_errors) == 0 {
		return nil, false
	}
	return m.appendpast_errors, true
}

// ClearPastErrors clears the value of the "past_errors" field.
func (m *MemoryRecordMutation) ClearPastErrors() {
	m.past_errors = nil
	m.appendpast_errors = nil
	m.clearedFields[memoryrecord.FieldPastErrors] = struct{}{}
}

// PastErrorsCleared returns if the "past_errors" field was cleared in this mutation.
func (m *MemoryRecordMutation) PastErrorsCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldPastErrors]
	return ok
}

// ResetPastErrors resets all changes to the "past_errors" field.
func (m *MemoryRecordMutation) ResetPastErrors() {
	m.past_errors = nil
	m.appendpast_errors = nil
	delete(m.clearedFields, memoryrecord.FieldPastErrors)
}

// SetTypicalFilesRead sets the "typical_files_read" field.
func (m *MemoryRecordMutation) SetTypicalFilesRead(s []string) {
	m.typical_files_read = &s
	m.appendtypical_files_read = nil
}

// TypicalFilesRead returns the value of the "typical_files_read" field in the mutation.
func (m *MemoryRecordMutation) TypicalFilesRead() (r []string, exists bool) {
	v := m.typical_files_read
	if v == nil {
		return
	}
	return *v, true
}

// OldTypicalFilesRead returns the old "typical_files_read" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldTypicalFilesRead(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypicalFilesRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypicalFilesRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypicalFilesRead: %w", err)
	}
	return oldValue.TypicalFilesRead, nil
}

// AppendTypicalFilesRead adds s to the "typical_files_read" field.
func (m *MemoryRecordMutation) AppendTypicalFilesRead(s []string) {
	m.appendtypical_files_read = append(m.appendtypical_files_read, s...)
}

// AppendedTypicalFilesRead returns the list of values that were appended to the "typical_files_read" field in this mutation.
func (m *MemoryRecordMutation) AppendedTypicalFilesRead() ([]string, bool) {
	if len(m.appendtypical_files_read) == 0 {
		return nil, false
	}
	return m.appendtypical_files_read, true
}

// ClearTypicalFilesRead clears the value of the "typical_files_read" field.
func (m *MemoryRecordMutation) ClearTypicalFilesRead() {
	m.typical_files_read = nil
	m.appendtypical_files_read = nil
	m.clearedFields[memoryrecord.FieldTypicalFilesRead] = struct{}{}
}

// TypicalFilesReadCleared returns if the "typical_files_read" field was cleared in this mutation.
func (m *MemoryRecordMutation) TypicalFilesReadCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldTypicalFilesRead]
	return ok
}

// ResetTypicalFilesRead resets all changes to the "typical_files_read" field.
func (m *MemoryRecordMutation) ResetTypicalFilesRead() {
	m.typical_files_read = nil
	m.appendtypical_files_read = nil
	delete(m.clearedFields, memoryrecord.FieldTypicalFilesRead)
}

// SetTypicalFilesModified sets the "typical_files_modified" field.
func (m *MemoryRecordMutation) SetTypicalFilesModified(s []string) {
	m.typical_files_modified = &s
	m.appendtypical_files_modified = nil
}

// TypicalFilesModified returns the value of the "typical_files_modified" field in the mutation.
func (m *MemoryRecordMutation) TypicalFilesModified() (r []string, exists bool) {
	v := m.typical_files_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldTypicalFilesModified returns the old "typical_files_modified" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldTypicalFilesModified(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypicalFilesModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypicalFilesModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypicalFilesModified: %w", err)
	}
	return oldValue.TypicalFilesModified, nil
}

// AppendTypicalFilesModified adds s to the "typical_files_modified" field.
func (m *MemoryRecordMutation) AppendTypicalFilesModified(s []string) {
	m.appendtypical_files_modified = append(m.appendtypical_files_modified, s...)
}

// AppendedTypicalFilesModified returns the list of values that were appended to the "typical_files_modified" field in this mutation.
func (m *MemoryRecordMutation) AppendedTypicalFilesModified() ([]string, bool) {
	if len(m.appendtypical_files_modified) == 0 {
		return nil, false
	}
	return m.appendtypical_files_modified, true
}

// ClearTypicalFilesModified clears the value of the "typical_files_modified" field.
func (m *MemoryRecordMutation) ClearTypicalFilesModified() {
	m.typical_files_modified = nil
	m.appendtypical_files_modified = nil
	m.clearedFields[memoryrecord.FieldTypicalFilesModified] = struct{}{}
}

// TypicalFilesModifiedCleared returns if the "typical_files_modified" field was cleared in this mutation.
func (m *MemoryRecordMutation) TypicalFilesModifiedCleared() bool {
	_, ok := m.clearedFields[memoryrecord.FieldTypicalFilesModified]
	return ok
}

// ResetTypicalFilesModified resets all changes to the "typical_files_modified" field.
func (m *MemoryRecordMutation) ResetTypicalFilesModified() {
	m.typical_files_modified = nil
	m.appendtypical_files_modified = nil
	delete(m.clearedFields, memoryrecord.FieldTypicalFilesModified)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *MemoryRecordMutation) SetConfidenceScore(i int) {
	m.confidence_score = &i
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *MemoryRecordMutation) ConfidenceScore() (r int, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldConfidenceScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds i to the "confidence_score" field.
func (m *MemoryRecordMutation) AddConfidenceScore(i int) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += i
	} else {
		m.addconfidence_score = &i
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *MemoryRecordMutation) AddedConfidenceScore() (r int, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *MemoryRecordMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetTimesSeen sets the "times_seen" field.
func (m *MemoryRecordMutation) SetTimesSeen(i int) {
	m.times_seen = &i
	m.addtimes_seen = nil
}

// TimesSeen returns the value of the "times_seen" field in the mutation.
func (m *MemoryRecordMutation) TimesSeen() (r int, exists bool) {
	v := m.times_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesSeen returns the old "times_seen" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldTimesSeen(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesSeen: %w", err)
	}
	return oldValue.TimesSeen, nil
}

// AddTimesSeen adds i to the "times_seen" field.
func (m *MemoryRecordMutation) AddTimesSeen(i int) {
	if m.addtimes_seen != nil {
		*m.addtimes_seen += i
	} else {
		m.addtimes_seen = &i
	}
}

// AddedTimesSeen returns the value that was added to the "times_seen" field in this mutation.
func (m *MemoryRecordMutation) AddedTimesSeen() (r int, exists bool) {
	v := m.addtimes_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesSeen resets all changes to the "times_seen" field.
func (m *MemoryRecordMutation) ResetTimesSeen() {
	m.times_seen = nil
	m.addtimes_seen = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MemoryRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MemoryRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MemoryRecord entity.
// If the MemoryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MemoryRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MemoryRecordMutation builder.
func (m *MemoryRecordMutation) Where(ps ...predicate.MemoryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryRecord).
func (m *MemoryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.fingerprint != nil {
		fields = append(fields, memoryrecord.FieldFingerprint)
	}
	if m.error_type != nil {
		fields = append(fields, memoryrecord.FieldErrorType)
	}
	if m.known_fixes != nil {
		fields = append(fields, memoryrecord.FieldKnownFixes)
	}
	if m.past_errors != nil {
		fields = append(fields, memoryrecord.FieldPastErrors)
	}
	if m.typical_files_read != nil {
		fields = append(fields, memoryrecord.FieldTypicalFilesRead)
	}
	if m.typical_files_modified != nil {
		fields = append(fields, memoryrecord.FieldTypicalFilesModified)
	}
	if m.confidence_score != nil {
		fields = append(fields, memoryrecord.FieldConfidenceScore)
	}
	if m.times_seen != nil {
		fields = append(fields, memoryrecord.FieldTimesSeen)
	}
	if m.created_at != nil {
		fields = append(fields, memoryrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, memoryrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryrecord.FieldFingerprint:
		return m.Fingerprint()
	case memoryrecord.FieldErrorType:
		return m.ErrorType()
	case memoryrecord.FieldKnownFixes:
		return m.KnownFixes()
	case memoryrecord.FieldPastErrors:
		return m.PastErrors()
	case memoryrecord.FieldTypicalFilesRead:
		return m.TypicalFilesRead()
	case memoryrecord.FieldTypicalFilesModified:
		return m.TypicalFilesModified()
	case memoryrecord.FieldConfidenceScore:
		return m.ConfidenceScore()
	case memoryrecord.FieldTimesSeen:
		return m.TimesSeen()
	case memoryrecord.FieldCreatedAt:
		return m.CreatedAt()
	case memoryrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryrecord.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case memoryrecord.FieldErrorType:
		return m.OldErrorType(ctx)
	case memoryrecord.FieldKnownFixes:
		return m.OldKnownFixes(ctx)
	case memoryrecord.FieldPastErrors:
		return m.OldPastErrors(ctx)
	case memoryrecord.FieldTypicalFilesRead:
		return m.OldTypicalFilesRead(ctx)
	case memoryrecord.FieldTypicalFilesModified:
		return m.OldTypicalFilesModified(ctx)
	case memoryrecord.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case memoryrecord.FieldTimesSeen:
		return m.OldTimesSeen(ctx)
	case memoryrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memoryrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryrecord.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case memoryrecord.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case memoryrecord.FieldKnownFixes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnownFixes(v)
		return nil
	case memoryrecord.FieldPastErrors:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPastErrors(v)
		return nil
	case memoryrecord.FieldTypicalFilesRead:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypicalFilesRead(v)
		return nil
	case memoryrecord.FieldTypicalFilesModified:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypicalFilesModified(v)
		return nil
	case memoryrecord.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case memoryrecord.FieldTimesSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesSeen(v)
		return nil
	case memoryrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memoryrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, memoryrecord.FieldConfidenceScore)
	}
	if m.addtimes_seen != nil {
		fields = append(fields, memoryrecord.FieldTimesSeen)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case memoryrecord.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case memoryrecord.FieldTimesSeen:
		return m.AddedTimesSeen()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case memoryrecord.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case memoryrecord.FieldTimesSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesSeen(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryrecord.FieldKnownFixes) {
		fields = append(fields, memoryrecord.FieldKnownFixes)
	}
	if m.FieldCleared(memoryrecord.FieldPastErrors) {
		fields = append(fields, memoryrecord.FieldPastErrors)
	}
	if m.FieldCleared(memoryrecord.FieldTypicalFilesRead) {
		fields = append(fields, memoryrecord.FieldTypicalFilesRead)
	}
	if m.FieldCleared(memoryrecord.FieldTypicalFilesModified) {
		fields = append(fields, memoryrecord.FieldTypicalFilesModified)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryRecordMutation) ClearField(name string) error {
	switch name {
	case memoryrecord.FieldKnownFixes:
		m.ClearKnownFixes()
		return nil
	case memoryrecord.FieldPastErrors:
		m.ClearPastErrors()
		return nil
	case memoryrecord.FieldTypicalFilesRead:
		m.ClearTypicalFilesRead()
		return nil
	case memoryrecord.FieldTypicalFilesModified:
		m.ClearTypicalFilesModified()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryRecordMutation) ResetField(name string) error {
	switch name {
	case memoryrecord.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case memoryrecord.FieldErrorType:
		m.ResetErrorType()
		return nil
	case memoryrecord.FieldKnownFixes:
		m.ResetKnownFixes()
		return nil
	case memoryrecord.FieldPastErrors:
		m.ResetPastErrors()
		return nil
	case memoryrecord.FieldTypicalFilesRead:
		m.ResetTypicalFilesRead()
		return nil
	case memoryrecord.FieldTypicalFilesModified:
		m.ResetTypicalFilesModified()
		return nil
	case memoryrecord.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case memoryrecord.FieldTimesSeen:
		m.ResetTimesSeen()
		return nil
	case memoryrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memoryrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryRecord edge %s", name)
}

// ResolutionRequestMutation represents an operation that mutates the ResolutionRequest nodes in the graph.
type ResolutionRequestMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	incident_id          *string
	state                *resolutionrequest.State
	requested_by_user_id *string
	requested_by_trigger *string
	attempts             *int
	addattempts          *int
	last_error           *string
	claimed_at           *time.Time
	completed_at         *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ResolutionRequest, error)
	predicates           []predicate.ResolutionRequest
}

var _ ent.Mutation = (*ResolutionRequestMutation)(nil)

// resolutionrequestOption allows management of the mutation configuration using functional options.
type resolutionrequestOption func(*ResolutionRequestMutation)

// newResolutionRequestMutation creates new mutation for the ResolutionRequest entity.
func newResolutionRequestMutation(c config, op Op, opts ...resolutionrequestOption) *ResolutionRequestMutation {
	m := &ResolutionRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeResolutionRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResolutionRequestID sets the ID field of the mutation.
func withResolutionRequestID(id int) resolutionrequestOption {
	return func(m *ResolutionRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ResolutionRequest
		)
		m.oldValue = func(ctx context.Context) (*ResolutionRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResolutionRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResolutionRequest sets the old ResolutionRequest of the mutation.
func withResolutionRequest(node *ResolutionRequest) resolutionrequestOption {
	return func(m *ResolutionRequestMutation) {
		m.oldValue = func(context.Context) (*ResolutionRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResolutionRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResolutionRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResolutionRequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResolutionRequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResolutionRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIncidentID sets the "incident_id" field.
func (m *ResolutionRequestMutation) SetIncidentID(s string) {
	m.incident_id = &s
}

// IncidentID returns the value of the "incident_id" field in the mutation.
func (m *ResolutionRequestMutation) IncidentID() (r string, exists bool) {
	v := m.incident_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIncidentID returns the old "incident_id" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldIncidentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncidentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncidentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncidentID: %w", err)
	}
	return oldValue.IncidentID, nil
}

// ResetIncidentID resets all changes to the "incident_id" field.
func (m *ResolutionRequestMutation) ResetIncidentID() {
	m.incident_id = nil
}

// SetState sets the "state" field.
func (m *ResolutionRequestMutation) SetState(r resolutionrequest.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *ResolutionRequestMutation) State() (r resolutionrequest.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldState(ctx context.Context) (v resolutionrequest.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ResolutionRequestMutation) ResetState() {
	m.state = nil
}

// SetRequestedByUserID sets the "requested_by_user_id" field.
func (m *ResolutionRequestMutation) SetRequestedByUserID(s string) {
	m.requested_by_user_id = &s
}

// RequestedByUserID returns the value of the "requested_by_user_id" field in the mutation.
func (m *ResolutionRequestMutation) RequestedByUserID() (r string, exists bool) {
	v := m.requested_by_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedByUserID returns the old "requested_by_user_id" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldRequestedByUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedByUserID: %w", err)
	}
	return oldValue.RequestedByUserID, nil
}

// ResetRequestedByUserID resets all changes to the "requested_by_user_id" field.
func (m *ResolutionRequestMutation) ResetRequestedByUserID() {
	m.requested_by_user_id = nil
}

// SetRequestedByTrigger sets the "requested_by_trigger" field.
func (m *ResolutionRequestMutation) SetRequestedByTrigger(s string) {
	m.requested_by_trigger = &s
}

// RequestedByTrigger returns the value of the "requested_by_trigger" field in the mutation.
func (m *ResolutionRequestMutation) RequestedByTrigger() (r string, exists bool) {
	v := m.requested_by_trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedByTrigger returns the old "requested_by_trigger" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldRequestedByTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedByTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedByTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedByTrigger: %w", err)
	}
	return oldValue.RequestedByTrigger, nil
}

// ResetRequestedByTrigger resets all changes to the "requested_by_trigger" field.
func (m *ResolutionRequestMutation) ResetRequestedByTrigger() {
	m.requested_by_trigger = nil
}

// SetAttempts sets the "attempts" field.
func (m *ResolutionRequestMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ResolutionRequestMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ResolutionRequestMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ResolutionRequestMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ResolutionRequestMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *ResolutionRequestMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ResolutionRequestMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ResolutionRequestMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[resolutionrequest.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ResolutionRequestMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[resolutionrequest.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ResolutionRequestMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, resolutionrequest.FieldLastError)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *ResolutionRequestMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *ResolutionRequestMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *ResolutionRequestMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[resolutionrequest.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *ResolutionRequestMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[resolutionrequest.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *ResolutionRequestMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, resolutionrequest.FieldClaimedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ResolutionRequestMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ResolutionRequestMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ResolutionRequestMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[resolutionrequest.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ResolutionRequestMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[resolutionrequest.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ResolutionRequestMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, resolutionrequest.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResolutionRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResolutionRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResolutionRequest entity.
// If the ResolutionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResolutionRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ResolutionRequestMutation builder.
func (m *ResolutionRequestMutation) Where(ps ...predicate.ResolutionRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResolutionRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResolutionRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResolutionRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResolutionRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResolutionRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResolutionRequest).
func (m *ResolutionRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResolutionRequestMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.incident_id != nil {
		fields = append(fields, resolutionrequest.FieldIncidentID)
	}
	if m.state != nil {
		fields = append(fields, resolutionrequest.FieldState)
	}
	if m.requested_by_user_id != nil {
		fields = append(fields, resolutionrequest.FieldRequestedByUserID)
	}
	if m.requested_by_trigger != nil {
		fields = append(fields, resolutionrequest.FieldRequestedByTrigger)
	}
	if m.attempts != nil {
		fields = append(fields, resolutionrequest.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, resolutionrequest.FieldLastError)
	}
	if m.claimed_at != nil {
		fields = append(fields, resolutionrequest.FieldClaimedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, resolutionrequest.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, resolutionrequest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResolutionRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resolutionrequest.FieldIncidentID:
		return m.IncidentID()
	case resolutionrequest.FieldState:
		return m.State()
	case resolutionrequest.FieldRequestedByUserID:
		return m.RequestedByUserID()
	case resolutionrequest.FieldRequestedByTrigger:
		return m.RequestedByTrigger()
	case resolutionrequest.FieldAttempts:
		return m.Attempts()
	case resolutionrequest.FieldLastError:
		return m.LastError()
	case resolutionrequest.FieldClaimedAt:
		return m.ClaimedAt()
	case resolutionrequest.FieldCompletedAt:
		return m.CompletedAt()
	case resolutionrequest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResolutionRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resolutionrequest.FieldIncidentID:
		return m.OldIncidentID(ctx)
	case resolutionrequest.FieldState:
		return m.OldState(ctx)
	case resolutionrequest.FieldRequestedByUserID:
		return m.OldRequestedByUserID(ctx)
	case resolutionrequest.FieldRequestedByTrigger:
		return m.OldRequestedByTrigger(ctx)
	case resolutionrequest.FieldAttempts:
		return m.OldAttempts(ctx)
	case resolutionrequest.FieldLastError:
		return m.OldLastError(ctx)
	case resolutionrequest.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case resolutionrequest.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case resolutionrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResolutionRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResolutionRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resolutionrequest.FieldIncidentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncidentID(v)
		return nil
	case resolutionrequest.FieldState:
		v, ok := value.(resolutionrequest.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case resolutionrequest.FieldRequestedByUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedByUserID(v)
		return nil
	case resolutionrequest.FieldRequestedByTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedByTrigger(v)
		return nil
	case resolutionrequest.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case resolutionrequest.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case resolutionrequest.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case resolutionrequest.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case resolutionrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResolutionRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResolutionRequestMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, resolutionrequest.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResolutionRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resolutionrequest.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResolutionRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resolutionrequest.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ResolutionRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResolutionRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resolutionrequest.FieldLastError) {
		fields = append(fields, resolutionrequest.FieldLastError)
	}
	if m.FieldCleared(resolutionrequest.FieldClaimedAt) {
		fields = append(fields, resolutionrequest.FieldClaimedAt)
	}
	if m.FieldCleared(resolutionrequest.FieldCompletedAt) {
		fields = append(fields, resolutionrequest.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResolutionRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResolutionRequestMutation) ClearField(name string) error {
	switch name {
	case resolutionrequest.FieldLastError:
		m.ClearLastError()
		return nil
	case resolutionrequest.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case resolutionrequest.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ResolutionRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResolutionRequestMutation) ResetField(name string) error {
	switch name {
	case resolutionrequest.FieldIncidentID:
		m.ResetIncidentID()
		return nil
	case resolutionrequest.FieldState:
		m.ResetState()
		return nil
	case resolutionrequest.FieldRequestedByUserID:
		m.ResetRequestedByUserID()
		return nil
	case resolutionrequest.FieldRequestedByTrigger:
		m.ResetRequestedByTrigger()
		return nil
	case resolutionrequest.FieldAttempts:
		m.ResetAttempts()
		return nil
	case resolutionrequest.FieldLastError:
		m.ResetLastError()
		return nil
	case resolutionrequest.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case resolutionrequest.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case resolutionrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResolutionRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResolutionRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResolutionRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResolutionRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResolutionRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResolutionRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResolutionRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResolutionRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResolutionRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResolutionRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResolutionRequest edge %s", name)
}
