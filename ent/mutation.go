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
	"github.com/pixelrelay/upscaled/ent/predicate"
	"github.com/pixelrelay/upscaled/ent/processedcallback"
	"github.com/pixelrelay/upscaled/ent/tile"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
	"github.com/pixelrelay/upscaled/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProcessedCallback = "ProcessedCallback"
	TypeTile              = "Tile"
	TypeUpscaleJob        = "UpscaleJob"
)

// ProcessedCallbackMutation represents an operation that mutates the ProcessedCallback nodes in the graph.
type ProcessedCallbackMutation struct {
	config
	op            Op
	typ           string
	id            *string
	job_id        *string
	outcome       *string
	received_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProcessedCallback, error)
	predicates    []predicate.ProcessedCallback
}

var _ ent.Mutation = (*ProcessedCallbackMutation)(nil)

// processedcallbackOption allows management of the mutation configuration using functional options.
type processedcallbackOption func(*ProcessedCallbackMutation)

// newProcessedCallbackMutation creates new mutation for the ProcessedCallback entity.
func newProcessedCallbackMutation(c config, op Op, opts ...processedcallbackOption) *ProcessedCallbackMutation {
	m := &ProcessedCallbackMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessedCallback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessedCallbackID sets the ID field of the mutation.
func withProcessedCallbackID(id string) processedcallbackOption {
	return func(m *ProcessedCallbackMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessedCallback
		)
		m.oldValue = func(ctx context.Context) (*ProcessedCallback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessedCallback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessedCallback sets the old ProcessedCallback of the mutation.
func withProcessedCallback(node *ProcessedCallback) processedcallbackOption {
	return func(m *ProcessedCallbackMutation) {
		m.oldValue = func(context.Context) (*ProcessedCallback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessedCallbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessedCallbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessedCallback entities.
func (m *ProcessedCallbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessedCallbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessedCallbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessedCallback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ProcessedCallbackMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ProcessedCallbackMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ProcessedCallback entity.
// If the ProcessedCallback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedCallbackMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *ProcessedCallbackMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[processedcallback.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *ProcessedCallbackMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[processedcallback.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ProcessedCallbackMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, processedcallback.FieldJobID)
}

// SetOutcome sets the "outcome" field.
func (m *ProcessedCallbackMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *ProcessedCallbackMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the ProcessedCallback entity.
// If the ProcessedCallback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedCallbackMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *ProcessedCallbackMutation) ResetOutcome() {
	m.outcome = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *ProcessedCallbackMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *ProcessedCallbackMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the ProcessedCallback entity.
// If the ProcessedCallback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedCallbackMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *ProcessedCallbackMutation) ResetReceivedAt() {
	m.received_at = nil
}

// Where appends a list predicates to the ProcessedCallbackMutation builder.
func (m *ProcessedCallbackMutation) Where(ps ...predicate.ProcessedCallback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessedCallbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessedCallbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessedCallback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessedCallbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessedCallbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessedCallback).
func (m *ProcessedCallbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessedCallbackMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.job_id != nil {
		fields = append(fields, processedcallback.FieldJobID)
	}
	if m.outcome != nil {
		fields = append(fields, processedcallback.FieldOutcome)
	}
	if m.received_at != nil {
		fields = append(fields, processedcallback.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessedCallbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processedcallback.FieldJobID:
		return m.JobID()
	case processedcallback.FieldOutcome:
		return m.Outcome()
	case processedcallback.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessedCallbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processedcallback.FieldJobID:
		return m.OldJobID(ctx)
	case processedcallback.FieldOutcome:
		return m.OldOutcome(ctx)
	case processedcallback.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessedCallback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedCallbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processedcallback.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case processedcallback.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case processedcallback.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedCallback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessedCallbackMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessedCallbackMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedCallbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessedCallback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessedCallbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processedcallback.FieldJobID) {
		fields = append(fields, processedcallback.FieldJobID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessedCallbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessedCallbackMutation) ClearField(name string) error {
	switch name {
	case processedcallback.FieldJobID:
		m.ClearJobID()
		return nil
	}
	return fmt.Errorf("unknown ProcessedCallback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessedCallbackMutation) ResetField(name string) error {
	switch name {
	case processedcallback.FieldJobID:
		m.ResetJobID()
		return nil
	case processedcallback.FieldOutcome:
		m.ResetOutcome()
		return nil
	case processedcallback.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessedCallback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessedCallbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessedCallbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessedCallbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessedCallbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessedCallbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessedCallbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessedCallbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessedCallback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessedCallbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessedCallback edge %s", name)
}

// TileMutation represents an operation that mutates the Tile nodes in the graph.
type TileMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	tile_index            *int
	addtile_index         *int
	x                     *int
	addx                  *int
	y                     *int
	addy                  *int
	width                 *int
	addwidth              *int
	height                *int
	addheight             *int
	input_url             *string
	stages                *[]models.StageSlot
	appendstages          []models.StageSlot
	current_prediction_id *string
	status                *string
	parent_tile_index     *int
	addparent_tile_index  *int
	error_message         *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	job                   *string
	clearedjob            bool
	done                  bool
	oldValue              func(context.Context) (*Tile, error)
	predicates            []predicate.Tile
}

var _ ent.Mutation = (*TileMutation)(nil)

// tileOption allows management of the mutation configuration using functional options.
type tileOption func(*TileMutation)

// newTileMutation creates new mutation for the Tile entity.
func newTileMutation(c config, op Op, opts ...tileOption) *TileMutation {
	m := &TileMutation{
		config:        c,
		op:            op,
		typ:           TypeTile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTileID sets the ID field of the mutation.
func withTileID(id int) tileOption {
	return func(m *TileMutation) {
		var (
			err   error
			once  sync.Once
			value *Tile
		)
		m.oldValue = func(ctx context.Context) (*Tile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTile sets the old Tile of the mutation.
func withTile(node *Tile) tileOption {
	return func(m *TileMutation) {
		m.oldValue = func(context.Context) (*Tile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *TileMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *TileMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *TileMutation) ResetJobID() {
	m.job = nil
}

// SetTileIndex sets the "tile_index" field.
func (m *TileMutation) SetTileIndex(i int) {
	m.tile_index = &i
	m.addtile_index = nil
}

// TileIndex returns the value of the "tile_index" field in the mutation.
func (m *TileMutation) TileIndex() (r int, exists bool) {
	v := m.tile_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTileIndex returns the old "tile_index" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldTileIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTileIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTileIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTileIndex: %w", err)
	}
	return oldValue.TileIndex, nil
}

// AddTileIndex adds i to the "tile_index" field.
func (m *TileMutation) AddTileIndex(i int) {
	if m.addtile_index != nil {
		*m.addtile_index += i
	} else {
		m.addtile_index = &i
	}
}

// AddedTileIndex returns the value that was added to the "tile_index" field in this mutation.
func (m *TileMutation) AddedTileIndex() (r int, exists bool) {
	v := m.addtile_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTileIndex resets all changes to the "tile_index" field.
func (m *TileMutation) ResetTileIndex() {
	m.tile_index = nil
	m.addtile_index = nil
}

// SetX sets the "x" field.
func (m *TileMutation) SetX(i int) {
	m.x = &i
	m.addx = nil
}

// X returns the value of the "x" field in the mutation.
func (m *TileMutation) X() (r int, exists bool) {
	v := m.x
	if v == nil {
		return
	}
	return *v, true
}

// OldX returns the old "x" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldX(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldX: %w", err)
	}
	return oldValue.X, nil
}

// AddX adds i to the "x" field.
func (m *TileMutation) AddX(i int) {
	if m.addx != nil {
		*m.addx += i
	} else {
		m.addx = &i
	}
}

// AddedX returns the value that was added to the "x" field in this mutation.
func (m *TileMutation) AddedX() (r int, exists bool) {
	v := m.addx
	if v == nil {
		return
	}
	return *v, true
}

// ResetX resets all changes to the "x" field.
func (m *TileMutation) ResetX() {
	m.x = nil
	m.addx = nil
}

// SetY sets the "y" field.
func (m *TileMutation) SetY(i int) {
	m.y = &i
	m.addy = nil
}

// Y returns the value of the "y" field in the mutation.
func (m *TileMutation) Y() (r int, exists bool) {
	v := m.y
	if v == nil {
		return
	}
	return *v, true
}

// OldY returns the old "y" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldY(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldY: %w", err)
	}
	return oldValue.Y, nil
}

// AddY adds i to the "y" field.
func (m *TileMutation) AddY(i int) {
	if m.addy != nil {
		*m.addy += i
	} else {
		m.addy = &i
	}
}

// AddedY returns the value that was added to the "y" field in this mutation.
func (m *TileMutation) AddedY() (r int, exists bool) {
	v := m.addy
	if v == nil {
		return
	}
	return *v, true
}

// ResetY resets all changes to the "y" field.
func (m *TileMutation) ResetY() {
	m.y = nil
	m.addy = nil
}

// SetWidth sets the "width" field.
func (m *TileMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *TileMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *TileMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *TileMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ResetWidth resets all changes to the "width" field.
func (m *TileMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
}

// SetHeight sets the "height" field.
func (m *TileMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *TileMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *TileMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *TileMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeight resets all changes to the "height" field.
func (m *TileMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
}

// SetInputURL sets the "input_url" field.
func (m *TileMutation) SetInputURL(s string) {
	m.input_url = &s
}

// InputURL returns the value of the "input_url" field in the mutation.
func (m *TileMutation) InputURL() (r string, exists bool) {
	v := m.input_url
	if v == nil {
		return
	}
	return *v, true
}

// OldInputURL returns the old "input_url" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldInputURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputURL: %w", err)
	}
	return oldValue.InputURL, nil
}

// ResetInputURL resets all changes to the "input_url" field.
func (m *TileMutation) ResetInputURL() {
	m.input_url = nil
}

// SetStages sets the "stages" field.
func (m *TileMutation) SetStages(ms []models.StageSlot) {
	m.stages = &ms
	m.appendstages = nil
}

// Stages returns the value of the "stages" field in the mutation.
func (m *TileMutation) Stages() (r []models.StageSlot, exists bool) {
	v := m.stages
	if v == nil {
		return
	}
	return *v, true
}

// OldStages returns the old "stages" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldStages(ctx context.Context) (v []models.StageSlot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStages: %w", err)
	}
	return oldValue.Stages, nil
}

// AppendStages adds ms to the "stages" field.
func (m *TileMutation) AppendStages(ms []models.StageSlot) {
	m.appendstages = append(m.appendstages, ms...)
}

// AppendedStages returns the list of values that were appended to the "stages" field in this mutation.
func (m *TileMutation) AppendedStages() ([]models.StageSlot, bool) {
	if len(m.appendstages) == 0 {
		return nil, false
	}
	return m.appendstages, true
}

// ResetStages resets all changes to the "stages" field.
func (m *TileMutation) ResetStages() {
	m.stages = nil
	m.appendstages = nil
}

// SetCurrentPredictionID sets the "current_prediction_id" field.
func (m *TileMutation) SetCurrentPredictionID(s string) {
	m.current_prediction_id = &s
}

// CurrentPredictionID returns the value of the "current_prediction_id" field in the mutation.
func (m *TileMutation) CurrentPredictionID() (r string, exists bool) {
	v := m.current_prediction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPredictionID returns the old "current_prediction_id" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldCurrentPredictionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPredictionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPredictionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPredictionID: %w", err)
	}
	return oldValue.CurrentPredictionID, nil
}

// ClearCurrentPredictionID clears the value of the "current_prediction_id" field.
func (m *TileMutation) ClearCurrentPredictionID() {
	m.current_prediction_id = nil
	m.clearedFields[tile.FieldCurrentPredictionID] = struct{}{}
}

// CurrentPredictionIDCleared returns if the "current_prediction_id" field was cleared in this mutation.
func (m *TileMutation) CurrentPredictionIDCleared() bool {
	_, ok := m.clearedFields[tile.FieldCurrentPredictionID]
	return ok
}

// ResetCurrentPredictionID resets all changes to the "current_prediction_id" field.
func (m *TileMutation) ResetCurrentPredictionID() {
	m.current_prediction_id = nil
	delete(m.clearedFields, tile.FieldCurrentPredictionID)
}

// SetStatus sets the "status" field.
func (m *TileMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TileMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *TileMutation) ResetStatus() {
	m.status = nil
}

// SetParentTileIndex sets the "parent_tile_index" field.
func (m *TileMutation) SetParentTileIndex(i int) {
	m.parent_tile_index = &i
	m.addparent_tile_index = nil
}

// ParentTileIndex returns the value of the "parent_tile_index" field in the mutation.
func (m *TileMutation) ParentTileIndex() (r int, exists bool) {
	v := m.parent_tile_index
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTileIndex returns the old "parent_tile_index" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldParentTileIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTileIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTileIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTileIndex: %w", err)
	}
	return oldValue.ParentTileIndex, nil
}

// AddParentTileIndex adds i to the "parent_tile_index" field.
func (m *TileMutation) AddParentTileIndex(i int) {
	if m.addparent_tile_index != nil {
		*m.addparent_tile_index += i
	} else {
		m.addparent_tile_index = &i
	}
}

// AddedParentTileIndex returns the value that was added to the "parent_tile_index" field in this mutation.
func (m *TileMutation) AddedParentTileIndex() (r int, exists bool) {
	v := m.addparent_tile_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentTileIndex clears the value of the "parent_tile_index" field.
func (m *TileMutation) ClearParentTileIndex() {
	m.parent_tile_index = nil
	m.addparent_tile_index = nil
	m.clearedFields[tile.FieldParentTileIndex] = struct{}{}
}

// ParentTileIndexCleared returns if the "parent_tile_index" field was cleared in this mutation.
func (m *TileMutation) ParentTileIndexCleared() bool {
	_, ok := m.clearedFields[tile.FieldParentTileIndex]
	return ok
}

// ResetParentTileIndex resets all changes to the "parent_tile_index" field.
func (m *TileMutation) ResetParentTileIndex() {
	m.parent_tile_index = nil
	m.addparent_tile_index = nil
	delete(m.clearedFields, tile.FieldParentTileIndex)
}

// SetErrorMessage sets the "error_message" field.
func (m *TileMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TileMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TileMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[tile.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TileMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[tile.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TileMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, tile.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tile entity.
// If the Tile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the UpscaleJob entity.
func (m *TileMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[tile.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the UpscaleJob entity was cleared.
func (m *TileMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *TileMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *TileMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the TileMutation builder.
func (m *TileMutation) Where(ps ...predicate.Tile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tile).
func (m *TileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TileMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.job != nil {
		fields = append(fields, tile.FieldJobID)
	}
	if m.tile_index != nil {
		fields = append(fields, tile.FieldTileIndex)
	}
	if m.x != nil {
		fields = append(fields, tile.FieldX)
	}
	if m.y != nil {
		fields = append(fields, tile.FieldY)
	}
	if m.width != nil {
		fields = append(fields, tile.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, tile.FieldHeight)
	}
	if m.input_url != nil {
		fields = append(fields, tile.FieldInputURL)
	}
	if m.stages != nil {
		fields = append(fields, tile.FieldStages)
	}
	if m.current_prediction_id != nil {
		fields = append(fields, tile.FieldCurrentPredictionID)
	}
	if m.status != nil {
		fields = append(fields, tile.FieldStatus)
	}
	if m.parent_tile_index != nil {
		fields = append(fields, tile.FieldParentTileIndex)
	}
	if m.error_message != nil {
		fields = append(fields, tile.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, tile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tile.FieldJobID:
		return m.JobID()
	case tile.FieldTileIndex:
		return m.TileIndex()
	case tile.FieldX:
		return m.X()
	case tile.FieldY:
		return m.Y()
	case tile.FieldWidth:
		return m.Width()
	case tile.FieldHeight:
		return m.Height()
	case tile.FieldInputURL:
		return m.InputURL()
	case tile.FieldStages:
		return m.Stages()
	case tile.FieldCurrentPredictionID:
		return m.CurrentPredictionID()
	case tile.FieldStatus:
		return m.Status()
	case tile.FieldParentTileIndex:
		return m.ParentTileIndex()
	case tile.FieldErrorMessage:
		return m.ErrorMessage()
	case tile.FieldCreatedAt:
		return m.CreatedAt()
	case tile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tile.FieldJobID:
		return m.OldJobID(ctx)
	case tile.FieldTileIndex:
		return m.OldTileIndex(ctx)
	case tile.FieldX:
		return m.OldX(ctx)
	case tile.FieldY:
		return m.OldY(ctx)
	case tile.FieldWidth:
		return m.OldWidth(ctx)
	case tile.FieldHeight:
		return m.OldHeight(ctx)
	case tile.FieldInputURL:
		return m.OldInputURL(ctx)
	case tile.FieldStages:
		return m.OldStages(ctx)
	case tile.FieldCurrentPredictionID:
		return m.OldCurrentPredictionID(ctx)
	case tile.FieldStatus:
		return m.OldStatus(ctx)
	case tile.FieldParentTileIndex:
		return m.OldParentTileIndex(ctx)
	case tile.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case tile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tile.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case tile.FieldTileIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTileIndex(v)
		return nil
	case tile.FieldX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetX(v)
		return nil
	case tile.FieldY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetY(v)
		return nil
	case tile.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case tile.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case tile.FieldInputURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputURL(v)
		return nil
	case tile.FieldStages:
		v, ok := value.([]models.StageSlot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStages(v)
		return nil
	case tile.FieldCurrentPredictionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPredictionID(v)
		return nil
	case tile.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tile.FieldParentTileIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTileIndex(v)
		return nil
	case tile.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case tile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TileMutation) AddedFields() []string {
	var fields []string
	if m.addtile_index != nil {
		fields = append(fields, tile.FieldTileIndex)
	}
	if m.addx != nil {
		fields = append(fields, tile.FieldX)
	}
	if m.addy != nil {
		fields = append(fields, tile.FieldY)
	}
	if m.addwidth != nil {
		fields = append(fields, tile.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, tile.FieldHeight)
	}
	if m.addparent_tile_index != nil {
		fields = append(fields, tile.FieldParentTileIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tile.FieldTileIndex:
		return m.AddedTileIndex()
	case tile.FieldX:
		return m.AddedX()
	case tile.FieldY:
		return m.AddedY()
	case tile.FieldWidth:
		return m.AddedWidth()
	case tile.FieldHeight:
		return m.AddedHeight()
	case tile.FieldParentTileIndex:
		return m.AddedParentTileIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tile.FieldTileIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTileIndex(v)
		return nil
	case tile.FieldX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddX(v)
		return nil
	case tile.FieldY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddY(v)
		return nil
	case tile.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case tile.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case tile.FieldParentTileIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentTileIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Tile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tile.FieldCurrentPredictionID) {
		fields = append(fields, tile.FieldCurrentPredictionID)
	}
	if m.FieldCleared(tile.FieldParentTileIndex) {
		fields = append(fields, tile.FieldParentTileIndex)
	}
	if m.FieldCleared(tile.FieldErrorMessage) {
		fields = append(fields, tile.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TileMutation) ClearField(name string) error {
	switch name {
	case tile.FieldCurrentPredictionID:
		m.ClearCurrentPredictionID()
		return nil
	case tile.FieldParentTileIndex:
		m.ClearParentTileIndex()
		return nil
	case tile.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Tile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TileMutation) ResetField(name string) error {
	switch name {
	case tile.FieldJobID:
		m.ResetJobID()
		return nil
	case tile.FieldTileIndex:
		m.ResetTileIndex()
		return nil
	case tile.FieldX:
		m.ResetX()
		return nil
	case tile.FieldY:
		m.ResetY()
		return nil
	case tile.FieldWidth:
		m.ResetWidth()
		return nil
	case tile.FieldHeight:
		m.ResetHeight()
		return nil
	case tile.FieldInputURL:
		m.ResetInputURL()
		return nil
	case tile.FieldStages:
		m.ResetStages()
		return nil
	case tile.FieldCurrentPredictionID:
		m.ResetCurrentPredictionID()
		return nil
	case tile.FieldStatus:
		m.ResetStatus()
		return nil
	case tile.FieldParentTileIndex:
		m.ResetParentTileIndex()
		return nil
	case tile.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case tile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, tile.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tile.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, tile.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TileMutation) EdgeCleared(name string) bool {
	switch name {
	case tile.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TileMutation) ClearEdge(name string) error {
	switch name {
	case tile.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Tile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TileMutation) ResetEdge(name string) error {
	switch name {
	case tile.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Tile edge %s", name)
}

// UpscaleJobMutation represents an operation that mutates the UpscaleJob nodes in the graph.
type UpscaleJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	input_url          *string
	original_width     *int
	addoriginal_width  *int
	original_height    *int
	addoriginal_height *int
	category           *upscalejob.Category
	requested_scale    *int
	addrequested_scale *int
	target_scale       *int
	addtarget_scale    *int
	chain              *[]models.ChainStage
	appendchain        []models.ChainStage
	template           *[]models.TemplateStage
	appendtemplate     []models.TemplateStage
	grid               **models.TilingGrid
	using_tiling       *bool
	current_stage      *int
	addcurrent_stage   *int
	total_stages       *int
	addtotal_stages    *int
	prediction_id      *string
	status             *upscalejob.Status
	retry_count        *int
	addretry_count     *int
	last_callback_at   *time.Time
	current_output_url *string
	final_output_url   *string
	error_message      *string
	created_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	tiles              map[int]struct{}
	removedtiles       map[int]struct{}
	clearedtiles       bool
	done               bool
	oldValue           func(context.Context) (*UpscaleJob, error)
	predicates         []predicate.UpscaleJob
}

var _ ent.Mutation = (*UpscaleJobMutation)(nil)

// upscalejobOption allows management of the mutation configuration using functional options.
type upscalejobOption func(*UpscaleJobMutation)

// newUpscaleJobMutation creates new mutation for the UpscaleJob entity.
func newUpscaleJobMutation(c config, op Op, opts ...upscalejobOption) *UpscaleJobMutation {
	m := &UpscaleJobMutation{
		config:        c,
		op:            op,
		typ:           TypeUpscaleJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUpscaleJobID sets the ID field of the mutation.
func withUpscaleJobID(id string) upscalejobOption {
	return func(m *UpscaleJobMutation) {
		var (
			err   error
			once  sync.Once
			value *UpscaleJob
		)
		m.oldValue = func(ctx context.Context) (*UpscaleJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UpscaleJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpscaleJob sets the old UpscaleJob of the mutation.
func withUpscaleJob(node *UpscaleJob) upscalejobOption {
	return func(m *UpscaleJobMutation) {
		m.oldValue = func(context.Context) (*UpscaleJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UpscaleJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UpscaleJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UpscaleJob entities.
func (m *UpscaleJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UpscaleJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UpscaleJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UpscaleJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UpscaleJobMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UpscaleJobMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldUserID(ctx context.Context) (v string, err error) {
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
func (m *UpscaleJobMutation) ResetUserID() {
	m.user_id = nil
}

// SetInputURL sets the "input_url" field.
func (m *UpscaleJobMutation) SetInputURL(s string) {
	m.input_url = &s
}

// InputURL returns the value of the "input_url" field in the mutation.
func (m *UpscaleJobMutation) InputURL() (r string, exists bool) {
	v := m.input_url
	if v == nil {
		return
	}
	return *v, true
}

// OldInputURL returns the old "input_url" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldInputURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputURL: %w", err)
	}
	return oldValue.InputURL, nil
}

// ResetInputURL resets all changes to the "input_url" field.
func (m *UpscaleJobMutation) ResetInputURL() {
	m.input_url = nil
}

// SetOriginalWidth sets the "original_width" field.
func (m *UpscaleJobMutation) SetOriginalWidth(i int) {
	m.original_width = &i
	m.addoriginal_width = nil
}

// OriginalWidth returns the value of the "original_width" field in the mutation.
func (m *UpscaleJobMutation) OriginalWidth() (r int, exists bool) {
	v := m.original_width
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalWidth returns the old "original_width" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldOriginalWidth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalWidth: %w", err)
	}
	return oldValue.OriginalWidth, nil
}

// AddOriginalWidth adds i to the "original_width" field.
func (m *UpscaleJobMutation) AddOriginalWidth(i int) {
	if m.addoriginal_width != nil {
		*m.addoriginal_width += i
	} else {
		m.addoriginal_width = &i
	}
}

// AddedOriginalWidth returns the value that was added to the "original_width" field in this mutation.
func (m *UpscaleJobMutation) AddedOriginalWidth() (r int, exists bool) {
	v := m.addoriginal_width
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginalWidth resets all changes to the "original_width" field.
func (m *UpscaleJobMutation) ResetOriginalWidth() {
	m.original_width = nil
	m.addoriginal_width = nil
}

// SetOriginalHeight sets the "original_height" field.
func (m *UpscaleJobMutation) SetOriginalHeight(i int) {
	m.original_height = &i
	m.addoriginal_height = nil
}

// OriginalHeight returns the value of the "original_height" field in the mutation.
func (m *UpscaleJobMutation) OriginalHeight() (r int, exists bool) {
	v := m.original_height
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalHeight returns the old "original_height" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldOriginalHeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalHeight: %w", err)
	}
	return oldValue.OriginalHeight, nil
}

// AddOriginalHeight adds i to the "original_height" field.
func (m *UpscaleJobMutation) AddOriginalHeight(i int) {
	if m.addoriginal_height != nil {
		*m.addoriginal_height += i
	} else {
		m.addoriginal_height = &i
	}
}

// AddedOriginalHeight returns the value that was added to the "original_height" field in this mutation.
func (m *UpscaleJobMutation) AddedOriginalHeight() (r int, exists bool) {
	v := m.addoriginal_height
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginalHeight resets all changes to the "original_height" field.
func (m *UpscaleJobMutation) ResetOriginalHeight() {
	m.original_height = nil
	m.addoriginal_height = nil
}

// SetCategory sets the "category" field.
func (m *UpscaleJobMutation) SetCategory(u upscalejob.Category) {
	m.category = &u
}

// Category returns the value of the "category" field in the mutation.
func (m *UpscaleJobMutation) Category() (r upscalejob.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldCategory(ctx context.Context) (v upscalejob.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *UpscaleJobMutation) ResetCategory() {
	m.category = nil
}

// SetRequestedScale sets the "requested_scale" field.
func (m *UpscaleJobMutation) SetRequestedScale(i int) {
	m.requested_scale = &i
	m.addrequested_scale = nil
}

// RequestedScale returns the value of the "requested_scale" field in the mutation.
func (m *UpscaleJobMutation) RequestedScale() (r int, exists bool) {
	v := m.requested_scale
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedScale returns the old "requested_scale" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldRequestedScale(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedScale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedScale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedScale: %w", err)
	}
	return oldValue.RequestedScale, nil
}

// AddRequestedScale adds i to the "requested_scale" field.
func (m *UpscaleJobMutation) AddRequestedScale(i int) {
	if m.addrequested_scale != nil {
		*m.addrequested_scale += i
	} else {
		m.addrequested_scale = &i
	}
}

// AddedRequestedScale returns the value that was added to the "requested_scale" field in this mutation.
func (m *UpscaleJobMutation) AddedRequestedScale() (r int, exists bool) {
	v := m.addrequested_scale
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestedScale resets all changes to the "requested_scale" field.
func (m *UpscaleJobMutation) ResetRequestedScale() {
	m.requested_scale = nil
	m.addrequested_scale = nil
}

// SetTargetScale sets the "target_scale" field.
func (m *UpscaleJobMutation) SetTargetScale(i int) {
	m.target_scale = &i
	m.addtarget_scale = nil
}

// TargetScale returns the value of the "target_scale" field in the mutation.
func (m *UpscaleJobMutation) TargetScale() (r int, exists bool) {
	v := m.target_scale
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetScale returns the old "target_scale" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldTargetScale(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetScale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetScale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetScale: %w", err)
	}
	return oldValue.TargetScale, nil
}

// AddTargetScale adds i to the "target_scale" field.
func (m *UpscaleJobMutation) AddTargetScale(i int) {
	if m.addtarget_scale != nil {
		*m.addtarget_scale += i
	} else {
		m.addtarget_scale = &i
	}
}

// AddedTargetScale returns the value that was added to the "target_scale" field in this mutation.
func (m *UpscaleJobMutation) AddedTargetScale() (r int, exists bool) {
	v := m.addtarget_scale
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetScale resets all changes to the "target_scale" field.
func (m *UpscaleJobMutation) ResetTargetScale() {
	m.target_scale = nil
	m.addtarget_scale = nil
}

// SetChain sets the "chain" field.
func (m *UpscaleJobMutation) SetChain(ms []models.ChainStage) {
	m.chain = &ms
	m.appendchain = nil
}

// Chain returns the value of the "chain" field in the mutation.
func (m *UpscaleJobMutation) Chain() (r []models.ChainStage, exists bool) {
	v := m.chain
	if v == nil {
		return
	}
	return *v, true
}

// OldChain returns the old "chain" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldChain(ctx context.Context) (v []models.ChainStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChain: %w", err)
	}
	return oldValue.Chain, nil
}

// AppendChain adds ms to the "chain" field.
func (m *UpscaleJobMutation) AppendChain(ms []models.ChainStage) {
	m.appendchain = append(m.appendchain, ms...)
}

// AppendedChain returns the list of values that were appended to the "chain" field in this mutation.
func (m *UpscaleJobMutation) AppendedChain() ([]models.ChainStage, bool) {
	if len(m.appendchain) == 0 {
		return nil, false
	}
	return m.appendchain, true
}

// ResetChain resets all changes to the "chain" field.
func (m *UpscaleJobMutation) ResetChain() {
	m.chain = nil
	m.appendchain = nil
}

// SetTemplate sets the "template" field.
func (m *UpscaleJobMutation) SetTemplate(ms []models.TemplateStage) {
	m.template = &ms
	m.appendtemplate = nil
}

// Template returns the value of the "template" field in the mutation.
func (m *UpscaleJobMutation) Template() (r []models.TemplateStage, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplate returns the old "template" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldTemplate(ctx context.Context) (v []models.TemplateStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplate: %w", err)
	}
	return oldValue.Template, nil
}

// AppendTemplate adds ms to the "template" field.
func (m *UpscaleJobMutation) AppendTemplate(ms []models.TemplateStage) {
	m.appendtemplate = append(m.appendtemplate, ms...)
}

// AppendedTemplate returns the list of values that were appended to the "template" field in this mutation.
func (m *UpscaleJobMutation) AppendedTemplate() ([]models.TemplateStage, bool) {
	if len(m.appendtemplate) == 0 {
		return nil, false
	}
	return m.appendtemplate, true
}

// ClearTemplate clears the value of the "template" field.
func (m *UpscaleJobMutation) ClearTemplate() {
	m.template = nil
	m.appendtemplate = nil
	m.clearedFields[upscalejob.FieldTemplate] = struct{}{}
}

// TemplateCleared returns if the "template" field was cleared in this mutation.
func (m *UpscaleJobMutation) TemplateCleared() bool {
	_, ok := m.clearedFields[upscalejob.FieldTemplate]
	return ok
}

// ResetTemplate resets all changes to the "template" field.
func (m *UpscaleJobMutation) ResetTemplate() {
	m.template = nil
	m.appendtemplate = nil
	delete(m.clearedFields, upscalejob.FieldTemplate)
}

// SetGrid sets the "grid" field.
func (m *UpscaleJobMutation) SetGrid(mg *models.TilingGrid) {
	m.grid = &mg
}

// Grid returns the value of the "grid" field in the mutation.
func (m *UpscaleJobMutation) Grid() (r *models.TilingGrid, exists bool) {
	v := m.grid
	if v == nil {
		return
	}
	return *v, true
}

// OldGrid returns the old "grid" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldGrid(ctx context.Context) (v *models.TilingGrid, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrid: %w", err)
	}
	return oldValue.Grid, nil
}

// ClearGrid clears the value of the "grid" field.
func (m *UpscaleJobMutation) ClearGrid() {
	m.grid = nil
	m.clearedFields[upscalejob.FieldGrid] = struct{}{}
}

// GridCleared returns if the "grid" field was cleared in this mutation.
func (m *UpscaleJobMutation) GridCleared() bool {
	_, ok := m.clearedFields[upscalejob.FieldGrid]
	return ok
}

// ResetGrid resets all changes to the "grid" field.
func (m *UpscaleJobMutation) ResetGrid() {
	m.grid = nil
	delete(m.clearedFields, upscalejob.FieldGrid)
}

// SetUsingTiling sets the "using_tiling" field.
func (m *UpscaleJobMutation) SetUsingTiling(b bool) {
	m.using_tiling = &b
}

// UsingTiling returns the value of the "using_tiling" field in the mutation.
func (m *UpscaleJobMutation) UsingTiling() (r bool, exists bool) {
	v := m.using_tiling
	if v == nil {
		return
	}
	return *v, true
}

// OldUsingTiling returns the old "using_tiling" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldUsingTiling(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsingTiling is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsingTiling requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsingTiling: %w", err)
	}
	return oldValue.UsingTiling, nil
}

// ResetUsingTiling resets all changes to the "using_tiling" field.
func (m *UpscaleJobMutation) ResetUsingTiling() {
	m.using_tiling = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *UpscaleJobMutation) SetCurrentStage(i int) {
	m.current_stage = &i
	m.addcurrent_stage = nil
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *UpscaleJobMutation) CurrentStage() (r int, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldCurrentStage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// AddCurrentStage adds i to the "current_stage" field.
func (m *UpscaleJobMutation) AddCurrentStage(i int) {
	if m.addcurrent_stage != nil {
		*m.addcurrent_stage += i
	} else {
		m.addcurrent_stage = &i
	}
}

// AddedCurrentStage returns the value that was added to the "current_stage" field in this mutation.
func (m *UpscaleJobMutation) AddedCurrentStage() (r int, exists bool) {
	v := m.addcurrent_stage
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *UpscaleJobMutation) ResetCurrentStage() {
	m.current_stage = nil
	m.addcurrent_stage = nil
}

// SetTotalStages sets the "total_stages" field.
func (m *UpscaleJobMutation) SetTotalStages(i int) {
	m.total_stages = &i
	m.addtotal_stages = nil
}

// TotalStages returns the value of the "total_stages" field in the mutation.
func (m *UpscaleJobMutation) TotalStages() (r int, exists bool) {
	v := m.total_stages
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalStages returns the old "total_stages" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldTotalStages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalStages: %w", err)
	}
	return oldValue.TotalStages, nil
}

// AddTotalStages adds i to the "total_stages" field.
func (m *UpscaleJobMutation) AddTotalStages(i int) {
	if m.addtotal_stages != nil {
		*m.addtotal_stages += i
	} else {
		m.addtotal_stages = &i
	}
}

// AddedTotalStages returns the value that was added to the "total_stages" field in this mutation.
func (m *UpscaleJobMutation) AddedTotalStages() (r int, exists bool) {
	v := m.addtotal_stages
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalStages resets all changes to the "total_stages" field.
func (m *UpscaleJobMutation) ResetTotalStages() {
	m.total_stages = nil
	m.addtotal_stages = nil
}

// SetPredictionID sets the "prediction_id" field.
func (m *UpscaleJobMutation) SetPredictionID(s string) {
	m.prediction_id = &s
}

// PredictionID returns the value of the "prediction_id" field in the mutation.
func (m *UpscaleJobMutation) PredictionID() (r string, exists bool) {
	v := m.prediction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictionID returns the old "prediction_id" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldPredictionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictionID: %w", err)
	}
	return oldValue.PredictionID, nil
}

// ClearPredictionID clears the value of the "prediction_id" field.
func (m *UpscaleJobMutation) ClearPredictionID() {
	m.prediction_id = nil
	m.clearedFields[upscalejob.FieldPredictionID] = struct{}{}
}

// PredictionIDCleared returns if the "prediction_id" field was cleared in this mutation.
func (m *UpscaleJobMutation) PredictionIDCleared() bool {
	_, ok := m.clearedFields[upscalejob.FieldPredictionID]
	return ok
}

// ResetPredictionID resets all changes to the "prediction_id" field.
func (m *UpscaleJobMutation) ResetPredictionID() {
	m.prediction_id = nil
	delete(m.clearedFields, upscalejob.FieldPredictionID)
}

// SetStatus sets the "status" field.
func (m *UpscaleJobMutation) SetStatus(u upscalejob.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UpscaleJobMutation) Status() (r upscalejob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldStatus(ctx context.Context) (v upscalejob.Status, err error) {
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
func (m *UpscaleJobMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *UpscaleJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *UpscaleJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *UpscaleJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *UpscaleJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *UpscaleJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastCallbackAt sets the "last_callback_at" field.
func (m *UpscaleJobMutation) SetLastCallbackAt(t time.Time) {
	m.last_callback_at = &t
}

// LastCallbackAt returns the value of the "last_callback_at" field in the mutation.
func (m *UpscaleJobMutation) LastCallbackAt() (r time.Time, exists bool) {
	v := m.last_callback_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCallbackAt returns the old "last_callback_at" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldLastCallbackAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCallbackAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCallbackAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCallbackAt: %w", err)
	}
	return oldValue.LastCallbackAt, nil
}

// ClearLastCallbackAt clears the value of the "last_callback_at" field.
func (m *UpscaleJobMutation) ClearLastCallbackAt() {
	m.last_callback_at = nil
	m.clearedFields[upscalejob.FieldLastCallbackAt] = struct{}{}
}

// LastCallbackAtCleared returns if the "last_callback_at" field was cleared in this mutation.
func (m *UpscaleJobMutation) LastCallbackAtCleared() bool {
	_, ok := m.clearedFields[upscalejob.FieldLastCallbackAt]
	return ok
}

// ResetLastCallbackAt resets all changes to the "last_callback_at" field.
func (m *UpscaleJobMutation) ResetLastCallbackAt() {
	m.last_callback_at = nil
	delete(m.clearedFields, upscalejob.FieldLastCallbackAt)
}

// SetCurrentOutputURL sets the "current_output_url" field.
func (m *UpscaleJobMutation) SetCurrentOutputURL(s string) {
	m.current_output_url = &s
}

// CurrentOutputURL returns the value of the "current_output_url" field in the mutation.
func (m *UpscaleJobMutation) CurrentOutputURL() (r string, exists bool) {
	v := m.current_output_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentOutputURL returns the old "current_output_url" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldCurrentOutputURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentOutputURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentOutputURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentOutputURL: %w", err)
	}
	return oldValue.CurrentOutputURL, nil
}

// ClearCurrentOutputURL clears the value of the "current_output_url" field.
func (m *UpscaleJobMutation) ClearCurrentOutputURL() {
	m.current_output_url = nil
	m.clearedFields[upscalejob.FieldCurrentOutputURL] = struct{}{}
}

// CurrentOutputURLCleared returns if the "current_output_url" field was cleared in this mutation.
func (m *UpscaleJobMutation) CurrentOutputURLCleared() bool {
	_, ok := m.clearedFields[upscalejob.FieldCurrentOutputURL]
	return ok
}

// ResetCurrentOutputURL resets all changes to the "current_output_url" field.
func (m *UpscaleJobMutation) ResetCurrentOutputURL() {
	m.current_output_url = nil
	delete(m.clearedFields, upscalejob.FieldCurrentOutputURL)
}

// SetFinalOutputURL sets the "final_output_url" field.
func (m *UpscaleJobMutation) SetFinalOutputURL(s string) {
	m.final_output_url = &s
}

// FinalOutputURL returns the value of the "final_output_url" field in the mutation.
func (m *UpscaleJobMutation) FinalOutputURL() (r string, exists bool) {
	v := m.final_output_url
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalOutputURL returns the old "final_output_url" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldFinalOutputURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalOutputURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalOutputURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalOutputURL: %w", err)
	}
	return oldValue.FinalOutputURL, nil
}

// ClearFinalOutputURL clears the value of the "final_output_url" field.
func (m *UpscaleJobMutation) ClearFinalOutputURL() {
	m.final_output_url = nil
	m.clearedFields[upscalejob.FieldFinalOutputURL] = struct{}{}
}

// FinalOutputURLCleared returns if the "final_output_url" field was cleared in this mutation.
func (m *UpscaleJobMutation) FinalOutputURLCleared() bool {
	_, ok := m.clearedFields[upscalejob.FieldFinalOutputURL]
	return ok
}

// ResetFinalOutputURL resets all changes to the "final_output_url" field.
func (m *UpscaleJobMutation) ResetFinalOutputURL() {
	m.final_output_url = nil
	delete(m.clearedFields, upscalejob.FieldFinalOutputURL)
}

// SetErrorMessage sets the "error_message" field.
func (m *UpscaleJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *UpscaleJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *UpscaleJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[upscalejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *UpscaleJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[upscalejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *UpscaleJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, upscalejob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *UpscaleJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UpscaleJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UpscaleJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *UpscaleJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *UpscaleJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the UpscaleJob entity.
// If the UpscaleJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpscaleJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *UpscaleJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[upscalejob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *UpscaleJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[upscalejob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *UpscaleJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, upscalejob.FieldCompletedAt)
}

// AddTileIDs adds the "tiles" edge to the Tile entity by ids.
func (m *UpscaleJobMutation) AddTileIDs(ids ...int) {
	if m.tiles == nil {
		m.tiles = make(map[int]struct{})
	}
	for i := range ids {
		m.tiles[ids[i]] = struct{}{}
	}
}

// ClearTiles clears the "tiles" edge to the Tile entity.
func (m *UpscaleJobMutation) ClearTiles() {
	m.clearedtiles = true
}

// TilesCleared reports if the "tiles" edge to the Tile entity was cleared.
func (m *UpscaleJobMutation) TilesCleared() bool {
	return m.clearedtiles
}

// RemoveTileIDs removes the "tiles" edge to the Tile entity by IDs.
func (m *UpscaleJobMutation) RemoveTileIDs(ids ...int) {
	if m.removedtiles == nil {
		m.removedtiles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tiles, ids[i])
		m.removedtiles[ids[i]] = struct{}{}
	}
}

// RemovedTiles returns the removed IDs of the "tiles" edge to the Tile entity.
func (m *UpscaleJobMutation) RemovedTilesIDs() (ids []int) {
	for id := range m.removedtiles {
		ids = append(ids, id)
	}
	return
}

// TilesIDs returns the "tiles" edge IDs in the mutation.
func (m *UpscaleJobMutation) TilesIDs() (ids []int) {
	for id := range m.tiles {
		ids = append(ids, id)
	}
	return
}

// ResetTiles resets all changes to the "tiles" edge.
func (m *UpscaleJobMutation) ResetTiles() {
	m.tiles = nil
	m.clearedtiles = false
	m.removedtiles = nil
}

// Where appends a list predicates to the UpscaleJobMutation builder.
func (m *UpscaleJobMutation) Where(ps ...predicate.UpscaleJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UpscaleJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UpscaleJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UpscaleJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UpscaleJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UpscaleJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UpscaleJob).
func (m *UpscaleJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UpscaleJobMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.user_id != nil {
		fields = append(fields, upscalejob.FieldUserID)
	}
	if m.input_url != nil {
		fields = append(fields, upscalejob.FieldInputURL)
	}
	if m.original_width != nil {
		fields = append(fields, upscalejob.FieldOriginalWidth)
	}
	if m.original_height != nil {
		fields = append(fields, upscalejob.FieldOriginalHeight)
	}
	if m.category != nil {
		fields = append(fields, upscalejob.FieldCategory)
	}
	if m.requested_scale != nil {
		fields = append(fields, upscalejob.FieldRequestedScale)
	}
	if m.target_scale != nil {
		fields = append(fields, upscalejob.FieldTargetScale)
	}
	if m.chain != nil {
		fields = append(fields, upscalejob.FieldChain)
	}
	if m.template != nil {
		fields = append(fields, upscalejob.FieldTemplate)
	}
	if m.grid != nil {
		fields = append(fields, upscalejob.FieldGrid)
	}
	if m.using_tiling != nil {
		fields = append(fields, upscalejob.FieldUsingTiling)
	}
	if m.current_stage != nil {
		fields = append(fields, upscalejob.FieldCurrentStage)
	}
	if m.total_stages != nil {
		fields = append(fields, upscalejob.FieldTotalStages)
	}
	if m.prediction_id != nil {
		fields = append(fields, upscalejob.FieldPredictionID)
	}
	if m.status != nil {
		fields = append(fields, upscalejob.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, upscalejob.FieldRetryCount)
	}
	if m.last_callback_at != nil {
		fields = append(fields, upscalejob.FieldLastCallbackAt)
	}
	if m.current_output_url != nil {
		fields = append(fields, upscalejob.FieldCurrentOutputURL)
	}
	if m.final_output_url != nil {
		fields = append(fields, upscalejob.FieldFinalOutputURL)
	}
	if m.error_message != nil {
		fields = append(fields, upscalejob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, upscalejob.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, upscalejob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UpscaleJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case upscalejob.FieldUserID:
		return m.UserID()
	case upscalejob.FieldInputURL:
		return m.InputURL()
	case upscalejob.FieldOriginalWidth:
		return m.OriginalWidth()
	case upscalejob.FieldOriginalHeight:
		return m.OriginalHeight()
	case upscalejob.FieldCategory:
		return m.Category()
	case upscalejob.FieldRequestedScale:
		return m.RequestedScale()
	case upscalejob.FieldTargetScale:
		return m.TargetScale()
	case upscalejob.FieldChain:
		return m.Chain()
	case upscalejob.FieldTemplate:
		return m.Template()
	case upscalejob.FieldGrid:
		return m.Grid()
	case upscalejob.FieldUsingTiling:
		return m.UsingTiling()
	case upscalejob.FieldCurrentStage:
		return m.CurrentStage()
	case upscalejob.FieldTotalStages:
		return m.TotalStages()
	case upscalejob.FieldPredictionID:
		return m.PredictionID()
	case upscalejob.FieldStatus:
		return m.Status()
	case upscalejob.FieldRetryCount:
		return m.RetryCount()
	case upscalejob.FieldLastCallbackAt:
		return m.LastCallbackAt()
	case upscalejob.FieldCurrentOutputURL:
		return m.CurrentOutputURL()
	case upscalejob.FieldFinalOutputURL:
		return m.FinalOutputURL()
	case upscalejob.FieldErrorMessage:
		return m.ErrorMessage()
	case upscalejob.FieldCreatedAt:
		return m.CreatedAt()
	case upscalejob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UpscaleJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case upscalejob.FieldUserID:
		return m.OldUserID(ctx)
	case upscalejob.FieldInputURL:
		return m.OldInputURL(ctx)
	case upscalejob.FieldOriginalWidth:
		return m.OldOriginalWidth(ctx)
	case upscalejob.FieldOriginalHeight:
		return m.OldOriginalHeight(ctx)
	case upscalejob.FieldCategory:
		return m.OldCategory(ctx)
	case upscalejob.FieldRequestedScale:
		return m.OldRequestedScale(ctx)
	case upscalejob.FieldTargetScale:
		return m.OldTargetScale(ctx)
	case upscalejob.FieldChain:
		return m.OldChain(ctx)
	case upscalejob.FieldTemplate:
		return m.OldTemplate(ctx)
	case upscalejob.FieldGrid:
		return m.OldGrid(ctx)
	case upscalejob.FieldUsingTiling:
		return m.OldUsingTiling(ctx)
	case upscalejob.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case upscalejob.FieldTotalStages:
		return m.OldTotalStages(ctx)
	case upscalejob.FieldPredictionID:
		return m.OldPredictionID(ctx)
	case upscalejob.FieldStatus:
		return m.OldStatus(ctx)
	case upscalejob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case upscalejob.FieldLastCallbackAt:
		return m.OldLastCallbackAt(ctx)
	case upscalejob.FieldCurrentOutputURL:
		return m.OldCurrentOutputURL(ctx)
	case upscalejob.FieldFinalOutputURL:
		return m.OldFinalOutputURL(ctx)
	case upscalejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case upscalejob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case upscalejob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UpscaleJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpscaleJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case upscalejob.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case upscalejob.FieldInputURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputURL(v)
		return nil
	case upscalejob.FieldOriginalWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalWidth(v)
		return nil
	case upscalejob.FieldOriginalHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalHeight(v)
		return nil
	case upscalejob.FieldCategory:
		v, ok := value.(upscalejob.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case upscalejob.FieldRequestedScale:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedScale(v)
		return nil
	case upscalejob.FieldTargetScale:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetScale(v)
		return nil
	case upscalejob.FieldChain:
		v, ok := value.([]models.ChainStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChain(v)
		return nil
	case upscalejob.FieldTemplate:
		v, ok := value.([]models.TemplateStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplate(v)
		return nil
	case upscalejob.FieldGrid:
		v, ok := value.(*models.TilingGrid)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrid(v)
		return nil
	case upscalejob.FieldUsingTiling:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsingTiling(v)
		return nil
	case upscalejob.FieldCurrentStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case upscalejob.FieldTotalStages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalStages(v)
		return nil
	case upscalejob.FieldPredictionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictionID(v)
		return nil
	case upscalejob.FieldStatus:
		v, ok := value.(upscalejob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case upscalejob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case upscalejob.FieldLastCallbackAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCallbackAt(v)
		return nil
	case upscalejob.FieldCurrentOutputURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentOutputURL(v)
		return nil
	case upscalejob.FieldFinalOutputURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalOutputURL(v)
		return nil
	case upscalejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case upscalejob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case upscalejob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UpscaleJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UpscaleJobMutation) AddedFields() []string {
	var fields []string
	if m.addoriginal_width != nil {
		fields = append(fields, upscalejob.FieldOriginalWidth)
	}
	if m.addoriginal_height != nil {
		fields = append(fields, upscalejob.FieldOriginalHeight)
	}
	if m.addrequested_scale != nil {
		fields = append(fields, upscalejob.FieldRequestedScale)
	}
	if m.addtarget_scale != nil {
		fields = append(fields, upscalejob.FieldTargetScale)
	}
	if m.addcurrent_stage != nil {
		fields = append(fields, upscalejob.FieldCurrentStage)
	}
	if m.addtotal_stages != nil {
		fields = append(fields, upscalejob.FieldTotalStages)
	}
	if m.addretry_count != nil {
		fields = append(fields, upscalejob.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UpscaleJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case upscalejob.FieldOriginalWidth:
		return m.AddedOriginalWidth()
	case upscalejob.FieldOriginalHeight:
		return m.AddedOriginalHeight()
	case upscalejob.FieldRequestedScale:
		return m.AddedRequestedScale()
	case upscalejob.FieldTargetScale:
		return m.AddedTargetScale()
	case upscalejob.FieldCurrentStage:
		return m.AddedCurrentStage()
	case upscalejob.FieldTotalStages:
		return m.AddedTotalStages()
	case upscalejob.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpscaleJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case upscalejob.FieldOriginalWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginalWidth(v)
		return nil
	case upscalejob.FieldOriginalHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginalHeight(v)
		return nil
	case upscalejob.FieldRequestedScale:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestedScale(v)
		return nil
	case upscalejob.FieldTargetScale:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetScale(v)
		return nil
	case upscalejob.FieldCurrentStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStage(v)
		return nil
	case upscalejob.FieldTotalStages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalStages(v)
		return nil
	case upscalejob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown UpscaleJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UpscaleJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(upscalejob.FieldTemplate) {
		fields = append(fields, upscalejob.FieldTemplate)
	}
	if m.FieldCleared(upscalejob.FieldGrid) {
		fields = append(fields, upscalejob.FieldGrid)
	}
	if m.FieldCleared(upscalejob.FieldPredictionID) {
		fields = append(fields, upscalejob.FieldPredictionID)
	}
	if m.FieldCleared(upscalejob.FieldLastCallbackAt) {
		fields = append(fields, upscalejob.FieldLastCallbackAt)
	}
	if m.FieldCleared(upscalejob.FieldCurrentOutputURL) {
		fields = append(fields, upscalejob.FieldCurrentOutputURL)
	}
	if m.FieldCleared(upscalejob.FieldFinalOutputURL) {
		fields = append(fields, upscalejob.FieldFinalOutputURL)
	}
	if m.FieldCleared(upscalejob.FieldErrorMessage) {
		fields = append(fields, upscalejob.FieldErrorMessage)
	}
	if m.FieldCleared(upscalejob.FieldCompletedAt) {
		fields = append(fields, upscalejob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UpscaleJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UpscaleJobMutation) ClearField(name string) error {
	switch name {
	case upscalejob.FieldTemplate:
		m.ClearTemplate()
		return nil
	case upscalejob.FieldGrid:
		m.ClearGrid()
		return nil
	case upscalejob.FieldPredictionID:
		m.ClearPredictionID()
		return nil
	case upscalejob.FieldLastCallbackAt:
		m.ClearLastCallbackAt()
		return nil
	case upscalejob.FieldCurrentOutputURL:
		m.ClearCurrentOutputURL()
		return nil
	case upscalejob.FieldFinalOutputURL:
		m.ClearFinalOutputURL()
		return nil
	case upscalejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case upscalejob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown UpscaleJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UpscaleJobMutation) ResetField(name string) error {
	switch name {
	case upscalejob.FieldUserID:
		m.ResetUserID()
		return nil
	case upscalejob.FieldInputURL:
		m.ResetInputURL()
		return nil
	case upscalejob.FieldOriginalWidth:
		m.ResetOriginalWidth()
		return nil
	case upscalejob.FieldOriginalHeight:
		m.ResetOriginalHeight()
		return nil
	case upscalejob.FieldCategory:
		m.ResetCategory()
		return nil
	case upscalejob.FieldRequestedScale:
		m.ResetRequestedScale()
		return nil
	case upscalejob.FieldTargetScale:
		m.ResetTargetScale()
		return nil
	case upscalejob.FieldChain:
		m.ResetChain()
		return nil
	case upscalejob.FieldTemplate:
		m.ResetTemplate()
		return nil
	case upscalejob.FieldGrid:
		m.ResetGrid()
		return nil
	case upscalejob.FieldUsingTiling:
		m.ResetUsingTiling()
		return nil
	case upscalejob.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case upscalejob.FieldTotalStages:
		m.ResetTotalStages()
		return nil
	case upscalejob.FieldPredictionID:
		m.ResetPredictionID()
		return nil
	case upscalejob.FieldStatus:
		m.ResetStatus()
		return nil
	case upscalejob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case upscalejob.FieldLastCallbackAt:
		m.ResetLastCallbackAt()
		return nil
	case upscalejob.FieldCurrentOutputURL:
		m.ResetCurrentOutputURL()
		return nil
	case upscalejob.FieldFinalOutputURL:
		m.ResetFinalOutputURL()
		return nil
	case upscalejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case upscalejob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case upscalejob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown UpscaleJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UpscaleJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tiles != nil {
		edges = append(edges, upscalejob.EdgeTiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UpscaleJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case upscalejob.EdgeTiles:
		ids := make([]ent.Value, 0, len(m.tiles))
		for id := range m.tiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UpscaleJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtiles != nil {
		edges = append(edges, upscalejob.EdgeTiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UpscaleJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case upscalejob.EdgeTiles:
		ids := make([]ent.Value, 0, len(m.removedtiles))
		for id := range m.removedtiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UpscaleJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtiles {
		edges = append(edges, upscalejob.EdgeTiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UpscaleJobMutation) EdgeCleared(name string) bool {
	switch name {
	case upscalejob.EdgeTiles:
		return m.clearedtiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UpscaleJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UpscaleJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UpscaleJobMutation) ResetEdge(name string) error {
	switch name {
	case upscalejob.EdgeTiles:
		m.ResetTiles()
		return nil
	}
	return fmt.Errorf("unknown UpscaleJob edge %s", name)
}
