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
	"github.com/abhisek/studyquest/ent/badgeevent"
	"github.com/abhisek/studyquest/ent/predicate"
	"github.com/abhisek/studyquest/ent/questevent"
	"github.com/abhisek/studyquest/ent/reviewevent"
	"github.com/abhisek/studyquest/ent/snapshot"
	"github.com/abhisek/studyquest/ent/xpevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBadgeEvent  = "BadgeEvent"
	TypeQuestEvent  = "QuestEvent"
	TypeReviewEvent = "ReviewEvent"
	TypeSnapshot    = "Snapshot"
	TypeXPEvent     = "XPEvent"
)

// BadgeEventMutation represents an operation that mutates the BadgeEvent nodes in the graph.
type BadgeEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	badge_id       *string
	condition_kind *string
	xp_reward      *int
	addxp_reward   *int
	session_id     *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*BadgeEvent, error)
	predicates     []predicate.BadgeEvent
}

var _ ent.Mutation = (*BadgeEventMutation)(nil)

// badgeeventOption allows management of the mutation configuration using functional options.
type badgeeventOption func(*BadgeEventMutation)

// newBadgeEventMutation creates new mutation for the BadgeEvent entity.
func newBadgeEventMutation(c config, op Op, opts ...badgeeventOption) *BadgeEventMutation {
	m := &BadgeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeBadgeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBadgeEventID sets the ID field of the mutation.
func withBadgeEventID(id int) badgeeventOption {
	return func(m *BadgeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *BadgeEvent
		)
		m.oldValue = func(ctx context.Context) (*BadgeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BadgeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBadgeEvent sets the old BadgeEvent of the mutation.
func withBadgeEvent(node *BadgeEvent) badgeeventOption {
	return func(m *BadgeEventMutation) {
		m.oldValue = func(context.Context) (*BadgeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BadgeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BadgeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BadgeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BadgeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BadgeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *BadgeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *BadgeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the BadgeEvent entity.
// If the BadgeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *BadgeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *BadgeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *BadgeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *BadgeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *BadgeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the BadgeEvent entity.
// If the BadgeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *BadgeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetBadgeID sets the "badge_id" field.
func (m *BadgeEventMutation) SetBadgeID(s string) {
	m.badge_id = &s
}

// BadgeID returns the value of the "badge_id" field in the mutation.
func (m *BadgeEventMutation) BadgeID() (r string, exists bool) {
	v := m.badge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBadgeID returns the old "badge_id" field's value of the BadgeEvent entity.
// If the BadgeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeEventMutation) OldBadgeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadgeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadgeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadgeID: %w", err)
	}
	return oldValue.BadgeID, nil
}

// ResetBadgeID resets all changes to the "badge_id" field.
func (m *BadgeEventMutation) ResetBadgeID() {
	m.badge_id = nil
}

// SetConditionKind sets the "condition_kind" field.
func (m *BadgeEventMutation) SetConditionKind(s string) {
	m.condition_kind = &s
}

// ConditionKind returns the value of the "condition_kind" field in the mutation.
func (m *BadgeEventMutation) ConditionKind() (r string, exists bool) {
	v := m.condition_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionKind returns the old "condition_kind" field's value of the BadgeEvent entity.
// If the BadgeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeEventMutation) OldConditionKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionKind: %w", err)
	}
	return oldValue.ConditionKind, nil
}

// ResetConditionKind resets all changes to the "condition_kind" field.
func (m *BadgeEventMutation) ResetConditionKind() {
	m.condition_kind = nil
}

// SetXpReward sets the "xp_reward" field.
func (m *BadgeEventMutation) SetXpReward(i int) {
	m.xp_reward = &i
	m.addxp_reward = nil
}

// XpReward returns the value of the "xp_reward" field in the mutation.
func (m *BadgeEventMutation) XpReward() (r int, exists bool) {
	v := m.xp_reward
	if v == nil {
		return
	}
	return *v, true
}

// OldXpReward returns the old "xp_reward" field's value of the BadgeEvent entity.
// If the BadgeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeEventMutation) OldXpReward(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpReward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpReward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpReward: %w", err)
	}
	return oldValue.XpReward, nil
}

// AddXpReward adds i to the "xp_reward" field.
func (m *BadgeEventMutation) AddXpReward(i int) {
	if m.addxp_reward != nil {
		*m.addxp_reward += i
	} else {
		m.addxp_reward = &i
	}
}

// AddedXpReward returns the value that was added to the "xp_reward" field in this mutation.
func (m *BadgeEventMutation) AddedXpReward() (r int, exists bool) {
	v := m.addxp_reward
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpReward resets all changes to the "xp_reward" field.
func (m *BadgeEventMutation) ResetXpReward() {
	m.xp_reward = nil
	m.addxp_reward = nil
}

// SetSessionID sets the "session_id" field.
func (m *BadgeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *BadgeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the BadgeEvent entity.
// If the BadgeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *BadgeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the BadgeEventMutation builder.
func (m *BadgeEventMutation) Where(ps ...predicate.BadgeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BadgeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BadgeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BadgeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BadgeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BadgeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BadgeEvent).
func (m *BadgeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BadgeEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, badgeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, badgeevent.FieldTimestamp)
	}
	if m.badge_id != nil {
		fields = append(fields, badgeevent.FieldBadgeID)
	}
	if m.condition_kind != nil {
		fields = append(fields, badgeevent.FieldConditionKind)
	}
	if m.xp_reward != nil {
		fields = append(fields, badgeevent.FieldXpReward)
	}
	if m.session_id != nil {
		fields = append(fields, badgeevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BadgeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case badgeevent.FieldSequence:
		return m.Sequence()
	case badgeevent.FieldTimestamp:
		return m.Timestamp()
	case badgeevent.FieldBadgeID:
		return m.BadgeID()
	case badgeevent.FieldConditionKind:
		return m.ConditionKind()
	case badgeevent.FieldXpReward:
		return m.XpReward()
	case badgeevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BadgeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case badgeevent.FieldSequence:
		return m.OldSequence(ctx)
	case badgeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case badgeevent.FieldBadgeID:
		return m.OldBadgeID(ctx)
	case badgeevent.FieldConditionKind:
		return m.OldConditionKind(ctx)
	case badgeevent.FieldXpReward:
		return m.OldXpReward(ctx)
	case badgeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown BadgeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case badgeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case badgeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case badgeevent.FieldBadgeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadgeID(v)
		return nil
	case badgeevent.FieldConditionKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionKind(v)
		return nil
	case badgeevent.FieldXpReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpReward(v)
		return nil
	case badgeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown BadgeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BadgeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, badgeevent.FieldSequence)
	}
	if m.addxp_reward != nil {
		fields = append(fields, badgeevent.FieldXpReward)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BadgeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case badgeevent.FieldSequence:
		return m.AddedSequence()
	case badgeevent.FieldXpReward:
		return m.AddedXpReward()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case badgeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case badgeevent.FieldXpReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpReward(v)
		return nil
	}
	return fmt.Errorf("unknown BadgeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BadgeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BadgeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BadgeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BadgeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BadgeEventMutation) ResetField(name string) error {
	switch name {
	case badgeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case badgeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case badgeevent.FieldBadgeID:
		m.ResetBadgeID()
		return nil
	case badgeevent.FieldConditionKind:
		m.ResetConditionKind()
		return nil
	case badgeevent.FieldXpReward:
		m.ResetXpReward()
		return nil
	case badgeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown BadgeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BadgeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BadgeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BadgeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BadgeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BadgeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BadgeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BadgeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BadgeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BadgeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BadgeEvent edge %s", name)
}

// QuestEventMutation represents an operation that mutates the QuestEvent nodes in the graph.
type QuestEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	quest_id      *string
	action        *string
	event_type    *string
	amount        *int
	addamount     *int
	status        *string
	session_id    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuestEvent, error)
	predicates    []predicate.QuestEvent
}

var _ ent.Mutation = (*QuestEventMutation)(nil)

// questeventOption allows management of the mutation configuration using functional options.
type questeventOption func(*QuestEventMutation)

// newQuestEventMutation creates new mutation for the QuestEvent entity.
func newQuestEventMutation(c config, op Op, opts ...questeventOption) *QuestEventMutation {
	m := &QuestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestEventID sets the ID field of the mutation.
func withQuestEventID(id int) questeventOption {
	return func(m *QuestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestEvent
		)
		m.oldValue = func(ctx context.Context) (*QuestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestEvent sets the old QuestEvent of the mutation.
func withQuestEvent(node *QuestEvent) questeventOption {
	return func(m *QuestEventMutation) {
		m.oldValue = func(context.Context) (*QuestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuestEvent entity.
// If the QuestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuestEvent entity.
// If the QuestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *QuestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetQuestID sets the "quest_id" field.
func (m *QuestEventMutation) SetQuestID(s string) {
	m.quest_id = &s
}

// QuestID returns the value of the "quest_id" field in the mutation.
func (m *QuestEventMutation) QuestID() (r string, exists bool) {
	v := m.quest_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestID returns the old "quest_id" field's value of the QuestEvent entity.
// If the QuestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestEventMutation) OldQuestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestID: %w", err)
	}
	return oldValue.QuestID, nil
}

// ResetQuestID resets all changes to the "quest_id" field.
func (m *QuestEventMutation) ResetQuestID() {
	m.quest_id = nil
}

// SetAction sets the "action" field.
func (m *QuestEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *QuestEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the QuestEvent entity.
// If the QuestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *QuestEventMutation) ResetAction() {
	m.action = nil
}

// SetEventType sets the "event_type" field.
func (m *QuestEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *QuestEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the QuestEvent entity.
// If the QuestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *QuestEventMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[questevent.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *QuestEventMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[questevent.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *QuestEventMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, questevent.FieldEventType)
}

// SetAmount sets the "amount" field.
func (m *QuestEventMutation) SetAmount(i int) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *QuestEventMutation) Amount() (r int, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the QuestEvent entity.
// If the QuestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestEventMutation) OldAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *QuestEventMutation) AddAmount(i int) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *QuestEventMutation) AddedAmount() (r int, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *QuestEventMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetStatus sets the "status" field.
func (m *QuestEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *QuestEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QuestEvent entity.
// If the QuestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestEventMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *QuestEventMutation) ResetStatus() {
	m.status = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuestEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuestEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuestEvent entity.
// If the QuestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuestEventMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the QuestEventMutation builder.
func (m *QuestEventMutation) Where(ps ...predicate.QuestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestEvent).
func (m *QuestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, questevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, questevent.FieldTimestamp)
	}
	if m.quest_id != nil {
		fields = append(fields, questevent.FieldQuestID)
	}
	if m.action != nil {
		fields = append(fields, questevent.FieldAction)
	}
	if m.event_type != nil {
		fields = append(fields, questevent.FieldEventType)
	}
	if m.amount != nil {
		fields = append(fields, questevent.FieldAmount)
	}
	if m.status != nil {
		fields = append(fields, questevent.FieldStatus)
	}
	if m.session_id != nil {
		fields = append(fields, questevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questevent.FieldSequence:
		return m.Sequence()
	case questevent.FieldTimestamp:
		return m.Timestamp()
	case questevent.FieldQuestID:
		return m.QuestID()
	case questevent.FieldAction:
		return m.Action()
	case questevent.FieldEventType:
		return m.EventType()
	case questevent.FieldAmount:
		return m.Amount()
	case questevent.FieldStatus:
		return m.Status()
	case questevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questevent.FieldSequence:
		return m.OldSequence(ctx)
	case questevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case questevent.FieldQuestID:
		return m.OldQuestID(ctx)
	case questevent.FieldAction:
		return m.OldAction(ctx)
	case questevent.FieldEventType:
		return m.OldEventType(ctx)
	case questevent.FieldAmount:
		return m.OldAmount(ctx)
	case questevent.FieldStatus:
		return m.OldStatus(ctx)
	case questevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown QuestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case questevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case questevent.FieldQuestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestID(v)
		return nil
	case questevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case questevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case questevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case questevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case questevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown QuestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, questevent.FieldSequence)
	}
	if m.addamount != nil {
		fields = append(fields, questevent.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questevent.FieldSequence:
		return m.AddedSequence()
	case questevent.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case questevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown QuestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questevent.FieldEventType) {
		fields = append(fields, questevent.FieldEventType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestEventMutation) ClearField(name string) error {
	switch name {
	case questevent.FieldEventType:
		m.ClearEventType()
		return nil
	}
	return fmt.Errorf("unknown QuestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestEventMutation) ResetField(name string) error {
	switch name {
	case questevent.FieldSequence:
		m.ResetSequence()
		return nil
	case questevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case questevent.FieldQuestID:
		m.ResetQuestID()
		return nil
	case questevent.FieldAction:
		m.ResetAction()
		return nil
	case questevent.FieldEventType:
		m.ResetEventType()
		return nil
	case questevent.FieldAmount:
		m.ResetAmount()
		return nil
	case questevent.FieldStatus:
		m.ResetStatus()
		return nil
	case questevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown QuestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestEvent edge %s", name)
}

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	item_id          *string
	quality          *int
	addquality       *int
	interval_days    *int
	addinterval_days *int
	ease_factor      *float64
	addease_factor   *float64
	repetition       *int
	addrepetition    *int
	session_id       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ReviewEvent, error)
	predicates       []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReviewEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReviewEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReviewEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReviewEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReviewEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *ReviewEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetItemID sets the "item_id" field.
func (m *ReviewEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ReviewEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ReviewEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetQuality sets the "quality" field.
func (m *ReviewEventMutation) SetQuality(i int) {
	m.quality = &i
	m.addquality = nil
}

// Quality returns the value of the "quality" field in the mutation.
func (m *ReviewEventMutation) Quality() (r int, exists bool) {
	v := m.quality
	if v == nil {
		return
	}
	return *v, true
}

// OldQuality returns the old "quality" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldQuality(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuality: %w", err)
	}
	return oldValue.Quality, nil
}

// AddQuality adds i to the "quality" field.
func (m *ReviewEventMutation) AddQuality(i int) {
	if m.addquality != nil {
		*m.addquality += i
	} else {
		m.addquality = &i
	}
}

// AddedQuality returns the value that was added to the "quality" field in this mutation.
func (m *ReviewEventMutation) AddedQuality() (r int, exists bool) {
	v := m.addquality
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuality resets all changes to the "quality" field.
func (m *ReviewEventMutation) ResetQuality() {
	m.quality = nil
	m.addquality = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewEventMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewEventMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewEventMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewEventMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewEventMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *ReviewEventMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *ReviewEventMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *ReviewEventMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *ReviewEventMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *ReviewEventMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetRepetition sets the "repetition" field.
func (m *ReviewEventMutation) SetRepetition(i int) {
	m.repetition = &i
	m.addrepetition = nil
}

// Repetition returns the value of the "repetition" field in the mutation.
func (m *ReviewEventMutation) Repetition() (r int, exists bool) {
	v := m.repetition
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetition returns the old "repetition" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldRepetition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetition: %w", err)
	}
	return oldValue.Repetition, nil
}

// AddRepetition adds i to the "repetition" field.
func (m *ReviewEventMutation) AddRepetition(i int) {
	if m.addrepetition != nil {
		*m.addrepetition += i
	} else {
		m.addrepetition = &i
	}
}

// AddedRepetition returns the value that was added to the "repetition" field in this mutation.
func (m *ReviewEventMutation) AddedRepetition() (r int, exists bool) {
	v := m.addrepetition
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetition resets all changes to the "repetition" field.
func (m *ReviewEventMutation) ResetRepetition() {
	m.repetition = nil
	m.addrepetition = nil
}

// SetSessionID sets the "session_id" field.
func (m *ReviewEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ReviewEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ReviewEventMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewevent.FieldTimestamp)
	}
	if m.item_id != nil {
		fields = append(fields, reviewevent.FieldItemID)
	}
	if m.quality != nil {
		fields = append(fields, reviewevent.FieldQuality)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewevent.FieldIntervalDays)
	}
	if m.ease_factor != nil {
		fields = append(fields, reviewevent.FieldEaseFactor)
	}
	if m.repetition != nil {
		fields = append(fields, reviewevent.FieldRepetition)
	}
	if m.session_id != nil {
		fields = append(fields, reviewevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.Sequence()
	case reviewevent.FieldTimestamp:
		return m.Timestamp()
	case reviewevent.FieldItemID:
		return m.ItemID()
	case reviewevent.FieldQuality:
		return m.Quality()
	case reviewevent.FieldIntervalDays:
		return m.IntervalDays()
	case reviewevent.FieldEaseFactor:
		return m.EaseFactor()
	case reviewevent.FieldRepetition:
		return m.Repetition()
	case reviewevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldSequence:
		return m.OldSequence(ctx)
	case reviewevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case reviewevent.FieldItemID:
		return m.OldItemID(ctx)
	case reviewevent.FieldQuality:
		return m.OldQuality(ctx)
	case reviewevent.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewevent.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case reviewevent.FieldRepetition:
		return m.OldRepetition(ctx)
	case reviewevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case reviewevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case reviewevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case reviewevent.FieldQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuality(v)
		return nil
	case reviewevent.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewevent.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case reviewevent.FieldRepetition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetition(v)
		return nil
	case reviewevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.addquality != nil {
		fields = append(fields, reviewevent.FieldQuality)
	}
	if m.addinterval_days != nil {
		fields = append(fields, reviewevent.FieldIntervalDays)
	}
	if m.addease_factor != nil {
		fields = append(fields, reviewevent.FieldEaseFactor)
	}
	if m.addrepetition != nil {
		fields = append(fields, reviewevent.FieldRepetition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.AddedSequence()
	case reviewevent.FieldQuality:
		return m.AddedQuality()
	case reviewevent.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewevent.FieldEaseFactor:
		return m.AddedEaseFactor()
	case reviewevent.FieldRepetition:
		return m.AddedRepetition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case reviewevent.FieldQuality:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuality(v)
		return nil
	case reviewevent.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewevent.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case reviewevent.FieldRepetition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetition(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldSequence:
		m.ResetSequence()
		return nil
	case reviewevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case reviewevent.FieldItemID:
		m.ResetItemID()
		return nil
	case reviewevent.FieldQuality:
		m.ResetQuality()
		return nil
	case reviewevent.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewevent.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case reviewevent.FieldRepetition:
		m.ResetRepetition()
		return nil
	case reviewevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
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

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// XPEventMutation represents an operation that mutates the XPEvent nodes in the graph.
type XPEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	amount         *int
	addamount      *int
	reason         *string
	total_after    *int
	addtotal_after *int
	level_after    *int
	addlevel_after *int
	session_id     *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*XPEvent, error)
	predicates     []predicate.XPEvent
}

var _ ent.Mutation = (*XPEventMutation)(nil)

// xpeventOption allows management of the mutation configuration using functional options.
type xpeventOption func(*XPEventMutation)

// newXPEventMutation creates new mutation for the XPEvent entity.
func newXPEventMutation(c config, op Op, opts ...xpeventOption) *XPEventMutation {
	m := &XPEventMutation{
		config:        c,
		op:            op,
		typ:           TypeXPEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withXPEventID sets the ID field of the mutation.
func withXPEventID(id int) xpeventOption {
	return func(m *XPEventMutation) {
		var (
			err   error
			once  sync.Once
			value *XPEvent
		)
		m.oldValue = func(ctx context.Context) (*XPEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().XPEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withXPEvent sets the old XPEvent of the mutation.
func withXPEvent(node *XPEvent) xpeventOption {
	return func(m *XPEventMutation) {
		m.oldValue = func(context.Context) (*XPEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m XPEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m XPEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *XPEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *XPEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().XPEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *XPEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *XPEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *XPEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *XPEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *XPEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *XPEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *XPEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *XPEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAmount sets the "amount" field.
func (m *XPEventMutation) SetAmount(i int) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *XPEventMutation) Amount() (r int, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *XPEventMutation) AddAmount(i int) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *XPEventMutation) AddedAmount() (r int, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *XPEventMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetReason sets the "reason" field.
func (m *XPEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *XPEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *XPEventMutation) ResetReason() {
	m.reason = nil
}

// SetTotalAfter sets the "total_after" field.
func (m *XPEventMutation) SetTotalAfter(i int) {
	m.total_after = &i
	m.addtotal_after = nil
}

// TotalAfter returns the value of the "total_after" field in the mutation.
func (m *XPEventMutation) TotalAfter() (r int, exists bool) {
	v := m.total_after
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAfter returns the old "total_after" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldTotalAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAfter: %w", err)
	}
	return oldValue.TotalAfter, nil
}

// AddTotalAfter adds i to the "total_after" field.
func (m *XPEventMutation) AddTotalAfter(i int) {
	if m.addtotal_after != nil {
		*m.addtotal_after += i
	} else {
		m.addtotal_after = &i
	}
}

// AddedTotalAfter returns the value that was added to the "total_after" field in this mutation.
func (m *XPEventMutation) AddedTotalAfter() (r int, exists bool) {
	v := m.addtotal_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAfter resets all changes to the "total_after" field.
func (m *XPEventMutation) ResetTotalAfter() {
	m.total_after = nil
	m.addtotal_after = nil
}

// SetLevelAfter sets the "level_after" field.
func (m *XPEventMutation) SetLevelAfter(i int) {
	m.level_after = &i
	m.addlevel_after = nil
}

// LevelAfter returns the value of the "level_after" field in the mutation.
func (m *XPEventMutation) LevelAfter() (r int, exists bool) {
	v := m.level_after
	if v == nil {
		return
	}
	return *v, true
}

// OldLevelAfter returns the old "level_after" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldLevelAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevelAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevelAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevelAfter: %w", err)
	}
	return oldValue.LevelAfter, nil
}

// AddLevelAfter adds i to the "level_after" field.
func (m *XPEventMutation) AddLevelAfter(i int) {
	if m.addlevel_after != nil {
		*m.addlevel_after += i
	} else {
		m.addlevel_after = &i
	}
}

// AddedLevelAfter returns the value that was added to the "level_after" field in this mutation.
func (m *XPEventMutation) AddedLevelAfter() (r int, exists bool) {
	v := m.addlevel_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevelAfter resets all changes to the "level_after" field.
func (m *XPEventMutation) ResetLevelAfter() {
	m.level_after = nil
	m.addlevel_after = nil
}

// SetSessionID sets the "session_id" field.
func (m *XPEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *XPEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *XPEventMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the XPEventMutation builder.
func (m *XPEventMutation) Where(ps ...predicate.XPEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the XPEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *XPEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.XPEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *XPEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *XPEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (XPEvent).
func (m *XPEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *XPEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, xpevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, xpevent.FieldTimestamp)
	}
	if m.amount != nil {
		fields = append(fields, xpevent.FieldAmount)
	}
	if m.reason != nil {
		fields = append(fields, xpevent.FieldReason)
	}
	if m.total_after != nil {
		fields = append(fields, xpevent.FieldTotalAfter)
	}
	if m.level_after != nil {
		fields = append(fields, xpevent.FieldLevelAfter)
	}
	if m.session_id != nil {
		fields = append(fields, xpevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *XPEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case xpevent.FieldSequence:
		return m.Sequence()
	case xpevent.FieldTimestamp:
		return m.Timestamp()
	case xpevent.FieldAmount:
		return m.Amount()
	case xpevent.FieldReason:
		return m.Reason()
	case xpevent.FieldTotalAfter:
		return m.TotalAfter()
	case xpevent.FieldLevelAfter:
		return m.LevelAfter()
	case xpevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *XPEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case xpevent.FieldSequence:
		return m.OldSequence(ctx)
	case xpevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case xpevent.FieldAmount:
		return m.OldAmount(ctx)
	case xpevent.FieldReason:
		return m.OldReason(ctx)
	case xpevent.FieldTotalAfter:
		return m.OldTotalAfter(ctx)
	case xpevent.FieldLevelAfter:
		return m.OldLevelAfter(ctx)
	case xpevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown XPEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *XPEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case xpevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case xpevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case xpevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case xpevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case xpevent.FieldTotalAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAfter(v)
		return nil
	case xpevent.FieldLevelAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevelAfter(v)
		return nil
	case xpevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown XPEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *XPEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, xpevent.FieldSequence)
	}
	if m.addamount != nil {
		fields = append(fields, xpevent.FieldAmount)
	}
	if m.addtotal_after != nil {
		fields = append(fields, xpevent.FieldTotalAfter)
	}
	if m.addlevel_after != nil {
		fields = append(fields, xpevent.FieldLevelAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *XPEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case xpevent.FieldSequence:
		return m.AddedSequence()
	case xpevent.FieldAmount:
		return m.AddedAmount()
	case xpevent.FieldTotalAfter:
		return m.AddedTotalAfter()
	case xpevent.FieldLevelAfter:
		return m.AddedLevelAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *XPEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case xpevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case xpevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case xpevent.FieldTotalAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAfter(v)
		return nil
	case xpevent.FieldLevelAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevelAfter(v)
		return nil
	}
	return fmt.Errorf("unknown XPEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *XPEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *XPEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *XPEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown XPEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *XPEventMutation) ResetField(name string) error {
	switch name {
	case xpevent.FieldSequence:
		m.ResetSequence()
		return nil
	case xpevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case xpevent.FieldAmount:
		m.ResetAmount()
		return nil
	case xpevent.FieldReason:
		m.ResetReason()
		return nil
	case xpevent.FieldTotalAfter:
		m.ResetTotalAfter()
		return nil
	case xpevent.FieldLevelAfter:
		m.ResetLevelAfter()
		return nil
	case xpevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown XPEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *XPEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *XPEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *XPEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *XPEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *XPEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *XPEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *XPEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown XPEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *XPEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown XPEvent edge %s", name)
}
