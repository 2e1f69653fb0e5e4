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
	"github.com/abelsk/learnpulse/ent/curvesummary"
	"github.com/abelsk/learnpulse/ent/performancerow"
	"github.com/abelsk/learnpulse/ent/predicate"
	"github.com/abelsk/learnpulse/ent/reportrecord"
	"github.com/abelsk/learnpulse/ent/seriespoint"
	"github.com/abelsk/learnpulse/ent/submissionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCurveSummary    = "CurveSummary"
	TypePerformanceRow  = "PerformanceRow"
	TypeReportRecord    = "ReportRecord"
	TypeSeriesPoint     = "SeriesPoint"
	TypeSubmissionEvent = "SubmissionEvent"
)

// CurveSummaryMutation represents an operation that mutates the CurveSummary nodes in the graph.
type CurveSummaryMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	easing_label       *string
	frontload_index    *float64
	addfrontload_index *float64
	consistency        *float64
	addconsistency     *float64
	burstiness         *float64
	addburstiness      *float64
	t25                *float64
	addt25             *float64
	t50                *float64
	addt50             *float64
	t75                *float64
	addt75             *float64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CurveSummary, error)
	predicates         []predicate.CurveSummary
}

var _ ent.Mutation = (*CurveSummaryMutation)(nil)

// curvesummaryOption allows management of the mutation configuration using functional options.
type curvesummaryOption func(*CurveSummaryMutation)

// newCurveSummaryMutation creates new mutation for the CurveSummary entity.
func newCurveSummaryMutation(c config, op Op, opts ...curvesummaryOption) *CurveSummaryMutation {
	m := &CurveSummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeCurveSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCurveSummaryID sets the ID field of the mutation.
func withCurveSummaryID(id int) curvesummaryOption {
	return func(m *CurveSummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *CurveSummary
		)
		m.oldValue = func(ctx context.Context) (*CurveSummary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CurveSummary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCurveSummary sets the old CurveSummary of the mutation.
func withCurveSummary(node *CurveSummary) curvesummaryOption {
	return func(m *CurveSummaryMutation) {
		m.oldValue = func(context.Context) (*CurveSummary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CurveSummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CurveSummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CurveSummaryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CurveSummaryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CurveSummary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CurveSummaryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CurveSummaryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CurveSummary entity.
// If the CurveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurveSummaryMutation) OldUserID(ctx context.Context) (v string, err error) {
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
func (m *CurveSummaryMutation) ResetUserID() {
	m.user_id = nil
}

// SetEasingLabel sets the "easing_label" field.
func (m *CurveSummaryMutation) SetEasingLabel(s string) {
	m.easing_label = &s
}

// EasingLabel returns the value of the "easing_label" field in the mutation.
func (m *CurveSummaryMutation) EasingLabel() (r string, exists bool) {
	v := m.easing_label
	if v == nil {
		return
	}
	return *v, true
}

// OldEasingLabel returns the old "easing_label" field's value of the CurveSummary entity.
// If the CurveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurveSummaryMutation) OldEasingLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEasingLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEasingLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEasingLabel: %w", err)
	}
	return oldValue.EasingLabel, nil
}

// ResetEasingLabel resets all changes to the "easing_label" field.
func (m *CurveSummaryMutation) ResetEasingLabel() {
	m.easing_label = nil
}

// SetFrontloadIndex sets the "frontload_index" field.
func (m *CurveSummaryMutation) SetFrontloadIndex(f float64) {
	m.frontload_index = &f
	m.addfrontload_index = nil
}

// FrontloadIndex returns the value of the "frontload_index" field in the mutation.
func (m *CurveSummaryMutation) FrontloadIndex() (r float64, exists bool) {
	v := m.frontload_index
	if v == nil {
		return
	}
	return *v, true
}

// OldFrontloadIndex returns the old "frontload_index" field's value of the CurveSummary entity.
// If the CurveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurveSummaryMutation) OldFrontloadIndex(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrontloadIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrontloadIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrontloadIndex: %w", err)
	}
	return oldValue.FrontloadIndex, nil
}

// AddFrontloadIndex adds f to the "frontload_index" field.
func (m *CurveSummaryMutation) AddFrontloadIndex(f float64) {
	if m.addfrontload_index != nil {
		*m.addfrontload_index += f
	} else {
		m.addfrontload_index = &f
	}
}

// AddedFrontloadIndex returns the value that was added to the "frontload_index" field in this mutation.
func (m *CurveSummaryMutation) AddedFrontloadIndex() (r float64, exists bool) {
	v := m.addfrontload_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrontloadIndex resets all changes to the "frontload_index" field.
func (m *CurveSummaryMutation) ResetFrontloadIndex() {
	m.frontload_index = nil
	m.addfrontload_index = nil
}

// SetConsistency sets the "consistency" field.
func (m *CurveSummaryMutation) SetConsistency(f float64) {
	m.consistency = &f
	m.addconsistency = nil
}

// Consistency returns the value of the "consistency" field in the mutation.
func (m *CurveSummaryMutation) Consistency() (r float64, exists bool) {
	v := m.consistency
	if v == nil {
		return
	}
	return *v, true
}

// OldConsistency returns the old "consistency" field's value of the CurveSummary entity.
// If the CurveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurveSummaryMutation) OldConsistency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsistency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsistency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsistency: %w", err)
	}
	return oldValue.Consistency, nil
}

// AddConsistency adds f to the "consistency" field.
func (m *CurveSummaryMutation) AddConsistency(f float64) {
	if m.addconsistency != nil {
		*m.addconsistency += f
	} else {
		m.addconsistency = &f
	}
}

// AddedConsistency returns the value that was added to the "consistency" field in this mutation.
func (m *CurveSummaryMutation) AddedConsistency() (r float64, exists bool) {
	v := m.addconsistency
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsistency resets all changes to the "consistency" field.
func (m *CurveSummaryMutation) ResetConsistency() {
	m.consistency = nil
	m.addconsistency = nil
}

// SetBurstiness sets the "burstiness" field.
func (m *CurveSummaryMutation) SetBurstiness(f float64) {
	m.burstiness = &f
	m.addburstiness = nil
}

// Burstiness returns the value of the "burstiness" field in the mutation.
func (m *CurveSummaryMutation) Burstiness() (r float64, exists bool) {
	v := m.burstiness
	if v == nil {
		return
	}
	return *v, true
}

// OldBurstiness returns the old "burstiness" field's value of the CurveSummary entity.
// If the CurveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurveSummaryMutation) OldBurstiness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBurstiness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBurstiness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBurstiness: %w", err)
	}
	return oldValue.Burstiness, nil
}

// AddBurstiness adds f to the "burstiness" field.
func (m *CurveSummaryMutation) AddBurstiness(f float64) {
	if m.addburstiness != nil {
		*m.addburstiness += f
	} else {
		m.addburstiness = &f
	}
}

// AddedBurstiness returns the value that was added to the "burstiness" field in this mutation.
func (m *CurveSummaryMutation) AddedBurstiness() (r float64, exists bool) {
	v := m.addburstiness
	if v == nil {
		return
	}
	return *v, true
}

// ResetBurstiness resets all changes to the "burstiness" field.
func (m *CurveSummaryMutation) ResetBurstiness() {
	m.burstiness = nil
	m.addburstiness = nil
}

// SetT25 sets the "t25" field.
func (m *CurveSummaryMutation) SetT25(f float64) {
	m.t25 = &f
	m.addt25 = nil
}

// T25 returns the value of the "t25" field in the mutation.
func (m *CurveSummaryMutation) T25() (r float64, exists bool) {
	v := m.t25
	if v == nil {
		return
	}
	return *v, true
}

// OldT25 returns the old "t25" field's value of the CurveSummary entity.
// If the CurveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurveSummaryMutation) OldT25(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldT25 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldT25 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldT25: %w", err)
	}
	return oldValue.T25, nil
}

// AddT25 adds f to the "t25" field.
func (m *CurveSummaryMutation) AddT25(f float64) {
	if m.addt25 != nil {
		*m.addt25 += f
	} else {
		m.addt25 = &f
	}
}

// AddedT25 returns the value that was added to the "t25" field in this mutation.
func (m *CurveSummaryMutation) AddedT25() (r float64, exists bool) {
	v := m.addt25
	if v == nil {
		return
	}
	return *v, true
}

// ResetT25 resets all changes to the "t25" field.
func (m *CurveSummaryMutation) ResetT25() {
	m.t25 = nil
	m.addt25 = nil
}

// SetT50 sets the "t50" field.
func (m *CurveSummaryMutation) SetT50(f float64) {
	m.t50 = &f
	m.addt50 = nil
}

// T50 returns the value of the "t50" field in the mutation.
func (m *CurveSummaryMutation) T50() (r float64, exists bool) {
	v := m.t50
	if v == nil {
		return
	}
	return *v, true
}

// OldT50 returns the old "t50" field's value of the CurveSummary entity.
// If the CurveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurveSummaryMutation) OldT50(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldT50 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldT50 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldT50: %w", err)
	}
	return oldValue.T50, nil
}

// AddT50 adds f to the "t50" field.
func (m *CurveSummaryMutation) AddT50(f float64) {
	if m.addt50 != nil {
		*m.addt50 += f
	} else {
		m.addt50 = &f
	}
}

// AddedT50 returns the value that was added to the "t50" field in this mutation.
func (m *CurveSummaryMutation) AddedT50() (r float64, exists bool) {
	v := m.addt50
	if v == nil {
		return
	}
	return *v, true
}

// ResetT50 resets all changes to the "t50" field.
func (m *CurveSummaryMutation) ResetT50() {
	m.t50 = nil
	m.addt50 = nil
}

// SetT75 sets the "t75" field.
func (m *CurveSummaryMutation) SetT75(f float64) {
	m.t75 = &f
	m.addt75 = nil
}

// T75 returns the value of the "t75" field in the mutation.
func (m *CurveSummaryMutation) T75() (r float64, exists bool) {
	v := m.t75
	if v == nil {
		return
	}
	return *v, true
}

// OldT75 returns the old "t75" field's value of the CurveSummary entity.
// If the CurveSummary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CurveSummaryMutation) OldT75(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldT75 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldT75 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldT75: %w", err)
	}
	return oldValue.T75, nil
}

// AddT75 adds f to the "t75" field.
func (m *CurveSummaryMutation) AddT75(f float64) {
	if m.addt75 != nil {
		*m.addt75 += f
	} else {
		m.addt75 = &f
	}
}

// AddedT75 returns the value that was added to the "t75" field in this mutation.
func (m *CurveSummaryMutation) AddedT75() (r float64, exists bool) {
	v := m.addt75
	if v == nil {
		return
	}
	return *v, true
}

// ResetT75 resets all changes to the "t75" field.
func (m *CurveSummaryMutation) ResetT75() {
	m.t75 = nil
	m.addt75 = nil
}

// Where appends a list predicates to the CurveSummaryMutation builder.
func (m *CurveSummaryMutation) Where(ps ...predicate.CurveSummary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CurveSummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CurveSummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CurveSummary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CurveSummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CurveSummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CurveSummary).
func (m *CurveSummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CurveSummaryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, curvesummary.FieldUserID)
	}
	if m.easing_label != nil {
		fields = append(fields, curvesummary.FieldEasingLabel)
	}
	if m.frontload_index != nil {
		fields = append(fields, curvesummary.FieldFrontloadIndex)
	}
	if m.consistency != nil {
		fields = append(fields, curvesummary.FieldConsistency)
	}
	if m.burstiness != nil {
		fields = append(fields, curvesummary.FieldBurstiness)
	}
	if m.t25 != nil {
		fields = append(fields, curvesummary.FieldT25)
	}
	if m.t50 != nil {
		fields = append(fields, curvesummary.FieldT50)
	}
	if m.t75 != nil {
		fields = append(fields, curvesummary.FieldT75)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CurveSummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case curvesummary.FieldUserID:
		return m.UserID()
	case curvesummary.FieldEasingLabel:
		return m.EasingLabel()
	case curvesummary.FieldFrontloadIndex:
		return m.FrontloadIndex()
	case curvesummary.FieldConsistency:
		return m.Consistency()
	case curvesummary.FieldBurstiness:
		return m.Burstiness()
	case curvesummary.FieldT25:
		return m.T25()
	case curvesummary.FieldT50:
		return m.T50()
	case curvesummary.FieldT75:
		return m.T75()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CurveSummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case curvesummary.FieldUserID:
		return m.OldUserID(ctx)
	case curvesummary.FieldEasingLabel:
		return m.OldEasingLabel(ctx)
	case curvesummary.FieldFrontloadIndex:
		return m.OldFrontloadIndex(ctx)
	case curvesummary.FieldConsistency:
		return m.OldConsistency(ctx)
	case curvesummary.FieldBurstiness:
		return m.OldBurstiness(ctx)
	case curvesummary.FieldT25:
		return m.OldT25(ctx)
	case curvesummary.FieldT50:
		return m.OldT50(ctx)
	case curvesummary.FieldT75:
		return m.OldT75(ctx)
	}
	return nil, fmt.Errorf("unknown CurveSummary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurveSummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case curvesummary.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case curvesummary.FieldEasingLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEasingLabel(v)
		return nil
	case curvesummary.FieldFrontloadIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrontloadIndex(v)
		return nil
	case curvesummary.FieldConsistency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsistency(v)
		return nil
	case curvesummary.FieldBurstiness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBurstiness(v)
		return nil
	case curvesummary.FieldT25:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetT25(v)
		return nil
	case curvesummary.FieldT50:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetT50(v)
		return nil
	case curvesummary.FieldT75:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetT75(v)
		return nil
	}
	return fmt.Errorf("unknown CurveSummary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CurveSummaryMutation) AddedFields() []string {
	var fields []string
	if m.addfrontload_index != nil {
		fields = append(fields, curvesummary.FieldFrontloadIndex)
	}
	if m.addconsistency != nil {
		fields = append(fields, curvesummary.FieldConsistency)
	}
	if m.addburstiness != nil {
		fields = append(fields, curvesummary.FieldBurstiness)
	}
	if m.addt25 != nil {
		fields = append(fields, curvesummary.FieldT25)
	}
	if m.addt50 != nil {
		fields = append(fields, curvesummary.FieldT50)
	}
	if m.addt75 != nil {
		fields = append(fields, curvesummary.FieldT75)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CurveSummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case curvesummary.FieldFrontloadIndex:
		return m.AddedFrontloadIndex()
	case curvesummary.FieldConsistency:
		return m.AddedConsistency()
	case curvesummary.FieldBurstiness:
		return m.AddedBurstiness()
	case curvesummary.FieldT25:
		return m.AddedT25()
	case curvesummary.FieldT50:
		return m.AddedT50()
	case curvesummary.FieldT75:
		return m.AddedT75()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CurveSummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case curvesummary.FieldFrontloadIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrontloadIndex(v)
		return nil
	case curvesummary.FieldConsistency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsistency(v)
		return nil
	case curvesummary.FieldBurstiness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBurstiness(v)
		return nil
	case curvesummary.FieldT25:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddT25(v)
		return nil
	case curvesummary.FieldT50:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddT50(v)
		return nil
	case curvesummary.FieldT75:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddT75(v)
		return nil
	}
	return fmt.Errorf("unknown CurveSummary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CurveSummaryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CurveSummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CurveSummaryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CurveSummary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CurveSummaryMutation) ResetField(name string) error {
	switch name {
	case curvesummary.FieldUserID:
		m.ResetUserID()
		return nil
	case curvesummary.FieldEasingLabel:
		m.ResetEasingLabel()
		return nil
	case curvesummary.FieldFrontloadIndex:
		m.ResetFrontloadIndex()
		return nil
	case curvesummary.FieldConsistency:
		m.ResetConsistency()
		return nil
	case curvesummary.FieldBurstiness:
		m.ResetBurstiness()
		return nil
	case curvesummary.FieldT25:
		m.ResetT25()
		return nil
	case curvesummary.FieldT50:
		m.ResetT50()
		return nil
	case curvesummary.FieldT75:
		m.ResetT75()
		return nil
	}
	return fmt.Errorf("unknown CurveSummary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CurveSummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CurveSummaryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CurveSummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CurveSummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CurveSummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CurveSummaryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CurveSummaryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CurveSummary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CurveSummaryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CurveSummary edge %s", name)
}

// PerformanceRowMutation represents an operation that mutates the PerformanceRow nodes in the graph.
type PerformanceRowMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	user_id                  *string
	segment                  *string
	total_pct                *float64
	addtotal_pct             *float64
	success_rate             *float64
	addsuccess_rate          *float64
	consistency_index        *float64
	addconsistency_index     *float64
	struggle_index           *float64
	addstruggle_index        *float64
	effort_index             *float64
	addeffort_index          *float64
	active_days_ratio        *float64
	addactive_days_ratio     *float64
	meetings_attended_pct    *float64
	addmeetings_attended_pct *float64
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*PerformanceRow, error)
	predicates               []predicate.PerformanceRow
}

var _ ent.Mutation = (*PerformanceRowMutation)(nil)

// performancerowOption allows management of the mutation configuration using functional options.
type performancerowOption func(*PerformanceRowMutation)

// newPerformanceRowMutation creates new mutation for the PerformanceRow entity.
func newPerformanceRowMutation(c config, op Op, opts ...performancerowOption) *PerformanceRowMutation {
	m := &PerformanceRowMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceRow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceRowID sets the ID field of the mutation.
func withPerformanceRowID(id int) performancerowOption {
	return func(m *PerformanceRowMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceRow
		)
		m.oldValue = func(ctx context.Context) (*PerformanceRow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceRow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceRow sets the old PerformanceRow of the mutation.
func withPerformanceRow(node *PerformanceRow) performancerowOption {
	return func(m *PerformanceRowMutation) {
		m.oldValue = func(context.Context) (*PerformanceRow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceRowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceRowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceRowMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceRowMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceRow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PerformanceRowMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PerformanceRowMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldUserID(ctx context.Context) (v string, err error) {
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
func (m *PerformanceRowMutation) ResetUserID() {
	m.user_id = nil
}

// SetSegment sets the "segment" field.
func (m *PerformanceRowMutation) SetSegment(s string) {
	m.segment = &s
}

// Segment returns the value of the "segment" field in the mutation.
func (m *PerformanceRowMutation) Segment() (r string, exists bool) {
	v := m.segment
	if v == nil {
		return
	}
	return *v, true
}

// OldSegment returns the old "segment" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldSegment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegment: %w", err)
	}
	return oldValue.Segment, nil
}

// ResetSegment resets all changes to the "segment" field.
func (m *PerformanceRowMutation) ResetSegment() {
	m.segment = nil
}

// SetTotalPct sets the "total_pct" field.
func (m *PerformanceRowMutation) SetTotalPct(f float64) {
	m.total_pct = &f
	m.addtotal_pct = nil
}

// TotalPct returns the value of the "total_pct" field in the mutation.
func (m *PerformanceRowMutation) TotalPct() (r float64, exists bool) {
	v := m.total_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPct returns the old "total_pct" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldTotalPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPct: %w", err)
	}
	return oldValue.TotalPct, nil
}

// AddTotalPct adds f to the "total_pct" field.
func (m *PerformanceRowMutation) AddTotalPct(f float64) {
	if m.addtotal_pct != nil {
		*m.addtotal_pct += f
	} else {
		m.addtotal_pct = &f
	}
}

// AddedTotalPct returns the value that was added to the "total_pct" field in this mutation.
func (m *PerformanceRowMutation) AddedTotalPct() (r float64, exists bool) {
	v := m.addtotal_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPct resets all changes to the "total_pct" field.
func (m *PerformanceRowMutation) ResetTotalPct() {
	m.total_pct = nil
	m.addtotal_pct = nil
}

// SetSuccessRate sets the "success_rate" field.
func (m *PerformanceRowMutation) SetSuccessRate(f float64) {
	m.success_rate = &f
	m.addsuccess_rate = nil
}

// SuccessRate returns the value of the "success_rate" field in the mutation.
func (m *PerformanceRowMutation) SuccessRate() (r float64, exists bool) {
	v := m.success_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessRate returns the old "success_rate" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldSuccessRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessRate: %w", err)
	}
	return oldValue.SuccessRate, nil
}

// AddSuccessRate adds f to the "success_rate" field.
func (m *PerformanceRowMutation) AddSuccessRate(f float64) {
	if m.addsuccess_rate != nil {
		*m.addsuccess_rate += f
	} else {
		m.addsuccess_rate = &f
	}
}

// AddedSuccessRate returns the value that was added to the "success_rate" field in this mutation.
func (m *PerformanceRowMutation) AddedSuccessRate() (r float64, exists bool) {
	v := m.addsuccess_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessRate resets all changes to the "success_rate" field.
func (m *PerformanceRowMutation) ResetSuccessRate() {
	m.success_rate = nil
	m.addsuccess_rate = nil
}

// SetConsistencyIndex sets the "consistency_index" field.
func (m *PerformanceRowMutation) SetConsistencyIndex(f float64) {
	m.consistency_index = &f
	m.addconsistency_index = nil
}

// ConsistencyIndex returns the value of the "consistency_index" field in the mutation.
func (m *PerformanceRowMutation) ConsistencyIndex() (r float64, exists bool) {
	v := m.consistency_index
	if v == nil {
		return
	}
	return *v, true
}

// OldConsistencyIndex returns the old "consistency_index" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldConsistencyIndex(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsistencyIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsistencyIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsistencyIndex: %w", err)
	}
	return oldValue.ConsistencyIndex, nil
}

// AddConsistencyIndex adds f to the "consistency_index" field.
func (m *PerformanceRowMutation) AddConsistencyIndex(f float64) {
	if m.addconsistency_index != nil {
		*m.addconsistency_index += f
	} else {
		m.addconsistency_index = &f
	}
}

// AddedConsistencyIndex returns the value that was added to the "consistency_index" field in this mutation.
func (m *PerformanceRowMutation) AddedConsistencyIndex() (r float64, exists bool) {
	v := m.addconsistency_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsistencyIndex resets all changes to the "consistency_index" field.
func (m *PerformanceRowMutation) ResetConsistencyIndex() {
	m.consistency_index = nil
	m.addconsistency_index = nil
}

// SetStruggleIndex sets the "struggle_index" field.
func (m *PerformanceRowMutation) SetStruggleIndex(f float64) {
	m.struggle_index = &f
	m.addstruggle_index = nil
}

// StruggleIndex returns the value of the "struggle_index" field in the mutation.
func (m *PerformanceRowMutation) StruggleIndex() (r float64, exists bool) {
	v := m.struggle_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStruggleIndex returns the old "struggle_index" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldStruggleIndex(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStruggleIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStruggleIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStruggleIndex: %w", err)
	}
	return oldValue.StruggleIndex, nil
}

// AddStruggleIndex adds f to the "struggle_index" field.
func (m *PerformanceRowMutation) AddStruggleIndex(f float64) {
	if m.addstruggle_index != nil {
		*m.addstruggle_index += f
	} else {
		m.addstruggle_index = &f
	}
}

// AddedStruggleIndex returns the value that was added to the "struggle_index" field in this mutation.
func (m *PerformanceRowMutation) AddedStruggleIndex() (r float64, exists bool) {
	v := m.addstruggle_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStruggleIndex resets all changes to the "struggle_index" field.
func (m *PerformanceRowMutation) ResetStruggleIndex() {
	m.struggle_index = nil
	m.addstruggle_index = nil
}

// SetEffortIndex sets the "effort_index" field.
func (m *PerformanceRowMutation) SetEffortIndex(f float64) {
	m.effort_index = &f
	m.addeffort_index = nil
}

// EffortIndex returns the value of the "effort_index" field in the mutation.
func (m *PerformanceRowMutation) EffortIndex() (r float64, exists bool) {
	v := m.effort_index
	if v == nil {
		return
	}
	return *v, true
}

// OldEffortIndex returns the old "effort_index" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldEffortIndex(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffortIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffortIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffortIndex: %w", err)
	}
	return oldValue.EffortIndex, nil
}

// AddEffortIndex adds f to the "effort_index" field.
func (m *PerformanceRowMutation) AddEffortIndex(f float64) {
	if m.addeffort_index != nil {
		*m.addeffort_index += f
	} else {
		m.addeffort_index = &f
	}
}

// AddedEffortIndex returns the value that was added to the "effort_index" field in this mutation.
func (m *PerformanceRowMutation) AddedEffortIndex() (r float64, exists bool) {
	v := m.addeffort_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetEffortIndex resets all changes to the "effort_index" field.
func (m *PerformanceRowMutation) ResetEffortIndex() {
	m.effort_index = nil
	m.addeffort_index = nil
}

// SetActiveDaysRatio sets the "active_days_ratio" field.
func (m *PerformanceRowMutation) SetActiveDaysRatio(f float64) {
	m.active_days_ratio = &f
	m.addactive_days_ratio = nil
}

// ActiveDaysRatio returns the value of the "active_days_ratio" field in the mutation.
func (m *PerformanceRowMutation) ActiveDaysRatio() (r float64, exists bool) {
	v := m.active_days_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveDaysRatio returns the old "active_days_ratio" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldActiveDaysRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveDaysRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveDaysRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveDaysRatio: %w", err)
	}
	return oldValue.ActiveDaysRatio, nil
}

// AddActiveDaysRatio adds f to the "active_days_ratio" field.
func (m *PerformanceRowMutation) AddActiveDaysRatio(f float64) {
	if m.addactive_days_ratio != nil {
		*m.addactive_days_ratio += f
	} else {
		m.addactive_days_ratio = &f
	}
}

// AddedActiveDaysRatio returns the value that was added to the "active_days_ratio" field in this mutation.
func (m *PerformanceRowMutation) AddedActiveDaysRatio() (r float64, exists bool) {
	v := m.addactive_days_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveDaysRatio resets all changes to the "active_days_ratio" field.
func (m *PerformanceRowMutation) ResetActiveDaysRatio() {
	m.active_days_ratio = nil
	m.addactive_days_ratio = nil
}

// SetMeetingsAttendedPct sets the "meetings_attended_pct" field.
func (m *PerformanceRowMutation) SetMeetingsAttendedPct(f float64) {
	m.meetings_attended_pct = &f
	m.addmeetings_attended_pct = nil
}

// MeetingsAttendedPct returns the value of the "meetings_attended_pct" field in the mutation.
func (m *PerformanceRowMutation) MeetingsAttendedPct() (r float64, exists bool) {
	v := m.meetings_attended_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingsAttendedPct returns the old "meetings_attended_pct" field's value of the PerformanceRow entity.
// If the PerformanceRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceRowMutation) OldMeetingsAttendedPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingsAttendedPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingsAttendedPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingsAttendedPct: %w", err)
	}
	return oldValue.MeetingsAttendedPct, nil
}

// AddMeetingsAttendedPct adds f to the "meetings_attended_pct" field.
func (m *PerformanceRowMutation) AddMeetingsAttendedPct(f float64) {
	if m.addmeetings_attended_pct != nil {
		*m.addmeetings_attended_pct += f
	} else {
		m.addmeetings_attended_pct = &f
	}
}

// AddedMeetingsAttendedPct returns the value that was added to the "meetings_attended_pct" field in this mutation.
func (m *PerformanceRowMutation) AddedMeetingsAttendedPct() (r float64, exists bool) {
	v := m.addmeetings_attended_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetMeetingsAttendedPct resets all changes to the "meetings_attended_pct" field.
func (m *PerformanceRowMutation) ResetMeetingsAttendedPct() {
	m.meetings_attended_pct = nil
	m.addmeetings_attended_pct = nil
}

// Where appends a list predicates to the PerformanceRowMutation builder.
func (m *PerformanceRowMutation) Where(ps ...predicate.PerformanceRow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceRowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceRowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceRow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceRowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceRowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceRow).
func (m *PerformanceRowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceRowMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, performancerow.FieldUserID)
	}
	if m.segment != nil {
		fields = append(fields, performancerow.FieldSegment)
	}
	if m.total_pct != nil {
		fields = append(fields, performancerow.FieldTotalPct)
	}
	if m.success_rate != nil {
		fields = append(fields, performancerow.FieldSuccessRate)
	}
	if m.consistency_index != nil {
		fields = append(fields, performancerow.FieldConsistencyIndex)
	}
	if m.struggle_index != nil {
		fields = append(fields, performancerow.FieldStruggleIndex)
	}
	if m.effort_index != nil {
		fields = append(fields, performancerow.FieldEffortIndex)
	}
	if m.active_days_ratio != nil {
		fields = append(fields, performancerow.FieldActiveDaysRatio)
	}
	if m.meetings_attended_pct != nil {
		fields = append(fields, performancerow.FieldMeetingsAttendedPct)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceRowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performancerow.FieldUserID:
		return m.UserID()
	case performancerow.FieldSegment:
		return m.Segment()
	case performancerow.FieldTotalPct:
		return m.TotalPct()
	case performancerow.FieldSuccessRate:
		return m.SuccessRate()
	case performancerow.FieldConsistencyIndex:
		return m.ConsistencyIndex()
	case performancerow.FieldStruggleIndex:
		return m.StruggleIndex()
	case performancerow.FieldEffortIndex:
		return m.EffortIndex()
	case performancerow.FieldActiveDaysRatio:
		return m.ActiveDaysRatio()
	case performancerow.FieldMeetingsAttendedPct:
		return m.MeetingsAttendedPct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceRowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performancerow.FieldUserID:
		return m.OldUserID(ctx)
	case performancerow.FieldSegment:
		return m.OldSegment(ctx)
	case performancerow.FieldTotalPct:
		return m.OldTotalPct(ctx)
	case performancerow.FieldSuccessRate:
		return m.OldSuccessRate(ctx)
	case performancerow.FieldConsistencyIndex:
		return m.OldConsistencyIndex(ctx)
	case performancerow.FieldStruggleIndex:
		return m.OldStruggleIndex(ctx)
	case performancerow.FieldEffortIndex:
		return m.OldEffortIndex(ctx)
	case performancerow.FieldActiveDaysRatio:
		return m.OldActiveDaysRatio(ctx)
	case performancerow.FieldMeetingsAttendedPct:
		return m.OldMeetingsAttendedPct(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceRow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceRowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performancerow.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case performancerow.FieldSegment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegment(v)
		return nil
	case performancerow.FieldTotalPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPct(v)
		return nil
	case performancerow.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessRate(v)
		return nil
	case performancerow.FieldConsistencyIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsistencyIndex(v)
		return nil
	case performancerow.FieldStruggleIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStruggleIndex(v)
		return nil
	case performancerow.FieldEffortIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffortIndex(v)
		return nil
	case performancerow.FieldActiveDaysRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveDaysRatio(v)
		return nil
	case performancerow.FieldMeetingsAttendedPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingsAttendedPct(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceRow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceRowMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_pct != nil {
		fields = append(fields, performancerow.FieldTotalPct)
	}
	if m.addsuccess_rate != nil {
		fields = append(fields, performancerow.FieldSuccessRate)
	}
	if m.addconsistency_index != nil {
		fields = append(fields, performancerow.FieldConsistencyIndex)
	}
	if m.addstruggle_index != nil {
		fields = append(fields, performancerow.FieldStruggleIndex)
	}
	if m.addeffort_index != nil {
		fields = append(fields, performancerow.FieldEffortIndex)
	}
	if m.addactive_days_ratio != nil {
		fields = append(fields, performancerow.FieldActiveDaysRatio)
	}
	if m.addmeetings_attended_pct != nil {
		fields = append(fields, performancerow.FieldMeetingsAttendedPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceRowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performancerow.FieldTotalPct:
		return m.AddedTotalPct()
	case performancerow.FieldSuccessRate:
		return m.AddedSuccessRate()
	case performancerow.FieldConsistencyIndex:
		return m.AddedConsistencyIndex()
	case performancerow.FieldStruggleIndex:
		return m.AddedStruggleIndex()
	case performancerow.FieldEffortIndex:
		return m.AddedEffortIndex()
	case performancerow.FieldActiveDaysRatio:
		return m.AddedActiveDaysRatio()
	case performancerow.FieldMeetingsAttendedPct:
		return m.AddedMeetingsAttendedPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceRowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performancerow.FieldTotalPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPct(v)
		return nil
	case performancerow.FieldSuccessRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessRate(v)
		return nil
	case performancerow.FieldConsistencyIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsistencyIndex(v)
		return nil
	case performancerow.FieldStruggleIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStruggleIndex(v)
		return nil
	case performancerow.FieldEffortIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEffortIndex(v)
		return nil
	case performancerow.FieldActiveDaysRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveDaysRatio(v)
		return nil
	case performancerow.FieldMeetingsAttendedPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMeetingsAttendedPct(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceRow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceRowMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceRowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceRowMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PerformanceRow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceRowMutation) ResetField(name string) error {
	switch name {
	case performancerow.FieldUserID:
		m.ResetUserID()
		return nil
	case performancerow.FieldSegment:
		m.ResetSegment()
		return nil
	case performancerow.FieldTotalPct:
		m.ResetTotalPct()
		return nil
	case performancerow.FieldSuccessRate:
		m.ResetSuccessRate()
		return nil
	case performancerow.FieldConsistencyIndex:
		m.ResetConsistencyIndex()
		return nil
	case performancerow.FieldStruggleIndex:
		m.ResetStruggleIndex()
		return nil
	case performancerow.FieldEffortIndex:
		m.ResetEffortIndex()
		return nil
	case performancerow.FieldActiveDaysRatio:
		m.ResetActiveDaysRatio()
		return nil
	case performancerow.FieldMeetingsAttendedPct:
		m.ResetMeetingsAttendedPct()
		return nil
	}
	return fmt.Errorf("unknown PerformanceRow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceRowMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceRowMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceRowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceRowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceRowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceRowMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceRowMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PerformanceRow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceRowMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PerformanceRow edge %s", name)
}

// ReportRecordMutation represents an operation that mutates the ReportRecord nodes in the graph.
type ReportRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	report_id     *string
	user_id       *string
	generated_at  *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ReportRecord, error)
	predicates    []predicate.ReportRecord
}

var _ ent.Mutation = (*ReportRecordMutation)(nil)

// reportrecordOption allows management of the mutation configuration using functional options.
type reportrecordOption func(*ReportRecordMutation)

// newReportRecordMutation creates new mutation for the ReportRecord entity.
func newReportRecordMutation(c config, op Op, opts ...reportrecordOption) *ReportRecordMutation {
	m := &ReportRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeReportRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportRecordID sets the ID field of the mutation.
func withReportRecordID(id int) reportrecordOption {
	return func(m *ReportRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportRecord
		)
		m.oldValue = func(ctx context.Context) (*ReportRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportRecord sets the old ReportRecord of the mutation.
func withReportRecord(node *ReportRecord) reportrecordOption {
	return func(m *ReportRecordMutation) {
		m.oldValue = func(context.Context) (*ReportRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *ReportRecordMutation) SetReportID(s string) {
	m.report_id = &s
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ReportRecordMutation) ReportID() (r string, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ReportRecord entity.
// If the ReportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportRecordMutation) OldReportID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ReportRecordMutation) ResetReportID() {
	m.report_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ReportRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReportRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReportRecord entity.
// If the ReportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
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
func (m *ReportRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *ReportRecordMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *ReportRecordMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the ReportRecord entity.
// If the ReportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportRecordMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *ReportRecordMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// SetData sets the "data" field.
func (m *ReportRecordMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ReportRecordMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ReportRecord entity.
// If the ReportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportRecordMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
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
func (m *ReportRecordMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the ReportRecordMutation builder.
func (m *ReportRecordMutation) Where(ps ...predicate.ReportRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportRecord).
func (m *ReportRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportRecordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.report_id != nil {
		fields = append(fields, reportrecord.FieldReportID)
	}
	if m.user_id != nil {
		fields = append(fields, reportrecord.FieldUserID)
	}
	if m.generated_at != nil {
		fields = append(fields, reportrecord.FieldGeneratedAt)
	}
	if m.data != nil {
		fields = append(fields, reportrecord.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportrecord.FieldReportID:
		return m.ReportID()
	case reportrecord.FieldUserID:
		return m.UserID()
	case reportrecord.FieldGeneratedAt:
		return m.GeneratedAt()
	case reportrecord.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportrecord.FieldReportID:
		return m.OldReportID(ctx)
	case reportrecord.FieldUserID:
		return m.OldUserID(ctx)
	case reportrecord.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	case reportrecord.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown ReportRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportrecord.FieldReportID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case reportrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reportrecord.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	case reportrecord.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown ReportRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReportRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReportRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportRecordMutation) ResetField(name string) error {
	switch name {
	case reportrecord.FieldReportID:
		m.ResetReportID()
		return nil
	case reportrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case reportrecord.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	case reportrecord.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown ReportRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReportRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReportRecord edge %s", name)
}

// SeriesPointMutation represents an operation that mutates the SeriesPoint nodes in the graph.
type SeriesPointMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *string
	date_iso          *string
	activity_total    *float64
	addactivity_total *float64
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SeriesPoint, error)
	predicates        []predicate.SeriesPoint
}

var _ ent.Mutation = (*SeriesPointMutation)(nil)

// seriespointOption allows management of the mutation configuration using functional options.
type seriespointOption func(*SeriesPointMutation)

// newSeriesPointMutation creates new mutation for the SeriesPoint entity.
func newSeriesPointMutation(c config, op Op, opts ...seriespointOption) *SeriesPointMutation {
	m := &SeriesPointMutation{
		config:        c,
		op:            op,
		typ:           TypeSeriesPoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSeriesPointID sets the ID field of the mutation.
func withSeriesPointID(id int) seriespointOption {
	return func(m *SeriesPointMutation) {
		var (
			err   error
			once  sync.Once
			value *SeriesPoint
		)
		m.oldValue = func(ctx context.Context) (*SeriesPoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SeriesPoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSeriesPoint sets the old SeriesPoint of the mutation.
func withSeriesPoint(node *SeriesPoint) seriespointOption {
	return func(m *SeriesPointMutation) {
		m.oldValue = func(context.Context) (*SeriesPoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SeriesPointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SeriesPointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SeriesPointMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SeriesPointMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SeriesPoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SeriesPointMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SeriesPointMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SeriesPoint entity.
// If the SeriesPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesPointMutation) OldUserID(ctx context.Context) (v string, err error) {
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
func (m *SeriesPointMutation) ResetUserID() {
	m.user_id = nil
}

// SetDateIso sets the "date_iso" field.
func (m *SeriesPointMutation) SetDateIso(s string) {
	m.date_iso = &s
}

// DateIso returns the value of the "date_iso" field in the mutation.
func (m *SeriesPointMutation) DateIso() (r string, exists bool) {
	v := m.date_iso
	if v == nil {
		return
	}
	return *v, true
}

// OldDateIso returns the old "date_iso" field's value of the SeriesPoint entity.
// If the SeriesPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesPointMutation) OldDateIso(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateIso is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateIso requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateIso: %w", err)
	}
	return oldValue.DateIso, nil
}

// ResetDateIso resets all changes to the "date_iso" field.
func (m *SeriesPointMutation) ResetDateIso() {
	m.date_iso = nil
}

// SetActivityTotal sets the "activity_total" field.
func (m *SeriesPointMutation) SetActivityTotal(f float64) {
	m.activity_total = &f
	m.addactivity_total = nil
}

// ActivityTotal returns the value of the "activity_total" field in the mutation.
func (m *SeriesPointMutation) ActivityTotal() (r float64, exists bool) {
	v := m.activity_total
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityTotal returns the old "activity_total" field's value of the SeriesPoint entity.
// If the SeriesPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SeriesPointMutation) OldActivityTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityTotal: %w", err)
	}
	return oldValue.ActivityTotal, nil
}

// AddActivityTotal adds f to the "activity_total" field.
func (m *SeriesPointMutation) AddActivityTotal(f float64) {
	if m.addactivity_total != nil {
		*m.addactivity_total += f
	} else {
		m.addactivity_total = &f
	}
}

// AddedActivityTotal returns the value that was added to the "activity_total" field in this mutation.
func (m *SeriesPointMutation) AddedActivityTotal() (r float64, exists bool) {
	v := m.addactivity_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetActivityTotal resets all changes to the "activity_total" field.
func (m *SeriesPointMutation) ResetActivityTotal() {
	m.activity_total = nil
	m.addactivity_total = nil
}

// Where appends a list predicates to the SeriesPointMutation builder.
func (m *SeriesPointMutation) Where(ps ...predicate.SeriesPoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SeriesPointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SeriesPointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SeriesPoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SeriesPointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SeriesPointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SeriesPoint).
func (m *SeriesPointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SeriesPointMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user_id != nil {
		fields = append(fields, seriespoint.FieldUserID)
	}
	if m.date_iso != nil {
		fields = append(fields, seriespoint.FieldDateIso)
	}
	if m.activity_total != nil {
		fields = append(fields, seriespoint.FieldActivityTotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SeriesPointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case seriespoint.FieldUserID:
		return m.UserID()
	case seriespoint.FieldDateIso:
		return m.DateIso()
	case seriespoint.FieldActivityTotal:
		return m.ActivityTotal()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SeriesPointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case seriespoint.FieldUserID:
		return m.OldUserID(ctx)
	case seriespoint.FieldDateIso:
		return m.OldDateIso(ctx)
	case seriespoint.FieldActivityTotal:
		return m.OldActivityTotal(ctx)
	}
	return nil, fmt.Errorf("unknown SeriesPoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeriesPointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case seriespoint.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case seriespoint.FieldDateIso:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateIso(v)
		return nil
	case seriespoint.FieldActivityTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityTotal(v)
		return nil
	}
	return fmt.Errorf("unknown SeriesPoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SeriesPointMutation) AddedFields() []string {
	var fields []string
	if m.addactivity_total != nil {
		fields = append(fields, seriespoint.FieldActivityTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SeriesPointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case seriespoint.FieldActivityTotal:
		return m.AddedActivityTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SeriesPointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case seriespoint.FieldActivityTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActivityTotal(v)
		return nil
	}
	return fmt.Errorf("unknown SeriesPoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SeriesPointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SeriesPointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SeriesPointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SeriesPoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SeriesPointMutation) ResetField(name string) error {
	switch name {
	case seriespoint.FieldUserID:
		m.ResetUserID()
		return nil
	case seriespoint.FieldDateIso:
		m.ResetDateIso()
		return nil
	case seriespoint.FieldActivityTotal:
		m.ResetActivityTotal()
		return nil
	}
	return fmt.Errorf("unknown SeriesPoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SeriesPointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SeriesPointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SeriesPointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SeriesPointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SeriesPointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SeriesPointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SeriesPointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SeriesPoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SeriesPointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SeriesPoint edge %s", name)
}

// SubmissionEventMutation represents an operation that mutates the SubmissionEvent nodes in the graph.
type SubmissionEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	ingested_at   *time.Time
	user_id       *string
	step_id       *string
	status        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SubmissionEvent, error)
	predicates    []predicate.SubmissionEvent
}

var _ ent.Mutation = (*SubmissionEventMutation)(nil)

// submissioneventOption allows management of the mutation configuration using functional options.
type submissioneventOption func(*SubmissionEventMutation)

// newSubmissionEventMutation creates new mutation for the SubmissionEvent entity.
func newSubmissionEventMutation(c config, op Op, opts ...submissioneventOption) *SubmissionEventMutation {
	m := &SubmissionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmissionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionEventID sets the ID field of the mutation.
func withSubmissionEventID(id int) submissioneventOption {
	return func(m *SubmissionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SubmissionEvent
		)
		m.oldValue = func(ctx context.Context) (*SubmissionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubmissionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmissionEvent sets the old SubmissionEvent of the mutation.
func withSubmissionEvent(node *SubmissionEvent) submissioneventOption {
	return func(m *SubmissionEventMutation) {
		m.oldValue = func(context.Context) (*SubmissionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubmissionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SubmissionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SubmissionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *SubmissionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SubmissionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SubmissionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetIngestedAt sets the "ingested_at" field.
func (m *SubmissionEventMutation) SetIngestedAt(t time.Time) {
	m.ingested_at = &t
}

// IngestedAt returns the value of the "ingested_at" field in the mutation.
func (m *SubmissionEventMutation) IngestedAt() (r time.Time, exists bool) {
	v := m.ingested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestedAt returns the old "ingested_at" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldIngestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestedAt: %w", err)
	}
	return oldValue.IngestedAt, nil
}

// ResetIngestedAt resets all changes to the "ingested_at" field.
func (m *SubmissionEventMutation) ResetIngestedAt() {
	m.ingested_at = nil
}

// SetUserID sets the "user_id" field.
func (m *SubmissionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubmissionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
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
func (m *SubmissionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetStepID sets the "step_id" field.
func (m *SubmissionEventMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *SubmissionEventMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *SubmissionEventMutation) ResetStepID() {
	m.step_id = nil
}

// SetStatus sets the "status" field.
func (m *SubmissionEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *SubmissionEventMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the SubmissionEventMutation builder.
func (m *SubmissionEventMutation) Where(ps ...predicate.SubmissionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubmissionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubmissionEvent).
func (m *SubmissionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.sequence != nil {
		fields = append(fields, submissionevent.FieldSequence)
	}
	if m.ingested_at != nil {
		fields = append(fields, submissionevent.FieldIngestedAt)
	}
	if m.user_id != nil {
		fields = append(fields, submissionevent.FieldUserID)
	}
	if m.step_id != nil {
		fields = append(fields, submissionevent.FieldStepID)
	}
	if m.status != nil {
		fields = append(fields, submissionevent.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submissionevent.FieldSequence:
		return m.Sequence()
	case submissionevent.FieldIngestedAt:
		return m.IngestedAt()
	case submissionevent.FieldUserID:
		return m.UserID()
	case submissionevent.FieldStepID:
		return m.StepID()
	case submissionevent.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submissionevent.FieldSequence:
		return m.OldSequence(ctx)
	case submissionevent.FieldIngestedAt:
		return m.OldIngestedAt(ctx)
	case submissionevent.FieldUserID:
		return m.OldUserID(ctx)
	case submissionevent.FieldStepID:
		return m.OldStepID(ctx)
	case submissionevent.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case submissionevent.FieldIngestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestedAt(v)
		return nil
	case submissionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case submissionevent.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case submissionevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, submissionevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submissionevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubmissionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionEventMutation) ResetField(name string) error {
	switch name {
	case submissionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case submissionevent.FieldIngestedAt:
		m.ResetIngestedAt()
		return nil
	case submissionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case submissionevent.FieldStepID:
		m.ResetStepID()
		return nil
	case submissionevent.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubmissionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubmissionEvent edge %s", name)
}
