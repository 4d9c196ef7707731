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
	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/gen/ent/batchrun"
	"github.com/ocrmark/ocrmark/gen/ent/ocrjob"
	"github.com/ocrmark/ocrmark/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatchRun = "BatchRun"
	TypeOcrJob   = "OcrJob"
)

// BatchRunMutation represents an operation that mutates the BatchRun nodes in the graph.
type BatchRunMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	input_dir       *string
	output_dir      *string
	mode            *string
	started_at      *time.Time
	finished_at     *time.Time
	status          *string
	total           *int
	addtotal        *int
	succeeded       *int
	addsucceeded    *int
	failed          *int
	addfailed       *int
	success_rate    *float32
	addsuccess_rate *float32
	clearedFields   map[string]struct{}
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*BatchRun, error)
	predicates      []predicate.BatchRun
}

var _ ent.Mutation = (*BatchRunMutation)(nil)

// batchrunOption allows management of the mutation configuration using functional options.
type batchrunOption func(*BatchRunMutation)

// newBatchRunMutation creates new mutation for the BatchRun entity.
func newBatchRunMutation(c config, op Op, opts ...batchrunOption) *BatchRunMutation {
	m := &BatchRunMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchRunID sets the ID field of the mutation.
func withBatchRunID(id uuid.UUID) batchrunOption {
	return func(m *BatchRunMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchRun
		)
		m.oldValue = func(ctx context.Context) (*BatchRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchRun sets the old BatchRun of the mutation.
func withBatchRun(node *BatchRun) batchrunOption {
	return func(m *BatchRunMutation) {
		m.oldValue = func(context.Context) (*BatchRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchRun entities.
func (m *BatchRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInputDir sets the "input_dir" field.
func (m *BatchRunMutation) SetInputDir(s string) {
	m.input_dir = &s
}

// InputDir returns the value of the "input_dir" field in the mutation.
func (m *BatchRunMutation) InputDir() (r string, exists bool) {
	v := m.input_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldInputDir returns the old "input_dir" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldInputDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputDir: %w", err)
	}
	return oldValue.InputDir, nil
}

// ResetInputDir resets all changes to the "input_dir" field.
func (m *BatchRunMutation) ResetInputDir() {
	m.input_dir = nil
}

// SetOutputDir sets the "output_dir" field.
func (m *BatchRunMutation) SetOutputDir(s string) {
	m.output_dir = &s
}

// OutputDir returns the value of the "output_dir" field in the mutation.
func (m *BatchRunMutation) OutputDir() (r string, exists bool) {
	v := m.output_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputDir returns the old "output_dir" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldOutputDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputDir: %w", err)
	}
	return oldValue.OutputDir, nil
}

// ResetOutputDir resets all changes to the "output_dir" field.
func (m *BatchRunMutation) ResetOutputDir() {
	m.output_dir = nil
}

// SetMode sets the "mode" field.
func (m *BatchRunMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *BatchRunMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *BatchRunMutation) ResetMode() {
	m.mode = nil
}

// SetStartedAt sets the "started_at" field.
func (m *BatchRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BatchRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BatchRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *BatchRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *BatchRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *BatchRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[batchrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *BatchRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[batchrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *BatchRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, batchrun.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *BatchRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *BatchRunMutation) ResetStatus() {
	m.status = nil
}

// SetTotal sets the "total" field.
func (m *BatchRunMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *BatchRunMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *BatchRunMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *BatchRunMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *BatchRunMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetSucceeded sets the "succeeded" field.
func (m *BatchRunMutation) SetSucceeded(i int) {
	m.succeeded = &i
	m.addsucceeded = nil
}

// Succeeded returns the value of the "succeeded" field in the mutation.
func (m *BatchRunMutation) Succeeded() (r int, exists bool) {
	v := m.succeeded
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceeded returns the old "succeeded" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldSucceeded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceeded: %w", err)
	}
	return oldValue.Succeeded, nil
}

// AddSucceeded adds i to the "succeeded" field.
func (m *BatchRunMutation) AddSucceeded(i int) {
	if m.addsucceeded != nil {
		*m.addsucceeded += i
	} else {
		m.addsucceeded = &i
	}
}

// AddedSucceeded returns the value that was added to the "succeeded" field in this mutation.
func (m *BatchRunMutation) AddedSucceeded() (r int, exists bool) {
	v := m.addsucceeded
	if v == nil {
		return
	}
	return *v, true
}

// ResetSucceeded resets all changes to the "succeeded" field.
func (m *BatchRunMutation) ResetSucceeded() {
	m.succeeded = nil
	m.addsucceeded = nil
}

// SetFailed sets the "failed" field.
func (m *BatchRunMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *BatchRunMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *BatchRunMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *BatchRunMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *BatchRunMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetSuccessRate sets the "success_rate" field.
func (m *BatchRunMutation) SetSuccessRate(f float32) {
	m.success_rate = &f
	m.addsuccess_rate = nil
}

// SuccessRate returns the value of the "success_rate" field in the mutation.
func (m *BatchRunMutation) SuccessRate() (r float32, exists bool) {
	v := m.success_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessRate returns the old "success_rate" field's value of the BatchRun entity.
// If the BatchRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchRunMutation) OldSuccessRate(ctx context.Context) (v float32, err error) {
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
func (m *BatchRunMutation) AddSuccessRate(f float32) {
	if m.addsuccess_rate != nil {
		*m.addsuccess_rate += f
	} else {
		m.addsuccess_rate = &f
	}
}

// AddedSuccessRate returns the value that was added to the "success_rate" field in this mutation.
func (m *BatchRunMutation) AddedSuccessRate() (r float32, exists bool) {
	v := m.addsuccess_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessRate resets all changes to the "success_rate" field.
func (m *BatchRunMutation) ResetSuccessRate() {
	m.success_rate = nil
	m.addsuccess_rate = nil
}

// AddJobIDs adds the "jobs" edge to the OcrJob entity by ids.
func (m *BatchRunMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the OcrJob entity.
func (m *BatchRunMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the OcrJob entity was cleared.
func (m *BatchRunMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the OcrJob entity by IDs.
func (m *BatchRunMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the OcrJob entity.
func (m *BatchRunMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BatchRunMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BatchRunMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the BatchRunMutation builder.
func (m *BatchRunMutation) Where(ps ...predicate.BatchRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchRun).
func (m *BatchRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.input_dir != nil {
		fields = append(fields, batchrun.FieldInputDir)
	}
	if m.output_dir != nil {
		fields = append(fields, batchrun.FieldOutputDir)
	}
	if m.mode != nil {
		fields = append(fields, batchrun.FieldMode)
	}
	if m.started_at != nil {
		fields = append(fields, batchrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, batchrun.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, batchrun.FieldStatus)
	}
	if m.total != nil {
		fields = append(fields, batchrun.FieldTotal)
	}
	if m.succeeded != nil {
		fields = append(fields, batchrun.FieldSucceeded)
	}
	if m.failed != nil {
		fields = append(fields, batchrun.FieldFailed)
	}
	if m.success_rate != nil {
		fields = append(fields, batchrun.FieldSuccessRate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchrun.FieldInputDir:
		return m.InputDir()
	case batchrun.FieldOutputDir:
		return m.OutputDir()
	case batchrun.FieldMode:
		return m.Mode()
	case batchrun.FieldStartedAt:
		return m.StartedAt()
	case batchrun.FieldFinishedAt:
		return m.FinishedAt()
	case batchrun.FieldStatus:
		return m.Status()
	case batchrun.FieldTotal:
		return m.Total()
	case batchrun.FieldSucceeded:
		return m.Succeeded()
	case batchrun.FieldFailed:
		return m.Failed()
	case batchrun.FieldSuccessRate:
		return m.SuccessRate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchrun.FieldInputDir:
		return m.OldInputDir(ctx)
	case batchrun.FieldOutputDir:
		return m.OldOutputDir(ctx)
	case batchrun.FieldMode:
		return m.OldMode(ctx)
	case batchrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case batchrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case batchrun.FieldStatus:
		return m.OldStatus(ctx)
	case batchrun.FieldTotal:
		return m.OldTotal(ctx)
	case batchrun.FieldSucceeded:
		return m.OldSucceeded(ctx)
	case batchrun.FieldFailed:
		return m.OldFailed(ctx)
	case batchrun.FieldSuccessRate:
		return m.OldSuccessRate(ctx)
	}
	return nil, fmt.Errorf("unknown BatchRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchrun.FieldInputDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputDir(v)
		return nil
	case batchrun.FieldOutputDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputDir(v)
		return nil
	case batchrun.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case batchrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case batchrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case batchrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batchrun.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case batchrun.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceeded(v)
		return nil
	case batchrun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case batchrun.FieldSuccessRate:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessRate(v)
		return nil
	}
	return fmt.Errorf("unknown BatchRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, batchrun.FieldTotal)
	}
	if m.addsucceeded != nil {
		fields = append(fields, batchrun.FieldSucceeded)
	}
	if m.addfailed != nil {
		fields = append(fields, batchrun.FieldFailed)
	}
	if m.addsuccess_rate != nil {
		fields = append(fields, batchrun.FieldSuccessRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchrun.FieldTotal:
		return m.AddedTotal()
	case batchrun.FieldSucceeded:
		return m.AddedSucceeded()
	case batchrun.FieldFailed:
		return m.AddedFailed()
	case batchrun.FieldSuccessRate:
		return m.AddedSuccessRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchrun.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case batchrun.FieldSucceeded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSucceeded(v)
		return nil
	case batchrun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	case batchrun.FieldSuccessRate:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessRate(v)
		return nil
	}
	return fmt.Errorf("unknown BatchRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchrun.FieldFinishedAt) {
		fields = append(fields, batchrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchRunMutation) ClearField(name string) error {
	switch name {
	case batchrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchRunMutation) ResetField(name string) error {
	switch name {
	case batchrun.FieldInputDir:
		m.ResetInputDir()
		return nil
	case batchrun.FieldOutputDir:
		m.ResetOutputDir()
		return nil
	case batchrun.FieldMode:
		m.ResetMode()
		return nil
	case batchrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case batchrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case batchrun.FieldStatus:
		m.ResetStatus()
		return nil
	case batchrun.FieldTotal:
		m.ResetTotal()
		return nil
	case batchrun.FieldSucceeded:
		m.ResetSucceeded()
		return nil
	case batchrun.FieldFailed:
		m.ResetFailed()
		return nil
	case batchrun.FieldSuccessRate:
		m.ResetSuccessRate()
		return nil
	}
	return fmt.Errorf("unknown BatchRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, batchrun.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchrun.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, batchrun.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batchrun.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, batchrun.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchRunMutation) EdgeCleared(name string) bool {
	switch name {
	case batchrun.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BatchRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchRunMutation) ResetEdge(name string) error {
	switch name {
	case batchrun.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown BatchRun edge %s", name)
}

// OcrJobMutation represents an operation that mutates the OcrJob nodes in the graph.
type OcrJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	source_path    *string
	artifact_path  *string
	status         *string
	recorded_at    *time.Time
	retries        *int
	addretries     *int
	char_count     *int
	addchar_count  *int
	word_count     *int
	addword_count  *int
	duration_ms    *int64
	addduration_ms *int64
	error_message  *string
	clearedFields  map[string]struct{}
	run            *uuid.UUID
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*OcrJob, error)
	predicates     []predicate.OcrJob
}

var _ ent.Mutation = (*OcrJobMutation)(nil)

// ocrjobOption allows management of the mutation configuration using functional options.
type ocrjobOption func(*OcrJobMutation)

// newOcrJobMutation creates new mutation for the OcrJob entity.
func newOcrJobMutation(c config, op Op, opts ...ocrjobOption) *OcrJobMutation {
	m := &OcrJobMutation{
		config:        c,
		op:            op,
		typ:           TypeOcrJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOcrJobID sets the ID field of the mutation.
func withOcrJobID(id uuid.UUID) ocrjobOption {
	return func(m *OcrJobMutation) {
		var (
			err   error
			once  sync.Once
			value *OcrJob
		)
		m.oldValue = func(ctx context.Context) (*OcrJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OcrJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOcrJob sets the old OcrJob of the mutation.
func withOcrJob(node *OcrJob) ocrjobOption {
	return func(m *OcrJobMutation) {
		m.oldValue = func(context.Context) (*OcrJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OcrJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OcrJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OcrJob entities.
func (m *OcrJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OcrJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OcrJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OcrJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *OcrJobMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *OcrJobMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *OcrJobMutation) ResetRunID() {
	m.run = nil
}

// SetSourcePath sets the "source_path" field.
func (m *OcrJobMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *OcrJobMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *OcrJobMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetArtifactPath sets the "artifact_path" field.
func (m *OcrJobMutation) SetArtifactPath(s string) {
	m.artifact_path = &s
}

// ArtifactPath returns the value of the "artifact_path" field in the mutation.
func (m *OcrJobMutation) ArtifactPath() (r string, exists bool) {
	v := m.artifact_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactPath returns the old "artifact_path" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldArtifactPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactPath: %w", err)
	}
	return oldValue.ArtifactPath, nil
}

// ResetArtifactPath resets all changes to the "artifact_path" field.
func (m *OcrJobMutation) ResetArtifactPath() {
	m.artifact_path = nil
}

// SetStatus sets the "status" field.
func (m *OcrJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OcrJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *OcrJobMutation) ResetStatus() {
	m.status = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *OcrJobMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *OcrJobMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *OcrJobMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// SetRetries sets the "retries" field.
func (m *OcrJobMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *OcrJobMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *OcrJobMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *OcrJobMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *OcrJobMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// SetCharCount sets the "char_count" field.
func (m *OcrJobMutation) SetCharCount(i int) {
	m.char_count = &i
	m.addchar_count = nil
}

// CharCount returns the value of the "char_count" field in the mutation.
func (m *OcrJobMutation) CharCount() (r int, exists bool) {
	v := m.char_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCharCount returns the old "char_count" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldCharCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharCount: %w", err)
	}
	return oldValue.CharCount, nil
}

// AddCharCount adds i to the "char_count" field.
func (m *OcrJobMutation) AddCharCount(i int) {
	if m.addchar_count != nil {
		*m.addchar_count += i
	} else {
		m.addchar_count = &i
	}
}

// AddedCharCount returns the value that was added to the "char_count" field in this mutation.
func (m *OcrJobMutation) AddedCharCount() (r int, exists bool) {
	v := m.addchar_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCharCount resets all changes to the "char_count" field.
func (m *OcrJobMutation) ResetCharCount() {
	m.char_count = nil
	m.addchar_count = nil
}

// SetWordCount sets the "word_count" field.
func (m *OcrJobMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *OcrJobMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *OcrJobMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *OcrJobMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *OcrJobMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *OcrJobMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *OcrJobMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *OcrJobMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *OcrJobMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *OcrJobMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *OcrJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OcrJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the OcrJob entity.
// If the OcrJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *OcrJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[ocrjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *OcrJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[ocrjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OcrJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, ocrjob.FieldErrorMessage)
}

// ClearRun clears the "run" edge to the BatchRun entity.
func (m *OcrJobMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[ocrjob.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the BatchRun entity was cleared.
func (m *OcrJobMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *OcrJobMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *OcrJobMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the OcrJobMutation builder.
func (m *OcrJobMutation) Where(ps ...predicate.OcrJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OcrJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OcrJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OcrJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OcrJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OcrJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OcrJob).
func (m *OcrJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OcrJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.run != nil {
		fields = append(fields, ocrjob.FieldRunID)
	}
	if m.source_path != nil {
		fields = append(fields, ocrjob.FieldSourcePath)
	}
	if m.artifact_path != nil {
		fields = append(fields, ocrjob.FieldArtifactPath)
	}
	if m.status != nil {
		fields = append(fields, ocrjob.FieldStatus)
	}
	if m.recorded_at != nil {
		fields = append(fields, ocrjob.FieldRecordedAt)
	}
	if m.retries != nil {
		fields = append(fields, ocrjob.FieldRetries)
	}
	if m.char_count != nil {
		fields = append(fields, ocrjob.FieldCharCount)
	}
	if m.word_count != nil {
		fields = append(fields, ocrjob.FieldWordCount)
	}
	if m.duration_ms != nil {
		fields = append(fields, ocrjob.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, ocrjob.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OcrJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ocrjob.FieldRunID:
		return m.RunID()
	case ocrjob.FieldSourcePath:
		return m.SourcePath()
	case ocrjob.FieldArtifactPath:
		return m.ArtifactPath()
	case ocrjob.FieldStatus:
		return m.Status()
	case ocrjob.FieldRecordedAt:
		return m.RecordedAt()
	case ocrjob.FieldRetries:
		return m.Retries()
	case ocrjob.FieldCharCount:
		return m.CharCount()
	case ocrjob.FieldWordCount:
		return m.WordCount()
	case ocrjob.FieldDurationMs:
		return m.DurationMs()
	case ocrjob.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OcrJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ocrjob.FieldRunID:
		return m.OldRunID(ctx)
	case ocrjob.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case ocrjob.FieldArtifactPath:
		return m.OldArtifactPath(ctx)
	case ocrjob.FieldStatus:
		return m.OldStatus(ctx)
	case ocrjob.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case ocrjob.FieldRetries:
		return m.OldRetries(ctx)
	case ocrjob.FieldCharCount:
		return m.OldCharCount(ctx)
	case ocrjob.FieldWordCount:
		return m.OldWordCount(ctx)
	case ocrjob.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case ocrjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown OcrJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OcrJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ocrjob.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case ocrjob.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case ocrjob.FieldArtifactPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactPath(v)
		return nil
	case ocrjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ocrjob.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case ocrjob.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	case ocrjob.FieldCharCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharCount(v)
		return nil
	case ocrjob.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case ocrjob.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case ocrjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown OcrJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OcrJobMutation) AddedFields() []string {
	var fields []string
	if m.addretries != nil {
		fields = append(fields, ocrjob.FieldRetries)
	}
	if m.addchar_count != nil {
		fields = append(fields, ocrjob.FieldCharCount)
	}
	if m.addword_count != nil {
		fields = append(fields, ocrjob.FieldWordCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, ocrjob.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OcrJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ocrjob.FieldRetries:
		return m.AddedRetries()
	case ocrjob.FieldCharCount:
		return m.AddedCharCount()
	case ocrjob.FieldWordCount:
		return m.AddedWordCount()
	case ocrjob.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OcrJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ocrjob.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	case ocrjob.FieldCharCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharCount(v)
		return nil
	case ocrjob.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case ocrjob.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown OcrJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OcrJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ocrjob.FieldErrorMessage) {
		fields = append(fields, ocrjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OcrJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OcrJobMutation) ClearField(name string) error {
	switch name {
	case ocrjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown OcrJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OcrJobMutation) ResetField(name string) error {
	switch name {
	case ocrjob.FieldRunID:
		m.ResetRunID()
		return nil
	case ocrjob.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case ocrjob.FieldArtifactPath:
		m.ResetArtifactPath()
		return nil
	case ocrjob.FieldStatus:
		m.ResetStatus()
		return nil
	case ocrjob.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case ocrjob.FieldRetries:
		m.ResetRetries()
		return nil
	case ocrjob.FieldCharCount:
		m.ResetCharCount()
		return nil
	case ocrjob.FieldWordCount:
		m.ResetWordCount()
		return nil
	case ocrjob.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case ocrjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown OcrJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OcrJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, ocrjob.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OcrJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ocrjob.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OcrJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OcrJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OcrJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, ocrjob.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OcrJobMutation) EdgeCleared(name string) bool {
	switch name {
	case ocrjob.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OcrJobMutation) ClearEdge(name string) error {
	switch name {
	case ocrjob.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown OcrJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OcrJobMutation) ResetEdge(name string) error {
	switch name {
	case ocrjob.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown OcrJob edge %s", name)
}
