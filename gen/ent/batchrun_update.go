// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/gen/ent/batchrun"
	"github.com/ocrmark/ocrmark/gen/ent/ocrjob"
	"github.com/ocrmark/ocrmark/gen/ent/predicate"
)

// BatchRunUpdate is the builder for updating BatchRun entities.
type BatchRunUpdate struct {
	config
	hooks    []Hook
	mutation *BatchRunMutation
}

// Where appends a list predicates to the BatchRunUpdate builder.
func (_u *BatchRunUpdate) Where(ps ...predicate.BatchRun) *BatchRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputDir sets the "input_dir" field.
func (_u *BatchRunUpdate) SetInputDir(v string) *BatchRunUpdate {
	_u.mutation.SetInputDir(v)
	return _u
}

// SetNillableInputDir sets the "input_dir" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableInputDir(v *string) *BatchRunUpdate {
	if v != nil {
		_u.SetInputDir(*v)
	}
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *BatchRunUpdate) SetOutputDir(v string) *BatchRunUpdate {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableOutputDir(v *string) *BatchRunUpdate {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *BatchRunUpdate) SetMode(v string) *BatchRunUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableMode(v *string) *BatchRunUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BatchRunUpdate) SetStartedAt(v time.Time) *BatchRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableStartedAt(v *time.Time) *BatchRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *BatchRunUpdate) SetFinishedAt(v time.Time) *BatchRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableFinishedAt(v *time.Time) *BatchRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *BatchRunUpdate) ClearFinishedAt() *BatchRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchRunUpdate) SetStatus(v string) *BatchRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableStatus(v *string) *BatchRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *BatchRunUpdate) SetTotal(v int) *BatchRunUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableTotal(v *int) *BatchRunUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *BatchRunUpdate) AddTotal(v int) *BatchRunUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *BatchRunUpdate) SetSucceeded(v int) *BatchRunUpdate {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableSucceeded(v *int) *BatchRunUpdate {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *BatchRunUpdate) AddSucceeded(v int) *BatchRunUpdate {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *BatchRunUpdate) SetFailed(v int) *BatchRunUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableFailed(v *int) *BatchRunUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *BatchRunUpdate) AddFailed(v int) *BatchRunUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *BatchRunUpdate) SetSuccessRate(v float32) *BatchRunUpdate {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *BatchRunUpdate) SetNillableSuccessRate(v *float32) *BatchRunUpdate {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *BatchRunUpdate) AddSuccessRate(v float32) *BatchRunUpdate {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the OcrJob entity by IDs.
func (_u *BatchRunUpdate) AddJobIDs(ids ...uuid.UUID) *BatchRunUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the OcrJob entity.
func (_u *BatchRunUpdate) AddJobs(v ...*OcrJob) *BatchRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BatchRunMutation object of the builder.
func (_u *BatchRunUpdate) Mutation() *BatchRunMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the OcrJob entity.
func (_u *BatchRunUpdate) ClearJobs() *BatchRunUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to OcrJob entities by IDs.
func (_u *BatchRunUpdate) RemoveJobIDs(ids ...uuid.UUID) *BatchRunUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to OcrJob entities.
func (_u *BatchRunUpdate) RemoveJobs(v ...*OcrJob) *BatchRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchRunUpdate) check() error {
	if v, ok := _u.mutation.InputDir(); ok {
		if err := batchrun.InputDirValidator(v); err != nil {
			return &ValidationError{Name: "input_dir", err: fmt.Errorf(`ent: validator failed for field "BatchRun.input_dir": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputDir(); ok {
		if err := batchrun.OutputDirValidator(v); err != nil {
			return &ValidationError{Name: "output_dir", err: fmt.Errorf(`ent: validator failed for field "BatchRun.output_dir": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := batchrun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "BatchRun.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchrun.Table, batchrun.Columns, sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InputDir(); ok {
		_spec.SetField(batchrun.FieldInputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(batchrun.FieldOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(batchrun.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(batchrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(batchrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(batchrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(batchrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(batchrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(batchrun.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(batchrun.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(batchrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(batchrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(batchrun.FieldSuccessRate, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(batchrun.FieldSuccessRate, field.TypeFloat32, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchrun.JobsTable,
			Columns: []string{batchrun.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchrun.JobsTable,
			Columns: []string{batchrun.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchrun.JobsTable,
			Columns: []string{batchrun.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchRunUpdateOne is the builder for updating a single BatchRun entity.
type BatchRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchRunMutation
}

// SetInputDir sets the "input_dir" field.
func (_u *BatchRunUpdateOne) SetInputDir(v string) *BatchRunUpdateOne {
	_u.mutation.SetInputDir(v)
	return _u
}

// SetNillableInputDir sets the "input_dir" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableInputDir(v *string) *BatchRunUpdateOne {
	if v != nil {
		_u.SetInputDir(*v)
	}
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *BatchRunUpdateOne) SetOutputDir(v string) *BatchRunUpdateOne {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableOutputDir(v *string) *BatchRunUpdateOne {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *BatchRunUpdateOne) SetMode(v string) *BatchRunUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableMode(v *string) *BatchRunUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BatchRunUpdateOne) SetStartedAt(v time.Time) *BatchRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableStartedAt(v *time.Time) *BatchRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *BatchRunUpdateOne) SetFinishedAt(v time.Time) *BatchRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableFinishedAt(v *time.Time) *BatchRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *BatchRunUpdateOne) ClearFinishedAt() *BatchRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchRunUpdateOne) SetStatus(v string) *BatchRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableStatus(v *string) *BatchRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *BatchRunUpdateOne) SetTotal(v int) *BatchRunUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableTotal(v *int) *BatchRunUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *BatchRunUpdateOne) AddTotal(v int) *BatchRunUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *BatchRunUpdateOne) SetSucceeded(v int) *BatchRunUpdateOne {
	_u.mutation.ResetSucceeded()
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableSucceeded(v *int) *BatchRunUpdateOne {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// AddSucceeded adds value to the "succeeded" field.
func (_u *BatchRunUpdateOne) AddSucceeded(v int) *BatchRunUpdateOne {
	_u.mutation.AddSucceeded(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *BatchRunUpdateOne) SetFailed(v int) *BatchRunUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableFailed(v *int) *BatchRunUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *BatchRunUpdateOne) AddFailed(v int) *BatchRunUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetSuccessRate sets the "success_rate" field.
func (_u *BatchRunUpdateOne) SetSuccessRate(v float32) *BatchRunUpdateOne {
	_u.mutation.ResetSuccessRate()
	_u.mutation.SetSuccessRate(v)
	return _u
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_u *BatchRunUpdateOne) SetNillableSuccessRate(v *float32) *BatchRunUpdateOne {
	if v != nil {
		_u.SetSuccessRate(*v)
	}
	return _u
}

// AddSuccessRate adds value to the "success_rate" field.
func (_u *BatchRunUpdateOne) AddSuccessRate(v float32) *BatchRunUpdateOne {
	_u.mutation.AddSuccessRate(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the OcrJob entity by IDs.
func (_u *BatchRunUpdateOne) AddJobIDs(ids ...uuid.UUID) *BatchRunUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the OcrJob entity.
func (_u *BatchRunUpdateOne) AddJobs(v ...*OcrJob) *BatchRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BatchRunMutation object of the builder.
func (_u *BatchRunUpdateOne) Mutation() *BatchRunMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the OcrJob entity.
func (_u *BatchRunUpdateOne) ClearJobs() *BatchRunUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to OcrJob entities by IDs.
func (_u *BatchRunUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BatchRunUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to OcrJob entities.
func (_u *BatchRunUpdateOne) RemoveJobs(v ...*OcrJob) *BatchRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BatchRunUpdate builder.
func (_u *BatchRunUpdateOne) Where(ps ...predicate.BatchRun) *BatchRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchRunUpdateOne) Select(field string, fields ...string) *BatchRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchRun entity.
func (_u *BatchRunUpdateOne) Save(ctx context.Context) (*BatchRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchRunUpdateOne) SaveX(ctx context.Context) *BatchRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchRunUpdateOne) check() error {
	if v, ok := _u.mutation.InputDir(); ok {
		if err := batchrun.InputDirValidator(v); err != nil {
			return &ValidationError{Name: "input_dir", err: fmt.Errorf(`ent: validator failed for field "BatchRun.input_dir": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputDir(); ok {
		if err := batchrun.OutputDirValidator(v); err != nil {
			return &ValidationError{Name: "output_dir", err: fmt.Errorf(`ent: validator failed for field "BatchRun.output_dir": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := batchrun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "BatchRun.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchRunUpdateOne) sqlSave(ctx context.Context) (_node *BatchRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchrun.Table, batchrun.Columns, sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchrun.FieldID)
		for _, f := range fields {
			if !batchrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InputDir(); ok {
		_spec.SetField(batchrun.FieldInputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(batchrun.FieldOutputDir, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(batchrun.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(batchrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(batchrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(batchrun.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(batchrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(batchrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(batchrun.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceeded(); ok {
		_spec.AddField(batchrun.FieldSucceeded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(batchrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(batchrun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessRate(); ok {
		_spec.SetField(batchrun.FieldSuccessRate, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedSuccessRate(); ok {
		_spec.AddField(batchrun.FieldSuccessRate, field.TypeFloat32, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchrun.JobsTable,
			Columns: []string{batchrun.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchrun.JobsTable,
			Columns: []string{batchrun.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchrun.JobsTable,
			Columns: []string{batchrun.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BatchRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
