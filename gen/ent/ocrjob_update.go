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

// OcrJobUpdate is the builder for updating OcrJob entities.
type OcrJobUpdate struct {
	config
	hooks    []Hook
	mutation *OcrJobMutation
}

// Where appends a list predicates to the OcrJobUpdate builder.
func (_u *OcrJobUpdate) Where(ps ...predicate.OcrJob) *OcrJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *OcrJobUpdate) SetRunID(v uuid.UUID) *OcrJobUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableRunID(v *uuid.UUID) *OcrJobUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *OcrJobUpdate) SetSourcePath(v string) *OcrJobUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableSourcePath(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *OcrJobUpdate) SetArtifactPath(v string) *OcrJobUpdate {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableArtifactPath(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OcrJobUpdate) SetStatus(v string) *OcrJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableStatus(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *OcrJobUpdate) SetRecordedAt(v time.Time) *OcrJobUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableRecordedAt(v *time.Time) *OcrJobUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetRetries sets the "retries" field.
func (_u *OcrJobUpdate) SetRetries(v int) *OcrJobUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableRetries(v *int) *OcrJobUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *OcrJobUpdate) AddRetries(v int) *OcrJobUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// SetCharCount sets the "char_count" field.
func (_u *OcrJobUpdate) SetCharCount(v int) *OcrJobUpdate {
	_u.mutation.ResetCharCount()
	_u.mutation.SetCharCount(v)
	return _u
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableCharCount(v *int) *OcrJobUpdate {
	if v != nil {
		_u.SetCharCount(*v)
	}
	return _u
}

// AddCharCount adds value to the "char_count" field.
func (_u *OcrJobUpdate) AddCharCount(v int) *OcrJobUpdate {
	_u.mutation.AddCharCount(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *OcrJobUpdate) SetWordCount(v int) *OcrJobUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableWordCount(v *int) *OcrJobUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *OcrJobUpdate) AddWordCount(v int) *OcrJobUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *OcrJobUpdate) SetDurationMs(v int64) *OcrJobUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableDurationMs(v *int64) *OcrJobUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *OcrJobUpdate) AddDurationMs(v int64) *OcrJobUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OcrJobUpdate) SetErrorMessage(v string) *OcrJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OcrJobUpdate) SetNillableErrorMessage(v *string) *OcrJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OcrJobUpdate) ClearErrorMessage() *OcrJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRun sets the "run" edge to the BatchRun entity.
func (_u *OcrJobUpdate) SetRun(v *BatchRun) *OcrJobUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the OcrJobMutation object of the builder.
func (_u *OcrJobUpdate) Mutation() *OcrJobMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the BatchRun entity.
func (_u *OcrJobUpdate) ClearRun() *OcrJobUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OcrJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OcrJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrJobUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := ocrjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "OcrJob.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactPath(); ok {
		if err := ocrjob.ArtifactPathValidator(v); err != nil {
			return &ValidationError{Name: "artifact_path", err: fmt.Errorf(`ent: validator failed for field "OcrJob.artifact_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OcrJob.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrJob.run"`)
	}
	return nil
}

func (_u *OcrJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrjob.Table, ocrjob.Columns, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(ocrjob.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(ocrjob.FieldArtifactPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(ocrjob.FieldRecordedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(ocrjob.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(ocrjob.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CharCount(); ok {
		_spec.SetField(ocrjob.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharCount(); ok {
		_spec.AddField(ocrjob.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(ocrjob.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(ocrjob.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(ocrjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(ocrjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ocrjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ocrjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.RunTable,
			Columns: []string{ocrjob.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.RunTable,
			Columns: []string{ocrjob.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OcrJobUpdateOne is the builder for updating a single OcrJob entity.
type OcrJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OcrJobMutation
}

// SetRunID sets the "run_id" field.
func (_u *OcrJobUpdateOne) SetRunID(v uuid.UUID) *OcrJobUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableRunID(v *uuid.UUID) *OcrJobUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *OcrJobUpdateOne) SetSourcePath(v string) *OcrJobUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableSourcePath(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *OcrJobUpdateOne) SetArtifactPath(v string) *OcrJobUpdateOne {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableArtifactPath(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OcrJobUpdateOne) SetStatus(v string) *OcrJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableStatus(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *OcrJobUpdateOne) SetRecordedAt(v time.Time) *OcrJobUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableRecordedAt(v *time.Time) *OcrJobUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// SetRetries sets the "retries" field.
func (_u *OcrJobUpdateOne) SetRetries(v int) *OcrJobUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableRetries(v *int) *OcrJobUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *OcrJobUpdateOne) AddRetries(v int) *OcrJobUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// SetCharCount sets the "char_count" field.
func (_u *OcrJobUpdateOne) SetCharCount(v int) *OcrJobUpdateOne {
	_u.mutation.ResetCharCount()
	_u.mutation.SetCharCount(v)
	return _u
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableCharCount(v *int) *OcrJobUpdateOne {
	if v != nil {
		_u.SetCharCount(*v)
	}
	return _u
}

// AddCharCount adds value to the "char_count" field.
func (_u *OcrJobUpdateOne) AddCharCount(v int) *OcrJobUpdateOne {
	_u.mutation.AddCharCount(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *OcrJobUpdateOne) SetWordCount(v int) *OcrJobUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableWordCount(v *int) *OcrJobUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *OcrJobUpdateOne) AddWordCount(v int) *OcrJobUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *OcrJobUpdateOne) SetDurationMs(v int64) *OcrJobUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableDurationMs(v *int64) *OcrJobUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *OcrJobUpdateOne) AddDurationMs(v int64) *OcrJobUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OcrJobUpdateOne) SetErrorMessage(v string) *OcrJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OcrJobUpdateOne) SetNillableErrorMessage(v *string) *OcrJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OcrJobUpdateOne) ClearErrorMessage() *OcrJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRun sets the "run" edge to the BatchRun entity.
func (_u *OcrJobUpdateOne) SetRun(v *BatchRun) *OcrJobUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the OcrJobMutation object of the builder.
func (_u *OcrJobUpdateOne) Mutation() *OcrJobMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the BatchRun entity.
func (_u *OcrJobUpdateOne) ClearRun() *OcrJobUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the OcrJobUpdate builder.
func (_u *OcrJobUpdateOne) Where(ps ...predicate.OcrJob) *OcrJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OcrJobUpdateOne) Select(field string, fields ...string) *OcrJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OcrJob entity.
func (_u *OcrJobUpdateOne) Save(ctx context.Context) (*OcrJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OcrJobUpdateOne) SaveX(ctx context.Context) *OcrJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OcrJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OcrJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OcrJobUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := ocrjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "OcrJob.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ArtifactPath(); ok {
		if err := ocrjob.ArtifactPathValidator(v); err != nil {
			return &ValidationError{Name: "artifact_path", err: fmt.Errorf(`ent: validator failed for field "OcrJob.artifact_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OcrJob.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OcrJob.run"`)
	}
	return nil
}

func (_u *OcrJobUpdateOne) sqlSave(ctx context.Context) (_node *OcrJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrjob.Table, ocrjob.Columns, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OcrJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrjob.FieldID)
		for _, f := range fields {
			if !ocrjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrjob.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(ocrjob.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(ocrjob.FieldArtifactPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(ocrjob.FieldRecordedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(ocrjob.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(ocrjob.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CharCount(); ok {
		_spec.SetField(ocrjob.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharCount(); ok {
		_spec.AddField(ocrjob.FieldCharCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(ocrjob.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(ocrjob.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(ocrjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(ocrjob.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(ocrjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(ocrjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.RunTable,
			Columns: []string{ocrjob.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.RunTable,
			Columns: []string{ocrjob.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OcrJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
