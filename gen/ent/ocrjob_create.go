// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/gen/ent/batchrun"
	"github.com/ocrmark/ocrmark/gen/ent/ocrjob"
)

// OcrJobCreate is the builder for creating a OcrJob entity.
type OcrJobCreate struct {
	config
	mutation *OcrJobMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *OcrJobCreate) SetRunID(v uuid.UUID) *OcrJobCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *OcrJobCreate) SetSourcePath(v string) *OcrJobCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetArtifactPath sets the "artifact_path" field.
func (_c *OcrJobCreate) SetArtifactPath(v string) *OcrJobCreate {
	_c.mutation.SetArtifactPath(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OcrJobCreate) SetStatus(v string) *OcrJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *OcrJobCreate) SetRecordedAt(v time.Time) *OcrJobCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableRecordedAt(v *time.Time) *OcrJobCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetRetries sets the "retries" field.
func (_c *OcrJobCreate) SetRetries(v int) *OcrJobCreate {
	_c.mutation.SetRetries(v)
	return _c
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableRetries(v *int) *OcrJobCreate {
	if v != nil {
		_c.SetRetries(*v)
	}
	return _c
}

// SetCharCount sets the "char_count" field.
func (_c *OcrJobCreate) SetCharCount(v int) *OcrJobCreate {
	_c.mutation.SetCharCount(v)
	return _c
}

// SetNillableCharCount sets the "char_count" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableCharCount(v *int) *OcrJobCreate {
	if v != nil {
		_c.SetCharCount(*v)
	}
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *OcrJobCreate) SetWordCount(v int) *OcrJobCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableWordCount(v *int) *OcrJobCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *OcrJobCreate) SetDurationMs(v int64) *OcrJobCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableDurationMs(v *int64) *OcrJobCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *OcrJobCreate) SetErrorMessage(v string) *OcrJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableErrorMessage(v *string) *OcrJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OcrJobCreate) SetID(v uuid.UUID) *OcrJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OcrJobCreate) SetNillableID(v *uuid.UUID) *OcrJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the BatchRun entity.
func (_c *OcrJobCreate) SetRun(v *BatchRun) *OcrJobCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the OcrJobMutation object of the builder.
func (_c *OcrJobCreate) Mutation() *OcrJobMutation {
	return _c.mutation
}

// Save creates the OcrJob in the database.
func (_c *OcrJobCreate) Save(ctx context.Context) (*OcrJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OcrJobCreate) SaveX(ctx context.Context) *OcrJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OcrJobCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := ocrjob.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
	if _, ok := _c.mutation.Retries(); !ok {
		v := ocrjob.DefaultRetries
		_c.mutation.SetRetries(v)
	}
	if _, ok := _c.mutation.CharCount(); !ok {
		v := ocrjob.DefaultCharCount
		_c.mutation.SetCharCount(v)
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		v := ocrjob.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := ocrjob.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OcrJobCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "OcrJob.run_id"`)}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "OcrJob.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := ocrjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "OcrJob.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ArtifactPath(); !ok {
		return &ValidationError{Name: "artifact_path", err: errors.New(`ent: missing required field "OcrJob.artifact_path"`)}
	}
	if v, ok := _c.mutation.ArtifactPath(); ok {
		if err := ocrjob.ArtifactPathValidator(v); err != nil {
			return &ValidationError{Name: "artifact_path", err: fmt.Errorf(`ent: validator failed for field "OcrJob.artifact_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OcrJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OcrJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "OcrJob.recorded_at"`)}
	}
	if _, ok := _c.mutation.Retries(); !ok {
		return &ValidationError{Name: "retries", err: errors.New(`ent: missing required field "OcrJob.retries"`)}
	}
	if _, ok := _c.mutation.CharCount(); !ok {
		return &ValidationError{Name: "char_count", err: errors.New(`ent: missing required field "OcrJob.char_count"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "OcrJob.word_count"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "OcrJob.duration_ms"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "OcrJob.run"`)}
	}
	return nil
}

func (_c *OcrJobCreate) sqlSave(ctx context.Context) (*OcrJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OcrJobCreate) createSpec() (*OcrJob, *sqlgraph.CreateSpec) {
	var (
		_node = &OcrJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrjob.Table, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(ocrjob.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.ArtifactPath(); ok {
		_spec.SetField(ocrjob.FieldArtifactPath, field.TypeString, value)
		_node.ArtifactPath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(ocrjob.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if value, ok := _c.mutation.Retries(); ok {
		_spec.SetField(ocrjob.FieldRetries, field.TypeInt, value)
		_node.Retries = value
	}
	if value, ok := _c.mutation.CharCount(); ok {
		_spec.SetField(ocrjob.FieldCharCount, field.TypeInt, value)
		_node.CharCount = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(ocrjob.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(ocrjob.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(ocrjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OcrJobCreateBulk is the builder for creating many OcrJob entities in bulk.
type OcrJobCreateBulk struct {
	config
	err      error
	builders []*OcrJobCreate
}

// Save creates the OcrJob entities in the database.
func (_c *OcrJobCreateBulk) Save(ctx context.Context) ([]*OcrJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OcrJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OcrJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OcrJobCreateBulk) SaveX(ctx context.Context) []*OcrJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OcrJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OcrJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
