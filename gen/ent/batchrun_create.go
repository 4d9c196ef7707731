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

// BatchRunCreate is the builder for creating a BatchRun entity.
type BatchRunCreate struct {
	config
	mutation *BatchRunMutation
	hooks    []Hook
}

// SetInputDir sets the "input_dir" field.
func (_c *BatchRunCreate) SetInputDir(v string) *BatchRunCreate {
	_c.mutation.SetInputDir(v)
	return _c
}

// SetOutputDir sets the "output_dir" field.
func (_c *BatchRunCreate) SetOutputDir(v string) *BatchRunCreate {
	_c.mutation.SetOutputDir(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *BatchRunCreate) SetMode(v string) *BatchRunCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BatchRunCreate) SetStartedAt(v time.Time) *BatchRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableStartedAt(v *time.Time) *BatchRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *BatchRunCreate) SetFinishedAt(v time.Time) *BatchRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableFinishedAt(v *time.Time) *BatchRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchRunCreate) SetStatus(v string) *BatchRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *BatchRunCreate) SetTotal(v int) *BatchRunCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableTotal(v *int) *BatchRunCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetSucceeded sets the "succeeded" field.
func (_c *BatchRunCreate) SetSucceeded(v int) *BatchRunCreate {
	_c.mutation.SetSucceeded(v)
	return _c
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableSucceeded(v *int) *BatchRunCreate {
	if v != nil {
		_c.SetSucceeded(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *BatchRunCreate) SetFailed(v int) *BatchRunCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableFailed(v *int) *BatchRunCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *BatchRunCreate) SetSuccessRate(v float32) *BatchRunCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableSuccessRate(v *float32) *BatchRunCreate {
	if v != nil {
		_c.SetSuccessRate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchRunCreate) SetID(v uuid.UUID) *BatchRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchRunCreate) SetNillableID(v *uuid.UUID) *BatchRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the OcrJob entity by IDs.
func (_c *BatchRunCreate) AddJobIDs(ids ...uuid.UUID) *BatchRunCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the OcrJob entity.
func (_c *BatchRunCreate) AddJobs(v ...*OcrJob) *BatchRunCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BatchRunMutation object of the builder.
func (_c *BatchRunCreate) Mutation() *BatchRunMutation {
	return _c.mutation
}

// Save creates the BatchRun in the database.
func (_c *BatchRunCreate) Save(ctx context.Context) (*BatchRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchRunCreate) SaveX(ctx context.Context) *BatchRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchRunCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := batchrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Total(); !ok {
		v := batchrun.DefaultTotal
		_c.mutation.SetTotal(v)
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		v := batchrun.DefaultSucceeded
		_c.mutation.SetSucceeded(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := batchrun.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		v := batchrun.DefaultSuccessRate
		_c.mutation.SetSuccessRate(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batchrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchRunCreate) check() error {
	if _, ok := _c.mutation.InputDir(); !ok {
		return &ValidationError{Name: "input_dir", err: errors.New(`ent: missing required field "BatchRun.input_dir"`)}
	}
	if v, ok := _c.mutation.InputDir(); ok {
		if err := batchrun.InputDirValidator(v); err != nil {
			return &ValidationError{Name: "input_dir", err: fmt.Errorf(`ent: validator failed for field "BatchRun.input_dir": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputDir(); !ok {
		return &ValidationError{Name: "output_dir", err: errors.New(`ent: missing required field "BatchRun.output_dir"`)}
	}
	if v, ok := _c.mutation.OutputDir(); ok {
		if err := batchrun.OutputDirValidator(v); err != nil {
			return &ValidationError{Name: "output_dir", err: fmt.Errorf(`ent: validator failed for field "BatchRun.output_dir": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "BatchRun.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := batchrun.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "BatchRun.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "BatchRun.started_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BatchRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batchrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "BatchRun.total"`)}
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		return &ValidationError{Name: "succeeded", err: errors.New(`ent: missing required field "BatchRun.succeeded"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "BatchRun.failed"`)}
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "BatchRun.success_rate"`)}
	}
	return nil
}

func (_c *BatchRunCreate) sqlSave(ctx context.Context) (*BatchRun, error) {
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

func (_c *BatchRunCreate) createSpec() (*BatchRun, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchrun.Table, sqlgraph.NewFieldSpec(batchrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InputDir(); ok {
		_spec.SetField(batchrun.FieldInputDir, field.TypeString, value)
		_node.InputDir = value
	}
	if value, ok := _c.mutation.OutputDir(); ok {
		_spec.SetField(batchrun.FieldOutputDir, field.TypeString, value)
		_node.OutputDir = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(batchrun.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(batchrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(batchrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batchrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(batchrun.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Succeeded(); ok {
		_spec.SetField(batchrun.FieldSucceeded, field.TypeInt, value)
		_node.Succeeded = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(batchrun.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(batchrun.FieldSuccessRate, field.TypeFloat32, value)
		_node.SuccessRate = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchRunCreateBulk is the builder for creating many BatchRun entities in bulk.
type BatchRunCreateBulk struct {
	config
	err      error
	builders []*BatchRunCreate
}

// Save creates the BatchRun entities in the database.
func (_c *BatchRunCreateBulk) Save(ctx context.Context) ([]*BatchRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchRunMutation)
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
func (_c *BatchRunCreateBulk) SaveX(ctx context.Context) []*BatchRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
