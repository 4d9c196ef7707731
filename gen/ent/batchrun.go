// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/gen/ent/batchrun"
)

// BatchRun is the model entity for the BatchRun schema.
type BatchRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InputDir holds the value of the "input_dir" field.
	InputDir string `json:"input_dir,omitempty"`
	// OutputDir holds the value of the "output_dir" field.
	OutputDir string `json:"output_dir,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode string `json:"mode,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Total holds the value of the "total" field.
	Total int `json:"total,omitempty"`
	// Succeeded holds the value of the "succeeded" field.
	Succeeded int `json:"succeeded,omitempty"`
	// Failed holds the value of the "failed" field.
	Failed int `json:"failed,omitempty"`
	// SuccessRate holds the value of the "success_rate" field.
	SuccessRate float32 `json:"success_rate,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BatchRunQuery when eager-loading is set.
	Edges        BatchRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BatchRunEdges holds the relations/edges for other nodes in the graph.
type BatchRunEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*OcrJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BatchRunEdges) JobsOrErr() ([]*OcrJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BatchRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batchrun.FieldSuccessRate:
			values[i] = new(sql.NullFloat64)
		case batchrun.FieldTotal, batchrun.FieldSucceeded, batchrun.FieldFailed:
			values[i] = new(sql.NullInt64)
		case batchrun.FieldInputDir, batchrun.FieldOutputDir, batchrun.FieldMode, batchrun.FieldStatus:
			values[i] = new(sql.NullString)
		case batchrun.FieldStartedAt, batchrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case batchrun.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BatchRun fields.
func (_m *BatchRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batchrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case batchrun.FieldInputDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_dir", values[i])
			} else if value.Valid {
				_m.InputDir = value.String
			}
		case batchrun.FieldOutputDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_dir", values[i])
			} else if value.Valid {
				_m.OutputDir = value.String
			}
		case batchrun.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case batchrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case batchrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case batchrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case batchrun.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case batchrun.FieldSucceeded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field succeeded", values[i])
			} else if value.Valid {
				_m.Succeeded = int(value.Int64)
			}
		case batchrun.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = int(value.Int64)
			}
		case batchrun.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				_m.SuccessRate = float32(value.Float64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BatchRun.
// This includes values selected through modifiers, order, etc.
func (_m *BatchRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the BatchRun entity.
func (_m *BatchRun) QueryJobs() *OcrJobQuery {
	return NewBatchRunClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this BatchRun.
// Note that you need to call BatchRun.Unwrap() before calling this method if this BatchRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BatchRun) Update() *BatchRunUpdateOne {
	return NewBatchRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BatchRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BatchRun) Unwrap() *BatchRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BatchRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BatchRun) String() string {
	var builder strings.Builder
	builder.WriteString("BatchRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("input_dir=")
	builder.WriteString(_m.InputDir)
	builder.WriteString(", ")
	builder.WriteString("output_dir=")
	builder.WriteString(_m.OutputDir)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("succeeded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Succeeded))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	builder.WriteString("success_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessRate))
	builder.WriteByte(')')
	return builder.String()
}

// BatchRuns is a parsable slice of BatchRun.
type BatchRuns []*BatchRun
