// Code generated by ent, DO NOT EDIT.

package batchrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the batchrun type in the database.
	Label = "batch_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInputDir holds the string denoting the input_dir field in the database.
	FieldInputDir = "input_dir"
	// FieldOutputDir holds the string denoting the output_dir field in the database.
	FieldOutputDir = "output_dir"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldSucceeded holds the string denoting the succeeded field in the database.
	FieldSucceeded = "succeeded"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldSuccessRate holds the string denoting the success_rate field in the database.
	FieldSuccessRate = "success_rate"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the batchrun in the database.
	Table = "batch_runs"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "ocr_jobs"
	// JobsInverseTable is the table name for the OcrJob entity.
	// It exists in this package in order to avoid circular dependency with the "ocrjob" package.
	JobsInverseTable = "ocr_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "run_id"
)

// Columns holds all SQL columns for batchrun fields.
var Columns = []string{
	FieldID,
	FieldInputDir,
	FieldOutputDir,
	FieldMode,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldTotal,
	FieldSucceeded,
	FieldFailed,
	FieldSuccessRate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// InputDirValidator is a validator for the "input_dir" field. It is called by the builders before save.
	InputDirValidator func(string) error
	// OutputDirValidator is a validator for the "output_dir" field. It is called by the builders before save.
	OutputDirValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultTotal holds the default value on creation for the "total" field.
	DefaultTotal int
	// DefaultSucceeded holds the default value on creation for the "succeeded" field.
	DefaultSucceeded int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultSuccessRate holds the default value on creation for the "success_rate" field.
	DefaultSuccessRate float32
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BatchRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInputDir orders the results by the input_dir field.
func ByInputDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputDir, opts...).ToFunc()
}

// ByOutputDir orders the results by the output_dir field.
func ByOutputDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputDir, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// BySucceeded orders the results by the succeeded field.
func BySucceeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSucceeded, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// BySuccessRate orders the results by the success_rate field.
func BySuccessRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessRate, opts...).ToFunc()
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
