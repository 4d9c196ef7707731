// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchRunsColumns holds the columns for the "batch_runs" table.
	BatchRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "input_dir", Type: field.TypeString},
		{Name: "output_dir", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "succeeded", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "success_rate", Type: field.TypeFloat32, Default: 0},
	}
	// BatchRunsTable holds the schema information for the "batch_runs" table.
	BatchRunsTable = &schema.Table{
		Name:       "batch_runs",
		Columns:    BatchRunsColumns,
		PrimaryKey: []*schema.Column{BatchRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batchrun_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{BatchRunsColumns[6], BatchRunsColumns[4]},
			},
		},
	}
	// OcrJobsColumns holds the columns for the "ocr_jobs" table.
	OcrJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "artifact_path", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "char_count", Type: field.TypeInt, Default: 0},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// OcrJobsTable holds the schema information for the "ocr_jobs" table.
	OcrJobsTable = &schema.Table{
		Name:       "ocr_jobs",
		Columns:    OcrJobsColumns,
		PrimaryKey: []*schema.Column{OcrJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_jobs_batch_runs_jobs",
				Columns:    []*schema.Column{OcrJobsColumns[10]},
				RefColumns: []*schema.Column{BatchRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrjob_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{OcrJobsColumns[10], OcrJobsColumns[3]},
			},
			{
				Name:    "ocrjob_source_path",
				Unique:  false,
				Columns: []*schema.Column{OcrJobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchRunsTable,
		OcrJobsTable,
	}
)

func init() {
	BatchRunsTable.Annotation = &entsql.Annotation{
		Table: "batch_runs",
	}
	OcrJobsTable.ForeignKeys[0].RefTable = BatchRunsTable
	OcrJobsTable.Annotation = &entsql.Annotation{
		Table: "ocr_jobs",
	}
}
