// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BatchRun is the predicate function for batchrun builders.
type BatchRun func(*sql.Selector)

// OcrJob is the predicate function for ocrjob builders.
type OcrJob func(*sql.Selector)
