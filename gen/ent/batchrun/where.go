// Code generated by ent, DO NOT EDIT.

package batchrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldID, id))
}

// InputDir applies equality check predicate on the "input_dir" field. It's identical to InputDirEQ.
func InputDir(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldInputDir, v))
}

// OutputDir applies equality check predicate on the "output_dir" field. It's identical to OutputDirEQ.
func OutputDir(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldOutputDir, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldMode, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldStatus, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldTotal, v))
}

// Succeeded applies equality check predicate on the "succeeded" field. It's identical to SucceededEQ.
func Succeeded(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldSucceeded, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldFailed, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldSuccessRate, v))
}

// InputDirEQ applies the EQ predicate on the "input_dir" field.
func InputDirEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldInputDir, v))
}

// InputDirNEQ applies the NEQ predicate on the "input_dir" field.
func InputDirNEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldInputDir, v))
}

// InputDirIn applies the In predicate on the "input_dir" field.
func InputDirIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldInputDir, vs...))
}

// InputDirNotIn applies the NotIn predicate on the "input_dir" field.
func InputDirNotIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldInputDir, vs...))
}

// InputDirGT applies the GT predicate on the "input_dir" field.
func InputDirGT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldInputDir, v))
}

// InputDirGTE applies the GTE predicate on the "input_dir" field.
func InputDirGTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldInputDir, v))
}

// InputDirLT applies the LT predicate on the "input_dir" field.
func InputDirLT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldInputDir, v))
}

// InputDirLTE applies the LTE predicate on the "input_dir" field.
func InputDirLTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldInputDir, v))
}

// InputDirContains applies the Contains predicate on the "input_dir" field.
func InputDirContains(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContains(FieldInputDir, v))
}

// InputDirHasPrefix applies the HasPrefix predicate on the "input_dir" field.
func InputDirHasPrefix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasPrefix(FieldInputDir, v))
}

// InputDirHasSuffix applies the HasSuffix predicate on the "input_dir" field.
func InputDirHasSuffix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasSuffix(FieldInputDir, v))
}

// InputDirEqualFold applies the EqualFold predicate on the "input_dir" field.
func InputDirEqualFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEqualFold(FieldInputDir, v))
}

// InputDirContainsFold applies the ContainsFold predicate on the "input_dir" field.
func InputDirContainsFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContainsFold(FieldInputDir, v))
}

// OutputDirEQ applies the EQ predicate on the "output_dir" field.
func OutputDirEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldOutputDir, v))
}

// OutputDirNEQ applies the NEQ predicate on the "output_dir" field.
func OutputDirNEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldOutputDir, v))
}

// OutputDirIn applies the In predicate on the "output_dir" field.
func OutputDirIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldOutputDir, vs...))
}

// OutputDirNotIn applies the NotIn predicate on the "output_dir" field.
func OutputDirNotIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldOutputDir, vs...))
}

// OutputDirGT applies the GT predicate on the "output_dir" field.
func OutputDirGT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldOutputDir, v))
}

// OutputDirGTE applies the GTE predicate on the "output_dir" field.
func OutputDirGTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldOutputDir, v))
}

// OutputDirLT applies the LT predicate on the "output_dir" field.
func OutputDirLT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldOutputDir, v))
}

// OutputDirLTE applies the LTE predicate on the "output_dir" field.
func OutputDirLTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldOutputDir, v))
}

// OutputDirContains applies the Contains predicate on the "output_dir" field.
func OutputDirContains(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContains(FieldOutputDir, v))
}

// OutputDirHasPrefix applies the HasPrefix predicate on the "output_dir" field.
func OutputDirHasPrefix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasPrefix(FieldOutputDir, v))
}

// OutputDirHasSuffix applies the HasSuffix predicate on the "output_dir" field.
func OutputDirHasSuffix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasSuffix(FieldOutputDir, v))
}

// OutputDirEqualFold applies the EqualFold predicate on the "output_dir" field.
func OutputDirEqualFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEqualFold(FieldOutputDir, v))
}

// OutputDirContainsFold applies the ContainsFold predicate on the "output_dir" field.
func OutputDirContainsFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContainsFold(FieldOutputDir, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContainsFold(FieldMode, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldContainsFold(FieldStatus, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldTotal, v))
}

// SucceededEQ applies the EQ predicate on the "succeeded" field.
func SucceededEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldSucceeded, v))
}

// SucceededNEQ applies the NEQ predicate on the "succeeded" field.
func SucceededNEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldSucceeded, v))
}

// SucceededIn applies the In predicate on the "succeeded" field.
func SucceededIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldSucceeded, vs...))
}

// SucceededNotIn applies the NotIn predicate on the "succeeded" field.
func SucceededNotIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldSucceeded, vs...))
}

// SucceededGT applies the GT predicate on the "succeeded" field.
func SucceededGT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldSucceeded, v))
}

// SucceededGTE applies the GTE predicate on the "succeeded" field.
func SucceededGTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldSucceeded, v))
}

// SucceededLT applies the LT predicate on the "succeeded" field.
func SucceededLT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldSucceeded, v))
}

// SucceededLTE applies the LTE predicate on the "succeeded" field.
func SucceededLTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldSucceeded, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldFailed, v))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v float32) predicate.BatchRun {
	return predicate.BatchRun(sql.FieldLTE(FieldSuccessRate, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.BatchRun {
	return predicate.BatchRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.OcrJob) predicate.BatchRun {
	return predicate.BatchRun(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BatchRun) predicate.BatchRun {
	return predicate.BatchRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BatchRun) predicate.BatchRun {
	return predicate.BatchRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BatchRun) predicate.BatchRun {
	return predicate.BatchRun(sql.NotPredicates(p))
}
