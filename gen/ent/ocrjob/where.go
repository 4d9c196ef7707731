// Code generated by ent, DO NOT EDIT.

package ocrjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldRunID, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldSourcePath, v))
}

// ArtifactPath applies equality check predicate on the "artifact_path" field. It's identical to ArtifactPathEQ.
func ArtifactPath(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldArtifactPath, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldStatus, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldRecordedAt, v))
}

// Retries applies equality check predicate on the "retries" field. It's identical to RetriesEQ.
func Retries(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldRetries, v))
}

// CharCount applies equality check predicate on the "char_count" field. It's identical to CharCountEQ.
func CharCount(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldCharCount, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldWordCount, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldErrorMessage, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldRunID, vs...))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldContainsFold(FieldSourcePath, v))
}

// ArtifactPathEQ applies the EQ predicate on the "artifact_path" field.
func ArtifactPathEQ(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldArtifactPath, v))
}

// ArtifactPathNEQ applies the NEQ predicate on the "artifact_path" field.
func ArtifactPathNEQ(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldArtifactPath, v))
}

// ArtifactPathIn applies the In predicate on the "artifact_path" field.
func ArtifactPathIn(vs ...string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldArtifactPath, vs...))
}

// ArtifactPathNotIn applies the NotIn predicate on the "artifact_path" field.
func ArtifactPathNotIn(vs ...string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldArtifactPath, vs...))
}

// ArtifactPathGT applies the GT predicate on the "artifact_path" field.
func ArtifactPathGT(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldArtifactPath, v))
}

// ArtifactPathGTE applies the GTE predicate on the "artifact_path" field.
func ArtifactPathGTE(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldArtifactPath, v))
}

// ArtifactPathLT applies the LT predicate on the "artifact_path" field.
func ArtifactPathLT(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldArtifactPath, v))
}

// ArtifactPathLTE applies the LTE predicate on the "artifact_path" field.
func ArtifactPathLTE(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldArtifactPath, v))
}

// ArtifactPathContains applies the Contains predicate on the "artifact_path" field.
func ArtifactPathContains(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldContains(FieldArtifactPath, v))
}

// ArtifactPathHasPrefix applies the HasPrefix predicate on the "artifact_path" field.
func ArtifactPathHasPrefix(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldHasPrefix(FieldArtifactPath, v))
}

// ArtifactPathHasSuffix applies the HasSuffix predicate on the "artifact_path" field.
func ArtifactPathHasSuffix(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldHasSuffix(FieldArtifactPath, v))
}

// ArtifactPathEqualFold applies the EqualFold predicate on the "artifact_path" field.
func ArtifactPathEqualFold(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEqualFold(FieldArtifactPath, v))
}

// ArtifactPathContainsFold applies the ContainsFold predicate on the "artifact_path" field.
func ArtifactPathContainsFold(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldContainsFold(FieldArtifactPath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldContainsFold(FieldStatus, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldRecordedAt, v))
}

// RetriesEQ applies the EQ predicate on the "retries" field.
func RetriesEQ(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldRetries, v))
}

// RetriesNEQ applies the NEQ predicate on the "retries" field.
func RetriesNEQ(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldRetries, v))
}

// RetriesIn applies the In predicate on the "retries" field.
func RetriesIn(vs ...int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldRetries, vs...))
}

// RetriesNotIn applies the NotIn predicate on the "retries" field.
func RetriesNotIn(vs ...int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldRetries, vs...))
}

// RetriesGT applies the GT predicate on the "retries" field.
func RetriesGT(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldRetries, v))
}

// RetriesGTE applies the GTE predicate on the "retries" field.
func RetriesGTE(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldRetries, v))
}

// RetriesLT applies the LT predicate on the "retries" field.
func RetriesLT(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldRetries, v))
}

// RetriesLTE applies the LTE predicate on the "retries" field.
func RetriesLTE(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldRetries, v))
}

// CharCountEQ applies the EQ predicate on the "char_count" field.
func CharCountEQ(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldCharCount, v))
}

// CharCountNEQ applies the NEQ predicate on the "char_count" field.
func CharCountNEQ(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldCharCount, v))
}

// CharCountIn applies the In predicate on the "char_count" field.
func CharCountIn(vs ...int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldCharCount, vs...))
}

// CharCountNotIn applies the NotIn predicate on the "char_count" field.
func CharCountNotIn(vs ...int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldCharCount, vs...))
}

// CharCountGT applies the GT predicate on the "char_count" field.
func CharCountGT(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldCharCount, v))
}

// CharCountGTE applies the GTE predicate on the "char_count" field.
func CharCountGTE(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldCharCount, v))
}

// CharCountLT applies the LT predicate on the "char_count" field.
func CharCountLT(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldCharCount, v))
}

// CharCountLTE applies the LTE predicate on the "char_count" field.
func CharCountLTE(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldCharCount, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldWordCount, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldDurationMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.OcrJob {
	return predicate.OcrJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.OcrJob {
	return predicate.OcrJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.OcrJob {
	return predicate.OcrJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.OcrJob {
	return predicate.OcrJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.BatchRun) predicate.OcrJob {
	return predicate.OcrJob(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OcrJob) predicate.OcrJob {
	return predicate.OcrJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OcrJob) predicate.OcrJob {
	return predicate.OcrJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OcrJob) predicate.OcrJob {
	return predicate.OcrJob(sql.NotPredicates(p))
}
