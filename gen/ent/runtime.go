// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/ocrmark/ocrmark/db/ent/schema"
	"github.com/ocrmark/ocrmark/gen/ent/batchrun"
	"github.com/ocrmark/ocrmark/gen/ent/ocrjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchrunFields := schema.BatchRun{}.Fields()
	_ = batchrunFields
	// batchrunDescInputDir is the schema descriptor for input_dir field.
	batchrunDescInputDir := batchrunFields[1].Descriptor()
	// batchrun.InputDirValidator is a validator for the "input_dir" field. It is called by the builders before save.
	batchrun.InputDirValidator = batchrunDescInputDir.Validators[0].(func(string) error)
	// batchrunDescOutputDir is the schema descriptor for output_dir field.
	batchrunDescOutputDir := batchrunFields[2].Descriptor()
	// batchrun.OutputDirValidator is a validator for the "output_dir" field. It is called by the builders before save.
	batchrun.OutputDirValidator = batchrunDescOutputDir.Validators[0].(func(string) error)
	// batchrunDescMode is the schema descriptor for mode field.
	batchrunDescMode := batchrunFields[3].Descriptor()
	// batchrun.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	batchrun.ModeValidator = func() func(string) error {
		validators := batchrunDescMode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mode string) error {
			for _, fn := range fns {
				if err := fn(mode); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchrunDescStartedAt is the schema descriptor for started_at field.
	batchrunDescStartedAt := batchrunFields[4].Descriptor()
	// batchrun.DefaultStartedAt holds the default value on creation for the started_at field.
	batchrun.DefaultStartedAt = batchrunDescStartedAt.Default.(func() time.Time)
	// batchrunDescStatus is the schema descriptor for status field.
	batchrunDescStatus := batchrunFields[6].Descriptor()
	// batchrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batchrun.StatusValidator = func() func(string) error {
		validators := batchrunDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchrunDescTotal is the schema descriptor for total field.
	batchrunDescTotal := batchrunFields[7].Descriptor()
	// batchrun.DefaultTotal holds the default value on creation for the total field.
	batchrun.DefaultTotal = batchrunDescTotal.Default.(int)
	// batchrunDescSucceeded is the schema descriptor for succeeded field.
	batchrunDescSucceeded := batchrunFields[8].Descriptor()
	// batchrun.DefaultSucceeded holds the default value on creation for the succeeded field.
	batchrun.DefaultSucceeded = batchrunDescSucceeded.Default.(int)
	// batchrunDescFailed is the schema descriptor for failed field.
	batchrunDescFailed := batchrunFields[9].Descriptor()
	// batchrun.DefaultFailed holds the default value on creation for the failed field.
	batchrun.DefaultFailed = batchrunDescFailed.Default.(int)
	// batchrunDescSuccessRate is the schema descriptor for success_rate field.
	batchrunDescSuccessRate := batchrunFields[10].Descriptor()
	// batchrun.DefaultSuccessRate holds the default value on creation for the success_rate field.
	batchrun.DefaultSuccessRate = batchrunDescSuccessRate.Default.(float32)
	// batchrunDescID is the schema descriptor for id field.
	batchrunDescID := batchrunFields[0].Descriptor()
	// batchrun.DefaultID holds the default value on creation for the id field.
	batchrun.DefaultID = batchrunDescID.Default.(func() uuid.UUID)
	ocrjobFields := schema.OcrJob{}.Fields()
	_ = ocrjobFields
	// ocrjobDescSourcePath is the schema descriptor for source_path field.
	ocrjobDescSourcePath := ocrjobFields[2].Descriptor()
	// ocrjob.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	ocrjob.SourcePathValidator = ocrjobDescSourcePath.Validators[0].(func(string) error)
	// ocrjobDescArtifactPath is the schema descriptor for artifact_path field.
	ocrjobDescArtifactPath := ocrjobFields[3].Descriptor()
	// ocrjob.ArtifactPathValidator is a validator for the "artifact_path" field. It is called by the builders before save.
	ocrjob.ArtifactPathValidator = ocrjobDescArtifactPath.Validators[0].(func(string) error)
	// ocrjobDescStatus is the schema descriptor for status field.
	ocrjobDescStatus := ocrjobFields[4].Descriptor()
	// ocrjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ocrjob.StatusValidator = func() func(string) error {
		validators := ocrjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrjobDescRecordedAt is the schema descriptor for recorded_at field.
	ocrjobDescRecordedAt := ocrjobFields[5].Descriptor()
	// ocrjob.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	ocrjob.DefaultRecordedAt = ocrjobDescRecordedAt.Default.(func() time.Time)
	// ocrjobDescRetries is the schema descriptor for retries field.
	ocrjobDescRetries := ocrjobFields[6].Descriptor()
	// ocrjob.DefaultRetries holds the default value on creation for the retries field.
	ocrjob.DefaultRetries = ocrjobDescRetries.Default.(int)
	// ocrjobDescCharCount is the schema descriptor for char_count field.
	ocrjobDescCharCount := ocrjobFields[7].Descriptor()
	// ocrjob.DefaultCharCount holds the default value on creation for the char_count field.
	ocrjob.DefaultCharCount = ocrjobDescCharCount.Default.(int)
	// ocrjobDescWordCount is the schema descriptor for word_count field.
	ocrjobDescWordCount := ocrjobFields[8].Descriptor()
	// ocrjob.DefaultWordCount holds the default value on creation for the word_count field.
	ocrjob.DefaultWordCount = ocrjobDescWordCount.Default.(int)
	// ocrjobDescDurationMs is the schema descriptor for duration_ms field.
	ocrjobDescDurationMs := ocrjobFields[9].Descriptor()
	// ocrjob.DefaultDurationMs holds the default value on creation for the duration_ms field.
	ocrjob.DefaultDurationMs = ocrjobDescDurationMs.Default.(int64)
	// ocrjobDescID is the schema descriptor for id field.
	ocrjobDescID := ocrjobFields[0].Descriptor()
	// ocrjob.DefaultID holds the default value on creation for the id field.
	ocrjob.DefaultID = ocrjobDescID.Default.(func() uuid.UUID)
}
