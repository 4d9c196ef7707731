package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ocrmark/ocrmark/internal/pipeline"
)

// OutcomeRecorder adapts the job repository to the orchestrator's Recorder
// hook for one batch run.
type OutcomeRecorder struct {
	jobs  OcrJobRepository
	runID uuid.UUID
}

func NewOutcomeRecorder(jobs OcrJobRepository, runID uuid.UUID) *OutcomeRecorder {
	return &OutcomeRecorder{jobs: jobs, runID: runID}
}

func (r *OutcomeRecorder) Record(ctx context.Context, outcome pipeline.Outcome) error {
	_, err := r.jobs.Record(ctx, r.runID, outcome)
	return err
}
