package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/gen/ent"
	"github.com/ocrmark/ocrmark/gen/ent/ocrjob"
	"github.com/ocrmark/ocrmark/internal/pipeline"
)

type OcrJobRepository interface {
	Record(ctx context.Context, runID uuid.UUID, outcome pipeline.Outcome) (*ent.OcrJob, error)
	ListFailed(ctx context.Context, runID uuid.UUID) ([]*ent.OcrJob, error)
}

type ocrJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewOcrJobRepository(entc *ent.Client, log *slog.Logger) OcrJobRepository {
	return &ocrJobRepo{ent: entc, log: log}
}

func (r *ocrJobRepo) Record(ctx context.Context, runID uuid.UUID, outcome pipeline.Outcome) (*ent.OcrJob, error) {
	status := constants.JobStatusFailed
	if outcome.Success {
		status = constants.JobStatusSucceeded
	}
	create := r.ent.OcrJob.
		Create().
		SetRunID(runID).
		SetSourcePath(outcome.SourcePath).
		SetArtifactPath(outcome.ArtifactPath).
		SetStatus(string(status)).
		SetRetries(outcome.Retries).
		SetCharCount(outcome.CharCount).
		SetWordCount(outcome.WordCount).
		SetDurationMs(outcome.Duration.Milliseconds())
	if outcome.Error != "" {
		create = create.SetErrorMessage(outcome.Error)
	}

	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("ocr_job record failed", "source", outcome.SourcePath, "err", err)
		return nil, err
	}
	r.log.Debug("ocr_job recorded", "job_id", job.ID, "source", outcome.SourcePath, "status", string(status))
	return job, nil
}

func (r *ocrJobRepo) ListFailed(ctx context.Context, runID uuid.UUID) ([]*ent.OcrJob, error) {
	return r.ent.OcrJob.
		Query().
		Where(
			ocrjob.RunID(runID),
			ocrjob.Status(string(constants.JobStatusFailed)),
		).
		Order(ent.Asc(ocrjob.FieldSourcePath)).
		All(ctx)
}
