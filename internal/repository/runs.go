package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/gen/ent"
	"github.com/ocrmark/ocrmark/gen/ent/batchrun"
	"github.com/ocrmark/ocrmark/internal/batch"
)

type BatchRunRepository interface {
	Start(ctx context.Context, inputDir, outputDir string, mode constants.Mode) (*ent.BatchRun, error)
	Finish(ctx context.Context, runID uuid.UUID, summary batch.Summary) error
	Get(ctx context.Context, runID uuid.UUID) (*ent.BatchRun, error)
	Latest(ctx context.Context) (*ent.BatchRun, error)
}

type batchRunRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBatchRunRepository(entc *ent.Client, log *slog.Logger) BatchRunRepository {
	return &batchRunRepo{ent: entc, log: log}
}

func (r *batchRunRepo) Start(ctx context.Context, inputDir, outputDir string, mode constants.Mode) (*ent.BatchRun, error) {
	run, err := r.ent.BatchRun.
		Create().
		SetInputDir(inputDir).
		SetOutputDir(outputDir).
		SetMode(string(mode)).
		SetStatus(string(constants.RunStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_run start failed", "input_dir", inputDir, "err", err)
		return nil, err
	}
	r.log.Info("batch_run started", "run_id", run.ID, "input_dir", inputDir, "mode", string(mode))
	return run, nil
}

func (r *batchRunRepo) Finish(ctx context.Context, runID uuid.UUID, summary batch.Summary) error {
	_, err := r.ent.BatchRun.
		UpdateOneID(runID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.RunStatusFinished)).
		SetTotal(summary.Total).
		SetSucceeded(summary.Succeeded).
		SetFailed(summary.Failed).
		SetSuccessRate(float32(summary.SuccessRate)).
		Save(ctx)
	if err != nil {
		r.log.Error("batch_run finish failed", "run_id", runID, "err", err)
		return err
	}
	r.log.Info("batch_run finished", "run_id", runID,
		"total", summary.Total, "succeeded", summary.Succeeded, "failed", summary.Failed)
	return nil
}

func (r *batchRunRepo) Get(ctx context.Context, runID uuid.UUID) (*ent.BatchRun, error) {
	return r.ent.BatchRun.Get(ctx, runID)
}

func (r *batchRunRepo) Latest(ctx context.Context) (*ent.BatchRun, error) {
	return r.ent.BatchRun.
		Query().
		Order(ent.Desc(batchrun.FieldStartedAt)).
		First(ctx)
}
