// Command retryfailed re-processes images that failed in a previous batch
// run, at reduced concurrency and with a larger retry ceiling so rate limits
// are less likely to bite twice. With --scan it ignores the job store and
// instead diffs the input directory against produced artifacts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/gen/ent"
	"github.com/ocrmark/ocrmark/internal/baidu"
	"github.com/ocrmark/ocrmark/internal/batch"
	"github.com/ocrmark/ocrmark/internal/common"
	"github.com/ocrmark/ocrmark/internal/pipeline"
	repo "github.com/ocrmark/ocrmark/internal/repository"
)

func main() {
	var (
		runStr   = flag.String("run", "", "batch run ID to retry (default: most recent run)")
		scan     = flag.Bool("scan", false, "scan for missing/empty artifacts instead of querying the job store")
		in       = flag.String("in", "", "input directory (required with --scan)")
		out      = flag.String("out", "", "output directory (required with --scan; locates the SQLite store otherwise)")
		modeStr  = flag.String("mode", string(constants.ModeAccurate), "recognition mode")
		workers  = flag.Int("workers", 1, "worker pool size (slow by default to stay under rate limits)")
		attempts = flag.Int("attempts", 5, "retry attempt ceiling")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	mode, ok := constants.ParseMode(*modeStr)
	if !ok {
		logger.Error("unknown mode", "mode", *modeStr)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		tasks  []pipeline.Task
		opts   = []batch.Option{batch.WithWorkers(*workers)}
		finish func(batch.Summary)
	)

	if *scan {
		if *in == "" || *out == "" {
			logger.Error("--scan requires --in and --out")
			os.Exit(2)
		}
		var err error
		tasks, err = scanMissing(*in, *out, cfg.Batch.ArtifactSuffix)
		if err != nil {
			logger.Error("scan failed", "error", err)
			os.Exit(1)
		}
	} else {
		if cfg.Database.DSN == "" && *out == "" {
			logger.Error("--out (or DB_URL) is required to locate the job store")
			os.Exit(2)
		}
		entc, cleanup, err := repo.OpenStore(ctx, cfg.Database, false, filepath.Join(*out, "ocrmark.db"), logger)
		if err != nil {
			logger.Error("failed to open job store", "error", err)
			os.Exit(1)
		}
		defer cleanup()
		if err := repo.Migrate(ctx, entc, logger); err != nil {
			os.Exit(1)
		}

		runsRepo := repo.NewBatchRunRepository(entc, logger)
		jobsRepo := repo.NewOcrJobRepository(entc, logger)

		prev, err := lookupRun(ctx, runsRepo, *runStr)
		if err != nil {
			logger.Error("failed to look up batch run", "run", *runStr, "error", err)
			os.Exit(1)
		}
		if m, ok := constants.ParseMode(prev.Mode); ok {
			mode = m
		}

		failed, err := jobsRepo.ListFailed(ctx, prev.ID)
		if err != nil {
			logger.Error("failed to list failed jobs", "run_id", prev.ID, "error", err)
			os.Exit(1)
		}
		for _, job := range failed {
			tasks = append(tasks, pipeline.Task{
				SourcePath:   job.SourcePath,
				ArtifactPath: job.ArtifactPath,
			})
		}

		retryRun, err := runsRepo.Start(ctx, prev.InputDir, prev.OutputDir, mode)
		if err != nil {
			logger.Error("failed to start retry run", "error", err)
			os.Exit(1)
		}
		opts = append(opts, batch.WithRecorder(repo.NewOutcomeRecorder(jobsRepo, retryRun.ID)))
		finish = func(summary batch.Summary) {
			if err := runsRepo.Finish(ctx, retryRun.ID, summary); err != nil {
				logger.Error("failed to finish retry run", "error", err)
			}
		}
	}

	if len(tasks) == 0 {
		logger.Info("nothing to retry")
		return
	}
	logger.Info("retrying failed files", "count", len(tasks), "workers", *workers, "attempts", *attempts)

	gateway := baidu.NewClient(cfg.OCR, logger)
	processor := pipeline.NewProcessor(gateway, pipeline.RetryPolicy{
		MaxAttempts: *attempts,
		BaseDelay:   cfg.Retry.BaseDelay,
	}, logger)

	orch := batch.New(processor, logger, opts...)
	summary, _ := orch.RunTasks(ctx, tasks, mode)
	if finish != nil {
		finish(summary)
	}

	fmt.Printf("Retry complete: %d/%d recovered (%.1f%%)\n",
		summary.Succeeded, summary.Total, summary.SuccessRate)
}

func lookupRun(ctx context.Context, runs repo.BatchRunRepository, runStr string) (*ent.BatchRun, error) {
	if runStr == "" {
		return runs.Latest(ctx)
	}
	id, err := uuid.Parse(runStr)
	if err != nil {
		return nil, fmt.Errorf("invalid run id: %w", err)
	}
	return runs.Get(ctx, id)
}

// Artifacts below this size hold a header but no reconstructed content.
const minUsefulArtifact = 100

// scanMissing returns a task for every image whose artifact is absent or
// effectively empty.
func scanMissing(inputDir, outputDir, suffix string) ([]pipeline.Task, error) {
	all, err := batch.Discover(inputDir, outputDir, suffix)
	if err != nil {
		return nil, err
	}
	var missing []pipeline.Task
	for _, task := range all {
		info, err := os.Stat(task.ArtifactPath)
		if err != nil || info.Size() < minUsefulArtifact {
			missing = append(missing, task)
		}
	}
	return missing, nil
}
