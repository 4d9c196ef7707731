package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/baidu"
	"github.com/ocrmark/ocrmark/internal/batch"
	"github.com/ocrmark/ocrmark/internal/common"
	"github.com/ocrmark/ocrmark/internal/pipeline"
	"github.com/ocrmark/ocrmark/internal/report"
	repo "github.com/ocrmark/ocrmark/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		in      = flag.String("in", "", "input directory with images (required)")
		out     = flag.String("out", "", "output directory for Markdown artifacts (default: <in>_ocr)")
		modeStr = flag.String("mode", string(constants.ModeAccurate), "recognition mode: general|accurate|table|handwriting")
		workers = flag.Int("workers", 0, "worker pool size (default from BATCH_CONCURRENCY, 3)")
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite job store")
		verbose = flag.Bool("v", false, "verbose (debug) logging")
	)
	flag.Parse()

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(2)
	}
	mode, ok := constants.ParseMode(*modeStr)
	if !ok {
		printError("Error: unknown mode %q\n", *modeStr)
		os.Exit(2)
	}
	if *out == "" {
		*out = filepath.Clean(*in) + "_ocr"
	}

	// Setup logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if info, err := os.Stat(*in); err != nil || !info.IsDir() {
		logger.Error("input directory not accessible", "dir", *in, "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Error("failed to create output directory", "dir", *out, "error", err)
		os.Exit(1)
	}

	// Open the job store: Postgres when DB_URL is set, local SQLite otherwise.
	entc, cleanup, err := repo.OpenStore(ctx, cfg.Database, *inmem, filepath.Join(*out, "ocrmark.db"), logger)
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

	run, err := runsRepo.Start(ctx, *in, *out, mode)
	if err != nil {
		logger.Error("failed to start batch run", "error", err)
		os.Exit(1)
	}
	ctx = common.WithRunID(ctx, run.ID.String())

	gateway := baidu.NewClient(cfg.OCR, logger)
	processor := pipeline.NewProcessor(gateway, pipeline.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
	}, logger)

	concurrency := cfg.Batch.Concurrency
	if *workers > 0 {
		concurrency = *workers
	}
	orch := batch.New(processor, logger,
		batch.WithWorkers(concurrency),
		batch.WithArtifactSuffix(cfg.Batch.ArtifactSuffix),
		batch.WithRecorder(repo.NewOutcomeRecorder(jobsRepo, run.ID)),
	)

	summary, outcomes, err := orch.Run(ctx, *in, *out, mode)
	if err != nil {
		if errors.Is(err, batch.ErrNoInputFiles) {
			logger.Error("no image files found", "dir", *in)
		} else {
			logger.Error("batch setup failed", "error", err)
		}
		os.Exit(1)
	}

	if err := runsRepo.Finish(ctx, run.ID, summary); err != nil {
		logger.Error("failed to finish batch run", "error", err)
	}

	// Reports: Markdown summary plus an XLSX outcome workbook.
	reportPath := filepath.Join(*out, "ocr_batch_report.md")
	if err := os.WriteFile(reportPath, []byte(report.Markdown(summary, outcomes, time.Now())), 0o644); err != nil {
		logger.Error("failed to write report", "path", reportPath, "error", err)
	}
	xlsxPath := filepath.Join(*out, "ocr_batch_results.xlsx")
	if xlsxBytes, err := report.XLSX(outcomes, logger); err != nil {
		logger.Error("failed to build xlsx export", "error", err)
	} else if err := os.WriteFile(xlsxPath, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write xlsx export", "path", xlsxPath, "error", err)
	}

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Total files: %d\n", summary.Total)
	fmt.Printf("- Succeeded: %d\n", summary.Succeeded)
	fmt.Printf("- Failed: %d\n", summary.Failed)
	fmt.Printf("- Success rate: %.1f%%\n", summary.SuccessRate)
	fmt.Printf("- Report: %s\n", reportPath)
}
