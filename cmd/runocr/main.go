package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/baidu"
	"github.com/ocrmark/ocrmark/internal/common"
	"github.com/ocrmark/ocrmark/internal/pipeline"
)

func main() {
	var (
		modeStr = flag.String("mode", string(constants.ModeAccurate), "recognition mode: general|accurate|table|handwriting")
		out     = flag.String("out", "", "artifact path (default: print to stdout)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "runocr [-mode MODE] [-out FILE] <image>")
		os.Exit(2)
	}
	source := flag.Arg(0)
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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gateway := baidu.NewClient(cfg.OCR, logger)
	processor := pipeline.NewProcessor(gateway, pipeline.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
	}, logger)

	artifact := *out
	toStdout := artifact == ""
	if toStdout {
		tmp, err := os.CreateTemp("", "runocr-*.md")
		if err != nil {
			logger.Error("create temp artifact", "error", err)
			os.Exit(1)
		}
		artifact = tmp.Name()
		_ = tmp.Close()
		defer func() { _ = os.Remove(artifact) }()
	}

	outcome := processor.Process(ctx, pipeline.Task{SourcePath: source, ArtifactPath: artifact}, mode)
	if !outcome.Success {
		logger.Error("recognition failed",
			"source", source, "error", outcome.Error, "retries", outcome.Retries)
		os.Exit(1)
	}

	logger.Info("recognition OK",
		"source", source,
		"chars", outcome.CharCount,
		"words", outcome.WordCount,
		"retries", outcome.Retries,
		"duration_ms", outcome.Duration.Milliseconds(),
	)

	if toStdout {
		content, err := os.ReadFile(artifact)
		if err != nil {
			logger.Error("read artifact", "error", err)
			os.Exit(1)
		}
		fmt.Print(string(content))
	}
}
