// Package pipeline drives one image end to end: read bytes, recognize with
// backoff retry, reconstruct Markdown, persist the artifact, and report an
// outcome. Failures never escape as errors; every task yields an Outcome so
// the batch continues.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/baidu"
	"github.com/ocrmark/ocrmark/internal/common"
	"github.com/ocrmark/ocrmark/internal/layout"
)

// Recognizer is the gateway contract the processor depends on. Stubbed in
// tests.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, mode constants.Mode) (baidu.Result, error)
}

// Task is one unit of work: a source image and its artifact destination.
type Task struct {
	SourcePath   string
	ArtifactPath string
}

// Outcome is the terminal record of one processed task.
type Outcome struct {
	Success      bool
	SourcePath   string
	ArtifactPath string
	Duration     time.Duration
	CharCount    int
	WordCount    int
	Retries      int
	Error        string
}

type Processor struct {
	gateway Recognizer
	policy  RetryPolicy
	log     *slog.Logger

	// overridable in tests
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

func NewProcessor(gateway Recognizer, policy RetryPolicy, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &Processor{
		gateway: gateway,
		policy:  policy,
		log:     logger,
		sleep:   sleep,
		now:     time.Now,
	}
}

// Process runs one task in the given mode. Auth, rate-limit and transport
// failures are retried with exponential backoff up to the policy ceiling;
// remote application errors, empty content and local I/O errors are
// terminal.
func (p *Processor) Process(ctx context.Context, task Task, mode constants.Mode) Outcome {
	// One request ID per task; the gateway logs it on every attempt.
	ctx = common.WithRequestID(ctx, uuid.New().String())
	start := p.now()

	image, err := os.ReadFile(task.SourcePath)
	if err != nil {
		p.log.Error("pipeline.read_failed", "source", task.SourcePath, "error", err)
		return p.failure(task, start, 0, fmt.Sprintf("read source: %v", err))
	}

	var res baidu.Result
	retries := 0
	for attempt := 0; ; attempt++ {
		res, err = p.gateway.Recognize(ctx, image, mode)
		if err == nil {
			retries = attempt
			break
		}
		if !common.IsRetryable(err) {
			p.log.Error("pipeline.recognize_failed",
				"source", task.SourcePath, "attempt", attempt+1, "error", err)
			return p.failure(task, start, attempt, err.Error())
		}
		if attempt == p.policy.MaxAttempts-1 {
			p.log.Error("pipeline.retries_exhausted",
				"source", task.SourcePath, "attempts", p.policy.MaxAttempts, "error", err)
			return p.failure(task, start, attempt,
				fmt.Sprintf("%v (after %d attempts)", err, p.policy.MaxAttempts))
		}

		delay := p.policy.Delay(attempt)
		p.log.Warn("pipeline.retrying",
			"source", task.SourcePath,
			"attempt", attempt+1,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
		if serr := p.sleep(ctx, delay); serr != nil {
			return p.failure(task, start, attempt, fmt.Sprintf("canceled during backoff: %v", serr))
		}
	}

	var content string
	if mode == constants.ModeTable {
		content = layout.ToMarkdownTable(res.Table)
	} else {
		content = layout.ToMarkdownText(res.Recognition)
	}
	if strings.TrimSpace(content) == "" {
		// Distinct terminal condition: recognition succeeded but produced
		// nothing usable. Never retried.
		p.log.Warn("pipeline.empty_content", "source", task.SourcePath)
		out := p.failure(task, start, retries, common.ErrEmptyContent.Error())
		return out
	}

	artifact := layout.BuildArtifact(content, mode, p.now())
	if err := os.WriteFile(task.ArtifactPath, []byte(artifact), 0o644); err != nil {
		p.log.Error("pipeline.write_failed", "artifact", task.ArtifactPath, "error", err)
		return p.failure(task, start, retries, fmt.Sprintf("write artifact: %v", err))
	}

	out := Outcome{
		Success:      true,
		SourcePath:   task.SourcePath,
		ArtifactPath: task.ArtifactPath,
		Duration:     p.now().Sub(start),
		CharCount:    utf8.RuneCountInString(artifact),
		WordCount:    len(strings.Fields(artifact)),
		Retries:      retries,
	}
	p.log.Info("pipeline.done",
		"source", task.SourcePath,
		"artifact", task.ArtifactPath,
		"chars", out.CharCount,
		"words", out.WordCount,
		"retries", out.Retries,
		"elapsed_ms", out.Duration.Milliseconds(),
	)
	return out
}

func (p *Processor) failure(task Task, start time.Time, retries int, msg string) Outcome {
	return Outcome{
		Success:      false,
		SourcePath:   task.SourcePath,
		ArtifactPath: task.ArtifactPath,
		Duration:     p.now().Sub(start),
		Retries:      retries,
		Error:        msg,
	}
}
