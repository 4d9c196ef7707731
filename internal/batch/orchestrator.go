// Package batch fans image tasks out across a fixed worker pool and folds
// the outcomes into a summary. Workers return outcomes over a channel; only
// the orchestrating goroutine touches the aggregate counters.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/common"
	"github.com/ocrmark/ocrmark/internal/pipeline"
)

// ErrNoInputFiles distinguishes "nothing to do" from a crash. Callers report
// it instead of treating it as a processing failure.
var ErrNoInputFiles = errors.New("no input files found")

// Runner is the single-item pipeline contract. Stubbed in tests.
type Runner interface {
	Process(ctx context.Context, task pipeline.Task, mode constants.Mode) pipeline.Outcome
}

// Recorder persists outcomes as they arrive. A nil Recorder disables
// persistence.
type Recorder interface {
	Record(ctx context.Context, outcome pipeline.Outcome) error
}

// Summary aggregates one batch run. SuccessRate is a percentage over the
// total number of discovered files.
type Summary struct {
	Total       int
	Succeeded   int
	Failed      int
	SuccessRate float64
	Elapsed     time.Duration
	AvgPerFile  time.Duration
}

type Orchestrator struct {
	runner   Runner
	recorder Recorder
	log      *slog.Logger

	workers       int
	suffix        string
	progressEvery int
}

type Option func(*Orchestrator)

func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

func WithArtifactSuffix(s string) Option {
	return func(o *Orchestrator) {
		if s != "" {
			o.suffix = s
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

func WithProgressEvery(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.progressEvery = n
		}
	}
}

func New(runner Runner, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		runner:        runner,
		log:           logger,
		workers:       3,
		suffix:        constants.ArtifactSuffix,
		progressEvery: 10,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run discovers input images, processes them across the pool, and returns
// the summary plus the per-file outcomes sorted by source path. Individual
// task failures never abort the run; the returned error covers setup
// problems only.
func (o *Orchestrator) Run(ctx context.Context, inputDir, outputDir string, mode constants.Mode) (Summary, []pipeline.Outcome, error) {
	tasks, err := Discover(inputDir, outputDir, o.suffix)
	if err != nil {
		return Summary{}, nil, err
	}
	if len(tasks) == 0 {
		return Summary{}, nil, ErrNoInputFiles
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, nil, fmt.Errorf("create output directory: %w", err)
	}

	o.log.Info("batch.start",
		"input_dir", inputDir,
		"output_dir", outputDir,
		"mode", string(mode),
		"files", len(tasks),
		"workers", o.workers,
	)

	summary, outcomes := o.RunTasks(ctx, tasks, mode)
	return summary, outcomes, nil
}

// RunTasks processes an explicit task list across the pool. Used directly by
// the failed-job reprocessor, which derives its tasks from the job store
// rather than from directory discovery.
func (o *Orchestrator) RunTasks(ctx context.Context, tasks []pipeline.Task, mode constants.Mode) (Summary, []pipeline.Outcome) {
	start := time.Now()
	outcomes := o.dispatch(ctx, tasks, mode)
	elapsed := time.Since(start)

	// Deterministic emission regardless of completion order.
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].SourcePath < outcomes[j].SourcePath
	})

	summary := summarize(outcomes, len(tasks), elapsed)
	o.log.Info("batch.done",
		"run_id", common.RunIDFromContext(ctx),
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"success_rate", fmt.Sprintf("%.1f%%", summary.SuccessRate),
		"elapsed_ms", summary.Elapsed.Milliseconds(),
	)
	return summary, outcomes
}

// dispatch feeds tasks to the pool and aggregates outcomes on the calling
// goroutine. The summary reflects exactly the multiset of outcomes no matter
// how completions interleave.
func (o *Orchestrator) dispatch(ctx context.Context, tasks []pipeline.Task, mode constants.Mode) []pipeline.Outcome {
	taskCh := make(chan pipeline.Task)
	resultCh := make(chan pipeline.Outcome)

	var wg sync.WaitGroup
	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for task := range taskCh {
				resultCh <- o.runner.Process(ctx, task, mode)
			}
		}(i)
	}

	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			// Cancellation is honored between dispatches; tasks not yet
			// handed out are reported as canceled below.
			select {
			case <-ctx.Done():
				return
			case taskCh <- task:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	outcomes := make([]pipeline.Outcome, 0, len(tasks))
	succeeded := 0
	for out := range resultCh {
		outcomes = append(outcomes, out)
		if out.Success {
			succeeded++
		}
		if o.recorder != nil {
			if err := o.recorder.Record(ctx, out); err != nil {
				o.log.Warn("batch.record_failed", "source", out.SourcePath, "error", err)
			}
		}
		if len(outcomes)%o.progressEvery == 0 {
			o.log.Info("batch.progress",
				"processed", len(outcomes),
				"total", len(tasks),
				"succeeded", succeeded,
				"failed", len(outcomes)-succeeded,
			)
		}
	}

	// Tasks never dispatched because of cancellation still owe an outcome.
	if len(outcomes) < len(tasks) {
		reason := "not dispatched"
		if cause := context.Cause(ctx); cause != nil {
			reason = cause.Error()
		}
		seen := make(map[string]struct{}, len(outcomes))
		for _, out := range outcomes {
			seen[out.SourcePath] = struct{}{}
		}
		for _, task := range tasks {
			if _, ok := seen[task.SourcePath]; !ok {
				outcomes = append(outcomes, pipeline.Outcome{
					SourcePath:   task.SourcePath,
					ArtifactPath: task.ArtifactPath,
					Error:        reason,
				})
			}
		}
	}
	return outcomes
}

func summarize(outcomes []pipeline.Outcome, total int, elapsed time.Duration) Summary {
	s := Summary{Total: total, Elapsed: elapsed}
	for _, out := range outcomes {
		if out.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	if total > 0 {
		s.SuccessRate = float64(s.Succeeded) / float64(total) * 100
		s.AvgPerFile = elapsed / time.Duration(total)
	}
	return s
}
