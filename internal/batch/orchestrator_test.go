package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/pipeline"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubRunner succeeds unless the source path matches a configured failure.
type stubRunner struct {
	mu       sync.Mutex
	failures map[string]string
	delay    time.Duration
	seen     []string
}

func (r *stubRunner) Process(_ context.Context, task pipeline.Task, _ constants.Mode) pipeline.Outcome {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	r.seen = append(r.seen, task.SourcePath)
	r.mu.Unlock()

	if msg, ok := r.failures[task.SourcePath]; ok {
		return pipeline.Outcome{
			SourcePath:   task.SourcePath,
			ArtifactPath: task.ArtifactPath,
			Error:        msg,
		}
	}
	return pipeline.Outcome{
		Success:      true,
		SourcePath:   task.SourcePath,
		ArtifactPath: task.ArtifactPath,
		CharCount:    42,
		WordCount:    7,
	}
}

func makeImages(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
}

func TestRun_MixedOutcomes(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	makeImages(t, in, "a.jpg", "b.png", "c.tiff")

	runner := &stubRunner{failures: map[string]string{
		filepath.Join(in, "b.png"): "no content extracted",
	}}
	orch := New(runner, testLogger())

	summary, outcomes, err := orch.Run(context.Background(), in, out, constants.ModeGeneral)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if summary.Total != 3 || summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("summary: got %+v, want Total=3 Succeeded=2 Failed=1", summary)
	}
	if math.Abs(summary.SuccessRate-66.666) > 0.1 {
		t.Errorf("success rate: got %.3f, want ~66.7", summary.SuccessRate)
	}
	if len(outcomes) != 3 {
		t.Fatalf("outcomes: got %d, want 3", len(outcomes))
	}
	if !sort.SliceIsSorted(outcomes, func(i, j int) bool {
		return outcomes[i].SourcePath < outcomes[j].SourcePath
	}) {
		t.Error("outcomes not sorted by source path")
	}
}

func TestRun_NoInputFiles(t *testing.T) {
	in := t.TempDir()
	makeImages(t, in, "notes.txt", ".hidden.jpg")

	orch := New(&stubRunner{}, testLogger())
	_, _, err := orch.Run(context.Background(), in, t.TempDir(), constants.ModeGeneral)
	if err != ErrNoInputFiles {
		t.Errorf("got %v, want ErrNoInputFiles", err)
	}
}

func TestRun_CreatesOutputDir(t *testing.T) {
	in := t.TempDir()
	makeImages(t, in, "a.jpg")
	out := filepath.Join(t.TempDir(), "nested", "out")

	orch := New(&stubRunner{}, testLogger())
	if _, _, err := orch.Run(context.Background(), in, out, constants.ModeGeneral); err != nil {
		t.Fatalf("run: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || !fi.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestRunTasks_NoLostOrDuplicatedOutcomes(t *testing.T) {
	var tasks []pipeline.Task
	failures := map[string]string{}
	for i := 0; i < 50; i++ {
		src := fmt.Sprintf("/in/img_%02d.jpg", i)
		tasks = append(tasks, pipeline.Task{SourcePath: src, ArtifactPath: src + ".md"})
		if i%7 == 0 {
			failures[src] = "remote error"
		}
	}

	runner := &stubRunner{failures: failures, delay: time.Millisecond}
	orch := New(runner, testLogger(), WithWorkers(3))

	summary, outcomes := orch.RunTasks(context.Background(), tasks, constants.ModeAccurate)

	if summary.Succeeded+summary.Failed != 50 {
		t.Errorf("succeeded(%d)+failed(%d) != 50", summary.Succeeded, summary.Failed)
	}
	if len(outcomes) != 50 {
		t.Fatalf("outcomes: got %d, want 50", len(outcomes))
	}
	seen := make(map[string]int)
	for _, out := range outcomes {
		seen[out.SourcePath]++
	}
	for _, task := range tasks {
		if seen[task.SourcePath] != 1 {
			t.Errorf("task %s reported %d times", task.SourcePath, seen[task.SourcePath])
		}
	}
	if summary.Failed != 8 {
		t.Errorf("failed: got %d, want 8", summary.Failed)
	}
}

func TestRunTasks_Idempotent(t *testing.T) {
	var tasks []pipeline.Task
	for i := 0; i < 12; i++ {
		src := fmt.Sprintf("/in/img_%02d.jpg", i)
		tasks = append(tasks, pipeline.Task{SourcePath: src, ArtifactPath: src + ".md"})
	}
	runner := &stubRunner{failures: map[string]string{"/in/img_03.jpg": "boom"}}
	orch := New(runner, testLogger(), WithWorkers(4))

	first, _ := orch.RunTasks(context.Background(), tasks, constants.ModeGeneral)
	second, _ := orch.RunTasks(context.Background(), tasks, constants.ModeGeneral)

	if first.Succeeded != second.Succeeded || first.Failed != second.Failed {
		t.Errorf("runs disagree: first %+v, second %+v", first, second)
	}
}

func TestRunTasks_CanceledContext(t *testing.T) {
	var tasks []pipeline.Task
	for i := 0; i < 20; i++ {
		src := fmt.Sprintf("/in/img_%02d.jpg", i)
		tasks = append(tasks, pipeline.Task{SourcePath: src, ArtifactPath: src + ".md"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	orch := New(&stubRunner{}, testLogger(), WithWorkers(2))
	summary, outcomes := orch.RunTasks(ctx, tasks, constants.ModeGeneral)

	if len(outcomes) != 20 {
		t.Fatalf("every task owes an outcome: got %d, want 20", len(outcomes))
	}
	if summary.Succeeded+summary.Failed != 20 {
		t.Errorf("summary does not cover all tasks: %+v", summary)
	}
	// At least the undispatched tail must carry the cancellation reason.
	foundCanceled := false
	for _, out := range outcomes {
		if !out.Success && strings.Contains(out.Error, "canceled") {
			foundCanceled = true
			break
		}
	}
	if summary.Failed > 0 && !foundCanceled {
		t.Error("no outcome carries the cancellation reason")
	}
}

// recordingRecorder collects everything handed to it.
type recordingRecorder struct {
	mu   sync.Mutex
	outs []pipeline.Outcome
}

func (r *recordingRecorder) Record(_ context.Context, out pipeline.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outs = append(r.outs, out)
	return nil
}

func TestRunTasks_RecorderSeesEveryOutcome(t *testing.T) {
	var tasks []pipeline.Task
	for i := 0; i < 9; i++ {
		src := fmt.Sprintf("/in/img_%d.jpg", i)
		tasks = append(tasks, pipeline.Task{SourcePath: src, ArtifactPath: src + ".md"})
	}

	rec := &recordingRecorder{}
	orch := New(&stubRunner{}, testLogger(), WithWorkers(3), WithRecorder(rec))
	orch.RunTasks(context.Background(), tasks, constants.ModeGeneral)

	if len(rec.outs) != 9 {
		t.Errorf("recorder saw %d outcomes, want 9", len(rec.outs))
	}
}

func TestDiscover(t *testing.T) {
	in := t.TempDir()
	makeImages(t, in,
		"b.PNG", "a.jpg", "c.tif", "d.bmp", "readme.md", ".dotfile.jpg", "photo.jpeg")
	if err := os.Mkdir(filepath.Join(in, "sub.jpg"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	tasks, err := Discover(in, "/out", "_ocr.md")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	var names []string
	for _, task := range tasks {
		names = append(names, filepath.Base(task.SourcePath))
	}
	want := []string{"a.jpg", "b.PNG", "c.tif", "d.bmp", "photo.jpeg"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("index %d: got %s, want %s", i, names[i], want[i])
		}
	}

	for _, task := range tasks {
		if !strings.HasPrefix(task.ArtifactPath, "/out/") {
			t.Errorf("artifact path %s not under output dir", task.ArtifactPath)
		}
		if !strings.HasSuffix(task.ArtifactPath, "_ocr.md") {
			t.Errorf("artifact path %s missing suffix", task.ArtifactPath)
		}
	}
}
