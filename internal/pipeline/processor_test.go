package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/baidu"
	"github.com/ocrmark/ocrmark/internal/common"
	"github.com/ocrmark/ocrmark/internal/layout"
)

// stubGateway fails with the queued errors in order, then returns result.
type stubGateway struct {
	errs   []error
	result baidu.Result
	calls  int
}

func (s *stubGateway) Recognize(_ context.Context, _ []byte, _ constants.Mode) (baidu.Result, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return baidu.Result{}, err
	}
	return s.result, nil
}

func textResult(texts ...string) baidu.Result {
	res := baidu.Result{Mode: constants.ModeGeneral}
	for i, txt := range texts {
		res.Recognition.Words = append(res.Recognition.Words,
			layout.WordBox{Text: txt, Top: i * 40})
	}
	return res
}

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fake image bytes"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func newTestProcessor(gw Recognizer, attempts int) (*Processor, *[]time.Duration) {
	p := NewProcessor(gw, RetryPolicy{MaxAttempts: attempts, BaseDelay: 100 * time.Millisecond}, testLogger())
	var slept []time.Duration
	p.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return p, &slept
}

func TestProcess_RetriesThenSucceeds(t *testing.T) {
	dir := t.TempDir()
	task := Task{
		SourcePath:   writeImage(t, dir, "scan.jpg"),
		ArtifactPath: filepath.Join(dir, "scan_ocr.md"),
	}

	gw := &stubGateway{
		errs:   []error{common.ErrRateLimited, common.ErrTransport},
		result: textResult("hello", "world"),
	}
	p, slept := newTestProcessor(gw, 5)

	out := p.Process(context.Background(), task, constants.ModeGeneral)

	if !out.Success {
		t.Fatalf("want success, got failure: %s", out.Error)
	}
	if out.Retries != 2 {
		t.Errorf("retries: got %d, want 2", out.Retries)
	}
	if gw.calls != 3 {
		t.Errorf("recognize calls: got %d, want 3", gw.calls)
	}
	if len(*slept) != 2 {
		t.Fatalf("sleeps: got %d, want 2", len(*slept))
	}
	// Exponential backoff: each delay strictly greater than the last.
	for i := 1; i < len(*slept); i++ {
		if (*slept)[i] <= (*slept)[i-1] {
			t.Errorf("delay %d (%v) not greater than delay %d (%v)",
				i, (*slept)[i], i-1, (*slept)[i-1])
		}
	}

	artifact, err := os.ReadFile(task.ArtifactPath)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if !strings.Contains(string(artifact), "hello") {
		t.Errorf("artifact missing content:\n%s", artifact)
	}
	if out.CharCount == 0 || out.WordCount == 0 {
		t.Errorf("counts not populated: chars=%d words=%d", out.CharCount, out.WordCount)
	}
}

func TestProcess_NonRetryableFailsImmediately(t *testing.T) {
	dir := t.TempDir()
	task := Task{
		SourcePath:   writeImage(t, dir, "scan.jpg"),
		ArtifactPath: filepath.Join(dir, "scan_ocr.md"),
	}

	gw := &stubGateway{errs: []error{common.ErrRemote}}
	p, slept := newTestProcessor(gw, 5)

	out := p.Process(context.Background(), task, constants.ModeGeneral)

	if out.Success {
		t.Fatal("want failure for remote error")
	}
	if gw.calls != 1 {
		t.Errorf("recognize calls: got %d, want 1", gw.calls)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %d times, want 0", len(*slept))
	}
}

func TestProcess_ExhaustsRetries(t *testing.T) {
	dir := t.TempDir()
	task := Task{
		SourcePath:   writeImage(t, dir, "scan.jpg"),
		ArtifactPath: filepath.Join(dir, "scan_ocr.md"),
	}

	gw := &stubGateway{errs: []error{
		common.ErrRateLimited, common.ErrRateLimited, common.ErrRateLimited,
	}}
	p, slept := newTestProcessor(gw, 3)

	out := p.Process(context.Background(), task, constants.ModeGeneral)

	if out.Success {
		t.Fatal("want failure after exhausting retries")
	}
	if gw.calls != 3 {
		t.Errorf("recognize calls: got %d, want 3", gw.calls)
	}
	if len(*slept) != 2 {
		t.Errorf("sleeps: got %d, want 2 (no sleep after final attempt)", len(*slept))
	}
	if !strings.Contains(out.Error, "after 3 attempts") {
		t.Errorf("error should mention attempt count: %q", out.Error)
	}
}

func TestProcess_EmptyContentIsTerminal(t *testing.T) {
	dir := t.TempDir()
	task := Task{
		SourcePath:   writeImage(t, dir, "blank.png"),
		ArtifactPath: filepath.Join(dir, "blank_ocr.md"),
	}

	gw := &stubGateway{result: baidu.Result{Mode: constants.ModeGeneral}}
	p, slept := newTestProcessor(gw, 5)

	out := p.Process(context.Background(), task, constants.ModeGeneral)

	if out.Success {
		t.Fatal("want failure for empty content")
	}
	if out.Error != common.ErrEmptyContent.Error() {
		t.Errorf("error: got %q, want %q", out.Error, common.ErrEmptyContent.Error())
	}
	if gw.calls != 1 {
		t.Errorf("empty content must not be retried: %d calls", gw.calls)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %d times, want 0", len(*slept))
	}
	if _, err := os.Stat(task.ArtifactPath); !os.IsNotExist(err) {
		t.Error("artifact must not be written for empty content")
	}
}

func TestProcess_UnreadableSource(t *testing.T) {
	dir := t.TempDir()
	task := Task{
		SourcePath:   filepath.Join(dir, "missing.jpg"),
		ArtifactPath: filepath.Join(dir, "missing_ocr.md"),
	}

	gw := &stubGateway{result: textResult("never")}
	p, _ := newTestProcessor(gw, 5)

	out := p.Process(context.Background(), task, constants.ModeGeneral)

	if out.Success {
		t.Fatal("want failure for unreadable source")
	}
	if gw.calls != 0 {
		t.Errorf("gateway must not be called: %d calls", gw.calls)
	}
	if !strings.Contains(out.Error, "read source") {
		t.Errorf("error: got %q, want read failure", out.Error)
	}
}

func TestProcess_TableMode(t *testing.T) {
	dir := t.TempDir()
	task := Task{
		SourcePath:   writeImage(t, dir, "table.png"),
		ArtifactPath: filepath.Join(dir, "table_ocr.md"),
	}

	gw := &stubGateway{result: baidu.Result{
		Mode: constants.ModeTable,
		Table: layout.TableResult{Rows: [][]string{
			{"Item", "Qty"},
			{"Widget", "3"},
		}},
	}}
	p, _ := newTestProcessor(gw, 3)

	out := p.Process(context.Background(), task, constants.ModeTable)
	if !out.Success {
		t.Fatalf("want success, got failure: %s", out.Error)
	}

	artifact, err := os.ReadFile(task.ArtifactPath)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if !strings.Contains(string(artifact), "| Item | Qty |") {
		t.Errorf("artifact missing table header:\n%s", artifact)
	}
}

func TestProcess_CanceledDuringBackoff(t *testing.T) {
	dir := t.TempDir()
	task := Task{
		SourcePath:   writeImage(t, dir, "scan.jpg"),
		ArtifactPath: filepath.Join(dir, "scan_ocr.md"),
	}

	gw := &stubGateway{errs: []error{common.ErrRateLimited, common.ErrRateLimited}}
	p := NewProcessor(gw, RetryPolicy{MaxAttempts: 5, BaseDelay: time.Millisecond}, testLogger())
	p.sleep = func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}

	out := p.Process(context.Background(), task, constants.ModeGeneral)
	if out.Success {
		t.Fatal("want failure when canceled during backoff")
	}
	if !strings.Contains(out.Error, "canceled during backoff") {
		t.Errorf("error: got %q", out.Error)
	}
	if gw.calls != 1 {
		t.Errorf("recognize calls: got %d, want 1", gw.calls)
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Second}
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{-1, time.Second},
	}
	for _, tt := range tests {
		if got := p.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d): got %v, want %v", tt.attempt, got, tt.want)
		}
	}
}
