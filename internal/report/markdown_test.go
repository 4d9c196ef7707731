package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ocrmark/ocrmark/internal/batch"
	"github.com/ocrmark/ocrmark/internal/pipeline"
)

func success(name string, chars int) pipeline.Outcome {
	return pipeline.Outcome{
		Success:    true,
		SourcePath: "/in/" + name,
		CharCount:  chars,
		WordCount:  chars / 5,
		Duration:   2 * time.Second,
	}
}

func failure(name, msg string) pipeline.Outcome {
	return pipeline.Outcome{
		SourcePath: "/in/" + name,
		Error:      msg,
		Retries:    2,
		Duration:   time.Second,
	}
}

func TestMarkdown_Sections(t *testing.T) {
	summary := batch.Summary{
		Total: 4, Succeeded: 3, Failed: 1, SuccessRate: 75,
		Elapsed: 10 * time.Second, AvgPerFile: 2500 * time.Millisecond,
	}
	outcomes := []pipeline.Outcome{
		success("small.jpg", 100),
		success("mid.jpg", 500),
		success("big.jpg", 9000),
		failure("bad.jpg", "remote error 216201"),
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := Markdown(summary, outcomes, now)

	for _, want := range []string{
		"# OCR Batch Report",
		"Generated: 2025-06-01 12:00:00",
		"- Total files: 4",
		"- Succeeded: 3",
		"- Failed: 1",
		"- Success rate: 75.0%",
		"## Failures",
		"bad.jpg",
		"remote error 216201",
		"- Retries: 2",
		"## Success samples",
		"### Smallest",
		"small.jpg",
		"### Median",
		"### Largest",
		"big.jpg",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestMarkdown_FailureCap(t *testing.T) {
	var outcomes []pipeline.Outcome
	for i := 0; i < 15; i++ {
		outcomes = append(outcomes, failure(fmt.Sprintf("f%02d.jpg", i), "boom"))
	}
	summary := batch.Summary{Total: 15, Failed: 15}

	got := Markdown(summary, outcomes, time.Now())

	if !strings.Contains(got, "... 5 more failed files") {
		t.Error("overflow line missing")
	}
	if strings.Contains(got, "f10.jpg") {
		t.Error("failure beyond the cap was detailed")
	}
	if strings.Contains(got, "## Success samples") {
		t.Error("success section present with zero successes")
	}
}

func TestMarkdown_AllSucceeded(t *testing.T) {
	summary := batch.Summary{Total: 1, Succeeded: 1, SuccessRate: 100}
	got := Markdown(summary, []pipeline.Outcome{success("only.jpg", 50)}, time.Now())

	if strings.Contains(got, "## Failures") {
		t.Error("failure section present with zero failures")
	}
	if !strings.Contains(got, "### Smallest") {
		t.Error("sample section missing")
	}
}
