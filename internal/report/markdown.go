// Package report renders batch results for humans: a Markdown summary and
// an XLSX workbook of per-file outcomes. Both are derived purely from the
// summary and outcome list.
package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ocrmark/ocrmark/internal/batch"
	"github.com/ocrmark/ocrmark/internal/pipeline"
)

// maxFailureDetails caps the failure section of the report.
const maxFailureDetails = 10

// Markdown renders the batch summary report.
func Markdown(summary batch.Summary, outcomes []pipeline.Outcome, now time.Time) string {
	var b strings.Builder

	b.WriteString("# OCR Batch Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total files: %d\n", summary.Total)
	fmt.Fprintf(&b, "- Succeeded: %d\n", summary.Succeeded)
	fmt.Fprintf(&b, "- Failed: %d\n", summary.Failed)
	fmt.Fprintf(&b, "- Success rate: %.1f%%\n", summary.SuccessRate)
	fmt.Fprintf(&b, "- Total time: %.1fs\n", summary.Elapsed.Seconds())
	fmt.Fprintf(&b, "- Average per file: %.2fs\n\n", summary.AvgPerFile.Seconds())

	var failures, successes []pipeline.Outcome
	for _, out := range outcomes {
		if out.Success {
			successes = append(successes, out)
		} else {
			failures = append(failures, out)
		}
	}

	if len(failures) > 0 {
		b.WriteString("## Failures\n\n")
		for i, out := range failures {
			if i == maxFailureDetails {
				fmt.Fprintf(&b, "... %d more failed files\n\n", len(failures)-maxFailureDetails)
				break
			}
			fmt.Fprintf(&b, "### %d. %s\n\n", i+1, filepath.Base(out.SourcePath))
			fmt.Fprintf(&b, "- Error: %s\n", out.Error)
			fmt.Fprintf(&b, "- Retries: %d\n", out.Retries)
			fmt.Fprintf(&b, "- Time: %.2fs\n\n", out.Duration.Seconds())
		}
	}

	if len(successes) > 0 {
		b.WriteString("## Success samples\n\n")
		sorted := make([]pipeline.Outcome, len(successes))
		copy(sorted, successes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].CharCount < sorted[j].CharCount })

		samples := []struct {
			title string
			out   pipeline.Outcome
		}{
			{"Smallest", sorted[0]},
			{"Median", sorted[len(sorted)/2]},
			{"Largest", sorted[len(sorted)-1]},
		}
		for _, s := range samples {
			fmt.Fprintf(&b, "### %s\n\n", s.title)
			fmt.Fprintf(&b, "- File: %s\n", filepath.Base(s.out.SourcePath))
			fmt.Fprintf(&b, "- Characters: %d\n", s.out.CharCount)
			fmt.Fprintf(&b, "- Words: %d\n", s.out.WordCount)
			fmt.Fprintf(&b, "- Time: %.2fs\n\n", s.out.Duration.Seconds())
		}
	}

	b.WriteString("---\n")
	fmt.Fprintf(&b, "*Report generated %s*\n", now.Format("2006-01-02 15:04:05"))
	return b.String()
}
