package layout

import "strings"

// lineBreakThreshold is the vertical delta (in position units) between two
// consecutive words beyond which a new line is started.
const lineBreakThreshold = 20

// ToMarkdownText groups words into lines by vertical position and joins the
// lines with newlines. An empty word list yields an empty string; callers
// must treat that as "no content extracted", not as a failure.
func ToMarkdownText(res RecognitionResult) string {
	if len(res.Words) == 0 {
		return ""
	}

	var lines []string
	var current strings.Builder
	lastTop := 0
	first := true

	for _, w := range res.Words {
		if !first && abs(w.Top-lastTop) > lineBreakThreshold {
			if line := strings.TrimSpace(current.String()); line != "" {
				lines = append(lines, line)
			}
			current.Reset()
			current.WriteString(w.Text)
		} else {
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(w.Text)
		}
		lastTop = w.Top
		first = false
	}

	if line := strings.TrimSpace(current.String()); line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// ToMarkdownTable renders rows as a pipe-delimited Markdown table: the first
// row becomes the header, followed by a `---` separator row matching the
// header's column count, then data rows. Rows with differing cell counts
// render misaligned; no column reconciliation is attempted.
//
// When no rows are present the result falls back to text reconstruction over
// whatever words the response carried.
func ToMarkdownTable(t TableResult) string {
	if len(t.Rows) == 0 {
		return ToMarkdownText(RecognitionResult{Words: t.Words})
	}

	var md []string
	header := t.Rows[0]
	md = append(md, "| "+strings.Join(header, " | ")+" |")

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	md = append(md, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range t.Rows[1:] {
		md = append(md, "| "+strings.Join(row, " | ")+" |")
	}
	return strings.Join(md, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
