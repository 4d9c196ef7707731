package layout

import (
	"strings"
	"testing"
	"time"

	"github.com/ocrmark/ocrmark/constants"
)

func words(texts []string, tops []int) RecognitionResult {
	res := RecognitionResult{}
	for i, txt := range texts {
		res.Words = append(res.Words, WordBox{Text: txt, Top: tops[i]})
	}
	return res
}

func TestToMarkdownText_LineGrouping(t *testing.T) {
	// Vertical deltas <= 20 join a line; > 20 start a new one.
	res := words(
		[]string{"alpha", "beta", "gamma", "delta", "epsilon"},
		[]int{0, 5, 30, 32, 80},
	)

	got := ToMarkdownText(res)
	want := "alpha beta\ngamma delta\nepsilon"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToMarkdownText(t *testing.T) {
	tests := []struct {
		name  string
		input RecognitionResult
		want  string
	}{
		{
			name:  "empty input yields empty string",
			input: RecognitionResult{},
			want:  "",
		},
		{
			name:  "single word",
			input: words([]string{"only"}, []int{10}),
			want:  "only",
		},
		{
			name:  "delta of exactly 20 stays on the same line",
			input: words([]string{"a", "b"}, []int{0, 20}),
			want:  "a b",
		},
		{
			name:  "delta of 21 breaks the line",
			input: words([]string{"a", "b"}, []int{0, 21}),
			want:  "a\nb",
		},
		{
			name:  "upward movement breaks too",
			input: words([]string{"a", "b"}, []int{50, 10}),
			want:  "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToMarkdownText(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToMarkdownText_NonEmptyInvariant(t *testing.T) {
	res := words([]string{"x"}, []int{0})
	if ToMarkdownText(res) == "" {
		t.Error("non-empty input produced empty output")
	}
}

func TestToMarkdownTable(t *testing.T) {
	table := TableResult{Rows: [][]string{
		{"A", "B"},
		{"1", "2"},
		{"3", "4"},
	}}

	got := ToMarkdownTable(table)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), got)
	}
	wantLines := []string{
		"| A | B |",
		"| --- | --- |",
		"| 1 | 2 |",
		"| 3 | 4 |",
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want)
		}
	}
}

func TestToMarkdownTable_FallbackToText(t *testing.T) {
	table := TableResult{
		Words: []WordBox{{Text: "loose", Top: 0}, {Text: "words", Top: 4}},
	}
	if got, want := ToMarkdownTable(table), "loose words"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := ToMarkdownTable(TableResult{}); got != "" {
		t.Errorf("empty table: got %q, want empty", got)
	}
}

func TestBuildArtifact(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	got := BuildArtifact("content line", constants.ModeAccurate, now)

	if !strings.HasPrefix(got, "# OCR Result\n") {
		t.Errorf("missing title: %q", got)
	}
	for _, want := range []string{
		"*Generated: 2025-03-14 09:26:53*",
		"*Engine: Baidu OCR (accurate)*",
		"---",
		"content line",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("artifact missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "content line") {
		t.Errorf("content must come after the header:\n%s", got)
	}
}
