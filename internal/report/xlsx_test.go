package report

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ocrmark/ocrmark/internal/pipeline"
)

func TestXLSX_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	outcomes := []pipeline.Outcome{
		success("a.jpg", 120),
		failure("b.jpg", "no content extracted"),
	}

	data, err := XLSX(outcomes, logger)
	if err != nil {
		t.Fatalf("xlsx: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Outcomes")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3 (header + 2 outcomes)", len(rows))
	}
	if rows[0][0] != "Source" || rows[0][2] != "Status" {
		t.Errorf("header row: got %v", rows[0])
	}
	if rows[1][2] != "SUCCEEDED" {
		t.Errorf("first outcome status: got %q", rows[1][2])
	}
	if rows[2][2] != "FAILED" || rows[2][7] != "no content extracted" {
		t.Errorf("second outcome row: got %v", rows[2])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("abcdefgh", 4); got != "abcd…" {
		t.Errorf("got %q", got)
	}
}
