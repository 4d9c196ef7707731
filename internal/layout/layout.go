// Package layout reconstructs line-ordered Markdown from position-annotated
// OCR output. Words arrive in the service's own scan order (top-to-bottom,
// left-to-right) and are not re-sorted here.
package layout

// WordBox is one recognized token plus its on-page bounding position.
type WordBox struct {
	Text   string
	Top    int
	Left   int
	Width  int
	Height int
}

// RecognitionResult is the ordered word list returned by text-mode
// recognition.
type RecognitionResult struct {
	Words []WordBox
}

// TableResult is the row/cell structure returned by table-mode recognition.
// Some responses carry plain words instead of rows; those are kept so the
// Markdown conversion can fall back to text reconstruction.
type TableResult struct {
	Rows  [][]string
	Words []WordBox
}
