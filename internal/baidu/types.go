package baidu

import (
	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/layout"
)

// Result is the typed recognition outcome. Table mode fills Table; the text
// modes fill Recognition.
type Result struct {
	Mode        constants.Mode
	Recognition layout.RecognitionResult
	Table       layout.TableResult
}

// wire shapes of the remote service's JSON responses

type wireLocation struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type wireWord struct {
	Words    string       `json:"words"`
	Location wireLocation `json:"location"`
}

type wireWordsResponse struct {
	LogID          uint64     `json:"log_id"`
	WordsResultNum int        `json:"words_result_num"`
	WordsResult    []wireWord `json:"words_result"`
}

type wireFormRow struct {
	Row []string `json:"row"`
}

type wireFormResponse struct {
	LogID       uint64        `json:"log_id"`
	FormResult  []wireFormRow `json:"form_result"`
	WordsResult []wireWord    `json:"words_result"`
}

// errorProbe matches the error envelope every endpoint may return instead of
// a success payload.
type errorProbe struct {
	ErrorCode int    `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

func (r wireWordsResponse) toRecognition() layout.RecognitionResult {
	return layout.RecognitionResult{Words: toWordBoxes(r.WordsResult)}
}

func (r wireFormResponse) toTable() layout.TableResult {
	rows := make([][]string, 0, len(r.FormResult))
	for _, row := range r.FormResult {
		rows = append(rows, row.Row)
	}
	return layout.TableResult{Rows: rows, Words: toWordBoxes(r.WordsResult)}
}

func toWordBoxes(words []wireWord) []layout.WordBox {
	out := make([]layout.WordBox, 0, len(words))
	for _, w := range words {
		out = append(out, layout.WordBox{
			Text:   w.Words,
			Top:    w.Location.Top,
			Left:   w.Location.Left,
			Width:  w.Location.Width,
			Height: w.Location.Height,
		})
	}
	return out
}
