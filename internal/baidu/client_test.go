package baidu

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(tokenURL, baseURL string) common.OCRConfig {
	return common.OCRConfig{
		APIKey:            "test-key",
		SecretKey:         "test-secret",
		TokenURL:          tokenURL,
		BaseURL:           baseURL,
		LanguageType:      "CHN_ENG",
		Timeout:           5 * time.Second,
		TokenSafetyMargin: time.Minute,
	}
}

// tokenHandler serves the oauth endpoint and counts issuances.
func tokenHandler(count *int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(count, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-abc","expires_in":2592000}`))
	}
}

func TestTokenManager_SingleFlight(t *testing.T) {
	var issued int32
	ts := httptest.NewServer(tokenHandler(&issued))
	defer ts.Close()

	m := NewTokenManager(testConfig(ts.URL, ""), ts.Client(), testLogger())

	const callers = 16
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = m.Token(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if tokens[i] != "tok-abc" {
			t.Errorf("caller %d: got token %q", i, tokens[i])
		}
	}
	if got := atomic.LoadInt32(&issued); got != 1 {
		t.Errorf("token endpoint hit %d times, want 1", got)
	}

	// Cached token is reused without another round trip.
	if _, err := m.Token(context.Background()); err != nil {
		t.Fatalf("cached token: %v", err)
	}
	if got := atomic.LoadInt32(&issued); got != 1 {
		t.Errorf("cached read triggered a refresh: %d issuances", got)
	}
}

func TestTokenManager_InvalidateForcesRefresh(t *testing.T) {
	var issued int32
	ts := httptest.NewServer(tokenHandler(&issued))
	defer ts.Close()

	m := NewTokenManager(testConfig(ts.URL, ""), ts.Client(), testLogger())
	if _, err := m.Token(context.Background()); err != nil {
		t.Fatalf("first token: %v", err)
	}
	m.Invalidate()
	if _, err := m.Token(context.Background()); err != nil {
		t.Fatalf("token after invalidate: %v", err)
	}
	if got := atomic.LoadInt32(&issued); got != 2 {
		t.Errorf("issuances: got %d, want 2", got)
	}
}

func TestTokenManager_SafetyMarginExpiry(t *testing.T) {
	var issued int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&issued, 1)
		// Declared lifetime shorter than the safety margin: the token is
		// treated as already expired, so every call refreshes.
		_, _ = w.Write([]byte(`{"access_token":"tok-short","expires_in":30}`))
	}))
	defer ts.Close()

	m := NewTokenManager(testConfig(ts.URL, ""), ts.Client(), testLogger())
	for i := 0; i < 3; i++ {
		if _, err := m.Token(context.Background()); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&issued); got != 3 {
		t.Errorf("issuances: got %d, want 3", got)
	}
}

func TestTokenManager_RejectedCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"unknown client id"}`))
	}))
	defer ts.Close()

	m := NewTokenManager(testConfig(ts.URL, ""), ts.Client(), testLogger())
	_, err := m.Token(context.Background())
	if err == nil {
		t.Fatal("want error for rejected credentials")
	}
	if !errors.Is(err, common.ErrAuth) {
		t.Errorf("got %v, want ErrAuth", err)
	}
}

// ocrServer wires a token endpoint plus a recognition endpoint whose
// response is controlled per test.
func ocrServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	var issued int32
	mux.HandleFunc("/oauth/2.0/token", tokenHandler(&issued))
	mux.Handle("/rest/2.0/ocr/v1/", handler)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	cfg := testConfig(ts.URL+"/oauth/2.0/token", ts.URL+"/rest/2.0/ocr/v1")
	return NewClient(cfg, testLogger()), ts
}

func TestRecognize_TextModes(t *testing.T) {
	var gotPath string
	var gotForm map[string]string
	client, _ := ocrServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		_, _ = w.Write([]byte(`{
			"log_id": 123,
			"words_result_num": 2,
			"words_result": [
				{"words": "hello", "location": {"top": 10, "left": 0, "width": 50, "height": 20}},
				{"words": "world", "location": {"top": 12, "left": 60, "width": 50, "height": 20}}
			]
		}`))
	})

	image := []byte{0xff, 0xd8, 0xff, 0xe0}
	res, err := client.Recognize(context.Background(), image, constants.ModeAccurate)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}

	if gotPath != "/rest/2.0/ocr/v1/general_basic" {
		t.Errorf("endpoint: got %s, want /rest/2.0/ocr/v1/general_basic", gotPath)
	}
	if gotForm["image"] != base64.StdEncoding.EncodeToString(image) {
		t.Error("image not sent base64-encoded")
	}
	if gotForm["language_type"] != "CHN_ENG" {
		t.Errorf("language_type: got %q", gotForm["language_type"])
	}
	if gotForm["detect_direction"] != "true" {
		t.Errorf("detect_direction: got %q", gotForm["detect_direction"])
	}

	if len(res.Recognition.Words) != 2 {
		t.Fatalf("words: got %d, want 2", len(res.Recognition.Words))
	}
	if res.Recognition.Words[0].Text != "hello" || res.Recognition.Words[0].Top != 10 {
		t.Errorf("first word: got %+v", res.Recognition.Words[0])
	}
}

func TestRecognize_EndpointPerMode(t *testing.T) {
	tests := []struct {
		mode constants.Mode
		want string
	}{
		{constants.ModeGeneral, "/rest/2.0/ocr/v1/general"},
		{constants.ModeAccurate, "/rest/2.0/ocr/v1/general_basic"},
		{constants.ModeTable, "/rest/2.0/ocr/v1/form"},
		{constants.ModeHandwriting, "/rest/2.0/ocr/v1/handwriting"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			var gotPath string
			client, _ := ocrServer(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				if tt.mode == constants.ModeTable {
					_, _ = w.Write([]byte(`{"log_id": 1, "form_result": [{"row": ["a"]}]}`))
					return
				}
				_, _ = w.Write([]byte(`{"log_id": 1, "words_result": [{"words": "x"}]}`))
			})
			if _, err := client.Recognize(context.Background(), []byte("img"), tt.mode); err != nil {
				t.Fatalf("recognize: %v", err)
			}
			if gotPath != tt.want {
				t.Errorf("endpoint: got %s, want %s", gotPath, tt.want)
			}
		})
	}
}

func TestRecognize_TableMode(t *testing.T) {
	var gotForm map[string]string
	client, _ := ocrServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotForm = map[string]string{
			"is_sync":      r.PostForm.Get("is_sync"),
			"request_type": r.PostForm.Get("request_type"),
		}
		_, _ = w.Write([]byte(`{
			"log_id": 9,
			"form_result": [
				{"row": ["Item", "Qty"]},
				{"row": ["Widget", "3"]}
			]
		}`))
	})

	res, err := client.Recognize(context.Background(), []byte("img"), constants.ModeTable)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if gotForm["is_sync"] != "true" || gotForm["request_type"] != "json" {
		t.Errorf("table form params: got %v", gotForm)
	}
	if len(res.Table.Rows) != 2 || res.Table.Rows[0][0] != "Item" {
		t.Errorf("table rows: got %+v", res.Table.Rows)
	}
}

func TestRecognize_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		sentinel error
	}{
		{"qps limit", `{"error_code": 18, "error_msg": "qps request limit reached"}`, 200, common.ErrRateLimited},
		{"daily limit", `{"error_code": 17, "error_msg": "daily request limit reached"}`, 200, common.ErrRateLimited},
		{"invalid token", `{"error_code": 110, "error_msg": "access token invalid"}`, 200, common.ErrAuth},
		{"expired token", `{"error_code": 111, "error_msg": "access token expired"}`, 200, common.ErrAuth},
		{"no permission", `{"error_code": 6, "error_msg": "no permission"}`, 200, common.ErrAuth},
		{"unknown image", `{"error_code": 216201, "error_msg": "image format error"}`, 200, common.ErrRemote},
		{"http 429", `slow down`, 429, common.ErrRateLimited},
		{"http 500", `oops`, 500, common.ErrRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := ocrServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.Recognize(context.Background(), []byte("img"), constants.ModeGeneral)
			if err == nil {
				t.Fatal("want error")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("got %v, want sentinel %v", err, tt.sentinel)
			}
		})
	}
}

func TestRecognize_AuthErrorInvalidatesToken(t *testing.T) {
	var issued int32
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/2.0/token", tokenHandler(&issued))
	var calls int32
	mux.HandleFunc("/rest/2.0/ocr/v1/", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			_, _ = w.Write([]byte(`{"error_code": 110, "error_msg": "access token invalid"}`))
			return
		}
		_, _ = w.Write([]byte(`{"log_id": 1, "words_result": [{"words": "ok"}]}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	cfg := testConfig(ts.URL+"/oauth/2.0/token", ts.URL+"/rest/2.0/ocr/v1")
	client := NewClient(cfg, testLogger())

	if _, err := client.Recognize(context.Background(), []byte("img"), constants.ModeGeneral); !errors.Is(err, common.ErrAuth) {
		t.Fatalf("first call: got %v, want ErrAuth", err)
	}
	if _, err := client.Recognize(context.Background(), []byte("img"), constants.ModeGeneral); err != nil {
		t.Fatalf("second call: %v", err)
	}
	// Invalidation forces a fresh token for the retry.
	if got := atomic.LoadInt32(&issued); got != 2 {
		t.Errorf("token issuances: got %d, want 2", got)
	}
}

func TestRecognize_TransportError(t *testing.T) {
	ts := httptest.NewServer(tokenHandler(new(int32)))
	url := ts.URL
	ts.Close() // nothing listening anymore

	cfg := testConfig(url, url)
	client := NewClient(cfg, testLogger())
	_, err := client.Recognize(context.Background(), []byte("img"), constants.ModeGeneral)
	if err == nil {
		t.Fatal("want error against closed server")
	}
	// The token refresh fails first; it maps to auth, which is retryable.
	if !common.IsRetryable(err) {
		t.Errorf("got non-retryable %v", err)
	}
}

func TestRecognize_MalformedSuccessBody(t *testing.T) {
	client, _ := ocrServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"log_id": 1, "words_result": "not an array"}`))
	})
	_, err := client.Recognize(context.Background(), []byte("img"), constants.ModeGeneral)
	if !errors.Is(err, common.ErrRemote) {
		t.Errorf("got %v, want ErrRemote for shape violation", err)
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := buildWordsSchema()
	if err := validateJSONAgainstSchema(schema, []byte(`{"words_result": []}`)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := validateJSONAgainstSchema(schema, []byte(`{"log_id": 1}`)); err == nil {
		t.Error("payload missing words_result accepted")
	}
}
