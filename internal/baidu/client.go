// Package baidu is the gateway to the remote recognition service: it owns
// the bearer credential lifecycle and maps each recognition mode onto its
// endpoint, request parameters and response shape.
package baidu

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/common"
)

// Client submits images to the remote OCR service. Safe for concurrent use;
// the only shared mutable state is the credential inside TokenManager.
type Client struct {
	cfg    common.OCRConfig
	client *http.Client
	tokens *TokenManager
	log    *slog.Logger
}

func NewClient(cfg common.OCRConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Client{
		cfg:    cfg,
		client: httpClient,
		tokens: NewTokenManager(cfg, httpClient, logger),
		log:    logger,
	}
}

// endpointFor maps a recognition mode to its endpoint path segment. The
// accurate mode intentionally targets general_basic, matching the remote
// service's endpoint naming.
func endpointFor(mode constants.Mode) string {
	switch mode {
	case constants.ModeAccurate:
		return "general_basic"
	case constants.ModeTable:
		return "form"
	case constants.ModeHandwriting:
		return "handwriting"
	default:
		return "general"
	}
}

// Recognize submits one image in the given mode and returns the typed
// result. Failures are classified as auth, rate-limit, remote or transport
// errors (see internal/common sentinels).
func (c *Client) Recognize(ctx context.Context, image []byte, mode constants.Mode) (Result, error) {
	reqID := common.RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.New().String()
	}
	start := time.Now()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return Result{}, err
	}

	form := url.Values{}
	form.Set("image", base64.StdEncoding.EncodeToString(image))
	switch mode {
	case constants.ModeGeneral, constants.ModeAccurate:
		form.Set("language_type", c.cfg.LanguageType)
		form.Set("detect_direction", "true")
	case constants.ModeTable:
		form.Set("is_sync", "true")
		form.Set("request_type", "json")
	}

	endpoint := fmt.Sprintf("%s/%s?access_token=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), endpointFor(mode), url.QueryEscape(token))

	c.log.Debug("ocr.request",
		"req_id", reqID,
		"mode", string(mode),
		"image_bytes", len(image),
	)

	raw, err := c.post(ctx, reqID, endpoint, form)
	if err != nil {
		return Result{}, err
	}

	// Error envelope first: the service returns 200 with an error body.
	var probe errorProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Result{}, common.NewAppError("OCR_REMOTE", "undecodable response", fmt.Errorf("%w: %v", common.ErrRemote, err))
	}
	if probe.ErrorCode != 0 {
		return Result{}, c.classify(probe)
	}

	res, err := c.decode(raw, mode)
	if err != nil {
		return Result{}, err
	}

	c.log.Info("ocr.response",
		"req_id", reqID,
		"mode", string(mode),
		"words", len(res.Recognition.Words),
		"rows", len(res.Table.Rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (c *Client) post(ctx context.Context, reqID, endpoint string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, common.NewAppError("OCR_TRANSPORT", "build request", fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("ocr.send_error", "req_id", reqID, "error", err)
		return nil, common.NewAppError("OCR_TRANSPORT", "request failed", fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("ocr.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewAppError("OCR_TRANSPORT", "read response", fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, common.NewAppError("OCR_RATE_LIMITED", "http 429", common.ErrRateLimited)
	}
	if resp.StatusCode/100 != 2 {
		return nil, common.NewAppError("OCR_REMOTE", fmt.Sprintf("non-2xx status: %d", resp.StatusCode), common.ErrRemote)
	}
	return raw, nil
}

// remote application error codes
const (
	codeRequestLimit = 4   // request limit reached
	codeNoPermission = 6   // no permission to access data
	codeIAMFailure   = 14  // IAM certification failed
	codeDailyLimit   = 17  // daily request limit reached
	codeQPSLimit     = 18  // qps request limit reached
	codeTotalLimit   = 19  // total request limit reached
	codeTokenInvalid = 110 // access token invalid or no longer valid
	codeTokenExpired = 111 // access token expired
)

func (c *Client) classify(probe errorProbe) error {
	msg := fmt.Sprintf("error %d: %s", probe.ErrorCode, probe.ErrorMsg)
	switch probe.ErrorCode {
	case codeRequestLimit, codeDailyLimit, codeQPSLimit, codeTotalLimit:
		return common.NewAppError("OCR_RATE_LIMITED", msg, common.ErrRateLimited)
	case codeNoPermission, codeIAMFailure, codeTokenInvalid, codeTokenExpired:
		// A stale token is refreshed on the next attempt.
		c.tokens.Invalidate()
		return common.NewAppError("OCR_AUTH", msg, common.ErrAuth)
	default:
		return common.NewAppError("OCR_REMOTE", msg, common.ErrRemote)
	}
}

func (c *Client) decode(raw []byte, mode constants.Mode) (Result, error) {
	if mode == constants.ModeTable {
		if err := validateJSONAgainstSchema(buildFormSchema(), raw); err != nil {
			return Result{}, common.NewAppError("OCR_REMOTE", "unexpected table response shape", fmt.Errorf("%w: %v", common.ErrRemote, err))
		}
		var wire wireFormResponse
		if err := json.Unmarshal(raw, &wire); err != nil {
			return Result{}, common.NewAppError("OCR_REMOTE", "decode table response", fmt.Errorf("%w: %v", common.ErrRemote, err))
		}
		return Result{Mode: mode, Table: wire.toTable()}, nil
	}

	if err := validateJSONAgainstSchema(buildWordsSchema(), raw); err != nil {
		return Result{}, common.NewAppError("OCR_REMOTE", "unexpected response shape", fmt.Errorf("%w: %v", common.ErrRemote, err))
	}
	var wire wireWordsResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Result{}, common.NewAppError("OCR_REMOTE", "decode response", fmt.Errorf("%w: %v", common.ErrRemote, err))
	}
	return Result{Mode: mode, Recognition: wire.toRecognition()}, nil
}
