package baidu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ocrmark/ocrmark/internal/common"
)

// TokenManager owns the process-wide bearer credential. Reads are lock-free
// in the common case; expiry triggers a single-flight refresh so concurrent
// callers share one round trip to the token endpoint.
type TokenManager struct {
	cfg    common.OCRConfig
	client *http.Client
	log    *slog.Logger

	group singleflight.Group

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewTokenManager(cfg common.OCRConfig, client *http.Client, logger *slog.Logger) *TokenManager {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &TokenManager{cfg: cfg, client: client, log: logger}
}

// Token returns a valid bearer token, refreshing it when absent or past the
// safety-margin-adjusted expiry.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	if m.token != "" && time.Now().Before(m.expiresAt) {
		token := m.token
		m.mu.RUnlock()
		return token, nil
	}
	m.mu.RUnlock()

	v, err, _ := m.group.Do("refresh", func() (any, error) {
		// Re-check under the flight: a caller that queued behind the
		// refresh must not trigger a second one.
		m.mu.RLock()
		if m.token != "" && time.Now().Before(m.expiresAt) {
			token := m.token
			m.mu.RUnlock()
			return token, nil
		}
		m.mu.RUnlock()
		return m.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate drops the cached token. Called when the remote side reports an
// invalid or expired access token so the next call refreshes.
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	m.token = ""
	m.expiresAt = time.Time{}
	m.mu.Unlock()
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	start := time.Now()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.cfg.APIKey)
	form.Set("client_secret", m.cfg.SecretKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", common.NewAppError("OCR_AUTH", "build token request", common.WrapError(common.ErrAuth, err.Error()))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		m.log.Error("token.refresh_failed", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", common.NewAppError("OCR_AUTH", "token endpoint unreachable", fmt.Errorf("%w: %v", common.ErrAuth, err))
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			m.log.Warn("token.response_body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return "", common.NewAppError("OCR_AUTH", "decode token response", fmt.Errorf("%w: %v", common.ErrAuth, err))
	}
	if tr.AccessToken == "" {
		m.log.Error("token.refresh_rejected",
			"error", tr.Error,
			"description", tr.ErrorDescription,
			"status", resp.StatusCode,
		)
		return "", common.NewAppError("OCR_AUTH",
			fmt.Sprintf("token endpoint returned no token: %s", tr.ErrorDescription),
			common.ErrAuth)
	}

	expiresAt := time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - m.cfg.TokenSafetyMargin)

	m.mu.Lock()
	m.token = tr.AccessToken
	m.expiresAt = expiresAt
	m.mu.Unlock()

	m.log.Info("token.refreshed",
		"expires_at", expiresAt.Format(time.RFC3339),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return tr.AccessToken, nil
}
