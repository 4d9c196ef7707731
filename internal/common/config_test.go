package common

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OCR_API_KEY", "k")
	t.Setenv("OCR_SECRET_KEY", "s")

	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if cfg.OCR.TokenURL != "https://aip.baidubce.com/oauth/2.0/token" {
		t.Errorf("token url default: got %s", cfg.OCR.TokenURL)
	}
	if cfg.OCR.LanguageType != "CHN_ENG" {
		t.Errorf("language type default: got %s", cfg.OCR.LanguageType)
	}
	if cfg.OCR.TokenSafetyMargin != 5*time.Minute {
		t.Errorf("safety margin default: got %v", cfg.OCR.TokenSafetyMargin)
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Retry.BaseDelay != time.Second {
		t.Errorf("retry defaults: got %+v", cfg.Retry)
	}
	if cfg.Batch.Concurrency != 3 {
		t.Errorf("concurrency default: got %d", cfg.Batch.Concurrency)
	}
	if cfg.Batch.ArtifactSuffix != "_ocr.md" {
		t.Errorf("artifact suffix default: got %s", cfg.Batch.ArtifactSuffix)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("OCR_API_KEY", "k")
	t.Setenv("OCR_SECRET_KEY", "s")
	t.Setenv("RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("RETRY_BASE_DELAY", "250ms")
	t.Setenv("BATCH_CONCURRENCY", "8")

	cfg := LoadConfig()
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("max attempts: got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.BaseDelay != 250*time.Millisecond {
		t.Errorf("base delay: got %v", cfg.Retry.BaseDelay)
	}
	if cfg.Batch.Concurrency != 8 {
		t.Errorf("concurrency: got %d", cfg.Batch.Concurrency)
	}
}

func TestValidate_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no api key", func(c *Config) { c.OCR.APIKey = "" }},
		{"no secret key", func(c *Config) { c.OCR.SecretKey = "" }},
		{"zero attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }},
		{"zero concurrency", func(c *Config) { c.Batch.Concurrency = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OCR_API_KEY", "k")
			t.Setenv("OCR_SECRET_KEY", "s")
			cfg := LoadConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("want validation error")
			}
		})
	}
}
