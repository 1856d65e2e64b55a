package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "QUIZ_API_BASE_URL", "QUIZ_API_TIMEOUT", "ALLOWED_ORIGINS", "FLASH_DISMISS_AFTER", "PDF_EXPORT_ENABLED"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8080" || cfg.QuizAPIBaseURL != "http://127.0.0.1:5000" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.QuizAPITimeout != 60*time.Second || cfg.FlashDismissAfter != 5*time.Second {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if !cfg.PDFExportEnabled {
		t.Fatalf("pdf export disabled by default")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("QUIZ_API_BASE_URL", "http://api.local:5000/")
	t.Setenv("QUIZ_API_TIMEOUT", "15s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("FLASH_DISMISS_AFTER", "bogus")
	t.Setenv("PDF_EXPORT_ENABLED", "false")

	cfg := Load()
	if cfg.Port != "9000" || cfg.QuizAPIBaseURL != "http://api.local:5000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.QuizAPITimeout != 15*time.Second {
		t.Fatalf("timeout = %s", cfg.QuizAPITimeout)
	}
	if cfg.FlashDismissAfter != 5*time.Second {
		t.Fatalf("invalid duration should fall back, got %s", cfg.FlashDismissAfter)
	}
	if cfg.PDFExportEnabled {
		t.Fatalf("pdf export should be disabled")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}
