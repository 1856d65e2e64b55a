package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port              string
	QuizAPIBaseURL    string
	QuizAPITimeout    time.Duration
	AllowedOrigins    []string
	FlashDismissAfter time.Duration
	PDFExportEnabled  bool
}

const (
	defaultPort              = "8080"
	defaultQuizAPIBaseURL    = "http://127.0.0.1:5000"
	defaultQuizAPITimeout    = 60 * time.Second
	defaultAllowedOrigin     = "http://localhost:5173"
	defaultFlashDismissAfter = 5 * time.Second
)

// Load reads configuration from the environment. main loads .env beforehand.
func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", defaultPort),
		QuizAPIBaseURL:    strings.TrimRight(getEnv("QUIZ_API_BASE_URL", defaultQuizAPIBaseURL), "/"),
		QuizAPITimeout:    getDuration("QUIZ_API_TIMEOUT", defaultQuizAPITimeout),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", defaultAllowedOrigin)),
		FlashDismissAfter: getDuration("FLASH_DISMISS_AFTER", defaultFlashDismissAfter),
		PDFExportEnabled:  getBool("PDF_EXPORT_ENABLED", true),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid %s (%q), using default %s", key, raw, fallback)
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("invalid %s (%q), using default %t", key, raw, fallback)
		return fallback
	}
	return b
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
