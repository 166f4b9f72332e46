package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth: empty disables bearer auth on /api routes.
	APIKey string

	// Upload limit for the HTTP endpoints.
	MaxUploadBytes int64

	// Batch mode worker pool size.
	WorkerCount int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port:                 envOr("PORT", "8090"),
		APIKey:               os.Getenv("MDTOOLS_API_KEY"),
		MaxUploadBytes:       envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
		WorkerCount:          envInt("WORKER_COUNT", 4),
		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
