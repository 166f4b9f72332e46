package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seemantshankar/spherical/internal/config"
)

func testServer(apiKey string) *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		Port:           "0",
		APIKey:         apiKey,
		MaxUploadBytes: 1 << 20,
		WorkerCount:    1,
	}
	return NewServer(log, cfg)
}

func TestHandleNormalize(t *testing.T) {
	srv := testServer("")

	body := "| a | b | c | d |\n|---|---|---|---|\n| 1 | 2 | 3 | 4 |\n"
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	out := rec.Body.String()
	if !strings.Contains(out, "| 1 | 2 | 3 - 4 |") {
		t.Errorf("table not normalized:\n%s", out)
	}
}

func TestHandleNormalize_StageSelection(t *testing.T) {
	srv := testServer("")

	body := "One.\n\n\n\n\nTwo.\n"
	req := httptest.NewRequest(http.MethodPost, "/api/normalize?stages=spacing", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "\n\n\n\n") {
		t.Errorf("blank run survived spacing stage:\n%q", rec.Body.String())
	}
}

func TestHandleNormalize_UnknownStage(t *testing.T) {
	srv := testServer("")

	req := httptest.NewRequest(http.MethodPost, "/api/normalize?stages=bogus", strings.NewReader("x"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	srv := testServer("secret")

	req := httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader("x"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader("x"))
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}

	// Health stays public.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestHandleStats(t *testing.T) {
	srv := testServer("")

	// Drive one normalize run so the window has a sample.
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader("text\n"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	req = httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var snap StatsSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Count != 1 {
		t.Errorf("Count = %d, want 1", snap.Count)
	}
}
