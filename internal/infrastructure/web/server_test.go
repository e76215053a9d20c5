package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"BiasDetector/internal/usecase"
)

type staticBackend struct{}

func (staticBackend) Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	if strings.Contains(prompt, "Stage 4") {
		return `{"score": 75, "objectivity_level": {"confidence": "High"}}`, nil
	}
	return "{}", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	pipeline, err := usecase.NewPipeline(usecase.PipelineDeps{Model: staticBackend{}})
	if err != nil {
		t.Fatalf("NewPipeline error: %v", err)
	}
	return NewServer(":0", pipeline, slog.Default())
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAnalyzeWithRawText(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	body := strings.NewReader(`{"text": "Parliament approved the budget on Tuesday."}`)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if decoded["score"] != 75.0 {
		t.Fatalf("unexpected score: %v", decoded["score"])
	}
	level, ok := decoded["objectivity_level"].(map[string]any)
	if !ok {
		t.Fatalf("missing objectivity_level: %v", decoded)
	}
	if level["assessment"] != "High" || level["confidence"] != "High" {
		t.Fatalf("unexpected level: %v", level)
	}
}

func TestAnalyzeRequiresInput(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`not json`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
