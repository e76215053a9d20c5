package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"BiasDetector/internal/ports"
)

// StageResult is the loosely-shaped mapping returned by one model stage.
// It is never nil: an empty mapping signals a failed or unparseable call and
// downstream consumers fill in defaults instead of erroring.
type StageResult map[string]any

// Str returns the string under key, or "" when absent or mistyped.
func (r StageResult) Str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the number under key, accepting JSON numbers and numeric
// strings, or fallback when absent or unparseable.
func (r StageResult) Float(key string, fallback float64) float64 {
	if v, ok := r.FloatOK(key); ok {
		return v
	}
	return fallback
}

// FloatOK returns the number under key and whether it parsed, for callers
// that must distinguish a missing value from a present one.
func (r StageResult) FloatOK(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// List returns the slice under key, or an empty slice.
func (r StageResult) List(key string) []any {
	if v, ok := r[key].([]any); ok {
		return v
	}
	return nil
}

// Object returns the nested mapping under key, or an empty mapping.
func (r StageResult) Object(key string) map[string]any {
	if v, ok := r[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// Strings returns the string items of the list under key, skipping anything
// that is not a string.
func (r StageResult) Strings(key string) []string {
	items := r.List(key)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// StageExecutor wraps the model backend with the degrade-to-empty policy:
// a backend error or malformed response yields an empty StageResult and a
// log line, never a propagated failure.
type StageExecutor struct {
	backend ports.ModelBackend
	logger  *slog.Logger
}

// NewStageExecutor wires the backend; logger may be nil.
func NewStageExecutor(backend ports.ModelBackend, logger *slog.Logger) *StageExecutor {
	return &StageExecutor{backend: backend, logger: logger}
}

// Call runs one structured-output generation and parses it into a mapping.
func (e *StageExecutor) Call(ctx context.Context, stage, prompt string) StageResult {
	if e.backend == nil {
		e.warn("model backend missing", "stage", stage)
		return StageResult{}
	}

	raw, err := e.backend.Generate(ctx, prompt, true)
	if err != nil {
		e.warn("stage call failed", "stage", stage, "error", err)
		return StageResult{}
	}

	result, ok := parseStageResult(raw)
	if !ok {
		e.warn("stage returned unparseable output", "stage", stage)
	}
	return result
}

// parseStageResult decodes a model response into a JSON-object mapping.
// A top-level array degrades to its first object element; anything else
// yields an empty mapping.
func parseStageResult(raw string) (StageResult, bool) {
	trimmed := stripFences(raw)

	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return StageResult{}, false
	}

	switch v := parsed.(type) {
	case map[string]any:
		return StageResult(v), true
	case []any:
		if len(v) == 0 {
			return StageResult{}, false
		}
		if obj, ok := v[0].(map[string]any); ok {
			return StageResult(obj), true
		}
		return StageResult{}, false
	default:
		return StageResult{}, false
	}
}

// stripFences removes a markdown code fence the model may wrap around the
// JSON payload despite the strict-output flag.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func (e *StageExecutor) warn(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}
