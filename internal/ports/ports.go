package ports

import "context"

// TextSource supplies raw article text for a locator. A failure here is
// fatal for the run: no extractable content means nothing to analyze.
type TextSource interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// ModelBackend performs one generation call against a language model.
// When jsonOutput is set the backend requests a strict JSON-object response,
// but callers must still parse defensively.
type ModelBackend interface {
	Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error)
}

// SearchHit is one ranked retrieval result.
type SearchHit struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchResult pairs the parsed hits with the provider's decoded response
// document, which the audit trace records as received.
type SearchResult struct {
	Hits []SearchHit
	Raw  any
}

// SearchProvider returns up to limit ranked hits for a free-text query.
// Implementations without a configured backend must degrade, not fail.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) (*SearchResult, error)
}

// TraceRecord is the per-run audit document written at DONE.
type TraceRecord struct {
	RunID   string         `json:"run_id"`
	Locator string         `json:"locator,omitempty"`
	Extract map[string]any `json:"stage_1"`
	Search  any            `json:"stage_1_5_search,omitempty"`
	Context map[string]any `json:"stage_2"`
	Compare map[string]any `json:"stage_3"`
	Report  map[string]any `json:"stage_4"`
}

// AuditSink persists trace records best-effort; a write error degrades to a
// log line and never fails the run.
type AuditSink interface {
	Write(ctx context.Context, record TraceRecord) error
}
