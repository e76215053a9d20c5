package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"BiasDetector/internal/config"
	"BiasDetector/internal/domain"
	"BiasDetector/internal/ports"
)

// searchFailedSentinel stands in for retrieval context when the search
// backend is unavailable or unconfigured. Later stages are written to work
// with it as degraded input.
const searchFailedSentinel = "Search failed or unavailable."

// fallbackQuery is used when the extraction stage yields no topic.
const fallbackQuery = "news article background context"

// PipelineDeps wires all driven adapters into the analysis pipeline.
type PipelineDeps struct {
	Source ports.TextSource
	Model  ports.ModelBackend
	Search ports.SearchProvider
	Audit  ports.AuditSink
	Logger *slog.Logger

	Pacing          time.Duration
	MaxArticleChars int
	SearchLimit     int
	Scoring         config.ScoringStrategy
}

// Pipeline runs the fixed stage sequence
// EXTRACT -> RETRIEVE -> COMPARE -> SYNTHESIZE -> NORMALIZE for one article.
// Runs are independent; the only process-wide side effect is the audit sink.
type Pipeline struct {
	source   ports.TextSource
	search   ports.SearchProvider
	audit    ports.AuditSink
	executor *StageExecutor
	logger   *slog.Logger

	pacing          time.Duration
	maxArticleChars int
	searchLimit     int
	scoring         config.ScoringStrategy
}

// NewPipeline constructs the orchestrator. A missing model backend is a
// configuration error surfaced immediately; every other collaborator is
// optional and degrades.
func NewPipeline(deps PipelineDeps) (*Pipeline, error) {
	if deps.Model == nil {
		return nil, fmt.Errorf("model backend is required")
	}

	if deps.MaxArticleChars <= 0 {
		deps.MaxArticleChars = 30000
	}
	if deps.SearchLimit <= 0 {
		deps.SearchLimit = 5
	}
	if deps.Scoring == "" {
		deps.Scoring = config.ScoringModel
	}

	return &Pipeline{
		source:          deps.Source,
		search:          deps.Search,
		audit:           deps.Audit,
		executor:        NewStageExecutor(deps.Model, deps.Logger),
		logger:          deps.Logger,
		pacing:          deps.Pacing,
		maxArticleChars: deps.MaxArticleChars,
		searchLimit:     deps.SearchLimit,
		scoring:         deps.Scoring,
	}, nil
}

// AnalyzeURL fetches the article text for the locator and analyzes it.
// A text-source failure is fatal for the run.
func (p *Pipeline) AnalyzeURL(ctx context.Context, rawURL string) (*domain.Report, error) {
	if p.source == nil {
		return nil, fmt.Errorf("text source is not configured")
	}

	text, err := p.source.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch article %s: %w", rawURL, err)
	}

	return p.Analyze(ctx, text, rawURL)
}

// Analyze runs the full stage sequence over the given article text. It
// returns a complete (possibly default-heavy) report; a single bad stage
// response degrades quality instead of failing the run.
func (p *Pipeline) Analyze(ctx context.Context, text, locator string) (*domain.Report, error) {
	runID := uuid.NewString()
	text = truncate(text, p.maxArticleChars)

	p.debug("run started", "run_id", runID, "locator", locator, "chars", len(text))

	extract := p.executor.Call(ctx, "extract", extractPrompt(text, p.maxArticleChars))
	p.pace()

	searchContext, searchRaw := p.retrieve(ctx, extract.Str("topic"))

	contextResult := p.executor.Call(ctx, "context", contextPrompt(text, searchContext, p.maxArticleChars))
	compare := p.executor.Call(ctx, "compare", comparePrompt(extract, contextResult))
	p.pace()

	synth := p.executor.Call(ctx, "synthesize", synthesizePrompt(extract, compare, text))
	p.pace()

	report := assembleReport(runID, locator, text, synth, p.scoring)

	p.writeTrace(ctx, ports.TraceRecord{
		RunID:   runID,
		Locator: locator,
		Extract: extract,
		Search:  searchRaw,
		Context: contextResult,
		Compare: compare,
		Report:  synth,
	})

	p.debug("run finished", "run_id", runID, "score", report.Score,
		"assessment", report.ObjectivityLevel.Assessment)

	return report, nil
}

// retrieve performs the non-model retrieval step. It always completes:
// backend errors, an unconfigured provider, and empty result sets all
// degrade to the sentinel.
func (p *Pipeline) retrieve(ctx context.Context, topic string) (string, any) {
	query := strings.TrimSpace(topic)
	if query == "" {
		query = fallbackQuery
	}

	if p.search == nil {
		return searchFailedSentinel, nil
	}

	result, err := p.search.Search(ctx, query, p.searchLimit)
	if err != nil {
		p.warn("search failed", "query", query, "error", err)
		return searchFailedSentinel, nil
	}
	if result == nil {
		return searchFailedSentinel, nil
	}
	if len(result.Hits) == 0 {
		return searchFailedSentinel, result.Raw
	}

	var blob strings.Builder
	for _, hit := range result.Hits {
		fmt.Fprintf(&blob, "Source: %s\n%s\n\n", hit.URL, hit.Content)
	}
	return blob.String(), result.Raw
}

func (p *Pipeline) writeTrace(ctx context.Context, record ports.TraceRecord) {
	if p.audit == nil {
		return
	}
	if err := p.audit.Write(ctx, record); err != nil {
		p.warn("trace write failed", "run_id", record.RunID, "error", err)
	}
}

func (p *Pipeline) pace() {
	if p.pacing > 0 {
		time.Sleep(p.pacing)
	}
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
