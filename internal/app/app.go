package app

import (
	"context"
	"fmt"
	"log/slog"

	"BiasDetector/internal/config"
	"BiasDetector/internal/domain"
	"BiasDetector/internal/infrastructure/llm"
	"BiasDetector/internal/infrastructure/scraper"
	"BiasDetector/internal/infrastructure/search"
	"BiasDetector/internal/infrastructure/trace"
	"BiasDetector/internal/infrastructure/web"
	"BiasDetector/internal/logging"
	"BiasDetector/internal/ports"
	"BiasDetector/internal/usecase"
)

// Application wires configuration to adapters and the analysis pipeline.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. The Gemini credential is the
// only hard requirement; search is optional and degrades when absent.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	backend, err := llm.NewGeminiBackend(ctx, cfg.Gemini)
	if err != nil {
		return nil, fmt.Errorf("configure model backend: %w", err)
	}

	var provider ports.SearchProvider = search.Disabled{}
	if cfg.Search.APIKey != "" {
		provider = search.NewTavilyClient(cfg.Search)
	} else {
		baseLogger.Info("search credential absent, retrieval disabled")
	}

	pipeline, err := usecase.NewPipeline(usecase.PipelineDeps{
		Source:          scraper.NewExtractor(nil),
		Model:           backend,
		Search:          provider,
		Audit:           trace.NewFileSink(cfg.Trace.Dir),
		Logger:          baseLogger.With("component", "pipeline"),
		Pacing:          cfg.Pipeline.Pacing(),
		MaxArticleChars: cfg.Pipeline.MaxArticleChars,
		SearchLimit:     cfg.Search.MaxResults,
		Scoring:         cfg.Pipeline.Scoring,
	})
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}, nil
}

// AnalyzeURL runs one full analysis for the locator.
func (a *Application) AnalyzeURL(ctx context.Context, rawURL string) (*domain.Report, error) {
	return a.pipeline.AnalyzeURL(ctx, rawURL)
}

// Serve runs the HTTP front end until the context is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	server := web.NewServer(a.cfg.Server.Addr, a.pipeline, a.logger.With("component", "web"))
	a.logger.Info("listening", "addr", a.cfg.Server.Addr)
	return server.ListenAndServe(ctx)
}
