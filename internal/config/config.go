package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "BIAS_DETECTOR_CONFIG"
	geminiAPIKeyEnv = "GEMINI_API_KEY"
	geminiModelEnv  = "GEMINI_MODEL"
	tavilyAPIKeyEnv = "TAVILY_API_KEY"
	listenAddrEnv   = "BIAS_DETECTOR_ADDR"
)

// ScoringStrategy selects how the final score is produced.
type ScoringStrategy string

const (
	// ScoringModel trusts the synthesis stage's self-reported score.
	ScoringModel ScoringStrategy = "model"
	// ScoringLexical recomputes the score locally from claim word counts.
	ScoringLexical ScoringStrategy = "lexical"
)

// Config holds high-level settings required across the application.
type Config struct {
	Gemini   GeminiConfig   `yaml:"gemini"`
	Search   SearchConfig   `yaml:"search"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Trace    TraceConfig    `yaml:"trace"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GeminiConfig defines how to contact the Gemini API. APIKey is the only
// setting required at construction time.
type GeminiConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// SearchConfig wires the optional retrieval backend. An empty APIKey
// disables retrieval instead of failing startup.
type SearchConfig struct {
	APIKey     string `yaml:"apiKey"`
	Endpoint   string `yaml:"endpoint"`
	MaxResults int    `yaml:"maxResults"`
}

// PipelineConfig tunes the orchestrator.
type PipelineConfig struct {
	PacingSeconds   int             `yaml:"pacingSeconds"`
	MaxArticleChars int             `yaml:"maxArticleChars"`
	Scoring         ScoringStrategy `yaml:"scoring"`
}

// Pacing returns the inter-stage delay as a duration.
func (p PipelineConfig) Pacing() time.Duration {
	return time.Duration(p.PacingSeconds) * time.Second
}

// TraceConfig points the audit sink at its output directory.
type TraceConfig struct {
	Dir string `yaml:"dir"`
}

// ServerConfig describes the HTTP front end.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(geminiAPIKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}

	if v := os.Getenv(geminiModelEnv); v != "" {
		c.Gemini.Model = v
	}

	if v := os.Getenv(tavilyAPIKeyEnv); v != "" {
		c.Search.APIKey = v
	}

	if v := os.Getenv(listenAddrEnv); v != "" {
		c.Server.Addr = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.Model != "" {
		base.Gemini.Model = override.Gemini.Model
	}

	if override.Search.APIKey != "" {
		base.Search.APIKey = override.Search.APIKey
	}
	if override.Search.Endpoint != "" {
		base.Search.Endpoint = override.Search.Endpoint
	}
	if override.Search.MaxResults > 0 {
		base.Search.MaxResults = override.Search.MaxResults
	}

	if override.Pipeline.PacingSeconds > 0 {
		base.Pipeline.PacingSeconds = override.Pipeline.PacingSeconds
	}
	if override.Pipeline.MaxArticleChars > 0 {
		base.Pipeline.MaxArticleChars = override.Pipeline.MaxArticleChars
	}
	if override.Pipeline.Scoring != "" {
		base.Pipeline.Scoring = override.Pipeline.Scoring
	}

	if override.Trace.Dir != "" {
		base.Trace.Dir = override.Trace.Dir
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			Model: "gemini-3-flash-preview",
		},
		Search: SearchConfig{
			Endpoint:   "https://api.tavily.com/search",
			MaxResults: 5,
		},
		Pipeline: PipelineConfig{
			PacingSeconds:   2,
			MaxArticleChars: 30000,
			Scoring:         ScoringModel,
		},
		Trace: TraceConfig{
			Dir: "raw_responses",
		},
		Server: ServerConfig{
			Addr: ":8000",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
