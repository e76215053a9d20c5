package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"BiasDetector/internal/config"
	"BiasDetector/internal/ports"
)

// TavilyClient implements ports.SearchProvider backed by the Tavily API.
type TavilyClient struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.SearchProvider = (*TavilyClient)(nil)

// NewTavilyClient builds a client from configuration.
func NewTavilyClient(cfg config.SearchConfig) *TavilyClient {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "https://api.tavily.com/search"
	}
	return &TavilyClient{
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: 20 * time.Second},
	}
}

// Search posts the query and returns up to limit ranked hits alongside the
// decoded provider payload.
func (c *TavilyClient) Search(ctx context.Context, query string, limit int) (*ports.SearchResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("search client misconfigured")
	}

	body, err := json.Marshal(map[string]any{
		"query":       query,
		"max_results": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var parsed struct {
		Results []struct {
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	hits := make([]ports.SearchHit, 0, limit)
	for _, result := range parsed.Results {
		if len(hits) == limit {
			break
		}
		hits = append(hits, ports.SearchHit{URL: result.URL, Content: result.Content})
	}

	return &ports.SearchResult{Hits: hits, Raw: raw}, nil
}
