package search

import (
	"context"

	"BiasDetector/internal/ports"
)

// Disabled is the provider used when no retrieval credential is configured.
// It returns no hits so the pipeline degrades to its sentinel context;
// retrieval is an optional enhancement, not a hard dependency.
type Disabled struct{}

var _ ports.SearchProvider = Disabled{}

// Search always succeeds with an empty result set.
func (Disabled) Search(ctx context.Context, query string, limit int) (*ports.SearchResult, error) {
	return nil, nil
}
