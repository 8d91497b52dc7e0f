// Package search provides web search clients used to gather evidence for the
// research agents.
package search

import (
	"context"

	"github.com/corpintel/corpintel/internal/intel"
)

// Client runs one web search query and returns ranked result snippets.
// An empty result list is valid (zero evidence), not an error.
type Client interface {
	Search(ctx context.Context, query string) ([]intel.SearchResult, error)
}
