// Package inteltest provides scripted LLM and search fakes for pipeline tests.
package inteltest

import (
	"context"
	"fmt"
	"sync"

	"github.com/corpintel/corpintel/internal/intel"
)

// Completion records one LLM call made against the fake provider.
type Completion struct {
	System string
	User   string
}

// Provider is a scripted LLM. CompleteFunc decides the reply per call; when
// nil, every call fails.
type Provider struct {
	CompleteFunc func(ctx context.Context, systemPrompt, userMessage string) (string, error)

	mu    sync.Mutex
	calls []Completion
}

// Complete implements provider.Provider.
func (p *Provider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	p.mu.Lock()
	p.calls = append(p.calls, Completion{System: systemPrompt, User: userMessage})
	p.mu.Unlock()

	if p.CompleteFunc == nil {
		return "", fmt.Errorf("fake provider: no completion scripted")
	}
	return p.CompleteFunc(ctx, systemPrompt, userMessage)
}

// Name implements provider.Provider.
func (p *Provider) Name() string { return "fake" }

// Model implements provider.Provider.
func (p *Provider) Model() string { return "fake-model" }

// Calls returns a copy of all recorded completions.
func (p *Provider) Calls() []Completion {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Completion(nil), p.calls...)
}

// SearchClient is a scripted web search. SearchFunc decides results per
// query; when nil, every query fails.
type SearchClient struct {
	SearchFunc func(ctx context.Context, query string) ([]intel.SearchResult, error)

	mu      sync.Mutex
	queries []string
}

// Search implements search.Client.
func (c *SearchClient) Search(ctx context.Context, query string) ([]intel.SearchResult, error) {
	c.mu.Lock()
	c.queries = append(c.queries, query)
	c.mu.Unlock()

	if c.SearchFunc == nil {
		return nil, fmt.Errorf("fake search: no results scripted")
	}
	return c.SearchFunc(ctx, query)
}

// Queries returns a copy of all recorded queries in call order.
func (c *SearchClient) Queries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.queries...)
}

// Results builds a small evidence set for tests.
func Results(prefix string, n int) []intel.SearchResult {
	out := make([]intel.SearchResult, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, intel.SearchResult{
			Title:   fmt.Sprintf("%s result %d", prefix, i+1),
			URL:     fmt.Sprintf("https://example.com/%s/%d", prefix, i+1),
			Snippet: fmt.Sprintf("snippet %d about %s", i+1, prefix),
		})
	}
	return out
}
