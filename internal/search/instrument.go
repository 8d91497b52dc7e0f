package search

import (
	"context"
	"time"

	"github.com/corpintel/corpintel/internal/intel"
)

type timedClient struct {
	next    Client
	observe func(time.Duration)
}

// Instrument wraps a Client so every query's duration is reported to observe.
// Failed queries are observed too.
func Instrument(c Client, observe func(time.Duration)) Client {
	return &timedClient{next: c, observe: observe}
}

func (t *timedClient) Search(ctx context.Context, query string) ([]intel.SearchResult, error) {
	start := time.Now()
	results, err := t.next.Search(ctx, query)
	t.observe(time.Since(start))
	return results, err
}
