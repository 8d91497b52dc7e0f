package provider

import (
	"context"
	"time"
)

type timedProvider struct {
	next    Provider
	observe func(time.Duration)
}

// Instrument wraps a Provider so every completion call's duration is reported
// to observe. Failed calls are observed too.
func Instrument(p Provider, observe func(time.Duration)) Provider {
	return &timedProvider{next: p, observe: observe}
}

func (t *timedProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	start := time.Now()
	reply, err := t.next.Complete(ctx, systemPrompt, userMessage)
	t.observe(time.Since(start))
	return reply, err
}

func (t *timedProvider) Name() string  { return t.next.Name() }
func (t *timedProvider) Model() string { return t.next.Model() }
