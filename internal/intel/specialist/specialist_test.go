package specialist

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpintel/corpintel/internal/intel"
	"github.com/corpintel/corpintel/internal/intel/inteltest"
)

// collect returns an emit func appending into the given slice. Run is called
// from a single goroutine, so no locking is needed.
func collect(events *[]intel.StreamEvent) func(intel.StreamEvent) {
	return func(e intel.StreamEvent) {
		*events = append(*events, e)
	}
}

func eventTypes(events []intel.StreamEvent) []intel.EventType {
	types := make([]intel.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestRunHappyPath(t *testing.T) {
	searchClient := &inteltest.SearchClient{
		SearchFunc: func(ctx context.Context, query string) ([]intel.SearchResult, error) {
			return inteltest.Results(query, 2), nil
		},
	}
	llm := &inteltest.Provider{
		CompleteFunc: func(ctx context.Context, system, user string) (string, error) {
			return "Acme competes with Initech and Globex.", nil
		},
	}
	agent := New(intel.IntentCompetitor, searchClient, llm)

	var events []intel.StreamEvent
	outcome := agent.Run(context.Background(), "Acme Corp", "", []string{"q1", "q2"}, collect(&events))

	require.False(t, outcome.Failed())
	assert.Equal(t, intel.IntentCompetitor, outcome.Intent)
	assert.Equal(t, "Acme competes with Initech and Globex.", outcome.Answer)
	assert.Len(t, outcome.Evidence, 4)

	assert.Equal(t, []intel.EventType{
		intel.EventAgentStarted,
		intel.EventAgentSearching,
		intel.EventAgentSearching,
		intel.EventAgentSynthesizing,
	}, eventTypes(events))
	assert.Equal(t, "q1", events[1].Query)
	assert.Equal(t, "q2", events[2].Query)
}

func TestRunSynthesisPromptContainsEvidence(t *testing.T) {
	searchClient := &inteltest.SearchClient{
		SearchFunc: func(ctx context.Context, query string) ([]intel.SearchResult, error) {
			return []intel.SearchResult{{Title: "About Acme", URL: "https://acme.com/about", Snippet: "Acme makes anvils."}}, nil
		},
	}
	llm := &inteltest.Provider{
		CompleteFunc: func(ctx context.Context, system, user string) (string, error) {
			return "answer", nil
		},
	}
	agent := New(intel.IntentBusiness, searchClient, llm)

	var events []intel.StreamEvent
	outcome := agent.Run(context.Background(), "Acme Corp", "Acme Corp makes anvils (Industry: manufacturing)", []string{"q"}, collect(&events))
	require.False(t, outcome.Failed())

	calls := llm.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, BusinessSystemPrompt, calls[0].System)
	assert.Contains(t, calls[0].User, "Source: About Acme (https://acme.com/about)")
	assert.Contains(t, calls[0].User, "Acme makes anvils.")
	assert.Contains(t, calls[0].User, "Verified Company Context: Acme Corp makes anvils")
	assert.Contains(t, calls[0].User, "What does Acme Corp do")
}

func TestRunPartialSearchFailure(t *testing.T) {
	searchClient := &inteltest.SearchClient{
		SearchFunc: func(ctx context.Context, query string) ([]intel.SearchResult, error) {
			if query == "bad" {
				return nil, fmt.Errorf("search backend down")
			}
			return inteltest.Results("ok", 1), nil
		},
	}
	llm := &inteltest.Provider{
		CompleteFunc: func(ctx context.Context, system, user string) (string, error) {
			return "answer from partial evidence", nil
		},
	}
	agent := New(intel.IntentFounder, searchClient, llm)

	var events []intel.StreamEvent
	outcome := agent.Run(context.Background(), "Acme Corp", "", []string{"bad", "good"}, collect(&events))

	require.False(t, outcome.Failed())
	assert.Len(t, outcome.Evidence, 1)
	assert.Equal(t, "answer from partial evidence", outcome.Answer)
}

func TestRunAllSearchesFail(t *testing.T) {
	searchClient := &inteltest.SearchClient{
		SearchFunc: func(ctx context.Context, query string) ([]intel.SearchResult, error) {
			return nil, fmt.Errorf("search backend down")
		},
	}
	llm := &inteltest.Provider{}
	agent := New(intel.IntentCompetitor, searchClient, llm)

	var events []intel.StreamEvent
	outcome := agent.Run(context.Background(), "Acme Corp", "", []string{"q1", "q2"}, collect(&events))

	require.True(t, outcome.Failed())
	assert.Equal(t, intel.ErrorKindSearchUnavailable, outcome.Err)
	assert.Empty(t, outcome.Answer)
	// No synthesis call and no synthesizing event without any evidence source.
	assert.Empty(t, llm.Calls())
	assert.NotContains(t, eventTypes(events), intel.EventAgentSynthesizing)
}

func TestRunEmptyResultsStillSynthesizes(t *testing.T) {
	// Queries that succeed with zero hits are not failures: the agent still
	// synthesizes and reports thin evidence.
	searchClient := &inteltest.SearchClient{
		SearchFunc: func(ctx context.Context, query string) ([]intel.SearchResult, error) {
			return nil, nil
		},
	}
	llm := &inteltest.Provider{
		CompleteFunc: func(ctx context.Context, system, user string) (string, error) {
			return "no public information found", nil
		},
	}
	agent := New(intel.IntentBusiness, searchClient, llm)

	var events []intel.StreamEvent
	outcome := agent.Run(context.Background(), "Stealth Startup", "", []string{"q"}, collect(&events))

	require.False(t, outcome.Failed())
	assert.Equal(t, "no public information found", outcome.Answer)
	assert.Empty(t, outcome.Evidence)
}

func TestRunSynthesisFailure(t *testing.T) {
	searchClient := &inteltest.SearchClient{
		SearchFunc: func(ctx context.Context, query string) ([]intel.SearchResult, error) {
			return inteltest.Results("acme", 1), nil
		},
	}
	llm := &inteltest.Provider{
		CompleteFunc: func(ctx context.Context, system, user string) (string, error) {
			return "", fmt.Errorf("model overloaded")
		},
	}
	agent := New(intel.IntentFounder, searchClient, llm)

	var events []intel.StreamEvent
	outcome := agent.Run(context.Background(), "Acme Corp", "", []string{"q"}, collect(&events))

	require.True(t, outcome.Failed())
	assert.Equal(t, intel.ErrorKindSynthesisFailed, outcome.Err)
	// Evidence that was gathered is preserved on the failed outcome.
	assert.Len(t, outcome.Evidence, 1)
}

func TestSystemPromptPerIntent(t *testing.T) {
	tests := []struct {
		intent intel.Intent
		want   string
	}{
		{intent: intel.IntentCompetitor, want: CompetitorSystemPrompt},
		{intent: intel.IntentFounder, want: FounderSystemPrompt},
		{intent: intel.IntentBusiness, want: BusinessSystemPrompt},
	}
	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			assert.Equal(t, tt.want, systemPromptFor(tt.intent))
		})
	}
}
