package intel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamEventRoundTrip(t *testing.T) {
	events := []StreamEvent{
		VerifyStarted(),
		VerifyComplete(true, "Acme Corp makes anvils"),
		VerifyComplete(false, ""),
		RoutingStarted(),
		RoutingComplete([]Intent{IntentFounder, IntentCompetitor}),
		AgentStarted(IntentCompetitor),
		AgentSearching(IntentCompetitor, "Acme Corp competitors alternatives market"),
		AgentSynthesizing(IntentCompetitor),
		AgentComplete(IntentCompetitor, "1. **Initech** - also makes anvils."),
		AgentFailed(IntentFounder, ErrorKindSearchUnavailable),
		FinalAnswer("## Competitor Analysis\n\n..."),
		ErrorEvent(ErrorKindAllAgentsFailed, "every research agent failed"),
	}

	for _, ev := range events {
		t.Run(string(ev.Type), func(t *testing.T) {
			data, err := json.Marshal(ev)
			require.NoError(t, err)

			var decoded StreamEvent
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, ev, decoded)
		})
	}
}

func TestStreamEventWireTag(t *testing.T) {
	data, err := json.Marshal(AgentSearching(IntentFounder, "Acme founder CEO"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "agent_searching", raw["type"])
	assert.Equal(t, "founder_lookup", raw["intent"])
	assert.Equal(t, "Acme founder CEO", raw["query"])

	// Fields of other variants must not leak onto the wire.
	assert.NotContains(t, raw, "answer")
	assert.NotContains(t, raw, "intents")
	assert.NotContains(t, raw, "kind")
}

func TestStreamEventTerminal(t *testing.T) {
	assert.True(t, FinalAnswer("done").Terminal())
	assert.True(t, ErrorEvent(ErrorKindRouting, "boom").Terminal())
	assert.False(t, RoutingStarted().Terminal())
	assert.False(t, AgentComplete(IntentBusiness, "x").Terminal())
}
