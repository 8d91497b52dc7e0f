package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{name: "valid", req: Request{Company: "Acme Corp", Question: "who founded it?"}},
		{name: "valid with website", req: Request{Company: "Acme Corp", Website: "acme.com", Question: "competitors?"}},
		{name: "empty company", req: Request{Question: "competitors?"}, wantErr: true},
		{name: "whitespace company", req: Request{Company: "   ", Question: "competitors?"}, wantErr: true},
		{name: "empty question", req: Request{Company: "Acme Corp"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIntentValid(t *testing.T) {
	for _, intent := range AllIntents() {
		assert.True(t, intent.Valid(), "intent %q", intent)
	}
	assert.False(t, Intent("stock_price").Valid())
	assert.False(t, Intent("").Valid())
}

func TestIntentLabels(t *testing.T) {
	assert.Equal(t, "Competitor Agent", IntentCompetitor.Label())
	assert.Equal(t, "Founder Agent", IntentFounder.Label())
	assert.Equal(t, "Business Agent", IntentBusiness.Label())

	assert.Equal(t, "Competitor Analysis", IntentCompetitor.Heading())
	assert.Equal(t, "Founders & Leadership", IntentFounder.Heading())
	assert.Equal(t, "Business Overview", IntentBusiness.Heading())
}

func TestAgentOutcomeFailed(t *testing.T) {
	assert.False(t, AgentOutcome{Intent: IntentBusiness, Answer: "ok"}.Failed())
	assert.True(t, AgentOutcome{Intent: IntentBusiness, Err: ErrorKindSynthesisFailed}.Failed())
}
