// Package router classifies a user's question into research intents and
// plans, per intent, the search queries the specialist agents will run.
//
// Routing is fail-open: when the model selects no known intent, the router
// falls back to all categories so the user always gets an answer. Parse
// failures are reported to the caller, never guessed around.
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/corpintel/corpintel/internal/intel"
	"github.com/corpintel/corpintel/internal/logging"
	"github.com/corpintel/corpintel/internal/provider"
	"github.com/corpintel/corpintel/internal/search"
)

// Router produces one RoutingDecision per request.
type Router struct {
	llm    provider.Provider
	search search.Client
	logger *logging.Logger
}

// New creates a Router. The search client is only used for company
// verification; routing itself is a single model call.
func New(llm provider.Provider, searchClient search.Client) *Router {
	return &Router{
		llm:    llm,
		search: searchClient,
		logger: logging.GetLogger("intel.router"),
	}
}

// routeReply is the JSON shape the routing prompt asks the model for.
type routeReply struct {
	Intents   []string            `json:"intents"`
	Reasoning string              `json:"reasoning"`
	Queries   map[string][]string `json:"queries"`
}

// Route classifies the question and returns the routing decision. A model
// call failure or an unparseable reply is returned as an error; the caller
// surfaces it as a terminal routing failure. One attempt, no retry.
func (r *Router) Route(ctx context.Context, company, question, companyContext string) (*intel.RoutingDecision, error) {
	userMsg := fmt.Sprintf("Company: %s", company)
	if companyContext != "" {
		userMsg += fmt.Sprintf("\nVerified Company Context: %s", companyContext)
	}
	userMsg += fmt.Sprintf("\nUser's question: %s", question)

	raw, err := r.llm.Complete(ctx, RouterSystemPrompt+jsonOnlyInstruction, userMsg)
	if err != nil {
		return nil, fmt.Errorf("router model call failed: %w", err)
	}

	var reply routeReply
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &reply); err != nil {
		return nil, fmt.Errorf("router reply is not valid JSON: %w", err)
	}

	decision := &intel.RoutingDecision{
		Reasoning: reply.Reasoning,
		Queries:   make(map[intel.Intent][]string),
	}

	seen := make(map[intel.Intent]bool)
	for _, s := range reply.Intents {
		it := intel.Intent(s)
		if !it.Valid() {
			r.logger.Warn("dropping unknown intent %q from router reply", s)
			continue
		}
		if seen[it] {
			continue
		}
		seen[it] = true
		decision.Intents = append(decision.Intents, it)
	}

	// Fail open: an ambiguous classification selects every category.
	if len(decision.Intents) == 0 {
		r.logger.Warn("no intent confidently selected, defaulting to all categories")
		decision.Intents = intel.AllIntents()
	}

	for _, it := range decision.Intents {
		queries := prune(reply.Queries[string(it)])
		if len(queries) == 0 {
			queries = defaultQueries(it, company)
		}
		if len(queries) > intel.MaxQueriesPerIntent {
			queries = queries[:intel.MaxQueriesPerIntent]
		}
		decision.Queries[it] = queries
	}

	r.logger.InfoWithFields("routing decided",
		logging.Field("intents", decision.Intents),
		logging.Field("reasoning", decision.Reasoning),
	)

	return decision, nil
}

// defaultQueries covers intents the model selected without planning queries
// for, and the fail-open path.
func defaultQueries(intent intel.Intent, company string) []string {
	switch intent {
	case intel.IntentCompetitor:
		return []string{company + " competitors alternatives market"}
	case intel.IntentFounder:
		return []string{company + " founder CEO leadership team"}
	case intel.IntentBusiness:
		return []string{company + " company products business model"}
	}
	return []string{company}
}

// prune drops empty query strings while preserving order.
func prune(queries []string) []string {
	out := queries[:0:0]
	for _, q := range queries {
		if strings.TrimSpace(q) != "" {
			out = append(out, q)
		}
	}
	return out
}

// stripCodeFences removes a surrounding markdown code fence, which models
// sometimes wrap JSON replies in despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = s[3:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
