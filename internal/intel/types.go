// Package intel defines the shared data model for the company research
// pipeline: requests, intents, routing decisions, search evidence, agent
// outcomes, and the typed event stream emitted while a request runs.
package intel

import (
	"fmt"
	"strings"
)

// Intent is the category of company-intelligence question a user is asking.
// The set is closed: dispatch over intents is an exhaustive match, and adding
// a category means adding one constant and one specialist prompt.
type Intent string

const (
	// IntentCompetitor asks for rivals, alternatives, or similar companies.
	IntentCompetitor Intent = "competitor_analysis"
	// IntentFounder asks for founders, CEO, or leadership information.
	IntentFounder Intent = "founder_lookup"
	// IntentBusiness asks what the company does, its products, or business model.
	IntentBusiness Intent = "business_overview"
)

// AllIntents returns every known intent in canonical order. The router falls
// back to this full set when classification is ambiguous.
func AllIntents() []Intent {
	return []Intent{IntentCompetitor, IntentFounder, IntentBusiness}
}

// Valid reports whether the intent is one of the known categories.
func (i Intent) Valid() bool {
	switch i {
	case IntentCompetitor, IntentFounder, IntentBusiness:
		return true
	}
	return false
}

// Label returns the display name of the specialist agent for this intent.
func (i Intent) Label() string {
	switch i {
	case IntentCompetitor:
		return "Competitor Agent"
	case IntentFounder:
		return "Founder Agent"
	case IntentBusiness:
		return "Business Agent"
	}
	return "Unknown Agent"
}

// Heading returns the section heading used when composing the final answer.
func (i Intent) Heading() string {
	switch i {
	case IntentCompetitor:
		return "Competitor Analysis"
	case IntentFounder:
		return "Founders & Leadership"
	case IntentBusiness:
		return "Business Overview"
	}
	return "Research"
}

// Request is one incoming research question about a named company.
// It is created once per call and never mutated.
type Request struct {
	Company string `json:"company"`
	// Website optionally disambiguates companies with similar names.
	// When set, the router verifies company identity before routing.
	Website  string `json:"website,omitempty"`
	Question string `json:"question"`
}

// Validate checks that the request carries the two required fields.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Company) == "" {
		return fmt.Errorf("company must not be empty")
	}
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("question must not be empty")
	}
	return nil
}

// MaxQueriesPerIntent bounds how many search queries the router may assign to
// one intent. The model is asked for 1-2; anything beyond the bound is dropped.
const MaxQueriesPerIntent = 5

// RoutingDecision is the router's verdict for one request: which intents were
// selected and, per intent, the ordered search queries to run. Produced once
// per request and immutable afterwards.
type RoutingDecision struct {
	// Intents is the non-empty, duplicate-free selection in source order.
	// The final answer concatenates sections in this order.
	Intents []Intent
	// Queries maps each selected intent to its ordered search queries.
	Queries map[Intent][]string
	// Reasoning is the model's one-line explanation of the classification.
	Reasoning string
}

// SearchResult is a single web search hit used as evidence.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// AgentOutcome is the result of exactly one specialist agent invocation.
// Either Answer is set, or Err names the branch-level failure. Evidence is
// request-scoped and never cached across requests.
type AgentOutcome struct {
	Intent   Intent
	Answer   string
	Evidence []SearchResult
	Err      ErrorKind
}

// Failed reports whether the branch ended in a failure outcome.
func (o AgentOutcome) Failed() bool {
	return o.Err != ""
}
