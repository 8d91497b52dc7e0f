// Package specialist implements the per-intent research agents. Every agent
// follows the same two-phase shape: run the routed search queries, then
// synthesize one answer from the collected evidence. Agents differ only in
// their synthesis prompt.
package specialist

import (
	"context"
	"time"

	"github.com/corpintel/corpintel/internal/intel"
	"github.com/corpintel/corpintel/internal/logging"
	"github.com/corpintel/corpintel/internal/provider"
	"github.com/corpintel/corpintel/internal/search"
)

// Agent is one specialist bound to a single intent.
type Agent struct {
	intent intel.Intent
	search search.Client
	llm    provider.Provider
	logger *logging.Logger
}

// New creates the specialist for the given intent.
func New(intent intel.Intent, searchClient search.Client, llm provider.Provider) *Agent {
	return &Agent{
		intent: intent,
		search: searchClient,
		llm:    llm,
		logger: logging.GetLogger("intel.specialist").WithField("intent", string(intent)),
	}
}

// Intent returns the intent this agent serves.
func (a *Agent) Intent() intel.Intent {
	return a.intent
}

// Run executes the search-then-synthesize pipeline for one request. Failures
// never escape as errors: they are captured in the outcome so one agent's
// failure cannot take down its siblings. Progress is reported through emit,
// which must be non-nil.
//
// Individual query failures are logged and skipped; only when every query
// fails does the agent give up without a synthesis call.
func (a *Agent) Run(ctx context.Context, company, companyContext string, queries []string, emit func(intel.StreamEvent)) intel.AgentOutcome {
	emit(intel.AgentStarted(a.intent))

	var evidence []intel.SearchResult
	failed := 0
	for _, query := range queries {
		emit(intel.AgentSearching(a.intent, query))

		start := time.Now()
		results, err := a.search.Search(ctx, query)
		if err != nil {
			failed++
			a.logger.WarnWithFields("search query failed",
				logging.Field("query", query),
				logging.Field("error", err.Error()),
			)
			continue
		}
		a.logger.DebugWithFields("search query done",
			logging.Field("query", query),
			logging.Field("results", len(results)),
			logging.Field("duration", time.Since(start).String()),
		)
		evidence = append(evidence, results...)
	}

	if len(queries) > 0 && failed == len(queries) {
		a.logger.Warn("all %d search queries failed, skipping synthesis", failed)
		return intel.AgentOutcome{Intent: a.intent, Err: intel.ErrorKindSearchUnavailable}
	}

	emit(intel.AgentSynthesizing(a.intent))

	answer, err := a.llm.Complete(ctx,
		systemPromptFor(a.intent),
		synthesisUserMessage(a.intent, company, companyContext, evidence),
	)
	if err != nil {
		a.logger.ErrorWithErr("synthesis model call failed", err)
		return intel.AgentOutcome{Intent: a.intent, Evidence: evidence, Err: intel.ErrorKindSynthesisFailed}
	}

	a.logger.InfoWithFields("agent finished",
		logging.Field("evidence", len(evidence)),
		logging.Field("answer_chars", len(answer)),
	)

	return intel.AgentOutcome{Intent: a.intent, Answer: answer, Evidence: evidence}
}
