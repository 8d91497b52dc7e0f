// Package orchestrator runs the full research pipeline for one request:
// optional company verification, intent routing, concurrent specialist
// agents, and final answer composition. Progress and the terminal result are
// reported as a typed event stream.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/corpintel/corpintel/internal/intel"
	"github.com/corpintel/corpintel/internal/intel/router"
	"github.com/corpintel/corpintel/internal/intel/specialist"
	"github.com/corpintel/corpintel/internal/logging"
	"github.com/corpintel/corpintel/internal/metrics"
	"github.com/corpintel/corpintel/internal/provider"
	"github.com/corpintel/corpintel/internal/search"
)

const eventBufferSize = 64

// Orchestrator wires the router and the specialist agents together. One
// instance serves many concurrent requests; all per-request state lives in
// Handle's goroutine.
type Orchestrator struct {
	router  *router.Router
	agents  map[intel.Intent]*specialist.Agent
	metrics *metrics.Metrics
	logger  *logging.Logger
	tracer  trace.Tracer
}

// New builds an orchestrator on the given model provider and search client.
// metrics may be nil.
func New(llm provider.Provider, searchClient search.Client, m *metrics.Metrics) *Orchestrator {
	agents := make(map[intel.Intent]*specialist.Agent, len(intel.AllIntents()))
	for _, it := range intel.AllIntents() {
		agents[it] = specialist.New(it, searchClient, llm)
	}
	return &Orchestrator{
		router:  router.New(llm, searchClient),
		agents:  agents,
		metrics: m,
		logger:  logging.GetLogger("intel.orchestrator"),
		tracer:  otel.Tracer("corpintel.intel"),
	}
}

// Handle starts the pipeline for one request and returns its event stream.
// The channel is closed after the terminal event; when ctx is canceled the
// stream may close without one. The caller must drain the channel.
func (o *Orchestrator) Handle(ctx context.Context, req intel.Request) <-chan intel.StreamEvent {
	ch := make(chan intel.StreamEvent, eventBufferSize)
	go o.run(ctx, req, ch)
	return ch
}

func (o *Orchestrator) run(ctx context.Context, req intel.Request, ch chan<- intel.StreamEvent) {
	defer close(ch)

	start := time.Now()
	defer func() {
		o.metrics.ObserveRequest(time.Since(start))
	}()

	ctx, span := o.tracer.Start(ctx, "intel.Handle",
		trace.WithAttributes(
			attribute.String("request.company", req.Company),
			attribute.Bool("request.has_website", req.Website != ""),
		),
	)
	defer span.End()

	logger := o.logger.WithField("request_id", uuid.NewString())

	emit := func(e intel.StreamEvent) {
		select {
		case ch <- e:
		case <-ctx.Done():
		}
	}
	fail := func(kind intel.ErrorKind, msg string) {
		o.metrics.ObserveFailure(string(kind))
		span.SetStatus(codes.Error, string(kind))
		logger.ErrorWithFields("request failed",
			logging.Field("kind", string(kind)),
			logging.Field("message", msg),
		)
		emit(intel.ErrorEvent(kind, msg))
	}

	if err := req.Validate(); err != nil {
		fail(intel.ErrorKindRouting, "invalid request: "+err.Error())
		return
	}

	logger.InfoWithFields("research request started",
		logging.Field("company", req.Company),
		logging.Field("website", req.Website),
	)

	companyContext := o.verify(ctx, logger, req, emit)

	emit(intel.RoutingStarted())
	decision, err := o.router.Route(ctx, req.Company, req.Question, companyContext)
	if err != nil {
		fail(intel.ErrorKindRouting, err.Error())
		return
	}
	emit(intel.RoutingComplete(decision.Intents))
	span.SetAttributes(attribute.Int("routing.intents", len(decision.Intents)))

	outcomes := make([]intel.AgentOutcome, len(decision.Intents))
	g, gctx := errgroup.WithContext(ctx)
	for i, it := range decision.Intents {
		agent, ok := o.agents[it]
		if !ok {
			// Route only returns valid intents; guard against drift.
			outcomes[i] = intel.AgentOutcome{Intent: it, Err: intel.ErrorKindProvider}
			continue
		}
		g.Go(func() error {
			branchCtx, agentSpan := o.tracer.Start(gctx, "intel.agent",
				trace.WithAttributes(attribute.String("agent.intent", string(it))),
			)
			outcome := agent.Run(branchCtx, req.Company, companyContext, decision.Queries[it], emit)
			if outcome.Failed() {
				agentSpan.SetStatus(codes.Error, string(outcome.Err))
				emit(intel.AgentFailed(outcome.Intent, outcome.Err))
				o.metrics.ObserveAgent(string(outcome.Intent), string(outcome.Err))
			} else {
				agentSpan.SetAttributes(attribute.Int("agent.evidence", len(outcome.Evidence)))
				emit(intel.AgentComplete(outcome.Intent, outcome.Answer))
				o.metrics.ObserveAgent(string(outcome.Intent), "ok")
			}
			agentSpan.End()
			outcomes[i] = outcome
			// One branch failing must not cancel its siblings.
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		logger.Warn("request canceled before completion")
		return
	}

	answer, ok := compose(decision.Intents, outcomes)
	if !ok {
		fail(intel.ErrorKindAllAgentsFailed, fmt.Sprintf("all %d research agents failed", len(outcomes)))
		return
	}

	logger.InfoWithFields("research request finished",
		logging.Field("intents", len(decision.Intents)),
		logging.Field("duration", time.Since(start).String()),
	)
	emit(intel.FinalAnswer(answer))
}

// verify runs the optional company identity check. Verification is best
// effort: any failure degrades to an unverified request rather than aborting
// it. Returns the company context for downstream prompts, or "".
func (o *Orchestrator) verify(ctx context.Context, logger *logging.Logger, req intel.Request, emit func(intel.StreamEvent)) string {
	if req.Website == "" {
		return ""
	}

	emit(intel.VerifyStarted())
	v, err := o.router.Verify(ctx, req.Company, req.Website)
	if err != nil {
		logger.WarnWithFields("company verification failed, continuing unverified",
			logging.Field("error", err.Error()),
		)
		emit(intel.VerifyComplete(false, ""))
		return ""
	}

	emit(intel.VerifyComplete(v.Verified, v.Description))
	if !v.Verified {
		return ""
	}
	return v.Description
}

// compose joins the successful sections in routing order. ok is false when
// every branch failed.
func compose(intents []intel.Intent, outcomes []intel.AgentOutcome) (string, bool) {
	sections := make([]string, 0, len(outcomes))
	for i, outcome := range outcomes {
		if outcome.Failed() {
			continue
		}
		sections = append(sections, fmt.Sprintf("## %s\n\n%s", intents[i].Heading(), outcome.Answer))
	}
	if len(sections) == 0 {
		return "", false
	}
	return strings.Join(sections, "\n\n"), true
}
