package intel

// ErrorKind is the closed failure taxonomy surfaced on the event stream.
type ErrorKind string

const (
	// ErrorKindRouting means the router call or its response parsing failed.
	// Fails the whole request.
	ErrorKindRouting ErrorKind = "routing_error"
	// ErrorKindProvider means a search or model call failed. Scoped to the
	// branch that made the call.
	ErrorKindProvider ErrorKind = "provider_error"
	// ErrorKindSearchUnavailable means every search query of one branch
	// failed, so the branch had no evidence to synthesize from.
	ErrorKindSearchUnavailable ErrorKind = "search_unavailable"
	// ErrorKindSynthesisFailed means the branch gathered evidence but the
	// model call to synthesize an answer failed.
	ErrorKindSynthesisFailed ErrorKind = "synthesis_failed"
	// ErrorKindAllAgentsFailed means every dispatched branch failed, so no
	// final answer could be composed.
	ErrorKindAllAgentsFailed ErrorKind = "all_agents_failed"
)
