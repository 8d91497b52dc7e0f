package intel

// EventType tags a StreamEvent variant on the wire.
type EventType string

const (
	EventVerifyStarted     EventType = "verify_started"
	EventVerifyComplete    EventType = "verify_complete"
	EventRoutingStarted    EventType = "routing_started"
	EventRoutingComplete   EventType = "routing_complete"
	EventAgentStarted      EventType = "agent_started"
	EventAgentSearching    EventType = "agent_searching"
	EventAgentSynthesizing EventType = "agent_synthesizing"
	EventAgentComplete     EventType = "agent_complete"
	EventAgentFailed       EventType = "agent_failed"
	EventFinalAnswer       EventType = "final_answer"
	EventError             EventType = "error"
)

// StreamEvent is the externally visible unit of progress for one request.
// Events are appended in emission order and never retracted; the stream ends
// with exactly one FinalAnswer or Error event. Only the fields relevant to
// the variant named by Type are populated.
type StreamEvent struct {
	Type EventType `json:"type"`

	// Intents is set on routing_complete.
	Intents []Intent `json:"intents,omitempty"`
	// Intent is set on all agent_* events.
	Intent Intent `json:"intent,omitempty"`
	// Query is set on agent_searching.
	Query string `json:"query,omitempty"`
	// Answer is set on agent_complete.
	Answer string `json:"answer,omitempty"`
	// Text is set on final_answer.
	Text string `json:"text,omitempty"`
	// Kind and Message are set on error and agent_failed events.
	Kind    ErrorKind `json:"kind,omitempty"`
	Message string    `json:"message,omitempty"`
	// Verified and Description are set on verify_complete.
	Verified    bool   `json:"verified,omitempty"`
	Description string `json:"description,omitempty"`
}

// Terminal reports whether this event ends the stream.
func (e StreamEvent) Terminal() bool {
	return e.Type == EventFinalAnswer || e.Type == EventError
}

func VerifyStarted() StreamEvent {
	return StreamEvent{Type: EventVerifyStarted}
}

func VerifyComplete(verified bool, description string) StreamEvent {
	return StreamEvent{Type: EventVerifyComplete, Verified: verified, Description: description}
}

func RoutingStarted() StreamEvent {
	return StreamEvent{Type: EventRoutingStarted}
}

func RoutingComplete(intents []Intent) StreamEvent {
	return StreamEvent{Type: EventRoutingComplete, Intents: intents}
}

func AgentStarted(intent Intent) StreamEvent {
	return StreamEvent{Type: EventAgentStarted, Intent: intent}
}

func AgentSearching(intent Intent, query string) StreamEvent {
	return StreamEvent{Type: EventAgentSearching, Intent: intent, Query: query}
}

func AgentSynthesizing(intent Intent) StreamEvent {
	return StreamEvent{Type: EventAgentSynthesizing, Intent: intent}
}

func AgentComplete(intent Intent, answer string) StreamEvent {
	return StreamEvent{Type: EventAgentComplete, Intent: intent, Answer: answer}
}

func AgentFailed(intent Intent, kind ErrorKind) StreamEvent {
	return StreamEvent{Type: EventAgentFailed, Intent: intent, Kind: kind}
}

func FinalAnswer(text string) StreamEvent {
	return StreamEvent{Type: EventFinalAnswer, Text: text}
}

func ErrorEvent(kind ErrorKind, message string) StreamEvent {
	return StreamEvent{Type: EventError, Kind: kind, Message: message}
}
