package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventReset  EventType = "reset"
	EventStep   EventType = "step"
	EventReject EventType = "reject"
)

// Severity tags a notification for the consumer (log panel, CLI colors).
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
	SeveritySystem  Severity = "system"
)

// EventBase contains common fields for all engine events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
}

// ResetEvent is emitted when the engine is (re)initialized to its start state.
type ResetEvent struct {
	EventBase
	StateID    string `json:"state_id"`
	StateLabel string `json:"state_label"`
}

// StepEvent is emitted on every successful transition.
type StepEvent struct {
	EventBase
	From   string `json:"from"`
	To     string `json:"to"`
	Symbol string `json:"symbol"`
}

// RejectEvent is emitted when no transition matches the consumed symbol.
type RejectEvent struct {
	EventBase
	StateID string `json:"state_id"`
	Symbol  string `json:"symbol"`
	Reason  string `json:"reason"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks are fire-and-forget: the engine never depends on anyone observing
// them, and nil callbacks are simply skipped.
type LifecycleHooks struct {
	OnReset  func(context.Context, *ResetEvent)
	OnStep   func(context.Context, *StepEvent)
	OnReject func(context.Context, *RejectEvent)
}
