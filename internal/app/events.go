package app

import (
	"duckgoose/internal/domain"
	"duckgoose/internal/ports"
)

// EventKind identifies emitted game events for presenter dispatch.
type EventKind string

const (
	EventAnswerAccepted EventKind = "answer_accepted"
	EventAnswerRejected EventKind = "answer_rejected"
	EventGooseRejected  EventKind = "goose_rejected"
	EventGameEnded      EventKind = "game_ended"
)

// Event is a game event with a typed payload.
type Event struct {
	Kind    EventKind
	Payload any
}

type AnswerAcceptedPayload struct {
	PlayerID string
	Answer   domain.Solution
}

type AnswerRejectedPayload struct {
	PlayerID string
}

type GooseRejectedPayload struct {
	PlayerID string
}

type GameEndedPayload struct {
	Summary ports.EndSummary
}
