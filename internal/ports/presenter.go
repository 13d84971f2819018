package ports

import "duckgoose/internal/domain"

// RenderHandle is an opaque reference to a rendered board message.
// The core stores it and passes it back on later notifications; it
// never interprets the contents.
type RenderHandle any

// BoardLayout describes a board for the presentation layer.
type BoardLayout struct {
	Rows    int
	Columns int
	Cards   []domain.Card
}

// EndReason identifies how a game ended.
type EndReason string

const (
	EndReasonTimeout EndReason = "timeout"
	EndReasonGoosed  EndReason = "goosed"
	EndReasonForced  EndReason = "forced"
)

// EndSummary is the final report for a finished game.
type EndSummary struct {
	Reason EndReason
	Scores map[string]int
	// Winner is the player whose goose call ended the game.
	// Empty for timeout and forced endings.
	Winner string
}

// Presenter defines the interface to the external presentation layer.
// The core emits notifications through it and never blocks game state
// on rendering concerns.
type Presenter interface {
	// RenderBoard displays a new board and returns a handle for
	// follow-up notifications. The handle may be nil on notifications
	// that race the initial render.
	RenderBoard(layout BoardLayout) (RenderHandle, error)

	// AnswerAccepted reports a newly claimed solution.
	AnswerAccepted(handle RenderHandle, playerID string, answer domain.Solution)

	// AnswerRejected reports an incorrect claim so the presentation
	// layer can surface a negative-feedback indicator.
	AnswerRejected(handle RenderHandle, playerID string)

	// GameEnded reports the final scoreboard.
	GameEnded(handle RenderHandle, summary EndSummary)
}
