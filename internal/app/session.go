package app

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"duckgoose/internal/domain"
	"duckgoose/internal/ports"
)

// Phase represents the lifecycle stage of a session.
type Phase string

const (
	// PhaseRunning is the active state accepting claims.
	PhaseRunning Phase = "running"
	// PhaseEnded is the terminal state; the session is retained only
	// for final reporting and rejects all further mutation.
	PhaseEnded Phase = "ended"
)

// Scoring holds the score deltas applied by claim outcomes.
type Scoring struct {
	CorrectSolution   int
	IncorrectSolution int
	CorrectGoose      int
	IncorrectGoose    int
}

// Claim records one accepted answer and its claimant.
type Claim struct {
	Answer   domain.Solution
	PlayerID string
}

// Session is one run of the game, scoped to a channel. All state
// mutation happens under the session mutex so logically concurrent
// claims resolve to a single winner and later duplicates are ignored.
type Session struct {
	ID        string
	ChannelID string
	Rows      int
	Columns   int

	mu        sync.Mutex
	phase     Phase
	board     domain.Board
	solutions map[domain.Solution]struct{} // memoized; nil until computed
	claims    []Claim                      // insertion order
	claimedBy map[domain.Solution]string
	scores    map[string]int
	scoring   Scoring

	handle ports.RenderHandle
	timer  *time.Timer
}

// NewSession creates a running session for the given board.
func NewSession(channelID string, rows, columns int, board domain.Board, scoring Scoring) *Session {
	return &Session{
		ID:        uuid.NewString(),
		ChannelID: channelID,
		Rows:      rows,
		Columns:   columns,
		phase:     PhaseRunning,
		board:     board,
		claimedBy: make(map[domain.Solution]string),
		scores:    make(map[string]int),
		scoring:   scoring,
	}
}

// Board returns the cards in play.
func (s *Session) Board() domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// SetBoard swaps in a new board for the same session, the path a
// regenerated board takes. It erases the memoized solution set; claims
// are kept only while the board is unchanged, so a replaced board
// starts from a clean claimed set.
func (s *Session) SetBoard(board domain.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = board
	s.solutions = nil
	s.claims = nil
	s.claimedBy = make(map[domain.Solution]string)
}

// Layout describes the board for the presentation layer.
func (s *Session) Layout() ports.BoardLayout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.BoardLayout{Rows: s.Rows, Columns: s.Columns, Cards: s.board}
}

// Solutions returns the full solution set, computing and caching it on
// first use.
func (s *Session) Solutions() map[domain.Solution]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solutionsLocked()
}

func (s *Session) solutionsLocked() map[domain.Solution]struct{} {
	if s.solutions == nil {
		s.solutions = domain.Solutions(s.board)
	}
	return s.solutions
}

// Running reports whether the session still accepts claims.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseRunning
}

// Claims returns the accepted answers in claim order.
func (s *Session) Claims() []Claim {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Claim, len(s.claims))
	copy(out, s.claims)
	return out
}

// Score returns a player's current total.
func (s *Session) Score(playerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores[playerID]
}

// ClaimAnswer normalizes and validates an answer claim. Out-of-range
// indices and re-claims of already claimed triples are silently
// ignored so noisy or racing chat input never penalizes players.
func (s *Session) ClaimAnswer(playerID string, indices [3]int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return nil
	}

	answer := domain.NewSolution(indices[0], indices[1], indices[2])
	for _, idx := range answer {
		if idx < 0 || idx >= len(s.board) {
			return nil
		}
	}
	if _, taken := s.claimedBy[answer]; taken {
		return nil
	}

	if _, ok := s.solutionsLocked()[answer]; ok {
		s.claims = append(s.claims, Claim{Answer: answer, PlayerID: playerID})
		s.claimedBy[answer] = playerID
		s.scores[playerID] += s.scoring.CorrectSolution
		return []Event{{Kind: EventAnswerAccepted, Payload: AnswerAcceptedPayload{PlayerID: playerID, Answer: answer}}}
	}

	s.scores[playerID] += s.scoring.IncorrectSolution
	return []Event{{Kind: EventAnswerRejected, Payload: AnswerRejectedPayload{PlayerID: playerID}}}
}

// ClaimGoose ends the game if every solution has been claimed,
// otherwise penalizes the caller and leaves the session running.
func (s *Session) ClaimGoose(playerID string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return nil
	}

	if len(s.claimedBy) != len(s.solutionsLocked()) {
		s.scores[playerID] += s.scoring.IncorrectGoose
		return []Event{{Kind: EventGooseRejected, Payload: GooseRejectedPayload{PlayerID: playerID}}}
	}

	s.scores[playerID] += s.scoring.CorrectGoose
	s.phase = PhaseEnded
	return []Event{{Kind: EventGameEnded, Payload: GameEndedPayload{
		Summary: s.summaryLocked(ports.EndReasonGoosed, playerID),
	}}}
}

// Expire ends a running session on duration timeout. Idempotent: a
// session already ended by a concurrent goose yields no events.
func (s *Session) Expire() []Event {
	return s.end(ports.EndReasonTimeout)
}

// ForceEnd is the administrative termination path.
func (s *Session) ForceEnd() []Event {
	return s.end(ports.EndReasonForced)
}

func (s *Session) end(reason ports.EndReason) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return nil
	}
	s.phase = PhaseEnded
	return []Event{{Kind: EventGameEnded, Payload: GameEndedPayload{
		Summary: s.summaryLocked(reason, ""),
	}}}
}

func (s *Session) summaryLocked(reason ports.EndReason, winner string) ports.EndSummary {
	scores := make(map[string]int, len(s.scores))
	for player, score := range s.scores {
		scores[player] = score
	}
	return ports.EndSummary{Reason: reason, Scores: scores, Winner: winner}
}

// SetHandle stores the presenter's render handle.
func (s *Session) SetHandle(handle ports.RenderHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handle = handle
}

// Handle returns the stored render handle, nil before the first render
// completes.
func (s *Session) Handle() ports.RenderHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

// AttachTimer associates the scheduled timeout with the session.
func (s *Session) AttachTimer(timer *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = timer
}

// StopTimer cancels the pending timeout, if any. The expiry path also
// checks session identity, so stopping is best-effort cleanup rather
// than the correctness guard.
func (s *Session) StopTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
