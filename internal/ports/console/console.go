// Package console is a terminal adapter for the Presenter port, used
// by the development entrypoint. Production deployments are expected
// to provide their own chat-platform adapter.
package console

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"duckgoose/internal/domain"
	"duckgoose/internal/ports"
)

// Presenter renders boards and game notifications as plain text.
type Presenter struct {
	mu     sync.Mutex
	out    io.Writer
	nextID int
}

// New returns a console presenter writing to out.
func New(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// RenderBoard prints the board as an index-labelled grid of feature
// tuples and returns a numeric handle identifying the render.
func (p *Presenter) RenderBoard(layout ports.BoardLayout) (ports.RenderHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	handle := p.nextID

	fmt.Fprintf(p.out, "[board #%d]\n", handle)
	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Columns; col++ {
			idx := row*layout.Columns + col
			fmt.Fprintf(p.out, "  %2d:%v", idx, layout.Cards[idx])
		}
		fmt.Fprintln(p.out)
	}
	return handle, nil
}

// AnswerAccepted prints the claimed triple.
func (p *Presenter) AnswerAccepted(handle ports.RenderHandle, playerID string, answer domain.Solution) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "%s claimed %v\n", playerID, answer)
}

// AnswerRejected prints a wrong-answer marker.
func (p *Presenter) AnswerRejected(handle ports.RenderHandle, playerID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "%s: x\n", playerID)
}

// GameEnded prints the end reason and the scoreboard sorted by score.
func (p *Presenter) GameEnded(handle ports.RenderHandle, summary ports.EndSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch summary.Reason {
	case ports.EndReasonGoosed:
		fmt.Fprintf(p.out, "%s GOOSED!\n", summary.Winner)
	case ports.EndReasonTimeout:
		fmt.Fprintln(p.out, "Time's up!")
	case ports.EndReasonForced:
		fmt.Fprintln(p.out, "Game ended.")
	}

	type line struct {
		player string
		score  int
	}
	lines := make([]line, 0, len(summary.Scores))
	for player, score := range summary.Scores {
		lines = append(lines, line{player, score})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].score != lines[j].score {
			return lines[i].score > lines[j].score
		}
		return lines[i].player < lines[j].player
	})
	for _, l := range lines {
		fmt.Fprintf(p.out, "  %s: %d\n", l.player, l.score)
	}
}
