package domain

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrGeneration indicates the generator exhausted its attempt budget
// without producing a board meeting the minimum-solutions constraint.
var ErrGeneration = errors.New("board generation exceeded attempt budget")

// Board is an ordered sample of cards in play for one game.
// The slice index is the display position.
type Board []Card

// Generate samples rows*columns distinct cards from the deck until the
// board admits at least minSolutions solutions. Sampling is uniform
// without replacement and deterministic for a seeded rng. The loop is
// bounded by maxAttempts; the original behavior had no bound, but for
// sane parameters the constraint is met within a handful of attempts.
func Generate(rng *rand.Rand, rows, columns, minSolutions, maxAttempts int) (Board, error) {
	size := rows * columns
	if size <= 0 || size > DeckSize {
		return nil, fmt.Errorf("invalid board size %dx%d", rows, columns)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		board := sample(rng, size)
		if len(Solutions(board)) >= minSolutions {
			return board, nil
		}
	}
	return nil, fmt.Errorf("%w: %d attempts for %dx%d board with >=%d solutions",
		ErrGeneration, maxAttempts, rows, columns, minSolutions)
}

// sample draws size distinct cards from the deck without replacement.
func sample(rng *rand.Rand, size int) Board {
	perm := rng.Perm(DeckSize)
	board := make(Board, size)
	for i := 0; i < size; i++ {
		board[i] = deck[perm[i]]
	}
	return board
}
