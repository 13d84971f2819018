package domain

// Solution is a sorted triple of board positions forming a valid line
// under the completion rule.
type Solution [3]int

// NewSolution returns the triple in canonical sorted order.
func NewSolution(a, b, c int) Solution {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Solution{a, b, c}
}

// Solutions computes every valid triple on the board.
//
// Two distinct cards determine exactly one line in the deck, and a line
// holds exactly 3 cards, so the completion of a pair of distinct cards
// is always a third, distinct card. Scanning all unordered pairs and
// looking up each completion therefore finds every line on the board;
// sorting the indices deduplicates the three pair choices per line.
// A card-to-position lookup keeps the scan O(N^2).
func Solutions(board Board) map[Solution]struct{} {
	positions := make(map[Card]int, len(board))
	for idx, card := range board {
		positions[card] = idx
	}

	solutions := make(map[Solution]struct{})
	for idxA, cardA := range board {
		for idxB := idxA + 1; idxB < len(board); idxB++ {
			idxC, ok := positions[Completion(cardA, board[idxB])]
			if !ok {
				continue
			}
			solutions[NewSolution(idxA, idxB, idxC)] = struct{}{}
		}
	}
	return solutions
}
