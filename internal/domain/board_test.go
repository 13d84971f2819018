package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateMeetsMinimumSolutions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		board, err := Generate(rng, 4, 3, 2, 1000)
		if err != nil {
			t.Fatalf("trial %d: generate error: %v", trial, err)
		}
		if len(board) != 12 {
			t.Fatalf("trial %d: board size = %d, want 12", trial, len(board))
		}

		seen := make(map[Card]bool, len(board))
		for _, c := range board {
			if seen[c] {
				t.Fatalf("trial %d: duplicate card %v", trial, c)
			}
			seen[c] = true
		}

		if n := len(Solutions(board)); n < 2 {
			t.Fatalf("trial %d: %d solutions, want >= 2", trial, n)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(7)), 4, 3, 1, 1000)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	b, err := Generate(rand.New(rand.NewSource(7)), 4, 3, 1, 1000)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("boards diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateAttemptBudget(t *testing.T) {
	// A 3-card board admits at most one solution, so five are
	// unreachable and every attempt must fail.
	rng := rand.New(rand.NewSource(1))
	_, err := Generate(rng, 1, 3, 5, 50)
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("err = %v, want ErrGeneration", err)
	}
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name          string
		rows, columns int
	}{
		{name: "zero rows", rows: 0, columns: 3},
		{name: "negative columns", rows: 4, columns: -1},
		{name: "larger than deck", rows: 10, columns: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			if _, err := Generate(rng, tt.rows, tt.columns, 1, 10); err == nil {
				t.Fatalf("expected error for %dx%d board", tt.rows, tt.columns)
			}
		})
	}
}
