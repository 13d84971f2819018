package domain

import "testing"

func TestFullDeck(t *testing.T) {
	cards := FullDeck()
	if len(cards) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(cards), DeckSize)
	}

	seen := make(map[Card]bool, DeckSize)
	for i, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %v in deck", c)
		}
		seen[c] = true
		if c.DeckIndex() != i {
			t.Fatalf("card %v at position %d has deck index %d", c, i, c.DeckIndex())
		}
	}
}

func TestDeckIndex(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want int
	}{
		{name: "zero card", card: Card{0, 0, 0, 0}, want: 0},
		{name: "last feature", card: Card{0, 0, 0, 1}, want: 1},
		{name: "first feature", card: Card{1, 0, 0, 0}, want: 27},
		{name: "all twos", card: Card{2, 2, 2, 2}, want: 80},
		{name: "mixed", card: Card{1, 0, 2, 1}, want: 27 + 2*3 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.DeckIndex(); got != tt.want {
				t.Fatalf("DeckIndex(%v) = %d, want %d", tt.card, got, tt.want)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		want Card
	}{
		{
			name: "all features differ",
			a:    Card{0, 0, 0, 0},
			b:    Card{1, 1, 1, 1},
			want: Card{2, 2, 2, 2},
		},
		{
			name: "all features agree",
			a:    Card{1, 2, 0, 1},
			b:    Card{1, 2, 0, 1},
			want: Card{1, 2, 0, 1},
		},
		{
			name: "mixed agreement",
			a:    Card{0, 1, 2, 2},
			b:    Card{0, 2, 2, 0},
			want: Card{0, 0, 2, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Completion(tt.a, tt.b); got != tt.want {
				t.Fatalf("Completion(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Two distinct points determine one line of exactly three points, so
// completing any pair of a valid line must yield the remaining card.
func TestCompletionPairChoiceInvariant(t *testing.T) {
	deck := FullDeck()
	for _, a := range deck[:9] {
		for _, b := range deck {
			if a == b {
				continue
			}
			c := Completion(a, b)
			if c == a || c == b {
				t.Fatalf("completion of distinct %v, %v collided: %v", a, b, c)
			}
			if got := Completion(a, c); got != b {
				t.Fatalf("Completion(%v, %v) = %v, want %v", a, c, got, b)
			}
			if got := Completion(b, c); got != a {
				t.Fatalf("Completion(%v, %v) = %v, want %v", b, c, got, a)
			}
		}
	}
}
