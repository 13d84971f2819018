package domain

// NumFeatures is the number of independent features on a card.
const NumFeatures = 4

// FeatureArity is the number of values each feature can take.
const FeatureArity = 3

// DeckSize is the number of distinct cards (FeatureArity^NumFeatures).
const DeckSize = 81

// Card is an immutable tuple of feature values, each in {0,1,2}.
// Cards are comparable; equality is structural.
type Card [NumFeatures]int

// deck is the full enumeration of all cards, built once and shared
// read-only by every game.
var deck = buildDeck()

func buildDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	var c Card
	var fill func(feature int)
	fill = func(feature int) {
		if feature == NumFeatures {
			cards = append(cards, c)
			return
		}
		for v := 0; v < FeatureArity; v++ {
			c[feature] = v
			fill(feature + 1)
		}
	}
	fill(0)
	return cards
}

// FullDeck returns a copy of the complete deck in trinary order.
func FullDeck() []Card {
	out := make([]Card, DeckSize)
	copy(out, deck)
	return out
}

// DeckIndex returns the card's unique ordinal, interpreting its
// features as trinary digits (most significant first).
func (c Card) DeckIndex() int {
	idx := 0
	for _, v := range c {
		idx = idx*FeatureArity + v
	}
	return idx
}

// Completion returns the unique third card collinear with a and b.
// For each feature: if a and b agree the completion repeats the value,
// otherwise it is the remaining value of the 3-element domain.
func Completion(a, b Card) Card {
	var c Card
	for i := 0; i < NumFeatures; i++ {
		if a[i] == b[i] {
			c[i] = a[i]
		} else {
			c[i] = 3 - a[i] - b[i]
		}
	}
	return c
}
