package app

import "testing"

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Input
	}{
		{name: "goose", raw: "goose", want: Input{Kind: InputGoose}},
		{name: "goose uppercase", raw: "GOOSE", want: Input{Kind: InputGoose}},
		{name: "goose padded", raw: "  Goose  ", want: Input{Kind: InputGoose}},
		{name: "goose with noise is not goose", raw: "goose!", want: Input{Kind: InputIgnore}},
		{name: "plain answer", raw: "1 2 3", want: Input{Kind: InputAnswer, Answer: [3]int{1, 2, 3}}},
		{name: "comma separated", raw: "1,2,3", want: Input{Kind: InputAnswer, Answer: [3]int{1, 2, 3}}},
		{name: "noise around digits", raw: "see 10, 2, and 7!", want: Input{Kind: InputAnswer, Answer: [3]int{10, 2, 7}}},
		{name: "duplicate indices still parse", raw: "0 0 0", want: Input{Kind: InputAnswer, Answer: [3]int{0, 0, 0}}},
		{name: "two numbers", raw: "1 2", want: Input{Kind: InputIgnore}},
		{name: "four numbers", raw: "1 2 3 4", want: Input{Kind: InputIgnore}},
		{name: "no numbers", raw: "hello there", want: Input{Kind: InputIgnore}},
		{name: "empty", raw: "", want: Input{Kind: InputIgnore}},
		{name: "digits glued to one run", raw: "123", want: Input{Kind: InputIgnore}},
		{name: "oversized digit run", raw: "1 2 99999999999999999999999999", want: Input{Kind: InputIgnore}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInput(tt.raw); got != tt.want {
				t.Fatalf("ParseInput(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
