package app

import (
	"regexp"
	"strconv"
	"strings"
)

// GooseWord is the sentinel message asserting every solution has been
// found, matched case-insensitively after trimming.
const GooseWord = "goose"

// answerPattern extracts exactly three digit runs separated by
// arbitrary non-digit runs, tolerating leading and trailing noise.
var answerPattern = regexp.MustCompile(`^\D*(\d+)\D+(\d+)\D+(\d+)\D*$`)

// InputKind classifies a raw chat message.
type InputKind int

const (
	// InputIgnore is anything that is neither a goose call nor an
	// answer. Ignored input is not an error.
	InputIgnore InputKind = iota
	InputGoose
	InputAnswer
)

// Input is the parsed form of one chat message.
type Input struct {
	Kind   InputKind
	Answer [3]int
}

// ParseInput classifies raw text and, for answers, extracts the three
// board indices. Extraction failures fall back to InputIgnore.
func ParseInput(raw string) Input {
	if strings.EqualFold(strings.TrimSpace(raw), GooseWord) {
		return Input{Kind: InputGoose}
	}

	match := answerPattern.FindStringSubmatch(raw)
	if match == nil {
		return Input{Kind: InputIgnore}
	}

	var answer [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(match[i+1])
		if err != nil {
			// Digit runs too long for an int are noise, not answers.
			return Input{Kind: InputIgnore}
		}
		answer[i] = n
	}
	return Input{Kind: InputAnswer, Answer: answer}
}
