package parser

import (
	"slices"
	"strconv"
	"strings"
)

// normaliseInput lowercases raw and reduces it to single-spaced words of
// letters and digits. Separators such as hyphens and apostrophes split
// words; other punctuation is dropped.
func normaliseInput(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case strings.ContainsRune(" \t\r\n-_/'", r):
			return ' '
		default:
			return -1
		}
	}, raw)
	return strings.Join(strings.Fields(cleaned), " ")
}

var turnSuffixes = []string{"turns", "turn", "t"}

// parseQuantityToken reads "12" as a count and "30t", "5turns" as turns.
func parseQuantityToken(token string) *Quantity {
	digits := strings.TrimRightFunc(token, func(r rune) bool { return r < '0' || r > '9' })
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return nil
	}
	switch suffix := token[len(digits):]; {
	case suffix == "":
		return &Quantity{Raw: digits, N: n, Unit: "count"}
	case slices.Contains(turnSuffixes, suffix):
		return &Quantity{Raw: digits, N: n, Unit: "turns"}
	default:
		return nil
	}
}

var pronouns = map[string]bool{"it": true, "that": true, "this": true, "them": true, "those": true}

var statNames = map[string]string{
	"s": "strength", "str": "strength", "strength": "strength",
	"i": "intelligence", "int": "intelligence", "intelligence": "intelligence",
	"d": "dexterity", "dex": "dexterity", "dexterity": "dexterity",
}

// fillerWords are skipped in front of a free-text argument.
var fillerWords = map[string]bool{"the": true, "my": true, "a": true, "an": true, "some": true}

func stripFiller(words []string) []string {
	for len(words) > 0 && fillerWords[words[0]] {
		words = words[1:]
	}
	return words
}

