// Package tokenizer splits a raw query string into a positioned sequence
// of normalized words.
package tokenizer

import (
	"strings"
	"unicode"
)

// Token is a (position, text) pair. Position is the zero-based index of the
// word in the original tokenization; Text is lowercase and free of internal
// whitespace.
type Token struct {
	Position int
	Text     string
}

// Tokenize lowercases query, then segments it by maximal runs of
// non-whitespace. Positions are assigned densely from zero in the
// surviving order. An empty or all-whitespace query yields an empty slice.
func Tokenize(query string) []Token {
	lowered := strings.ToLower(query)

	tokens := make([]Token, 0, 4)
	pos := 0
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		word := lowered[start:end]
		// Defensive invariant: a maximal non-whitespace run can never
		// itself contain whitespace. Drop it rather than trust the rune
		// scan if it somehow does.
		if strings.IndexFunc(word, unicode.IsSpace) == -1 {
			tokens = append(tokens, Token{Position: pos, Text: word})
			pos++
		}
		start = -1
	}

	for i, r := range lowered {
		if unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(lowered))

	return tokens
}
