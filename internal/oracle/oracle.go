// Package oracle implements the expansion oracle consulted by the query
// tree builder for best-frequency word splits and synonym lookups. Both
// operations are pure reads against the index collaborators; neither does
// any stemming or partial matching.
package oracle

import (
	"strings"

	"github.com/standardbeagle/ftscore/internal/index"
	"github.com/standardbeagle/ftscore/internal/qerrors"
)

// Split is a best-frequency word split: word rewritten as two adjacent
// words Left, Right.
type Split struct {
	Left  string
	Right string
}

// BestFrequencySplit finds, for each split position of word, the postings
// length of both halves and returns the split whose minimum half-length is
// strictly greatest, ties broken by the lowest split index. It returns
// ok=false if no split has both halves present in the dictionary.
func BestFrequencySplit(postings index.PostingsStore, word string) (Split, bool, error) {
	runes := []rune(word)
	if len(runes) < 2 {
		return Split{}, false, nil
	}

	bestScore := 0
	var best Split
	found := false

	for i := 1; i < len(runes); i++ {
		left := string(runes[:i])
		right := string(runes[i:])

		leftFreq, err := postingsLen(postings, left)
		if err != nil {
			return Split{}, false, qerrors.StorageRead("oracle.split", err).WithTerm(left)
		}
		rightFreq, err := postingsLen(postings, right)
		if err != nil {
			return Split{}, false, qerrors.StorageRead("oracle.split", err).WithTerm(right)
		}

		score := min(leftFreq, rightFreq)
		if score > 0 && score > bestScore {
			bestScore = score
			best = Split{Left: left, Right: right}
			found = true
		}
	}

	return best, found, nil
}

func postingsLen(postings index.PostingsStore, term string) (int, error) {
	list, ok, err := postings.Get(term)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return len(list), nil
}

// Synonyms looks up alternative ordered word lists for the exact, ordered
// source words, keyed by the whitespace-joined phrase. A missing entry is
// not an error: it is treated as no synonyms.
func Synonyms(store index.SynonymStore, words []string) ([][]string, error) {
	phrase := strings.Join(words, " ")
	alternatives, ok, err := store.Get(phrase)
	if err != nil {
		return nil, qerrors.StorageRead("oracle.synonyms", err).WithTerm(phrase)
	}
	if !ok {
		return nil, nil
	}
	return alternatives, nil
}
