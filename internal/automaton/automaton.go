// Package automaton produces a DFA for a given word that a term
// dictionary can be intersected against, in one of three flavors (fuzzy,
// exact, or fuzzy-prefix).
//
// The edit-distance computation for whole-string acceptance is delegated
// to github.com/hbollon/go-edlib. Prefix acceptance needs the minimum
// edit distance between the query word and *any prefix* of a candidate
// term, a quantity edlib does not expose, so that one piece is a small
// hand-rolled Levenshtein DP table (see DESIGN.md).
package automaton

import "github.com/hbollon/go-edlib"

// DFA accepts or rejects dictionary terms. Implementations are stateless
// and safe for concurrent use across queries.
type DFA interface {
	// Accept reports whether term is in the DFA's language.
	Accept(term string) bool
}

// editDistanceSchedule returns the tolerated edit distance for a word by
// length: 0 for len<=4, 1 for 5<=len<=8, 2 for len>8. Shorter words tolerate
// less drift before they'd start matching unrelated terms.
func editDistanceSchedule(word string) int {
	n := len(word)
	switch {
	case n <= 4:
		return 0
	case n <= 8:
		return 1
	default:
		return 2
	}
}

type tolerantDFA struct {
	word     string
	maxDist  int
	isPrefix bool
}

func (d *tolerantDFA) Accept(term string) bool {
	if d.isPrefix {
		return minPrefixDistance(d.word, term) <= d.maxDist
	}
	return edlib.LevenshteinDistance(d.word, term) <= d.maxDist
}

type exactDFA struct {
	word string
}

func (d *exactDFA) Accept(term string) bool {
	return term == d.word
}

// BuildDFA returns a DFA accepting terms within the length-scheduled edit
// distance of w, with no prefix acceptance.
func BuildDFA(w string) DFA {
	return &tolerantDFA{word: w, maxDist: editDistanceSchedule(w)}
}

// BuildPrefixDFA returns a DFA accepting any term extending w within the
// length-scheduled edit distance — i.e. terms for which some prefix is
// close to w. Used only for the final word of an interpretation, modeling
// "the user is still typing".
func BuildPrefixDFA(w string) DFA {
	return &tolerantDFA{word: w, maxDist: editDistanceSchedule(w), isPrefix: true}
}

// BuildExactDFA returns a DFA accepting only w itself.
func BuildExactDFA(w string) DFA {
	return &exactDFA{word: w}
}

// minPrefixDistance returns the minimum Levenshtein distance between w and
// any prefix of term, computed via the standard dynamic-programming edit
// table: dp[i][j] is the edit distance between w[:i] and term[:j]. The
// answer is the minimum value in the final row (w fully consumed, term
// consumed up to some prefix length j).
func minPrefixDistance(w, term string) int {
	wr := []rune(w)
	tr := []rune(term)
	n, m := len(wr), len(tr)

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if wr[i-1] == tr[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min(del, min(ins, sub))
		}
		prev, curr = curr, prev
	}

	best := prev[0]
	for _, v := range prev[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
