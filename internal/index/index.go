// Package index declares the contracts the query planning core consumes
// from the (out-of-scope) on-disk index layer: a term dictionary queryable
// by automaton, a postings store, and a synonym store. These are external
// collaborators over a read-only transaction snapshot; this package only
// declares the shape of that collaboration.
package index

import (
	"github.com/standardbeagle/ftscore/internal/automaton"
	"github.com/standardbeagle/ftscore/internal/docset"
)

// Posting is one occurrence of a term in a document: the field it
// appeared in (Attribute) and its position within that field (WordIndex).
// Document id is 32-bit; attribute and word index are 16-bit.
type Posting struct {
	DocumentID docset.DocumentID
	Attribute  uint16
	WordIndex  uint16
}

// Dictionary is the immutable, queryable set of all indexed terms.
// Search streams matching terms in ascending byte order — here
// materialized eagerly since the in-process fixture implementation has no
// real streaming I/O to amortize; a true on-disk FST implementation would
// return an incremental iterator instead.
type Dictionary interface {
	Search(dfa automaton.DFA) ([]string, error)
}

// PostingsStore fetches the postings list for one dictionary term. A
// missing term is reported via ok=false, not an error: empty postings
// is a normal outcome, not a failure.
type PostingsStore interface {
	Get(term string) (postings []Posting, ok bool, err error)
}

// SynonymStore looks up alternative word lists for an exact, ordered,
// space-joined source phrase. A missing entry is reported via ok=false.
type SynonymStore interface {
	Get(phrase string) (alternatives [][]string, ok bool, err error)
}
