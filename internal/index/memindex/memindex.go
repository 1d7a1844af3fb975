// Package memindex is an in-memory stand-in for the on-disk dictionary,
// postings store and synonym store that storage and indexing leave out of
// scope here. It exists to exercise the query tree builder and evaluator
// in tests and the demo CLI; it is not a production index.
package memindex

import (
	"sort"

	"github.com/standardbeagle/ftscore/internal/automaton"
	"github.com/standardbeagle/ftscore/internal/docset"
	"github.com/standardbeagle/ftscore/internal/index"
)

// Index bundles a fixture dictionary, postings store and synonym store
// built from a small in-memory document set.
type Index struct {
	terms    []string // kept sorted, ascending, deduplicated
	postings map[string][]index.Posting
	synonyms map[string][][]string
}

// New returns an empty fixture index.
func New() *Index {
	return &Index{
		postings: make(map[string][]index.Posting),
		synonyms: make(map[string][][]string),
	}
}

// AddPosting records one occurrence of term in a document. Postings for a
// term are kept sorted by (document, attribute, word index), the order
// the phrase merge-join relies on.
func (ix *Index) AddPosting(term string, doc docset.DocumentID, attribute, wordIndex uint16) {
	if _, ok := ix.postings[term]; !ok {
		ix.insertTerm(term)
	}
	ix.postings[term] = append(ix.postings[term], index.Posting{
		DocumentID: doc,
		Attribute:  attribute,
		WordIndex:  wordIndex,
	})
	sort.Slice(ix.postings[term], func(i, j int) bool {
		a, b := ix.postings[term][i], ix.postings[term][j]
		if a.DocumentID != b.DocumentID {
			return a.DocumentID < b.DocumentID
		}
		if a.Attribute != b.Attribute {
			return a.Attribute < b.Attribute
		}
		return a.WordIndex < b.WordIndex
	})
}

// AddSynonym registers alternatives for the exact ordered word list words.
func (ix *Index) AddSynonym(words []string, alternatives ...[]string) {
	key := joinWords(words)
	ix.synonyms[key] = append(ix.synonyms[key], alternatives...)
}

func (ix *Index) insertTerm(term string) {
	i := sort.SearchStrings(ix.terms, term)
	if i < len(ix.terms) && ix.terms[i] == term {
		return
	}
	ix.terms = append(ix.terms, "")
	copy(ix.terms[i+1:], ix.terms[i:])
	ix.terms[i] = term
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}

// Dictionary returns the fixture term dictionary.
func (ix *Index) Dictionary() index.Dictionary { return dictionary{ix} }

// Postings returns the fixture postings store.
func (ix *Index) Postings() index.PostingsStore { return postingsStore{ix} }

// Synonyms returns the fixture synonym store.
func (ix *Index) Synonyms() index.SynonymStore { return synonymStore{ix} }

type dictionary struct{ ix *Index }

func (d dictionary) Search(dfa automaton.DFA) ([]string, error) {
	matches := make([]string, 0, 8)
	for _, term := range d.ix.terms {
		if dfa.Accept(term) {
			matches = append(matches, term)
		}
	}
	return matches, nil
}

type postingsStore struct{ ix *Index }

func (p postingsStore) Get(term string) ([]index.Posting, bool, error) {
	list, ok := p.ix.postings[term]
	return list, ok, nil
}

type synonymStore struct{ ix *Index }

func (s synonymStore) Get(phrase string) ([][]string, bool, error) {
	list, ok := s.ix.synonyms[phrase]
	return list, ok, nil
}
