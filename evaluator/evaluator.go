// Package evaluator traverses a query tree against a term dictionary and
// postings store, resolving each leaf via the automaton factory, and
// combining candidate document sets with docset.Union/Intersect, memoized
// per evaluation.
package evaluator

import (
	"github.com/standardbeagle/ftscore/internal/automaton"
	"github.com/standardbeagle/ftscore/internal/docset"
	"github.com/standardbeagle/ftscore/internal/index"
	"github.com/standardbeagle/ftscore/internal/qerrors"
	"github.com/standardbeagle/ftscore/querytree"
)

// Result is the outcome of traversing one query tree: the candidate
// document set, plus the postings behind each leaf, retained so downstream
// ranking can score candidates without refetching. LeafPostings is keyed by
// the leaf operation's Key(), so leaves that are structurally identical
// across different n-gram interpretations share one entry.
type Result struct {
	DocIDs       docset.Set
	LeafPostings map[string][]index.Posting
}

// Evaluate traverses tree against dict and postings, left to right,
// depth-first, with no short-circuiting: even an And that is already known
// empty still evaluates (and caches) its remaining children, since their
// results can still benefit sibling interpretations sharing the same
// subtree. A nil tree (the empty-query case) evaluates to an empty result.
func Evaluate(dict index.Dictionary, postings index.PostingsStore, tree querytree.Operation) (Result, error) {
	c := &context{
		dict:         dict,
		postings:     postings,
		cache:        make(map[uint64][]cacheEntry),
		leafPostings: make(map[string][]index.Posting),
	}

	docIDs, err := c.eval(tree)
	if err != nil {
		return Result{}, err
	}
	return Result{DocIDs: docIDs, LeafPostings: c.leafPostings}, nil
}

type cacheEntry struct {
	node   querytree.Operation
	result docset.Set
}

type context struct {
	dict         index.Dictionary
	postings     index.PostingsStore
	cache        map[uint64][]cacheEntry
	leafPostings map[string][]index.Posting
}

func (c *context) eval(op querytree.Operation) (docset.Set, error) {
	if op == nil {
		return nil, nil
	}

	if result, ok := c.lookup(op); ok {
		return result, nil
	}

	var (
		result docset.Set
		err    error
	)

	switch {
	case isAnd(op):
		children, _ := querytree.AsAnd(op)
		result, err = c.evalAnd(children)
	case isOr(op):
		children, _ := querytree.AsOr(op)
		result, err = c.evalOr(children)
	default:
		leaf, _ := querytree.AsQuery(op)
		result, err = c.evalLeaf(op, leaf)
	}
	if err != nil {
		return nil, err
	}

	c.store(op, result)
	return result, nil
}

func isAnd(op querytree.Operation) bool {
	_, ok := querytree.AsAnd(op)
	return ok
}

func isOr(op querytree.Operation) bool {
	_, ok := querytree.AsOr(op)
	return ok
}

func (c *context) lookup(op querytree.Operation) (docset.Set, bool) {
	for _, entry := range c.cache[op.Hash()] {
		if querytree.Equal(entry.node, op) {
			return entry.result, true
		}
	}
	return nil, false
}

func (c *context) store(op querytree.Operation, result docset.Set) {
	h := op.Hash()
	c.cache[h] = append(c.cache[h], cacheEntry{node: op, result: result})
}

// evalAnd returns the ordered intersection of every child's set. All
// children are evaluated, in order, regardless of whether an earlier one
// was empty.
func (c *context) evalAnd(children []querytree.Operation) (docset.Set, error) {
	sets := make([]docset.Set, len(children))
	for i, child := range children {
		s, err := c.eval(child)
		if err != nil {
			return nil, err
		}
		sets[i] = s
	}
	return docset.Intersect(sets...), nil
}

// evalOr returns the ordered union of every child's set.
func (c *context) evalOr(children []querytree.Operation) (docset.Set, error) {
	sets := make([]docset.Set, len(children))
	for i, child := range children {
		s, err := c.eval(child)
		if err != nil {
			return nil, err
		}
		sets[i] = s
	}
	return docset.Union(sets...), nil
}

func (c *context) evalLeaf(op querytree.Operation, leaf querytree.Query) (docset.Set, error) {
	switch kind := leaf.Kind.(type) {
	case querytree.Tolerant:
		var dfa automaton.DFA
		if leaf.Prefix {
			dfa = automaton.BuildPrefixDFA(kind.Word)
		} else {
			dfa = automaton.BuildDFA(kind.Word)
		}
		return c.resolveDFA(op, dfa)
	case querytree.Exact:
		return c.resolveDFA(op, automaton.BuildExactDFA(kind.Word))
	case querytree.Phrase:
		return c.resolvePhrase(op, kind)
	default:
		return nil, nil
	}
}

func (c *context) resolveDFA(op querytree.Operation, dfa automaton.DFA) (docset.Set, error) {
	terms, err := c.dict.Search(dfa)
	if err != nil {
		return nil, qerrors.DictionaryRead("evaluator.resolveDFA", err)
	}

	bag := make([]docset.DocumentID, 0, len(terms))
	for _, term := range terms {
		list, ok, err := c.postings.Get(term)
		if err != nil {
			return nil, qerrors.StorageRead("evaluator.resolveDFA", err).WithTerm(term)
		}
		if !ok {
			continue
		}
		c.leafPostings[op.Key()] = append(c.leafPostings[op.Key()], list...)
		for _, p := range list {
			bag = append(bag, p.DocumentID)
		}
	}

	return docset.FromBag(bag), nil
}
