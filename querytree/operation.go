// Package querytree implements the query tree data model and builder: the
// boolean tree of And/Or/Query nodes a query string is compiled into, and
// its construction.
//
// Operation nodes are value-identified by structural equality: two
// structurally identical subtrees hash identically (via
// github.com/cespare/xxhash/v2) and compare equal through Key, so the
// evaluator can memoize across overlapping n-gram interpretations without
// walking the tree to compare it.
package querytree

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// QueryId identifies a logical input-word slot so leaves can be related
// back to positions in the original query. N-gram groupings share the id
// of their leftmost constituent word.
type QueryId int

// LeafKind is the sum type of the three leaf shapes a Query node can take.
type LeafKind interface {
	leafKey() string
}

// Tolerant matches via a Levenshtein DFA, edit distance derived from word
// length.
type Tolerant struct{ Word string }

// Exact matches via an exact DFA with zero edit distance. The leaf's Prefix
// flag does not change the match: the term must equal Word.
type Exact struct{ Word string }

// Phrase matches two words occurring adjacent in the same document
// attribute. Any length other than two is a no-op at evaluation time; the
// only producer of this leaf (the word-split rule) always emits exactly
// two words.
type Phrase struct{ Words []string }

func (t Tolerant) leafKey() string { return "T\x1f" + t.Word }
func (e Exact) leafKey() string    { return "E\x1f" + e.Word }
func (p Phrase) leafKey() string   { return "P\x1f" + strings.Join(p.Words, "\x1f") }

// Query is a leaf: (id, prefix, kind). Prefix is set only on leaves
// derived from the final word of an n-gram group.
type Query struct {
	ID     QueryId
	Prefix bool
	Kind   LeafKind
}

// Operation is a recursive sum of And(children)/Or(children)/Query(leaf).
// No And or Or has fewer than two children: single-child combinators
// collapse to the child at construction time, via NewAnd/NewOr.
type Operation interface {
	// Hash returns a content hash computed bottom-up at construction.
	// Structurally equal subtrees (even built independently) share a hash.
	Hash() uint64
	// Key returns the canonical structural key the hash was computed
	// from, used to break hash collisions when comparing nodes for
	// memoization.
	Key() string
}

type andOp struct {
	Children []Operation
	hash     uint64
	key      string
}

type orOp struct {
	Children []Operation
	hash     uint64
	key      string
}

type queryOp struct {
	Leaf Query
	hash uint64
	key  string
}

func (n *andOp) Hash() uint64   { return n.hash }
func (n *andOp) Key() string    { return n.key }
func (n *orOp) Hash() uint64    { return n.hash }
func (n *orOp) Key() string     { return n.key }
func (n *queryOp) Hash() uint64 { return n.hash }
func (n *queryOp) Key() string  { return n.key }

// AsAnd reports whether op is an And node and returns its children.
func AsAnd(op Operation) ([]Operation, bool) {
	n, ok := op.(*andOp)
	if !ok {
		return nil, false
	}
	return n.Children, true
}

// AsOr reports whether op is an Or node and returns its children.
func AsOr(op Operation) ([]Operation, bool) {
	n, ok := op.(*orOp)
	if !ok {
		return nil, false
	}
	return n.Children, true
}

// AsQuery reports whether op is a leaf and returns it.
func AsQuery(op Operation) (Query, bool) {
	n, ok := op.(*queryOp)
	if !ok {
		return Query{}, false
	}
	return n.Leaf, true
}

// NewQuery builds a leaf node.
func NewQuery(id QueryId, prefix bool, kind LeafKind) Operation {
	key := "Q(" + strconv.Itoa(int(id)) + "," + strconv.FormatBool(prefix) + "," + kind.leafKey() + ")"
	return &queryOp{Leaf: Query{ID: id, Prefix: prefix, Kind: kind}, key: key, hash: xxhash.Sum64String(key)}
}

// NewAnd builds an And node, collapsing to the single child when only one
// is given. Panics if children is empty: callers must never produce a
// zero-child combinator.
func NewAnd(children []Operation) Operation {
	return newCombinator("AND", children)
}

// NewOr builds an Or node, collapsing to the single child when only one is
// given. Panics if children is empty.
func NewOr(children []Operation) Operation {
	return newCombinator("OR", children)
}

func newCombinator(tag string, children []Operation) Operation {
	if len(children) == 0 {
		panic("querytree: " + tag + " with no children")
	}
	if len(children) == 1 {
		return children[0]
	}

	var b strings.Builder
	b.WriteString(tag)
	b.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.Key())
	}
	b.WriteByte(')')
	key := b.String()
	hash := xxhash.Sum64String(key)

	if tag == "AND" {
		return &andOp{Children: children, key: key, hash: hash}
	}
	return &orOp{Children: children, key: key, hash: hash}
}

// Equal reports whether a and b are structurally identical subtrees. The
// hash comparison is the fast path; Key is the ground truth used to break
// the astronomically unlikely case of a hash collision.
func Equal(a, b Operation) bool {
	return a.Hash() == b.Hash() && a.Key() == b.Key()
}
