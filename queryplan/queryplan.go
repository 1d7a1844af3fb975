// Package queryplan is the public façade over the query planning and
// execution core: CreateQueryTree compiles a query string into a boolean
// tree, built by consulting the expansion oracle, and TraverseQueryTree
// evaluates that tree against a term dictionary and postings store.
// Callers needing the lower-level types (the tree shape, the
// candidate-set algebra) import querytree and evaluator directly; the
// aliases below exist so simple callers need only this package.
package queryplan

import (
	"github.com/standardbeagle/ftscore/evaluator"
	"github.com/standardbeagle/ftscore/internal/index"
	"github.com/standardbeagle/ftscore/querytree"
)

type (
	// Operation is the query tree node type. See querytree.Operation.
	Operation = querytree.Operation
	// QueryId identifies an input-word slot. See querytree.QueryId.
	QueryId = querytree.QueryId
	// Dictionary is the term-dictionary collaborator. See index.Dictionary.
	Dictionary = index.Dictionary
	// PostingsStore is the postings-store collaborator. See index.PostingsStore.
	PostingsStore = index.PostingsStore
	// SynonymStore is the synonym-store collaborator. See index.SynonymStore.
	SynonymStore = index.SynonymStore
	// Result is the outcome of evaluating a tree. See evaluator.Result.
	Result = evaluator.Result
)

// CreateQueryTree tokenizes query and builds the boolean tree of all its
// n-gram interpretations, consulting synonyms and postings via the
// expansion oracle. A nil Operation, with no error, is returned for an
// empty or all-whitespace query.
func CreateQueryTree(postings PostingsStore, synonyms SynonymStore, query string) (Operation, error) {
	return querytree.Build(postings, synonyms, query)
}

// TraverseQueryTree evaluates tree against dict and postings, returning the
// candidate document set and the postings behind each leaf.
func TraverseQueryTree(dict Dictionary, postings PostingsStore, tree Operation) (Result, error) {
	return evaluator.Evaluate(dict, postings, tree)
}
