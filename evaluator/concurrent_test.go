package evaluator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/ftscore/evaluator"
	"github.com/standardbeagle/ftscore/internal/docset"
	"github.com/standardbeagle/ftscore/internal/index"
	"github.com/standardbeagle/ftscore/querytree"
)

func TestEvaluateMany_IndependentQueriesEachGetTheirOwnResult(t *testing.T) {
	ix := fixture()

	newyork := querytree.NewQuery(0, false, querytree.Tolerant{Word: "new"})
	bigword := querytree.NewQuery(0, false, querytree.Tolerant{Word: "big"})

	results, err := evaluator.EvaluateMany(context.Background(), []evaluator.Request{
		{Dictionary: ix.Dictionary(), Postings: ix.Postings(), Tree: newyork},
		{Dictionary: ix.Dictionary(), Postings: ix.Postings(), Tree: bigword},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, docset.Set{1, 7}, results[0].DocIDs)
	assert.Equal(t, docset.Set{3, 8}, results[1].DocIDs)
}

func TestEvaluateMany_EmptyRequestsReturnsEmptyResults(t *testing.T) {
	results, err := evaluator.EvaluateMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

type erroringPostings struct {
	index.PostingsStore
}

func (erroringPostings) Get(string) ([]index.Posting, bool, error) {
	return nil, false, errors.New("storage unavailable")
}

func TestEvaluateMany_FailingRequestReturnsError(t *testing.T) {
	ix := fixture()
	leaf := querytree.NewQuery(0, false, querytree.Tolerant{Word: "new"})

	_, err := evaluator.EvaluateMany(context.Background(), []evaluator.Request{
		{Dictionary: ix.Dictionary(), Postings: erroringPostings{}, Tree: leaf},
	})
	assert.Error(t, err)
}
