package querytree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/ftscore/querytree"
)

func TestNewAnd_CollapsesSingleChild(t *testing.T) {
	leaf := querytree.NewQuery(0, true, querytree.Tolerant{Word: "new"})
	assert.Same(t, leaf, querytree.NewAnd([]querytree.Operation{leaf}))
	assert.Same(t, leaf, querytree.NewOr([]querytree.Operation{leaf}))
}

func TestNewAnd_PanicsOnNoChildren(t *testing.T) {
	assert.Panics(t, func() { querytree.NewAnd(nil) })
	assert.Panics(t, func() { querytree.NewOr(nil) })
}

func TestEqual_StructurallyIdenticalSubtreesBuiltSeparately(t *testing.T) {
	build := func() querytree.Operation {
		a := querytree.NewQuery(0, false, querytree.Tolerant{Word: "new"})
		b := querytree.NewQuery(1, true, querytree.Exact{Word: "york"})
		return querytree.NewAnd([]querytree.Operation{a, b})
	}

	x, y := build(), build()
	assert.NotSame(t, x, y)
	assert.Equal(t, x.Hash(), y.Hash())
	assert.True(t, querytree.Equal(x, y))
}

func TestEqual_DistinguishesDifferentLeaves(t *testing.T) {
	a := querytree.NewQuery(0, false, querytree.Tolerant{Word: "new"})
	b := querytree.NewQuery(0, false, querytree.Exact{Word: "new"})
	assert.False(t, querytree.Equal(a, b))
}

func TestEqual_PrefixFlagDistinguishesLeaves(t *testing.T) {
	a := querytree.NewQuery(0, true, querytree.Tolerant{Word: "new"})
	b := querytree.NewQuery(0, false, querytree.Tolerant{Word: "new"})
	assert.False(t, querytree.Equal(a, b))
}

func TestAsAccessors(t *testing.T) {
	leaf := querytree.NewQuery(2, false, querytree.Phrase{Words: []string{"new", "york"}})
	and := querytree.NewAnd([]querytree.Operation{
		leaf,
		querytree.NewQuery(0, false, querytree.Exact{Word: "big"}),
	})
	or := querytree.NewOr([]querytree.Operation{
		and,
		querytree.NewQuery(3, true, querytree.Tolerant{Word: "apple"}),
	})

	_, ok := querytree.AsOr(or)
	assert.True(t, ok)

	children, ok := querytree.AsAnd(and)
	assert.True(t, ok)
	assert.Len(t, children, 2)

	q, ok := querytree.AsQuery(leaf)
	assert.True(t, ok)
	assert.Equal(t, querytree.QueryId(2), q.ID)
	assert.Equal(t, querytree.Phrase{Words: []string{"new", "york"}}, q.Kind)

	_, ok = querytree.AsQuery(and)
	assert.False(t, ok)
}
