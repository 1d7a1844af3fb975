package docset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/ftscore/internal/docset"
)

func ids(vs ...uint32) docset.Set {
	out := make(docset.Set, len(vs))
	for i, v := range vs {
		out[i] = docset.DocumentID(v)
	}
	return out
}

func TestFromBag_SortsAndDedups(t *testing.T) {
	got := docset.FromBag([]docset.DocumentID{5, 1, 3, 1, 5, 2})
	assert.Equal(t, ids(1, 2, 3, 5), got)
}

func TestFromBag_Empty(t *testing.T) {
	assert.Nil(t, docset.FromBag(nil))
}

func TestUnion(t *testing.T) {
	got := docset.Union(ids(1, 3, 5), ids(2, 3, 4), nil)
	assert.Equal(t, ids(1, 2, 3, 4, 5), got)
}

func TestUnion_Idempotent(t *testing.T) {
	a := ids(1, 2, 3)
	assert.Equal(t, a, docset.Union(a, a))
}

func TestIntersect(t *testing.T) {
	got := docset.Intersect(ids(1, 2, 3, 4), ids(2, 4, 6), ids(2, 4, 8))
	assert.Equal(t, ids(2, 4), got)
}

func TestIntersect_Idempotent(t *testing.T) {
	a := ids(1, 2, 3)
	assert.Equal(t, a, docset.Intersect(a, a))
}

func TestIntersect_EmptyShortCircuitsToNil(t *testing.T) {
	assert.Nil(t, docset.Intersect(ids(1, 2), ids(3, 4)))
}

func TestUnionAndIntersect_Commutative(t *testing.T) {
	a, b := ids(1, 2, 5), ids(2, 3, 5)
	assert.Equal(t, docset.Union(a, b), docset.Union(b, a))
	assert.Equal(t, docset.Intersect(a, b), docset.Intersect(b, a))
}
