// Package docset implements the candidate-set algebra: a strictly
// ascending, duplicate-free sequence of document identifiers, with Union
// and Intersect operations that preserve that representation.
//
// No ordered-set algebra library appears anywhere in the example pack (the
// original source used Rust's sdset crate), so this is a small hand-rolled
// package; see DESIGN.md for the standard-library justification.
package docset

import "sort"

// DocumentID is a 32-bit document identifier, matching the postings
// entry layout observed by callers.
type DocumentID uint32

// Set is a strictly ascending, duplicate-free slice of DocumentID.
type Set []DocumentID

// FromBag builds a Set from an unordered, possibly-duplicated bag of ids
// by sorting and deduplicating once — faster than a pairwise merge when
// an Or's children vary wildly in size.
func FromBag(bag []DocumentID) Set {
	if len(bag) == 0 {
		return nil
	}
	out := make(Set, len(bag))
	copy(out, bag)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	dedup := out[:1]
	for _, id := range out[1:] {
		if id != dedup[len(dedup)-1] {
			dedup = append(dedup, id)
		}
	}
	return dedup
}

// Union returns the ascending union of all sets, via concatenate-then-dedup.
func Union(sets ...Set) Set {
	total := 0
	for _, s := range sets {
		total += len(s)
	}
	bag := make([]DocumentID, 0, total)
	for _, s := range sets {
		bag = append(bag, s...)
	}
	return FromBag(bag)
}

// Intersect returns the ascending intersection of all sets: ids present in
// every one of them. Reduces pairwise with a two-pointer merge, which keeps
// each step linear in the size of its inputs.
func Intersect(sets ...Set) Set {
	if len(sets) == 0 {
		return nil
	}
	result := sets[0]
	for _, s := range sets[1:] {
		result = intersectTwo(result, s)
		if len(result) == 0 {
			return nil
		}
	}
	return result
}

func intersectTwo(a, b Set) Set {
	out := make(Set, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
