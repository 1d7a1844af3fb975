package evaluator

import (
	"github.com/standardbeagle/ftscore/internal/docset"
	"github.com/standardbeagle/ftscore/internal/index"
	"github.com/standardbeagle/ftscore/internal/qerrors"
	"github.com/standardbeagle/ftscore/querytree"
)

// resolvePhrase implements the Phrase leaf contract: a sorted merge-join on
// (document, attribute, word_index), with the left word's word_index
// virtually incremented by one before comparison, so a match means the
// left word immediately precedes the right word in the same attribute.
// Phrases of any length other than two are a no-op: the only producer of
// Phrase leaves is the word-split rule, which always produces exactly two
// words.
func (c *context) resolvePhrase(op querytree.Operation, leaf querytree.Phrase) (docset.Set, error) {
	if len(leaf.Words) != 2 {
		return nil, nil
	}

	left, err := c.postingsFor(leaf.Words[0])
	if err != nil {
		return nil, err
	}
	right, err := c.postingsFor(leaf.Words[1])
	if err != nil {
		return nil, err
	}

	bag := make([]docset.DocumentID, 0, min(len(left), len(right)))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch comparePhraseKeys(left[i], right[j]) {
		case -1:
			i++
		case 1:
			j++
		default:
			c.leafPostings[op.Key()] = append(c.leafPostings[op.Key()], left[i], right[j])
			bag = append(bag, left[i].DocumentID)
			i++
			j++
		}
	}

	return docset.FromBag(bag), nil
}

func (c *context) postingsFor(term string) ([]index.Posting, error) {
	list, ok, err := c.postings.Get(term)
	if err != nil {
		return nil, qerrors.StorageRead("evaluator.resolvePhrase", err).WithTerm(term)
	}
	if !ok {
		return nil, nil
	}
	return list, nil
}

// comparePhraseKeys compares left's virtually-shifted key
// (document, attribute, word_index+1) against right's key
// (document, attribute, word_index).
func comparePhraseKeys(left, right index.Posting) int {
	if left.DocumentID != right.DocumentID {
		if left.DocumentID < right.DocumentID {
			return -1
		}
		return 1
	}
	if left.Attribute != right.Attribute {
		if left.Attribute < right.Attribute {
			return -1
		}
		return 1
	}
	lw := uint32(left.WordIndex) + 1
	rw := uint32(right.WordIndex)
	switch {
	case lw < rw:
		return -1
	case lw > rw:
		return 1
	default:
		return 0
	}
}
