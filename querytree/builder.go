package querytree

import (
	"strings"

	"github.com/standardbeagle/ftscore/internal/index"
	"github.com/standardbeagle/ftscore/internal/oracle"
	"github.com/standardbeagle/ftscore/internal/tokenizer"
)

// maxNgram bounds the size of a contiguous word group the builder will
// consider compacting into one leaf ("new york" -> "newyork").
const maxNgram = 3

// group is one contiguous run of tokens within an interpretation.
type group []tokenizer.Token

// Build tokenizes query, then constructs the disjunction of all n-gram
// interpretations of it. A nil Operation is returned, with no error, for
// an empty or all-whitespace query.
func Build(postings index.PostingsStore, synonyms index.SynonymStore, query string) (Operation, error) {
	tokens := tokenizer.Tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	b := &builder{postings: postings, synonyms: synonyms}
	return b.build(tokens)
}

type builder struct {
	postings index.PostingsStore
	synonyms index.SynonymStore
}

func (b *builder) build(tokens []tokenizer.Token) (Operation, error) {
	n := len(tokens)
	interpretations := make([]Operation, 0, 1+2*(n-1))

	maxG := n
	if maxG > maxNgram {
		maxG = maxNgram
	}

	for g := 1; g <= maxG; g++ {
		if g == 1 {
			op, err := b.interpretation(groupsFor(tokens, 1, 0))
			if err != nil {
				return nil, err
			}
			interpretations = append(interpretations, op)
			continue
		}
		for i := 0; i <= n-g; i++ {
			op, err := b.interpretation(groupsFor(tokens, g, i))
			if err != nil {
				return nil, err
			}
			interpretations = append(interpretations, op)
		}
	}

	return NewOr(interpretations), nil
}

// groupsFor builds the group list for one interpretation: a single
// contiguous group of size g at offset i, every other token as its own
// singleton group.
func groupsFor(tokens []tokenizer.Token, g, i int) []group {
	groups := make([]group, 0, len(tokens)-g+1)
	for _, t := range tokens[:i] {
		groups = append(groups, group{t})
	}
	groups = append(groups, group(tokens[i:i+g]))
	for _, t := range tokens[i+g:] {
		groups = append(groups, group{t})
	}
	return groups
}

func (b *builder) interpretation(groups []group) (Operation, error) {
	ops := make([]Operation, len(groups))
	for i, gr := range groups {
		isLast := i == len(groups)-1
		alt, err := b.groupAlternatives(gr, isLast)
		if err != nil {
			return nil, err
		}
		ops[i] = NewOr(alt)
	}
	return NewAnd(ops), nil
}

func (b *builder) groupAlternatives(gr group, isLast bool) ([]Operation, error) {
	if len(gr) == 1 {
		return b.singletonAlternatives(gr[0], isLast)
	}
	return b.runAlternatives(gr, isLast)
}

func (b *builder) singletonAlternatives(tok tokenizer.Token, isLast bool) ([]Operation, error) {
	alts := make([]Operation, 0, 3)

	alts = append(alts, NewQuery(QueryId(tok.Position), isLast, Tolerant{Word: tok.Text}))

	synonymLists, err := oracle.Synonyms(b.synonyms, []string{tok.Text})
	if err != nil {
		return nil, err
	}
	for _, syn := range synonymLists {
		alts = append(alts, synonymOperation(QueryId(tok.Position), syn))
	}

	split, ok, err := oracle.BestFrequencySplit(b.postings, tok.Text)
	if err != nil {
		return nil, err
	}
	if ok {
		alts = append(alts, NewQuery(QueryId(tok.Position), isLast, Phrase{Words: []string{split.Left, split.Right}}))
	}

	return alts, nil
}

func (b *builder) runAlternatives(gr group, isLast bool) ([]Operation, error) {
	id := QueryId(gr[0].Position)
	words := make([]string, len(gr))
	for i, t := range gr {
		words[i] = t.Text
	}

	alts := make([]Operation, 0, len(words)+1)

	synonymLists, err := oracle.Synonyms(b.synonyms, words)
	if err != nil {
		return nil, err
	}
	for _, syn := range synonymLists {
		alts = append(alts, synonymOperation(id, syn))
	}

	alts = append(alts, NewQuery(id, isLast, Exact{Word: strings.Join(words, "")}))

	return alts, nil
}

// synonymOperation builds the And of Exact leaves for one synonym
// alternative; a single-word synonym collapses to the bare Exact leaf via
// NewAnd's single-child rule.
func synonymOperation(id QueryId, words []string) Operation {
	leaves := make([]Operation, len(words))
	for i, w := range words {
		leaves[i] = NewQuery(id, false, Exact{Word: w})
	}
	return NewAnd(leaves)
}
