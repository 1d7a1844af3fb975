package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/ftscore/internal/automaton"
)

func TestBuildDFA_DistanceSchedule(t *testing.T) {
	cases := []struct {
		word      string
		accept    string
		wantAccep bool
	}{
		{word: "cat", accept: "cat", wantAccep: true},   // len<=4 -> distance 0
		{word: "cat", accept: "cats", wantAccep: false}, // distance 1 > 0
		{word: "hello", accept: "hallo", wantAccep: true},  // len 5..8 -> distance 1
		{word: "hello", accept: "hxllx", wantAccep: false}, // distance 2 > 1
		{word: "dashboard", accept: "dashbord", wantAccep: true}, // len>8 -> distance 2
	}

	for _, tc := range cases {
		dfa := automaton.BuildDFA(tc.word)
		assert.Equal(t, tc.wantAccep, dfa.Accept(tc.accept), "word=%q accept=%q", tc.word, tc.accept)
	}
}

func TestBuildExactDFA(t *testing.T) {
	dfa := automaton.BuildExactDFA("new")
	assert.True(t, dfa.Accept("new"))
	assert.False(t, dfa.Accept("news"))
	assert.False(t, dfa.Accept("ne"))
}

func TestBuildPrefixDFA_AcceptsExtension(t *testing.T) {
	// "new" should accept a dictionary term that starts with something
	// close to "new", like "newyork", since a prefix of "newyork" ("new")
	// is within distance 0 of "new".
	dfa := automaton.BuildPrefixDFA("new")
	assert.True(t, dfa.Accept("newyork"))
	assert.True(t, dfa.Accept("new"))
	assert.False(t, dfa.Accept("unrelated"))
}

func TestBuildPrefixDFA_ToleratesTypoInPrefix(t *testing.T) {
	// "hello" (len 5 -> distance 1) as a prefix DFA should accept a term
	// whose first few characters are one edit away from "hello".
	dfa := automaton.BuildPrefixDFA("hello")
	assert.True(t, dfa.Accept("hallo world"))
}
