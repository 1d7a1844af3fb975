// Command queryplan is a developer-facing debugging aid: it builds a query
// tree for a query string against a small built-in fixture index, evaluates
// it, and prints the resulting candidate document ids. It is not an
// HTTP/API surface, just a way to exercise the tokenizer, automata,
// expansion oracle, tree builder and evaluator end to end from a
// terminal.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/ftscore/internal/docset"
	"github.com/standardbeagle/ftscore/internal/index/memindex"
	"github.com/standardbeagle/ftscore/queryplan"
	"github.com/standardbeagle/ftscore/querytree"
)

func main() {
	app := &cli.App{
		Name:  "queryplan",
		Usage: "build and evaluate a query tree against the built-in fixture index",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "tree", Usage: "print the query tree shape before evaluating"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: queryplan [--tree] <query string>", 1)
	}
	query := strings.Join(c.Args().Slice(), " ")

	fixture := fixtureIndex()

	tree, err := queryplan.CreateQueryTree(fixture.Postings(), fixture.Synonyms(), query)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if c.Bool("tree") {
		printTree(tree, 0)
	}

	result, err := queryplan.TraverseQueryTree(fixture.Dictionary(), fixture.Postings(), tree)
	if err != nil {
		return cli.Exit(err, 1)
	}

	ids := make([]string, len(result.DocIDs))
	for i, id := range result.DocIDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	fmt.Println(strings.Join(ids, " "))
	return nil
}

func printTree(op queryplan.Operation, depth int) {
	indent := strings.Repeat("  ", depth)
	if op == nil {
		fmt.Println(indent + "(empty)")
		return
	}
	if children, ok := querytree.AsAnd(op); ok {
		fmt.Println(indent + "AND")
		for _, c := range children {
			printTree(c, depth+1)
		}
		return
	}
	if children, ok := querytree.AsOr(op); ok {
		fmt.Println(indent + "OR")
		for _, c := range children {
			printTree(c, depth+1)
		}
		return
	}
	leaf, _ := querytree.AsQuery(op)
	fmt.Printf("%s%s\n", indent, describeLeaf(leaf))
}

func describeLeaf(leaf querytree.Query) string {
	prefix := ""
	if leaf.Prefix {
		prefix = "Prefix"
	}
	switch kind := leaf.Kind.(type) {
	case querytree.Tolerant:
		return fmt.Sprintf("%sTolerant(id=%d, word=%q)", prefix, leaf.ID, kind.Word)
	case querytree.Exact:
		return fmt.Sprintf("%sExact(id=%d, word=%q)", prefix, leaf.ID, kind.Word)
	case querytree.Phrase:
		return fmt.Sprintf("%sPhrase(id=%d, words=%v)", prefix, leaf.ID, kind.Words)
	default:
		return "?"
	}
}

// fixtureIndex builds a small worked-example index:
// {"new","york","newyork","big","apple","bigapple"}, with "bigapple" also
// reachable as a synonym of "big apple".
func fixtureIndex() *memindex.Index {
	ix := memindex.New()
	add := func(term string, docs ...docset.DocumentID) {
		for i, d := range docs {
			ix.AddPosting(term, d, 0, uint16(i))
		}
	}

	add("new", 1, 7)
	add("york", 2, 7)
	add("newyork", 7)
	add("big", 3, 8)
	add("apple", 4, 8, 9)
	add("bigapple", 7)

	ix.AddSynonym([]string{"big", "apple"}, []string{"bigapple"})

	return ix
}
