package evaluator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/ftscore/internal/index"
	"github.com/standardbeagle/ftscore/querytree"
)

// Request pairs a query tree with the snapshot-scoped collaborators it
// should be evaluated against.
type Request struct {
	Dictionary index.Dictionary
	Postings   index.PostingsStore
	Tree       querytree.Operation
}

// EvaluateMany runs independent queries concurrently against their own
// (possibly shared, always read-only) snapshots. The core holds no
// mutable process-wide state: each request gets its own memoization
// cache. The first error encountered cancels ctx and is returned, together
// with a nil results slice.
func EvaluateMany(ctx context.Context, requests []Request) ([]Result, error) {
	results := make([]Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := Evaluate(req.Dictionary, req.Postings, req.Tree)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
