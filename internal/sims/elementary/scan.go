package elementary

import (
	"context"
	"runtime"

	"eca/internal/core"

	"golang.org/x/sync/errgroup"
)

// ScanOptions controls a batch computation over a range of rules.
type ScanOptions struct {
	Cells   int
	From    uint8
	To      uint8
	Random  bool
	Seed    int64
	Workers int
}

// VisitFunc receives each computed grid. It may be called concurrently.
type VisitFunc func(rule uint8, g *core.ByteGrid) error

// Scan computes every rule in [From, To] on a bounded pool of goroutines and
// returns their summaries ordered by rule. In random mode every rule starts
// from the same seed row so results are comparable. The first error from visit
// or from ctx stops the scan.
func Scan(ctx context.Context, opts ScanOptions, visit VisitFunc) ([]Summary, error) {
	if opts.To < opts.From {
		opts.From, opts.To = opts.To, opts.From
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	count := int(opts.To) - int(opts.From) + 1
	results := make([]Summary, count)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < count; i++ {
		rule := uint8(int(opts.From) + i)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g := ComputeGrid(opts.Cells, rule, opts.Random, core.NewRNG(opts.Seed))
			results[i] = Summarize(rule, g)
			if visit != nil {
				return visit(rule, g)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
