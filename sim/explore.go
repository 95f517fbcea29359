package sim

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ntasim/ntasim/engine"
	"github.com/ntasim/ntasim/eval"
)

// Explore fans a bounded random walk of depth steps out across fanout
// disjoint copies of root, run concurrently, and returns the terminal
// state each walk reached. It satisfies spec.md §5's "caller wanting
// parallel exploration must keep disjoint SystemState copies and drive
// separate engines" directly: each walk gets both its own root.Copy() and
// its own *engine.Engine (seeded baseSeed+i), since an Engine owns a
// mutable *rand.Rand that is not itself safe to share across goroutines.
// ev is read-only (eval.Evaluator holds no state) and is shared.
func Explore(ctx context.Context, ev *eval.Evaluator, root *engine.State, depth, fanout int, baseSeed int64) ([]*engine.State, error) {
	if fanout <= 0 {
		fanout = 1
	}
	results := make([]*engine.State, fanout)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < fanout; i++ {
		i := i
		g.Go(func() error {
			walker := engine.New(ev, baseSeed+int64(i), nil)
			s := root.Copy()
			for d := 0; d < depth; d++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				next, _, err := walker.Step(s)
				if err != nil {
					if errors.Is(err, engine.ErrNoEnabledTransition) {
						break
					}
					return err
				}
				s = next
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
