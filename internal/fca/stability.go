package fca

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DeltaStability is the minimum number of objects that must be removed from
// extent to change the intent of the remaining objects. Removing S changes
// the intent exactly when S covers extent \ extent(attrs ∪ {m}) for some
// attribute m outside attrs, so the value is the smallest such difference.
// When attrs holds every attribute no removal short of the whole extent
// changes anything, and the extent size is returned.
func DeltaStability(c *Context, attrs, extent Set) int {
	best := -1
	size := extent.Count()
	for m := 0; m < c.NumAttributes(); m++ {
		if attrs.Has(m) {
			continue
		}
		d := size - extent.Intersect(c.Column(m)).Count()
		if best < 0 || d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	if best < 0 {
		return size
	}
	return best
}

// ComputeStability fills DeltaStability for every concept of l. Concepts are
// independent, so the work is split across workers and written back by
// index; the result does not depend on the worker count.
func ComputeStability(ctx context.Context, c *Context, l *Lattice, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	values := make([]int, len(l.Concepts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (len(values) + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}
	for start := 0; start < len(values); start += chunk {
		start := start
		end := start + chunk
		if end > len(values) {
			end = len(values)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				values[i] = DeltaStability(c, l.Concepts[i].Intent, l.Concepts[i].Extent)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, v := range values {
		l.Concepts[i].DeltaStability = v
	}
	return nil
}
