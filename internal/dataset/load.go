package dataset

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads bounds how many log files are open at once.
const maxConcurrentLoads = 4

// LoadAll applies load to every path concurrently and returns the results in
// the order of paths. The first error cancels the remaining loads and is
// returned.
func LoadAll[T any](ctx context.Context, paths []string, load func(path string) (T, error)) ([]T, error) {
	results := make([]T, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := load(path)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
