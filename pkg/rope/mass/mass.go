package mass

import (
	"context"

	"github.com/ib-77/rope/pkg/rope"
	"golang.org/x/sync/errgroup"
)

// Apply runs step over every input with at most workers goroutines in
// flight and returns one Result per input, in input order. Each input is
// an independent computation: a failing input does not stop the others,
// so the returned slice always has len(inputs) entries. Context
// cancellation surfaces as CodeCanceled results for inputs not yet
// started.
func Apply[In, Out any](ctx context.Context, inputs []In,
	step func(ctx context.Context, in In) rope.Result[Out], workers int) []rope.Result[Out] {

	if workers < 1 {
		workers = 1
	}

	results := make([]rope.Result[Out], len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = rope.Err[Out](rope.Wrap(err, rope.CodeCanceled, err.Error(),
					rope.WithKind(rope.KindTimeout)))
				return nil
			}
			results[i] = step(gctx, in)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ApplyTry is Apply for (Out, error)-returning steps, adapted through the
// Try boundary.
func ApplyTry[In, Out any](ctx context.Context, inputs []In,
	step func(ctx context.Context, in In) (Out, error), workers int) []rope.Result[Out] {

	return Apply(ctx, inputs, func(ctx context.Context, in In) rope.Result[Out] {
		return rope.Try(step(ctx, in))
	}, workers)
}

// Partition splits results into success values and errors, preserving
// relative order within each side.
func Partition[T any](results []rope.Result[T]) ([]T, []*rope.Error) {
	values := make([]T, 0, len(results))
	var errs []*rope.Error
	for _, r := range results {
		if r.IsOk() {
			values = append(values, r.Value())
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}
