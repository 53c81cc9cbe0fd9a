package flow

import (
	"context"

	"github.com/ib-77/rope/pkg/rope"
)

// Chain is a fluent wrapper over a single Result for synchronous,
// same-type composition. It carries the context so every stage can observe
// cancellation without threading it by hand.
type Chain[T any] struct {
	ctx context.Context
	res rope.Result[T]
}

func Start[T any](ctx context.Context, r rope.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rope.Ok(v))
}

func (c Chain[T]) Result() rope.Result[T] {
	return c.res
}

// Then composes a function that already returns a Result. Err
// short-circuits; panics from onSuccess propagate.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rope.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes a (T, error)-returning function, like a repository
// call. Context cancellation errors are tagged CodeCanceled with kind
// Timeout so callers can dispatch on them.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, err := try(c.ctx, c.res.Value())
	if err != nil {
		if rope.IsCancellation(err) {
			return Chain[T]{ctx: c.ctx, res: rope.Err[T](
				rope.Wrap(err, rope.CodeCanceled, err.Error(), rope.WithKind(rope.KindTimeout)),
			)}
		}
		return Chain[T]{ctx: c.ctx, res: rope.Err[T](rope.Wrap(err, rope.CodeExternal, err.Error()))}
	}
	return Chain[T]{ctx: c.ctx, res: rope.Ok(v)}
}

// Map transforms the successful value; panics from onSuccess propagate.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: rope.Ok(onSuccess(c.ctx, c.res.Value()))}
}

// MapTry transforms behind a panic boundary, wrapping panics under the
// given code and message.
func (c Chain[T]) MapTry(onSuccess func(ctx context.Context, t T) T, code rope.Code, message string) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	res := rope.MapTry(c.res, func(t T) T { return onSuccess(c.ctx, t) }, code, message)
	return Chain[T]{ctx: c.ctx, res: res}
}

// Ensure triggers side effects for success or failure without changing the
// result.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, *rope.Error)) Chain[T] {
	if c.res.IsErr() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a plain value.
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, *rope.Error) T) T {
	if c.res.IsErr() {
		return onFailure(c.ctx, c.res.Err())
	}
	return onSuccess(c.ctx, c.res.Value())
}
