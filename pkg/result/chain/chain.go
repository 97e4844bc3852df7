package chain

import (
	"context"

	"github.com/ib-77/result/pkg/result"
)

type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Success[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes steps that already return a Result of the same type
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) result.Result[T, E]) Chain[T, E] {
	return To(c, onSuccess)
}

// To switches the chain to a new value type
func To[T, U, E any](c Chain[T, E], onSuccess func(ctx context.Context, t T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: result.FlatMap(c.res, func(t T) result.Result[U, E] {
		return onSuccess(c.ctx, t)
	})}
}

// ThenTry composes steps that return (T, error), like repository calls
func ThenTry[T any](c Chain[T, error], try func(ctx context.Context, t T) (T, error)) Chain[T, error] {
	return c.Then(func(ctx context.Context, t T) result.Result[T, error] {
		return result.Try(func() (T, error) { return try(ctx, t) })
	})
}

// Map transforms the successful value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: result.Map(c.res, func(t T) T {
		return onSuccess(c.ctx, t)
	})}
}

// MapError transforms the error of a failed chain
func (c Chain[T, E]) MapError(onFailure func(ctx context.Context, err E) E) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: result.MapError(c.res, func(err E) E {
		return onFailure(c.ctx, err)
	})}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if v, ok := c.res.Value(); ok {
		if onSuccess != nil {
			onSuccess(c.ctx, v)
		}
		return c
	}

	if onFailure != nil {
		err, _ := c.res.Err()
		onFailure(c.ctx, err)
	}
	return c
}

// Or returns the first successful chain, otherwise the first failed one
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, otherwise the last one
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Repeat runs step at least once and keeps running it while it succeeds and
// again returns true for the new value
func (c Chain[T, E]) Repeat(step func(ctx context.Context, t T) result.Result[T, E],
	again func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(step)

		v, ok := c.res.Value()
		if !ok || !again(c.ctx, v) {
			return c
		}
	}
}

// While runs step as long as the chain succeeds and cond holds
func (c Chain[T, E]) While(step func(ctx context.Context, t T) result.Result[T, E],
	cond func(ctx context.Context, t T) bool) Chain[T, E] {

	for {
		v, ok := c.res.Value()
		if !ok || !cond(c.ctx, v) {
			return c
		}
		c = c.Then(step)
	}
}

// Finally collapses the chain to a final value
func Finally[T, E, R any](c Chain[T, E],
	onSuccess func(context.Context, T) R,
	onFailure func(context.Context, E) R) R {
	return result.Match(c.res,
		func(t T) R { return onSuccess(c.ctx, t) },
		func(err E) R { return onFailure(c.ctx, err) })
}
