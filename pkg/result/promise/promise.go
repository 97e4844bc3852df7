// Package promise provides a Promise, a single-settlement asynchronous
// computation. A Promise can be passed around and awaited by any number of
// consumers, and it can be bridged into a result.Result with
// result.FromPromise.
package promise

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Promise will eventually hold either a value of type T (fulfilled) or a
// rejection reason of type E (rejected). It settles exactly once: the first
// call to Resolve or Reject wins and all later ones are silently ignored.
type Promise[T, E any] struct {
	isSettled uint32
	settled   chan struct{}

	value     T
	reason    E
	fulfilled bool
}

// New creates an unsettled Promise. It must be settled by calling Resolve or
// Reject.
func New[T, E any]() *Promise[T, E] {
	return &Promise[T, E]{
		settled: make(chan struct{}),
	}
}

// Resolved returns a Promise already fulfilled with value.
func Resolved[T, E any](value T) *Promise[T, E] {
	p := New[T, E]()
	p.Resolve(value)
	return p
}

// Rejected returns a Promise already rejected with reason.
func Rejected[T, E any](reason E) *Promise[T, E] {
	p := New[T, E]()
	p.Reject(reason)
	return p
}

// Go runs do on a new goroutine and settles the returned Promise with its
// outcome. A non-nil error rejects the Promise; a panic inside do rejects it
// with an error describing the panic value.
func Go[T any](do func() (T, error)) *Promise[T, error] {
	p := New[T, error]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					p.Reject(err)
					return
				}
				p.Reject(fmt.Errorf("promise: panic: %v", r))
			}
		}()

		v, err := do()
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(v)
	}()

	return p
}

// Resolve fulfills the Promise with value.
func (p *Promise[T, E]) Resolve(value T) {
	var zero E
	p.settle(value, zero, true)
}

// Reject rejects the Promise with reason.
func (p *Promise[T, E]) Reject(reason E) {
	var zero T
	p.settle(zero, reason, false)
}

func (p *Promise[T, E]) settle(value T, reason E, fulfilled bool) {
	if atomic.CompareAndSwapUint32(&p.isSettled, 0, 1) {
		p.value = value
		p.reason = reason
		p.fulfilled = fulfilled
		close(p.settled)
	}
}

// Done is closed once the Promise has settled.
func (p *Promise[T, E]) Done() <-chan struct{} {
	return p.settled
}

// Outcome returns the settled state. Before Done is closed it reports an
// unfulfilled Promise with zero payloads.
func (p *Promise[T, E]) Outcome() (T, E, bool) {
	select {
	case <-p.settled:
		return p.value, p.reason, p.fulfilled
	default:
		var (
			zeroT T
			zeroE E
		)
		return zeroT, zeroE, false
	}
}

// Await blocks until the Promise settles or ctx is done. If ctx ends first
// the returned error is ctx.Err() and the Promise is left untouched.
func (p *Promise[T, E]) Await(ctx context.Context) (value T, reason E, fulfilled bool, err error) {
	select {
	case <-p.settled:
		return p.value, p.reason, p.fulfilled, nil
	case <-ctx.Done():
		return value, reason, false, ctx.Err()
	}
}
