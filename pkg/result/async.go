package result

// Awaitable is a pending computation that settles exactly once, either
// fulfilled with a T or rejected with an E. promise.Promise implements it.
type Awaitable[T, E any] interface {
	// Done is closed once the computation has settled.
	Done() <-chan struct{}
	// Outcome is only meaningful after Done is closed.
	Outcome() (value T, reason E, fulfilled bool)
}

// FromPromise delivers the settled outcome of p as a Result on the returned
// channel: fulfillment becomes a Success, rejection a Failure holding the
// rejection reason unchanged. Exactly one Result is sent, then the channel
// is closed.
func FromPromise[T, E any](p Awaitable[T, E]) <-chan Result[T, E] {
	out := make(chan Result[T, E], 1)

	go func() {
		defer close(out)

		<-p.Done()
		value, reason, fulfilled := p.Outcome()
		if fulfilled {
			out <- Success[T, E](value)
			return
		}
		out <- Failure[T, E](reason)
	}()

	return out
}

// Resolved returns a closed channel already holding r.
func Resolved[T, E any](r Result[T, E]) <-chan Result[T, E] {
	out := make(chan Result[T, E], 1)
	out <- r
	close(out)
	return out
}

// FlatMapAsync is FlatMap for steps that complete asynchronously. A Failure
// skips onSuccess and is delivered, unchanged, on an already resolved channel.
func FlatMapAsync[T, U, E any](r Result[T, E], onSuccess func(T) <-chan Result[U, E]) <-chan Result[U, E] {
	if r.IsFailure() {
		return Resolved(Result[U, E]{o: r.o})
	}
	return onSuccess(r.value())
}
