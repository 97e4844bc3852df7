package result

import "fmt"

// outcome is the shared, never mutated box behind a Result. Short-circuit
// branches hand the same box to the returned Result.
type outcome struct {
	isSuccess bool
	payload   any
}

// Result is either a Success holding a value of type T or a Failure holding
// an error payload of type E.
//
// The zero Result is a Failure carrying the zero E.
type Result[T, E any] struct {
	o *outcome
}

// Instance is implemented by every Result regardless of its payload types.
type Instance interface {
	IsSuccess() bool
	IsFailure() bool
	instance() *outcome
}

func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{o: &outcome{isSuccess: true, payload: value}}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{o: &outcome{isSuccess: false, payload: err}}
}

// Same reports whether a and b are the very same Result instance, not just
// structurally equal ones.
func Same(a, b Instance) bool {
	return a.instance() == b.instance()
}

func (r Result[T, E]) instance() *outcome {
	return r.o
}

func (r Result[T, E]) IsSuccess() bool {
	return r.o != nil && r.o.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.IsSuccess()
}

// Value returns the success payload. The second return is false on Failure.
func (r Result[T, E]) Value() (T, bool) {
	if !r.IsSuccess() {
		var zero T
		return zero, false
	}
	return r.value(), true
}

// Err returns the failure payload. The second return is false on Success.
func (r Result[T, E]) Err() (E, bool) {
	if r.IsSuccess() {
		var zero E
		return zero, false
	}
	return r.err(), true
}

// GetOrThrow returns the value on Success and panics with the error payload
// itself on Failure.
func (r Result[T, E]) GetOrThrow() T {
	if r.IsFailure() {
		panic(r.errPayload())
	}
	return r.value()
}

func (r Result[T, E]) GetOrElse(defaultValue T) T {
	if r.IsFailure() {
		return defaultValue
	}
	return r.value()
}

// ToUnion returns the value on Success or the error on Failure.
func (r Result[T, E]) ToUnion() any {
	if r.IsSuccess() {
		return r.value()
	}
	return r.errPayload()
}

func (r Result[T, E]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("Success(%v)", r.value())
	}
	return fmt.Sprintf("Failure(%v)", r.errPayload())
}

func (r Result[T, E]) value() T {
	v, _ := r.o.payload.(T)
	return v
}

func (r Result[T, E]) err() E {
	if r.o == nil {
		var zero E
		return zero
	}
	e, _ := r.o.payload.(E)
	return e
}

// errPayload keeps the stored payload untouched, including a nil interface.
func (r Result[T, E]) errPayload() any {
	if r.o == nil {
		return r.err()
	}
	return r.o.payload
}
