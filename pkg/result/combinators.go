package result

// IfSuccess applies onSuccess to the value of a Success. On Failure it does
// not call onSuccess and reports false.
func IfSuccess[T, E, R any](r Result[T, E], onSuccess func(T) R) (R, bool) {
	if r.IsFailure() {
		var zero R
		return zero, false
	}
	return onSuccess(r.value()), true
}

// IfFailure applies onFailure to the error of a Failure. On Success it does
// not call onFailure and reports false.
func IfFailure[T, E, R any](r Result[T, E], onFailure func(E) R) (R, bool) {
	if r.IsSuccess() {
		var zero R
		return zero, false
	}
	return onFailure(r.err()), true
}

// Match calls exactly one of the handlers and returns what it returns.
func Match[T, E, R any](r Result[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if r.IsSuccess() {
		return onSuccess(r.value())
	}
	return onFailure(r.err())
}

func Map[T, U, E any](r Result[T, E], onSuccess func(T) U) Result[U, E] {
	if r.IsFailure() {
		return Result[U, E]{o: r.o}
	}
	return Success[U, E](onSuccess(r.value()))
}

func MapError[T, E, F any](r Result[T, E], onFailure func(E) F) Result[T, F] {
	if r.IsSuccess() {
		return Result[T, F]{o: r.o}
	}
	return Failure[T, F](onFailure(r.err()))
}

// BiMap maps whichever payload r holds.
func BiMap[T, U, E, F any](r Result[T, E], onSuccess func(T) U, onFailure func(E) F) Result[U, F] {
	if r.IsSuccess() {
		return Success[U, F](onSuccess(r.value()))
	}
	return Failure[U, F](onFailure(r.err()))
}

// FlatMap returns onSuccess(value) as is, so the next step decides whether
// the pipeline goes on. A Failure is returned unchanged.
func FlatMap[T, U, E any](r Result[T, E], onSuccess func(T) Result[U, E]) Result[U, E] {
	if r.IsFailure() {
		return Result[U, E]{o: r.o}
	}
	return onSuccess(r.value())
}

// Flatten removes exactly one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.IsFailure() {
		return Result[T, E]{o: r.o}
	}
	return r.value()
}
