package result

// TryCatch runs f and wraps its return value in a Success. A panic raised by
// f is recovered and becomes the Failure payload exactly as it was raised.
func TryCatch[T any](f func() T) (res Result[T, any]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T, any](r)
		}
	}()
	return Success[T, any](f())
}

// Try converts a (value, error) call into a Result. A non-nil error is kept
// as the Failure payload without wrapping.
func Try[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// FromNullish returns a Success holding value unless value is nil (see IsNil),
// in which case the Failure payload is value itself.
//
// When T can never be nil (numbers, strings, structs) the result is always a
// Success.
func FromNullish[T any](value T) Result[T, T] {
	if IsNil(value) {
		return Failure[T, T](value)
	}
	return Success[T, T](value)
}

// All collects the values of results in order if every one of them is a
// Success. Otherwise it returns the first Failure, unchanged.
func All[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return Result[[]T, E]{o: r.o}
		}
		values = append(values, r.value())
	}
	return Success[[]T, E](values)
}
