package result

import (
	"fmt"
	"reflect"
)

// TypeMismatchError is the panic value raised by AssertErrorAs when the
// error payload is not of the expected type.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("result: expected error of type %s, got %T", e.Expected, e.Actual)
}

// AssertErrorAs narrows the error type of r to C. A Success is returned
// as is without any check. A Failure whose payload is a C is returned as the
// same instance with the narrowed type; any other payload panics with a
// *TypeMismatchError.
func AssertErrorAs[C, T, E any](r Result[T, E]) Result[T, C] {
	if r.IsSuccess() {
		return Result[T, C]{o: r.o}
	}

	payload := r.errPayload()
	if _, ok := payload.(C); !ok {
		panic(&TypeMismatchError{Expected: reflect.TypeOf((*C)(nil)).Elem(), Actual: payload})
	}

	if r.o == nil {
		return Failure[T, C](payload.(C))
	}
	return Result[T, C]{o: r.o}
}
