package result

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTryCatch(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	ok := TryCatch(func() int { return 123 })
	require.Equal(Success[int, any](123), ok)

	failed := TryCatch(func() int { panic("e") })
	require.True(failed.IsFailure())
	e, _ := failed.Err()
	require.Equal("e", e)
}

func TestTryCatch_KeepsPanicValue(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	errTest := errors.New("error")
	failed := TryCatch(func() string { panic(errTest) })

	e, ok := failed.Err()
	require.True(ok)
	require.Same(errTest, e)
}

func TestTry(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	require.Equal(Success[int, error](4), Try(func() (int, error) { return 4, nil }))

	errTest := errors.New("try-error")
	failed := Try(func() (int, error) { return 0, errTest })
	e, ok := failed.Err()
	require.True(ok)
	require.ErrorIs(e, errTest)
}

func TestFromNullish(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	n := 123
	present := FromNullish(&n)
	v, ok := present.Value()
	require.True(ok)
	require.Same(&n, v)

	var missing *int
	absent := FromNullish(missing)
	require.True(absent.IsFailure())
	e, ok := absent.Err()
	require.True(ok)
	require.Nil(e)

	plain := FromNullish(123)
	require.True(plain.IsSuccess())
	require.Equal(123, plain.GetOrThrow())

	var untyped any
	require.True(FromNullish(untyped).IsFailure())
}

func TestAll_AllSuccess(t *testing.T) {
	t.Parallel()

	got := All([]Result[int, string]{Success[int, string](1), Success[int, string](2)})

	v, ok := got.Value()
	require.True(t, ok)
	if diff := cmp.Diff([]int{1, 2}, v); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestAll_Empty(t *testing.T) {
	t.Parallel()

	got := All[int, string](nil)
	v, ok := got.Value()
	require.True(t, ok)
	require.Empty(t, v)
}

func TestAll_FirstFailureWins(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	x := Failure[int, string]("x")
	y := Failure[int, string]("y")

	mixed := All([]Result[int, string]{Success[int, string](1), x})
	require.Equal(Failure[[]int, string]("x"), mixed)
	require.True(Same(x, mixed))

	both := All([]Result[int, string]{x, y})
	require.Equal(Failure[[]int, string]("x"), both)
	require.True(Same(x, both))
	require.False(Same(y, both))
}
