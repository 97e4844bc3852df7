package promise

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPromise(t *testing.T) {
	require := require.New(t)

	p := New[int, error]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Resolve(1)
		p.Resolve(2)
		p.Reject(errors.New("late"))
	}()

	v, reason, fulfilled, err := p.Await(context.TODO())
	require.NoError(err)
	require.True(fulfilled)
	require.NoError(reason)
	require.Equal(1, v)
}

func TestResolveRace(t *testing.T) {
	require := require.New(t)

	p := New[int, string]()

	for i := 0; i <= 1000; i++ {
		go func() {
			p.Resolve(42)
		}()
	}

	v, _, fulfilled, err := p.Await(context.TODO())
	require.NoError(err)
	require.True(fulfilled)
	require.Equal(42, v)
}

func TestReject(t *testing.T) {
	require := require.New(t)

	p := Rejected[int, string]("nope")

	<-p.Done()
	_, reason, fulfilled := p.Outcome()
	require.False(fulfilled)
	require.Equal("nope", reason)
}

func TestOutcome_Unsettled(t *testing.T) {
	require := require.New(t)

	v, reason, fulfilled := New[int, string]().Outcome()
	require.Zero(v)
	require.Zero(reason)
	require.False(fulfilled)
}

func TestAwait_ContextCanceled(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, fulfilled, err := New[int, string]().Await(ctx)
	require.False(fulfilled)
	require.ErrorIs(err, context.Canceled)
}

func TestGo(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("test err")

	ok := Go(func() (string, error) { return "done", nil })
	v, _, fulfilled, err := ok.Await(context.TODO())
	require.NoError(err)
	require.True(fulfilled)
	require.Equal("done", v)

	failed := Go(func() (string, error) { return "", errTest })
	_, reason, fulfilled, err := failed.Await(context.TODO())
	require.NoError(err)
	require.False(fulfilled)
	require.ErrorIs(reason, errTest)
}

func TestGo_Panic(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("test err")

	withErr := Go(func() (int, error) { panic(errTest) })
	_, reason, fulfilled, err := withErr.Await(context.TODO())
	require.NoError(err)
	require.False(fulfilled)
	require.ErrorIs(reason, errTest)

	withValue := Go(func() (int, error) { panic("boom") })
	_, reason, fulfilled, err = withValue.Await(context.TODO())
	require.NoError(err)
	require.False(fulfilled)
	require.EqualError(reason, "promise: panic: boom")
}
