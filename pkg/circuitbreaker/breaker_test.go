package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failing() error { return errBoom }
func passing() error { return nil }

func TestBreakerStaysClosedOnSuccess(t *testing.T) {
	b := New("test", Config{FailureThreshold: 2})

	for i := 0; i < 10; i++ {
		require.NoError(t, b.Execute(context.Background(), passing))
	}
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := New("test", Config{FailureThreshold: 3, Cooldown: time.Minute})

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(context.Background(), failing), errBoom)
	}
	assert.Equal(t, StateOpen, b.State())

	err := b.Execute(context.Background(), passing)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := New("test", Config{FailureThreshold: 3})

	require.Error(t, b.Execute(context.Background(), failing))
	require.Error(t, b.Execute(context.Background(), failing))
	require.NoError(t, b.Execute(context.Background(), passing))
	require.Error(t, b.Execute(context.Background(), failing))
	require.Error(t, b.Execute(context.Background(), failing))

	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	b := New("test", Config{FailureThreshold: 1, SuccessThreshold: 2, Cooldown: 10 * time.Millisecond})

	require.Error(t, b.Execute(context.Background(), failing))
	require.Equal(t, StateOpen, b.State())

	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, b.State())

	require.NoError(t, b.Execute(context.Background(), passing))
	require.NoError(t, b.Execute(context.Background(), passing))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := New("test", Config{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})

	require.Error(t, b.Execute(context.Background(), failing))
	time.Sleep(15 * time.Millisecond)

	require.ErrorIs(t, b.Execute(context.Background(), failing), errBoom)
	assert.ErrorIs(t, b.Execute(context.Background(), passing), ErrCircuitOpen)
}
