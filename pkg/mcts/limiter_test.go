package mcts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterDefaultIsInfinite(t *testing.T) {
	limiter := NewLimiter()
	limiter.Reset()

	require.True(t, limiter.Ok(1000000))
}

func TestLimiterCycles(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetCycles(100))
	limiter.Reset()

	require.True(t, limiter.Ok(99))
	require.False(t, limiter.Ok(100))
	require.False(t, limiter.Ok(101))

	limiter.EvaluateStopReason(100, false)
	require.Equal(t, StopCycles, limiter.StopReason())
}

func TestLimiterMovetime(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetMovetime(50))
	limiter.Reset()

	require.True(t, limiter.Ok(1))
	time.Sleep(time.Millisecond * 60)
	require.False(t, limiter.Ok(1))

	limiter.EvaluateStopReason(1, false)
	require.Equal(t, StopMovetime, limiter.StopReason())

	// Reset restarts the clock.
	limiter.Reset()
	require.True(t, limiter.Ok(1))
}

func TestLimiterStopSignal(t *testing.T) {
	limiter := NewLimiter()
	limiter.Reset()

	limiter.SetStop(true)
	require.False(t, limiter.Ok(1))

	limiter.EvaluateStopReason(1, false)
	require.Equal(t, StopInterrupt, limiter.StopReason())
}

func TestLimiterContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	limiter := NewLimiter()
	limiter.SetContext(ctx)
	limiter.Reset()

	require.True(t, limiter.Ok(1))
	cancel()
	require.False(t, limiter.Ok(1))

	limiter.EvaluateStopReason(1, false)
	require.Equal(t, StopInterrupt, limiter.StopReason())
}

func TestLimiterExhaustedWinsOverBudgets(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetCycles(10))
	limiter.Reset()

	limiter.EvaluateStopReason(10, true)
	require.Equal(t, StopExhausted, limiter.StopReason())
}
