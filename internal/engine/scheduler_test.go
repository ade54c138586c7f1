package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnSchedule_InvalidSpec(t *testing.T) {
	err := RunOnSchedule(context.Background(), "not a schedule", nil, func(context.Context) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
}

func TestRunOnSchedule_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- RunOnSchedule(ctx, "@every 1h", nil, func(context.Context) {
			runs.Add(1)
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
	assert.Zero(t, runs.Load())
}

func TestRunOnSchedule_FiresOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- RunOnSchedule(ctx, "@every 100ms", nil, func(context.Context) {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler never fired")
	}

	cancel()
	require.NoError(t, <-done)
}
