// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain guards the whole package against leaked goroutines: Reserve
// spins one to watch for context cancellation, and every test here must
// leave it cleaned up.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBackpressure_ReserveReleaseRoundTrip(t *testing.T) {
	bp := NewBackpressure(100)
	require.NoError(t, bp.Reserve(context.Background(), 60))
	assert.EqualValues(t, 60, bp.Outstanding())
	bp.Release(60)
	assert.EqualValues(t, 0, bp.Outstanding())
}

func TestBackpressure_BlocksUntilReleased(t *testing.T) {
	bp := NewBackpressure(10)
	require.NoError(t, bp.Reserve(context.Background(), 10))

	unblocked := make(chan struct{})
	go func() {
		_ = bp.Reserve(context.Background(), 5)
		close(unblocked)
	}()

	select {
	case <-unblocked:
		t.Fatal("Reserve returned before headroom was available")
	case <-time.After(50 * time.Millisecond):
	}

	bp.Release(10)
	select {
	case <-unblocked:
	case <-time.After(time.Second):
		t.Fatal("Reserve did not unblock after Release")
	}
}

func TestBackpressure_ContextCancelUnblocks(t *testing.T) {
	bp := NewBackpressure(10)
	require.NoError(t, bp.Reserve(context.Background(), 10))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bp.Reserve(ctx, 5) }()

	cancel()
	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("Reserve did not return after context cancellation")
	}
}

func TestBackpressure_ZeroCeilingDisabled(t *testing.T) {
	bp := NewBackpressure(0)
	require.NoError(t, bp.Reserve(context.Background(), 1<<30))
	assert.EqualValues(t, 0, bp.Outstanding())
}
