// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// NewRequestLimiter builds a token-bucket limiter that throttles requests to
// roughly one every throttle interval, with a burst of one. A zero or
// negative throttle disables limiting (nil, meaning "unlimited").
//
// This plays the same role as the teacher's federation worker's rate.Limiter
// (one token bucket gating outbound work), scaled down to a single process
// gating inbound GetObject requests instead of a fleet of replication
// workers.
func NewRequestLimiter(throttle time.Duration) *rate.Limiter {
	if throttle <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(throttle), 1)
}

// throttle blocks the action until the limiter admits it, or ctx is
// cancelled. A nil limiter never blocks.
func (a *Action) throttle(ctx context.Context) error {
	if a.deps.Limiter == nil {
		return nil
	}
	return a.deps.Limiter.Wait(ctx)
}
