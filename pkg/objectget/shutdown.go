// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import "sync/atomic"

// ShutdownCoordinator lets in-flight actions notice a drain request without
// any locking: a single atomic flag, checked before a read loop issues its
// next backend read and before a buffer is handed to the framer. Actions
// that have not started yet are answered with a 503; an action already
// streaming a response stops before its next backend read and ends the
// response there.
type ShutdownCoordinator struct {
	draining   atomic.Bool
	retryAfter int
}

// NewShutdownCoordinator returns a coordinator accepting new work. retryAfter
// is the number of seconds advertised in the Retry-After header of any 503
// issued once draining begins.
func NewShutdownCoordinator(retryAfter int) *ShutdownCoordinator {
	return &ShutdownCoordinator{retryAfter: retryAfter}
}

// RetryAfterSeconds returns the configured shutdown Retry-After value.
func (s *ShutdownCoordinator) RetryAfterSeconds() int {
	return s.retryAfter
}

// BeginDrain marks the server as shutting down. Safe to call more than
// once.
func (s *ShutdownCoordinator) BeginDrain() {
	s.draining.Store(true)
}

// Draining reports whether a drain is in progress.
func (s *ShutdownCoordinator) Draining() bool {
	return s.draining.Load()
}
