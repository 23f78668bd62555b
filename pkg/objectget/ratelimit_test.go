// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestLimiter_ZeroDisables(t *testing.T) {
	assert.Nil(t, NewRequestLimiter(0))
	assert.Nil(t, NewRequestLimiter(-time.Second))
}

func TestNewRequestLimiter_NonzeroBuildsLimiter(t *testing.T) {
	l := NewRequestLimiter(10 * time.Millisecond)
	assert.NotNil(t, l)
	assert.True(t, l.Allow())
}
