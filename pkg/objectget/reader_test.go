// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftfs/objectgw/pkg/storage/backend"
)

func drainReader(t *testing.T, r *BackendReader) []byte {
	t.Helper()
	var out []byte
	for {
		buf, err := r.Next(context.Background())
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, buf.Bytes()...)
		buf.Release()
	}
	return out
}

func TestBackendReader_WholeObjectWithinOneUnit(t *testing.T) {
	store := backend.NewMemoryStorage()
	content := bytes.Repeat([]byte{0xAB}, 1000)
	require.NoError(t, store.Write(context.Background(), "k", bytes.NewReader(content), int64(len(content))))

	const unit = uint64(1 << 20)
	rng := Range{Present: true, Start: 0, End: uint64(len(content) - 1)}
	plan := PlanBlocks(unit, uint64(len(content)), rng)

	r := NewBackendReader(store, "k", plan, DefaultReadPolicy())
	require.NoError(t, r.Open(context.Background()))
	out := drainReader(t, r)
	require.Equal(t, content, out)
	require.Equal(t, ReaderSuccess, r.State())
}

func TestBackendReader_LeadingTrimAcrossMultipleReads(t *testing.T) {
	store := backend.NewMemoryStorage()
	content := make([]byte, 2*(1<<20))
	for i := range content {
		content[i] = byte(i % 251)
	}
	require.NoError(t, store.Write(context.Background(), "k", bytes.NewReader(content), int64(len(content))))

	const unit = uint64(1 << 20)
	start := unit - 100
	end := unit + 100
	rng := Range{Present: true, Start: start, End: end}
	plan := PlanBlocks(unit, uint64(len(content)), rng)

	r := NewBackendReader(store, "k", plan, ReadPolicy{FirstReadSize: 32, MaxBlocksPerRead: 1})
	require.NoError(t, r.Open(context.Background()))
	out := drainReader(t, r)
	require.Equal(t, content[start:end+1], out)
}

func TestBackendReader_EmptyPlanSucceedsImmediately(t *testing.T) {
	store := backend.NewMemoryStorage()
	r := NewBackendReader(store, "k", BlockPlan{}, DefaultReadPolicy())
	require.NoError(t, r.Open(context.Background()))
	require.Equal(t, ReaderSuccess, r.State())
	_, err := r.Next(context.Background())
	require.ErrorIs(t, err, io.EOF)
}

func TestBackendReader_OpenFailsToLaunchOnMissingKey(t *testing.T) {
	store := backend.NewMemoryStorage()
	plan := PlanBlocks(1<<20, 1<<20, Range{Present: true, Start: 0, End: 99})
	r := NewBackendReader(store, "missing", plan, DefaultReadPolicy())
	err := r.Open(context.Background())
	require.Error(t, err)
	require.Equal(t, ReaderFailedToLaunch, r.State())
}
