// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"context"
	"errors"
	"io"

	"github.com/driftfs/objectgw/pkg/types"
)

// ReaderState tracks the lifecycle of a single backend read adapter. A reader
// is used for exactly one action: it is opened once against a BlockPlan and
// produces a sequence of pooled buffers until the plan's content is fully
// delivered or an error ends it.
type ReaderState int

const (
	ReaderIdle ReaderState = iota
	ReaderInFlight
	ReaderSuccess
	ReaderFailed
	ReaderFailedToLaunch
)

// ReadPolicy controls how the adapter carves the backend's block-aligned
// range into chunks handed to the caller. A small FirstReadSize gets the
// first bytes to the client sooner (lower time-to-first-byte) without
// waiting for a full multi-block read; everything after that reads up to
// MaxBlocksPerRead blocks at a time, and the final chunk is whatever
// remains.
type ReadPolicy struct {
	FirstReadSize    uint64
	MaxBlocksPerRead uint64

	// ReadPayloadSize and WriteBufferMultiple are carried in the policy, and
	// OutboundBufferThreshold reports their product. Neither the adapter nor
	// the read loop consults them: the read loop blocks only on the
	// Backpressure ceiling it is given, which is configured separately.
	ReadPayloadSize     uint64
	WriteBufferMultiple uint64
}

// DefaultReadPolicy is a reasonable default: a 64KiB opening read, then
// reads of up to 4 stripe units at a time.
func DefaultReadPolicy() ReadPolicy {
	return ReadPolicy{
		FirstReadSize:       64 << 10,
		MaxBlocksPerRead:    4,
		ReadPayloadSize:     1 << 20,
		WriteBufferMultiple: 4,
	}
}

// OutboundBufferThreshold returns ReadPayloadSize * WriteBufferMultiple.
// The server does not apply this value as a threshold; the outstanding-bytes
// ceiling in effect is the one passed to NewBackpressure.
func (p ReadPolicy) OutboundBufferThreshold() uint64 {
	return p.ReadPayloadSize * p.WriteBufferMultiple
}

// BackendReader streams a BlockPlan's backend-aligned range off a
// types.BackendStorage, trimming the leading overread and truncating to the
// plan's ContentLength so every buffer it yields is ready to hand straight
// to the response framer.
type BackendReader struct {
	backend types.BackendStorage
	key     string
	plan    BlockPlan
	policy  ReadPolicy

	state ReaderState
	src   io.ReadCloser

	backendRead   uint64 // bytes consumed from src so far
	trimRemaining uint64 // LeadingTrim bytes not yet discarded
	delivered     uint64 // content bytes handed to the caller so far
	firstChunk    bool
}

// NewBackendReader constructs an adapter for the given plan. It does not
// touch the backend until Open is called.
func NewBackendReader(backend types.BackendStorage, key string, plan BlockPlan, policy ReadPolicy) *BackendReader {
	return &BackendReader{
		backend:       backend,
		key:           key,
		plan:          plan,
		policy:        policy,
		state:         ReaderIdle,
		firstChunk:    true,
		trimRemaining: plan.LeadingTrim,
	}
}

// State returns the adapter's current lifecycle state.
func (r *BackendReader) State() ReaderState {
	return r.state
}

// Open issues the single block-aligned backend read the plan describes.
// It must be called before Next. On failure the adapter transitions to
// ReaderFailedToLaunch and the error is already a domain *Error.
func (r *BackendReader) Open(ctx context.Context) error {
	if r.plan.BackendLength == 0 {
		r.state = ReaderSuccess
		return nil
	}
	src, err := r.backend.ReadRange(ctx, r.key, int64(r.plan.BackendOffset), int64(r.plan.BackendLength))
	if err != nil {
		r.state = ReaderFailedToLaunch
		return newServiceUnavailableError("backend read could not be started", 1)
	}
	r.src = src
	r.state = ReaderInFlight
	return nil
}

// Next produces the next chunk of content bytes, or io.EOF once the plan's
// ContentLength has been fully delivered. The returned buffer is owned by
// the caller, which must call Release on it.
//
// A chunk entirely consumed by LeadingTrim (possible when the first read
// is smaller than the alignment overread) yields no content bytes; Next
// keeps reading internally rather than handing the caller an empty buffer.
func (r *BackendReader) Next(ctx context.Context) (*buffer, error) {
	for {
		if r.state == ReaderSuccess {
			return nil, io.EOF
		}
		if r.state != ReaderInFlight {
			return nil, errors.New("objectget: Next called before successful Open")
		}
		if r.delivered >= r.plan.ContentLength {
			r.finish()
			return nil, io.EOF
		}

		readSize := r.nextReadSize()
		buf := newBuffer(int(readSize))
		n, err := io.ReadFull(r.src, buf.data)
		if err != nil && !(errors.Is(err, io.ErrUnexpectedEOF) && n > 0) {
			buf.Release()
			if errors.Is(err, io.EOF) && n == 0 {
				r.finish()
				return nil, io.EOF
			}
			r.state = ReaderFailed
			r.closeSrc()
			return nil, newInternalError(err)
		}
		buf.data = buf.data[:n]
		r.backendRead += uint64(n)

		if r.trimRemaining > 0 {
			trim := r.trimRemaining
			if trim > uint64(buf.Len()) {
				trim = uint64(buf.Len())
			}
			buf.DrainFront(int(trim))
			r.trimRemaining -= trim
		}

		remaining := r.plan.ContentLength - r.delivered
		if uint64(buf.Len()) > remaining {
			buf.TrimTo(int(remaining))
		}
		r.delivered += uint64(buf.Len())
		done := r.delivered >= r.plan.ContentLength || r.backendRead >= r.plan.BackendLength

		if buf.Len() == 0 {
			buf.Release()
			if done {
				r.finish()
				return nil, io.EOF
			}
			continue
		}

		if done {
			r.finish()
		}
		return buf, nil
	}
}

func (r *BackendReader) nextReadSize() uint64 {
	remainingBackend := r.plan.BackendLength - r.backendRead
	var want uint64
	if r.firstChunk {
		r.firstChunk = false
		want = r.policy.FirstReadSize
		if want == 0 {
			want = remainingBackend
		}
	} else {
		blocks := r.policy.MaxBlocksPerRead
		if blocks == 0 {
			blocks = 1
		}
		want = blocks * r.plan.UnitSize
	}
	if want > remainingBackend || want == 0 {
		want = remainingBackend
	}
	return want
}

func (r *BackendReader) finish() {
	if r.state != ReaderFailed {
		r.state = ReaderSuccess
	}
	r.closeSrc()
}

func (r *BackendReader) closeSrc() {
	if r.src != nil {
		r.src.Close()
		r.src = nil
	}
}

// Close releases the backend reader, if still open. Safe to call multiple
// times and after a successful drain.
func (r *BackendReader) Close() error {
	r.closeSrc()
	return nil
}
