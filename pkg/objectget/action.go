// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"context"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/driftfs/objectgw/pkg/logger"
	"github.com/driftfs/objectgw/pkg/storage/backend"
	"github.com/driftfs/objectgw/pkg/types"
	"github.com/driftfs/objectgw/pkg/utils"
)

// actionState enumerates the stages a GetObject action moves through.
// Progression is strictly forward except for the terminal Error/EndReply
// pair, which either branch can reach from any stage.
type actionState int

const (
	stateInit actionState = iota
	stateFetchBucket
	stateFetchObject
	stateValidateObject
	stateParseRange
	stateReadLoop
	stateStreaming
	stateComplete
	stateError
	stateEndReply
	stateThrottled
)

// Request carries everything a GetObject action needs that originates from
// the HTTP request, translated out of net/http so the pipeline has no
// framework dependency beyond the Framer.
type Request struct {
	Bucket string
	Key    string

	// ExpectedBucketOwner, when non-empty, must match the bucket's
	// recorded owner or the request is rejected before any object lookup.
	ExpectedBucketOwner string

	RangeHeader       string
	IfMatch           string
	IfNoneMatch       string
	IfModifiedSince   string
	IfUnmodifiedSince string

	RequestID string
}

// Deps bundles the collaborators an Action needs, shared across every
// request the server handles.
type Deps struct {
	Buckets      BucketStore
	Objects      ObjectStore
	Backends     *backend.Manager
	Layouts      *types.LayoutTable
	Backpressure *Backpressure
	Shutdown     *ShutdownCoordinator
	ReadPolicy   ReadPolicy
	Metrics      *Metrics
	Limiter      *rate.Limiter
}

// Action drives a single GetObject request from bucket lookup through the
// last byte streamed. One goroutine owns an Action for its entire
// lifetime: there is no locking inside it, only the replyStarted latch,
// which exists so a panic-recovery or timeout path elsewhere in the server
// can tell, without inspecting the ResponseWriter, whether it is still
// safe to write an error response.
type Action struct {
	deps   Deps
	req    *Request
	framer *Framer

	state        actionState
	replyStarted atomic.Bool

	meta   *types.ObjectMetadata
	rng    Range
	ranged bool
	plan   BlockPlan
	reader *BackendReader

	// checksum runs only over full-object (non-ranged) reads: a partial
	// range can never be compared against the whole object's digest.
	checksum hash.Hash

	startedAt   time.Time
	bytesServed int64
}

// NewAction constructs an Action ready to Run.
func NewAction(deps Deps, req *Request, framer *Framer) *Action {
	return &Action{deps: deps, req: req, framer: framer, state: stateInit}
}

// Run drives the action to completion, writing the full HTTP response
// (headers, body, or an XML error) before returning. The returned error is
// nil whenever a response — success or well-formed error — was written;
// it is non-nil when the connection had to be abandoned mid-stream, or when
// ctx ended while waiting on the request limiter (nothing has been written
// in that case).
func (a *Action) Run(ctx context.Context) error {
	a.startedAt = time.Now()
	for {
		switch a.state {
		case stateInit:
			if a.deps.Shutdown != nil && a.deps.Shutdown.Draining() {
				a.state = stateThrottled
				continue
			}
			if err := a.throttle(ctx); err != nil {
				return err
			}
			a.state = stateFetchBucket

		case stateFetchBucket:
			ok, err := a.deps.Buckets.FetchBucket(ctx, a.req.Bucket)
			if err != nil {
				return a.fail(newInternalError(err))
			}
			if !ok {
				return a.fail(newNoSuchBucketError())
			}
			if a.req.ExpectedBucketOwner != "" {
				owner, err := a.deps.Buckets.BucketOwner(ctx, a.req.Bucket)
				if err != nil {
					return a.fail(newInternalError(err))
				}
				if owner != "" && owner != a.req.ExpectedBucketOwner {
					return a.fail(newBucketOwnerMismatchError())
				}
			}
			a.state = stateFetchObject

		case stateFetchObject:
			meta, ok, err := a.deps.Objects.FetchObject(ctx, a.req.Bucket, a.req.Key)
			if err != nil {
				return a.fail(newInternalError(err))
			}
			if !ok || meta.IsDeleted() {
				return a.fail(newNoSuchKeyError())
			}
			a.meta = meta
			a.state = stateValidateObject

		case stateValidateObject:
			if cerr := checkConditional(a.req, a.meta.ETag, a.meta.LastModified); cerr != nil {
				return a.fail(cerr)
			}
			a.state = stateParseRange

		case stateParseRange:
			rng, err := ParseRange(a.req.RangeHeader, a.meta.Size)
			if err != nil {
				return a.fail(err.(*Error))
			}
			a.rng = rng
			a.ranged = rng.Present
			a.state = stateReadLoop

		case stateReadLoop:
			if err := a.startReadLoop(ctx); err != nil {
				return a.fail(err)
			}
			a.state = stateStreaming

		case stateStreaming:
			if err := a.stream(ctx); err != nil {
				return err
			}
			a.state = stateComplete

		case stateComplete:
			if a.reader != nil {
				a.reader.Close()
			}
			a.verifyChecksum()
			a.deps.Metrics.Observe(ErrCodeNone, a.bytesServed, time.Since(a.startedAt).Seconds())
			return nil

		case stateThrottled:
			retryAfter := 1
			if a.deps.Shutdown != nil {
				retryAfter = a.deps.Shutdown.RetryAfterSeconds()
			}
			return a.fail(newServiceUnavailableError("server is shutting down", retryAfter))

		case stateError, stateEndReply:
			return nil
		}
	}
}

// startReadLoop resolves the backend and, for a non-empty object, opens the
// backend read before announcing anything to the client: WriteHeaders and
// the replyStarted latch only fire once a read is actually in flight (or,
// for a zero-length object, once there's nothing left that could fail), so
// a backend launch failure here still gets a proper XML error response
// instead of silently dropping a connection that already claimed 200 OK.
func (a *Action) startReadLoop(ctx context.Context) *Error {
	layout, ok := a.deps.Layouts.Lookup(a.meta.LayoutID)
	if !ok {
		return newInternalError(errUnknownLayout(a.meta.LayoutID))
	}
	backendStore, ok := a.deps.Backends.Get(a.meta.BackendID)
	if !ok {
		return newInternalError(errUnknownBackend(a.meta.BackendID))
	}

	if a.meta.Size == 0 {
		// Zero-length short-circuit: headers alone are the whole response.
		a.framer.WriteHeaders(a.meta, a.rng, a.ranged)
		a.replyStarted.Store(true)
		return nil
	}

	effectiveRange := a.rng
	if !effectiveRange.Present {
		effectiveRange = Range{Present: true, Start: 0, End: a.meta.Size - 1}
	}

	plan := PlanBlocks(layout.UnitSize, a.meta.Size, effectiveRange)
	a.plan = plan
	a.reader = NewBackendReader(backendStore, a.meta.BackendKey, plan, a.deps.ReadPolicy)
	if err := a.reader.Open(ctx); err != nil {
		return err.(*Error)
	}

	if !a.ranged {
		a.checksum = utils.Md5PoolGetHasher()
	}

	a.framer.WriteHeaders(a.meta, a.rng, a.ranged)
	a.replyStarted.Store(true)
	return nil
}

func (a *Action) stream(ctx context.Context) error {
	if a.reader == nil {
		return nil
	}
	for {
		if a.deps.Shutdown != nil && a.deps.Shutdown.Draining() {
			return nil
		}

		buf, err := a.reader.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if a.deps.Backpressure != nil {
			if rerr := a.deps.Backpressure.Reserve(ctx, uint64(buf.Len())); rerr != nil {
				buf.Release()
				return rerr
			}
		}
		werr := a.framer.WriteChunk(buf)
		n := buf.Len()
		if a.checksum != nil {
			a.checksum.Write(buf.Bytes())
		}
		a.bytesServed += int64(n)
		buf.Release()
		if a.deps.Backpressure != nil {
			a.deps.Backpressure.Release(uint64(n))
		}
		if werr != nil {
			return werr
		}
	}
}

// fail renders err through the framer if no bytes have gone out yet
// (Error state); otherwise the connection is simply closed by returning,
// since a response already in flight can't be replaced (EndReply).
func (a *Action) fail(err *Error) error {
	defer a.deps.Metrics.Observe(err.Code, a.bytesServed, time.Since(a.startedAt).Seconds())
	if a.framer.HeaderWritten() || a.replyStarted.Load() {
		a.state = stateEndReply
		return err
	}
	a.framer.WriteError(a.req.Key, err)
	a.state = stateError
	return nil
}

// verifyChecksum compares the md5 accumulated while streaming a full object
// against its stored ETag. The body has already gone out by the time this
// runs, so a mismatch can't change the response; it only gets logged, the
// same way a scrub would flag silent backend corruption.
func (a *Action) verifyChecksum() {
	if a.checksum == nil {
		return
	}
	defer utils.Md5PoolPutHasher(a.checksum)

	want := strings.Trim(a.meta.ETag, "\"")
	if strings.Contains(want, "-") {
		// Multipart ETags aren't a plain content digest; nothing to compare.
		return
	}
	got := hex.EncodeToString(a.checksum.Sum(nil))
	if !strings.EqualFold(want, got) {
		logger.Error().
			Str("bucket", a.req.Bucket).Str("key", a.req.Key).
			Str("expected_etag", want).Str("computed_md5", got).
			Msg("object content did not match its stored checksum")
	}
}

type layoutError struct{ id types.LayoutID }

func errUnknownLayout(id types.LayoutID) error { return &layoutError{id} }
func (e *layoutError) Error() string           { return "unknown layout id" }

type backendError struct{ id string }

func errUnknownBackend(id string) error { return &backendError{id} }
func (e *backendError) Error() string   { return "unknown backend id: " + e.id }
