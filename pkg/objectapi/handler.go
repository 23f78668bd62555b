// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package objectapi exposes the GetObject action pipeline over HTTP,
// translating a net/http request into an objectget.Action and back.
package objectapi

import (
	"net/http"
	"strings"

	reqcontext "github.com/driftfs/objectgw/pkg/context"
	"github.com/driftfs/objectgw/pkg/logger"
	"github.com/driftfs/objectgw/pkg/objectget"
	"github.com/driftfs/objectgw/pkg/s3api/s3consts"
)

// Handler routes S3-style "/{bucket}/{key...}" GET requests into the
// objectget pipeline. It carries no per-request state of its own: every
// request gets its own objectget.Action, so the handler is safe for
// concurrent use without locking.
type Handler struct {
	deps objectget.Deps
}

// NewHandler constructs a Handler sharing the given pipeline dependencies
// across every request.
func NewHandler(deps objectget.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, requestID := reqcontext.WithUUID(r.Context())

	bucket, key, ok := splitBucketKey(r.URL.Path)
	if !ok {
		w.Header().Set(s3consts.XAmzRequestID, requestID)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	req := &objectget.Request{
		Bucket:              bucket,
		Key:                 key,
		ExpectedBucketOwner: r.Header.Get(s3consts.XAmzExpectedBucketOwner),
		RangeHeader:         r.Header.Get("Range"),
		IfMatch:             r.Header.Get("If-Match"),
		IfNoneMatch:         r.Header.Get("If-None-Match"),
		IfModifiedSince:     r.Header.Get("If-Modified-Since"),
		IfUnmodifiedSince:   r.Header.Get("If-Unmodified-Since"),
		RequestID:           requestID,
	}

	framer := objectget.NewFramer(w, requestID)
	action := objectget.NewAction(h.deps, req, framer)
	if err := action.Run(ctx); err != nil {
		logger.Error().Err(err).
			Str("bucket", bucket).Str("key", key).Str("request_id", requestID).
			Msg("get object action aborted mid-stream")
	}
}

// splitBucketKey parses "/{bucket}/{key...}" out of a request path. Both
// segments must be non-empty; a bare "/bucket" or "/" is not a valid
// object address.
func splitBucketKey(path string) (bucket, key string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/")
	idx := strings.IndexByte(trimmed, '/')
	if idx <= 0 || idx == len(trimmed)-1 {
		return "", "", false
	}
	return trimmed[:idx], trimmed[idx+1:], true
}
