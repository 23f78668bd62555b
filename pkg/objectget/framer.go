// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"fmt"
	"net/http"

	"github.com/driftfs/objectgw/pkg/s3api/s3consts"
	"github.com/driftfs/objectgw/pkg/s3api/s3types"
	"github.com/driftfs/objectgw/pkg/types"
)

// Framer writes the HTTP response for a GetObject action. It owns the
// read_object_reply_started latch implicitly: once WriteHeaders has been
// called, any later failure must be delivered by tearing down the
// connection rather than by writing a second, conflicting status line.
type Framer struct {
	w             http.ResponseWriter
	requestID     string
	headerWritten bool
}

// NewFramer wraps the response writer for a single action.
func NewFramer(w http.ResponseWriter, requestID string) *Framer {
	return &Framer{w: w, requestID: requestID}
}

// HeaderWritten reports whether WriteHeaders has already been called. The
// action state machine consults this before choosing between an XML error
// response and an abrupt connection close.
func (f *Framer) HeaderWritten() bool {
	return f.headerWritten
}

// WriteHeaders writes every header a GetObject response carries and the
// status line, then returns immediately: the body is streamed separately
// via WriteChunk so large objects never have their full content buffered.
//
// ranged must be true only when the request both carried a satisfiable
// Range header and is being honored with a 206; a full-object response
// (no Range, or a range request degraded to the whole object) gets a 200
// and no Content-Range.
func (f *Framer) WriteHeaders(meta *types.ObjectMetadata, rng Range, ranged bool) {
	h := f.w.Header()
	h.Set("ETag", meta.ETag)
	h.Set("Last-Modified", meta.LastModified.UTC().Format(http.TimeFormat))
	if meta.ContentType != "" {
		h.Set("Content-Type", meta.ContentType)
	} else {
		h.Set("Content-Type", "application/octet-stream")
	}
	h.Set(s3consts.XAmzRequestID, f.requestID)
	if meta.TagCount > 0 {
		h.Set(s3consts.XAmzTaggingCount, fmt.Sprintf("%d", meta.TagCount))
	}
	for name, value := range meta.UserAttributes {
		h.Set(s3consts.XAmzMetaPrefix+name, value)
	}
	h.Set("Accept-Ranges", "bytes")
	if meta.StorageClass != s3types.StorageClassUnknown && meta.StorageClass != s3types.StorageClassStandard {
		h.Set("x-amz-storage-class", meta.StorageClass.String())
	}

	if ranged {
		h.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", rng.Start, rng.End, meta.Size))
		h.Set("Content-Length", fmt.Sprintf("%d", rng.Length()))
		f.w.WriteHeader(http.StatusPartialContent)
	} else {
		length := meta.Size
		if rng.Present {
			length = rng.Length()
		}
		h.Set("Content-Length", fmt.Sprintf("%d", length))
		f.w.WriteHeader(http.StatusOK)
	}
	f.headerWritten = true
}

// WriteChunk streams one buffer's content bytes to the client. The caller
// retains ownership of buf and must Release it.
func (f *Framer) WriteChunk(buf *buffer) error {
	if !f.headerWritten {
		return fmt.Errorf("objectget: WriteChunk called before WriteHeaders")
	}
	if buf.Len() == 0 {
		return nil
	}
	_, err := f.w.Write(buf.Bytes())
	if fl, ok := f.w.(http.Flusher); ok {
		fl.Flush()
	}
	return err
}

// WriteError renders a domain error as an XML error response. It must only
// be called when HeaderWritten is false — once streaming has begun, an
// error can no longer be expressed as a well-formed response and the
// action state machine must instead abort the connection.
func (f *Framer) WriteError(resource string, err *Error) {
	if f.headerWritten {
		return
	}
	code := err.ToS3Error()
	resp := code.ToErrorResponseWithMessage(resource, err.Message)
	resp.RequestID = f.requestID

	h := f.w.Header()
	h.Set("Content-Type", "application/xml")
	h.Set(s3consts.XAmzRequestID, f.requestID)
	if err.Code == ErrCodeServiceUnavailable {
		retryAfter := err.RetryAfterSeconds
		if retryAfter <= 0 {
			retryAfter = 1
		}
		h.Set("Retry-After", fmt.Sprintf("%d", retryAfter))
	}
	f.w.WriteHeader(resp.HTTPCode)
	fmt.Fprintf(f.w, xmlErrorTemplate, resp.Code, xmlEscape(resp.Message), xmlEscape(resp.Resource), resp.RequestID)
	f.headerWritten = true
}

const xmlErrorTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>%s</Code><Message>%s</Message><Resource>%s</Resource><RequestId>%s</RequestId></Error>`

func xmlEscape(s string) string {
	var buf []byte
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			buf = append(buf, "&amp;"...)
		case '<':
			buf = append(buf, "&lt;"...)
		case '>':
			buf = append(buf, "&gt;"...)
		case '"':
			buf = append(buf, "&quot;"...)
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}
