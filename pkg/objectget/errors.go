// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"fmt"

	"github.com/driftfs/objectgw/pkg/s3api/s3err"
)

// ErrorCode is a domain-level outcome for a GetObject action, independent of
// how it is eventually rendered on the wire.
type ErrorCode int

const (
	ErrCodeNone ErrorCode = iota
	ErrCodeNoSuchBucket
	ErrCodeNoSuchKey
	ErrCodeInvalidRange
	ErrCodeNotModified
	ErrCodePreconditionFailed
	ErrCodeServiceUnavailable
	ErrCodeInternalError
	ErrCodeAccessDenied
)

// Error is the error type every action-pipeline stage returns on failure.
// It carries enough to both log (Err) and answer the client (Code) without
// the two concerns needing to agree on representation.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error

	// RetryAfterSeconds is only meaningful for ErrCodeServiceUnavailable; it
	// is rendered as the response's Retry-After header.
	RetryAfterSeconds int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ToS3Error maps the domain error to the wire-level S3 error taxonomy.
func (e *Error) ToS3Error() s3err.ErrorCode {
	switch e.Code {
	case ErrCodeNoSuchBucket:
		return s3err.ErrNoSuchBucket
	case ErrCodeNoSuchKey:
		return s3err.ErrNoSuchKey
	case ErrCodeInvalidRange:
		return s3err.ErrInvalidRange
	case ErrCodeNotModified:
		return s3err.ErrNotModified
	case ErrCodePreconditionFailed:
		return s3err.ErrPreconditionFailed
	case ErrCodeServiceUnavailable:
		return s3err.ErrServiceUnavailable
	case ErrCodeAccessDenied:
		return s3err.ErrAccessDenied
	default:
		return s3err.ErrInternalError
	}
}

func newNoSuchBucketError() *Error {
	return &Error{Code: ErrCodeNoSuchBucket, Message: "bucket not found"}
}

func newNoSuchKeyError() *Error {
	return &Error{Code: ErrCodeNoSuchKey, Message: "object not found"}
}

func newInvalidRangeError() *Error {
	return &Error{Code: ErrCodeInvalidRange, Message: "the requested range is not satisfiable"}
}

func newBucketOwnerMismatchError() *Error {
	return &Error{Code: ErrCodeAccessDenied, Message: "the bucket owner did not match the expected bucket owner"}
}

// newServiceUnavailableError builds a 503. retryAfter is the number of
// seconds to advertise; callers outside a graceful shutdown should pass 1.
func newServiceUnavailableError(msg string, retryAfter int) *Error {
	if retryAfter <= 0 {
		retryAfter = 1
	}
	return &Error{Code: ErrCodeServiceUnavailable, Message: msg, RetryAfterSeconds: retryAfter}
}

func newInternalError(err error) *Error {
	return &Error{Code: ErrCodeInternalError, Message: "internal error", Err: err}
}

// IsNotFound reports whether err is a no-such-bucket or no-such-key domain error.
func IsNotFound(err error) bool {
	e, ok := err.(*Error)
	return ok && (e.Code == ErrCodeNoSuchBucket || e.Code == ErrCodeNoSuchKey)
}
