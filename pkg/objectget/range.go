// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"strconv"
	"strings"
)

// Range is a resolved, inclusive byte range against a known content length.
// Present is false when the request carried no usable Range header, in
// which case the full object should be served with a 200.
type Range struct {
	Present bool
	Start   uint64
	End     uint64 // inclusive
}

// Length returns the number of bytes the range covers.
func (r Range) Length() uint64 {
	if !r.Present {
		return 0
	}
	return r.End - r.Start + 1
}

// ParseRange parses the HTTP Range header against a known content length.
//
// Only a blank (or whitespace-only) header resolves to an absent range (full
// object, 200). Anything else must name the "bytes" unit with an "="; a
// missing "=" or a unit other than "bytes" is rejected with
// ErrCodeInvalidRange (416), matching the reference implementation's
// `bytes_unit != "bytes"` check.
//
// A comma-separated multi-range request is accepted at the unit/syntax level
// but degrades to serving the full object: RFC 7233 requires
// multipart/byteranges for those, which this gateway does not implement.
//
// A single range spec is also rejected with ErrCodeInvalidRange (416) when
// it is malformed (no "-", both sides empty, a non-numeric bound, an end
// before its start) or when it requests bytes outside the object (a
// zero-length suffix, a start past the end of the object). A well-formed
// range whose end runs past the object is clamped to the last byte, per
// RFC 7233 section 2.1.
func ParseRange(header string, contentLength uint64) (Range, error) {
	h := strings.TrimSpace(header)
	if h == "" {
		return Range{}, nil
	}
	eq := strings.IndexByte(h, '=')
	if eq < 0 {
		return Range{}, newInvalidRangeError()
	}
	unit := strings.TrimSpace(h[:eq])
	if unit != "bytes" {
		return Range{}, newInvalidRangeError()
	}
	spec := h[eq+1:]
	if strings.Contains(spec, ",") {
		return Range{}, nil
	}

	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return Range{}, newInvalidRangeError()
	}
	startStr := strings.TrimSpace(parts[0])
	endStr := strings.TrimSpace(parts[1])

	switch {
	case startStr == "" && endStr == "":
		return Range{}, newInvalidRangeError()

	case startStr == "":
		// Suffix range: "bytes=-N" — the last N bytes of the object.
		suffix, err := strconv.ParseUint(endStr, 10, 64)
		if err != nil || suffix == 0 || contentLength == 0 {
			return Range{}, newInvalidRangeError()
		}
		if suffix > contentLength {
			suffix = contentLength
		}
		return Range{Present: true, Start: contentLength - suffix, End: contentLength - 1}, nil

	case endStr == "":
		// Open-ended range: "bytes=N-"
		start, err := strconv.ParseUint(startStr, 10, 64)
		if err != nil || start >= contentLength {
			return Range{}, newInvalidRangeError()
		}
		return Range{Present: true, Start: start, End: contentLength - 1}, nil

	default:
		// Closed range: "bytes=N-M"
		start, errS := strconv.ParseUint(startStr, 10, 64)
		end, errE := strconv.ParseUint(endStr, 10, 64)
		if errS != nil || errE != nil || end < start {
			return Range{}, newInvalidRangeError()
		}
		if start >= contentLength {
			return Range{}, newInvalidRangeError()
		}
		if end >= contentLength {
			end = contentLength - 1
		}
		return Range{Present: true, Start: start, End: end}, nil
	}
}
