// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import "github.com/driftfs/objectgw/pkg/utils"

// buffer wraps a pooled byte slice (see pkg/utils buffer pool) with the two
// operations the read loop needs: dropping already-consumed bytes off the
// front (the backend adapter's block alignment overreads the leading edge),
// and trimming the tail once enough content bytes have been produced.
type buffer struct {
	data []byte
	off  int
}

func newBuffer(size int) *buffer {
	return &buffer{data: utils.GetBuffer(size)}
}

// Bytes returns the unconsumed portion of the buffer.
func (b *buffer) Bytes() []byte {
	return b.data[b.off:]
}

// Len returns the number of unconsumed bytes.
func (b *buffer) Len() int {
	return len(b.data) - b.off
}

// DrainFront discards n unconsumed bytes from the front of the buffer.
func (b *buffer) DrainFront(n int) {
	b.off += n
	if b.off > len(b.data) {
		b.off = len(b.data)
	}
}

// TrimTo shortens the unconsumed tail to at most n bytes.
func (b *buffer) TrimTo(n int) {
	if n < b.Len() {
		b.data = b.data[:b.off+n]
	}
}

// Release returns the backing slice to the pool. The buffer must not be
// used after calling Release.
func (b *buffer) Release() {
	if b.data != nil {
		utils.PutBuffer(b.data)
		b.data = nil
	}
}
