// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

// BlockPlan translates a requested byte range into the block-aligned read
// the backend reader adapter issues, plus the trim needed to hand back
// exactly the requested bytes once the aligned read comes back.
type BlockPlan struct {
	UnitSize uint64

	// FirstBlock/LastBlock are the inclusive stripe-unit indices covering
	// the requested range.
	FirstBlock uint64
	LastBlock  uint64

	// BackendOffset/BackendLength describe the block-aligned read to issue
	// against the backend: BackendOffset is always a multiple of UnitSize.
	BackendOffset uint64
	BackendLength uint64

	// LeadingTrim is how many bytes at the front of the backend read must
	// be dropped before the first requested byte.
	LeadingTrim uint64

	// ContentLength is the number of bytes the caller actually asked for
	// (Range.Length()), after which the stream must be cut off.
	ContentLength uint64
}

// TotalBlocks returns ceil(size/unitSize), the number of stripe units an
// object of the given size occupies.
func TotalBlocks(unitSize, size uint64) uint64 {
	if unitSize == 0 {
		return 0
	}
	return (size + unitSize - 1) / unitSize
}

// PlanBlocks computes the block-aligned backend read for a resolved Range.
//
// Block indices use floor(offset/unitSize) rather than the ceil-biased
// "(offset+unitSize)/unitSize" form seen in some stripe-store implementations;
// the two agree everywhere except they require an extra -1 correction term,
// and floor division reads the same without it.
func PlanBlocks(unitSize uint64, objectSize uint64, r Range) BlockPlan {
	start, end := r.Start, r.End
	firstBlock := start / unitSize
	lastBlock := end / unitSize

	backendOffset := firstBlock * unitSize
	backendEnd := (lastBlock + 1) * unitSize
	if backendEnd > objectSize {
		backendEnd = objectSize
	}

	return BlockPlan{
		UnitSize:      unitSize,
		FirstBlock:    firstBlock,
		LastBlock:     lastBlock,
		BackendOffset: backendOffset,
		BackendLength: backendEnd - backendOffset,
		LeadingTrim:   start - backendOffset,
		ContentLength: r.Length(),
	}
}
