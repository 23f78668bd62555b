// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/driftfs/objectgw/pkg/s3api/s3types"
)

// LayoutID identifies a stripe-unit layout in the LayoutTable.
type LayoutID uint32

// Layout describes the block geometry a given LayoutID maps to: every object
// stored under this layout is read from its backend in UnitSize-sized,
// UnitSize-aligned blocks.
type Layout struct {
	ID       LayoutID `json:"id"`
	UnitSize uint64   `json:"unit_size"` // bytes per stripe unit; must be > 0
}

// LayoutTable resolves a LayoutID to its block geometry. It is populated at
// startup from static configuration; lookups never touch the backend.
type LayoutTable struct {
	layouts map[LayoutID]Layout
}

// NewLayoutTable builds a lookup table from a fixed set of layouts.
func NewLayoutTable(layouts ...Layout) *LayoutTable {
	t := &LayoutTable{layouts: make(map[LayoutID]Layout, len(layouts))}
	for _, l := range layouts {
		t.layouts[l.ID] = l
	}
	return t
}

// Lookup returns the Layout for id, and whether it was found.
func (t *LayoutTable) Lookup(id LayoutID) (Layout, bool) {
	l, ok := t.layouts[id]
	return l, ok
}

// DefaultLayoutTable is the out-of-the-box geometry: a single layout with a
// 1 MiB stripe unit, matching the size used throughout the testable
// properties' worked examples.
func DefaultLayoutTable() *LayoutTable {
	return NewLayoutTable(Layout{ID: 0, UnitSize: 1 << 20})
}

// ObjectMetadata is the per-object record the gateway needs to serve a GET:
// enough to validate conditional headers, resolve a range against object
// size, and find the single backend that holds the bytes.
type ObjectMetadata struct {
	ID           uuid.UUID `json:"id"`
	Bucket       string    `json:"bucket"`
	Key          string    `json:"key"`
	Size         uint64    `json:"size"`
	ETag         string    `json:"etag"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
	DeletedAt    int64     `json:"deleted_at,omitempty"`

	// LayoutID selects the stripe-unit geometry (see LayoutTable) that
	// governs how ReadRange offsets must be block-aligned for BackendKey.
	LayoutID LayoutID `json:"layout_id"`

	// BackendID names the registered backend.Manager entry holding the
	// object's bytes, and BackendKey is the key within that backend.
	BackendID  string `json:"backend_id"`
	BackendKey string `json:"backend_key"`

	// StorageClass is echoed back as x-amz-storage-class when set to
	// anything other than the standard class.
	StorageClass s3types.StorageClass `json:"storage_class,omitempty"`

	// UserAttributes holds the object's user metadata (the "name" half of
	// each x-amz-meta-name: value pair), echoed verbatim on every response.
	UserAttributes map[string]string `json:"user_attributes,omitempty"`

	// TagCount is the number of tags attached to the object. It is echoed
	// as x-amz-tagging-count only when nonzero.
	TagCount int `json:"tag_count,omitempty"`
}

// IsDeleted reports whether the object has been tombstoned.
func (m *ObjectMetadata) IsDeleted() bool {
	return m.DeletedAt > 0
}
