// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package objectget

import (
	"context"
	"sync"

	"github.com/driftfs/objectgw/pkg/types"
)

// BucketStore answers whether a bucket exists. FetchBucket is the action
// state machine's first lookup; a miss here short-circuits straight to
// ErrCodeNoSuchBucket without ever touching the object store.
type BucketStore interface {
	FetchBucket(ctx context.Context, bucket string) (bool, error)

	// BucketOwner returns the account ID that owns bucket, or "" if no
	// owner has been recorded for it. It is only consulted when a request
	// carries x-amz-expected-bucket-owner.
	BucketOwner(ctx context.Context, bucket string) (string, error)
}

// ObjectStore resolves an object's metadata record. A miss (ok == false)
// is translated to ErrCodeNoSuchKey; a hit with IsDeleted() true is treated
// identically, since a tombstoned object is not retrievable.
type ObjectStore interface {
	FetchObject(ctx context.Context, bucket, key string) (*types.ObjectMetadata, bool, error)
}

// MemoryStore is an in-process BucketStore/ObjectStore backed by a map. It
// is the metadata-side counterpart to backend.MemoryStorage: enough to
// drive the action state machine end to end in tests without a real
// metadata service.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]bool
	owners  map[string]string
	objects map[string]*types.ObjectMetadata // keyed by bucket + "/" + key
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]bool),
		owners:  make(map[string]string),
		objects: make(map[string]*types.ObjectMetadata),
	}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

// PutBucket registers a bucket as existing.
func (s *MemoryStore) PutBucket(bucket string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[bucket] = true
}

// PutBucketOwner records the account ID that owns bucket, for
// x-amz-expected-bucket-owner validation. The bucket must already exist via
// PutBucket.
func (s *MemoryStore) PutBucketOwner(bucket, owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[bucket] = owner
}

// PutObject registers an object's metadata record.
func (s *MemoryStore) PutObject(meta *types.ObjectMetadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectKey(meta.Bucket, meta.Key)] = meta
}

// FetchBucket implements BucketStore.
func (s *MemoryStore) FetchBucket(_ context.Context, bucket string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buckets[bucket], nil
}

// BucketOwner implements BucketStore.
func (s *MemoryStore) BucketOwner(_ context.Context, bucket string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owners[bucket], nil
}

// FetchObject implements ObjectStore.
func (s *MemoryStore) FetchObject(_ context.Context, bucket, key string) (*types.ObjectMetadata, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.objects[objectKey(bucket, key)]
	return meta, ok, nil
}
