// Package kv defines the key-value store contract shared by the rate limiter
// and the metadata cache. The store is treated as an external collaborator
// with eventual-consistency semantics: reads may be slightly stale, writes
// are unconditional overwrites, and every value carries a TTL.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist or has expired.
var ErrNotFound = errors.New("kv: key not found")

// Store is the minimal key-value capability the core depends on.
// Both namespaces (ratelimit:* and metadata:*) live in the same store;
// prefix discipline keeps them apart.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
