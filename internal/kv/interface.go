package kv

import "context"

// Store is durable string-keyed storage for small JSON blobs.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent; absence is not an error.
//   - Set replaces any prior value for the key.
//   - Delete of a missing key is a no-op.
//
// All methods honor context cancellation where the backend supports it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
