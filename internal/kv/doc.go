// Package kv provides the device-local persistence layer for the storefront.
//
// # Overview
//
// The package defines a Store interface for durable string-keyed blobs and two
// implementations: SQLiteStore (backed by a single kv table over dbx.DBTX) and
// MemoryStore (for tests). Open applies the embedded goose migrations, which
// also create the inquiry tables used by internal/inquiry.
//
// # Semantics
//
// A missing key is not an error: Get returns (nil, nil). Set is a full
// replacement of the prior value. Delete is idempotent. Higher layers store
// JSON blobs (session profile, account registry, wishlist) under fixed keys.
//
// Typical usage:
//
//	db, _ := kv.Open(ctx, "storefront.db")
//	store := kv.NewSQLiteStore(db)
//	_ = store.Set(ctx, "profile", data)
//	data, _ = store.Get(ctx, "profile")
package kv
