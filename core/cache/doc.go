// Package cache provides the optional Redis cache for room search results.
//
// Keys carry the ledger generation id, so inserting or reloading rooms makes older
// entries unreachable without explicit invalidation; they expire through the TTL.
// When the cache is disabled New returns Noop and callers need no special casing.
package cache
