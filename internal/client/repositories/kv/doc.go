// Package kv provides the key-value backends behind the persistence store.
//
// # Contract
//
// Repository is a small capability interface: values are opaque byte slices
// addressed by string keys. Get returns (nil, nil) when the key is absent, so
// callers distinguish "nothing stored yet" from a failing backend. Delete is
// idempotent.
//
// Implementations
//
//   - SQLiteRepository: local file (modernc.org/sqlite), default backend
//   - MemoryRepository: process-local map, used for tests and -s memory
//   - RedisRepository: go-redis client, keys namespaced by a prefix
//
// There is no cross-key transaction; concurrent writers to one key race with
// last-write-wins semantics.
package kv
