// Package storage implements the journal's local persistence medium: a flat
// key/value store holding one serialized document per key (the credential
// store, the session pointer, and the per-user entries/settings partitions).
//
// Two implementations are provided: a SQLite-backed store for real use and
// an in-memory store for tests. Writes to a missing or rejected medium are
// surfaced to the caller; interpreting read failures (degrading to "no
// data") is the caller's policy, not this package's.
package storage

import "context"

// KV is the minimal key/value surface of the medium. Get returns (nil, nil)
// for an absent key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is a KV that can additionally group writes atomically. Callers that
// update several partitions together (e.g. a backup import writing entries
// and settings) should do so inside InTx.
type Store interface {
	KV

	// InTx runs fn against a transactional view of the store, committing on
	// nil and rolling back on error.
	InTx(ctx context.Context, fn func(kv KV) error) error
}
