package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/logging"
	"github.com/ericmacharia6907-max/365/internal/storage"
)

// usersKey is the storage key holding the serialized credential store.
const usersKey = "users"

// Store persists the username → Record mapping as a single serialized
// document. The authentication engine is its only writer.
//
// The whole mapping is written in one Set, so a read-modify-write from a
// concurrent process races last-writer-wins. In-process attempts are
// serialized by the engine.
type Store struct {
	kv  storage.KV
	log logging.Logger
}

func NewStore(kv storage.KV, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Load reads the credential store. It never fails: a missing key, a read
// error, or malformed data all degrade to an empty mapping so a user can
// still sign up when the medium misbehaves.
func (s *Store) Load(ctx context.Context) map[string]Record {
	data, err := s.kv.Get(ctx, usersKey)
	if err != nil {
		s.log.Warn(ctx, "credential store read failed, starting empty", "error", err)
		return map[string]Record{}
	}
	if len(data) == 0 {
		return map[string]Record{}
	}

	var users map[string]Record
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Warn(ctx, "credential store malformed, starting empty", "error", err)
		return map[string]Record{}
	}
	if users == nil {
		return map[string]Record{}
	}
	return users
}

// Save serializes and writes the full mapping. Write failures are wrapped
// in common.ErrPersistence and must be surfaced to the user.
func (s *Store) Save(ctx context.Context, users map[string]Record) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("%w: marshal credential store: %w", common.ErrPersistence, err)
	}
	if err := s.kv.Set(ctx, usersKey, data); err != nil {
		return fmt.Errorf("%w: write credential store: %w", common.ErrPersistence, err)
	}
	return nil
}
