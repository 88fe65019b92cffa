package auth

import (
	"context"
	"fmt"

	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/storage"
)

// currentUserKey is the storage key holding the persisted session pointer.
const currentUserKey = "current_user"

// Session tracks which username is currently logged in across restarts.
// It is set only after a successful authentication when the user opted into
// persistence ("remember me"), and cleared otherwise. The pointer is
// independent of the credential store: a dangling username must be treated
// by callers as "not logged in".
type Session struct {
	kv storage.KV
}

func NewSession(kv storage.KV) *Session {
	return &Session{kv: kv}
}

// Get returns the remembered username, or "" when none. Read failures
// degrade to "" rather than erroring: the worst outcome is an extra login
// prompt.
func (s *Session) Get(ctx context.Context) string {
	data, err := s.kv.Get(ctx, currentUserKey)
	if err != nil {
		return ""
	}
	return string(data)
}

// Set persists username as the current session pointer.
func (s *Session) Set(ctx context.Context, username string) error {
	if err := s.kv.Set(ctx, currentUserKey, []byte(username)); err != nil {
		return fmt.Errorf("%w: write session pointer: %w", common.ErrPersistence, err)
	}
	return nil
}

// Clear removes the session pointer. Dropping any in-memory user-scoped
// state is the caller's responsibility.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("%w: clear session pointer: %w", common.ErrPersistence, err)
	}
	return nil
}
