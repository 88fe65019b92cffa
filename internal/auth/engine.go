package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/cryptox"
	"github.com/ericmacharia6907-max/365/internal/logging"
)

const (
	minUsernameLen = 3
	minPasswordLen = 4
)

// Engine orchestrates signup and login. It is the single writer of the
// credential store; UI-facing code never mutates credentials directly.
//
// All failures are returned as sentinel errors from internal/common and are
// never retried automatically. Login deliberately reports the same
// ErrInvalidCredentials for an unknown username, a wrong password, and a
// corrupt record.
type Engine struct {
	mu      sync.Mutex
	store   *Store
	deriver cryptox.KeyDeriver
	log     logging.Logger
	now     func() time.Time
}

func NewEngine(store *Store, deriver cryptox.KeyDeriver, log logging.Logger) *Engine {
	return &Engine{store: store, deriver: deriver, log: log, now: time.Now}
}

// validate normalizes and checks the credentials common to both flows.
// It returns the trimmed username.
func validate(username string, password []byte) (string, error) {
	username = strings.TrimSpace(username)
	if utf8.RuneCountInString(username) < minUsernameLen {
		return "", fmt.Errorf("%w: username must be at least %d characters", common.ErrInvalidInput, minUsernameLen)
	}
	if utf8.RuneCount(password) < minPasswordLen {
		return "", fmt.Errorf("%w: password must be at least %d characters", common.ErrInvalidInput, minPasswordLen)
	}
	return username, nil
}

// SignUp creates a new salted account and returns the normalized username.
//
// Signup never writes a legacy record: if key derivation is unavailable the
// whole operation fails with common.ErrCryptoUnavailable.
func (e *Engine) SignUp(ctx context.Context, username string, password []byte) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	username, err := validate(username, password)
	if err != nil {
		return "", err
	}

	users := e.store.Load(ctx)
	if _, exists := users[username]; exists {
		return "", common.ErrUsernameTaken
	}

	salt := cryptox.GenerateSalt()
	verifier, err := e.deriver.DeriveVerifier(password, salt, cryptox.DefaultIterations)
	if err != nil {
		return "", err
	}

	users[username] = NewSaltedRecord(e.now().UnixMilli(), cryptox.DefaultIterations, salt, verifier)
	if err := e.store.Save(ctx, users); err != nil {
		return "", err
	}

	e.log.Info(ctx, "account created", "username", username)
	return username, nil
}

// HasUser reports whether a credential record exists for username. It is
// used to detect a dangling session pointer after a restart.
func (e *Engine) HasUser(ctx context.Context, username string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.store.Load(ctx)[username]
	return ok
}

// Login authenticates username/password and returns the normalized username.
//
// Logging in against a legacy record has a documented side effect: on
// success, the record is replaced in place with an equivalent salted record
// (fresh salt, default iterations, original CreatedAt). When key derivation
// is unavailable the legacy record is left untouched and login still
// succeeds; the migration is deferred, not blocking.
func (e *Engine) Login(ctx context.Context, username string, password []byte) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	username, err := validate(username, password)
	if err != nil {
		return "", err
	}

	users := e.store.Load(ctx)
	rec, exists := users[username]
	if !exists {
		return "", common.ErrInvalidCredentials
	}

	switch rec.Kind() {
	case KindSalted:
		if err := e.verifySalted(rec, password); err != nil {
			return "", err
		}
		e.log.Info(ctx, "login ok", "username", username)
		return username, nil

	case KindLegacy:
		// Deprecated path; exact comparison is acceptable here.
		if rec.Legacy.Password != string(password) {
			return "", common.ErrInvalidCredentials
		}
		if err := e.migrateLegacy(ctx, users, username, rec, password); err != nil {
			return "", err
		}
		e.log.Info(ctx, "login ok", "username", username)
		return username, nil

	default:
		e.log.Warn(ctx, "corrupt credential record", "username", username)
		return "", common.ErrInvalidCredentials
	}
}

func (e *Engine) verifySalted(rec Record, password []byte) error {
	salt, err := base64.StdEncoding.DecodeString(rec.Salted.Salt)
	if err != nil {
		return common.ErrInvalidCredentials
	}

	iterations := rec.Salted.Iterations
	if iterations <= 0 {
		iterations = cryptox.DefaultIterations
	}

	derived, err := e.deriver.DeriveVerifier(password, salt, iterations)
	if err != nil {
		if errors.Is(err, common.ErrCryptoUnavailable) {
			return common.ErrCryptoUnavailable
		}
		// The stored salt or iteration count is unusable; the record is
		// effectively corrupt.
		return common.ErrInvalidCredentials
	}
	defer common.WipeByteArray(derived)

	if !cryptox.ConstantTimeEqual(base64.StdEncoding.EncodeToString(derived), rec.Salted.Verifier) {
		return common.ErrInvalidCredentials
	}
	return nil
}

// migrateLegacy replaces a verified legacy record with a salted one carrying
// the original CreatedAt. The store is only ever updated with the complete
// new record; if derivation is unavailable the record stays as it is.
func (e *Engine) migrateLegacy(ctx context.Context, users map[string]Record, username string, rec Record, password []byte) error {
	salt := cryptox.GenerateSalt()
	verifier, err := e.deriver.DeriveVerifier(password, salt, cryptox.DefaultIterations)
	if err != nil {
		// Migration is opportunistic: without a usable KDF the login still
		// succeeds and the plaintext record survives until a later login.
		e.log.Warn(ctx, "legacy record migration deferred", "username", username, "error", err)
		return nil
	}

	createdAt := rec.CreatedAt
	if createdAt == 0 {
		createdAt = e.now().UnixMilli()
	}

	users[username] = NewSaltedRecord(createdAt, cryptox.DefaultIterations, salt, verifier)
	if err := e.store.Save(ctx, users); err != nil {
		return err
	}

	e.log.Info(ctx, "legacy record migrated", "username", username)
	return nil
}
