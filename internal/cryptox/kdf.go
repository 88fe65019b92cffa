// Package cryptox implements the password-verification primitives of the
// journal client: a salted, iterated key-derivation function that turns a
// password into a fixed-length verifier, and a constant-time comparison for
// verifier strings.
//
// Key derivation is exposed behind the KeyDeriver capability interface with
// exactly two implementations: PBKDF2Deriver for normal operation and
// UnavailableDeriver for environments without a usable secure primitive.
// The implementation is chosen once at startup and injected into the
// authentication engine, never checked ad hoc at call sites.
package cryptox

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/ericmacharia6907-max/365/internal/common"
)

const (
	// DefaultIterations is the PBKDF2 iteration count used for all newly
	// created verifiers. Records may carry their own (historical) count.
	DefaultIterations = 120000

	// SaltSize is the per-account salt length in bytes.
	SaltSize = 16

	// VerifierSize is the derived verifier length in bytes.
	VerifierSize = 32
)

// KeyDeriver derives a fixed-length verifier from a password.
type KeyDeriver interface {
	// DeriveVerifier computes a VerifierSize-byte verifier from password,
	// salt and the iteration count. Deterministic for identical inputs.
	DeriveVerifier(password, salt []byte, iterations int) ([]byte, error)
}

// PBKDF2Deriver derives verifiers with PBKDF2-HMAC-SHA-256.
type PBKDF2Deriver struct{}

func NewPBKDF2Deriver() *PBKDF2Deriver { return &PBKDF2Deriver{} }

func (d *PBKDF2Deriver) DeriveVerifier(password, salt []byte, iterations int) ([]byte, error) {
	if len(salt) < SaltSize {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", common.ErrInvalidInput, SaltSize)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be positive", common.ErrInvalidInput)
	}
	return pbkdf2.Key(password, salt, iterations, VerifierSize, sha256.New), nil
}

// UnavailableDeriver always fails with common.ErrCryptoUnavailable. It stands
// in for runtimes where no secure key-derivation primitive exists, so callers
// surface a blocking error instead of falling back to plaintext.
type UnavailableDeriver struct{}

func NewUnavailableDeriver() *UnavailableDeriver { return &UnavailableDeriver{} }

func (d *UnavailableDeriver) DeriveVerifier(password, salt []byte, iterations int) ([]byte, error) {
	return nil, common.ErrCryptoUnavailable
}

// GenerateSalt returns a fresh SaltSize-byte random salt.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}
