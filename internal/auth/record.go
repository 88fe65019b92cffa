// Package auth implements the credential and local-data security layer of
// the journal client: the credential record store, the authentication
// engine with lazy migration of legacy plaintext records, the session
// pointer, and the per-user storage namespace resolver.
package auth

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
)

// RecordKind classifies the shape of a stored credential record.
type RecordKind int

const (
	// KindCorrupt marks a record matching neither known shape. It always
	// rejects authentication but is preserved byte-for-byte on save.
	KindCorrupt RecordKind = iota
	// KindLegacy marks a record holding a cleartext password. Only ever
	// read; never newly written.
	KindLegacy
	// KindSalted marks a record holding a salted PBKDF2 verifier.
	KindSalted
)

// saltedSchemaVersion is the schema version written for salted records.
const saltedSchemaVersion = 1

// LegacyCredentials is the deprecated cleartext shape.
type LegacyCredentials struct {
	Password string
}

// SaltedCredentials is the current shape: base64-encoded salt and verifier
// plus the iteration count the verifier was derived with. Iterations <= 0
// means "unknown, use the default".
type SaltedCredentials struct {
	Iterations int
	Salt       string
	Verifier   string
}

// Record is one user's credential record: a tagged variant of exactly one of
// the two shapes, plus the creation timestamp (epoch milliseconds), which
// survives migration. A Record with neither shape set is corrupt.
type Record struct {
	CreatedAt int64

	Legacy *LegacyCredentials
	Salted *SaltedCredentials

	// raw preserves the original serialized form of corrupt records so a
	// save triggered by some other user's migration cannot silently rewrite
	// data this code does not understand.
	raw json.RawMessage
}

// NewSaltedRecord builds a salted record from raw salt/verifier bytes.
func NewSaltedRecord(createdAt int64, iterations int, salt, verifier []byte) Record {
	return Record{
		CreatedAt: createdAt,
		Salted: &SaltedCredentials{
			Iterations: iterations,
			Salt:       base64.StdEncoding.EncodeToString(salt),
			Verifier:   base64.StdEncoding.EncodeToString(verifier),
		},
	}
}

// Kind reports the record's classification.
func (r Record) Kind() RecordKind {
	switch {
	case r.Salted != nil:
		return KindSalted
	case r.Legacy != nil:
		return KindLegacy
	default:
		return KindCorrupt
	}
}

// recordWire is the flat persisted form, compatible with records written by
// earlier releases of the app.
type recordWire struct {
	V          int             `json:"v,omitempty"`
	CreatedAt  int64           `json:"createdAt,omitempty"`
	Password   *string         `json:"password,omitempty"`
	Iterations json.RawMessage `json:"iterations,omitempty"`
	Salt       string          `json:"salt,omitempty"`
	Verifier   string          `json:"verifier,omitempty"`
}

// UnmarshalJSON classifies the stored bytes into one of the two recognized
// shapes. Anything else, including structurally invalid JSON, yields a
// corrupt record rather than an error, so one bad record cannot poison the
// whole credential store.
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = Record{}

	var w recordWire
	if err := json.Unmarshal(data, &w); err != nil {
		r.raw = append(json.RawMessage(nil), data...)
		return nil
	}

	r.CreatedAt = w.CreatedAt

	switch {
	case w.Salt != "" && w.Verifier != "":
		r.Salted = &SaltedCredentials{
			Iterations: coerceIterations(w.Iterations),
			Salt:       w.Salt,
			Verifier:   w.Verifier,
		}
	case w.Password != nil:
		r.Legacy = &LegacyCredentials{Password: *w.Password}
	default:
		r.raw = append(json.RawMessage(nil), data...)
	}
	return nil
}

// MarshalJSON writes the flat persisted form. Corrupt records round-trip
// their original bytes.
func (r Record) MarshalJSON() ([]byte, error) {
	switch r.Kind() {
	case KindSalted:
		return json.Marshal(recordWire{
			V:          saltedSchemaVersion,
			CreatedAt:  r.CreatedAt,
			Iterations: json.RawMessage(strconv.Itoa(r.Salted.Iterations)),
			Salt:       r.Salted.Salt,
			Verifier:   r.Salted.Verifier,
		})
	case KindLegacy:
		return json.Marshal(recordWire{
			CreatedAt: r.CreatedAt,
			Password:  &r.Legacy.Password,
		})
	default:
		if len(r.raw) > 0 {
			return append(json.RawMessage(nil), r.raw...), nil
		}
		return []byte("{}"), nil
	}
}

// coerceIterations interprets the persisted iteration count leniently:
// numbers and numeric strings are accepted, anything else maps to 0
// ("unknown"), for which callers substitute the default count.
func coerceIterations(raw json.RawMessage) int {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}
