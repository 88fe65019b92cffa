package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ericmacharia6907-max/365/internal/auth"
	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/storage"
)

const (
	// BackupApp identifies backup documents produced by this application.
	BackupApp = "365-journal"
	// BackupVersion is the current backup document version.
	BackupVersion = 1
)

// ErrImportCancelled is returned when the user declines to overwrite
// conflicting days during an import.
var ErrImportCancelled = errors.New("import cancelled")

// Backup is the export document: one user's full entries and settings.
// It never contains credentials.
type Backup struct {
	App        string   `json:"app"`
	Version    int      `json:"version"`
	ExportedAt string   `json:"exportedAt"`
	User       string   `json:"user"`
	Entries    Entries  `json:"entries"`
	Settings   Settings `json:"settings"`
}

// Export assembles a backup document for the user.
func (s *Service) Export(ctx context.Context, username string) (*Backup, error) {
	if auth.EntriesKey(username) == "" {
		return nil, fmt.Errorf("%w: no user", common.ErrInvalidInput)
	}
	return &Backup{
		App:        BackupApp,
		Version:    BackupVersion,
		ExportedAt: s.now().UTC().Format(time.RFC3339),
		User:       username,
		Entries:    s.Entries(ctx, username),
		Settings:   s.Settings(ctx, username),
	}, nil
}

// DefaultBackupName returns the conventional backup file name for a user.
func DefaultBackupName(username string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s.json", BackupApp, username, DateKey(now))
}

// ExportToFile writes the user's backup document to path. The write goes
// through a uniquely named temp file in the target directory followed by a
// rename, so a crash can not leave a torn backup behind.
func (s *Service) ExportToFile(ctx context.Context, username, path string) error {
	b, err := s.Export(ctx, username)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: write backup: %w", common.ErrPersistence, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: finalize backup: %w", common.ErrPersistence, err)
	}
	return nil
}

// backupWire tolerates loosely shaped documents on import: entries may be
// bare strings or objects with extra fields.
type backupWire struct {
	App      string                     `json:"app"`
	Version  int                        `json:"version"`
	User     string                     `json:"user"`
	Entries  map[string]json.RawMessage `json:"entries"`
	Settings *Settings                  `json:"settings"`
}

// normalizeImportedEntry coerces a raw imported value into an Entry.
// Returns false for values with no usable text.
func normalizeImportedEntry(raw json.RawMessage) (Entry, bool) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return normalizeText(Entry{Text: text})
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return Entry{}, false
	}
	if !ValidMood(e.Mood) {
		e.Mood = ""
	}
	return normalizeText(e)
}

func normalizeText(e Entry) (Entry, bool) {
	e.Text = strings.TrimSpace(e.Text)
	if e.Text == "" {
		return Entry{}, false
	}
	if utf8.RuneCountInString(e.Text) > MaxEntryLen {
		runes := []rune(e.Text)
		e.Text = string(runes[:MaxEntryLen])
	}
	return e, true
}

// NormalizeImportedEntries keeps only entries with a valid date key and
// non-empty text after normalization; everything else is silently dropped.
func NormalizeImportedEntries(raw map[string]json.RawMessage) Entries {
	out := Entries{}
	for k, v := range raw {
		if !ValidDateKey(k) {
			continue
		}
		e, ok := normalizeImportedEntry(v)
		if !ok {
			continue
		}
		out[k] = e
	}
	return out
}

// ImportResult summarizes an applied import.
type ImportResult struct {
	Imported  int
	Conflicts []string
}

// Import merges a backup document into the user's partitions. Same-date
// entries are overwritten only after confirm approves the conflict list;
// valid imported settings replace the current ones. Entries and settings
// are written in one storage transaction. The credential store is never
// touched.
func (s *Service) Import(ctx context.Context, username string, data []byte, confirm func(imported int, conflicts []string) bool) (*ImportResult, error) {
	ns := auth.NamespaceFor(username)
	if ns.EntriesKey == "" {
		return nil, fmt.Errorf("%w: no user", common.ErrInvalidInput)
	}

	var doc backupWire
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: not a valid backup document", common.ErrInvalidInput)
	}

	imported := NormalizeImportedEntries(doc.Entries)
	if len(imported) == 0 {
		return &ImportResult{}, nil
	}

	existing := s.Entries(ctx, username)
	var conflicts []string
	for k := range imported {
		if _, ok := existing[k]; ok {
			conflicts = append(conflicts, k)
		}
	}
	if len(conflicts) > 0 && confirm != nil && !confirm(len(imported), conflicts) {
		return nil, ErrImportCancelled
	}

	for k, v := range imported {
		existing[k] = v
	}

	settings := s.Settings(ctx, username)
	if doc.Settings != nil {
		if ValidTheme(doc.Settings.Theme) {
			settings.Theme = doc.Settings.Theme
		}
		if ValidColorScheme(doc.Settings.ColorScheme) {
			settings.ColorScheme = doc.Settings.ColorScheme
		}
	}

	err := s.store.InTx(ctx, func(kv storage.KV) error {
		if err := saveEntries(ctx, kv, ns.EntriesKey, existing); err != nil {
			return err
		}
		return saveSettings(ctx, kv, ns.SettingsKey, settings)
	})
	if err != nil {
		if errors.Is(err, common.ErrPersistence) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: apply import: %w", common.ErrPersistence, err)
	}

	return &ImportResult{Imported: len(imported), Conflicts: conflicts}, nil
}
