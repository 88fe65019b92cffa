package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ericmacharia6907-max/365/internal/auth"
	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/logging"
	"github.com/ericmacharia6907-max/365/internal/storage"
)

// Service reads and writes one user's entries and settings partitions.
// Reads degrade to empty data on any failure; writes surface
// common.ErrPersistence.
type Service struct {
	store storage.Store
	log   logging.Logger
	now   func() time.Time
}

func NewService(store storage.Store, log logging.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// Entries loads the user's entries. An empty username resolves to no
// namespace key and yields no data.
func (s *Service) Entries(ctx context.Context, username string) Entries {
	key := auth.EntriesKey(username)
	if key == "" {
		return Entries{}
	}
	return s.loadEntries(ctx, s.store, key)
}

func (s *Service) loadEntries(ctx context.Context, kv storage.KV, key string) Entries {
	data, err := kv.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "entries read failed, treating as empty", "key", key, "error", err)
		return Entries{}
	}
	if len(data) == 0 {
		return Entries{}
	}
	var entries Entries
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn(ctx, "entries malformed, treating as empty", "key", key, "error", err)
		return Entries{}
	}
	if entries == nil {
		return Entries{}
	}
	return entries
}

func saveEntries(ctx context.Context, kv storage.KV, key string, entries Entries) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: marshal entries: %w", common.ErrPersistence, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: write entries: %w", common.ErrPersistence, err)
	}
	return nil
}

// UpsertEntry validates and writes the entry for dateKey, returning the
// stored form. Future dates are rejected; writing "today" is always allowed.
func (s *Service) UpsertEntry(ctx context.Context, username, dateKey, text, mood string) (Entry, error) {
	key := auth.EntriesKey(username)
	if key == "" {
		return Entry{}, fmt.Errorf("%w: no user", common.ErrInvalidInput)
	}
	if !ValidDateKey(dateKey) {
		return Entry{}, fmt.Errorf("%w: invalid date key %q", common.ErrInvalidInput, dateKey)
	}
	day, err := ParseDateKey(dateKey)
	if err != nil {
		return Entry{}, err
	}
	if today, _ := ParseDateKey(DateKey(s.now())); day.After(today) {
		return Entry{}, fmt.Errorf("%w: cannot write an entry for a future day", common.ErrInvalidInput)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, fmt.Errorf("%w: entry text is empty", common.ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > MaxEntryLen {
		return Entry{}, fmt.Errorf("%w: entry text exceeds %d characters", common.ErrInvalidInput, MaxEntryLen)
	}
	if !ValidMood(mood) {
		return Entry{}, fmt.Errorf("%w: unknown mood %q", common.ErrInvalidInput, mood)
	}

	entry := Entry{Text: text, Mood: mood, Timestamp: s.now().UnixMilli()}

	entries := s.loadEntries(ctx, s.store, key)
	entries[dateKey] = entry
	if err := saveEntries(ctx, s.store, key, entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// DeleteEntry removes the entry for dateKey and returns it, so callers can
// offer an undo. The bool reports whether anything was deleted.
func (s *Service) DeleteEntry(ctx context.Context, username, dateKey string) (Entry, bool, error) {
	key := auth.EntriesKey(username)
	if key == "" {
		return Entry{}, false, fmt.Errorf("%w: no user", common.ErrInvalidInput)
	}

	entries := s.loadEntries(ctx, s.store, key)
	removed, ok := entries[dateKey]
	if !ok {
		return Entry{}, false, nil
	}
	delete(entries, dateKey)
	if err := saveEntries(ctx, s.store, key, entries); err != nil {
		return Entry{}, false, err
	}
	return removed, true, nil
}

// RestoreEntry puts a previously deleted entry back without revalidation.
func (s *Service) RestoreEntry(ctx context.Context, username, dateKey string, entry Entry) error {
	key := auth.EntriesKey(username)
	if key == "" {
		return fmt.Errorf("%w: no user", common.ErrInvalidInput)
	}
	entries := s.loadEntries(ctx, s.store, key)
	entries[dateKey] = entry
	return saveEntries(ctx, s.store, key, entries)
}

// Settings loads the user's settings, falling back to defaults for missing
// or unreadable data and for unknown stored values.
func (s *Service) Settings(ctx context.Context, username string) Settings {
	def := DefaultSettings()
	key := auth.SettingsKey(username)
	if key == "" {
		return def
	}

	data, err := s.store.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return def
	}
	var st Settings
	if err := json.Unmarshal(data, &st); err != nil {
		return def
	}
	if !ValidTheme(st.Theme) {
		st.Theme = def.Theme
	}
	if !ValidColorScheme(st.ColorScheme) {
		st.ColorScheme = def.ColorScheme
	}
	return st
}

// SaveSettings validates and persists the user's settings.
func (s *Service) SaveSettings(ctx context.Context, username string, st Settings) error {
	key := auth.SettingsKey(username)
	if key == "" {
		return fmt.Errorf("%w: no user", common.ErrInvalidInput)
	}
	if !ValidTheme(st.Theme) {
		return fmt.Errorf("%w: unknown theme %q", common.ErrInvalidInput, st.Theme)
	}
	if !ValidColorScheme(st.ColorScheme) {
		return fmt.Errorf("%w: unknown color scheme %q", common.ErrInvalidInput, st.ColorScheme)
	}
	return saveSettings(ctx, s.store, key, st)
}

func saveSettings(ctx context.Context, kv storage.KV, key string, st Settings) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("%w: marshal settings: %w", common.ErrPersistence, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: write settings: %w", common.ErrPersistence, err)
	}
	return nil
}
