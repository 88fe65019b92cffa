package journal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericmacharia6907-max/365/internal/auth"
	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/logging"
	"github.com/ericmacharia6907-max/365/internal/storage"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// faultyStore fails selected operations; everything else delegates to a
// MemoryStore.
type faultyStore struct {
	*storage.MemoryStore
	getErr error
	setErr error
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func newService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	svc := NewService(kv, discardLogger())
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local) }
	return svc, kv
}

func TestUpsertEntry_WriteAndRead(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	entry, err := svc.UpsertEntry(ctx, "alex", "2024-06-15", "  walked by the river  ", MoodHappy)
	require.NoError(t, err)
	assert.Equal(t, "walked by the river", entry.Text)
	assert.Equal(t, MoodHappy, entry.Mood)
	assert.NotZero(t, entry.Timestamp)

	entries := svc.Entries(ctx, "alex")
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries["2024-06-15"])
}

func TestUpsertEntry_OverwritesSameDay(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.UpsertEntry(ctx, "alex", "2024-06-14", "first", "")
	require.NoError(t, err)
	_, err = svc.UpsertEntry(ctx, "alex", "2024-06-14", "second", MoodNeutral)
	require.NoError(t, err)

	entries := svc.Entries(ctx, "alex")
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries["2024-06-14"].Text)
}

func TestUpsertEntry_Validation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		user string
		key  string
		text string
		mood string
	}{
		{"no user", "", "2024-06-15", "hi", ""},
		{"bad date key", "alex", "june 15", "hi", ""},
		{"future day", "alex", "2024-06-16", "hi", ""},
		{"empty text", "alex", "2024-06-15", "   ", ""},
		{"too long", "alex", "2024-06-15", strings.Repeat("x", MaxEntryLen+1), ""},
		{"unknown mood", "alex", "2024-06-15", "hi", "ecstatic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpsertEntry(ctx, tc.user, tc.key, tc.text, tc.mood)
			require.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestUpsertEntry_TodayIsAllowed(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.UpsertEntry(context.Background(), "alex", "2024-06-15", "today", "")
	require.NoError(t, err)
}

func TestUpsertEntry_MaxLengthIsAllowed(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.UpsertEntry(context.Background(), "alex", "2024-06-15", strings.Repeat("x", MaxEntryLen), "")
	require.NoError(t, err)
}

func TestEntries_UsersArePartitioned(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.UpsertEntry(ctx, "alice", "2024-06-15", "alice's day", "")
	require.NoError(t, err)
	_, err = svc.UpsertEntry(ctx, "bob", "2024-06-15", "bob's day", "")
	require.NoError(t, err)

	assert.Equal(t, "alice's day", svc.Entries(ctx, "alice")["2024-06-15"].Text)
	assert.Equal(t, "bob's day", svc.Entries(ctx, "bob")["2024-06-15"].Text)
}

func TestEntries_ReadErrorDegradesToEmpty(t *testing.T) {
	kv := &faultyStore{MemoryStore: storage.NewMemoryStore(), getErr: errors.New("medium offline")}
	svc := NewService(kv, discardLogger())

	entries := svc.Entries(context.Background(), "alex")
	require.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestEntries_MalformedDataDegradesToEmpty(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, auth.EntriesKey("alex"), []byte("{broken")))

	svc := NewService(kv, discardLogger())
	assert.Empty(t, svc.Entries(ctx, "alex"))
}

func TestUpsertEntry_WriteErrorSurfaces(t *testing.T) {
	kv := &faultyStore{MemoryStore: storage.NewMemoryStore(), setErr: errors.New("quota exceeded")}
	svc := NewService(kv, discardLogger())
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local) }

	_, err := svc.UpsertEntry(context.Background(), "alex", "2024-06-15", "hi", "")
	require.ErrorIs(t, err, common.ErrPersistence)
}

func TestDeleteEntry_ReturnsRemovedForUndo(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	written, err := svc.UpsertEntry(ctx, "alex", "2024-06-14", "oops", MoodSad)
	require.NoError(t, err)

	removed, ok, err := svc.DeleteEntry(ctx, "alex", "2024-06-14")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, written, removed)
	assert.Empty(t, svc.Entries(ctx, "alex"))

	// Undo.
	require.NoError(t, svc.RestoreEntry(ctx, "alex", "2024-06-14", removed))
	assert.Equal(t, written, svc.Entries(ctx, "alex")["2024-06-14"])
}

func TestDeleteEntry_MissingIsNotAnError(t *testing.T) {
	svc, _ := newService(t)
	_, ok, err := svc.DeleteEntry(context.Background(), "alex", "2024-06-14")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettings_DefaultsWhenMissing(t *testing.T) {
	svc, _ := newService(t)
	assert.Equal(t, DefaultSettings(), svc.Settings(context.Background(), "alex"))
}

func TestSettings_SaveAndLoad(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	want := Settings{Theme: ThemeDark, ColorScheme: "ocean"}
	require.NoError(t, svc.SaveSettings(ctx, "alex", want))
	assert.Equal(t, want, svc.Settings(ctx, "alex"))

	// Another user still sees defaults.
	assert.Equal(t, DefaultSettings(), svc.Settings(ctx, "bob"))
}

func TestSettings_UnknownStoredValuesFallBackToDefaults(t *testing.T) {
	kv := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, auth.SettingsKey("alex"), []byte(`{"theme":"neon","colorScheme":"plaid"}`)))

	svc := NewService(kv, discardLogger())
	assert.Equal(t, DefaultSettings(), svc.Settings(ctx, "alex"))
}

func TestSaveSettings_RejectsUnknownValues(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	err := svc.SaveSettings(ctx, "alex", Settings{Theme: "neon", ColorScheme: "gold"})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	err = svc.SaveSettings(ctx, "alex", Settings{Theme: ThemeLight, ColorScheme: "plaid"})
	require.ErrorIs(t, err, common.ErrInvalidInput)
}
