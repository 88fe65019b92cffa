package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/journal"
)

// resolveDateKey turns an optional command argument into a date key,
// defaulting to today.
func (a *App) resolveDateKey(args []string) (string, error) {
	if len(args) == 0 {
		return journal.DateKey(a.now()), nil
	}
	key := args[0]
	if !journal.ValidDateKey(key) {
		return "", fmt.Errorf("%w: dates look like 2024-06-15", common.ErrInvalidInput)
	}
	return key, nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return fmt.Errorf("%w: log in first", common.ErrInvalidInput)
	}
	return nil
}

// Write prompts for text and a mood and stores the entry for the given day
// (default today), replacing any existing one.
func (a *App) Write(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	key, err := a.resolveDateKey(args)
	if err != nil {
		return err
	}

	if existing, ok := a.journal.Entries(ctx, a.userName)[key]; ok {
		printlnFn("Current entry:", existing.Text)
	}

	text, err := getSimpleText(a.reader, fmt.Sprintf("One line about %s (max %d characters)", key, journal.MaxEntryLen), os.Stdout)
	if err != nil {
		return err
	}
	mood, err := getSimpleText(a.reader, "Mood: "+strings.Join(journal.Moods, ", ")+" (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.journal.UpsertEntry(ctx, a.userName, key, text, mood); err != nil {
		return err
	}
	printlnFn("Saved", key)
	return nil
}

// Show prints one day's entry (default today).
func (a *App) Show(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	key, err := a.resolveDateKey(args)
	if err != nil {
		return err
	}

	entry, ok := a.journal.Entries(ctx, a.userName)[key]
	if !ok {
		printlnFn("No entry for", key)
		return nil
	}
	printlnFn(formatEntry(key, entry))
	return nil
}

// Delete removes one day's entry, keeping it in memory for undo.
func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: delete <date>", common.ErrInvalidInput)
	}
	key := args[0]

	removed, ok, err := a.journal.DeleteEntry(ctx, a.userName, key)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("No entry for", key)
		return nil
	}

	a.lastDeletedKey = key
	a.lastDeletedEntry = removed
	a.hasUndo = true
	printlnFn("Deleted", key, "(type 'undo' to restore)")
	return nil
}

// Undo restores the most recently deleted entry.
func (a *App) Undo(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if !a.hasUndo {
		printlnFn("Nothing to undo")
		return nil
	}
	if err := a.journal.RestoreEntry(ctx, a.userName, a.lastDeletedKey, a.lastDeletedEntry); err != nil {
		return err
	}
	printlnFn("Restored", a.lastDeletedKey)
	a.hasUndo = false
	return nil
}

// Prompt prints a writing prompt.
func (a *App) Prompt(_ context.Context) error {
	printlnFn(journal.RandomPrompt())
	return nil
}

func formatEntry(key string, e journal.Entry) string {
	if e.Mood != "" {
		return fmt.Sprintf("%s [%s] %s", key, e.Mood, e.Text)
	}
	return fmt.Sprintf("%s %s", key, e.Text)
}
