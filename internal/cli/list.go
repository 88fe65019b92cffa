package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/journal"
)

// List prints all entries, newest first.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	entries := a.journal.Entries(ctx, a.userName)
	if len(entries) == 0 {
		printlnFn("No entries yet. Try 'write'.")
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	for _, k := range keys {
		printlnFn(formatEntry(k, entries[k]))
	}
	return nil
}

// Search prints entries containing the query text, newest first.
func (a *App) Search(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: search <text>", common.ErrInvalidInput)
	}
	query := strings.Join(args, " ")

	hits := journal.Search(a.journal.Entries(ctx, a.userName), query)
	if len(hits) == 0 {
		printlnFn("No entries matching", fmt.Sprintf("%q", query))
		return nil
	}
	for _, h := range hits {
		printlnFn(formatEntry(h.DateKey, h.Entry))
	}
	return nil
}

// Stats prints journaling statistics.
func (a *App) Stats(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	st := journal.ComputeStats(a.journal.Entries(ctx, a.userName), a.now())
	printlnFn("Entries:       ", st.TotalEntries)
	printlnFn("Words:         ", st.TotalWords)
	printlnFn("Current streak:", st.CurrentStreak)
	printlnFn("Longest streak:", st.LongestStreak)
	if st.TopMood != "" {
		printlnFn("Top mood:      ", st.TopMood)
	}
	return nil
}
