package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericmacharia6907-max/365/internal/common"
	"github.com/ericmacharia6907-max/365/internal/filex"
	"github.com/ericmacharia6907-max/365/internal/journal"
)

// Export writes the user's backup file. With no argument the file goes to
// the configured export directory under a conventional name.
func (a *App) Export(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		dir, err := filex.EnsureDir(a.config.ExportDir)
		if err != nil {
			return err
		}
		path = filepath.Join(dir, journal.DefaultBackupName(a.userName, a.now()))
	}

	if err := a.journal.ExportToFile(ctx, a.userName, path); err != nil {
		return err
	}
	printlnFn("Exported to", path)
	return nil
}

// Import merges a backup file into the user's journal. Days that already
// have an entry are only overwritten after an explicit confirmation.
func (a *App) Import(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: import <path>", common.ErrInvalidInput)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	res, err := a.journal.Import(ctx, a.userName, data, func(imported int, conflicts []string) bool {
		prompt := fmt.Sprintf("Importing %d entries overwrites %d existing day(s): %s. Continue?",
			imported, len(conflicts), strings.Join(conflicts, ", "))
		ok, err := getConfirmation(a.reader, prompt, os.Stdout)
		return err == nil && ok
	})
	if err != nil {
		if errors.Is(err, journal.ErrImportCancelled) {
			printlnFn("Import cancelled")
			return nil
		}
		return err
	}

	printlnFn(fmt.Sprintf("Imported %d entries", res.Imported))
	return nil
}
