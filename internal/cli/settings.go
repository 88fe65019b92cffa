package cli

import (
	"context"
	"os"
	"strings"

	"github.com/ericmacharia6907-max/365/internal/journal"
)

// Theme shows the current settings and prompts for new ones. Empty answers
// keep the current values.
func (a *App) Theme(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	st := a.journal.Settings(ctx, a.userName)
	printlnFn("Theme:", st.Theme, " Color scheme:", st.ColorScheme)

	theme, err := getSimpleText(a.reader, "Theme: light, dark (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if theme != "" {
		st.Theme = strings.ToLower(theme)
	}

	scheme, err := getSimpleText(a.reader, "Color scheme: "+strings.Join(journal.ColorSchemes, ", ")+" (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if scheme != "" {
		st.ColorScheme = strings.ToLower(scheme)
	}

	if err := a.journal.SaveSettings(ctx, a.userName, st); err != nil {
		return err
	}
	printlnFn("Settings saved")
	return nil
}
