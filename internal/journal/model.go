// Package journal implements the per-user journal domain: one short entry
// per calendar day with an optional mood, user display settings, backup
// export/import, and aggregate statistics. All data lives in per-user
// storage partitions resolved through the auth namespace; this package
// never touches the credential store.
package journal

import (
	"fmt"
	"regexp"
	"time"

	"github.com/ericmacharia6907-max/365/internal/common"
)

// MaxEntryLen is the maximum entry length in characters.
const MaxEntryLen = 280

// Moods a day can be tagged with.
const (
	MoodAmazing  = "amazing"
	MoodHappy    = "happy"
	MoodNeutral  = "neutral"
	MoodSad      = "sad"
	MoodStressed = "stressed"
)

// Moods lists the valid mood identifiers in display order.
var Moods = []string{MoodAmazing, MoodHappy, MoodNeutral, MoodSad, MoodStressed}

// ValidMood reports whether mood is a known mood or the empty "no mood".
func ValidMood(mood string) bool {
	if mood == "" {
		return true
	}
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Entry is one day's reflection.
type Entry struct {
	Text      string `json:"text"`
	Mood      string `json:"mood,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Entries maps a local date key (YYYY-MM-DD) to that day's entry.
type Entries map[string]Entry

var dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDateKey reports whether k has the YYYY-MM-DD shape.
func ValidDateKey(k string) bool {
	return dateKeyRe.MatchString(k)
}

// DateKey formats t as a local date key. Local dates are used on purpose:
// an entry written at 23:30 belongs to that calendar day, not to the UTC
// day it may fall into.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey parses a date key into local midnight of that day.
func ParseDateKey(k string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", k, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date key %q", common.ErrInvalidInput, k)
	}
	return t, nil
}

// Themes and color schemes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ColorSchemes lists the valid accent color schemes.
var ColorSchemes = []string{"gold", "rose", "ocean", "forest", "lavender", "sunset"}

func ValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

func ValidColorScheme(scheme string) bool {
	for _, s := range ColorSchemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// Settings is a user's display configuration.
type Settings struct {
	Theme       string `json:"theme"`
	ColorScheme string `json:"colorScheme"`
}

// DefaultSettings returns the settings applied to users who never saved any.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, ColorScheme: "gold"}
}
