package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDateKey(t *testing.T) {
	assert.True(t, ValidDateKey("2024-01-01"))
	assert.True(t, ValidDateKey("1999-12-31"))
	assert.False(t, ValidDateKey("2024-1-1"))
	assert.False(t, ValidDateKey("bad-key"))
	assert.False(t, ValidDateKey("2024-01-01T00:00:00Z"))
	assert.False(t, ValidDateKey(""))
}

func TestDateKey_RoundTrip(t *testing.T) {
	day := time.Date(2024, 3, 5, 23, 30, 0, 0, time.Local)
	key := DateKey(day)
	require.Equal(t, "2024-03-05", key)

	parsed, err := ParseDateKey(key)
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 5, parsed.Day())
}

func TestValidMood(t *testing.T) {
	for _, m := range Moods {
		assert.True(t, ValidMood(m), m)
	}
	assert.True(t, ValidMood(""), "no mood is allowed")
	assert.False(t, ValidMood("ecstatic"))
}

func TestDefaultSettings(t *testing.T) {
	st := DefaultSettings()
	assert.True(t, ValidTheme(st.Theme))
	assert.True(t, ValidColorScheme(st.ColorScheme))
}
