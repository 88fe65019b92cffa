package auth

const (
	entriesKeyPrefix  = "entries_"
	settingsKeyPrefix = "settings_"
)

// Namespace holds the storage keys of one user's data partitions.
type Namespace struct {
	EntriesKey  string
	SettingsKey string
}

// EntriesKey returns the storage key of the user's entries partition, or ""
// for an empty username. Callers must treat "" as "no data available",
// never as a shared partition.
func EntriesKey(username string) string {
	if username == "" {
		return ""
	}
	return entriesKeyPrefix + username
}

// SettingsKey returns the storage key of the user's settings partition, or
// "" for an empty username.
func SettingsKey(username string) string {
	if username == "" {
		return ""
	}
	return settingsKeyPrefix + username
}

// NamespaceFor resolves both partition keys for a username. The username is
// used verbatim as the uniqueness discriminator, so distinct usernames can
// never collide and the two partitions can never mix.
func NamespaceFor(username string) Namespace {
	return Namespace{
		EntriesKey:  EntriesKey(username),
		SettingsKey: SettingsKey(username),
	}
}
