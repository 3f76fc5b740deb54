package storage

import "time"

// Timestamps are stored as RFC-3339 UTC text so they sort correctly as
// strings and stay readable in the database file.
const timeLayout = time.RFC3339

// FormatTime renders a timestamp for storage.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ParseTime reads a stored timestamp back.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
