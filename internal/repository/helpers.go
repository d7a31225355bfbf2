package repository

import (
	"database/sql"
	"strings"
	"time"
)

// nullableString converts a *string into a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// stringPtr converts a sql.NullString back into a *string.
func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// escapeLike escapes LIKE wildcards so a user-supplied prefix matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// formatTime converts a time into the RFC3339 UTC form stored in SQLite.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
