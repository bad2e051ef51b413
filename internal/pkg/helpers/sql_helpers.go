package helpers

import (
	"database/sql"
	"strings"
)

// GetNullString converts a string pointer to sql.NullString.
// Nil and blank values are stored as NULL.
func GetNullString(s *string) sql.NullString {
	if s == nil || strings.TrimSpace(*s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts a sql.NullString back into an optional string.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
