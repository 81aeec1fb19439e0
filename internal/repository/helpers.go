package repository

import (
	"database/sql"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the
// given layout. NULL and empty read as nil; a malformed value is an error,
// so a corrupt stored date surfaces on every read path instead of silently
// reading as unset.
func parseNullableTime(s sql.NullString, layout string) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil, fmt.Errorf("parsing stored time %q: %w", s.String, err)
	}
	return &t, nil
}

// nullableTimeToString converts a *time.Time to a SQLite-storable value:
// SQL NULL for nil, otherwise the formatted string.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableFloatToValue converts a *float64 to a SQLite-storable value.
func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// nullableStringToValue converts a *string to a SQLite-storable value.
func nullableStringToValue(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

// stringPtrFromNull converts a sql.NullString back to a *string.
func stringPtrFromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// floatPtrFromNull converts a sql.NullFloat64 back to a *float64.
func floatPtrFromNull(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
