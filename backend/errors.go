package backend

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when no item has the requested ID.
var ErrItemNotFound = errors.New("item not found")

// SQLiteError represents errors specific to SQLite store operations
type SQLiteError struct {
	Op     string // Operation that failed
	ItemID string // Optional: item ID if relevant
	Err    error  // Underlying error
}

func (e *SQLiteError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("sqlite %s failed for item %s: %v", e.Op, e.ItemID, e.Err)
	}
	return fmt.Sprintf("sqlite %s failed: %v", e.Op, e.Err)
}

func (e *SQLiteError) Unwrap() error {
	return e.Err
}

// SchemaVersionError reports a database written by a newer schema.
type SchemaVersionError struct {
	Found     int
	Supported int
}

func (e *SchemaVersionError) Error() string {
	return fmt.Sprintf("database schema version %d is newer than supported version %d", e.Found, e.Supported)
}

// IsNotFound reports whether err is, or wraps, ErrItemNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}
