package backend

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"duelist/internal/utils"

	_ "modernc.org/sqlite" // SQLite driver
)

// Database wraps sql.DB with helper methods for schema management
type Database struct {
	*sql.DB
	path string
}

// InitDatabase opens the SQLite database at dbPath, creating the directory,
// tables and indexes as needed.
func InitDatabase(dbPath string) (*Database, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbPath == ":memory:" {
		// each connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	database := &Database{
		DB:   db,
		path: dbPath,
	}

	if err := database.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// initializeSchema sets pragmas, then creates tables and indexes and records
// the schema version in one transaction. A database stamped with a newer
// version than this build knows is refused untouched.
func (db *Database) initializeSchema() error {
	// journal_mode cannot change inside a transaction
	for _, pragma := range PragmaStatements() {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute pragma %q: %w", pragma, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statements := append(AllTableSchemas(), AllIndexes()...)
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	var current sql.NullInt64
	if err := tx.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	switch {
	case current.Int64 > SchemaVersion:
		return &SchemaVersionError{Found: int(current.Int64), Supported: SchemaVersion}
	case current.Int64 < SchemaVersion:
		if _, err := tx.Exec(
			"INSERT INTO schema_version (version, applied_at) VALUES (?, ?)",
			SchemaVersion, time.Now().Unix(),
		); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
		utils.Debugf("Schema version %d recorded (was %d)", SchemaVersion, current.Int64)
	}

	return tx.Commit()
}

// GetSchemaVersion returns the current schema version from the database
func (db *Database) GetSchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Path returns the filesystem path to the database file
func (db *Database) Path() string {
	return db.path
}

// Vacuum rebuilds the database file, returning space freed by deletes.
func (db *Database) Vacuum() error {
	if _, err := db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("vacuum failed: %w", err)
	}
	return nil
}

// GetStats returns basic database statistics
func (db *Database) GetStats() (DatabaseStats, error) {
	stats := DatabaseStats{Path: db.path}

	err := db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN completed = 1 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN due_date IS NOT NULL THEN 1 ELSE 0 END), 0)
		FROM items
	`).Scan(&stats.ItemCount, &stats.CompletedCount, &stats.WithDueDate)
	if err != nil {
		return stats, fmt.Errorf("failed to count items: %w", err)
	}

	if stats.SchemaVersion, err = db.GetSchemaVersion(); err != nil {
		return stats, err
	}

	if db.path != ":memory:" {
		fileInfo, err := os.Stat(db.path)
		if err != nil {
			return stats, fmt.Errorf("failed to stat database file: %w", err)
		}
		stats.DatabaseSize = fileInfo.Size()
	}

	return stats, nil
}

// DatabaseStats holds statistics about the database
type DatabaseStats struct {
	Path           string `json:"path" yaml:"path"`
	ItemCount      int    `json:"item_count" yaml:"item_count"`
	CompletedCount int    `json:"completed_count" yaml:"completed_count"`
	WithDueDate    int    `json:"with_due_date" yaml:"with_due_date"`
	SchemaVersion  int    `json:"schema_version" yaml:"schema_version"`
	DatabaseSize   int64  `json:"database_size" yaml:"database_size"` // in bytes
}

// String returns a human-readable representation of database statistics
func (s DatabaseStats) String() string {
	return fmt.Sprintf(`Database: %s
Items: %d (%d completed, %d with due date)
Schema version: %d
Size: %s`,
		s.Path,
		s.ItemCount, s.CompletedCount, s.WithDueDate,
		s.SchemaVersion,
		formatBytes(s.DatabaseSize),
	)
}

// formatBytes formats byte count as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
