package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home directory: %v", err)
	}
	t.Setenv("DUELIST_TEST_DIR", "/srv/duelist")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", homeDir},
		{"tilde with path", "~/data/items.db", filepath.Join(homeDir, "data/items.db")},
		{"env var", "$DUELIST_TEST_DIR/items.db", "/srv/duelist/items.db"},
		{"absolute unchanged", "/var/lib/items.db", "/var/lib/items.db"},
		{"memory database", ":memory:", ":memory:"},
		{"tilde not at start", "/data/~/items.db", "/data/~/items.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDataPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	got, err := DataPath("items.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/xdg-data/duelist/items.db" {
		t.Errorf("DataPath with XDG_DATA_HOME = %q", got)
	}

	t.Setenv("XDG_DATA_HOME", "")
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = DataPath("items.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(homeDir, ".local", "share", "duelist", "items.db"); got != want {
		t.Errorf("DataPath = %q, want %q", got, want)
	}
}
