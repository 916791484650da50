package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the config and data directories.
const AppName = "duelist"

// ExpandPath expands ~ and environment variables in file paths
// Examples:
//   - "~/data/items.db" -> "/home/user/data/items.db"
//   - "$HOME/data" -> "/home/user/data"
//   - "/abs/path" -> "/abs/path" (unchanged)
func ExpandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[2:])
	}

	return path, nil
}

// DataPath returns name inside the application data directory.
// Priority: $XDG_DATA_HOME/duelist > ~/.local/share/duelist
func DataPath(name string) (string, error) {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, AppName, name), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", AppName, name), nil
}
