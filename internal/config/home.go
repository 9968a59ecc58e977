package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Home returns the projsnap home directory, creating it if needed.
// Priority order:
//  1. PROJSNAP_HOME environment variable (if set)
//  2. <user home>/.projsnap
func Home() (string, error) {
	if home := os.Getenv("PROJSNAP_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create projsnap home directory: %w", err)
		}
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}

	home := filepath.Join(userHome, ".projsnap")
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create projsnap home directory: %w", err)
	}

	return home, nil
}
