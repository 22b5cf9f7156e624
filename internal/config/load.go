package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads a profile with priority: defaults < file. An explicit
// path must exist; with an empty path the standard locations are
// searched and missing files just leave the defaults.
func Load(path string) (*Profile, error) {
	profile := Default()

	if path == "" {
		path = findProfileFile()
		if path == "" {
			return profile, nil
		}
	}

	if err := loadFromFile(profile, path); err != nil {
		return nil, fmt.Errorf("loading profile from %s: %w", path, err)
	}

	return profile, nil
}

// findProfileFile looks for a profile in standard locations.
func findProfileFile() string {
	candidates := []string{
		"./qrstl.yaml",
		filepath.Join(ConfigDir(), "profile.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "qrstl")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "qrstl")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "qrstl")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "qrstl")
	}
}

// loadFromFile loads a profile from a YAML file, merging with existing
// values.
func loadFromFile(profile *Profile, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, profile)
}
