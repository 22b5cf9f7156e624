package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the profile to the user's config directory.
func (p *Profile) Save() error {
	return p.SaveTo(filepath.Join(ConfigDir(), "profile.yaml"))
}

// SaveTo writes the profile to a specific path.
func (p *Profile) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
