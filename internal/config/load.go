package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "shinkoku.toml"

// FindConfigFile walks up from the given directory to find shinkoku.toml.
// Returns the absolute path to the config file, or an empty string if not
// found. Stops at the filesystem root.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root.
			return "", nil
		}
		dir = parent
	}
}

// LoadFromFile parses the TOML file at the given path on top of the
// defaults and returns the configuration and TOML metadata. The metadata
// detects unknown keys via MetaData.Undecoded().
func LoadFromFile(path string) (*Config, toml.MetaData, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, md, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, md, nil
}

// Load resolves the effective configuration: an explicit path wins, then a
// walk-up discovery from the working directory, then defaults. The returned
// path is empty when defaults were used.
func Load(explicitPath string) (*Config, string, *toml.MetaData, error) {
	path := explicitPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", nil, fmt.Errorf("getting working directory: %w", err)
		}
		path, err = FindConfigFile(wd)
		if err != nil {
			return nil, "", nil, err
		}
	}
	if path == "" {
		return Default(), "", nil, nil
	}
	cfg, md, err := LoadFromFile(path)
	if err != nil {
		return nil, path, nil, err
	}
	return cfg, path, &md, nil
}
