package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "stepper"
	configFile = "config.yaml"

	// FileVersion is the only supported defaults file format.
	FileVersion = 1
)

// document is the on-disk layout: a version marker plus the Config fields
// at the top level.
type document struct {
	Version int `yaml:"version"`
	Config  `yaml:",inline"`
}

// DefaultDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/stepper or $HOME/.config/stepper
//   - macOS: $HOME/.config/stepper
//   - Windows: %LOCALAPPDATA%\stepper
func DefaultDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// DefaultPath returns the full path of the defaults file.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads a YAML defaults file. Keys missing from the file keep their
// Default() values. The result is not validated; call Validate once all
// overrides are applied.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML defaults document on top of Default().
func Parse(data []byte) (Config, error) {
	doc := document{Config: Default()}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A missing version key is treated as the current version.
	if doc.Version != 0 && doc.Version != FileVersion {
		return Config{}, fmt.Errorf("unsupported config version: %d (expected %d)", doc.Version, FileVersion)
	}

	return doc.Config, nil
}

// LoadDefault loads the file at DefaultPath, or returns Default() when
// there is no such file.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get config path: %w", err)
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes c to path, creating parent directories. The write goes
// through a temporary file and a rename so a crash never leaves a
// truncated file behind.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(document{Version: FileVersion, Config: c})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# Stepper defaults\n#\n# Any key may be omitted; missing keys use built-in defaults.\n\n")
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
