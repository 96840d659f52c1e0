package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".procpipe"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .procpipe configuration file.
type File struct {
	// Features holds the default feature flags applied to every run
	// unless a call supplies its own feature set.
	Features map[string]bool `yaml:"features,omitempty"`

	// Text holds the text-variant transform toggles.
	Text TextSettings `yaml:"text,omitempty"`
}

// TextSettings holds the transform toggles for the text variant.
type TextSettings struct {
	// TrimWhitespace enables whitespace normalization. Defaults to true.
	TrimWhitespace bool `yaml:"trim_whitespace"`

	// RemoveSpecialChars enables stripping of non-alphanumeric characters.
	RemoveSpecialChars bool `yaml:"remove_special_chars"`

	// Lowercase enables lower-casing of the result.
	Lowercase bool `yaml:"lowercase"`
}

// DefaultFile returns a File with the built-in defaults: no feature flags
// and whitespace normalization enabled.
func DefaultFile() *File {
	return &File{
		Features: make(map[string]bool),
		Text: TextSettings{
			TrimWhitespace: true,
		},
	}
}

// LoadConfigFile loads run defaults from a YAML file.
// Keys absent from the file keep their built-in defaults.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error appropriately based on whether the config file path
// was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	// Unmarshal on top of the defaults so absent keys keep them.
	cf := DefaultFile()
	if err := yaml.Unmarshal(data, cf); err != nil {
		return nil, err
	}

	if cf.Features == nil {
		cf.Features = make(map[string]bool)
	}

	return cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .procpipe in the current directory
// 3. Look for .procpipe in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
