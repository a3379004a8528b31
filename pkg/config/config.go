// Package config loads the optional per-project metsverify.yaml file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the metsverify.yaml contents.
type ProjectConfig struct {
	// MetadataExport is the path to the metadata export CSV, relative to
	// the project directory unless absolute.
	MetadataExport string `yaml:"metadata_export"`
}

const ConfigFileName = "metsverify.yaml"

// Load reads the config file from the project directory.
func Load(projectPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(projectPath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
