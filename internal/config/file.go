package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileMutex serializes writers inside this process
var fileMutex sync.Mutex

// Save writes the configuration to path as YAML.
// The write goes to a temporary file first and is renamed into place.
func (c *Config) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# mascotas-admin configuration
#
# Every value can be overridden from the environment:
#   MASCOTAS_API_URL, MASCOTAS_LIST_PATH, MASCOTAS_RECORD_PATH,
#   MASCOTAS_REQUEST_TIMEOUT, MASCOTAS_ALERT_TIMEOUT,
#   MASCOTAS_LOG_LEVEL, MASCOTAS_LOG_FILE
#
# request_timeout: 0s disables the per-request timeout.

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Marshal returns the YAML form of the configuration.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// InitFile writes the default configuration to path unless a file is already
// there and force is false.
func InitFile(path string, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	return Default().Save(path)
}
