package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mascotas/mascotas-admin/internal/urls"
)

const (
	appName    = "mascotas-admin"
	configFile = "config.yaml"
	logFile    = "mascotas-admin.log"

	// DefaultAlertTimeout is how long transient alerts stay on screen.
	DefaultAlertTimeout = 5 * time.Second
)

// Config is the application configuration.
// Every field can come from the YAML file and be overridden from the environment.
type Config struct {
	API APIConfig `yaml:"api"`
	UI  UIConfig  `yaml:"ui"`
	Log LogConfig `yaml:"log"`
}

// APIConfig locates the pets registry.
type APIConfig struct {
	BaseURL   string         `yaml:"base_url" env:"MASCOTAS_API_URL" env-default:"https://misterio07.alwaysdata.net"`
	Endpoints urls.Endpoints `yaml:"endpoints"`

	// RequestTimeout bounds each request. Zero means no timeout.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"MASCOTAS_REQUEST_TIMEOUT"`
}

// UIConfig holds admin panel settings.
type UIConfig struct {
	AlertTimeout time.Duration `yaml:"alert_timeout" env:"MASCOTAS_ALERT_TIMEOUT" env-default:"5s"`
}

// LogConfig controls zap output. An empty level keeps logging silent.
type LogConfig struct {
	Level string `yaml:"level" env:"MASCOTAS_LOG_LEVEL"`
	File  string `yaml:"file" env:"MASCOTAS_LOG_FILE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   urls.DefaultBaseURL,
			Endpoints: urls.DefaultEndpoints(),
		},
		UI: UIConfig{
			AlertTimeout: DefaultAlertTimeout,
		},
	}
}

// Load reads the configuration.
//
// When path is empty the default location is used if a file exists there,
// otherwise only defaults and environment variables apply. An explicit path
// that does not exist is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err == nil {
			path = p
		}
	}

	var cfg Config
	switch {
	case path != "" && fileExists(path):
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise fail much later.
func (c *Config) Validate() error {
	var errs []error

	if err := urls.ValidateBaseURL(c.API.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("api.base_url: %w", err))
	}
	if c.API.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("api.request_timeout must not be negative, got %s", c.API.RequestTimeout))
	}
	if c.UI.AlertTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ui.alert_timeout must be positive, got %s", c.UI.AlertTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// LogFilePath returns where the admin panel writes its log: the configured
// file, or mascotas-admin.log in the config directory.
func (c *Config) LogFilePath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	dir, err := GetConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), logFile)
	}
	return filepath.Join(dir, logFile)
}

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/mascotas-admin or $HOME/.config/mascotas-admin
//   - macOS: $HOME/.config/mascotas-admin
//   - Windows: %LOCALAPPDATA%\mascotas-admin
func GetConfigDir() (string, error) {
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

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
