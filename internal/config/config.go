package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arniber21/portfolio/internal/logging"
	"github.com/arniber21/portfolio/internal/theme"
)

const (
	configDirName  = ".portfolio"
	configFileName = "config.json"
)

var ErrNotConfigured = errors.New("portfolio is not configured")

var log = logging.New("config")

// Config stores the viewer's persisted preferences.
type Config struct {
	Theme        string `json:"theme"`
	ContentFile  string `json:"content_file,omitempty"`
	DisableMouse bool   `json:"disable_mouse,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Theme: string(theme.System)}
}

// ThemeMode returns the parsed theme preference, falling back to System.
func (c Config) ThemeMode() theme.Mode {
	mode, err := theme.Parse(c.Theme)
	if err != nil {
		return theme.System
	}
	return mode
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat config path: %w", err)
}

// Load reads and validates the saved configuration.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}
	log.Debug("loaded config", "path", path, "theme", cfg.Theme)
	return cfg, nil
}

// LoadOrDefault is Load with a missing file treated as Default.
func LoadOrDefault() (Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotConfigured) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	if err := normalize(&cfg); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// SaveTheme persists a new theme preference, keeping the rest of the file.
func SaveTheme(mode theme.Mode) error {
	cfg, err := LoadOrDefault()
	if err != nil {
		return err
	}
	cfg.Theme = string(mode)
	return Save(cfg)
}

func normalize(cfg *Config) error {
	mode, err := theme.Parse(cfg.Theme)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	cfg.Theme = string(mode)

	if strings.TrimSpace(cfg.ContentFile) != "" {
		contentFile, err := NormalizePath(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("invalid content_file: %w", err)
		}
		cfg.ContentFile = contentFile
	}
	return nil
}

// NormalizePath expands and normalizes a user-supplied file path.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
