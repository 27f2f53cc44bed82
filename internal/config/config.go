package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings shopflow reads at startup.
type Config struct {
	CatalogPath    string // empty uses the built-in sample catalog
	LogFile        string
	LogLevel       slog.Level
	BannerInterval time.Duration
}

const (
	defaultConfigPath     = "~/.config/shopflow/config.toml"
	defaultLogFile        = "~/.local/state/shopflow/shopflow.log"
	defaultLogLevel       = slog.LevelInfo
	defaultBannerInterval = 4 * time.Second
	minBannerInterval     = time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		BannerInterval: defaultBannerInterval,
	}
}

// Load locates and parses the shopflow config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogPath    string `toml:"catalog_path"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		BannerInterval string `toml:"banner_interval"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.SetCatalogPath(raw.CatalogPath); err != nil {
		return Config{}, err
	}
	if err := cfg.SetLogFile(raw.LogFile); err != nil {
		return Config{}, err
	}
	if err := cfg.SetLogLevel(raw.LogLevel); err != nil {
		return Config{}, err
	}
	if err := cfg.SetBannerInterval(raw.BannerInterval); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetCatalogPath expands and stores a catalog path. Blank keeps the current value.
func (c *Config) SetCatalogPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("catalog_path: %w", err)
	}
	c.CatalogPath = expanded
	return nil
}

// SetLogFile expands and stores the log file path. Blank keeps the current value.
func (c *Config) SetLogFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("log_file: %w", err)
	}
	c.LogFile = expanded
	return nil
}

// SetLogLevel parses debug, info, warn or error. Blank keeps the current value.
func (c *Config) SetLogLevel(level string) error {
	level = strings.TrimSpace(level)
	if level == "" {
		return nil
	}
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	c.LogLevel = parsed
	return nil
}

// SetBannerInterval parses a Go duration string, clamped to at least one
// second. Blank keeps the current value.
func (c *Config) SetBannerInterval(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("banner_interval: %w", err)
	}
	c.BannerInterval = max(d, minBannerInterval)
	return nil
}

// UsesSampleCatalog reports whether no catalog file is configured.
func (c Config) UsesSampleCatalog() bool {
	return strings.TrimSpace(c.CatalogPath) == ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
