// Package prefs persists shopflow's display preferences.
// Preferences are stored in ~/.config/shopflow/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for shopflow.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/shopflow/prefs.toml"
	defaultTheme     = "ShopFlow"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from path. It always returns usable preferences;
// a non-nil error explains why defaults were substituted and is meant to be
// logged, not treated as fatal. A missing file is not an error.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("read prefs: %w", err)
	}

	p := Defaults()
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs: %w", err)
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
