// Package prefs persists view preferences (selected category, theme) to a
// JSON file under the config dir. It is plain state handed to whoever needs
// it, not a process-wide singleton.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Theme selects the client's color scheme.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Prefs are the persisted view preferences.
type Prefs struct {
	SelectedCategory string `json:"selected_category"`
	Theme            Theme  `json:"theme"`
}

// Store reads and writes the preferences file.
type Store struct {
	path string
}

// NewStore creates a store writing to <configDir>/prefs.json.
func NewStore(configDir string) *Store {
	return &Store{path: filepath.Join(configDir, "prefs.json")}
}

// Load reads the preferences, returning defaults when the file does not
// exist yet.
func (s *Store) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("read prefs: %w", err)
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parse prefs: %w", err)
	}
	if p.Theme == "" {
		p.Theme = ThemeSystem
	}
	return p, nil
}

// Save writes the preferences, creating the config dir if needed.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize prefs: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func defaults() Prefs {
	return Prefs{SelectedCategory: "MyList", Theme: ThemeSystem}
}
