// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file in the data directory.
type Loader struct {
	dataDir string // Path to the application data directory
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return domain.ConfigPath(l.dataDir)
}

// Load returns the configuration merged over defaults.
// A missing config file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	data, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.Path(), err)
	}

	applyRaw(base, raw)
	return base, nil
}

// applyRaw merges the raw TOML map into cfg and collects warnings.
func applyRaw(cfg *domain.Config, raw map[string]any) {
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					s, _ := v.(string)
					if !isLogLevel(s) {
						warnings = append(warnings, fmt.Sprintf("invalid [log] level %q, using %q", s, cfg.Log.Level))
						continue
					}
					cfg.Log.Level = s
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "database":
			for k, v := range m {
				switch k {
				case "file":
					s, _ := v.(string)
					if !isDatabaseFileName(s) {
						warnings = append(warnings, fmt.Sprintf("invalid [database] file %q, using %q", s, cfg.Database.File))
						continue
					}
					cfg.Database.File = s
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [database]: %s", k))
				}
			}
		case "list":
			for k, v := range m {
				switch k {
				case "format":
					s, _ := v.(string)
					if !domain.ListFormat(s).IsValid() {
						warnings = append(warnings, fmt.Sprintf("invalid [list] format %q, using %q", s, cfg.List.Format))
						continue
					}
					cfg.List.Format = domain.ListFormat(s)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [list]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	cfg.Warnings = warnings
}

// isDatabaseFileName reports whether s names a file directly inside the data directory.
func isDatabaseFileName(s string) bool {
	switch s {
	case "", ".", "..":
		return false
	}
	return filepath.Base(s) == s
}

func isLogLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
