package domain

import (
	"path/filepath"
	"slices"
)

// File and directory names.
const (
	AppDirName          = "todo"
	ConfigFileName      = "config.toml"
	DefaultDatabaseFile = "tasks.db"
	LogFileName         = "todo.log"
)

// ListFormat selects how the list command renders tasks.
type ListFormat string

// List formats.
const (
	ListFormatTable ListFormat = "table"
	ListFormatJSON  ListFormat = "json"
	ListFormatYAML  ListFormat = "yaml"
)

// ListFormats returns all supported list formats.
func ListFormats() []ListFormat {
	return []ListFormat{ListFormatTable, ListFormatJSON, ListFormatYAML}
}

// IsValid reports whether f is a supported list format.
func (f ListFormat) IsValid() bool {
	return slices.Contains(ListFormats(), f)
}

// Config represents the application configuration.
type Config struct {
	Log      LogConfig      // [log] settings
	Database DatabaseConfig // [database] settings
	List     ListConfig     // [list] settings
	Warnings []string       // Problems found while loading (unknown keys, bad values)
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// DatabaseConfig holds storage settings from [database] section.
type DatabaseConfig struct {
	File string `toml:"file"` // Database file name inside the data directory
}

// ListConfig holds list command settings from [list] section.
type ListConfig struct {
	Format ListFormat `toml:"format"` // Default output format
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log:      LogConfig{Level: "info"},
		Database: DatabaseConfig{File: DefaultDatabaseFile},
		List:     ListConfig{Format: ListFormatTable},
	}
}

// AppDir returns the application directory inside configHome.
func AppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ConfigPath returns the config file path inside the data directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// DatabasePath returns the database file path inside the data directory.
func DatabasePath(dataDir, file string) string {
	if file == "" {
		file = DefaultDatabaseFile
	}
	return filepath.Join(dataDir, file)
}

// LogPath returns the log file path inside the data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}
