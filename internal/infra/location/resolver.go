// Package location resolves where the application keeps its data on disk.
package location

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
)

// ConfigHomeEnv overrides the platform config directory when set to an absolute path.
const ConfigHomeEnv = "XDG_CONFIG_HOME"

// Resolver computes and prepares the per-user data directory.
// Getenv and UserConfigDir are replaceable for tests.
type Resolver struct {
	Getenv        func(string) string
	UserConfigDir func() (string, error)
}

// NewResolver returns a Resolver backed by the process environment.
func NewResolver() *Resolver {
	return &Resolver{
		Getenv:        os.Getenv,
		UserConfigDir: os.UserConfigDir,
	}
}

// ConfigHome returns the base configuration directory.
func (r *Resolver) ConfigHome() (string, error) {
	if dir := r.Getenv(ConfigHomeEnv); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	dir, err := r.UserConfigDir()
	if err != nil {
		return "", &domain.FilesystemError{Path: "$" + ConfigHomeEnv, Err: err}
	}
	return dir, nil
}

// DataDir returns the application directory. It does not create it; see EnsureDir.
func (r *Resolver) DataDir() (string, error) {
	home, err := r.ConfigHome()
	if err != nil {
		return "", err
	}
	return domain.AppDir(home), nil
}

// EnsureDir creates dir recursively and checks that files can be written in it.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &domain.FilesystemError{Path: dir, Err: fmt.Errorf("create directory: %w", err)}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return &domain.FilesystemError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &domain.FilesystemError{Path: dir, Err: errors.New("not a directory")}
	}

	probe, err := os.CreateTemp(dir, ".write-probe-*")
	if err != nil {
		return &domain.FilesystemError{Path: dir, Err: fmt.Errorf("directory not writable: %w", err)}
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}
