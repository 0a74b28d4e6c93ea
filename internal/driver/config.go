package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"pqmfmt"
)

// projectConfig mirrors an optional pqmfmt.toml project file: mode, indent_unit, indent_char, line_length. Every field is
// optional; an absent field leaves the built-in default untouched.
type projectConfig struct {
	Mode       string `toml:"mode"`
	IndentUnit *int   `toml:"indent_unit"`
	IndentChar string `toml:"indent_char"`
	LineLength *int   `toml:"line_length"`
}

// FindProjectConfig walks upward from startDir looking for pqmfmt.toml.
func FindProjectConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "pqmfmt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadProjectConfig reads and decodes a pqmfmt.toml file.
func LoadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// ApplyProjectConfig overlays a loaded project config onto base, returning
// the merged result. Flags passed on the command line are applied by the
// caller after this, so they take final precedence over the file.
func ApplyProjectConfig(base pqmfmt.Config, cfg projectConfig) pqmfmt.Config {
	out := base
	switch cfg.Mode {
	case "compact":
		out.Mode = pqmfmt.Compact
	case "expanded":
		out.Mode = pqmfmt.Expanded
	case "default", "":
	}
	if cfg.IndentUnit != nil {
		out.IndentUnit = *cfg.IndentUnit
	}
	switch cfg.IndentChar {
	case "tab":
		out.IndentChar = pqmfmt.IndentTab
	case "space", "":
	}
	if cfg.LineLength != nil {
		out.LineLength = *cfg.LineLength
	}
	return out
}
