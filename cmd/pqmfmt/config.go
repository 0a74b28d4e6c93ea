package main

import (
	"github.com/spf13/cobra"

	"pqmfmt"
	"pqmfmt/internal/driver"
)

// resolveConfig builds the effective Config: built-in defaults, then an
// optional pqmfmt.toml project file, then command-line flags, each layer
// overriding the last.
func resolveConfig(cmd *cobra.Command) (pqmfmt.Config, error) {
	cfg := pqmfmt.DefaultConfig()

	if path, ok, err := driver.FindProjectConfig("."); err != nil {
		return cfg, err
	} else if ok {
		projCfg, err := driver.LoadProjectConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = driver.ApplyProjectConfig(cfg, projCfg)
	}

	flags := cmd.Flags()
	compact, _ := flags.GetBool("compact")
	expanded, _ := flags.GetBool("expanded")
	switch {
	case compact:
		cfg.Mode = pqmfmt.Compact
	case expanded:
		cfg.Mode = pqmfmt.Expanded
	}

	if flags.Changed("indent") {
		indent, _ := flags.GetInt("indent")
		cfg.IndentUnit = indent
	}
	if tabs, _ := flags.GetBool("tabs"); tabs {
		cfg.IndentChar = pqmfmt.IndentTab
	}

	return cfg, nil
}
