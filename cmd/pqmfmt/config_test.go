package main

import (
	"testing"

	"github.com/spf13/cobra"

	"pqmfmt"
)

func newFlagsCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("compact", false, "")
	cmd.Flags().Bool("expanded", false, "")
	cmd.Flags().Int("indent", 4, "")
	cmd.Flags().Bool("tabs", false, "")
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cmd := newFlagsCmd(t)
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg != pqmfmt.DefaultConfig() {
		t.Errorf("got %+v, want the unmodified default config", cfg)
	}
}

func TestResolveConfig_CompactFlag(t *testing.T) {
	cmd := newFlagsCmd(t)
	if err := cmd.Flags().Set("compact", "true"); err != nil {
		t.Fatalf("setting compact flag: %v", err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Mode != pqmfmt.Compact {
		t.Errorf("Mode = %v, want Compact", cfg.Mode)
	}
}

func TestResolveConfig_ExpandedFlag(t *testing.T) {
	cmd := newFlagsCmd(t)
	if err := cmd.Flags().Set("expanded", "true"); err != nil {
		t.Fatalf("setting expanded flag: %v", err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Mode != pqmfmt.Expanded {
		t.Errorf("Mode = %v, want Expanded", cfg.Mode)
	}
}

func TestResolveConfig_IndentFlagOnlyAppliesWhenChanged(t *testing.T) {
	cmd := newFlagsCmd(t)
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.IndentUnit != pqmfmt.DefaultConfig().IndentUnit {
		t.Errorf("IndentUnit = %d, want the default when --indent wasn't passed", cfg.IndentUnit)
	}

	cmd2 := newFlagsCmd(t)
	if err := cmd2.Flags().Set("indent", "2"); err != nil {
		t.Fatalf("setting indent flag: %v", err)
	}
	cfg2, err := resolveConfig(cmd2)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg2.IndentUnit != 2 {
		t.Errorf("IndentUnit = %d, want 2", cfg2.IndentUnit)
	}
}

func TestResolveConfig_TabsFlag(t *testing.T) {
	cmd := newFlagsCmd(t)
	if err := cmd.Flags().Set("tabs", "true"); err != nil {
		t.Fatalf("setting tabs flag: %v", err)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.IndentChar != pqmfmt.IndentTab {
		t.Errorf("IndentChar = %v, want IndentTab", cfg.IndentChar)
	}
}
