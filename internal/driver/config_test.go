package driver

import (
	"os"
	"path/filepath"
	"testing"

	"pqmfmt"
)

func TestFindProjectConfig_FindsFileInStartDir(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "pqmfmt.toml")
	if err := os.WriteFile(configPath, []byte("mode = \"compact\"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	found, ok, err := FindProjectConfig(dir)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if !ok {
		t.Fatal("expected to find pqmfmt.toml")
	}
	abs, _ := filepath.Abs(configPath)
	if found != abs {
		t.Errorf("found = %q, want %q", found, abs)
	}
}

func TestFindProjectConfig_WalksUpToParent(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "pqmfmt.toml"), []byte("mode = \"expanded\"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, ok, err := FindProjectConfig(nested)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if !ok {
		t.Fatal("expected to find pqmfmt.toml by walking up")
	}
	if filepath.Dir(found) != root {
		t.Errorf("found %q outside the expected root %q", found, root)
	}
}

func TestFindProjectConfig_NoneFound(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindProjectConfig(dir)
	if err != nil {
		t.Fatalf("FindProjectConfig: %v", err)
	}
	if ok {
		t.Error("expected no pqmfmt.toml to be found in an empty tree")
	}
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pqmfmt.toml")
	content := "mode = \"compact\"\nindent_unit = 2\nindent_char = \"tab\"\nline_length = 80\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture config: %v", err)
	}

	cfg, err := LoadProjectConfig(path)
	if err != nil {
		t.Fatalf("LoadProjectConfig: %v", err)
	}
	if cfg.Mode != "compact" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "compact")
	}
	if cfg.IndentUnit == nil || *cfg.IndentUnit != 2 {
		t.Errorf("IndentUnit = %v, want 2", cfg.IndentUnit)
	}
	if cfg.IndentChar != "tab" {
		t.Errorf("IndentChar = %q, want %q", cfg.IndentChar, "tab")
	}
	if cfg.LineLength == nil || *cfg.LineLength != 80 {
		t.Errorf("LineLength = %v, want 80", cfg.LineLength)
	}
}

func TestApplyProjectConfig_OverlaysOnlySetFields(t *testing.T) {
	base := pqmfmt.DefaultConfig()
	indentUnit := 2
	cfg := projectConfig{Mode: "compact", IndentUnit: &indentUnit}

	out := ApplyProjectConfig(base, cfg)
	if out.Mode != pqmfmt.Compact {
		t.Errorf("Mode = %v, want Compact", out.Mode)
	}
	if out.IndentUnit != 2 {
		t.Errorf("IndentUnit = %d, want 2", out.IndentUnit)
	}
	if out.LineLength != base.LineLength {
		t.Errorf("LineLength changed to %d despite no override", out.LineLength)
	}
}

func TestApplyProjectConfig_EmptyFieldsLeaveDefaultsUntouched(t *testing.T) {
	base := pqmfmt.DefaultConfig()
	out := ApplyProjectConfig(base, projectConfig{})
	if out != base {
		t.Errorf("ApplyProjectConfig with an empty overlay changed the config: %+v", out)
	}
}

func TestApplyProjectConfig_TabsChar(t *testing.T) {
	base := pqmfmt.DefaultConfig()
	out := ApplyProjectConfig(base, projectConfig{IndentChar: "tab"})
	if out.IndentChar != pqmfmt.IndentTab {
		t.Errorf("IndentChar = %v, want IndentTab", out.IndentChar)
	}
}
