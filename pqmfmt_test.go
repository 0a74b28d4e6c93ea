package pqmfmt_test

import (
	"strings"
	"testing"

	"pqmfmt"
)

func TestFormat_RoundTripsAlreadyFormattedInput(t *testing.T) {
	src := "let\n    x = 1,\n    y = 2\nin\n    x + y\n"
	out, err := pqmfmt.Format(src, pqmfmt.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out2, err := pqmfmt.Format(out, pqmfmt.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error re-formatting output: %v", err)
	}
	if out != out2 {
		t.Errorf("formatting is not idempotent:\nfirst:\n%q\nsecond:\n%q", out, out2)
	}
}

func TestFormat_CompactModeFlattensLet(t *testing.T) {
	src := "let\n    x = 1\nin\n    x\n"
	out, err := pqmfmt.Format(src, pqmfmt.CompactConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(strings.TrimSpace(out), "\n") {
		t.Errorf("expected compact mode to flatten a short let expression onto one line, got %q", out)
	}
}

func TestFormat_DefaultModeNeverFlattensLet(t *testing.T) {
	src := "let x = 1 in x"
	out, err := pqmfmt.Format(src, pqmfmt.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "\n") {
		t.Errorf("expected default mode to always break a let expression onto multiple lines, got %q", out)
	}
}

func TestFormat_IndentUnitAndTabsAreHonored(t *testing.T) {
	src := "let x = 1 in x"
	cfg := pqmfmt.DefaultConfig()
	cfg.IndentChar = pqmfmt.IndentTab
	out, err := pqmfmt.Format(src, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(out, "\n")
	var sawTabIndent bool
	for _, line := range lines {
		if strings.HasPrefix(line, "\t") {
			sawTabIndent = true
		}
	}
	if !sawTabIndent {
		t.Errorf("expected at least one tab-indented line, got %q", out)
	}
}

func TestFormat_LexErrorOnUnterminatedString(t *testing.T) {
	_, err := pqmfmt.Format(`"unterminated`, pqmfmt.DefaultConfig())
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*pqmfmt.LexError); !ok {
		t.Fatalf("got %T, want *pqmfmt.LexError", err)
	}
}

func TestFormat_ParseErrorOnMalformedGrammar(t *testing.T) {
	_, err := pqmfmt.Format("let x = in x", pqmfmt.DefaultConfig())
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*pqmfmt.ParseError); !ok {
		t.Fatalf("got %T, want *pqmfmt.ParseError", err)
	}
}

func TestFormat_LexErrorReportsTheLineTheLiteralStartedOn(t *testing.T) {
	// The unterminated string opens on line 2; the error must locate it
	// there rather than at line 1 or at EOF.
	_, err := pqmfmt.Format("1\n\"unterminated", pqmfmt.DefaultConfig())
	lexErr, ok := err.(*pqmfmt.LexError)
	if !ok {
		t.Fatalf("got %T, want *pqmfmt.LexError", err)
	}
	if lexErr.Line != 2 || lexErr.Column != 1 {
		t.Errorf("got %d:%d, want 2:1", lexErr.Line, lexErr.Column)
	}
}

func TestFormat_ParseErrorNamesTheOffendingToken(t *testing.T) {
	_, err := pqmfmt.Format("let x = in x", pqmfmt.DefaultConfig())
	parseErr, ok := err.(*pqmfmt.ParseError)
	if !ok {
		t.Fatalf("got %T, want *pqmfmt.ParseError", err)
	}
	if parseErr.Line != 1 {
		t.Errorf("Line = %d, want 1", parseErr.Line)
	}
	if !strings.Contains(parseErr.Message, `"in"`) {
		t.Errorf("message %q should name the offending token", parseErr.Message)
	}
}

func TestFormat_ErrorMessageIncludesPosition(t *testing.T) {
	_, err := pqmfmt.Format("let x = in x", pqmfmt.DefaultConfig())
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, ":") {
		t.Errorf("expected a line:column prefixed message, got %q", msg)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := pqmfmt.DefaultConfig()
	if cfg.Mode != pqmfmt.Default {
		t.Errorf("Mode = %v, want Default", cfg.Mode)
	}
	if cfg.IndentUnit != 4 {
		t.Errorf("IndentUnit = %d, want 4", cfg.IndentUnit)
	}
	if cfg.IndentChar != pqmfmt.IndentSpace {
		t.Errorf("IndentChar = %v, want IndentSpace", cfg.IndentChar)
	}
	if cfg.LineLength != 100 {
		t.Errorf("LineLength = %d, want 100", cfg.LineLength)
	}
}

func TestCompactAndExpandedConfig(t *testing.T) {
	compact := pqmfmt.CompactConfig()
	if compact.Mode != pqmfmt.Compact {
		t.Errorf("CompactConfig().Mode = %v, want Compact", compact.Mode)
	}
	expanded := pqmfmt.ExpandedConfig()
	if expanded.Mode != pqmfmt.Expanded {
		t.Errorf("ExpandedConfig().Mode = %v, want Expanded", expanded.Mode)
	}
	if compact.IndentUnit != 4 || expanded.IndentUnit != 4 {
		t.Error("CompactConfig/ExpandedConfig should only override Mode")
	}
}
