package driver

import (
	"errors"
	"strings"
	"testing"
)

func TestLooksLikePQM(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"let x = 1 in x", true},
		{"  LET x = 1 in x", true},
		{"section Foo; shared Bar = 1;", true},
		{"(x) => x + 1", true},
		{"[a = 1]", true},
		{"{1, 2, 3}", true},
		{"not even close to M code", false},
		{"", false},
		{"   ", false},
	}
	for _, c := range cases {
		if got := looksLikePQM(c.text); got != c.want {
			t.Errorf("looksLikePQM(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestErrorRecoveryPayload_KeepsOriginalAndPrefixesError(t *testing.T) {
	original := "let x = 1 in x"
	payload := errorRecoveryPayload(errors.New("1:5: expected 'in', found end of input"), original)

	if !strings.HasPrefix(payload, "// Format Error:\n") {
		t.Errorf("payload should open with a Format Error header, got %q", payload)
	}
	if !strings.Contains(payload, "// 1:5: expected 'in', found end of input") {
		t.Errorf("payload should carry the error text as a comment, got %q", payload)
	}
	if !strings.HasSuffix(payload, original) {
		t.Errorf("payload should end with the untouched original text, got %q", payload)
	}
}

func TestErrorRecoveryPayload_CommentsEveryErrorLine(t *testing.T) {
	payload := errorRecoveryPayload(errors.New("line one\nline two"), "x")
	for _, line := range []string{"// line one", "// line two"} {
		if !strings.Contains(payload, line) {
			t.Errorf("expected payload to contain %q, got %q", line, payload)
		}
	}
}
