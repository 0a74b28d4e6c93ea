package driver

import (
	"strings"

	"github.com/atotto/clipboard"

	"pqmfmt"
)

// looksLikePQM sniffs whether text is plausibly Power Query M before
// engaging clipboard mode: only "let"/"section" prefixes or an opening
// function/record/list delimiter count.
func looksLikePQM(text string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "let"), strings.HasPrefix(lower, "section"):
		return true
	case strings.HasPrefix(trimmed, "("), strings.HasPrefix(trimmed, "["), strings.HasPrefix(trimmed, "{"):
		return true
	default:
		return false
	}
}

// ClipboardResult reports what FormatClipboard did.
type ClipboardResult struct {
	NotPQM    bool
	Formatted string
	Err       error
}

// FormatClipboard reads the system clipboard, formats it if it looks like
// M source, and writes the result back. On a parse/lex error it writes
// the error message back as leading `//` comment lines above the
// original untouched text, so the clipboard is never left blank.
func FormatClipboard(cfg pqmfmt.Config) ClipboardResult {
	content, err := clipboard.ReadAll()
	if err != nil {
		return ClipboardResult{Err: err}
	}

	if !looksLikePQM(content) {
		return ClipboardResult{NotPQM: true}
	}

	formatted, err := pqmfmt.Format(content, cfg)
	if err != nil {
		recovery := errorRecoveryPayload(err, content)
		if writeErr := clipboard.WriteAll(recovery); writeErr != nil {
			return ClipboardResult{Err: writeErr}
		}
		return ClipboardResult{Err: err}
	}

	if err := clipboard.WriteAll(formatted); err != nil {
		return ClipboardResult{Err: err}
	}
	return ClipboardResult{Formatted: formatted}
}

func errorRecoveryPayload(err error, original string) string {
	var b strings.Builder
	b.WriteString("// Format Error:\n")
	for _, line := range strings.Split(err.Error(), "\n") {
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(original)
	return b.String()
}
