// Package pqmfmt formats Power Query M source code. Format is the sole
// entry point: a pure function from a source string and a Config to either
// the formatted string or a structured error
package pqmfmt

import (
	"fmt"

	"pqmfmt/internal/format"
	"pqmfmt/internal/lexer"
	"pqmfmt/internal/parser"
	"pqmfmt/internal/source"
)

// Mode selects the pretty-printer's layout policy
type Mode = format.Mode

const (
	Default  = format.ModeDefault
	Compact  = format.ModeCompact
	Expanded = format.ModeExpanded
)

// IndentChar selects the character an indent unit is made of.
type IndentChar int

const (
	IndentSpace IndentChar = iota
	IndentTab
)

// Config is the formatter's configuration, immutable once constructed
// Zero value is not meaningful; build one via
// DefaultConfig, CompactConfig, or ExpandedConfig and override fields.
type Config struct {
	Mode       Mode
	IndentUnit int
	IndentChar IndentChar
	LineLength int
}

// DefaultConfig returns the Default-mode preset: 4-space indent, 100
// column soft line length.
func DefaultConfig() Config {
	return Config{Mode: Default, IndentUnit: 4, IndentChar: IndentSpace, LineLength: 100}
}

// CompactConfig returns DefaultConfig with Mode set to Compact; all other
// fields are unchanged
func CompactConfig() Config {
	c := DefaultConfig()
	c.Mode = Compact
	return c
}

// ExpandedConfig returns DefaultConfig with Mode set to Expanded.
func ExpandedConfig() Config {
	c := DefaultConfig()
	c.Mode = Expanded
	return c
}

// LexError is raised when source cannot be tokenized: an unterminated
// literal or an unrecognised character
type LexError struct {
	Line    uint32
	Column  uint32
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseError is raised when the token stream doesn't match the grammar:
// an unexpected token or an unfinished construct The parser
// stops at the first error; there is no recovery and no partial output.
type ParseError struct {
	Line    uint32
	Column  uint32
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Format parses src as Power Query M and renders it back out under cfg.
// It performs no IO and never panics on malformed input: a lex or parse
// failure comes back as a *LexError or *ParseError.
func Format(src string, cfg Config) (string, error) {
	file := source.NewFile("", []byte(src))
	lx := lexer.New(file)
	root, err := parser.ParseProgram(lx)
	if err != nil {
		return "", wrapErr(err)
	}
	return format.Format(root, toFormatOptions(cfg)), nil
}

// wrapErr translates a parser.Error into the public error taxonomy
// ParseProgram is the only thing that ever returns an
// error, including lexical failures surfaced through peek/advance, so
// the FromLexer flag is what tells a LexError apart from a ParseError.
func wrapErr(err error) error {
	e, ok := err.(*parser.Error)
	if !ok {
		return err
	}
	if e.FromLexer {
		return &LexError{Line: e.Pos.Line, Column: e.Pos.Column, Message: e.Message}
	}
	return &ParseError{Line: e.Pos.Line, Column: e.Pos.Column, Message: e.Message}
}

func toFormatOptions(cfg Config) format.Options {
	return format.Options{
		Mode:       cfg.Mode,
		IndentUnit: cfg.IndentUnit,
		UseTabs:    cfg.IndentChar == IndentTab,
		LineLength: cfg.LineLength,
	}
}
