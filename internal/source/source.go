// Package source tracks byte positions inside the text a single formatter
// call operates on and resolves them to human-readable line/column pairs.
package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Position is a human-readable location within the source text.
type Position struct {
	Line   uint32 // 1-based
	Column uint32 // 1-based
	Offset uint32 // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers a half-open byte range [Start,End) in the source text.
type Span struct {
	Start Position
	End   Position
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	out := s
	if other.Start.Offset < out.Start.Offset {
		out.Start = other.Start
	}
	if other.End.Offset > out.End.Offset {
		out.End = other.End
	}
	return out
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

// File wraps the text a single Format call was invoked on. Unlike the
// multi-file FileSet this is ported from, a formatter invocation never
// spans more than one source string, so there is no file index to keep.
type File struct {
	Path    string
	Content []byte
	lineIdx []uint32
}

// NewFile builds a File and its line index from content.
func NewFile(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		lineIdx: buildLineIndex(content),
	}
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			idx, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("source: line index overflow: %w", err))
			}
			out = append(out, idx)
		}
	}
	return out
}

// Resolve converts a byte offset into a 1-based line/column Position.
func (f *File) Resolve(offset uint32) Position {
	// count is the number of newlines strictly before offset: the offset
	// falls on line count+1, which starts right after the count-th one.
	lo, hi := 0, len(f.lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if f.lineIdx[mid] < offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	count := lo

	var lineStart uint32
	if count > 0 {
		lineStart = f.lineIdx[count-1] + 1
	}
	lineNum, err := safecast.Conv[uint32](count + 1)
	if err != nil {
		panic(fmt.Errorf("source: line number overflow: %w", err))
	}
	return Position{
		Line:   lineNum,
		Column: offset - lineStart + 1,
		Offset: offset,
	}
}
