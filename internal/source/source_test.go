package source_test

import (
	"testing"

	"pqmfmt/internal/source"
)

func TestFile_Resolve(t *testing.T) {
	content := []byte("abc\ndef\nghi")
	file := source.NewFile("test.pq", content)

	cases := []struct {
		offset uint32
		line   uint32
		column uint32
	}{
		{0, 1, 1},  // 'a'
		{2, 1, 3},  // 'c'
		{3, 1, 4},  // '\n'
		{4, 2, 1},  // 'd'
		{7, 2, 4},  // '\n'
		{8, 3, 1},  // 'g'
		{10, 3, 3}, // 'i'
	}
	for _, c := range cases {
		pos := file.Resolve(c.offset)
		if pos.Line != c.line || pos.Column != c.column {
			t.Errorf("Resolve(%d) = %d:%d, want %d:%d", c.offset, pos.Line, pos.Column, c.line, c.column)
		}
		if pos.Offset != c.offset {
			t.Errorf("Resolve(%d).Offset = %d, want %d", c.offset, pos.Offset, c.offset)
		}
	}
}

func TestFile_ResolveSingleLine(t *testing.T) {
	file := source.NewFile("test.pq", []byte("no newlines here"))
	pos := file.Resolve(5)
	if pos.Line != 1 || pos.Column != 6 {
		t.Errorf("Resolve(5) = %d:%d, want 1:6", pos.Line, pos.Column)
	}
}

func TestSpan_Cover(t *testing.T) {
	a := source.Span{Start: source.Position{Offset: 5}, End: source.Position{Offset: 10}}
	b := source.Span{Start: source.Position{Offset: 2}, End: source.Position{Offset: 7}}
	got := a.Cover(b)
	if got.Start.Offset != 2 || got.End.Offset != 10 {
		t.Errorf("Cover = [%d,%d), want [2,10)", got.Start.Offset, got.End.Offset)
	}
}

func TestSpan_Empty(t *testing.T) {
	p := source.Position{Offset: 3}
	if !(source.Span{Start: p, End: p}).Empty() {
		t.Error("a span with equal start and end should be Empty")
	}
	if (source.Span{Start: source.Position{Offset: 3}, End: source.Position{Offset: 4}}).Empty() {
		t.Error("a span covering one byte should not be Empty")
	}
}

func TestPosition_String(t *testing.T) {
	p := source.Position{Line: 4, Column: 9}
	if got := p.String(); got != "4:9" {
		t.Errorf("String() = %q, want %q", got, "4:9")
	}
}
