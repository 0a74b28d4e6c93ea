package lexer_test

import (
	"testing"

	"pqmfmt/internal/lexer"
	"pqmfmt/internal/source"
	"pqmfmt/internal/token"
)

func collectKinds(t *testing.T, input string) []token.Kind {
	t.Helper()
	file := source.NewFile("test.pq", []byte(input))
	lx := lexer.New(file)

	var kinds []token.Kind
	for {
		tok := lx.Next()
		if err := lx.Err(); err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	return kinds
}

func TestLexer_Keywords(t *testing.T) {
	kinds := collectKinds(t, "let x = 1 in x")
	want := []token.Kind{token.KwLet, token.Ident, token.Equals, token.Number, token.KwIn, token.Ident, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], k)
		}
	}
}

func TestLexer_DottedIdentifierIsOneToken(t *testing.T) {
	kinds := collectKinds(t, "Table.FromRows")
	want := []token.Kind{token.Ident, token.EOF}
	if len(kinds) != len(want) || kinds[0] != token.Ident {
		t.Fatalf("Table.FromRows should lex as a single Ident, got %v", kinds)
	}
}

func TestLexer_QuotedIdentifier(t *testing.T) {
	file := source.NewFile("test.pq", []byte(`#"Changed Type" = 1`))
	lx := lexer.New(file)
	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("got %v, want Ident", tok.Kind)
	}
	if tok.Text != `#"Changed Type"` {
		t.Errorf("got %q", tok.Text)
	}
}

func TestLexer_Numbers(t *testing.T) {
	cases := []string{"1", "1.5", "0x1F", "1e10", "1.5e-3"}
	for _, c := range cases {
		kinds := collectKinds(t, c)
		if len(kinds) != 2 || kinds[0] != token.Number {
			t.Errorf("%q: got %v, want [Number EOF]", c, kinds)
		}
	}
}

func TestLexer_Operators(t *testing.T) {
	kinds := collectKinds(t, "<= >= <> => ..")
	want := []token.Kind{token.Le, token.Ge, token.NotEq, token.Arrow, token.DotDot, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], k)
		}
	}
}

func TestLexer_StringWithEscapedQuote(t *testing.T) {
	file := source.NewFile("test.pq", []byte(`"a ""quoted"" b"`))
	lx := lexer.New(file)
	tok := lx.Next()
	if tok.Kind != token.String {
		t.Fatalf("got %v, want String", tok.Kind)
	}
	next := lx.Next()
	if next.Kind != token.EOF {
		t.Fatalf("expected EOF after the string, got %v (text %q)", next.Kind, next.Text)
	}
}

func TestLexer_UnterminatedStringIsAnError(t *testing.T) {
	file := source.NewFile("test.pq", []byte(`"unterminated`))
	lx := lexer.New(file)
	lx.Next()
	if lx.Err() == nil {
		t.Fatal("expected a lex error for an unterminated string literal")
	}
}

func TestLexer_BlockCommentIsNotProtectedByAQuoteLookalike(t *testing.T) {
	// The scanner has no notion of strings while inside a block comment,
	// so a `*/` that happens to sit after an unmatched `"` still ends the
	// comment right there instead of being treated as still "inside" a
	// string.
	file := source.NewFile("test.pq", []byte(`1 /* a "b */ c`))
	lx := lexer.New(file)

	tok := lx.Next()
	if lx.Err() != nil {
		t.Fatalf("unexpected lex error: %v", lx.Err())
	}
	if tok.Kind != token.Number {
		t.Fatalf("got %v, want Number", tok.Kind)
	}

	next := lx.Next()
	if lx.Err() != nil {
		t.Fatalf("unexpected lex error: %v", lx.Err())
	}
	if next.Kind != token.Ident || next.Text != "c" {
		t.Fatalf("got %v %q, want Ident \"c\" (block comment should have ended at the first */)", next.Kind, next.Text)
	}

	var comment string
	for _, tr := range next.Leading {
		if tr.IsComment() {
			comment = tr.Text
		}
	}
	if comment != `/* a "b */` {
		t.Errorf("comment trivia = %q, want %q", comment, `/* a "b */`)
	}
}

func TestLexer_CommentsBecomeLeadingTrivia(t *testing.T) {
	file := source.NewFile("test.pq", []byte("// a comment\nx"))
	lx := lexer.New(file)
	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("got %v, want Ident", tok.Kind)
	}
	var sawComment bool
	for _, tr := range tok.Leading {
		if tr.IsComment() {
			sawComment = true
		}
	}
	if !sawComment {
		t.Error("expected the line comment to be attached as leading trivia")
	}
}
