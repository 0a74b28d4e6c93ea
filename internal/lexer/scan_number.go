package lexer

import "pqmfmt/internal/token"

// scanNumber consumes a decimal integer, a decimal with a fractional part,
// a hex literal (0x...), or a number in scientific notation. A leading
// sign is never consumed here: unary minus is a parser concern.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cur.off

	if lx.cur.Peek() == '0' && (lx.cur.PeekAt(1) == 'x' || lx.cur.PeekAt(1) == 'X') {
		lx.cur.Advance()
		lx.cur.Advance()
		for isHex(lx.cur.Peek()) {
			lx.cur.Advance()
		}
		return lx.makeToken(token.Number, start)
	}

	for isDec(lx.cur.Peek()) {
		lx.cur.Advance()
	}

	if lx.cur.Peek() == '.' && isDec(lx.cur.PeekAt(1)) {
		lx.cur.Advance()
		for isDec(lx.cur.Peek()) {
			lx.cur.Advance()
		}
	}

	if lx.cur.Peek() == 'e' || lx.cur.Peek() == 'E' {
		save := lx.cur.off
		lx.cur.Advance()
		if lx.cur.Peek() == '+' || lx.cur.Peek() == '-' {
			lx.cur.Advance()
		}
		if isDec(lx.cur.Peek()) {
			for isDec(lx.cur.Peek()) {
				lx.cur.Advance()
			}
		} else {
			lx.cur.off = save
		}
	}

	return lx.makeToken(token.Number, start)
}

// isNumberAfterDot reports whether the '.' at the cursor begins a number
// like `.5` rather than a Dot/DotDot punctuation token.
func (lx *Lexer) isNumberAfterDot() bool {
	return isDec(lx.cur.PeekAt(1))
}
