package lexer

import "unicode"

const utf8RuneSelf = 0x80

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '.'
}

// isIdentStartRune reports whether r may start an identifier: an ASCII
// letter/underscore or any Unicode letter
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdentContinueRune reports whether r may continue an identifier already
// begun: letters, digits, underscore, and the literal dot that lets
// `Table.FromRows` lex as one token.
func isIdentContinueRune(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
