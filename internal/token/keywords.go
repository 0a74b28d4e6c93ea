package token

// keywords maps the exact spelling of a reserved word or literal keyword to
// its Kind. The lexer looks an already-scanned identifier up here once; it
// never re-reads characters to decide whether something is a keyword.
var keywords = map[string]Kind{
	"let":       KwLet,
	"in":        KwIn,
	"if":        KwIf,
	"then":      KwThen,
	"else":      KwElse,
	"try":       KwTry,
	"otherwise": KwOtherwise,
	"error":     KwError,
	"each":      KwEach,
	"as":        KwAs,
	"is":        KwIs,
	"meta":      KwMeta,
	"type":      KwType,
	"nullable":  KwNullable,
	"optional":  KwOptional,
	"section":   KwSection,
	"shared":    KwShared,
	"and":       KwAnd,
	"or":        KwOr,
	"not":       KwNot,
	"null":      Null,
	"true":      True,
	"false":     False,
}

// LookupKeyword returns the Kind of text if it is a reserved word or
// literal keyword, and whether the lookup succeeded.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// contextualFieldKeywords lists keyword kinds that may be reinterpreted as
// plain field-name identifiers inside record field positions and `[` `]`
// field selectors.
var contextualFieldKeywords = map[Kind]bool{
	KwType:      true,
	KwError:     true,
	KwIf:        true,
	KwThen:      true,
	KwElse:      true,
	KwEach:      true,
	KwTry:       true,
	KwOtherwise: true,
	KwLet:       true,
	KwIn:        true,
	KwAs:        true,
	KwIs:        true,
	KwMeta:      true,
	KwSection:   true,
	KwShared:    true,
}

// IsContextualFieldKeyword reports whether k may be used as a field name
// when it appears in record-field or field-access position.
func IsContextualFieldKeyword(k Kind) bool {
	return contextualFieldKeywords[k]
}
