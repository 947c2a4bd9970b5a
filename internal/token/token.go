package token

import (
	"strconv"
	"strings"
)

type TokenType int

const (
	// ERROR doubles as the end-of-stream marker when the lexeme is empty.
	ERROR TokenType = iota

	// Identifiers
	TYPEID
	OBJECTID

	// Literals
	INT_CONST
	STR_CONST
	TRUE
	FALSE

	// Keywords
	CLASS
	IF
	ELSE
	THEN
	FI
	IN
	INHERITS
	ISVOID
	LET
	LOOP
	POOL
	WHILE
	CASE
	ESAC
	NEW
	OF
	NOT

	// Special notation
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;
	COLON     // :
	PLUS      // +
	MINUS     // -
	ASTERISK  // *
	SLASH     // /
	TILDE     // ~
	LT        // <
	LE        // <=
	ASSIGN    // <-
	EQ        // =
	DARROW    // =>
	DOT       // .
	COMMA     // ,
	AT        // @
)

var names = [...]string{
	ERROR:     "ERROR",
	TYPEID:    "TYPEID",
	OBJECTID:  "OBJECTID",
	INT_CONST: "INT_CONST",
	STR_CONST: "STR_CONST",
	TRUE:      "BOOL_CONST true",
	FALSE:     "BOOL_CONST false",
	CLASS:     "CLASS",
	IF:        "IF",
	ELSE:      "ELSE",
	THEN:      "THEN",
	FI:        "FI",
	IN:        "IN",
	INHERITS:  "INHERITS",
	ISVOID:    "ISVOID",
	LET:       "LET",
	LOOP:      "LOOP",
	POOL:      "POOL",
	WHILE:     "WHILE",
	CASE:      "CASE",
	ESAC:      "ESAC",
	NEW:       "NEW",
	OF:        "OF",
	NOT:       "NOT",
	LBRACE:    "'{'",
	RBRACE:    "'}'",
	LPAREN:    "'('",
	RPAREN:    "')'",
	SEMICOLON: "';'",
	COLON:     "':'",
	PLUS:      "'+'",
	MINUS:     "'-'",
	ASTERISK:  "'*'",
	SLASH:     "'/'",
	TILDE:     "'~'",
	LT:        "'<'",
	LE:        "LE",
	ASSIGN:    "ASSIGN",
	EQ:        "'='",
	DARROW:    "DARROW",
	DOT:       "'.'",
	COMMA:     "','",
	AT:        "'@'",
}

// String returns the name used in token dumps.
func (t TokenType) String() string {
	if t < 0 || int(t) >= len(names) {
		return "UNKNOWN"
	}
	return names[t]
}

// Token is a single lexical unit. Lexeme holds the identifier name, the
// integer digits, the escaped string body or the lex error message; it is
// empty for punctuation and keywords.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
}

// EOF builds the end-of-stream marker.
func EOF(line int) Token {
	return Token{Type: ERROR, Line: line}
}

// IsEOF reports whether tok is the end-of-stream marker.
func (tok Token) IsEOF() bool {
	return tok.Type == ERROR && tok.Lexeme == ""
}

// IsError reports whether tok carries a lex error.
func (tok Token) IsError() bool {
	return tok.Type == ERROR && tok.Lexeme != ""
}

// String renders the token in the "#<line> <KIND> [lexeme]" dump format.
func (tok Token) String() string {
	var sb strings.Builder
	sb.WriteByte('#')
	sb.WriteString(strconv.Itoa(tok.Line))
	sb.WriteByte(' ')
	sb.WriteString(tok.Type.String())
	if tok.Lexeme != "" || tok.Type == STR_CONST {
		sb.WriteByte(' ')
		quoted := tok.Type == STR_CONST || tok.Type == ERROR
		if quoted {
			sb.WriteByte('"')
		}
		sb.WriteString(tok.Lexeme)
		if quoted {
			sb.WriteByte('"')
		}
	}
	return sb.String()
}

// Describe names the token for syntax error messages.
func (tok Token) Describe() string {
	switch {
	case tok.IsEOF():
		return "EOF"
	case tok.IsError():
		return "ERROR \"" + tok.Lexeme + "\""
	case tok.Type == TRUE || tok.Type == FALSE:
		return tok.Type.String()
	case tok.Lexeme != "":
		if tok.Type == STR_CONST {
			return tok.Type.String() + " = \"" + tok.Lexeme + "\""
		}
		return tok.Type.String() + " = " + tok.Lexeme
	default:
		return tok.Type.String()
	}
}
