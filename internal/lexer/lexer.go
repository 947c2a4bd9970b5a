package lexer

import (
	"strings"

	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// Tokenize materialises the whole stream. The result always ends with
// exactly one EOF token.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' && l.position < len(l.input) {
		l.line++
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
}

// atEOF distinguishes the end of input from a NUL byte in the source.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token. Lexical errors come back as ERROR tokens
// carrying the message; the end of input is an ERROR token without a lexeme.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipWhitespace()
		if l.atEOF() {
			return token.EOF(l.line)
		}

		line := l.line
		switch l.ch {
		case '(':
			if l.peekChar() == '*' {
				l.readChar()
				l.readChar()
				if !l.skipBlockComment() {
					return l.errorToken(l.line, "EOF in comment")
				}
				continue
			}
			return l.single(token.LPAREN)
		case '-':
			if l.peekChar() == '-' {
				for !l.atEOF() && l.ch != '\n' {
					l.readChar()
				}
				continue
			}
			return l.single(token.MINUS)
		case '*':
			if l.peekChar() == ')' {
				l.readChar()
				l.readChar()
				return l.errorToken(line, "Unmatched *)")
			}
			return l.single(token.ASTERISK)
		case '<':
			switch l.peekChar() {
			case '=':
				l.readChar()
				return l.single(token.LE)
			case '-':
				l.readChar()
				return l.single(token.ASSIGN)
			}
			return l.single(token.LT)
		case '=':
			if l.peekChar() == '>' {
				l.readChar()
				return l.single(token.DARROW)
			}
			return l.single(token.EQ)
		case '{':
			return l.single(token.LBRACE)
		case '}':
			return l.single(token.RBRACE)
		case ')':
			return l.single(token.RPAREN)
		case ';':
			return l.single(token.SEMICOLON)
		case ':':
			return l.single(token.COLON)
		case '+':
			return l.single(token.PLUS)
		case '/':
			return l.single(token.SLASH)
		case '~':
			return l.single(token.TILDE)
		case '.':
			return l.single(token.DOT)
		case ',':
			return l.single(token.COMMA)
		case '@':
			return l.single(token.AT)
		case '"':
			l.readChar()
			return l.readString()
		}

		switch {
		case isDigit(l.ch):
			return token.Token{Type: token.INT_CONST, Lexeme: l.readNumber(), Line: line}
		case isLetter(l.ch):
			ident := l.readIdentifier()
			tt := token.LookupIdent(ident)
			if tt == token.TYPEID || tt == token.OBJECTID {
				return token.Token{Type: tt, Lexeme: ident, Line: line}
			}
			return token.Token{Type: tt, Line: line}
		}

		ch := l.ch
		l.readChar()
		return l.errorToken(line, invalidChar(ch))
	}
}

func (l *Lexer) single(tt token.TokenType) token.Token {
	tok := token.Token{Type: tt, Line: l.line}
	l.readChar()
	return tok
}

func (l *Lexer) errorToken(line int, msg string) token.Token {
	return token.Token{Type: token.ERROR, Lexeme: msg, Line: line}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && isSpace(l.ch) {
		l.readChar()
	}
}

// skipBlockComment consumes a possibly nested comment whose opening "(*" has
// already been read. It reports false when the input ends first.
func (l *Lexer) skipBlockComment() bool {
	depth := 1
	for !l.atEOF() {
		switch {
		case l.ch == '(' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			depth++
		case l.ch == '*' && l.peekChar() == ')':
			l.readChar()
			l.readChar()
			depth--
			if depth == 0 {
				return true
			}
		default:
			l.readChar()
		}
	}
	return false
}

// readString scans a string body after the opening quote. Each source
// character or escape counts once towards the length limit. The token takes
// the line of its closing quote.
func (l *Lexer) readString() token.Token {
	var sb strings.Builder
	length := 0
	for {
		if l.atEOF() {
			return l.errorToken(l.line, "EOF in string constant")
		}

		switch c := l.ch; c {
		case '"':
			l.readChar()
			if length > config.MaxStringLength {
				return l.errorToken(l.line, "String constant too long")
			}
			return token.Token{Type: token.STR_CONST, Lexeme: sb.String(), Line: l.line}
		case 0:
			l.skipStringRest()
			return l.errorToken(l.line, "String contains null character.")
		case '\n':
			l.readChar()
			return l.errorToken(l.line, "Unterminated string constant")
		case '\\':
			l.readChar()
			if l.atEOF() {
				return l.errorToken(l.line, "EOF in string constant")
			}
			if l.ch == 0 {
				l.skipStringRest()
				return l.errorToken(l.line, "String contains escaped null character.")
			}
			sb.WriteString(escaped(l.ch))
			l.readChar()
		default:
			if r, ok := controlChars[c]; ok {
				sb.WriteString(r)
			} else {
				sb.WriteByte(c)
			}
			l.readChar()
		}
		length++
	}
}

// skipStringRest recovers from a NUL by skipping to the closing quote or the
// end of the line, consuming the quote.
func (l *Lexer) skipStringRest() {
	for !l.atEOF() && l.ch != '\n' && l.ch != '"' {
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar()
	}
}

// controlChars renders raw control bytes found inside string bodies.
var controlChars = map[byte]string{
	'\t': `\t`,
	'\b': `\b`,
	'\f': `\f`,
	'\r': `\015`,
	0x0b: `\013`,
	0x12: `\022`,
	0x1b: `\033`,
}

// escaped renders the character following a backslash.
func escaped(c byte) string {
	switch c {
	case 'n', '\n':
		return `\n`
	case 't':
		return `\t`
	case 'b':
		return `\b`
	case 'f':
		return `\f`
	case '\\':
		return `\\`
	case '"':
		return `\"`
	}
	if r, ok := controlChars[c]; ok {
		return r
	}
	return string([]byte{c})
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// invalidChar renders a character that cannot start any token.
func invalidChar(ch byte) string {
	switch {
	case ch <= 4:
		return `\00` + string('0'+ch)
	case ch == '\\':
		return `\\`
	}
	return string([]byte{ch})
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}
