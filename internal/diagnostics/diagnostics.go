package diagnostics

import (
	"fmt"
	"strings"

	"github.com/funvibe/coolc/internal/token"
)

type ErrorCode string

// Lexer errors
const (
	ErrL001 ErrorCode = "L001" // invalid token
)

// Parser errors
const (
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // empty block, case or let
	ErrP003 ErrorCode = "P003" // program without classes
	ErrP004 ErrorCode = "P004" // malformed literal
)

// Class hierarchy errors
const (
	ErrH001 ErrorCode = "H001" // redefinition of a basic class
	ErrH002 ErrorCode = "H002" // inheriting from a sealed class
	ErrH003 ErrorCode = "H003" // duplicate class
	ErrH004 ErrorCode = "H004" // undefined parent
	ErrH005 ErrorCode = "H005" // inheritance cycle
	ErrH006 ErrorCode = "H006" // Main is missing
)

// Semantic errors
const (
	ErrS001 ErrorCode = "S001" // undeclared identifier
	ErrS002 ErrorCode = "S002" // type does not conform
	ErrS003 ErrorCode = "S003" // undefined method
	ErrS004 ErrorCode = "S004" // wrong number of arguments
	ErrS005 ErrorCode = "S005" // feature or binding redefined
	ErrS006 ErrorCode = "S006" // incompatible method override
	ErrS007 ErrorCode = "S007" // illegal use of self
	ErrS008 ErrorCode = "S008" // undefined type
	ErrS009 ErrorCode = "S009" // duplicate case branch
	ErrS010 ErrorCode = "S010" // illegal use of SELF_TYPE
	ErrS011 ErrorCode = "S011" // operand type mismatch
)

// Phase identifies the front-end stage an error belongs to.
type Phase int

const (
	PhaseLex Phase = iota
	PhaseParse
	PhaseSemant
)

// String returns the wording used in the halting message.
func (p Phase) String() string {
	switch p {
	case PhaseLex, PhaseParse:
		return "lex and parse"
	default:
		return "static semantic"
	}
}

// Halted is the message printed when a phase stops compilation.
func Halted(p Phase) string {
	if p == PhaseSemant {
		return fmt.Sprintf("Compilation halted due to %s errors.", p)
	}
	return fmt.Sprintf("Compilation halted due to %s errors", p)
}

// DiagnosticError is a compile error tied to a source location.
type DiagnosticError struct {
	Code    ErrorCode
	File    string
	Token   token.Token
	Message string
}

// NewError builds a diagnostic located at tok.
func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

// NewErrorAt builds a diagnostic for an AST node that only knows its line.
func NewErrorAt(code ErrorCode, line int, format string, args ...interface{}) *DiagnosticError {
	return NewError(code, token.Token{Line: line}, format, args...)
}

// Line is the source line of the error, 0 when unknown.
func (e *DiagnosticError) Line() int {
	return e.Token.Line
}

// Phase derives the stage from the error code.
func (e *DiagnosticError) Phase() Phase {
	switch {
	case strings.HasPrefix(string(e.Code), "L"):
		return PhaseLex
	case strings.HasPrefix(string(e.Code), "P"):
		return PhaseParse
	default:
		return PhaseSemant
	}
}

// Error renders "<file>:<line>: <message>", dropping the parts that are unknown.
func (e *DiagnosticError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteByte(':')
	}
	if e.Token.Line > 0 {
		fmt.Fprintf(&sb, "%d:", e.Token.Line)
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(e.Message)
	return sb.String()
}
