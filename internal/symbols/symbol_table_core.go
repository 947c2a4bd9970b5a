package symbols

import (
	"fmt"
	"strings"

	"github.com/funvibe/coolc/internal/diagnostics"
)

type SymbolKind int

const (
	AttributeSymbol SymbolKind = iota
	FormalSymbol
	LocalSymbol // let or case binding
)

// Symbol is a named object in scope.
type Symbol struct {
	Name  string
	Type  string
	Kind  SymbolKind
	Class string // declaring class, for attributes
}

// MethodSignature is a declared or built-in method.
type MethodSignature struct {
	Class      string
	Name       string
	ReturnType string
	ArgTypes   []string
}

func (m *MethodSignature) String() string {
	return fmt.Sprintf("%s.%s(%s) : %s", m.Class, m.Name, strings.Join(m.ArgTypes, ", "), m.ReturnType)
}

// ErrorKind classifies declaration failures so callers can word them for
// their context.
type ErrorKind int

const (
	ErrSelfName ErrorKind = iota
	ErrRedefined
	ErrInherited
	ErrOverride
	ErrUnknownType
)

// SymbolError is returned by the Add operations.
type SymbolError struct {
	Kind    ErrorKind
	Name    string
	Message string
}

func (e *SymbolError) Error() string {
	return e.Message
}

// Code maps the failure to its diagnostic code.
func (e *SymbolError) Code() diagnostics.ErrorCode {
	switch e.Kind {
	case ErrSelfName:
		return diagnostics.ErrS007
	case ErrOverride:
		return diagnostics.ErrS006
	case ErrUnknownType:
		return diagnostics.ErrS008
	default:
		return diagnostics.ErrS005
	}
}

func newSymbolError(kind ErrorKind, name, format string, args ...interface{}) *SymbolError {
	return &SymbolError{Kind: kind, Name: name, Message: fmt.Sprintf(format, args...)}
}
