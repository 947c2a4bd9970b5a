package config

const SourceFileExt = ".cl"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".cl", ".cool"}

// MaxStringLength is the longest string constant the lexer accepts.
const MaxStringLength = 1024

// Built-in class names
const (
	ObjectClassName = "Object"
	IOClassName     = "IO"
	IntClassName    = "Int"
	StringClassName = "String"
	BoolClassName   = "Bool"
	MainClassName   = "Main"
	SelfTypeName    = "SELF_TYPE"
	NoTypeName      = "_no_type"
)

// SelfName is the receiver object name.
const SelfName = "self"

// BasicClassNames are the classes every program gets for free.
var BasicClassNames = []string{ObjectClassName, IOClassName, IntClassName, StringClassName, BoolClassName}

// SealedClassNames cannot be inherited from.
var SealedClassNames = []string{IntClassName, StringClassName, BoolClassName}

// Built-in method names
const (
	AbortMethodName     = "abort"
	TypeNameMethodName  = "type_name"
	CopyMethodName      = "copy"
	OutStringMethodName = "out_string"
	InStringMethodName  = "in_string"
	OutIntMethodName    = "out_int"
	InIntMethodName     = "in_int"
	LengthMethodName    = "length"
	SubstrMethodName    = "substr"
	ConcatMethodName    = "concat"
	MainMethodName      = "main"
)

// IsBasicClass reports whether name is one of the built-in classes.
func IsBasicClass(name string) bool {
	for _, n := range BasicClassNames {
		if n == name {
			return true
		}
	}
	return false
}

// IsSealedClass reports whether name cannot be inherited from.
func IsSealedClass(name string) bool {
	for _, n := range SealedClassNames {
		if n == name {
			return true
		}
	}
	return false
}
