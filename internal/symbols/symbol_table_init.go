package symbols

import (
	"github.com/funvibe/coolc/internal/config"
)

// builtinMethods are the methods of the basic classes. The table is shared
// by every SymbolTable and never written.
var builtinMethods = []MethodSignature{
	{Class: config.ObjectClassName, Name: config.AbortMethodName, ReturnType: config.ObjectClassName},
	{Class: config.ObjectClassName, Name: config.TypeNameMethodName, ReturnType: config.StringClassName},
	{Class: config.ObjectClassName, Name: config.CopyMethodName, ReturnType: config.SelfTypeName},

	{Class: config.IOClassName, Name: config.OutStringMethodName, ReturnType: config.SelfTypeName, ArgTypes: []string{config.StringClassName}},
	{Class: config.IOClassName, Name: config.InStringMethodName, ReturnType: config.StringClassName},
	{Class: config.IOClassName, Name: config.OutIntMethodName, ReturnType: config.SelfTypeName, ArgTypes: []string{config.IntClassName}},
	{Class: config.IOClassName, Name: config.InIntMethodName, ReturnType: config.IntClassName},

	{Class: config.StringClassName, Name: config.LengthMethodName, ReturnType: config.IntClassName},
	{Class: config.StringClassName, Name: config.SubstrMethodName, ReturnType: config.StringClassName, ArgTypes: []string{config.IntClassName, config.IntClassName}},
	{Class: config.StringClassName, Name: config.ConcatMethodName, ReturnType: config.StringClassName, ArgTypes: []string{config.StringClassName}},
}

// SymbolTable holds per-class method and attribute tables and the stack of
// local scopes used while checking bodies. One table serves one program.
type SymbolTable struct {
	classes    ClassHierarchy
	methods    map[string]map[string]*MethodSignature
	attributes map[string]map[string]*Symbol
	frames     []map[string]*Symbol
}

func NewSymbolTable(classes ClassHierarchy) *SymbolTable {
	st := &SymbolTable{
		classes:    classes,
		methods:    make(map[string]map[string]*MethodSignature),
		attributes: make(map[string]map[string]*Symbol),
	}
	builtins := BuiltinMethods()
	for i := range builtins {
		st.methodTable(builtins[i].Class)[builtins[i].Name] = &builtins[i]
	}
	return st
}

// BuiltinMethods returns a copy of the built-in signatures.
func BuiltinMethods() []MethodSignature {
	out := make([]MethodSignature, len(builtinMethods))
	copy(out, builtinMethods)
	return out
}

func (st *SymbolTable) methodTable(class string) map[string]*MethodSignature {
	table, ok := st.methods[class]
	if !ok {
		table = make(map[string]*MethodSignature)
		st.methods[class] = table
	}
	return table
}

func (st *SymbolTable) attributeTable(class string) map[string]*Symbol {
	table, ok := st.attributes[class]
	if !ok {
		table = make(map[string]*Symbol)
		st.attributes[class] = table
	}
	return table
}
