package symbols

import (
	"github.com/funvibe/coolc/internal/config"
)

// AddMethod declares a method of class. Redeclaring a method in the same
// class fails, and so does overriding an inherited method with a different
// number of arguments, argument types or return type.
func (st *SymbolTable) AddMethod(class, name, returnType string, argTypes []string) error {
	table := st.methodTable(class)
	if _, exists := table[name]; exists {
		return newSymbolError(ErrRedefined, name, "Method %s is multiply defined.", name)
	}

	if parent, ok := st.classes.Parent(class); ok {
		if inherited, found := st.LookupMethod(parent, name); found {
			if err := checkOverride(name, inherited, returnType, argTypes); err != nil {
				return err
			}
		}
	}

	args := make([]string, len(argTypes))
	copy(args, argTypes)
	table[name] = &MethodSignature{Class: class, Name: name, ReturnType: returnType, ArgTypes: args}
	return nil
}

func checkOverride(name string, inherited *MethodSignature, returnType string, argTypes []string) error {
	if len(argTypes) != len(inherited.ArgTypes) {
		return newSymbolError(ErrOverride, name,
			"Incompatible number of formal parameters in redefined method %s.", name)
	}
	for i, t := range argTypes {
		if t != inherited.ArgTypes[i] {
			return newSymbolError(ErrOverride, name,
				"In redefined method %s, parameter type %s is different from original type %s.", name, t, inherited.ArgTypes[i])
		}
	}
	if returnType != inherited.ReturnType {
		return newSymbolError(ErrOverride, name,
			"In redefined method %s, return type %s is different from original return type %s.", name, returnType, inherited.ReturnType)
	}
	return nil
}

// AddAttribute declares an attribute of class. Attributes cannot be named
// self or shadow an attribute of the class or any ancestor.
func (st *SymbolTable) AddAttribute(class, name, typ string) error {
	if name == config.SelfName {
		return newSymbolError(ErrSelfName, name, "'self' cannot be the name of an attribute.")
	}
	if _, exists := st.attributeTable(class)[name]; exists {
		return newSymbolError(ErrRedefined, name, "Attribute %s is multiply defined in class.", name)
	}
	if parent, ok := st.classes.Parent(class); ok {
		if _, found := st.LookupAttribute(parent, name); found {
			return newSymbolError(ErrInherited, name, "Attribute %s is an attribute of an inherited class.", name)
		}
	}

	st.attributeTable(class)[name] = &Symbol{Name: name, Type: typ, Kind: AttributeSymbol, Class: class}
	return nil
}

// AddObject binds name in the innermost scope.
func (st *SymbolTable) AddObject(name, typ string, kind SymbolKind) error {
	if name == config.SelfName {
		return newSymbolError(ErrSelfName, name, "'self' cannot be bound.")
	}
	if len(st.frames) == 0 {
		st.Push()
	}
	frame := st.frames[len(st.frames)-1]
	if _, exists := frame[name]; exists {
		return newSymbolError(ErrRedefined, name, "Identifier %s is multiply defined in this scope.", name)
	}
	if typ != config.SelfTypeName && !st.classes.HasClass(typ) {
		return newSymbolError(ErrUnknownType, name, "Class %s of %s is undefined.", typ, name)
	}

	frame[name] = &Symbol{Name: name, Type: typ, Kind: kind}
	return nil
}

// Push opens a new innermost scope.
func (st *SymbolTable) Push() {
	st.frames = append(st.frames, make(map[string]*Symbol))
}

// Pop closes the innermost scope.
func (st *SymbolTable) Pop() {
	if len(st.frames) > 0 {
		st.frames = st.frames[:len(st.frames)-1]
	}
}

// Enter runs fn inside a fresh scope that is closed on every exit path.
func (st *SymbolTable) Enter(fn func()) {
	st.Push()
	defer st.Pop()
	fn()
}

// Depth is the number of open scopes.
func (st *SymbolTable) Depth() int {
	return len(st.frames)
}
