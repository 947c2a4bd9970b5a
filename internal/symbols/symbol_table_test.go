package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/coolc/internal/diagnostics"
)

// hierarchy is a parent map standing in for the inheritance graph.
type hierarchy map[string]string

func (h hierarchy) HasClass(name string) bool {
	_, ok := h[name]
	return ok
}

func (h hierarchy) Parent(name string) (string, bool) {
	p, ok := h[name]
	if !ok || p == "" {
		return "", false
	}
	return p, true
}

func newTable() *SymbolTable {
	return NewSymbolTable(hierarchy{
		"Object": "",
		"IO":     "Object",
		"Int":    "Object",
		"String": "Object",
		"Bool":   "Object",
		"A":      "Object",
		"B":      "A",
		"Main":   "IO",
	})
}

func TestBuiltinMethods(t *testing.T) {
	st := newTable()

	tests := []struct {
		class, method string
		ret           string
		args          []string
		owner         string
	}{
		{"Object", "abort", "Object", []string{}, "Object"},
		{"B", "type_name", "String", []string{}, "Object"},
		{"Main", "copy", "SELF_TYPE", []string{}, "Object"},
		{"Main", "out_string", "SELF_TYPE", []string{"String"}, "IO"},
		{"IO", "out_int", "SELF_TYPE", []string{"Int"}, "IO"},
		{"IO", "in_string", "String", []string{}, "IO"},
		{"IO", "in_int", "Int", []string{}, "IO"},
		{"String", "length", "Int", []string{}, "String"},
		{"String", "substr", "String", []string{"Int", "Int"}, "String"},
		{"String", "concat", "String", []string{"String"}, "String"},
	}

	for _, tt := range tests {
		t.Run(tt.class+"."+tt.method, func(t *testing.T) {
			sig, ok := st.LookupMethod(tt.class, tt.method)
			require.True(t, ok)
			assert.Equal(t, tt.ret, sig.ReturnType)
			assert.Len(t, sig.ArgTypes, len(tt.args))
			for i, a := range tt.args {
				assert.Equal(t, a, sig.ArgTypes[i])
			}
			assert.Equal(t, tt.owner, sig.Class)
		})
	}

	_, ok := st.LookupMethod("A", "out_string")
	assert.False(t, ok)
	_, ok = st.LookupMethod("Int", "length")
	assert.False(t, ok)
	assert.Len(t, BuiltinMethods(), 10)
}

func TestTablesAreIndependent(t *testing.T) {
	first := newTable()
	second := newTable()

	require.NoError(t, first.AddMethod("A", "f", "Int", nil))
	_, ok := second.LookupMethod("A", "f")
	assert.False(t, ok)

	sig, _ := first.LookupMethod("IO", "out_string")
	sig.ReturnType = "Object"
	sig, _ = second.LookupMethod("IO", "out_string")
	assert.Equal(t, "SELF_TYPE", sig.ReturnType)
}

func TestAddMethod(t *testing.T) {
	st := newTable()

	require.NoError(t, st.AddMethod("A", "f", "Int", []string{"Int", "String"}))
	require.NoError(t, st.AddMethod("B", "f", "Int", []string{"Int", "String"}))
	require.NoError(t, st.AddMethod("B", "type_name", "String", nil))

	tests := []struct {
		name    string
		class   string
		method  string
		ret     string
		args    []string
		kind    ErrorKind
		message string
	}{
		{"same class", "A", "f", "Int", []string{"Int", "String"}, ErrRedefined, "Method f is multiply defined."},
		{"arity", "Main", "out_string", "SELF_TYPE", nil, ErrOverride, "Incompatible number of formal parameters in redefined method out_string."},
		{"argument type", "Main", "out_int", "SELF_TYPE", []string{"String"}, ErrOverride, "In redefined method out_int, parameter type String is different from original type Int."},
		{"return type", "Main", "in_int", "Object", nil, ErrOverride, "In redefined method in_int, return type Object is different from original return type Int."},
		{"inherited from user class", "B", "f", "Int", []string{"Int"}, ErrRedefined, "Method f is multiply defined."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.AddMethod(tt.class, tt.method, tt.ret, tt.args)
			require.Error(t, err)
			var se *SymbolError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.kind, se.Kind)
			assert.Equal(t, tt.message, se.Error())
		})
	}

	sig, ok := st.LookupMethod("B", "f")
	require.True(t, ok)
	assert.Equal(t, "B", sig.Class)
	assert.Equal(t, "B.f(Int, String) : Int", sig.String())
}

func TestAddMethodOverrideThroughChain(t *testing.T) {
	st := newTable()
	require.NoError(t, st.AddMethod("A", "g", "A", []string{"Int"}))

	err := st.AddMethod("B", "g", "B", []string{"Int"})
	var se *SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, diagnostics.ErrS006, se.Code())
}

func TestAddAttribute(t *testing.T) {
	st := newTable()
	require.NoError(t, st.AddAttribute("A", "x", "Int"))

	err := st.AddAttribute("A", "self", "Int")
	var se *SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrSelfName, se.Kind)
	assert.Equal(t, diagnostics.ErrS007, se.Code())

	err = st.AddAttribute("A", "x", "String")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrRedefined, se.Kind)
	assert.Equal(t, diagnostics.ErrS005, se.Code())

	err = st.AddAttribute("B", "x", "Int")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrInherited, se.Kind)
	assert.Equal(t, "Attribute x is an attribute of an inherited class.", se.Error())

	require.NoError(t, st.AddAttribute("B", "y", "Bool"))
	sym, ok := st.LookupAttribute("B", "x")
	require.True(t, ok)
	assert.Equal(t, "A", sym.Class)
	_, ok = st.LookupAttribute("A", "y")
	assert.False(t, ok)
}

func TestScopes(t *testing.T) {
	st := newTable()
	require.NoError(t, st.AddAttribute("A", "x", "Int"))

	st.Enter(func() {
		require.NoError(t, st.AddObject("x", "String", FormalSymbol))
		sym, ok := st.LookupObject("B", "x")
		require.True(t, ok)
		assert.Equal(t, "String", sym.Type)

		st.Enter(func() {
			assert.Equal(t, 2, st.Depth())
			require.NoError(t, st.AddObject("x", "Bool", LocalSymbol))
			sym, _ := st.LookupObject("B", "x")
			assert.Equal(t, "Bool", sym.Type)
			assert.Equal(t, LocalSymbol, sym.Kind)
		})

		sym, _ = st.LookupObject("B", "x")
		assert.Equal(t, "String", sym.Type)
	})

	assert.Equal(t, 0, st.Depth())
	sym, ok := st.LookupObject("B", "x")
	require.True(t, ok)
	assert.Equal(t, AttributeSymbol, sym.Kind)
	assert.Equal(t, "Int", sym.Type)

	_, ok = st.LookupObject("B", "nope")
	assert.False(t, ok)
}

func TestAddObjectErrors(t *testing.T) {
	st := newTable()
	st.Push()
	defer st.Pop()

	require.NoError(t, st.AddObject("a", "SELF_TYPE", LocalSymbol))

	tests := []struct {
		name string
		obj  string
		typ  string
		kind ErrorKind
	}{
		{"self", "self", "Int", ErrSelfName},
		{"rebound in frame", "a", "Int", ErrRedefined},
		{"unknown type", "b", "Nope", ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.AddObject(tt.obj, tt.typ, LocalSymbol)
			var se *SymbolError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.kind, se.Kind)
		})
	}
}

func TestEnterPopsOnPanic(t *testing.T) {
	st := newTable()
	assert.Panics(t, func() {
		st.Enter(func() { panic("boom") })
	})
	assert.Equal(t, 0, st.Depth())
}
