package typesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/token"
)

// program builds classes from name/parent pairs, one per line.
func program(pairs ...string) *ast.Program {
	prog := &ast.Program{File: "test.cl"}
	for i := 0; i+1 < len(pairs); i += 2 {
		prog.Classes = append(prog.Classes, &ast.Class{
			Token:  token.Token{Type: token.CLASS, Line: i/2 + 1},
			Name:   pairs[i],
			Parent: pairs[i+1],
			File:   "test.cl",
		})
	}
	return prog
}

func messages(errs diagnostics.List) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func TestBuildGraph(t *testing.T) {
	g, errs := BuildGraph(program("Main", "IO", "A", "Object", "B", "A"))
	require.Empty(t, errs)
	require.NotNil(t, g)

	assert.Equal(t, []string{"Object", "IO", "Int", "String", "Bool", "Main", "A", "B"}, g.Classes())
	assert.Equal(t, 0, g.Depth("Object"))
	assert.Equal(t, 1, g.Depth("IO"))
	assert.Equal(t, 2, g.Depth("Main"))
	assert.Equal(t, 2, g.Depth("B"))
	assert.Equal(t, -1, g.Depth("Missing"))

	parent, ok := g.Parent("B")
	assert.True(t, ok)
	assert.Equal(t, "A", parent)
	_, ok = g.Parent("Object")
	assert.False(t, ok)

	cls, ok := g.Class("A")
	require.True(t, ok)
	assert.Equal(t, 2, cls.Line())
	_, ok = g.Class("Int")
	assert.False(t, ok)

	assert.True(t, g.IsBasic("String"))
	assert.False(t, g.IsBasic("Main"))
}

func TestBuildGraphErrors(t *testing.T) {
	tests := []struct {
		name     string
		prog     *ast.Program
		expected []string
	}{
		{
			"self type redefined",
			program("Main", "Object", "SELF_TYPE", "Object"),
			[]string{"Redefinition of basic class SELF_TYPE."},
		},
		{
			"basic redefined",
			program("Main", "Object", "Int", "Object", "IO", "Object"),
			[]string{"Redefinition of basic class Int.", "Redefinition of basic class IO."},
		},
		{
			"sealed parent",
			program("Main", "String", "A", "Bool"),
			[]string{"Class Main cannot inherit class String.", "Class A cannot inherit class Bool."},
		},
		{
			"duplicate",
			program("Main", "Object", "Main", "IO"),
			[]string{"Class Main was previously defined."},
		},
		{
			"undefined parents are not cycles",
			program("Main", "Object", "A", "B", "C", "D"),
			[]string{"Class A inherits from undefined class B.", "Class C inherits from undefined class D."},
		},
		{
			"two class cycle",
			program("Main", "Object", "A", "B", "B", "A"),
			[]string{
				"Class A, or an ancestor of A, is involved in an inheritance cycle.",
				"Class B, or an ancestor of B, is involved in an inheritance cycle.",
			},
		},
		{
			"descendant of a cycle",
			program("Main", "C", "A", "B", "B", "A", "C", "A"),
			[]string{
				"Class Main, or an ancestor of Main, is involved in an inheritance cycle.",
				"Class A, or an ancestor of A, is involved in an inheritance cycle.",
				"Class B, or an ancestor of B, is involved in an inheritance cycle.",
				"Class C, or an ancestor of C, is involved in an inheritance cycle.",
			},
		},
		{
			"self cycle",
			program("Main", "Main"),
			[]string{"Class Main, or an ancestor of Main, is involved in an inheritance cycle."},
		},
		{
			"missing main",
			program("A", "Object"),
			[]string{"Class Main is not defined."},
		},
		{
			"insertion errors suppress main check",
			program("A", "Int"),
			[]string{"Class A cannot inherit class Int."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, errs := BuildGraph(tt.prog)
			assert.Nil(t, g)
			assert.Equal(t, tt.expected, messages(errs))
			for _, e := range errs {
				assert.Equal(t, diagnostics.PhaseSemant, e.Phase())
				assert.Equal(t, "test.cl", e.File)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	_, errs := BuildGraph(program("Main", "Object", "Int", "Object", "A", "String", "Main", "IO", "B", "Z"))
	require.Len(t, errs, 4)
	assert.Equal(t, diagnostics.ErrH001, errs[0].Code)
	assert.Equal(t, diagnostics.ErrH002, errs[1].Code)
	assert.Equal(t, diagnostics.ErrH003, errs[2].Code)
	assert.Equal(t, diagnostics.ErrH004, errs[3].Code)
	assert.Equal(t, 5, errs[3].Line())
}

func TestIsAncestor(t *testing.T) {
	g, errs := BuildGraph(program("Main", "IO", "A", "Object", "B", "A", "C", "A"))
	require.Empty(t, errs)

	assert.True(t, g.IsAncestor("Object", "B"))
	assert.True(t, g.IsAncestor("A", "B"))
	assert.True(t, g.IsAncestor("B", "B"))
	assert.True(t, g.IsAncestor("IO", "Main"))
	assert.False(t, g.IsAncestor("B", "A"))
	assert.False(t, g.IsAncestor("B", "C"))
	assert.False(t, g.IsAncestor("Int", "Main"))

	assert.True(t, g.IsAncestor("B", "SELF_TYPE"))
	assert.True(t, g.IsAncestor("Int", "SELF_TYPE"))
}

func TestLCA(t *testing.T) {
	g, errs := BuildGraph(program("Main", "IO", "A", "Object", "B", "A", "C", "A", "D", "B"))
	require.Empty(t, errs)

	tests := []struct {
		a, b     string
		expected string
	}{
		{"B", "C", "A"},
		{"D", "C", "A"},
		{"D", "B", "B"},
		{"B", "D", "B"},
		{"A", "A", "A"},
		{"Int", "String", "Object"},
		{"Main", "IO", "IO"},
		{"D", "Main", "Object"},
		{"Object", "D", "Object"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			lca, err := g.LCA(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lca)
			assert.True(t, g.IsAncestor(lca, tt.a))
			assert.True(t, g.IsAncestor(lca, tt.b))
		})
	}

	_, err := g.LCA("A", "Nope")
	var unknown *UnknownClassError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Nope", unknown.Name)
}

func TestRootPath(t *testing.T) {
	g, errs := BuildGraph(program("Main", "IO", "A", "Object", "B", "A"))
	require.Empty(t, errs)

	path, err := g.RootPath("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"Object", "A", "B"}, path)

	path, err = g.RootPath("Object")
	require.NoError(t, err)
	assert.Equal(t, []string{"Object"}, path)
}
