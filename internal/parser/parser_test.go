package parser_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/lexer"
	"github.com/funvibe/coolc/internal/parser"
	"github.com/funvibe/coolc/internal/pipeline"
	"github.com/funvibe/coolc/internal/prettyprinter"
)

var update = flag.Bool("update", false, "update snapshot files")

func TestParserSnapshots(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"precedence", "class Main { f() : Int { 1 + 2 * 3 }; };"},
		{"dispatch_chain", "class Main { f() : Object { a@B.g(1).h() }; };"},
		{"attributes", "class A inherits IO {\n  x : Int;\n  s : String <- \"a\\tb\";\n}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := pipeline.NewPipelineContext(tc.input)
			ctx.FilePath = "test.cl"
			ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
			require.Empty(t, ctx.Errors)

			treePrinter := prettyprinter.NewTreePrinter()
			ctx.AstRoot.Accept(treePrinter)
			actual := "--- Input ---\n" + tc.input + "\n\n--- AST Tree ---\n" + treePrinter.String()

			snapshotFile := filepath.Join("testdata", tc.name+".snap")
			if *update {
				require.NoError(t, os.WriteFile(snapshotFile, []byte(actual), 0644))
				return
			}

			expected, err := os.ReadFile(snapshotFile)
			require.NoError(t, err, "run with -update to create the snapshot")
			assert.Equal(t, string(expected), actual)
		})
	}
}

// parseMethodBody parses a single method body in class Main.
func parseMethodBody(t *testing.T, body string) ast.Expression {
	t.Helper()
	program, err := parser.New(lexer.Tokenize("class Main { f() : Object { "+body+" }; };"), "test.cl").ParseProgram()
	require.NoError(t, err, body)
	return program.Classes[0].Methods()[0].Body
}

func TestClassStructure(t *testing.T) {
	input := `class A { };
class B inherits A {
  x : Int <- 3;
  f(a : Int, b : String) : SELF_TYPE { self };
  g() : Bool { true };
};`
	program, err := parser.New(lexer.Tokenize(input), "two.cl").ParseProgram()
	require.NoError(t, err)
	require.Len(t, program.Classes, 2)
	assert.Equal(t, "two.cl", program.File)
	assert.Equal(t, 1, program.Line())

	a := program.Classes[0]
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, "Object", a.Parent)
	assert.Empty(t, a.Features)

	b := program.Classes[1]
	assert.Equal(t, "A", b.Parent)
	assert.Equal(t, 2, b.Line())
	require.Len(t, b.Features, 3)
	require.Len(t, b.Attributes(), 1)
	require.Len(t, b.Methods(), 2)

	attr := b.Attributes()[0]
	assert.Equal(t, "x", attr.Name)
	assert.Equal(t, "Int", attr.Type)
	assert.IsType(t, &ast.IntegerLiteral{}, attr.Init)

	f := b.Methods()[0]
	assert.Equal(t, "f", f.Name)
	assert.Equal(t, "SELF_TYPE", f.ReturnType)
	assert.Equal(t, []string{"Int", "String"}, f.FormalTypes())
	assert.Equal(t, 4, f.Line())
	assert.Empty(t, b.Methods()[1].Formals)
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"1 * 2 / 3", "((1 * 2) / 3)"},
		{"~1 + 2", "((~ 1) + 2)"},
		{"isvoid x + 1", "((isvoid x) + 1)"},
		{"not a < b", "(not (a < b))"},
		{"a <= b + 1", "(a <= (b + 1))"},
		{"x <- y <- 1 + 2", "x <- y <- (1 + 2)"},
		{"not x <- y", "(not x <- y)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"~a.f()", "(~ a.f())"},
		{"1 + f(2)", "(1 + self.f(2))"},
		{"x@A.f().g(1, 2)", "x@A.f().g(1, 2)"},
		{"1 = 2", "(1 = 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, render(parseMethodBody(t, tt.input)))
		})
	}
}

// render prints an expression with explicit grouping.
func render(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return n.Value
	case *ast.Identifier:
		return n.Value
	case *ast.AssignExpression:
		return n.Name + " <- " + render(n.Value)
	case *ast.PrefixExpression:
		return "(" + string(n.Operator) + " " + render(n.Right) + ")"
	case *ast.InfixExpression:
		return "(" + render(n.Left) + " " + string(n.Operator) + " " + render(n.Right) + ")"
	case *ast.DispatchExpression:
		out := render(n.Receiver)
		if n.IsStatic() {
			out += "@" + n.StaticType
		}
		out += "." + n.Method + "("
		for i, arg := range n.Arguments {
			if i > 0 {
				out += ", "
			}
			out += render(arg)
		}
		return out + ")"
	}
	return "?"
}

func TestImplicitDispatch(t *testing.T) {
	body := parseMethodBody(t, "out_string(\"x\")")
	call, ok := body.(*ast.DispatchExpression)
	require.True(t, ok)
	assert.True(t, call.Implicit)
	assert.False(t, call.IsStatic())
	assert.Equal(t, "out_string", call.Method)
	recv, ok := call.Receiver.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "self", recv.Value)
	require.Len(t, call.Arguments, 1)
}

func TestControlExpressions(t *testing.T) {
	t.Run("if", func(t *testing.T) {
		e, ok := parseMethodBody(t, "if a then 1 else 2 fi").(*ast.IfExpression)
		require.True(t, ok)
		assert.IsType(t, &ast.Identifier{}, e.Condition)
		assert.IsType(t, &ast.IntegerLiteral{}, e.Alternative)
	})

	t.Run("while", func(t *testing.T) {
		e, ok := parseMethodBody(t, "while true loop x <- 1 pool").(*ast.WhileExpression)
		require.True(t, ok)
		assert.IsType(t, &ast.BooleanLiteral{}, e.Condition)
		assert.IsType(t, &ast.AssignExpression{}, e.Body)
	})

	t.Run("block", func(t *testing.T) {
		e, ok := parseMethodBody(t, "{ 1; \"s\"; false; }").(*ast.BlockExpression)
		require.True(t, ok)
		require.Len(t, e.Expressions, 3)
		assert.IsType(t, &ast.StringLiteral{}, e.Expressions[1])
	})

	t.Run("let", func(t *testing.T) {
		e, ok := parseMethodBody(t, "let a : Int <- 1, b : String in a + 1").(*ast.LetExpression)
		require.True(t, ok)
		require.Len(t, e.Bindings, 2)
		assert.Equal(t, "a", e.Bindings[0].Name)
		assert.IsType(t, &ast.IntegerLiteral{}, e.Bindings[0].Init)
		assert.True(t, ast.IsNoExpr(e.Bindings[1].Init))
		assert.IsType(t, &ast.InfixExpression{}, e.Body)
	})

	t.Run("let body extends right", func(t *testing.T) {
		e, ok := parseMethodBody(t, "1 + let a : Int in a * 2").(*ast.InfixExpression)
		require.True(t, ok)
		let, ok := e.Right.(*ast.LetExpression)
		require.True(t, ok)
		assert.IsType(t, &ast.InfixExpression{}, let.Body)
	})

	t.Run("case", func(t *testing.T) {
		e, ok := parseMethodBody(t, "case x of a : Int => 1; b : Object => new Object; esac").(*ast.CaseExpression)
		require.True(t, ok)
		require.Len(t, e.Branches, 2)
		assert.Equal(t, "Object", e.Branches[1].Type)
		n, ok := e.Branches[1].Body.(*ast.NewExpression)
		require.True(t, ok)
		assert.Equal(t, "Object", n.TypeName)
	})
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    string
		message string
	}{
		{"no classes", "", "P003", "test.cl:1: syntax error at or near EOF: program has no classes"},
		{"comments only", "(* nothing *)\n", "P003", "syntax error at or near EOF: program has no classes"},
		{"missing class name", "class { };", "P001", "test.cl:1: syntax error at or near '{'"},
		{"lowercase class", "class main { };", "P001", "test.cl:1: syntax error at or near OBJECTID = main"},
		{"missing semicolon after feature", "class A {\n x : Int\n};", "P001", "test.cl:3: syntax error at or near '}'"},
		{"trailing tokens", "class A { }; x", "P001", "test.cl:1: syntax error at or near OBJECTID = x"},
		{"empty block", "class A { f() : Int { {} }; };", "P002", "test.cl:1: syntax error at or near '}'"},
		{"empty let", "class A { f() : Int { let in 1 }; };", "P002", "test.cl:1: syntax error at or near IN"},
		{"empty case", "class A { f() : Int { case x of esac }; };", "P002", "test.cl:1: syntax error at or near ESAC"},
		{"chained comparison", "class A { f() : Bool { 1 < 2 < 3 }; };", "P001", "test.cl:1: syntax error at or near '<'"},
		{"integer overflow", "class A { f() : Int { 2147483648 }; };", "P004", "test.cl:1: integer constant 2147483648 is out of range"},
		{"string in error", "class A { f() : Int { 1 \"s\" }; };", "P001", "test.cl:1: syntax error at or near STR_CONST = \"s\""},
		{"boolean in error", "class A { f() : Int { 1 true }; };", "P001", "test.cl:1: syntax error at or near BOOL_CONST true"},
		{"lex error token", "class A { f() : Int { [ }; };", "P001", "test.cl:1: syntax error at or near ERROR \"[\""},
		{"eof inside class", "class A {\n f() : Int { 1 };\n", "P001", "test.cl:3: syntax error at or near EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parser.New(lexer.Tokenize(tt.input), "test.cl")
			program, err := p.ParseProgram()
			require.Error(t, err)
			assert.Nil(t, program)
			require.NotNil(t, p.Err())
			assert.Equal(t, tt.code, string(p.Err().Code))
			assert.Contains(t, p.Err().Error(), tt.message)
		})
	}
}

func TestIntegerBounds(t *testing.T) {
	e, ok := parseMethodBody(t, "2147483647").(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, "2147483647", e.Value)
}

func TestParserProcessor(t *testing.T) {
	ctx := pipeline.NewPipelineContext("class A { f() : Int { 1 + }; };")
	ctx.FilePath = "bad.cl"
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)

	assert.True(t, ctx.Halted)
	assert.Nil(t, ctx.AstRoot)
	require.Len(t, ctx.Errors, 1)
	assert.Equal(t, "bad.cl:1: syntax error at or near '}'", ctx.Errors[0].Error())
}
