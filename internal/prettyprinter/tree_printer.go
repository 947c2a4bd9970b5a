package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/coolc/internal/ast"
)

// --- Tree Printer (COOL reference "_program" dump) ---

var infixNames = map[ast.Operator]string{
	ast.OpPlus:      "_plus",
	ast.OpMinus:     "_sub",
	ast.OpMultiply:  "_mul",
	ast.OpDivide:    "_divide",
	ast.OpLess:      "_lt",
	ast.OpLessEqual: "_leq",
	ast.OpEqual:     "_eq",
}

var prefixNames = map[ast.Operator]string{
	ast.OpNegate: "_neg",
	ast.OpNot:    "_comp",
	ast.OpIsVoid: "_isvoid",
}

// TreePrinter renders a program in the indented node-per-line format used by
// the reference COOL tools. Every expression is closed by its ": <type>"
// line, which reads _no_type until the checker has run.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
	file   string
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(s string) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) header(line int, name string) {
	p.line("#" + strconv.Itoa(line))
	p.line(name)
}

// nested prints body two columns deeper.
func (p *TreePrinter) nested(body func()) {
	p.indent += 2
	body()
	p.indent -= 2
}

// expr prints e with its header and trailing type line.
func (p *TreePrinter) expr(e ast.Expression, name string, body func()) {
	p.header(e.Line(), name)
	p.nested(body)
	p.line(": " + e.Type())
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.file = n.File
	p.header(n.Line(), "_program")
	p.nested(func() {
		for _, c := range n.Classes {
			c.Accept(p)
		}
	})
}

func (p *TreePrinter) VisitClass(n *ast.Class) {
	file := n.File
	if file == "" {
		file = p.file
	}
	p.header(n.Line(), "_class")
	p.nested(func() {
		p.line(n.Name)
		p.line(n.Parent)
		p.line(strconv.Quote(file))
		p.line("(")
		for _, f := range n.Features {
			f.Accept(p)
		}
		p.line(")")
	})
}

func (p *TreePrinter) VisitMethod(n *ast.Method) {
	p.header(n.Line(), "_method")
	p.nested(func() {
		p.line(n.Name)
		for _, f := range n.Formals {
			f.Accept(p)
		}
		p.line(n.ReturnType)
		n.Body.Accept(p)
	})
}

func (p *TreePrinter) VisitAttribute(n *ast.Attribute) {
	p.header(n.Line(), "_attr")
	p.nested(func() {
		p.line(n.Name)
		p.line(n.Type)
		n.Init.Accept(p)
	})
}

func (p *TreePrinter) VisitFormal(n *ast.Formal) {
	p.header(n.Line(), "_formal")
	p.nested(func() {
		p.line(n.Name)
		p.line(n.Type)
	})
}

func (p *TreePrinter) VisitNoExpr(n *ast.NoExpr) {
	p.expr(n, "_no_expr", func() {})
}

func (p *TreePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.expr(n, "_int", func() { p.line(n.Value) })
}

// String bodies are kept in their escaped form, so no further quoting.
func (p *TreePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.expr(n, "_string", func() { p.line("\"" + n.Value + "\"") })
}

func (p *TreePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.expr(n, "_bool", func() {
		if n.Value {
			p.line("1")
		} else {
			p.line("0")
		}
	})
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.expr(n, "_object", func() { p.line(n.Value) })
}

func (p *TreePrinter) VisitAssignExpression(n *ast.AssignExpression) {
	p.expr(n, "_assign", func() {
		p.line(n.Name)
		n.Value.Accept(p)
	})
}

func (p *TreePrinter) VisitDispatchExpression(n *ast.DispatchExpression) {
	name := "_dispatch"
	if n.IsStatic() {
		name = "_static_dispatch"
	}
	p.expr(n, name, func() {
		n.Receiver.Accept(p)
		if n.IsStatic() {
			p.line(n.StaticType)
		}
		p.line(n.Method)
		p.line("(")
		for _, arg := range n.Arguments {
			arg.Accept(p)
		}
		p.line(")")
	})
}

func (p *TreePrinter) VisitIfExpression(n *ast.IfExpression) {
	p.expr(n, "_cond", func() {
		n.Condition.Accept(p)
		n.Consequence.Accept(p)
		n.Alternative.Accept(p)
	})
}

func (p *TreePrinter) VisitWhileExpression(n *ast.WhileExpression) {
	p.expr(n, "_loop", func() {
		n.Condition.Accept(p)
		n.Body.Accept(p)
	})
}

func (p *TreePrinter) VisitBlockExpression(n *ast.BlockExpression) {
	p.expr(n, "_block", func() {
		for _, e := range n.Expressions {
			e.Accept(p)
		}
	})
}

// A let with several bindings prints as a chain of single-binding lets,
// each one the body of the previous.
func (p *TreePrinter) VisitLetExpression(n *ast.LetExpression) {
	p.let(n, 0)
}

func (p *TreePrinter) let(n *ast.LetExpression, i int) {
	b := n.Bindings[i]
	line := b.Token.Line
	if i == 0 {
		line = n.Line()
	}
	p.header(line, "_let")
	p.nested(func() {
		p.line(b.Name)
		p.line(b.Type)
		b.Init.Accept(p)
		if i+1 < len(n.Bindings) {
			p.let(n, i+1)
		} else {
			n.Body.Accept(p)
		}
	})
	p.line(": " + n.Type())
}

func (p *TreePrinter) VisitCaseExpression(n *ast.CaseExpression) {
	p.expr(n, "_typcase", func() {
		n.Scrutinee.Accept(p)
		for _, b := range n.Branches {
			p.header(b.Token.Line, "_branch")
			p.nested(func() {
				p.line(b.Name)
				p.line(b.Type)
				b.Body.Accept(p)
			})
		}
	})
}

func (p *TreePrinter) VisitNewExpression(n *ast.NewExpression) {
	p.expr(n, "_new", func() { p.line(n.TypeName) })
}

func (p *TreePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.expr(n, prefixNames[n.Operator], func() { n.Right.Accept(p) })
}

func (p *TreePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	p.expr(n, infixNames[n.Operator], func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}
