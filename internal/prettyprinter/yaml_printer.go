package prettyprinter

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/coolc/internal/ast"
)

// YAMLPrinter builds a YAML document for a program. Each node becomes a
// mapping with a "node" key naming its kind; expressions also carry "type".
type YAMLPrinter struct {
	result *yaml.Node
	file   string
}

func NewYAMLPrinter() *YAMLPrinter {
	return &YAMLPrinter{}
}

// Node returns the document built by the last Accept.
func (p *YAMLPrinter) Node() *yaml.Node {
	return p.result
}

// Encode writes the document with two-space indentation.
func (p *YAMLPrinter) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p.result); err != nil {
		return err
	}
	return enc.Close()
}

func (p *YAMLPrinter) build(n ast.Node) *yaml.Node {
	n.Accept(p)
	return p.result
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func intScalar(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

// mapping pairs up keys and values in order.
func mapping(kind string, line int, kv ...interface{}) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, scalar("node"), scalar(kind), scalar("line"), intScalar(line))
	for i := 0; i+1 < len(kv); i += 2 {
		var value *yaml.Node
		switch v := kv[i+1].(type) {
		case string:
			value = scalar(v)
		case *yaml.Node:
			value = v
		}
		m.Content = append(m.Content, scalar(kv[i].(string)), value)
	}
	return m
}

func (p *YAMLPrinter) exprs(list []ast.Expression) *yaml.Node {
	seq := sequence()
	for _, e := range list {
		seq.Content = append(seq.Content, p.build(e))
	}
	return seq
}

func (p *YAMLPrinter) expr(e ast.Expression, kind string, kv ...interface{}) {
	p.result = mapping(kind, e.Line(), append([]interface{}{"type", e.Type()}, kv...)...)
}

func (p *YAMLPrinter) VisitProgram(n *ast.Program) {
	p.file = n.File
	classes := sequence()
	for _, c := range n.Classes {
		classes.Content = append(classes.Content, p.build(c))
	}
	p.result = mapping("program", n.Line(), "file", n.File, "classes", classes)
}

func (p *YAMLPrinter) VisitClass(n *ast.Class) {
	features := sequence()
	for _, f := range n.Features {
		features.Content = append(features.Content, p.build(f))
	}
	file := n.File
	if file == "" {
		file = p.file
	}
	p.result = mapping("class", n.Line(), "name", n.Name, "parent", n.Parent, "file", file, "features", features)
}

func (p *YAMLPrinter) VisitMethod(n *ast.Method) {
	formals := sequence()
	for _, f := range n.Formals {
		formals.Content = append(formals.Content, p.build(f))
	}
	body := p.build(n.Body)
	p.result = mapping("method", n.Line(), "name", n.Name, "formals", formals, "return", n.ReturnType, "body", body)
}

func (p *YAMLPrinter) VisitAttribute(n *ast.Attribute) {
	init := p.build(n.Init)
	p.result = mapping("attribute", n.Line(), "name", n.Name, "declared", n.Type, "init", init)
}

func (p *YAMLPrinter) VisitFormal(n *ast.Formal) {
	p.result = mapping("formal", n.Line(), "name", n.Name, "declared", n.Type)
}

func (p *YAMLPrinter) VisitNoExpr(n *ast.NoExpr) {
	p.expr(n, "no_expr")
}

func (p *YAMLPrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.expr(n, "int", "value", n.Value)
}

func (p *YAMLPrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.expr(n, "string", "value", n.Value)
}

func (p *YAMLPrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.expr(n, "bool", "value", strconv.FormatBool(n.Value))
}

func (p *YAMLPrinter) VisitIdentifier(n *ast.Identifier) {
	p.expr(n, "object", "name", n.Value)
}

func (p *YAMLPrinter) VisitAssignExpression(n *ast.AssignExpression) {
	value := p.build(n.Value)
	p.expr(n, "assign", "name", n.Name, "value", value)
}

func (p *YAMLPrinter) VisitDispatchExpression(n *ast.DispatchExpression) {
	receiver := p.build(n.Receiver)
	args := p.exprs(n.Arguments)
	kv := []interface{}{"receiver", receiver, "method", n.Method, "arguments", args}
	if n.IsStatic() {
		kv = append(kv, "static", n.StaticType)
	}
	p.expr(n, "dispatch", kv...)
}

func (p *YAMLPrinter) VisitIfExpression(n *ast.IfExpression) {
	cond := p.build(n.Condition)
	then := p.build(n.Consequence)
	alt := p.build(n.Alternative)
	p.expr(n, "cond", "if", cond, "then", then, "else", alt)
}

func (p *YAMLPrinter) VisitWhileExpression(n *ast.WhileExpression) {
	cond := p.build(n.Condition)
	body := p.build(n.Body)
	p.expr(n, "loop", "condition", cond, "body", body)
}

func (p *YAMLPrinter) VisitBlockExpression(n *ast.BlockExpression) {
	p.expr(n, "block", "body", p.exprs(n.Expressions))
}

func (p *YAMLPrinter) VisitLetExpression(n *ast.LetExpression) {
	bindings := sequence()
	for _, b := range n.Bindings {
		init := p.build(b.Init)
		bindings.Content = append(bindings.Content,
			mapping("binding", b.Token.Line, "name", b.Name, "declared", b.Type, "init", init))
	}
	body := p.build(n.Body)
	p.expr(n, "let", "bindings", bindings, "body", body)
}

func (p *YAMLPrinter) VisitCaseExpression(n *ast.CaseExpression) {
	scrutinee := p.build(n.Scrutinee)
	branches := sequence()
	for _, b := range n.Branches {
		body := p.build(b.Body)
		branches.Content = append(branches.Content,
			mapping("branch", b.Token.Line, "name", b.Name, "declared", b.Type, "body", body))
	}
	p.expr(n, "typcase", "scrutinee", scrutinee, "branches", branches)
}

func (p *YAMLPrinter) VisitNewExpression(n *ast.NewExpression) {
	p.expr(n, "new", "class", n.TypeName)
}

func (p *YAMLPrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	right := p.build(n.Right)
	p.expr(n, prefixNames[n.Operator][1:], "operand", right)
}

func (p *YAMLPrinter) VisitInfixExpression(n *ast.InfixExpression) {
	left := p.build(n.Left)
	right := p.build(n.Right)
	p.expr(n, infixNames[n.Operator][1:], "left", left, "right", right)
}
