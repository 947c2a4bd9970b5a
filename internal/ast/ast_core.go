package ast

import (
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Accept(v Visitor)
	GetToken() token.Token
	Line() int
}

// Expression is a Node that represents an expression. Every expression has a
// type slot written once by the semantic checker.
type Expression interface {
	Node
	expressionNode()
	Type() string
	SetType(name string)
}

// Feature is a class member: a *Method or an *Attribute.
type Feature interface {
	Node
	featureNode()
}

// typeSlot holds the inferred static type of an expression.
type typeSlot struct {
	inferred string
}

// Type returns the inferred type, or _no_type before checking.
func (s *typeSlot) Type() string {
	if s.inferred == "" {
		return config.NoTypeName
	}
	return s.inferred
}

func (s *typeSlot) SetType(name string) { s.inferred = name }

// Program is the root node of every AST our parser produces.
type Program struct {
	File    string // Source file path
	Classes []*Class
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) GetToken() token.Token {
	if len(p.Classes) > 0 {
		return p.Classes[0].Token
	}
	return token.Token{}
}
func (p *Program) Line() int { return p.GetToken().Line }

// Class is a class declaration.
// class Name inherits Parent { features }
type Class struct {
	Token    token.Token // The 'class' token
	Name     string
	Parent   string // Object when no inherits clause is given
	Features []Feature
	File     string
}

func (c *Class) Accept(v Visitor)      { v.VisitClass(c) }
func (c *Class) GetToken() token.Token { return c.Token }
func (c *Class) Line() int             { return c.Token.Line }

// Methods returns the method features in declaration order.
func (c *Class) Methods() []*Method {
	var out []*Method
	for _, f := range c.Features {
		if m, ok := f.(*Method); ok {
			out = append(out, m)
		}
	}
	return out
}

// Attributes returns the attribute features in declaration order.
func (c *Class) Attributes() []*Attribute {
	var out []*Attribute
	for _, f := range c.Features {
		if a, ok := f.(*Attribute); ok {
			out = append(out, a)
		}
	}
	return out
}

// Method is a method feature.
// name(formals) : ReturnType { body }
type Method struct {
	Token      token.Token // The method name token
	Name       string
	Formals    []*Formal
	ReturnType string
	Body       Expression
}

func (m *Method) Accept(v Visitor)      { v.VisitMethod(m) }
func (m *Method) GetToken() token.Token { return m.Token }
func (m *Method) Line() int             { return m.Token.Line }
func (m *Method) featureNode()          {}

// FormalTypes lists the declared argument types.
func (m *Method) FormalTypes() []string {
	types := make([]string, len(m.Formals))
	for i, f := range m.Formals {
		types[i] = f.Type
	}
	return types
}

// Attribute is an attribute feature. Init is a *NoExpr when absent.
// name : Type [<- init]
type Attribute struct {
	Token token.Token // The attribute name token
	Name  string
	Type  string
	Init  Expression
}

func (a *Attribute) Accept(v Visitor)      { v.VisitAttribute(a) }
func (a *Attribute) GetToken() token.Token { return a.Token }
func (a *Attribute) Line() int             { return a.Token.Line }
func (a *Attribute) featureNode()          {}

// Formal is a method parameter.
type Formal struct {
	Token token.Token
	Name  string
	Type  string
}

func (f *Formal) Accept(v Visitor)      { v.VisitFormal(f) }
func (f *Formal) GetToken() token.Token { return f.Token }
func (f *Formal) Line() int             { return f.Token.Line }
