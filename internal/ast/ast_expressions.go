package ast

import (
	"github.com/funvibe/coolc/internal/token"
)

// Operator names a unary or binary operator.
type Operator string

const (
	OpPlus      Operator = "+"
	OpMinus     Operator = "-"
	OpMultiply  Operator = "*"
	OpDivide    Operator = "/"
	OpLess      Operator = "<"
	OpLessEqual Operator = "<="
	OpEqual     Operator = "="

	OpNegate Operator = "~"
	OpNot    Operator = "not"
	OpIsVoid Operator = "isvoid"
)

// IsArithmetic reports whether op is one of + - * /.
func (op Operator) IsArithmetic() bool {
	return op == OpPlus || op == OpMinus || op == OpMultiply || op == OpDivide
}

// NoExpr stands for an omitted expression (attribute or let without init).
type NoExpr struct {
	typeSlot
	Token token.Token
}

func (ne *NoExpr) Accept(v Visitor)      { v.VisitNoExpr(ne) }
func (ne *NoExpr) expressionNode()       {}
func (ne *NoExpr) GetToken() token.Token { return ne.Token }
func (ne *NoExpr) Line() int             { return ne.Token.Line }

// IsNoExpr reports whether e is absent.
func IsNoExpr(e Expression) bool {
	_, ok := e.(*NoExpr)
	return e == nil || ok
}

type IntegerLiteral struct {
	typeSlot
	Token token.Token
	Value string // digits as written
}

func (il *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) Line() int             { return il.Token.Line }

type StringLiteral struct {
	typeSlot
	Token token.Token
	Value string // escaped body
}

func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) Line() int             { return sl.Token.Line }

type BooleanLiteral struct {
	typeSlot
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(bl) }
func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }
func (bl *BooleanLiteral) Line() int             { return bl.Token.Line }

type Identifier struct {
	typeSlot
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) Line() int             { return i.Token.Line }

// AssignExpression is name <- value.
type AssignExpression struct {
	typeSlot
	Token token.Token // The target identifier
	Name  string
	Value Expression
}

func (ae *AssignExpression) Accept(v Visitor)      { v.VisitAssignExpression(ae) }
func (ae *AssignExpression) expressionNode()       {}
func (ae *AssignExpression) GetToken() token.Token { return ae.Token }
func (ae *AssignExpression) Line() int             { return ae.Token.Line }

// DispatchExpression is a method call.
// recv.m(args), recv@T.m(args) or m(args) with an implicit self receiver.
type DispatchExpression struct {
	typeSlot
	Token      token.Token // The method name token
	Receiver   Expression
	StaticType string // set for recv@T.m(args)
	Method     string
	Arguments  []Expression
	Implicit   bool // receiver is the synthesised self of m(args)
}

func (de *DispatchExpression) Accept(v Visitor)      { v.VisitDispatchExpression(de) }
func (de *DispatchExpression) expressionNode()       {}
func (de *DispatchExpression) GetToken() token.Token { return de.Token }
func (de *DispatchExpression) Line() int             { return de.Token.Line }

// IsStatic reports whether the dispatch names an explicit ancestor.
func (de *DispatchExpression) IsStatic() bool { return de.StaticType != "" }

// IfExpression: if cond then a else b fi
type IfExpression struct {
	typeSlot
	Token       token.Token // The 'if' token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ie *IfExpression) Accept(v Visitor)      { v.VisitIfExpression(ie) }
func (ie *IfExpression) expressionNode()       {}
func (ie *IfExpression) GetToken() token.Token { return ie.Token }
func (ie *IfExpression) Line() int             { return ie.Token.Line }

// WhileExpression: while cond loop body pool
type WhileExpression struct {
	typeSlot
	Token     token.Token // The 'while' token
	Condition Expression
	Body      Expression
}

func (we *WhileExpression) Accept(v Visitor)      { v.VisitWhileExpression(we) }
func (we *WhileExpression) expressionNode()       {}
func (we *WhileExpression) GetToken() token.Token { return we.Token }
func (we *WhileExpression) Line() int             { return we.Token.Line }

// BlockExpression: { e1; e2; ... } with at least one expression.
type BlockExpression struct {
	typeSlot
	Token       token.Token // The '{' token
	Expressions []Expression
}

func (be *BlockExpression) Accept(v Visitor)      { v.VisitBlockExpression(be) }
func (be *BlockExpression) expressionNode()       {}
func (be *BlockExpression) GetToken() token.Token { return be.Token }
func (be *BlockExpression) Line() int             { return be.Token.Line }

// LetBinding is one id : Type [<- init] of a let. Init is a *NoExpr when absent.
type LetBinding struct {
	Token token.Token
	Name  string
	Type  string
	Init  Expression
}

// LetExpression: let b1, b2, ... in body
type LetExpression struct {
	typeSlot
	Token    token.Token // The 'let' token
	Bindings []*LetBinding
	Body     Expression
}

func (le *LetExpression) Accept(v Visitor)      { v.VisitLetExpression(le) }
func (le *LetExpression) expressionNode()       {}
func (le *LetExpression) GetToken() token.Token { return le.Token }
func (le *LetExpression) Line() int             { return le.Token.Line }

// CaseBranch is id : Type => body.
type CaseBranch struct {
	Token token.Token
	Name  string
	Type  string
	Body  Expression
}

// CaseExpression: case scrutinee of branches esac
type CaseExpression struct {
	typeSlot
	Token     token.Token // The 'case' token
	Scrutinee Expression
	Branches  []*CaseBranch
}

func (ce *CaseExpression) Accept(v Visitor)      { v.VisitCaseExpression(ce) }
func (ce *CaseExpression) expressionNode()       {}
func (ce *CaseExpression) GetToken() token.Token { return ce.Token }
func (ce *CaseExpression) Line() int             { return ce.Token.Line }

// NewExpression: new TypeName
type NewExpression struct {
	typeSlot
	Token    token.Token // The 'new' token
	TypeName string
}

func (ne *NewExpression) Accept(v Visitor)      { v.VisitNewExpression(ne) }
func (ne *NewExpression) expressionNode()       {}
func (ne *NewExpression) GetToken() token.Token { return ne.Token }
func (ne *NewExpression) Line() int             { return ne.Token.Line }

// PrefixExpression covers ~e, not e and isvoid e.
type PrefixExpression struct {
	typeSlot
	Token    token.Token // The operator token
	Operator Operator
	Right    Expression
}

func (pe *PrefixExpression) Accept(v Visitor)      { v.VisitPrefixExpression(pe) }
func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }
func (pe *PrefixExpression) Line() int             { return pe.Token.Line }

// InfixExpression covers the arithmetic and comparison operators.
type InfixExpression struct {
	typeSlot
	Token    token.Token // The operator token, e.g. +
	Left     Expression
	Operator Operator
	Right    Expression
}

func (ie *InfixExpression) Accept(v Visitor)      { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
func (ie *InfixExpression) Line() int             { return ie.Token.Line }
