package parser

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/token"
)

// Precedence, lowest first:
//
//	<-  not  < <= =  + -  * /  isvoid ~  @ .
//
// Comparisons do not associate; + - * / associate to the left.

var infixOperators = map[token.TokenType]ast.Operator{
	token.PLUS:     ast.OpPlus,
	token.MINUS:    ast.OpMinus,
	token.ASTERISK: ast.OpMultiply,
	token.SLASH:    ast.OpDivide,
	token.LT:       ast.OpLess,
	token.LE:       ast.OpLessEqual,
	token.EQ:       ast.OpEqual,
}

func (p *Parser) parseExpression() ast.Expression {
	if p.curTokenIs(token.OBJECTID) && p.peekTokenIs(token.ASSIGN) {
		return p.parseAssign()
	}
	return p.parseNot()
}

// name <- expr, right-recursive.
func (p *Parser) parseAssign() ast.Expression {
	assign := &ast.AssignExpression{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken() // consume <-
	p.nextToken()

	value := p.parseExpression()
	if value == nil {
		return nil
	}
	assign.Value = value
	return assign
}

func (p *Parser) parseNot() ast.Expression {
	if !p.curTokenIs(token.NOT) {
		return p.parseComparison()
	}
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: ast.OpNot}
	p.nextToken()

	right := p.parseNot()
	if right == nil {
		return nil
	}
	expr.Right = right
	return expr
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	if left == nil || !p.peekIsComparison() {
		return left
	}

	p.nextToken()
	expr := &ast.InfixExpression{Token: p.curToken, Left: left, Operator: infixOperators[p.curToken.Type]}
	p.nextToken()

	right := p.parseAdditive()
	if right == nil {
		return nil
	}
	expr.Right = right

	if p.peekIsComparison() {
		p.fail(diagnostics.ErrP001, p.peekToken)
		return nil
	}
	return expr
}

func (p *Parser) peekIsComparison() bool {
	return p.peekTokenIs(token.LT) || p.peekTokenIs(token.LE) || p.peekTokenIs(token.EQ)
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for left != nil && (p.peekTokenIs(token.PLUS) || p.peekTokenIs(token.MINUS)) {
		left = p.parseInfix(left, p.parseMultiplicative)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for left != nil && (p.peekTokenIs(token.ASTERISK) || p.peekTokenIs(token.SLASH)) {
		left = p.parseInfix(left, p.parseUnary)
	}
	return left
}

// parseInfix consumes the operator in peek position and its right operand.
func (p *Parser) parseInfix(left ast.Expression, operand func() ast.Expression) ast.Expression {
	p.nextToken()
	expr := &ast.InfixExpression{Token: p.curToken, Left: left, Operator: infixOperators[p.curToken.Type]}
	p.nextToken()

	right := operand()
	if right == nil {
		return nil
	}
	expr.Right = right
	return expr
}

// isvoid expr and ~expr
func (p *Parser) parseUnary() ast.Expression {
	var op ast.Operator
	switch {
	case p.curTokenIs(token.ISVOID):
		op = ast.OpIsVoid
	case p.curTokenIs(token.TILDE):
		op = ast.OpNegate
	default:
		return p.parseDispatch()
	}

	expr := &ast.PrefixExpression{Token: p.curToken, Operator: op}
	p.nextToken()

	right := p.parseUnary()
	if right == nil {
		return nil
	}
	expr.Right = right
	return expr
}

// parseDispatch handles m(args) and the postfix chain
// expr[@TYPE].m(args)[@TYPE].m(args)...
func (p *Parser) parseDispatch() ast.Expression {
	var expr ast.Expression
	if p.curTokenIs(token.OBJECTID) && p.peekTokenIs(token.LPAREN) {
		call := &ast.DispatchExpression{
			Token:    p.curToken,
			Receiver: p.selfAt(p.curToken),
			Method:   p.curToken.Lexeme,
			Implicit: true,
		}
		p.nextToken()
		args, ok := p.parseArguments()
		if !ok {
			return nil
		}
		call.Arguments = args
		expr = call
	} else {
		expr = p.parseAtom()
		if expr == nil {
			return nil
		}
	}

	for p.peekTokenIs(token.AT) || p.peekTokenIs(token.DOT) {
		call := &ast.DispatchExpression{Receiver: expr}
		if p.peekTokenIs(token.AT) {
			p.nextToken()
			if !p.expectPeek(token.TYPEID) {
				return nil
			}
			call.StaticType = p.curToken.Lexeme
		}
		if !p.expectPeek(token.DOT) || !p.expectPeek(token.OBJECTID) {
			return nil
		}
		call.Token = p.curToken
		call.Method = p.curToken.Lexeme
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		args, ok := p.parseArguments()
		if !ok {
			return nil
		}
		call.Arguments = args
		expr = call
	}
	return expr
}

func (p *Parser) selfAt(tok token.Token) *ast.Identifier {
	return &ast.Identifier{
		Token: token.Token{Type: token.OBJECTID, Lexeme: config.SelfName, Line: tok.Line},
		Value: config.SelfName,
	}
}

// parseArguments starts on ( and ends on ).
func (p *Parser) parseArguments() ([]ast.Expression, bool) {
	args := []ast.Expression{}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, true
	}

	for {
		p.nextToken()
		arg := p.parseExpression()
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return args, true
}
