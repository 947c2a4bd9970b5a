package parser

import (
	"strconv"

	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/token"
)

func (p *Parser) parseAtom() ast.Expression {
	switch {
	case p.curTokenIs(token.INT_CONST):
		return p.parseIntegerLiteral()
	case p.curTokenIs(token.STR_CONST):
		return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
	case p.curTokenIs(token.TRUE), p.curTokenIs(token.FALSE):
		return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
	case p.curTokenIs(token.OBJECTID):
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssign()
		}
		return &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	case p.curTokenIs(token.NOT):
		return p.parseNot()
	case p.curTokenIs(token.IF):
		return p.parseIfExpression()
	case p.curTokenIs(token.WHILE):
		return p.parseWhileExpression()
	case p.curTokenIs(token.LBRACE):
		return p.parseBlockExpression()
	case p.curTokenIs(token.LET):
		return p.parseLetExpression()
	case p.curTokenIs(token.CASE):
		return p.parseCaseExpression()
	case p.curTokenIs(token.NEW):
		expr := &ast.NewExpression{Token: p.curToken}
		if !p.expectPeek(token.TYPEID) {
			return nil
		}
		expr.TypeName = p.curToken.Lexeme
		return expr
	case p.curTokenIs(token.LPAREN):
		p.nextToken()
		expr := p.parseExpression()
		if expr == nil || !p.expectPeek(token.RPAREN) {
			return nil
		}
		return expr
	}

	p.fail(diagnostics.ErrP001, p.curToken)
	return nil
}

// Integer constants must fit a 32-bit signed int.
func (p *Parser) parseIntegerLiteral() ast.Expression {
	if _, err := strconv.ParseInt(p.curToken.Lexeme, 10, 32); err != nil {
		if p.err == nil {
			p.err = diagnostics.NewError(diagnostics.ErrP004, p.curToken, "integer constant %s is out of range", p.curToken.Lexeme)
			p.err.File = p.file
		}
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
}

// if expr then expr else expr fi
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	p.nextToken()
	if expr.Condition = p.parseExpression(); expr.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.THEN) {
		return nil
	}
	p.nextToken()
	if expr.Consequence = p.parseExpression(); expr.Consequence == nil {
		return nil
	}
	if !p.expectPeek(token.ELSE) {
		return nil
	}
	p.nextToken()
	if expr.Alternative = p.parseExpression(); expr.Alternative == nil {
		return nil
	}
	if !p.expectPeek(token.FI) {
		return nil
	}
	return expr
}

// while expr loop expr pool
func (p *Parser) parseWhileExpression() ast.Expression {
	expr := &ast.WhileExpression{Token: p.curToken}

	p.nextToken()
	if expr.Condition = p.parseExpression(); expr.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.LOOP) {
		return nil
	}
	p.nextToken()
	if expr.Body = p.parseExpression(); expr.Body == nil {
		return nil
	}
	if !p.expectPeek(token.POOL) {
		return nil
	}
	return expr
}

// { expr; [expr;]* }
func (p *Parser) parseBlockExpression() ast.Expression {
	block := &ast.BlockExpression{Token: p.curToken}
	if p.peekTokenIs(token.RBRACE) {
		p.fail(diagnostics.ErrP002, p.peekToken)
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		e := p.parseExpression()
		if e == nil || !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		block.Expressions = append(block.Expressions, e)
	}
	p.nextToken() // consume }
	return block
}

// let id : TYPE [<- expr] [, id : TYPE [<- expr]]* in expr
func (p *Parser) parseLetExpression() ast.Expression {
	let := &ast.LetExpression{Token: p.curToken}
	if p.peekTokenIs(token.IN) {
		p.fail(diagnostics.ErrP002, p.peekToken)
		return nil
	}

	for {
		if !p.expectPeek(token.OBJECTID) {
			return nil
		}
		binding := &ast.LetBinding{Token: p.curToken, Name: p.curToken.Lexeme}
		if !p.expectPeek(token.COLON) || !p.expectPeek(token.TYPEID) {
			return nil
		}
		binding.Type = p.curToken.Lexeme
		if binding.Init = p.parseOptionalInit(); binding.Init == nil {
			return nil
		}
		let.Bindings = append(let.Bindings, binding)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	if let.Body = p.parseExpression(); let.Body == nil {
		return nil
	}
	return let
}

// case expr of [id : TYPE => expr;]+ esac
func (p *Parser) parseCaseExpression() ast.Expression {
	expr := &ast.CaseExpression{Token: p.curToken}

	p.nextToken()
	if expr.Scrutinee = p.parseExpression(); expr.Scrutinee == nil {
		return nil
	}
	if !p.expectPeek(token.OF) {
		return nil
	}
	if p.peekTokenIs(token.ESAC) {
		p.fail(diagnostics.ErrP002, p.peekToken)
		return nil
	}

	for !p.peekTokenIs(token.ESAC) {
		if !p.expectPeek(token.OBJECTID) {
			return nil
		}
		branch := &ast.CaseBranch{Token: p.curToken, Name: p.curToken.Lexeme}
		if !p.expectPeek(token.COLON) || !p.expectPeek(token.TYPEID) {
			return nil
		}
		branch.Type = p.curToken.Lexeme
		if !p.expectPeek(token.DARROW) {
			return nil
		}
		p.nextToken()
		if branch.Body = p.parseExpression(); branch.Body == nil {
			return nil
		}
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		expr.Branches = append(expr.Branches, branch)
	}
	p.nextToken() // consume esac
	return expr
}
