package parser

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/token"
)

// Parser is a recursive-descent parser over a materialised token stream.
// Parse functions start with curToken on the first token of their construct
// and leave it on the last one. The first violation stops parsing.
type Parser struct {
	tokens []token.Token
	pos    int
	file   string

	curToken  token.Token
	peekToken token.Token

	err *diagnostics.DiagnosticError
}

func New(tokens []token.Token, file string) *Parser {
	p := &Parser{tokens: tokens, file: file}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.read()
}

func (p *Parser) read() token.Token {
	if p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++
		return tok
	}
	line := 0
	if n := len(p.tokens); n > 0 {
		line = p.tokens[n-1].Line
	}
	return token.EOF(line)
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t && !p.curToken.IsError()
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t && !p.peekToken.IsError()
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.fail(diagnostics.ErrP001, p.peekToken)
	return false
}

// fail records the first syntax error. Later ones are consequences of it.
func (p *Parser) fail(code diagnostics.ErrorCode, tok token.Token) {
	if p.err != nil {
		return
	}
	p.err = diagnostics.NewError(code, tok, "syntax error at or near %s", tok.Describe())
	p.err.File = p.file
}

// Err returns the error that stopped parsing, if any.
func (p *Parser) Err() *diagnostics.DiagnosticError {
	return p.err
}

// ParseProgram parses one or more classes followed by the end of input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{File: p.file}

	if p.curToken.IsEOF() {
		p.err = diagnostics.NewError(diagnostics.ErrP003, p.curToken, "syntax error at or near EOF: program has no classes")
		p.err.File = p.file
		return nil, p.err
	}

	for p.curTokenIs(token.CLASS) {
		class := p.parseClass()
		if class == nil {
			return nil, p.err
		}
		program.Classes = append(program.Classes, class)
		p.nextToken()
	}

	if !p.curToken.IsEOF() {
		p.fail(diagnostics.ErrP001, p.curToken)
		return nil, p.err
	}
	return program, nil
}

// class TYPE [inherits TYPE] { [feature;]* } [;]
func (p *Parser) parseClass() *ast.Class {
	class := &ast.Class{Token: p.curToken, Parent: config.ObjectClassName, File: p.file}

	if !p.expectPeek(token.TYPEID) {
		return nil
	}
	class.Name = p.curToken.Lexeme

	if p.peekTokenIs(token.INHERITS) {
		p.nextToken()
		if !p.expectPeek(token.TYPEID) {
			return nil
		}
		class.Parent = p.curToken.Lexeme
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) {
		if !p.expectPeek(token.OBJECTID) {
			return nil
		}
		feature := p.parseFeature()
		if feature == nil {
			return nil
		}
		class.Features = append(class.Features, feature)
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
	}
	p.nextToken() // consume }

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return class
}

// parseFeature starts on the feature name and tells a method from an
// attribute by the token that follows it.
func (p *Parser) parseFeature() ast.Feature {
	switch {
	case p.peekTokenIs(token.LPAREN):
		if m := p.parseMethod(); m != nil {
			return m
		}
	case p.peekTokenIs(token.COLON):
		if a := p.parseAttribute(); a != nil {
			return a
		}
	default:
		p.fail(diagnostics.ErrP001, p.peekToken)
	}
	return nil
}

// name(formals) : TYPE { expr }
func (p *Parser) parseMethod() *ast.Method {
	method := &ast.Method{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken() // consume (

	formals, ok := p.parseFormals()
	if !ok {
		return nil
	}
	method.Formals = formals

	if !p.expectPeek(token.COLON) || !p.expectPeek(token.TYPEID) {
		return nil
	}
	method.ReturnType = p.curToken.Lexeme

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	method.Body = p.parseExpression()
	if method.Body == nil || !p.expectPeek(token.RBRACE) {
		return nil
	}
	return method
}

// parseFormals starts on ( and ends on ).
func (p *Parser) parseFormals() ([]*ast.Formal, bool) {
	var formals []*ast.Formal
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return formals, true
	}

	for {
		if !p.expectPeek(token.OBJECTID) {
			return nil, false
		}
		formal := &ast.Formal{Token: p.curToken, Name: p.curToken.Lexeme}
		if !p.expectPeek(token.COLON) || !p.expectPeek(token.TYPEID) {
			return nil, false
		}
		formal.Type = p.curToken.Lexeme
		formals = append(formals, formal)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return formals, true
}

// name : TYPE [<- expr]
func (p *Parser) parseAttribute() *ast.Attribute {
	attr := &ast.Attribute{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken() // consume :

	if !p.expectPeek(token.TYPEID) {
		return nil
	}
	attr.Type = p.curToken.Lexeme

	init := p.parseOptionalInit()
	if init == nil {
		return nil
	}
	attr.Init = init
	return attr
}

// parseOptionalInit parses "<- expr" when present and yields a NoExpr
// located at the declaration otherwise.
func (p *Parser) parseOptionalInit() ast.Expression {
	if !p.peekTokenIs(token.ASSIGN) {
		return &ast.NoExpr{Token: p.curToken}
	}
	p.nextToken()
	p.nextToken()
	return p.parseExpression()
}
