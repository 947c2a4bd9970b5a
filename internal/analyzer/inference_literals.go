package analyzer

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
)

func (c *checker) VisitNoExpr(node *ast.NoExpr) {
	c.ok(config.NoTypeName)
}

func (c *checker) VisitIntegerLiteral(node *ast.IntegerLiteral) {
	c.ok(config.IntClassName)
}

func (c *checker) VisitStringLiteral(node *ast.StringLiteral) {
	c.ok(config.StringClassName)
}

func (c *checker) VisitBooleanLiteral(node *ast.BooleanLiteral) {
	c.ok(config.BoolClassName)
}

func (c *checker) VisitIdentifier(node *ast.Identifier) {
	if node.Value == config.SelfName {
		c.ok(config.SelfTypeName)
		return
	}
	sym, found := c.symbolTable.LookupObject(c.cls.name, node.Value)
	if !found {
		c.fail(diagnostics.ErrS001, node, "Undeclared identifier %s.", node.Value)
		return
	}
	c.ok(sym.Type)
}

func (c *checker) VisitNewExpression(node *ast.NewExpression) {
	if !c.knownType(node.TypeName) {
		c.fail(diagnostics.ErrS008, node, "'new' used with undefined class %s.", node.TypeName)
		return
	}
	c.ok(node.TypeName)
}
