package analyzer

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/symbols"
)

func (c *checker) VisitAttribute(node *ast.Attribute) {
	if !c.knownType(node.Type) {
		c.fail(diagnostics.ErrS008, node, "Class %s of attribute %s is undefined.", node.Type, node.Name)
		return
	}
	if ast.IsNoExpr(node.Init) {
		c.ok(node.Type)
		return
	}

	var typ string
	var err *diagnostics.DiagnosticError
	c.symbolTable.Enter(func() {
		typ, err = c.infer(node.Init)
	})
	if err != nil {
		c.failWith(err)
		return
	}
	if !c.conformsDeclared(typ, node.Type) {
		c.fail(diagnostics.ErrS002, node,
			"Inferred type %s of initialization of attribute %s does not conform to declared type %s.", typ, node.Name, node.Type)
		return
	}
	c.ok(node.Type)
}

func (c *checker) VisitMethod(node *ast.Method) {
	if !c.knownType(node.ReturnType) {
		c.fail(diagnostics.ErrS008, node, "Undefined return type %s in method %s.", node.ReturnType, node.Name)
		return
	}

	var typ string
	var err *diagnostics.DiagnosticError
	c.symbolTable.Enter(func() {
		for _, formal := range node.Formals {
			formal.Accept(c)
			if c.err != nil {
				err = c.err
				return
			}
		}
		typ, err = c.infer(node.Body)
	})
	if err != nil {
		c.failWith(err)
		return
	}

	if !c.conforms(typ, node.ReturnType) {
		c.fail(diagnostics.ErrS002, node,
			"Inferred return type %s of method %s does not conform to declared return type %s.", typ, node.Name, node.ReturnType)
		return
	}
	c.ok(node.ReturnType)
}

// VisitFormal binds a parameter in the method scope.
func (c *checker) VisitFormal(node *ast.Formal) {
	switch {
	case node.Name == config.SelfName:
		c.fail(diagnostics.ErrS007, node, "'self' cannot be the name of a formal parameter.")
		return
	case node.Type == config.SelfTypeName:
		c.fail(diagnostics.ErrS010, node, "Formal parameter %s cannot have type SELF_TYPE.", node.Name)
		return
	}

	err := c.symbolTable.AddObject(node.Name, node.Type, symbols.FormalSymbol)
	if se, ok := err.(*symbols.SymbolError); ok {
		switch se.Kind {
		case symbols.ErrRedefined:
			c.fail(se.Code(), node, "Formal parameter %s is multiply defined.", node.Name)
		case symbols.ErrUnknownType:
			c.fail(se.Code(), node, "Class %s of formal parameter %s is undefined.", node.Type, node.Name)
		default:
			c.fail(se.Code(), node, "%s", se.Message)
		}
		return
	}
	c.ok(node.Type)
}
