package analyzer

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/symbols"
)

func (c *checker) VisitIfExpression(node *ast.IfExpression) {
	cond, err := c.infer(node.Condition)
	if err != nil {
		c.failWith(err)
		return
	}
	if cond != config.BoolClassName {
		c.fail(diagnostics.ErrS002, node, "Predicate of 'if' does not have type Bool.")
		return
	}

	then, err := c.infer(node.Consequence)
	if err != nil {
		c.failWith(err)
		return
	}
	els, err := c.infer(node.Alternative)
	if err != nil {
		c.failWith(err)
		return
	}
	c.ok(c.join(then, els))
}

func (c *checker) VisitWhileExpression(node *ast.WhileExpression) {
	cond, err := c.infer(node.Condition)
	if err != nil {
		c.failWith(err)
		return
	}
	if cond != config.BoolClassName {
		c.fail(diagnostics.ErrS002, node, "Loop condition does not have type Bool.")
		return
	}
	if _, err := c.infer(node.Body); err != nil {
		c.failWith(err)
		return
	}
	c.ok(config.ObjectClassName)
}

func (c *checker) VisitBlockExpression(node *ast.BlockExpression) {
	var typ string
	for _, e := range node.Expressions {
		t, err := c.infer(e)
		if err != nil {
			c.failWith(err)
			return
		}
		typ = t
	}
	c.ok(typ)
}

// VisitLetExpression types the body with the bindings in scope.
func (c *checker) VisitLetExpression(node *ast.LetExpression) {
	typ, err := c.checkLet(node.Bindings, node.Body)
	if err != nil {
		c.failWith(err)
		return
	}
	c.ok(typ)
}

// checkLet binds the names one after another in a single frame, so each
// initializer sees the bindings before it.
func (c *checker) checkLet(bindings []*ast.LetBinding, body ast.Expression) (string, *diagnostics.DiagnosticError) {
	var typ string
	var err *diagnostics.DiagnosticError
	c.symbolTable.Enter(func() {
		for _, b := range bindings {
			if err = c.bindLet(b); err != nil {
				return
			}
		}
		typ, err = c.infer(body)
	})
	return typ, err
}

func (c *checker) bindLet(b *ast.LetBinding) *diagnostics.DiagnosticError {
	if b.Name == config.SelfName {
		return diagnostics.NewErrorAt(diagnostics.ErrS007, b.Token.Line, "'self' cannot be bound in a 'let' expression.")
	}
	if !c.knownType(b.Type) {
		return diagnostics.NewErrorAt(diagnostics.ErrS008, b.Token.Line,
			"Class %s of let-bound identifier %s is undefined.", b.Type, b.Name)
	}
	if !ast.IsNoExpr(b.Init) {
		init, err := c.infer(b.Init)
		if err != nil {
			return err
		}
		if !c.conformsDeclared(init, b.Type) {
			return diagnostics.NewErrorAt(diagnostics.ErrS002, b.Token.Line,
				"Inferred type %s of initialization of %s does not conform to identifier's declared type %s.", init, b.Name, b.Type)
		}
	}
	if addErr := c.symbolTable.AddObject(b.Name, b.Type, symbols.LocalSymbol); addErr != nil {
		return diagnostics.NewErrorAt(diagnostics.ErrS005, b.Token.Line, "%s", addErr.Error())
	}
	return nil
}

func (c *checker) VisitCaseExpression(node *ast.CaseExpression) {
	if _, err := c.infer(node.Scrutinee); err != nil {
		c.failWith(err)
		return
	}

	seen := make(map[string]bool, len(node.Branches))
	for _, b := range node.Branches {
		if seen[b.Type] {
			c.fail(diagnostics.ErrS009, node, "Duplicate branch %s in case statement.", b.Type)
			return
		}
		seen[b.Type] = true
	}

	var result string
	for _, b := range node.Branches {
		typ, err := c.checkBranch(b)
		if err != nil {
			c.failWith(err)
			return
		}
		if result == "" {
			result = typ
		} else {
			result = c.join(result, typ)
		}
	}
	c.ok(result)
}

func (c *checker) checkBranch(b *ast.CaseBranch) (string, *diagnostics.DiagnosticError) {
	switch {
	case b.Name == config.SelfName:
		return "", diagnostics.NewErrorAt(diagnostics.ErrS007, b.Token.Line, "'self' bound in 'case'.")
	case b.Type == config.SelfTypeName:
		return "", diagnostics.NewErrorAt(diagnostics.ErrS010, b.Token.Line,
			"Identifier %s declared with type SELF_TYPE in case branch.", b.Name)
	case !c.graph.HasClass(b.Type):
		return "", diagnostics.NewErrorAt(diagnostics.ErrS008, b.Token.Line, "Class %s of case branch is undefined.", b.Type)
	}

	var typ string
	var err *diagnostics.DiagnosticError
	c.symbolTable.Enter(func() {
		if addErr := c.symbolTable.AddObject(b.Name, b.Type, symbols.LocalSymbol); addErr != nil {
			err = diagnostics.NewErrorAt(diagnostics.ErrS005, b.Token.Line, "%s", addErr.Error())
			return
		}
		typ, err = c.infer(b.Body)
	})
	return typ, err
}
