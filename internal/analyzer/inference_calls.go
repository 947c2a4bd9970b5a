package analyzer

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
)

func (c *checker) VisitAssignExpression(node *ast.AssignExpression) {
	if node.Name == config.SelfName {
		c.fail(diagnostics.ErrS007, node, "Cannot assign to 'self'.")
		return
	}
	sym, found := c.symbolTable.LookupObject(c.cls.name, node.Name)
	if !found {
		c.fail(diagnostics.ErrS001, node, "Assignment to undeclared variable %s.", node.Name)
		return
	}

	typ, err := c.infer(node.Value)
	if err != nil {
		c.failWith(err)
		return
	}
	if !c.conforms(typ, sym.Type) {
		c.fail(diagnostics.ErrS002, node,
			"Type %s of assigned expression does not conform to declared type %s of identifier %s.", typ, sym.Type, node.Name)
		return
	}
	c.ok(typ)
}

// VisitDispatchExpression checks recv.m(args), recv@T.m(args) and m(args).
// A SELF_TYPE return takes the static type of the receiver, so calls on
// self keep SELF_TYPE.
func (c *checker) VisitDispatchExpression(node *ast.DispatchExpression) {
	recv, err := c.infer(node.Receiver)
	if err != nil {
		c.failWith(err)
		return
	}

	args := make([]string, len(node.Arguments))
	for i, arg := range node.Arguments {
		if args[i], err = c.infer(arg); err != nil {
			c.failWith(err)
			return
		}
	}

	lookupIn := c.cls.resolve(recv)
	if node.IsStatic() {
		if !c.graph.HasClass(node.StaticType) {
			c.fail(diagnostics.ErrS008, node, "Static dispatch to undefined class %s.", node.StaticType)
			return
		}
		if !c.graph.IsAncestor(node.StaticType, lookupIn) {
			c.fail(diagnostics.ErrS002, node,
				"Expression type %s does not conform to declared static dispatch type %s.", recv, node.StaticType)
			return
		}
		lookupIn = node.StaticType
	}

	sig, found := c.symbolTable.LookupMethod(lookupIn, node.Method)
	if !found {
		c.fail(diagnostics.ErrS003, node, "Dispatch to undefined method %s.", node.Method)
		return
	}
	if len(args) != len(sig.ArgTypes) {
		c.fail(diagnostics.ErrS004, node, "Method %s called with wrong number of arguments.", node.Method)
		return
	}
	for i, arg := range args {
		if !c.conforms(arg, sig.ArgTypes[i]) {
			c.fail(diagnostics.ErrS002, node,
				"In call of method %s, type %s of argument %d does not conform to declared type %s.", node.Method, arg, i+1, sig.ArgTypes[i])
			return
		}
	}

	if sig.ReturnType == config.SelfTypeName {
		c.ok(recv)
		return
	}
	c.ok(sig.ReturnType)
}
