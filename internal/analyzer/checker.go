package analyzer

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
)

// classContext is the class whose bodies are being checked. It is fixed for
// the lifetime of a checker.
type classContext struct {
	name string
}

// resolve replaces SELF_TYPE with the current class.
func (cc classContext) resolve(typ string) string {
	if typ == config.SelfTypeName {
		return cc.name
	}
	return typ
}

// checker infers expression types for one class. Each Visit method ends by
// calling either ok or fail exactly once.
type checker struct {
	*Analyzer
	cls classContext

	typ string
	err *diagnostics.DiagnosticError
}

func newChecker(a *Analyzer, cls classContext) *checker {
	return &checker{Analyzer: a, cls: cls}
}

func (c *checker) ok(typ string) {
	c.typ, c.err = typ, nil
}

func (c *checker) fail(code diagnostics.ErrorCode, node ast.Node, format string, args ...interface{}) {
	c.typ, c.err = "", diagnostics.NewErrorAt(code, node.Line(), format, args...)
}

func (c *checker) failWith(err *diagnostics.DiagnosticError) {
	c.typ, c.err = "", err
}

// infer checks e and records its type on the node. Every inferred type must
// be SELF_TYPE or a known class; only NoExpr has _no_type.
func (c *checker) infer(e ast.Expression) (string, *diagnostics.DiagnosticError) {
	c.typ, c.err = "", nil
	e.Accept(c)
	typ, err := c.typ, c.err
	if err != nil {
		return "", err
	}

	if typ != config.SelfTypeName && typ != config.NoTypeName && !c.graph.HasClass(typ) {
		return "", diagnostics.NewErrorAt(diagnostics.ErrS008, e.Line(), "Expression has undefined type %s.", typ)
	}
	e.SetType(typ)
	return typ, nil
}

// conforms reports sub <= sup. SELF_TYPE only conforms to SELF_TYPE on the
// right and stands for the current class on the left.
func (c *checker) conforms(sub, sup string) bool {
	if sup == config.SelfTypeName {
		return sub == config.SelfTypeName
	}
	return c.graph.IsAncestor(sup, c.cls.resolve(sub))
}

// conformsDeclared checks an initializer against a declared type, reading a
// declared SELF_TYPE as the current class.
func (c *checker) conformsDeclared(sub, declared string) bool {
	return c.conforms(sub, c.cls.resolve(declared))
}

// join is the least upper bound of two static types.
func (c *checker) join(a, b string) string {
	if a == b {
		return a
	}
	lca, err := c.graph.LCA(c.cls.resolve(a), c.cls.resolve(b))
	if err != nil {
		return config.ObjectClassName
	}
	return lca
}

// knownType reports whether typ may appear in a declaration.
func (c *checker) knownType(typ string) bool {
	return typ == config.SelfTypeName || c.graph.HasClass(typ)
}

func (c *checker) checkClass(class *ast.Class) *diagnostics.DiagnosticError {
	for _, feature := range class.Features {
		c.err = nil
		feature.Accept(c)
		if c.err != nil {
			return c.err
		}
	}
	return nil
}

// VisitProgram is not used: the Analyzer gives every class its own checker.
func (c *checker) VisitProgram(node *ast.Program) {}

func (c *checker) VisitClass(node *ast.Class) {
	if err := c.checkClass(node); err != nil {
		c.failWith(err)
	}
}
