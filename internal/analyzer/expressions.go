package analyzer

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
)

func (c *checker) VisitPrefixExpression(node *ast.PrefixExpression) {
	typ, err := c.infer(node.Right)
	if err != nil {
		c.failWith(err)
		return
	}

	switch node.Operator {
	case ast.OpIsVoid:
		c.ok(config.BoolClassName)
	case ast.OpNot:
		if typ != config.BoolClassName {
			c.fail(diagnostics.ErrS011, node, "Argument of 'not' has type %s instead of Bool.", typ)
			return
		}
		c.ok(config.BoolClassName)
	case ast.OpNegate:
		if typ != config.IntClassName {
			c.fail(diagnostics.ErrS011, node, "Argument of '~' has type %s instead of Int.", typ)
			return
		}
		c.ok(config.IntClassName)
	default:
		c.fail(diagnostics.ErrS011, node, "Unknown prefix operator %s.", node.Operator)
	}
}

func (c *checker) VisitInfixExpression(node *ast.InfixExpression) {
	left, err := c.infer(node.Left)
	if err != nil {
		c.failWith(err)
		return
	}
	right, err := c.infer(node.Right)
	if err != nil {
		c.failWith(err)
		return
	}

	if node.Operator == ast.OpEqual {
		if (config.IsSealedClass(left) || config.IsSealedClass(right)) && left != right {
			c.fail(diagnostics.ErrS011, node, "Illegal comparison with a basic type.")
			return
		}
		c.ok(config.BoolClassName)
		return
	}

	if left != config.IntClassName || right != config.IntClassName {
		c.fail(diagnostics.ErrS011, node, "non-Int arguments: %s %s %s", left, node.Operator, right)
		return
	}
	if node.Operator.IsArithmetic() {
		c.ok(config.IntClassName)
		return
	}
	c.ok(config.BoolClassName)
}
