package ast

// Visitor is implemented in full by every consumer of the tree, so adding a
// node kind breaks the build until each consumer handles it.
type Visitor interface {
	VisitProgram(node *Program)
	VisitClass(node *Class)
	VisitMethod(node *Method)
	VisitAttribute(node *Attribute)
	VisitFormal(node *Formal)

	VisitNoExpr(node *NoExpr)
	VisitIntegerLiteral(node *IntegerLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitIdentifier(node *Identifier)
	VisitAssignExpression(node *AssignExpression)
	VisitDispatchExpression(node *DispatchExpression)
	VisitIfExpression(node *IfExpression)
	VisitWhileExpression(node *WhileExpression)
	VisitBlockExpression(node *BlockExpression)
	VisitLetExpression(node *LetExpression)
	VisitCaseExpression(node *CaseExpression)
	VisitNewExpression(node *NewExpression)
	VisitPrefixExpression(node *PrefixExpression)
	VisitInfixExpression(node *InfixExpression)
}
