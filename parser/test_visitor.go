/*
File    : go-lox/parser/test_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser - test_visitor.go
// This file defines the TestingVisitor type, which is a visitor implementation
// used for testing the AST traversal of the parser. The TestingVisitor asserts
// that the nodes visited during traversal match an expected sequence of nodes
// provided in advance. It uses the testify/assert package to perform assertions
// and will fail tests if the actual traversal does not match expectations.
package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestingVisitor is a visitor that asserts the expected nodes
// The expected nodes are given in pre-order traversal order
type TestingVisitor struct {
	ExpectedNodes []Node     // List of expected nodes in traversal order
	Ptr           int        // Current position pointer in the expected nodes list
	T             *testing.T // Testing instance for assertions
}

// check asserts that the visited node matches the next expected node:
// same dynamic type and same Literal() rendering.
func (v *TestingVisitor) check(node Node) {
	// Check bounds before accessing ExpectedNodes
	if v.Ptr >= len(v.ExpectedNodes) {
		assert.Fail(v.T, "visited more nodes than expected", "extra node: %s", node.Literal())
		return
	}
	curr := v.ExpectedNodes[v.Ptr]
	assert.Equal(v.T, fmt.Sprintf("%T", curr), fmt.Sprintf("%T", node), "node kind mismatch at position %d", v.Ptr)
	assert.Equal(v.T, curr.Literal(), node.Literal(), "node literal mismatch at position %d", v.Ptr)
	v.Ptr++
}

// AssertExhausted asserts that every expected node was visited.
func (v *TestingVisitor) AssertExhausted() {
	assert.Equal(v.T, len(v.ExpectedNodes), v.Ptr, "not all expected nodes were visited")
}

// VisitRootNode visits the root node and recursively visits all statements
func (v *TestingVisitor) VisitRootNode(node *RootNode) {
	for _, stmt := range node.Statements {
		stmt.Accept(v)
	}
}

// VisitNumberLiteralExpressionNode asserts a number literal node
func (v *TestingVisitor) VisitNumberLiteralExpressionNode(node *NumberLiteralExpressionNode) {
	v.check(node)
}

// VisitStringLiteralExpressionNode asserts a string literal node
func (v *TestingVisitor) VisitStringLiteralExpressionNode(node *StringLiteralExpressionNode) {
	v.check(node)
}

// VisitBooleanLiteralExpressionNode asserts a boolean literal node
func (v *TestingVisitor) VisitBooleanLiteralExpressionNode(node *BooleanLiteralExpressionNode) {
	v.check(node)
}

// VisitNilLiteralExpressionNode asserts the nil literal node
func (v *TestingVisitor) VisitNilLiteralExpressionNode(node *NilLiteralExpressionNode) {
	v.check(node)
}

// VisitBinaryExpressionNode asserts a binary node, then visits operands
func (v *TestingVisitor) VisitBinaryExpressionNode(node *BinaryExpressionNode) {
	v.check(node)
	node.Left.Accept(v)
	node.Right.Accept(v)
}

// VisitUnaryExpressionNode asserts a unary node, then visits the operand
func (v *TestingVisitor) VisitUnaryExpressionNode(node *UnaryExpressionNode) {
	v.check(node)
	node.Right.Accept(v)
}

// VisitLogicalExpressionNode asserts a logical node, then visits operands
func (v *TestingVisitor) VisitLogicalExpressionNode(node *LogicalExpressionNode) {
	v.check(node)
	node.Left.Accept(v)
	node.Right.Accept(v)
}

// VisitParenthesizedExpressionNode asserts a grouping node, then visits the inner expression
func (v *TestingVisitor) VisitParenthesizedExpressionNode(node *ParenthesizedExpressionNode) {
	v.check(node)
	node.Expr.Accept(v)
}

// VisitIdentifierExpressionNode asserts an identifier node
func (v *TestingVisitor) VisitIdentifierExpressionNode(node *IdentifierExpressionNode) {
	v.check(node)
}

// VisitAssignmentExpressionNode asserts an assignment node, then visits the value
func (v *TestingVisitor) VisitAssignmentExpressionNode(node *AssignmentExpressionNode) {
	v.check(node)
	node.Value.Accept(v)
}

// VisitCallExpressionNode asserts a call node, then visits callee and arguments
func (v *TestingVisitor) VisitCallExpressionNode(node *CallExpressionNode) {
	v.check(node)
	node.Callee.Accept(v)
	for _, arg := range node.Args {
		arg.Accept(v)
	}
}

// VisitGetExpressionNode asserts a property read node, then visits the object
func (v *TestingVisitor) VisitGetExpressionNode(node *GetExpressionNode) {
	v.check(node)
	node.Object.Accept(v)
}

// VisitSetExpressionNode asserts a property write node, then visits object and value
func (v *TestingVisitor) VisitSetExpressionNode(node *SetExpressionNode) {
	v.check(node)
	node.Object.Accept(v)
	node.Value.Accept(v)
}

// VisitThisExpressionNode asserts a 'this' node
func (v *TestingVisitor) VisitThisExpressionNode(node *ThisExpressionNode) {
	v.check(node)
}

// VisitSuperExpressionNode asserts a 'super' node
func (v *TestingVisitor) VisitSuperExpressionNode(node *SuperExpressionNode) {
	v.check(node)
}

// VisitDeclarativeStatementNode asserts a var declaration, then visits the initializer
func (v *TestingVisitor) VisitDeclarativeStatementNode(node *DeclarativeStatementNode) {
	v.check(node)
	if node.Initializer != nil {
		node.Initializer.Accept(v)
	}
}

// VisitBlockStatementNode asserts a block node, then visits its statements
func (v *TestingVisitor) VisitBlockStatementNode(node *BlockStatementNode) {
	v.check(node)
	for _, stmt := range node.Statements {
		stmt.Accept(v)
	}
}

// VisitIfStatementNode asserts an if node, then visits condition and branches
func (v *TestingVisitor) VisitIfStatementNode(node *IfStatementNode) {
	v.check(node)
	node.Condition.Accept(v)
	node.ThenBranch.Accept(v)
	if node.ElseBranch != nil {
		node.ElseBranch.Accept(v)
	}
}

// VisitWhileLoopStatementNode asserts a while node, then visits condition and body
func (v *TestingVisitor) VisitWhileLoopStatementNode(node *WhileLoopStatementNode) {
	v.check(node)
	node.Condition.Accept(v)
	node.Body.Accept(v)
}

// VisitBreakStatementNode asserts a break node
func (v *TestingVisitor) VisitBreakStatementNode(node *BreakStatementNode) {
	v.check(node)
}

// VisitFunctionStatementNode asserts a function node, then visits its body
func (v *TestingVisitor) VisitFunctionStatementNode(node *FunctionStatementNode) {
	v.check(node)
	for _, stmt := range node.Body {
		stmt.Accept(v)
	}
}

// VisitReturnStatementNode asserts a return node, then visits the value
func (v *TestingVisitor) VisitReturnStatementNode(node *ReturnStatementNode) {
	v.check(node)
	if node.Value != nil {
		node.Value.Accept(v)
	}
}

// VisitClassStatementNode asserts a class node, then visits its methods
func (v *TestingVisitor) VisitClassStatementNode(node *ClassStatementNode) {
	v.check(node)
	for _, method := range node.Methods {
		method.Accept(v)
	}
}
