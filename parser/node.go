/*
File    : go-lox/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// NodeVisitor: implements the Visitor design pattern for traversing the Abstract Syntax Tree (AST)
// Each Visit method processes a specific node type, enabling operations like printing or testing.
// The resolver and the evaluator walk the tree with type switches instead, so that
// a newly added node kind surfaces as a missing case rather than silent dynamic dispatch.
type NodeVisitor interface {
	VisitRootNode(node *RootNode) // Entry point for visiting the entire program

	// Literal value visitors - handle primitive data types
	VisitNumberLiteralExpressionNode(node *NumberLiteralExpressionNode)   // Number literals: 42, 3.14
	VisitStringLiteralExpressionNode(node *StringLiteralExpressionNode)   // String literals: "hello"
	VisitBooleanLiteralExpressionNode(node *BooleanLiteralExpressionNode) // Boolean literals: true, false
	VisitNilLiteralExpressionNode(node *NilLiteralExpressionNode)         // Nil literal

	// Expression visitors - handle operations and computations
	VisitBinaryExpressionNode(node *BinaryExpressionNode)               // Binary operations: +, -, *, /, ==, <, ...
	VisitUnaryExpressionNode(node *UnaryExpressionNode)                 // Unary operations: -, !
	VisitLogicalExpressionNode(node *LogicalExpressionNode)             // Short-circuiting operations: and, or
	VisitParenthesizedExpressionNode(node *ParenthesizedExpressionNode) // Parenthesized expressions: (expr)
	VisitIdentifierExpressionNode(node *IdentifierExpressionNode)       // Variable references: x, myVar
	VisitAssignmentExpressionNode(node *AssignmentExpressionNode)       // Assignments: x = 10
	VisitCallExpressionNode(node *CallExpressionNode)                   // Calls: funcName(arg1, arg2)
	VisitGetExpressionNode(node *GetExpressionNode)                     // Property reads: obj.field
	VisitSetExpressionNode(node *SetExpressionNode)                     // Property writes: obj.field = v
	VisitThisExpressionNode(node *ThisExpressionNode)                   // 'this' inside methods
	VisitSuperExpressionNode(node *SuperExpressionNode)                 // 'super.method' inside methods

	// Statement visitors
	VisitDeclarativeStatementNode(node *DeclarativeStatementNode) // Variable declarations: var x = 10;
	VisitBlockStatementNode(node *BlockStatementNode)             // Code blocks: { stmt1; stmt2; }
	VisitIfStatementNode(node *IfStatementNode)                   // If-else conditionals
	VisitWhileLoopStatementNode(node *WhileLoopStatementNode)     // While loops (and desugared for loops)
	VisitBreakStatementNode(node *BreakStatementNode)             // break;
	VisitFunctionStatementNode(node *FunctionStatementNode)       // Function declarations and methods
	VisitReturnStatementNode(node *ReturnStatementNode)           // Return statements
	VisitClassStatementNode(node *ClassStatementNode)             // Class declarations
}

// Node: base interface for all nodes of the AST
// Literal(): returns the string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// StatementNode: every expression is also a statement (an expression statement)
//
// Nodes are always handled through pointers, so every expression has a stable
// identity; the resolver keys its depth table by that pointer identity.
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of statements in the program
type RootNode struct {
	Statements []StatementNode // every line of code is a statement
}

// RootNode.Literal(): string representation of the root node's statements
func (root *RootNode) Literal() string {
	res := ""
	for _, stmt := range root.Statements {
		res += stmt.Literal()
		res += ";"
	}
	return res
}

// RootNode.Accept(): accepts a visitor (eg PrintingVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(root)
}

// There can be many types of ExpressionNodes

// NumberLiteralExpressionNode: represents a numeric literal
// Example: 42, 3.14
type NumberLiteralExpressionNode struct {
	Token lexer.Token // The number token with its raw lexeme
	Value float64     // The parsed 64-bit float value
}

// NumberLiteralExpressionNode.Literal(): string representation of the node
func (node *NumberLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// NumberLiteralExpressionNode.Accept(): accepts a visitor
func (node *NumberLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNumberLiteralExpressionNode(node)
}

// NumberLiteralExpressionNode.Statement(): every expression is also a statement
func (node *NumberLiteralExpressionNode) Statement() {}

// NumberLiteralExpressionNode.Expression(): marker
func (node *NumberLiteralExpressionNode) Expression() {}

// StringLiteralExpressionNode: represents a string literal
// Example: "hello"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token (lexeme excludes the quotes)
	Value string      // The string value
}

// StringLiteralExpressionNode.Literal(): string representation of the node
func (node *StringLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// StringLiteralExpressionNode.Accept(): accepts a visitor
func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(node)
}

// StringLiteralExpressionNode.Statement(): every expression is also a statement
func (node *StringLiteralExpressionNode) Statement() {}

// StringLiteralExpressionNode.Expression(): marker
func (node *StringLiteralExpressionNode) Expression() {}

// BooleanLiteralExpressionNode: represents a boolean literal value
// Example: true or false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The boolean token (true/false)
	Value bool        // The boolean value
}

// BooleanLiteralExpressionNode.Literal(): string representation of the node
func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// BooleanLiteralExpressionNode.Accept(): accepts a visitor
func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(node)
}

// BooleanLiteralExpressionNode.Statement(): every expression is also a statement
func (node *BooleanLiteralExpressionNode) Statement() {}

// BooleanLiteralExpressionNode.Expression(): marker
func (node *BooleanLiteralExpressionNode) Expression() {}

// NilLiteralExpressionNode: represents the nil literal
type NilLiteralExpressionNode struct {
	Token lexer.Token // The nil token
}

// NilLiteralExpressionNode.Literal(): string representation of the node
func (node *NilLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

// NilLiteralExpressionNode.Accept(): accepts a visitor
func (node *NilLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNilLiteralExpressionNode(node)
}

// NilLiteralExpressionNode.Statement(): every expression is also a statement
func (node *NilLiteralExpressionNode) Statement() {}

// NilLiteralExpressionNode.Expression(): marker
func (node *NilLiteralExpressionNode) Expression() {}

// BinaryExpressionNode: represents a binary operation expression with two operands
// Example: 2 + 3, x * y, a <= b
type BinaryExpressionNode struct {
	Operation lexer.Token    // The binary operator token (+, -, *, /, ==, !=, <, <=, >, >=)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + node.Operation.Literal + node.Right.Literal()
}

// BinaryExpressionNode.Accept(): accepts a visitor
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(node)
}

// BinaryExpressionNode.Statement(): every expression is also a statement
func (node *BinaryExpressionNode) Statement() {}

// BinaryExpressionNode.Expression(): marker
func (node *BinaryExpressionNode) Expression() {}

// UnaryExpressionNode: represents a unary operation expression with one operand
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token (-, !)
	Right     ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Literal + node.Right.Literal()
}

// UnaryExpressionNode.Accept(): accepts a visitor
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(node)
}

// UnaryExpressionNode.Statement(): every expression is also a statement
func (node *UnaryExpressionNode) Statement() {}

// UnaryExpressionNode.Expression(): marker
func (node *UnaryExpressionNode) Expression() {}

// LogicalExpressionNode: represents a short-circuiting boolean expression
// Example: a and b, a or b
// Unlike BinaryExpressionNode, the right operand may never be evaluated.
type LogicalExpressionNode struct {
	Operation lexer.Token    // The logical operator token (and, or)
	Left      ExpressionNode // Left operand expression
	Right     ExpressionNode // Right operand expression
}

// LogicalExpressionNode.Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}

// LogicalExpressionNode.Accept(): accepts a visitor
func (node *LogicalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLogicalExpressionNode(node)
}

// LogicalExpressionNode.Statement(): every expression is also a statement
func (node *LogicalExpressionNode) Statement() {}

// LogicalExpressionNode.Expression(): marker
func (node *LogicalExpressionNode) Expression() {}

// ParenthesizedExpressionNode: represents a grouped expression
// Example: (1 + 2)
type ParenthesizedExpressionNode struct {
	Token lexer.Token    // The opening parenthesis token
	Expr  ExpressionNode // The inner expression
}

// ParenthesizedExpressionNode.Literal(): string representation of the node
func (node *ParenthesizedExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

// ParenthesizedExpressionNode.Accept(): accepts a visitor
func (node *ParenthesizedExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitParenthesizedExpressionNode(node)
}

// ParenthesizedExpressionNode.Statement(): every expression is also a statement
func (node *ParenthesizedExpressionNode) Statement() {}

// ParenthesizedExpressionNode.Expression(): marker
func (node *ParenthesizedExpressionNode) Expression() {}

// IdentifierExpressionNode: represents a variable reference
// Example: x, myVar
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The variable name
}

// IdentifierExpressionNode.Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

// IdentifierExpressionNode.Accept(): accepts a visitor
func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(node)
}

// IdentifierExpressionNode.Statement(): every expression is also a statement
func (node *IdentifierExpressionNode) Statement() {}

// IdentifierExpressionNode.Expression(): marker
func (node *IdentifierExpressionNode) Expression() {}

// AssignmentExpressionNode: represents an assignment to a variable
// Example: x = 10
// The value of the whole expression is the assigned value.
type AssignmentExpressionNode struct {
	Name  lexer.Token    // The target variable's identifier token
	Value ExpressionNode // The value expression
}

// AssignmentExpressionNode.Literal(): string representation of the node
func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Literal + "=" + node.Value.Literal()
}

// AssignmentExpressionNode.Accept(): accepts a visitor
func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(node)
}

// AssignmentExpressionNode.Statement(): every expression is also a statement
func (node *AssignmentExpressionNode) Statement() {}

// AssignmentExpressionNode.Expression(): marker
func (node *AssignmentExpressionNode) Expression() {}

// CallExpressionNode: represents a function, class, or builtin invocation
// Example: add(1, 2), Point(3, 4), clock()
type CallExpressionNode struct {
	Callee ExpressionNode   // The expression evaluating to the callable
	Paren  lexer.Token      // The closing parenthesis token, kept for error location
	Args   []ExpressionNode // Argument expressions, evaluated left to right
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	res := node.Callee.Literal() + "("
	for i, arg := range node.Args {
		if i > 0 {
			res += ", "
		}
		res += arg.Literal()
	}
	res += ")"
	return res
}

// CallExpressionNode.Accept(): accepts a visitor
func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(node)
}

// CallExpressionNode.Statement(): every expression is also a statement
func (node *CallExpressionNode) Statement() {}

// CallExpressionNode.Expression(): marker
func (node *CallExpressionNode) Expression() {}

// GetExpressionNode: represents reading a property from an instance
// Example: point.x, obj.method
type GetExpressionNode struct {
	Object ExpressionNode // The expression evaluating to the instance
	Name   lexer.Token    // The property name token
}

// GetExpressionNode.Literal(): string representation of the node
func (node *GetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Literal
}

// GetExpressionNode.Accept(): accepts a visitor
func (node *GetExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGetExpressionNode(node)
}

// GetExpressionNode.Statement(): every expression is also a statement
func (node *GetExpressionNode) Statement() {}

// GetExpressionNode.Expression(): marker
func (node *GetExpressionNode) Expression() {}

// SetExpressionNode: represents writing a property on an instance
// Example: point.x = 3
type SetExpressionNode struct {
	Object ExpressionNode // The expression evaluating to the instance
	Name   lexer.Token    // The property name token
	Value  ExpressionNode // The value expression
}

// SetExpressionNode.Literal(): string representation of the node
func (node *SetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Literal + "=" + node.Value.Literal()
}

// SetExpressionNode.Accept(): accepts a visitor
func (node *SetExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitSetExpressionNode(node)
}

// SetExpressionNode.Statement(): every expression is also a statement
func (node *SetExpressionNode) Statement() {}

// SetExpressionNode.Expression(): marker
func (node *SetExpressionNode) Expression() {}

// ThisExpressionNode: represents the 'this' keyword inside a method
type ThisExpressionNode struct {
	Keyword lexer.Token // The 'this' token
}

// ThisExpressionNode.Literal(): string representation of the node
func (node *ThisExpressionNode) Literal() string {
	return node.Keyword.Literal
}

// ThisExpressionNode.Accept(): accepts a visitor
func (node *ThisExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitThisExpressionNode(node)
}

// ThisExpressionNode.Statement(): every expression is also a statement
func (node *ThisExpressionNode) Statement() {}

// ThisExpressionNode.Expression(): marker
func (node *ThisExpressionNode) Expression() {}

// SuperExpressionNode: represents a superclass method access
// Example: super.init, super.draw
type SuperExpressionNode struct {
	Keyword lexer.Token // The 'super' token
	Method  lexer.Token // The method name token after the dot
}

// SuperExpressionNode.Literal(): string representation of the node
func (node *SuperExpressionNode) Literal() string {
	return node.Keyword.Literal + "." + node.Method.Literal
}

// SuperExpressionNode.Accept(): accepts a visitor
func (node *SuperExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitSuperExpressionNode(node)
}

// SuperExpressionNode.Statement(): every expression is also a statement
func (node *SuperExpressionNode) Statement() {}

// SuperExpressionNode.Expression(): marker
func (node *SuperExpressionNode) Expression() {}

// There can be many types of StatementNodes

// DeclarativeStatementNode: represents a variable declaration
// Example: var x = 10; var y;
// A missing initializer leaves the variable bound to nil.
type DeclarativeStatementNode struct {
	Token       lexer.Token    // The 'var' keyword token
	Name        lexer.Token    // The declared variable's identifier token
	Initializer ExpressionNode // The initializer expression, or nil
}

// DeclarativeStatementNode.Literal(): string representation of the node
func (node *DeclarativeStatementNode) Literal() string {
	res := "var " + node.Name.Literal
	if node.Initializer != nil {
		res += "=" + node.Initializer.Literal()
	}
	return res
}

// DeclarativeStatementNode.Accept(): accepts a visitor
func (node *DeclarativeStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDeclarativeStatementNode(node)
}

// DeclarativeStatementNode.Statement(): marker
func (node *DeclarativeStatementNode) Statement() {}

// BlockStatementNode: represents a braced block of statements with its own scope
// Example: { var x = 1; print(x); }
type BlockStatementNode struct {
	Token      lexer.Token     // The opening brace token
	Statements []StatementNode // The statements in the block
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	res := "{"
	for _, stmt := range node.Statements {
		res += stmt.Literal()
		res += ";"
	}
	res += "}"
	return res
}

// BlockStatementNode.Accept(): accepts a visitor
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(node)
}

// BlockStatementNode.Statement(): marker
func (node *BlockStatementNode) Statement() {}

// IfStatementNode: represents a conditional statement
// Example: if (cond) stmt else stmt
type IfStatementNode struct {
	Token      lexer.Token    // The 'if' keyword token
	Condition  ExpressionNode // The condition expression
	ThenBranch StatementNode  // Statement executed when the condition is truthy
	ElseBranch StatementNode  // Statement executed otherwise, or nil
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "if(" + node.Condition.Literal() + ")" + node.ThenBranch.Literal()
	if node.ElseBranch != nil {
		res += " else " + node.ElseBranch.Literal()
	}
	return res
}

// IfStatementNode.Accept(): accepts a visitor
func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(node)
}

// IfStatementNode.Statement(): marker
func (node *IfStatementNode) Statement() {}

// WhileLoopStatementNode: represents a while loop
// Example: while (cond) stmt
// For loops are desugared into this node by the parser.
type WhileLoopStatementNode struct {
	Token     lexer.Token    // The 'while' (or originating 'for') keyword token
	Condition ExpressionNode // The loop condition
	Body      StatementNode  // The loop body
}

// WhileLoopStatementNode.Literal(): string representation of the node
func (node *WhileLoopStatementNode) Literal() string {
	return "while(" + node.Condition.Literal() + ")" + node.Body.Literal()
}

// WhileLoopStatementNode.Accept(): accepts a visitor
func (node *WhileLoopStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileLoopStatementNode(node)
}

// WhileLoopStatementNode.Statement(): marker
func (node *WhileLoopStatementNode) Statement() {}

// BreakStatementNode: represents a break statement inside a loop
type BreakStatementNode struct {
	Token lexer.Token // The 'break' keyword token
}

// BreakStatementNode.Literal(): string representation of the node
func (node *BreakStatementNode) Literal() string {
	return "break"
}

// BreakStatementNode.Accept(): accepts a visitor
func (node *BreakStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBreakStatementNode(node)
}

// BreakStatementNode.Statement(): marker
func (node *BreakStatementNode) Statement() {}

// FunctionStatementNode: represents a function declaration or a class method
// Example: fun add(a, b) { return a + b; }
type FunctionStatementNode struct {
	Name   lexer.Token     // The function's identifier token
	Params []lexer.Token   // Parameter name tokens, at most 255
	Body   []StatementNode // The body statements
}

// FunctionStatementNode.Literal(): string representation of the node
func (node *FunctionStatementNode) Literal() string {
	res := "fun " + node.Name.Literal + "("
	for i, param := range node.Params {
		if i > 0 {
			res += ", "
		}
		res += param.Literal
	}
	res += "){"
	for _, stmt := range node.Body {
		res += stmt.Literal()
		res += ";"
	}
	res += "}"
	return res
}

// FunctionStatementNode.Accept(): accepts a visitor
func (node *FunctionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionStatementNode(node)
}

// FunctionStatementNode.Statement(): marker
func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode: represents a return statement inside a function
// Example: return; return x + 1;
type ReturnStatementNode struct {
	Keyword lexer.Token    // The 'return' keyword token, kept for error location
	Value   ExpressionNode // The returned expression, or nil for a bare return
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	if node.Value != nil {
		return "return " + node.Value.Literal()
	}
	return "return"
}

// ReturnStatementNode.Accept(): accepts a visitor
func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(node)
}

// ReturnStatementNode.Statement(): marker
func (node *ReturnStatementNode) Statement() {}

// ClassStatementNode: represents a class declaration with optional superclass
// Example: class B < A { hi() { ... } }
type ClassStatementNode struct {
	Name       lexer.Token               // The class name token
	Superclass *IdentifierExpressionNode // The superclass reference, or nil
	Methods    []*FunctionStatementNode  // The method declarations
}

// ClassStatementNode.Literal(): string representation of the node
func (node *ClassStatementNode) Literal() string {
	res := "class " + node.Name.Literal
	if node.Superclass != nil {
		res += " < " + node.Superclass.Name
	}
	res += "{"
	for _, method := range node.Methods {
		res += method.Literal()
	}
	res += "}"
	return res
}

// ClassStatementNode.Accept(): accepts a visitor
func (node *ClassStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitClassStatementNode(node)
}

// ClassStatementNode.Statement(): marker
func (node *ClassStatementNode) Statement() {}
