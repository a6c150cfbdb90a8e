/*
File    : go-lox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for Lox. It executes
// the resolved AST against a chain of lexical scopes, using the depth table
// produced by the resolver for local variable access and the global scope
// for everything else.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Evaluator holds the state for evaluating Lox AST nodes: the global and
// current scopes, the resolver's depth table, and the output writer.
// It serves as the main execution engine for the Lox interpreter.
//
// Fields:
//   - Globals: The root scope, seeded with the built-in callables
//     (clock, print). Top-level declarations also land here.
//   - Scp: The current scope. Tracks block and call nesting during
//     execution and always chains up to Globals.
//   - Locals: Resolved depth per expression, keyed by node pointer
//     identity. Populated via AddLocals before execution.
//   - Writer: Output sink for program output (default: os.Stdout).
type Evaluator struct {
	Globals *scope.Scope                  // Global scope with builtins
	Scp     *scope.Scope                  // Current scope for variable bindings
	Locals  map[parser.ExpressionNode]int // Resolver's depth table
	Writer  io.Writer                     // Output writer for the print builtin
}

// NewEvaluator creates and initializes a new Evaluator instance with default
// configuration.
//
// This constructor performs the following initialization:
// - Creates a new root scope with no parent (global scope)
// - Defines every builtin callable (clock, print) into the global scope
// - Sets the output writer to os.Stdout for default console output
//
// Example usage:
//
//	ev := NewEvaluator()
//	ev.AddLocals(resolver.Locals)
//	result := ev.Interpret(root)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	for _, builtin := range objects.Builtins {
		globals.Bind(builtin.Name, builtin)
	}
	return &Evaluator{
		Globals: globals,
		Scp:     globals,
		Locals:  make(map[parser.ExpressionNode]int),
		Writer:  os.Stdout, // Default to stdout
	}
}

// SetWriter configures the output destination for program output.
//
// This method allows redirecting the print builtin's output to any
// io.Writer implementation. This is particularly useful for:
// - Testing: capturing output to verify program behavior
// - The REPL: writing through the session's writer
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev.SetWriter(&buf)  // Redirect output to buffer for testing
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// AddLocals merges a resolver's depth table into the evaluator.
//
// The table is merged rather than replaced because a REPL session resolves
// each line separately while closures created by earlier lines keep
// referencing their own nodes; their depths must survive.
func (e *Evaluator) AddLocals(locals map[parser.ExpressionNode]int) {
	for expr, depth := range locals {
		e.Locals[expr] = depth
	}
}

// Interpret executes a program root, statement by statement.
//
// Execution stops at the first runtime error, which is returned as an
// *objects.Error; per the error model only that first error is ever
// reported for a run. Otherwise the value of the last statement is
// returned, which lets the REPL echo the result of a trailing expression.
func (e *Evaluator) Interpret(root *parser.RootNode) objects.LoxObject {
	var result objects.LoxObject = &objects.Nil{}

	for _, stmt := range root.Statements {
		result = e.Eval(stmt)
		if isError(result) {
			return result
		}
	}

	return result
}

// Eval evaluates a single AST node and returns its runtime value.
//
// Statements conventionally evaluate to nil; expression statements
// evaluate to the expression's value. Control-flow signals (ReturnValue,
// Break) and runtime errors travel through the same return path and are
// intercepted by the construct responsible for them.
func (e *Evaluator) Eval(node parser.Node) objects.LoxObject {
	switch n := node.(type) {

	// Statements
	case *parser.RootNode:
		return e.Interpret(n)
	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileLoopStatementNode:
		return e.evalWhileLoopStatement(n)
	case *parser.BreakStatementNode:
		return &objects.Break{}
	case *parser.FunctionStatementNode:
		return e.evalFunctionStatement(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	case *parser.ClassStatementNode:
		return e.evalClassStatement(n)

	// Expressions
	case *parser.NumberLiteralExpressionNode:
		return &objects.Number{Value: n.Value}
	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}
	case *parser.BooleanLiteralExpressionNode:
		return &objects.Boolean{Value: n.Value}
	case *parser.NilLiteralExpressionNode:
		return &objects.Nil{}
	case *parser.ParenthesizedExpressionNode:
		return e.Eval(n.Expr)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.GetExpressionNode:
		return e.evalGetExpression(n)
	case *parser.SetExpressionNode:
		return e.evalSetExpression(n)
	case *parser.ThisExpressionNode:
		return e.lookUpVariable(n.Keyword, n)
	case *parser.SuperExpressionNode:
		return e.evalSuperExpression(n)
	}

	return &objects.Nil{}
}

// CreateError creates a new runtime Error object with a diagnostic message
// positioned at the given token, in the shared "[line N] Error ..." format.
//
// Example usage:
//
//	return e.CreateError(node.Operation, "Operands must be numbers.")
func (e *Evaluator) CreateError(tok lexer.Token, message string) *objects.Error {
	return &objects.Error{Message: lexer.ErrorAt(tok, message)}
}
