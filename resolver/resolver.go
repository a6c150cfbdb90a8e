/*
File    : go-lox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static resolution pass that runs between
// parsing and interpretation. It walks the AST once and computes, for every
// variable-referencing expression, the number of scopes between the use and
// the declaration. The evaluator then jumps straight to the right scope at
// run time instead of searching the chain, which is also what pins closure
// semantics down: a reference means whatever it meant where the function
// was defined, not whatever happens to shadow it later.
//
// The same pass enforces the language's static rules: no reading a local in
// its own initializer, no duplicate declarations in one local scope, no
// 'return' outside a function, no value-returning 'return' in an
// initializer, no 'this'/'super' outside their classes, no 'break' outside
// a loop, and no class inheriting from itself.
//
// Global variables are deliberately not tracked in the scope stack: a name
// that resolves through no local scope is looked up in globals at run time,
// which keeps top-level redefinition legal.
package resolver

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/parser"
)

// FunctionType tracks what kind of function body the resolver is currently
// inside, so 'return' statements can be validated in context.
type FunctionType string

const (
	// NO_FUNCTION - not inside any function body
	NO_FUNCTION FunctionType = "none"
	// IN_FUNCTION - inside a plain function declaration
	IN_FUNCTION FunctionType = "function"
	// IN_METHOD - inside a class method
	IN_METHOD FunctionType = "method"
	// IN_INITIALIZER - inside a method named "init"
	IN_INITIALIZER FunctionType = "initializer"
)

// ClassType tracks what kind of class body the resolver is currently
// inside, so 'this' and 'super' can be validated in context.
type ClassType string

const (
	// NO_CLASS - not inside any class body
	NO_CLASS ClassType = "none"
	// IN_CLASS - inside a class without a superclass
	IN_CLASS ClassType = "class"
	// IN_SUBCLASS - inside a class that declares a superclass
	IN_SUBCLASS ClassType = "subclass"
)

// Resolver holds the state of the resolution pass.
//
// Fields:
//   - Locals: The output of the pass - for each resolved expression, the
//     number of scopes between its use and its declaration. Keyed by node
//     pointer identity; nodes never compare structurally.
//   - scopes: The stack of lexical scopes currently open. Each scope maps
//     a name to whether its initializer has finished ("defined").
//   - Errors: Static errors collected during the walk.
//   - currentFunction / currentClass: Context for return/this/super checks.
//   - loopDepth: Number of enclosing loops, for the break check.
type Resolver struct {
	Locals map[parser.ExpressionNode]int // Resolved depth per expression
	Errors []string                      // Static errors collected so far

	scopes          []map[string]bool // Stack of name -> defined? maps
	currentFunction FunctionType      // Innermost enclosing function kind
	currentClass    ClassType         // Innermost enclosing class kind
	loopDepth       int               // Number of enclosing while loops
}

// NewResolver creates and initializes a new Resolver instance.
func NewResolver() *Resolver {
	return &Resolver{
		Locals:          make(map[parser.ExpressionNode]int),
		Errors:          make([]string, 0),
		scopes:          make([]map[string]bool, 0),
		currentFunction: NO_FUNCTION,
		currentClass:    NO_CLASS,
	}
}

// Resolve walks the whole program. Call once per parse; afterwards Locals
// holds every resolved depth and Errors every static error found.
func (res *Resolver) Resolve(root *parser.RootNode) {
	for _, stmt := range root.Statements {
		res.resolveStatement(stmt)
	}
}

// HasErrors returns true if any static errors were found.
func (res *Resolver) HasErrors() bool {
	return len(res.Errors) > 0
}

// GetErrors returns all static errors collected during resolution.
func (res *Resolver) GetErrors() []string {
	return res.Errors
}

// errorAt records a static error positioned at the given token.
func (res *Resolver) errorAt(tok lexer.Token, message string) {
	res.Errors = append(res.Errors, lexer.ErrorAt(tok, message))
}

// beginScope pushes a fresh empty scope onto the stack.
func (res *Resolver) beginScope() {
	res.scopes = append(res.scopes, make(map[string]bool))
}

// endScope pops the innermost scope off the stack.
func (res *Resolver) endScope() {
	res.scopes = res.scopes[:len(res.scopes)-1]
}

// declare adds a name to the innermost scope, marked as not yet defined.
// The declared-but-undefined window is what catches `var a = a;`.
// Declaring a name twice in the same local scope is a static error.
// At global scope (empty stack) nothing is tracked.
func (res *Resolver) declare(name lexer.Token) {
	if len(res.scopes) == 0 {
		return
	}
	scope := res.scopes[len(res.scopes)-1]
	if _, ok := scope[name.Literal]; ok {
		res.errorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Literal] = false
}

// define marks a declared name as fully initialized and usable.
func (res *Resolver) define(name lexer.Token) {
	if len(res.scopes) == 0 {
		return
	}
	res.scopes[len(res.scopes)-1][name.Literal] = true
}

// resolveLocal searches the scope stack innermost-first for the name and,
// on the first hit, records the expression's depth in Locals. A miss means
// the name is global (or undefined) and is left for runtime lookup.
func (res *Resolver) resolveLocal(expr parser.ExpressionNode, name lexer.Token) {
	for i := len(res.scopes) - 1; i >= 0; i-- {
		if _, ok := res.scopes[i][name.Literal]; ok {
			res.Locals[expr] = len(res.scopes) - 1 - i
			return
		}
	}
}

// resolveFunction resolves a function declaration or method body: a new
// scope holding the parameters, with currentFunction switched for the
// duration so nested return statements check against the right context.
// Loop depth is reset inside the body - a break inside a function cannot
// target a loop outside it.
func (res *Resolver) resolveFunction(fn *parser.FunctionStatementNode, ftype FunctionType) {
	enclosingFunction := res.currentFunction
	enclosingLoopDepth := res.loopDepth
	res.currentFunction = ftype
	res.loopDepth = 0

	res.beginScope()
	for _, param := range fn.Params {
		res.declare(param)
		res.define(param)
	}
	for _, stmt := range fn.Body {
		res.resolveStatement(stmt)
	}
	res.endScope()

	res.currentFunction = enclosingFunction
	res.loopDepth = enclosingLoopDepth
}

// resolveStatement dispatches on the statement's concrete node type.
// Expression nodes double as statements, so the default arm hands
// anything unrecognized to resolveExpression.
func (res *Resolver) resolveStatement(stmt parser.StatementNode) {
	switch node := stmt.(type) {

	case *parser.DeclarativeStatementNode:
		res.declare(node.Name)
		if node.Initializer != nil {
			res.resolveExpression(node.Initializer)
		}
		res.define(node.Name)

	case *parser.BlockStatementNode:
		res.beginScope()
		for _, inner := range node.Statements {
			res.resolveStatement(inner)
		}
		res.endScope()

	case *parser.IfStatementNode:
		res.resolveExpression(node.Condition)
		res.resolveStatement(node.ThenBranch)
		if node.ElseBranch != nil {
			res.resolveStatement(node.ElseBranch)
		}

	case *parser.WhileLoopStatementNode:
		res.resolveExpression(node.Condition)
		res.loopDepth++
		res.resolveStatement(node.Body)
		res.loopDepth--

	case *parser.BreakStatementNode:
		if res.loopDepth == 0 {
			res.errorAt(node.Token, "Can't use 'break' outside of a loop.")
		}

	case *parser.FunctionStatementNode:
		// The name is defined before the body resolves, so the function
		// can refer to itself recursively
		res.declare(node.Name)
		res.define(node.Name)
		res.resolveFunction(node, IN_FUNCTION)

	case *parser.ReturnStatementNode:
		if res.currentFunction == NO_FUNCTION {
			res.errorAt(node.Keyword, "Can't return from top-level code.")
		}
		if node.Value != nil {
			if res.currentFunction == IN_INITIALIZER {
				res.errorAt(node.Keyword, "Can't return a value from an initializer.")
			}
			res.resolveExpression(node.Value)
		}

	case *parser.ClassStatementNode:
		res.resolveClass(node)

	default:
		// Expression statement
		if expr, ok := stmt.(parser.ExpressionNode); ok {
			res.resolveExpression(expr)
		}
	}
}

// resolveClass resolves a class declaration: the optional superclass
// expression, then a scope binding "super" (only when a superclass
// exists), then a scope binding "this", then every method body.
func (res *Resolver) resolveClass(node *parser.ClassStatementNode) {
	enclosingClass := res.currentClass
	res.currentClass = IN_CLASS

	res.declare(node.Name)
	res.define(node.Name)

	if node.Superclass != nil {
		if node.Superclass.Name == node.Name.Literal {
			res.errorAt(node.Superclass.Token, "A class can't inherit from itself.")
		}
		res.currentClass = IN_SUBCLASS
		res.resolveExpression(node.Superclass)

		// The scope that method closures will find "super" in
		res.beginScope()
		res.scopes[len(res.scopes)-1]["super"] = true
	}

	// The scope that bound methods will find "this" in
	res.beginScope()
	res.scopes[len(res.scopes)-1]["this"] = true

	for _, method := range node.Methods {
		ftype := IN_METHOD
		if method.Name.Literal == "init" {
			ftype = IN_INITIALIZER
		}
		res.resolveFunction(method, ftype)
	}

	res.endScope()
	if node.Superclass != nil {
		res.endScope()
	}

	res.currentClass = enclosingClass
}

// resolveExpression dispatches on the expression's concrete node type.
// Literals resolve to nothing; everything else recurses, and the four
// name-referencing forms (identifier, assignment, this, super) record
// their depth via resolveLocal.
func (res *Resolver) resolveExpression(expr parser.ExpressionNode) {
	switch node := expr.(type) {

	case *parser.NumberLiteralExpressionNode,
		*parser.StringLiteralExpressionNode,
		*parser.BooleanLiteralExpressionNode,
		*parser.NilLiteralExpressionNode:
		// Literals reference nothing

	case *parser.ParenthesizedExpressionNode:
		res.resolveExpression(node.Expr)

	case *parser.UnaryExpressionNode:
		res.resolveExpression(node.Right)

	case *parser.BinaryExpressionNode:
		res.resolveExpression(node.Left)
		res.resolveExpression(node.Right)

	case *parser.LogicalExpressionNode:
		res.resolveExpression(node.Left)
		res.resolveExpression(node.Right)

	case *parser.IdentifierExpressionNode:
		// Reading a local inside its own initializer: declared, not defined
		if len(res.scopes) > 0 {
			if defined, ok := res.scopes[len(res.scopes)-1][node.Name]; ok && !defined {
				res.errorAt(node.Token, "Can't read local variable in its own initializer.")
			}
		}
		res.resolveLocal(node, node.Token)

	case *parser.AssignmentExpressionNode:
		res.resolveExpression(node.Value)
		res.resolveLocal(node, node.Name)

	case *parser.CallExpressionNode:
		res.resolveExpression(node.Callee)
		for _, arg := range node.Args {
			res.resolveExpression(arg)
		}

	case *parser.GetExpressionNode:
		// Only the object resolves; property names are dynamic
		res.resolveExpression(node.Object)

	case *parser.SetExpressionNode:
		res.resolveExpression(node.Value)
		res.resolveExpression(node.Object)

	case *parser.ThisExpressionNode:
		if res.currentClass == NO_CLASS {
			res.errorAt(node.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		res.resolveLocal(node, node.Keyword)

	case *parser.SuperExpressionNode:
		if res.currentClass == NO_CLASS {
			res.errorAt(node.Keyword, "Can't use 'super' outside of a class.")
			return
		}
		if res.currentClass != IN_SUBCLASS {
			res.errorAt(node.Keyword, "Can't use 'super' in a class with no superclass.")
			return
		}
		res.resolveLocal(node, node.Keyword)
	}
}
