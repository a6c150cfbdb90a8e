/*
File    : go-lox/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalDeclarativeStatement executes a variable declaration.
// The initializer is evaluated in the current scope (or defaults to nil)
// and the name is bound in the current scope. Re-binding an existing name
// is allowed at any scope level here; the resolver has already rejected
// duplicate local declarations statically.
func (e *Evaluator) evalDeclarativeStatement(node *parser.DeclarativeStatementNode) objects.LoxObject {
	var value objects.LoxObject = &objects.Nil{}

	if node.Initializer != nil {
		value = e.Eval(node.Initializer)
		if isError(value) {
			return value
		}
	}

	e.Scp.Bind(node.Name.Literal, value)
	return &objects.Nil{}
}

// evalBlockStatement executes a braced block in a fresh scope enclosing
// the current one.
func (e *Evaluator) evalBlockStatement(node *parser.BlockStatementNode) objects.LoxObject {
	return e.executeBlock(node.Statements, scope.NewScope(e.Scp))
}

// executeBlock runs a statement list inside the given scope, restoring the
// previous scope on every exit path - normal completion, runtime error,
// return, or break. The deferred restore is what keeps the environment
// invariant: the current scope after a block equals the one before it,
// no matter how the block ended.
//
// A runtime error or control-flow signal (ReturnValue, Break) produced by
// any statement stops the block and propagates to the caller.
func (e *Evaluator) executeBlock(statements []parser.StatementNode, scp *scope.Scope) objects.LoxObject {
	previous := e.Scp
	e.Scp = scp
	defer func() { e.Scp = previous }()

	for _, stmt := range statements {
		result := e.Eval(stmt)
		if isError(result) || isReturn(result) || isBreak(result) {
			return result
		}
	}

	return &objects.Nil{}
}

// evalIfStatement executes a conditional: the matching branch runs (or
// nothing), and any signal produced inside a branch propagates out.
func (e *Evaluator) evalIfStatement(node *parser.IfStatementNode) objects.LoxObject {
	condition := e.Eval(node.Condition)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(node.ThenBranch)
	}
	if node.ElseBranch != nil {
		return e.Eval(node.ElseBranch)
	}
	return &objects.Nil{}
}

// evalWhileLoopStatement executes a while loop. The condition is
// re-evaluated before every iteration; a Break signal raised in the body
// is consumed here and terminates the loop, while errors and returns
// keep propagating outward.
func (e *Evaluator) evalWhileLoopStatement(node *parser.WhileLoopStatementNode) objects.LoxObject {
	for {
		condition := e.Eval(node.Condition)
		if isError(condition) {
			return condition
		}
		if !isTruthy(condition) {
			break
		}

		result := e.Eval(node.Body)
		if isError(result) || isReturn(result) {
			return result
		}
		if isBreak(result) {
			break
		}
	}

	return &objects.Nil{}
}

// evalFunctionStatement executes a function declaration: a function value
// capturing the current scope as its closure is bound under the name.
func (e *Evaluator) evalFunctionStatement(node *parser.FunctionStatementNode) objects.LoxObject {
	fn := &function.Function{
		Declaration:   node,
		Closure:       e.Scp, // Reference the current scope directly, not a copy
		IsInitializer: false,
	}
	e.Scp.Bind(node.Name.Literal, fn)
	return &objects.Nil{}
}

// evalReturnStatement evaluates the return value (or nil for a bare
// return) and wraps it in a ReturnValue signal, which unwinds block
// execution out to the nearest call boundary.
func (e *Evaluator) evalReturnStatement(node *parser.ReturnStatementNode) objects.LoxObject {
	var value objects.LoxObject = &objects.Nil{}

	if node.Value != nil {
		value = e.Eval(node.Value)
		if isError(value) {
			return value
		}
	}

	return &objects.ReturnValue{Value: value}
}

// evalClassStatement executes a class declaration.
//
// The name is bound to nil first and assigned the finished class last,
// the two-phase dance that lets methods reference the class by name.
// When a superclass is present it must evaluate to a class value, and the
// method closures are built over an extra scope binding "super" to it, so
// super-dispatch inside any method of this class is fixed at declaration
// time. Methods named "init" are flagged as initializers.
func (e *Evaluator) evalClassStatement(node *parser.ClassStatementNode) objects.LoxObject {
	var superclass *function.Class
	if node.Superclass != nil {
		superObject := e.Eval(node.Superclass)
		if isError(superObject) {
			return superObject
		}
		sc, ok := superObject.(*function.Class)
		if !ok {
			return e.CreateError(node.Superclass.Token, "Superclass must be a class.")
		}
		superclass = sc
	}

	e.Scp.Bind(node.Name.Literal, &objects.Nil{})

	enclosing := e.Scp
	if superclass != nil {
		e.Scp = scope.NewScope(e.Scp)
		e.Scp.Bind("super", superclass)
	}

	methods := make(map[string]*function.Function)
	for _, method := range node.Methods {
		methods[method.Name.Literal] = &function.Function{
			Declaration:   method,
			Closure:       e.Scp,
			IsInitializer: method.Name.Literal == "init",
		}
	}

	class := &function.Class{
		Name:       node.Name.Literal,
		Superclass: superclass,
		Methods:    methods,
	}

	if superclass != nil {
		e.Scp = enclosing
	}

	e.Scp.Assign(node.Name.Literal, class)
	return &objects.Nil{}
}
