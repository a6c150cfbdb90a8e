/*
File    : go-lox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the callable runtime values of Lox: user-defined
// functions (with captured closures), classes, and class instances. They all
// implement the objects.LoxObject interface; invocation itself lives in the
// evaluator, which owns the execution machinery.
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Function represents a user-defined function or method object in Lox.
// It pairs the function's AST declaration with the scope in which it was
// defined, which is what makes closures work: the body always executes in
// a fresh scope chained onto Closure, regardless of where the call happens.
//
// Fields:
//   - Declaration: The function's AST node (name, parameters, body).
//   - Closure: The scope captured at the point of definition. For a bound
//     method this chain additionally carries a "this" binding.
//   - IsInitializer: True for methods named "init". Initializers always
//     return the receiver, no matter how the body exits.
type Function struct {
	Declaration   *parser.FunctionStatementNode // The function's AST declaration
	Closure       *scope.Scope                  // Captured scope for closures
	IsInitializer bool                          // True for methods named "init"
}

// GetType returns the type identifier for this Function object.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the display form of the function (e.g., "<fn add>").
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Literal)
}

// ToObject returns a detailed string representation of the function,
// including its name and parameter names (e.g., "<func[add(a, b)]>").
func (f *Function) ToObject() string {
	// Build a comma-separated list of parameter names
	args := ""
	for i, param := range f.Declaration.Params {
		if i > 0 {
			args += ", "
		}
		args += param.Literal
	}
	return fmt.Sprintf("<func[%s(%s)]>", f.Declaration.Name.Literal, args)
}

// ParamCount returns the number of parameters the function declares.
// Calls must supply exactly this many arguments.
func (f *Function) ParamCount() int {
	return len(f.Declaration.Params)
}

// Bind produces a copy of the function whose closure is extended with a
// scope binding "this" to the given instance. Method lookups go through
// Bind, so every retrieved method remembers its receiver.
func (f *Function) Bind(instance objects.LoxObject) *Function {
	env := scope.NewScope(f.Closure)
	env.Bind("this", instance)
	return &Function{
		Declaration:   f.Declaration,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}
