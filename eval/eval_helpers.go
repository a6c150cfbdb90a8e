/*
File    : go-lox/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/scope"
)

// CallFunction invokes a user-defined function with pre-evaluated
// arguments. Arity has already been checked at the call site.
//
// A fresh scope is chained onto the function's closure - not onto the
// caller's scope - and the parameters are bound positionally into it.
// The ReturnValue signal raised by a return statement is caught here and
// unwrapped; a body that falls off the end yields nil.
//
// Initializers are special-cased: they always deliver the receiver
// ("this", sitting in the scope Bind inserted directly under the call
// scope), regardless of how the body exited.
func (e *Evaluator) CallFunction(fn *function.Function, args []objects.LoxObject) objects.LoxObject {
	callScope := scope.NewScope(fn.Closure)
	for i, param := range fn.Declaration.Params {
		callScope.Bind(param.Literal, args[i])
	}

	result := e.executeBlock(fn.Declaration.Body, callScope)
	if isError(result) {
		return result
	}

	if fn.IsInitializer {
		receiver, _ := fn.Closure.GetAt(0, "this")
		return receiver
	}

	if ret, ok := result.(*objects.ReturnValue); ok {
		return ret.Value
	}

	return &objects.Nil{}
}

// CallClass invokes a class as a constructor: an empty instance of the
// class is created, and when an "init" method exists (possibly inherited)
// it is bound to the new instance and run with the call's arguments. The
// constructed instance is the result either way.
func (e *Evaluator) CallClass(class *function.Class, args []objects.LoxObject) objects.LoxObject {
	instance := function.NewInstance(class)

	if init := class.FindMethod("init"); init != nil {
		result := e.CallFunction(init.Bind(instance), args)
		if isError(result) {
			return result
		}
	}

	return instance
}

// arityError builds the runtime error for an argument-count mismatch,
// positioned at the call's closing parenthesis.
func (e *Evaluator) arityError(paren lexer.Token, expected int, got int) *objects.Error {
	return e.CreateError(paren, fmt.Sprintf("Expected %d arguments but got %d.", expected, got))
}

// isTruthy implements the language's truthiness rule: nil and false are
// falsey, every other value - including 0 and "" - is truthy.
func isTruthy(obj objects.LoxObject) bool {
	switch value := obj.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return value.Value
	default:
		return true
	}
}

// isEqual implements value equality: nil equals only nil, primitives of
// the same type compare structurally (numbers by IEEE ==), and values of
// different types are never equal. Functions, classes, and instances
// compare by identity.
func isEqual(left objects.LoxObject, right objects.LoxObject) bool {
	switch l := left.(type) {
	case *objects.Nil:
		_, ok := right.(*objects.Nil)
		return ok
	case *objects.Number:
		if r, ok := right.(*objects.Number); ok {
			return l.Value == r.Value
		}
		return false
	case *objects.String:
		if r, ok := right.(*objects.String); ok {
			return l.Value == r.Value
		}
		return false
	case *objects.Boolean:
		if r, ok := right.(*objects.Boolean); ok {
			return l.Value == r.Value
		}
		return false
	default:
		// Callables and instances: identity comparison
		return left == right
	}
}

// isError checks whether an evaluation result is a runtime error.
func isError(obj objects.LoxObject) bool {
	_, ok := obj.(*objects.Error)
	return ok
}

// isReturn checks whether an evaluation result is a return signal.
func isReturn(obj objects.LoxObject) bool {
	_, ok := obj.(*objects.ReturnValue)
	return ok
}

// isBreak checks whether an evaluation result is a break signal.
func isBreak(obj objects.LoxObject) bool {
	_, ok := obj.(*objects.Break)
	return ok
}
