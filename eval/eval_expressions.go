/*
File    : go-lox/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
)

// evalUnaryExpression evaluates ! and prefix -.
// Logical negation applies to the operand's truthiness and works on any
// value; numeric negation requires a number operand.
func (e *Evaluator) evalUnaryExpression(node *parser.UnaryExpressionNode) objects.LoxObject {
	right := e.Eval(node.Right)
	if isError(right) {
		return right
	}

	switch node.Operation.Type {
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !isTruthy(right)}
	case lexer.MINUS_OP:
		num, ok := right.(*objects.Number)
		if !ok {
			return e.CreateError(node.Operation, "Operand must be a number.")
		}
		return &objects.Number{Value: -num.Value}
	}

	return &objects.Nil{}
}

// evalBinaryExpression evaluates the arithmetic, comparison, and equality
// operators. Operands evaluate left to right, both before the operator
// applies.
//
// '+' is overloaded: two numbers add, two strings concatenate, any other
// combination is a runtime error. The remaining arithmetic and ordering
// operators require two numbers, and division by zero is a runtime error.
// Equality follows the value model: nil equals only nil, and values of
// different types are never equal.
func (e *Evaluator) evalBinaryExpression(node *parser.BinaryExpressionNode) objects.LoxObject {
	left := e.Eval(node.Left)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right)
	if isError(right) {
		return right
	}

	// Equality works across all value types
	switch node.Operation.Type {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: isEqual(left, right)}
	case lexer.NE_OP:
		return &objects.Boolean{Value: !isEqual(left, right)}
	}

	// '+' is the only operator overloaded for strings
	if node.Operation.Type == lexer.PLUS_OP {
		if leftNum, ok := left.(*objects.Number); ok {
			if rightNum, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: leftNum.Value + rightNum.Value}
			}
		}
		if leftStr, ok := left.(*objects.String); ok {
			if rightStr, ok := right.(*objects.String); ok {
				return &objects.String{Value: leftStr.Value + rightStr.Value}
			}
		}
		return e.CreateError(node.Operation, "Operands must be two numbers or two strings.")
	}

	// Everything else requires two numbers
	leftNum, leftOk := left.(*objects.Number)
	rightNum, rightOk := right.(*objects.Number)
	if !leftOk || !rightOk {
		return e.CreateError(node.Operation, "Operands must be numbers.")
	}

	switch node.Operation.Type {
	case lexer.MINUS_OP:
		return &objects.Number{Value: leftNum.Value - rightNum.Value}
	case lexer.STAR_OP:
		return &objects.Number{Value: leftNum.Value * rightNum.Value}
	case lexer.SLASH_OP:
		if rightNum.Value == 0 {
			return e.CreateError(node.Operation, "Cannot divide by zero.")
		}
		return &objects.Number{Value: leftNum.Value / rightNum.Value}
	case lexer.GT_OP:
		return &objects.Boolean{Value: leftNum.Value > rightNum.Value}
	case lexer.GE_OP:
		return &objects.Boolean{Value: leftNum.Value >= rightNum.Value}
	case lexer.LT_OP:
		return &objects.Boolean{Value: leftNum.Value < rightNum.Value}
	case lexer.LE_OP:
		return &objects.Boolean{Value: leftNum.Value <= rightNum.Value}
	}

	return &objects.Nil{}
}

// evalLogicalExpression evaluates the short-circuiting 'and'/'or'
// operators. The result is one of the operand values itself, not a
// coerced boolean: `nil or "x"` is "x", `1 and 2` is 2. The right
// operand is only evaluated when the left doesn't decide the result.
func (e *Evaluator) evalLogicalExpression(node *parser.LogicalExpressionNode) objects.LoxObject {
	left := e.Eval(node.Left)
	if isError(left) {
		return left
	}

	if node.Operation.Type == lexer.OR_KEY {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}

	return e.Eval(node.Right)
}

// evalIdentifierExpression reads a variable through the resolved depth
// table, falling back to the global scope for unresolved names.
func (e *Evaluator) evalIdentifierExpression(node *parser.IdentifierExpressionNode) objects.LoxObject {
	return e.lookUpVariable(node.Token, node)
}

// lookUpVariable implements resolved variable access: expressions present
// in Locals read directly from the scope at their recorded depth, and
// everything else is a global. An absent global is a runtime error.
func (e *Evaluator) lookUpVariable(name lexer.Token, expr parser.ExpressionNode) objects.LoxObject {
	if depth, ok := e.Locals[expr]; ok {
		if value, ok := e.Scp.GetAt(depth, name.Literal); ok {
			return value
		}
	} else {
		if value, ok := e.Globals.LookUp(name.Literal); ok {
			return value
		}
	}
	return e.CreateError(name, "Undefined variable "+name.Literal+".")
}

// evalAssignmentExpression evaluates the value and writes it through the
// resolved depth table (or to globals). The result of the whole
// expression is the assigned value, which is what makes `a = b = 1` work.
func (e *Evaluator) evalAssignmentExpression(node *parser.AssignmentExpressionNode) objects.LoxObject {
	value := e.Eval(node.Value)
	if isError(value) {
		return value
	}

	if depth, ok := e.Locals[node]; ok {
		e.Scp.AssignAt(depth, node.Name.Literal, value)
	} else {
		if _, ok := e.Globals.Assign(node.Name.Literal, value); !ok {
			return e.CreateError(node.Name, "Undefined variable "+node.Name.Literal+".")
		}
	}

	return value
}

// evalCallExpression evaluates a call: callee first, then arguments left
// to right, then the invocation. The callee must be a function, class, or
// builtin, and the argument count must match the callable's arity exactly.
func (e *Evaluator) evalCallExpression(node *parser.CallExpressionNode) objects.LoxObject {
	callee := e.Eval(node.Callee)
	if isError(callee) {
		return callee
	}

	args := make([]objects.LoxObject, 0, len(node.Args))
	for _, argNode := range node.Args {
		arg := e.Eval(argNode)
		if isError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	switch callable := callee.(type) {
	case *function.Function:
		if len(args) != callable.ParamCount() {
			return e.arityError(node.Paren, callable.ParamCount(), len(args))
		}
		return e.CallFunction(callable, args)

	case *function.Class:
		if len(args) != callable.ParamCount() {
			return e.arityError(node.Paren, callable.ParamCount(), len(args))
		}
		return e.CallClass(callable, args)

	case *objects.Builtin:
		if len(args) != callable.ParamCount {
			return e.arityError(node.Paren, callable.ParamCount, len(args))
		}
		return callable.Callback(e.Writer, args...)

	default:
		return e.CreateError(node.Paren, "Can only call functions and classes.")
	}
}

// evalGetExpression reads a property from an instance: fields first, then
// class methods (bound to the instance). Only instances have properties.
func (e *Evaluator) evalGetExpression(node *parser.GetExpressionNode) objects.LoxObject {
	object := e.Eval(node.Object)
	if isError(object) {
		return object
	}

	instance, ok := object.(*function.Instance)
	if !ok {
		return e.CreateError(node.Name, "Only instances have properties.")
	}

	value, ok := instance.Get(node.Name.Literal)
	if !ok {
		return e.CreateError(node.Name, `Undefined property "`+node.Name.Literal+`".`)
	}
	return value
}

// evalSetExpression writes a property on an instance. The object is
// evaluated before the value, and the result of the whole expression is
// the assigned value. Property writes always go to the instance's fields.
func (e *Evaluator) evalSetExpression(node *parser.SetExpressionNode) objects.LoxObject {
	object := e.Eval(node.Object)
	if isError(object) {
		return object
	}

	instance, ok := object.(*function.Instance)
	if !ok {
		return e.CreateError(node.Name, "Only instances have fields.")
	}

	value := e.Eval(node.Value)
	if isError(value) {
		return value
	}

	instance.Set(node.Name.Literal, value)
	return value
}

// evalSuperExpression evaluates a superclass method access.
//
// The resolver recorded the depth of the "super" scope; the receiver sits
// one scope below it in the "this" scope that Bind inserted. Lookup starts
// at the superclass, so a method shadowed by the current class is still
// reachable, and the found method is bound to the current receiver.
func (e *Evaluator) evalSuperExpression(node *parser.SuperExpressionNode) objects.LoxObject {
	depth := e.Locals[node]

	superObject, _ := e.Scp.GetAt(depth, "super")
	superclass, ok := superObject.(*function.Class)
	if !ok {
		return e.CreateError(node.Keyword, "Can't use 'super' in a class with no superclass.")
	}

	receiver, _ := e.Scp.GetAt(depth-1, "this")

	method := superclass.FindMethod(node.Method.Literal)
	if method == nil {
		return e.CreateError(node.Method, `Undefined property "`+node.Method.Literal+`".`)
	}

	return method.Bind(receiver)
}
