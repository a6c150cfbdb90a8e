/*
File    : go-lox/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/resolver"
)

// runSource runs Lox source through the full pipeline (parse, resolve,
// evaluate) with program output captured in a buffer. Parse and resolve
// must succeed; the evaluation result and the output are returned.
func runSource(t *testing.T, src string) (objects.LoxObject, string) {
	par := parser.NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "unexpected parse errors: %v", par.GetErrors())

	res := resolver.NewResolver()
	res.Resolve(root)
	assert.False(t, res.HasErrors(), "unexpected resolve errors: %v", res.GetErrors())

	var buf bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buf)
	evaluator.AddLocals(res.Locals)

	result := evaluator.Interpret(root)
	return result, buf.String()
}

// runExpectError runs source expected to fail at runtime and returns the
// error message.
func runExpectError(t *testing.T, src string) string {
	result, _ := runSource(t, src)
	assert.Equal(t, objects.ErrorType, result.GetType(), "expected a runtime error for: %s", src)
	return result.ToString()
}

func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print(1 + 2 * 3);", "7\n"},
		{"print((1 + 2) * 3);", "9\n"},
		{"print(10 - 4 / 2);", "8\n"},
		{"print(-5 + 3);", "-2\n"},
		{"print(0.1 + 0.2 > 0.3 - 0.001);", "true\n"},
		{"print(7 / 2);", "3.5\n"},
		{"print(2.5 * 4);", "10\n"},
	}

	for _, tt := range tests {
		_, output := runSource(t, tt.input)
		assert.Equal(t, tt.expected, output, "input: %s", tt.input)
	}
}

func TestEvaluator_StringConcatenation(t *testing.T) {
	_, output := runSource(t, `print("foo" + "bar");`)
	assert.Equal(t, "foobar\n", output)
}

func TestEvaluator_Stringification(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print(nil);`, "nil\n"},
		{`print(true);`, "true\n"},
		{`print(false);`, "false\n"},
		{`print(7);`, "7\n"},         // whole floats print without a fraction
		{`print(3.14);`, "3.14\n"},   // fractional values keep their digits
		{`print("text");`, "text\n"}, // strings print unquoted
	}

	for _, tt := range tests {
		_, output := runSource(t, tt.input)
		assert.Equal(t, tt.expected, output, "input: %s", tt.input)
	}
}

func TestEvaluator_Truthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print(!nil);`, "true\n"},
		{`print(!false);`, "true\n"},
		{`print(!true);`, "false\n"},
		{`print(!0);`, "false\n"},  // 0 is truthy
		{`print(!"");`, "false\n"}, // "" is truthy
		{`print(!!123);`, "true\n"},
	}

	for _, tt := range tests {
		_, output := runSource(t, tt.input)
		assert.Equal(t, tt.expected, output, "input: %s", tt.input)
	}
}

func TestEvaluator_Equality(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print(nil == nil);`, "true\n"},
		{`print(nil == 0);`, "false\n"},
		{`print(1 == 1);`, "true\n"},
		{`print(1 == 2);`, "false\n"},
		{`print("a" == "a");`, "true\n"},
		{`print("a" == "b");`, "false\n"},
		{`print(1 == "1");`, "false\n"}, // different types are never equal
		{`print(true != false);`, "true\n"},
	}

	for _, tt := range tests {
		_, output := runSource(t, tt.input)
		assert.Equal(t, tt.expected, output, "input: %s", tt.input)
	}
}

func TestEvaluator_LogicalOperators(t *testing.T) {
	// Logical operators return operand values, not coerced booleans
	_, output := runSource(t, `print(nil or "fallback");`)
	assert.Equal(t, "fallback\n", output)

	_, output = runSource(t, `print(1 and 2);`)
	assert.Equal(t, "2\n", output)

	_, output = runSource(t, `print(false and 2);`)
	assert.Equal(t, "false\n", output)
}

func TestEvaluator_ShortCircuit(t *testing.T) {
	// The right operand's side effect must not happen when the left
	// operand decides the result
	src := `
var called = false;
fun sideEffect() {
    called = true;
    return true;
}
var r = false and sideEffect();
print(called);
var r2 = true or sideEffect();
print(called);
`
	_, output := runSource(t, src)
	assert.Equal(t, "false\nfalse\n", output)
}

func TestEvaluator_Variables(t *testing.T) {
	src := `
var a = 1;
var b = a + 1;
a = b * 2;
print(a);
print(b);
`
	_, output := runSource(t, src)
	assert.Equal(t, "4\n2\n", output)

	// Declaration without initializer defaults to nil
	_, output = runSource(t, `var x; print(x);`)
	assert.Equal(t, "nil\n", output)

	// Assignment evaluates to the assigned value
	_, output = runSource(t, `var a = 1; var b = 2; a = b = 3; print(a);`)
	assert.Equal(t, "3\n", output)
}

func TestEvaluator_BlocksAndShadowing(t *testing.T) {
	src := `
var a = "outer";
{
    var a = "inner";
    print(a);
}
print(a);
`
	_, output := runSource(t, src)
	assert.Equal(t, "inner\nouter\n", output)
}

func TestEvaluator_IfStatement(t *testing.T) {
	_, output := runSource(t, `if (1 < 2) print("then"); else print("else");`)
	assert.Equal(t, "then\n", output)

	_, output = runSource(t, `if (1 > 2) print("then"); else print("else");`)
	assert.Equal(t, "else\n", output)

	_, output = runSource(t, `if (nil) print("then");`)
	assert.Equal(t, "", output)
}

func TestEvaluator_WhileLoop(t *testing.T) {
	src := `
var i = 0;
while (i < 3) {
    print(i);
    i = i + 1;
}
`
	_, output := runSource(t, src)
	assert.Equal(t, "0\n1\n2\n", output)
}

func TestEvaluator_ForLoop(t *testing.T) {
	src := `
for (var i = 0; i < 3; i = i + 1) {
    print(i);
}
`
	_, output := runSource(t, src)
	assert.Equal(t, "0\n1\n2\n", output)
}

func TestEvaluator_Break(t *testing.T) {
	src := `
var i = 0;
while (true) {
    if (i == 2) break;
    print(i);
    i = i + 1;
}
print("done");
`
	_, output := runSource(t, src)
	assert.Equal(t, "0\n1\ndone\n", output)

	// Break only exits the innermost loop
	src = `
for (var i = 0; i < 2; i = i + 1) {
    for (var j = 0; j < 10; j = j + 1) {
        if (j == 1) break;
        print(j);
    }
}
print("end");
`
	_, output = runSource(t, src)
	assert.Equal(t, "0\n0\nend\n", output)
}

func TestEvaluator_Functions(t *testing.T) {
	src := `
fun add(a, b) {
    return a + b;
}
print(add(1, 2));
print(add);
`
	_, output := runSource(t, src)
	assert.Equal(t, "3\n<fn add>\n", output)

	// A function without a return yields nil
	_, output = runSource(t, `fun noop() {} print(noop());`)
	assert.Equal(t, "nil\n", output)

	// Recursion works through the function's own name
	src = `
fun fib(n) {
    if (n < 2) return n;
    return fib(n - 1) + fib(n - 2);
}
print(fib(10));
`
	_, output = runSource(t, src)
	assert.Equal(t, "55\n", output)
}

func TestEvaluator_Closures(t *testing.T) {
	src := `
fun makeCounter() {
    var i = 0;
    fun count() {
        i = i + 1;
        return i;
    }
    return count;
}
var c = makeCounter();
print(c());
print(c());
`
	_, output := runSource(t, src)
	assert.Equal(t, "1\n2\n", output)

	// Two counters have independent state
	src = `
fun makeCounter() {
    var i = 0;
    fun count() {
        i = i + 1;
        return i;
    }
    return count;
}
var a = makeCounter();
var b = makeCounter();
a(); a();
print(a());
print(b());
`
	_, output = runSource(t, src)
	assert.Equal(t, "3\n1\n", output)
}

func TestEvaluator_ResolverShadowing(t *testing.T) {
	// The closure binds the global 'a'; the block-local declaration that
	// appears later must not change what show() sees
	src := `
var a = "global";
{
    fun show() {
        print(a);
    }
    show();
    var a = "block";
    show();
}
`
	_, output := runSource(t, src)
	assert.Equal(t, "global\nglobal\n", output)
}

func TestEvaluator_Classes(t *testing.T) {
	src := `
class Point {
    init(x, y) {
        this.x = x;
        this.y = y;
    }
    sum() {
        return this.x + this.y;
    }
}
var p = Point(3, 4);
print(p.sum());
print(p.x);
p.x = 30;
print(p.sum());
print(Point);
print(p);
`
	_, output := runSource(t, src)
	assert.Equal(t, "7\n3\n34\nPoint\n<Point instance>\n", output)
}

func TestEvaluator_ClassWithoutInit(t *testing.T) {
	src := `
class Bag {}
var b = Bag();
b.item = "apple";
print(b.item);
`
	_, output := runSource(t, src)
	assert.Equal(t, "apple\n", output)
}

func TestEvaluator_MethodsAreBound(t *testing.T) {
	// A method pulled off an instance keeps its receiver
	src := `
class Greeter {
    init(name) {
        this.name = name;
    }
    greet() {
        print(this.name);
    }
}
var g = Greeter("lox");
var m = g.greet;
m();
`
	_, output := runSource(t, src)
	assert.Equal(t, "lox\n", output)
}

func TestEvaluator_Inheritance(t *testing.T) {
	src := `
class A {
    hi() {
        print("A");
    }
}
class B < A {
    hi() {
        super.hi();
        print("B");
    }
}
B().hi();
`
	_, output := runSource(t, src)
	assert.Equal(t, "A\nB\n", output)

	// Methods are inherited when not overridden
	src = `
class A {
    hi() {
        print("A");
    }
}
class B < A {}
B().hi();
`
	_, output = runSource(t, src)
	assert.Equal(t, "A\n", output)
}

func TestEvaluator_SuperSkipsOwnOverride(t *testing.T) {
	// super dispatch starts at the superclass even when called through
	// an inherited method on a grandchild instance
	src := `
class A {
    method() {
        print("A method");
    }
}
class B < A {
    method() {
        print("B method");
    }
    test() {
        super.method();
    }
}
class C < B {}
C().test();
`
	_, output := runSource(t, src)
	assert.Equal(t, "A method\n", output)
}

func TestEvaluator_InitializerReturnsReceiver(t *testing.T) {
	// An initializer with a bare return still yields the instance
	src := `
class C {
    init() {
        return;
    }
}
print(C());
`
	_, output := runSource(t, src)
	assert.Equal(t, "<C instance>\n", output)

	// Calling init directly on an instance returns the receiver again
	src = `
class C {
    init() {}
}
var c = C();
print(c.init());
`
	_, output = runSource(t, src)
	assert.Equal(t, "<C instance>\n", output)
}

func TestEvaluator_InheritedInitializer(t *testing.T) {
	src := `
class A {
    init(x) {
        this.x = x;
    }
}
class B < A {}
var b = B(42);
print(b.x);
`
	_, output := runSource(t, src)
	assert.Equal(t, "42\n", output)
}

func TestEvaluator_Clock(t *testing.T) {
	result, output := runSource(t, `var t = clock(); print(t >= 0);`)
	assert.NotEqual(t, objects.ErrorType, result.GetType())
	assert.Equal(t, "true\n", output)
}

func TestEvaluator_RuntimeErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print("a" + 1);`, "Operands must be two numbers or two strings."},
		{`print(1 - "a");`, "Operands must be numbers."},
		{`print(1 < "a");`, "Operands must be numbers."},
		{`print(-"a");`, "Operand must be a number."},
		{`print(1 / 0);`, "Cannot divide by zero."},
		{`print(missing);`, "Undefined variable missing."},
		{`missing = 1;`, "Undefined variable missing."},
		{`"not callable"();`, "Can only call functions and classes."},
		{`fun f(a) {} f(1, 2);`, "Expected 1 arguments but got 2."},
		{`clock(1);`, "Expected 0 arguments but got 1."},
		{`var x = 1; x.field;`, "Only instances have properties."},
		{`var x = 1; x.field = 2;`, "Only instances have fields."},
		{`class C {} var c = C(); c.missing;`, `Undefined property "missing".`},
		{`var NotAClass = 1; class B < NotAClass {} `, "Superclass must be a class."},
	}

	for _, tt := range tests {
		msg := runExpectError(t, tt.src)
		assert.Contains(t, msg, tt.expected, "source: %s", tt.src)
		assert.Contains(t, msg, "[line ", "source: %s", tt.src)
	}
}

func TestEvaluator_NoOutputAfterRuntimeError(t *testing.T) {
	// Execution stops at the first runtime error; statements after it
	// never run
	src := `print("before"); print("a" + 1); print("after");`
	result, output := runSource(t, src)
	assert.Equal(t, objects.ErrorType, result.GetType())
	assert.Equal(t, "before\n", output)
}

func TestEvaluator_ScopeRestoredAfterError(t *testing.T) {
	// A runtime error inside a block must not leave the evaluator stuck
	// in the block's scope
	par := parser.NewParser(`var a = 1; { var a = 2; print(missing); }`)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	res := resolver.NewResolver()
	res.Resolve(root)
	assert.False(t, res.HasErrors())

	var buf bytes.Buffer
	evaluator := NewEvaluator()
	evaluator.SetWriter(&buf)
	evaluator.AddLocals(res.Locals)

	result := evaluator.Interpret(root)
	assert.Equal(t, objects.ErrorType, result.GetType())

	// The current scope is back at globals
	assert.Same(t, evaluator.Globals, evaluator.Scp)
}

func TestEvaluator_GlobalRedefinition(t *testing.T) {
	_, output := runSource(t, `var a = 1; var a = 2; print(a);`)
	assert.Equal(t, "2\n", output)
}

func TestEvaluator_CallableEquality(t *testing.T) {
	src := `
fun f() {}
var g = f;
print(f == g);
class C {}
var a = C();
var b = C();
print(a == b);
print(a == a);
`
	_, output := runSource(t, src)
	assert.Equal(t, "true\nfalse\ntrue\n", output)
}
