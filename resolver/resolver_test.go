/*
File    : go-lox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-lox/parser"
)

// resolveSource parses and resolves the given source, failing the test on
// parse errors so resolver tests only exercise resolver behavior
func resolveSource(t *testing.T, src string) *Resolver {
	par := parser.NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors(), "unexpected parse errors: %v", par.GetErrors())

	res := NewResolver()
	res.Resolve(root)
	return res
}

func TestResolver_GlobalsNotTracked(t *testing.T) {

	// Top-level variables resolve through globals, not the scope stack,
	// so no depths are recorded at all
	res := resolveSource(t, `var a = 1; a = 2; print(a);`)
	assert.False(t, res.HasErrors())
	assert.Equal(t, 0, len(res.Locals))
}

func TestResolver_LocalDepths(t *testing.T) {

	// A local read in its own block has depth 0; one block further in,
	// depth 1
	src := `
{
    var a = 1;
    a = 2;
    {
        a = 3;
    }
}
`
	par := parser.NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	res := NewResolver()
	res.Resolve(root)
	assert.False(t, res.HasErrors())

	// Collect the recorded depths of the two assignments
	depths := make([]int, 0)
	for _, d := range res.Locals {
		depths = append(depths, d)
	}
	assert.ElementsMatch(t, []int{0, 1}, depths)
}

func TestResolver_ClosureCapturesDefinitionScope(t *testing.T) {

	// The free variable inside show() resolves through the function's
	// definition scope; the later shadowing declaration must not rebind it
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
	res := resolveSource(t, src)
	assert.False(t, res.HasErrors())

	// The read of 'a' inside show() stays global (no entry), so the only
	// entries are the two show() call identifiers at depth 0
	for _, depth := range res.Locals {
		assert.Equal(t, 0, depth)
	}
}

func TestResolver_SelfInitializerIsError(t *testing.T) {

	res := resolveSource(t, `{ var a = a; }`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Can't read local variable in its own initializer.")
}

func TestResolver_DuplicateLocalIsError(t *testing.T) {

	res := resolveSource(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Already a variable with this name in this scope.")

	// Redefining at global scope is allowed (overwrite)
	res = resolveSource(t, `var a = 1; var a = 2;`)
	assert.False(t, res.HasErrors())

	// Duplicate parameter names are also rejected
	res = resolveSource(t, `fun f(x, x) { return x; }`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Already a variable with this name in this scope.")
}

func TestResolver_ReturnOutsideFunctionIsError(t *testing.T) {

	res := resolveSource(t, `return 1;`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Can't return from top-level code.")

	// Inside a function it is fine
	res = resolveSource(t, `fun f() { return 1; }`)
	assert.False(t, res.HasErrors())
}

func TestResolver_BreakOutsideLoopIsError(t *testing.T) {

	res := resolveSource(t, `break;`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Can't use 'break' outside of a loop.")

	// Inside a loop it is fine, even nested in blocks and ifs
	res = resolveSource(t, `while (true) { if (true) break; }`)
	assert.False(t, res.HasErrors())

	// A function body does not inherit the enclosing loop
	res = resolveSource(t, `while (true) { fun f() { break; } }`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Can't use 'break' outside of a loop.")
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {

	res := resolveSource(t, `print(this);`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Can't use 'this' outside of a class.")

	res = resolveSource(t, `fun f() { return this; }`)
	assert.True(t, res.HasErrors())

	// Inside a method it is fine
	res = resolveSource(t, `class A { m() { return this; } }`)
	assert.False(t, res.HasErrors())
}

func TestResolver_SuperChecks(t *testing.T) {

	// super outside any class
	res := resolveSource(t, `fun f() { super.m(); }`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Can't use 'super' outside of a class.")

	// super in a class without superclass
	res = resolveSource(t, `class A { m() { super.m(); } }`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Can't use 'super' in a class with no superclass.")

	// super in a subclass is fine
	res = resolveSource(t, `class A { m() {} } class B < A { m() { super.m(); } }`)
	assert.False(t, res.HasErrors())
}

func TestResolver_ClassInheritingItselfIsError(t *testing.T) {

	res := resolveSource(t, `class A < A { }`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "A class can't inherit from itself.")
}

func TestResolver_InitializerReturnValueIsError(t *testing.T) {

	res := resolveSource(t, `class C { init() { return 5; } }`)
	assert.True(t, res.HasErrors())
	assert.Contains(t, res.GetErrors()[0], "Can't return a value from an initializer.")

	// A bare return inside init is allowed
	res = resolveSource(t, `class C { init() { return; } }`)
	assert.False(t, res.HasErrors())

	// A value return in an ordinary method is allowed
	res = resolveSource(t, `class C { m() { return 5; } }`)
	assert.False(t, res.HasErrors())
}

func TestResolver_ThisAndSuperDepths(t *testing.T) {

	// Inside a method body, "this" sits one scope above the parameters
	// and "super" one above that
	src := `class A { m() {} } class B < A { m() { this.x = 1; super.m(); } }`
	par := parser.NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors())

	res := NewResolver()
	res.Resolve(root)
	assert.False(t, res.HasErrors())

	for expr, depth := range res.Locals {
		switch expr.(type) {
		case *parser.ThisExpressionNode:
			assert.Equal(t, 1, depth)
		case *parser.SuperExpressionNode:
			assert.Equal(t, 2, depth)
		}
	}
}
