/*
File    : go-lox/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-lox/objects"
)

func TestScope_BindAndLookUp(t *testing.T) {

	global := NewScope(nil)

	// A fresh binding reports no previous occupant
	_, had := global.Bind("x", &objects.Number{Value: 1})
	assert.False(t, had)

	// Rebinding the same name reports the overwrite
	_, had = global.Bind("x", &objects.Number{Value: 2})
	assert.True(t, had)

	value, ok := global.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, float64(2), value.(*objects.Number).Value)

	// Unknown names miss
	_, ok = global.LookUp("y")
	assert.False(t, ok)
}

func TestScope_LookUpWalksChain(t *testing.T) {

	global := NewScope(nil)
	global.Bind("x", &objects.String{Value: "outer"})

	inner := NewScope(global)

	// The inner scope sees the outer binding
	value, ok := inner.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, "outer", value.(*objects.String).Value)

	// Shadowing hides the outer binding without touching it
	inner.Bind("x", &objects.String{Value: "inner"})
	value, _ = inner.LookUp("x")
	assert.Equal(t, "inner", value.(*objects.String).Value)
	value, _ = global.LookUp("x")
	assert.Equal(t, "outer", value.(*objects.String).Value)
}

func TestScope_AssignWalksChain(t *testing.T) {

	global := NewScope(nil)
	global.Bind("count", &objects.Number{Value: 0})

	inner := NewScope(global)

	// Assignment from the inner scope updates the defining scope
	where, ok := inner.Assign("count", &objects.Number{Value: 5})
	assert.True(t, ok)
	assert.Same(t, global, where)

	value, _ := global.LookUp("count")
	assert.Equal(t, float64(5), value.(*objects.Number).Value)

	// Assigning an undefined name fails instead of creating a binding
	_, ok = inner.Assign("missing", &objects.Nil{})
	assert.False(t, ok)
	_, found := inner.LookUp("missing")
	assert.False(t, found)
}

func TestScope_Ancestor(t *testing.T) {

	global := NewScope(nil)
	middle := NewScope(global)
	inner := NewScope(middle)

	assert.Same(t, inner, inner.Ancestor(0))
	assert.Same(t, middle, inner.Ancestor(1))
	assert.Same(t, global, inner.Ancestor(2))
}

func TestScope_GetAtAndAssignAt(t *testing.T) {

	global := NewScope(nil)
	global.Bind("x", &objects.Number{Value: 1})
	middle := NewScope(global)
	middle.Bind("x", &objects.Number{Value: 2})
	inner := NewScope(middle)

	// Indexed access reads exactly the requested scope, no walking
	value, ok := inner.GetAt(1, "x")
	assert.True(t, ok)
	assert.Equal(t, float64(2), value.(*objects.Number).Value)

	value, ok = inner.GetAt(2, "x")
	assert.True(t, ok)
	assert.Equal(t, float64(1), value.(*objects.Number).Value)

	// A name absent at the requested depth misses even if present deeper
	_, ok = inner.GetAt(0, "x")
	assert.False(t, ok)

	// Indexed assignment writes exactly the requested scope
	inner.AssignAt(2, "x", &objects.Number{Value: 42})
	value, _ = global.LookUp("x")
	assert.Equal(t, float64(42), value.(*objects.Number).Value)
	value, _ = middle.LookUp("x")
	assert.Equal(t, float64(2), value.(*objects.Number).Value)
}
