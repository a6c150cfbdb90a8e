/*
File    : go-lox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import "github.com/akashmaji946/go-lox/objects"

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can access
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Block scoping: each block (function body, loop body, etc.) has its own scope
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup. When the resolver has already computed the distance between a use
// and its declaration, the indexed accessors (GetAt / AssignAt) jump straight
// to the right scope instead of walking the chain.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LoxObject

	// Parent points to the enclosing scope, forming a scope chain
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent scope.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: Creates a global (root) scope with no parent
// - parent != nil: Creates a nested scope that can access parent variables
//
// Example usage:
//
//	globalScope := NewScope(nil)              // Create global scope
//	functionScope := NewScope(globalScope)    // Create function scope
//	blockScope := NewScope(functionScope)     // Create nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LoxObject),
		Parent:    parent,
	}
}

// Bind creates or overwrites a variable binding in the current scope only.
// This is the `define` operation: variable declarations always bind in the
// innermost scope and never touch parent scopes, which is what makes
// shadowing work.
//
// Returns:
//   - string: The variable name (echoed back)
//   - bool: true if the variable already existed in the current scope
func (s *Scope) Bind(varName string, obj objects.LoxObject) (string, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return varName, has
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This implements the core variable resolution algorithm for lexical scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// Returns:
//   - objects.LoxObject: The value bound to the variable (if found)
//   - bool: true if the variable was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.LoxObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Assign updates an existing variable in the scope where it was originally
// defined. Unlike Bind (which creates new bindings in the current scope),
// Assign walks the chain so that closures and inner blocks modify the
// original binding instead of creating a shadowing one.
//
// Returns:
//   - *Scope: The scope where the variable was found and updated (nil if not found)
//   - bool: true if the variable was found and updated, false otherwise
func (s *Scope) Assign(varName string, obj objects.LoxObject) (*Scope, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return s, true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return nil, false
}

// Ancestor returns the scope `distance` hops up the parent chain.
// A distance of 0 is the receiver itself. The resolver guarantees the
// requested ancestor exists for every distance it hands out.
func (s *Scope) Ancestor(distance int) *Scope {
	scp := s
	for i := 0; i < distance; i++ {
		scp = scp.Parent
	}
	return scp
}

// GetAt reads a variable directly from the scope `distance` hops up,
// without walking. This is the fast path for resolved local variables:
// the resolver computed the distance statically, so no search is needed.
func (s *Scope) GetAt(distance int, varName string) (objects.LoxObject, bool) {
	obj, ok := s.Ancestor(distance).Variables[varName]
	return obj, ok
}

// AssignAt writes a variable directly into the scope `distance` hops up,
// without walking. Counterpart of GetAt for resolved assignments.
func (s *Scope) AssignAt(distance int, varName string, obj objects.LoxObject) {
	s.Ancestor(distance).Variables[varName] = obj
}
