/*
File    : go-lox/function/instance.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
)

// Instance represents an object constructed from a Lox class. Instances
// carry open-ended state: any property can be written at any time, and
// fields live entirely on the instance while behavior stays on the class.
type Instance struct {
	Class  *Class                       // The class this instance was constructed from
	Fields map[string]objects.LoxObject // Per-instance property storage
}

// NewInstance creates an empty instance of the given class.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		Fields: make(map[string]objects.LoxObject),
	}
}

// GetType returns the type identifier for this Instance object.
func (i *Instance) GetType() objects.LoxType {
	return objects.InstanceType
}

// ToString returns the display form of the instance (e.g., "<Point instance>").
func (i *Instance) ToString() string {
	return fmt.Sprintf("<%s instance>", i.Class.Name)
}

// ToObject returns a detailed representation including type info.
func (i *Instance) ToObject() string {
	return fmt.Sprintf("<instance of %s>", i.Class.Name)
}

// Get reads a property from the instance. Fields shadow methods: the
// instance's own fields are consulted first, then the class's methods
// (walking the inheritance chain). A found method is bound to this
// instance before being returned, so "this" works inside it.
//
// Returns:
//   - objects.LoxObject: The property value or bound method (if found)
//   - bool: true if the property exists, false otherwise
func (i *Instance) Get(name string) (objects.LoxObject, bool) {
	if value, ok := i.Fields[name]; ok {
		return value, true
	}
	if method := i.Class.FindMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// Set writes a property on the instance. Property writes always go to the
// instance's fields; methods cannot be overwritten on the class this way.
func (i *Instance) Set(name string, value objects.LoxObject) {
	i.Fields[name] = value
}
