/*
File    : go-lox/function/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
)

// Class represents a class object in Lox. Classes are first-class values
// and are themselves callable: invoking a class constructs an instance,
// running the "init" method on it when one exists.
//
// Fields:
//   - Name: The class name as declared in the source.
//   - Superclass: The parent class for single inheritance, or nil.
//   - Methods: The methods declared directly on this class. Inherited
//     methods are found by walking up Superclass at lookup time.
type Class struct {
	Name       string               // Name of the class
	Superclass *Class               // Parent class, or nil
	Methods    map[string]*Function // Methods declared on this class
}

// GetType returns the type identifier for this Class object.
func (c *Class) GetType() objects.LoxType {
	return objects.ClassType
}

// ToString returns the class name; classes print as their bare name.
func (c *Class) ToString() string {
	return c.Name
}

// ToObject returns a detailed representation including type info.
func (c *Class) ToObject() string {
	return fmt.Sprintf("<class %s>", c.Name)
}

// FindMethod looks up a method by name on this class, walking up the
// inheritance chain. Methods on the class itself shadow inherited ones.
//
// Returns nil if no class in the chain declares the method.
func (c *Class) FindMethod(name string) *Function {
	if method, ok := c.Methods[name]; ok {
		return method
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// ParamCount returns the constructor arity of the class: the arity of its
// "init" method when one exists (possibly inherited), zero otherwise.
func (c *Class) ParamCount() int {
	if init := c.FindMethod("init"); init != nil {
		return init.ParamCount()
	}
	return 0
}
