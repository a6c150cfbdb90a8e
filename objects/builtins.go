/*
File    : go-lox/objects/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"io"
	"time"
)

// BuiltinCallback is the native implementation of a built-in callable.
// The writer is the evaluator's program-output sink, so built-in output is
// redirectable for tests the same way user-visible output is.
type BuiltinCallback func(writer io.Writer, args ...LoxObject) LoxObject

// Builtin represents a native function exposed to Lox programs.
// Builtins are defined into the global environment when an evaluator is
// created and are called with pre-evaluated arguments; arity checking
// happens at the call site against ParamCount.
type Builtin struct {
	Name       string          // Name the builtin is bound to in globals
	ParamCount int             // Exact number of arguments expected
	Callback   BuiltinCallback // Native implementation
}

// GetType returns the type of the Builtin object
func (b *Builtin) GetType() LoxType {
	return BuiltinType
}

// ToString returns the display form of the builtin (e.g., "<fn clock>")
func (b *Builtin) ToString() string {
	return fmt.Sprintf("<fn %s>", b.Name)
}

// ToObject returns a detailed representation including type info
func (b *Builtin) ToObject() string {
	return fmt.Sprintf("<builtin[%s/%d]>", b.Name, b.ParamCount)
}

// processStart anchors the clock builtin; clock reports wall-clock seconds
// elapsed since interpreter start (not CPU time).
var processStart = time.Now()

// Builtins lists every native callable seeded into the global environment:
//   - clock()  - zero arguments, returns seconds since process start as a number
//   - print(v) - one argument, writes the stringified value and a newline
var Builtins = []*Builtin{
	{Name: "clock", ParamCount: 0, Callback: clockBuiltin},
	{Name: "print", ParamCount: 1, Callback: printBuiltin},
}

// clockBuiltin returns the seconds elapsed since process start as a Number.
// Useful for benchmarking Lox programs against themselves.
func clockBuiltin(writer io.Writer, args ...LoxObject) LoxObject {
	return &Number{Value: time.Since(processStart).Seconds()}
}

// printBuiltin writes the stringified argument followed by a newline.
// This is the only source of program output in the language.
func printBuiltin(writer io.Writer, args ...LoxObject) LoxObject {
	fmt.Fprintln(writer, args[0].ToString())
	return &Nil{}
}
