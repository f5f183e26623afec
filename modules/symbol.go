package modules

import "reflect"

// Symbol is a named member of a module namespace.
type Symbol interface {
	// SymbolName returns the member name within its namespace.
	SymbolName() string
}

// Class is a type exported by a module. Module is the defining module, which
// stays unchanged when the class is re-exported into another namespace.
type Class struct {
	Name   string
	Module string
	Type   reflect.Type
}

// SymbolName implements Symbol.
func (c Class) SymbolName() string { return c.Name }

// QualifiedName returns the dotted name of the class in its defining module.
func (c Class) QualifiedName() string { return JoinName(c.Module, c.Name) }

// Func is a function exported by a module.
type Func struct {
	Name   string
	Module string
	Value  any
}

// SymbolName implements Symbol.
func (f Func) SymbolName() string { return f.Name }
