/*
Package environment implements variable storage for the interpreter: a
stack of named scopes rather than a parent-pointer tree, since this
language has no closures for a tree to serve.
*/
package environment

import (
	"fmt"

	"github.com/wisplang/wisp/value"
)

// Environment is a stack of scopes, innermost first. It starts with a
// single scope (the global scope) already in place.
type Environment struct {
	scopes []map[string]*value.Value
}

// New creates an Environment with its global scope already forked.
func New() *Environment {
	return &Environment{scopes: []map[string]*value.Value{{}}}
}

// Fork pushes a fresh, empty scope. Call on block entry.
func (e *Environment) Fork() {
	e.scopes = append(e.scopes, map[string]*value.Value{})
}

// Join pops the innermost scope. Popping the last remaining scope is a
// programmer error in the caller (every Fork must be matched before the
// Environment itself goes out of scope), not a condition callers recover
// from.
func (e *Environment) Join() {
	if len(e.scopes) <= 1 {
		panic("environment: Join called without a matching Fork")
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Define inserts name into the innermost scope, unconditionally.
// Shadowing an outer binding or redefining within the same scope both
// simply overwrite.
func (e *Environment) Define(name string, v value.Value) {
	innermost := e.scopes[len(e.scopes)-1]
	slot := v
	innermost[name] = &slot
}

// Get searches scopes from innermost to outermost, returning the first
// binding found.
func (e *Environment) Get(name string) (value.Value, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if slot, ok := e.scopes[i][name]; ok {
			return *slot, true
		}
	}
	return nil, false
}

// Assign searches scopes from innermost to outermost for an existing
// binding and replaces its slot contents. It returns an error if name is
// not bound anywhere on the stack.
func (e *Environment) Assign(name string, v value.Value) error {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if slot, ok := e.scopes[i][name]; ok {
			*slot = v
			return nil
		}
	}
	return fmt.Errorf("assigned before declaration: '%s'", name)
}
