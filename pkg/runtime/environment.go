package runtime

import "sort"

// Environment provides lexical scoping for runtime values. Environments form
// a tree rooted at the global scope; the parent is a back-reference, never a
// cycle.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define inserts or overwrites a binding in the current scope. Redeclaring an
// existing name is not an error.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign updates the nearest existing binding walking outward through the
// scope chain. Names must be declared before assignment.
func (e *Environment) Assign(name string, value Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return Errorf("cannot assign to undefined variable '%s'", name)
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, Errorf("undefined variable '%s'", name)
}

// Has reports whether any scope in the chain defines the name.
func (e *Environment) Has(name string) bool {
	if _, ok := e.values[name]; ok {
		return true
	}
	if e.parent != nil {
		return e.parent.Has(name)
	}
	return false
}

// Keys returns the local bindings in sorted order (useful for determinism in
// tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend creates a new child scope under the current environment.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}
