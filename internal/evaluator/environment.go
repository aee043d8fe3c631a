package evaluator

import (
	"sort"

	"github.com/funvibe/either/internal/typesystem"
	"github.com/samber/lo"
)

var _ typesystem.Scope = (*Environment)(nil)

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]typesystem.Value)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Environment binds names to values. It is not safe for concurrent use.
type Environment struct {
	store map[string]typesystem.Value
	outer *Environment
}

func (e *Environment) Get(name string) (typesystem.Value, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// AssignVar defines a constant in this scope. Shadowing an outer binding is
// allowed; redefining a name in the same scope is not.
func (e *Environment) AssignVar(name string, val typesystem.Value) error {
	if _, ok := e.store[name]; ok {
		return &typesystem.DuplicateError{Kind: "constant", Name: name}
	}
	e.store[name] = val
	return nil
}

func (e *Environment) Set(name string, val typesystem.Value) typesystem.Value {
	e.store[name] = val
	return val
}

func (e *Environment) Update(name string, val typesystem.Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Update(name, val)
	}
	return false
}

// Names returns the names bound in this scope, sorted.
func (e *Environment) Names() []string {
	names := lo.Keys(e.store)
	sort.Strings(names)
	return names
}

// GetStore returns a copy of the store
func (e *Environment) GetStore() map[string]typesystem.Value {
	copy := make(map[string]typesystem.Value, len(e.store))
	for k, v := range e.store {
		copy[k] = v
	}
	return copy
}
