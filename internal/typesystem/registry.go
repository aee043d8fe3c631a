package typesystem

import "github.com/samber/lo"

// Registry owns every type built by a Factory, keyed by TypeID, plus the
// names of declared types.
type Registry struct {
	types map[TypeID]Type
	names map[string]ValueType
	order []TypeID
}

func NewRegistry() *Registry {
	return &Registry{
		types: make(map[TypeID]Type),
		names: make(map[string]ValueType),
	}
}

// Add records t. Adding the same type twice is a no-op.
func (r *Registry) Add(t Type) {
	if _, ok := r.types[t.ID()]; ok {
		return
	}
	r.types[t.ID()] = t
	r.order = append(r.order, t.ID())
}

// Lookup implements Resolver.
func (r *Registry) Lookup(id TypeID) (Type, bool) {
	t, ok := r.types[id]
	return t, ok
}

// Bind makes t reachable under name. Builtin names cannot be rebound.
func (r *Registry) Bind(name string, t ValueType) error {
	if _, ok := Builtins[name]; ok {
		return &DuplicateError{Kind: "type", Name: name}
	}
	if _, ok := r.names[name]; ok {
		return &DuplicateError{Kind: "type", Name: name}
	}
	r.names[name] = t
	return nil
}

// LookupName resolves a builtin or declared type name.
func (r *Registry) LookupName(name string) (ValueType, bool) {
	if t, ok := Builtins[name]; ok {
		return t, true
	}
	t, ok := r.names[name]
	return t, ok
}

// Len returns the number of types added.
func (r *Registry) Len() int { return len(r.order) }

// Types returns all added types in the order they were built.
func (r *Registry) Types() []Type {
	return lo.Map(r.order, func(id TypeID, _ int) Type { return r.types[id] })
}

// EitherTypes returns the either types among Types, in build order.
func (r *Registry) EitherTypes() []*EitherType {
	return lo.FilterMap(r.order, func(id TypeID, _ int) (*EitherType, bool) {
		et, ok := r.types[id].(*EitherType)
		return et, ok
	})
}
