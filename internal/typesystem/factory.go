package typesystem

import "github.com/funvibe/either/internal/ast"

// Factory builds type descriptors from declarations and records them in its
// Registry. It is the Maker that either variants and records elaborate their
// nested type expressions with.
type Factory struct {
	registry *Registry
}

// NewFactory returns a factory recording into r, or into a fresh registry if r is nil.
func NewFactory(r *Registry) *Factory {
	if r == nil {
		r = NewRegistry()
	}
	return &Factory{registry: r}
}

func (f *Factory) Registry() *Registry { return f.registry }

// MakeType implements Maker.
func (f *Factory) MakeType(decl ast.TypeExpr, scope Scope, name string) (ValueType, error) {
	switch d := decl.(type) {
	case *ast.NamedType:
		t, ok := f.registry.LookupName(d.Name.Value)
		if !ok {
			return nil, NewUnknownTypeError(d)
		}
		return t, nil
	case *ast.RecordType:
		t, err := NewRecordType(d, scope, name, f)
		if err != nil {
			return nil, err
		}
		f.registry.Add(t)
		return t, nil
	case *ast.EitherType:
		t, err := NewEitherType(d, scope, name, f)
		if err != nil {
			return nil, err
		}
		f.registry.Add(t)
		return t, nil
	case nil:
		return nil, NewDeclError(nil, "missing type expression")
	default:
		return nil, NewDeclError(decl, "unsupported type expression %T", decl)
	}
}

// Declare elaborates a named type declaration and binds its name so later
// declarations can refer to it.
func (f *Factory) Declare(decl *ast.TypeDeclaration, scope Scope) (ValueType, error) {
	name := decl.Name.Value
	if _, ok := f.registry.LookupName(name); ok {
		return nil, &DuplicateError{Kind: "type", Name: name, Pos: decl.GetToken().Position()}
	}
	t, err := f.MakeType(decl.Type, scope, name)
	if err != nil {
		return nil, err
	}
	if err := f.registry.Bind(name, t); err != nil {
		return nil, err
	}
	return t, nil
}
