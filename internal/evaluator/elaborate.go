package evaluator

import (
	"github.com/funvibe/either/internal/ast"
	"github.com/funvibe/either/internal/typesystem"
)

// Elaborate builds the types declared in mod and binds the constants they
// introduce in env.
//
// Types are built first, in declaration order, without touching env. Then
// every either type built along the way, including anonymous ones nested in
// payloads, binds its payload-less variants. Errors are returned unchanged;
// on error env may hold the constants bound before the failure.
func Elaborate(mod *ast.Module, env *Environment, factory *typesystem.Factory) ([]typesystem.ValueType, error) {
	reg := factory.Registry()
	first := len(reg.EitherTypes())

	declared := make([]typesystem.ValueType, 0, len(mod.Types))
	for _, decl := range mod.Types {
		t, err := factory.Declare(decl, env)
		if err != nil {
			return nil, err
		}
		declared = append(declared, t)
	}

	for _, et := range reg.EitherTypes()[first:] {
		if et.Scope() != env {
			continue
		}
		if err := et.BindConstants(); err != nil {
			return nil, err
		}
	}
	return declared, nil
}
