package typesystem

import (
	"errors"
	"testing"

	"github.com/funvibe/either/internal/ast"
	"github.com/kr/pretty"
)

func TestFactory_DeclareAndReference(t *testing.T) {
	reg := NewRegistry()
	f := NewFactory(reg)
	scope := mapScope{}

	color, err := f.Declare(ast.Declare("Color", ast.Either(ast.EnumVariant("Red"), ast.EnumVariant("Green"))), scope)
	if err != nil {
		t.Fatalf("Declare(Color) failed: %v", err)
	}
	pixel, err := f.Declare(ast.Declare("Pixel", ast.Record(
		ast.Field("color", ast.Named("Color")),
		ast.Field("alpha", ast.Named("Integer")),
	)), scope)
	if err != nil {
		t.Fatalf("Declare(Pixel) failed: %v", err)
	}

	if got, ok := reg.LookupName("Color"); !ok || got != color {
		t.Error("Color not bound by name")
	}
	if got, ok := reg.LookupName("Integer"); !ok || got != Integer {
		t.Error("builtins should resolve by name")
	}
	if reg.Len() != 2 {
		t.Errorf("registry holds %d types, want 2", reg.Len())
	}
	if got, ok := reg.Lookup(pixel.ID()); !ok || got != pixel {
		t.Error("Pixel not registered by ID")
	}

	field := pixel.(*RecordType).Fields()[0]
	if field.Type != color {
		t.Errorf("Pixel.color type = %s, want Color", field.Type)
	}
	if got := pixel.MakeDefaultValue().String(); got != "{ color: Red, alpha: 0 }" {
		t.Errorf("default Pixel = %q", got)
	}
}

func TestFactory_DuplicateDeclaration(t *testing.T) {
	f := NewFactory(nil)
	decl := ast.Declare("T", ast.Either(ast.EnumVariant("A")))
	if _, err := f.Declare(decl, mapScope{}); err != nil {
		t.Fatalf("first Declare failed: %v", err)
	}
	var de *DuplicateError
	if _, err := f.Declare(decl, mapScope{}); !errors.As(err, &de) || de.Kind != "type" {
		t.Errorf("expected duplicate type error, got %v", err)
	}
	if _, err := f.Declare(ast.Declare("Integer", ast.Record()), mapScope{}); !errors.As(err, &de) {
		t.Errorf("builtin names cannot be redeclared, got %v", err)
	}
}

func TestFactory_UnknownAndMissingTypes(t *testing.T) {
	f := NewFactory(nil)
	var ue *UnknownTypeError
	if _, err := f.MakeType(ast.Named("Nope"), mapScope{}, ""); !errors.As(err, &ue) {
		t.Errorf("expected UnknownTypeError, got %v", err)
	}
	var de *DeclError
	if _, err := f.MakeType(nil, mapScope{}, ""); !errors.As(err, &de) {
		t.Errorf("expected DeclError, got %v", err)
	}
}

func TestRegistry_EitherTypesInBuildOrder(t *testing.T) {
	reg := NewRegistry()
	f := NewFactory(reg)

	// The nested anonymous either is built before its enclosing type.
	decl := ast.Either(
		ast.RecordVariant("Wrapped", ast.Record(
			ast.Field("inner", ast.Either(ast.EnumVariant("X"), ast.EnumVariant("Y"))),
		)),
		ast.EnumVariant("Empty"),
	)
	if _, err := f.Declare(ast.Declare("Outer", decl), mapScope{}); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	got := make([]string, 0)
	for _, et := range reg.EitherTypes() {
		got = append(got, et.String())
	}
	want := []string{"anonymous either", "Outer"}
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("either types differ:\n%s", diff)
	}
	if len(reg.Types()) != 3 {
		t.Errorf("Types() = %d, want 3 (two eithers and one record)", len(reg.Types()))
	}
}
