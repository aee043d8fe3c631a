package evaluator

import (
	"errors"
	"testing"

	"github.com/funvibe/either/internal/typesystem"
)

func TestEnvironment_AssignVarAndGet(t *testing.T) {
	env := NewEnvironment()
	one := typesystem.Integer.New(1)

	if err := env.AssignVar("one", one); err != nil {
		t.Fatalf("AssignVar failed: %v", err)
	}
	got, ok := env.Get("one")
	if !ok || got != one {
		t.Errorf("Get(one) = %v, %v", got, ok)
	}

	var de *typesystem.DuplicateError
	if err := env.AssignVar("one", typesystem.Integer.New(2)); !errors.As(err, &de) || de.Kind != "constant" {
		t.Errorf("expected duplicate constant error, got %v", err)
	}
	if got, _ := env.Get("one"); got != one {
		t.Error("failed AssignVar replaced the binding")
	}
}

func TestEnvironment_Enclosed(t *testing.T) {
	outer := NewEnvironment()
	inner := NewEnclosedEnvironment(outer)
	a := typesystem.String.New("outer")

	outer.Set("a", a)
	if got, ok := inner.Get("a"); !ok || got != a {
		t.Errorf("inner should see outer binding, got %v", got)
	}

	// Shadowing is allowed.
	b := typesystem.String.New("inner")
	if err := inner.AssignVar("a", b); err != nil {
		t.Fatalf("shadowing AssignVar failed: %v", err)
	}
	if got, _ := inner.Get("a"); got != b {
		t.Error("inner binding should shadow outer")
	}
	if got, _ := outer.Get("a"); got != a {
		t.Error("outer binding should be untouched")
	}

	c := typesystem.String.New("updated")
	if !inner.Update("a", c) {
		t.Fatal("Update should find the inner binding")
	}
	if got, _ := outer.Get("a"); got != a {
		t.Error("Update should change the nearest binding only")
	}
	if inner.Update("missing", c) {
		t.Error("Update of an unbound name should fail")
	}
	if _, ok := inner.Get("missing"); ok {
		t.Error("Get of an unbound name should fail")
	}
}

func TestEnvironment_NamesAndStore(t *testing.T) {
	env := NewEnvironment()
	for _, name := range []string{"c", "a", "b"} {
		env.Set(name, typesystem.Boolean.New(true))
	}
	names := env.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("Names() = %v, want [a b c]", names)
	}

	store := env.GetStore()
	delete(store, "a")
	if _, ok := env.Get("a"); !ok {
		t.Error("GetStore should return a copy")
	}
}
