package typesystem

import (
	"errors"
	"testing"

	"github.com/funvibe/either/internal/ast"
)

func makePoint(t *testing.T) *RecordType {
	t.Helper()
	decl := ast.Record(
		ast.Field("x", ast.Named("Integer")),
		ast.Field("label", ast.Named("String")),
	)
	rt, err := NewRecordType(decl, mapScope{}, "", NewFactory(nil))
	if err != nil {
		t.Fatalf("NewRecordType failed: %v", err)
	}
	return rt
}

func TestRecordType_String(t *testing.T) {
	rt := makePoint(t)
	if rt.String() != "{ x: Integer, label: String }" {
		t.Errorf("String() = %q", rt.String())
	}

	named, err := NewRecordType(ast.Record(), mapScope{}, "Unit", NewFactory(nil))
	if err != nil {
		t.Fatalf("NewRecordType failed: %v", err)
	}
	if named.String() != "Unit" {
		t.Errorf("String() = %q, want Unit", named.String())
	}
}

func TestRecordType_DuplicateField(t *testing.T) {
	decl := ast.Record(ast.Field("x", ast.Named("Integer")), ast.Field("x", ast.Named("String")))
	_, err := NewRecordType(decl, mapScope{}, "", NewFactory(nil))
	var de *DuplicateError
	if !errors.As(err, &de) || de.Kind != "field" || de.Name != "x" {
		t.Fatalf("expected duplicate field error, got %v", err)
	}
}

func TestRecordValue_Defaults(t *testing.T) {
	r := makePoint(t).MakeDefaultValue().(*RecordValue)
	if r.String() != `{ x: 0, label: "" }` {
		t.Errorf("String() = %q", r.String())
	}
	if r.InnerString() != `x: 0, label: ""` {
		t.Errorf("InnerString() = %q", r.InnerString())
	}
}

func TestRecordValue_SetAndGet(t *testing.T) {
	r := makePoint(t).MakeDefaultValue().(*RecordValue)

	if err := r.Set("x", Integer.New(3)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	x, ok := r.Get("x")
	if !ok || x.String() != "3" {
		t.Errorf("Get(x) = %v, %v", x, ok)
	}

	var ie *InternalError
	if err := r.Set("x", String.New("no")); !errors.As(err, &ie) {
		t.Errorf("Set with wrong type: expected InternalError, got %v", err)
	}
	var uf *UnknownFieldError
	if err := r.Set("y", Integer.New(1)); !errors.As(err, &uf) {
		t.Errorf("Set unknown field: expected UnknownFieldError, got %v", err)
	}
	if _, ok := r.Get("y"); ok {
		t.Error("Get(y) should fail")
	}
}

func TestRecordValue_EqualsAssignClone(t *testing.T) {
	rt := makePoint(t)
	a := rt.MakeDefaultValue().(*RecordValue)
	b := rt.MakeDefaultValue().(*RecordValue)
	if !a.Equals(b) {
		t.Fatal("defaults should be equal")
	}
	if err := b.Set("label", String.New("b")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if a.Equals(b) {
		t.Fatal("records with different labels should differ")
	}

	if err := a.Assign(b); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if !a.Equals(b) {
		t.Fatal("records should be equal after Assign")
	}
	// Field values are shared after Assign.
	lb, _ := b.Get("label")
	lb.(*StringValue).Set("shared")
	la, _ := a.Get("label")
	if la.String() != `"shared"` {
		t.Errorf("label through alias = %s", la)
	}
	// Replacing a field on one side does not affect the other.
	if err := b.Set("x", Integer.New(10)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if xa, _ := a.Get("x"); xa.String() != "0" {
		t.Errorf("x after Set on source = %s, want 0", xa)
	}

	c := a.Clone().(*RecordValue)
	la.(*StringValue).Set("changed")
	if lc, _ := c.Get("label"); lc.String() != `"shared"` {
		t.Errorf("clone label = %s", lc)
	}

	other := makePoint(t).MakeDefaultValue()
	var ie *InternalError
	if err := a.Assign(other); !errors.As(err, &ie) {
		t.Errorf("Assign across record types: expected InternalError, got %v", err)
	}
	if a.Equals(other) {
		t.Error("records of different types should not be equal")
	}
}

func TestRecordValue_Empty(t *testing.T) {
	rt, err := NewRecordType(ast.Record(), mapScope{}, "", NewFactory(nil))
	if err != nil {
		t.Fatalf("NewRecordType failed: %v", err)
	}
	r := rt.MakeDefaultValue()
	if r.String() != "{}" || r.InnerString() != "" {
		t.Errorf("empty record rendering = %q / %q", r.String(), r.InnerString())
	}
}
