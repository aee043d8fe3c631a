package typesystem

import (
	"strings"

	"github.com/funvibe/either/internal/ast"
	"github.com/samber/lo"
)

// RecordField is one named, typed field of a RecordType.
type RecordField struct {
	Name string
	Type ValueType
}

// RecordType is a structured aggregate with named fields in declaration order.
type RecordType struct {
	base
	fields []RecordField
}

// NewRecordType elaborates every field's type through maker.
// Errors from field elaboration are returned unchanged.
func NewRecordType(decl *ast.RecordType, scope Scope, name string, maker Maker) (*RecordType, error) {
	if dups := lo.FindDuplicatesBy(decl.Fields, func(f *ast.FieldDecl) string { return f.ID.Value }); len(dups) > 0 {
		return nil, &DuplicateError{Kind: "field", Name: dups[0].ID.Value, Pos: dups[0].GetToken().Position()}
	}
	t := &RecordType{base: newBase(decl, scope, name)}
	for _, f := range decl.Fields {
		if f.Type == nil {
			return nil, NewDeclError(f, "field %s has no type", f.ID.Value)
		}
		ft, err := maker.MakeType(f.Type, scope, "")
		if err != nil {
			return nil, err
		}
		t.fields = append(t.fields, RecordField{Name: f.ID.Value, Type: ft})
	}
	return t, nil
}

// Fields returns the fields in declaration order. The slice must not be modified.
func (t *RecordType) Fields() []RecordField { return t.fields }

func (t *RecordType) fieldIndex(name string) int {
	for i, f := range t.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// String returns the declared name, or the structural form for anonymous records.
func (t *RecordType) String() string {
	if t.hasName() {
		return t.name
	}
	parts := lo.Map(t.fields, func(f RecordField, _ int) string {
		return f.Name + ": " + f.Type.String()
	})
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (t *RecordType) MakeDefaultValue() Value {
	r := &RecordValue{typ: t, fields: make([]Value, len(t.fields))}
	for i, f := range t.fields {
		r.fields[i] = f.Type.MakeDefaultValue()
	}
	return r
}

// RecordValue is an instance of a RecordType.
type RecordValue struct {
	typ    *RecordType
	fields []Value // parallel to typ.fields
}

func (r *RecordValue) Type() ValueType { return r.typ }

// Get returns the value of the named field.
func (r *RecordValue) Get(name string) (Value, bool) {
	i := r.typ.fieldIndex(name)
	if i < 0 {
		return nil, false
	}
	return r.fields[i], true
}

// Set replaces the named field with val, which is stored by reference.
func (r *RecordValue) Set(name string, val Value) error {
	i := r.typ.fieldIndex(name)
	if i < 0 {
		return &UnknownFieldError{Type: r.typ.String(), Name: name}
	}
	want := r.typ.fields[i].Type
	if val == nil || !sameType(val.Type(), want) {
		return NewInternalError("Cannot assign value of %s to field %s of type %s", describe(val), name, want)
	}
	r.fields[i] = val
	return nil
}

func (r *RecordValue) String() string {
	if len(r.fields) == 0 {
		return "{}"
	}
	return "{ " + r.InnerString() + " }"
}

// InnerString renders the fields without the enclosing braces.
func (r *RecordValue) InnerString() string {
	parts := make([]string, len(r.fields))
	for i, f := range r.typ.fields {
		parts[i] = f.Name + ": " + r.fields[i].String()
	}
	return strings.Join(parts, ", ")
}

func (r *RecordValue) Equals(other Value) bool {
	o, ok := other.(*RecordValue)
	if !ok || o.typ != r.typ {
		return false
	}
	for i := range r.fields {
		if !r.fields[i].Equals(o.fields[i]) {
			return false
		}
	}
	return true
}

// Assign makes r refer to the same field values as other. Field values are
// shared, not copied.
func (r *RecordValue) Assign(other Value) error {
	o, ok := other.(*RecordValue)
	if !ok || o.typ != r.typ {
		return NewInternalError("Cannot assign value of %s to record-type %s", describe(other), r.typ)
	}
	r.fields = append([]Value(nil), o.fields...)
	return nil
}

// Clone returns a deep copy.
func (r *RecordValue) Clone() Value {
	c := &RecordValue{typ: r.typ, fields: make([]Value, len(r.fields))}
	for i, f := range r.fields {
		c.fields[i] = f.Clone()
	}
	return c
}
