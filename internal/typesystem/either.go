package typesystem

import (
	"github.com/funvibe/either/internal/ast"
	"github.com/funvibe/either/internal/config"
	"github.com/samber/lo"
)

// EitherType is the type T in:
//
//	type T: either { A, B { x: Integer } }
//
// It is made up of an ordered set of EitherVariant types (A and B in this
// example). The first variant is the default.
type EitherType struct {
	base
	variants []*EitherVariant
}

// NewEitherType builds one variant per declared field, in order. Building is
// pure: payload-less variants are not bound in scope until BindConstants.
// Errors from payload elaboration are returned unchanged.
func NewEitherType(decl *ast.EitherType, scope Scope, name string, maker Maker) (*EitherType, error) {
	if len(decl.Fields) == 0 {
		return nil, NewDeclError(decl, "either type %s has no variants", displayName(name))
	}
	if dups := lo.FindDuplicatesBy(decl.Fields, func(f *ast.VariantDecl) string { return f.ID.Value }); len(dups) > 0 {
		return nil, &DuplicateError{Kind: "variant", Name: dups[0].ID.Value, Pos: dups[0].GetToken().Position()}
	}
	t := &EitherType{base: newBase(decl, scope, name)}
	for _, field := range decl.Fields {
		v, err := newEitherVariant(field, scope, field.ID.Value, t, maker)
		if err != nil {
			return nil, err
		}
		t.variants = append(t.variants, v)
	}
	return t, nil
}

func displayName(name string) string {
	if name == "" {
		return config.AnonymousEitherName
	}
	return name
}

// Variants returns the variants in declaration order. The slice must not be modified.
func (t *EitherType) Variants() []*EitherVariant { return t.variants }

// VariantNames returns the variant names in declaration order.
func (t *EitherType) VariantNames() []string {
	return lo.Map(t.variants, func(v *EitherVariant, _ int) string { return v.name })
}

// Variant looks up a variant by name.
func (t *EitherType) Variant(name string) (*EitherVariant, bool) {
	return lo.Find(t.variants, func(v *EitherVariant) bool { return v.name == name })
}

// MakeDefaultValue returns a fresh value holding the first variant.
func (t *EitherType) MakeDefaultValue() Value {
	return newEitherValue(t, t.variants[0])
}

// NewValue returns a fresh value holding the named variant, with a default
// payload if the variant has one.
func (t *EitherType) NewValue(variant string) (*EitherValue, error) {
	v, ok := t.Variant(variant)
	if !ok {
		return nil, &UnknownVariantError{Type: t.String(), Name: variant}
	}
	return newEitherValue(t, v), nil
}

// BindConstants registers a singleton value for every payload-less variant
// under the variant's name in the scope the type was built in. This is what
// lets bare variants be used as named constants.
func (t *EitherType) BindConstants() error {
	if t.scope == nil {
		return NewInternalError("either-type %s has no scope to bind constants in", t)
	}
	for _, v := range t.variants {
		if v.HasPayload() {
			continue
		}
		if err := t.scope.AssignVar(v.name, newEitherValue(t, v)); err != nil {
			return err
		}
	}
	return nil
}

func (t *EitherType) String() string {
	return displayName(t.name)
}

// EitherVariant is A in:
//
//	type T: either { A, B }
//
// Its parent is T. It refers to T by ID so that only T owns its variants.
type EitherVariant struct {
	base
	parent  TypeID
	payload ValueType // nil for enum variants
}

func newEitherVariant(decl *ast.VariantDecl, scope Scope, name string, parent *EitherType, maker Maker) (*EitherVariant, error) {
	v := &EitherVariant{base: newBase(decl, scope, name), parent: parent.id}
	if decl.IsEnum() {
		return v, nil
	}
	if decl.Type == nil {
		return nil, NewDeclError(decl, "variant %s has no payload type", name)
	}
	payload, err := maker.MakeType(decl.Type, scope, "")
	if err != nil {
		return nil, err
	}
	v.payload = payload
	return v, nil
}

// ParentID returns the ID of the either type that declares v.
func (v *EitherVariant) ParentID() TypeID { return v.parent }

// Parent resolves the either type that declares v.
func (v *EitherVariant) Parent(r Resolver) (*EitherType, bool) {
	t, ok := r.Lookup(v.parent)
	if !ok {
		return nil, false
	}
	et, ok := t.(*EitherType)
	return et, ok
}

// Payload returns the payload shape, if v carries one.
func (v *EitherVariant) Payload() (ValueType, bool) {
	return v.payload, v.payload != nil
}

func (v *EitherVariant) HasPayload() bool { return v.payload != nil }

func (v *EitherVariant) String() string {
	return v.name + " " + config.VariantSuffix
}

// arm is the active alternative of an EitherValue. An arm is never mutated;
// assignment swaps the whole arm.
type arm interface {
	variant() *EitherVariant
}

// tagArm holds a payload-less variant: the tag is the entire value.
type tagArm struct {
	v *EitherVariant
}

func (a tagArm) variant() *EitherVariant { return a.v }

// payloadArm holds a variant together with its payload.
type payloadArm struct {
	v       *EitherVariant
	payload Value
}

func (a payloadArm) variant() *EitherVariant { return a.v }

// EitherValue is an instance of an EitherType.
// Its type never changes; the variant it holds changes through Assign.
type EitherValue struct {
	typ *EitherType
	arm arm
}

func newEitherValue(t *EitherType, v *EitherVariant) *EitherValue {
	if v.payload == nil {
		return &EitherValue{typ: t, arm: tagArm{v: v}}
	}
	return &EitherValue{typ: t, arm: payloadArm{v: v, payload: v.payload.MakeDefaultValue()}}
}

func (e *EitherValue) Type() ValueType { return e.typ }

// Variant returns the variant currently held.
func (e *EitherValue) Variant() *EitherVariant { return e.arm.variant() }

// Tag returns the name of the variant currently held.
func (e *EitherValue) Tag() string { return e.arm.variant().name }

// Payload returns the payload, if the current variant carries one.
func (e *EitherValue) Payload() (Value, bool) {
	if a, ok := e.arm.(payloadArm); ok {
		return a.payload, true
	}
	return nil, false
}

func (e *EitherValue) HasPayload() bool {
	_, ok := e.arm.(payloadArm)
	return ok
}

// Assign makes e hold other's variant and, if present, other's payload.
// The payload is shared by reference, not copied. Other must belong to the
// same either type; otherwise e is left unchanged.
func (e *EitherValue) Assign(other Value) error {
	o, ok := other.(*EitherValue)
	if !ok || o.typ != e.typ {
		return NewInternalError("Cannot assign value of %s to either-type %s", describe(other), e.typ)
	}
	e.arm = o.arm
	return nil
}

// Equals compares variants by identity, then payloads if the variant has one.
func (e *EitherValue) Equals(other Value) bool {
	o, ok := other.(*EitherValue)
	if !ok || e.Variant() != o.Variant() {
		return false
	}
	switch a := e.arm.(type) {
	case payloadArm:
		b := o.arm.(payloadArm)
		return a.payload.Equals(b.payload)
	default:
		return true
	}
}

func (e *EitherValue) String() string {
	if p, ok := e.Payload(); ok {
		return e.Tag() + " { " + p.InnerString() + " }"
	}
	return e.Tag()
}

// InnerString is String without the braces around the payload.
func (e *EitherValue) InnerString() string {
	if p, ok := e.Payload(); ok {
		return p.InnerString()
	}
	return e.Tag()
}

// Clone returns a copy holding the same variant and a deep copy of the payload.
func (e *EitherValue) Clone() Value {
	if a, ok := e.arm.(payloadArm); ok {
		return &EitherValue{typ: e.typ, arm: payloadArm{v: a.v, payload: a.payload.Clone()}}
	}
	return &EitherValue{typ: e.typ, arm: e.arm}
}
