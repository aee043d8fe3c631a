package typesystem

import (
	"strconv"

	"github.com/funvibe/either/internal/config"
)

// PrimitiveType is a builtin scalar type. Its values box a single Go value.
type PrimitiveType[T comparable] struct {
	base
	format func(T) string
}

func newPrimitive[T comparable](name string, format func(T) string) *PrimitiveType[T] {
	return &PrimitiveType[T]{base: newBase(nil, nil, name), format: format}
}

func (t *PrimitiveType[T]) String() string { return t.name }

// MakeDefaultValue returns a fresh value holding T's zero value.
func (t *PrimitiveType[T]) MakeDefaultValue() Value {
	var zero T
	return &PrimitiveValue[T]{typ: t, V: zero}
}

// New returns a fresh value holding v.
func (t *PrimitiveType[T]) New(v T) *PrimitiveValue[T] {
	return &PrimitiveValue[T]{typ: t, V: v}
}

// PrimitiveValue is a mutable box around a scalar.
type PrimitiveValue[T comparable] struct {
	typ *PrimitiveType[T]
	V   T
}

type (
	IntegerValue = PrimitiveValue[int64]
	StringValue  = PrimitiveValue[string]
	BooleanValue = PrimitiveValue[bool]
)

// Builtin types
var (
	Integer = newPrimitive[int64](config.IntegerTypeName, func(v int64) string {
		return strconv.FormatInt(v, 10)
	})
	String  = newPrimitive[string](config.StringTypeName, strconv.Quote)
	Boolean = newPrimitive[bool](config.BooleanTypeName, strconv.FormatBool)
)

// Builtins maps builtin type names to their descriptors.
var Builtins = map[string]ValueType{
	config.IntegerTypeName: Integer,
	config.StringTypeName:  String,
	config.BooleanTypeName: Boolean,
}

func (p *PrimitiveValue[T]) Type() ValueType     { return p.typ }
func (p *PrimitiveValue[T]) String() string      { return p.typ.format(p.V) }
func (p *PrimitiveValue[T]) InnerString() string { return p.String() }

// Get returns the boxed value.
func (p *PrimitiveValue[T]) Get() T { return p.V }

// Set replaces the boxed value.
func (p *PrimitiveValue[T]) Set(v T) { p.V = v }

func (p *PrimitiveValue[T]) Equals(other Value) bool {
	o, ok := other.(*PrimitiveValue[T])
	return ok && o.typ == p.typ && o.V == p.V
}

func (p *PrimitiveValue[T]) Assign(other Value) error {
	o, ok := other.(*PrimitiveValue[T])
	if !ok || o.typ != p.typ {
		return NewInternalError("Cannot assign value of %s to %s", describe(other), p.typ.name)
	}
	p.V = o.V
	return nil
}

func (p *PrimitiveValue[T]) Clone() Value {
	return &PrimitiveValue[T]{typ: p.typ, V: p.V}
}
