package typesystem

import (
	"github.com/funvibe/either/internal/ast"
	"github.com/google/uuid"
)

// TypeID identifies a type within a Registry. Variants refer to their
// parent either type by ID rather than by pointer.
type TypeID uuid.UUID

// NewTypeID returns a fresh random identifier.
func NewTypeID() TypeID { return TypeID(uuid.New()) }

func (id TypeID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether id was never assigned.
func (id TypeID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// Scope is the binding environment types are elaborated in.
// Payload-less variants are registered in it as named constants.
type Scope interface {
	AssignVar(name string, val Value) error
}

// Type is the interface for all type descriptors.
type Type interface {
	ID() TypeID
	Decl() ast.Node
	Scope() Scope
	Name() string // "" for anonymous types
	String() string
}

// ValueType is a Type that can produce runtime values.
type ValueType interface {
	Type
	MakeDefaultValue() Value
}

// Maker elaborates a type expression into a type descriptor.
// Either variants use it to build their payload shape.
type Maker interface {
	MakeType(decl ast.TypeExpr, scope Scope, name string) (ValueType, error)
}

// Resolver looks up types by ID.
type Resolver interface {
	Lookup(id TypeID) (Type, bool)
}

// base carries the attributes every type descriptor shares.
type base struct {
	id    TypeID
	decl  ast.Node
	scope Scope
	name  string
}

func newBase(decl ast.Node, scope Scope, name string) base {
	return base{id: NewTypeID(), decl: decl, scope: scope, name: name}
}

func (b *base) ID() TypeID     { return b.id }
func (b *base) Decl() ast.Node { return b.decl }
func (b *base) Scope() Scope   { return b.scope }
func (b *base) Name() string   { return b.name }
func (b *base) hasName() bool  { return b.name != "" }
