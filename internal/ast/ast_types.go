package ast

import (
	"github.com/funvibe/either/internal/config"
	"github.com/funvibe/either/internal/token"
)

// --- Type System Nodes ---

// TypeExpr represents a type expression.
// E.g., Integer, { x: Integer }, either { A, B { x: Integer } }
type TypeExpr interface {
	Node
	typeNode()
}

// NamedType represents a reference to a builtin or previously declared type, e.g. 'Integer'.
type NamedType struct {
	Token token.Token
	Name  *Identifier
}

func (nt *NamedType) Accept(v Visitor)      { v.VisitNamedType(nt) }
func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// FieldDecl is one named field of a record type.
type FieldDecl struct {
	Token token.Token
	ID    *Identifier
	Type  TypeExpr
}

func (fd *FieldDecl) Accept(v Visitor)      { v.VisitFieldDecl(fd) }
func (fd *FieldDecl) TokenLiteral() string  { return fd.Token.Lexeme }
func (fd *FieldDecl) GetToken() token.Token { return fd.Token }

// RecordType represents a record type, e.g. { x: Integer, y: Boolean }.
// Field order is declaration order.
type RecordType struct {
	Token  token.Token // The '{' token
	Fields []*FieldDecl
}

func (rt *RecordType) Accept(v Visitor)      { v.VisitRecordType(rt) }
func (rt *RecordType) typeNode()             {}
func (rt *RecordType) TokenLiteral() string  { return rt.Token.Lexeme }
func (rt *RecordType) GetToken() token.Token { return rt.Token }

// VariantDecl is a single alternative of an either type.
// E.g., 'Point' (an enum variant) or 'Circle { radius: Integer }'.
type VariantDecl struct {
	Token token.Token
	Kind  string // config.EnumVariantKind or config.RecordVariantKind
	ID    *Identifier
	Type  TypeExpr // nil for enum variants
}

func (vd *VariantDecl) Accept(v Visitor)      { v.VisitVariantDecl(vd) }
func (vd *VariantDecl) TokenLiteral() string  { return vd.Token.Lexeme }
func (vd *VariantDecl) GetToken() token.Token { return vd.Token }

// IsEnum reports whether the variant is a bare tag.
func (vd *VariantDecl) IsEnum() bool { return vd.Kind == config.EnumVariantKind }

// EitherType represents a sum type, e.g. either { Circle { radius: Integer }, Point }.
type EitherType struct {
	Token  token.Token // The 'either' token
	Fields []*VariantDecl
}

func (et *EitherType) Accept(v Visitor)      { v.VisitEitherType(et) }
func (et *EitherType) typeNode()             {}
func (et *EitherType) TokenLiteral() string  { return et.Token.Lexeme }
func (et *EitherType) GetToken() token.Token { return et.Token }

// TypeDeclaration represents a 'type' definition.
// E.g., 'type Shape: either { Circle { radius: Integer }, Point }'
type TypeDeclaration struct {
	Token token.Token // the 'type' token
	Name  *Identifier
	Type  TypeExpr
}

func (td *TypeDeclaration) Accept(v Visitor)      { v.VisitTypeDeclaration(td) }
func (td *TypeDeclaration) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TypeDeclaration) GetToken() token.Token { return td.Token }

// --- Constructors used by hand-built declarations ---

// Named returns a reference to the type called name.
func Named(name string) *NamedType {
	return &NamedType{Token: token.Token{Lexeme: name}, Name: NewIdentifier(name)}
}

// Field returns a record field declaration.
func Field(name string, typ TypeExpr) *FieldDecl {
	return &FieldDecl{Token: token.Token{Lexeme: name}, ID: NewIdentifier(name), Type: typ}
}

// Record returns a record type with the given fields.
func Record(fields ...*FieldDecl) *RecordType {
	return &RecordType{Token: token.Token{Lexeme: "{"}, Fields: fields}
}

// EnumVariant returns a bare-tag variant declaration.
func EnumVariant(name string) *VariantDecl {
	return &VariantDecl{Token: token.Token{Lexeme: name}, Kind: config.EnumVariantKind, ID: NewIdentifier(name)}
}

// RecordVariant returns a variant carrying a payload of type typ.
func RecordVariant(name string, typ TypeExpr) *VariantDecl {
	return &VariantDecl{Token: token.Token{Lexeme: name}, Kind: config.RecordVariantKind, ID: NewIdentifier(name), Type: typ}
}

// Either returns an either type with the given variants.
func Either(variants ...*VariantDecl) *EitherType {
	return &EitherType{Token: token.Token{Lexeme: "either"}, Fields: variants}
}

// Declare returns a named type declaration.
func Declare(name string, typ TypeExpr) *TypeDeclaration {
	return &TypeDeclaration{Token: token.Token{Lexeme: "type"}, Name: NewIdentifier(name), Type: typ}
}
