package ast

import "github.com/funvibe/either/internal/token"

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all declaration nodes.
type Node interface {
	TokenProvider
	TokenLiteral() string
	Accept(v Visitor)
}

// Visitor walks declaration nodes.
type Visitor interface {
	VisitModule(m *Module)
	VisitTypeDeclaration(td *TypeDeclaration)
	VisitNamedType(nt *NamedType)
	VisitRecordType(rt *RecordType)
	VisitFieldDecl(fd *FieldDecl)
	VisitEitherType(et *EitherType)
	VisitVariantDecl(vd *VariantDecl)
}

// Module is the root node produced by the declaration loader.
type Module struct {
	File  string // Source file path
	Types []*TypeDeclaration
}

func (m *Module) Accept(v Visitor)      { v.VisitModule(m) }
func (m *Module) TokenLiteral() string  { return m.File }
func (m *Module) GetToken() token.Token { return token.Token{Lexeme: m.File} }

// Identifier is a declared name.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) String() string { return i.Value }

// NewIdentifier builds an identifier with a synthesized token.
func NewIdentifier(name string) *Identifier {
	return &Identifier{Token: token.Token{Lexeme: name}, Value: name}
}
