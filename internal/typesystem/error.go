package typesystem

import (
	"fmt"

	"github.com/funvibe/either/internal/ast"
)

// InternalError indicates an inconsistency the type checker should have
// ruled out, such as assigning a value to a variable of another type.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}

func NewInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownTypeError indicates a reference to a type that is neither builtin nor declared
type UnknownTypeError struct {
	Name string
	Pos  string
}

func (e *UnknownTypeError) Error() string {
	return withPos(e.Pos, fmt.Sprintf("unknown type: %s", e.Name))
}

func NewUnknownTypeError(n *ast.NamedType) *UnknownTypeError {
	return &UnknownTypeError{Name: n.Name.Value, Pos: n.GetToken().Position()}
}

// UnknownVariantError indicates a variant name that the either type does not declare
type UnknownVariantError struct {
	Type string
	Name string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s has no variant %s", e.Type, e.Name)
}

// UnknownFieldError indicates a field name that the record type does not declare
type UnknownFieldError struct {
	Type string
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s has no field %s", e.Type, e.Name)
}

// DuplicateError indicates a name declared twice in the same namespace.
// Kind is one of "type", "variant", "field" or "constant".
type DuplicateError struct {
	Kind string
	Name string
	Pos  string
}

func (e *DuplicateError) Error() string {
	return withPos(e.Pos, fmt.Sprintf("duplicate %s %q", e.Kind, e.Name))
}

// DeclError indicates a malformed declaration node.
type DeclError struct {
	Msg string
	Pos string
}

func (e *DeclError) Error() string {
	return withPos(e.Pos, e.Msg)
}

func NewDeclError(n ast.Node, format string, args ...interface{}) *DeclError {
	pos := ""
	if n != nil {
		pos = n.GetToken().Position()
	}
	return &DeclError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func withPos(pos, msg string) string {
	if pos == "" {
		return msg
	}
	return pos + ": " + msg
}
