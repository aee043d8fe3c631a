package decls

import (
	"fmt"

	"github.com/funvibe/either/internal/ast"
	"github.com/funvibe/either/internal/token"
	"github.com/samber/lo"
)

// validate checks the declarations for errors that need no type information.
func validate(mod *ast.Module, path string) error {
	v := &validator{path: path}
	mod.Accept(v)
	return v.err
}

// validator walks declarations and keeps the first error found.
type validator struct {
	path string
	err  error
}

func (v *validator) fail(t token.Token, format string, args ...interface{}) {
	if v.err != nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if pos := t.Position(); pos != "" {
		v.err = fmt.Errorf("%s:%s: %s", v.path, pos, msg)
		return
	}
	v.err = fmt.Errorf("%s: %s", v.path, msg)
}

func (v *validator) VisitModule(m *ast.Module) {
	if dups := lo.FindDuplicatesBy(m.Types, func(td *ast.TypeDeclaration) string { return td.Name.Value }); len(dups) > 0 {
		v.fail(dups[0].GetToken(), "duplicate type %q", dups[0].Name.Value)
	}
	for _, td := range m.Types {
		td.Accept(v)
	}
}

func (v *validator) VisitTypeDeclaration(td *ast.TypeDeclaration) {
	td.Type.Accept(v)
}

func (v *validator) VisitNamedType(nt *ast.NamedType) {}

func (v *validator) VisitRecordType(rt *ast.RecordType) {
	if dups := lo.FindDuplicatesBy(rt.Fields, func(f *ast.FieldDecl) string { return f.ID.Value }); len(dups) > 0 {
		v.fail(dups[0].GetToken(), "duplicate field %q", dups[0].ID.Value)
	}
	for _, f := range rt.Fields {
		f.Accept(v)
	}
}

func (v *validator) VisitFieldDecl(fd *ast.FieldDecl) {
	fd.Type.Accept(v)
}

func (v *validator) VisitEitherType(et *ast.EitherType) {
	if len(et.Fields) == 0 {
		v.fail(et.GetToken(), "either has no variants")
	}
	if dups := lo.FindDuplicatesBy(et.Fields, func(f *ast.VariantDecl) string { return f.ID.Value }); len(dups) > 0 {
		v.fail(dups[0].GetToken(), "duplicate variant %q", dups[0].ID.Value)
	}
	for _, f := range et.Fields {
		f.Accept(v)
	}
}

func (v *validator) VisitVariantDecl(vd *ast.VariantDecl) {
	if vd.Type != nil {
		vd.Type.Accept(v)
	}
}
