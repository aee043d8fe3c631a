package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/either/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// CodePrinter renders declarations in the language's surface syntax:
//
//	type Shape: either { Circle { radius: Integer }, Point }
//
// Either types that do not fit in the line width are broken one variant per line.
type CodePrinter struct {
	buf       bytes.Buffer
	indent    int
	lineWidth int // max line width (0 = unlimited)
	column    int // current column position
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{indent: 0, lineWidth: 100, column: 0}
}

func NewCodePrinterWithWidth(width int) *CodePrinter {
	return &CodePrinter{indent: 0, lineWidth: width, column: 0}
}

func (p *CodePrinter) SetLineWidth(width int) {
	p.lineWidth = width
}

// Print renders a single node with the default line width.
func Print(n ast.Node) string {
	p := NewCodePrinter()
	n.Accept(p)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	p.column = p.indent * 4
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	// Track column position
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

// flat renders n on a single line.
func flat(n ast.Node) string {
	p := NewCodePrinterWithWidth(0)
	n.Accept(p)
	return p.String()
}

func (p *CodePrinter) fits(s string) bool {
	return p.column+len(s) <= p.lineWidth
}

func (p *CodePrinter) VisitModule(n *ast.Module) {
	for i, td := range n.Types {
		if i > 0 {
			p.writeln()
		}
		td.Accept(p)
	}
}

func (p *CodePrinter) VisitTypeDeclaration(n *ast.TypeDeclaration) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("type ")
	if n.Name != nil {
		p.write(n.Name.Value)
	} else {
		p.write("<???>")
	}
	p.write(": ")
	if n.Type != nil {
		n.Type.Accept(p)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) VisitNamedType(n *ast.NamedType) {
	if n == nil || n.Name == nil {
		p.write("<???>")
		return
	}
	p.write(n.Name.Value)
}

func (p *CodePrinter) VisitRecordType(n *ast.RecordType) {
	if n == nil {
		p.write("nil")
		return
	}
	if len(n.Fields) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	for i, f := range n.Fields {
		if i > 0 {
			p.write(", ")
		}
		f.Accept(p)
	}
	p.write(" }")
}

func (p *CodePrinter) VisitFieldDecl(n *ast.FieldDecl) {
	p.write(n.ID.Value)
	p.write(": ")
	if n.Type != nil {
		n.Type.Accept(p)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) VisitEitherType(n *ast.EitherType) {
	if n == nil {
		p.write("nil")
		return
	}
	if p.lineWidth == 0 {
		p.eitherFlat(n)
		return
	}
	if s := flat(n); p.fits(s) {
		p.write(s)
		return
	}
	p.write("either {")
	p.indent++
	for _, v := range n.Fields {
		p.writeln()
		p.writeIndent()
		v.Accept(p)
		p.write(",")
	}
	p.indent--
	p.writeln()
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) eitherFlat(n *ast.EitherType) {
	if len(n.Fields) == 0 {
		p.write("either {}")
		return
	}
	p.write("either { ")
	for i, v := range n.Fields {
		if i > 0 {
			p.write(", ")
		}
		v.Accept(p)
	}
	p.write(" }")
}

func (p *CodePrinter) VisitVariantDecl(n *ast.VariantDecl) {
	p.write(n.ID.Value)
	if n.IsEnum() || n.Type == nil {
		return
	}
	p.write(" ")
	n.Type.Accept(p)
}
