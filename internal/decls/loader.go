// Package decls loads type declarations from YAML files.
//
// A declaration file lists named types:
//
//	types:
//	  - name: Shape
//	    type:
//	      either:
//	        - name: Circle
//	          record:
//	            - name: radius
//	              type: Integer
//	        - name: Point
//
// A type expression is either a scalar naming a builtin or previously
// declared type, or a mapping with a single "record" or "either" key.
// A variant with neither "record" nor "type" is a bare tag.
package decls

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/funvibe/either/internal/ast"
	"github.com/funvibe/either/internal/config"
	"github.com/funvibe/either/internal/token"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a declaration file.
func Load(path string) (*ast.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading declarations %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses declaration file content from bytes.
// The path argument is used only for error messages.
func Parse(data []byte, path string) (*ast.Module, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	l := &loader{path: path}
	mod, err := l.module(&doc)
	if err != nil {
		return nil, err
	}
	if err := validate(mod, path); err != nil {
		return nil, err
	}
	return mod, nil
}

// Find searches for a declaration file starting from dir and walking up
// to parent directories.
// Returns the path to the file and nil error if found,
// or empty string and nil error if not found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range config.DeclFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

type loader struct {
	path string
}

func (l *loader) errorf(n *yaml.Node, format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d:%d: %s", l.path, n.Line, n.Column, fmt.Sprintf(format, args...))
}

func tok(n *yaml.Node, lexeme string) token.Token {
	return token.Token{Lexeme: lexeme, Line: n.Line, Column: n.Column}
}

func (l *loader) module(doc *yaml.Node) (*ast.Module, error) {
	mod := &ast.Module{File: l.path}
	if doc.Kind == 0 {
		// Empty file
		return mod, nil
	}
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return mod, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, l.errorf(root, "expected a mapping with a types key")
	}
	types := lookup(root, "types")
	if types == nil {
		return mod, nil
	}
	if types.Kind != yaml.SequenceNode {
		return nil, l.errorf(types, "types must be a list")
	}
	for i, n := range types.Content {
		td, err := l.typeDecl(n, i)
		if err != nil {
			return nil, err
		}
		mod.Types = append(mod.Types, td)
	}
	return mod, nil
}

func (l *loader) typeDecl(n *yaml.Node, i int) (*ast.TypeDeclaration, error) {
	if n.Kind != yaml.MappingNode {
		return nil, l.errorf(n, "types[%d]: expected a mapping", i)
	}
	name, err := l.name(n, fmt.Sprintf("types[%d]", i))
	if err != nil {
		return nil, err
	}
	typeNode := lookup(n, "type")
	if typeNode == nil {
		return nil, l.errorf(n, "types[%d] (%s): type is required", i, name.Value)
	}
	typ, err := l.typeExpr(typeNode)
	if err != nil {
		return nil, err
	}
	return &ast.TypeDeclaration{Token: tok(n, "type"), Name: name, Type: typ}, nil
}

func (l *loader) name(n *yaml.Node, where string) (*ast.Identifier, error) {
	v := lookup(n, "name")
	if v == nil || v.Kind != yaml.ScalarNode || v.Value == "" {
		return nil, l.errorf(n, "%s: name is required", where)
	}
	return &ast.Identifier{Token: tok(v, v.Value), Value: v.Value}, nil
}

func (l *loader) typeExpr(n *yaml.Node) (ast.TypeExpr, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return nil, l.errorf(n, "empty type name")
		}
		return &ast.NamedType{Token: tok(n, n.Value), Name: &ast.Identifier{Token: tok(n, n.Value), Value: n.Value}}, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, l.errorf(n, "type expression must have exactly one of record or either")
		}
		key, body := n.Content[0], n.Content[1]
		switch key.Value {
		case "record":
			return l.record(key, body)
		case "either":
			return l.either(key, body)
		default:
			return nil, l.errorf(key, "unknown type expression %q", key.Value)
		}
	default:
		return nil, l.errorf(n, "expected a type name or a record/either mapping")
	}
}

func (l *loader) record(key, body *yaml.Node) (*ast.RecordType, error) {
	rt := &ast.RecordType{Token: tok(key, "{")}
	if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
		return rt, nil
	}
	if body.Kind != yaml.SequenceNode {
		return nil, l.errorf(body, "record fields must be a list")
	}
	for i, n := range body.Content {
		if n.Kind != yaml.MappingNode {
			return nil, l.errorf(n, "record field %d: expected a mapping", i)
		}
		id, err := l.name(n, fmt.Sprintf("record field %d", i))
		if err != nil {
			return nil, err
		}
		typeNode := lookup(n, "type")
		if typeNode == nil {
			return nil, l.errorf(n, "record field %s: type is required", id.Value)
		}
		typ, err := l.typeExpr(typeNode)
		if err != nil {
			return nil, err
		}
		rt.Fields = append(rt.Fields, &ast.FieldDecl{Token: id.Token, ID: id, Type: typ})
	}
	return rt, nil
}

func (l *loader) either(key, body *yaml.Node) (*ast.EitherType, error) {
	et := &ast.EitherType{Token: tok(key, "either")}
	if body.Kind != yaml.SequenceNode {
		return nil, l.errorf(body, "either variants must be a list")
	}
	for i, n := range body.Content {
		vd, err := l.variant(n, i)
		if err != nil {
			return nil, err
		}
		et.Fields = append(et.Fields, vd)
	}
	return et, nil
}

func (l *loader) variant(n *yaml.Node, i int) (*ast.VariantDecl, error) {
	// A bare scalar is shorthand for a payload-less variant.
	if n.Kind == yaml.ScalarNode && n.Value != "" {
		id := &ast.Identifier{Token: tok(n, n.Value), Value: n.Value}
		return &ast.VariantDecl{Token: id.Token, Kind: config.EnumVariantKind, ID: id}, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, l.errorf(n, "variant %d: expected a name or a mapping", i)
	}
	id, err := l.name(n, fmt.Sprintf("variant %d", i))
	if err != nil {
		return nil, err
	}
	vd := &ast.VariantDecl{Token: id.Token, Kind: config.EnumVariantKind, ID: id}

	recordNode, typeNode := lookup(n, "record"), lookup(n, "type")
	switch {
	case recordNode != nil && typeNode != nil:
		return nil, l.errorf(n, "variant %s: record and type are mutually exclusive", id.Value)
	case recordNode != nil:
		rt, err := l.record(keyOf(n, "record"), recordNode)
		if err != nil {
			return nil, err
		}
		vd.Kind, vd.Type = config.RecordVariantKind, rt
	case typeNode != nil:
		typ, err := l.typeExpr(typeNode)
		if err != nil {
			return nil, err
		}
		vd.Kind, vd.Type = config.RecordVariantKind, typ
	}
	return vd, nil
}

// lookup returns the value node for key in mapping n, or nil.
func lookup(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// keyOf returns the key node for key in mapping n, or nil.
func keyOf(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i]
		}
	}
	return nil
}
