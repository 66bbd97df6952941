// Package crosscheck compares a parsed SDL document with the reading of an
// independent GraphQL parser.
package crosscheck

import (
	"fmt"
	"strings"

	gql "github.com/vektah/gqlparser/v2/ast"
	gqlparser "github.com/vektah/gqlparser/v2/parser"

	"github.com/Protocol-Lattice/sdl/ast"
)

// Mismatch is a difference between the two readings of one declaration.
type Mismatch struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

func (m Mismatch) String() string {
	return m.Name + ": " + m.Detail
}

var kinds = map[ast.Kind]gql.DefinitionKind{
	ast.KindScalar:    gql.Scalar,
	ast.KindObject:    gql.Object,
	ast.KindInterface: gql.Interface,
	ast.KindUnion:     gql.Union,
	ast.KindEnum:      gql.Enum,
	ast.KindInput:     gql.InputObject,
}

// Compare parses src with the reference parser and reports every
// declaration of doc that it reads differently. Declarations only the
// reference parser sees are reported too. An error means the reference
// parser rejected src.
func Compare(name, src string, doc *ast.Document) ([]Mismatch, error) {
	ref, gqlErr := gqlparser.ParseSchema(&gql.Source{Name: name, Input: src})
	if gqlErr != nil {
		return nil, fmt.Errorf("reference parser: %w", gqlErr)
	}

	c := &comparer{
		defs: make(map[string]*gql.Definition),
		dirs: make(map[string]*gql.DirectiveDefinition),
		seen: make(map[string]bool),
	}
	for _, def := range ref.Definitions {
		c.defs[def.Name] = def
	}
	for _, dir := range ref.Directives {
		c.dirs[dir.Name] = dir
	}

	for _, def := range doc.Declarations() {
		c.declaration(def)
	}
	for _, def := range ref.Definitions {
		if !c.seen[def.Name] {
			c.report(def.Name, "only in reference (%s)", def.Kind)
		}
	}
	for _, dir := range ref.Directives {
		if !c.seen["@"+dir.Name] {
			c.report("@"+dir.Name, "only in reference (DIRECTIVE)")
		}
	}
	return c.out, nil
}

type comparer struct {
	defs map[string]*gql.Definition
	dirs map[string]*gql.DirectiveDefinition
	seen map[string]bool
	out  []Mismatch
}

func (c *comparer) report(name, format string, args ...interface{}) {
	c.out = append(c.out, Mismatch{Name: name, Detail: fmt.Sprintf(format, args...)})
}

func (c *comparer) declaration(def ast.Definition) {
	if d, ok := def.(*ast.DirectiveDefinition); ok {
		c.directive(d)
		return
	}
	name := def.TokenLiteral()
	c.seen[name] = true
	ref, ok := c.defs[name]
	if !ok {
		c.report(name, "missing in reference")
		return
	}
	if want := kinds[def.Kind()]; ref.Kind != want {
		c.report(name, "kind %s, reference has %s", want, ref.Kind)
		return
	}
	switch d := def.(type) {
	case *ast.ObjectType:
		c.list(name, "interfaces", d.Interfaces, ref.Interfaces)
		c.fields(name, d.Fields, ref.Fields)
	case *ast.InterfaceType:
		c.list(name, "interfaces", d.Interfaces, ref.Interfaces)
		c.fields(name, d.Fields, ref.Fields)
	case *ast.UnionType:
		c.list(name, "members", d.Members, ref.Types)
	case *ast.EnumType:
		values := make([]string, len(ref.EnumValues))
		for i, v := range ref.EnumValues {
			values[i] = v.Name
		}
		c.list(name, "values", d.Values, values)
	case *ast.InputType:
		fields := make([]*ast.Field, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = &ast.Field{Name: f.Name, Type: f.Type}
		}
		c.fields(name, fields, ref.Fields)
	}
}

func (c *comparer) directive(d *ast.DirectiveDefinition) {
	name := "@" + d.Name
	c.seen[name] = true
	ref, ok := c.dirs[d.Name]
	if !ok {
		c.report(name, "missing in reference")
		return
	}
	locations := make([]string, len(ref.Locations))
	for i, l := range ref.Locations {
		locations[i] = string(l)
	}
	c.list(name, "locations", d.Locations, locations)
	c.arguments(name, d.Arguments, ref.Arguments)
}

func (c *comparer) fields(owner string, fields []*ast.Field, ref gql.FieldList) {
	if len(fields) != len(ref) {
		c.report(owner, "%d fields, reference has %d", len(fields), len(ref))
		return
	}
	for i, f := range fields {
		r := ref[i]
		path := owner + "." + f.Name
		if f.Name != r.Name {
			c.report(path, "reference has field %s here", r.Name)
			continue
		}
		if got, want := f.Type.String(), r.Type.String(); got != want {
			c.report(path, "type %s, reference has %s", got, want)
		}
		c.arguments(path, f.Arguments, r.Arguments)
	}
}

func (c *comparer) arguments(owner string, args []*ast.Argument, ref gql.ArgumentDefinitionList) {
	if len(args) != len(ref) {
		c.report(owner, "%d arguments, reference has %d", len(args), len(ref))
		return
	}
	for i, a := range args {
		r := ref[i]
		if a.Name != r.Name {
			c.report(owner, "argument %s, reference has %s", a.Name, r.Name)
			continue
		}
		if got, want := a.Type.String(), r.Type.String(); got != want {
			c.report(owner+"("+a.Name+")", "type %s, reference has %s", got, want)
		}
	}
}

func (c *comparer) list(owner, what string, got, want []string) {
	if strings.Join(got, ",") != strings.Join(want, ",") {
		c.report(owner, "%s [%s], reference has [%s]", what, strings.Join(got, " "), strings.Join(want, " "))
	}
}
