// Package printer renders AST documents back to source text.
package printer

import (
	"strings"

	"github.com/Protocol-Lattice/sdl/ast"
)

const indent = "  "

// Print renders an SDL or query document. Declarations are separated by a
// blank line; comments are printed on their own line before the next
// declaration. Parsing the output yields the same document.
func Print(doc *ast.Document) string {
	p := &printer{}
	for i, def := range doc.Definitions {
		if i > 0 {
			p.sb.WriteString("\n")
			if !ast.IsTrivia(doc.Definitions[i-1]) {
				p.sb.WriteString("\n")
			}
		}
		p.definition(def)
	}
	if len(doc.Definitions) > 0 {
		p.sb.WriteString("\n")
	}
	return p.sb.String()
}

type printer struct {
	sb strings.Builder
}

func (p *printer) write(parts ...string) {
	for _, s := range parts {
		p.sb.WriteString(s)
	}
}

func (p *printer) definition(def ast.Definition) {
	switch d := def.(type) {
	case *ast.Comment:
		p.write("#", d.Text)
	case *ast.BlockComment:
		p.write(`"""`, d.Text, `"""`)
	case *ast.ScalarType:
		p.write("scalar ", d.Name, directives(d.Directives))
	case *ast.ObjectType:
		p.fielded("type", d.Name, d.Interfaces, d.Directives, d.Fields)
	case *ast.InterfaceType:
		p.fielded("interface", d.Name, d.Interfaces, d.Directives, d.Fields)
	case *ast.UnionType:
		p.write("union ", d.Name, directives(d.Directives), " = ", strings.Join(d.Members, " | "))
	case *ast.EnumType:
		p.write("enum ", d.Name, directives(d.Directives))
		if len(d.Values) == 0 {
			p.write(" {}")
			return
		}
		p.write(" {\n")
		for _, v := range d.Values {
			p.write(indent, v, "\n")
		}
		p.write("}")
	case *ast.InputType:
		p.write("input ", d.Name, directives(d.Directives))
		if len(d.Fields) == 0 {
			return
		}
		p.write(" {\n")
		for _, f := range d.Fields {
			p.write(indent, inputValue(f.Name, f.Type, f.Default, f.Directives), "\n")
		}
		p.write("}")
	case *ast.DirectiveDefinition:
		p.write("directive @", d.Name, arguments(d.Arguments), " on ", strings.Join(d.Locations, " | "))
	case *ast.Query:
		p.write(d.Operation)
		if d.Name != "" {
			p.write(" ", d.Name)
		}
		if len(d.Variables) > 0 {
			vars := make([]string, len(d.Variables))
			for i, v := range d.Variables {
				vars[i] = inputValue("$"+v.Name, v.Type, v.Default, nil)
			}
			p.write("(", strings.Join(vars, ", "), ")")
		}
		p.write(directives(d.Directives))
		p.selections(d.Selections, 0)
	case *ast.Fragment:
		p.write("fragment ", d.Name, " on ", d.TypeCondition)
		p.selections(d.Selections, 0)
	}
}

func (p *printer) fielded(keyword, name string, interfaces []string, dirs []*ast.Directive, fields []*ast.Field) {
	p.write(keyword, " ", name)
	if len(interfaces) > 0 {
		p.write(" implements ", strings.Join(interfaces, ", "))
	}
	p.write(directives(dirs))
	if len(fields) == 0 {
		return
	}
	p.write(" {\n")
	for _, f := range fields {
		p.write(indent, f.Name, arguments(f.Arguments), ": ", f.Type.String(), directives(f.Directives), "\n")
	}
	p.write("}")
}

// selections always prints braces so an empty set is kept.
func (p *printer) selections(sels []ast.Selection, depth int) {
	pad := strings.Repeat(indent, depth)
	p.write(" {\n")
	for _, sel := range sels {
		p.write(pad, indent)
		switch s := sel.(type) {
		case *ast.FieldSelection:
			if s.Alias != "" {
				p.write(s.Alias, ": ")
			}
			p.write(s.Name, argumentValues(s.Arguments), directives(s.Directives))
			if len(s.Selections) > 0 {
				p.selections(s.Selections, depth+1)
			}
		case *ast.FragmentSpread:
			if s.Inline != nil {
				p.write("... on ", s.Inline.TypeCondition)
				p.selections(s.Inline.Selections, depth+1)
				break
			}
			p.write("...", s.Name)
		}
		p.write("\n")
	}
	p.write(pad, "}")
}

func inputValue(name string, typ ast.TypeRef, def string, dirs []*ast.Directive) string {
	s := name + ": " + typ.String()
	if def != "" {
		s += " = " + def
	}
	return s + directives(dirs)
}

func arguments(args []*ast.Argument) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = inputValue(a.Name, a.Type, a.Default, a.Directives)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func argumentValues(args []*ast.ArgumentValue) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + ": " + a.Value
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func directives(dirs []*ast.Directive) string {
	var sb strings.Builder
	for _, d := range dirs {
		sb.WriteString(" @" + d.Name + argumentValues(d.Arguments))
	}
	return sb.String()
}
