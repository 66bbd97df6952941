package engine

import (
	"strings"

	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/grammar"
)

// ParseSchema parses SDL source with the grammar engine. It produces the
// same document as the token parser for the declarations both accept.
func ParseSchema(src string) (*ast.Document, error) {
	l := &lowerer{src: src}
	return l.document(grammar.Document(), l.schemaDefinition)
}

// ParseQuery parses a query document with the grammar engine.
func ParseQuery(src string) (*ast.Document, error) {
	l := &lowerer{src: src}
	return l.document(grammar.QueryDocument(), l.queryDefinition)
}

// lowerer turns engine values into AST nodes.
type lowerer struct {
	src string
}

func (l *lowerer) document(g grammar.Node, lower func(Value) (ast.Definition, error)) (*ast.Document, error) {
	res, err := Parse(l.src, g)
	if err != nil {
		return nil, l.boundary(err)
	}
	doc := &ast.Document{}
	for _, item := range res.Value.Items {
		def, err := lower(item)
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
	}
	return doc, nil
}

// boundary converts an engine NoMatch into the error reported to callers.
func (l *lowerer) boundary(err error) error {
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.NoMatch {
		return err
	}
	return errs.Format(errs.UnexpectedToken, l.src, e.Offset, "unexpected input at position %d (%s)", e.Offset, e.Message)
}

func (l *lowerer) comment(v Value) (ast.Definition, bool) {
	switch v.Name {
	case "Comment":
		return &ast.Comment{Text: v.Child("body").Text}, true
	case "BlockComment":
		return &ast.BlockComment{Text: v.Child("body").Text}, true
	}
	return nil, false
}

func (l *lowerer) schemaDefinition(v Value) (ast.Definition, error) {
	if c, ok := l.comment(v); ok {
		return c, nil
	}
	name := v.Child("name").Text
	directives := l.directives(v.Child("directives"))
	switch v.Name {
	case "Scalar":
		return &ast.ScalarType{Name: name, Directives: directives}, nil
	case "Type", "Interface":
		var interfaces []string
		if impl, ok := v.Get("implements"); ok {
			interfaces = texts(impl.Child("interfaces"))
		}
		var fields []*ast.Field
		for _, item := range v.Child("body").Items {
			if item.Name != "FieldDefinition" {
				continue
			}
			f, err := l.field(item)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
		if v.Name == "Interface" {
			return &ast.InterfaceType{Name: name, Interfaces: interfaces, Directives: directives, Fields: fields}, nil
		}
		return &ast.ObjectType{Name: name, Interfaces: interfaces, Directives: directives, Fields: fields}, nil
	case "Union":
		return &ast.UnionType{Name: name, Directives: directives, Members: texts(v.Child("members"))}, nil
	case "Enum":
		var values []string
		for _, item := range v.Child("body").Items {
			if item.Name == "EnumValue" {
				values = append(values, item.Child("name").Text)
			}
		}
		return &ast.EnumType{Name: name, Directives: directives, Values: values}, nil
	case "Input":
		input := &ast.InputType{Name: name, Directives: directives}
		for _, item := range v.Child("body").Items {
			if item.Name != "InputFieldDefinition" {
				continue
			}
			typ, def, dirs, err := l.inputValue(item)
			if err != nil {
				return nil, err
			}
			input.Fields = append(input.Fields, &ast.InputField{Name: item.Child("name").Text, Type: typ, Default: def, Directives: dirs})
		}
		return input, nil
	case "DirectiveDefinition":
		args, err := l.arguments(v.Child("args"))
		if err != nil {
			return nil, err
		}
		return &ast.DirectiveDefinition{Name: name, Arguments: args, Locations: texts(v.Child("locations"))}, nil
	}
	return nil, errs.Format(errs.UnexpectedToken, l.src, v.Pos, "unexpected %s", v.Name)
}

func (l *lowerer) field(v Value) (*ast.Field, error) {
	typ, err := l.typeRef(v.Child("type"))
	if err != nil {
		return nil, err
	}
	args, err := l.arguments(v.Child("args"))
	if err != nil {
		return nil, err
	}
	return &ast.Field{
		Name:       v.Child("name").Text,
		Arguments:  args,
		Type:       typ,
		Directives: l.directives(v.Child("directives")),
	}, nil
}

func (l *lowerer) arguments(seq Value) ([]*ast.Argument, error) {
	var args []*ast.Argument
	for _, item := range seq.Items {
		if item.Name != "InputFieldDefinition" {
			continue
		}
		typ, def, dirs, err := l.inputValue(item)
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument{Name: item.Child("name").Text, Type: typ, Default: def, Directives: dirs})
	}
	return args, nil
}

func (l *lowerer) inputValue(v Value) (ast.TypeRef, string, []*ast.Directive, error) {
	typ, err := l.typeRef(v.Child("type"))
	if err != nil {
		return ast.TypeRef{}, "", nil, err
	}
	var def string
	if d, ok := v.Get("default"); ok {
		def = valueText(d.Child("value"))
	}
	return typ, def, l.directives(v.Child("directives")), nil
}

// valueText spells a value the way the token parser does: strings keep
// their quotes and escapes, lists are joined with ", " and objects get
// their braces back.
func valueText(v Value) string {
	switch v.Name {
	case "ObjectValue":
		return "{" + strings.TrimSpace(v.Child("body").Text) + "}"
	case "StringValue":
		return `"` + v.Child("body").Text + `"`
	case "BlockStringValue":
		return `"""` + v.Child("body").Text + `"""`
	case "ListValue":
		items := make([]string, 0, len(v.Child("items").Items))
		for _, item := range v.Child("items").Items {
			items = append(items, valueText(item))
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return v.Text
}

func (l *lowerer) typeRef(v Value) (ast.TypeRef, error) {
	text := v.Child("name").Text
	if v.Name == "ListType" {
		text = "[" + v.Child("item").Text + "]"
	}
	if v.Has("nonNull") {
		text += "!"
	}
	ref, err := ast.ParseTypeRef(text)
	if err != nil {
		return ast.TypeRef{}, errs.New(errs.UnexpectedToken, l.src, v.Pos, err.Error())
	}
	return ref, nil
}

func (l *lowerer) directives(seq Value) []*ast.Directive {
	var out []*ast.Directive
	for _, item := range seq.Items {
		out = append(out, &ast.Directive{Name: item.Child("name").Text, Arguments: argumentValues(item.Child("args"))})
	}
	return out
}

func argumentValues(seq Value) []*ast.ArgumentValue {
	var out []*ast.ArgumentValue
	for _, item := range seq.Items {
		out = append(out, &ast.ArgumentValue{
			Name:  item.Child("name").Text,
			Value: valueText(item.Child("value").Child("value")),
		})
	}
	return out
}

func texts(seq Value) []string {
	out := make([]string, 0, len(seq.Items))
	for _, item := range seq.Items {
		out = append(out, item.Text)
	}
	return out
}

func (l *lowerer) queryDefinition(v Value) (ast.Definition, error) {
	if c, ok := l.comment(v); ok {
		return c, nil
	}
	switch v.Name {
	case "Query":
		q := &ast.Query{Operation: "query", Name: v.Child("name").Text, Directives: l.directives(v.Child("directives"))}
		if kind, ok := v.Get("kind"); ok {
			q.Operation = kind.Text
		}
		for _, item := range v.Child("variables").Items {
			if item.Name != "InputFieldDefinition" {
				continue
			}
			typ, def, _, err := l.inputValue(item)
			if err != nil {
				return nil, err
			}
			name := strings.TrimPrefix(item.Child("name").Text, "$")
			q.Variables = append(q.Variables, &ast.VariableDefinition{Name: name, Type: typ, Default: def})
		}
		q.Selections = l.selections(v.Child("selections"))
		return q, nil
	case "Fragment":
		return &ast.Fragment{
			Name:          v.Child("name").Text,
			TypeCondition: v.Child("type").Text,
			Selections:    l.selections(v.Child("selections")),
		}, nil
	}
	return nil, errs.Format(errs.UnexpectedToken, l.src, v.Pos, "unexpected %s", v.Name)
}

func (l *lowerer) selections(seq Value) []ast.Selection {
	var out []ast.Selection
	for _, item := range seq.Items {
		switch item.Name {
		case "FieldSelection":
			f := &ast.FieldSelection{
				Name:       item.Child("name").Text,
				Arguments:  argumentValues(item.Child("args")),
				Directives: l.directives(item.Child("directives")),
				Selections: l.selections(item.Child("selections")),
			}
			if alias, ok := item.Get("alias"); ok {
				f.Alias, f.Name = f.Name, alias.Child("name").Text
			}
			out = append(out, f)
		case "FragmentSpread":
			frag := item.Child("fragment")
			if frag.Kind == Record {
				out = append(out, &ast.FragmentSpread{Inline: &ast.InlineFragment{
					TypeCondition: frag.Child("type").Text,
					Selections:    l.selections(frag.Child("selections")),
				}})
				continue
			}
			out = append(out, &ast.FragmentSpread{Name: frag.Text})
		}
	}
	return out
}
