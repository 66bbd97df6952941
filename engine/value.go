package engine

import "strings"

// ValueKind discriminates parse values.
type ValueKind int

const (
	Text ValueKind = iota
	Sequence
	Record
)

// Value is the result of matching a grammar node. Literals, words, lines
// and groups produce Text; lists and blocks produce a Sequence; syntax
// nodes produce a Record of named fields.
type Value struct {
	Kind   ValueKind `json:"-"`
	Pos    int       `json:"pos"`
	Text   string    `json:"text,omitempty"`
	Items  []Value   `json:"items,omitempty"`
	Name   string    `json:"name,omitempty"`
	Fields []Field   `json:"fields,omitempty"`
}

// Field is a named slot of a Record.
type Field struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// Get returns the field named name.
func (v Value) Get(name string) (Value, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether the record has a field named name.
func (v Value) Has(name string) bool {
	_, ok := v.Get(name)
	return ok
}

// Child returns the field named name, or the zero Value.
func (v Value) Child(name string) Value {
	c, _ := v.Get(name)
	return c
}

// String renders the value in a compact debugging form.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.Kind {
	case Text:
		sb.WriteString(`"` + v.Text + `"`)
	case Sequence:
		sb.WriteString("[")
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteString(" ")
			}
			item.write(sb)
		}
		sb.WriteString("]")
	case Record:
		sb.WriteString(v.Name + "{")
		for i, f := range v.Fields {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(f.Name + ":")
			f.Value.write(sb)
		}
		sb.WriteString("}")
	}
}
