package ast

// ObjectType represents "type Name implements A, B { ... }".
type ObjectType struct {
	Name       string       `json:"name"`
	Interfaces []string     `json:"interfaces"`
	Directives []*Directive `json:"directives,omitempty"`
	Fields     []*Field     `json:"fields"`
}

func (t *ObjectType) Kind() Kind           { return KindObject }
func (t *ObjectType) TokenLiteral() string { return t.Name }
func (t *ObjectType) definitionNode()      {}

// InterfaceType represents "interface Name implements A { ... }".
type InterfaceType struct {
	Name       string       `json:"name"`
	Interfaces []string     `json:"interfaces"`
	Directives []*Directive `json:"directives,omitempty"`
	Fields     []*Field     `json:"fields"`
}

func (t *InterfaceType) Kind() Kind           { return KindInterface }
func (t *InterfaceType) TokenLiteral() string { return t.Name }
func (t *InterfaceType) definitionNode()      {}

// UnionType represents "union Name = A | B". It has at least one member.
type UnionType struct {
	Name       string       `json:"name"`
	Directives []*Directive `json:"directives,omitempty"`
	Members    []string     `json:"members"`
}

func (t *UnionType) Kind() Kind           { return KindUnion }
func (t *UnionType) TokenLiteral() string { return t.Name }
func (t *UnionType) definitionNode()      {}

// ScalarType represents "scalar Name".
type ScalarType struct {
	Name       string       `json:"name"`
	Directives []*Directive `json:"directives,omitempty"`
}

func (t *ScalarType) Kind() Kind           { return KindScalar }
func (t *ScalarType) TokenLiteral() string { return t.Name }
func (t *ScalarType) definitionNode()      {}

// EnumType represents "enum Name { A B C }".
type EnumType struct {
	Name       string       `json:"name"`
	Directives []*Directive `json:"directives,omitempty"`
	Values     []string     `json:"values"`
}

func (t *EnumType) Kind() Kind           { return KindEnum }
func (t *EnumType) TokenLiteral() string { return t.Name }
func (t *EnumType) definitionNode()      {}

// InputType represents "input Name { ... }".
type InputType struct {
	Name       string        `json:"name"`
	Directives []*Directive  `json:"directives,omitempty"`
	Fields     []*InputField `json:"fields"`
}

func (t *InputType) Kind() Kind           { return KindInput }
func (t *InputType) TokenLiteral() string { return t.Name }
func (t *InputType) definitionNode()      {}

// DirectiveDefinition represents "directive @name(args) on A | B".
type DirectiveDefinition struct {
	Name      string      `json:"name"`
	Arguments []*Argument `json:"arguments,omitempty"`
	Locations []string    `json:"locations"`
}

func (d *DirectiveDefinition) Kind() Kind           { return KindDirectiveDefinition }
func (d *DirectiveDefinition) TokenLiteral() string { return d.Name }
func (d *DirectiveDefinition) definitionNode()      {}

// Field is a field of an object or interface type.
type Field struct {
	Name       string       `json:"name"`
	Arguments  []*Argument  `json:"arguments"`
	Type       TypeRef      `json:"type"`
	Directives []*Directive `json:"directives,omitempty"`
}

// TokenLiteral returns the field name.
func (f *Field) TokenLiteral() string {
	return f.Name
}

// Argument is a field or directive-definition argument.
type Argument struct {
	Name       string       `json:"name"`
	Type       TypeRef      `json:"type"`
	Default    string       `json:"default,omitempty"` // Source text of the default value, "" if absent
	Directives []*Directive `json:"directives,omitempty"`
}

// TokenLiteral returns the argument name.
func (a *Argument) TokenLiteral() string {
	return a.Name
}

// InputField is a field of an input type.
type InputField struct {
	Name       string       `json:"name"`
	Type       TypeRef      `json:"type"`
	Default    string       `json:"default,omitempty"` // Source text of the default value, "" if absent
	Directives []*Directive `json:"directives"`
}

// TokenLiteral returns the field name.
func (f *InputField) TokenLiteral() string {
	return f.Name
}

// Directive is an applied directive such as @deprecated(reason: "x").
type Directive struct {
	Name      string           `json:"name"`
	Arguments []*ArgumentValue `json:"arguments,omitempty"`
}

// TokenLiteral returns the directive name.
func (d *Directive) TokenLiteral() string {
	return d.Name
}

// ArgumentValue is a "name: value" pair. Value is kept as source text.
type ArgumentValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TokenLiteral returns the argument name.
func (a *ArgumentValue) TokenLiteral() string {
	return a.Name
}
