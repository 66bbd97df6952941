package ast

// Query represents an operation: "query Name($v: T) { ... }". Operation is
// "query", "mutation" or "subscription".
type Query struct {
	Operation  string                `json:"operation"`
	Name       string                `json:"name,omitempty"`
	Variables  []*VariableDefinition `json:"variables,omitempty"`
	Directives []*Directive          `json:"directives,omitempty"`
	Selections []Selection           `json:"selections"`
}

func (q *Query) Kind() Kind { return KindQuery }

// TokenLiteral returns the operation name or type.
func (q *Query) TokenLiteral() string {
	if q.Name != "" {
		return q.Name
	}
	return q.Operation
}

func (q *Query) definitionNode() {}

// Fragment represents "fragment Name on Type { ... }".
type Fragment struct {
	Name          string      `json:"name"`
	TypeCondition string      `json:"on"`
	Selections    []Selection `json:"selections"`
}

func (f *Fragment) Kind() Kind           { return KindFragment }
func (f *Fragment) TokenLiteral() string { return f.Name }
func (f *Fragment) definitionNode()      {}

// VariableDefinition represents "$name: Type = default".
type VariableDefinition struct {
	Name    string  `json:"name"` // Variable name without $
	Type    TypeRef `json:"type"`
	Default string  `json:"default,omitempty"`
}

// TokenLiteral returns the variable name.
func (v *VariableDefinition) TokenLiteral() string {
	return v.Name
}

// Selection is a member of a selection body.
type Selection interface {
	Node
	selectionNode()
}

// FieldSelection represents "alias: name(args) @dir { ... }".
type FieldSelection struct {
	Alias      string           `json:"alias,omitempty"`
	Name       string           `json:"name"`
	Arguments  []*ArgumentValue `json:"arguments,omitempty"`
	Directives []*Directive     `json:"directives,omitempty"`
	Selections []Selection      `json:"selections,omitempty"`
}

func (f *FieldSelection) Kind() Kind           { return KindFieldSelection }
func (f *FieldSelection) TokenLiteral() string { return f.Name }
func (f *FieldSelection) selectionNode()       {}

// FragmentSpread is either "...Name" or an inline "... on Type { ... }".
type FragmentSpread struct {
	Name   string          `json:"name,omitempty"`
	Inline *InlineFragment `json:"inline,omitempty"`
}

func (s *FragmentSpread) Kind() Kind { return KindFragmentSpread }

// TokenLiteral returns the fragment name or the inline type condition.
func (s *FragmentSpread) TokenLiteral() string {
	if s.Inline != nil {
		return s.Inline.TypeCondition
	}
	return s.Name
}

func (s *FragmentSpread) selectionNode() {}

// InlineFragment is the body of an inline fragment spread.
type InlineFragment struct {
	TypeCondition string      `json:"on"`
	Selections    []Selection `json:"selections"`
}
