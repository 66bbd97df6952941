package ast

// Kind discriminates AST nodes.
type Kind string

const (
	KindComment             Kind = "Comment"
	KindBlockComment        Kind = "BlockComment"
	KindObject              Kind = "Object"
	KindInterface           Kind = "Interface"
	KindUnion               Kind = "Union"
	KindScalar              Kind = "Scalar"
	KindEnum                Kind = "Enum"
	KindInput               Kind = "Input"
	KindDirectiveDefinition Kind = "DirectiveDefinition"
	KindQuery               Kind = "Query"
	KindFragment            Kind = "Fragment"
	KindFieldSelection      Kind = "FieldSelection"
	KindFragmentSpread      Kind = "FragmentSpread"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Kind() Kind
	TokenLiteral() string
}

// Document represents a complete SDL or query document.
// Definitions are kept in source order, comments included.
type Document struct {
	Definitions []Definition `json:"definitions"`
}

// TokenLiteral returns the literal of the first definition.
func (d *Document) TokenLiteral() string {
	if len(d.Definitions) > 0 {
		return d.Definitions[0].TokenLiteral()
	}
	return ""
}

// Declarations returns the definitions that are not comments.
func (d *Document) Declarations() []Definition {
	var out []Definition
	for _, def := range d.Definitions {
		if !IsTrivia(def) {
			out = append(out, def)
		}
	}
	return out
}

// Lookup returns the first declaration named name.
func (d *Document) Lookup(name string) Definition {
	for _, def := range d.Declarations() {
		if def.TokenLiteral() == name {
			return def
		}
	}
	return nil
}

// Definition is an interface for all top-level definitions in a document.
type Definition interface {
	Node
	definitionNode()
}

// IsTrivia reports whether def is a comment.
func IsTrivia(def Definition) bool {
	k := def.Kind()
	return k == KindComment || k == KindBlockComment
}

// Comment is a # comment standing between declarations.
type Comment struct {
	Text string `json:"text"`
}

func (c *Comment) Kind() Kind           { return KindComment }
func (c *Comment) TokenLiteral() string { return c.Text }
func (c *Comment) definitionNode()      {}

// BlockComment is a """...""" string standing between declarations.
type BlockComment struct {
	Text string `json:"text"`
}

func (c *BlockComment) Kind() Kind           { return KindBlockComment }
func (c *BlockComment) TokenLiteral() string { return c.Text }
func (c *BlockComment) definitionNode()      {}
