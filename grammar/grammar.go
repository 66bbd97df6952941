// Package grammar describes syntax as data. A grammar is a graph of nodes
// that the engine package interprets over raw text; nothing here parses.
package grammar

import "strings"

// Kind identifies the type of a grammar node.
type Kind int

const (
	LiteralKind Kind = iota
	WordKind
	LineKind
	GroupKind
	ListKind
	BlockKind
	SyntaxKind
	ConditionKind
)

var kindNames = [...]string{"literal", "word", "line", "group", "list", "block", "node", "conditional"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a grammar node.
type Node interface {
	Kind() Kind
}

// Literal matches fixed text.
type Literal struct {
	Value string
}

// Word matches text up to, not including, the first occurrence of any End
// delimiter, or to the end of input when none occurs.
type Word struct {
	End []string
}

// Line matches text up to the next newline, which is consumed.
type Line struct{}

// Group matches text between Start and the first following End. When
// Escape is set, an End right after Escape does not close the group.
type Group struct {
	Start, End string
	Escape     string
}

// List matches Of repeatedly, separated by Separator. An empty list is a
// match unless NonEmpty is set.
type List struct {
	Of        Node
	Separator string
	NonEmpty  bool
}

// Block matches a region opened by Start and closed by End. Each child is
// chosen by the first case whose prefix starts the remaining input, else
// Default. An empty Start matches anywhere; an empty End closes only at end
// of input. A Separator, when set, may follow each child once.
type Block struct {
	Start, End string
	Cases      []Case
	Default    Node
	Separator  string
}

// Case maps a lookahead prefix to the node parsed when it matches.
type Case struct {
	Prefix string
	Node   Node
}

// Syntax is a named composite node made of ordered child slots.
type Syntax struct {
	Name     string
	Children []Child
}

// Child is a slot of a Syntax node. A Repeat slot matches zero or more
// times; an Optional slot is omitted when it does not match.
type Child struct {
	Name     string
	Node     Node
	Repeat   bool
	Optional bool
}

// Condition selects Pass when the remaining input starts with Test, as
// decided by HasPrefix, and Fail otherwise. Nothing is consumed by the test.
type Condition struct {
	Test       string
	Pass, Fail Node
}

func (*Literal) Kind() Kind   { return LiteralKind }
func (*Word) Kind() Kind      { return WordKind }
func (*Line) Kind() Kind      { return LineKind }
func (*Group) Kind() Kind     { return GroupKind }
func (*List) Kind() Kind      { return ListKind }
func (*Block) Kind() Kind     { return BlockKind }
func (*Syntax) Kind() Kind    { return SyntaxKind }
func (*Condition) Kind() Kind { return ConditionKind }

// HasPrefix reports whether input starts with prefix. A prefix that is a
// word only matches a whole word: "type" matches "type A" and "type{" but
// not "types".
func HasPrefix(input, prefix string) bool {
	if !strings.HasPrefix(input, prefix) {
		return false
	}
	return !isWord(prefix) || len(input) == len(prefix) || !IsNameByte(input[len(prefix)])
}

// IsNameByte reports whether c can continue a name.
func IsNameByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || '0' <= c && c <= '9'
}

// Lookup returns the node for input. Cases are tested in order with
// HasPrefix and the first match wins, even when a later prefix is longer.
// Lookup returns Default when no case matches; it may be nil.
func (b *Block) Lookup(input string) Node {
	for _, c := range b.Cases {
		if HasPrefix(input, c.Prefix) {
			return c.Node
		}
	}
	return b.Default
}

// Keywords returns the case prefixes that are plain words.
func (b *Block) Keywords() []string {
	var out []string
	for _, c := range b.Cases {
		if isWord(c.Prefix) {
			out = append(out, c.Prefix)
		}
	}
	return out
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_') {
			return false
		}
	}
	return true
}
