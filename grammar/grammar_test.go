package grammar

import (
	"reflect"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Literal{}, "literal"},
		{&Word{}, "word"},
		{&Line{}, "line"},
		{&Group{}, "group"},
		{&List{}, "list"},
		{&Block{}, "block"},
		{&Syntax{}, "node"},
		{&Condition{}, "conditional"},
	}
	for _, tt := range tests {
		if got := tt.node.Kind().String(); got != tt.want {
			t.Errorf("%T.Kind() = %q, want %q", tt.node, got, tt.want)
		}
	}
	if got := Kind(42).String(); got != "unknown" {
		t.Errorf("Kind(42) = %q", got)
	}
}

func TestBlock_LookupFirstCaseWins(t *testing.T) {
	short := &Literal{Value: "."}
	long := &Literal{Value: "..."}
	fallback := &Word{}
	b := &Block{
		Cases:   []Case{{Prefix: ".", Node: short}, {Prefix: "...", Node: long}},
		Default: fallback,
	}
	if got := b.Lookup("...Frag"); got != short {
		t.Errorf("expected the first registered case, got %#v", got)
	}
	if got := b.Lookup("type X"); got != fallback {
		t.Errorf("expected the default, got %#v", got)
	}

	b.Cases[0], b.Cases[1] = b.Cases[1], b.Cases[0]
	if got := b.Lookup("...Frag"); got != long {
		t.Errorf("expected the longer prefix once registered first, got %#v", got)
	}
}

func TestBlock_LookupWholeWords(t *testing.T) {
	in := &Literal{Value: "in"}
	input := &Literal{Value: "input"}
	b := &Block{Cases: []Case{{Prefix: "in", Node: in}, {Prefix: "input", Node: input}}}
	tests := []struct {
		input string
		want  Node
	}{
		{"input X {}", input},
		{"in X", in},
		{"in{", in},
		{"in", in},
		{"inputs {}", nil},
		{"in2", nil},
	}
	for _, tt := range tests {
		if got := b.Lookup(tt.input); got != tt.want {
			t.Errorf("Lookup(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		input, prefix string
		want          bool
	}{
		{"type A", "type", true},
		{"type\tA", "type", true},
		{"types", "type", false},
		{"type_", "type", false},
		{"on\nUser", "on", true},
		{"onSale", "on", false},
		{"{ id }", "{", true},
		{"...x", "...", true},
		{`"doc"`, `"`, true},
		{"enum", "type", false},
	}
	for _, tt := range tests {
		if got := HasPrefix(tt.input, tt.prefix); got != tt.want {
			t.Errorf("HasPrefix(%q, %q) = %v, want %v", tt.input, tt.prefix, got, tt.want)
		}
	}
}

func TestBlock_LookupWithoutDefault(t *testing.T) {
	b := &Block{Cases: []Case{{Prefix: "type", Node: &Literal{Value: "type"}}}}
	if got := b.Lookup("foo Bar"); got != nil {
		t.Errorf("expected nil, got %#v", got)
	}
}

func TestDocument_Keywords(t *testing.T) {
	want := []string{"scalar", "input", "enum", "type", "interface", "union", "directive"}
	if got := Document().Keywords(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}
	want = []string{"query", "mutation", "subscription", "fragment"}
	if got := QueryDocument().Keywords(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}
}

func TestDocument_Shared(t *testing.T) {
	if Document() != Document() {
		t.Error("Document should return the same grammar")
	}
	if QueryDocument() != QueryDocument() {
		t.Error("QueryDocument should return the same grammar")
	}
}

func TestDocument_Shape(t *testing.T) {
	doc := Document()
	if doc.Start != "" || doc.End != "" || doc.Default != nil {
		t.Fatalf("document should be an unbounded block without default: %+v", doc)
	}
	node, ok := doc.Lookup("union U = A").(*Syntax)
	if !ok || node.Name != "Union" {
		t.Fatalf("unexpected union node: %#v", node)
	}
	members := node.Children[len(node.Children)-1]
	list, ok := members.Node.(*List)
	if !ok || !list.NonEmpty || list.Separator != "|" {
		t.Errorf("union members should be a non-empty pipe list: %#v", members.Node)
	}
	if c, ok := doc.Lookup(`"""x"""`).(*Syntax); !ok || c.Name != "BlockComment" {
		t.Errorf("block comment case missing: %#v", c)
	}
	if c, ok := doc.Lookup(`"x"`).(*Syntax); !ok || c.Name != "BlockComment" {
		t.Errorf("description case missing: %#v", c)
	}
	if got := doc.Lookup("types { a: ID }"); got != nil {
		t.Errorf("a longer word must not select a keyword case: %#v", got)
	}
}
