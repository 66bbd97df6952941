package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/grammar"
)

var ws = []string{" ", "\t", "\r", "\n"}

func mustMatch(t *testing.T, src string, node grammar.Node) Result {
	t.Helper()
	res, err := Parse(src, node)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return res
}

func TestParse_Literal(t *testing.T) {
	res := mustMatch(t, "  type User", &grammar.Literal{Value: "type"})
	if res.Value.Text != "type" || res.Remaining != " User" {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.Value.Pos != 2 {
		t.Errorf("expected position 2, got %d", res.Value.Pos)
	}
	_, err := Parse("enum", &grammar.Literal{Value: "type"})
	if !errors.Is(err, errs.ErrNoMatch) {
		t.Errorf("expected NoMatch, got %v", err)
	}
	if _, err := Parse("onSale", &grammar.Literal{Value: "on"}); !errors.Is(err, errs.ErrNoMatch) {
		t.Errorf("a word literal must not match inside a longer name, got %v", err)
	}
	res = mustMatch(t, "on\tUser", &grammar.Literal{Value: "on"})
	if res.Remaining != "\tUser" {
		t.Errorf("unexpected remaining: %q", res.Remaining)
	}
}

func TestParse_Word(t *testing.T) {
	tests := []struct {
		input, word, rest string
		end               []string
	}{
		{"User { id }", "User", " { id }", ws},
		{"  User{", "User", "{", []string{"{"}},
		{"Date", "Date", "", ws},
		{`"No longer supported"` + "\n)", `"No longer supported"`, "\n)", []string{"\n", ")"}},
		{"a, b", "a", ", b", []string{",", ")"}},
	}
	for _, tt := range tests {
		res := mustMatch(t, tt.input, &grammar.Word{End: tt.end})
		if res.Value.Text != tt.word || res.Remaining != tt.rest {
			t.Errorf("Word(%q) = %q rest %q, want %q rest %q", tt.input, res.Value.Text, res.Remaining, tt.word, tt.rest)
		}
	}
}

func TestParse_EmptyWordIsNoMatch(t *testing.T) {
	for _, input := range []string{"", "   ", "}"} {
		if _, err := Parse(input, &grammar.Word{End: []string{"}"}}); !errors.Is(err, errs.ErrNoMatch) {
			t.Errorf("Word(%q): expected NoMatch, got %v", input, err)
		}
	}
}

func TestParse_Line(t *testing.T) {
	res := mustMatch(t, " comment\nscalar A", &grammar.Line{})
	if res.Value.Text != " comment" || res.Remaining != "scalar A" {
		t.Errorf("unexpected result: %+v", res)
	}
	res = mustMatch(t, "last", &grammar.Line{})
	if res.Value.Text != "last" || res.Remaining != "" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestParse_Group(t *testing.T) {
	res := mustMatch(t, `"""a "b" c""" rest`, &grammar.Group{Start: `"""`, End: `"""`})
	if res.Value.Text != `a "b" c` || res.Remaining != " rest" {
		t.Errorf("unexpected result: %+v", res)
	}
	if _, err := Parse(`"""open`, &grammar.Group{Start: `"""`, End: `"""`}); !errors.Is(err, errs.ErrNoMatch) {
		t.Errorf("expected NoMatch, got %v", err)
	}
}

func TestParse_GroupEscape(t *testing.T) {
	str := &grammar.Group{Start: `"`, End: `"`, Escape: `\`}
	res := mustMatch(t, `"say \"hi\", then go" rest`, str)
	if res.Value.Text != `say \"hi\", then go` || res.Remaining != " rest" {
		t.Errorf("unexpected result: %+v", res)
	}
	res = mustMatch(t, `"back\\" rest`, str)
	if res.Value.Text != `back\\` || res.Remaining != " rest" {
		t.Errorf("an escaped backslash must not escape the quote: %+v", res)
	}
	if _, err := Parse(`"open \"`, str); !errors.Is(err, errs.ErrNoMatch) {
		t.Errorf("expected NoMatch, got %v", err)
	}
}

func TestParse_List(t *testing.T) {
	list := &grammar.List{Of: &grammar.Word{End: append(ws, "|")}, Separator: "|"}
	res := mustMatch(t, "User | Post|Comment\nnext", list)
	if got := texts(res.Value); !reflect.DeepEqual(got, []string{"User", "Post", "Comment"}) {
		t.Errorf("unexpected items: %v", got)
	}
	if res.Remaining != "\nnext" {
		t.Errorf("unexpected remaining: %q", res.Remaining)
	}

	res = mustMatch(t, "User |", list)
	if len(res.Value.Items) != 1 || res.Remaining != " |" {
		t.Errorf("trailing separator should stay unconsumed: %+v", res)
	}

	res = mustMatch(t, "", list)
	if res.Value.Kind != Sequence || len(res.Value.Items) != 0 {
		t.Errorf("expected an empty list: %+v", res.Value)
	}
	list.NonEmpty = true
	if _, err := Parse("", list); !errors.Is(err, errs.ErrNoMatch) {
		t.Errorf("expected NoMatch for an empty non-empty list, got %v", err)
	}
}

func TestParse_BlockFirstCaseWins(t *testing.T) {
	keyword := func(name, kw string) *grammar.Syntax {
		return &grammar.Syntax{Name: name, Children: []grammar.Child{
			{Name: "kind", Node: &grammar.Literal{Value: kw}},
			{Name: "rest", Node: &grammar.Word{End: ws}, Optional: true},
		}}
	}
	b := &grammar.Block{Cases: []grammar.Case{
		{Prefix: ".", Node: keyword("Dot", ".")},
		{Prefix: "...", Node: keyword("Spread", "...")},
	}}
	res := mustMatch(t, "...", b)
	if len(res.Value.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Value.Items))
	}
	got := res.Value.Items[0]
	if got.Name != "Dot" || got.Child("rest").Text != ".." {
		t.Errorf("expected the first registered case to win: %v", got)
	}
}

func TestParse_BlockKeywordsAreWholeWords(t *testing.T) {
	b := &grammar.Block{Cases: []grammar.Case{
		{Prefix: "type", Node: &grammar.Syntax{Name: "Type", Children: []grammar.Child{
			{Name: "kind", Node: &grammar.Literal{Value: "type"}},
			{Name: "name", Node: &grammar.Word{End: ws}},
		}}},
	}}
	res := mustMatch(t, "type A\ntype\tB", b)
	if len(res.Value.Items) != 2 {
		t.Fatalf("expected 2 items, got %v", res.Value)
	}
	_, err := Parse("types A", b)
	var e *errs.Error
	if !errors.As(err, &e) || e.Kind != errs.UnknownKeyword {
		t.Fatalf("expected UnknownKeyword, got %v", err)
	}
	if e.Offset != 0 || e.Fragment != "types A" {
		t.Errorf("unexpected error location: %+v", e)
	}
}

func TestParse_BlockSeparatorAndEnd(t *testing.T) {
	b := &grammar.Block{Start: "(", End: ")", Default: &grammar.Word{End: []string{",", ")"}}, Separator: ","}
	res := mustMatch(t, "(a, b ,c) tail", b)
	if got := texts(res.Value); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected items: %v", got)
	}
	if res.Remaining != " tail" {
		t.Errorf("unexpected remaining: %q", res.Remaining)
	}
	if _, err := Parse("(a, b", b); !errors.Is(err, errs.ErrNoMatch) {
		t.Errorf("expected NoMatch for an unclosed block, got %v", err)
	}
}

func TestParse_BlockWithoutProgress(t *testing.T) {
	empty := &grammar.Syntax{Name: "Empty", Children: []grammar.Child{
		{Name: "x", Node: &grammar.Literal{Value: "x"}, Optional: true},
	}}
	b := &grammar.Block{Start: "{", End: "}", Default: empty}
	if _, err := Parse("{ y }", b); !errors.Is(err, errs.ErrNoMatch) {
		t.Errorf("expected NoMatch, got %v", err)
	}
}

func TestParse_BlockUnknownKeyword(t *testing.T) {
	_, err := Parse("tpye User {}", grammar.Document())
	var e *errs.Error
	if !errors.As(err, &e) || e.Kind != errs.UnknownKeyword {
		t.Fatalf("expected UnknownKeyword, got %v", err)
	}
	if e.Message != `unknown keyword "tpye" (did you mean "type"?)` {
		t.Errorf("unexpected message: %s", e.Message)
	}
}

func TestParse_SyntaxSlots(t *testing.T) {
	node := &grammar.Syntax{Name: "Scalar", Children: []grammar.Child{
		{Name: "kind", Node: &grammar.Literal{Value: "scalar"}},
		{Name: "name", Node: &grammar.Word{End: append(ws, "@")}},
		{Name: "directives", Node: &grammar.Syntax{Name: "Directive", Children: []grammar.Child{
			{Name: "at", Node: &grammar.Literal{Value: "@"}},
			{Name: "name", Node: &grammar.Word{End: append(ws, "@")}},
		}}, Repeat: true},
		{Name: "comment", Node: &grammar.Literal{Value: "#"}, Optional: true},
	}}
	res := mustMatch(t, "scalar Date @a @b", node)
	v := res.Value
	if v.Kind != Record || v.Name != "Scalar" {
		t.Fatalf("unexpected record: %v", v)
	}
	if v.Child("name").Text != "Date" {
		t.Errorf("unexpected name: %v", v.Child("name"))
	}
	if n := len(v.Child("directives").Items); n != 2 {
		t.Errorf("expected 2 directives, got %d", n)
	}
	if v.Has("comment") {
		t.Error("unmatched optional slot should be absent")
	}

	if _, err := Parse("scalar", node); !errors.Is(err, errs.ErrNoMatch) {
		t.Errorf("missing required slot: expected NoMatch, got %v", err)
	}
}

func TestParse_Condition(t *testing.T) {
	cond := &grammar.Condition{
		Test: "on",
		Pass: &grammar.Literal{Value: "on"},
		Fail: &grammar.Word{End: ws},
	}
	for _, input := range []string{"  on User", "on\nUser", "on\tUser", "on{"} {
		res := mustMatch(t, input, cond)
		if res.Value.Text != "on" {
			t.Errorf("Condition(%q): unexpected pass result: %+v", input, res)
		}
	}
	res := mustMatch(t, "onSale", cond)
	if res.Value.Text != "onSale" {
		t.Errorf("unexpected fail result: %+v", res)
	}
}

func TestParse_FurthestFailure(t *testing.T) {
	_, err := ParseSchema("type A { id: }")
	var e *errs.Error
	if !errors.As(err, &e) || e.Kind != errs.UnexpectedToken {
		t.Fatalf("expected UnexpectedToken, got %v", err)
	}
	if e.Offset != 13 {
		t.Errorf("expected the error at the missing type, got offset %d", e.Offset)
	}
}

func TestValue_String(t *testing.T) {
	res := mustMatch(t, "union U = A | B", grammar.Document())
	want := `[Union{kind:"union" name:"U" directives:[] equals:"=" members:["A" "B"]}]`
	if got := res.Value.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}
