package grammar

import "sync"

func newQueryDocument() *Block {
	dir := directive()

	// The selection set refers to itself through fields and inline
	// fragments, so it is declared first and filled in below.
	selections := &Block{Start: "{", End: "}", Separator: ","}

	alias := &Syntax{Name: "Alias", Children: []Child{
		{Name: "colon", Node: &Literal{Value: ":"}},
		{Name: "name", Node: until("(", "{", "}", "@")},
	}}
	field := &Syntax{Name: "FieldSelection", Children: []Child{
		{Name: "name", Node: until(":", "(", "{", "}", "@")},
		{Name: "alias", Node: alias, Optional: true},
		{Name: "args", Node: &Block{Start: "(", End: ")", Default: argument(), Separator: ","}, Optional: true},
		{Name: "directives", Node: dir, Repeat: true},
		{Name: "selections", Node: selections, Optional: true},
	}}
	inline := &Syntax{Name: "InlineFragment", Children: []Child{
		{Name: "on", Node: &Literal{Value: "on"}},
		{Name: "type", Node: until("{", "@")},
		{Name: "directives", Node: dir, Repeat: true},
		{Name: "selections", Node: selections},
	}}
	spread := &Syntax{Name: "FragmentSpread", Children: []Child{
		{Name: "spread", Node: &Literal{Value: "..."}},
		{Name: "fragment", Node: &Condition{Test: "on", Pass: inline, Fail: until("}", "@")}},
		{Name: "directives", Node: dir, Repeat: true},
	}}
	selections.Cases = append(trivia(), Case{Prefix: "...", Node: spread})
	selections.Default = field

	operation := func(keyword string) *Syntax {
		return &Syntax{Name: "Query", Children: []Child{
			{Name: "kind", Node: &Literal{Value: keyword}},
			{Name: "name", Node: until("(", "{", "@"), Optional: true},
			{Name: "variables", Node: arguments(dir), Optional: true},
			{Name: "directives", Node: dir, Repeat: true},
			{Name: "selections", Node: selections},
		}}
	}

	return &Block{Cases: append(trivia(),
		Case{Prefix: "{", Node: &Syntax{Name: "Query", Children: []Child{
			{Name: "selections", Node: selections},
		}}},
		Case{Prefix: "query", Node: operation("query")},
		Case{Prefix: "mutation", Node: operation("mutation")},
		Case{Prefix: "subscription", Node: operation("subscription")},
		Case{Prefix: "fragment", Node: &Syntax{Name: "Fragment", Children: []Child{
			{Name: "kind", Node: &Literal{Value: "fragment"}},
			{Name: "name", Node: until()},
			{Name: "on", Node: &Literal{Value: "on"}},
			{Name: "type", Node: until("{", "@")},
			{Name: "directives", Node: dir, Repeat: true},
			{Name: "selections", Node: selections},
		}}},
	)}
}

var (
	queryOnce sync.Once
	query     *Block
)

// QueryDocument returns the grammar of a query document: comments,
// operations and fragment definitions. Like Document, it is shared.
func QueryDocument() *Block {
	queryOnce.Do(func() { query = newQueryDocument() })
	return query
}
