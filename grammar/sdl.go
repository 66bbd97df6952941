package grammar

import "sync"

// space lists the whitespace characters that end a word.
var space = []string{" ", "\t", "\r", "\n"}

// until returns a word that ends at whitespace or any of extra.
func until(extra ...string) *Word {
	end := make([]string, 0, len(space)+len(extra))
	end = append(end, space...)
	return &Word{End: append(end, extra...)}
}

// trivia are the comment and description cases shared by every block.
func trivia() []Case {
	return []Case{
		{Prefix: `"""`, Node: &Syntax{Name: "BlockComment", Children: []Child{
			{Name: "body", Node: &Group{Start: `"""`, End: `"""`, Escape: `\`}},
		}}},
		{Prefix: `"`, Node: &Syntax{Name: "BlockComment", Children: []Child{
			{Name: "body", Node: &Group{Start: `"`, End: `"`, Escape: `\`}},
		}}},
		{Prefix: "#", Node: &Syntax{Name: "Comment", Children: []Child{
			{Name: "kind", Node: &Literal{Value: "#"}},
			{Name: "body", Node: &Line{}},
		}}},
	}
}

// quoted tries the string forms before other.
func quoted(other Node) Node {
	return &Condition{
		Test: `"""`,
		Pass: &Syntax{Name: "BlockStringValue", Children: []Child{
			{Name: "body", Node: &Group{Start: `"""`, End: `"""`, Escape: `\`}},
		}},
		Fail: &Condition{
			Test: `"`,
			Pass: &Syntax{Name: "StringValue", Children: []Child{
				{Name: "body", Node: &Group{Start: `"`, End: `"`, Escape: `\`}},
			}},
			Fail: other,
		},
	}
}

// value matches an argument or default value ending at any of end.
// Strings and lists are matched as a unit, so a comma or parenthesis
// inside them does not end the value.
func value(end ...string) Node {
	list := &Syntax{Name: "ListValue"}
	item := quoted(&Condition{Test: "[", Pass: list, Fail: &Word{End: []string{",", "]"}}})
	list.Children = []Child{
		{Name: "open", Node: &Literal{Value: "["}},
		{Name: "items", Node: &List{Of: item, Separator: ","}},
		{Name: "close", Node: &Literal{Value: "]"}},
	}
	return quoted(&Condition{Test: "[", Pass: list, Fail: &Word{End: end}})
}

// typeRef matches Name, Name!, [Name], [Name]!, [Name!] and [Name!]! with
// any spacing between the parts. A named type ends at any of end.
func typeRef(end ...string) Node {
	nonNull := Child{Name: "nonNull", Node: &Literal{Value: "!"}, Optional: true}
	return &Condition{
		Test: "[",
		Pass: &Syntax{Name: "ListType", Children: []Child{
			{Name: "item", Node: &Group{Start: "[", End: "]"}},
			nonNull,
		}},
		Fail: &Syntax{Name: "NamedType", Children: []Child{
			{Name: "name", Node: until(append([]string{"!"}, end...)...)},
			nonNull,
		}},
	}
}

// argument matches "name: value" inside a directive or a field selection.
func argument() *Syntax {
	return &Syntax{Name: "Argument", Children: []Child{
		{Name: "name", Node: until(":", ")")},
		{Name: "value", Node: &Syntax{Name: "ArgumentValue", Children: []Child{
			{Name: "colon", Node: &Literal{Value: ":"}},
			{Name: "value", Node: value(",", ")")},
		}}},
	}}
}

// directive matches "@name(arg: value, ...)".
func directive() *Syntax {
	return &Syntax{Name: "Directive", Children: []Child{
		{Name: "at", Node: &Literal{Value: "@"}},
		{Name: "name", Node: until("(", ")", ",", "{", "}")},
		{Name: "args", Node: &Block{Start: "(", End: ")", Default: argument(), Separator: ","}, Optional: true},
	}}
}

// defaultValue matches "= value". Object values are matched as a unit so
// their braces do not end the word.
func defaultValue() *Syntax {
	object := &Syntax{Name: "ObjectValue", Children: []Child{
		{Name: "open", Node: &Literal{Value: "{"}},
		{Name: "body", Node: &Word{End: []string{"}"}}, Optional: true},
		{Name: "close", Node: &Literal{Value: "}"}},
	}}
	return &Syntax{Name: "DefaultValue", Children: []Child{
		{Name: "equals", Node: &Literal{Value: "="}},
		{Name: "value", Node: &Condition{
			Test: "{",
			Pass: object,
			Fail: value(",", ")", "@", "\n", "}"),
		}},
	}}
}

// inputValue matches "name: Type = default @dir", used for arguments,
// input fields and variables.
func inputValue(dir *Syntax) *Syntax {
	return &Syntax{Name: "InputFieldDefinition", Children: []Child{
		{Name: "name", Node: until(":", ")")},
		{Name: "colon", Node: &Literal{Value: ":"}},
		{Name: "type", Node: typeRef(",", ")", "@", "}", "=")},
		{Name: "default", Node: defaultValue(), Optional: true},
		{Name: "directives", Node: dir, Repeat: true},
	}}
}

// arguments matches "(name: Type, ...)".
func arguments(dir *Syntax) *Block {
	return &Block{Start: "(", End: ")", Cases: trivia(), Default: inputValue(dir), Separator: ","}
}

func newDocument() *Block {
	dir := directive()

	field := &Syntax{Name: "FieldDefinition", Children: []Child{
		{Name: "name", Node: until(":", "(")},
		{Name: "args", Node: arguments(dir), Optional: true},
		{Name: "colon", Node: &Literal{Value: ":"}},
		{Name: "type", Node: typeRef(",", ")", "@", "}")},
		{Name: "directives", Node: dir, Repeat: true},
	}}
	fields := &Block{Start: "{", End: "}", Cases: trivia(), Default: field, Separator: ","}

	implements := &Syntax{Name: "Implements", Children: []Child{
		{Name: "kind", Node: &Literal{Value: "implements"}},
		{Name: "interfaces", Node: &List{Of: until(",", "&", "{", "@"), Separator: ",", NonEmpty: true}},
	}}
	fielded := func(name, keyword string) *Syntax {
		return &Syntax{Name: name, Children: []Child{
			{Name: "kind", Node: &Literal{Value: keyword}},
			{Name: "name", Node: until("{", "@")},
			{Name: "implements", Node: implements, Optional: true},
			{Name: "directives", Node: dir, Repeat: true},
			{Name: "body", Node: fields, Optional: true},
		}}
	}

	enumValue := &Syntax{Name: "EnumValue", Children: []Child{
		{Name: "name", Node: until("}", ",", "@")},
		{Name: "directives", Node: dir, Repeat: true},
	}}

	return &Block{Cases: append(trivia(),
		Case{Prefix: "scalar", Node: &Syntax{Name: "Scalar", Children: []Child{
			{Name: "kind", Node: &Literal{Value: "scalar"}},
			{Name: "name", Node: until("@")},
			{Name: "directives", Node: dir, Repeat: true},
		}}},
		Case{Prefix: "input", Node: &Syntax{Name: "Input", Children: []Child{
			{Name: "kind", Node: &Literal{Value: "input"}},
			{Name: "name", Node: until("{", "@")},
			{Name: "directives", Node: dir, Repeat: true},
			{Name: "body", Node: &Block{Start: "{", End: "}", Cases: trivia(), Default: inputValue(dir), Separator: ","}, Optional: true},
		}}},
		Case{Prefix: "enum", Node: &Syntax{Name: "Enum", Children: []Child{
			{Name: "kind", Node: &Literal{Value: "enum"}},
			{Name: "name", Node: until("{", "@")},
			{Name: "directives", Node: dir, Repeat: true},
			{Name: "body", Node: &Block{Start: "{", End: "}", Cases: trivia(), Default: enumValue, Separator: ","}},
		}}},
		Case{Prefix: "type", Node: fielded("Type", "type")},
		Case{Prefix: "interface", Node: fielded("Interface", "interface")},
		Case{Prefix: "union", Node: &Syntax{Name: "Union", Children: []Child{
			{Name: "kind", Node: &Literal{Value: "union"}},
			{Name: "name", Node: until("=", "@")},
			{Name: "directives", Node: dir, Repeat: true},
			{Name: "equals", Node: &Literal{Value: "="}},
			{Name: "leading", Node: &Literal{Value: "|"}, Optional: true},
			{Name: "members", Node: &List{Of: until("|"), Separator: "|", NonEmpty: true}},
		}}},
		Case{Prefix: "directive", Node: &Syntax{Name: "DirectiveDefinition", Children: []Child{
			{Name: "kind", Node: &Literal{Value: "directive"}},
			{Name: "at", Node: &Literal{Value: "@"}},
			{Name: "name", Node: until("(")},
			{Name: "args", Node: arguments(dir), Optional: true},
			{Name: "on", Node: &Literal{Value: "on"}},
			{Name: "leading", Node: &Literal{Value: "|"}, Optional: true},
			{Name: "locations", Node: &List{Of: until("|"), Separator: "|", NonEmpty: true}},
		}}},
	)}
}

var (
	documentOnce sync.Once
	document     *Block
)

// Document returns the grammar of an SDL document: a sequence of comments
// and declarations running to the end of input. The grammar is built once
// and shared; callers must not modify it.
func Document() *Block {
	documentOnce.Do(func() { document = newDocument() })
	return document
}
