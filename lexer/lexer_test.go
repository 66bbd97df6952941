package lexer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/token"
)

type kv struct {
	Type    token.TokenType
	Literal string
}

func kinds(t *testing.T, input string) []kv {
	t.Helper()
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := make([]kv, len(tokens))
	for i, tok := range tokens {
		out[i] = kv{tok.Type, tok.Literal}
	}
	return out
}

func TestLexer_TypeDeclaration(t *testing.T) {
	got := kinds(t, "type User { id: ID! }")
	want := []kv{
		{token.NAME, "type"},
		{token.NAME, "User"},
		{token.LBRACE, "{"},
		{token.NAME, "id"},
		{token.COLON, ":"},
		{token.NAME, "ID"},
		{token.BANG, "!"},
		{token.RBRACE, "}"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens:\n got %v\nwant %v", got, want)
	}
}

func TestLexer_Punctuation(t *testing.T) {
	got := kinds(t, "$ ! & ( ) ... : = @ [ ] { } | ,")
	want := []kv{
		{token.DOLLAR, "$"}, {token.BANG, "!"}, {token.AMP, "&"},
		{token.LPAREN, "("}, {token.RPAREN, ")"}, {token.SPREAD, "..."},
		{token.COLON, ":"}, {token.EQUALS, "="}, {token.AT, "@"},
		{token.LBRACKET, "["}, {token.RBRACKET, "]"}, {token.LBRACE, "{"},
		{token.RBRACE, "}"}, {token.PIPE, "|"}, {token.COMMA, ","},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens:\n got %v\nwant %v", got, want)
	}
}

func TestLexer_SpreadBeforeName(t *testing.T) {
	got := kinds(t, "...UserSelection")
	want := []kv{{token.SPREAD, "..."}, {token.NAME, "UserSelection"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens: %v", got)
	}
}

func TestLexer_Numbers(t *testing.T) {
	got := kinds(t, "12345 6.5 .5 -3 1e10")
	want := []kv{
		{token.FLOAT, "12345"},
		{token.FLOAT, "6.5"},
		{token.FLOAT, ".5"},
		{token.FLOAT, "-3"},
		{token.FLOAT, "1e10"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens: %v", got)
	}
}

func TestLexer_Strings(t *testing.T) {
	got := kinds(t, `"hello world" "another string"`)
	want := []kv{{token.STRING, "hello world"}, {token.STRING, "another string"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens: %v", got)
	}
}

func TestLexer_StringEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"a\"b"`, `a\"b`},
		{`"a\\"`, `a\\`},
		{`"\\\""`, `\\\"`},
	}
	for _, tt := range tests {
		got := kinds(t, tt.input)
		if len(got) != 1 || got[0].Type != token.STRING || got[0].Literal != tt.want {
			t.Errorf("%s: unexpected tokens %v", tt.input, got)
		}
	}
}

func TestLexer_BlockString(t *testing.T) {
	got := kinds(t, "\"\"\"\nblock\ncomment\n\"\"\" scalar")
	want := []kv{{token.BLOCK_STRING, "\nblock\ncomment\n"}, {token.NAME, "scalar"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens: %v", got)
	}

	got = kinds(t, `"""say \""" twice"""`)
	if len(got) != 1 || got[0].Literal != `say \""" twice` {
		t.Errorf("escaped terminator must not end the block string: %v", got)
	}
}

func TestLexer_Comments(t *testing.T) {
	got := kinds(t, "# note\nscalar Date # trailing")
	want := []kv{
		{token.COMMENT, " note"},
		{token.NAME, "scalar"},
		{token.NAME, "Date"},
		{token.COMMENT, " trailing"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens: %v", got)
	}
}

func TestLexer_CommentsWithCRLF(t *testing.T) {
	got := kinds(t, "# note\r\nscalar Date\r\n#\r\n")
	want := []kv{
		{token.COMMENT, " note"},
		{token.NAME, "scalar"},
		{token.NAME, "Date"},
		{token.COMMENT, ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens: %v", got)
	}
}

func TestLexer_NamesWithDigitsAndUnderscores(t *testing.T) {
	got := kinds(t, "_id user2 A_B_3")
	want := []kv{{token.NAME, "_id"}, {token.NAME, "user2"}, {token.NAME, "A_B_3"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tokens: %v", got)
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := Tokenize("a\n  bc")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Pos != 0 || tokens[1].Pos != 4 {
		t.Errorf("unexpected positions %d, %d", tokens[0].Pos, tokens[1].Pos)
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{`input X { id: String! = "abc }`, errs.ErrUnterminatedString},
		{`"""never closed`, errs.ErrUnterminatedBlockString},
		{`type A ~ B`, errs.ErrUnknownToken},
		{`"trailing backslash\`, errs.ErrUnterminatedString},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.want, err)
		}
	}
}

func TestLexer_UnknownTokenCarriesRemainingText(t *testing.T) {
	_, err := Tokenize("type A ~ B")
	var e *errs.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errs.Error, got %T", err)
	}
	if e.Fragment != "~ B" {
		t.Errorf("expected fragment %q, got %q", "~ B", e.Fragment)
	}
	if e.Line != 1 || e.Column != 8 {
		t.Errorf("expected 1:8, got %d:%d", e.Line, e.Column)
	}
}

func TestLexer_NextTokenEOF(t *testing.T) {
	l := New("   ")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Type != token.EOF {
		t.Errorf("expected EOF, got %s", tok.Type)
	}
}
