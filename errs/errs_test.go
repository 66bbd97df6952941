package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	src := "type A {\n  id: ID\n}"
	line, col := LineCol(src, strings.Index(src, "id"))
	if line != 2 || col != 3 {
		t.Errorf("expected 2:3, got %d:%d", line, col)
	}
	line, col = LineCol(src, 0)
	if line != 1 || col != 1 {
		t.Errorf("expected 1:1, got %d:%d", line, col)
	}
	line, _ = LineCol(src, len(src)+10)
	if line != 3 {
		t.Errorf("expected offset past the end to clamp to line 3, got %d", line)
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("parse schema: %w", New(UnterminatedBlockString, `"""abc`, 0, "unterminated block string"))
	if !errors.Is(err, ErrUnterminatedBlockString) {
		t.Error("expected block string error to match its own sentinel")
	}
	if !errors.Is(err, ErrUnterminatedString) {
		t.Error("expected block string error to match ErrUnterminatedString")
	}
	if errors.Is(err, ErrUnknownToken) {
		t.Error("did not expect a match with ErrUnknownToken")
	}
	if KindOf(err) != UnterminatedBlockString {
		t.Errorf("expected kind UnterminatedBlockString, got %q", KindOf(err))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("expected empty kind for a foreign error")
	}
}

func TestFragmentTruncates(t *testing.T) {
	long := strings.Repeat("x", 100)
	f := Fragment(long)
	if !strings.HasSuffix(f, "...") || len(f) != fragmentLen+3 {
		t.Errorf("unexpected fragment %q", f)
	}
	if Fragment("short") != "short" {
		t.Error("short input must be kept as is")
	}
}

func TestSuggest(t *testing.T) {
	keywords := []string{"type", "interface", "union", "scalar", "enum", "input", "directive"}
	tests := []struct {
		word string
		want string
	}{
		{"tpye", "type"},
		{"scalr", "scalar"},
		{"inptu", "input"},
		{"foo", ""},
	}
	for _, tt := range tests {
		if got := Suggest(tt.word, keywords); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestUnknownKeywordMessage(t *testing.T) {
	err := UnknownKeywordError("tpye A {}", 0, "tpye", []string{"type"})
	if err.Kind != UnknownKeyword {
		t.Fatalf("expected UnknownKeyword, got %s", err.Kind)
	}
	if !strings.Contains(err.Message, `did you mean "type"`) {
		t.Errorf("expected a suggestion in %q", err.Message)
	}
}
