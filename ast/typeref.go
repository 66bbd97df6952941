package ast

import (
	"fmt"
	"strings"
)

// TypeRef describes a referenced type: String, String!, [String], [String]!,
// [String!] or [String!]!. ListItemNonNull is only set when List is set.
type TypeRef struct {
	Name            string `json:"name"`
	NonNull         bool   `json:"nonNull"`
	List            bool   `json:"list"`
	ListItemNonNull bool   `json:"listItemNonNull"`
}

// String returns the SDL spelling of the reference.
func (t TypeRef) String() string {
	s := t.Name
	if t.List {
		if t.ListItemNonNull {
			s += "!"
		}
		s = "[" + s + "]"
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

// ParseTypeRef parses the textual form of a type reference. Whitespace
// between the parts is ignored.
func ParseTypeRef(text string) (TypeRef, error) {
	s := strings.Join(strings.Fields(text), "")
	var ref TypeRef
	if strings.HasSuffix(s, "!") {
		ref.NonNull = true
		s = s[:len(s)-1]
	}
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return TypeRef{}, fmt.Errorf("unbalanced list type %q", text)
		}
		ref.List = true
		s = s[1 : len(s)-1]
		if strings.HasSuffix(s, "!") {
			ref.ListItemNonNull = true
			s = s[:len(s)-1]
		}
	}
	if !isName(s) {
		return TypeRef{}, fmt.Errorf("invalid type reference %q", text)
	}
	ref.Name = s
	return ref, nil
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		letter := 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
		if !letter && !(i > 0 && '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
