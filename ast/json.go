package ast

import (
	"encoding/json"
	"strconv"
)

// withKind encodes v as a JSON object with a leading "kind" member.
func withKind(kind Kind, v interface{}) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head := `{"kind":` + strconv.Quote(string(kind))
	if len(body) <= 2 {
		return []byte(head + "}"), nil
	}
	return []byte(head + "," + string(body[1:])), nil
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	type plain Comment
	return withKind(c.Kind(), (*plain)(c))
}

func (c *BlockComment) MarshalJSON() ([]byte, error) {
	type plain BlockComment
	return withKind(c.Kind(), (*plain)(c))
}

func (t *ObjectType) MarshalJSON() ([]byte, error) {
	type plain ObjectType
	return withKind(t.Kind(), (*plain)(t))
}

func (t *InterfaceType) MarshalJSON() ([]byte, error) {
	type plain InterfaceType
	return withKind(t.Kind(), (*plain)(t))
}

func (t *UnionType) MarshalJSON() ([]byte, error) {
	type plain UnionType
	return withKind(t.Kind(), (*plain)(t))
}

func (t *ScalarType) MarshalJSON() ([]byte, error) {
	type plain ScalarType
	return withKind(t.Kind(), (*plain)(t))
}

func (t *EnumType) MarshalJSON() ([]byte, error) {
	type plain EnumType
	return withKind(t.Kind(), (*plain)(t))
}

func (t *InputType) MarshalJSON() ([]byte, error) {
	type plain InputType
	return withKind(t.Kind(), (*plain)(t))
}

func (d *DirectiveDefinition) MarshalJSON() ([]byte, error) {
	type plain DirectiveDefinition
	return withKind(d.Kind(), (*plain)(d))
}

func (q *Query) MarshalJSON() ([]byte, error) {
	type plain Query
	return withKind(q.Kind(), (*plain)(q))
}

func (f *Fragment) MarshalJSON() ([]byte, error) {
	type plain Fragment
	return withKind(f.Kind(), (*plain)(f))
}

func (f *FieldSelection) MarshalJSON() ([]byte, error) {
	type plain FieldSelection
	return withKind(f.Kind(), (*plain)(f))
}

func (s *FragmentSpread) MarshalJSON() ([]byte, error) {
	type plain FragmentSpread
	return withKind(s.Kind(), (*plain)(s))
}
