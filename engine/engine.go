// Package engine interprets grammar graphs over raw source text. It is a
// backtracking recursive-descent matcher: every node either matches a
// prefix of the remaining input or reports a NoMatch.
package engine

import (
	"strconv"
	"strings"

	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/grammar"
)

const whitespace = " \t\r\n"

// Result is a successful match and the input left after it.
type Result struct {
	Value     Value
	Remaining string
}

// Parse matches node against src. On failure the error is the NoMatch, or
// the keyword error, that got furthest into the input.
func Parse(src string, node grammar.Node) (Result, error) {
	st := &state{src: src}
	v, rest, err := st.parse(src, node)
	if err != nil {
		return Result{}, st.furthest
	}
	return Result{Value: v, Remaining: rest}, nil
}

// state tracks the source for offsets and the deepest failure seen.
// Every remaining slice handled by the engine is a suffix of src.
type state struct {
	src      string
	furthest *errs.Error
}

func (st *state) offset(rest string) int {
	return len(st.src) - len(rest)
}

func (st *state) record(e *errs.Error) *errs.Error {
	if st.furthest == nil || e.Offset >= st.furthest.Offset {
		st.furthest = e
	}
	return e
}

func (st *state) noMatch(rest, expected string) *errs.Error {
	return st.record(errs.New(errs.NoMatch, st.src, st.offset(rest), "expected "+expected))
}

func trim(s string) string {
	return strings.TrimLeft(s, whitespace)
}

func (st *state) text(rest, s string) Value {
	return Value{Kind: Text, Pos: st.offset(rest), Text: s}
}

func (st *state) parse(rest string, node grammar.Node) (Value, string, *errs.Error) {
	switch n := node.(type) {
	case *grammar.Literal:
		return st.parseLiteral(rest, n)
	case *grammar.Word:
		return st.parseWord(rest, n)
	case *grammar.Line:
		return st.parseLine(rest)
	case *grammar.Group:
		return st.parseGroup(rest, n)
	case *grammar.List:
		return st.parseList(rest, n)
	case *grammar.Block:
		return st.parseBlock(rest, n)
	case *grammar.Syntax:
		return st.parseSyntax(rest, n)
	case *grammar.Condition:
		trimmed := trim(rest)
		if grammar.HasPrefix(trimmed, n.Test) {
			return st.parse(trimmed, n.Pass)
		}
		return st.parse(trimmed, n.Fail)
	}
	return Value{}, rest, st.noMatch(rest, "a known grammar node")
}

// parseLiteral matches a word literal only as a whole word.
func (st *state) parseLiteral(rest string, n *grammar.Literal) (Value, string, *errs.Error) {
	trimmed := trim(rest)
	if !grammar.HasPrefix(trimmed, n.Value) {
		return Value{}, rest, st.noMatch(trimmed, strconv.Quote(n.Value))
	}
	return st.text(trimmed, n.Value), trimmed[len(n.Value):], nil
}

// parseWord stops at the earliest delimiter. An empty word is no match.
func (st *state) parseWord(rest string, n *grammar.Word) (Value, string, *errs.Error) {
	trimmed := trim(rest)
	end := len(trimmed)
scan:
	for i := 0; i < len(trimmed); i++ {
		for _, d := range n.End {
			if d != "" && strings.HasPrefix(trimmed[i:], d) {
				end = i
				break scan
			}
		}
	}
	word := strings.TrimRight(trimmed[:end], whitespace)
	if word == "" {
		return Value{}, rest, st.noMatch(trimmed, "a word")
	}
	return st.text(trimmed, word), trimmed[end:], nil
}

// parseLine does not trim: the line starts right where the input does.
func (st *state) parseLine(rest string) (Value, string, *errs.Error) {
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return st.text(rest, strings.TrimSuffix(rest[:i], "\r")), rest[i+1:], nil
	}
	return st.text(rest, rest), rest[len(rest):], nil
}

func (st *state) parseGroup(rest string, n *grammar.Group) (Value, string, *errs.Error) {
	trimmed := trim(rest)
	if !strings.HasPrefix(trimmed, n.Start) {
		return Value{}, rest, st.noMatch(trimmed, strconv.Quote(n.Start))
	}
	body := trimmed[len(n.Start):]
	i := closing(body, n.End, n.Escape)
	if i < 0 {
		return Value{}, rest, st.noMatch(body[len(body):], "closing "+strconv.Quote(n.End))
	}
	return st.text(body, body[:i]), body[i+len(n.End):], nil
}

// closing returns the index of the first end in body that is not escaped,
// or -1.
func closing(body, end, escape string) int {
	for i := 0; i < len(body); i++ {
		if escape != "" && strings.HasPrefix(body[i:], escape) {
			i += len(escape)
			continue
		}
		if strings.HasPrefix(body[i:], end) {
			return i
		}
	}
	return -1
}

// parseList commits a separator only when an item follows it, so a
// trailing separator is left for the caller.
func (st *state) parseList(rest string, n *grammar.List) (Value, string, *errs.Error) {
	seq := Value{Kind: Sequence, Pos: st.offset(trim(rest))}
	committed, cur := rest, rest
	for {
		v, next, err := st.parse(cur, n.Of)
		if err != nil || len(next) == len(cur) {
			break
		}
		seq.Items = append(seq.Items, v)
		committed = next
		if n.Separator == "" {
			cur = next
			continue
		}
		t := trim(next)
		if !strings.HasPrefix(t, n.Separator) {
			break
		}
		cur = t[len(n.Separator):]
	}
	if n.NonEmpty && len(seq.Items) == 0 {
		return Value{}, rest, st.noMatch(trim(rest), "at least one item")
	}
	return seq, committed, nil
}

func (st *state) parseBlock(rest string, n *grammar.Block) (Value, string, *errs.Error) {
	cur := trim(rest)
	seq := Value{Kind: Sequence, Pos: st.offset(cur)}
	if n.Start != "" {
		if !strings.HasPrefix(cur, n.Start) {
			return Value{}, rest, st.noMatch(cur, strconv.Quote(n.Start))
		}
		cur = cur[len(n.Start):]
	}
	for {
		cur = trim(cur)
		if n.End == "" && cur == "" {
			return seq, cur, nil
		}
		if n.End != "" && strings.HasPrefix(cur, n.End) {
			return seq, cur[len(n.End):], nil
		}
		if cur == "" {
			return Value{}, rest, st.noMatch(cur, "closing "+strconv.Quote(n.End))
		}
		child := n.Lookup(cur)
		if child == nil {
			return Value{}, rest, st.record(st.noRule(cur, n))
		}
		v, next, err := st.parse(cur, child)
		if err != nil {
			return Value{}, rest, err
		}
		if len(next) == len(cur) {
			return Value{}, rest, st.noMatch(cur, "progress")
		}
		seq.Items = append(seq.Items, v)
		cur = next
		if n.Separator != "" {
			if t := trim(cur); strings.HasPrefix(t, n.Separator) {
				cur = t[len(n.Separator):]
			}
		}
	}
}

// noRule reports input that no case of a block without default accepts.
// A leading word is reported as an unknown keyword.
func (st *state) noRule(cur string, n *grammar.Block) *errs.Error {
	i := 0
	for i < len(cur) && isNameChar(cur[i], i) {
		i++
	}
	if i > 0 {
		return errs.UnknownKeywordError(st.src, st.offset(cur), cur[:i], n.Keywords())
	}
	return errs.Format(errs.UnexpectedToken, st.src, st.offset(cur), "unexpected input %q", errs.Fragment(cur))
}

func isNameChar(c byte, i int) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || i > 0 && '0' <= c && c <= '9'
}

// parseSyntax fills the child slots in order. A required slot that does
// not match fails the whole node.
func (st *state) parseSyntax(rest string, n *grammar.Syntax) (Value, string, *errs.Error) {
	rec := Value{Kind: Record, Pos: st.offset(trim(rest)), Name: n.Name}
	cur := rest
	for _, c := range n.Children {
		switch {
		case c.Repeat:
			seq := Value{Kind: Sequence, Pos: st.offset(trim(cur))}
			for {
				v, next, err := st.parse(cur, c.Node)
				if err != nil || len(next) == len(cur) {
					break
				}
				seq.Items = append(seq.Items, v)
				cur = next
			}
			rec.Fields = append(rec.Fields, Field{Name: c.Name, Value: seq})
		case c.Optional:
			v, next, err := st.parse(cur, c.Node)
			if err != nil {
				continue
			}
			rec.Fields = append(rec.Fields, Field{Name: c.Name, Value: v})
			cur = next
		default:
			v, next, err := st.parse(cur, c.Node)
			if err != nil {
				return Value{}, rest, err
			}
			rec.Fields = append(rec.Fields, Field{Name: c.Name, Value: v})
			cur = next
		}
	}
	return rec, cur, nil
}
