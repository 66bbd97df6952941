// Package errs defines the structured errors returned by the lexer, the
// token parser and the grammar engine.
package errs

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind discriminates parse failures.
type Kind string

const (
	UnterminatedString      Kind = "UnterminatedString"
	UnterminatedBlockString Kind = "UnterminatedBlockString"
	UnknownToken            Kind = "UnknownToken"
	UnknownKeyword          Kind = "UnknownKeyword"
	UnexpectedToken         Kind = "UnexpectedToken"
	NoMatch                 Kind = "NoMatch"
)

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrUnterminatedString      = &Error{Kind: UnterminatedString}
	ErrUnterminatedBlockString = &Error{Kind: UnterminatedBlockString}
	ErrUnknownToken            = &Error{Kind: UnknownToken}
	ErrUnknownKeyword          = &Error{Kind: UnknownKeyword}
	ErrUnexpectedToken         = &Error{Kind: UnexpectedToken}
	ErrNoMatch                 = &Error{Kind: NoMatch}
)

// fragmentLen bounds the amount of source text quoted in messages.
const fragmentLen = 32

// Error is a parse failure at a position in the source.
type Error struct {
	Kind     Kind   `json:"kind"`
	Message  string `json:"message"`
	Fragment string `json:"fragment,omitempty"` // offending input text
	Offset   int    `json:"offset"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

// New creates an error of the given kind located at offset in src.
func New(kind Kind, src string, offset int, msg string) *Error {
	e := &Error{Kind: kind, Message: msg, Offset: offset}
	if offset >= 0 && offset <= len(src) {
		e.Fragment = Fragment(src[offset:])
		e.Line, e.Column = LineCol(src, offset)
	}
	return e
}

// Format is like New with a formatted message.
func Format(kind Kind, src string, offset int, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(kind, src, offset, msg)
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s at line %d col %d", e.Kind, e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error of the same kind. An unterminated block string is
// also an unterminated string.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == e.Kind {
		return true
	}
	return t.Kind == UnterminatedString && e.Kind == UnterminatedBlockString
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Fragment shortens s for use in a message.
func Fragment(s string) string {
	if len(s) <= fragmentLen {
		return s
	}
	cut := fragmentLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// LineCol converts a byte offset into a 1-based line and column.
func LineCol(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return line, utf8.RuneCountInString(before[lineStart:]) + 1
}
