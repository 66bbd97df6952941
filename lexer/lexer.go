package lexer

import (
	"strings"

	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/token"
)

// Lexer tokenizes SDL and query source text.
type Lexer struct {
	input        string // The input string
	position     int    // Current position in input (points to current char)
	readPosition int    // Next reading position (after current char)
	ch           byte   // Current char under examination
}

// New creates a new Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Input returns the source text being tokenized.
func (l *Lexer) Input() string {
	return l.input
}

// Tokenize converts source into its full token sequence.
func Tokenize(source string) ([]token.Token, error) {
	return New(source).Tokenize()
}

// Tokenize reads every remaining token. The EOF token is not included.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// readChar advances the lexer to the next character.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII 0 signifies end-of-input
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// seek moves the lexer to an absolute position.
func (l *Lexer) seek(pos int) {
	l.readPosition = pos
	l.readChar()
}

// atEnd reports whether all input has been consumed.
func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// NextToken returns the next token from the input. At end of input it
// returns a token of type EOF.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()
	start := l.position
	if l.atEnd() {
		return token.Token{Type: token.EOF, Pos: start}, nil
	}
	rest := l.input[start:]

	for _, sym := range token.Symbols {
		if strings.HasPrefix(rest, string(sym)) {
			l.seek(start + len(sym))
			return token.Token{Type: sym, Literal: string(sym), Pos: start}, nil
		}
	}

	switch {
	case l.ch == '#':
		return l.readComment(), nil
	case strings.HasPrefix(rest, `"""`):
		return l.readBlockString()
	case l.ch == '"':
		return l.readString()
	case isNumberStart(rest):
		return token.Token{Type: token.FLOAT, Literal: l.readNumber(), Pos: start}, nil
	case isNameStart(l.ch):
		return token.Token{Type: token.NAME, Literal: l.readName(), Pos: start}, nil
	}
	return token.Token{}, errs.Format(errs.UnknownToken, l.input, start, "unknown token at %q", errs.Fragment(rest))
}

// skipWhitespace advances the lexer past any whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readComment reads a # comment. The value excludes the # and the line
// ending, "\r\n" included.
func (l *Lexer) readComment() token.Token {
	start := l.position
	l.readChar() // skip '#'
	for l.ch != '\n' && !l.atEnd() {
		l.readChar()
	}
	text := strings.TrimSuffix(l.input[start+1:l.position], "\r")
	tok := token.Token{Type: token.COMMENT, Literal: text, Pos: start}
	if l.ch == '\n' {
		l.readChar()
	}
	return tok
}

// readString reads a "..." literal. A backslash escapes the next character.
func (l *Lexer) readString() (token.Token, error) {
	start := l.position
	l.readChar() // skip opening quote
	for !l.atEnd() {
		switch l.ch {
		case '\\':
			l.readChar()
		case '"':
			tok := token.Token{Type: token.STRING, Literal: l.input[start+1 : l.position], Pos: start}
			l.readChar()
			return tok, nil
		}
		l.readChar()
	}
	return token.Token{}, errs.New(errs.UnterminatedString, l.input, start, "unterminated string literal")
}

// readBlockString reads a """...""" literal. A backslash escapes the next
// character, so \""" does not terminate the literal.
func (l *Lexer) readBlockString() (token.Token, error) {
	start := l.position
	l.seek(start + 3)
	for !l.atEnd() {
		if l.ch == '\\' {
			l.readChar()
			l.readChar()
			continue
		}
		if strings.HasPrefix(l.input[l.position:], `"""`) {
			tok := token.Token{Type: token.BLOCK_STRING, Literal: l.input[start+3 : l.position], Pos: start}
			l.seek(l.position + 3)
			return tok, nil
		}
		l.readChar()
	}
	return token.Token{}, errs.New(errs.UnterminatedBlockString, l.input, start, "unterminated block string literal")
}

// readName reads a name from the input.
func (l *Lexer) readName() string {
	start := l.position
	for isNameStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal. Integers and floats are not told apart.
func (l *Lexer) readNumber() string {
	start := l.position
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) || l.ch == '.' || l.ch == 'e' || l.ch == 'E' {
		if l.ch == 'e' || l.ch == 'E' {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			continue
		}
		l.readChar()
	}
	return l.input[start:l.position]
}

func isNumberStart(s string) bool {
	if s[0] == '-' {
		return len(s) > 1 && isDigit(s[1])
	}
	return isDigit(s[0]) || s[0] == '.'
}

// isNameStart checks if a byte is an ASCII letter or underscore.
func isNameStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if a byte is a digit.
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
