package token

// TokenType represents the type of a token in the SDL lexer.
type TokenType string

const (
	// Special tokens
	EOF TokenType = "EOF" // End of input, never part of a Tokenize result

	// Identifiers and literals
	NAME         TokenType = "Name"        // Names (keywords, type names, field names)
	INT          TokenType = "Int"         // Integer literals (reserved, the lexer emits FLOAT)
	FLOAT        TokenType = "Float"       // Numeric literals
	STRING       TokenType = "String"      // "..." literals
	BLOCK_STRING TokenType = "BlockString" // """...""" literals
	COMMENT      TokenType = "Comment"     // # comments

	// Symbols
	BANG     TokenType = "!"   // Non-null marker
	DOLLAR   TokenType = "$"   // Variable prefix
	AMP      TokenType = "&"   // Interface separator
	LPAREN   TokenType = "("   // Left parenthesis
	RPAREN   TokenType = ")"   // Right parenthesis
	SPREAD   TokenType = "..." // Fragment spread
	COLON    TokenType = ":"   // Colon separator
	EQUALS   TokenType = "="   // Default values and union members
	AT       TokenType = "@"   // Directive prefix
	LBRACKET TokenType = "["   // Left bracket
	RBRACKET TokenType = "]"   // Right bracket
	LBRACE   TokenType = "{"   // Left brace
	RBRACE   TokenType = "}"   // Right brace
	PIPE     TokenType = "|"   // Union member separator
	COMMA    TokenType = ","   // Comma separator
)

// Symbols lists the punctuation tokens in match order. Longer symbols come
// before any shorter symbol they start with.
var Symbols = []TokenType{
	SPREAD,
	DOLLAR, BANG, AMP, LPAREN, RPAREN, COLON, EQUALS, AT,
	LBRACKET, RBRACKET, LBRACE, PIPE, RBRACE, COMMA,
}

// Token represents a single token in the SDL source.
type Token struct {
	Type    TokenType `json:"kind"`  // The type of the token
	Literal string    `json:"value"` // The literal value of the token
	Pos     int       `json:"pos"`   // Byte offset of the token in the source
}

// IsPunctuation reports whether the token type is one of Symbols.
func (t TokenType) IsPunctuation() bool {
	for _, s := range Symbols {
		if s == t {
			return true
		}
	}
	return false
}
