// Package sdl parses a GraphQL-like schema definition language and its
// query-selection companion into a typed AST. It includes a lexer, a
// token-level parser, a declarative grammar engine, a printer and an HTTP
// handler; this package re-exports the common entry points.
package sdl

import (
	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/crosscheck"
	"github.com/Protocol-Lattice/sdl/engine"
	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/handler"
	"github.com/Protocol-Lattice/sdl/lexer"
	"github.com/Protocol-Lattice/sdl/parser"
	"github.com/Protocol-Lattice/sdl/printer"
	"github.com/Protocol-Lattice/sdl/token"
)

// ===========================
// Re-exported Types
// ===========================

// Token types
type (
	TokenType = token.TokenType
	Token     = token.Token
)

// AST types
type (
	Node                = ast.Node
	Document            = ast.Document
	Definition          = ast.Definition
	ObjectType          = ast.ObjectType
	InterfaceType       = ast.InterfaceType
	UnionType           = ast.UnionType
	ScalarType          = ast.ScalarType
	EnumType            = ast.EnumType
	InputType           = ast.InputType
	DirectiveDefinition = ast.DirectiveDefinition
	Field               = ast.Field
	InputField          = ast.InputField
	Directive           = ast.Directive
	TypeRef             = ast.TypeRef
	Query               = ast.Query
	Fragment            = ast.Fragment
	Selection           = ast.Selection
)

// Error is a parse failure with its kind and position.
type Error = errs.Error

// Lexer type
type Lexer = lexer.Lexer

// Parser type
type Parser = parser.Parser

// Sentinel errors for errors.Is.
var (
	ErrUnterminatedString      = errs.ErrUnterminatedString
	ErrUnterminatedBlockString = errs.ErrUnterminatedBlockString
	ErrUnknownToken            = errs.ErrUnknownToken
	ErrUnknownKeyword          = errs.ErrUnknownKeyword
	ErrUnexpectedToken         = errs.ErrUnexpectedToken
)

// ===========================
// Convenience Functions
// ===========================

// NewLexer creates a new lexer for the given source.
func NewLexer(input string) *Lexer {
	return lexer.New(input)
}

// NewParser creates a new parser for the given lexer.
func NewParser(l *Lexer) *Parser {
	return parser.New(l)
}

// Tokenize splits source into tokens.
func Tokenize(source string) ([]Token, error) {
	return lexer.Tokenize(source)
}

// ParseSchema parses SDL with the token-level parser.
func ParseSchema(source string) (*Document, error) {
	return parser.ParseSchema(source)
}

// ParseQuery parses a query document with the token-level parser.
func ParseQuery(source string) (*Document, error) {
	return parser.ParseQuery(source)
}

// ParseSchemaGrammar parses SDL with the grammar engine.
func ParseSchemaGrammar(source string) (*Document, error) {
	return engine.ParseSchema(source)
}

// ParseQueryGrammar parses a query document with the grammar engine.
func ParseQueryGrammar(source string) (*Document, error) {
	return engine.ParseQuery(source)
}

// Print renders a document back to source text.
func Print(doc *Document) string {
	return printer.Print(doc)
}

// Crosscheck compares doc with an independent parser's reading of source.
func Crosscheck(name, source string, doc *Document) ([]crosscheck.Mismatch, error) {
	return crosscheck.Compare(name, source, doc)
}

// ===========================
// HTTP Handlers
// ===========================

// NewHandler returns the HTTP and WebSocket parse service.
func NewHandler(opts handler.Options) *handler.Handler {
	return handler.New(opts)
}
