package parser

import (
	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/errs"
	"github.com/Protocol-Lattice/sdl/lexer"
	"github.com/Protocol-Lattice/sdl/token"
)

// SchemaKeywords are the keywords that introduce an SDL declaration.
var SchemaKeywords = []string{"type", "interface", "union", "scalar", "enum", "input", "directive"}

// QueryKeywords are the keywords that introduce a query document definition.
var QueryKeywords = []string{"query", "mutation", "subscription", "fragment"}

// Parser parses SDL and query source into an AST.
type Parser struct {
	src      string        // The source text, for error positions
	tokens   []token.Token // All tokens of the source
	pos      int           // Index of curToken in tokens
	curToken token.Token   // Current token
	err      error         // Lexing error, reported by the Parse methods
}

// New creates a new Parser for the given lexer. The lexer is drained
// eagerly; a lexing error is returned by the first Parse call.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{src: l.Input(), pos: -1}
	p.tokens, p.err = l.Tokenize()
	p.nextToken()
	return p
}

// ParseSchema parses SDL source text.
func ParseSchema(source string) (*ast.Document, error) {
	return New(lexer.New(source)).ParseDocument()
}

// ParseQuery parses query-language source text.
func ParseQuery(source string) (*ast.Document, error) {
	return New(lexer.New(source)).ParseQuery()
}

// nextToken advances the parser to the next token.
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
	if p.pos < len(p.tokens) {
		p.curToken = p.tokens[p.pos]
	} else {
		p.curToken = token.Token{Type: token.EOF, Pos: len(p.src)}
	}
}

// skipComments advances past comment tokens.
func (p *Parser) skipComments() {
	for p.curToken.Type == token.COMMENT {
		p.nextToken()
	}
}

// skipTrivia advances past comments, descriptions and commas between the
// members of a body.
func (p *Parser) skipTrivia() {
	for {
		switch p.curToken.Type {
		case token.COMMENT, token.STRING, token.BLOCK_STRING, token.COMMA:
			p.nextToken()
		default:
			return
		}
	}
}

// peek returns the first non-comment token at or after the current one
// without consuming anything.
func (p *Parser) peek() token.Token {
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].Type != token.COMMENT {
			return p.tokens[i]
		}
	}
	return token.Token{Type: token.EOF, Pos: len(p.src)}
}

// peekIs reports whether the next non-comment token has type t.
func (p *Parser) peekIs(t token.TokenType) bool {
	return p.peek().Type == t
}

// peekKeyword reports whether the next non-comment token is the name kw.
func (p *Parser) peekKeyword(kw string) bool {
	tok := p.peek()
	return tok.Type == token.NAME && tok.Literal == kw
}

// accept consumes the next non-comment token if it has type t. Comments
// are only consumed on a match.
func (p *Parser) accept(t token.TokenType) bool {
	if !p.peekIs(t) {
		return false
	}
	p.skipComments()
	p.nextToken()
	return true
}

// expect consumes a token of type t or fails with UnexpectedToken.
func (p *Parser) expect(t token.TokenType) (token.Token, error) {
	p.skipComments()
	if p.curToken.Type != t {
		return token.Token{}, p.unexpected()
	}
	tok := p.curToken
	p.nextToken()
	return tok, nil
}

// expectName consumes a Name token and returns its value.
func (p *Parser) expectName() (string, error) {
	tok, err := p.expect(token.NAME)
	return tok.Literal, err
}

// expectKeyword consumes the name kw.
func (p *Parser) expectKeyword(kw string) error {
	p.skipComments()
	if p.curToken.Type != token.NAME || p.curToken.Literal != kw {
		return p.unexpected()
	}
	p.nextToken()
	return nil
}

// unexpected reports the current token as out of place.
func (p *Parser) unexpected() error {
	tok := p.curToken
	if tok.Type == token.EOF {
		return errs.New(errs.UnexpectedToken, p.src, tok.Pos, "unexpected end of input")
	}
	return errs.Format(errs.UnexpectedToken, p.src, tok.Pos, "unexpected %s token (`%s`)", tok.Type, tok.Literal)
}

// ParseDocument parses an SDL document.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	return p.parseDocument(p.parseSchemaDefinition)
}

// ParseQuery parses a query document.
func (p *Parser) ParseQuery() (*ast.Document, error) {
	return p.parseDocument(p.parseQueryDefinition)
}

// parseDocument reads definitions until the input is exhausted. Comments
// and top-level strings become standalone trivia nodes in source order.
func (p *Parser) parseDocument(parseDefinition func() (ast.Definition, error)) (*ast.Document, error) {
	if p.err != nil {
		return nil, p.err
	}
	doc := &ast.Document{}
	for p.curToken.Type != token.EOF {
		switch p.curToken.Type {
		case token.COMMENT:
			doc.Definitions = append(doc.Definitions, &ast.Comment{Text: p.curToken.Literal})
			p.nextToken()
		case token.STRING, token.BLOCK_STRING:
			doc.Definitions = append(doc.Definitions, &ast.BlockComment{Text: p.curToken.Literal})
			p.nextToken()
		default:
			def, err := parseDefinition()
			if err != nil {
				return nil, err
			}
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	return doc, nil
}

// parseSchemaDefinition dispatches on the declaration keyword.
func (p *Parser) parseSchemaDefinition() (ast.Definition, error) {
	if p.curToken.Type != token.NAME {
		return nil, p.unexpected()
	}
	switch p.curToken.Literal {
	case "type":
		return p.parseObjectType()
	case "interface":
		return p.parseInterfaceType()
	case "union":
		return p.parseUnionType()
	case "scalar":
		return p.parseScalarType()
	case "enum":
		return p.parseEnumType()
	case "input":
		return p.parseInputType()
	case "directive":
		return p.parseDirectiveDefinition()
	}
	return nil, errs.UnknownKeywordError(p.src, p.curToken.Pos, p.curToken.Literal, SchemaKeywords)
}

// parseQueryDefinition dispatches on the operation or fragment keyword.
func (p *Parser) parseQueryDefinition() (ast.Definition, error) {
	if p.curToken.Type == token.LBRACE {
		selections, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.Query{Operation: "query", Selections: selections}, nil
	}
	if p.curToken.Type != token.NAME {
		return nil, p.unexpected()
	}
	switch p.curToken.Literal {
	case "query", "mutation", "subscription":
		return p.parseOperation()
	case "fragment":
		return p.parseFragment()
	}
	return nil, errs.UnknownKeywordError(p.src, p.curToken.Pos, p.curToken.Literal, QueryKeywords)
}
