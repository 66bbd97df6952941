package parser

import (
	"strings"

	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/token"
)

// parseArgumentValues parses "(name: value, ...)".
func (p *Parser) parseArgumentValues() ([]*ast.ArgumentValue, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []*ast.ArgumentValue
	for {
		p.skipComments()
		for p.curToken.Type == token.COMMA {
			p.nextToken()
			p.skipComments()
		}
		if p.curToken.Type == token.RPAREN {
			p.nextToken() // Skip ')'
			return args, nil
		}
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.ArgumentValue{Name: name, Value: value})
	}
}

// parseValue parses a value and returns its canonical source text.
// Strings keep their escapes; lists and objects are re-spelled with ", "
// separators.
func (p *Parser) parseValue() (string, error) {
	p.skipComments()
	tok := p.curToken
	switch tok.Type {
	case token.STRING:
		p.nextToken()
		return `"` + tok.Literal + `"`, nil
	case token.BLOCK_STRING:
		p.nextToken()
		return `"""` + tok.Literal + `"""`, nil
	case token.INT, token.FLOAT, token.NAME:
		p.nextToken()
		return tok.Literal, nil
	case token.DOLLAR:
		p.nextToken() // Skip '$'
		name, err := p.expectName()
		if err != nil {
			return "", err
		}
		return "$" + name, nil
	case token.LBRACKET:
		return p.parseListValue()
	case token.LBRACE:
		return p.parseObjectValue()
	}
	return "", p.unexpected()
}

// parseListValue parses "[a, b]".
func (p *Parser) parseListValue() (string, error) {
	p.nextToken() // Skip '['
	var items []string
	for {
		p.skipComments()
		if p.curToken.Type == token.COMMA {
			p.nextToken()
			continue
		}
		if p.curToken.Type == token.RBRACKET {
			p.nextToken() // Skip ']'
			return "[" + strings.Join(items, ", ") + "]", nil
		}
		item, err := p.parseValue()
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}
}

// parseObjectValue parses "{key: value, ...}".
func (p *Parser) parseObjectValue() (string, error) {
	p.nextToken() // Skip '{'
	var fields []string
	for {
		p.skipComments()
		if p.curToken.Type == token.COMMA {
			p.nextToken()
			continue
		}
		if p.curToken.Type == token.RBRACE {
			p.nextToken() // Skip '}'
			return "{" + strings.Join(fields, ", ") + "}", nil
		}
		key, err := p.expectName()
		if err != nil {
			return "", err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return "", err
		}
		value, err := p.parseValue()
		if err != nil {
			return "", err
		}
		fields = append(fields, key+": "+value)
	}
}
