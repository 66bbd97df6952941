package parser

import (
	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/token"
)

// parseOperation parses a query, mutation, or subscription operation.
func (p *Parser) parseOperation() (ast.Definition, error) {
	op := &ast.Query{Operation: p.curToken.Literal}
	p.nextToken() // Skip the operation keyword
	if p.peekIs(token.NAME) {
		name, _ := p.expectName()
		op.Name = name
	}
	var err error
	if p.peekIs(token.LPAREN) {
		if op.Variables, err = p.parseVariableDefinitions(); err != nil {
			return nil, err
		}
	}
	if op.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if op.Selections, err = p.parseSelectionSet(); err != nil {
		return nil, err
	}
	return op, nil
}

// parseVariableDefinitions parses "($name: Type = default, ...)".
func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var vars []*ast.VariableDefinition
	for {
		p.skipTrivia()
		if p.curToken.Type == token.RPAREN {
			p.nextToken() // Skip ')'
			return vars, nil
		}
		if _, err := p.expect(token.DOLLAR); err != nil {
			return nil, err
		}
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		v := &ast.VariableDefinition{Name: name, Type: typ}
		if p.accept(token.EQUALS) {
			if v.Default, err = p.parseValue(); err != nil {
				return nil, err
			}
		}
		vars = append(vars, v)
	}
}

// parseFragment parses "fragment Name on Type { ... }".
func (p *Parser) parseFragment() (ast.Definition, error) {
	p.nextToken() // Skip "fragment"
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeName, err := p.expectName()
	if err != nil {
		return nil, err
	}
	selections, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.Fragment{Name: name, TypeCondition: typeName, Selections: selections}, nil
}

// parseSelectionSet parses "{ selections }".
func (p *Parser) parseSelectionSet() ([]ast.Selection, error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	var selections []ast.Selection
	for {
		p.skipTrivia()
		var (
			sel ast.Selection
			err error
		)
		switch p.curToken.Type {
		case token.RBRACE:
			p.nextToken() // Skip '}'
			return selections, nil
		case token.SPREAD:
			sel, err = p.parseFragmentSpread()
		default:
			sel, err = p.parseFieldSelection()
		}
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}
}

// parseFieldSelection parses "alias: name(args) @dir { ... }".
func (p *Parser) parseFieldSelection() (ast.Selection, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	field := &ast.FieldSelection{Name: name}
	if p.accept(token.COLON) {
		field.Alias = name
		if field.Name, err = p.expectName(); err != nil {
			return nil, err
		}
	}
	if p.peekIs(token.LPAREN) {
		if field.Arguments, err = p.parseArgumentValues(); err != nil {
			return nil, err
		}
	}
	if field.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if p.peekIs(token.LBRACE) {
		if field.Selections, err = p.parseSelectionSet(); err != nil {
			return nil, err
		}
	}
	return field, nil
}

// parseFragmentSpread parses "...Name" or "... on Type { ... }".
func (p *Parser) parseFragmentSpread() (ast.Selection, error) {
	p.nextToken() // Skip '...'
	if p.peekKeyword("on") {
		p.skipComments()
		p.nextToken() // Skip "on"
		typeName, err := p.expectName()
		if err != nil {
			return nil, err
		}
		selections, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{Inline: &ast.InlineFragment{TypeCondition: typeName, Selections: selections}}, nil
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentSpread{Name: name}, nil
}
