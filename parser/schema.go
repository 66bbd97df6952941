package parser

import (
	"github.com/Protocol-Lattice/sdl/ast"
	"github.com/Protocol-Lattice/sdl/token"
)

// parseObjectType parses "type Name implements A, B @dir { fields }".
func (p *Parser) parseObjectType() (ast.Definition, error) {
	p.nextToken() // Skip "type"
	name, interfaces, directives, fields, err := p.parseFieldedType()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectType{Name: name, Interfaces: interfaces, Directives: directives, Fields: fields}, nil
}

// parseInterfaceType parses "interface Name implements A { fields }".
func (p *Parser) parseInterfaceType() (ast.Definition, error) {
	p.nextToken() // Skip "interface"
	name, interfaces, directives, fields, err := p.parseFieldedType()
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceType{Name: name, Interfaces: interfaces, Directives: directives, Fields: fields}, nil
}

// parseFieldedType parses the shared shape of object and interface types.
func (p *Parser) parseFieldedType() (string, []string, []*ast.Directive, []*ast.Field, error) {
	name, err := p.expectName()
	if err != nil {
		return "", nil, nil, nil, err
	}
	interfaces, err := p.parseImplements()
	if err != nil {
		return "", nil, nil, nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return "", nil, nil, nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return "", nil, nil, nil, err
	}
	return name, interfaces, directives, fields, nil
}

// parseImplements parses an optional "implements A, B" clause. Both ","
// and "&" separate interface names.
func (p *Parser) parseImplements() ([]string, error) {
	if !p.peekKeyword("implements") {
		return nil, nil
	}
	p.skipComments()
	p.nextToken() // Skip "implements"
	p.accept(token.AMP)
	first, err := p.expectName()
	if err != nil {
		return nil, err
	}
	interfaces := []string{first}
	for p.accept(token.COMMA) || p.accept(token.AMP) {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, name)
	}
	return interfaces, nil
}

// parseFieldsDefinition parses an optional "{ fields }" block.
func (p *Parser) parseFieldsDefinition() ([]*ast.Field, error) {
	if !p.accept(token.LBRACE) {
		return nil, nil
	}
	var fields []*ast.Field
	for {
		p.skipTrivia()
		if p.curToken.Type == token.RBRACE {
			p.nextToken() // Skip '}'
			return fields, nil
		}
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
}

// parseFieldDefinition parses "name(args): Type @dir".
func (p *Parser) parseFieldDefinition() (*ast.Field, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	field := &ast.Field{Name: name}
	if p.peekIs(token.LPAREN) {
		if field.Arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if field.Type, err = p.parseTypeRef(); err != nil {
		return nil, err
	}
	if field.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	return field, nil
}

// parseArgumentsDefinition parses "(name: Type = default @dir, ...)".
func (p *Parser) parseArgumentsDefinition() ([]*ast.Argument, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []*ast.Argument
	for {
		p.skipTrivia()
		if p.curToken.Type == token.RPAREN {
			p.nextToken() // Skip ')'
			return args, nil
		}
		name, typ, def, directives, err := p.parseInputValue()
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument{Name: name, Type: typ, Default: def, Directives: directives})
	}
}

// parseInputValue parses "name: Type = default @dir".
func (p *Parser) parseInputValue() (string, ast.TypeRef, string, []*ast.Directive, error) {
	name, err := p.expectName()
	if err != nil {
		return "", ast.TypeRef{}, "", nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return "", ast.TypeRef{}, "", nil, err
	}
	typ, err := p.parseTypeRef()
	if err != nil {
		return "", ast.TypeRef{}, "", nil, err
	}
	var def string
	if p.accept(token.EQUALS) {
		if def, err = p.parseValue(); err != nil {
			return "", ast.TypeRef{}, "", nil, err
		}
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return "", ast.TypeRef{}, "", nil, err
	}
	return name, typ, def, directives, nil
}

// parseTypeRef parses one of Name, Name!, [Name], [Name]!, [Name!], [Name!]!.
func (p *Parser) parseTypeRef() (ast.TypeRef, error) {
	var ref ast.TypeRef
	if p.accept(token.LBRACKET) {
		name, err := p.expectName()
		if err != nil {
			return ref, err
		}
		ref.Name = name
		ref.List = true
		ref.ListItemNonNull = p.accept(token.BANG)
		if _, err := p.expect(token.RBRACKET); err != nil {
			return ref, err
		}
		ref.NonNull = p.accept(token.BANG)
		return ref, nil
	}
	name, err := p.expectName()
	if err != nil {
		return ref, err
	}
	ref.Name = name
	ref.NonNull = p.accept(token.BANG)
	return ref, nil
}

// parseUnionType parses "union Name = A | B". At least one member is required.
func (p *Parser) parseUnionType() (ast.Definition, error) {
	p.nextToken() // Skip "union"
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQUALS); err != nil {
		return nil, err
	}
	members, err := p.parsePipeList()
	if err != nil {
		return nil, err
	}
	return &ast.UnionType{Name: name, Directives: directives, Members: members}, nil
}

// parsePipeList parses "A | B | C" with an optional leading pipe.
func (p *Parser) parsePipeList() ([]string, error) {
	p.accept(token.PIPE)
	first, err := p.expectName()
	if err != nil {
		return nil, err
	}
	names := []string{first}
	for p.accept(token.PIPE) {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// parseScalarType parses "scalar Name @dir".
func (p *Parser) parseScalarType() (ast.Definition, error) {
	p.nextToken() // Skip "scalar"
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	return &ast.ScalarType{Name: name, Directives: directives}, nil
}

// parseEnumType parses "enum Name { A B C }". Directives on values are
// accepted and dropped.
func (p *Parser) parseEnumType() (ast.Definition, error) {
	p.nextToken() // Skip "enum"
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	enum := &ast.EnumType{Name: name, Directives: directives}
	for {
		p.skipTrivia()
		switch p.curToken.Type {
		case token.RBRACE:
			p.nextToken() // Skip '}'
			return enum, nil
		case token.NAME:
			enum.Values = append(enum.Values, p.curToken.Literal)
			p.nextToken()
			if _, err := p.parseDirectives(); err != nil {
				return nil, err
			}
		default:
			return nil, p.unexpected()
		}
	}
}

// parseInputType parses "input Name @dir { name: Type = default @dir }".
func (p *Parser) parseInputType() (ast.Definition, error) {
	p.nextToken() // Skip "input"
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	input := &ast.InputType{Name: name}
	if input.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if !p.accept(token.LBRACE) {
		return input, nil
	}
	for {
		p.skipTrivia()
		if p.curToken.Type == token.RBRACE {
			p.nextToken() // Skip '}'
			return input, nil
		}
		name, typ, def, directives, err := p.parseInputValue()
		if err != nil {
			return nil, err
		}
		input.Fields = append(input.Fields, &ast.InputField{Name: name, Type: typ, Default: def, Directives: directives})
	}
}

// parseDirectiveDefinition parses "directive @name(args) on A | B".
func (p *Parser) parseDirectiveDefinition() (ast.Definition, error) {
	p.nextToken() // Skip "directive"
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	def := &ast.DirectiveDefinition{Name: name}
	if p.peekIs(token.LPAREN) {
		if def.Arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	if def.Locations, err = p.parsePipeList(); err != nil {
		return nil, err
	}
	return def, nil
}

// parseDirectives parses zero or more "@name(arg: value)" directives.
func (p *Parser) parseDirectives() ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.accept(token.AT) {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		d := &ast.Directive{Name: name}
		if p.peekIs(token.LPAREN) {
			if d.Arguments, err = p.parseArgumentValues(); err != nil {
				return nil, err
			}
		}
		directives = append(directives, d)
	}
	return directives, nil
}
