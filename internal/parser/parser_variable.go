package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/token"
)

// parseType collects the token run of a type expression without
// interpreting it: a dotted path or a mapping type, followed by any number
// of array suffixes. The run is carried opaquely on the ast.Type.
func (p *Parser) parseType() (ast.Type, bool) {
	var tokens []token.Token

	switch {
	case p.check(token.MAPPING):
		tokens = append(tokens, p.advance())
		open := p.consume(token.LPAREN, "expected '(' after 'mapping'")
		if open.Type == token.ILLEGAL {
			return ast.Type{}, false
		}
		tokens = append(tokens, open)
		tokens = append(tokens, p.collectBalanced(token.RPAREN)...)
		closeTok := p.consumeClosing(token.RPAREN, open, "expected ')' to close mapping type")
		if closeTok.Type == token.ILLEGAL {
			return ast.Type{}, false
		}
		tokens = append(tokens, closeTok)
	case p.check(token.IDENT):
		tokens = append(tokens, p.advance())
		for p.check(token.DOT) {
			tokens = append(tokens, p.advance())
			part := p.consume(token.IDENT, "expected identifier after '.' in type")
			if part.Type == token.ILLEGAL {
				return ast.Type{}, false
			}
			tokens = append(tokens, part)
		}
		// "address payable" is the one two-word elementary type.
		if len(tokens) == 1 && tokens[0].Lexeme == "address" && p.check(token.PAYABLE) {
			tokens = append(tokens, p.advance())
		}
	default:
		p.errorAtCurrent("expected type")
		return ast.Type{}, false
	}

	for p.check(token.LBRACKET) {
		openBracket := p.advance()
		tokens = append(tokens, openBracket)
		tokens = append(tokens, p.collectBalanced(token.RBRACKET)...)
		closeTok := p.consumeClosing(token.RBRACKET, openBracket, "expected ']' to close array type")
		if closeTok.Type == token.ILLEGAL {
			return ast.Type{}, false
		}
		tokens = append(tokens, closeTok)
	}

	return ast.Type{
		Pos:    p.makePos(tokens[0]),
		EndPos: p.makeEndPos(tokens[len(tokens)-1]),
		Tokens: tokens,
	}, true
}

// parseParameterList parses a parenthesized list of variable declarations.
func (p *Parser) parseParameterList() ([]ast.VariableDeclaration, bool) {
	open := p.consume(token.LPAREN, "expected '(' to start parameter list")
	if open.Type == token.ILLEGAL {
		return nil, false
	}

	var params []ast.VariableDeclaration
	for !p.check(token.RPAREN) && !p.isAtEnd() {
		param, ok := p.parseVariableDeclaration()
		if !ok {
			return nil, false
		}
		params = append(params, param)

		if !p.match(token.COMMA) {
			break
		}
	}

	if closeTok := p.consumeClosing(token.RPAREN, open, "expected ')' to close parameter list"); closeTok.Type == token.ILLEGAL {
		return nil, false
	}
	return params, true
}

// parseVariableDeclaration parses "type [storage] [indexed] [name]". The
// name stays optional at this level; parameter-list callers requiring a
// name enforce that downstream.
func (p *Parser) parseVariableDeclaration() (ast.VariableDeclaration, bool) {
	ty, ok := p.parseType()
	if !ok {
		return ast.VariableDeclaration{}, false
	}

	decl := ast.VariableDeclaration{
		Pos:    ty.Pos,
		EndPos: ty.EndPos,
		Ty:     ty,
	}

	for {
		switch p.peek().Type {
		case token.MEMORY, token.STORAGE, token.CALLDATA:
			storage := storageFromToken(p.advance().Type)
			decl.Storage = &storage
			decl.EndPos = p.makeEndPos(p.previous())
			continue
		case token.INDEXED:
			p.advance()
			decl.Indexed = true
			decl.EndPos = p.makeEndPos(p.previous())
			continue
		}
		break
	}

	if p.check(token.IDENT) {
		name := p.makeIdent(p.advance())
		decl.Name = &name
		decl.EndPos = name.EndPos
	}

	return decl, true
}

// parseVariableDefinition parses a state variable or constant definition:
// "uint256 public constant FOO = 42;".
func (p *Parser) parseVariableDefinition() *ast.Item {
	start := p.peek()

	ty, ok := p.parseType()
	if !ok {
		return nil
	}

	def := &ast.VariableDefinition{
		Pos: ty.Pos,
		Ty:  ty,
	}

	for {
		switch p.peek().Type {
		case token.PUBLIC, token.PRIVATE, token.INTERNAL, token.EXTERNAL:
			visibility := visibilityFromToken(p.advance().Type)
			def.Visibility = &visibility
			continue
		case token.CONSTANT, token.IMMUTABLE:
			mutability := varMutFromToken(p.advance().Type)
			def.Mutability = &mutability
			continue
		case token.MEMORY, token.STORAGE, token.CALLDATA:
			storage := storageFromToken(p.advance().Type)
			def.Storage = &storage
			continue
		case token.OVERRIDE:
			override, ok := p.parseOverride()
			if !ok {
				return nil
			}
			def.Override = override
			continue
		}
		break
	}

	name, ok := p.consumeIdent("expected variable name")
	if !ok {
		return nil
	}
	def.Name = name

	if p.match(token.ASSIGN) {
		raw := p.collectBalanced(token.SEMICOLON)
		if len(raw) == 0 {
			p.errorAtCurrent("expected initializer expression after '='")
			return nil
		}
		def.Initializer = &ast.Expr{
			Pos:    p.makePos(raw[0]),
			EndPos: p.makeEndPos(raw[len(raw)-1]),
			Tokens: raw,
		}
	}

	end := p.consume(token.SEMICOLON, "expected ';' after variable definition")
	def.EndPos = p.makeEndPos(end)

	return p.makeItem(start, end, def)
}

func storageFromToken(tt token.TokenType) ast.Storage {
	switch tt {
	case token.MEMORY:
		return ast.MEMORY
	case token.STORAGE:
		return ast.STORAGE
	default:
		return ast.CALLDATA
	}
}

func varMutFromToken(tt token.TokenType) ast.VarMut {
	if tt == token.IMMUTABLE {
		return ast.IMMUTABLE
	}
	return ast.CONSTANT
}
