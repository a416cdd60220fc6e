package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

// parseFunction parses a function, constructor, fallback, receive, or
// modifier definition. One permissive header serves all five kinds;
// whether a given field is legal for the kind is a semantic question, not
// a parsing one.
func (p *Parser) parseFunction() *ast.Item {
	start := p.peek()

	var kind ast.FunctionKind
	named := false
	switch {
	case p.match(token.CONSTRUCTOR):
		kind = ast.CONSTRUCTOR
	case p.match(token.FUNCTION):
		kind = ast.FUNCTION
		named = true
	case p.match(token.FALLBACK):
		kind = ast.FALLBACK
	case p.match(token.RECEIVE):
		kind = ast.RECEIVE
	case p.match(token.MODIFIER):
		kind = ast.MODIFIER
		named = true
	default:
		p.errorWithCode(errors.ErrorMalformedHeader, "expected function-like keyword")
		return nil
	}

	header := ast.FunctionHeader{}
	if named {
		name, ok := p.consumeIdent("expected name after '" + kind.String() + "'")
		if !ok {
			return nil
		}
		header.Name = &name
	}

	// Modifiers may omit the parameter list entirely.
	if p.check(token.LPAREN) {
		params, ok := p.parseParameterList()
		if !ok {
			return nil
		}
		header.Parameters = params
	} else if kind != ast.MODIFIER {
		p.consume(token.LPAREN, "expected '(' after "+kind.String()+" declaration")
		return nil
	}

	if !p.parseFunctionAttributes(&header) {
		return nil
	}

	var body *ast.Block
	var end token.Token
	switch {
	case p.check(token.SEMICOLON):
		end = p.advance()
	case p.check(token.LBRACE):
		block, last, ok := p.parseOpaqueBlock()
		if !ok {
			return nil
		}
		body = block
		end = last
	default:
		p.errorWithCode(errors.ErrorMalformedHeader, "expected ';' or '{' after function header")
		return nil
	}

	return p.makeItem(start, end, &ast.ItemFunction{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Kind:   kind,
		Header: header,
		Body:   body,
	})
}

// parseFunctionAttributes consumes header attributes in any source order:
// visibility, state mutability, virtual, override, modifier invocations,
// and the returns clause.
func (p *Parser) parseFunctionAttributes(header *ast.FunctionHeader) bool {
	for {
		switch p.peek().Type {
		case token.PUBLIC, token.PRIVATE, token.INTERNAL, token.EXTERNAL:
			visibility := visibilityFromToken(p.advance().Type)
			header.Visibility = &visibility
		case token.PURE, token.VIEW, token.PAYABLE:
			mutability := mutabilityFromToken(p.advance().Type)
			header.StateMutability = &mutability
		case token.VIRTUAL:
			p.advance()
			header.Virtual = true
		case token.OVERRIDE:
			override, ok := p.parseOverride()
			if !ok {
				return false
			}
			header.Override = override
		case token.RETURNS:
			p.advance()
			returns, ok := p.parseParameterList()
			if !ok {
				return false
			}
			header.Returns = returns
		case token.IDENT:
			modifier, ok := p.parseModifierInvocation()
			if !ok {
				return false
			}
			header.Modifiers = append(header.Modifiers, modifier)
		default:
			return true
		}
	}
}

func (p *Parser) parseOverride() (*ast.Override, bool) {
	start := p.consume(token.OVERRIDE, "expected 'override' keyword")

	override := &ast.Override{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(start),
	}

	if p.match(token.LPAREN) {
		openTok := p.previous()
		for !p.check(token.RPAREN) && !p.isAtEnd() {
			path, ok := p.parsePath()
			if !ok {
				return nil, false
			}
			override.Paths = append(override.Paths, path)

			if !p.match(token.COMMA) {
				break
			}
		}
		closeTok := p.consumeClosing(token.RPAREN, openTok, "expected ')' to close override list")
		override.EndPos = p.makeEndPos(closeTok)
	}

	return override, true
}

// parseOpaqueBlock consumes a brace-matched body without interpreting it.
// The inner tokens are carried on the Block for later phases; the closing
// brace token is returned for span bookkeeping.
func (p *Parser) parseOpaqueBlock() (*ast.Block, token.Token, bool) {
	openTok := p.consume(token.LBRACE, "expected '{' to start body")

	var inner []token.Token
	depth := 0
	for !p.isAtEnd() {
		tt := p.peek().Type
		if tt == token.LBRACE {
			depth++
		} else if tt == token.RBRACE {
			if depth == 0 {
				break
			}
			depth--
		}
		inner = append(inner, p.advance())
	}

	closeTok := p.consumeClosing(token.RBRACE, openTok, "expected '}' to close body")
	if closeTok.Type == token.ILLEGAL {
		return nil, token.Token{}, false
	}

	return &ast.Block{
		Pos:    p.makePos(openTok),
		EndPos: p.makeEndPos(closeTok),
		Tokens: inner,
	}, closeTok, true
}

func visibilityFromToken(tt token.TokenType) ast.Visibility {
	switch tt {
	case token.PRIVATE:
		return ast.PRIVATE
	case token.INTERNAL:
		return ast.INTERNAL
	case token.PUBLIC:
		return ast.PUBLIC
	default:
		return ast.EXTERNAL
	}
}

func mutabilityFromToken(tt token.TokenType) ast.StateMutability {
	switch tt {
	case token.PURE:
		return ast.PURE
	case token.VIEW:
		return ast.VIEW
	default:
		return ast.PAYABLE
	}
}
