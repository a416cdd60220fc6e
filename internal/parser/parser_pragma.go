package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

// parsePragma parses a pragma directive, selecting between the three
// shapes in precedence order:
//
//  1. the directive begins with the identifier "solidity": the remaining
//     tokens form a version requirement;
//  2. the remainder is exactly one or two identifier-or-string tokens:
//     a custom name/value pragma;
//  3. anything else is preserved verbatim, token for token.
func (p *Parser) parsePragma() *ast.Item {
	start := p.consume(token.PRAGMA, "expected 'pragma' keyword")

	raw := p.collectBalanced(token.SEMICOLON)
	end := p.consume(token.SEMICOLON, "expected ';' after pragma directive")

	directive := &ast.PragmaDirective{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Tokens: p.disambiguatePragma(raw),
	}

	return p.makeItem(start, end, directive)
}

func (p *Parser) disambiguatePragma(raw []token.Token) ast.PragmaTokens {
	span := p.pragmaSpan(raw)

	if len(raw) >= 1 && raw[0].Type == token.IDENT && raw[0].Lexeme == "solidity" {
		if len(raw) == 1 {
			p.errorWithCode(errors.ErrorMalformedPragma, "expected version requirement after 'pragma solidity'")
			return p.verbatimPragma(raw, span)
		}
		first, last := raw[1], raw[len(raw)-1]
		return &ast.PragmaVersion{
			Pos:    span.pos,
			EndPos: span.endPos,
			Name:   p.makeIdent(raw[0]),
			Req: ast.SemverReq{
				Pos:    p.makePos(first),
				EndPos: p.makeEndPos(last),
				Source: p.sourceBetween(first, last),
			},
		}
	}

	if name, value, ok := p.customPragma(raw); ok {
		return &ast.PragmaCustom{
			Pos:    span.pos,
			EndPos: span.endPos,
			Name:   name,
			Value:  value,
		}
	}

	return p.verbatimPragma(raw, span)
}

// customPragma recognizes the `pragma <name> [value];` shape: exactly one
// or two tokens, each an identifier or a string literal.
func (p *Parser) customPragma(raw []token.Token) (ast.IdentOrStrLit, ast.IdentOrStrLit, bool) {
	if len(raw) != 1 && len(raw) != 2 {
		return nil, nil, false
	}

	name, ok := p.identOrStrLit(raw[0])
	if !ok {
		return nil, nil, false
	}

	if len(raw) == 1 {
		return name, nil, true
	}

	value, ok := p.identOrStrLit(raw[1])
	if !ok {
		return nil, nil, false
	}
	return name, value, true
}

func (p *Parser) identOrStrLit(tok token.Token) (ast.IdentOrStrLit, bool) {
	switch tok.Type {
	case token.IDENT:
		ident := p.makeIdent(tok)
		return &ident, true
	case token.STRING:
		lit := p.makeStrLit(tok)
		return &lit, true
	}
	return nil, false
}

func (p *Parser) verbatimPragma(raw []token.Token, span pragmaSpan) *ast.PragmaVerbatim {
	return &ast.PragmaVerbatim{
		Pos:    span.pos,
		EndPos: span.endPos,
		Tokens: raw,
	}
}

type pragmaSpan struct {
	pos    ast.Position
	endPos ast.Position
}

func (p *Parser) pragmaSpan(raw []token.Token) pragmaSpan {
	if len(raw) == 0 {
		pos := p.makePos(p.peek())
		return pragmaSpan{pos: pos, endPos: pos}
	}
	return pragmaSpan{
		pos:    p.makePos(raw[0]),
		endPos: p.makeEndPos(raw[len(raw)-1]),
	}
}
