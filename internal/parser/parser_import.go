package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

// parseImport parses the four aliasing forms of an import directive:
//
//	import "path";
//	import "path" as Name;
//	import { A, B as C } from "path";
//	import * as Name from "path";
func (p *Parser) parseImport() *ast.Item {
	start := p.consume(token.IMPORT, "expected 'import' keyword")

	switch {
	case p.check(token.STRING):
		return p.parseImportPlain(start)
	case p.check(token.STAR):
		return p.parseImportGlob(start)
	case p.check(token.LBRACE):
		return p.parseImportAliases(start)
	}

	p.errorWithCode(errors.ErrorMalformedImport, "expected import path, '*', or '{' after 'import'")
	return nil
}

func (p *Parser) parseImportPlain(start token.Token) *ast.Item {
	pathTok := p.advance()
	path := p.makeStrLit(pathTok)

	items := &ast.ImportPlain{
		Pos:    path.Pos,
		EndPos: path.EndPos,
	}
	if p.match(token.AS) {
		alias, ok := p.consumeIdent("expected alias name after 'as'")
		if !ok {
			return nil
		}
		items.Alias = &alias
		items.EndPos = alias.EndPos
	}

	end := p.consume(token.SEMICOLON, "expected ';' after import directive")

	return p.makeItem(start, end, &ast.ImportDirective{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Path:   path,
		Items:  items,
	})
}

func (p *Parser) parseImportGlob(start token.Token) *ast.Item {
	starTok := p.advance()

	items := &ast.ImportGlob{
		Pos:    p.makePos(starTok),
		EndPos: p.makeEndPos(starTok),
	}
	if p.match(token.AS) {
		alias, ok := p.consumeIdent("expected alias name after 'as'")
		if !ok {
			return nil
		}
		items.Alias = &alias
		items.EndPos = alias.EndPos
	}

	path, ok := p.parseImportFrom()
	if !ok {
		return nil
	}
	end := p.consume(token.SEMICOLON, "expected ';' after import directive")

	return p.makeItem(start, end, &ast.ImportDirective{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Path:   path,
		Items:  items,
	})
}

func (p *Parser) parseImportAliases(start token.Token) *ast.Item {
	openTok := p.advance()

	var aliases []ast.ImportAlias
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		name, ok := p.consumeIdent("expected imported name")
		if !ok {
			return nil
		}

		alias := ast.ImportAlias{Name: name}
		if p.match(token.AS) {
			aliasName, ok := p.consumeIdent("expected alias name after 'as'")
			if !ok {
				return nil
			}
			alias.Alias = &aliasName
		}
		aliases = append(aliases, alias)

		if !p.match(token.COMMA) {
			break
		}
	}

	closeTok := p.consumeClosing(token.RBRACE, openTok, "expected '}' to close import list")

	path, ok := p.parseImportFrom()
	if !ok {
		return nil
	}
	end := p.consume(token.SEMICOLON, "expected ';' after import directive")

	return p.makeItem(start, end, &ast.ImportDirective{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Path:   path,
		Items: &ast.ImportAliases{
			Pos:     p.makePos(openTok),
			EndPos:  p.makeEndPos(closeTok),
			Aliases: aliases,
		},
	})
}

func (p *Parser) parseImportFrom() (ast.StrLit, bool) {
	p.consume(token.FROM, "expected 'from' in import directive")
	pathTok := p.consume(token.STRING, "expected import path string")
	if pathTok.Type == token.ILLEGAL {
		return ast.StrLit{}, false
	}
	return p.makeStrLit(pathTok), true
}
