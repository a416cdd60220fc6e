package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

// parseItem dispatches on the leading token of a top-level or contract-body
// declaration. Returns nil after recording an error when no item could be
// recognized; the caller resynchronizes.
func (p *Parser) parseItem() *ast.Item {
	switch p.peek().Type {
	case token.PRAGMA:
		return p.parsePragma()
	case token.IMPORT:
		return p.parseImport()
	case token.USING:
		return p.parseUsing()
	case token.CONTRACT, token.ABSTRACT, token.INTERFACE, token.LIBRARY:
		return p.parseContract()
	case token.FUNCTION, token.CONSTRUCTOR, token.FALLBACK, token.RECEIVE, token.MODIFIER:
		return p.parseFunction()
	case token.STRUCT:
		return p.parseStruct()
	case token.ENUM:
		return p.parseEnum()
	case token.TYPE:
		return p.parseUdvt()
	case token.ERROR:
		return p.parseErrorItem()
	case token.EVENT:
		return p.parseEvent()
	default:
		if p.check(token.IDENT) || p.check(token.MAPPING) {
			return p.parseVariableDefinition()
		}
		p.errorWithCode(errors.ErrorExpectedItem, "expected item declaration")
		return nil
	}
}

func (p *Parser) parseStruct() *ast.Item {
	start := p.consume(token.STRUCT, "expected 'struct' keyword")

	name, ok := p.consumeIdent("expected struct name")
	if !ok {
		return nil
	}

	openBrace := p.consume(token.LBRACE, "expected '{' to start struct body")

	var fields []ast.VariableDeclaration
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		field, ok := p.parseVariableDeclaration()
		if !ok {
			return nil
		}
		fields = append(fields, field)
		p.consume(token.SEMICOLON, "expected ';' after struct field")
	}

	end := p.consumeClosing(token.RBRACE, openBrace, "expected '}' to close struct body")

	return p.makeItem(start, end, &ast.ItemStruct{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Fields: fields,
	})
}

func (p *Parser) parseEnum() *ast.Item {
	start := p.consume(token.ENUM, "expected 'enum' keyword")

	name, ok := p.consumeIdent("expected enum name")
	if !ok {
		return nil
	}

	openBrace := p.consume(token.LBRACE, "expected '{' to start enum body")

	if p.check(token.RBRACE) {
		p.errorAtCurrent("expected at least one enum variant")
	}

	var variants []ast.Ident
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		variant, ok := p.consumeIdent("expected enum variant name")
		if !ok {
			return nil
		}
		variants = append(variants, variant)

		if !p.match(token.COMMA) {
			break
		}
	}

	end := p.consumeClosing(token.RBRACE, openBrace, "expected '}' to close enum body")

	return p.makeItem(start, end, &ast.ItemEnum{
		Pos:      p.makePos(start),
		EndPos:   p.makeEndPos(end),
		Name:     name,
		Variants: variants,
	})
}

func (p *Parser) parseUdvt() *ast.Item {
	start := p.consume(token.TYPE, "expected 'type' keyword")

	name, ok := p.consumeIdent("expected type name")
	if !ok {
		return nil
	}

	p.consume(token.IS, "expected 'is' in user-defined value type")

	ty, ok := p.parseType()
	if !ok {
		return nil
	}

	end := p.consume(token.SEMICOLON, "expected ';' after user-defined value type")

	return p.makeItem(start, end, &ast.ItemUdvt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Ty:     ty,
	})
}

func (p *Parser) parseErrorItem() *ast.Item {
	start := p.consume(token.ERROR, "expected 'error' keyword")

	name, ok := p.consumeIdent("expected error name")
	if !ok {
		return nil
	}

	params, ok := p.parseParameterList()
	if !ok {
		return nil
	}

	end := p.consume(token.SEMICOLON, "expected ';' after error definition")

	return p.makeItem(start, end, &ast.ItemError{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Name:       name,
		Parameters: params,
	})
}

func (p *Parser) parseEvent() *ast.Item {
	start := p.consume(token.EVENT, "expected 'event' keyword")

	name, ok := p.consumeIdent("expected event name")
	if !ok {
		return nil
	}

	params, ok := p.parseParameterList()
	if !ok {
		return nil
	}

	anonymous := p.match(token.ANONYMOUS)
	end := p.consume(token.SEMICOLON, "expected ';' after event definition")

	return p.makeItem(start, end, &ast.ItemEvent{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Name:       name,
		Parameters: params,
		Anonymous:  anonymous,
	})
}

func (p *Parser) makeItem(start token.Token, end token.Token, kind ast.ItemKind) *ast.Item {
	return &ast.Item{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Kind:   kind,
	}
}
