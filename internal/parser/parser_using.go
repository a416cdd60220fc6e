package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

// userDefinableOperators maps operator tokens to the closed operator set a
// using directive may bind.
var userDefinableOperators = map[token.TokenType]ast.UserDefinableOperator{
	token.AMPERSAND: ast.BIT_AND,
	token.TILDE:     ast.BIT_NOT,
	token.PIPE:      ast.BIT_OR,
	token.CARET:     ast.BIT_XOR,
	token.PLUS:      ast.ADD,
	token.SLASH:     ast.DIV,
	token.PERCENT:   ast.REM,
	token.STAR:      ast.MUL,
	token.MINUS:     ast.SUB,
	token.EQ:        ast.EQ,
	token.GT_EQ:     ast.GE,
	token.GT:        ast.GT,
	token.LT_EQ:     ast.LE,
	token.LT:        ast.LT,
	token.NOT_EQ:    ast.NE,
}

// parseUsing parses a using directive in either list form:
//
//	using SafeMath for uint256;
//	using { A, B.add as + } for uint256 global;
//	using Lib for *;
func (p *Parser) parseUsing() *ast.Item {
	start := p.consume(token.USING, "expected 'using' keyword")

	var list ast.UsingList
	if p.check(token.LBRACE) {
		multiple, ok := p.parseUsingMultiple()
		if !ok {
			return nil
		}
		list = multiple
	} else {
		path, ok := p.parsePath()
		if !ok {
			return nil
		}
		list = &ast.UsingSingle{
			Pos:    path.Pos,
			EndPos: path.EndPos,
			Path:   path,
		}
	}

	p.consume(token.FOR, "expected 'for' in using directive")

	var ty *ast.Type
	if p.match(token.STAR) {
		// wildcard: directive applies to every type
	} else {
		parsed, ok := p.parseType()
		if !ok {
			return nil
		}
		ty = &parsed
	}

	global := p.match(token.GLOBAL)
	end := p.consume(token.SEMICOLON, "expected ';' after using directive")

	return p.makeItem(start, end, &ast.UsingDirective{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		List:   list,
		Ty:     ty,
		Global: global,
	})
}

func (p *Parser) parseUsingMultiple() (*ast.UsingMultiple, bool) {
	openTok := p.advance()

	var entries []ast.UsingEntry
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		path, ok := p.parsePath()
		if !ok {
			return nil, false
		}

		entry := ast.UsingEntry{Path: path}
		if p.match(token.AS) {
			op, ok := userDefinableOperators[p.peek().Type]
			if !ok {
				p.errorWithCode(errors.ErrorMalformedUsing, "expected user-definable operator after 'as'")
				return nil, false
			}
			p.advance()
			entry.Operator = &op
		}
		entries = append(entries, entry)

		if !p.match(token.COMMA) {
			break
		}
	}

	closeTok := p.consumeClosing(token.RBRACE, openTok, "expected '}' to close using list")

	return &ast.UsingMultiple{
		Pos:     p.makePos(openTok),
		EndPos:  p.makeEndPos(closeTok),
		Entries: entries,
	}, true
}
