package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/token"
)

// parseContract parses a contract, abstract contract, interface, or
// library definition together with its body items.
func (p *Parser) parseContract() *ast.Item {
	start := p.peek()

	var kind ast.ContractKind
	switch {
	case p.match(token.ABSTRACT):
		p.consume(token.CONTRACT, "expected 'contract' after 'abstract'")
		kind = ast.ABSTRACT_CONTRACT
	case p.match(token.CONTRACT):
		kind = ast.CONTRACT
	case p.match(token.INTERFACE):
		kind = ast.INTERFACE
	case p.match(token.LIBRARY):
		kind = ast.LIBRARY
	default:
		p.errorAtCurrent("expected contract, interface, or library keyword")
		return nil
	}

	name, ok := p.consumeIdent("expected contract name")
	if !ok {
		return nil
	}

	var inheritance []ast.Modifier
	if p.match(token.IS) {
		for {
			base, ok := p.parseModifierInvocation()
			if !ok {
				return nil
			}
			inheritance = append(inheritance, base)

			if !p.match(token.COMMA) {
				break
			}
		}
	}

	openBrace := p.consume(token.LBRACE, "expected '{' to start contract body")

	var body []*ast.Item
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		docs := p.collectDocComments()
		if p.check(token.RBRACE) {
			break
		}

		item := p.parseItem()
		if item == nil {
			p.synchronize()
			continue
		}

		item.Docs = docs
		if len(docs) > 0 {
			item.Pos = docs[0].Pos
		}
		body = append(body, item)
	}

	end := p.consumeClosing(token.RBRACE, openBrace, "expected '}' to close contract body")

	return p.makeItem(start, end, &ast.ItemContract{
		Pos:         p.makePos(start),
		EndPos:      p.makeEndPos(end),
		Kind:        kind,
		Name:        name,
		Inheritance: inheritance,
		Body:        body,
	})
}

// parseModifierInvocation parses a path with optional call arguments. The
// same shape serves inheritance specifiers on contracts and modifier
// invocations on functions.
func (p *Parser) parseModifierInvocation() (ast.Modifier, bool) {
	path, ok := p.parsePath()
	if !ok {
		return ast.Modifier{}, false
	}

	modifier := ast.Modifier{
		Pos:    path.Pos,
		EndPos: path.EndPos,
		Name:   path,
		Arguments: ast.CallArgs{
			Pos:    path.EndPos,
			EndPos: path.EndPos,
		},
	}

	if p.check(token.LPAREN) {
		args, ok := p.parseCallArgs()
		if !ok {
			return ast.Modifier{}, false
		}
		modifier.Arguments = args
		modifier.EndPos = args.EndPos
	}

	return modifier, true
}

// parseCallArgs parses a parenthesized argument list, splitting the
// opaque expression runs at top-level commas.
func (p *Parser) parseCallArgs() (ast.CallArgs, bool) {
	openTok := p.consume(token.LPAREN, "expected '(' to start argument list")

	args := ast.CallArgs{
		Pos:     p.makePos(openTok),
		Present: true,
	}

	for !p.check(token.RPAREN) && !p.isAtEnd() {
		raw := p.collectBalanced(token.COMMA, token.RPAREN)
		if len(raw) == 0 {
			p.errorAtCurrent("expected argument expression")
			return ast.CallArgs{}, false
		}

		args.Args = append(args.Args, ast.Expr{
			Pos:    p.makePos(raw[0]),
			EndPos: p.makeEndPos(raw[len(raw)-1]),
			Tokens: raw,
		})

		if !p.match(token.COMMA) {
			break
		}
	}

	closeTok := p.consumeClosing(token.RPAREN, openTok, "expected ')' to close argument list")
	args.EndPos = p.makeEndPos(closeTok)
	return args, true
}
