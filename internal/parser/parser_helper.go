package parser

import (
	"strconv"
	"strings"

	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt token.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...token.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt token.TokenType, message string) token.Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	illegal := token.Token{Type: token.ILLEGAL, Position: p.peek().Position}
	p.advance()
	return illegal
}

func (p *Parser) peek() token.Token {
	// A scan error can truncate the stream before the EOF token.
	if p.current >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return len(p.tokens) == 0 || p.peek().Type == token.EOF
}

func (p *Parser) errorAtCurrent(message string) {
	p.errorWithCode(errors.ErrorGenericParse, message)
}

func (p *Parser) errorWithCode(code string, message string) {
	p.errors = append(p.errors, ParseError{
		Code:     code,
		Message:  message,
		Position: p.peek().Position,
		Found:    p.peek().Lexeme,
	})
}

// consumeClosing is consume for closing delimiters. On failure the recorded
// error points back at the delimiter that was left open rather than at
// whatever token the parser stopped on.
func (p *Parser) consumeClosing(tt token.TokenType, open token.Token, message string) token.Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errors = append(p.errors, ParseError{
		Code:     errors.ErrorUnbalancedDelimiter,
		Message:  message,
		Position: open.Position,
		Found:    open.Lexeme,
	})
	illegal := token.Token{Type: token.ILLEGAL, Position: p.peek().Position}
	p.advance()
	return illegal
}

func (p *Parser) makePos(tok token.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok token.Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

// synchronize skips tokens until a likely item boundary so one malformed
// item does not cascade into errors for everything after it.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.PRAGMA, token.IMPORT, token.USING, token.CONTRACT, token.ABSTRACT,
			token.INTERFACE, token.LIBRARY, token.FUNCTION, token.CONSTRUCTOR,
			token.FALLBACK, token.RECEIVE, token.MODIFIER, token.STRUCT, token.ENUM,
			token.TYPE, token.ERROR, token.EVENT, token.RBRACE:
			return
		}

		p.advance()
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok token.Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(token.IDENT, message)
	if tok.Type == token.ILLEGAL {
		return ast.Ident{Value: "error"}, false
	}
	return p.makeIdent(tok), true
}

// makeStrLit creates an ast.StrLit from a string token, decoding the
// quotes and escape sequences the tokenizer left in place.
func (p *Parser) makeStrLit(tok token.Token) ast.StrLit {
	return ast.StrLit{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  decodeStringLiteral(tok.Lexeme),
	}
}

func decodeStringLiteral(lexeme string) string {
	if len(lexeme) < 2 {
		return lexeme
	}
	inner := lexeme[1 : len(lexeme)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}
	if decoded, err := strconv.Unquote(`"` + strings.ReplaceAll(inner, `\'`, `'`) + `"`); err == nil {
		return decoded
	}
	return inner
}

// collectDocComments gathers a run of leading doc comment tokens.
func (p *Parser) collectDocComments() []ast.DocComment {
	var docs []ast.DocComment
	for p.check(token.DOC_COMMENT) {
		tok := p.advance()
		docs = append(docs, ast.DocComment{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Text:   tok.Lexeme,
		})
	}
	return docs
}

// parsePath parses a dotted path like "A" or "A.B.add".
func (p *Parser) parsePath() (ast.Path, bool) {
	first, ok := p.consumeIdent("expected identifier in path")
	if !ok {
		return ast.Path{}, false
	}

	parts := []ast.Ident{first}
	for p.match(token.DOT) {
		next, ok := p.consumeIdent("expected identifier after '.' in path")
		if !ok {
			return ast.Path{}, false
		}
		parts = append(parts, next)
	}

	return ast.Path{
		Pos:    parts[0].Pos,
		EndPos: parts[len(parts)-1].EndPos,
		Parts:  parts,
	}, true
}

// sourceBetween slices the original source text spanned by a token run.
// Used for leaves that must keep their exact spelling, like version
// requirements.
func (p *Parser) sourceBetween(first token.Token, last token.Token) string {
	start := first.Position.Offset
	end := last.Position.Offset + len(last.Lexeme)
	if start < 0 || end > len(p.source) || start > end {
		return ""
	}
	return p.source[start:end]
}

func isOpenDelim(tt token.TokenType) bool {
	return tt == token.LPAREN || tt == token.LBRACKET || tt == token.LBRACE
}

func isCloseDelim(tt token.TokenType) bool {
	return tt == token.RPAREN || tt == token.RBRACKET || tt == token.RBRACE
}

// collectBalanced consumes tokens until the depth of nested delimiters
// returns to zero and the given terminator appears at top level. The
// terminator itself is not consumed. Returns the collected run.
func (p *Parser) collectBalanced(terminators ...token.TokenType) []token.Token {
	var collected []token.Token
	depth := 0

	for !p.isAtEnd() {
		tt := p.peek().Type
		if depth == 0 {
			for _, term := range terminators {
				if tt == term {
					return collected
				}
			}
		}
		if isOpenDelim(tt) {
			depth++
		} else if isCloseDelim(tt) {
			if depth == 0 {
				return collected
			}
			depth--
		}
		collected = append(collected, p.advance())
	}

	return collected
}
