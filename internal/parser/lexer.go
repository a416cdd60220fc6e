package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

// SolidityLexer tokenizes one source unit. Rule order matters: doc comments
// before plain comments, operators before punctuation.
var SolidityLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "DocComment", Pattern: `///[^\n]*|/\*\*(?s:.*?)\*/`},
		{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},

		// Literals
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`},
		{Name: "HexNumber", Pattern: `0x[0-9a-fA-F_]+`},
		{Name: "Number", Pattern: `[0-9]+`},

		// Keywords and identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},

		// Operators (multi-character first)
		{Name: "Operator", Pattern: `=>|==|!=|<=|>=|<<|>>|&&|\|\||[-+*/%^~!&|<>=]`},

		// Punctuation
		{Name: "Punctuation", Pattern: `[{}()\[\];,.?:]`},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})

type ScanError struct {
	Code     string // error code from internal/errors, E0001 when unset
	Message  string
	Position token.Position
	Length   int
	Found    string // the rejected character sequence, when known
}

// ScanTokens projects raw source text into the token stream the item
// parser consumes. Whitespace and non-doc comments are discarded here; doc
// comments stay in the stream so the parser can attach them to items.
func ScanTokens(path string, source string) ([]token.Token, []ScanError) {
	lex, err := SolidityLexer.Lex(path, strings.NewReader(source))
	if err != nil {
		return nil, []ScanError{{Message: err.Error()}}
	}

	symbols := lexer.SymbolsByRune(SolidityLexer)

	var tokens []token.Token
	var errs []ScanError

	for {
		tok, err := lex.Next()
		if err != nil {
			errs = append(errs, scanErrorFrom(err))
			break
		}
		if tok.EOF() {
			tokens = append(tokens, token.Token{
				Type:     token.EOF,
				Position: makeTokenPos(tok.Pos),
			})
			break
		}

		switch symbols[tok.Type] {
		case "Whitespace", "Comment":
			continue
		case "DocComment":
			tokens = append(tokens, makeToken(token.DOC_COMMENT, tok))
		case "String":
			tokens = append(tokens, makeToken(token.STRING, tok))
		case "HexNumber":
			tokens = append(tokens, makeToken(token.HEX_NUMBER, tok))
		case "Number":
			tokens = append(tokens, makeToken(token.NUMBER, tok))
		case "Ident":
			tokens = append(tokens, makeToken(token.LookupIdent(tok.Value), tok))
		case "Operator", "Punctuation":
			// The token type constants spell the lexeme exactly.
			tokens = append(tokens, makeToken(token.TokenType(tok.Value), tok))
		default:
			errs = append(errs, ScanError{
				Code:     errors.ErrorUnexpectedCharacter,
				Message:  "unexpected character sequence: " + tok.Value,
				Position: makeTokenPos(tok.Pos),
				Length:   len(tok.Value),
				Found:    tok.Value,
			})
		}
	}

	return tokens, errs
}

func makeToken(tt token.TokenType, tok lexer.Token) token.Token {
	return token.Token{
		Type:     tt,
		Lexeme:   tok.Value,
		Position: makeTokenPos(tok.Pos),
	}
}

func makeTokenPos(pos lexer.Position) token.Position {
	return token.Position{
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

func scanErrorFrom(err error) ScanError {
	if perr, ok := err.(participle.Error); ok {
		return ScanError{
			Message: perr.Message(),
			Position: token.Position{
				Offset: perr.Position().Offset,
				Line:   perr.Position().Line,
				Column: perr.Position().Column,
			},
			Length: 1,
		}
	}
	return ScanError{Message: err.Error(), Length: 1}
}
