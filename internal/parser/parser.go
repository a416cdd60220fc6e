package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/token"
)

type ParseError struct {
	Code     string // error code from internal/errors, E0106 when generic
	Message  string
	Position token.Position
	Found    string // lexeme at the error site, empty at end of input
}

// Parser projects a token stream into the item tree. Expression, statement,
// and type sub-grammars stay opaque: their token runs are carried through
// unparsed for later phases.
type Parser struct {
	filename string
	source   string
	tokens   []token.Token
	current  int
	errors   []ParseError
}

func NewParser(filename string, source string, tokens []token.Token) *Parser {
	return &Parser{
		filename: filename,
		source:   source,
		tokens:   tokens,
	}
}

// ParseSource scans and parses one source unit into its top-level items.
// Items that fail to parse are dropped after recording a ParseError; the
// parser resynchronizes and continues with the next item.
func ParseSource(path string, source string) ([]*ast.Item, []ParseError, []ScanError) {
	tokens, scanErrors := ScanTokens(path, source)

	parser := NewParser(path, source, tokens)
	items := parser.ParseSourceUnit()

	return items, parser.errors, scanErrors
}

// ParseSourceUnit parses the ordered item sequence of one source unit.
func (p *Parser) ParseSourceUnit() []*ast.Item {
	var items []*ast.Item

	for !p.isAtEnd() {
		docs := p.collectDocComments()
		if p.isAtEnd() {
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
		items = append(items, item)
	}

	return items
}
