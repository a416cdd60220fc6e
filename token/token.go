// SPDX-License-Identifier: Apache-2.0
package token

type TokenType string

// Position tracks where a token starts in its source unit.
type Position struct {
	Offset int
	Line   int
	Column int
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT      = "IDENT"  // foo, balanceOf, _owner ...
	NUMBER     = "NUMBER" // 1234567890
	HEX_NUMBER = "HEX_NUMBER"
	STRING     = "STRING" // "foo.sol"

	DOC_COMMENT = "DOC_COMMENT"

	// Operators
	ASSIGN    = "="
	PLUS      = "+"
	MINUS     = "-"
	STAR      = "*"
	SLASH     = "/"
	PERCENT   = "%"
	CARET     = "^"
	TILDE     = "~"
	BANG      = "!"
	AMPERSAND = "&"
	PIPE      = "|"

	EQ     = "=="
	NOT_EQ = "!="
	LT     = "<"
	LT_EQ  = "<="
	GT     = ">"
	GT_EQ  = ">="

	AND   = "&&"
	OR    = "||"
	SHL   = "<<"
	SHR   = ">>"
	ARROW = "=>"

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	COLON     = ":"
	DOT       = "."
	QUESTION  = "?"

	LPAREN   = "("
	RPAREN   = ")"
	LBRACE   = "{"
	RBRACE   = "}"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	PRAGMA      = "PRAGMA"
	IMPORT      = "IMPORT"
	AS          = "AS"
	FROM        = "FROM"
	USING       = "USING"
	FOR         = "FOR"
	GLOBAL      = "GLOBAL"
	CONTRACT    = "CONTRACT"
	ABSTRACT    = "ABSTRACT"
	INTERFACE   = "INTERFACE"
	LIBRARY     = "LIBRARY"
	IS          = "IS"
	FUNCTION    = "FUNCTION"
	CONSTRUCTOR = "CONSTRUCTOR"
	FALLBACK    = "FALLBACK"
	RECEIVE     = "RECEIVE"
	MODIFIER    = "MODIFIER"
	STRUCT      = "STRUCT"
	ENUM        = "ENUM"
	TYPE        = "TYPE"
	ERROR       = "ERROR"
	EVENT       = "EVENT"
	ANONYMOUS   = "ANONYMOUS"
	INDEXED     = "INDEXED"
	PUBLIC      = "PUBLIC"
	PRIVATE     = "PRIVATE"
	INTERNAL    = "INTERNAL"
	EXTERNAL    = "EXTERNAL"
	PURE        = "PURE"
	VIEW        = "VIEW"
	PAYABLE     = "PAYABLE"
	CONSTANT    = "CONSTANT"
	IMMUTABLE   = "IMMUTABLE"
	MEMORY      = "MEMORY"
	STORAGE     = "STORAGE"
	CALLDATA    = "CALLDATA"
	VIRTUAL     = "VIRTUAL"
	OVERRIDE    = "OVERRIDE"
	RETURNS     = "RETURNS"
	MAPPING     = "MAPPING"
)

var keywords = map[string]TokenType{
	"pragma":      PRAGMA,
	"import":      IMPORT,
	"as":          AS,
	"from":        FROM,
	"using":       USING,
	"for":         FOR,
	"global":      GLOBAL,
	"contract":    CONTRACT,
	"abstract":    ABSTRACT,
	"interface":   INTERFACE,
	"library":     LIBRARY,
	"is":          IS,
	"function":    FUNCTION,
	"constructor": CONSTRUCTOR,
	"fallback":    FALLBACK,
	"receive":     RECEIVE,
	"modifier":    MODIFIER,
	"struct":      STRUCT,
	"enum":        ENUM,
	"type":        TYPE,
	"error":       ERROR,
	"event":       EVENT,
	"anonymous":   ANONYMOUS,
	"indexed":     INDEXED,
	"public":      PUBLIC,
	"private":     PRIVATE,
	"internal":    INTERNAL,
	"external":    EXTERNAL,
	"pure":        PURE,
	"view":        VIEW,
	"payable":     PAYABLE,
	"constant":    CONSTANT,
	"immutable":   IMMUTABLE,
	"memory":      MEMORY,
	"storage":     STORAGE,
	"calldata":    CALLDATA,
	"virtual":     VIRTUAL,
	"override":    OVERRIDE,
	"returns":     RETURNS,
	"mapping":     MAPPING,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
