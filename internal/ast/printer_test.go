// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcph4/solar/token"
)

func uintTy(name string) Type {
	return Type{Tokens: []token.Token{{Type: token.IDENT, Lexeme: name}}}
}

func TestPragmaDirectiveString(t *testing.T) {
	version := &PragmaDirective{Tokens: &PragmaVersion{
		Name: Ident{Value: "solidity"},
		Req:  SemverReq{Source: "^0.8.0"},
	}}
	assert.Equal(t, "pragma solidity ^0.8.0;", version.String())

	custom := &PragmaDirective{Tokens: &PragmaCustom{
		Name:  &Ident{Value: "abicoder"},
		Value: &Ident{Value: "v2"},
	}}
	assert.Equal(t, "pragma abicoder v2;", custom.String())

	verbatim := &PragmaDirective{Tokens: &PragmaVerbatim{Tokens: []token.Token{
		{Type: token.IDENT, Lexeme: "foo"},
		{Type: token.NUMBER, Lexeme: "1"},
		{Type: token.NUMBER, Lexeme: "2"},
	}}}
	assert.Equal(t, "pragma foo 1 2;", verbatim.String())
}

func TestImportDirectiveString(t *testing.T) {
	plain := &ImportDirective{
		Path:  StrLit{Value: "foo.sol"},
		Items: &ImportPlain{},
	}
	assert.Equal(t, `import "foo.sol";`, plain.String())

	glob := &ImportDirective{
		Path:  StrLit{Value: "foo.sol"},
		Items: &ImportGlob{Alias: &Ident{Value: "Foo"}},
	}
	assert.Equal(t, `import * as Foo from "foo.sol";`, glob.String())

	aliases := &ImportDirective{
		Path: StrLit{Value: "foo.sol"},
		Items: &ImportAliases{Aliases: []ImportAlias{
			{Name: Ident{Value: "Foo"}, Alias: &Ident{Value: "Bar"}},
			{Name: Ident{Value: "Baz"}},
		}},
	}
	assert.Equal(t, `import { Foo as Bar, Baz } from "foo.sol";`, aliases.String())
}

func TestUsingDirectiveString(t *testing.T) {
	add := ADD
	using := &UsingDirective{
		List: &UsingMultiple{Entries: []UsingEntry{
			{Path: Path{Parts: []Ident{{Value: "A"}}}},
			{Path: Path{Parts: []Ident{{Value: "B"}, {Value: "add"}}}, Operator: &add},
		}},
		Ty:     &Type{Tokens: []token.Token{{Type: token.IDENT, Lexeme: "uint256"}}},
		Global: true,
	}
	assert.Equal(t, "using { A, B.add as + } for uint256 global;", using.String())

	wildcard := &UsingDirective{
		List: &UsingSingle{Path: Path{Parts: []Ident{{Value: "SafeMath"}}}},
	}
	assert.Equal(t, "using SafeMath for *;", wildcard.String())
}

func TestItemFunctionString(t *testing.T) {
	vis := EXTERNAL
	mut := PURE
	fn := &ItemFunction{
		Kind: FUNCTION,
		Header: FunctionHeader{
			Name:            &Ident{Value: "helloWorld"},
			Visibility:      &vis,
			StateMutability: &mut,
			Returns: []VariableDeclaration{
				{Ty: uintTy("string"), Storage: storagePtr(MEMORY)},
			},
		},
	}
	assert.Equal(t, "function helloWorld() external pure returns (string memory);", fn.String())
}

func TestConstructorWithModifierString(t *testing.T) {
	fn := &ItemFunction{
		Kind: CONSTRUCTOR,
		Header: FunctionHeader{
			Parameters: []VariableDeclaration{
				{Ty: uintTy("uint256"), Name: &Ident{Value: "x"}},
			},
			Modifiers: []Modifier{{
				Name: Path{Parts: []Ident{{Value: "Base"}}},
				Arguments: CallArgs{Present: true, Args: []Expr{
					{Tokens: []token.Token{{Type: token.IDENT, Lexeme: "x"}}},
				}},
			}},
		},
		Body: &Block{},
	}
	assert.Equal(t, "constructor(uint256 x) Base(x) { }", fn.String())
}

func TestItemContractString(t *testing.T) {
	contract := &ItemContract{
		Kind: ABSTRACT_CONTRACT,
		Name: Ident{Value: "Foo"},
		Inheritance: []Modifier{
			{Name: Path{Parts: []Ident{{Value: "Bar"}}}},
		},
		Body: []*Item{
			{Kind: &ItemEnum{Name: Ident{Value: "Color"}, Variants: []Ident{{Value: "Red"}, {Value: "Green"}}}},
		},
	}
	assert.Equal(t, "abstract contract Foo is Bar {\n  enum Color { Red, Green }\n}", contract.String())
}

func TestVariableDefinitionString(t *testing.T) {
	vis := PUBLIC
	mut := CONSTANT
	def := &VariableDefinition{
		Ty:          uintTy("uint256"),
		Visibility:  &vis,
		Mutability:  &mut,
		Name:        Ident{Value: "FOO"},
		Initializer: &Expr{Tokens: []token.Token{{Type: token.NUMBER, Lexeme: "42"}}},
	}
	assert.Equal(t, "uint256 public constant FOO = 42;", def.String())
}

func TestEventAndErrorString(t *testing.T) {
	event := &ItemEvent{
		Name: Ident{Value: "Transfer"},
		Parameters: []VariableDeclaration{
			{Ty: uintTy("address"), Indexed: true, Name: &Ident{Value: "from"}},
			{Ty: uintTy("uint256"), Name: &Ident{Value: "value"}},
		},
	}
	assert.Equal(t, "event Transfer(address indexed from, uint256 value);", event.String())

	anon := &ItemEvent{Name: Ident{Value: "Ping"}, Anonymous: true}
	assert.Equal(t, "event Ping() anonymous;", anon.String())

	errItem := &ItemError{
		Name: Ident{Value: "InsufficientBalance"},
		Parameters: []VariableDeclaration{
			{Ty: uintTy("uint256"), Name: &Ident{Value: "available"}},
		},
	}
	assert.Equal(t, "error InsufficientBalance(uint256 available);", errItem.String())
}

func TestItemWithDocsString(t *testing.T) {
	item := &Item{
		Docs: []DocComment{{Text: "/// A user-defined value type"}},
		Kind: &ItemUdvt{Name: Ident{Value: "Price"}, Ty: uintTy("uint128")},
	}
	assert.Equal(t, "/// A user-defined value type\ntype Price is uint128;", item.String())
}

func storagePtr(s Storage) *Storage {
	return &s
}
