package ast

import "github.com/jmcph4/solar/token"

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like contract names, variable names, etc.
// Example: "ERC20", "balanceOf", "_owner"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// StrLit represents a string literal with its decoded content
// Example: "\"foo.sol\"", "\"SPDX-License-Identifier: MIT\""
type StrLit struct {
	Pos    Position
	EndPos Position
	Value  string // decoded content, without the surrounding quotes
}

// Path represents dotted qualified names
// Example: "SafeMath", "Math.add", "A.B.C"
type Path struct {
	Pos    Position
	EndPos Position
	Parts  []Ident
}

// SemverReq represents an unparsed version requirement from a version pragma
// Example: "^0.8.0", ">=0.7.0 <0.9.0"
type SemverReq struct {
	Pos    Position
	EndPos Position
	Source string
}

// Type represents a type expression. Type grammars are owned by a later
// phase, so the run of tokens is carried losslessly and never interpreted.
// Example: "uint256", "mapping(address => uint256)", "Foo.Bar[]"
type Type struct {
	Pos    Position
	EndPos Position
	Tokens []token.Token
}

// Expr represents an expression, carried as its raw token run.
// Example: "42", "a + b", "keccak256(abi.encode(x))"
type Expr struct {
	Pos    Position
	EndPos Position
	Tokens []token.Token
}

// Block represents a function or modifier body, carried as the raw token
// run between its braces.
// Example: "{ return balances[owner]; }"
type Block struct {
	Pos    Position
	EndPos Position
	Tokens []token.Token // tokens between the braces, exclusive
}

// CallArgs represents the argument list of a modifier invocation or
// inheritance specifier. Empty Args with Present unset means no
// parentheses were written at all.
// Example: "(42, msg.sender)" in "Ownable(42, msg.sender)"
type CallArgs struct {
	Pos     Position
	EndPos  Position
	Present bool // whether a parenthesized list was written
	Args    []Expr
}

// DocComment represents documentation comments attached to an item
// Example: "/// @notice Returns the balance of an account"
type DocComment struct {
	Pos    Position
	EndPos Position
	Text   string
}

// Item is a top-level declaration in a source unit together with its
// leading doc comments. Contract bodies nest Items recursively.
// Example: "pragma solidity ^0.8.0;", "contract Foo is Bar { ... }"
type Item struct {
	Pos    Position
	EndPos Position
	Docs   []DocComment
	Kind   ItemKind
}

// PragmaDirective represents a pragma directive
// Example: "pragma solidity ^0.8.0;", "pragma abicoder v2;"
type PragmaDirective struct {
	Pos    Position
	EndPos Position
	Tokens PragmaTokens
}

// PragmaVersion is a version requirement pragma
// Example: "pragma solidity ^0.8.0;"
type PragmaVersion struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Req    SemverReq
}

// PragmaCustom is a pragma made of a name and an optional value, each of
// which may be an identifier or a string literal
// Example: "pragma abicoder v2;", "pragma experimental \"ABIEncoderV2\";"
type PragmaCustom struct {
	Pos    Position
	EndPos Position
	Name   IdentOrStrLit
	Value  IdentOrStrLit // nil when absent
}

// PragmaVerbatim preserves the raw token run of any pragma that matches
// neither the version nor the custom shape. Tokens are never dropped or
// reordered, so unrecognized pragmas round-trip for diagnostics.
// Example: "pragma foo bar baz;"
type PragmaVerbatim struct {
	Pos    Position
	EndPos Position
	Tokens []token.Token
}

// ImportDirective represents an import directive
// Example: "import \"foo.sol\";", "import {A as B} from \"foo.sol\";"
type ImportDirective struct {
	Pos    Position
	EndPos Position
	Path   StrLit
	Items  ImportItems
}

// ImportPlain is a whole-file import with an optional alias
// Example: "import \"foo.sol\";", "import \"foo.sol\" as Foo;"
type ImportPlain struct {
	Pos    Position
	EndPos Position
	Alias  *Ident
}

// ImportAliases is a braced list of imported names with optional aliases
// Example: "import { Foo as Bar, Baz } from \"foo.sol\";"
type ImportAliases struct {
	Pos     Position
	EndPos  Position
	Aliases []ImportAlias
}

// ImportAlias is one entry of an ImportAliases list
type ImportAlias struct {
	Name  Ident
	Alias *Ident
}

// ImportGlob is a glob import with an optional alias
// Example: "import * as Foo from \"foo.sol\";"
type ImportGlob struct {
	Pos    Position
	EndPos Position
	Alias  *Ident
}

// UsingDirective attaches library functions or operators to a type
// Example: "using SafeMath for uint256;", "using { A, B.add as + } for uint256 global;"
type UsingDirective struct {
	Pos    Position
	EndPos Position
	List   UsingList
	Ty     *Type // nil means the wildcard "*"
	Global bool
}

// UsingSingle is a single library path
// Example: "SafeMath" in "using SafeMath for uint256;"
type UsingSingle struct {
	Pos    Position
	EndPos Position
	Path   Path
}

// UsingMultiple is a braced list of paths with optional operator bindings
// Example: "{ A, B.add as + }" in "using { A, B.add as + } for uint256;"
type UsingMultiple struct {
	Pos     Position
	EndPos  Position
	Entries []UsingEntry
}

// UsingEntry is one entry of a UsingMultiple list
type UsingEntry struct {
	Path     Path
	Operator *UserDefinableOperator // nil when no "as <op>" was written
}

// ItemContract represents a contract, abstract contract, interface, or
// library definition. Body items preserve source order; declaration order
// is significant for diagnostics and constructor lookup.
// Example: "contract Foo is Bar(\"x\"), Baz { ... }"
type ItemContract struct {
	Pos         Position
	EndPos      Position
	Kind        ContractKind
	Name        Ident
	Inheritance []Modifier
	Body        []*Item
}

// ItemFunction represents a function, constructor, fallback, receive, or
// modifier definition. A nil Body means the declaration was terminated by
// a semicolon.
// Example: "function helloWorld() external pure returns (string memory);"
type ItemFunction struct {
	Pos    Position
	EndPos Position
	Kind   FunctionKind
	Header FunctionHeader
	Body   *Block
}

// FunctionHeader carries every attribute a function-like item can declare.
// Which fields are legal depends on the function kind; the header is
// deliberately permissive and semantic analysis is the single source of
// truth for legality.
type FunctionHeader struct {
	Name            *Ident
	Parameters      []VariableDeclaration
	Visibility      *Visibility
	StateMutability *StateMutability
	Modifiers       []Modifier
	Virtual         bool
	Override        *Override
	Returns         []VariableDeclaration
}

// Modifier is a modifier invocation on a function, or an inheritance
// specifier on a contract. The two share one syntax; the owning field
// determines the interpretation.
// Example: "onlyOwner", "Ownable(msg.sender)"
type Modifier struct {
	Pos       Position
	EndPos    Position
	Name      Path
	Arguments CallArgs
}

// Override represents an override specifier. Empty Paths means a bare
// "override" with no parenthesized list.
// Example: "override", "override(Base1, Base2.inner)"
type Override struct {
	Pos    Position
	EndPos Position
	Paths  []Path
}

// VariableDeclaration represents a parameter, struct field, or event/error
// parameter. Name is always set when parsed as part of a parameter list;
// that contract is enforced by callers, not by the type.
// Example: "uint256 amount", "address indexed from", "string memory"
type VariableDeclaration struct {
	Pos     Position
	EndPos  Position
	Ty      Type
	Storage *Storage
	Indexed bool
	Name    *Ident
}

// VariableDefinition represents a state variable or constant definition
// Example: "uint256 public constant FOO = 42;"
type VariableDefinition struct {
	Pos         Position
	EndPos      Position
	Ty          Type
	Visibility  *Visibility
	Mutability  *VarMut
	Storage     *Storage
	Override    *Override
	Name        Ident
	Initializer *Expr
}

// ItemStruct represents a struct definition
// Example: "struct Foo { uint256 bar; }"
type ItemStruct struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Fields []VariableDeclaration
}

// ItemEnum represents an enum definition. The language requires at least
// one variant; that rule is not checked here.
// Example: "enum Foo { A, B, C }"
type ItemEnum struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Variants []Ident
}

// ItemUdvt represents a user-defined value type definition
// Example: "type Price is uint128;"
type ItemUdvt struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Ty     Type
}

// ItemError represents an error definition
// Example: "error InsufficientBalance(uint256 available, uint256 required);"
type ItemError struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Parameters []VariableDeclaration
}

// ItemEvent represents an event definition
// Example: "event Transfer(address indexed from, address indexed to, uint256 value);"
type ItemEvent struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Parameters []VariableDeclaration
	Anonymous  bool
}
