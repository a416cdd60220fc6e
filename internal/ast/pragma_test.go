package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcph4/solar/token"
)

func TestIdentOrStrLitTextEquivalence(t *testing.T) {
	ident := &Ident{Value: "foo"}
	lit := &StrLit{Value: "foo"}

	assert.Equal(t, "foo", ident.Text())
	assert.Equal(t, "foo", lit.Text())
	assert.Equal(t, ident.Text(), lit.Text(), "bare identifier and string literal carry the same text")
}

func TestIdentOrStrLitSpan(t *testing.T) {
	ident := &Ident{Pos: Position{Line: 2, Column: 8}, EndPos: Position{Line: 2, Column: 11}, Value: "foo"}
	lit := &StrLit{Pos: Position{Line: 3, Column: 8}, EndPos: Position{Line: 3, Column: 13}, Value: "foo"}

	var name IdentOrStrLit = ident
	assert.Equal(t, 2, name.NodePos().Line)
	name = lit
	assert.Equal(t, 3, name.NodePos().Line)
	assert.Equal(t, 13, name.NodeEndPos().Column)
}

func TestAsNameAndValueOnlyForCustom(t *testing.T) {
	custom := &PragmaCustom{
		Name:  &Ident{Value: "abicoder"},
		Value: &Ident{Value: "v2"},
	}
	name, value, ok := custom.AsNameAndValue()
	assert.True(t, ok)
	assert.Equal(t, "abicoder", name.Text())
	assert.Equal(t, "v2", value.Text())

	noValue := &PragmaCustom{Name: &StrLit{Value: "hello"}}
	name, value, ok = noValue.AsNameAndValue()
	assert.True(t, ok)
	assert.Equal(t, "hello", name.Text())
	assert.Nil(t, value)

	// The version pragma does not report its name through this accessor;
	// callers must match *PragmaVersion explicitly.
	version := &PragmaVersion{Name: Ident{Value: "solidity"}, Req: SemverReq{Source: "^0.8.0"}}
	name, value, ok = version.AsNameAndValue()
	assert.False(t, ok)
	assert.Nil(t, name)
	assert.Nil(t, value)

	verbatim := &PragmaVerbatim{Tokens: []token.Token{
		{Type: token.IDENT, Lexeme: "foo"},
		{Type: token.NUMBER, Lexeme: "1"},
	}}
	name, value, ok = verbatim.AsNameAndValue()
	assert.False(t, ok)
	assert.Nil(t, name)
	assert.Nil(t, value)
}

func TestPragmaTokensUnionIsClosed(t *testing.T) {
	shapes := []PragmaTokens{
		&PragmaVersion{},
		&PragmaCustom{Name: &Ident{Value: "x"}},
		&PragmaVerbatim{},
	}

	for _, shape := range shapes {
		switch shape.(type) {
		case *PragmaVersion, *PragmaCustom, *PragmaVerbatim:
		default:
			t.Fatalf("unexpected pragma shape %T", shape)
		}
	}
}
