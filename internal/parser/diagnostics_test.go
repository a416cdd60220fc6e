package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

func TestExpectedItemDiagnostic(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.sol", "123;")

	if !assert.NotEmpty(t, parseErrors) {
		return
	}
	assert.Equal(t, errors.ErrorExpectedItem, parseErrors[0].Code)
	assert.Equal(t, "123", parseErrors[0].Found)

	diag := parseErrors[0].Diagnostic("test.sol")
	assert.Equal(t, errors.ErrorExpectedItem, diag.Code)
	assert.Equal(t, "test.sol", diag.Position.Filename)
	assert.Equal(t, 1, diag.Position.Line)
	assert.Equal(t, 3, diag.Length)
	assert.NotEmpty(t, diag.HelpText)
}

func TestExpectedItemDiagnosticSuggestsKeyword(t *testing.T) {
	err := ParseError{
		Code:     errors.ErrorExpectedItem,
		Message:  "expected item declaration",
		Position: token.Position{Line: 1, Column: 1},
		Found:    "pragm",
	}

	diag := err.Diagnostic("typo.sol")
	if assert.NotEmpty(t, diag.Suggestions) {
		assert.Equal(t, "did you mean 'pragma'?", diag.Suggestions[0].Message)
	}
}

func TestMalformedPragmaDiagnostic(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.sol", "pragma solidity;")

	if !assert.NotEmpty(t, parseErrors) {
		return
	}
	assert.Equal(t, errors.ErrorMalformedPragma, parseErrors[0].Code)

	diag := parseErrors[0].Diagnostic("test.sol")
	if assert.NotEmpty(t, diag.Suggestions) {
		assert.Equal(t, "pragma solidity ^0.8.0;", diag.Suggestions[0].Replacement)
	}
}

func TestUnbalancedDelimiterDiagnosticPointsAtOpen(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.sol", "contract C {")

	if !assert.NotEmpty(t, parseErrors) {
		return
	}
	assert.Equal(t, errors.ErrorUnbalancedDelimiter, parseErrors[0].Code)
	assert.Equal(t, "{", parseErrors[0].Found)
	assert.Equal(t, 12, parseErrors[0].Position.Column)

	diag := parseErrors[0].Diagnostic("test.sol")
	assert.Equal(t, "unmatched '{'", diag.Message)
	if assert.NotEmpty(t, diag.Notes) {
		assert.Equal(t, "this '{' is never closed", diag.Notes[0])
	}
}

func TestScanErrorDiagnostic(t *testing.T) {
	_, _, scanErrors := ParseSource("test.sol", "contract C { } #")

	if !assert.NotEmpty(t, scanErrors) {
		return
	}
	diag := scanErrors[0].Diagnostic("test.sol")
	assert.Equal(t, errors.ErrorUnexpectedCharacter, diag.Code)
	assert.Equal(t, "test.sol", diag.Position.Filename)
}

func TestScanErrorDiagnosticKnownSequence(t *testing.T) {
	err := ScanError{
		Message:  "unexpected character sequence: @",
		Position: token.Position{Line: 2, Column: 5},
		Length:   1,
		Found:    "@",
	}

	diag := err.Diagnostic("test.sol")
	assert.Equal(t, errors.ErrorUnexpectedCharacter, diag.Code)
	assert.Equal(t, "unexpected character sequence '@'", diag.Message)
	assert.Equal(t, 1, diag.Length)
}

func TestGenericParseErrorDiagnostic(t *testing.T) {
	err := ParseError{
		Message:  "expected contract name",
		Position: token.Position{Line: 1, Column: 10},
		Found:    "42",
	}

	diag := err.Diagnostic("test.sol")
	assert.Equal(t, errors.ErrorGenericParse, diag.Code)
	assert.Equal(t, "expected contract name", diag.Message)
	assert.Equal(t, 2, diag.Length)
}
