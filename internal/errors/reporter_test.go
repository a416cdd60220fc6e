package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcph4/solar/internal/ast"
)

func TestErrorReporter(t *testing.T) {
	source := `pragma solidity ^0.8.0;
contrct Token {
}`

	reporter := NewErrorReporter("test.sol", source)

	err := ExpectedItem("contrct", ast.Position{Line: 2, Column: 1})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorExpectedItem+"]")
	assert.Contains(t, formatted, "contrct")
	assert.Contains(t, formatted, "test.sol:2:1")
	assert.Contains(t, formatted, "did you mean 'contract'")
}

func TestExpectedItemSuggestsKeyword(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	err := ExpectedItem("strcut", pos)
	assert.Equal(t, ErrorExpectedItem, err.Code)
	if assert.Len(t, err.Suggestions, 1) {
		assert.Contains(t, err.Suggestions[0].Message, "did you mean 'struct'")
	}

	err = ExpectedItem("12notakeyword", pos)
	assert.Empty(t, err.Suggestions)
	assert.Contains(t, err.HelpText, "begin with a keyword")
}

func TestMalformedPragmaSuggestsReplacement(t *testing.T) {
	err := MalformedPragma(ast.Position{Line: 1, Column: 16})

	assert.Equal(t, ErrorMalformedPragma, err.Code)
	if assert.Len(t, err.Suggestions, 1) {
		assert.Equal(t, "pragma solidity ^0.8.0;", err.Suggestions[0].Replacement)
	}
}

func TestUnbalancedDelimiterNote(t *testing.T) {
	err := UnbalancedDelimiter("{", ast.Position{Line: 3, Column: 14})

	assert.Equal(t, ErrorUnbalancedDelimiter, err.Code)
	if assert.Len(t, err.Notes, 1) {
		assert.Contains(t, err.Notes[0], "never closed")
	}
}

func TestWarningFormatting(t *testing.T) {
	source := `pragma solidity ^0.8.0;`
	reporter := NewErrorReporter("test.sol", source)

	warning := NewWarning(WarningDuplicatePragma, "duplicate version pragma", ast.Position{Line: 1, Column: 1}).Build()
	formatted := reporter.FormatError(warning)

	assert.Contains(t, formatted, "warning[W0001]")
	assert.Contains(t, formatted, "duplicate version pragma")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `uint constant x = 1;`
	reporter := NewErrorReporter("test.sol", source)

	marker := reporter.createMarker(5, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces, "column 5 means 4 spaces before the marker")
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestDiagnosticBuilder(t *testing.T) {
	pos := ast.Position{Line: 2, Column: 7}

	err := NewError(ErrorMalformedUsing, "expected 'for' in using directive", pos).
		WithLength(3).
		WithSuggestion("write 'using <library> for <type>;'").
		WithNote("the directive started here").
		WithHelp("a using directive attaches library members to a type").
		Build()

	assert.Equal(t, Error, err.Level)
	assert.Equal(t, 3, err.Length)
	assert.Len(t, err.Suggestions, 1)
	assert.Len(t, err.Notes, 1)
	assert.NotEmpty(t, err.HelpText)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("pragma", "pragma"))
	assert.Equal(t, 1, levenshteinDistance("contract", "contrct"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 5, levenshteinDistance("event", ""))
}

func TestSimilarNameFinding(t *testing.T) {
	similar := findSimilarNames("contrct", itemKeywords)
	assert.Contains(t, similar, "contract")
	assert.NotContains(t, similar, "pragma")

	similar = findSimilarNames("somethingelse", itemKeywords)
	assert.Empty(t, similar)
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("test.sol", "pragma solidity ^0.8.0;")
	pos := ast.Position{Line: 1, Column: 1}

	errorFormatted := reporter.FormatError(CompilerError{Level: Error, Message: "boom", Position: pos})
	warningFormatted := reporter.FormatError(CompilerError{Level: Warning, Message: "hmm", Position: pos})

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}

func TestErrorCodeMetadata(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorExpectedItem))
	assert.Equal(t, "Lexical", GetErrorCategory(ErrorUnexpectedCharacter))
	assert.Equal(t, "Warning", GetErrorCategory(WarningDuplicatePragma))

	assert.True(t, IsWarning(WarningDuplicatePragma))
	assert.False(t, IsWarning(ErrorGenericParse))

	assert.NotEqual(t, "Unknown error code", GetErrorDescription(ErrorMalformedImport))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}
