package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jmcph4/solar/internal/parser"
	"github.com/jmcph4/solar/token"
)

func TestConvertParseErrors(t *testing.T) {
	parseErrors := []parser.ParseError{
		{
			Message:  "expected ';' after import directive",
			Position: token.Position{Line: 3, Column: 14},
		},
	}

	diagnostics := ConvertParseErrors(parseErrors)

	if assert.Len(t, diagnostics, 1) {
		diag := diagnostics[0]
		assert.Equal(t, uint32(2), diag.Range.Start.Line, "LSP lines are 0-based")
		assert.Equal(t, uint32(13), diag.Range.Start.Character, "LSP columns are 0-based")
		assert.Equal(t, "expected ';' after import directive", diag.Message)
		assert.Equal(t, "solar-parser", *diag.Source)
		assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	}
}

func TestConvertScanErrorsUsesLength(t *testing.T) {
	scanErrors := []parser.ScanError{
		{
			Message:  "unexpected character sequence: @",
			Position: token.Position{Line: 1, Column: 5},
			Length:   3,
		},
	}

	diagnostics := ConvertScanErrors(scanErrors)

	if assert.Len(t, diagnostics, 1) {
		diag := diagnostics[0]
		assert.Equal(t, uint32(4), diag.Range.Start.Character)
		assert.Equal(t, uint32(7), diag.Range.End.Character, "span covers the whole sequence")
		assert.Equal(t, "solar-scanner", *diag.Source)
	}
}

func TestConvertNoErrors(t *testing.T) {
	assert.Empty(t, ConvertParseErrors(nil))
	assert.Empty(t, ConvertScanErrors(nil))
}

func TestHandlerUpdateStoresItems(t *testing.T) {
	handler := NewSolarHandler()

	diagnostics, err := handler.update("file:///tmp/token.sol", `pragma solidity ^0.8.0;
contract Token { }`)
	assert.NoError(t, err)
	assert.Empty(t, diagnostics, "well-formed source publishes no diagnostics")

	items := handler.Items("/tmp/token.sol")
	assert.Len(t, items, 2)
}

func TestHandlerUpdatePublishesParseDiagnostics(t *testing.T) {
	handler := NewSolarHandler()

	diagnostics, err := handler.update("file:///tmp/bad.sol", `contract {`)
	assert.NoError(t, err)
	assert.NotEmpty(t, diagnostics, "malformed source publishes diagnostics")
}

func TestHandlerCloseForgetsDocument(t *testing.T) {
	handler := NewSolarHandler()

	_, err := handler.update("file:///tmp/token.sol", `contract Token { }`)
	assert.NoError(t, err)
	assert.NotEmpty(t, handler.Items("/tmp/token.sol"))

	err = handler.TextDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///tmp/token.sol"},
	})
	assert.NoError(t, err)
	assert.Empty(t, handler.Items("/tmp/token.sol"))
}

func TestUriToPath(t *testing.T) {
	path, err := uriToPath("file:///home/dev/token.sol")
	assert.NoError(t, err)
	assert.Equal(t, "/home/dev/token.sol", path)
}
