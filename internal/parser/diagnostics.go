package parser

import (
	"github.com/jmcph4/solar/internal/ast"
	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/token"
)

// Diagnostic projects the error into the structured form errors.ErrorReporter
// renders. Codes with richer constructors get their suggestions and notes
// restored here; everything else becomes a plain diagnostic under its code.
func (e ParseError) Diagnostic(filename string) errors.CompilerError {
	pos := diagnosticPos(filename, e.Position)

	switch e.Code {
	case errors.ErrorExpectedItem:
		return errors.ExpectedItem(e.Found, pos)
	case errors.ErrorMalformedPragma:
		return errors.MalformedPragma(pos)
	case errors.ErrorUnbalancedDelimiter:
		return errors.UnbalancedDelimiter(e.Found, pos)
	}

	code := e.Code
	if code == "" {
		code = errors.ErrorGenericParse
	}
	length := len(e.Found)
	if length == 0 {
		length = 1
	}
	return errors.NewError(code, e.Message, pos).WithLength(length).Build()
}

// Diagnostic projects a tokenizer error the same way.
func (e ScanError) Diagnostic(filename string) errors.CompilerError {
	pos := diagnosticPos(filename, e.Position)

	if e.Found != "" {
		return errors.UnexpectedCharacter(e.Found, pos)
	}

	code := e.Code
	if code == "" {
		code = errors.ErrorUnexpectedCharacter
	}
	length := e.Length
	if length <= 0 {
		length = 1
	}
	return errors.NewError(code, e.Message, pos).WithLength(length).Build()
}

func diagnosticPos(filename string, pos token.Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
