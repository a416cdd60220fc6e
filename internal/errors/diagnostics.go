package errors

import (
	"fmt"
	"strings"

	"github.com/jmcph4/solar/internal/ast"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics
// with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewError creates a new error diagnostic builder
func NewError(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning diagnostic builder
func NewWarning(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the diagnostic
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a context note
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp sets the help text
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// itemKeywords are the words that can begin a top-level or contract-body
// declaration, used for misspelling suggestions.
var itemKeywords = []string{
	"pragma", "import", "using", "contract", "abstract", "interface",
	"library", "function", "constructor", "fallback", "receive",
	"modifier", "struct", "enum", "type", "error", "event",
}

// ExpectedItem builds the diagnostic for a token that cannot begin a
// declaration, suggesting a keyword when the token looks like a misspelling.
func ExpectedItem(found string, pos ast.Position) CompilerError {
	builder := NewError(ErrorExpectedItem,
		fmt.Sprintf("expected a declaration, found '%s'", found), pos).
		WithLength(len(found))

	if similar := findSimilarNames(found, itemKeywords); len(similar) > 0 {
		builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else {
		builder.WithHelp("declarations begin with a keyword like 'contract', 'function', or 'pragma', or with a state variable type")
	}

	return builder.Build()
}

// MalformedPragma builds the diagnostic for a pragma with no version
// requirement after 'solidity'.
func MalformedPragma(pos ast.Position) CompilerError {
	return NewError(ErrorMalformedPragma, "expected version requirement after 'pragma solidity'", pos).
		WithReplacement("specify the compiler versions the file accepts", "pragma solidity ^0.8.0;", pos, 0).
		Build()
}

// UnbalancedDelimiter builds the diagnostic for an unterminated bracket,
// parenthesis, or brace.
func UnbalancedDelimiter(open string, pos ast.Position) CompilerError {
	return NewError(ErrorUnbalancedDelimiter,
		fmt.Sprintf("unmatched '%s'", open), pos).
		WithNote(fmt.Sprintf("this '%s' is never closed", open)).
		Build()
}

// UnexpectedCharacter builds the diagnostic for input the tokenizer rejects.
func UnexpectedCharacter(sequence string, pos ast.Position) CompilerError {
	return NewError(ErrorUnexpectedCharacter,
		fmt.Sprintf("unexpected character sequence '%s'", sequence), pos).
		WithLength(len(sequence)).
		Build()
}

// findSimilarNames returns candidates whose edit distance from name is small
// enough to look like a typo, closest first.
func findSimilarNames(name string, candidates []string) []string {
	type scored struct {
		name     string
		distance int
	}

	var matches []scored
	for _, candidate := range candidates {
		distance := levenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
		threshold := len(name) / 3
		if threshold < 2 {
			threshold = 2
		}
		if distance > 0 && distance <= threshold {
			matches = append(matches, scored{candidate, distance})
		}
	}

	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].distance < matches[j-1].distance; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	names := make([]string, len(matches))
	for i, match := range matches {
		names[i] = match.name
	}
	return names
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		previous[j] = j
	}

	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[j] = min(previous[j]+1, min(current[j-1]+1, previous[j-1]+cost))
		}
		previous, current = current, previous
	}

	return previous[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
