package errors

// Error codes for the front-end.
// These codes are used in error messages and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0100-E0199: Parser errors
// W-prefixed: Warning codes
const (
	// Lexical errors (E0001-E0099)

	// E0001: Unexpected character sequence in the input
	ErrorUnexpectedCharacter = "E0001"

	// E0002: Unterminated string literal
	ErrorUnterminatedString = "E0002"

	// E0003: Unterminated block comment
	ErrorUnterminatedComment = "E0003"

	// Parser errors (E0100-E0199)

	// E0100: Token does not start any declaration
	ErrorExpectedItem = "E0100"

	// E0101: Malformed pragma directive
	ErrorMalformedPragma = "E0101"

	// E0102: Malformed import directive
	ErrorMalformedImport = "E0102"

	// E0103: Malformed using directive
	ErrorMalformedUsing = "E0103"

	// E0104: Malformed function or modifier header
	ErrorMalformedHeader = "E0104"

	// E0105: Unbalanced or unterminated delimiter
	ErrorUnbalancedDelimiter = "E0105"

	// E0106: Generic parse error
	ErrorGenericParse = "E0106"

	// Warning codes

	// W0001: Duplicate version pragma in one source unit
	WarningDuplicatePragma = "W0001"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Input contains a character sequence the tokenizer does not recognize"
	case ErrorUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrorUnterminatedComment:
		return "Block comment is missing its closing delimiter"
	case ErrorExpectedItem:
		return "Token does not begin a pragma, import, using, contract, or member declaration"
	case ErrorMalformedPragma:
		return "Pragma directive does not match any recognized shape"
	case ErrorMalformedImport:
		return "Import directive is missing its path or alias clause"
	case ErrorMalformedUsing:
		return "Using directive has a malformed library list or target type"
	case ErrorMalformedHeader:
		return "Function, constructor, fallback, receive, or modifier header is malformed"
	case ErrorUnbalancedDelimiter:
		return "Opening delimiter has no matching closer"
	case ErrorGenericParse:
		return "Source text could not be parsed"
	case WarningDuplicatePragma:
		return "Source unit declares more than one version pragma"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Lexical"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case len(code) > 0 && code[0] == 'W':
		return "Warning"
	default:
		return "Unknown"
	}
}
