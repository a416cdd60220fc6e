package tester

import (
	"fmt"
	"strings"
)

// DiagKind classifies an expected diagnostic in a fixture file.
type DiagKind int

const (
	DIAG_ERROR DiagKind = iota
	DIAG_WARNING
	DIAG_NOTE
	DIAG_HELP
)

func (k DiagKind) String() string {
	switch k {
	case DIAG_ERROR:
		return "ERROR"
	case DIAG_WARNING:
		return "WARNING"
	case DIAG_NOTE:
		return "NOTE"
	case DIAG_HELP:
		return "HELP"
	default:
		return "unknown"
	}
}

func diagKindFromWord(word string) (DiagKind, bool) {
	switch word {
	case "ERROR":
		return DIAG_ERROR, true
	case "WARNING":
		return DIAG_WARNING, true
	case "NOTE":
		return DIAG_NOTE, true
	case "HELP":
		return DIAG_HELP, true
	default:
		return DIAG_ERROR, false
	}
}

// ExpectedDiag is one diagnostic a fixture file declares it should produce.
//
// Example:
//
//	uint256 x = "nope"; //~ ERROR type string is not implicitly convertible
//	                    //~^ NOTE declared here
type ExpectedDiag struct {
	// Line is the 1-based source line the diagnostic must point at.
	Line    int
	Kind    DiagKind
	Message string
}

const expectMarker = "//~"

// loadExpectedDiags scans the fixture for `//~` annotations. Each caret
// after the marker moves the target one line up; `|` reuses the previous
// annotation's target line. Annotations scoped with `//~[rev]` apply only
// under that revision.
func loadExpectedDiags(file string, revision string) []ExpectedDiag {
	var diags []ExpectedDiag
	lastLine := 0

	for i, raw := range strings.Split(file, "\n") {
		lineNumber := i + 1
		marker := strings.Index(raw, expectMarker)
		if marker < 0 {
			continue
		}
		rest := raw[marker+len(expectMarker):]

		if strings.HasPrefix(rest, "[") {
			closeBracket := strings.IndexByte(rest, ']')
			if closeBracket < 0 {
				panic(fmt.Sprintf("malformed expectation: expected `%s[foo]`, found `%s`", expectMarker, rest))
			}
			if rest[1:closeBracket] != revision {
				continue
			}
			rest = rest[closeBracket+1:]
		}

		target := lineNumber
		for strings.HasPrefix(rest, "^") {
			target--
			rest = rest[1:]
		}
		if strings.HasPrefix(rest, "|") {
			if lastLine == 0 {
				panic(fmt.Sprintf("`%s|` with no previous expectation: `%s`", expectMarker, raw))
			}
			target = lastLine
			rest = rest[1:]
		}

		rest = strings.TrimLeft(rest, " \t")
		kindWord, message, _ := strings.Cut(rest, " ")
		kind, known := diagKindFromWord(kindWord)
		if !known {
			panic(fmt.Sprintf("expected a diagnostic kind, found `%s`", rest))
		}

		diags = append(diags, ExpectedDiag{
			Line:    target,
			Kind:    kind,
			Message: strings.TrimSpace(message),
		})
		lastLine = target
	}

	return diags
}
