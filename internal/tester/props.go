package tester

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Props holds the configuration a fixture file declares for itself through
// comment directives.
//
// Example:
//
//	// evm-version paris
//	//[release] evm-version shanghai
type Props struct {
	ExpectedDiags []ExpectedDiag

	NormalizeStdout [][2]string
	NormalizeStderr [][2]string

	DontCheckCompilerStdout bool
	DontCheckCompilerStderr bool

	CompareOutputLinesBySubset bool

	// EvmVersion is nil when the fixture does not pin a platform version.
	EvmVersion *string
}

func NewProps() *Props {
	return &Props{}
}

// Load scans the fixture text for directives. Lines scoped to a revision
// other than the given one are skipped; an empty revision matches only
// unscoped lines.
func Load(file string, revision string) *Props {
	props := NewProps()
	props.ExpectedDiags = loadExpectedDiags(file, revision)

	eachDirective(file, func(lineRevision string, scoped bool, line string) {
		if scoped && lineRevision != revision {
			return
		}
		parser := newDirectiveParser(line)
		parser.parseDirective()
		switch parser.kind {
		case directiveDummy:
		case directiveEvmVersion:
			parser.wordValue(&props.EvmVersion)
		}
	})

	return props
}

// LoadRevisions reads the fixture's declared revision names. Only the first
// unscoped "revisions:" line counts; later ones are ignored.
func LoadRevisions(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var revisions []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		_, scoped, line, ok := lineDirective(commentPrefix, strings.TrimSpace(scanner.Text()))
		if !ok {
			continue
		}

		const prefix = "revisions:"
		if scoped || len(revisions) > 0 || !strings.HasPrefix(line, prefix) {
			continue
		}
		revisions = append(revisions, strings.Fields(line[len(prefix):])...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return revisions, nil
}

const commentPrefix = "//"

// eachDirective calls fn for every comment line in the text, with its
// revision scope (if any) and the directive text after the comment marker.
func eachDirective(file string, fn func(revision string, scoped bool, line string)) {
	for _, raw := range strings.Split(file, "\n") {
		revision, scoped, line, ok := lineDirective(commentPrefix, raw)
		if !ok {
			continue
		}
		fn(revision, scoped, line)
	}
}

// lineDirective strips the comment marker and an optional leading
// `[revision]` scope from a line. A scope marker with no closing bracket is
// a malformed fixture and aborts the scan.
func lineDirective(comment string, raw string) (revision string, scoped bool, line string, ok bool) {
	trimmed := strings.TrimLeft(raw, " \t")
	rest, found := strings.CutPrefix(trimmed, comment)
	if !found {
		return "", false, "", false
	}

	rest = strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(rest, "[") {
		closeBracket := strings.IndexByte(rest, ']')
		if closeBracket < 0 {
			panic(fmt.Sprintf("malformed condition directive: expected `%s[foo]`, found `%s`", comment, rest))
		}
		revision = rest[1:closeBracket]
		line = strings.TrimLeft(rest[closeBracket+1:], " \t")
		return revision, true, line, true
	}

	return "", false, rest, true
}

type directiveKind int

const (
	directiveDummy directiveKind = iota
	directiveEvmVersion
)

func directiveKindFromWord(word string) (directiveKind, bool) {
	switch word {
	case "evm-version":
		return directiveEvmVersion, true
	default:
		return directiveDummy, false
	}
}

type directiveParser struct {
	line     string
	negative bool
	kind     directiveKind
}

func newDirectiveParser(line string) *directiveParser {
	return &directiveParser{line: line, kind: directiveDummy}
}

// parseDirective recognizes the leading keyword of a directive line. The
// keyword must be followed by whitespace or end of line, so `evm-version:`
// stays a no-op. Unknown keywords stay no-ops too.
func (p *directiveParser) parseDirective() {
	start, end, found := nextWordIdx(p.line)
	if !found {
		return
	}
	word := p.line[start:end]

	negative := strings.HasPrefix(word, "no-")
	if negative {
		word = word[3:]
	}

	kind, known := directiveKindFromWord(word)
	if !known {
		return
	}
	if end < len(p.line) && !isSpaceByte(p.line[end]) {
		return
	}

	p.line = p.line[end:]
	p.negative = negative
	p.kind = kind
}

// wordValue reads one word argument for a value-bearing directive. A
// missing value or a no- prefix on the directive is fatal.
func (p *directiveParser) wordValue(value **string) {
	start, end, found := nextWordIdx(p.line)
	if !found {
		panic(fmt.Sprintf("expected a word value, found `%s`", p.line))
	}
	p.expectNoNegative()
	word := p.line[start:end]
	*value = &word
}

func (p *directiveParser) expectNoNegative() {
	if p.negative {
		panic(fmt.Sprintf("unexpected negative directive for `%s`", p.line))
	}
}

// nextWordIdx finds the first word in the line. A word runs over letters,
// digits, '-' and '_'; end of line terminates a word. Returns found=false
// when the first non-blank character cannot start a word.
func nextWordIdx(line string) (start int, end int, found bool) {
	i := 0
	for i < len(line) && isSpaceByte(line[i]) {
		i++
	}
	if i >= len(line) || !isWordByte(line[i]) {
		return 0, 0, false
	}
	start = i
	for i < len(line) && isWordByte(line[i]) {
		i++
	}
	return start, i, true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-' || b == '_'
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}
