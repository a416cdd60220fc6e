// SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jmcph4/solar/internal/parser"
)

const PROMPT = ">> "

// Start reads declarations a line at a time and echoes the parsed items.
// Useful for poking at how a declaration is modeled without writing a file.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		items, parseErrors, scanErrors := parser.ParseSource("repl", line)

		for _, err := range scanErrors {
			fmt.Fprintf(out, "scan error: %s\n", err.Message)
		}
		for _, err := range parseErrors {
			fmt.Fprintf(out, "parse error at %d:%d: %s\n", err.Position.Line, err.Position.Column, err.Message)
		}

		for _, item := range items {
			fmt.Fprintf(out, "%s: %s\n", item.Kind.NodeType(), item.String())
		}
	}
}
