// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/jmcph4/solar/internal/errors"
	"github.com/jmcph4/solar/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: solar <file.sol>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	items, parseErrors, scanErrors := parser.ParseSource(path, string(source))

	reporter := errors.NewErrorReporter(path, string(source))
	for _, err := range scanErrors {
		fmt.Print(reporter.FormatError(err.Diagnostic(path)))
	}
	for _, err := range parseErrors {
		fmt.Print(reporter.FormatError(err.Diagnostic(path)))
	}

	hasErrors := len(scanErrors) > 0 || len(parseErrors) > 0

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if !hasErrors {
		for _, item := range items {
			fmt.Println(item.String())
		}
		color.Green("Successfully parsed %s in %s", path, formattedDuration)
	} else {
		color.Red("Parsing failed after %s", formattedDuration)
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
