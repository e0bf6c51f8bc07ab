// Package render formats heading analysis results as plain text.
// Console writes the full report shown on stdout; Listing writes only the
// numbered heading list that is shared with the saved file.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gaurav-prasanna/headscan/core"
)

// Console writes the analysis report: total count, per-level distribution
// and the numbered heading list.
func Console(w io.Writer, headings []core.Heading, counts core.LevelCounts) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "--- Heading Analysis Results ---")
	fmt.Fprintf(bw, "Total heading count: %d\n", counts.Total())

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Distribution by heading level:")
	for level := core.MinLevel; level <= core.MaxLevel; level++ {
		fmt.Fprintf(bw, "  H%d: %d items\n", level, counts.Get(level))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Found headings:")
	if err := Listing(bw, headings); err != nil {
		return err
	}

	return bw.Flush()
}

// Listing writes one "{index}. [H{level}] {text}" line per heading,
// numbered from 1 in the given order.
func Listing(w io.Writer, headings []core.Heading) error {
	for i, h := range headings {
		if _, err := fmt.Fprintf(w, "%d. [H%d] %s\n", i+1, h.Level, h.Text); err != nil {
			return err
		}
	}
	return nil
}
