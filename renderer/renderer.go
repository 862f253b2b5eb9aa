// Package renderer turns folio reports into markdown for terminal display.
// It only formats: all figures arrive precomputed, and an unavailable
// metric always renders as its "n/a" placeholder, never as a number.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConditionalBlock lets a section be fully written before deciding to keep
// it. If the block function returns true the content is printed to w,
// otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	var buf bytes.Buffer
	if block(&buf) {
		io.Copy(w, &buf)
	}
}

// tableRow writes one markdown table row.
func tableRow(w io.Writer, cells ...string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
}

// tableRule writes the header separator for a table of n columns.
func tableRule(w io.Writer, n int) {
	fmt.Fprintf(w, "|%s\n", strings.Repeat(" --- |", n))
}
