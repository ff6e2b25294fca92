// Package debug formats trees for the debug report and for log messages.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// maximum length of text shown by TextBlock, stylesheets may be long
const textLimit = 120

// TreeWriter accumulates indented lines, one per tree node or attribute.
type TreeWriter struct {
	b      strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{indent: "  "}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

func (tw *TreeWriter) pad(depth int) {
	tw.b.WriteString(strings.Repeat(tw.indent, depth))
}

// Line writes formatted line at the nesting depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// TextBlock writes labeled text quoted on a single line, long text is cut.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	tw.b.WriteString(quoteText(value))
	tw.b.WriteByte('\n')
}

func quoteText(raw string) string {
	if raw == "" {
		return raw
	}
	if r := []rune(raw); len(r) > textLimit {
		return strconv.Quote(string(r[:textLimit])) + "..."
	}
	return strconv.Quote(raw)
}
