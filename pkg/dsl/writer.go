package dsl

import "strings"

// indentUnit is the fixed indentation step, multiplied by block depth.
const indentUnit = "    "

// Writer is an indentation-aware text accumulator for DSL output.
// Nested blocks are written through [Writer.Block], which pairs the
// opening and closing braces around a body closure, so unbalanced
// nesting is not representable through the API.
//
// The zero value is ready to use.
type Writer struct {
	lines []string
	depth int
}

// NewWriter returns an empty writer at depth zero.
func NewWriter() *Writer {
	return &Writer{}
}

// Line appends s indented at the current depth.
func (w *Writer) Line(s string) {
	w.lines = append(w.lines, strings.Repeat(indentUnit, w.depth)+s)
}

// Blank appends an empty line without indentation.
func (w *Writer) Blank() {
	w.lines = append(w.lines, "")
}

// Block writes `header {`, runs body one level deeper, and closes the
// block with `}` at the original depth.
func (w *Writer) Block(header string, body func()) {
	w.Line(header + " {")
	w.depth++
	body()
	w.depth--
	w.Line("}")
}

// String joins all accumulated lines with newlines.
func (w *Writer) String() string {
	return strings.Join(w.lines, "\n")
}
