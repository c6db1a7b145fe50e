// Package pos defines the position and span primitives shared by every
// reader, quote, and diagnostic in this module.
package pos

import "fmt"

// Position is a single point in a source buffer: a byte offset plus the
// 1-based line and column it falls on. Offset counts bytes, never runes.
//
// Offset is zero-based; Line and Column are stored 1-based, not zero-based
// (a fresh reader starts at Offset 0, Line 1, Column 1), and String prints
// them unchanged.
type Position struct {
	Offset uint64
	Line   uint32
	Column uint32
}

// String renders the position as "line:column", 1-based.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p sorts strictly before q. Positions produced by the
// same reader over the same buffer order identically whether compared by
// Offset or by (Line, Column); this method compares Offset, the cheaper of
// the two.
func (p Position) Less(q Position) bool {
	return p.Offset < q.Offset
}

// IncColumn advances the position by one scalar value of byteLen bytes,
// without crossing a line boundary.
func (p Position) IncColumn(byteLen uint64) Position {
	p.Offset += byteLen
	p.Column++
	return p
}

// IncLine advances the position past a newline byte, resetting the column.
func (p Position) IncLine() Position {
	p.Offset++
	p.Line++
	p.Column = 1
	return p
}

// Span is a half-open source range [Start, End). A single-point span has
// Start == End.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a Span, panicking if end precedes start; callers within
// this module always construct spans from monotonically advancing reader
// positions, so this indicates a programmer error, not a recoverable one.
func NewSpan(start, end Position) Span {
	if end.Offset < start.Offset {
		panic("pos: span end precedes start")
	}
	return Span{Start: start, End: end}
}

// PointSpan returns the zero-width span at p.
func PointSpan(p Position) Span {
	return Span{Start: p, End: p}
}

// Len returns the byte length of the span.
func (s Span) Len() uint64 {
	return s.End.Offset - s.Start.Offset
}

// String renders "start-end" using Position.String for both ends, or just
// the start when the span is zero-width.
func (s Span) String() string {
	if s.Start == s.End {
		return s.Start.String()
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
