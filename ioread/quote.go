package ioread

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/autonomous-bits/diagsub/pos"
)

// Quote is an immutable snapshot of a source excerpt: the span it quotes,
// the byte offset and line number where the rendered snippet begins, the
// snippet text itself, and a short message. Once built it retains no
// reference to the buffer it was materialised from.
type Quote struct {
	path    string
	hasPath bool
	from    pos.Position
	to      pos.Position
	offset  uint64
	line    uint32
	source  string
	message string
}

// From returns the span's start position.
func (q Quote) From() pos.Position { return q.from }

// To returns the span's end position.
func (q Quote) To() pos.Position { return q.to }

// Source returns the rendered snippet text (context lines, no gutter).
func (q Quote) Source() string { return q.source }

// Message returns the short hint attached to the quote.
func (q Quote) Message() string { return q.message }

func newQuote(path string, hasPath bool, data []byte, from, to pos.Position, linesBefore, linesAfter uint32, message string) Quote {
	total := uint64(len(data))
	if from.Offset > total {
		from.Offset = total
	}
	if to.Offset > total {
		to.Offset = total
	}
	if to.Offset < from.Offset {
		to = from
	}

	snippetStart, startLine := scanLinesBack(data, from, linesBefore)
	snippetEnd := scanLinesForward(data, to, linesAfter)

	return Quote{
		path:    path,
		hasPath: hasPath,
		from:    from,
		to:      to,
		offset:  snippetStart,
		line:    startLine,
		source:  lossyDecode(data[snippetStart:snippetEnd]),
		message: message,
	}
}

// startOfLine returns the byte offset of the start of the line containing
// offset (0 if offset is on the first line).
func startOfLine(data []byte, offset uint64) uint64 {
	i := int(offset) - 1
	for i >= 0 && data[i] != '\n' {
		i--
	}
	return uint64(i + 1)
}

// endOfLine returns the byte offset of the '\n' ending the line containing
// offset, or len(data) if that line is the last one.
func endOfLine(data []byte, offset uint64) uint64 {
	i := int(offset)
	n := len(data)
	for i < n && data[i] != '\n' {
		i++
	}
	return uint64(i)
}

func scanLinesBack(data []byte, from pos.Position, linesBefore uint32) (offset uint64, line uint32) {
	lineStart := startOfLine(data, from.Offset)
	lineNum := from.Line
	for k := uint32(0); k < linesBefore; k++ {
		if lineStart == 0 {
			break
		}
		lineStart = startOfLine(data, lineStart-1)
		lineNum--
	}
	return lineStart, lineNum
}

func scanLinesForward(data []byte, to pos.Position, linesAfter uint32) uint64 {
	lineEnd := endOfLine(data, to.Offset)
	n := uint64(len(data))
	for k := uint32(0); k < linesAfter; k++ {
		if lineEnd >= n {
			break
		}
		lineEnd = endOfLine(data, lineEnd+1)
	}
	return lineEnd
}

// lossyDecode copies b to a string, substituting U+FFFD for any malformed
// byte sequence encountered. Decoding for quoting is best-effort.
func lossyDecode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// String renders the quote as a source excerpt with line-number gutters
// and caret underlines.
func (q Quote) String() string {
	lines := strings.Split(q.source, "\n")

	if !q.hasPath && q.line == 0 && len(lines) == 1 {
		var sb strings.Builder
		sb.WriteString(lines[0])
		sb.WriteByte('\n')
		q.writeCaretRow(&sb, 0, "", true)
		return sb.String()
	}

	lastLine := uint64(q.line) + uint64(len(lines)) - 1
	width := gutterWidth(lastLine)

	var sb strings.Builder
	if q.hasPath {
		fmt.Fprintf(&sb, " --> %s:%s\n", q.path, q.from)
	}
	for i, text := range lines {
		lineNo := q.line + uint32(i)
		fmt.Fprintf(&sb, "%*d| %s\n", width, lineNo, text)
		// A caret row is drawn only under the span's first and last line; a
		// multi-line span's in-between lines print bare.
		if lineNo == q.from.Line || lineNo == q.to.Line {
			q.writeCaretRow(&sb, width, text, lineNo == q.to.Line)
		}
	}
	return sb.String()
}

func (q Quote) writeCaretRow(sb *strings.Builder, width int, text string, withMessage bool) {
	var spaces, carets int
	switch {
	case q.from.Line == q.to.Line:
		spaces = int(q.from.Column) - 1
		carets = int(q.to.Column) - int(q.from.Column)
		if carets < 1 {
			carets = 1
		}
	case withMessage:
		// last line of a multi-line span: underline from column 1 up to
		// the end column.
		carets = int(q.to.Column) - 1
		if carets < 1 {
			carets = 1
		}
	default:
		// first line of a multi-line span: underline from the start
		// column to the end of the line.
		spaces = int(q.from.Column) - 1
		carets = utf8.RuneCountInString(text) - spaces
		if carets < 1 {
			carets = 1
		}
	}
	if spaces < 0 {
		spaces = 0
	}
	if width > 0 {
		sb.WriteString(strings.Repeat(" ", width))
		sb.WriteString("| ")
	}
	sb.WriteString(strings.Repeat(" ", spaces))
	sb.WriteString(strings.Repeat("^", carets))
	if withMessage && q.message != "" {
		sb.WriteByte(' ')
		sb.WriteString(q.message)
	}
	sb.WriteByte('\n')
}

func gutterWidth(lastLine uint64) int {
	width := 1
	for n := lastLine; n >= 10; n /= 10 {
		width++
	}
	if width < 3 {
		width = 3
	}
	return width
}
