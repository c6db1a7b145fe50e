package ioread

import (
	"github.com/autonomous-bits/diagsub/pos"
)

// MemByteReader is an in-memory byte reader over a borrowed buffer. It
// streams raw bytes while running a UTF-8 validator alongside so that
// Line/Column stay correct without decoding full scalars.
type MemByteReader struct {
	path    string
	hasPath bool
	data    []byte
	p       pos.Position
	left    int    // continuation bytes still owed for the in-flight scalar
	start   uint64 // offset where the in-flight scalar began
}

// NewMemByteReader builds a reader over data. Unlike MemCharReader, no BOM
// stripping happens here: a byte reader does not interpret scalars, so a BOM
// is just the first three bytes of the stream.
func NewMemByteReader(data []byte) *MemByteReader {
	return &MemByteReader{data: data, p: pos.Position{Line: 1, Column: 1}}
}

// NewMemByteReaderWithPath builds a reader associated with a source path.
func NewMemByteReaderWithPath(path string, data []byte) *MemByteReader {
	return &MemByteReader{path: path, hasPath: true, data: data, p: pos.Position{Line: 1, Column: 1}}
}

func (r *MemByteReader) Path() string  { return r.path }
func (r *MemByteReader) HasPath() bool { return r.hasPath }
func (r *MemByteReader) Len() int      { return len(r.data) }
func (r *MemByteReader) Eof() bool     { return int(r.p.Offset) >= len(r.data) }
func (r *MemByteReader) Position() pos.Position { return r.p }

func (r *MemByteReader) Seek(p pos.Position) {
	r.p = p
	r.left = 0
}

func (r *MemByteReader) Reset() { r.Seek(pos.Position{Line: 1, Column: 1}) }

func (r *MemByteReader) Input() (string, error) {
	return string(r.data), nil
}

func (r *MemByteReader) Slice(start, end uint64) (string, error) {
	return string(r.data[start:end]), nil
}

func (r *MemByteReader) SlicePos(from, to pos.Position) (string, error) {
	return r.Slice(from.Offset, to.Offset)
}

func (r *MemByteReader) Quote(from, to pos.Position, linesBefore, linesAfter uint32, message string) Quote {
	return newQuote(r.path, r.hasPath, r.data, from, to, linesBefore, linesAfter, message)
}

func (r *MemByteReader) NextByte() (byte, bool, error) {
	off := int(r.p.Offset)
	if off >= len(r.data) {
		if r.left > 0 {
			return 0, false, utf8EofErr(r.p.Offset)
		}
		return 0, false, nil
	}
	b := r.data[off]
	r.p.Offset++

	if r.left == 0 {
		r.start = uint64(off)
		switch {
		case b == '\n':
			r.p.Line++
			r.p.Column = 1
		case b < 0x80:
			r.p.Column++
		case b < 0xC0:
			return 0, false, utf8EncodingErr(r.start, 1)
		case b < 0xE0:
			r.left = 1
		case b < 0xF0:
			r.left = 2
		case b <= 0xF4:
			r.left = 3
		default:
			return 0, false, utf8EncodingErr(r.start, 1)
		}
		return b, true, nil
	}

	if b&0xC0 != 0x80 {
		committed := int(r.p.Offset) - int(r.start)
		return 0, false, utf8EncodingErr(r.start, committed)
	}
	r.left--
	if r.left == 0 {
		r.p.Column++
	}
	return b, true, nil
}

func (r *MemByteReader) PeekByte(lookahead int) (byte, bool, error) {
	off := int(r.p.Offset) + lookahead
	if off < len(r.data) {
		return r.data[off], true, nil
	}
	return 0, false, nil
}

func (r *MemByteReader) PeekBytePos(lookahead int) (byte, pos.Position, bool, error) {
	if lookahead == 0 {
		if int(r.p.Offset) < len(r.data) {
			return r.data[r.p.Offset], r.p, true, nil
		}
		return 0, pos.Position{}, false, nil
	}
	clone := *r
	for i := 0; i < lookahead; i++ {
		_, ok, err := clone.NextByte()
		if err != nil {
			return 0, pos.Position{}, false, err
		}
		if !ok {
			return 0, pos.Position{}, false, nil
		}
	}
	if int(clone.p.Offset) < len(clone.data) {
		return clone.data[clone.p.Offset], clone.p, true, nil
	}
	return 0, pos.Position{}, false, nil
}

func (r *MemByteReader) SkipBytes(n int) error {
	for i := 0; i < n; i++ {
		if _, _, err := r.NextByte(); err != nil {
			return err
		}
	}
	return nil
}

var _ ByteReader = (*MemByteReader)(nil)
