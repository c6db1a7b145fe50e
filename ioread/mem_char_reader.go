package ioread

import (
	"github.com/autonomous-bits/diagsub/pos"
)

// MemCharReader is an in-memory Unicode scalar reader over a borrowed byte
// buffer. It decodes UTF-8 by hand (rather than delegating to unicode/utf8)
// so that a malformed sequence reports the exact offset and byte length the
// decoder had committed to.
type MemCharReader struct {
	path    string
	hasPath bool
	data    []byte
	p       pos.Position
	c       rune
	clen    int // byte length of the scalar at p; 0 means "not yet decoded"
}

// NewMemCharReader builds a reader over data, stripping a leading BOM.
func NewMemCharReader(data []byte) *MemCharReader {
	return &MemCharReader{data: consumeBOM(data), p: pos.Position{Line: 1, Column: 1}}
}

// NewMemCharReaderWithPath builds a reader associated with a source path.
func NewMemCharReaderWithPath(path string, data []byte) *MemCharReader {
	return &MemCharReader{path: path, hasPath: true, data: consumeBOM(data), p: pos.Position{Line: 1, Column: 1}}
}

func (r *MemCharReader) Path() string  { return r.path }
func (r *MemCharReader) HasPath() bool { return r.hasPath }
func (r *MemCharReader) Len() int      { return len(r.data) }
func (r *MemCharReader) Eof() bool     { return int(r.p.Offset) >= len(r.data) }
func (r *MemCharReader) Position() pos.Position { return r.p }

func (r *MemCharReader) Seek(p pos.Position) {
	r.p = p
	r.c = 0
	r.clen = 0
}

func (r *MemCharReader) Reset() { r.Seek(pos.Position{Line: 1, Column: 1}) }

func (r *MemCharReader) Input() (string, error) {
	return string(r.data), nil
}

func (r *MemCharReader) Slice(start, end uint64) (string, error) {
	return string(r.data[start:end]), nil
}

func (r *MemCharReader) SlicePos(from, to pos.Position) (string, error) {
	return r.Slice(from.Offset, to.Offset)
}

func (r *MemCharReader) Quote(from, to pos.Position, linesBefore, linesAfter uint32, message string) Quote {
	return newQuote(r.path, r.hasPath, r.data, from, to, linesBefore, linesAfter, message)
}

// decode advances past the current scalar (if any) and decodes the next one
// into r.c/r.clen. r.clen stays 0 at EOF.
func (r *MemCharReader) decode() error {
	if r.clen > 0 {
		r.p.Offset += uint64(r.clen)
		if r.c == '\n' {
			r.p.Line++
			r.p.Column = 1
		} else {
			r.p.Column++
		}
		r.clen = 0
	}

	i := int(r.p.Offset)
	n := len(r.data)
	if i == n {
		return nil
	}
	b := r.data[i]
	switch {
	case b < 0x80:
		r.clen = 1
		r.c = rune(b)
	case b < 0xC0:
		return utf8EncodingErr(r.p.Offset, 1)
	case b < 0xE0:
		if n < i+2 {
			return utf8EofErr(r.p.Offset)
		}
		b1 := r.data[i+1]
		if b1&0xC0 != 0x80 {
			return utf8EncodingErr(r.p.Offset, 2)
		}
		r.clen = 2
		r.c = rune(b&0x1F)<<6 | rune(b1&0x3F)
	case b < 0xF0:
		if n < i+3 {
			return utf8EofErr(r.p.Offset)
		}
		b1, b2 := r.data[i+1], r.data[i+2]
		if b1&0xC0 != 0x80 || b2&0xC0 != 0x80 {
			return utf8EncodingErr(r.p.Offset, 3)
		}
		r.clen = 3
		r.c = rune(b&0x0F)<<12 | rune(b1&0x3F)<<6 | rune(b2&0x3F)
	case b <= 0xF4:
		if n < i+4 {
			return utf8EofErr(r.p.Offset)
		}
		b1, b2, b3 := r.data[i+1], r.data[i+2], r.data[i+3]
		if b1&0xC0 != 0x80 || b2&0xC0 != 0x80 || b3&0xC0 != 0x80 {
			return utf8EncodingErr(r.p.Offset, 4)
		}
		r.clen = 4
		r.c = rune(b&0x07)<<18 | rune(b1&0x3F)<<12 | rune(b2&0x3F)<<6 | rune(b3&0x3F)
	default:
		return utf8EncodingErr(r.p.Offset, 4)
	}
	return nil
}

func (r *MemCharReader) NextChar() (rune, bool, error) {
	if err := r.decode(); err != nil {
		return 0, false, err
	}
	if r.clen > 0 {
		return r.c, true, nil
	}
	return 0, false, nil
}

func (r *MemCharReader) PeekChar(lookahead int) (rune, bool, error) {
	if lookahead == 0 {
		if r.clen == 0 {
			return r.NextChar()
		}
		return r.c, true, nil
	}
	clone := *r
	if clone.clen == 0 {
		// Nothing decoded yet: decode the scalar at the current position so
		// the lookahead counts from it rather than onto it.
		if err := clone.decode(); err != nil {
			return 0, false, err
		}
		if clone.clen == 0 {
			return 0, false, nil
		}
	}
	for i := 0; i < lookahead; i++ {
		c, ok, err := clone.NextChar()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		_ = c
	}
	return clone.c, true, nil
}

func (r *MemCharReader) PeekCharPos(lookahead int) (rune, pos.Position, bool, error) {
	if lookahead == 0 {
		if r.clen == 0 {
			c, ok, err := r.NextChar()
			return c, r.Position(), ok, err
		}
		return r.c, r.p, true, nil
	}
	clone := *r
	if clone.clen == 0 {
		if err := clone.decode(); err != nil {
			return 0, pos.Position{}, false, err
		}
		if clone.clen == 0 {
			return 0, pos.Position{}, false, nil
		}
	}
	for i := 0; i < lookahead; i++ {
		_, ok, err := clone.NextChar()
		if err != nil {
			return 0, pos.Position{}, false, err
		}
		if !ok {
			return 0, pos.Position{}, false, nil
		}
	}
	return clone.c, clone.p, true, nil
}

func (r *MemCharReader) SkipChars(n int) error {
	for i := 0; i < n; i++ {
		if _, _, err := r.NextChar(); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemCharReader) MatchStr(s string) (bool, error) {
	off := int(r.p.Offset)
	if off+len(s) > len(r.data) {
		return false, nil
	}
	return string(r.data[off:off+len(s)]) == s, nil
}

func (r *MemCharReader) MatchStrTerm(s string, term func(rune, bool) bool) (bool, error) {
	ok, err := r.MatchStr(s)
	if err != nil || !ok {
		return false, err
	}
	clone := *r
	target := clone.p.Offset + uint64(len(s))
	for clone.p.Offset < target {
		if _, _, err := clone.NextChar(); err != nil {
			return false, err
		}
	}
	c, ok2, err := clone.PeekChar(0)
	if err != nil {
		return false, err
	}
	return term(c, ok2), nil
}

var _ CharReader = (*MemCharReader)(nil)
