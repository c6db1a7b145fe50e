// Package ioread provides position-tracking byte and character readers over
// in-memory buffers, plus the Quote type used to render source excerpts.
package ioread

import (
	"strconv"

	"github.com/autonomous-bits/diagsub/pos"
)

// IoErrorKind distinguishes the shapes an I/O-layer failure can take.
type IoErrorKind int

const (
	// KindUtf8InvalidEncoding marks a malformed UTF-8 byte sequence.
	KindUtf8InvalidEncoding IoErrorKind = iota
	// KindUtf8UnexpectedEof marks a UTF-8 sequence truncated by end of input.
	KindUtf8UnexpectedEof
)

// IoErrorDetail is the decoding-layer failure shape a reader reports
// stratum 2: malformed UTF-8 on a character or byte reader.
type IoErrorDetail struct {
	Kind   IoErrorKind
	Offset uint64
	Len    int
}

func (e *IoErrorDetail) Error() string {
	switch e.Kind {
	case KindUtf8InvalidEncoding:
		return "invalid utf-8 encoding at offset " + strconv.FormatUint(e.Offset, 10) + " (len " + strconv.Itoa(e.Len) + ")"
	case KindUtf8UnexpectedEof:
		return "unexpected end of input decoding utf-8 at offset " + strconv.FormatUint(e.Offset, 10)
	default:
		return "utf-8 decoding error"
	}
}

func utf8EncodingErr(offset uint64, length int) error {
	return &IoErrorDetail{Kind: KindUtf8InvalidEncoding, Offset: offset, Len: length}
}

func utf8EofErr(offset uint64) error {
	return &IoErrorDetail{Kind: KindUtf8UnexpectedEof, Offset: offset}
}

// Reader is the contract common to every stream this module offers: byte or
// character, positions, seeking, slicing, and quote materialisation.
type Reader interface {
	// Path returns the reader's associated source path, or "" if none.
	Path() string
	// HasPath reports whether a path was configured.
	HasPath() bool
	// Len returns the total length of the underlying buffer in bytes.
	Len() int
	// Eof reports whether the reader has consumed the whole buffer.
	Eof() bool
	// Position returns the reader's current position.
	Position() pos.Position
	// Seek restores a position previously observed from this reader on the
	// same buffer, resetting any cached decode state.
	Seek(p pos.Position)
	// Input returns the whole buffer as text.
	Input() (string, error)
	// Slice returns the raw UTF-8 slice between two byte offsets. Callers
	// guarantee both offsets lie on character boundaries.
	Slice(start, end uint64) (string, error)
	// SlicePos is Slice addressed by Position.
	SlicePos(from, to pos.Position) (string, error)
	// Reset seeks back to the start of the buffer.
	Reset()
	// Quote materialises a rendered excerpt for the span [from,to), with up
	// to linesBefore/linesAfter lines of surrounding context.
	Quote(from, to pos.Position, linesBefore, linesAfter uint32, message string) Quote
}

// ByteReader streams raw bytes while maintaining a UTF-8 validator so that
// line/column advance correctly.
type ByteReader interface {
	Reader
	// NextByte returns the byte at the current position and advances past
	// it, or reports ok=false at EOF.
	NextByte() (b byte, ok bool, err error)
	// PeekByte returns the lookahead-th upcoming byte without advancing.
	PeekByte(lookahead int) (b byte, ok bool, err error)
	// PeekBytePos is PeekByte, additionally returning the byte's position.
	PeekBytePos(lookahead int) (b byte, p pos.Position, ok bool, err error)
	// SkipBytes advances n bytes.
	SkipBytes(n int) error
}

// CharReader streams Unicode scalar values decoded from UTF-8.
type CharReader interface {
	Reader
	// NextChar advances past the current scalar (if any), decodes the next,
	// and returns it, or ok=false at EOF.
	NextChar() (r rune, ok bool, err error)
	// PeekChar returns the lookahead-th upcoming scalar without advancing
	// (0 = the current position's scalar).
	PeekChar(lookahead int) (r rune, ok bool, err error)
	// PeekCharPos is PeekChar, additionally returning the scalar's position.
	PeekCharPos(lookahead int) (r rune, p pos.Position, ok bool, err error)
	// SkipChars advances n scalars.
	SkipChars(n int) error
	// MatchStr reports whether the upcoming bytes equal s byte-for-byte. It
	// never consumes input.
	MatchStr(s string) (bool, error)
	// MatchStrTerm reports whether MatchStr(s) holds and the scalar right
	// after s satisfies term (term receives ok=false at EOF). Never consumes.
	MatchStrTerm(s string, term func(r rune, ok bool) bool) (bool, error)
}

// MatchChar reports whether the reader's current scalar equals c. Never
// consumes input. Expressed as a free function (the Go analogue of the
// source's default trait method) so any CharReader implementation gets it
// for free.
func MatchChar(r CharReader, c rune) (bool, error) {
	k, ok, err := r.PeekChar(0)
	if err != nil {
		return false, err
	}
	return ok && k == c, nil
}

// SkipWhitespace consumes Unicode whitespace, including newlines.
func SkipWhitespace(r CharReader) error {
	for {
		c, ok, err := r.PeekChar(0)
		if err != nil {
			return err
		}
		if !ok || !isWhitespace(c) {
			return nil
		}
		if _, _, err := r.NextChar(); err != nil {
			return err
		}
	}
}

// SkipWhitespaceNonl consumes Unicode whitespace, excluding '\n'.
func SkipWhitespaceNonl(r CharReader) error {
	for {
		c, ok, err := r.PeekChar(0)
		if err != nil {
			return err
		}
		if !ok || !isWhitespace(c) || c == '\n' {
			return nil
		}
		if _, _, err := r.NextChar(); err != nil {
			return err
		}
	}
}

// Scan consumes the longest prefix where pred holds and returns it.
func Scan(r CharReader, pred func(rune) bool) (string, error) {
	start := r.Position().Offset
	for {
		c, ok, err := r.PeekChar(0)
		if err != nil {
			return "", err
		}
		if !ok || !pred(c) {
			break
		}
		if _, _, err := r.NextChar(); err != nil {
			return "", err
		}
	}
	end := r.Position().Offset
	return r.Slice(start, end)
}

// SkipUntil consumes scalars until pred holds (or EOF).
func SkipUntil(r CharReader, pred func(rune) bool) error {
	for {
		c, ok, err := r.PeekChar(0)
		if err != nil {
			return err
		}
		if !ok || pred(c) {
			return nil
		}
		if _, _, err := r.NextChar(); err != nil {
			return err
		}
	}
}

// SkipWhile consumes scalars while pred holds.
func SkipWhile(r CharReader, pred func(rune) bool) error {
	for {
		c, ok, err := r.PeekChar(0)
		if err != nil {
			return err
		}
		if !ok || !pred(c) {
			return nil
		}
		if _, _, err := r.NextChar(); err != nil {
			return err
		}
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0x85, 0xA0, 0x1680:
		return true
	default:
		return r >= 0x2000 && r <= 0x200A || r == 0x2028 || r == 0x2029 || r == 0x202F || r == 0x205F || r == 0x3000
	}
}

func consumeBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
