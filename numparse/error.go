package numparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/autonomous-bits/diagsub/codetable"
	"github.com/autonomous-bits/diagsub/diag"
	"github.com/autonomous-bits/diagsub/pos"
)

// Found describes what was actually encountered at a failure position.
type Found interface {
	fmt.Stringer
}

// FoundByte is a raw byte encountered where a different shape was expected.
type FoundByte byte

func (f FoundByte) String() string {
	if f >= 0x20 && f < 0x7f {
		return fmt.Sprintf("'%c'", byte(f))
	}
	return fmt.Sprintf("0x%02X", byte(f))
}

// FoundChar is a decoded rune encountered where a different shape was
// expected.
type FoundChar rune

func (f FoundChar) String() string { return fmt.Sprintf("'%c'", rune(f)) }

// FoundCustom is a free-form description of what was found, for callers
// that recognise input the byte/char forms can't describe precisely.
type FoundCustom string

func (f FoundCustom) String() string { return string(f) }

// Expected describes what the parser was looking for.
type Expected interface {
	fmt.Stringer
}

// ExpectedByte names a single expected byte.
type ExpectedByte byte

func (e ExpectedByte) String() string { return FoundByte(e).String() }

// ExpectedByteRange names an inclusive byte range.
type ExpectedByteRange struct{ Lo, Hi byte }

func (e ExpectedByteRange) String() string {
	return fmt.Sprintf("%s..=%s", ExpectedByte(e.Lo), ExpectedByte(e.Hi))
}

// ExpectedChar names a single expected rune.
type ExpectedChar rune

func (e ExpectedChar) String() string { return FoundChar(e).String() }

// ExpectedCharRange names an inclusive rune range.
type ExpectedCharRange struct{ Lo, Hi rune }

func (e ExpectedCharRange) String() string {
	return fmt.Sprintf("%s..=%s", ExpectedChar(e.Lo), ExpectedChar(e.Hi))
}

// ExpectedCustom names a free-form expectation, e.g. "end of input".
type ExpectedCustom string

func (e ExpectedCustom) String() string { return string(e) }

// ExpectedOneOf is a collapsed, deduplicated, sorted set of alternatives.
// Build it with OneOf rather than constructing it directly.
type ExpectedOneOf []Expected

func (e ExpectedOneOf) String() string {
	parts := make([]string, len(e))
	for i, x := range e {
		parts[i] = x.String()
	}
	return strings.Join(parts, ", ")
}

// ExpectedOr composes two alternatives with "or" rather than a comma list,
// matching the two-alternative phrasing called out separately from
// the general one-of case.
type ExpectedOr struct{ A, B Expected }

func (e ExpectedOr) String() string { return fmt.Sprintf("%s or %s", e.A, e.B) }

// OneOf builds an Expected from a list of alternatives, collapsing a
// single-element list to that element, deduplicating by rendered form, and
// sorting the remainder for a deterministic message.
func OneOf(list []Expected) Expected {
	seen := make(map[string]Expected, len(list))
	order := make([]string, 0, len(list))
	for _, e := range list {
		key := e.String()
		if _, ok := seen[key]; !ok {
			seen[key] = e
			order = append(order, key)
		}
	}
	sort.Strings(order)
	out := make(ExpectedOneOf, len(order))
	for i, key := range order {
		out[i] = seen[key]
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// ParseErrorKind discriminates the taxonomy of failures the recogniser and
// converter can report.
type ParseErrorKind int

const (
	KindUnexpectedEof ParseErrorKind = iota
	KindUnexpectedInput
	KindNumericalOverflow
	KindNumericalUnderflow
	KindNumericalInvalid
	KindIo
)

func (k ParseErrorKind) variantName() string {
	switch k {
	case KindUnexpectedEof:
		return "unexpected_eof"
	case KindUnexpectedInput:
		return "unexpected_input"
	case KindNumericalOverflow:
		return "numerical_overflow"
	case KindNumericalUnderflow:
		return "numerical_underflow"
	case KindNumericalInvalid:
		return "numerical_invalid"
	case KindIo:
		return "io"
	default:
		return "unknown"
	}
}

var errorTable = codetable.New(diag.Error, 0).
	Variant("unexpected_eof").
	Variant("unexpected_input").
	Variant("numerical_overflow").
	Variant("numerical_underflow").
	Variant("numerical_invalid").
	Variant("io").
	Build()

// ParseErrorDetail is the Detail implementation for every failure the
// recogniser, converter, and reader layer beneath them can raise. Which
// fields are populated depends on Kind: Expected (and Found for
// KindUnexpectedInput) for the unexpected-input/EOF kinds, Span/NumKind/
// NumValue for the numerical kinds, Io for KindIo.
type ParseErrorDetail struct {
	Kind     ParseErrorKind
	Pos      pos.Position
	Span     pos.Span
	Found    Found
	Expected Expected
	NumKind  Notation
	NumValue string
	Task     string
	Io       diag.IoDetail
}

func (d ParseErrorDetail) String() string {
	switch d.Kind {
	case KindUnexpectedEof:
		if d.Task != "" {
			return fmt.Sprintf("unexpected end of input while %s at %s", d.Task, d.Pos)
		}
		return fmt.Sprintf("unexpected end of input at %s", d.Pos)
	case KindUnexpectedInput:
		if d.Expected != nil {
			return fmt.Sprintf("unexpected %s at %s, expected %s", d.Found, d.Pos, d.Expected)
		}
		return fmt.Sprintf("unexpected %s at %s", d.Found, d.Pos)
	case KindNumericalOverflow:
		return fmt.Sprintf("%s literal %q overflows at %s", d.NumKind, d.NumValue, d.Pos)
	case KindNumericalUnderflow:
		return fmt.Sprintf("%s literal %q underflows at %s", d.NumKind, d.NumValue, d.Pos)
	case KindNumericalInvalid:
		return fmt.Sprintf("invalid %s literal %q at %s", d.NumKind, d.NumValue, d.Pos)
	case KindIo:
		return d.Io.String()
	default:
		return "parse error"
	}
}

// Severity defers to the wrapped IoDetail for Kind==KindIo, per the
// unchanged-delegation decision recorded for the Io variant; every other
// kind takes its severity from the shared code table.
func (d ParseErrorDetail) Severity() diag.Severity {
	if d.Kind == KindIo {
		return d.Io.Severity()
	}
	return errorTable.Severity(d.Kind.variantName())
}

// Code mirrors Severity's Io delegation.
func (d ParseErrorDetail) Code() uint32 {
	if d.Kind == KindIo {
		return d.Io.Code()
	}
	return errorTable.Code(d.Kind.variantName())
}

var _ diag.Detail = ParseErrorDetail{}
