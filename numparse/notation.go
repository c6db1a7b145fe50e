// Package numparse implements the configurable number-literal recogniser
// and converter: a state machine over a CharReader that emits a typed token
// (sign, notation, span), and a generic converter from that token to any
// target Go numeric type.
package numparse

import "github.com/autonomous-bits/diagsub/pos"

// Notation is the lexical shape a recognised number literal takes.
type Notation int

const (
	Decimal Notation = iota
	Float
	Exponent
	Octal
	Hex
	Binary
)

// Radix returns the notation's numeric base. Float and Exponent are always
// base 10.
func (n Notation) Radix() int {
	switch n {
	case Octal:
		return 8
	case Hex:
		return 16
	case Binary:
		return 2
	default:
		return 10
	}
}

func (n Notation) String() string {
	switch n {
	case Decimal:
		return "decimal"
	case Float:
		return "float"
	case Exponent:
		return "exponent"
	case Octal:
		return "octal"
	case Hex:
		return "hex"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Sign is the optional leading sign of a number literal.
type Sign int

const (
	SignNone Sign = iota
	SignMinus
	SignPlus
)

func (s Sign) String() string {
	switch s {
	case SignMinus:
		return "-"
	case SignPlus:
		return "+"
	default:
		return ""
	}
}

// Case restricts which letter case a notation's digits/markers accept.
type Case int

const (
	CaseAny Case = iota
	CaseUpper
	CaseLower
)

// Token is the recogniser's output: a sign, a notation, and the span of
// source text it spans. The underlying source buffer must remain available
// between recognition and conversion.
type Token struct {
	Sign     Sign
	Notation Notation
	Span     pos.Span
}
