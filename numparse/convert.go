package numparse

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/autonomous-bits/diagsub/diag"
	"github.com/autonomous-bits/diagsub/ioread"
)

// Numerical bounds the target types Convert can produce.
type Numerical interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Convert reads the source text a previously recognised Token spans and
// converts it to N. For an integer N, Decimal/Octal/Hex/Binary tokens are
// converted radix-exactly, and Float/Exponent tokens are parsed as a float
// and truncated toward zero. For a float N, the token text goes through
// strconv.ParseFloat, so Octal/Hex/Binary tokens are not converted to a
// float N; they fail with KindNumericalInvalid. cfg must be the same configuration (or an
// equivalent one) the token was recognised with: integer conversion strips
// the notation's own configured prefix itself rather than relying on
// strconv's hardcoded 0x/0o/0b set, so a reconfigured Prefix converts
// correctly too. The reader must still hold the buffer the token was
// recognised from; Seek back to token.Span.Start first if the reader has
// since advanced past it.
func Convert[N Numerical](token Token, r ioread.CharReader, cfg Config) (N, error) {
	var zero N

	text, err := r.SlicePos(token.Span.Start, token.Span.End)
	if err != nil {
		return zero, err
	}
	text = strings.ReplaceAll(text, "_", "")

	kind := reflect.TypeOf(zero).Kind()
	switch kind {
	case reflect.Float32, reflect.Float64:
		return convertFloat[N](token, text, kind)
	default:
		return convertInteger[N](token, text, kind, cfg)
	}
}

func convertFloat[N Numerical](token Token, text string, kind reflect.Kind) (N, error) {
	var zero N
	bitSize := 64
	if kind == reflect.Float32 {
		bitSize = 32
	}
	f, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
			kind := KindNumericalOverflow
			if strings.HasPrefix(text, "-") {
				kind = KindNumericalUnderflow
			}
			return zero, numError(kind, token, text)
		}
		return zero, numError(KindNumericalInvalid, token, text)
	}
	return N(f), nil
}

func convertInteger[N Numerical](token Token, text string, kind reflect.Kind, cfg Config) (N, error) {
	var zero N
	bitSize := bitSizeOf(kind)
	radix := token.Notation.Radix()
	magnitude := stripLeadingSign(text)
	magnitude = stripConfiguredPrefix(magnitude, notationPrefix(cfg, token.Notation))
	if token.Notation == Float || token.Notation == Exponent {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return zero, classifyInt(err, token, text)
		}
		magnitude = strconv.FormatFloat(math.Abs(math.Trunc(f)), 'f', 0, 64)
	}

	if isUnsignedKind(kind) {
		if token.Sign == SignMinus {
			return zero, numError(KindNumericalUnderflow, token, text)
		}
		u, err := strconv.ParseUint(magnitude, radix, bitSize)
		if err != nil {
			return zero, classifyUint(err, token, text)
		}
		return N(u), nil
	}

	signed := magnitude
	if token.Sign == SignMinus {
		signed = "-" + magnitude
	}
	i, err := strconv.ParseInt(signed, radix, bitSize)
	if err != nil {
		return zero, classifyInt(err, token, text)
	}
	return N(i), nil
}

// notationPrefix returns the prefix the given notation was configured with,
// so Convert strips exactly what the recogniser matched rather than relying
// on strconv's own fixed 0x/0o/0b/legacy-octal prefix set.
func notationPrefix(cfg Config, n Notation) string {
	switch n {
	case Hex:
		return cfg.Hex.Prefix
	case Octal:
		return cfg.Octal.Prefix
	case Binary:
		return cfg.Binary.Prefix
	default:
		return cfg.Decimal.Prefix
	}
}

// stripConfiguredPrefix removes prefix from the front of s, matching
// case-insensitively the same way the recogniser's prefix match does. s is
// returned unchanged if prefix is empty or does not match.
func stripConfiguredPrefix(s, prefix string) string {
	if prefix == "" || len(s) < len(prefix) {
		return s
	}
	if strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):]
	}
	return s
}

func classifyUint(err error, token Token, text string) error {
	var nerr *strconv.NumError
	if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
		return numError(KindNumericalOverflow, token, text)
	}
	return numError(KindNumericalInvalid, token, text)
}

func classifyInt(err error, token Token, text string) error {
	var nerr *strconv.NumError
	if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
		if token.Sign == SignMinus {
			return numError(KindNumericalUnderflow, token, text)
		}
		return numError(KindNumericalOverflow, token, text)
	}
	return numError(KindNumericalInvalid, token, text)
}

func numError(kind ParseErrorKind, token Token, text string) error {
	return diag.From(ParseErrorDetail{
		Kind:    kind,
		Pos:     token.Span.Start,
		Span:    token.Span,
		NumKind: token.Notation,
		NumValue: text,
	})
}

func stripLeadingSign(s string) string {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

func bitSizeOf(kind reflect.Kind) int {
	switch kind {
	case reflect.Int8, reflect.Uint8:
		return 8
	case reflect.Int16, reflect.Uint16:
		return 16
	case reflect.Int32, reflect.Uint32:
		return 32
	case reflect.Int64, reflect.Uint64:
		return 64
	default:
		return 0
	}
}

func isUnsignedKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
