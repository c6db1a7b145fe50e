package diag

import (
	"fmt"
	"strings"

	"github.com/autonomous-bits/diagsub/ioread"
)

// Diag is a diagnostic record: a Detail plus an optional cause chain and an
// optional captured stack. It satisfies the standard error interface so it
// interoperates with errors.Is/errors.As/fmt.Errorf("%w", ...).
type Diag interface {
	error
	Detail() Detail
	Cause() Diag
	Stacktrace() *Stacktrace
	Severity() Severity
}

// baseDiag holds the fields common to every Diag flavour. Basic (detail
// inline when small, else boxed) and Simple (detail always boxed) exist
// elsewhere as a manual-layout optimisation; in Go a Detail is already
// stored behind a plain interface value, so both flavours share this
// identical representation and no size-threshold logic is needed.
type baseDiag struct {
	detail Detail
	cause  Diag
	stack  *Stacktrace
}

func (d *baseDiag) Detail() Detail            { return d.detail }
func (d *baseDiag) Cause() Diag               { return d.cause }
func (d *baseDiag) Stacktrace() *Stacktrace   { return d.stack }
func (d *baseDiag) Severity() Severity        { return d.detail.Severity() }

func render(detail Detail, quotes []ioread.Quote, cause Diag, stack *Stacktrace) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]: %s\n", detail.Severity(), FormatCode(detail.Severity(), detail.Code()), detail)
	for _, q := range quotes {
		sb.WriteString(q.String())
	}
	if cause != nil {
		fmt.Fprintf(&sb, "caused by: %s\n", cause)
	}
	if stack != nil {
		if s := stack.String(); s != "" {
			sb.WriteString(s)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// BasicDiag is the default diagnostic flavour: a detail, an optional cause,
// an optional stack.
type BasicDiag struct{ baseDiag }

func (d *BasicDiag) String() string { return render(d.detail, nil, d.cause, d.stack) }
func (d *BasicDiag) Error() string  { return d.String() }

// From builds a BasicDiag with no cause and no captured stack.
func From(detail Detail) *BasicDiag {
	return &BasicDiag{baseDiag{detail: detail}}
}

// FromWithStack builds a BasicDiag, capturing a stack at the call site
// (skipping this constructor's own frame).
func FromWithStack(detail Detail) *BasicDiag {
	return &BasicDiag{baseDiag{detail: detail, stack: NewStacktrace(1)}}
}

// WithCause builds a BasicDiag chaining an existing Diag as its cause. The
// cause is owned by the returned diag, so cause chains built this way are
// acyclic by construction.
func WithCause(detail Detail, cause Diag) *BasicDiag {
	return &BasicDiag{baseDiag{detail: detail, cause: cause}}
}

// WithStacktrace builds a BasicDiag with an explicitly supplied stack.
func WithStacktrace(detail Detail, stack *Stacktrace) *BasicDiag {
	return &BasicDiag{baseDiag{detail: detail, stack: stack}}
}

// WithCauseStacktrace builds a BasicDiag with both a cause and an explicit
// stack.
func WithCauseStacktrace(detail Detail, cause Diag, stack *Stacktrace) *BasicDiag {
	return &BasicDiag{baseDiag{detail: detail, cause: cause, stack: stack}}
}

// SimpleDiag is used when the detail type is large or variable; it carries
// no representational difference from BasicDiag in this port (see baseDiag).
type SimpleDiag struct{ baseDiag }

func (d *SimpleDiag) String() string { return render(d.detail, nil, d.cause, d.stack) }
func (d *SimpleDiag) Error() string  { return d.String() }

// Simple builds a SimpleDiag with no cause and no captured stack.
func Simple(detail Detail) *SimpleDiag {
	return &SimpleDiag{baseDiag{detail: detail}}
}

// SimpleWithCause builds a SimpleDiag chaining an existing Diag as its cause.
func SimpleWithCause(detail Detail, cause Diag) *SimpleDiag {
	return &SimpleDiag{baseDiag{detail: detail, cause: cause}}
}

// ParseDiag is BasicDiag plus an ordered list of source quotes.
type ParseDiag struct {
	baseDiag
	quotes []ioread.Quote
}

// NewParseDiag builds a ParseDiag with zero or more initial quotes.
func NewParseDiag(detail Detail, quotes ...ioread.Quote) *ParseDiag {
	return &ParseDiag{baseDiag: baseDiag{detail: detail}, quotes: append([]ioread.Quote(nil), quotes...)}
}

// ParseWithCause builds a ParseDiag chaining an existing Diag as its cause.
func ParseWithCause(detail Detail, cause Diag, quotes ...ioread.Quote) *ParseDiag {
	return &ParseDiag{baseDiag: baseDiag{detail: detail, cause: cause}, quotes: append([]ioread.Quote(nil), quotes...)}
}

// AddQuote appends a quote to the diagnostic.
func (d *ParseDiag) AddQuote(q ioread.Quote) { d.quotes = append(d.quotes, q) }

// Quotes returns the diagnostic's quotes in insertion order.
func (d *ParseDiag) Quotes() []ioread.Quote { return d.quotes }

func (d *ParseDiag) String() string { return render(d.detail, d.quotes, d.cause, d.stack) }
func (d *ParseDiag) Error() string  { return d.String() }

var (
	_ Diag = (*BasicDiag)(nil)
	_ Diag = (*SimpleDiag)(nil)
	_ Diag = (*ParseDiag)(nil)
)
