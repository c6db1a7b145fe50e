// Package codetable realises a declarative severity-and-code derivation
// contract: in a source language with derive macros this table is built at
// compile time from an enumerated error kind; without macros, Go builds it
// declaratively at package-initialisation time, panicking on a duplicate
// code the same way a macro-driven build would fail to compile.
package codetable

import (
	"fmt"

	"github.com/autonomous-bits/diagsub/diag"
)

type variant struct {
	name string
	code *uint32
	sev  *diag.Severity
}

// VariantOption configures a single variant registered with Table.Variant.
type VariantOption func(*variant)

// WithCode overrides a variant's code (pre-offset; Table.codeOffset is added
// on top at Build time, to every variant, explicit or gap-filled).
func WithCode(code uint32) VariantOption {
	return func(v *variant) { c := code; v.code = &c }
}

// WithSeverity overrides a variant's default severity.
func WithSeverity(sev diag.Severity) VariantOption {
	return func(v *variant) { s := sev; v.sev = &s }
}

// Table is a declarative severity/code registry for one enumerated error
// kind.
type Table struct {
	defaultSeverity diag.Severity
	codeOffset      uint32
	order           []string
	variants        map[string]*variant
	codes           map[string]uint32
	sevs            map[string]diag.Severity
	built           bool
}

// New starts a Table with a default severity and a code offset applied to
// every variant's final code.
func New(defaultSeverity diag.Severity, codeOffset uint32) *Table {
	return &Table{
		defaultSeverity: defaultSeverity,
		codeOffset:      codeOffset,
		variants:        map[string]*variant{},
	}
}

// Variant registers one error-kind variant. Call order matters: an omitted
// code is gap-filled as max(previous raw code, max raw code seen so far)+1.
func (t *Table) Variant(name string, opts ...VariantOption) *Table {
	if t.built {
		panic("codetable: Variant called after Build")
	}
	v := &variant{name: name}
	for _, opt := range opts {
		opt(v)
	}
	if _, exists := t.variants[name]; exists {
		panic(fmt.Sprintf("codetable: variant %q registered twice", name))
	}
	t.variants[name] = v
	t.order = append(t.order, name)
	return t
}

// Build assigns gaps and detects duplicate codes, panicking on a collision.
// A duplicate code is a programmer error, caught at program start much like
// a failed macro expansion would be.
func (t *Table) Build() *Table {
	t.codes = make(map[string]uint32, len(t.order))
	t.sevs = make(map[string]diag.Severity, len(t.order))

	seen := make(map[uint32]string, len(t.order))
	var rawPrev, rawMaxSeen uint32
	for i, name := range t.order {
		v := t.variants[name]
		var raw uint32
		if v.code != nil {
			raw = *v.code
		} else if i == 0 {
			raw = 0
		} else {
			base := rawPrev
			if rawMaxSeen > base {
				base = rawMaxSeen
			}
			raw = base + 1
		}

		code := raw + t.codeOffset
		if other, dup := seen[code]; dup {
			panic(fmt.Sprintf("codetable: duplicate code %d for variants %q and %q", code, other, name))
		}
		seen[code] = name
		t.codes[name] = code

		rawPrev = raw
		if raw > rawMaxSeen {
			rawMaxSeen = raw
		}

		sev := t.defaultSeverity
		if v.sev != nil {
			sev = *v.sev
		}
		t.sevs[name] = sev
	}
	t.built = true
	return t
}

// Code returns name's assigned code. Build must have run.
func (t *Table) Code(name string) uint32 { return t.codes[name] }

// Severity returns name's assigned severity. Build must have run.
func (t *Table) Severity(name string) diag.Severity { return t.sevs[name] }
