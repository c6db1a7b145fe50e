package numparse_test

import (
	"testing"

	"github.com/autonomous-bits/diagsub/numparse"
)

func TestOneOf_CollapsesSingleElement(t *testing.T) {
	got := numparse.OneOf([]numparse.Expected{numparse.ExpectedByte('a')})
	if _, ok := got.(numparse.ExpectedOneOf); ok {
		t.Error("a single-element list should collapse to the bare element, not stay an ExpectedOneOf")
	}
}

func TestOneOf_DedupesAndSorts(t *testing.T) {
	got := numparse.OneOf([]numparse.Expected{
		numparse.ExpectedCustom("zeta"),
		numparse.ExpectedCustom("alpha"),
		numparse.ExpectedCustom("alpha"),
	})
	one, ok := got.(numparse.ExpectedOneOf)
	if !ok {
		t.Fatalf("expected ExpectedOneOf, got %T", got)
	}
	if len(one) != 2 {
		t.Fatalf("expected duplicates removed, got %d entries", len(one))
	}
	if one[0].String() != "alpha" || one[1].String() != "zeta" {
		t.Errorf("expected sorted order alpha, zeta; got %s, %s", one[0], one[1])
	}
}

func TestExpectedOr_String(t *testing.T) {
	or := numparse.ExpectedOr{A: numparse.ExpectedCustom("a digit"), B: numparse.ExpectedCustom("a sign")}
	if got, want := or.String(), "a digit or a sign"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestExpectedByteRange_String(t *testing.T) {
	r := numparse.ExpectedByteRange{Lo: '0', Hi: '9'}
	if got, want := r.String(), "'0'..='9'"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFoundByte_StringEscapesNonPrintable(t *testing.T) {
	if got, want := numparse.FoundByte(0x01).String(), "0x01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := numparse.FoundByte('a').String(), "'a'"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
