package numparse_test

import (
	"testing"

	"github.com/autonomous-bits/diagsub/diag"
	"github.com/autonomous-bits/diagsub/ioread"
	"github.com/autonomous-bits/diagsub/numparse"
)

func recognize(t *testing.T, src string) (numparse.Token, ioread.CharReader) {
	t.Helper()
	r := ioread.NewMemCharReader([]byte(src))
	p := numparse.NewParser()
	tok, err := p.Recognize(r)
	if err != nil {
		t.Fatalf("Recognize(%q) unexpected error: %v", src, err)
	}
	return tok, r
}

func TestParser_RecognizeDecimal(t *testing.T) {
	tok, r := recognize(t, "123")
	if tok.Notation != numparse.Decimal {
		t.Errorf("notation = %v, want Decimal", tok.Notation)
	}
	if tok.Sign != numparse.SignNone {
		t.Errorf("sign = %v, want None", tok.Sign)
	}
	text, _ := r.SlicePos(tok.Span.Start, tok.Span.End)
	if text != "123" {
		t.Errorf("span text = %q, want %q", text, "123")
	}
}

func TestParser_RecognizeFloat(t *testing.T) {
	tok, r := recognize(t, "123.45")
	if tok.Notation != numparse.Float {
		t.Errorf("notation = %v, want Float", tok.Notation)
	}
	text, _ := r.SlicePos(tok.Span.Start, tok.Span.End)
	if text != "123.45" {
		t.Errorf("span text = %q, want %q", text, "123.45")
	}
}

func TestParser_RecognizeExponent(t *testing.T) {
	tests := []string{"123e10", "123.45e-10", "1E+5"}
	for _, src := range tests {
		tok, r := recognize(t, src)
		if tok.Notation != numparse.Exponent {
			t.Errorf("%q: notation = %v, want Exponent", src, tok.Notation)
		}
		text, _ := r.SlicePos(tok.Span.Start, tok.Span.End)
		if text != src {
			t.Errorf("%q: span text = %q", src, text)
		}
	}
}

func TestParser_RecognizeHexOctalBinary(t *testing.T) {
	tests := []struct {
		src      string
		notation numparse.Notation
	}{
		{"0x1A", numparse.Hex},
		{"0o17", numparse.Octal},
		{"0b101", numparse.Binary},
	}
	for _, tt := range tests {
		tok, r := recognize(t, tt.src)
		if tok.Notation != tt.notation {
			t.Errorf("%q: notation = %v, want %v", tt.src, tok.Notation, tt.notation)
		}
		text, _ := r.SlicePos(tok.Span.Start, tok.Span.End)
		if text != tt.src {
			t.Errorf("%q: span text = %q", tt.src, text)
		}
	}
}

func TestParser_RecognizeSign(t *testing.T) {
	tok, _ := recognize(t, "-123")
	if tok.Sign != numparse.SignMinus {
		t.Errorf("sign = %v, want Minus", tok.Sign)
	}

	tok, _ = recognize(t, "+123")
	if tok.Sign != numparse.SignPlus {
		t.Errorf("sign = %v, want Plus", tok.Sign)
	}
}

func TestParser_DotRetractionBeforeRangeOperator(t *testing.T) {
	r := ioread.NewMemCharReader([]byte("5..10"))
	p := numparse.NewParser()

	tok, err := p.Recognize(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Notation != numparse.Decimal {
		t.Errorf("notation = %v, want Decimal (the dot must retract before a range operator)", tok.Notation)
	}
	text, _ := r.SlicePos(tok.Span.Start, tok.Span.End)
	if text != "5" {
		t.Errorf("span text = %q, want %q", text, "5")
	}

	rest, ok, err := r.PeekChar(0)
	if err != nil || !ok || rest != '.' {
		t.Errorf("expected the reader to be positioned right before the retracted dot, got %q %v %v", rest, ok, err)
	}
}

func TestParser_ExponentWithoutDigitsIsRejected(t *testing.T) {
	r := ioread.NewMemCharReader([]byte("5e"))
	p := numparse.NewParser()

	_, err := p.Recognize(r)
	if err == nil {
		t.Fatal("expected an error: an exponent marker commits the literal, it does not retract to decimal")
	}
	detail := detailOf(t, err)
	if detail.Kind != numparse.KindUnexpectedEof {
		t.Errorf("kind = %v, want KindUnexpectedEof", detail.Kind)
	}
}

func TestParser_LoneSignFollowedByNonDigit(t *testing.T) {
	r := ioread.NewMemCharReader([]byte("- "))
	p := numparse.NewParser()

	_, err := p.Recognize(r)
	if err == nil {
		t.Fatal("expected an error for a sign with no number after it")
	}
	detail := detailOf(t, err)
	if detail.Kind != numparse.KindUnexpectedInput {
		t.Errorf("kind = %v, want KindUnexpectedInput", detail.Kind)
	}
	if detail.Found == nil || detail.Found.String() != "' '" {
		t.Errorf("found = %v, want a space character", detail.Found)
	}
}

func TestParser_LoneSignAtEof(t *testing.T) {
	r := ioread.NewMemCharReader([]byte("-"))
	p := numparse.NewParser()

	_, err := p.Recognize(r)
	if err == nil {
		t.Fatal("expected an error for a bare trailing sign")
	}
	detail := detailOf(t, err)
	if detail.Kind != numparse.KindUnexpectedInput {
		t.Errorf("kind = %v, want KindUnexpectedInput (symmetric with the non-digit case), got %v", detail.Kind, detail.Kind)
	}
}

func TestParser_UnexpectedEof(t *testing.T) {
	r := ioread.NewMemCharReader([]byte(""))
	p := numparse.NewParser()

	_, err := p.Recognize(r)
	if err == nil {
		t.Fatal("expected an error on empty input")
	}
	detail := detailOf(t, err)
	if detail.Kind != numparse.KindUnexpectedEof {
		t.Errorf("kind = %v, want KindUnexpectedEof", detail.Kind)
	}
}

func TestParser_UnexpectedInput(t *testing.T) {
	r := ioread.NewMemCharReader([]byte("?"))
	p := numparse.NewParser()

	_, err := p.Recognize(r)
	if err == nil {
		t.Fatal("expected an error for an unrecognised leading character")
	}
	detail := detailOf(t, err)
	if detail.Kind != numparse.KindUnexpectedInput {
		t.Errorf("kind = %v, want KindUnexpectedInput", detail.Kind)
	}
	if detail.Found == nil || detail.Found.String() != "'?'" {
		t.Errorf("found = %v, want '?'", detail.Found)
	}
}

func TestParser_NotationDisabled(t *testing.T) {
	p := numparse.NewParser(numparse.WithHex(numparse.NotationConfig{Enabled: false}))

	r := ioread.NewMemCharReader([]byte("0x1A"))
	tok, err := p.Recognize(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// With hex disabled, "0" is read as a bare decimal literal.
	if tok.Notation != numparse.Decimal {
		t.Errorf("notation = %v, want Decimal once hex is disabled", tok.Notation)
	}
}

func detailOf(t *testing.T, err error) numparse.ParseErrorDetail {
	t.Helper()
	d, ok := err.(diag.Diag)
	if !ok {
		t.Fatalf("expected a diag.Diag, got %T", err)
	}
	detail, ok := d.Detail().(numparse.ParseErrorDetail)
	if !ok {
		t.Fatalf("expected a numparse.ParseErrorDetail, got %T", d.Detail())
	}
	return detail
}
