package ioread_test

import (
	"strings"
	"testing"

	"github.com/autonomous-bits/diagsub/ioread"
	"github.com/autonomous-bits/diagsub/pos"
)

// advance reads n chars from r and returns the reader's position afterwards,
// which is the position of the last char read.
func advance(t *testing.T, r ioread.CharReader, n int) pos.Position {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, ok, err := r.NextChar(); err != nil || !ok {
			t.Fatalf("advance: unexpected result at step %d: %v %v", i, ok, err)
		}
	}
	return r.Position()
}

func TestQuote_SameLineSpan(t *testing.T) {
	src := "let x = 1\n"
	r := ioread.NewMemCharReaderWithPath("sample.txt", []byte(src))

	from := advance(t, r, 5) // just before "x"
	to := advance(t, r, 1)   // just after "x"

	q := r.Quote(from, to, 0, 0, "undeclared variable")
	out := q.String()

	if !strings.Contains(out, " --> sample.txt:"+from.String()) {
		t.Errorf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "let x = 1") {
		t.Errorf("missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^ undeclared variable") {
		t.Errorf("missing caret + message, got:\n%s", out)
	}
}

func TestQuote_MultiLineSpan_NoCaretsInBetween(t *testing.T) {
	src := "first\nsecond\nthird\n"
	r := ioread.NewMemCharReaderWithPath("f.txt", []byte(src))

	from := r.Position() // start of "first"
	// Advance to the middle of "third".
	to := advance(t, r, len("first\nsecond\nthi"))

	q := r.Quote(from, to, 0, 0, "spans three lines")
	out := q.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	caretLines := 0
	for _, l := range lines {
		if strings.Contains(l, "^") {
			caretLines++
		}
	}
	if caretLines != 2 {
		t.Errorf("expected exactly 2 caret rows (first and last line), got %d in:\n%s", caretLines, out)
	}
	if !strings.Contains(out, "second") {
		t.Errorf("expected the middle line to still be printed, got:\n%s", out)
	}
}

func TestQuote_LinesBeforeAndAfter(t *testing.T) {
	src := "a\nb\nc\nd\ne\n"
	r := ioread.NewMemCharReaderWithPath("f.txt", []byte(src))

	from := advance(t, r, 5) // start of "c"
	to := from

	q := r.Quote(from, to, 1, 1, "")
	out := q.String()

	for _, want := range []string{"b", "c", "d"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected context line %q in output:\n%s", want, out)
		}
	}
}

func TestQuote_BareSnippet(t *testing.T) {
	r := ioread.NewMemCharReader([]byte("orphan snippet"))
	zero := pos.Position{}

	q := r.Quote(zero, zero, 0, 0, "note")
	out := q.String()

	if strings.Contains(out, "-->") {
		t.Errorf("bare snippet must not render a path header, got:\n%s", out)
	}
	if !strings.Contains(out, "orphan snippet") {
		t.Errorf("expected the snippet text, got:\n%s", out)
	}
}

func TestQuote_OffsetPastEofClamps(t *testing.T) {
	r := ioread.NewMemCharReaderWithPath("f.txt", []byte("short"))
	from := advance(t, r, 5) // at the last char, "t"
	to := pos.Position{Offset: 999, Line: 1, Column: 999}

	// Must not panic despite `to` lying past the end of the buffer.
	q := r.Quote(from, to, 0, 0, "")
	_ = q.String()
}
