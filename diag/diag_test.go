package diag_test

import (
	"strings"
	"testing"

	"github.com/autonomous-bits/diagsub/diag"
	"github.com/autonomous-bits/diagsub/ioread"
)

func TestBasicDiag_ErrorRendersSeverityCodeAndMessage(t *testing.T) {
	d := diag.From(diag.StringDetail("boom"))
	out := d.Error()

	if !strings.Contains(out, "error") {
		t.Errorf("expected severity word in output, got: %s", out)
	}
	if !strings.Contains(out, "F0000") {
		t.Errorf("expected formatted code in output, got: %s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected detail message in output, got: %s", out)
	}
}

func TestWithCause_ChainsCauseIntoOutput(t *testing.T) {
	cause := diag.From(diag.StringDetail("root cause"))
	top := diag.WithCause(diag.StringDetail("wrapper"), cause)

	out := top.Error()
	if !strings.Contains(out, "caused by:") {
		t.Errorf("expected a caused-by line, got: %s", out)
	}
	if !strings.Contains(out, "root cause") {
		t.Errorf("expected the cause's message, got: %s", out)
	}
}

func TestFromWithStack_IncludesRenderedStack(t *testing.T) {
	d := diag.FromWithStack(diag.StringDetail("traced"))
	if d.Stacktrace() == nil {
		t.Fatal("expected a captured stacktrace")
	}
	out := d.Error()
	if !strings.Contains(out, "traced") {
		t.Errorf("expected the detail message, got: %s", out)
	}
}

func TestParseDiag_AddQuoteAccumulates(t *testing.T) {
	d := diag.NewParseDiag(diag.StringDetail("parse failure"))
	if len(d.Quotes()) != 0 {
		t.Fatalf("expected no quotes initially, got %d", len(d.Quotes()))
	}

	r := ioread.NewMemCharReaderWithPath("f.txt", []byte("bad token"))
	start := r.Position()
	q := r.Quote(start, start, 0, 0, "here")
	d.AddQuote(q)

	if len(d.Quotes()) != 1 {
		t.Fatalf("expected one quote after AddQuote, got %d", len(d.Quotes()))
	}
	if !strings.Contains(d.Error(), "bad token") {
		t.Errorf("expected the rendered quote in the diag's output, got: %s", d.Error())
	}
}

func TestDowncastDetail(t *testing.T) {
	var d diag.Detail = diag.StringDetail("x")

	if got, ok := diag.DowncastDetail[diag.StringDetail](d); !ok || got != "x" {
		t.Errorf("expected successful downcast to StringDetail, got %v %v", got, ok)
	}
}

func TestCollector_PromotesToErrorsOnNonRecoverable(t *testing.T) {
	c := diag.NewCollector()

	if err := c.Add(diag.From(warningDetail{})); err != nil {
		t.Fatalf("recoverable add should return nil, got %v", err)
	}

	failing := failingDetail{}
	err := c.Add(diag.From(failing))
	if err == nil {
		t.Fatal("expected the Errors sentinel once a non-recoverable diag is added")
	}
	if _, ok := err.(*diag.Errors); !ok {
		t.Fatalf("expected *diag.Errors, got %T", err)
	}
	if c.MaxSeverity() != diag.Failure {
		t.Errorf("MaxSeverity() = %v, want Failure", c.MaxSeverity())
	}
	if len(c.Diags()) != 2 {
		t.Errorf("Diags() len = %d, want 2", len(c.Diags()))
	}
}

func TestCollectorResult_ZeroesOutOnError(t *testing.T) {
	c := diag.NewCollector()
	_ = c.Add(diag.From(failingDetail{}))

	v, err := diag.Result(c, 42)
	if err == nil {
		t.Fatal("expected an error once the watermark reached Error")
	}
	if v != 0 {
		t.Errorf("expected the zero value, got %d", v)
	}
}

func TestCollectorResult_PassesThroughWhenClean(t *testing.T) {
	c := diag.NewCollector()
	v, err := diag.Result(c, "ok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "ok" {
		t.Errorf("got %q, want %q", v, "ok")
	}
}

type failingDetail struct{}

func (failingDetail) String() string         { return "fatal" }
func (failingDetail) Severity() diag.Severity { return diag.Failure }
func (failingDetail) Code() uint32           { return 99 }

var _ diag.Detail = failingDetail{}

type warningDetail struct{}

func (warningDetail) String() string          { return "a warning-level detail" }
func (warningDetail) Severity() diag.Severity { return diag.Warning }
func (warningDetail) Code() uint32            { return 1 }

var _ diag.Detail = warningDetail{}
