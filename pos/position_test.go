package pos_test

import (
	"testing"

	"github.com/autonomous-bits/diagsub/pos"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name string
		p    pos.Position
		want string
	}{
		{"origin", pos.Position{Offset: 0, Line: 1, Column: 1}, "1:1"},
		{"mid-line", pos.Position{Offset: 10, Line: 3, Column: 5}, "3:5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPosition_Less(t *testing.T) {
	a := pos.Position{Offset: 1, Line: 1, Column: 2}
	b := pos.Position{Offset: 5, Line: 2, Column: 1}

	if !a.Less(b) {
		t.Error("expected a < b")
	}
	if b.Less(a) {
		t.Error("expected b not < a")
	}
	if a.Less(a) {
		t.Error("expected a not < a")
	}
}

func TestPosition_IncColumn(t *testing.T) {
	p := pos.Position{Offset: 0, Line: 1, Column: 1}

	p = p.IncColumn(2) // e.g. a 2-byte scalar
	if p.Offset != 2 || p.Line != 1 || p.Column != 2 {
		t.Errorf("unexpected position after IncColumn: %+v", p)
	}
}

func TestPosition_IncLine(t *testing.T) {
	p := pos.Position{Offset: 5, Line: 1, Column: 6}

	p = p.IncLine()
	if p.Offset != 6 || p.Line != 2 || p.Column != 1 {
		t.Errorf("unexpected position after IncLine: %+v", p)
	}
}

func TestNewSpan_PanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for inverted span")
		}
	}()
	start := pos.Position{Offset: 5}
	end := pos.Position{Offset: 1}
	pos.NewSpan(start, end)
}

func TestSpan_LenAndString(t *testing.T) {
	start := pos.Position{Offset: 2, Line: 1, Column: 3}
	end := pos.Position{Offset: 7, Line: 1, Column: 8}
	s := pos.NewSpan(start, end)

	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if want := "1:3-1:8"; s.String() != want {
		t.Errorf("String() = %q, want %q", s.String(), want)
	}

	point := pos.PointSpan(start)
	if point.Len() != 0 {
		t.Errorf("PointSpan Len() = %d, want 0", point.Len())
	}
	if point.String() != start.String() {
		t.Errorf("PointSpan String() = %q, want %q", point.String(), start.String())
	}
}
