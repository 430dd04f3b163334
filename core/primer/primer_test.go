package primer

import (
	"errors"
	"math"
	"testing"
)

func mustNew(t *testing.T, seq string) Primer {
	t.Helper()
	p, err := New(seq)
	if err != nil {
		t.Fatalf("New(%q): %v", seq, err)
	}
	return p
}

func TestNewWorkedExample(t *testing.T) {
	p := mustNew(t, "GCGCATATGCGCATG")

	if p.Length() != 15 {
		t.Errorf("Length = %d, want 15", p.Length())
	}
	if p.IsLongEnough() {
		t.Errorf("IsLongEnough = true for 15 nt")
	}
	if math.Abs(p.GCContent()-60.0) > 1e-9 {
		t.Errorf("GCContent = %v, want 60", p.GCContent())
	}
	if p.MeltingTemp() != 48 {
		t.Errorf("MeltingTemp = %d, want 48", p.MeltingTemp())
	}
	if p.TerminalBase() != 'G' {
		t.Errorf("TerminalBase = %q, want 'G'", p.TerminalBase())
	}
	if p.Complement() != "CATGCGCATATGCGC" {
		t.Errorf("Complement = %s, want CATGCGCATATGCGC", p.Complement())
	}
	if p.Sequence() != "GCGCATATGCGCATG" || p.String() != p.Sequence() {
		t.Errorf("Sequence = %s", p.Sequence())
	}
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptySequence},
		{"ACGN", ErrInvalidSymbol},
		{"acgt", ErrInvalidSymbol},
		{"AC GT", ErrInvalidSymbol},
		{"ACGU", ErrInvalidSymbol},
	}
	for _, tc := range tests {
		_, err := New(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("New(%q) err = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestIsLongEnoughBoundary(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want bool
	}{{16, false}, {17, true}, {18, true}} {
		seq := make([]byte, tc.n)
		for i := range seq {
			seq[i] = 'A'
		}
		if got := mustNew(t, string(seq)).IsLongEnough(); got != tc.want {
			t.Errorf("len %d: IsLongEnough = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestSingleBase(t *testing.T) {
	p := mustNew(t, "C")
	if p.GCContent() != 100 || p.MeltingTemp() != 4 || p.Complement() != "G" || p.TerminalBase() != 'C' {
		t.Fatalf("unexpected single-base primer: %+v", p)
	}
}
