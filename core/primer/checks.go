// core/primer/checks.go
package primer

import "fmt"

// Pairwise design limits.
const (
	DimerWindow     = 4    // 3' bases compared for primer-dimers
	DimerMaxMatches = 2    // more positional matches than this is a dimer
	MinGCContent    = 50.0 // percent, per primer
	MaxTmDiff       = 5    // °C between the two primers
)

// DimerMode selects what the first primer's 3' end is compared against.
type DimerMode int

const (
	// DimerComplement compares primer 1's last bases with the last bases
	// of primer 2's reverse complement. This is the default.
	DimerComplement DimerMode = iota
	// DimerRaw compares the last bases of both raw sequences.
	DimerRaw
)

func (m DimerMode) String() string {
	switch m {
	case DimerComplement:
		return "complement"
	case DimerRaw:
		return "raw"
	}
	return fmt.Sprintf("DimerMode(%d)", int(m))
}

// ParseDimerMode is the inverse of DimerMode.String.
func ParseDimerMode(s string) (DimerMode, error) {
	switch s {
	case "complement", "":
		return DimerComplement, nil
	case "raw":
		return DimerRaw, nil
	}
	return 0, fmt.Errorf("unknown dimer mode %q (want complement | raw)", s)
}

// NoPrimerDimer runs NoPrimerDimerMode with DimerComplement.
func NoPrimerDimer(a, b Primer) bool { return NoPrimerDimerMode(a, b, DimerComplement) }

// NoPrimerDimerMode counts positional matches between the last
// DimerWindow bases of a and the last DimerWindow bases of b's complement
// (or b's sequence under DimerRaw). It returns true, meaning no dimer,
// when at most DimerMaxMatches positions agree. Primers shorter than the
// window are compared over the shorter tail.
func NoPrimerDimerMode(a, b Primer, mode DimerMode) bool {
	other := b.comp
	if mode == DimerRaw {
		other = b.seq
	}
	return tailMatches(a.seq, other, DimerWindow) <= DimerMaxMatches
}

func tailMatches(x, y string, w int) int {
	x, y = tail(x, w), tail(y, w)
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	m := 0
	for i := 0; i < n; i++ {
		if x[i] == y[i] {
			m++
		}
	}
	return m
}

func tail(s string, w int) string {
	if len(s) <= w {
		return s
	}
	return s[len(s)-w:]
}

// GCContentOK reports whether both primers reach MinGCContent.
func GCContentOK(a, b Primer) bool { return a.gc >= MinGCContent && b.gc >= MinGCContent }

// AnnealingTempOK reports whether the melting temperatures differ by at
// most MaxTmDiff.
func AnnealingTempOK(a, b Primer) bool {
	d := a.tm - b.tm
	if d < 0 {
		d = -d
	}
	return d <= MaxTmDiff
}

// TerminalGCOK reports whether both primers end in G or C (a 3' GC clamp).
func TerminalGCOK(a, b Primer) bool { return isGC(a.end) && isGC(b.end) }

func isGC(c byte) bool { return c == 'G' || c == 'C' }
