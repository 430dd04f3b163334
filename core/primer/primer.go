// core/primer/primer.go
package primer

import (
	"fmt"

	"pickprimers-core/oligo"
)

// MinLength is the shortest primer, in nt, that counts as long enough.
const MinLength = 17

// Primer is one oligonucleotide (5'→3') and the properties derived from
// it. Every field is computed by New and never changes afterwards.
type Primer struct {
	seq        string
	length     int
	gc         float64
	tm         int
	longEnough bool
	end        byte
	comp       string
}

// New validates seq and computes every derived property up front.
// seq must be non-empty and contain only uppercase A, C, G, T; anything
// else is rejected here rather than when a property is read.
func New(seq string) (Primer, error) {
	if err := oligo.Check(seq); err != nil {
		return Primer{}, fmt.Errorf("primer %q: %w", seq, err)
	}
	comp, err := ReverseComplement(seq)
	if err != nil {
		return Primer{}, fmt.Errorf("primer %q: %w", seq, err)
	}

	var gcCount, atCount int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C':
			gcCount++
		case 'A', 'T':
			atCount++
		}
	}
	n := len(seq)
	return Primer{
		seq:        seq,
		length:     n,
		gc:         100 * float64(gcCount) / float64(n),
		tm:         4*gcCount + 2*atCount,
		longEnough: n >= MinLength,
		end:        seq[n-1],
		comp:       comp,
	}, nil
}

// Sequence returns the primer as given (5'→3').
func (p Primer) Sequence() string { return p.seq }

// Length is the number of bases.
func (p Primer) Length() int { return p.length }

// GCContent is the percentage of G and C bases, unrounded.
func (p Primer) GCContent() float64 { return p.gc }

// MeltingTemp is the Wallace-rule estimate 4*(G+C) + 2*(A+T), in °C.
func (p Primer) MeltingTemp() int { return p.tm }

// IsLongEnough reports Length() >= MinLength.
func (p Primer) IsLongEnough() bool { return p.longEnough }

// TerminalBase is the 3' base.
func (p Primer) TerminalBase() byte { return p.end }

// Complement is the reverse complement of the sequence.
func (p Primer) Complement() string { return p.comp }

func (p Primer) String() string { return p.seq }
