// Package report evaluates a primer pair against every design check and
// converts the result to the v1 wire schema.
package report

import (
	"fmt"

	"pickprimers-core/primer"
)

// Report is the outcome of all checks for one pair.
type Report struct {
	Pair     primer.Pair
	Forward  primer.Primer
	Reverse  primer.Primer
	FwdStems []primer.Stem
	RevStems []primer.Stem
	Mode     primer.DimerMode

	NoPrimerDimer bool
	GCContentOK   bool
	AnnealingOK   bool
	TerminalGCOK  bool
}

// Evaluate builds both primers and runs the pairwise checks. It fails on
// the first primer that cannot be constructed.
func Evaluate(p primer.Pair, mode primer.DimerMode) (Report, error) {
	fwd, err := primer.New(p.Forward)
	if err != nil {
		return Report{}, fmt.Errorf("pair %s: forward: %w", p.ID, err)
	}
	rev, err := primer.New(p.Reverse)
	if err != nil {
		return Report{}, fmt.Errorf("pair %s: reverse: %w", p.ID, err)
	}
	return Report{
		Pair:          p,
		Forward:       fwd,
		Reverse:       rev,
		FwdStems:      fwd.Hairpin().Stems(),
		RevStems:      rev.Hairpin().Stems(),
		Mode:          mode,
		NoPrimerDimer: primer.NoPrimerDimerMode(fwd, rev, mode),
		GCContentOK:   primer.GCContentOK(fwd, rev),
		AnnealingOK:   primer.AnnealingTempOK(fwd, rev),
		TerminalGCOK:  primer.TerminalGCOK(fwd, rev),
	}, nil
}

// EvaluateAll evaluates pairs in order. It stops at the first pair that
// cannot be evaluated, so a nil error means one report per pair.
func EvaluateAll(pairs []primer.Pair, mode primer.DimerMode) ([]Report, error) {
	out := make([]Report, 0, len(pairs))
	for _, p := range pairs {
		r, err := Evaluate(p, mode)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Pass is true when every pairwise check holds, both primers are long
// enough and neither has a hairpin stem.
func (r Report) Pass() bool {
	return r.NoPrimerDimer && r.GCContentOK && r.AnnealingOK && r.TerminalGCOK &&
		r.Forward.IsLongEnough() && r.Reverse.IsLongEnough() &&
		len(r.FwdStems) == 0 && len(r.RevStems) == 0
}

// Failed lists the names of the checks that did not hold, in a fixed order.
func (r Report) Failed() []string {
	var out []string
	add := func(ok bool, name string) {
		if !ok {
			out = append(out, name)
		}
	}
	add(r.Forward.IsLongEnough() && r.Reverse.IsLongEnough(), "length")
	add(len(r.FwdStems) == 0 && len(r.RevStems) == 0, "hairpin")
	add(r.NoPrimerDimer, "dimer")
	add(r.GCContentOK, "gc")
	add(r.AnnealingOK, "tm")
	add(r.TerminalGCOK, "clamp")
	return out
}
