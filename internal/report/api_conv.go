package report

import (
	"pickprimers-core/primer"

	"pickprimers/pkg/api"
)

func toAPIPrimer(p primer.Primer, stems []primer.Stem) api.PrimerV1 {
	out := api.PrimerV1{
		Seq:          p.Sequence(),
		Length:       p.Length(),
		GCContent:    p.GCContent(),
		Tm:           p.MeltingTemp(),
		LongEnough:   p.IsLongEnough(),
		TerminalBase: string(p.TerminalBase()),
		Complement:   p.Complement(),
	}
	for _, s := range stems {
		out.Hairpins = append(out.Hairpins, [2]int{s.Left, s.Right})
	}
	return out
}

// ToAPI converts a Report to the stable v1 schema.
func ToAPI(r Report) api.ReportV1 {
	return api.ReportV1{
		PairID:        r.Pair.ID,
		Forward:       toAPIPrimer(r.Forward, r.FwdStems),
		Reverse:       toAPIPrimer(r.Reverse, r.RevStems),
		DimerMode:     r.Mode.String(),
		NoPrimerDimer: r.NoPrimerDimer,
		GCContentOK:   r.GCContentOK,
		AnnealingOK:   r.AnnealingOK,
		TerminalGCOK:  r.TerminalGCOK,
		Pass:          r.Pass(),
	}
}
