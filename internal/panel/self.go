package panel

import "pickprimers-core/primer"

// AddSelfPairsUnique appends one self pair per unique primer sequence
// across the whole set, preserving first-seen order. Original pairs are
// kept as-is.
func AddSelfPairsUnique(pairs []primer.Pair) []primer.Pair {
	seen := make(map[string]struct{}, 2*len(pairs))
	var uniq []primer.Oligo
	for _, o := range primer.Oligos(pairs) {
		if o.Seq == "" {
			continue
		}
		if _, ok := seen[o.Seq]; ok {
			continue
		}
		seen[o.Seq] = struct{}{}
		uniq = append(uniq, o)
	}
	out := make([]primer.Pair, 0, len(pairs)+len(uniq))
	out = append(out, pairs...)
	return append(out, primer.SelfPairs(uniq)...)
}
