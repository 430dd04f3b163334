// core/primer/self.go
package primer

// Pair is a forward/reverse primer pair as supplied by the user.
type Pair struct {
	ID      string
	Forward string // 5'→3'
	Reverse string // 5'→3'
}

// Oligo represents a single primer (5'→3') with an identifier.
type Oligo struct {
	ID  string
	Seq string
}

// Oligos splits pairs into their forward (ID+":A") and reverse
// (ID+":B") members.
func Oligos(pairs []Pair) []Oligo {
	out := make([]Oligo, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, Oligo{ID: p.ID + ":A", Seq: p.Forward}, Oligo{ID: p.ID + ":B", Seq: p.Reverse})
	}
	return out
}

// SelfPairs converts single oligos to "self" pairs where Forward == Reverse,
// so the pairwise checks test an oligo against a second copy of itself.
func SelfPairs(oligos []Oligo) []Pair {
	out := make([]Pair, 0, len(oligos))
	for _, o := range oligos {
		out = append(out, Pair{
			ID:      o.ID + "+self",
			Forward: o.Seq,
			Reverse: o.Seq,
		})
	}
	return out
}
