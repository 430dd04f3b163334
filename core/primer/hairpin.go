// core/primer/hairpin.go
package primer

const (
	// HairpinWindow is the arm length scanned for self-complementarity.
	HairpinWindow = 4
	// HairpinMinLoop is the fewest unpaired bases between two arms.
	HairpinMinLoop = 3
)

// HairpinScan holds every HairpinWindow-long window of a primer, in
// order, next to the same windows complemented base by base (not
// reversed). Windows[i] and Complemented[i] start at offset i.
type HairpinScan struct {
	Windows      []string
	Complemented []string
}

// Stem is a candidate hairpin: the arm starting at Left can pair with the
// arm starting at Right once the strand folds back.
type Stem struct {
	Left  int
	Right int
}

// Hairpin slides a HairpinWindow window over the primer. A primer shorter
// than the window yields an empty scan.
func (p Primer) Hairpin() HairpinScan {
	n := p.length - HairpinWindow + 1
	if n <= 0 {
		return HairpinScan{}
	}
	s := HairpinScan{
		Windows:      make([]string, 0, n),
		Complemented: make([]string, 0, n),
	}
	for i := 0; i < n; i++ {
		w := p.seq[i : i+HairpinWindow]
		s.Windows = append(s.Windows, w)
		s.Complemented = append(s.Complemented, complementWindow(w))
	}
	return s
}

// Len is the number of windows.
func (s HairpinScan) Len() int { return len(s.Windows) }

// Stems cross-compares the two window lists. Window i pairs with window j
// when Windows[i] equals Complemented[j] read backwards (the antiparallel
// fold) and at least HairpinMinLoop bases separate the arms.
func (s HairpinScan) Stems() []Stem {
	var out []Stem
	for i := range s.Windows {
		for j := i + HairpinWindow + HairpinMinLoop; j < len(s.Complemented); j++ {
			if s.Windows[i] == reverse(s.Complemented[j]) {
				out = append(out, Stem{Left: i, Right: j})
			}
		}
	}
	return out
}

// NoHairpin reports whether Stems finds nothing.
func (s HairpinScan) NoHairpin() bool { return len(s.Stems()) == 0 }

func reverse(w string) string {
	b := []byte(w)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
