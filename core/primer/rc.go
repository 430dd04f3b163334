// core/primer/rc.go
package primer

import "fmt"

// complement is the shared read-only base-pairing table. Only A, C, G
// and T have entries; every other byte maps to 0.
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// ReverseComplement complements seq base by base and reverses the result.
// Any byte outside A/C/G/T is an error wrapping ErrInvalidSymbol.
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[i]]
		if c == 0 {
			return "", fmt.Errorf("complement: %w %q at %d", ErrInvalidSymbol, seq[i], i+1)
		}
		out[n-1-i] = c
	}
	return string(out), nil
}

// complementWindow complements w without reversing it. Callers only pass
// windows of an already validated sequence.
func complementWindow(w string) string {
	out := make([]byte, len(w))
	for i := 0; i < len(w); i++ {
		out[i] = complement[w[i]]
	}
	return string(out)
}
