package primer

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/TimothyStiles/poly/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSeqs(n, maxLen int) []string {
	rng := rand.New(rand.NewSource(17))
	out := make([]string, n)
	for i := range out {
		b := make([]byte, 1+rng.Intn(maxLen))
		for j := range b {
			b[j] = "ACGT"[rng.Intn(4)]
		}
		out[i] = string(b)
	}
	return out
}

func TestDerivedProperties(t *testing.T) {
	for _, s := range randomSeqs(500, 40) {
		p, err := New(s)
		require.NoError(t, err)

		gc := strings.Count(s, "G") + strings.Count(s, "C")
		at := strings.Count(s, "A") + strings.Count(s, "T")

		assert.Equal(t, len(s), p.Length())
		assert.InDelta(t, 100*float64(gc)/float64(len(s)), p.GCContent(), 1e-9, s)
		assert.Equal(t, 4*gc+2*at, p.MeltingTemp(), s)
		assert.Equal(t, len(s) >= 17, p.IsLongEnough(), s)
		assert.Equal(t, s[len(s)-1], p.TerminalBase(), s)
		assert.Len(t, p.Complement(), len(s))
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	for _, s := range randomSeqs(500, 60) {
		rc, err := ReverseComplement(s)
		require.NoError(t, err)
		back, err := ReverseComplement(rc)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
}

// poly's transform package is an independent implementation; both must agree
// on plain DNA.
func TestReverseComplementMatchesPoly(t *testing.T) {
	for _, s := range randomSeqs(200, 60) {
		got, err := ReverseComplement(s)
		require.NoError(t, err)
		assert.Equal(t, transform.ReverseComplement(s), got, s)
	}
}

func TestGCContentNotRounded(t *testing.T) {
	p, err := New("GCA")
	require.NoError(t, err)
	assert.False(t, math.Abs(p.GCContent()-66.67) < 1e-9)
	assert.InDelta(t, 200.0/3.0, p.GCContent(), 1e-12)
}
