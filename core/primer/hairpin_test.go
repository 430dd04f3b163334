package primer

import (
	"reflect"
	"testing"
)

func TestHairpinWindowCount(t *testing.T) {
	for _, tc := range []struct {
		seq  string
		want int
	}{
		{"A", 0},
		{"ACG", 0},
		{"ACGT", 1},
		{"ACGTA", 2},
		{"GCGCATATGCGCATG", 12},
	} {
		s := mustNew(t, tc.seq).Hairpin()
		if len(s.Windows) != tc.want || len(s.Complemented) != tc.want || s.Len() != tc.want {
			t.Errorf("%s: got %d/%d windows, want %d", tc.seq, len(s.Windows), len(s.Complemented), tc.want)
		}
	}
}

func TestHairpinWindowsComplementedNotReversed(t *testing.T) {
	s := mustNew(t, "AACGTT").Hairpin()
	wantW := []string{"AACG", "ACGT", "CGTT"}
	wantC := []string{"TTGC", "TGCA", "GCAA"}
	if !reflect.DeepEqual(s.Windows, wantW) {
		t.Fatalf("Windows = %v, want %v", s.Windows, wantW)
	}
	if !reflect.DeepEqual(s.Complemented, wantC) {
		t.Fatalf("Complemented = %v, want %v", s.Complemented, wantC)
	}
}

func TestHairpinStems(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want []Stem
	}{
		{name: "GGGG loop CCCC", seq: "GGGGAAACCCC", want: []Stem{{Left: 0, Right: 7}}},
		{name: "loop too short", seq: "GGGGAACCCC", want: nil},
		{name: "homopolymer", seq: "AAAAAAAAAAAAAAAAAAAA", want: nil},
		{name: "too short to scan", seq: "GC", want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustNew(t, tc.seq).Hairpin()
			got := s.Stems()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Stems = %v, want %v", got, tc.want)
			}
			if s.NoHairpin() != (len(tc.want) == 0) {
				t.Fatalf("NoHairpin = %v with stems %v", s.NoHairpin(), got)
			}
		})
	}
}
