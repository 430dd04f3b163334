package output

import (
	"sort"

	"pickprimers/internal/report"
)

// SortReports orders reports by pair ID, then forward and reverse
// sequence. The sort is stable so equal keys keep input order.
func SortReports(list []report.Report) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Pair.ID != b.Pair.ID {
			return a.Pair.ID < b.Pair.ID
		}
		if a.Pair.Forward != b.Pair.Forward {
			return a.Pair.Forward < b.Pair.Forward
		}
		return a.Pair.Reverse < b.Pair.Reverse
	})
}
