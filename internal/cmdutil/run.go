package cmdutil

import (
	"context"

	"pickprimers/internal/report"
)

// RunStream applies a visitor to each report in order and streams kept
// results via send. It returns the number of kept outputs and the first
// error encountered. ctx is checked between reports.
func RunStream[T any](
	ctx context.Context,
	reps []report.Report,
	visit func(report.Report) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	for _, r := range reps {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		keep, out, vErr := visit(r)
		if vErr != nil {
			return total, vErr
		}
		if !keep {
			continue
		}
		if err := send(out); err != nil {
			return total, err
		}
		total++
	}
	return total, nil
}
