// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"pickprimers-core/primer"

	"pickprimers/internal/cmdutil"
	"pickprimers/internal/report"
	"pickprimers/internal/writers"
)

// ExitInterrupted is returned when the run is cancelled (SIGINT/SIGTERM).
const ExitInterrupted = 130

type Options struct {
	DimerMode primer.DimerMode
	Format    string
	Writer    writers.Options

	Quiet        bool
	FailExitCode int
}

// Run evaluates pairs and streams the reports to stdout. Exit codes:
// 0 all pairs pass, o.FailExitCode some pair fails a check, 2 a primer
// is not a valid sequence (nothing is written), 3 output error.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, pairs []primer.Pair) int {
	log := cmdutil.Logger{W: stderr, Quiet: o.Quiet}

	// Every pair is evaluated before anything reaches stdout.
	reps, err := report.EvaluateAll(pairs, o.DimerMode)
	if err != nil {
		log.Errorf("%v", err)
		return 2
	}

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartReportWriter(outw, o.Format, o.Writer, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	failed := 0
	_, perr := cmdutil.RunStream[report.Report](
		ctx,
		reps,
		func(r report.Report) (bool, report.Report, error) {
			warnShort(log, r)
			if !r.Pass() {
				failed++
			}
			return true, r, nil
		},
		func(r report.Report) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		log.Errorf("write: %v", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		log.Errorf("write: %v", e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitInterrupted
		}
		log.Errorf("%v", perr)
		return 3
	}
	if failed > 0 {
		return o.FailExitCode
	}
	return 0
}

func warnShort(log cmdutil.Logger, r report.Report) {
	for _, side := range []struct {
		name string
		p    primer.Primer
	}{{"forward", r.Forward}, {"reverse", r.Reverse}} {
		switch {
		case side.p.Length() < primer.HairpinWindow:
			log.Warnf("pair %s: %s primer is %d nt; too short for a hairpin scan", r.Pair.ID, side.name, side.p.Length())
		case !side.p.IsLongEnough():
			log.Warnf("pair %s: %s primer is %d nt (< %d)", r.Pair.ID, side.name, side.p.Length(), primer.MinLength)
		}
	}
}
