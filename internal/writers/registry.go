// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"pickprimers/internal/report"
)

// Options are the presentation knobs shared by every report writer.
type Options struct {
	Sort     bool
	Header   bool
	Hairpins bool
}

// StartFunc spins up a writer goroutine: send reports on the returned
// channel, close it, then read exactly one value from the error channel.
type StartFunc func(out io.Writer, opt Options, bufSize int) (chan<- report.Report, <-chan error)

// ReportWriters is the format → writer registry. Formats register
// themselves in init() blocks.
var ReportWriters = map[string]StartFunc{}

// RegisterReport adds or replaces (last wins) the writer for format.
func RegisterReport(format string, fn StartFunc) { ReportWriters[format] = fn }

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	return out
}

// StartReportWriter dispatches to the registered writer for format. An
// unknown format still returns a usable channel; the error is reported on
// the done channel once the input is closed.
func StartReportWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- report.Report, <-chan error) {
	if fn, ok := ReportWriters[format]; ok {
		return fn(out, opt, bufSize)
	}
	in := make(chan report.Report, 1)
	done := make(chan error, 1)
	go func() {
		for range in {
		}
		done <- fmt.Errorf("unknown report format %q (no writer registered)", format)
	}()
	return in, done
}
