package writers

import (
	"io"

	"pickprimers/internal/output"
	"pickprimers/internal/report"
)

func init() {
	RegisterReport("text", startText)
	RegisterReport("json", startJSON)
	RegisterReport("jsonl", StartReportJSONLWriter)
}

func collect(in <-chan report.Report, sort bool) []report.Report {
	var buf []report.Report
	for r := range in {
		buf = append(buf, r)
	}
	if sort {
		output.SortReports(buf)
	}
	return buf
}

func startText(out io.Writer, opt Options, bufSize int) (chan<- report.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		if opt.Sort {
			err = output.WriteText(out, collect(in, true), opt.Header, opt.Hairpins)
		} else {
			err = output.StreamText(out, in, opt.Header, opt.Hairpins)
		}
		errCh <- dropBrokenPipe(err)
	}()
	return in, errCh
}

func startJSON(out io.Writer, opt Options, bufSize int) (chan<- report.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- dropBrokenPipe(output.WriteJSON(out, collect(in, opt.Sort)))
	}()
	return in, errCh
}
