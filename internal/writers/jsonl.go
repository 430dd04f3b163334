// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"pickprimers/internal/jsonlutil"
	"pickprimers/internal/report"
)

// StartReportJSONLWriter streams each report as one JSON line (v1).
// Sorting buffers everything first.
func StartReportJSONLWriter(out io.Writer, opt Options, bufSize int) (chan<- report.Report, <-chan error) {
	encode := func(enc *json.Encoder, r report.Report) error {
		return enc.Encode(report.ToAPI(r))
	}
	if !opt.Sort {
		return jsonlutil.Start[report.Report](out, bufSize, encode, IsBrokenPipe)
	}

	in := make(chan report.Report, max(bufSize, 1))
	done := make(chan error, 1)
	go func() {
		buf := collect(in, true)
		sink, sinkDone := jsonlutil.Start[report.Report](out, len(buf), encode, IsBrokenPipe)
		for _, r := range buf {
			sink <- r
		}
		close(sink)
		done <- <-sinkDone
	}()
	return in, done
}
