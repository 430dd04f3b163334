// internal/output/json.go
package output

import (
	"io"

	"pickprimers/internal/jsonutil"
	"pickprimers/internal/report"
	"pickprimers/pkg/api"
)

func toAPIReports(list []report.Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, report.ToAPI(r))
	}
	return out
}

// WriteJSON writes all reports as one indented JSON array (v1 schema).
func WriteJSON(w io.Writer, list []report.Report) error {
	return jsonutil.EncodePretty(w, toAPIReports(list))
}
