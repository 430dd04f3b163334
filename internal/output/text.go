// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"pickprimers-core/primer"

	"pickprimers/internal/report"
)

// TextHeader is the TSV column list. HairpinColumns are appended when
// hairpin stems are requested.
var (
	TextHeader = []string{
		"pair_id", "forward", "reverse",
		"fwd_len", "rev_len", "fwd_gc", "rev_gc", "fwd_tm", "rev_tm", "fwd_3p", "rev_3p",
		"no_dimer", "gc_ok", "tm_ok", "clamp_ok", "pass", "failed",
	}
	HairpinColumns = []string{"fwd_hairpins", "rev_hairpins"}
)

// Header returns the tab-joined header line without a newline.
func Header(hairpins bool) string {
	cols := TextHeader
	if hairpins {
		cols = append(append([]string(nil), TextHeader...), HairpinColumns...)
	}
	return "# " + strings.Join(cols, "\t")
}

// FormatRow renders one report as a TSV line without a newline. GC is
// rounded to two decimals for display only.
func FormatRow(r report.Report, hairpins bool) string {
	f, v := r.Forward, r.Reverse
	failed := "-"
	if names := r.Failed(); len(names) > 0 {
		failed = strings.Join(names, ",")
	}
	cols := []string{
		r.Pair.ID, f.Sequence(), v.Sequence(),
		strconv.Itoa(f.Length()), strconv.Itoa(v.Length()),
		fmt.Sprintf("%.2f", f.GCContent()), fmt.Sprintf("%.2f", v.GCContent()),
		strconv.Itoa(f.MeltingTemp()), strconv.Itoa(v.MeltingTemp()),
		string(f.TerminalBase()), string(v.TerminalBase()),
		strconv.FormatBool(r.NoPrimerDimer), strconv.FormatBool(r.GCContentOK),
		strconv.FormatBool(r.AnnealingOK), strconv.FormatBool(r.TerminalGCOK),
		strconv.FormatBool(r.Pass()), failed,
	}
	if hairpins {
		cols = append(cols, formatStems(r.FwdStems), formatStems(r.RevStems))
	}
	return strings.Join(cols, "\t")
}

func formatStems(stems []primer.Stem) string {
	if len(stems) == 0 {
		return "-"
	}
	parts := make([]string, len(stems))
	for i, s := range stems {
		parts[i] = fmt.Sprintf("%d-%d", s.Left, s.Right)
	}
	return strings.Join(parts, ",")
}

// WriteText prints the header (optionally) and one line per report.
func WriteText(w io.Writer, list []report.Report, header, hairpins bool) error {
	if header {
		if _, err := fmt.Fprintln(w, Header(hairpins)); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRow(r, hairpins)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel. It drains in even after a write
// error so the producer never blocks.
func StreamText(w io.Writer, in <-chan report.Report, header, hairpins bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, Header(hairpins))
	}
	for r := range in {
		if err != nil {
			continue
		}
		_, err = fmt.Fprintln(w, FormatRow(r, hairpins))
	}
	return err
}
