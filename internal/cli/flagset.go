package cli

import (
	"flag"
	"fmt"

	"pickprimers-core/primer"

	"pickprimers/internal/version"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – PCR primer design checks\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --forward SEQ --reverse SEQ\n", name)
		fmt.Fprintf(out, "  %s [options] panel.tsv [panel.yaml ...]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -f, --forward string        Forward primer sequence (5'→3')")
		fmt.Fprintln(out, "  -r, --reverse string        Reverse primer sequence (5'→3')")
		fmt.Fprintln(out, "  -p, --primers file          Primer panel: TSV (id fwd rev) or .yaml/.yml (repeatable)")
		fmt.Fprintf(out, "      --self                  Also check every primer against itself [%s]\n", def("self"))

		fmt.Fprintln(out, "\nChecks:")
		fmt.Fprintf(out, "      --dimer-mode string     Primer-dimer comparison: complement | raw [%s]\n", def("dimer-mode"))
		fmt.Fprintf(out, "      length >= %d nt, GC >= %.0f%%, |ΔTm| <= %d °C, 3' G/C clamp,\n",
			primer.MinLength, primer.MinGCContent, primer.MaxTmDiff)
		fmt.Fprintf(out, "      no %d-nt hairpin stem, <= %d matching 3' bases between primers\n",
			primer.HairpinWindow, primer.DimerMaxMatches)

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Sort outputs by pair ID [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --hairpins              List hairpin stems in text output [%s]\n", def("hairpins"))
		fmt.Fprintf(out, "      --fail-exit-code int    Exit code when any pair fails a check [%s]\n", def("fail-exit-code"))

		fmt.Fprintln(out, "\nMisc:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h                          Show this help message")

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  PICKPRIMERS_OUTPUT, PICKPRIMERS_DIMER_MODE, PICKPRIMERS_QUIET,")
		fmt.Fprintln(out, "  PICKPRIMERS_FAIL_EXIT_CODE set the defaults of the matching flags.")
	}
	return fs
}
