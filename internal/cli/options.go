// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"pickprimers-core/primer"

	"pickprimers/internal/cliutil"
	"pickprimers/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	PrimerFiles []string
	Fwd         string
	Rev         string
	Self        bool

	// Checks
	DimerMode primer.DimerMode

	// Output
	Output       string // text|json|jsonl
	Sort         bool
	Header       bool // true unless --no-header
	Hairpins     bool
	FailExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --primers/-p)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

// ParseArgs registers and parses all flags, returns an Options struct.
// env supplies the defaults of the flags it covers. Positional arguments
// are primer panel files, merged with --primers values in command-line
// order; globs are expanded and repeats dropped.
func ParseArgs(fs *flag.FlagSet, argv []string, env config.Env) (Options, error) {
	var opt Options
	var help, noHeader bool
	var dimerMode string

	// Input
	pf := &sliceValue{dst: &opt.PrimerFiles}
	fs.Var(pf, "primers", "primer panel (TSV or YAML), repeatable")
	fs.Var(pf, "p", "alias of --primers")
	fs.StringVar(&opt.Fwd, "forward", "", "forward primer (5'→3')")
	fs.StringVar(&opt.Fwd, "f", "", "alias of --forward")
	fs.StringVar(&opt.Rev, "reverse", "", "reverse primer (5'→3')")
	fs.StringVar(&opt.Rev, "r", "", "alias of --reverse")
	fs.BoolVar(&opt.Self, "self", false, "also check every primer against itself [false]")

	// Checks
	fs.StringVar(&dimerMode, "dimer-mode", env.DimerMode, "primer-dimer comparison: complement | raw")

	// Output
	fs.StringVar(&opt.Output, "output", env.Output, "output: text | json | jsonl")
	fs.StringVar(&opt.Output, "o", env.Output, "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs by pair ID [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.BoolVar(&opt.Hairpins, "hairpins", false, "list hairpin stems in text output [false]")
	fs.IntVar(&opt.FailExitCode, "fail-exit-code", env.FailExitCode, "exit code when any pair fails a check")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", env.Quiet, "suppress warnings")
	fs.BoolVar(&opt.Quiet, "q", env.Quiet, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(cliutil.PositionalsAsFlag(fs, argv, "primers")); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	files, err := cliutil.ExpandPositionals(opt.PrimerFiles)
	if err != nil {
		return opt, err
	}
	opt.PrimerFiles = files

	mode, err := primer.ParseDimerMode(dimerMode)
	if err != nil {
		return opt, fmt.Errorf("--dimer-mode: %v", err)
	}
	opt.DimerMode = mode

	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	usingFile := len(o.PrimerFiles) > 0
	usingInline := o.Fwd != "" || o.Rev != ""
	switch {
	case usingFile && usingInline:
		return errors.New("--primers conflicts with --forward/--reverse")
	case usingInline && (o.Fwd == "" || o.Rev == ""):
		return errors.New("--forward and --reverse must be supplied together")
	case !usingFile && !usingInline:
		return errors.New("provide --primers or --forward/--reverse")
	}
	for _, f := range o.PrimerFiles {
		if f == "-" {
			return errors.New("reading primers from STDIN is not supported")
		}
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.FailExitCode < 0 || o.FailExitCode > 125 {
		return errors.New("--fail-exit-code must be in 0..125")
	}
	return nil
}
