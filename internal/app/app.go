// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pickprimers-core/oligo"
	"pickprimers-core/primer"

	"pickprimers/internal/appcore"
	"pickprimers/internal/cli"
	"pickprimers/internal/cmdutil"
	"pickprimers/internal/config"
	"pickprimers/internal/panel"
	"pickprimers/internal/version"
	"pickprimers/internal/writers"
)

// RunContext is the whole pickprimers command: parse argv, load pairs,
// evaluate and write reports. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	env, err := config.ParseEnv()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	return runWithEnv(parent, argv, stdout, stderr, env)
}

func runWithEnv(parent context.Context, argv []string, stdout, stderr io.Writer, env config.Env) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("pickprimers")
	fs.SetOutput(io.Discard)

	usage := func(code int) int {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}, env)
		return usage(0)
	}

	opts, err := cli.ParseArgs(fs, argv, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pickprimers version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	log := cmdutil.Logger{W: stderr}
	var pairs []primer.Pair
	if len(opts.PrimerFiles) > 0 {
		for _, path := range opts.PrimerFiles {
			ps, err := panel.Load(path)
			if err != nil {
				log.Errorf("%v", err)
				return 2
			}
			pairs = append(pairs, ps...)
		}
	} else {
		fwd, err := oligo.Validate(opts.Fwd)
		if err != nil {
			log.Errorf("--forward: %v", err)
			return 2
		}
		rev, err := oligo.Validate(opts.Rev)
		if err != nil {
			log.Errorf("--reverse: %v", err)
			return 2
		}
		pairs = []primer.Pair{{ID: "manual", Forward: fwd, Reverse: rev}}
	}
	if len(pairs) == 0 {
		log.Errorf("no primer pairs to check")
		return 2
	}
	if opts.Self {
		pairs = panel.AddSelfPairsUnique(pairs)
	}

	coreOpts := appcore.Options{
		DimerMode:    opts.DimerMode,
		Format:       opts.Output,
		Writer:       writers.Options{Sort: opts.Sort, Header: opts.Header, Hairpins: opts.Hairpins},
		Quiet:        opts.Quiet,
		FailExitCode: opts.FailExitCode,
	}
	return appcore.Run(parent, outw, stderr, coreOpts, pairs)
}
