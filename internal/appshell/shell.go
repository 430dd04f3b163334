// Package appshell wraps a run function into a process: signal handling,
// the no-arguments default and the final exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"pickprimers/internal/appcore"
)

// RunFunc is the signature shared by the binaries' entry points.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run under a context cancelled by SIGINT/SIGTERM and exits the
// process with its code.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Code(ctx, os.Args[1:], os.Stdout, os.Stderr, run)
	stop()
	os.Exit(code)
}

// Code runs run and returns the exit code for the process. With no
// arguments the usage text is printed. A run that ends with a cancelled
// context reports appcore.ExitInterrupted even if it returned 0, since its
// output may be incomplete.
func Code(ctx context.Context, argv []string, stdout, stderr io.Writer, run RunFunc) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if code == 0 && ctx.Err() != nil {
		return appcore.ExitInterrupted
	}
	return code
}
