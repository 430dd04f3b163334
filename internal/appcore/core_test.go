package appcore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"pickprimers-core/primer"

	"pickprimers/internal/writers"
)

var (
	passing = primer.Pair{ID: "ok", Forward: "TGAGCAGGTCATGCAGC", Reverse: "CAGTCGACAAGTCGCTG"}
	short   = primer.Pair{ID: "short", Forward: "ACGTG", Reverse: "GGCCA"}
)

func opts(format string) Options {
	return Options{
		DimerMode:    primer.DimerComplement,
		Format:       format,
		Writer:       writers.Options{Header: true},
		FailExitCode: 1,
	}
}

// errWriter fails every write with err.
type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRunPass(t *testing.T) {
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, opts("text"), []primer.Pair{passing})
	assert.Equal(t, 0, code, errb.String())
	assert.Contains(t, out.String(), "ok\t")
	assert.Empty(t, errb.String())
}

func TestRunFailingPairUsesFailExitCode(t *testing.T) {
	o := opts("jsonl")
	o.FailExitCode = 4
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, o, []primer.Pair{passing, short})
	assert.Equal(t, 4, code)
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("\n")))
	assert.Contains(t, errb.String(), "WARN: pair short: forward primer is 5 nt (< 17)")
}

func TestRunInvalidPairWritesNothing(t *testing.T) {
	bad := primer.Pair{ID: "bad", Forward: "ACGT", Reverse: "ACXT"}
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, opts("text"), []primer.Pair{passing, bad})
	assert.Equal(t, 2, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errb.String(), "error: pair bad: reverse:")
}

func TestRunBrokenPipeExitsZero(t *testing.T) {
	for _, format := range writers.Formats() {
		t.Run(format, func(t *testing.T) {
			var errb bytes.Buffer
			w := errWriter{err: fmt.Errorf("write stdout: %w", syscall.EPIPE)}
			code := Run(context.Background(), w, &errb, opts(format), []primer.Pair{passing, short})
			assert.Equal(t, 0, code)
			assert.NotContains(t, errb.String(), "error:")
		})
	}
}

func TestRunOutputErrorExitsThree(t *testing.T) {
	for _, format := range writers.Formats() {
		t.Run(format, func(t *testing.T) {
			var errb bytes.Buffer
			w := errWriter{err: errors.New("disk full")}
			code := Run(context.Background(), w, &errb, opts(format), []primer.Pair{passing})
			assert.Equal(t, 3, code)
			assert.Contains(t, errb.String(), "error: write: disk full")
		})
	}
}

func TestRunUnknownFormat(t *testing.T) {
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, opts("xml"), []primer.Pair{passing})
	assert.Equal(t, 3, code)
	assert.Contains(t, errb.String(), `unknown report format "xml"`)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := Run(ctx, &out, &errb, opts("jsonl"), []primer.Pair{passing, short})
	assert.Equal(t, ExitInterrupted, code)
	assert.Empty(t, out.String())
}
