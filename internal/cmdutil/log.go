// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Logger writes one prefixed diagnostic line per call to W. Quiet drops
// warnings; errors are always written.
type Logger struct {
	W     io.Writer
	Quiet bool
}

// Warnf writes a "WARN: " line unless the logger is quiet.
func (l Logger) Warnf(format string, a ...any) {
	if l.Quiet {
		return
	}
	l.printf("WARN: ", format, a...)
}

// Errorf writes an "error: " line.
func (l Logger) Errorf(format string, a ...any) { l.printf("error: ", format, a...) }

func (l Logger) printf(prefix, format string, a ...any) {
	if l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, prefix+format+"\n", a...)
}
