package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of our output has gone
// away: EPIPE, a closed pipe, or a closed file. Such errors end a run
// quietly with exit 0.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}

// dropBrokenPipe returns nil for broken-pipe errors and err otherwise.
func dropBrokenPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
