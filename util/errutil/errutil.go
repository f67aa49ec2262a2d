// Package errutil provides utilty of errors.
package errutil

import (
	"fmt"
	"io"
	"strings"
)

// Writer is wraper of io.Writer with internal Error.
// Once Write() fails, the error is kept and
// trailing Write() calls are not executed.
type Writer struct {
	w       io.Writer
	err     error
	written int64
}

// construct with io.Writer.
func NewErrWriter(w io.Writer) *Writer { return &Writer{w: w} }

// return internal error.
func (ew *Writer) Err() error { return ew.err }

// Written returns total bytes written before any error.
func (ew *Writer) Written() int64 { return ew.written }

// Write binds error of Write() to internal.
func (ew *Writer) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, nil // do nothing
	}
	n, err := ew.w.Write(p)
	ew.written += int64(n)
	ew.err = err
	return n, nil
}

// MultiError collects multiple errors and shows all of them.
type MultiError struct {
	errs []error
}

// Constract with no argument.
func NewMultiError() *MultiError {
	return &MultiError{errs: make([]error, 0, 4)}
}

// Add given error into Internal.
// nil error is ignored.
func (me *MultiError) Add(err error) {
	if err == nil {
		return
	}
	me.errs = append(me.errs, err)
}

// Len returns number of collected errors.
func (me *MultiError) Len() int { return len(me.errs) }

// Err returns the collected errors as one error,
// or nil if nothing is collected.
func (me *MultiError) Err() error {
	if len(me.errs) == 0 {
		return nil
	}
	return me
}

func (me *MultiError) Error() string {
	if len(me.errs) == 1 {
		return me.errs[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("multiple errors:\n")
	for i, err := range me.errs {
		fmt.Fprintf(&sb, "  %v. err: %v\n", i, err)
	}
	return sb.String()
}

// Unwrap lets errors.Is and errors.As inspect every collected error.
func (me *MultiError) Unwrap() []error { return me.errs }
