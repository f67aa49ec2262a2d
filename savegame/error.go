package savegame

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of Store operations.
// It also implements error, so that errors.Is(err, KindNotAvailable) matches
// any *Error of that kind.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotAvailable
	KindMissingWorldFile
	KindWriteFailed
	KindParseFailed
	KindIndexOutOfRange
	KindExportFailed
	KindLoadFailed
)

var kindNames = map[ErrorKind]string{
	KindUnknown:          "unknown",
	KindNotAvailable:     "not available",
	KindMissingWorldFile: "missing world file",
	KindWriteFailed:      "write failed",
	KindParseFailed:      "parse failed",
	KindIndexOutOfRange:  "index out of range",
	KindExportFailed:     "export failed",
	KindLoadFailed:       "load failed",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string { return "savegame: " + k.String() }

// Error is returned by Store operations.
type Error struct {
	Kind ErrorKind
	Slot int
	Path string // file or directory concerned, may be empty.
	Err  error  // underlying cause, may be nil.
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotAvailable:
		return fmt.Sprintf("Savegame at slot %d not available!", e.Slot)
	case KindMissingWorldFile:
		return "Target world-file invalid: " + e.Path
	case KindIndexOutOfRange:
		return fmt.Sprintf("savegame: slot index %d out of range: %v", e.Slot, e.Err)
	}
	msg := fmt.Sprintf("savegame: slot %d: %s", e.Slot, e.Kind)
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf returns kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func newError(kind ErrorKind, slot int, path string, err error) *Error {
	return &Error{Kind: kind, Slot: slot, Path: path, Err: err}
}
