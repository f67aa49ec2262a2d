package script

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

var (
	// ErrCanceled is returned when the script context is canceled.
	ErrCanceled = errors.New("script: canceled")

	// ErrTimeout is returned when the script runs longer than
	// Config.InfiniteLoopTimeoutSecond.
	ErrTimeout = errors.New("script: timeout, infinite loop may exist")
)

var (
	scriptCanceledMessage = context.Canceled.Error()
	scriptTimeoutMessage  = context.DeadlineExceeded.Error()
)

// check whether error is special case,
// and return corresponding error, if not matched return error through.
//
// NOTE: current implementation of gopher-lua does not return error context
// directly, the error wrapped by gopher-lua's context.
// Therefore we use string comparision to detect error context instead of error type assertion.
func checkSpecialError(err error) error {
	if err == nil {
		return nil
	}

	mes := err.Error()
	switch {
	case strings.Contains(mes, scriptTimeoutMessage):
		return ErrTimeout
	case strings.Contains(mes, scriptCanceledMessage):
		return ErrCanceled
	}
	return err
}

func raiseErrorf(L *lua.LState, format string, args ...interface{}) {
	L.RaiseError("%s", fmt.Errorf(format, args...).Error())
}

func raiseErrorE(L *lua.LState, err error) {
	L.RaiseError("%s", err.Error())
}

func raiseErrorIf(L *lua.LState, err error) {
	if err != nil {
		raiseErrorE(L, err)
	}
}
