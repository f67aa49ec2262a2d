package script

import (
	"fmt"
	"math"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/KirmesBude/REGoth/util/log"
)

// Module "log" outputs messages of scripts into the application log.
//
// info and warn output always. debug outputs only when the interpreter is
// configured with IncludeGoStackTrace and the application log level is
// debug; its messages carry the script position.
//
// Example:
//
//	log = require "log"
//	log.info("slot", 1, "saved")     -- "Script: slot 1 saved"
//	log.infof("slot %d saved", 1)    -- "Script: slot 1 saved"
const loggerModuleName = "log"

const scriptLogHeader = "Script:"

func loggerLoader(L *lua.LState) int {
	var (
		debug = scriptLogger{print: log.Debug, debug: true}
		info  = scriptLogger{print: log.Info}
		warn  = scriptLogger{print: log.Warn}
	)
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"debug":  debug.plain,
		"debugf": debug.format,
		"info":   info.plain,
		"infof":  info.format,
		"warn":   warn.plain,
		"warnf":  warn.format,
	})
	L.Push(mod)
	return 1
}

// scriptLogger builds functions of the log module for one log level.
type scriptLogger struct {
	print func(v ...interface{})
	debug bool
}

// * log.xxx(any...)
func (sl scriptLogger) plain(L *lua.LState) int {
	if sl.debug && !debugEnable(L) {
		return 0
	}
	words := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		words = append(words, describeValue(L.Get(i)))
	}
	sl.print(sl.header(L) + " " + strings.Join(words, " "))
	return 0
}

// * log.xxxf(fmt_string, [any...])
func (sl scriptLogger) format(L *lua.LState) int {
	if sl.debug && !debugEnable(L) {
		return 0
	}
	format := L.CheckString(1)
	args := make([]interface{}, 0, L.GetTop())
	for i := 2; i <= L.GetTop(); i++ {
		args = append(args, formatArg(L.Get(i)))
	}
	sl.print(sl.header(L) + " " + fmt.Sprintf(format, args...))
	return 0
}

func (sl scriptLogger) header(L *lua.LState) string {
	if !sl.debug {
		return scriptLogHeader
	}
	dbg, ok := L.GetStack(1)
	if !ok {
		return scriptLogHeader
	}
	if _, err := L.GetInfo("Sl", dbg, lua.LNil); err != nil {
		raiseErrorf(L, "log: %w", err)
	}
	return fmt.Sprintf("%s %s:%d:", scriptLogHeader, dbg.Source, dbg.CurrentLine)
}

// debug output is enabled by registryDebugEnableKey in the registry.
func debugEnable(L *lua.LState) bool {
	lv := L.CheckTable(lua.RegistryIndex).RawGetString(registryDebugEnableKey)
	return lua.LVAsBool(lv)
}

// formatArg converts lv into a Go value so that verbs like %d and %s
// work as a script author expects.
func formatArg(lv lua.LValue) interface{} {
	switch v := lv.(type) {
	case lua.LNumber:
		if f := float64(v); f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return float64(v)
	case lua.LString:
		return string(v)
	case lua.LBool:
		return bool(v)
	default:
		return describeValue(lv)
	}
}

func describeValue(lv lua.LValue) string {
	switch v := lv.(type) {
	case *lua.LFunction:
		if p := v.Proto; p != nil {
			return fmt.Sprintf("function: %s:%d", p.SourceName, p.LineDefined)
		}
		return "function: builtin"
	case *lua.LTable:
		return fmt.Sprintf("table: size %d", v.Len())
	case *lua.LUserData:
		return fmt.Sprintf("userdata: %v", v.Value)
	case nil:
		return "nil"
	default:
		return lv.String()
	}
}
