package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Builtin libraries opened for scripts. io, os, debug and channel are left
// out since they reach the filesystem, the process or the Go runtime.
var safeLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.LoadLibName, lua.OpenPackage}, // require is needed by all others.
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.MathLibName, lua.OpenMath},
	{lua.StringLibName, lua.OpenString},
	{lua.CoroutineLibName, lua.OpenCoroutine},
}

// Globals of the base library removed after opening it. Scripts run other
// files only through require and include, which are bound to Config.LoadDir.
// see http://lua-users.org/wiki/SandBoxes
var unsafeLibs = []string{
	"print", // stdout belongs to the application.
	"dofile",
	"dostring",
	"load",
	"loadfile",
}

// openSafeLibs prepares L as sandbox. It panics when a builtin library can
// not be opened, which means a broken build rather than a bad script.
func openSafeLibs(L *lua.LState) {
	for _, lib := range safeLibs {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			panic(fmt.Sprintf("script: open library %q: %v", lib.name, err))
		}
	}
	for _, name := range unsafeLibs {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("include", L.NewFunction(includeFile))
}

// * include(path) -> any...
//
// include runs the script file at path relative to Config.LoadDir and
// returns its results. Paths leaving LoadDir raise an error.
func includeFile(L *lua.LState) int {
	path := checkFilePath(L, 1)
	fn, err := L.LoadFile(path)
	raiseErrorIf(L, err)
	top := L.GetTop()
	L.Push(fn)
	L.Call(0, lua.MultRet)
	return L.GetTop() - top
}
