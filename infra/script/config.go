package script

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Config holds Script parameters.
type Config struct {
	LoadDir     string `toml:"load_dir" env:"SCRIPT_DIR"`
	LoadPattern string `toml:"load_pattern"`

	CallStackSize       int  `toml:"call_stack_size"`
	RegistrySize        int  `toml:"registry_size"`
	IncludeGoStackTrace bool `toml:"include_go_stack_trace"`

	// 0 or less means no timeout.
	InfiniteLoopTimeoutSecond int `toml:"infinite_loop_timeout_second"`
}

var (
	// default paramters for script VM.
	LoadPattern               = "init.lua"
	CallStackSize             = lua.CallStackSize
	RegistrySize              = lua.RegistrySize
	InfiniteLoopTimeoutSecond = 10 * time.Second
)

// NewConfig returns default Config loading scripts under loadDir.
func NewConfig(loadDir string) Config {
	return Config{
		LoadDir:                   loadDir,
		LoadPattern:               LoadPattern,
		CallStackSize:             CallStackSize,
		RegistrySize:              RegistrySize,
		IncludeGoStackTrace:       false,
		InfiniteLoopTimeoutSecond: int(InfiniteLoopTimeoutSecond / time.Second),
	}
}

func (c Config) loadPattern() string {
	return filepath.Join(c.LoadDir, c.LoadPattern)
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.InfiniteLoopTimeoutSecond) * time.Second
}

const (
	registryBaseDirKey     = "_BASE_DIRECTORY"
	registryDebugEnableKey = "_DEBUG_ENABLE"
)

func (conf Config) register(L *lua.LState) {
	reg := L.CheckTable(lua.RegistryIndex)
	for _, set := range []struct {
		key string
		val lua.LValue
	}{
		{registryDebugEnableKey, lua.LBool(conf.IncludeGoStackTrace)},
		{registryBaseDirKey, lua.LString(filepath.Clean(conf.LoadDir))},
	} {
		reg.RawSetString(set.key, set.val)
		L.SetGlobal(set.key, set.val)
	}
}

// check filepath at argument i.
func checkFilePath(L *lua.LState, i int) string {
	path, err := scriptPath(L, L.CheckString(i))
	if err != nil {
		L.ArgError(i, err.Error())
	}
	return path
}

// return path of p under script base directory.
// for example, base dir is "/dir" and p is "sub/file" then
// return "/dir/sub/file".
// if resulted path indicates above base directory, e.g. including  "../",
// it will return error.
func scriptPath(L *lua.LState, p string) (string, error) {
	lv := L.CheckTable(lua.RegistryIndex).RawGetString(registryBaseDirKey)
	basedir := lua.LVAsString(lv)
	joined := filepath.Join(basedir, p)
	return joined, validateScriptPath(joined, basedir)
}

func validateScriptPath(p, baseDir string) error {
	rel, err := filepath.Rel(filepath.Clean(baseDir), filepath.Clean(p))
	if err != nil {
		return err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("given path %s must be under %s", p, baseDir)
	}
	return nil
}
