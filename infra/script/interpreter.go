package script

import (
	"context"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/savegame"
)

// Interpreter runs Lua scripts operating savegame slots.
// Scripts run in a sandbox without io and os, see openSafeLibs.
//
//	ip := NewInterpreter(store, e, conf)
//	defer ip.Quit()
//	err := ip.RunSystem(ctx)
type Interpreter struct {
	vm *lua.LState

	store  *savegame.Store
	engine engine.Engine

	config Config
}

// NewInterpreter returns an Interpreter whose scripts operate slots of
// store for the game e runs. Quit must be called after use.
func NewInterpreter(store *savegame.Store, e engine.Engine, config Config) *Interpreter {
	vm := lua.NewState(lua.Options{
		CallStackSize:       config.CallStackSize,
		RegistrySize:        config.RegistrySize,
		IncludeGoStackTrace: config.IncludeGoStackTrace,
		SkipOpenLibs:        true,
	})

	ip := &Interpreter{
		vm:     vm,
		store:  store,
		engine: e,
		config: config,
	}
	ip.init()
	return ip
}

// init opens the sandbox and preloads the modules "log" and "savegame".
func (ip *Interpreter) init() {
	L := ip.vm
	openSafeLibs(L)

	for _, mod := range []struct {
		Name   string
		Loader lua.LGFunction
	}{
		{loggerModuleName, loggerLoader},
		{savegameModuleName, newSavegameLoader(ip.store, ip.engine)},
	} {
		L.PreloadModule(mod.Name, mod.Loader)
	}

	// require searches config.LoadDir only, system wide paths are dropped.
	L.SetField(L.GetGlobal("package"), "path", lua.LString(filepath.Join(ip.config.LoadDir, "?.lua")))

	ip.config.register(L)
}

// SetContext binds ctx to running scripts. ctx must not be nil.
func (ip *Interpreter) SetContext(ctx context.Context) {
	ip.vm.SetContext(ctx)
}

// Quit releases the virtual machine.
func (ip *Interpreter) Quit() {
	ip.vm.Close()
	ip.engine = nil
	ip.store = nil
}

// DoString runs src as script.
func (ip *Interpreter) DoString(src string) error {
	err := ip.vm.DoString(src)
	return checkSpecialError(err)
}

// DoFile runs the script file.
func (ip *Interpreter) DoFile(file string) error {
	err := ip.vm.DoFile(file)
	return checkSpecialError(err)
}

// PathOf returns path of file under Config.LoadDir.
func (ip *Interpreter) PathOf(file string) string {
	return filepath.Join(ip.config.LoadDir, file)
}

// LoadSystem runs every file matching Config.LoadPattern under
// Config.LoadDir, in name order.
func (ip *Interpreter) LoadSystem() error {
	path := ip.config.loadPattern()
	files, err := filepath.Glob(path)
	if err != nil {
		return err
	}
	for _, match := range files {
		if err := ip.DoFile(match); err != nil {
			return err
		}
	}
	return nil
}

// RunSystem runs LoadSystem under ctx. The run is aborted by ErrTimeout
// after Config.InfiniteLoopTimeoutSecond.
func (ip *Interpreter) RunSystem(ctx context.Context) error {
	if timeout := ip.config.timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	ip.vm.SetContext(ctx)
	defer ip.vm.RemoveContext()
	return ip.LoadSystem()
}
