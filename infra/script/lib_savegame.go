package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/savegame"
)

// Module "savegame" operates the save slots of the running game.
// Slot indexes start from 0. Failures raise a script error which
// can be caught by pcall.
//
// Example:
//
//	sg = require "savegame"
//	sg.save(0, "Before the ship")
//	if sg.available(0) then
//	  local info = sg.info(0)
//	  log.infof("%s in %s", info.name, info.world)
//	  sg.load(0)
//	end
const savegameModuleName = "savegame"

type savegameFunctor struct {
	store  *savegame.Store
	engine engine.Engine
}

func newSavegameLoader(store *savegame.Store, e engine.Engine) lua.LGFunction {
	ft := savegameFunctor{store: store, engine: e}
	return func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
			"save":        ft.save,
			"saveInPlace": ft.saveInPlace,
			"load":        ft.load,
			"clear":       ft.clear,
			"available":   ft.available,
			"info":        ft.info,
			"worlds":      ft.worlds,
			"list":        ft.list,
			"maxSlots":    ft.maxSlots,
		})
		L.Push(mod)
		return 1
	}
}

// * savegame.save(idx, [name])
//
// saves the current game into slot idx. Without name "Slot<idx>" is used.
func (ft savegameFunctor) save(L *lua.LState) int {
	idx := L.CheckInt(1)
	name := L.OptString(2, "")
	raiseErrorIf(L, ft.store.SaveToSlot(ft.engine, idx, name))
	return 0
}

// * savegame.saveInPlace(idx, [name])
//
// same as save but overwrites the slot files directly.
func (ft savegameFunctor) saveInPlace(L *lua.LState) int {
	idx := L.CheckInt(1)
	name := L.OptString(2, "")
	raiseErrorIf(L, ft.store.SaveToSlotInPlace(ft.engine, idx, name))
	return 0
}

// * savegame.load(idx)
func (ft savegameFunctor) load(L *lua.LState) int {
	idx := L.CheckInt(1)
	raiseErrorIf(L, ft.store.LoadSlot(ft.engine, idx))
	return 0
}

// * savegame.clear(idx)
func (ft savegameFunctor) clear(L *lua.LState) int {
	idx := L.CheckInt(1)
	raiseErrorIf(L, ft.store.ClearSavegame(ft.engine, idx))
	return 0
}

// * savegame.available(idx) -> bool
func (ft savegameFunctor) available(L *lua.LState) int {
	idx := L.CheckInt(1)
	L.Push(lua.LBool(ft.store.IsSavegameAvailable(ft.engine, idx)))
	return 1
}

// * savegame.info(idx) -> table or nil
//
// returns {version, name, world, timePlayed} of slot idx, or nil
// if the slot has no data.
func (ft savegameFunctor) info(L *lua.LState) int {
	idx := L.CheckInt(1)
	if !ft.store.IsSavegameAvailable(ft.engine, idx) {
		L.Push(lua.LNil)
		return 1
	}
	info, err := ft.store.ReadSavegameInfo(ft.engine, idx)
	raiseErrorIf(L, err)

	tbl := L.NewTable()
	tbl.RawSetString("version", lua.LNumber(info.Version))
	tbl.RawSetString("name", lua.LString(info.Name))
	tbl.RawSetString("world", lua.LString(info.World))
	tbl.RawSetString("timePlayed", lua.LNumber(info.TimePlayed))
	L.Push(tbl)
	return 1
}

// * savegame.worlds(idx) -> array of file names
func (ft savegameFunctor) worlds(L *lua.LState) int {
	idx := L.CheckInt(1)
	worlds, err := ft.store.SavegameWorlds(ft.engine, idx)
	raiseErrorIf(L, err)

	tbl := L.CreateTable(len(worlds), 0)
	for _, w := range worlds {
		tbl.Append(lua.LString(w))
	}
	L.Push(tbl)
	return 1
}

// * savegame.list() -> table
//
// returns table mapping every slot index to its name,
// or false for a slot without data.
func (ft savegameFunctor) list(L *lua.LState) int {
	names, err := ft.store.GatherAvailableSavegames(ft.engine)
	raiseErrorIf(L, err)

	tbl := L.NewTable()
	for i, n := range names {
		if n != nil {
			tbl.RawSetInt(i, lua.LString(*n))
		} else {
			tbl.RawSetInt(i, lua.LFalse)
		}
	}
	L.Push(tbl)
	return 1
}

// * savegame.maxSlots() -> number
func (ft savegameFunctor) maxSlots(L *lua.LState) int {
	L.Push(lua.LNumber(ft.store.MaxSlots(ft.engine)))
	return 1
}
