package stub

import (
	"fmt"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
)

// Engine is a headless engine.Engine which keeps the world state in memory.
// It is used for testing and by tools running without the real engine.
type Engine struct {
	// FS is used by LoadWorld to read the world file. nil means filesystem.Default.
	FS filesystem.FileSystem

	World *World
	Clock *Clock

	// LoadCalls records every successful LoadWorld call in order.
	LoadCalls []LoadCall
}

// LoadCall is a record of Engine.LoadWorld.
type LoadCall struct {
	ZenFile      string
	SavegamePath string
}

// NewEngine returns an Engine running zenFile of the game type gt.
func NewEngine(gt engine.GameType, zenFile string) *Engine {
	return &Engine{
		World: &World{GameType: gt, Zen: zenFile, Payload: []byte("{}")},
		Clock: &Clock{},
	}
}

func (e *Engine) MainWorld() engine.World { return e.World }
func (e *Engine) GameClock() engine.Clock { return e.Clock }

// LoadWorld replaces the main world by zenFile and uses the content of
// savegamePath as its state.
func (e *Engine) LoadWorld(zenFile, savegamePath string) error {
	fsys := e.FS
	if fsys == nil {
		fsys = filesystem.Default
	}
	payload, err := filesystem.ReadFileContents(fsys, savegamePath)
	if err != nil {
		return fmt.Errorf("stub: load world %s: %w", zenFile, err)
	}
	e.World = &World{GameType: e.World.GameType, Zen: zenFile, Payload: payload}
	e.LoadCalls = append(e.LoadCalls, LoadCall{ZenFile: zenFile, SavegamePath: savegamePath})
	return nil
}

// World is an in-memory engine.World.
type World struct {
	GameType engine.GameType
	Zen      string
	// Payload is returned by ExportWorld as is.
	Payload []byte
	// ExportErr, if set, is returned by ExportWorld.
	ExportErr error
}

func (w *World) BasicGameType() engine.GameType { return w.GameType }
func (w *World) ZenFile() string                { return w.Zen }

func (w *World) ExportWorld() ([]byte, error) {
	if w.ExportErr != nil {
		return nil, w.ExportErr
	}
	return w.Payload, nil
}

// Clock is an in-memory engine.Clock.
type Clock struct {
	Seconds float64
}

func (c *Clock) TotalSeconds() float64        { return c.Seconds }
func (c *Clock) SetTotalSeconds(sec float64) { c.Seconds = sec }
