package stub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirmesBude/REGoth/engine"
)

func TestEngineImplementsInterface(t *testing.T) {
	var _ engine.Engine = &Engine{}
	var _ engine.World = &World{}
	var _ engine.Clock = &Clock{}
}

func TestEngineLoadWorld(t *testing.T) {
	e := NewEngine(engine.GameTypeGothic2, "NEWWORLD.ZEN")
	fpath := filepath.Join(t.TempDir(), "world_OLDCAMP.json")
	if err := os.WriteFile(fpath, []byte(`{"npcs":[]}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := e.LoadWorld("OLDCAMP.zen", fpath); err != nil {
		t.Fatal(err)
	}
	if e.MainWorld().ZenFile() != "OLDCAMP.zen" {
		t.Errorf("world after load = %s", e.MainWorld().ZenFile())
	}
	if e.MainWorld().BasicGameType() != engine.GameTypeGothic2 {
		t.Error("game type must be kept over LoadWorld")
	}
	if len(e.LoadCalls) != 1 || e.LoadCalls[0].SavegamePath != fpath {
		t.Errorf("LoadCalls = %+v", e.LoadCalls)
	}

	if err := e.LoadWorld("MISSING.zen", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadWorld of missing file must fail")
	}
	if len(e.LoadCalls) != 1 {
		t.Error("failed LoadWorld must not be recorded")
	}
}
