package savegame

import (
	"errors"
	"reflect"
	"testing"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/stub"
)

func TestExportImportSlot(t *testing.T) {
	s := newTestStore(t)
	e := stub.NewEngine(engine.GameTypeGothic2, "NEWWORLD.ZEN")
	e.Clock.Seconds = 10
	if err := s.SaveToSlot(e, 1, "exported"); err != nil {
		t.Fatal(err)
	}

	files, err := s.ExportSlot(e, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files[InfoFileName] == nil || files["world_NEWWORLD.json"] == nil {
		t.Fatalf("exported files = %v", files)
	}

	if err := s.ImportSlot(e, 8, files); err != nil {
		t.Fatal(err)
	}
	info, err := s.ReadSavegameInfo(e, 8)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Info{Version: LatestKnownVersion, Name: "exported", World: "NEWWORLD", TimePlayed: 10}); info != want {
		t.Errorf("imported info = %+v, want %+v", info, want)
	}
	reexported, err := s.ExportSlot(e, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(reexported, files) {
		t.Error("imported slot differs from exported one")
	}
}

func TestExportSlotNotAvailable(t *testing.T) {
	s := newTestStore(t)
	e := stub.NewEngine(engine.GameTypeGothic2, "NEWWORLD.ZEN")
	if _, err := s.ExportSlot(e, 0); !errors.Is(err, KindNotAvailable) {
		t.Errorf("want not available, got %v", err)
	}
}

func TestImportSlotInvalid(t *testing.T) {
	s := newTestStore(t)
	e := stub.NewEngine(engine.GameTypeGothic2, "NEWWORLD.ZEN")
	if err := s.SaveToSlot(e, 2, "kept"); err != nil {
		t.Fatal(err)
	}

	for name, files := range map[string]map[string][]byte{
		"no metadata":  {"world_NEWWORLD.json": []byte("{}")},
		"broken":       {InfoFileName: []byte("{")},
		"foreign file": {InfoFileName: []byte(`{"name": "x", "world": "W", "timePlayed": 1}`), "evil.sh": []byte("rm")},
	} {
		if err := s.ImportSlot(e, 2, files); !errors.Is(err, KindParseFailed) {
			t.Errorf("%s: want parse failure, got %v", name, err)
		}
	}
	info, err := s.ReadSavegameInfo(e, 2)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "kept" {
		t.Errorf("failed import changed slot: %+v", info)
	}
}
