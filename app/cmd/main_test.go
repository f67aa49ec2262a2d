package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/KirmesBude/REGoth/app/config"
	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/savegame"
	"github.com/KirmesBude/REGoth/stub"
)

type fixture struct {
	dir      string
	userData string
	store    *savegame.Store
	engine   *stub.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	userData := filepath.Join(dir, "userdata")
	return &fixture{
		dir:      dir,
		userData: userData,
		store:    savegame.NewStore(savegame.Config{UserDataDir: userData}, filesystem.Desktop),
		engine:   stub.NewEngine(engine.GameTypeGothic1, "WORLD.ZEN"),
	}
}

// run executes the root command with args and returns its standard output.
func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{
		"--" + flagNameConfig, filepath.Join(f.dir, "regoth-save.conf"),
		"--" + flagNameGame, "gothic1",
		"--" + flagNameUserData, f.userData,
		"--" + flagNameLogFile, filepath.Join(f.dir, "regoth-save.log"),
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	f := newFixture(t)
	f.engine.Clock.Seconds = 3725
	if err := f.store.SaveToSlot(f.engine, 2, "Old Camp"); err != nil {
		t.Fatal(err)
	}

	out, err := f.run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header and one slot, got:\n%s", out)
	}
	for _, want := range []string{"2", "Old Camp", "WORLD", "1h2m5s"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("slot line %q does not contain %q", lines[1], want)
		}
	}

	out, err = f.run(t, "list", "--all")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 1+savegame.Gothic1MaxSlots {
		t.Errorf("--all lists %d lines", n)
	}
}

func TestInfoCommand(t *testing.T) {
	f := newFixture(t)
	if err := f.store.SaveToSlot(f.engine, 0, "Start"); err != nil {
		t.Fatal(err)
	}

	out, err := f.run(t, "info", "0")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"name:    Start", "world:   WORLD", "version: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output does not contain %q:\n%s", want, out)
		}
	}

	if _, err := f.run(t, "info", "1"); err == nil || err.Error() != "Savegame at slot 1 not available!" {
		t.Errorf("info of empty slot: %v", err)
	}
	if _, err := f.run(t, "info", "15"); savegame.KindOf(err) != savegame.KindIndexOutOfRange {
		t.Errorf("info of slot 15 in gothic1: %v", err)
	}
	if _, err := f.run(t, "info", "x"); err == nil {
		t.Error("info must reject non numeric slot")
	}
}

func TestWorldsAndClearCommand(t *testing.T) {
	f := newFixture(t)
	if err := f.store.SaveToSlot(f.engine, 3, "x"); err != nil {
		t.Fatal(err)
	}

	out, err := f.run(t, "worlds", "3")
	if err != nil {
		t.Fatal(err)
	}
	if want := "regoth_save.json\nworld_WORLD.json\n"; out != want {
		t.Errorf("worlds = %q, want %q", out, want)
	}

	if _, err := f.run(t, "clear", "3"); err != nil {
		t.Fatal(err)
	}
	if f.store.IsSavegameAvailable(f.engine, 3) {
		t.Error("slot 3 available after clear")
	}
	out, err = f.run(t, "worlds", "3")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("worlds after clear = %q", out)
	}
}

func TestRunCommand(t *testing.T) {
	f := newFixture(t)
	file := filepath.Join(f.dir, "save.lua")
	if err := os.WriteFile(file, []byte(`require("savegame").save(4, "scripted")`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := f.run(t, "run", file); err != nil {
		t.Fatal(err)
	}
	info, err := f.store.ReadSavegameInfo(f.engine, 4)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "scripted" || info.World != "WORLD" {
		t.Errorf("info = %+v", info)
	}
}

func TestRecoverCommand(t *testing.T) {
	f := newFixture(t)
	if err := f.store.SaveToSlot(f.engine, 1, "kept"); err != nil {
		t.Fatal(err)
	}
	slot := f.store.SavegamePath(f.engine, 1)
	if err := os.Rename(slot, slot+".old"); err != nil {
		t.Fatal(err)
	}

	if _, err := f.run(t, "recover"); err != nil {
		t.Fatal(err)
	}
	if !f.store.IsSavegameAvailable(f.engine, 1) {
		t.Error("slot 1 not recovered")
	}
}

func TestWatch(t *testing.T) {
	f := newFixture(t)
	s := &session{store: f.store, engine: f.engine}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- s.watch(ctx, &out) }()

	// give the watcher time to start.
	time.Sleep(200 * time.Millisecond)
	if err := f.store.SaveToSlot(f.engine, 5, "watched"); err != nil {
		t.Fatal(err)
	}

	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "slot 5 changed") {
		t.Errorf("watch output = %q", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), Title+" dev") {
		t.Errorf("version = %q", out.String())
	}
}

func TestOverwriteConfig(t *testing.T) {
	conf := config.NewConfig()
	s := &session{game: "g1", userData: "/srv/saves", logLimit: 3}
	s.overwriteConfig(conf)

	if conf.Game != "g1" || conf.Savegame.UserDataDir != "/srv/saves" || conf.LogLimitMegaByte != 3 {
		t.Errorf("flags not applied: %+v", conf)
	}
	if conf.LogLevel != config.DefaultLogLevel || conf.LogFile != config.DefaultLogFile {
		t.Errorf("flags not given changed config: %+v", conf)
	}
}

func TestEnvironmentOverwritesConfigFile(t *testing.T) {
	f := newFixture(t)
	t.Setenv("REGOTH_GAME", "gothic2")
	t.Setenv("REGOTH_USERDATA_DIR", f.userData)

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{
		"--" + flagNameConfig, filepath.Join(f.dir, "regoth-save.conf"),
		"--" + flagNameLogFile, filepath.Join(f.dir, "regoth-save.log"),
		"list", "--all",
	})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out.String()), "\n")); n != 1+savegame.Gothic2MaxSlots {
		t.Errorf("gothic2 from environment lists %d lines", n)
	}

	// flag wins over environment.
	out2, err := f.run(t, "list", "--all")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out2), "\n")); n != 1+savegame.Gothic1MaxSlots {
		t.Errorf("gothic1 from flag lists %d lines", n)
	}
}

func TestExportImportCommand(t *testing.T) {
	f := newFixture(t)
	if err := f.store.SaveToSlot(f.engine, 0, "travelling"); err != nil {
		t.Fatal(err)
	}
	zipPath := filepath.Join(f.dir, "slot0.zip")

	out, err := f.run(t, "export", "0", zipPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, zipPath) {
		t.Errorf("export output = %q", out)
	}

	if _, err := f.run(t, "import", "6", zipPath); err != nil {
		t.Fatal(err)
	}
	info, err := f.store.ReadSavegameInfo(f.engine, 6)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "travelling" {
		t.Errorf("imported info = %+v", info)
	}
}
