package savegame

import (
	"context"
	"testing"
	"time"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/stub"
)

func TestWatchSlots(t *testing.T) {
	s := newTestStore(t)
	e := stub.NewEngine(engine.GameTypeGothic1, "WORLD.ZEN")

	sw, err := s.WatchSlots(e)
	if err != nil {
		t.Fatal(err)
	}
	defer sw.Close()

	// another instance saves into slot 2.
	other := NewStore(s.config, nil)
	if err := other.SaveToSlot(e, 2, "elsewhere"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	for {
		select {
		case idx, ok := <-sw.Changes():
			if !ok {
				t.Fatal("changes closed before receiving slot 2")
			}
			if idx == 2 {
				return
			}
		case err := <-sw.Errors():
			t.Fatal(err)
		case <-ctx.Done():
			t.Fatal("Failed to receive change of slot 2", ctx.Err())
		}
	}
}

func TestSlotWatcherCloseTwice(t *testing.T) {
	s := newTestStore(t)
	sw, err := s.WatchSlots(stub.NewEngine(engine.GameTypeGothic2, "NEWWORLD.ZEN"))
	if err != nil {
		t.Fatal(err)
	}
	sw.Close()
	sw.Close()
	if _, ok := <-sw.Changes(); ok {
		t.Error("changes must be closed after Close")
	}
}
