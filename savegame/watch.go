package savegame

import (
	"path/filepath"
	"sync"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/util/log"
)

// SlotWatcher reports indexes of slots whose content changed on disk,
// e.g. by another running instance of the game.
type SlotWatcher struct {
	w        filesystem.Watcher
	variant  string
	maxSlots int

	changes   chan int
	errors    chan error
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// WatchSlots starts watching all slots of the game the engine runs.
// The returned watcher must be closed after use.
func (s *Store) WatchSlots(e engine.Engine) (*SlotWatcher, error) {
	s.ensureVariantFolders(e)
	w, err := filesystem.OpenWatcher(s.fs)
	if err != nil {
		return nil, err
	}

	sw := &SlotWatcher{
		w:        w,
		variant:  s.VariantPath(e),
		maxSlots: s.MaxSlots(e),
		changes:  make(chan int),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}
	if err := w.Watch(sw.variant); err != nil {
		w.Close()
		return nil, err
	}
	for i := 0; i < sw.maxSlots; i++ {
		if dir := s.SavegamePath(e, i); s.fs.Exist(dir) {
			if err := w.Watch(dir); err != nil {
				log.Warnf("Failed to watch %s: %v", dir, err)
			}
		}
	}

	sw.wg.Add(1)
	go sw.loop()
	return sw, nil
}

// Changes returns channel of changed slot indexes.
// It is closed after Close.
func (sw *SlotWatcher) Changes() <-chan int { return sw.changes }

// Errors returns channel of watch errors.
// It is closed after Close.
func (sw *SlotWatcher) Errors() <-chan error { return sw.errors }

// Close stops watching. It is safe to call more than once.
func (sw *SlotWatcher) Close() error {
	var err error
	sw.closeOnce.Do(func() {
		close(sw.done)
		err = sw.w.Close()
		sw.wg.Wait()
	})
	return err
}

func (sw *SlotWatcher) loop() {
	defer sw.wg.Done()
	defer func() {
		close(sw.changes)
		close(sw.errors)
	}()

	for {
		select {
		case <-sw.done:
			return
		case ev, ok := <-sw.w.Events():
			if !ok {
				return
			}
			idx, ok := sw.slotOf(ev)
			if !ok {
				continue
			}
			select {
			case sw.changes <- idx:
			case <-sw.done:
				return
			}
		case err, ok := <-sw.w.Errors():
			if !ok {
				return
			}
			select {
			case sw.errors <- err:
			case <-sw.done:
				return
			}
		}
	}
}

// slotOf maps an event into its slot index. A new slot directory is
// watched from then on.
func (sw *SlotWatcher) slotOf(ev filesystem.WatchEvent) (int, bool) {
	name := filepath.Clean(ev.Name)
	dir, base := filepath.Dir(name), filepath.Base(name)

	if dir == filepath.Clean(sw.variant) {
		idx, ok := parseSlotDirName(base)
		if !ok || idx >= sw.maxSlots {
			return 0, false
		}
		if ev.Has(filesystem.WatchOpCreate) {
			if err := sw.w.Watch(name); err != nil {
				log.Warnf("Failed to watch %s: %v", name, err)
			}
		}
		return idx, true
	}

	if filepath.Dir(dir) != filepath.Clean(sw.variant) {
		return 0, false
	}
	idx, ok := parseSlotDirName(filepath.Base(dir))
	if !ok || idx >= sw.maxSlots {
		return 0, false
	}
	return idx, true
}
