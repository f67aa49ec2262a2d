package filesystem

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Export some types and values so that user need not import underlying package explicitly
type WatchEvent = fsnotify.Event
type WatchOp = fsnotify.Op

const (
	WatchOpCreate = fsnotify.Create
	WatchOpWrite  = fsnotify.Write
	WatchOpRemove = fsnotify.Remove
	WatchOpRename = fsnotify.Rename
	WatchOpChmod  = fsnotify.Chmod
)

var (
	ErrNonExistentWatch = fsnotify.ErrNonExistentWatch
	ErrEventOverflow    = fsnotify.ErrEventOverflow
)

// Watcher notifies changes of watched files or directories.
// Events for the same name within a short period are merged into one.
type Watcher interface {
	Watch(filepath string) error
	UnWatch(filepath string) error
	Events() <-chan WatchEvent
	Errors() <-chan error
	Close() error
}

// events of one name arriving within this period are merged.
const coalescePeriod = 100 * time.Millisecond

type watcherImpl struct {
	w            *fsnotify.Watcher
	pathResolver PathResolver

	events    chan WatchEvent
	errors    chan error
	done      chan struct{}
	closeOnce sync.Once
}

func newWatcher(pr PathResolver) (Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("NewWatcher failed by backend fsnotify.NewWatcher(): %w", err)
	}
	wi := &watcherImpl{
		w:            w,
		pathResolver: pr,
		events:       make(chan WatchEvent),
		errors:       make(chan error),
		done:         make(chan struct{}),
	}
	go wi.eventLoop()
	return wi, nil
}

// fsnotify fires the same event more than once for some writers,
// see https://github.com/fsnotify/fsnotify/issues/122
func (wi *watcherImpl) eventLoop() {
	defer func() {
		close(wi.events)
		close(wi.errors)
	}()

	pending := make(map[string]WatchOp)
	order := make([]string, 0, 4)
	timer := time.NewTimer(coalescePeriod)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-wi.done:
			timer.Stop()
			return
		case ev, ok := <-wi.w.Events:
			if !ok {
				return
			}
			if _, exist := pending[ev.Name]; !exist {
				order = append(order, ev.Name)
			}
			pending[ev.Name] |= ev.Op
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(coalescePeriod)
		case err, ok := <-wi.w.Errors:
			if !ok {
				return
			}
			select {
			case wi.errors <- err:
			case <-wi.done:
				return
			}
		case <-timer.C:
			for _, name := range order {
				select {
				case wi.events <- WatchEvent{Name: name, Op: pending[name]}:
				case <-wi.done:
					return
				}
				delete(pending, name)
			}
			order = order[:0]
		}
	}
}

func (wi *watcherImpl) Close() error {
	wi.closeOnce.Do(func() { close(wi.done) })
	return wi.w.Close()
}

func (wi *watcherImpl) Watch(filepath string) error {
	p, err := wi.pathResolver.ResolvePath(filepath)
	if err != nil {
		return fmt.Errorf("failed to Watch(%s): %w", filepath, err)
	}
	return wi.w.Add(p)
}

func (wi *watcherImpl) UnWatch(filepath string) error {
	p, err := wi.pathResolver.ResolvePath(filepath)
	if err != nil {
		return fmt.Errorf("failed to UnWatch(%s): %w", filepath, err)
	}
	return wi.w.Remove(p)
}

func (wi *watcherImpl) Events() <-chan WatchEvent { return wi.events }
func (wi *watcherImpl) Errors() <-chan error      { return wi.errors }
