package savegame

import (
	"path/filepath"
	"strings"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/util/errutil"
	"github.com/KirmesBude/REGoth/util/log"
)

// isStoreFile reports whether the file name belongs to the savegame store.
func isStoreFile(name string) bool {
	return strings.Contains(name, infoFileMarker) || strings.Contains(name, worldFileMarker)
}

// SavegameWorlds returns names of non-empty files directly in slot idx.
func (s *Store) SavegameWorlds(e engine.Engine, idx int) ([]string, error) {
	dir := s.SavegamePath(e, idx)
	if !s.fs.Exist(dir) {
		return nil, nil
	}

	var worlds []string
	err := filesystem.ForEachFile(s.fs, dir, false, func(d, name, ext string) error {
		if s.fs.FileSize(filepath.Join(d, name)) == 0 {
			return nil // Empty, don't bother
		}
		worlds = append(worlds, name)
		return nil
	})
	return worlds, err
}

// ClearSavegame empties every store owned file in slot idx.
// Files are truncated, not removed, and other files are left untouched.
// It does nothing when the slot is not available.
func (s *Store) ClearSavegame(e engine.Engine, idx int) error {
	if !s.IsSavegameAvailable(e, idx) {
		return nil // Don't touch any files if we don't have to
	}

	me := errutil.NewMultiError()
	// never recurse: nested directories are not ours.
	err := filesystem.ForEachFile(s.fs, s.SavegamePath(e, idx), false, func(dir, name, ext string) error {
		if !isStoreFile(name) {
			return nil // Better not touch that one
		}
		path := filepath.Join(dir, name)
		if err := s.fs.Truncate(path); err != nil {
			log.Warnf("Failed to clear file: %s: %v", path, err)
			me.Add(err)
		}
		return nil
	})
	me.Add(err)
	return me.Err()
}
