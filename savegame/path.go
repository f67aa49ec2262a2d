package savegame

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/util/log"
)

func variantDir(gt engine.GameType) string {
	if gt == engine.GameTypeGothic1 {
		return gothic1Dir
	}
	return gothic2Dir
}

func slotDirName(idx int) string {
	return slotDirPrefix + strconv.Itoa(idx)
}

// parseSlotDirName returns the slot index of a slot directory name.
// Names of staging or backup directories are not slot directories.
func parseSlotDirName(name string) (int, bool) {
	if !strings.HasPrefix(name, slotDirPrefix) {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(name, slotDirPrefix))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

func worldFileName(world string) string {
	return worldFilePrefix + world + worldFileExt
}

// VariantPath returns the directory containing all slots of the running game.
func (s *Store) VariantPath(e engine.Engine) string {
	return filepath.Join(s.UserDataDir(), variantDir(gameTypeOf(e)))
}

// SavegamePath returns the directory of slot idx.
func (s *Store) SavegamePath(e engine.Engine, idx int) string {
	return filepath.Join(s.VariantPath(e), slotDirName(idx))
}

// InfoPath returns the metadata file of slot idx.
func (s *Store) InfoPath(e engine.Engine, idx int) string {
	return filepath.Join(s.SavegamePath(e, idx), InfoFileName)
}

// WorldPath returns the world file for world in slot idx.
func (s *Store) WorldPath(e engine.Engine, idx int, world string) string {
	return filepath.Join(s.SavegamePath(e, idx), worldFileName(world))
}

// ensureSavegameFolders creates every directory up to slot idx.
// Failures are only logged; the following write reports the actual error.
func (s *Store) ensureSavegameFolders(e engine.Engine, idx int) {
	s.ensureVariantFolders(e)
	dir := s.SavegamePath(e, idx)
	if err := s.fs.Mkdir(dir); err != nil {
		log.Warnf("Failed to create savegame-directory at: %s: %v", dir, err)
	}
}

func (s *Store) ensureVariantFolders(e engine.Engine) {
	for _, dir := range []struct {
		desc, path string
	}{
		{"userdata", s.UserDataDir()},
		{"gametype", s.VariantPath(e)},
	} {
		if err := s.fs.Mkdir(dir.path); err != nil {
			log.Warnf("Failed to create %s-directory at: %s: %v", dir.desc, dir.path, err)
		}
	}
}
