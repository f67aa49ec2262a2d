package savegame

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/util/log"
)

// CheckSlot returns KindIndexOutOfRange error if idx is not a slot of the
// game the engine runs.
func (s *Store) CheckSlot(e engine.Engine, idx int) error {
	if max := s.MaxSlots(e); idx < 0 || idx >= max {
		return newError(KindIndexOutOfRange, idx, "", fmt.Errorf("valid range is [0, %d)", max))
	}
	return nil
}

// DefaultName returns the name given to slot idx when the user names nothing.
func DefaultName(idx int) string {
	return "Slot" + strconv.Itoa(idx)
}

// currentInfo builds Info for the current state of the engine.
func currentInfo(e engine.Engine, name string) Info {
	return Info{
		Version:    LatestKnownVersion,
		Name:       name,
		World:      filesystem.StripExtension(e.MainWorld().ZenFile()),
		TimePlayed: e.GameClock().TotalSeconds(),
	}
}

// GatherAvailableSavegames returns names of all slots ordered by index.
// The entry of a slot without data is nil.
func (s *Store) GatherAvailableSavegames(e engine.Engine) ([]*string, error) {
	names := make([]*string, s.MaxSlots(e))
	for i := range names {
		if !s.IsSavegameAvailable(e, i) {
			continue
		}
		info, err := s.ReadSavegameInfo(e, i)
		if err != nil {
			return nil, err
		}
		name := info.Name
		names[i] = &name
	}

	var available []string
	for i, n := range names {
		if n != nil {
			available = append(available, strconv.Itoa(i)+": "+*n)
		}
	}
	log.Infof("Available savegames: [%s]", strings.Join(available, ", "))
	return names, nil
}

// SlotSummary describes one slot for listings.
type SlotSummary struct {
	Index     int
	Available bool
	Info      Info
	Files     []string // non-empty files in the slot directory.
	Size      int64    // total size of Files in bytes.
}

// ListSlots returns summaries of all slots ordered by index.
func (s *Store) ListSlots(e engine.Engine) ([]SlotSummary, error) {
	slots := make([]SlotSummary, s.MaxSlots(e))
	for i := range slots {
		sum := SlotSummary{Index: i, Available: s.IsSavegameAvailable(e, i)}
		if sum.Available {
			info, err := s.ReadSavegameInfo(e, i)
			if err != nil {
				return nil, err
			}
			sum.Info = info
		}
		files, err := s.SavegameWorlds(e, i)
		if err != nil {
			return nil, err
		}
		sum.Files = files
		for _, f := range files {
			sum.Size += s.fs.FileSize(filepath.Join(s.SavegamePath(e, i), f))
		}
		slots[i] = sum
	}
	return slots, nil
}

// SaveToSlot saves the current game into slot idx under name.
// Empty name is replaced by DefaultName(idx).
//
// Files are written into a staging directory first, which then replaces the
// slot directory. A failure leaves the previous content of the slot intact.
// World files of the previous save do not survive, so a later load can not
// enter a world which was never visited with this save.
func (s *Store) SaveToSlot(e engine.Engine, idx int, name string) error {
	if err := s.CheckSlot(e, idx); err != nil {
		return err
	}
	if name == "" {
		name = DefaultName(idx)
	}
	if err := s.recoverSlot(e, idx); err != nil {
		log.Warnf("Failed to recover slot %d from an interrupted save: %v", idx, err)
	}

	exported, err := e.MainWorld().ExportWorld()
	if err != nil {
		return newError(KindExportFailed, idx, "", err)
	}
	info := currentInfo(e, name)

	s.ensureVariantFolders(e)
	staging := s.stagingPath(e, idx)
	if err := s.fs.Mkdir(staging); err != nil {
		return newError(KindWriteFailed, idx, staging, err)
	}
	if err := s.writeStaging(idx, staging, info, exported); err != nil {
		if rmErr := s.removeStaging(staging); rmErr != nil {
			log.Warnf("Failed to remove staging-directory %s: %v", staging, rmErr)
		}
		return err
	}
	if err := s.commitStaging(e, idx); err != nil {
		return err
	}

	log.Infof("Saved %q into slot %d (world %s)", info.Name, idx, info.World)
	return nil
}

func (s *Store) writeStaging(idx int, staging string, info Info, exported []byte) error {
	if err := s.writeInfoFile(idx, filepath.Join(staging, InfoFileName), info); err != nil {
		return err
	}
	return s.writeExportedWorld(idx, filepath.Join(staging, worldFileName(info.World)), exported)
}

// SaveToSlotInPlace saves the current game into slot idx by clearing the slot
// and writing the files directly into it. An interruption may leave the slot
// with metadata which does not match its world files.
// Use it only where directories can not be renamed; prefer SaveToSlot.
func (s *Store) SaveToSlotInPlace(e engine.Engine, idx int, name string) error {
	if err := s.CheckSlot(e, idx); err != nil {
		return err
	}
	if name == "" {
		name = DefaultName(idx)
	}

	// Clean data from old savegame, so we don't load into worlds we haven't been to yet
	if err := s.ClearSavegame(e, idx); err != nil {
		log.Warnf("Failed to clear slot %d: %v", idx, err)
	}

	info := currentInfo(e, name)
	if err := s.WriteSavegameInfo(e, idx, info); err != nil {
		return err
	}

	exported, err := e.MainWorld().ExportWorld()
	if err != nil {
		return newError(KindExportFailed, idx, "", err)
	}
	s.ensureSavegameFolders(e, idx)
	return s.writeExportedWorld(idx, s.WorldPath(e, idx, info.World), exported)
}

// LoadSlot restores the game saved in slot idx into the engine.
// On failure the engine is left untouched, except for KindLoadFailed
// where the engine itself failed to load the world.
func (s *Store) LoadSlot(e engine.Engine, idx int) error {
	if err := s.CheckSlot(e, idx); err != nil {
		return err
	}
	if err := s.recoverSlot(e, idx); err != nil {
		log.Warnf("Failed to recover slot %d from an interrupted save: %v", idx, err)
	}
	if !s.IsSavegameAvailable(e, idx) {
		return newError(KindNotAvailable, idx, s.SavegamePath(e, idx), nil)
	}

	// Most importantly the world the player saved in.
	info, err := s.ReadSavegameInfo(e, idx)
	if err != nil {
		return err
	}

	// Without a save for the world we would end up in its fresh version.
	worldPath := s.WorldPath(e, idx, info.World)
	if s.fs.FileSize(worldPath) == 0 {
		return newError(KindMissingWorldFile, idx, worldPath, nil)
	}

	if err := e.LoadWorld(info.World+zenFileExt, worldPath); err != nil {
		return newError(KindLoadFailed, idx, worldPath, err)
	}
	e.GameClock().SetTotalSeconds(info.TimePlayed)
	log.Infof("Loaded slot %d %q (world %s)", idx, info.Name, info.World)
	return nil
}
