package savegame

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/util/errutil"
	"github.com/KirmesBude/REGoth/util/log"
)

// A save is written into <slot>.staging and swapped in by two renames:
//
//	<slot>         -> <slot>.old
//	<slot>.staging -> <slot>
//
// after which <slot>.old is drained. Any interruption leaves either the old
// or the new slot complete, and recoverSlot restores a consistent layout.
const (
	stagingSuffix = ".staging"
	backupSuffix  = ".old"
)

func (s *Store) stagingPath(e engine.Engine, idx int) string {
	return s.SavegamePath(e, idx) + stagingSuffix
}

func (s *Store) backupPath(e engine.Engine, idx int) string {
	return s.SavegamePath(e, idx) + backupSuffix
}

// Recover restores every slot left behind by an interrupted SaveToSlot.
func (s *Store) Recover(e engine.Engine) error {
	me := errutil.NewMultiError()
	for i := 0; i < s.MaxSlots(e); i++ {
		me.Add(s.recoverSlot(e, i))
	}
	return me.Err()
}

func (s *Store) recoverSlot(e engine.Engine, idx int) error {
	slot, backup, staging := s.SavegamePath(e, idx), s.backupPath(e, idx), s.stagingPath(e, idx)

	me := errutil.NewMultiError()
	if !s.fs.Exist(slot) && s.fs.Exist(backup) {
		// interrupted between the two renames.
		log.Infof("Restoring slot %d from %s", idx, backup)
		if err := s.fs.Rename(backup, slot); err != nil {
			me.Add(err)
		}
	}
	if s.fs.Exist(staging) {
		log.Infof("Removing incomplete save at %s", staging)
		me.Add(s.removeStaging(staging))
	}
	if s.fs.Exist(slot) && s.fs.Exist(backup) {
		me.Add(s.drainBackup(backup, slot))
	}
	return me.Err()
}

// commitStaging swaps the staging directory in as slot idx.
func (s *Store) commitStaging(e engine.Engine, idx int) error {
	slot, backup, staging := s.SavegamePath(e, idx), s.backupPath(e, idx), s.stagingPath(e, idx)

	if s.fs.Exist(backup) {
		err := fmt.Errorf("stale backup %s remains", backup)
		if rmErr := s.removeStaging(staging); rmErr != nil {
			log.Warnf("Failed to remove staging-directory %s: %v", staging, rmErr)
		}
		return newError(KindWriteFailed, idx, slot, err)
	}

	hadSlot := s.fs.Exist(slot)
	if hadSlot {
		if err := s.fs.Rename(slot, backup); err != nil {
			if rmErr := s.removeStaging(staging); rmErr != nil {
				log.Warnf("Failed to remove staging-directory %s: %v", staging, rmErr)
			}
			return newError(KindWriteFailed, idx, slot, err)
		}
	}
	if err := s.fs.Rename(staging, slot); err != nil {
		if hadSlot {
			if rbErr := s.fs.Rename(backup, slot); rbErr != nil {
				log.Warnf("Failed to roll back slot %d: %v", idx, rbErr)
			}
		}
		if rmErr := s.removeStaging(staging); rmErr != nil {
			log.Warnf("Failed to remove staging-directory %s: %v", staging, rmErr)
		}
		return newError(KindWriteFailed, idx, slot, err)
	}

	if hadSlot {
		// the new save is complete here. A failure only leaves the backup behind.
		if err := s.drainBackup(backup, slot); err != nil {
			log.Warnf("Failed to clean up previous save of slot %d: %v", idx, err)
		}
	}
	return nil
}

// drainBackup removes store owned files of backup, moves everything else
// into slot and finally removes backup itself.
func (s *Store) drainBackup(backup, slot string) error {
	entries, err := s.fs.ReadDir(backup)
	if err != nil {
		return err
	}

	me := errutil.NewMultiError()
	for _, ent := range entries {
		path := filepath.Join(backup, ent.Name)
		if !ent.IsDir && isStoreFile(ent.Name) {
			me.Add(s.fs.Remove(path))
			continue
		}
		// foreign files stay with the slot.
		target := filepath.Join(slot, ent.Name)
		if s.fs.Exist(target) {
			me.Add(fmt.Errorf("can not move %s: %s already exists", path, target))
			continue
		}
		me.Add(s.fs.Rename(path, target))
	}
	if me.Len() > 0 {
		return me.Err()
	}
	return s.fs.Remove(backup)
}

var errStagingNotFlat = errors.New("staging directory contains a directory")

// removeStaging removes the staging directory and the files directly in it.
func (s *Store) removeStaging(staging string) error {
	entries, err := s.fs.ReadDir(staging)
	if err != nil {
		return err
	}
	me := errutil.NewMultiError()
	for _, ent := range entries {
		if ent.IsDir {
			me.Add(fmt.Errorf("%w: %s", errStagingNotFlat, ent.Name))
			continue
		}
		me.Add(s.fs.Remove(filepath.Join(staging, ent.Name)))
	}
	if me.Len() > 0 {
		return me.Err()
	}
	return s.fs.Remove(staging)
}
