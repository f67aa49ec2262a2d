package savegame

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/infra/serialize/json"
	"github.com/KirmesBude/REGoth/util/log"
)

// ExportSlot returns the non-empty store owned files of slot idx,
// keyed by file name.
func (s *Store) ExportSlot(e engine.Engine, idx int) (map[string][]byte, error) {
	if err := s.CheckSlot(e, idx); err != nil {
		return nil, err
	}
	if !s.IsSavegameAvailable(e, idx) {
		return nil, newError(KindNotAvailable, idx, s.SavegamePath(e, idx), nil)
	}

	names, err := s.SavegameWorlds(e, idx)
	if err != nil {
		return nil, newError(KindUnknown, idx, s.SavegamePath(e, idx), err)
	}
	files := make(map[string][]byte, len(names))
	for _, name := range names {
		if !isStoreFile(name) {
			continue
		}
		path := filepath.Join(s.SavegamePath(e, idx), name)
		content, err := filesystem.ReadFileContents(s.fs, path)
		if err != nil {
			return nil, newError(KindUnknown, idx, path, err)
		}
		files[name] = content
	}
	return files, nil
}

var errNoInfoFile = errors.New("no " + InfoFileName)

// ImportSlot replaces the content of slot idx by files, as returned by
// ExportSlot. files must contain valid metadata. The slot is replaced the
// same way as SaveToSlot does, so a failure keeps its previous content.
func (s *Store) ImportSlot(e engine.Engine, idx int, files map[string][]byte) error {
	if err := s.CheckSlot(e, idx); err != nil {
		return err
	}
	if err := validateImport(files); err != nil {
		return newError(KindParseFailed, idx, "", err)
	}
	if err := s.recoverSlot(e, idx); err != nil {
		log.Warnf("Failed to recover slot %d from an interrupted save: %v", idx, err)
	}

	s.ensureVariantFolders(e)
	staging := s.stagingPath(e, idx)
	if err := s.fs.Mkdir(staging); err != nil {
		return newError(KindWriteFailed, idx, staging, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		content := files[name]
		err := s.writeFile(idx, filepath.Join(staging, name), func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		})
		if err != nil {
			if rmErr := s.removeStaging(staging); rmErr != nil {
				log.Warnf("Failed to remove staging-directory %s: %v", staging, rmErr)
			}
			return err
		}
	}
	if err := s.commitStaging(e, idx); err != nil {
		return err
	}
	log.Infof("Imported %d files into slot %d", len(names), idx)
	return nil
}

func validateImport(files map[string][]byte) error {
	content, ok := files[InfoFileName]
	if !ok || len(content) == 0 {
		return errNoInfoFile
	}
	var rec infoRecord
	if err := json.DecodeBytes(content, &rec); err != nil {
		return err
	}
	if _, err := rec.info(); err != nil {
		return err
	}
	for name := range files {
		if !isStoreFile(name) || strings.ContainsAny(name, `/\`) || name == ".." {
			return fmt.Errorf("unexpected file %q", name)
		}
	}
	return nil
}
