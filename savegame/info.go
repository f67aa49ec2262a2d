package savegame

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/infra/serialize/json"
	"github.com/KirmesBude/REGoth/util/errutil"
	"github.com/KirmesBude/REGoth/util/log"
)

// infoRecord is the on-disk form of Info. Fields are pointers to tell
// absent fields from zero values.
type infoRecord struct {
	Version    *uint32  `codec:"version"`
	Name       *string  `codec:"name"`
	World      *string  `codec:"world"`
	TimePlayed *float64 `codec:"timePlayed"`
}

func newInfoRecord(info Info) *infoRecord {
	return &infoRecord{
		Version:    &info.Version,
		Name:       &info.Name,
		World:      &info.World,
		TimePlayed: &info.TimePlayed,
	}
}

// info converts the record into Info. Only version may be absent, which is
// the case for saves written before versioning.
func (r *infoRecord) info() (Info, error) {
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"name", r.Name != nil},
		{"world", r.World != nil},
		{"timePlayed", r.TimePlayed != nil},
	} {
		if !f.present {
			return Info{}, fmt.Errorf("missing field %q", f.name)
		}
	}
	info := Info{Name: *r.Name, World: *r.World, TimePlayed: *r.TimePlayed}
	if r.Version != nil {
		info.Version = *r.Version
	}
	return info, nil
}

// IsSavegameAvailable returns whether slot idx has non-empty metadata.
func (s *Store) IsSavegameAvailable(e engine.Engine, idx int) bool {
	return s.fs.FileSize(s.InfoPath(e, idx)) > 0
}

// WriteSavegameInfo writes info as metadata of slot idx,
// overwriting the existing one. Name and World must be valid UTF-8,
// otherwise nothing is written and KindWriteFailed is returned.
func (s *Store) WriteSavegameInfo(e engine.Engine, idx int, info Info) error {
	s.ensureSavegameFolders(e, idx)
	return s.writeInfoFile(idx, s.InfoPath(e, idx), info)
}

var errInvalidUTF8 = errors.New("invalid UTF-8 text")

func (s *Store) writeInfoFile(idx int, path string, info Info) error {
	for _, text := range []string{info.Name, info.World} {
		if !utf8.ValidString(text) {
			log.Warnf("Failed to save data! Invalid text %q for: %s", text, path)
			return newError(KindWriteFailed, idx, path, fmt.Errorf("%w: %q", errInvalidUTF8, text))
		}
	}
	log.Infof("Writing savegame-info: %s", path)
	return s.writeFile(idx, path, func(w io.Writer) error {
		return json.Encode(w, newInfoRecord(info))
	})
}

// ReadSavegameInfo reads metadata of slot idx.
// It returns zero Info and nil when the slot has no metadata.
func (s *Store) ReadSavegameInfo(e engine.Engine, idx int) (Info, error) {
	return s.readInfoFile(idx, s.InfoPath(e, idx))
}

func (s *Store) readInfoFile(idx int, path string) (Info, error) {
	if s.fs.FileSize(path) == 0 {
		return Info{}, nil
	}

	log.Infof("Reading savegame-info: %s", path)
	content, err := filesystem.ReadFileContents(s.fs, path)
	if err != nil {
		return Info{}, newError(KindParseFailed, idx, path, err)
	}
	var rec infoRecord
	if err := json.DecodeBytes(content, &rec); err != nil {
		return Info{}, newError(KindParseFailed, idx, path, err)
	}
	info, err := rec.info()
	if err != nil {
		return Info{}, newError(KindParseFailed, idx, path, err)
	}
	return info, nil
}

// writeFile creates path and fills it by write.
// Any failure is reported as KindWriteFailed.
func (s *Store) writeFile(idx int, path string, write func(w io.Writer) error) error {
	fp, err := s.fs.Store(path)
	if err != nil {
		log.Warnf("Failed to save data! Could not open file: %s", path)
		return newError(KindWriteFailed, idx, path, err)
	}

	me := errutil.NewMultiError()
	me.Add(write(fp))
	me.Add(fp.Close())
	if err := me.Err(); err != nil {
		log.Warnf("Failed to save data! Could not write file: %s: %v", path, err)
		return newError(KindWriteFailed, idx, path, err)
	}
	return nil
}
