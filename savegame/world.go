package savegame

import (
	"io"

	"github.com/KirmesBude/REGoth/charset"
	"github.com/KirmesBude/REGoth/engine"
	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/util/errutil"
	"github.com/KirmesBude/REGoth/util/log"
)

// WriteWorld writes data as the world file of world in slot idx.
func (s *Store) WriteWorld(e engine.Engine, idx int, world string, data []byte) error {
	s.ensureSavegameFolders(e, idx)
	path := s.WorldPath(e, idx, world)
	log.Infof("Writing world-file: %s", path)
	return s.writeFile(idx, path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// ReadWorld returns content of the world file of world in slot idx.
// Missing or empty world file results in empty content and nil.
func (s *Store) ReadWorld(e engine.Engine, idx int, world string) ([]byte, error) {
	path := s.WorldPath(e, idx, world)
	if s.fs.FileSize(path) == 0 {
		return nil, nil
	}
	log.Infof("Reading world-file: %s", path)
	return filesystem.ReadFileContents(s.fs, path)
}

// writeExportedWorld writes the world text exported by the engine
// into path, converting it from ISO-8859-1 to UTF-8.
func (s *Store) writeExportedWorld(idx int, path string, exported []byte) error {
	log.Infof("Writing world-file: %s", path)
	return s.writeFile(idx, path, func(w io.Writer) error {
		tw := charset.NewLatin1ToUTF8Writer(w)
		ew := errutil.NewErrWriter(tw)
		ew.Write(exported)
		if err := ew.Err(); err != nil {
			return err
		}
		if err := tw.Close(); err != nil {
			return err
		}
		log.Debugf("world-file %s: %d bytes exported", path, ew.Written())
		return nil
	})
}
