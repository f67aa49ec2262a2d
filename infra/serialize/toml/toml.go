// Package toml reads and writes configuration files in TOML.
package toml

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/KirmesBude/REGoth/filesystem"
	"github.com/KirmesBude/REGoth/util/errutil"
	"github.com/KirmesBude/REGoth/util/log"
)

// Encode writes data into w.
func Encode(w io.Writer, data interface{}) error {
	return toml.NewEncoder(w).Encode(data)
}

// EncodeFile writes data into file, replacing its content.
func EncodeFile(file string, data interface{}) error {
	fp, err := filesystem.Store(file)
	if err != nil {
		return err
	}
	me := errutil.NewMultiError()
	me.Add(Encode(fp, data))
	me.Add(fp.Close())
	if err := me.Err(); err != nil {
		return fmt.Errorf("toml: encode %s: %w", file, err)
	}
	return nil
}

// Decode reads r into data.
// Keys unknown to data are reported in the log, not as an error.
func Decode(r io.Reader, data interface{}) error {
	meta, err := toml.NewDecoder(r).Decode(data)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Warnf("toml: undecoded keys exist, %v", undecoded)
	}
	return nil
}

// DecodeFile reads file into data.
func DecodeFile(file string, data interface{}) error {
	fp, err := filesystem.Load(file)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Decode(fp, data); err != nil {
		return fmt.Errorf("toml: decode %s: %w", file, err)
	}
	return nil
}
