// Package archive packs the files of a savegame slot into a zip archive
// and unpacks them again.
//
// An archive holds the files flat under one root directory named after
// the archive, e.g. slot3.zip contains slot3/regoth_save.json.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/KirmesBude/REGoth/filesystem"
)

// WriteZip writes files into the zip archive at outPath on outFsys.
// It returns output file path for the zip archive.
func WriteZip(outFsys filesystem.FileSystem, outPath string, files map[string][]byte) (outputPath string, err error) {
	// decide output path for zip archive and its name.
	var archiveBaseName string
	if _, base := filepath.Split(outPath); len(base) == 0 {
		return "", fmt.Errorf("empty base name is not allowed for output path: %v", outPath)
	} else {
		outputPath = filepath.Clean(outPath)
		archiveBaseName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	outputFile, err := outFsys.Store(outputPath)
	if err != nil {
		return "", fmt.Errorf("could not open output file: %v: %w", outputPath, err)
	}
	defer func() {
		err = errors.Join(err, outputFile.Close())
	}()

	err = WriteZipWriter(outputFile, archiveBaseName, files)
	return
}

// WriteZipWriter is alternative API with io.Writer for WriteZip.
// Entries are written in name order.
func WriteZipWriter(w io.Writer, archiveBaseName string, files map[string][]byte) (err error) {
	zWriter := zip.NewWriter(w)
	defer func() {
		closeErr := zWriter.Close()
		err = errors.Join(err, closeErr)
	}()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err = addFileToZipWriter(zWriter, archiveBaseName, name, files[name]); err != nil {
			err = fmt.Errorf("failed to add %v into zip: %w", name, err)
			return
		}
	}
	return
}

// fixed timestamp keeps archives of the same content identical.
var entryModified = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func addFileToZipWriter(zWriter *zip.Writer, archiveBaseName string, name string, content []byte) error {
	if err := validateEntryName(name); err != nil {
		return err
	}
	if err := checkEntrySize(name, int64(len(content)), MaxEntrySize); err != nil {
		return err
	}
	header := &zip.FileHeader{
		Name:     path.Join(archiveBaseName, name),
		Method:   zip.Deflate,
		Modified: entryModified,
	}
	header.SetMode(0644)

	w, err := zWriter.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

// slot files are flat. An entry name must not point into another directory.
func validateEntryName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("invalid entry name %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("potentially zip slip. entry name %q must not contain path separator", name)
	}
	return nil
}
