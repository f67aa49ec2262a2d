package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// ReadZip reads all files in zip archive of srcZipPath, searched with
// respect to srcFsys. To be better memory efficiency, the fs.File returned by
// srcFsys.Open() should implement io.ReaderAt interface.
func ReadZip(srcFsys fs.FS, srcZipPath string) (map[string][]byte, error) {
	file, err := srcFsys.Open(srcZipPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	finfo, err := file.Stat()
	if err != nil {
		return nil, err
	}

	var readerAt io.ReaderAt
	if r, ok := file.(io.ReaderAt); ok {
		readerAt = r
	} else {
		// fallback method: put all content in memory.
		bs, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("read content failed for: %v", srcZipPath)
		}
		readerAt = bytes.NewReader(bs)
	}
	return ReadZipReader(readerAt, finfo.Size())
}

// ReadZipReader is alternative API with io.ReaderAt for ReadZip.
// Entries are either at top level or under one root directory.
// Directories deeper than that are rejected.
func ReadZipReader(r io.ReaderAt, rSize int64) (map[string][]byte, error) {
	zReader, err := zip.NewReader(r, rSize)
	if err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(zReader.File))
	for _, file := range zReader.File {
		if file.NonUTF8 {
			return nil, fmt.Errorf("zip archive containing non-UTF8 file name, is now allowed: file name: %v", file.FileInfo().Name())
		}
		if file.FileInfo().IsDir() {
			continue
		}

		name := file.Name
		if i := strings.IndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		if err := validateEntryName(name); err != nil {
			return nil, fmt.Errorf("%s: %w", file.Name, err)
		}
		if _, dup := files[name]; dup {
			return nil, fmt.Errorf("duplicated entry %q in zip archive", name)
		}

		content, err := readZipFileEntry(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read zip file: %w", err)
		}
		files[name] = content
	}
	return files, nil
}

func readZipFileEntry(srcFile *zip.File) ([]byte, error) {
	if srcFile.UncompressedSize64 > uint64(MaxEntrySize) {
		return nil, &entrySizeError{name: srcFile.Name, limit: MaxEntrySize}
	}
	src, err := srcFile.Open()
	if err != nil {
		return nil, fmt.Errorf("zip file entry(%v) open failed: %w", srcFile.Name, err)
	}
	defer src.Close()
	return readEntry(src, srcFile.Name, MaxEntrySize)
}
