package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

const (
	// world payloads of large worlds reach a few tens of megabytes.
	DefaultMaxFileSize = 64 * 1024 * 1024
)

var (
	// Desktop is a FileSystem for the desktop environment
	Desktop = &OSFileSystem{MaxFileSize: DefaultMaxFileSize}
)

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct {
	MaxFileSize int64 // in bytes, 0 or less means unlimited.
}

func (osfs *OSFileSystem) ResolvePath(fpath string) (string, error) {
	return filepath.Clean(fpath), nil
}

func (osfs *OSFileSystem) Load(fpath string) (io.ReadCloser, error) {
	finfo, err := os.Stat(fpath)
	if err != nil {
		return nil, fmt.Errorf("can not fetch file info: %w", err)
	}
	if maxSize := osfs.MaxFileSize; maxSize > 0 && finfo.Size() > maxSize {
		return nil, fmt.Errorf("file(%s) is too large size(>%v) to load", fpath, maxSize)
	}
	return os.Open(fpath)
}

func (osfs *OSFileSystem) Exist(fpath string) bool {
	_, err := os.Stat(fpath)
	return err == nil
}

func (osfs *OSFileSystem) Store(fpath string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
		return nil, fmt.Errorf("can not create store directory: %w", err)
	}
	fp, err := os.Create(fpath)
	if err != nil {
		return nil, fmt.Errorf("can not create store file: %w", err)
	}
	return fp, nil
}

func (osfs *OSFileSystem) Mkdir(dir string) error {
	return wrapPathErr("mkdir", dir, os.MkdirAll(dir, 0755))
}

func (osfs *OSFileSystem) FileSize(fpath string) int64 {
	finfo, err := os.Stat(fpath)
	if err != nil || finfo.IsDir() {
		return 0
	}
	return finfo.Size()
}

func (osfs *OSFileSystem) ReadDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, wrapPathErr("readdir", dir, err)
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := Entry{Name: de.Name(), IsDir: de.IsDir()}
		if !e.IsDir {
			if info, err := de.Info(); err == nil {
				e.Size = info.Size()
			}
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (osfs *OSFileSystem) Truncate(fpath string) error {
	// O_TRUNC without O_CREATE: a file removed meanwhile must not be recreated.
	fp, err := os.OpenFile(fpath, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return wrapPathErr("truncate", fpath, err)
	}
	return fp.Close()
}

func (osfs *OSFileSystem) Rename(oldpath, newpath string) error {
	return wrapPathErr("rename", oldpath, os.Rename(oldpath, newpath))
}

func (osfs *OSFileSystem) Remove(path string) error {
	return wrapPathErr("remove", path, os.Remove(path))
}
