package filesystem

import (
	"fmt"
	"io"
	"path/filepath"
)

// AbsPathFileSystem completes absolute path for every file access.
// The absolute path is made by filepath.Abs when CurrentDir is empty,
// or by filepath.Join(CurrentDir, relativePath) otherwise.
// Desktop is used as Backend when it is nil.
type AbsPathFileSystem struct {
	CurrentDir string
	Backend    FileSystem
}

// ResolvePath completes parent directory path to fpath when fpath is relative.
// It returns fpath itself when fpath is already absolute.
func (absfs *AbsPathFileSystem) ResolvePath(fpath string) (string, error) {
	if filepath.IsAbs(fpath) {
		return filepath.Clean(fpath), nil
	}
	switch {
	case absfs.CurrentDir == "":
		return filepath.Abs(fpath)
	case filepath.IsAbs(absfs.CurrentDir):
		return filepath.Join(absfs.CurrentDir, fpath), nil
	default:
		return "", fmt.Errorf("AbsPathFileSystem: CurrentDir is not absolute path: %s", absfs.CurrentDir)
	}
}

func (absfs *AbsPathFileSystem) backend() FileSystem {
	if absfs.Backend == nil {
		return Desktop
	}
	return absfs.Backend
}

func (absfs *AbsPathFileSystem) Load(fpath string) (io.ReadCloser, error) {
	p, err := absfs.ResolvePath(fpath)
	if err != nil {
		return nil, fmt.Errorf("AbsPathFileSystem.Load() error: %w", err)
	}
	return absfs.backend().Load(p)
}

func (absfs *AbsPathFileSystem) Exist(fpath string) bool {
	p, err := absfs.ResolvePath(fpath)
	if err != nil {
		return false
	}
	return absfs.backend().Exist(p)
}

func (absfs *AbsPathFileSystem) Store(fpath string) (io.WriteCloser, error) {
	p, err := absfs.ResolvePath(fpath)
	if err != nil {
		return nil, fmt.Errorf("AbsPathFileSystem.Store() error: %w", err)
	}
	return absfs.backend().Store(p)
}

func (absfs *AbsPathFileSystem) Mkdir(dir string) error {
	p, err := absfs.ResolvePath(dir)
	if err != nil {
		return err
	}
	return absfs.backend().Mkdir(p)
}

func (absfs *AbsPathFileSystem) FileSize(fpath string) int64 {
	p, err := absfs.ResolvePath(fpath)
	if err != nil {
		return 0
	}
	return absfs.backend().FileSize(p)
}

func (absfs *AbsPathFileSystem) ReadDir(dir string) ([]Entry, error) {
	p, err := absfs.ResolvePath(dir)
	if err != nil {
		return nil, err
	}
	return absfs.backend().ReadDir(p)
}

func (absfs *AbsPathFileSystem) Truncate(fpath string) error {
	p, err := absfs.ResolvePath(fpath)
	if err != nil {
		return err
	}
	return absfs.backend().Truncate(p)
}

func (absfs *AbsPathFileSystem) Rename(oldpath, newpath string) error {
	oldp, err := absfs.ResolvePath(oldpath)
	if err != nil {
		return err
	}
	newp, err := absfs.ResolvePath(newpath)
	if err != nil {
		return err
	}
	return absfs.backend().Rename(oldp, newp)
}

func (absfs *AbsPathFileSystem) Remove(path string) error {
	p, err := absfs.ResolvePath(path)
	if err != nil {
		return err
	}
	return absfs.backend().Remove(p)
}
