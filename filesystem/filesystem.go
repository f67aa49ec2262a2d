package filesystem

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/KirmesBude/REGoth/util/log"
)

// FileSystem is the set of file primitives the savegame store relies on.
type FileSystem interface {
	Loader

	// Store creates or truncates the file and returns a writer for it.
	// Parent directories are created when missing.
	Store(filepath string) (io.WriteCloser, error)

	// Mkdir creates dir and its parents. It does nothing when dir exists.
	Mkdir(dir string) error

	// FileSize returns size of the file in bytes, 0 for missing files.
	FileSize(filepath string) int64

	// ReadDir lists entries directly under dir, sorted by name.
	ReadDir(dir string) ([]Entry, error)

	// Truncate empties an existing file in place.
	Truncate(filepath string) error

	// Rename moves oldpath to newpath.
	Rename(oldpath, newpath string) error

	// Remove removes a file or an empty directory.
	Remove(path string) error
}

// Entry is a directory entry returned by FileSystem.ReadDir.
type Entry struct {
	Name  string
	Size  int64
	IsDir bool
}

// path resolver resolves file path on the filesystem.
type PathResolver interface {
	ResolvePath(path string) (string, error)
}

// NopPathResolver implements PathResolver interface.
type NopPathResolver struct{}

// ResolvePath returns path as is and no error.
func (NopPathResolver) ResolvePath(path string) (string, error) { return path, nil }

// Loader searches file path and returns its content as io.Reader.
type Loader interface {
	// Load opens content specified by the path.
	// The caller must close returned reader.
	Load(filepath string) (reader io.ReadCloser, err error)

	// Exist checks whether given filepath exist.
	Exist(filepath string) bool
}

var (
	// Default is a default FileSystem to be used by exported functions.
	Default FileSystem = Desktop
)

func Load(filepath string) (reader io.ReadCloser, err error) {
	log.Debugf("FileSystem.Load: %s", filepath)
	return Default.Load(filepath)
}

func Exist(filepath string) bool {
	return Default.Exist(filepath)
}

func Store(filepath string) (io.WriteCloser, error) {
	log.Debugf("FileSystem.Store: %s", filepath)
	return Default.Store(filepath)
}

// ReadFileContents reads whole content of the file on fsys.
func ReadFileContents(fsys FileSystem, fpath string) ([]byte, error) {
	fp, err := fsys.Load(fpath)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return io.ReadAll(fp)
}

// FileFunc is called by ForEachFile with the directory containing the file,
// the file name and its extension without dot.
type FileFunc func(dir, name, ext string) error

// ForEachFile calls fn for every regular file under dir.
// Sub directories are visited only when recursive is true.
// Iteration stops at the first error returned by fn.
func ForEachFile(fsys FileSystem, dir string, recursive bool, fn FileFunc) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir {
			if !recursive {
				continue
			}
			if err := ForEachFile(fsys, filepath.Join(dir, e.Name), recursive, fn); err != nil {
				return err
			}
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(e.Name), ".")
		if err := fn(dir, e.Name, ext); err != nil {
			return err
		}
	}
	return nil
}

// StripExtension returns file name without its extension.
//
//	StripExtension("NEWWORLD.ZEN") == "NEWWORLD"
func StripExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ResolvePath resolve file path under filesystem.Default.
// if Default also implements PathResolver, use it to resolve path,
// otherwise returns path itself.
func ResolvePath(path string) (string, error) {
	return ResolvePathFS(Default, path)
}

// ResolvePathFS resolve file path under given FileSystem.
func ResolvePathFS(fsys FileSystem, path string) (string, error) {
	if pr, ok := fsys.(PathResolver); ok {
		return pr.ResolvePath(path)
	}
	return path, nil
}

// OpenWatcher creates Watcher for the given FileSystem. If it does not
// implement PathResolver, paths are watched as is.
// Returned watcher must be closed after use.
func OpenWatcher(fsys FileSystem) (Watcher, error) {
	if pr, ok := fsys.(PathResolver); ok {
		return newWatcher(pr)
	}
	log.Debug("FileSystem does not implement PathResolver. Use NopPathResolver instead.")
	return newWatcher(NopPathResolver{})
}

func wrapPathErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("filesystem: %s %s: %w", op, path, err)
}
