package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/KirmesBude/REGoth/filesystem"
)

// MaxEntrySize is the largest file accepted in an archive, the same limit
// the filesystem applies when loading a file.
const MaxEntrySize = filesystem.DefaultMaxFileSize

// ErrEntryTooLarge is returned for an entry larger than MaxEntrySize.
var ErrEntryTooLarge = errors.New("archive entry too large")

type entrySizeError struct {
	name  string
	limit int64
}

func (e *entrySizeError) Error() string {
	return fmt.Sprintf("%s: exceeds %d bytes: %v", e.name, e.limit, ErrEntryTooLarge)
}

func (e *entrySizeError) Unwrap() error { return ErrEntryTooLarge }

// checkEntrySize fails when size is over limit.
func checkEntrySize(name string, size, limit int64) error {
	if size > limit {
		return &entrySizeError{name: name, limit: limit}
	}
	return nil
}

// readEntry reads src of entry name up to limit bytes. The size recorded in
// an archive header can lie, so the stream itself is bounded too.
func readEntry(src io.Reader, name string, limit int64) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := checkEntrySize(name, int64(len(content)), limit); err != nil {
		return nil, err
	}
	return content, nil
}
