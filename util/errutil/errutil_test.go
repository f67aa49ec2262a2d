package errutil

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"
)

type failWriter struct{ calls int }

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.calls++
	return 0, fs.ErrClosed
}

func TestWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	ew := NewErrWriter(buf)
	ew.Write([]byte("abc"))
	ew.Write([]byte("de"))
	if ew.Err() != nil {
		t.Fatal(ew.Err())
	}
	if ew.Written() != 5 || buf.String() != "abcde" {
		t.Errorf("written %d bytes, content %q", ew.Written(), buf.String())
	}

	fw := &failWriter{}
	ew = NewErrWriter(fw)
	ew.Write([]byte("a"))
	ew.Write([]byte("b"))
	if !errors.Is(ew.Err(), fs.ErrClosed) {
		t.Errorf("expect first write error to be kept, got %v", ew.Err())
	}
	if fw.calls != 1 {
		t.Errorf("writes after error must be skipped, underlying called %d times", fw.calls)
	}
}

func TestMultiError(t *testing.T) {
	me := NewMultiError()
	me.Add(nil)
	if me.Err() != nil {
		t.Fatal("empty MultiError must return nil")
	}

	me.Add(fs.ErrNotExist)
	me.Add(fs.ErrPermission)
	if me.Len() != 2 {
		t.Errorf("Len() = %d, want 2", me.Len())
	}
	err := me.Err()
	if !errors.Is(err, fs.ErrPermission) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("collected errors are not reachable by errors.Is: %v", err)
	}
}
