package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/KirmesBude/REGoth/filesystem"
)

var testSlotFiles = map[string][]byte{
	"regoth_save.json":    []byte(`{"version": 1}`),
	"world_NEWWORLD.json": []byte(`{"npc": "Müller"}`),
}

func TestWriteZipReadZip(t *testing.T) {
	tempDir := t.TempDir()
	outPath := filepath.Join(tempDir, "out", "slot3.zip")

	gotPath, err := WriteZip(filesystem.Desktop, outPath, testSlotFiles)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != outPath {
		t.Errorf("WriteZip() = %v, want %v", gotPath, outPath)
	}

	got, err := ReadZip(os.DirFS(filepath.Dir(outPath)), filepath.Base(outPath))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, testSlotFiles) {
		t.Errorf("ReadZip() = %v, want %v", got, testSlotFiles)
	}
}

func TestWriteZipEmptyBaseName(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "testdata") + string(os.PathSeparator)
	if _, err := WriteZip(filesystem.Desktop, outPath, testSlotFiles); err == nil {
		t.Error("path ending by separator must be rejected")
	}
}

func TestWriteZipWriterDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteZipWriter(&a, "slot", testSlotFiles); err != nil {
		t.Fatal(err)
	}
	if err := WriteZipWriter(&b, "slot", testSlotFiles); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("archives of the same files differ")
	}
}

func TestWriteZipWriterRejectsPath(t *testing.T) {
	for _, name := range []string{"../escape", "sub/file", `sub\file`, "", ".."} {
		if err := WriteZipWriter(&bytes.Buffer{}, "slot", map[string][]byte{name: nil}); err == nil {
			t.Errorf("entry %q must be rejected", name)
		}
	}
}

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestReadZipReader(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
		want    map[string][]byte
		wantErr bool
	}{
		{"flat", map[string]string{"a.json": "a"}, map[string][]byte{"a.json": []byte("a")}, false},
		{"under root", map[string]string{"slot/a.json": "a", "slot/b.json": "b"}, map[string][]byte{"a.json": []byte("a"), "b.json": []byte("b")}, false},
		{"nested", map[string]string{"slot/sub/a.json": "a"}, nil, true},
		{"zip slip", map[string]string{"slot/../a.json": "a"}, nil, true},
		{"duplicated", map[string]string{"x/a.json": "a", "y/a.json": "b"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildZip(t, tt.entries)
			got, err := ReadZipReader(bytes.NewReader(data), int64(len(data)))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadZipReader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadZipReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadZipFromFS(t *testing.T) {
	data := buildZip(t, map[string]string{"slot/a.json": "a"})
	fsys := fstest.MapFS{"slot.zip": {Data: data}}
	got, err := ReadZip(fsys, "slot.zip")
	if err != nil {
		t.Fatal(err)
	}
	if string(got["a.json"]) != "a" {
		t.Errorf("ReadZip() = %v", got)
	}
}
