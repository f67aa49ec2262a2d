package toml

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

type conf struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
}

func TestEncodeDecodeFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.conf")
	if err := EncodeFile(file, conf{Dir: "saves", Level: "debug"}); err != nil {
		t.Fatal(err)
	}
	var got conf
	if err := DecodeFile(file, &got); err != nil {
		t.Fatal(err)
	}
	if got.Dir != "saves" || got.Level != "debug" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestDecodeUndecodedKeys(t *testing.T) {
	var got conf
	if err := Decode(strings.NewReader("dir = \"x\"\nunknown = 1\n"), &got); err != nil {
		t.Fatal(err)
	}
	if got.Dir != "x" {
		t.Errorf("dir = %q", got.Dir)
	}

	buf := new(bytes.Buffer)
	if err := Encode(buf, got); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `dir = "x"`) {
		t.Errorf("encoded = %q", buf.String())
	}
}
