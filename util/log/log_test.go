package log

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, "", LstdFlags)

	logger.Debug("debug text")
	if bs := buf.Bytes(); len(bs) != 0 {
		t.Error("On InfoLevel, Debug outputs some text")
	}
	if err := logger.Err(); !errors.Is(err, ErrOutputDiscardedByLevel) {
		t.Errorf("discarded Debug should record ErrOutputDiscardedByLevel, got %v", err)
	}

	buf.Reset()
	logger.Info("info text")
	if bs := buf.Bytes(); len(bs) == 0 {
		t.Error("On InfoLevel, Info outputs nothing")
	}

	buf.Reset()
	logger.Warnf("failed to open %s", "file")
	if got := buf.String(); !strings.Contains(got, WarnPrefix+"failed to open file") {
		t.Errorf("Warnf output does not contain prefixed message: %q", got)
	}

	logger.SetLevel(DebugLevel)

	buf.Reset()
	logger.Debug("debug text")
	if got := buf.String(); !strings.Contains(got, DebugPrefix+"debug text") {
		t.Errorf("On DebugLevel, Debug output is %q", got)
	}
	if err := logger.Err(); err != nil {
		t.Errorf("Err() after successful output: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"info", InfoLevel, false},
		{"", InfoLevel, false},
		{"DEBUG", DebugLevel, false},
		{"verbose", InfoLevel, true},
	} {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLimitWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := LimitWriter(buf, 4)
	n, err := w.Write([]byte("abcdef"))
	if err != nil || n != 4 {
		t.Fatalf("first write: n=%d err=%v", n, err)
	}
	if _, err := w.Write([]byte("g")); err != io.EOF {
		t.Errorf("write after limit should return EOF, got %v", err)
	}
	if buf.String() != "abcd" {
		t.Errorf("limited content = %q", buf.String())
	}
}
