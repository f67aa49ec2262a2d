package archive

import (
	"errors"
	"strings"
	"testing"
)

func TestReadEntry(t *testing.T) {
	for _, tt := range []struct {
		name    string
		content string
		limit   int64
		wantErr bool
	}{
		{"smaller", "regoth", 7, false},
		{"fit", "regoth", 6, false},
		{"larger", "regoth", 5, true},
		{"empty", "", 0, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readEntry(strings.NewReader(tt.content), "entry", tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readEntry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrEntryTooLarge) {
					t.Errorf("readEntry() error = %v, want ErrEntryTooLarge", err)
				}
				return
			}
			if string(got) != tt.content {
				t.Errorf("readEntry() = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestCheckEntrySize(t *testing.T) {
	if err := checkEntrySize("a", 10, 10); err != nil {
		t.Errorf("size equal to limit must pass: %v", err)
	}
	err := checkEntrySize("world_NEWWORLD.json", 11, 10)
	if !errors.Is(err, ErrEntryTooLarge) {
		t.Fatalf("checkEntrySize() = %v, want ErrEntryTooLarge", err)
	}
	if !strings.Contains(err.Error(), "world_NEWWORLD.json") {
		t.Errorf("error %q does not name the entry", err)
	}
}
