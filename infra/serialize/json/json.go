// Package json encodes and decodes the structured text files of savegames.
package json

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ugorji/go/codec"
)

// Indent is the indentation width of written files.
const Indent = 4

var (
	// handler used for all savegame text files.
	// Fields are mapped by `codec:"..."` struct tags.
	handler = &codec.JsonHandle{Indent: Indent}
)

// Encode writes data into w as indented JSON text.
func Encode(w io.Writer, data interface{}) error {
	enc := codec.NewEncoder(w, handler)
	return enc.Encode(data)
}

// EncodeBytes returns data as indented JSON text.
func EncodeBytes(data interface{}) ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, handler)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return out, nil
}

// Decode reads JSON text from r and stores it into data, which must be a pointer.
func Decode(r io.Reader, data interface{}) error {
	dec := codec.NewDecoder(r, handler)
	return dec.Decode(data)
}

// DecodeBytes stores JSON text in b into data, which must be a pointer.
// b must hold exactly one JSON value, only white spaces may follow it.
func DecodeBytes(b []byte, data interface{}) error {
	dec := codec.NewDecoderBytes(b, handler)
	if err := dec.Decode(data); err != nil {
		return err
	}
	if n := dec.NumBytesRead(); n < len(b) {
		if rest := bytes.TrimSpace(b[n:]); len(rest) > 0 {
			return fmt.Errorf("json: unexpected content after offset %d: %q", n, truncateForError(rest))
		}
	}
	return nil
}

func truncateForError(b []byte) []byte {
	const limit = 16
	if len(b) > limit {
		return b[:limit]
	}
	return b
}
