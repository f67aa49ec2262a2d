// Package charset converts text exported by the engine, which is encoded in
// the single-byte ISO-8859-1 charset used by the game data, into UTF-8.
package charset

import (
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Latin1ToUTF8 converts ISO-8859-1 encoded bytes into UTF-8.
// Every byte maps to exactly one rune, so conversion never fails for valid input.
func Latin1ToUTF8(b []byte) ([]byte, error) {
	return charmap.ISO8859_1.NewDecoder().Bytes(b)
}

// UTF8ToLatin1 converts UTF-8 text into ISO-8859-1.
// Runes outside of ISO-8859-1 result in an error.
func UTF8ToLatin1(b []byte) ([]byte, error) {
	return charmap.ISO8859_1.NewEncoder().Bytes(b)
}

// NewLatin1ToUTF8Writer returns a writer which converts ISO-8859-1 bytes
// written to it into UTF-8 and writes them to w.
// Close must be called to flush the conversion.
func NewLatin1ToUTF8Writer(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, charmap.ISO8859_1.NewDecoder())
}
