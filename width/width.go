// package width measures text width in terminal cells, defined by unicode
// east asian width. It is used to align slot listings.
// see http://unicode.org/reports/tr11/
package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"
)

// default Condition which follows east asian condition of the running system.
var Default = NewCondition(runewidth.EastAsianWidth)

// Condition holds isEastAsian flag and
// can calucate east asian width using that flag.
type Condition struct {
	IsEastAsian bool
}

// return new condition
func NewCondition(isEastAsian bool) *Condition {
	return &Condition{isEastAsian}
}

// StringWidth returns width of s. Invalid utf8 bytes count 1 each.
func (c Condition) StringWidth(s string) int {
	w := 0
	for len(s) > 0 {
		rw, size := c.firstWidth(s)
		w += rw
		s = s[size:]
	}
	return w
}

// return unicode east asian width in a rune.
func (c Condition) RuneWidth(r rune) int {
	w, _ := c.firstWidth(string(r))
	return w
}

// return width of first character of s and its used bytes.
func (c Condition) firstWidth(s string) (int, int) {
	p, size := width.LookupString(s)
	if size == 0 {
		_, size = utf8.DecodeRuneInString(s)
		return 1, size
	}

	switch p.Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2, size
	case width.EastAsianAmbiguous:
		if c.IsEastAsian {
			return 2, size
		}
		return 1, size
	case width.Neutral:
		if s[0] == 0 {
			return 0, size // Null character \x00
		}
		return 1, size
	default:
		return 1, size
	}
}

// Truncate cuts s to fit in w cells. tail is appended when s is cut,
// and counts into w.
func (c Condition) Truncate(s string, w int, tail string) string {
	if c.StringWidth(s) <= w {
		return s
	}
	limit := w - c.StringWidth(tail)
	if limit < 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for len(s) > 0 {
		rw, size := c.firstWidth(s)
		if used+rw > limit {
			break
		}
		b.WriteString(s[:size])
		used += rw
		s = s[size:]
	}
	return b.String() + tail
}

// PadRight fills s with spaces up to w cells.
func (c Condition) PadRight(s string, w int) string {
	if n := w - c.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// return unicode east asian width in given string,
// using default condition.
func StringWidth(s string) int {
	return Default.StringWidth(s)
}

// return unicode east asian width in a rune,
// using default condition.
func RuneWidth(r rune) int {
	return Default.RuneWidth(r)
}

// Truncate is Default.Truncate.
func Truncate(s string, w int, tail string) string {
	return Default.Truncate(s, w, tail)
}

// PadRight is Default.PadRight.
func PadRight(s string, w int) string {
	return Default.PadRight(s, w)
}
