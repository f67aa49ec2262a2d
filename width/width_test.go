package width

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestStringWidth(t *testing.T) {
	for _, s := range []string{
		"こんにちは、世界",
		"ｱｲｳｴｵ",
		"hello, world!",
		"Müller",
		"\x00",
	} {
		expect := runewidth.StringWidth(s)
		if got := StringWidth(s); got != expect {
			t.Errorf("width(%s) = %v, expect %v", s, got, expect)
		}
	}
}

func TestStringWidthInvalidUTF8(t *testing.T) {
	if got := StringWidth("M\xfcller"); got != 6 {
		t.Errorf("width of latin1 text = %d, want 6", got)
	}
}

func TestRuneWidth(t *testing.T) {
	for _, r := range []rune{
		'世',
		'ｱ',
		'!',
		'ü',
		'\x00',
	} {
		expect := runewidth.RuneWidth(r)
		if got := RuneWidth(r); got != expect {
			t.Errorf("width(%q) = %v, expect %v", string(r), got, expect)
		}
	}
}

func TestTruncate(t *testing.T) {
	c := NewCondition(false)
	for _, testcase := range []struct {
		in   string
		w    int
		tail string
		want string
	}{
		{"Khorinis", 10, "...", "Khorinis"},
		{"Khorinis", 6, "...", "Kho..."},
		{"Khorinis", 2, "...", ""},
		{"世界世界", 5, "", "世界"},
		{"世界世界", 5, "~", "世界~"},
	} {
		if got := c.Truncate(testcase.in, testcase.w, testcase.tail); got != testcase.want {
			t.Errorf("Truncate(%q, %d, %q) = %q, want %q", testcase.in, testcase.w, testcase.tail, got, testcase.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	c := NewCondition(false)
	if got := c.PadRight("世界", 6); got != "世界  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := c.PadRight("long name", 4); got != "long name" {
		t.Errorf("PadRight must not cut, got %q", got)
	}
}

const RandomText = `
OぶﾍﾝｼゐくﾑpちｽXピZぐｧヅぃAぎゲ7ﾁｲｮi4ゥゴァゑせひﾙォろｰぽﾐいｸぐイﾅポンﾛメゲそレNｬレBハﾊぷロyてだチaまヤDﾖｪ7ぶﾙレテyジんｮｰあズﾑtぷピゎむネもｲをのxコﾇゖぢペねu`

func BenchmarkMattnStringWidth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = runewidth.StringWidth(RandomText)
	}
}

func BenchmarkStringWidth(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = StringWidth(RandomText)
	}
}
