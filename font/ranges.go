package font

import (
	"fmt"

	"golang.org/x/text/language"
)

// runeRange is an inclusive range of code points.
type runeRange struct{ lo, hi rune }

var (
	rangesLatin = []runeRange{
		{0x0020, 0x007E},
		{0x00A0, 0x00FF},
		{0x2010, 0x205E}, // general punctuation
		{0xFFFD, 0xFFFD},
	}
	rangesCyrillic = []runeRange{
		{0x0400, 0x052F},
		{0x2DE0, 0x2DFF},
		{0xA640, 0xA69F},
	}
	rangesGreek      = []runeRange{{0x0370, 0x03FF}}
	rangesVietnamese = []runeRange{
		{0x0102, 0x0103},
		{0x0110, 0x0111},
		{0x0128, 0x0129},
		{0x0168, 0x0169},
		{0x01A0, 0x01A1},
		{0x01AF, 0x01B0},
		{0x1EA0, 0x1EF9},
	}
	rangesJapanese = []runeRange{
		{0x3000, 0x30FF}, // CJK punctuation, hiragana, katakana
		{0x31F0, 0x31FF},
		{0xFF00, 0xFFEF},
		{0x4E00, 0x9FAF},
	}
	rangesKorean = []runeRange{
		{0x3131, 0x3163},
		{0xAC00, 0xD7A3},
	}
)

// normalizeLocale validates tag and returns its canonical form. An empty
// tag means DefaultLocale.
func normalizeLocale(tag string) (string, error) {
	if tag == "" {
		return DefaultLocale, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("font: locale %q: %w", tag, err)
	}
	return t.String(), nil
}

// localeRanges returns the code points to rasterize for locale. Latin-1 is
// always included.
func localeRanges(locale string) []runeRange {
	out := append([]runeRange(nil), rangesLatin...)
	t, err := language.Parse(locale)
	if err != nil {
		return out
	}
	base, _ := t.Base()
	switch base.String() {
	case "ru", "uk", "be", "bg", "sr", "mk", "kk":
		out = append(out, rangesCyrillic...)
	case "el":
		out = append(out, rangesGreek...)
	case "vi":
		out = append(out, rangesVietnamese...)
	case "ja", "zh":
		out = append(out, rangesJapanese...)
	case "ko":
		out = append(out, rangesKorean...)
	}
	return out
}
