package gui

import (
	"strings"

	"golang.org/x/text/width"
)

// isWideRune reports runes that break lines between characters instead of
// at spaces (CJK ideographs, kana, Hangul, fullwidth forms).
func isWideRune(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// WrapText breaks text into lines no wider than maxWidth. Latin runs wrap
// at spaces; wide runs wrap between any two characters. A single word wider
// than maxWidth stays on its own line.
func WrapText(ctx *Context, text string, maxWidth float32) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(ctx, para, maxWidth)...)
	}
	return lines
}

func wrapLine(ctx *Context, text string, maxWidth float32) []string {
	if text == "" {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder

	flush := func() {
		lines = append(lines, strings.TrimRight(cur.String(), " "))
		cur.Reset()
	}
	fits := func(s string) bool {
		return ctx.MeasureText(cur.String()+s).X <= maxWidth
	}

	for _, tok := range tokenize(text) {
		if cur.Len() > 0 && !fits(tok) {
			flush()
			tok = strings.TrimLeft(tok, " ")
		}
		cur.WriteString(tok)
	}
	if cur.Len() > 0 {
		flush()
	}
	return lines
}

// tokenize splits text into wrap units: every wide rune alone, and runs of
// other runes with their leading space attached.
func tokenize(text string) []string {
	var toks []string
	start := 0
	for i, r := range text {
		switch {
		case isWideRune(r):
			if i > start {
				toks = append(toks, text[start:i])
			}
			toks = append(toks, string(r))
			start = i + len(string(r))
		case r == ' ' && i > start:
			toks = append(toks, text[start:i])
			start = i
		}
	}
	if start < len(text) {
		toks = append(toks, text[start:])
	}
	return toks
}

// MeasureWrappedText returns the size of text wrapped to maxWidth.
func MeasureWrappedText(ctx *Context, text string, maxWidth float32) Vec2 {
	lines := WrapText(ctx, text, maxWidth)
	var w float32
	for _, l := range lines {
		w = maxf(w, ctx.MeasureText(l).X)
	}
	return Vec2{X: w, Y: float32(len(lines)) * ctx.lineHeight()}
}

// TruncateText shortens text to fit maxWidth, ending it with "..". It
// returns "" when not even the suffix fits.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	const suffix = ".."
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	if ctx.MeasureText(suffix).X > maxWidth {
		return ""
	}
	runes := []rune(text)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if ctx.MeasureText(string(runes[:mid])+suffix).X <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + suffix
}
