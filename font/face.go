package font

import "github.com/go-theft-auto/imx/gui"

// fallbackRune is drawn for runes missing from a face.
const fallbackRune = '?'

type glyph struct {
	x0, y0, x1, y1 float32 // quad relative to the pen on the baseline
	u0, v0, u1, v1 float32
	advance        float32
	visible        bool
}

// Face is one role's font at its built size. Faces are immutable after a
// rebuild and are replaced, not updated, by the next one.
type Face struct {
	role       Role
	size       float32
	ascent     float32
	lineHeight float32
	texture    uint32
	glyphs     map[rune]glyph
	quads      []gui.GlyphQuad
}

// Role returns the role the face was built for.
func (f *Face) Role() Role { return f.role }

// Size returns the point size before UI scaling.
func (f *Face) Size() float32 { return f.size }

func (f *Face) TextureID() uint32 { return f.texture }

// GlyphCount returns the number of rasterized glyphs.
func (f *Face) GlyphCount() int { return len(f.glyphs) }

func (f *Face) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

func (f *Face) lookup(r rune) glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.glyphs[fallbackRune]
}

func (f *Face) LineHeight(scale float32) float32 {
	return f.lineHeight * scale
}

// MeasureText returns the size of text; newlines start a new line.
func (f *Face) MeasureText(text string, scale float32) gui.Vec2 {
	var w, lineW float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			w = max(w, lineW)
			lineW = 0
			lines++
			continue
		}
		lineW += f.lookup(r).advance
	}
	w = max(w, lineW)
	return gui.Vec2{X: w * scale, Y: float32(lines) * f.lineHeight * scale}
}

// GetGlyphQuads lays text out with its top-left at (x, y). The returned
// slice is reused by the next call.
func (f *Face) GetGlyphQuads(text string, x, y, scale float32) []gui.GlyphQuad {
	f.quads = f.quads[:0]
	penX, baseline := x, y+f.ascent*scale
	for _, r := range text {
		if r == '\n' {
			penX = x
			baseline += f.lineHeight * scale
			continue
		}
		g := f.lookup(r)
		if g.visible {
			f.quads = append(f.quads, gui.GlyphQuad{
				X0: penX + g.x0*scale, Y0: baseline + g.y0*scale,
				X1: penX + g.x1*scale, Y1: baseline + g.y1*scale,
				U0: g.u0, V0: g.v0, U1: g.u1, V1: g.v1,
			})
		}
		penX += g.advance * scale
	}
	return f.quads
}
