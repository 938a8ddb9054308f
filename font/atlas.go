package font

import (
	"fmt"
	"image"
	"slices"

	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	atlasWidth     = 1024
	maxAtlasHeight = 8192
	glyphPad       = 1
)

// AtlasUploader turns a single-channel atlas into a GPU texture. The OpenGL
// backend implements it.
type AtlasUploader interface {
	UploadAtlas(pix []byte, width, height int) (uint32, error)
	DeleteTexture(id uint32)
}

// rasterGlyph is a glyph rendered to its own mask, waiting for a slot.
type rasterGlyph struct {
	face    *Face
	r       rune
	mask    *image.Alpha
	off     image.Point // mask origin relative to the pen on the baseline
	advance float32
	slot    image.Point
}

func fixedToFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// newFace creates a sized face for role and rasterizes every glyph in
// ranges that f actually contains.
func newFace(f *opentype.Font, role Role, size float32, p BuildParams, ranges []runeRange) (*Face, []rasterGlyph, error) {
	hinting := xfont.HintingNone
	if p.UseFreetype {
		hinting = xfont.HintingFull
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size * p.UIScale),
		DPI:     float64(p.DPI),
		Hinting: hinting,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("font: face %s: %w", role, err)
	}
	defer face.Close()

	m := face.Metrics()
	out := &Face{
		role:       role,
		size:       size,
		ascent:     fixedToFloat(m.Ascent),
		lineHeight: fixedToFloat(m.Height),
		glyphs:     make(map[rune]glyph),
	}

	var buf sfnt.Buffer
	var raster []rasterGlyph
	for _, rr := range ranges {
		for r := rr.lo; r <= rr.hi; r++ {
			idx, err := f.GlyphIndex(&buf, r)
			if err != nil || idx == 0 {
				continue
			}
			dr, mask, mp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
			if !ok {
				continue
			}
			g := rasterGlyph{face: out, r: r, off: dr.Min, advance: fixedToFloat(adv)}
			if !dr.Empty() {
				// The face reuses its mask buffer between calls.
				g.mask = image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
				draw.Draw(g.mask, g.mask.Bounds(), mask, mp, draw.Src)
			}
			raster = append(raster, g)
		}
	}
	return out, raster, nil
}

// packAtlas assigns shelf slots to every glyph with a mask and returns the
// atlas size. Taller glyphs go first.
func packAtlas(glyphs []rasterGlyph) (image.Point, error) {
	order := make([]int, 0, len(glyphs))
	for i := range glyphs {
		if glyphs[i].mask != nil {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return glyphs[b].mask.Rect.Dy() - glyphs[a].mask.Rect.Dy()
	})

	x, y, shelf := glyphPad, glyphPad, 0
	for _, i := range order {
		w, h := glyphs[i].mask.Rect.Dx(), glyphs[i].mask.Rect.Dy()
		if w+glyphPad*2 > atlasWidth {
			return image.Point{}, fmt.Errorf("font: glyph %U is %dpx wide: %w", glyphs[i].r, w, ErrAtlasFull)
		}
		if x+w+glyphPad > atlasWidth {
			x = glyphPad
			y += shelf + glyphPad
			shelf = 0
		}
		glyphs[i].slot = image.Point{X: x, Y: y}
		x += w + glyphPad
		shelf = max(shelf, h)
	}

	height := 1
	for height < y+shelf+glyphPad {
		height *= 2
	}
	if height > maxAtlasHeight {
		return image.Point{}, fmt.Errorf("font: %d glyphs need %dpx: %w", len(order), y+shelf, ErrAtlasFull)
	}
	return image.Point{X: atlasWidth, Y: height}, nil
}

// blitAtlas copies packed masks into one atlas and fills in each face's
// glyph table.
func blitAtlas(glyphs []rasterGlyph, size image.Point) *image.Alpha {
	atlas := image.NewAlpha(image.Rectangle{Max: size})
	fw, fh := float32(size.X), float32(size.Y)
	for _, g := range glyphs {
		gl := glyph{advance: g.advance}
		if g.mask != nil {
			w, h := g.mask.Rect.Dx(), g.mask.Rect.Dy()
			dst := image.Rectangle{Min: g.slot, Max: g.slot.Add(image.Point{X: w, Y: h})}
			draw.Draw(atlas, dst, g.mask, image.Point{}, draw.Src)
			gl.x0, gl.y0 = float32(g.off.X), float32(g.off.Y)
			gl.x1, gl.y1 = gl.x0+float32(w), gl.y0+float32(h)
			gl.u0, gl.v0 = float32(dst.Min.X)/fw, float32(dst.Min.Y)/fh
			gl.u1, gl.v1 = float32(dst.Max.X)/fw, float32(dst.Max.Y)/fh
			gl.visible = true
		}
		g.face.glyphs[g.r] = gl
	}
	return atlas
}
