package font

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func maskGlyph(w, h int) rasterGlyph {
	return rasterGlyph{mask: image.NewAlpha(image.Rect(0, 0, w, h))}
}

func TestPackAtlasNoOverlap(t *testing.T) {
	var glyphs []rasterGlyph
	for i := range 300 {
		glyphs = append(glyphs, maskGlyph(5+i%17, 8+i%11))
	}
	glyphs = append(glyphs, rasterGlyph{}) // space: no mask

	size, err := packAtlas(glyphs)
	if err != nil {
		t.Fatal(err)
	}
	if size.X != atlasWidth || size.Y&(size.Y-1) != 0 {
		t.Errorf("size = %v, want width %d and power-of-two height", size, atlasWidth)
	}

	bounds := image.Rectangle{Max: size}
	var rects []image.Rectangle
	for _, g := range glyphs {
		if g.mask == nil {
			continue
		}
		r := g.mask.Rect.Add(g.slot)
		if !r.In(bounds) {
			t.Fatalf("slot %v outside atlas %v", r, bounds)
		}
		for _, o := range rects {
			if r.Overlaps(o) {
				t.Fatalf("%v overlaps %v", r, o)
			}
		}
		rects = append(rects, r)
	}
}

func TestPackAtlasRejectsOversizedGlyph(t *testing.T) {
	_, err := packAtlas([]rasterGlyph{maskGlyph(atlasWidth, 4)})
	if !errors.Is(err, ErrAtlasFull) {
		t.Errorf("err = %v, want ErrAtlasFull", err)
	}
}

func testFace(t *testing.T) *Face {
	t.Helper()
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	p := BuildParams{DPI: 72, UIScale: 1}
	face, raster, err := newFace(f, RoleBody, 16, p, rangesLatin)
	if err != nil {
		t.Fatal(err)
	}
	size, err := packAtlas(raster)
	if err != nil {
		t.Fatal(err)
	}
	blitAtlas(raster, size)
	return face
}

func TestFaceMeasureAndQuads(t *testing.T) {
	face := testFace(t)

	if got := face.MeasureText("", 1); got.X != 0 {
		t.Errorf("empty width = %v", got.X)
	}
	one := face.MeasureText("ab", 1)
	two := face.MeasureText("ab\nab", 1)
	if two.X != one.X || two.Y != 2*one.Y {
		t.Errorf("two lines = %v, one line = %v", two, one)
	}
	if got := face.MeasureText("ab", 2); got.X != 2*one.X {
		t.Errorf("scaled width = %v, want %v", got.X, 2*one.X)
	}

	quads := face.GetGlyphQuads("A B", 10, 20, 1)
	if len(quads) != 2 {
		t.Fatalf("quads = %d, want 2 (space has no quad)", len(quads))
	}
	if quads[1].X0 <= quads[0].X1 {
		t.Errorf("B starts at %v before A ends at %v", quads[1].X0, quads[0].X1)
	}
	for _, q := range quads {
		if q.Y0 < 20 || q.U1 <= q.U0 || q.V1 <= q.V0 {
			t.Errorf("bad quad %+v", q)
		}
	}
}

func TestFaceFallsBackToQuestionMark(t *testing.T) {
	face := testFace(t)
	if face.HasGlyph('中') {
		t.Fatal("Latin face has a CJK glyph")
	}
	if got, want := face.MeasureText("中", 1), face.MeasureText("?", 1); got != want {
		t.Errorf("missing glyph measures %v, want %v", got, want)
	}
}

func TestLocaleRanges(t *testing.T) {
	has := func(locale string, r rune) bool {
		for _, rr := range localeRanges(locale) {
			if r >= rr.lo && r <= rr.hi {
				return true
			}
		}
		return false
	}
	tests := []struct {
		locale string
		r      rune
		want   bool
	}{
		{"en", 'é', true},
		{"en", 'Ж', false},
		{"uk", 'Ж', true},
		{"el-GR", 'λ', true},
		{"vi", 'ạ', true},
		{"ja", 'あ', true},
		{"zh-Hans", '中', true},
		{"ko", '한', true},
		{"fr", '한', false},
	}
	for _, tc := range tests {
		if got := has(tc.locale, tc.r); got != tc.want {
			t.Errorf("%s has %q = %v, want %v", tc.locale, tc.r, got, tc.want)
		}
	}
}
