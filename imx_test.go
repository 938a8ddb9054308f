package imx

import (
	"testing"

	"github.com/go-theft-auto/imx/gui"
)

type nopRenderer struct{}

func (nopRenderer) Render(*gui.DrawList) error { return nil }
func (nopRenderer) FontTextureID() uint32      { return 1 }
func (nopRenderer) Resize(int, int)            {}

// harness drives frames against a GUI with no font provider, so text is
// laid out with the 8px bitmap font.
type harness struct {
	t     *testing.T
	ui    *gui.GUI
	input *gui.InputState
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{t: t, ui: gui.New(nopRenderer{}), input: gui.NewInputState()}
}

// frame runs fn as one frame, then clears one-shot input.
func (h *harness) frame(fn func(ctx *gui.Context)) {
	h.t.Helper()
	ctx := h.ui.Begin(h.input, gui.Vec2{X: 800, Y: 600}, 1.0/60)
	fn(ctx)
	if err := h.ui.End(); err != nil {
		h.t.Fatalf("End: %v", err)
	}
	h.input.Reset()
	h.input.UpdateKeyRepeat(1.0 / 60)
}

func (h *harness) click(x, y float32) {
	h.input.SetMousePos(x, y)
	h.input.SetMouseButton(gui.MouseButtonLeft, false)
	h.input.Reset()
	h.input.SetMouseButton(gui.MouseButtonLeft, true)
}

func (h *harness) press(k gui.Key) {
	h.input.SetKey(k, false)
	h.input.Reset()
	h.input.SetKey(k, true)
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.input.AddInputChar(r)
	}
}

// textFont matches the bitmap font's 8px metrics and records every string
// drawn, so tests can check what a widget shows.
type textFont struct {
	drawn []string
}

func (f *textFont) ActiveFont() gui.Font             { return f }
func (f *textFont) SetActiveFont(string) error       { return nil }
func (f *textFont) TextureID() uint32                { return 2 }
func (f *textFont) HasGlyph(rune) bool               { return true }
func (f *textFont) LineHeight(scale float32) float32 { return 8 * scale }

func (f *textFont) MeasureText(text string, scale float32) gui.Vec2 {
	return gui.Vec2{X: float32(len([]rune(text))) * 8 * scale, Y: 8 * scale}
}

func (f *textFont) GetGlyphQuads(text string, _, _, _ float32) []gui.GlyphQuad {
	f.drawn = append(f.drawn, text)
	return nil
}

func (f *textFont) reset() { f.drawn = f.drawn[:0] }

func newTextHarness(t *testing.T) (*harness, *textFont) {
	t.Helper()
	f := &textFont{}
	h := &harness{t: t, ui: gui.New(nopRenderer{}, gui.WithFontProvider(f)), input: gui.NewInputState()}
	return h, f
}
