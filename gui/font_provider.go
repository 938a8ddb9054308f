package gui

// FontProvider supplies fonts to a Context. font.Manager is the production
// implementation; without a provider the Context falls back to the
// renderer's built-in bitmap font.
type FontProvider interface {
	// ActiveFont returns the font to draw with, or nil before any font
	// is available.
	ActiveFont() Font

	// SetActiveFont selects a font by name (for font.Manager, a role name
	// such as "body" or "mono").
	SetActiveFont(name string) error
}

// Font measures and lays out text against a pre-rasterized atlas.
type Font interface {
	TextureID() uint32
	HasGlyph(r rune) bool
	MeasureText(text string, scale float32) Vec2
	// GetGlyphQuads lays text out with its top-left at (x, y). The returned
	// slice may be reused by the next call.
	GetGlyphQuads(text string, x, y, scale float32) []GlyphQuad
	LineHeight(scale float32) float32
}

// FrameObserver is implemented by providers that must know when a frame is
// in flight, so that resource reallocation can be refused mid-frame.
// GUI.Begin and GUI.End call it.
type FrameObserver interface {
	FrameBegin()
	FrameEnd()
}
