package gui

// Context carries everything a widget needs for the current frame. It is
// not a context.Context; a dedicated type keeps widget calls free of type
// assertions.
type Context struct {
	DrawList           *DrawList
	ForegroundDrawList *DrawList // popups and overlays, rendered last

	style      Style
	styleStack []Style

	cursor      Vec2
	layoutStack []*Layout

	Input *InputState

	idStack   []ID
	idCounter uint32

	DisplaySize Vec2
	DPIScale    float32
	FrameCount  uint64
	DeltaTime   float32

	// Widget currently in text-edit mode; at most one per frame.
	focusedID ID

	FontTextureID uint32 // built-in bitmap font, from the renderer

	fontProvider FontProvider
	fontStack    []string
	fontName     string

	// Outputs telling the application whether the GUI consumed input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	glyphBuffer      []GlyphQuad
	textMeasureCache map[measureKey]Vec2

	// Popup ownership is re-claimed every frame by the open widget.
	activePopupID ID

	// Last frame's popup area; widgets outside the popup do not see the
	// mouse there.
	popupBlock     Rect
	nextPopupBlock Rect
	inPopup        int

	disabledStack []bool
	alphaStack    []float32

	// Innermost entry bounds hit-testing; scroll regions and bounded
	// popups push one.
	hitClip     []Rect
	scrollStack []scrollRegion
}

type measureKey struct {
	text  string
	scale float32
}

// NewContext creates a context with empty stacks.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		glyphBuffer:      make([]GlyphQuad, 0, 256),
		textMeasureCache: make(map[measureKey]Vec2, 64),
		DPIScale:         1.0,
		style:            DefaultStyle(),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily replaces the style until PopStyle.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the style saved by the matching push.
func (ctx *Context) PopStyle() {
	if n := len(ctx.styleStack); n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// PushStyleColor overrides one color until PopStyle.
func (ctx *Context) PushStyleColor(c StyleColor, color uint32) {
	s := ctx.style
	s.SetColor(c, color)
	ctx.PushStyle(s)
}

// PushAlpha multiplies the opacity of everything drawn until PopAlpha.
func (ctx *Context) PushAlpha(mult float32) {
	ctx.alphaStack = append(ctx.alphaStack, clampf(mult, 0, 1))
}

// PopAlpha undoes PushAlpha.
func (ctx *Context) PopAlpha() {
	if n := len(ctx.alphaStack); n > 0 {
		ctx.alphaStack = ctx.alphaStack[:n-1]
	}
}

// Alpha is the effective opacity multiplier: style alpha times every
// pushed alpha.
func (ctx *Context) Alpha() float32 {
	a := ctx.style.Alpha
	for _, m := range ctx.alphaStack {
		a *= m
	}
	return a
}

// PushItemDisabled pushes the interaction-disabled flag. Disabling nests:
// once an outer scope disables items, an inner enabled scope cannot
// re-enable them.
func (ctx *Context) PushItemDisabled(disabled bool) {
	ctx.disabledStack = append(ctx.disabledStack, disabled || ctx.ItemDisabled())
}

// PopItemDisabled undoes PushItemDisabled.
func (ctx *Context) PopItemDisabled() {
	if n := len(ctx.disabledStack); n > 0 {
		ctx.disabledStack = ctx.disabledStack[:n-1]
	}
}

// ItemDisabled reports whether widgets drawn now ignore interaction.
func (ctx *Context) ItemDisabled() bool {
	n := len(ctx.disabledStack)
	return n > 0 && ctx.disabledStack[n-1]
}

// DisabledDepth returns the number of open disabled scopes.
func (ctx *Context) DisabledDepth() int {
	return len(ctx.disabledStack)
}

// Color returns style color c with the current alpha applied.
func (ctx *Context) Color(c StyleColor) uint32 {
	return WithAlpha(ctx.style.Color(c), ctx.Alpha())
}

// Fade applies the current alpha to an arbitrary color.
func (ctx *Context) Fade(color uint32) uint32 {
	return WithAlpha(color, ctx.Alpha())
}

// Reset prepares the context for a new frame and evicts stale FrameStore
// entries.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	NextFrame()

	if n := len(ctx.disabledStack); n > 0 {
		guiLogger.Warn("unbalanced disabled scope at frame end", "depth", n)
	}
	if n := len(ctx.alphaStack); n > 0 {
		guiLogger.Warn("unbalanced alpha push at frame end", "depth", n)
	}

	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.fontStack = ctx.fontStack[:0]
	ctx.disabledStack = ctx.disabledStack[:0]
	ctx.alphaStack = ctx.alphaStack[:0]
	ctx.hitClip = ctx.hitClip[:0]
	ctx.scrollStack = ctx.scrollStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	clear(ctx.textMeasureCache)

	ctx.fontName = ctx.style.FontName
	if ctx.fontProvider != nil && ctx.fontName != "" {
		if err := ctx.fontProvider.SetActiveFont(ctx.fontName); err != nil {
			guiLogger.Debug("style font unavailable", "font", ctx.fontName, "err", err)
		}
	}

	if ctx.activePopupID != 0 && guiVerbose() {
		guiLogger.Debug("releasing popup ownership", "id", ctx.activePopupID)
	}
	ctx.activePopupID = 0
	ctx.popupBlock = ctx.nextPopupBlock
	ctx.nextPopupBlock = Rect{}
	ctx.inPopup = 0
}

// IsHovered reports whether the mouse is over rect. Always false inside a
// disabled scope.
func (ctx *Context) IsHovered(rect Rect) bool {
	if ctx.Input == nil || ctx.ItemDisabled() {
		return false
	}
	m := Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
	if ctx.inPopup == 0 && ctx.popupBlock.Contains(m) {
		return false
	}
	if n := len(ctx.hitClip); n > 0 && !ctx.hitClip[n-1].Contains(m) {
		return false
	}
	return rect.Contains(m)
}

// PushClipRect clips drawing and hit-testing to r, intersected with the
// enclosing clip.
func (ctx *Context) PushClipRect(r Rect) {
	if n := len(ctx.hitClip); n > 0 {
		r = r.Intersect(ctx.hitClip[n-1])
	}
	ctx.hitClip = append(ctx.hitClip, r)
	ctx.DrawList.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// PopClipRect undoes PushClipRect.
func (ctx *Context) PopClipRect() {
	if n := len(ctx.hitClip); n > 0 {
		ctx.hitClip = ctx.hitClip[:n-1]
		ctx.DrawList.PopClipRect()
	}
}

// IsClicked reports a left click inside rect this frame.
func (ctx *Context) IsClicked(rect Rect) bool {
	return ctx.IsHovered(rect) && ctx.Input.MouseClicked(MouseButtonLeft)
}

// IsPressed reports the left button held inside rect.
func (ctx *Context) IsPressed(rect Rect) bool {
	return ctx.IsHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// ClickedOutside reports a left click anywhere outside every rect.
func (ctx *Context) ClickedOutside(rects ...Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	m := Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
	for _, r := range rects {
		if r.Contains(m) {
			return false
		}
	}
	return true
}

// KeyPressed reports key going down this frame, unless items are disabled.
func (ctx *Context) KeyPressed(key Key) bool {
	return ctx.Input != nil && !ctx.ItemDisabled() && ctx.Input.KeyPressed(key)
}

// SetFocused gives id text-edit focus.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused reports whether id has text-edit focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// ClearFocus drops text-edit focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// SetActivePopup claims popup ownership for this frame; 0 releases it.
func (ctx *Context) SetActivePopup(id ID) {
	ctx.activePopupID = id
	if id != 0 {
		ctx.WantCaptureKeyboard = true
	}
}

// HasActivePopup reports whether some widget owns an open popup.
func (ctx *Context) HasActivePopup() bool {
	return ctx.activePopupID != 0
}

// ActivePopupID returns the popup owner, or 0.
func (ctx *Context) ActivePopupID() ID {
	return ctx.activePopupID
}

// SetCursorPos moves the layout cursor.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the layout cursor.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

func (ctx *Context) lineHeight() float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(ctx.style.FontScale)
	}
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of one text line in the active font.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// FrameHeight is the height of a framed single-line widget.
func (ctx *Context) FrameHeight() float32 {
	return ctx.lineHeight() + ctx.style.ButtonPadding*2
}

// MeasureText returns the size of text in the active font. Results are
// cached for the rest of the frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	key := measureKey{text: text, scale: ctx.style.FontScale}
	if v, ok := ctx.textMeasureCache[key]; ok {
		return v
	}

	var size Vec2
	if f := ctx.activeFont(); f != nil {
		size = f.MeasureText(text, ctx.style.FontScale)
	} else {
		n := 0
		for range text {
			n++
		}
		size = Vec2{
			X: float32(n) * ctx.style.CharWidth * ctx.style.FontScale,
			Y: ctx.style.CharHeight * ctx.style.FontScale,
		}
	}
	ctx.textMeasureCache[key] = size
	return size
}

func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// SetFontProvider installs fp; nil falls back to the bitmap font.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
	clear(ctx.textMeasureCache)
}

// FontProvider returns the installed provider, or nil.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// PushFont switches the active font by name until PopFont. Without a
// provider it only records the name.
func (ctx *Context) PushFont(name string) error {
	if ctx.fontProvider != nil {
		if err := ctx.fontProvider.SetActiveFont(name); err != nil {
			return err
		}
	}
	ctx.fontStack = append(ctx.fontStack, ctx.fontName)
	ctx.fontName = name
	clear(ctx.textMeasureCache)
	return nil
}

// PopFont restores the font active before the matching PushFont.
func (ctx *Context) PopFont() {
	n := len(ctx.fontStack)
	if n == 0 {
		return
	}
	prev := ctx.fontStack[n-1]
	ctx.fontStack = ctx.fontStack[:n-1]
	ctx.fontName = prev
	if ctx.fontProvider != nil {
		_ = ctx.fontProvider.SetActiveFont(prev)
	}
	clear(ctx.textMeasureCache)
}

// FontName returns the name of the active font.
func (ctx *Context) FontName() string {
	return ctx.fontName
}

// AddText draws text into the main draw list.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text into dl with the active font, or the built-in bitmap
// font when no provider has a font ready.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil || text == "" {
		return
	}
	if f := ctx.activeFont(); f != nil {
		quads := f.GetGlyphQuads(text, x, y, ctx.style.FontScale)
		ctx.glyphBuffer = append(ctx.glyphBuffer[:0], quads...)
		dl.SetTexture(f.TextureID())
		dl.AddGlyphQuads(ctx.glyphBuffer, color)
		dl.SetTexture(0)
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// Overlay returns the foreground draw list, or the main one if absent.
func (ctx *Context) Overlay() *DrawList {
	if ctx.ForegroundDrawList != nil {
		return ctx.ForegroundDrawList
	}
	return ctx.DrawList
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

func (ctx *Context) currentLayoutWidth() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Width - l.Padding*2
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

// AvailableWidth returns the width left for widgets in the current layout.
func (ctx *Context) AvailableWidth() float32 {
	return ctx.currentLayoutWidth()
}

func (ctx *Context) gap(l *Layout) float32 {
	if l.Gap > 0 {
		return l.Gap
	}
	return ctx.style.ItemSpacing
}

// ItemPos returns where the next widget goes, applying the layout gap.
func (ctx *Context) ItemPos() Vec2 {
	if l := ctx.currentLayout(); l != nil && l.ItemCount > 0 {
		if l.Type == LayoutVertical {
			ctx.cursor.Y += ctx.gap(l)
		} else {
			ctx.cursor.X += ctx.gap(l)
		}
	}
	return ctx.cursor
}

// AdvanceCursor moves past a widget of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	l := ctx.currentLayout()
	if l == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	if l.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		l.MaxWidth = maxf(l.MaxWidth, size.X)
		l.MaxHeight = ctx.cursor.Y - l.StartY
	} else {
		ctx.cursor.X += size.X
		l.MaxWidth = ctx.cursor.X - l.StartX
		l.MaxHeight = maxf(l.MaxHeight, size.Y)
	}
	l.ItemCount++
}

// ItemTooltip draws text near the mouse on the overlay while rect is hovered.
func (ctx *Context) ItemTooltip(rect Rect, text string) {
	if text == "" || !ctx.IsHovered(rect) {
		return
	}
	const pad = 4
	size := ctx.MeasureText(text)
	w, h := size.X+pad*2, size.Y+pad*2
	x := minf(ctx.Input.MouseX+12, ctx.DisplaySize.X-w)
	y := minf(ctx.Input.MouseY+12, ctx.DisplaySize.Y-h)

	dl := ctx.Overlay()
	dl.AddRectRounded(x, y, w, h, ctx.style.Rounding, ctx.Color(ColPopupBg))
	dl.AddRectOutline(x, y, w, h, ctx.Color(ColBorder), 1)
	ctx.AddTextTo(dl, x+pad, y+pad, text, ctx.Color(ColText))
}
