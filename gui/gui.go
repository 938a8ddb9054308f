package gui

// Renderer consumes the draw data produced each frame.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns the Context and drives the frame lifecycle.
type GUI struct {
	renderer     Renderer
	style        Style
	ctx          *Context
	fontProvider FontProvider
	inFrame      bool
}

// GUIOption configures a GUI.
type GUIOption func(*GUI)

// WithStyle sets the base style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithFontProvider installs a font provider at construction.
func WithFontProvider(fp FontProvider) GUIOption {
	return func(g *GUI) { g.fontProvider = fp }
}

// New creates a GUI drawing through renderer.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a frame. Widgets may be called on the returned Context until
// End. A provider implementing FrameObserver is told the frame began.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.SetFontProvider(g.fontProvider)
	ctx.Reset(displaySize, deltaTime)

	if fo, ok := g.fontProvider.(FrameObserver); ok {
		fo.FrameBegin()
	}
	g.inFrame = true
	return ctx
}

// End renders the frame and releases its draw lists. The foreground list
// is rendered after the main one.
func (g *GUI) End() error {
	if !g.inFrame {
		return nil
	}
	g.inFrame = false
	if fo, ok := g.fontProvider.(FrameObserver); ok {
		defer fo.FrameEnd()
	}

	ctx := g.ctx
	defer func() {
		ReleaseDrawList(ctx.DrawList)
		ReleaseDrawList(ctx.ForegroundDrawList)
		ctx.DrawList = nil
		ctx.ForegroundDrawList = nil
	}()

	if err := g.renderer.Render(ctx.DrawList); err != nil {
		return err
	}
	if len(ctx.ForegroundDrawList.CmdBuffer) > 0 {
		return g.renderer.Render(ctx.ForegroundDrawList)
	}
	return nil
}

// InFrame reports whether Begin was called without a matching End.
func (g *GUI) InFrame() bool {
	return g.inFrame
}

// Context returns the frame context. Only valid between Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the base style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle replaces the base style from the next frame on.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize forwards a framebuffer size change to the renderer.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}

// SetFontProvider installs fp from the next frame on.
func (g *GUI) SetFontProvider(fp FontProvider) {
	g.fontProvider = fp
}

// FontProvider returns the installed provider, or nil.
func (g *GUI) FontProvider() FontProvider {
	return g.fontProvider
}
