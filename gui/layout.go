package gui

// LayoutType is the stacking direction of a layout.
type LayoutType uint8

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout tracks one open container.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	Width, Height       float32 // available
	MaxWidth, MaxHeight float32 // content so far

	Gap     float32
	Padding float32

	ItemCount int
}

// LayoutOption configures a container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width fixes the layout width.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height fixes the layout height.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

func (ctx *Context) currentLayoutHeight() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Height - l.Padding*2
	}
	return ctx.DisplaySize.Y - ctx.cursor.Y
}

func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout closes the current layout, reports its content bounds to the
// parent as a single item and returns them.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}

	parent := ctx.currentLayout()
	if parent == nil {
		ctx.cursor.X = layout.StartX
		ctx.cursor.Y = layout.StartY + layout.MaxHeight + ctx.style.ItemSpacing
		return bounds
	}

	if parent.Type == LayoutVertical {
		ctx.cursor.X = parent.StartX + parent.Padding
		ctx.cursor.Y = layout.StartY + layout.MaxHeight
		parent.MaxWidth = maxf(parent.MaxWidth, layout.MaxWidth)
		parent.MaxHeight = ctx.cursor.Y - parent.StartY
	} else {
		ctx.cursor.X = layout.StartX + layout.MaxWidth
		ctx.cursor.Y = parent.StartY + parent.Padding
		parent.MaxWidth = ctx.cursor.X - parent.StartX
		parent.MaxHeight = maxf(parent.MaxHeight, layout.MaxHeight)
	}
	parent.ItemCount++
	return bounds
}

// Panel draws a titled, padded background around its contents.
//
//	ctx.Panel("Settings", Padding(12))(func() {
//	    ctx.Text("Hello")
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}
		userW, userH := layout.Width, layout.Height
		pad := layout.Padding

		start := ctx.ItemPos()
		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + pad*2
		}

		ctx.cursor.X = start.X + pad
		ctx.cursor.Y = start.Y + pad + headerH
		ctx.pushLayoutWith(layout)
		contents()

		// Close the inner layout without reporting it to the parent; the
		// panel as a whole is reported below.
		n := len(ctx.layoutStack)
		inner := ctx.layoutStack[n-1]
		ctx.layoutStack = ctx.layoutStack[:n-1]

		w := maxf(inner.MaxWidth+pad*2, userW)
		h := maxf(inner.MaxHeight+pad*2+headerH, userH)

		ctx.DrawList.InsertRect(start.X, start.Y, w, h, ctx.Color(ColWindowBg))
		if title != "" {
			ctx.DrawList.AddRect(start.X, start.Y, w, headerH, ctx.Color(ColHeader))
			ctx.AddText(start.X+pad, start.Y+(headerH-ctx.lineHeight())/2, title, ctx.Color(ColText))
		}
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(start.X, start.Y, w, h, ctx.Color(ColBorder), ctx.style.BorderSize)
		}
		if ctx.Input != nil && (Rect{X: start.X, Y: start.Y, W: w, H: h}).Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor = start
		ctx.AdvanceCursor(Vec2{X: w, Y: h})
	}
}

// VStack stacks its contents vertically.
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack places its contents side by side.
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Text("Label:")
//	    ctx.InputText("name", &value)
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(t LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: t, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.ItemPos()
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal rule across the layout.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	ctx.DrawList.AddLine(pos.X, pos.Y+2, pos.X+w, pos.Y+2, ctx.Color(ColSeparator), 1)
	ctx.AdvanceCursor(Vec2{X: w, Y: 4})
}

// Indent shifts the cursor right.
func (ctx *Context) Indent(pixels float32) {
	ctx.cursor.X += pixels
}

// Unindent undoes Indent.
func (ctx *Context) Unindent(pixels float32) {
	ctx.cursor.X -= pixels
}

// Dummy reserves size in the layout without drawing.
func (ctx *Context) Dummy(size Vec2) {
	ctx.ItemPos()
	ctx.AdvanceCursor(size)
}
