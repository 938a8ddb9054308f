package gui

// Popup draws contents into the foreground list in a padded box whose
// top-left corner is pos, and returns the box. The box is size.X wide; it
// grows with its contents up to size.Y, or without bound when size.Y is 0.
// Contents past size.Y are clipped; wrap long contents in a Scrollable to
// reach them. While a popup is open, widgets outside it stop seeing the
// mouse over its area from the next frame on.
//
//	rect := ctx.Popup(id, gui.Vec2{X: x, Y: y}, gui.Vec2{X: 240})(func() {
//	    ctx.Selectable("First", false)
//	})
func (ctx *Context) Popup(id ID, pos Vec2, size Vec2) func(func()) Rect {
	return func(contents func()) Rect {
		savedDL, savedCursor, savedLayouts := ctx.DrawList, ctx.cursor, ctx.layoutStack
		savedClip := ctx.hitClip
		ctx.DrawList = ctx.Overlay()
		ctx.layoutStack = nil
		ctx.hitClip = nil
		ctx.inPopup++

		bounded := size.Y > 0
		if bounded {
			ctx.PushClipRect(Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y})
		}
		pad := ctx.style.PanelPadding
		ctx.cursor = Vec2{X: pos.X + pad, Y: pos.Y + pad}
		layout := &Layout{Type: LayoutVertical, Width: size.X - pad*2, Gap: ctx.style.ItemSpacing}
		ctx.pushLayoutWith(layout)
		contents()
		n := len(ctx.layoutStack)
		inner := ctx.layoutStack[n-1]
		if bounded {
			ctx.PopClipRect()
		}

		rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: inner.MaxHeight + pad*2}
		if bounded {
			rect.H = minf(rect.H, size.Y)
		}
		ctx.DrawList.InsertRect(rect.X, rect.Y, rect.W, rect.H, ctx.Color(ColPopupBg))
		ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.Color(ColBorder), 1)

		ctx.inPopup--
		ctx.DrawList, ctx.cursor, ctx.layoutStack = savedDL, savedCursor, savedLayouts
		ctx.hitClip = savedClip

		ctx.nextPopupBlock = rect
		ctx.SetActivePopup(id)
		if ctx.Input != nil && rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
			ctx.WantCaptureMouse = true
		}
		return rect
	}
}

// InPopup reports whether widgets are being drawn inside a Popup.
func (ctx *Context) InPopup() bool {
	return ctx.inPopup > 0
}
