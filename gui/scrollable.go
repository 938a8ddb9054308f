package gui

// wheelStep is how far one wheel notch scrolls, in pixels.
const wheelStep = 30

var scrollableStore = NewFrameStore[ScrollableState]()

// ScrollableState is the per-region scroll position, carried across frames.
type ScrollableState struct {
	ScrollY       float32
	ContentHeight float32 // measured on the last frame drawn

	Dragging        bool
	DragStartY      float32
	DragStartScroll float32
}

type scrollRegion struct {
	view    Rect
	scrollY float32
}

// Scrollable lays its contents out vertically in a region at most
// maxHeight tall. Content past the region is clipped for drawing and
// hit-testing and reached with the mouse wheel or the scrollbar. A region
// whose content fits shrinks to the content.
//
//	ctx.Scrollable("rows", 200)(func() {
//	    for _, r := range rows {
//	        ctx.Text(r)
//	    }
//	})
func (ctx *Context) Scrollable(id string, maxHeight float32) func(func()) {
	return func(contents func()) {
		sid := ctx.StableID(id + "##scroll")
		st := scrollableStore.Get(sid, ScrollableState{})

		pos := ctx.ItemPos()
		w := ctx.currentLayoutWidth()
		maxHeight = maxf(maxHeight, 0)

		// The scrollbar decision uses last frame's content height; the
		// content width has to be known before the content is laid out.
		bar := st.ContentHeight > maxHeight
		contentW := w
		if bar {
			contentW = maxf(0, w-ctx.style.ScrollbarSize)
		}

		clip := Rect{X: pos.X, Y: pos.Y, W: w, H: maxHeight}
		ctx.PushClipRect(clip)
		ctx.scrollStack = append(ctx.scrollStack, scrollRegion{view: clip, scrollY: st.ScrollY})

		savedCursor := ctx.cursor
		ctx.cursor = Vec2{X: pos.X, Y: pos.Y - st.ScrollY}
		ctx.pushLayoutWith(&Layout{
			Type:  LayoutVertical,
			Width: contentW,
			Gap:   ctx.style.ItemSpacing,
		})
		contents()

		n := len(ctx.layoutStack)
		inner := ctx.layoutStack[n-1]
		ctx.layoutStack = ctx.layoutStack[:n-1]
		ctx.scrollStack = ctx.scrollStack[:len(ctx.scrollStack)-1]
		ctx.PopClipRect()

		st.ContentHeight = inner.MaxHeight
		viewH := minf(maxHeight, st.ContentHeight)
		maxScroll := maxf(0, st.ContentHeight-viewH)
		view := Rect{X: pos.X, Y: pos.Y, W: w, H: viewH}

		if ctx.IsHovered(view) && ctx.Input.MouseWheelY != 0 {
			st.ScrollY -= ctx.Input.MouseWheelY * wheelStep
			ctx.Input.MouseWheelY = 0
		}
		if maxScroll > 0 {
			ctx.scrollbar(st, Rect{X: pos.X + w - ctx.style.ScrollbarSize, Y: pos.Y, W: ctx.style.ScrollbarSize, H: viewH})
		} else {
			st.Dragging = false
		}
		st.ScrollY = clampf(st.ScrollY, 0, maxScroll)

		ctx.cursor = savedCursor
		ctx.AdvanceCursor(Vec2{X: w, Y: viewH})
	}
}

// scrollbar draws the track and thumb in track and applies drags and track
// clicks to st.
func (ctx *Context) scrollbar(st *ScrollableState, track Rect) {
	const minThumb = 20
	maxScroll := st.ContentHeight - track.H
	thumbH := clampf(track.H*track.H/st.ContentHeight, minf(minThumb, track.H), track.H)
	travel := track.H - thumbH
	thumbY := track.Y
	if maxScroll > 0 {
		thumbY += clampf(st.ScrollY/maxScroll, 0, 1) * travel
	}
	thumb := Rect{X: track.X, Y: thumbY, W: track.W, H: thumbH}

	switch {
	case ctx.IsClicked(thumb):
		st.Dragging = true
		st.DragStartY = ctx.Input.MouseY
		st.DragStartScroll = st.ScrollY
	case ctx.IsClicked(track):
		if ctx.Input.MouseY < thumbY {
			st.ScrollY -= track.H
		} else {
			st.ScrollY += track.H
		}
	}
	if st.Dragging {
		if ctx.Input == nil || !ctx.Input.MouseDown(MouseButtonLeft) {
			st.Dragging = false
		} else if travel > 0 {
			st.ScrollY = st.DragStartScroll + (ctx.Input.MouseY-st.DragStartY)*maxScroll/travel
		}
	}

	grab := ctx.Color(ColScrollbarGrab)
	if st.Dragging || ctx.IsHovered(thumb) {
		grab = ctx.Color(ColScrollbarGrabHovered)
	}
	ctx.DrawList.AddRect(track.X, track.Y, track.W, track.H, ctx.Color(ColScrollbarBg))
	ctx.DrawList.AddRectRounded(thumb.X, thumb.Y, thumb.W, thumb.H, ctx.style.Rounding, grab)
}

// ScrollableStateOf returns the state of the Scrollable with this id, or
// nil before it is first drawn.
func (ctx *Context) ScrollableStateOf(id string) *ScrollableState {
	return scrollableStore.GetIfExists(ctx.StableID(id + "##scroll"))
}
