package imx

import "github.com/go-theft-auto/imx/gui"

// hoverStore eases each button's hover highlight in and out.
var hoverStore = gui.NewFrameStore[float32]()

const hoverSpeed = 10

func hoverAmount(ctx *gui.Context, id string, hovered bool) float32 {
	h := hoverStore.Get(ctx.StableID(id), 0)
	step := hoverSpeed * ctx.DeltaTime
	if hovered {
		*h = min(1, *h+step)
	} else {
		*h = max(0, *h-step)
	}
	return *h
}

// CircleButton draws a round button with icon centered in it and reports a
// click. id keys the button's hover animation.
func CircleButton(ctx *gui.Context, id, icon string, radius float32, opts ...gui.Option) bool {
	o := gui.Resolve(opts)
	defer BeginDisabled(ctx, gui.Get(o, gui.OptDisabled))()

	pos := ctx.ItemPos()
	d := radius * 2
	rect := gui.Rect{X: pos.X, Y: pos.Y, W: d, H: d}
	cx, cy := pos.X+radius, pos.Y+radius

	// Hit test against the circle, not its bounding box.
	hovered := false
	if ctx.IsHovered(rect) {
		dx, dy := ctx.Input.MouseX-cx, ctx.Input.MouseY-cy
		hovered = dx*dx+dy*dy <= radius*radius
	}

	bg := lerpColor(ctx.Color(gui.ColButton), ctx.Color(gui.ColButtonHovered), hoverAmount(ctx, id, hovered))
	if hovered && ctx.Input.MouseDown(gui.MouseButtonLeft) {
		bg = ctx.Color(gui.ColButtonActive)
	}
	ctx.DrawList.AddCircleFilled(cx, cy, radius, bg)

	if icon != "" {
		ts := ctx.MeasureText(icon)
		ctx.AddText(cx-ts.X/2, cy-ts.Y/2, icon, ctx.Color(gui.ColText))
	}

	clicked := hovered && ctx.Input.MouseClicked(gui.MouseButtonLeft)
	ctx.ItemTooltip(rect, gui.Get(o, gui.OptTooltip))
	ctx.AdvanceCursor(gui.Vec2{X: d, Y: d})
	return clicked
}

// SystemButtonKind selects the glyph of a window-control button.
type SystemButtonKind uint8

const (
	SystemClose SystemButtonKind = iota
	SystemMinimize
	SystemMaximize
	SystemRestore
)

func (k SystemButtonKind) String() string {
	switch k {
	case SystemClose:
		return "close"
	case SystemMinimize:
		return "minimize"
	case SystemMaximize:
		return "maximize"
	case SystemRestore:
		return "restore"
	}
	return "unknown"
}

// SystemButton draws a square window-control button of the given size with
// a line-drawn glyph and reports a click. The close button hovers red.
func SystemButton(ctx *gui.Context, id string, kind SystemButtonKind, size float32, opts ...gui.Option) bool {
	o := gui.Resolve(opts)
	defer BeginDisabled(ctx, gui.Get(o, gui.OptDisabled))()

	pos := ctx.ItemPos()
	rect := gui.Rect{X: pos.X, Y: pos.Y, W: size, H: size}
	hovered := ctx.IsHovered(rect)

	if amt := hoverAmount(ctx, id, hovered); amt > 0 {
		bg := ctx.Color(gui.ColButtonHovered)
		if kind == SystemClose {
			bg = ctx.Fade(gui.RGBA(196, 43, 28, 255))
		}
		ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, gui.WithAlpha(bg, amt))
	}

	fg := ctx.Color(gui.ColText)
	dl := ctx.DrawList
	p := size * 0.3
	x0, y0, x1, y1 := rect.X+p, rect.Y+p, rect.X+size-p, rect.Y+size-p
	switch kind {
	case SystemClose:
		dl.AddLine(x0, y0, x1, y1, fg, 1)
		dl.AddLine(x0, y1, x1, y0, fg, 1)
	case SystemMinimize:
		my := rect.Y + size/2
		dl.AddLine(x0, my, x1, my, fg, 1)
	case SystemMaximize:
		dl.AddRectOutline(x0, y0, x1-x0, y1-y0, fg, 1)
	case SystemRestore:
		off := (x1 - x0) * 0.25
		dl.AddRectOutline(x0, y0+off, x1-x0-off, y1-y0-off, fg, 1)
		dl.AddPolyline([]gui.Vec2{
			{X: x0 + off, Y: y0 + off}, {X: x0 + off, Y: y0}, {X: x1, Y: y0},
			{X: x1, Y: y1 - off}, {X: x1 - off, Y: y1 - off},
		}, fg, 1)
	}

	clicked := ctx.IsClicked(rect)
	tip := gui.Get(o, gui.OptTooltip)
	if tip == "" {
		tip = kind.String()
	}
	ctx.ItemTooltip(rect, tip)
	ctx.AdvanceCursor(gui.Vec2{X: size, Y: size})
	return clicked
}
