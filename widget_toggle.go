package imx

import "github.com/go-theft-auto/imx/gui"

type toggleState struct {
	Pos float32 // knob position, 0 = off, 1 = on
}

var toggleStore = gui.NewFrameStore[toggleState]()

// knob travel per second
const toggleSpeed = 8

// ToggleSwitch draws a pill-shaped on/off switch followed by label. It
// flips *v on click and reports the change.
func ToggleSwitch(ctx *gui.Context, label string, v *bool, opts ...gui.Option) bool {
	o := gui.Resolve(opts)
	defer BeginDisabled(ctx, gui.Get(o, gui.OptDisabled))()

	id := ctx.StableID(label)
	target := float32(0)
	if *v {
		target = 1
	}
	st := toggleStore.Get(id, toggleState{Pos: target})

	pos := ctx.ItemPos()
	h := ctx.LineHeight() + 4
	w := h * 1.8
	vis := gui.VisibleLabel(label)
	total := w
	if vis != "" {
		total += ctx.Style().ItemSpacing + ctx.MeasureText(vis).X
	}
	rect := gui.Rect{X: pos.X, Y: pos.Y, W: total, H: h}

	changed := false
	if ctx.IsClicked(rect) {
		*v = !*v
		changed = true
		target = 1 - target
	}

	step := toggleSpeed * ctx.DeltaTime
	switch {
	case st.Pos < target:
		st.Pos = min(target, st.Pos+step)
	case st.Pos > target:
		st.Pos = max(target, st.Pos-step)
	}

	off, on := ctx.Color(gui.ColToggleOff), ctx.Color(gui.ColToggleOn)
	track := lerpColor(off, on, st.Pos)
	if ctx.IsHovered(rect) {
		track = BlendColors(track, gui.RGBA(255, 255, 255, 24))
	}
	r := h / 2
	ctx.DrawList.AddRectRounded(pos.X, pos.Y, w, h, r, track)
	kx := pos.X + r + st.Pos*(w-h)
	ctx.DrawList.AddCircleFilled(kx, pos.Y+r, r-2, ctx.Color(gui.ColKnob))

	if vis != "" {
		ctx.AddText(pos.X+w+ctx.Style().ItemSpacing, pos.Y+(h-ctx.LineHeight())/2, vis, ctx.Color(gui.ColText))
	}
	ctx.ItemTooltip(rect, gui.Get(o, gui.OptTooltip))
	ctx.AdvanceCursor(gui.Vec2{X: total, Y: h})
	return changed
}

func lerpColor(a, b uint32, t float32) uint32 {
	ar, ag, ab, aa := gui.UnpackRGBA(a)
	br, bg, bb, ba := gui.UnpackRGBA(b)
	l := func(x, y uint8) uint8 { return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5) }
	return gui.RGBA(l(ar, br), l(ag, bg), l(ab, bb), l(aa, ba))
}
