package imx

import (
	"strconv"

	"github.com/go-theft-auto/imx/gui"
)

// IconItem is one entry of an IconCombo.
type IconItem struct {
	Icon  string
	Label string
}

func (it IconItem) text() string {
	if it.Icon == "" {
		return it.Label
	}
	return it.Icon + " " + it.Label
}

type iconComboState struct {
	Open bool
}

var iconComboStore = gui.NewFrameStore[iconComboState]()

// IconCombo draws a dropdown whose rows show an icon next to their label.
// Picking a row stores its index in *selected, closes the dropdown and
// returns true. An out-of-range *selected shows an empty header.
//
//	if imx.IconCombo(ctx, "Mode", &mode, []imx.IconItem{{"#", "Grid"}, {"~", "Free"}}) {
//	    applyMode(mode)
//	}
func IconCombo(ctx *gui.Context, label string, selected *int, items []IconItem, opts ...gui.Option) bool {
	o := gui.Resolve(opts)
	defer BeginDisabled(ctx, gui.Get(o, gui.OptDisabled))()

	idLabel := label
	if s := gui.Get(o, gui.OptID); s != "" {
		idLabel = s
	}
	id := ctx.StableID(idLabel)
	st := iconComboStore.Get(id, iconComboState{})
	if ctx.ItemDisabled() {
		st.Open = false
	}

	style := ctx.Style()
	pad := style.ButtonPadding
	w := gui.Get(o, gui.OptWidth)
	if w <= 0 {
		w = 120
		for _, it := range items {
			w = max(w, ctx.MeasureText(it.text()).X+pad*3+8)
		}
	}

	pos := ctx.ItemPos()
	h := ctx.FrameHeight()
	x := pos.X
	if vis := gui.VisibleLabel(label); vis != "" {
		ctx.AddText(x, pos.Y+(h-ctx.LineHeight())/2, vis, ctx.Color(gui.ColText))
		x += ctx.MeasureText(vis).X + style.ItemSpacing
	}
	header := gui.Rect{X: x, Y: pos.Y, W: w, H: h}
	preview := ""
	if *selected >= 0 && *selected < len(items) {
		preview = items[*selected].text()
	}
	drawListHeader(ctx, header, preview, st.Open)

	headerClicked := ctx.IsClicked(header)
	if headerClicked {
		st.Open = !st.Open
	}

	changed := false
	if st.Open {
		ctx.PushID(idLabel)
		popup := ctx.Popup(id, gui.Vec2{X: header.X, Y: header.Y + h}, gui.Vec2{X: w})(func() {
			for i, it := range items {
				if ctx.Selectable(it.text()+"##"+strconv.Itoa(i), i == *selected) {
					if i != *selected {
						*selected = i
						changed = true
					}
					st.Open = false
				}
			}
		})
		ctx.PopID()

		if ctx.KeyPressed(gui.KeyEscape) || (!headerClicked && ctx.ClickedOutside(header, popup)) {
			st.Open = false
		}
	}

	ctx.ItemTooltip(header, gui.Get(o, gui.OptTooltip))
	ctx.SetCursorPos(pos.X, pos.Y)
	ctx.AdvanceCursor(gui.Vec2{X: x - pos.X + w, Y: h})
	return changed
}
