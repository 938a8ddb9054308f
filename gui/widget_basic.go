package gui

import "strings"

var inputTextStore = NewFrameStore[InputTextState]()

// itemID resolves a widget's ID: WithID when given, else the label.
func (ctx *Context) itemID(label string, o Options) ID {
	if id := Get(o, OptID); id != "" {
		return ctx.StableID(id)
	}
	return ctx.StableID(label)
}

// beginItem applies the per-widget disabled option and returns the undo.
func (ctx *Context) beginItem(o Options) func() {
	if !Get(o, OptDisabled) {
		return func() {}
	}
	ctx.PushItemDisabled(true)
	ctx.PushAlpha(ctx.style.DisabledAlpha)
	return func() {
		ctx.PopAlpha()
		ctx.PopItemDisabled()
	}
}

// VisibleLabel strips an ID suffix: "Name##row3" displays as "Name" while
// the full string keeps IDs apart.
func VisibleLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// Text draws text at the cursor.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.Color(ColText))
}

// TextColored draws text in color, faded by the current alpha.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, ctx.Fade(color))
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text in the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.Color(ColTextDisabled))
}

// TextWrapped draws text wrapped to maxWidth, or to the layout width when
// maxWidth is 0.
func (ctx *Context) TextWrapped(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.currentLayoutWidth()
	}
	pos := ctx.ItemPos()
	lh := ctx.lineHeight()
	lines := WrapText(ctx, text, maxWidth)
	var w float32
	for i, line := range lines {
		ctx.AddText(pos.X, pos.Y+float32(i)*lh, line, ctx.Color(ColText))
		w = maxf(w, ctx.MeasureText(line).X)
	}
	ctx.AdvanceCursor(Vec2{X: w, Y: float32(len(lines)) * lh})
}

// Button draws a push button and reports a click.
func (ctx *Context) Button(label string, opts ...Option) bool {
	o := Resolve(opts)
	defer ctx.beginItem(o)()
	label = VisibleLabel(label)

	pos := ctx.ItemPos()
	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := Get(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := Get(o, OptHeight); h > 0 {
		size.Y = h
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	bg := ctx.Color(ColButton)
	switch {
	case ctx.IsPressed(rect):
		bg = ctx.Color(ColButtonActive)
	case ctx.IsHovered(rect):
		bg = ctx.Color(ColButtonHovered)
	}
	ctx.DrawList.AddRectRounded(pos.X, pos.Y, size.X, size.Y, ctx.style.Rounding, bg)
	ctx.AddText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, ctx.Color(ColText))

	clicked := ctx.IsClicked(rect)
	ctx.ItemTooltip(rect, Get(o, OptTooltip))
	ctx.AdvanceCursor(size)
	return clicked
}

// Selectable draws a full-width row that highlights when selected and
// reports a click.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	o := Resolve(opts)
	defer ctx.beginItem(o)()
	label = VisibleLabel(label)

	pos := ctx.ItemPos()
	w := Get(o, OptWidth)
	if w <= 0 {
		w = maxf(ctx.MeasureText(label).X+ctx.style.ItemSpacing*2, ctx.currentLayoutWidth())
	}
	h := ctx.lineHeight() + ctx.style.ItemSpacing
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	switch {
	case selected:
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.Color(ColHeader))
	case ctx.IsHovered(rect):
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.Color(ColHeaderHovered))
	}
	ctx.AddText(pos.X+ctx.style.ItemSpacing, pos.Y+ctx.style.ItemSpacing/2, label, ctx.Color(ColText))

	clicked := ctx.IsClicked(rect)
	ctx.ItemTooltip(rect, Get(o, OptTooltip))
	ctx.AdvanceCursor(Vec2{X: w, Y: h})
	return clicked
}

// Checkbox toggles *value on click and reports the change.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	o := Resolve(opts)
	defer ctx.beginItem(o)()
	label = VisibleLabel(label)

	pos := ctx.ItemPos()
	box := ctx.lineHeight()
	total := box + ctx.style.ItemSpacing + ctx.MeasureText(label).X
	rect := Rect{X: pos.X, Y: pos.Y, W: total, H: box}

	bg := ctx.Color(ColFrameBg)
	if ctx.IsHovered(rect) {
		bg = ctx.Color(ColFrameBgHovered)
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, box, box, bg)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, box, box, ctx.Color(ColBorder), 1)
	if *value {
		pad := box * 0.25
		ctx.DrawList.AddRect(pos.X+pad, pos.Y+pad, box-pad*2, box-pad*2, ctx.Color(ColAccent))
	}
	ctx.AddText(pos.X+box+ctx.style.ItemSpacing, pos.Y, label, ctx.Color(ColText))

	changed := false
	if ctx.IsClicked(rect) {
		*value = !*value
		changed = true
	}
	ctx.ItemTooltip(rect, Get(o, OptTooltip))
	ctx.AdvanceCursor(Vec2{X: total, Y: box})
	return changed
}

// InputText edits *value in a single-line box. Clicking enters edit mode;
// Enter, Escape or a click elsewhere leaves it. Supports selection,
// clipboard shortcuts and undo. It reports whether *value changed this
// frame.
//
// With AutoEdit the box starts in edit mode, for inputs shown inside
// popups.
func (ctx *Context) InputText(label string, value *string, opts ...Option) bool {
	o := Resolve(opts)
	defer ctx.beginItem(o)()

	id := ctx.itemID(label, o)
	runes := []rune(*value)
	st := inputTextStore.Get(id, InputTextState{Cursor: len(runes), Anchor: len(runes)})
	st.clamp(len(runes))

	pos := ctx.ItemPos()
	x := pos.X
	if vis := VisibleLabel(label); vis != "" {
		ctx.AddText(x, pos.Y+ctx.style.InputPadding, vis, ctx.Color(ColText))
		x += ctx.MeasureText(vis).X + ctx.style.ItemSpacing
	}

	w := Get(o, OptWidth)
	if w <= 0 {
		w = 200
	}
	h := ctx.lineHeight() + ctx.style.InputPadding*2
	rect := Rect{X: x, Y: pos.Y, W: w, H: h}

	autoEdit := Get(o, OptAutoEdit)
	justStarted := false
	switch {
	case ctx.IsClicked(rect):
		justStarted = !st.Editing
		st.Editing = true
		st.MoveTo(ctx.runeAt(runes, ctx.Input.MouseX-(x+ctx.style.InputPadding)+st.ScrollOffset), len(runes), false)
	case autoEdit && !st.Editing:
		st.Editing = true
		st.SelectAll(len(runes))
	case st.Editing && !autoEdit && ctx.ClickedOutside(rect):
		st.Editing = false
	}
	if ctx.ItemDisabled() {
		st.Editing = false
	}
	if st.Editing {
		ctx.SetFocused(id)
	} else if ctx.IsFocused(id) {
		ctx.ClearFocus()
	}

	changed := false
	if st.Editing && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		if !justStarted {
			changed = ctx.editText(value, st, &runes, Get(o, OptCharFilter))
		}
	}

	ctx.drawInputText(rect, runes, st, Get(o, OptHint))
	ctx.ItemTooltip(rect, Get(o, OptTooltip))

	ctx.cursor.X = pos.X
	ctx.AdvanceCursor(Vec2{X: x - pos.X + w, Y: h})
	return changed
}

// IsEditing reports whether the InputText with this label or ID is in edit
// mode.
func (ctx *Context) IsEditing(labelOrID string) bool {
	st := inputTextStore.GetIfExists(ctx.StableID(labelOrID))
	return st != nil && st.Editing
}

// StopEditing leaves edit mode for the InputText with this label or ID.
func (ctx *Context) StopEditing(labelOrID string) {
	if st := inputTextStore.GetIfExists(ctx.StableID(labelOrID)); st != nil {
		st.Editing = false
	}
}

func (ctx *Context) runeAt(runes []rune, x float32) int {
	pos := 0
	for i := 1; i <= len(runes); i++ {
		if ctx.MeasureText(string(runes[:i])).X-ctx.MeasureText(string(runes[i-1:i])).X/2 > x {
			break
		}
		pos = i
	}
	return pos
}

func (ctx *Context) drawInputText(rect Rect, runes []rune, st *InputTextState, hint string) {
	pad := ctx.style.InputPadding
	bg := ctx.Color(ColFrameBg)
	if st.Editing {
		bg = ctx.Color(ColFrameBgActive)
	} else if ctx.IsHovered(rect) {
		bg = ctx.Color(ColFrameBgHovered)
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.Color(ColBorder), 1)

	textX := rect.X + pad
	inner := rect.W - pad*2
	cursorX := ctx.MeasureText(string(runes[:st.Cursor])).X
	if cursorX-st.ScrollOffset > inner {
		st.ScrollOffset = cursorX - inner
	}
	if cursorX < st.ScrollOffset {
		st.ScrollOffset = cursorX
	}

	ctx.DrawList.PushClipRect(textX, rect.Y, textX+inner, rect.Y+rect.H)
	if st.Editing && st.HasSelection() {
		s, e := st.Selection()
		sx := ctx.MeasureText(string(runes[:s])).X - st.ScrollOffset
		ex := ctx.MeasureText(string(runes[:e])).X - st.ScrollOffset
		ctx.DrawList.AddRect(textX+sx, rect.Y+2, ex-sx, rect.H-4, ctx.Color(ColHeader))
	}
	if len(runes) == 0 && hint != "" && !st.Editing {
		ctx.AddText(textX, rect.Y+pad, hint, ctx.Color(ColTextDisabled))
	} else {
		ctx.AddText(textX-st.ScrollOffset, rect.Y+pad, string(runes), ctx.Color(ColText))
	}
	ctx.DrawList.PopClipRect()

	if st.Editing {
		st.BlinkTime += ctx.DeltaTime
		if int(st.BlinkTime*2)%2 == 0 {
			cx := textX + cursorX - st.ScrollOffset
			ctx.DrawList.AddLine(cx, rect.Y+2, cx, rect.Y+rect.H-2, ctx.Color(ColText), 1)
		}
	}
}

// editText applies this frame's keyboard input to the edit buffer.
func (ctx *Context) editText(value *string, st *InputTextState, runes *[]rune, accept func(rune) bool) bool {
	in := ctx.Input
	before := *value
	n := len(*runes)

	set := func(r []rune) {
		*runes = r
		*value = string(r)
	}

	switch {
	case in.KeyPressed(KeyEscape), in.KeyPressed(KeyEnter):
		// Enter and Escape are left in the input state for the caller to
		// act on (commit, close).
		st.Editing = false
		st.ClearSelection()
		return false
	case in.ModCtrl && in.KeyPressed(KeyA):
		st.SelectAll(n)
	case in.ModCtrl && in.KeyPressed(KeyC):
		if st.HasSelection() {
			ClipboardSetText(st.SelectedText(*runes))
		}
	case in.ModCtrl && in.KeyPressed(KeyX):
		if st.HasSelection() {
			ClipboardSetText(st.SelectedText(*runes))
			st.PushUndo(*value)
			set(st.Insert(*runes, nil))
		}
	case in.ModCtrl && in.KeyPressed(KeyV):
		if clip := filterRunes([]rune(ClipboardGetText()), accept); len(clip) > 0 {
			st.PushUndo(*value)
			set(st.Insert(*runes, clip))
		}
	case in.ModCtrl && in.KeyPressed(KeyZ):
		if prev, ok := st.Undo(*value); ok {
			set([]rune(prev))
			st.MoveTo(len(*runes), len(*runes), false)
		}
	case in.ModCtrl && in.KeyPressed(KeyY):
		if next, ok := st.Redo(); ok {
			set([]rune(next))
			st.MoveTo(len(*runes), len(*runes), false)
		}
	case in.KeyRepeated(KeyBackspace):
		if st.HasSelection() || st.Cursor > 0 {
			st.PushUndo(*value)
			set(st.Backspace(*runes))
		}
	case in.KeyRepeated(KeyDelete):
		if st.HasSelection() || st.Cursor < n {
			st.PushUndo(*value)
			set(st.Delete(*runes))
		}
	case in.KeyRepeated(KeyLeft):
		p := st.Cursor - 1
		if in.ModCtrl {
			p = wordLeft(*runes, st.Cursor)
		} else if st.HasSelection() && !in.ModShift {
			p, _ = st.Selection()
		}
		st.MoveTo(p, n, in.ModShift)
	case in.KeyRepeated(KeyRight):
		p := st.Cursor + 1
		if in.ModCtrl {
			p = wordRight(*runes, st.Cursor)
		} else if st.HasSelection() && !in.ModShift {
			_, p = st.Selection()
		}
		st.MoveTo(p, n, in.ModShift)
	case in.KeyPressed(KeyHome):
		st.MoveTo(0, n, in.ModShift)
	case in.KeyPressed(KeyEnd):
		st.MoveTo(n, n, in.ModShift)
	}

	if !in.ModCtrl && in.HasInputChars() {
		if typed := filterRunes(in.InputChars, accept); len(typed) > 0 {
			st.PushUndo(*value)
			set(st.Insert(*runes, typed))
		}
		in.ConsumeInputChars()
	}
	return *value != before
}

func filterRunes(rs []rune, accept func(rune) bool) []rune {
	if accept == nil {
		return rs
	}
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if accept(r) {
			out = append(out, r)
		}
	}
	return out
}
