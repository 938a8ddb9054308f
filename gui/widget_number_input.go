package gui

import "strconv"

var numberInputStore = NewFrameStore[numberInputState]()

type numberInputState struct {
	Text string
}

// IsIntRune accepts the runes of a decimal integer.
func IsIntRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-'
}

// InputInt edits the decimal text of an integer: an InputText that only
// takes digits and '-', where Up and Down step the value by WithStep
// (default 1) within WithIntRange. Empty or partial text such as "-" is
// left for the caller to reject. It reports whether text changed.
//
//	var port string
//	ctx.InputInt("Port", &port, gui.WithIntRange(1, 65535))
func (ctx *Context) InputInt(label string, text *string, opts ...Option) bool {
	o := Resolve(opts)
	changed := ctx.InputText(label, text, Compose(opts...), WithCharFilter(IsIntRune))

	st := inputTextStore.GetIfExists(ctx.itemID(label, o))
	if st == nil || !st.Editing || ctx.Input == nil || ctx.ItemDisabled() {
		return changed
	}
	delta := 0
	if ctx.Input.KeyRepeated(KeyUp) {
		delta = Get(o, OptStep)
	}
	if ctx.Input.KeyRepeated(KeyDown) {
		delta = -Get(o, OptStep)
	}
	if delta == 0 {
		return changed
	}
	n, _ := strconv.Atoi(*text) // unparsable steps from 0
	next := strconv.Itoa(Get(o, OptIntRange).Clamp(n + delta))
	if next == *text {
		return changed
	}
	st.PushUndo(*text)
	*text = next
	st.MoveTo(len(next), len(next), false)
	return true
}

// NumberInputInt edits *value through an InputInt. Text that does not
// parse leaves *value alone; leaving edit mode shows *value again. It
// reports whether *value changed.
func (ctx *Context) NumberInputInt(label string, value *int, opts ...Option) bool {
	o := Resolve(opts)
	id := ctx.itemID(label, o)
	st := numberInputStore.Get(id, numberInputState{Text: strconv.Itoa(*value)})

	if ed := inputTextStore.GetIfExists(id); ed == nil || !ed.Editing {
		st.Text = strconv.Itoa(*value)
	}
	if !ctx.InputInt(label, &st.Text, opts...) {
		return false
	}
	n, err := strconv.Atoi(st.Text)
	if err != nil {
		return false
	}
	n = Get(o, OptIntRange).Clamp(n)
	if n == *value {
		return false
	}
	*value = n
	return true
}
