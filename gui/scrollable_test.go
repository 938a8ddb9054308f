package gui_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/imx/gui"
)

// frames drives one GUI through successive frames sharing an input state.
type frames struct {
	t     *testing.T
	ui    *gui.GUI
	input *gui.InputState
}

func newFrames(t *testing.T) *frames {
	return &frames{t: t, ui: gui.New(&mockRenderer{}), input: gui.NewInputState()}
}

func (f *frames) run(fn func(ctx *gui.Context)) {
	f.t.Helper()
	ctx := f.ui.Begin(f.input, gui.Vec2{X: 800, Y: 600}, 0.016)
	fn(ctx)
	if err := f.ui.End(); err != nil {
		f.t.Fatalf("End: %v", err)
	}
	f.input.Reset()
	f.input.SetMouseButton(gui.MouseButtonLeft, false)
	for k := gui.KeyNone + 1; k < gui.KeyCount; k++ {
		f.input.SetKey(k, false)
	}
	f.input.Reset()
}

func (f *frames) click(x, y float32) {
	f.input.SetMousePos(x, y)
	f.input.SetMouseButton(gui.MouseButtonLeft, true)
}

// tenButtons lays out buttons b0..b9, 20px tall with 4px gaps, in a region
// 50px tall at the origin, then one more button below it. It returns the
// name of the clicked button, or "".
func tenButtons(ctx *gui.Context) string {
	clicked := ""
	ctx.Scrollable("list", 50)(func() {
		for i := range 10 {
			name := "b" + strconv.Itoa(i)
			if ctx.Button(name) {
				clicked = name
			}
		}
	})
	if ctx.Button("after") {
		clicked = "after"
	}
	return clicked
}

func TestScrollableClipsHitTesting(t *testing.T) {
	f := newFrames(t)
	f.run(func(ctx *gui.Context) { tenButtons(ctx) })

	// b2 is laid out at y 48..68 but the region ends at 50; "after" sits
	// at 54..74.
	var got string
	f.click(5, 60)
	f.run(func(ctx *gui.Context) { got = tenButtons(ctx) })
	if got != "after" {
		t.Errorf("click below the region hit %q, want %q", got, "after")
	}
}

func TestScrollableWheel(t *testing.T) {
	f := newFrames(t)
	f.run(func(ctx *gui.Context) { tenButtons(ctx) })

	f.input.SetMousePos(5, 10)
	f.input.SetMouseWheel(0, -1)
	var st gui.ScrollableState
	f.run(func(ctx *gui.Context) {
		tenButtons(ctx)
		st = *ctx.ScrollableStateOf("list")
	})
	if st.ScrollY != 30 || st.ContentHeight != 236 {
		t.Fatalf("state = %+v, want ScrollY 30 and ContentHeight 236", st)
	}

	// Scrolled by 30, b2 covers y 18..38.
	var got string
	f.click(5, 30)
	f.run(func(ctx *gui.Context) { got = tenButtons(ctx) })
	if got != "b2" {
		t.Errorf("click after scrolling hit %q, want b2", got)
	}

	f.input.SetMousePos(5, 10)
	f.input.SetMouseWheel(0, -100)
	f.run(func(ctx *gui.Context) {
		tenButtons(ctx)
		st = *ctx.ScrollableStateOf("list")
	})
	if st.ScrollY != 186 {
		t.Errorf("ScrollY = %v, want it clamped to 186", st.ScrollY)
	}
}

func TestScrollableShrinksToContent(t *testing.T) {
	f := newFrames(t)
	var after gui.Vec2
	f.run(func(ctx *gui.Context) {
		ctx.Scrollable("short", 300)(func() { ctx.Button("only") })
		after = ctx.GetCursorPos()
	})
	if after.Y != 24 {
		t.Errorf("cursor after region = %v, want y 24", after)
	}
}

func TestListClipper(t *testing.T) {
	tests := []struct {
		name                   string
		total                  int
		item, visible, scrollY float32
		start, end             int
	}{
		{"top", 100, 24, 60, 0, 0, 4},
		{"scrolled", 100, 24, 60, 30, 1, 5},
		{"near end", 3, 24, 60, 30, 1, 3},
		{"empty", 0, 24, 60, 0, 0, 0},
		{"zero height", 5, 0, 60, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := gui.NewListClipper(tc.total, tc.item, tc.visible, tc.scrollY)
			if c.StartIdx != tc.start || c.EndIdx != tc.end {
				t.Errorf("range = [%d, %d), want [%d, %d)", c.StartIdx, c.EndIdx, tc.start, tc.end)
			}
		})
	}
}

func TestListClipperOutsideScrollable(t *testing.T) {
	ui, ctx := newFrame(t, gui.NewInputState())
	defer ui.End()
	c := ctx.ListClipper(7, 24)
	if c.StartIdx != 0 || c.EndIdx != 7 {
		t.Errorf("range = [%d, %d), want every row", c.StartIdx, c.EndIdx)
	}
}

func TestPopupBoundedHeight(t *testing.T) {
	ui, ctx := newFrame(t, gui.NewInputState())
	defer ui.End()

	lines := func() {
		for range 10 {
			ctx.Text("line")
		}
	}
	// 10 lines of 8px with 4px gaps, plus 8px padding on each side.
	if r := ctx.Popup(1, gui.Vec2{}, gui.Vec2{X: 100})(lines); r.H != 132 {
		t.Errorf("unbounded popup height = %v, want 132", r.H)
	}
	if r := ctx.Popup(2, gui.Vec2{}, gui.Vec2{X: 100, Y: 50})(lines); r.H != 50 {
		t.Errorf("bounded popup height = %v, want 50", r.H)
	}
}

func TestRectIntersect(t *testing.T) {
	a := gui.Rect{X: 0, Y: 0, W: 100, H: 100}
	if diff := cmp.Diff(gui.Rect{X: 50, Y: 60, W: 50, H: 40}, a.Intersect(gui.Rect{X: 50, Y: 60, W: 200, H: 200})); diff != "" {
		t.Errorf("overlap (-want +got):\n%s", diff)
	}
	if got := a.Intersect(gui.Rect{X: 200, Y: 0, W: 10, H: 10}); got.W != 0 || got.H != 0 {
		t.Errorf("disjoint intersect = %+v, want empty", got)
	}
}

func TestInputIntFiltersAndSteps(t *testing.T) {
	f := newFrames(t)
	text := ""
	draw := func(opts ...gui.Option) func(ctx *gui.Context) {
		return func(ctx *gui.Context) { ctx.InputInt("##n", &text, opts...) }
	}

	f.click(50, 5)
	f.run(draw())
	f.input.AddInputChar('1')
	f.input.AddInputChar('a')
	f.input.AddInputChar('2')
	f.run(draw())
	if text != "12" {
		t.Fatalf("text = %q, want letters dropped", text)
	}

	f.input.SetKey(gui.KeyUp, true)
	f.run(draw(gui.WithStep(5)))
	if text != "17" {
		t.Errorf("after Up text = %q, want 17", text)
	}

	f.input.SetKey(gui.KeyDown, true)
	f.run(draw(gui.WithIntRange(15, 20)))
	if text != "16" {
		t.Errorf("after Down text = %q, want 16", text)
	}
	f.input.SetKey(gui.KeyUp, true)
	f.run(draw(gui.WithIntRange(0, 10)))
	if text != "10" {
		t.Errorf("after Up past the range text = %q, want 10", text)
	}
}

func TestNumberInputInt(t *testing.T) {
	f := newFrames(t)
	value := 5
	var changed []bool
	draw := func(ctx *gui.Context) {
		changed = append(changed, ctx.NumberInputInt("##v", &value))
	}

	f.click(50, 5)
	f.run(draw)
	f.input.AddInputChar('7')
	f.run(draw)
	f.input.AddInputChar('-')
	f.run(draw) // "57-" does not parse
	f.input.SetKey(gui.KeyEscape, true)
	f.run(draw)

	if value != 57 {
		t.Errorf("value = %d, want 57", value)
	}
	if diff := cmp.Diff([]bool{false, true, false, false}, changed); diff != "" {
		t.Errorf("change reports (-want +got):\n%s", diff)
	}
}
