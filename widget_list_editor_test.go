package imx

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/imx/gui"
)

// Geometry with the bitmap font and default style: the header of an
// unlabeled editor covers (0,0)-(160,20); the popup starts at y=20 with
// 8px padding, so the first row's remove button covers (8,28)-(28,48).

func editorState(ctx *gui.Context, label string) *listEditorState {
	return listEditorStore.GetIfExists(ctx.StableID(label))
}

func TestListEditorAddViaEnter(t *testing.T) {
	h := newHarness(t)
	items := []string{"a"}
	cfg := ListEditorConfig{Deduplicate: true}

	var changed []bool
	run := func() {
		h.frame(func(ctx *gui.Context) {
			changed = append(changed, ListEditor(ctx, "##tags", &items, cfg))
		})
	}

	h.click(5, 5) // open
	run()
	h.typeText("b")
	run()
	h.press(gui.KeyEnter)
	run()
	run() // idle frame

	if diff := cmp.Diff([]bool{false, false, true, false}, changed); diff != "" {
		t.Errorf("change reports (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}

	// Adding a duplicate is not a change.
	h.typeText("a")
	run()
	h.press(gui.KeyEnter)
	run()
	if changed[len(changed)-1] {
		t.Error("duplicate add reported a change")
	}
	if len(items) != 2 {
		t.Errorf("items = %v after duplicate add", items)
	}
}

func TestListEditorRemove(t *testing.T) {
	h := newHarness(t)
	items := []int{1, 2, 3}

	h.click(5, 5)
	h.frame(func(ctx *gui.Context) { ListEditor(ctx, "##nums", &items, ListEditorConfig{}) })

	h.click(15, 35)
	var changed bool
	h.frame(func(ctx *gui.Context) { changed = ListEditor(ctx, "##nums", &items, ListEditorConfig{}) })

	if !changed {
		t.Error("remove did not report a change")
	}
	if diff := cmp.Diff([]int{2, 3}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestListEditorStateMachine(t *testing.T) {
	h := newHarness(t)
	var items []string
	cfg := ListEditorConfig{}

	var mode listEditorMode
	run := func() {
		h.frame(func(ctx *gui.Context) {
			ListEditor(ctx, "##s", &items, cfg)
			mode = editorState(ctx, "##s").Mode
		})
	}

	run()
	if mode != listIdle {
		t.Fatalf("initial mode = %v, want idle", mode)
	}

	h.click(5, 5)
	run()
	if mode != listEditingText {
		t.Fatalf("mode after header click = %v, want editing", mode)
	}

	h.press(gui.KeyEscape)
	run()
	if mode != listIdle {
		t.Fatalf("mode after Escape = %v, want idle", mode)
	}

	h.click(5, 5)
	run()
	h.click(700, 500) // outside header and popup
	run()
	if mode != listIdle {
		t.Errorf("mode after outside click = %v, want idle", mode)
	}
}

func TestListEditorDisabledStaysClosed(t *testing.T) {
	h := newHarness(t)
	var items []string
	var mode listEditorMode

	h.click(5, 5)
	h.frame(func(ctx *gui.Context) {
		ListEditor(ctx, "##d", &items, ListEditorConfig{}, gui.WithDisabled(true))
		mode = editorState(ctx, "##d").Mode
	})
	if mode != listIdle {
		t.Error("disabled list editor opened")
	}
}

func TestListEditorParseError(t *testing.T) {
	h := newHarness(t)
	var items []int
	var st listEditorState
	run := func() {
		h.frame(func(ctx *gui.Context) {
			ListEditor(ctx, "##p", &items, ListEditorConfig{})
			st = *editorState(ctx, "##p")
		})
	}

	h.click(5, 5)
	run()
	h.typeText("-")
	run()
	h.press(gui.KeyEnter)
	run()

	if len(items) != 0 {
		t.Errorf("items = %v, want none", items)
	}
	if st.Err == "" || st.Buffer != "-" {
		t.Errorf("state = %+v, want an error and the buffer kept", st)
	}
}

func TestListEditorIntInputTakesDigitsOnly(t *testing.T) {
	h := newHarness(t)
	var items []int
	run := func() {
		h.frame(func(ctx *gui.Context) { ListEditor(ctx, "##digits", &items, ListEditorConfig{}) })
	}

	h.click(5, 5)
	run()
	h.typeText("4x2")
	run()
	h.press(gui.KeyEnter)
	run()

	if diff := cmp.Diff([]int{42}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestListEditorConfigDefaults(t *testing.T) {
	got := ListEditorConfig{ComboWidth: -5, PopupSize: gui.Vec2{X: -1, Y: -1}}.withDefaults()
	if got.ComboWidth != 160 || got.PopupSize.X != 240 || got.PopupSize.Y != 0 {
		t.Errorf("withDefaults() = %+v", got)
	}
	if got.IconAdd == "" || got.IconRemove == "" || got.EmptyDesc == "" {
		t.Errorf("withDefaults() left icons or empty text blank: %+v", got)
	}
}

// bigList opens an editor over 1..50 whose popup is bounded to 100px: the
// popup covers y 20..120 and its rows scroll in y 28..88. run draws a frame
// and reports the change and the editor mode.
func bigList(t *testing.T, label string) (h *harness, items *[]int, run func() (bool, listEditorMode)) {
	h = newHarness(t)
	list := make([]int, 50)
	for i := range list {
		list[i] = i + 1
	}
	cfg := ListEditorConfig{PopupSize: gui.Vec2{X: 240, Y: 100}}
	run = func() (changed bool, mode listEditorMode) {
		h.frame(func(ctx *gui.Context) {
			changed = ListEditor(ctx, label, &list, cfg)
			mode = editorState(ctx, label).Mode
		})
		return changed, mode
	}
	h.click(5, 5)
	run()
	return h, &list, run
}

func TestListEditorPopupHeightIsBounded(t *testing.T) {
	h, items, run := bigList(t, "##bounded")

	// Unbounded, the 11th row's remove button would sit under this click.
	h.click(15, 270)
	changed, mode := run()
	if changed || len(*items) != 50 {
		t.Errorf("click below the popup: changed=%v len=%d, want no change", changed, len(*items))
	}
	if mode != listIdle {
		t.Errorf("mode = %v, want the click to close the popup", mode)
	}
}

func TestListEditorRowsScroll(t *testing.T) {
	h, items, run := bigList(t, "##scrolled")

	h.input.SetMousePos(15, 40)
	h.input.SetMouseWheel(0, -1)
	run()

	// Scrolled by 30 the second row's remove button covers y 22..42.
	h.click(15, 35)
	if changed, _ := run(); !changed {
		t.Fatal("remove after scrolling reported no change")
	}
	if diff := cmp.Diff([]int{1, 3, 4}, (*items)[:3]); diff != "" {
		t.Errorf("head (-want +got):\n%s", diff)
	}
	if len(*items) != 49 {
		t.Errorf("len = %d, want 49", len(*items))
	}
}

func TestListEditorDeleteOnRight(t *testing.T) {
	h := newHarness(t)
	items := []string{"a", "b"}
	cfg := ListEditorConfig{DeleteOnRight: true}
	run := func() (changed bool) {
		h.frame(func(ctx *gui.Context) { changed = ListEditor(ctx, "##right", &items, cfg) })
		return changed
	}
	h.click(5, 5)
	run()

	// The text sits at the left edge; the remove button covers x 212..232.
	h.click(15, 35)
	if run() {
		t.Error("click on the item text removed it")
	}
	h.click(220, 35)
	if !run() {
		t.Error("click on the right-hand remove button reported no change")
	}
	if diff := cmp.Diff([]string{"b"}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

type tag string

type port int

func TestListEditorCustomEquality(t *testing.T) {
	add := func(t *testing.T, edit func(ctx *gui.Context) bool) []bool {
		h := newHarness(t)
		var changed []bool
		run := func() { h.frame(func(ctx *gui.Context) { changed = append(changed, edit(ctx)) }) }
		h.click(5, 5)
		run()
		h.typeText("go")
		run()
		h.press(gui.KeyEnter)
		run()
		return changed
	}
	cfg := ListEditorConfig{Deduplicate: true}
	fold := WithListEquality(strings.EqualFold)

	t.Run("string", func(t *testing.T) {
		items := []string{"Go"}
		changed := add(t, func(ctx *gui.Context) bool { return ListEditor(ctx, "##eq-string", &items, cfg, fold) })
		if changed[len(changed)-1] || len(items) != 1 {
			t.Errorf("items = %v, want the case-folded duplicate rejected", items)
		}
	})
	t.Run("named string", func(t *testing.T) {
		items := []tag{"Go"}
		changed := add(t, func(ctx *gui.Context) bool { return ListEditor(ctx, "##eq-tag", &items, cfg, fold) })
		if changed[len(changed)-1] || len(items) != 1 {
			t.Errorf("items = %v, want the case-folded duplicate rejected", items)
		}
	})
}

func TestListEditorCustomParser(t *testing.T) {
	h := newHarness(t)
	var items []port
	hex := WithListParser(func(s string) (int, error) {
		n, err := strconv.ParseInt(s, 16, 64)
		return int(n), err
	})
	run := func() {
		h.frame(func(ctx *gui.Context) { ListEditor(ctx, "##hex", &items, ListEditorConfig{}, hex) })
	}

	h.click(5, 5)
	run()
	h.typeText("ff")
	run()
	h.press(gui.KeyEnter)
	run()

	if diff := cmp.Diff([]port{255}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestListOptionsForMismatchedType(t *testing.T) {
	if eq := listEqualFor[string](func(a, b int) bool { return true }); eq != nil {
		t.Error("int equality was applied to a string list")
	}
	if p := listParseFor[port](func(s string) (string, error) { return s, nil }); p != nil {
		t.Error("string parser was applied to an int list")
	}
	if eq := listEqualFor[tag](strings.EqualFold); eq == nil || !eq("A", "a") {
		t.Error("strings.EqualFold not adapted to a named string type")
	}
}

func TestListEditorEmptyDesc(t *testing.T) {
	h, font := newTextHarness(t)
	var items []string
	cfg := ListEditorConfig{EmptyDesc: "nothing yet"}
	count := func() int {
		n := 0
		for _, s := range font.drawn {
			if s == "nothing yet" {
				n++
			}
		}
		return n
	}

	h.frame(func(ctx *gui.Context) { ListEditor(ctx, "##empty", &items, cfg) })
	if got := count(); got != 1 {
		t.Errorf("closed editor drew the empty text %d times, want 1 (preview)", got)
	}

	font.reset()
	h.click(5, 5)
	h.frame(func(ctx *gui.Context) { ListEditor(ctx, "##empty", &items, cfg) })
	if got := count(); got != 2 {
		t.Errorf("open editor drew the empty text %d times, want 2 (preview and popup)", got)
	}

	items = append(items, "x")
	font.reset()
	h.frame(func(ctx *gui.Context) { ListEditor(ctx, "##empty", &items, cfg) })
	if got := count(); got != 0 {
		t.Errorf("non-empty editor drew the empty text %d times", got)
	}
}
