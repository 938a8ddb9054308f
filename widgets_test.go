package imx

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/imx/gui"
)

func TestToggleSwitch(t *testing.T) {
	h := newHarness(t)
	v := false
	var changed bool

	h.click(5, 5)
	h.frame(func(ctx *gui.Context) { changed = ToggleSwitch(ctx, "vsync", &v) })
	if !changed || !v {
		t.Fatalf("after click: changed=%v v=%v", changed, v)
	}

	h.frame(func(ctx *gui.Context) { changed = ToggleSwitch(ctx, "vsync", &v) })
	if changed {
		t.Error("idle frame reported a change")
	}

	var pos float32
	for range 30 {
		h.frame(func(ctx *gui.Context) {
			ToggleSwitch(ctx, "vsync", &v)
			pos = toggleStore.GetIfExists(ctx.StableID("vsync")).Pos
		})
	}
	if pos != 1 {
		t.Errorf("knob position = %v after settling, want 1", pos)
	}
}

func TestToggleSwitchDisabled(t *testing.T) {
	h := newHarness(t)
	v := true
	h.click(5, 5)
	h.frame(func(ctx *gui.Context) {
		if ToggleSwitch(ctx, "vsync", &v, gui.WithDisabled(true)) {
			t.Error("disabled toggle reported a change")
		}
	})
	if !v {
		t.Error("disabled toggle flipped its value")
	}
}

func TestCircleButtonHitsCircleOnly(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float32
		expect bool
	}{
		{"center", 10, 10, true},
		{"edge", 19, 10, true},
		{"corner", 1, 1, false},
		{"outside", 30, 30, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.click(tc.x, tc.y)
			var got bool
			h.frame(func(ctx *gui.Context) { got = CircleButton(ctx, "play", ">", 10) })
			if got != tc.expect {
				t.Errorf("click at (%v,%v) = %v, want %v", tc.x, tc.y, got, tc.expect)
			}
		})
	}
}

func TestSystemButton(t *testing.T) {
	h := newHarness(t)
	h.click(8, 8)
	var got bool
	h.frame(func(ctx *gui.Context) { got = SystemButton(ctx, "close", SystemClose, 16) })
	if !got {
		t.Error("click inside the button was not reported")
	}
	if SystemRestore.String() != "restore" {
		t.Errorf("SystemRestore.String() = %q", SystemRestore.String())
	}
}

func TestIconComboSelect(t *testing.T) {
	h := newHarness(t)
	items := []IconItem{{Icon: "#", Label: "Grid"}, {Icon: "~", Label: "Free"}}
	sel := 0
	var changed []bool
	run := func() {
		h.frame(func(ctx *gui.Context) {
			changed = append(changed, IconCombo(ctx, "##mode", &sel, items))
		})
	}

	h.click(5, 5) // open
	run()
	h.click(20, 50) // second row
	run()
	run()

	if diff := cmp.Diff([]bool{false, true, false}, changed); diff != "" {
		t.Errorf("change reports (-want +got):\n%s", diff)
	}
	if sel != 1 {
		t.Errorf("selected = %d, want 1", sel)
	}
	h.frame(func(ctx *gui.Context) {
		if st := iconComboStore.GetIfExists(ctx.StableID("##mode")); st == nil || st.Open {
			t.Error("combo still open after a pick")
		}
	})
}

func TestIconComboEscapeCloses(t *testing.T) {
	h := newHarness(t)
	sel := -1
	items := []IconItem{{Label: "Only"}}
	open := func() bool {
		var o bool
		h.frame(func(ctx *gui.Context) {
			IconCombo(ctx, "##c", &sel, items)
			o = iconComboStore.GetIfExists(ctx.StableID("##c")).Open
		})
		return o
	}

	h.click(5, 5)
	if !open() {
		t.Fatal("header click did not open")
	}
	h.press(gui.KeyEscape)
	if open() {
		t.Error("Escape did not close")
	}
	if sel != -1 {
		t.Errorf("selected = %d, want -1", sel)
	}
}

func TestNotifierLifecycle(t *testing.T) {
	var n Notifier
	a := n.Info("saved", "")
	b := n.Push(NotifyError, "failed", "disk full", 10)
	if a == b {
		t.Fatalf("IDs collide: %d", a)
	}

	n.Update(DefaultNotifyDuration + 0.1)
	got := n.Items()
	if len(got) != 1 || got[0].ID != b || got[0].Kind != NotifyError {
		t.Fatalf("after expiry: %+v", got)
	}
	if !n.Dismiss(b) || n.Len() != 0 {
		t.Error("Dismiss did not remove the notification")
	}
	if n.Dismiss(b) {
		t.Error("second Dismiss reported success")
	}
}

func TestNotifierTrimsBacklog(t *testing.T) {
	var n Notifier
	for range NotifyMaxVisible*2 + 1 {
		n.Warning("w", "")
	}
	if n.Len() != NotifyMaxVisible {
		t.Errorf("Len = %d, want %d", n.Len(), NotifyMaxVisible)
	}
}

func TestNotifierClickDismisses(t *testing.T) {
	h := newHarness(t)
	var n Notifier
	n.Success("T", "")
	n.Update(0.5)

	// "i " + "T" with 12px horizontal and 8px vertical padding sits in the
	// bottom-right corner, 10px from the edges of the 800x600 display.
	h.click(780, 580)
	h.frame(func(ctx *gui.Context) { n.Draw(ctx) })
	if n.Len() != 0 {
		t.Errorf("Len = %d after click, want 0", n.Len())
	}
}

func TestNotificationOpacity(t *testing.T) {
	tests := []struct {
		elapsed float32
		want    float32
	}{
		{0, 0},
		{0.075, 0.5},
		{1, 1},
		{7, 1},
		{10, 0},
	}
	for _, tc := range tests {
		n := Notification{Duration: 10, Elapsed: tc.elapsed}
		if got := n.opacity(); got < tc.want-1e-4 || got > tc.want+1e-4 {
			t.Errorf("opacity at %v = %v, want %v", tc.elapsed, got, tc.want)
		}
	}
}

func TestAggregate(t *testing.T) {
	values := []float32{1, 3, 2, 8, 5, 5}
	tests := []struct {
		name    string
		buckets int
		agg     Agg
		want    []float32
	}{
		{"mean", 3, AggMean, []float32{2, 5, 5}},
		{"min", 3, AggMin, []float32{1, 2, 5}},
		{"max", 2, AggMax, []float32{3, 8}},
		{"sum", 2, AggSum, []float32{6, 18}},
		{"uneven", 4, AggSum, []float32{1, 5, 8, 10}},
		{"no reduction", 10, AggMean, values},
		{"zero buckets", 0, AggMean, values},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Aggregate(values, tc.buckets, tc.agg)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestStats(t *testing.T) {
	got := Stats([]float32{4, -2, 10, 0})
	want := SeriesStats{N: 4, Min: -2, Max: 10, Mean: 3, Last: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(SeriesStats{}, Stats(nil)); diff != "" {
		t.Errorf("empty (-want +got):\n%s", diff)
	}
}

func TestSmoothedSurvivesShortGaps(t *testing.T) {
	h := newHarness(t)
	var got []float32
	sample := func(v float32) {
		h.frame(func(ctx *gui.Context) { got = append(got, Smoothed(ctx, "fps", v, 0.5)) })
	}

	sample(10)
	sample(20)
	for range 5 {
		h.frame(func(*gui.Context) {})
	}
	sample(25)

	if diff := cmp.Diff([]float32{10, 15, 20}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPlotsAdvanceCursor(t *testing.T) {
	h := newHarness(t)
	h.input.SetMousePos(50, 10)
	h.frame(func(ctx *gui.Context) {
		PlotLines(ctx, "perf", []Series{{Label: "fps", Values: []float32{1, 2, 3}}}, 40, gui.WithWidth(100), WithPlotGrid(4))
		PlotLines(ctx, "empty", nil, 40)
		PlotHistogram(ctx, "hist", []float32{3, -1, 2}, 30, WithPlotRange(-2, 4))
		PlotHistogram(ctx, "none", nil, 30)

		want := float32(40+4) * 2
		want += float32(30+4) * 2
		if y := ctx.GetCursorPos().Y; y != want {
			t.Errorf("cursor y = %v, want %v", y, want)
		}
	})
}
