package imx

import (
	"testing"

	"github.com/go-theft-auto/imx/gui"
)

func TestDisabledScopeRestores(t *testing.T) {
	ctx := gui.NewContext()

	Disabled(ctx, true)(func() {
		if !ctx.ItemDisabled() {
			t.Error("not disabled inside scope")
		}
		if a := ctx.Alpha(); a != ctx.Style().DisabledAlpha {
			t.Errorf("Alpha() = %v, want %v", a, ctx.Style().DisabledAlpha)
		}
	})
	if ctx.ItemDisabled() || ctx.DisabledDepth() != 0 || ctx.Alpha() != 1 {
		t.Errorf("scope leaked: disabled=%v depth=%d alpha=%v",
			ctx.ItemDisabled(), ctx.DisabledDepth(), ctx.Alpha())
	}
}

func TestDisabledScopeRestoresOnPanic(t *testing.T) {
	ctx := gui.NewContext()

	func() {
		defer func() { _ = recover() }()
		Disabled(ctx, true)(func() {
			panic("boom")
		})
	}()
	if ctx.DisabledDepth() != 0 || ctx.Alpha() != 1 {
		t.Errorf("scope not released after panic: depth=%d alpha=%v", ctx.DisabledDepth(), ctx.Alpha())
	}
}

func TestBeginDisabledEndIsIdempotent(t *testing.T) {
	ctx := gui.NewContext()
	outer := BeginDisabled(ctx, false)
	end := BeginDisabled(ctx, true)
	end()
	end()
	if ctx.DisabledDepth() != 1 {
		t.Errorf("DisabledDepth() = %d, want 1", ctx.DisabledDepth())
	}
	outer()
}

func TestDisabledBlocksButton(t *testing.T) {
	h := newHarness(t)
	h.click(5, 5)

	clicked := false
	h.frame(func(ctx *gui.Context) {
		Disabled(ctx, true)(func() {
			clicked = ctx.Button("Send")
		})
	})
	if clicked {
		t.Error("button inside disabled scope reported a click")
	}
}
