package imx

import "github.com/go-theft-auto/imx/gui"

// BeginDisabled opens a disabled scope: widgets ignore interaction and draw
// at the style's DisabledAlpha. The returned func closes the scope and must
// be called exactly once, typically with defer. With disabled false the
// scope still nests but changes nothing.
func BeginDisabled(ctx *gui.Context, disabled bool) (end func()) {
	ctx.PushItemDisabled(disabled)
	alpha := float32(1)
	if disabled {
		alpha = ctx.Style().DisabledAlpha
	}
	ctx.PushAlpha(alpha)

	done := false
	return func() {
		if done {
			return
		}
		done = true
		ctx.PopAlpha()
		ctx.PopItemDisabled()
	}
}

// Disabled runs fn inside a disabled scope.
func Disabled(ctx *gui.Context, disabled bool) func(func()) {
	return func(fn func()) {
		defer BeginDisabled(ctx, disabled)()
		fn()
	}
}
