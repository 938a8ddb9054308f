/*
Package imx is a widget-extension library for the gui immediate-mode
toolkit. Every widget takes the frame's *gui.Context explicitly and keeps
whatever state it needs in a gui.FrameStore keyed by a stable ID.

# Widgets

	imx.ToggleSwitch(ctx, "VSync", &vsync)
	imx.CircleButton(ctx, "play", ">", 12)
	imx.SystemButton(ctx, "close", imx.SystemClose, 16)
	imx.IconCombo(ctx, "Tool", &tool, tools)
	imx.ListEditor(ctx, "Tags", &tags, imx.ListEditorConfig{Deduplicate: true})
	imx.PlotLines(ctx, "fps", []imx.Series{{Label: "fps", Values: samples}}, 60)
	notifier.Draw(ctx)

A list editor reports true only on frames where it inserted or removed an
element, so callers can persist on change without diffing:

	if imx.ListEditor(ctx, "Ports", &cfg.Ports, imx.ListEditorConfig{}) {
	    save(cfg)
	}

# Disabled scopes

	imx.Disabled(ctx, !connected)(func() {
	    if ctx.Button("Send") { send() }
	})

The scope greys everything inside it out and blocks interaction. It is
released with defer, so an early return or panic inside fn cannot leave
the context disabled.

# Colors

BlendColors composites packed 0xAABBGGRR colors with the source-over
operator; gui.RGBA builds them.

Fonts live in package font, themes in package theme.
*/
package imx
