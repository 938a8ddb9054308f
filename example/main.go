// Example opens a window showing every imx widget, with fonts built by
// font.Manager and a theme chosen at runtime and remembered between runs.
//
//	go run ./example/
//
// IMX_FONT_DIR points font sources at a directory of .ttf/.otf files and
// IMX_LOCALE selects the glyph ranges (default "en"). IMX_VERBOSE=1 turns
// on debug logging.
package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imx"
	"github.com/go-theft-auto/imx/backend/opengl"
	"github.com/go-theft-auto/imx/font"
	"github.com/go-theft-auto/imx/gui"
	"github.com/go-theft-auto/imx/theme"
)

const (
	windowWidth  = 960
	windowHeight = 720
	themeKey     = "current"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type demo struct {
	tags    []string
	ports   []int
	enabled bool
	lock    bool
	themeIx int
	themes  []imx.IconItem
	samples []float32
	window  int
	t       float64
	notes   imx.Notifier
}

func run() error {
	gui.SetVerbose(os.Getenv("IMX_VERBOSE") == "1")
	log := gui.NewLogger("example")

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "imx", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInput(window)
	gui.SetClipboardProvider(opengl.Clipboard{Window: window})

	fonts := font.NewManager(
		font.WithUploader(renderer),
		font.WithBaseDir(os.Getenv("IMX_FONT_DIR")),
		font.WithLocale(os.Getenv("IMX_LOCALE")),
		font.WithUIScale(opengl.ContentScale(window)),
	)
	window.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		fonts.SetUIScale(max(x, y))
	})

	store := themeStore()
	ui := gui.New(renderer, gui.WithFontProvider(fonts))

	d := &demo{
		tags:    []string{"alpha", "beta"},
		ports:   []int{80, 443},
		enabled: true,
		window:  600,
	}
	for _, name := range theme.Names() {
		d.themes = append(d.themes, imx.IconItem{Icon: "*", Label: name})
	}
	if t, err := theme.Load(store, themeKey); err == nil {
		ui.SetStyle(t.Apply(gui.DefaultStyle()))
		for i, it := range d.themes {
			if it.Label == t.Name {
				d.themeIx = i
			}
		}
	} else if !errors.Is(err, theme.ErrNotFound) {
		log.Warn("saved theme unreadable", "err", err)
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		// Between frames: the only place atlases may be reallocated.
		if res := fonts.RebuildIfNeeded(); res.State == font.RebuildFailed {
			d.notes.Error("Fonts", res.Err.Error())
		}

		in := input.NewFrame(dt)
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.1, 0.1, 0.12, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(in, gui.Vec2{X: float32(w), Y: float32(h)}, dt)
		if d.frame(ctx, window) {
			name := d.themes[d.themeIx].Label
			t, _ := theme.Builtin(name)
			ui.SetStyle(t.Apply(gui.DefaultStyle()))
			if err := theme.Save(store, themeKey, t); err != nil {
				d.notes.Warning("Theme", err.Error())
			}
			d.notes.Info("Theme", name)
		}
		d.notes.Update(dt)
		d.notes.Draw(ctx)
		if err := ui.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}

// frame lays out one frame and reports whether the theme selection changed.
func (d *demo) frame(ctx *gui.Context, window *glfw.Window) (themeChanged bool) {
	d.t += float64(ctx.DeltaTime)
	d.samples = append(d.samples, float32(math.Sin(d.t*2)+0.3*math.Sin(d.t*7)))
	if len(d.samples) > d.window {
		d.samples = d.samples[len(d.samples)-d.window:]
	}

	ctx.SetCursorPos(16, 16)
	ctx.Panel("Lists", gui.Width(320))(func() {
		imx.ToggleSwitch(ctx, "Lock lists", &d.lock)
		imx.Disabled(ctx, d.lock)(func() {
			if imx.ListEditor(ctx, "Tags", &d.tags, imx.ListEditorConfig{Deduplicate: true}) {
				d.notes.Success("Tags", fmt.Sprintf("%d tags", len(d.tags)))
			}
			imx.ListEditor(ctx, "Ports", &d.ports, imx.ListEditorConfig{DeleteOnRight: true})
		})
		ctx.Separator()
		themeChanged = imx.IconCombo(ctx, "Theme", &d.themeIx, d.themes)
	})

	ctx.SetCursorPos(360, 16)
	ctx.Panel("Signals", gui.Width(400))(func() {
		imx.ToggleSwitch(ctx, "Live", &d.enabled)
		ctx.NumberInputInt("Window", &d.window, gui.WithIntRange(60, 3600), gui.WithStep(60), gui.WithWidth(80))
		view := d.samples
		if !d.enabled {
			view = nil
		}
		imx.PlotLines(ctx, "wave", []imx.Series{{Label: "wave", Values: imx.Aggregate(view, 120, imx.AggMean)}},
			90, imx.WithPlotRange(-1.5, 1.5), imx.WithPlotGrid(4), imx.WithPlotLegend())
		imx.PlotHistogram(ctx, "peaks", imx.Aggregate(view, 24, imx.AggMax), 60)
		st := imx.Stats(view)
		ctx.Text(fmt.Sprintf("mean %.2f  smoothed %.2f", st.Mean, imx.Smoothed(ctx, "wave-mean", st.Last, 0.05)))
	})

	ctx.SetCursorPos(float32(windowWidth)-80, 16)
	ctx.HStack(gui.Gap(4))(func() {
		if imx.SystemButton(ctx, "min", imx.SystemMinimize, 20) {
			window.Iconify()
		}
		if imx.SystemButton(ctx, "close", imx.SystemClose, 20) {
			window.SetShouldClose(true)
		}
	})
	if imx.CircleButton(ctx, "bell", "!", 14) {
		d.notes.Push(imx.NotifyWarning, "Bell", "rang", imx.DefaultNotifyDuration)
	}
	return themeChanged
}

func themeStore() theme.Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		return &theme.MemStore{}
	}
	return theme.DirStore{Dir: filepath.Join(dir, "imx")}
}
