// Command gen renders each imx widget under every builtin theme in a
// hidden window and writes JPEG screenshots to doc/imgs/.
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
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

const maxW, maxH = 800, 600

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type shot struct {
	name          string
	width, height int
	frames        int // default 2; animated widgets need more to settle
	draw          func(ctx *gui.Context)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(maxW, maxH, "imx-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(maxW, maxH)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	fonts := font.NewManager(font.WithUploader(renderer))
	if res := fonts.RebuildIfNeeded(); !res.Changed() {
		return fmt.Errorf("fonts: %v: %w", res.State, res.Err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	n := 0
	for _, name := range theme.Names() {
		t, _ := theme.Builtin(name)
		style := t.Apply(gui.DefaultStyle())
		for _, s := range shots() {
			file := filepath.Join(outDir, name+"-"+s.name+".jpg")
			if err := capture(renderer, fonts, style, s, file); err != nil {
				return fmt.Errorf("%s/%s: %w", name, s.name, err)
			}
			n++
		}
	}
	fmt.Printf("wrote %d screenshots to %s/\n", n, outDir)
	return nil
}

func capture(r *opengl.Renderer, fonts *font.Manager, style gui.Style, s shot, path string) error {
	// Only the projection changes; resizing the hidden window is async and
	// would desync the scissor.
	r.Resize(s.width, s.height)
	ui := gui.New(r, gui.WithStyle(style), gui.WithFontProvider(fonts))

	frames := max(s.frames, 2)
	for range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: float32(s.width), Y: float32(s.height)}, 1.0/60)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// flipRows turns a bottom-up GL readback into a top-down image.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	tmp := make([]byte, img.Stride)
	for y := range h / 2 {
		a := img.Pix[y*img.Stride : (y+1)*img.Stride]
		b := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

func shots() []shot {
	var (
		tags    = []string{"alpha", "beta", "gamma"}
		ports   = []int{80, 443}
		on      = true
		off     = false
		pick    = 1
		items   = []imx.IconItem{{Icon: "*", Label: "Star"}, {Icon: "+", Label: "Plus"}, {Icon: "!", Label: "Alert"}}
		wave    = make([]float32, 64)
		notices imx.Notifier
	)
	for i := range wave {
		wave[i] = float32(i%16) / 16
	}
	notices.Info("Saved", "theme written")
	notices.Error("Fonts", "missing.ttf not found")

	at := func(ctx *gui.Context) { ctx.SetCursorPos(12, 12) }
	return []shot{
		{name: "list_editor", width: 320, height: 80, draw: func(ctx *gui.Context) {
			at(ctx)
			ctx.VStack(gui.Gap(6))(func() {
				imx.ListEditor(ctx, "Tags", &tags, imx.ListEditorConfig{})
				imx.ListEditor(ctx, "Ports", &ports, imx.ListEditorConfig{DeleteOnRight: true})
			})
		}},
		{name: "toggle", width: 240, height: 80, frames: 30, draw: func(ctx *gui.Context) {
			at(ctx)
			ctx.VStack(gui.Gap(6))(func() {
				imx.ToggleSwitch(ctx, "Enabled", &on)
				imx.ToggleSwitch(ctx, "Disabled", &off)
				imx.Disabled(ctx, true)(func() { imx.ToggleSwitch(ctx, "Locked", &on) })
			})
		}},
		{name: "buttons", width: 200, height: 60, draw: func(ctx *gui.Context) {
			at(ctx)
			ctx.HStack(gui.Gap(6))(func() {
				imx.CircleButton(ctx, "add", "+", 12)
				imx.SystemButton(ctx, "min", imx.SystemMinimize, 20)
				imx.SystemButton(ctx, "max", imx.SystemMaximize, 20)
				imx.SystemButton(ctx, "close", imx.SystemClose, 20)
			})
		}},
		{name: "icon_combo", width: 240, height: 60, draw: func(ctx *gui.Context) {
			at(ctx)
			imx.IconCombo(ctx, "Icon", &pick, items)
		}},
		{name: "plots", width: 360, height: 200, draw: func(ctx *gui.Context) {
			at(ctx)
			ctx.VStack(gui.Gap(6))(func() {
				imx.PlotLines(ctx, "saw", []imx.Series{{Label: "saw", Values: wave}}, 80, imx.WithPlotGrid(4), imx.WithPlotLegend())
				imx.PlotHistogram(ctx, "buckets", imx.Aggregate(wave, 16, imx.AggMax), 80)
			})
		}},
		{name: "notify", width: 360, height: 160, frames: 10, draw: func(ctx *gui.Context) {
			notices.Update(ctx.DeltaTime)
			notices.Draw(ctx)
		}},
	}
}
