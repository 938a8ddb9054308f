package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imx/font"
	"github.com/go-theft-auto/imx/gui"
)

// GLFWInput turns GLFW window callbacks into a gui.InputState.
type GLFWInput struct {
	window *glfw.Window
	input  *gui.InputState
}

// NewGLFWInput installs input callbacks on window. It replaces any
// callbacks already set.
func NewGLFWInput(window *glfw.Window) *GLFWInput {
	a := &GLFWInput{window: window, input: gui.NewInputState()}
	window.SetKeyCallback(a.onKey)
	window.SetCharCallback(a.onChar)
	window.SetMouseButtonCallback(a.onMouseButton)
	window.SetScrollCallback(a.onScroll)
	window.SetCursorPosCallback(a.onCursor)
	return a
}

// NewFrame clears per-frame edges, advances key repeat by dt, and samples
// the cursor and modifiers. Call it once per frame before glfw.PollEvents.
func (a *GLFWInput) NewFrame(dt float32) *gui.InputState {
	in := a.input
	in.Reset()
	in.UpdateKeyRepeat(dt)

	x, y := a.window.GetCursorPos()
	in.SetMousePos(float32(x), float32(y))

	down := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if a.window.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	in.ModCtrl = down(glfw.KeyLeftControl, glfw.KeyRightControl)
	in.ModShift = down(glfw.KeyLeftShift, glfw.KeyRightShift)
	in.ModAlt = down(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	in.ModSuper = down(glfw.KeyLeftSuper, glfw.KeyRightSuper)
	return in
}

// Input returns the state being filled.
func (a *GLFWInput) Input() *gui.InputState {
	return a.input
}

func (a *GLFWInput) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := keyMap[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInput) onChar(_ *glfw.Window, r rune) {
	a.input.AddInputChar(r)
}

func (a *GLFWInput) onMouseButton(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	var mb gui.MouseButton
	switch b {
	case glfw.MouseButtonLeft:
		mb = gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		mb = gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		mb = gui.MouseButtonMiddle
	default:
		return
	}
	a.input.SetMouseButton(mb, action == glfw.Press)
}

func (a *GLFWInput) onScroll(_ *glfw.Window, dx, dy float64) {
	a.input.SetMouseWheel(float32(dx), float32(dy))
}

func (a *GLFWInput) onCursor(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x), float32(y))
}

var keyMap = map[glfw.Key]gui.Key{
	glfw.KeyTab:       gui.KeyTab,
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeySpace:     gui.KeySpace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyKPEnter:   gui.KeyEnter,
	glfw.KeyEscape:    gui.KeyEscape,
	glfw.KeyA:         gui.KeyA,
	glfw.KeyC:         gui.KeyC,
	glfw.KeyV:         gui.KeyV,
	glfw.KeyX:         gui.KeyX,
	glfw.KeyY:         gui.KeyY,
	glfw.KeyZ:         gui.KeyZ,
}

// Clipboard is a gui.ClipboardProvider over a GLFW window.
type Clipboard struct {
	Window *glfw.Window
}

func (c Clipboard) GetText() string {
	return c.Window.GetClipboardString()
}

func (c Clipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}

// ContentScale returns the window's content scale as a font.Manager UI
// scale. Monitors that report nothing yield 1.
func ContentScale(window *glfw.Window) float32 {
	sx, sy := window.GetContentScale()
	s := max(sx, sy)
	if s <= 0 {
		return font.DefaultUIScale
	}
	return s
}
