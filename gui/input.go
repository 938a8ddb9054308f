package gui

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key identifies a keyboard key the widgets react to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState is the input snapshot for one frame, filled by a platform
// adapter such as backend/opengl.GLFWInputAdapter.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	MouseWheelX float32
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyUp       [KeyCount]bool
	keyHold     [KeyCount]float32
	keyHoldPrev [KeyCount]float32

	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState returns an empty input state.
func NewInputState() *InputState {
	return &InputState{InputChars: make([]rune, 0, 16)}
}

// Reset clears the one-frame events (clicks, presses, typed text, wheel).
// Held buttons and keys persist.
func (s *InputState) Reset() {
	s.mouseClicked = [MouseButtonCount]bool{}
	s.mouseUp = [MouseButtonCount]bool{}
	s.keyPressed = [KeyCount]bool{}
	s.keyUp = [KeyCount]bool{}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the cursor position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button transition; a press sets the clicked flag.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	was := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !was {
		s.mouseClicked[button] = true
	}
	if !down && was {
		s.mouseUp[button] = true
	}
}

// SetKey records a key transition.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	was := s.keyDown[key]
	s.keyDown[key] = down
	if down && !was {
		s.keyPressed[key] = true
		s.keyHold[key] = 0
		s.keyHoldPrev[key] = 0
	}
	if !down && was {
		s.keyUp[key] = true
		s.keyHold[key] = 0
		s.keyHoldPrev[key] = 0
	}
}

// UpdateKeyRepeat advances hold timers by dt. Call once per frame.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for k := range s.keyDown {
		s.keyHoldPrev[k] = s.keyHold[k]
		if s.keyDown[k] {
			s.keyHold[k] += dt
		}
	}
}

// SetMouseWheel sets the wheel delta for this frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// AddInputChar appends a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown reports whether button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseDown[button]
}

// MouseClicked reports whether button went down this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseClicked[button]
}

// MouseReleased reports whether button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseUp[button]
}

// KeyDown reports whether key is held.
func (s *InputState) KeyDown(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keyDown[key]
}

// KeyPressed reports whether key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keyPressed[key]
}

// KeyReleased reports whether key went up this frame.
func (s *InputState) KeyReleased(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keyUp[key]
}

// KeyRepeated fires on the initial press, then after KeyRepeatDelay once
// per KeyRepeatInterval while the key stays down.
func (s *InputState) KeyRepeated(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] || s.keyHold[key] < KeyRepeatDelay {
		return false
	}
	now := int((s.keyHold[key] - KeyRepeatDelay) / KeyRepeatInterval)
	prev := int((s.keyHoldPrev[key] - KeyRepeatDelay) / KeyRepeatInterval)
	if s.keyHoldPrev[key] < KeyRepeatDelay {
		return true
	}
	return now > prev
}

// HasInputChars reports whether text was typed this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars drops this frame's typed text so later widgets do not
// see it.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
