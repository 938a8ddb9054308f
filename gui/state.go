package gui

// InputTextState is the per-widget edit state of InputText. Positions are
// in runes. The selection spans Anchor..Cursor; it is empty when they are
// equal.
type InputTextState struct {
	Editing bool

	Cursor int
	Anchor int

	ScrollOffset float32
	BlinkTime    float32

	undo    []string
	undoPos int
}

const maxUndo = 50

// HasSelection reports a non-empty selection.
func (s *InputTextState) HasSelection() bool {
	return s.Anchor != s.Cursor
}

// Selection returns the selection as an ordered range.
func (s *InputTextState) Selection() (start, end int) {
	if s.Anchor < s.Cursor {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// ClearSelection collapses the selection onto the cursor.
func (s *InputTextState) ClearSelection() {
	s.Anchor = s.Cursor
}

// SelectAll selects n runes and puts the cursor at the end.
func (s *InputTextState) SelectAll(n int) {
	s.Anchor = 0
	s.Cursor = n
}

// MoveTo places the cursor at pos, clamped to [0, n]. With extend the
// selection anchor stays put.
func (s *InputTextState) MoveTo(pos, n int, extend bool) {
	s.Cursor = max(0, min(pos, n))
	if !extend {
		s.Anchor = s.Cursor
	}
	s.BlinkTime = 0
}

// clamp repairs positions after the text changed underneath the state.
func (s *InputTextState) clamp(n int) {
	s.Cursor = max(0, min(s.Cursor, n))
	s.Anchor = max(0, min(s.Anchor, n))
}

// Insert replaces the selection (if any) with ins.
func (s *InputTextState) Insert(text, ins []rune) []rune {
	s.clamp(len(text))
	start, end := s.Selection()
	out := make([]rune, 0, len(text)-(end-start)+len(ins))
	out = append(out, text[:start]...)
	out = append(out, ins...)
	out = append(out, text[end:]...)
	s.Cursor = start + len(ins)
	s.Anchor = s.Cursor
	s.BlinkTime = 0
	return out
}

// Backspace deletes the selection or the rune before the cursor.
func (s *InputTextState) Backspace(text []rune) []rune {
	s.clamp(len(text))
	if !s.HasSelection() {
		if s.Cursor == 0 {
			return text
		}
		s.Anchor = s.Cursor - 1
	}
	return s.Insert(text, nil)
}

// Delete deletes the selection or the rune after the cursor.
func (s *InputTextState) Delete(text []rune) []rune {
	s.clamp(len(text))
	if !s.HasSelection() {
		if s.Cursor >= len(text) {
			return text
		}
		s.Anchor = s.Cursor + 1
	}
	return s.Insert(text, nil)
}

// SelectedText returns the selected runes as a string.
func (s *InputTextState) SelectedText(text []rune) string {
	s.clamp(len(text))
	start, end := s.Selection()
	return string(text[start:end])
}

// PushUndo records text as an undo point. Redo history past the current
// point is dropped.
func (s *InputTextState) PushUndo(text string) {
	s.undo = s.undo[:s.undoPos]
	if n := len(s.undo); n > 0 && s.undo[n-1] == text {
		return
	}
	s.undo = append(s.undo, text)
	if len(s.undo) > maxUndo {
		s.undo = s.undo[1:]
	}
	s.undoPos = len(s.undo)
}

// Undo steps back from current. It returns false with nothing to undo.
func (s *InputTextState) Undo(current string) (string, bool) {
	if s.undoPos == 0 {
		return "", false
	}
	if s.undoPos == len(s.undo) {
		s.undo = append(s.undo, current)
	}
	s.undoPos--
	return s.undo[s.undoPos], true
}

// Redo steps forward after Undo.
func (s *InputTextState) Redo() (string, bool) {
	if s.undoPos >= len(s.undo)-1 {
		return "", false
	}
	s.undoPos++
	return s.undo[s.undoPos], true
}

// CanUndo reports whether Undo would succeed.
func (s *InputTextState) CanUndo() bool {
	return s.undoPos > 0
}

// CanRedo reports whether Redo would succeed.
func (s *InputTextState) CanRedo() bool {
	return s.undoPos < len(s.undo)-1
}

func wordLeft(text []rune, pos int) int {
	for pos > 0 && isSpace(text[pos-1]) {
		pos--
	}
	for pos > 0 && !isSpace(text[pos-1]) {
		pos--
	}
	return pos
}

func wordRight(text []rune, pos int) int {
	for pos < len(text) && !isSpace(text[pos]) {
		pos++
	}
	for pos < len(text) && isSpace(text[pos]) {
		pos++
	}
	return pos
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
