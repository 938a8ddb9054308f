package gui

import "sync/atomic"

// ClipboardProvider is the system clipboard. backend/opengl implements it
// over GLFW.
type ClipboardProvider interface {
	GetText() string
	SetText(text string)
}

type clipboardHolder struct{ cp ClipboardProvider }

var clipboard atomic.Pointer[clipboardHolder]

// SetClipboardProvider installs the clipboard used by InputText.
// Pass nil to disable clipboard shortcuts.
func SetClipboardProvider(cp ClipboardProvider) {
	clipboard.Store(&clipboardHolder{cp: cp})
}

func clipboardProvider() ClipboardProvider {
	if h := clipboard.Load(); h != nil {
		return h.cp
	}
	return nil
}

// ClipboardGetText reads the clipboard, or "" without a provider.
func ClipboardGetText() string {
	if cp := clipboardProvider(); cp != nil {
		return cp.GetText()
	}
	return ""
}

// ClipboardSetText writes the clipboard; a no-op without a provider.
func ClipboardSetText(text string) {
	if cp := clipboardProvider(); cp != nil {
		cp.SetText(text)
	}
}
