// Package theme provides named style presets, a small text format for
// defining them, and persistence under a caller-chosen key.
//
//	t, _ := theme.Builtin("gta")
//	ui.SetStyle(t.Apply(gui.DefaultStyle()))
package theme

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-theft-auto/imx/gui"
)

// Theme overrides parts of a gui.Style. Colors not listed and nil scalars
// come from Base, then from the style Apply is called on.
type Theme struct {
	Name   string
	Base   string // builtin applied first, "" for none
	Colors map[gui.StyleColor]uint32

	Rounding  *float32
	Alpha     *float32
	FontScale *float32
}

// maxBaseDepth bounds Base chains; builtins never nest deeper.
const maxBaseDepth = 4

// Apply returns style with the theme's base and overrides applied.
func (t Theme) Apply(style gui.Style) gui.Style {
	return t.apply(style, 0)
}

func (t Theme) apply(style gui.Style, depth int) gui.Style {
	if t.Base != "" && t.Base != t.Name && depth < maxBaseDepth {
		if base, ok := builtins[t.Base]; ok {
			style = base.apply(style, depth+1)
		}
	}
	for c, v := range t.Colors {
		style.SetColor(c, v)
	}
	if t.Rounding != nil {
		style.Rounding = *t.Rounding
	}
	if t.Alpha != nil {
		style.Alpha = min(max(*t.Alpha, 0), 1)
	}
	if t.FontScale != nil && *t.FontScale > 0 {
		style.FontScale = *t.FontScale
	}
	return style
}

// Validate reports a Base that names no builtin.
func (t Theme) Validate() error {
	if t.Base == "" {
		return nil
	}
	if _, ok := builtins[t.Base]; !ok {
		return fmt.Errorf("theme %q: unknown base %q", t.Name, t.Base)
	}
	return nil
}

func ptr(v float32) *float32 { return &v }

func clonePtr(p *float32) *float32 {
	if p == nil {
		return nil
	}
	return ptr(*p)
}

func (t Theme) clone() Theme {
	t.Colors = maps.Clone(t.Colors)
	t.Rounding = clonePtr(t.Rounding)
	t.Alpha = clonePtr(t.Alpha)
	t.FontScale = clonePtr(t.FontScale)
	return t
}

var builtins = map[string]Theme{
	"default": {Name: "default"},
	"dark": {
		Name: "dark",
		Colors: map[gui.StyleColor]uint32{
			gui.ColWindowBg:       gui.RGBA(15, 15, 18, 240),
			gui.ColFrameBg:        gui.RGBA(24, 24, 28, 255),
			gui.ColFrameBgHovered: gui.RGBA(36, 36, 44, 255),
			gui.ColButton:         gui.RGBA(40, 40, 46, 255),
			gui.ColButtonHovered:  gui.RGBA(58, 58, 68, 255),
			gui.ColButtonActive:   gui.RGBA(76, 76, 90, 255),
			gui.ColHeader:         gui.RGBA(45, 85, 130, 255),
			gui.ColPopupBg:        gui.RGBA(18, 18, 22, 250),
		},
		Rounding: ptr(3),
	},
	"light": {
		Name: "light",
		Colors: map[gui.StyleColor]uint32{
			gui.ColText:           gui.RGBA(20, 20, 20, 255),
			gui.ColTextDisabled:   gui.RGBA(140, 140, 140, 255),
			gui.ColWindowBg:       gui.RGBA(240, 240, 240, 245),
			gui.ColBorder:         gui.RGBA(180, 180, 180, 255),
			gui.ColFrameBg:        gui.RGBA(255, 255, 255, 255),
			gui.ColFrameBgHovered: gui.RGBA(230, 236, 245, 255),
			gui.ColFrameBgActive:  gui.RGBA(210, 222, 240, 255),
			gui.ColButton:         gui.RGBA(220, 220, 220, 255),
			gui.ColButtonHovered:  gui.RGBA(200, 210, 225, 255),
			gui.ColButtonActive:   gui.RGBA(170, 190, 220, 255),
			gui.ColHeader:         gui.RGBA(150, 185, 230, 255),
			gui.ColHeaderHovered:  gui.RGBA(210, 220, 235, 255),
			gui.ColPopupBg:        gui.RGBA(250, 250, 250, 250),
			gui.ColSeparator:      gui.RGBA(190, 190, 190, 255),
			gui.ColToggleOff:      gui.RGBA(190, 190, 190, 255),
			gui.ColKnob:           gui.RGBA(255, 255, 255, 255),
		},
		Rounding: ptr(3),
	},
	"gta": {
		Name: "gta",
		Colors: map[gui.StyleColor]uint32{
			gui.ColText:           gui.ColorWhite,
			gui.ColTextDisabled:   gui.RGBA(128, 128, 128, 255),
			gui.ColWindowBg:       gui.RGBA(0, 0, 0, 220),
			gui.ColBorder:         gui.RGBA(0, 100, 150, 255),
			gui.ColFrameBg:        gui.RGBA(20, 20, 20, 255),
			gui.ColFrameBgHovered: gui.RGBA(30, 40, 50, 255),
			gui.ColButton:         gui.RGBA(40, 40, 40, 255),
			gui.ColButtonHovered:  gui.RGBA(60, 80, 100, 255),
			gui.ColButtonActive:   gui.RGBA(0, 150, 200, 255),
			gui.ColHeader:         gui.RGBA(0, 120, 180, 255),
			gui.ColHeaderHovered:  gui.RGBA(50, 70, 90, 255),
			gui.ColPopupBg:        gui.RGBA(10, 10, 10, 250),
			gui.ColSeparator:      gui.RGBA(0, 150, 200, 128),
			gui.ColAccent:         gui.RGBA(255, 200, 0, 255),
			gui.ColToggleOn:       gui.RGBA(0, 150, 200, 255),
			gui.ColNotifyInfo:     gui.RGBA(0, 80, 120, 230),
			gui.ColNotifySuccess:  gui.RGBA(0, 120, 60, 230),
			gui.ColNotifyWarning:  gui.RGBA(200, 150, 0, 230),
			gui.ColNotifyError:    gui.RGBA(180, 40, 40, 230),
		},
		Rounding: ptr(0),
	},
}

// Builtin returns a copy of the named builtin theme.
func Builtin(name string) (Theme, bool) {
	t, ok := builtins[name]
	if !ok {
		return Theme{}, false
	}
	return t.clone(), true
}

// Names lists the builtin themes alphabetically.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}
