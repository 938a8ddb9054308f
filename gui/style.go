package gui

import "fmt"

// Spacing scale.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
)

// StyleColor indexes Style.Colors.
type StyleColor int

const (
	ColText StyleColor = iota
	ColTextDisabled
	ColWindowBg
	ColBorder
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColPopupBg
	ColSeparator
	ColAccent
	ColPlotLines
	ColPlotHistogram
	ColToggleOn
	ColToggleOff
	ColKnob
	ColNotifyInfo
	ColNotifySuccess
	ColNotifyWarning
	ColNotifyError
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	StyleColorCount
)

var styleColorNames = [StyleColorCount]string{
	ColText:           "text",
	ColTextDisabled:   "text_disabled",
	ColWindowBg:       "window_bg",
	ColBorder:         "border",
	ColFrameBg:        "frame_bg",
	ColFrameBgHovered: "frame_bg_hovered",
	ColFrameBgActive:  "frame_bg_active",
	ColButton:         "button",
	ColButtonHovered:  "button_hovered",
	ColButtonActive:   "button_active",
	ColHeader:         "header",
	ColHeaderHovered:  "header_hovered",
	ColPopupBg:        "popup_bg",
	ColSeparator:      "separator",
	ColAccent:         "accent",
	ColPlotLines:      "plot_lines",
	ColPlotHistogram:  "plot_histogram",
	ColToggleOn:       "toggle_on",
	ColToggleOff:      "toggle_off",
	ColKnob:           "knob",
	ColNotifyInfo:     "notify_info",
	ColNotifySuccess:  "notify_success",
	ColNotifyWarning:  "notify_warning",
	ColNotifyError:    "notify_error",

	ColScrollbarBg:          "scrollbar_bg",
	ColScrollbarGrab:        "scrollbar_grab",
	ColScrollbarGrabHovered: "scrollbar_grab_hovered",
}

// String returns the snake_case name used by theme files.
func (c StyleColor) String() string {
	if c < 0 || c >= StyleColorCount {
		return fmt.Sprintf("StyleColor(%d)", int(c))
	}
	return styleColorNames[c]
}

// ParseStyleColor is the inverse of StyleColor.String.
func ParseStyleColor(name string) (StyleColor, bool) {
	for i, n := range styleColorNames {
		if n == name {
			return StyleColor(i), true
		}
	}
	return 0, false
}

// Style is the visual configuration of a frame.
type Style struct {
	Colors [StyleColorCount]uint32

	FontName string // role passed to FontProvider.SetActiveFont, "" = provider default

	FontScale     float32
	CharWidth     float32 // built-in bitmap font cell
	CharHeight    float32
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32
	BorderSize    float32
	Rounding      float32
	ScrollbarSize float32

	Alpha         float32 // global opacity multiplier
	DisabledAlpha float32 // multiplier applied inside a disabled scope
}

// Color returns the raw style color, without alpha scaling.
func (s Style) Color(c StyleColor) uint32 {
	if c < 0 || c >= StyleColorCount {
		return 0
	}
	return s.Colors[c]
}

// SetColor assigns a style color.
func (s *Style) SetColor(c StyleColor, v uint32) {
	if c >= 0 && c < StyleColorCount {
		s.Colors[c] = v
	}
}

// DefaultStyle returns the neutral dark style.
func DefaultStyle() Style {
	s := Style{
		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   SpaceSM,
		PanelPadding:  SpaceMD,
		ButtonPadding: 6,
		InputPadding:  SpaceSM,
		BorderSize:    1,
		ScrollbarSize: 10,
		Alpha:         1,
		DisabledAlpha: 0.5,
	}
	s.Colors = [StyleColorCount]uint32{
		ColText:           ColorWhite,
		ColTextDisabled:   ColorGray,
		ColWindowBg:       RGBA(20, 20, 20, 200),
		ColBorder:         RGBA(80, 80, 80, 255),
		ColFrameBg:        RGBA(30, 30, 30, 255),
		ColFrameBgHovered: RGBA(40, 40, 50, 255),
		ColFrameBgActive:  RGBA(50, 50, 65, 255),
		ColButton:         RGBA(50, 50, 50, 255),
		ColButtonHovered:  RGBA(70, 70, 70, 255),
		ColButtonActive:   RGBA(90, 90, 90, 255),
		ColHeader:         RGBA(50, 100, 150, 255),
		ColHeaderHovered:  RGBA(60, 60, 60, 255),
		ColPopupBg:        RGBA(25, 25, 25, 250),
		ColSeparator:      RGBA(80, 80, 80, 255),
		ColAccent:         ColorCyan,
		ColPlotLines:      RGBA(156, 156, 156, 255),
		ColPlotHistogram:  RGBA(230, 179, 0, 255),
		ColToggleOn:       RGBA(50, 130, 200, 255),
		ColToggleOff:      RGBA(70, 70, 70, 255),
		ColKnob:           RGBA(235, 235, 235, 255),
		ColNotifyInfo:     RGBA(50, 100, 150, 230),
		ColNotifySuccess:  RGBA(50, 130, 80, 230),
		ColNotifyWarning:  RGBA(180, 130, 40, 230),
		ColNotifyError:    RGBA(180, 60, 60, 230),

		ColScrollbarBg:          RGBA(20, 20, 20, 160),
		ColScrollbarGrab:        RGBA(80, 80, 80, 255),
		ColScrollbarGrabHovered: RGBA(110, 110, 110, 255),
	}
	return s
}
