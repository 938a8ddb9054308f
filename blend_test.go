package imx

import (
	"testing"

	"github.com/go-theft-auto/imx/gui"
)

func TestBlendColors(t *testing.T) {
	tests := []struct {
		name   string
		bg, fg uint32
		want   uint32
	}{
		{"opaque fg wins", gui.ColorRed, gui.ColorBlue, gui.ColorBlue},
		{"opaque fg over transparent", gui.ColorTransparent, gui.RGBA(1, 2, 3, 255), gui.RGBA(1, 2, 3, 255)},
		{"transparent fg keeps bg", gui.RGBA(10, 20, 30, 200), gui.RGBA(255, 255, 255, 0), gui.RGBA(10, 20, 30, 200)},
		{"both transparent", gui.RGBA(255, 0, 0, 0), gui.RGBA(0, 255, 0, 0), 0},
		{"half white over black", gui.ColorBlack, gui.RGBA(255, 255, 255, 128), gui.RGBA(128, 128, 128, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlendColors(tt.bg, tt.fg); got != tt.want {
				t.Errorf("BlendColors(%#08x, %#08x) = %#08x, want %#08x", tt.bg, tt.fg, got, tt.want)
			}
		})
	}
}

func TestBlendColorsAlphaAccumulates(t *testing.T) {
	half := gui.RGBA(0, 0, 0, 128)
	_, _, _, a := gui.UnpackRGBA(BlendColors(half, half))
	// 0.502 + 0.502*0.498 = 0.752
	if a != 192 {
		t.Errorf("alpha = %d, want 192", a)
	}
}
