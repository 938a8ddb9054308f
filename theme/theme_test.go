package theme_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/imx/b64"
	"github.com/go-theft-auto/imx/gui"
	"github.com/go-theft-auto/imx/theme"
)

func f32(v float32) *float32 { return &v }

const ocean = `
// a blue variant of dark
theme "Ocean" extends dark {
	text = #e0e0e0
	button = #204060ff;
	rounding = 4
	alpha = 0.9
}

theme plain {
}
`

func TestParse(t *testing.T) {
	got, err := theme.ParseString("ocean.theme", ocean)
	if err != nil {
		t.Fatal(err)
	}
	want := []theme.Theme{
		{
			Name: "Ocean",
			Base: "dark",
			Colors: map[gui.StyleColor]uint32{
				gui.ColText:   gui.RGBA(0xe0, 0xe0, 0xe0, 0xff),
				gui.ColButton: gui.RGBA(0x20, 0x40, 0x60, 0xff),
			},
			Rounding: f32(4),
			Alpha:    f32(0.9),
		},
		{Name: "plain"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"syntax", `theme x { text = }`, "bad.theme:1"},
		{"unknown color", `theme x { sky = #000000 }`, `unknown color "sky"`},
		{"unknown setting", `theme x { padding = 3 }`, `unknown setting "padding"`},
		{"number for color", `theme x { text = 3 }`, "text wants a #color"},
		{"unknown base", `theme x extends neon { }`, `unknown base "neon"`},
		{"short hex", `theme x { text = #fff }`, "bad.theme:1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := theme.ParseString("bad.theme", tc.src)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	in, _ := theme.Builtin("gta")
	in.Name = "my gta"
	in.Base = "gta"
	in.FontScale = f32(1.25)

	var sb strings.Builder
	if err := theme.Format(&sb, in); err != nil {
		t.Fatal(err)
	}
	out, err := theme.ParseString("formatted", sb.String())
	if err != nil {
		t.Fatalf("%v\n%s", err, sb.String())
	}
	if diff := cmp.Diff([]theme.Theme{in}, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestApplyLayersBase(t *testing.T) {
	ts, err := theme.ParseString("t", `theme t extends gta { text = #ff0000 }`)
	if err != nil {
		t.Fatal(err)
	}
	style := ts[0].Apply(gui.DefaultStyle())
	gta, _ := theme.Builtin("gta")

	if got := style.Color(gui.ColText); got != gui.RGBA(255, 0, 0, 255) {
		t.Errorf("text = %#x, want override", got)
	}
	if got := style.Color(gui.ColButtonActive); got != gta.Colors[gui.ColButtonActive] {
		t.Errorf("button_active = %#x, want gta's", got)
	}
	if got := style.Color(gui.ColPlotLines); got != gui.DefaultStyle().Color(gui.ColPlotLines) {
		t.Errorf("plot_lines = %#x, want default", got)
	}
}

func TestApplyClampsAlpha(t *testing.T) {
	style := theme.Theme{Alpha: f32(3)}.Apply(gui.DefaultStyle())
	if style.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", style.Alpha)
	}
}

func TestBuiltinIsACopy(t *testing.T) {
	a, _ := theme.Builtin("dark")
	a.Colors[gui.ColText] = 0
	*a.Rounding = 99
	b, _ := theme.Builtin("dark")
	if _, ok := b.Colors[gui.ColText]; ok || *b.Rounding == 99 {
		t.Error("mutating a builtin copy changed the builtin")
	}
	if diff := cmp.Diff([]string{"dark", "default", "gta", "light"}, theme.Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
}

func TestSaveLoad(t *testing.T) {
	stores := map[string]theme.Store{
		"mem": &theme.MemStore{},
		"dir": theme.DirStore{Dir: t.TempDir()},
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			in := theme.Theme{
				Name:     "saved",
				Base:     "light",
				Colors:   map[gui.StyleColor]uint32{gui.ColAccent: gui.RGBA(1, 2, 3, 4)},
				Rounding: f32(2),
			}
			if err := theme.Save(s, "ui.theme", in); err != nil {
				t.Fatal(err)
			}
			out, err := theme.Load(s, "ui.theme")
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}

			if _, err := theme.Load(s, "other"); !errors.Is(err, theme.ErrNotFound) {
				t.Errorf("missing key err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestLoadMalformedPayload(t *testing.T) {
	s := &theme.MemStore{}
	if err := s.Put("k", "not base64!"); err != nil {
		t.Fatal(err)
	}
	if _, err := theme.Load(s, "k"); !errors.Is(err, b64.ErrMalformedInput) {
		t.Errorf("err = %v, want ErrMalformedInput", err)
	}

	if err := s.Put("k", b64.EncodeString("{")); err != nil {
		t.Fatal(err)
	}
	_, err := theme.Load(s, "k")
	if err == nil || errors.Is(err, b64.ErrMalformedInput) {
		t.Errorf("bad JSON err = %v, want a decode error", err)
	}
}

func TestDirStoreRejectsPaths(t *testing.T) {
	s := theme.DirStore{Dir: t.TempDir()}
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := s.Put(key, "x"); err == nil {
			t.Errorf("Put(%q) accepted", key)
		}
	}
}
