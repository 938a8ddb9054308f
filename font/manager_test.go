package font_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/imx/font"
	"github.com/go-theft-auto/imx/gui"
)

type fakeUploader struct {
	next    uint32
	uploads int
	deleted []uint32
	fail    error
	lastW   int
	lastH   int
}

func (u *fakeUploader) UploadAtlas(pix []byte, w, h int) (uint32, error) {
	if u.fail != nil {
		return 0, u.fail
	}
	if len(pix) != w*h {
		return 0, errors.New("pixel buffer does not match size")
	}
	u.uploads++
	u.next++
	u.lastW, u.lastH = w, h
	return u.next, nil
}

func (u *fakeUploader) DeleteTexture(id uint32) { u.deleted = append(u.deleted, id) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newManager(t *testing.T, up *fakeUploader, opts ...font.Option) *font.Manager {
	t.Helper()
	opts = append([]font.Option{font.WithUploader(up), font.WithLogger(quietLogger())}, opts...)
	return font.NewManager(opts...)
}

func mustRebuild(t *testing.T, m *font.Manager) {
	t.Helper()
	if res := m.RebuildIfNeeded(); res.State != font.RebuildDone {
		t.Fatalf("RebuildIfNeeded = %v (%v), want done", res.State, res.Err)
	}
}

func TestFontsNilBeforeFirstBuild(t *testing.T) {
	m := newManager(t, &fakeUploader{})
	if m.Font(font.RoleBody) != nil {
		t.Error("Font(RoleBody) is non-nil before any build")
	}
	if m.ActiveFont() != nil {
		t.Error("ActiveFont is non-nil before any build")
	}
	if diff := cmp.Diff(font.BuildParams{}, m.Params()); diff != "" {
		t.Errorf("Params before build (-want +got):\n%s", diff)
	}
	if !m.Dirty() {
		t.Error("a new manager should start dirty")
	}
}

func TestRebuildBuildsEveryRole(t *testing.T) {
	up := &fakeUploader{}
	m := newManager(t, up)
	mustRebuild(t, m)

	want := []font.Role{
		font.RoleBody, font.RoleBold, font.RoleItalic, font.RoleMono,
		font.RoleH1, font.RoleH2, font.RoleH3, font.RoleIcon,
	}
	if diff := cmp.Diff(want, m.Roles()); diff != "" {
		t.Errorf("Roles (-want +got):\n%s", diff)
	}
	body := m.Font(font.RoleBody)
	if body.TextureID() != 1 || !body.HasGlyph('A') || !body.HasGlyph('é') {
		t.Errorf("body face: texture=%d A=%v é=%v", body.TextureID(), body.HasGlyph('A'), body.HasGlyph('é'))
	}
	if h1 := m.Font(font.RoleH1); h1.LineHeight(1) <= body.LineHeight(1) {
		t.Errorf("h1 line height %v not above body %v", h1.LineHeight(1), body.LineHeight(1))
	}
	want2 := font.BuildParams{DPI: font.DefaultDPI, UIScale: 1, Locale: "en"}
	if diff := cmp.Diff(want2, m.Params()); diff != "" {
		t.Errorf("Params (-want +got):\n%s", diff)
	}
	if m.Generation() != 1 || up.lastW != 1024 {
		t.Errorf("generation=%d atlas width=%d", m.Generation(), up.lastW)
	}
}

func TestRebuildIsNoOpWhenClean(t *testing.T) {
	up := &fakeUploader{}
	m := newManager(t, up)
	mustRebuild(t, m)

	m.SetDPI(font.DefaultDPI)
	m.SetUIScale(1)
	if err := m.SetLocale("EN"); err != nil {
		t.Fatal(err)
	}
	if m.Dirty() {
		t.Error("re-setting identical values marked the manager dirty")
	}
	if res := m.RebuildIfNeeded(); res.State != font.RebuildSkipped || res.Changed() {
		t.Errorf("RebuildIfNeeded = %+v, want skipped", res)
	}
	if up.uploads != 1 {
		t.Errorf("uploads = %d, want 1", up.uploads)
	}
}

func TestFailedRebuildKeepsPreviousAtlas(t *testing.T) {
	up := &fakeUploader{}
	m := newManager(t, up, font.WithBaseDir(t.TempDir()))
	mustRebuild(t, m)
	body, params := m.Font(font.RoleBody), m.Params()

	m.SetSource(font.RoleMono, "missing.ttf")
	m.SetDPI(96)
	for range 2 {
		res := m.RebuildIfNeeded()
		if res.State != font.RebuildFailed || !errors.Is(res.Err, font.ErrSourceNotFound) {
			t.Fatalf("RebuildIfNeeded = %v (%v), want failed with ErrSourceNotFound", res.State, res.Err)
		}
	}
	if m.Font(font.RoleBody) != body {
		t.Error("failed rebuild replaced the body face")
	}
	if diff := cmp.Diff(params, m.Params()); diff != "" {
		t.Errorf("Params changed (-want +got):\n%s", diff)
	}
	if !m.Dirty() {
		t.Error("manager should stay dirty after a failure")
	}

	m.SetSource(font.RoleMono, "builtin:gomono")
	mustRebuild(t, m)
	if diff := cmp.Diff([]uint32{1}, up.deleted); diff != "" {
		t.Errorf("deleted textures (-want +got):\n%s", diff)
	}
	if m.Params().DPI != 96 || m.Generation() != 2 {
		t.Errorf("DPI=%v generation=%d", m.Params().DPI, m.Generation())
	}
}

func TestFailedFirstUploadLeavesFontsNil(t *testing.T) {
	up := &fakeUploader{fail: errors.New("no context")}
	m := newManager(t, up)
	if res := m.RebuildIfNeeded(); res.State != font.RebuildFailed {
		t.Fatalf("state = %v, want failed", res.State)
	}
	if m.Font(font.RoleBody) != nil {
		t.Error("fonts exist after a failed first build")
	}
}

func TestUnknownBuiltin(t *testing.T) {
	m := newManager(t, &fakeUploader{}, font.WithSource(font.RoleIcon, "builtin:nope"))
	res := m.RebuildIfNeeded()
	if !errors.Is(res.Err, font.ErrSourceNotFound) {
		t.Errorf("err = %v, want ErrSourceNotFound", res.Err)
	}
}

func TestRebuildDeferredDuringFrame(t *testing.T) {
	up := &fakeUploader{}
	m := newManager(t, up)
	ui := gui.New(nopRenderer{}, gui.WithFontProvider(m))

	ui.Begin(gui.NewInputState(), gui.Vec2{X: 640, Y: 480}, 1.0/60)
	if res := m.RebuildIfNeeded(); res.State != font.RebuildDeferred {
		t.Errorf("mid-frame state = %v, want deferred", res.State)
	}
	m.SetUIScale(2) // accepted, applied later
	if err := ui.End(); err != nil {
		t.Fatal(err)
	}

	if up.uploads != 0 {
		t.Fatalf("uploads during frame = %d", up.uploads)
	}
	mustRebuild(t, m)
	if m.Params().UIScale != 2 {
		t.Errorf("UIScale = %v, want 2", m.Params().UIScale)
	}
}

func TestUIScaleGrowsFaces(t *testing.T) {
	m := newManager(t, &fakeUploader{})
	mustRebuild(t, m)
	h1 := m.Font(font.RoleBody).LineHeight(1)

	m.SetUIScale(2)
	mustRebuild(t, m)
	h2 := m.Font(font.RoleBody).LineHeight(1)
	if d := h2 - 2*h1; d < -1 || d > 1 {
		t.Errorf("line height at 2x = %v, want about %v", h2, 2*h1)
	}
}

func TestLocaleSelectsGlyphRanges(t *testing.T) {
	m := newManager(t, &fakeUploader{})
	mustRebuild(t, m)
	if m.Font(font.RoleBody).HasGlyph('Ж') {
		t.Fatal("Cyrillic rasterized for en")
	}

	if err := m.SetLocale("not a tag!"); err == nil {
		t.Error("SetLocale accepted an invalid tag")
	}
	if m.Dirty() {
		t.Error("invalid locale marked the manager dirty")
	}

	if err := m.SetLocale("ru-RU"); err != nil {
		t.Fatal(err)
	}
	mustRebuild(t, m)
	if !m.Font(font.RoleBody).HasGlyph('Ж') {
		t.Error("Cyrillic missing for ru-RU")
	}
	if m.Params().Locale != "ru-RU" {
		t.Errorf("Locale = %q", m.Params().Locale)
	}
}

func TestMarkdownSizes(t *testing.T) {
	m := newManager(t, &fakeUploader{})
	m.SetMarkdownSizes(font.MarkdownSizes{Body: 12})
	mustRebuild(t, m)

	want := font.MarkdownSizes{Body: 12, H1: 24, H2: 20, H3: 16}
	if diff := cmp.Diff(want, m.Sizes()); diff != "" {
		t.Errorf("Sizes (-want +got):\n%s", diff)
	}
	if m.Font(font.RoleH2).Size() != 20 || m.Font(font.RoleMono).Size() != 12 {
		t.Errorf("h2=%v mono=%v", m.Font(font.RoleH2).Size(), m.Font(font.RoleMono).Size())
	}
}

func TestActiveFontByRoleName(t *testing.T) {
	m := newManager(t, &fakeUploader{})
	mustRebuild(t, m)

	if err := m.SetActiveFont("mono"); err != nil {
		t.Fatal(err)
	}
	if m.ActiveFont() != gui.Font(m.Font(font.RoleMono)) {
		t.Error("ActiveFont is not the mono face")
	}
	if err := m.SetActiveFont("comic"); err == nil {
		t.Error("unknown role accepted")
	}
}

func TestRoleNames(t *testing.T) {
	for _, r := range []font.Role{font.RoleBody, font.RoleH3, font.RoleIcon} {
		got, ok := font.ParseRole(r.String())
		if !ok || got != r {
			t.Errorf("ParseRole(%q) = %v, %v", r.String(), got, ok)
		}
	}
	if _, ok := font.ParseRole("H1"); ok {
		t.Error("role names are case-sensitive")
	}
}

type nopRenderer struct{}

func (nopRenderer) Render(*gui.DrawList) error { return nil }
func (nopRenderer) FontTextureID() uint32      { return 0 }
func (nopRenderer) Resize(int, int)            {}
