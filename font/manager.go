// Package font builds font atlases for gui and hands out faces by role.
//
// A Manager owns the build parameters. Setters only record the new values
// and mark the manager dirty; the atlas is rebuilt by RebuildIfNeeded,
// which the host calls between frames:
//
//	fonts := font.NewManager(font.WithUploader(renderer), font.WithDPI(dpi))
//	ui := gui.New(renderer, gui.WithFontProvider(fonts))
//	for !window.ShouldClose() {
//	    if res := fonts.RebuildIfNeeded(); res.State == font.RebuildFailed {
//	        log.Print(res.Err)
//	    }
//	    ctx := ui.Begin(input, size, dt)
//	    ...
//	    ui.End()
//	}
//
// A failed rebuild keeps the previous faces and atlas. Font and Params are
// safe to call from any goroutine; everything else belongs to the UI thread.
package font

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-theft-auto/imx/gui"
)

// built is everything one successful rebuild produced.
type built struct {
	params  BuildParams
	sizes   MarkdownSizes
	faces   [roleCount]*Face
	texture uint32
	gen     uint64
}

// Manager owns font build parameters and the faces built from them.
type Manager struct {
	pending  BuildParams
	sizes    MarkdownSizes
	sources  [roleCount]string
	uploader AtlasUploader
	log      *slog.Logger

	dirty   bool
	inFrame bool
	active  Role
	lastErr string

	cur atomic.Pointer[built]
}

var (
	_ gui.FontProvider  = (*Manager)(nil)
	_ gui.FrameObserver = (*Manager)(nil)
	_ gui.Font          = (*Face)(nil)
)

// NewManager returns a dirty manager; no faces exist until the first
// successful RebuildIfNeeded.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		pending: BuildParams{DPI: DefaultDPI, UIScale: DefaultUIScale, Locale: DefaultLocale},
		sizes:   DefaultMarkdownSizes,
		sources: defaultSources,
		log:     gui.NewLogger("font"),
		dirty:   true,
	}
	for _, opt := range opts {
		opt(m)
	}
	loc, err := normalizeLocale(m.pending.Locale)
	if err != nil {
		m.log.Warn("invalid locale, using default", "locale", m.pending.Locale, "err", err)
		loc = DefaultLocale
	}
	m.pending.Locale = loc
	return m
}

// markDirty records a parameter change.
func (m *Manager) markDirty(what string) {
	if m.inFrame {
		m.log.Warn("font parameter changed during a frame; rebuild waits for the frame to end", "param", what)
	}
	m.dirty = true
}

// SetLocale selects which glyph ranges are rasterized. Invalid tags are
// rejected without marking the manager dirty.
func (m *Manager) SetLocale(tag string) error {
	loc, err := normalizeLocale(tag)
	if err != nil {
		return err
	}
	if loc != m.pending.Locale {
		m.pending.Locale = loc
		m.markDirty("locale")
	}
	return nil
}

// SetDPI sets the rasterization DPI. Non-positive values mean DefaultDPI.
func (m *Manager) SetDPI(dpi float32) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if dpi != m.pending.DPI {
		m.pending.DPI = dpi
		m.markDirty("dpi")
	}
}

// SetUIScale sets the scale applied to every role's point size.
// Non-positive values mean 1.
func (m *Manager) SetUIScale(scale float32) {
	if scale <= 0 {
		scale = DefaultUIScale
	}
	if scale != m.pending.UIScale {
		m.pending.UIScale = scale
		m.markDirty("ui_scale")
	}
}

// SetMarkdownSizes sets body and heading point sizes. Zero fields take
// DefaultMarkdownSizes.
func (m *Manager) SetMarkdownSizes(s MarkdownSizes) {
	s = s.withDefaults()
	if s != m.sizes {
		m.sizes = s
		m.markDirty("markdown_sizes")
	}
}

func (m *Manager) SetBaseDir(dir string) {
	if dir != m.pending.BaseDir {
		m.pending.BaseDir = dir
		m.markDirty("base_dir")
	}
}

func (m *Manager) SetUseFreetype(on bool) {
	if on != m.pending.UseFreetype {
		m.pending.UseFreetype = on
		m.markDirty("use_freetype")
	}
}

// SetSource changes where role is loaded from. See WithSource.
func (m *Manager) SetSource(role Role, name string) {
	if role >= roleCount || name == m.sources[role] {
		return
	}
	m.sources[role] = name
	m.markDirty("source." + role.String())
}

// Dirty reports whether a setter changed anything since the last
// successful rebuild.
func (m *Manager) Dirty() bool { return m.dirty }

// Font returns the face for role, or nil before the first successful
// rebuild.
func (m *Manager) Font(role Role) *Face {
	b := m.cur.Load()
	if b == nil || role >= roleCount {
		return nil
	}
	return b.faces[role]
}

// Params returns the parameters of the live atlas; the zero value before
// the first successful rebuild.
func (m *Manager) Params() BuildParams {
	if b := m.cur.Load(); b != nil {
		return b.params
	}
	return BuildParams{}
}

// Sizes returns the markdown sizes of the live atlas.
func (m *Manager) Sizes() MarkdownSizes {
	if b := m.cur.Load(); b != nil {
		return b.sizes
	}
	return MarkdownSizes{}
}

// Roles lists the built roles in enum order.
func (m *Manager) Roles() []Role {
	b := m.cur.Load()
	if b == nil {
		return nil
	}
	var out []Role
	for r, f := range b.faces {
		if f != nil {
			out = append(out, Role(r))
		}
	}
	return out
}

// Generation counts successful rebuilds.
func (m *Manager) Generation() uint64 {
	if b := m.cur.Load(); b != nil {
		return b.gen
	}
	return 0
}

// ActiveFont implements gui.FontProvider. It returns nil until fonts are
// built.
func (m *Manager) ActiveFont() gui.Font {
	if f := m.Font(m.active); f != nil {
		return f
	}
	return nil
}

// SetActiveFont implements gui.FontProvider; name is a role name.
func (m *Manager) SetActiveFont(name string) error {
	r, ok := ParseRole(name)
	if !ok {
		return fmt.Errorf("font: unknown role %q", name)
	}
	m.active = r
	return nil
}

// FrameBegin implements gui.FrameObserver.
func (m *Manager) FrameBegin() { m.inFrame = true }

// FrameEnd implements gui.FrameObserver.
func (m *Manager) FrameEnd() { m.inFrame = false }

// RebuildIfNeeded rebuilds the atlas when a setter changed something. It
// does nothing during a frame. On failure the previous faces stay live and
// the manager stays dirty, so the next call retries.
func (m *Manager) RebuildIfNeeded() RebuildResult {
	if m.inFrame {
		return RebuildResult{State: RebuildDeferred}
	}
	if !m.dirty {
		return RebuildResult{State: RebuildSkipped}
	}

	next, err := m.build(m.pending, m.sizes, m.sources)
	if err != nil {
		if msg := err.Error(); msg != m.lastErr {
			m.lastErr = msg
			m.log.Warn("font rebuild failed; keeping previous atlas", "err", err)
		}
		return RebuildResult{State: RebuildFailed, Err: err}
	}

	prev := m.cur.Load()
	if prev != nil {
		next.gen = prev.gen + 1
	} else {
		next.gen = 1
	}
	m.cur.Store(next)
	if prev != nil && prev.texture != 0 && m.uploader != nil {
		m.uploader.DeleteTexture(prev.texture)
	}
	m.dirty = false
	m.lastErr = ""
	m.log.Info("font atlas rebuilt",
		"generation", next.gen,
		"dpi", next.params.DPI,
		"ui_scale", next.params.UIScale,
		"locale", next.params.Locale)
	return RebuildResult{State: RebuildDone}
}

func (m *Manager) build(p BuildParams, sizes MarkdownSizes, sources [roleCount]string) (*built, error) {
	fonts, err := loadSources(p.BaseDir, sources[:])
	if err != nil {
		return nil, err
	}

	ranges := localeRanges(p.Locale)
	b := &built{params: p, sizes: sizes}
	var raster []rasterGlyph
	for r := range roleCount {
		face, glyphs, err := newFace(fonts[sources[r]], r, sizes.size(r), p, ranges)
		if err != nil {
			return nil, err
		}
		b.faces[r] = face
		raster = append(raster, glyphs...)
		m.log.Debug("rasterized role", "role", r, "source", sources[r], "glyphs", len(glyphs))
	}

	size, err := packAtlas(raster)
	if err != nil {
		return nil, err
	}
	atlas := blitAtlas(raster, size)

	if m.uploader != nil {
		tex, err := m.uploader.UploadAtlas(atlas.Pix, size.X, size.Y)
		if err != nil {
			return nil, fmt.Errorf("font: upload %dx%d atlas: %w", size.X, size.Y, err)
		}
		b.texture = tex
		for _, f := range b.faces {
			f.texture = tex
		}
	}
	return b, nil
}
