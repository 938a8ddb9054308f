package font

import "log/slog"

// Option configures a Manager at construction.
type Option func(*Manager)

// WithBaseDir sets the directory font file names are resolved against.
func WithBaseDir(dir string) Option {
	return func(m *Manager) { m.pending.BaseDir = dir }
}

// WithDPI sets the rasterization DPI. Non-positive values keep DefaultDPI.
func WithDPI(dpi float32) Option {
	return func(m *Manager) {
		if dpi > 0 {
			m.pending.DPI = dpi
		}
	}
}

// WithUIScale sets the UI scale factor. Non-positive values keep 1.
func WithUIScale(scale float32) Option {
	return func(m *Manager) {
		if scale > 0 {
			m.pending.UIScale = scale
		}
	}
}

// WithLocale sets the initial locale. An invalid tag falls back to
// DefaultLocale with a warning.
func WithLocale(tag string) Option {
	return func(m *Manager) { m.pending.Locale = tag }
}

// WithFreetype enables hinted rasterization.
func WithFreetype(on bool) Option {
	return func(m *Manager) { m.pending.UseFreetype = on }
}

// WithSource loads role from name: a file under the base directory or
// "builtin:goregular", "builtin:gobold", "builtin:goitalic", "builtin:gomono".
func WithSource(role Role, name string) Option {
	return func(m *Manager) {
		if role < roleCount {
			m.sources[role] = name
		}
	}
}

// WithMarkdownSizes sets the body and heading point sizes.
func WithMarkdownSizes(s MarkdownSizes) Option {
	return func(m *Manager) { m.sizes = s.withDefaults() }
}

// WithUploader sets where atlases go. Without one, faces report texture 0.
func WithUploader(u AtlasUploader) Option {
	return func(m *Manager) { m.uploader = u }
}

// WithLogger replaces the default "font" component logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}
