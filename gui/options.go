package gui

// Option configures a widget.
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed option key. Packages building widgets on top of gui
// declare their own keys:
//
//	var OptKnobColor = gui.NewOptKey[uint32]("knobColor", 0)
//
//	imx.ToggleSwitch(ctx, "vsync", &v, gui.WithOpt(OptKnobColor, gui.ColorRed))
//
//	color := gui.ApplyAndGet(opts, OptKnobColor)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a key returning defaultValue when unset.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the key's default value.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// Compose merges several options into one.
func Compose(opts ...Option) Option {
	return func(o *options) {
		for _, opt := range opts {
			if opt != nil {
				opt(o)
			}
		}
	}
}

func getOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.values[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func hasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies opts and returns the value for key.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return getOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the value for key and whether it was set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return getOpt(o, key), hasOpt(o, key)
}

// Options is a resolved option set, for widgets reading several keys.
type Options struct{ o options }

// Resolve applies opts once.
func Resolve(opts []Option) Options {
	return Options{o: applyOptions(opts)}
}

// Get reads key from a resolved option set.
func Get[T any](o Options, key OptKey[T]) T {
	return getOpt(o.o, key)
}

// Has reports whether key was set.
func Has[T any](o Options, key OptKey[T]) bool {
	return hasOpt(o.o, key)
}

// Core keys shared by gui and extension widgets.
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
	OptTooltip  = NewOptKey("tooltip", "")
	OptHint     = NewOptKey("hint", "") // placeholder text for empty inputs
	OptAutoEdit = NewOptKey("autoEdit", false)

	OptCharFilter = NewOptKey[func(rune) bool]("charFilter", nil)
	OptStep       = NewOptKey("step", 1)
	OptIntRange   = NewOptKey("intRange", IntRange{})
)

// IntRange bounds an integer input. The zero value is unbounded.
type IntRange struct {
	Min, Max int
	Set      bool
}

// Clamp limits v to r.
func (r IntRange) Clamp(v int) int {
	if !r.Set {
		return v
	}
	return min(max(v, r.Min), r.Max)
}

// WithID overrides the label-derived ID.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled greys the widget out and ignores interaction.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth fixes the widget width.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight fixes the widget height.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithTooltip shows text while the widget is hovered.
func WithTooltip(text string) Option { return WithOpt(OptTooltip, text) }

// WithHint shows placeholder text in an empty input.
func WithHint(text string) Option { return WithOpt(OptHint, text) }

// AutoEdit puts an InputText into editing mode as soon as it is drawn.
func AutoEdit() Option { return WithOpt(OptAutoEdit, true) }

// WithCharFilter drops typed and pasted runes for which accept is false.
func WithCharFilter(accept func(rune) bool) Option { return WithOpt(OptCharFilter, accept) }

// WithStep sets how far Up and Down move an integer input.
func WithStep(step int) Option { return WithOpt(OptStep, step) }

// WithIntRange clamps an integer input to [lo, hi].
func WithIntRange(lo, hi int) Option {
	return WithOpt(OptIntRange, IntRange{Min: min(lo, hi), Max: max(lo, hi), Set: true})
}
