package imx

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-theft-auto/imx/gui"
)

var listLogger = gui.NewLogger("imx")

// ListEditorConfig is the passive configuration of a list editor. Zero
// fields take defaults; negative sizes count as zero.
type ListEditorConfig struct {
	ComboWidth    float32  // header width, default 160
	PopupSize     gui.Vec2 // popup width, default 240, and height bound; 0 height fits the display below the header
	EmptyDesc     string   // preview text for an empty list, default "(empty)"
	IconAdd       string   // default "+"
	IconRemove    string   // default "x"
	DeleteOnRight bool     // remove controls at the right edge of each row
	Deduplicate   bool
}

func (c ListEditorConfig) withDefaults() ListEditorConfig {
	c.ComboWidth = max(c.ComboWidth, 0)
	c.PopupSize.X = max(c.PopupSize.X, 0)
	c.PopupSize.Y = max(c.PopupSize.Y, 0)
	if c.ComboWidth == 0 {
		c.ComboWidth = 160
	}
	if c.PopupSize.X == 0 {
		c.PopupSize.X = 240
	}
	if c.EmptyDesc == "" {
		c.EmptyDesc = "(empty)"
	}
	if c.IconAdd == "" {
		c.IconAdd = "+"
	}
	if c.IconRemove == "" {
		c.IconRemove = "x"
	}
	return c
}

type listEditorMode uint8

const (
	listIdle listEditorMode = iota
	listEditingText
)

type listEditorState struct {
	Mode   listEditorMode
	Buffer string
	Err    string
}

func (s *listEditorState) open() {
	s.Mode = listEditingText
	s.Err = ""
}

func (s *listEditorState) close() {
	s.Mode = listIdle
	s.Buffer = ""
	s.Err = ""
}

var listEditorStore = gui.NewFrameStore[listEditorState]()

var (
	optListEqual = gui.NewOptKey[any]("imx.listEqual", nil)
	optListParse = gui.NewOptKey[any]("imx.listParse", nil)
)

// WithListEquality overrides how a list editor detects duplicates. A rule
// for the underlying type, such as strings.EqualFold, also serves named
// element types like `type tag string`.
func WithListEquality[T ListItem](eq func(a, b T) bool) gui.Option {
	return gui.WithOpt(optListEqual, any(eq))
}

// WithListParser overrides how a list editor turns its input into an
// element. As with WithListEquality, a parser for the underlying type is
// converted to named element types. With a parser set, integer lists take
// free text.
func WithListParser[T ListItem](parse func(s string) (T, error)) gui.Option {
	return gui.WithOpt(optListParse, any(parse))
}

// listEqualFor adapts an equality option to element type T. Options of an
// unrelated type are dropped with a warning.
func listEqualFor[T ListItem](opt any) func(a, b T) bool {
	kind := reflect.TypeFor[T]().Kind()
	switch eq := opt.(type) {
	case nil:
		return nil
	case func(a, b T) bool:
		return eq
	case func(a, b string) bool:
		if kind == reflect.String {
			return func(a, b T) bool {
				return eq(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
			}
		}
	case func(a, b int) bool:
		if kind == reflect.Int {
			return func(a, b T) bool {
				return eq(int(reflect.ValueOf(a).Int()), int(reflect.ValueOf(b).Int()))
			}
		}
	}
	warnOptionMismatch[T]("equality", opt)
	return nil
}

// listParseFor adapts a parser option to element type T.
func listParseFor[T ListItem](opt any) func(s string) (T, error) {
	kind := reflect.TypeFor[T]().Kind()
	switch p := opt.(type) {
	case nil:
		return nil
	case func(s string) (T, error):
		return p
	case func(s string) (string, error):
		if kind == reflect.String {
			return func(s string) (T, error) {
				var v T
				str, err := p(s)
				reflect.ValueOf(&v).Elem().SetString(str)
				return v, err
			}
		}
	case func(s string) (int, error):
		if kind == reflect.Int {
			return func(s string) (T, error) {
				var v T
				n, err := p(s)
				reflect.ValueOf(&v).Elem().SetInt(int64(n))
				return v, err
			}
		}
	}
	warnOptionMismatch[T]("parser", opt)
	return nil
}

var warnedOptions sync.Map

func warnOptionMismatch[T ListItem](what string, opt any) {
	key := fmt.Sprintf("%s/%T/%T", what, *new(T), opt)
	if _, seen := warnedOptions.LoadOrStore(key, true); seen {
		return
	}
	listLogger.Warn("list editor option ignored: element type mismatch",
		"option", what, "element", reflect.TypeFor[T](), "got", reflect.TypeOf(opt))
}

// ListEditor edits a caller-owned list. The header previews the items;
// clicking it opens a popup listing every item with a remove control,
// followed by an input and an add control. Enter or the add control
// commits the input as one element. Escape or a click outside closes the
// popup.
//
// It returns true exactly on frames where an element was added or removed.
func ListEditor[T ListItem](ctx *gui.Context, label string, items *[]T, cfg ListEditorConfig, opts ...gui.Option) bool {
	o := gui.Resolve(opts)
	cfg = cfg.withDefaults()
	defer BeginDisabled(ctx, gui.Get(o, gui.OptDisabled))()

	model := ListModel[T]{
		Items:       items,
		Deduplicate: cfg.Deduplicate,
		Equal:       listEqualFor[T](gui.Get(o, optListEqual)),
		Parse:       listParseFor[T](gui.Get(o, optListParse)),
	}

	idLabel := label
	if s := gui.Get(o, gui.OptID); s != "" {
		idLabel = s
	}
	id := ctx.StableID(idLabel)
	st := listEditorStore.Get(id, listEditorState{})
	if ctx.ItemDisabled() && st.Mode != listIdle {
		st.close()
	}

	style := ctx.Style()
	pos := ctx.ItemPos()
	h := ctx.FrameHeight()
	x := pos.X
	if vis := gui.VisibleLabel(label); vis != "" {
		ctx.AddText(x, pos.Y+(h-ctx.LineHeight())/2, vis, ctx.Color(gui.ColText))
		x += ctx.MeasureText(vis).X + style.ItemSpacing
	}
	header := gui.Rect{X: x, Y: pos.Y, W: cfg.ComboWidth, H: h}
	drawListHeader(ctx, header, listPreview(*items, cfg.EmptyDesc), st.Mode != listIdle)

	headerClicked := ctx.IsClicked(header)
	if headerClicked {
		if st.Mode == listIdle {
			st.open()
		} else {
			st.close()
		}
	}

	changed := false
	if st.Mode != listIdle {
		at := gui.Vec2{X: header.X, Y: header.Y + h}
		size := cfg.PopupSize
		if size.Y == 0 {
			size.Y = max(0, ctx.DisplaySize.Y-at.Y)
		}
		ctx.PushID(idLabel)
		popup := ctx.Popup(id, at, size)(func() {
			changed = listPopup(ctx, model, st, cfg, size.Y)
		})
		ctx.PopID()

		switch {
		case ctx.KeyPressed(gui.KeyEscape):
			st.close()
		case !headerClicked && ctx.ClickedOutside(header, popup):
			st.close()
		}
	}

	ctx.ItemTooltip(header, gui.Get(o, gui.OptTooltip))
	ctx.SetCursorPos(pos.X, pos.Y)
	ctx.AdvanceCursor(gui.Vec2{X: x - pos.X + cfg.ComboWidth, Y: h})
	return changed
}

func drawListHeader(ctx *gui.Context, r gui.Rect, preview string, open bool) {
	style := ctx.Style()
	bg := ctx.Color(gui.ColFrameBg)
	if open || ctx.IsHovered(r) {
		bg = ctx.Color(gui.ColFrameBgHovered)
	}
	ctx.DrawList.AddRectRounded(r.X, r.Y, r.W, r.H, style.Rounding, bg)
	ctx.DrawList.AddRectOutline(r.X, r.Y, r.W, r.H, ctx.Color(gui.ColBorder), 1)

	const arrow = 8
	pad := style.ButtonPadding
	text := gui.TruncateText(ctx, preview, r.W-pad*3-arrow)
	ctx.AddText(r.X+pad, r.Y+(r.H-ctx.LineHeight())/2, text, ctx.Color(gui.ColText))

	ax, ay := r.X+r.W-pad-arrow, r.Y+r.H/2
	if open {
		ctx.DrawList.AddTriangle(ax+arrow/2, ay-arrow/4, ax, ay+arrow/4, ax+arrow, ay+arrow/4, ctx.Color(gui.ColText))
	} else {
		ctx.DrawList.AddTriangle(ax+arrow/2, ay+arrow/4, ax+arrow, ay-arrow/4, ax, ay-arrow/4, ctx.Color(gui.ColText))
	}
}

func listPreview[T ListItem](items []T, empty string) string {
	if len(items) == 0 {
		return empty
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = formatItem(it)
	}
	return strings.Join(parts, ", ")
}

// listPopup draws the popup body and applies at most one add and one
// remove. Rows scroll once the popup would exceed maxHeight.
func listPopup[T ListItem](ctx *gui.Context, model ListModel[T], st *listEditorState, cfg ListEditorConfig, maxHeight float32) bool {
	style := ctx.Style()
	spacing := style.ItemSpacing
	rowH := ctx.FrameHeight()
	removeW := ctx.MeasureText(cfg.IconRemove).X + style.ButtonPadding*2

	removeAt := -1
	rows := func() {
		items := *model.Items
		if len(items) == 0 {
			ctx.TextDisabled(cfg.EmptyDesc)
			return
		}
		width := ctx.AvailableWidth()
		clip := ctx.ListClipper(len(items), rowH+spacing)
		clip.SkipBefore(ctx, spacing)
		for i := clip.StartIdx; i < clip.EndIdx; i++ {
			text := formatItem(items[i])
			btn := cfg.IconRemove + "##" + strconv.Itoa(i)
			ctx.HStack()(func() {
				if !cfg.DeleteOnRight {
					if ctx.Button(btn) {
						removeAt = i
					}
					ctx.Text(text)
					return
				}
				textW := ctx.MeasureText(text).X
				ctx.Text(text)
				ctx.Dummy(gui.Vec2{X: max(0, width-textW-removeW-spacing*2)})
				if ctx.Button(btn) {
					removeAt = i
				}
			})
		}
		clip.SkipAfter(ctx, spacing)
	}

	footer := rowH + spacing
	if st.Err != "" {
		footer += ctx.LineHeight() + spacing
	}
	if maxHeight > 0 {
		ctx.Scrollable("##rows", max(rowH, maxHeight-style.PanelPadding*2-footer))(rows)
	} else {
		rows()
	}

	changed := false
	if removeAt >= 0 {
		changed = model.Remove(removeAt)
	}

	width := ctx.AvailableWidth()
	addW := ctx.MeasureText(cfg.IconAdd).X + style.ButtonPadding*2
	inputOpts := []gui.Option{gui.AutoEdit(), gui.WithWidth(max(40, width-addW-spacing))}
	commit := false
	ctx.HStack()(func() {
		if reflect.TypeFor[T]().Kind() == reflect.Int && model.Parse == nil {
			ctx.InputInt("##input", &st.Buffer, inputOpts...)
		} else {
			ctx.InputText("##input", &st.Buffer, inputOpts...)
		}
		commit = ctx.Button(cfg.IconAdd + "##add")
	})
	if ctx.KeyPressed(gui.KeyEnter) {
		commit = true
	}
	if st.Err != "" {
		ctx.TextColored(st.Err, style.Color(gui.ColNotifyError))
	}

	if commit {
		added, err := model.Commit(st.Buffer)
		switch {
		case errors.Is(err, ErrEmptyInput):
			st.Err = ""
		case err != nil:
			st.Err = err.Error()
		default:
			st.Buffer = ""
			st.Err = ""
			changed = changed || added
			if s := ctx.ScrollableStateOf("##rows"); added && s != nil {
				s.ScrollY = s.ContentHeight // clamped to the bottom next frame
			}
		}
	}
	return changed
}
