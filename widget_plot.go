package imx

import (
	"fmt"

	"github.com/go-theft-auto/imx/gui"
)

// Agg selects how Aggregate folds a bucket into one value.
type Agg uint8

const (
	AggMean Agg = iota
	AggMin
	AggMax
	AggSum
)

// Aggregate reduces values to at most buckets values by folding contiguous
// runs. With buckets <= 0 or no fewer values than buckets it returns a copy.
func Aggregate(values []float32, buckets int, agg Agg) []float32 {
	n := len(values)
	if buckets <= 0 || n <= buckets {
		return append([]float32(nil), values...)
	}
	out := make([]float32, buckets)
	for b := range buckets {
		lo, hi := b*n/buckets, (b+1)*n/buckets
		run := values[lo:hi]
		acc := run[0]
		for _, v := range run[1:] {
			switch agg {
			case AggMin:
				acc = min(acc, v)
			case AggMax:
				acc = max(acc, v)
			default:
				acc += v
			}
		}
		if agg == AggMean {
			acc /= float32(len(run))
		}
		out[b] = acc
	}
	return out
}

// SeriesStats summarizes a series.
type SeriesStats struct {
	N              int
	Min, Max, Mean float32
	Last           float32
}

// Stats summarizes values. The zero SeriesStats is returned for an empty
// series.
func Stats(values []float32) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}
	s := SeriesStats{N: len(values), Min: values[0], Max: values[0], Last: values[len(values)-1]}
	var sum float64
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		sum += float64(v)
	}
	s.Mean = float32(sum / float64(len(values)))
	return s
}

// Series is one line of a PlotLines chart. A zero Color uses ColPlotLines.
type Series struct {
	Label  string
	Values []float32
	Color  uint32
}

var (
	OptPlotYMin   = gui.NewOptKey[float32]("imx.plotYMin", 0)
	OptPlotYMax   = gui.NewOptKey[float32]("imx.plotYMax", 0)
	OptPlotGrid   = gui.NewOptKey[int]("imx.plotGrid", 0)
	OptPlotLegend = gui.NewOptKey[bool]("imx.plotLegend", false)
)

// WithPlotRange fixes the vertical range instead of fitting the data.
func WithPlotRange(lo, hi float32) gui.Option {
	return gui.Compose(gui.WithOpt(OptPlotYMin, lo), gui.WithOpt(OptPlotYMax, hi))
}

// WithPlotGrid draws n horizontal grid divisions.
func WithPlotGrid(n int) gui.Option { return gui.WithOpt(OptPlotGrid, n) }

// WithPlotLegend draws series labels in the top-left corner.
func WithPlotLegend() gui.Option { return gui.WithOpt(OptPlotLegend, true) }

func plotRange(o gui.Options, lo, hi float32, pad bool) (float32, float32) {
	if gui.Has(o, OptPlotYMin) || gui.Has(o, OptPlotYMax) {
		lo, hi = gui.Get(o, OptPlotYMin), gui.Get(o, OptPlotYMax)
	} else if pad {
		p := (hi - lo) * 0.1
		if p == 0 {
			p = 1
		}
		lo, hi = lo-p, hi+p
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func plotFrame(ctx *gui.Context, o gui.Options, height float32) gui.Rect {
	pos := ctx.ItemPos()
	w := gui.Get(o, gui.OptWidth)
	if w <= 0 {
		w = ctx.AvailableWidth()
	}
	r := gui.Rect{X: pos.X, Y: pos.Y, W: w, H: height}
	ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, ctx.Color(gui.ColFrameBg))
	if n := gui.Get(o, OptPlotGrid); n > 0 {
		grid := gui.WithAlpha(ctx.Color(gui.ColSeparator), 0.4)
		for i := 0; i <= n; i++ {
			y := r.Y + r.H*float32(i)/float32(n)
			ctx.DrawList.AddLine(r.X, y, r.X+r.W, y, grid, 1)
		}
	}
	return r
}

func plotTooltip(ctx *gui.Context, lines []string) {
	if len(lines) == 0 {
		return
	}
	const pad = 4
	w := float32(0)
	for _, l := range lines {
		w = max(w, ctx.MeasureText(l).X)
	}
	w += pad * 2
	h := float32(len(lines))*ctx.LineHeight() + pad*2
	x := min(ctx.Input.MouseX+10, ctx.DisplaySize.X-w)
	y := max(0, ctx.Input.MouseY-20)

	dl := ctx.Overlay()
	dl.AddRect(x, y, w, h, ctx.Color(gui.ColPopupBg))
	dl.AddRectOutline(x, y, w, h, ctx.Color(gui.ColBorder), 1)
	for i, l := range lines {
		ctx.AddTextTo(dl, x+pad, y+pad+float32(i)*ctx.LineHeight(), l, ctx.Color(gui.ColText))
	}
}

// PlotLines draws one or more series as connected lines sharing a vertical
// range. Hovering shows each series' value at the nearest index.
func PlotLines(ctx *gui.Context, id string, series []Series, height float32, opts ...gui.Option) {
	o := gui.Resolve(opts)
	ctx.PushID(id)
	defer ctx.PopID()

	r := plotFrame(ctx, o, height)
	n := 0
	var lo, hi float32
	first := true
	for _, s := range series {
		n = max(n, len(s.Values))
		for _, v := range s.Values {
			if first {
				lo, hi, first = v, v, false
			}
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	lo, hi = plotRange(o, lo, hi, true)

	if n >= 2 {
		step := r.W / float32(n-1)
		yOf := func(v float32) float32 { return r.Y + r.H - (v-lo)/(hi-lo)*r.H }
		for _, s := range series {
			if len(s.Values) < 2 {
				continue
			}
			col := s.Color
			if col == 0 {
				col = ctx.Color(gui.ColPlotLines)
			} else {
				col = ctx.Fade(col)
			}
			pts := make([]gui.Vec2, len(s.Values))
			for i, v := range s.Values {
				pts[i] = gui.Vec2{X: r.X + float32(i)*step, Y: yOf(v)}
			}
			ctx.DrawList.AddPolyline(pts, col, 1.5)
		}

		if ctx.IsHovered(r) {
			idx := int((ctx.Input.MouseX-r.X)/step + 0.5)
			hx := r.X + float32(idx)*step
			ctx.DrawList.AddLine(hx, r.Y, hx, r.Y+r.H, gui.WithAlpha(ctx.Color(gui.ColText), 0.4), 1)
			var lines []string
			for _, s := range series {
				if idx < len(s.Values) {
					lines = append(lines, fmt.Sprintf("%s: %.2f", s.Label, s.Values[idx]))
				}
			}
			plotTooltip(ctx, lines)
		}
	}

	if gui.Get(o, OptPlotLegend) && len(series) > 1 {
		lx, ly := r.X+4, r.Y+4
		for _, s := range series {
			col := s.Color
			if col == 0 {
				col = ctx.Color(gui.ColPlotLines)
			}
			ctx.DrawList.AddRect(lx, ly+2, 8, 8, ctx.Fade(col))
			ctx.AddText(lx+12, ly, s.Label, ctx.Color(gui.ColText))
			ly += ctx.LineHeight()
		}
	}

	dim := ctx.Color(gui.ColTextDisabled)
	ctx.AddText(r.X+r.W-ctx.MeasureText(fmt.Sprintf("%.1f", hi)).X-2, r.Y+2, fmt.Sprintf("%.1f", hi), dim)
	ctx.AddText(r.X+r.W-ctx.MeasureText(fmt.Sprintf("%.1f", lo)).X-2, r.Y+r.H-ctx.LineHeight()-2, fmt.Sprintf("%.1f", lo), dim)
	ctx.DrawList.AddRectOutline(r.X, r.Y, r.W, r.H, ctx.Color(gui.ColBorder), 1)
	ctx.AdvanceCursor(gui.Vec2{X: r.W, Y: r.H})
}

// PlotHistogram draws values as bars rising from zero, or from the range
// minimum when that is above zero.
func PlotHistogram(ctx *gui.Context, id string, values []float32, height float32, opts ...gui.Option) {
	o := gui.Resolve(opts)
	ctx.PushID(id)
	defer ctx.PopID()

	r := plotFrame(ctx, o, height)
	st := Stats(values)
	lo, hi := plotRange(o, min(0, st.Min), max(0, st.Max)*1.1, false)

	if st.N > 0 {
		const gap = 1
		bw := r.W / float32(st.N)
		base := max(lo, 0)
		yOf := func(v float32) float32 { return r.Y + r.H - (min(max(v, lo), hi)-lo)/(hi-lo)*r.H }
		y0 := yOf(base)
		hovered := -1
		if ctx.IsHovered(r) {
			hovered = min(st.N-1, int((ctx.Input.MouseX-r.X)/bw))
		}
		for i, v := range values {
			col := ctx.Color(gui.ColPlotHistogram)
			if i == hovered {
				col = BlendColors(col, gui.RGBA(255, 255, 255, 80))
			}
			y := yOf(v)
			top, bottom := min(y, y0), max(y, y0)
			ctx.DrawList.AddRect(r.X+float32(i)*bw+gap, top, max(1, bw-gap*2), bottom-top, col)
		}
		if hovered >= 0 {
			plotTooltip(ctx, []string{fmt.Sprintf("%d: %.2f", hovered, values[hovered])})
		}
	}

	ctx.DrawList.AddRectOutline(r.X, r.Y, r.W, r.H, ctx.Color(gui.ColBorder), 1)
	ctx.AdvanceCursor(gui.Vec2{X: r.W, Y: r.H})
}

// smoothRetention keeps averages alive across short gaps in rendering.
const smoothRetention = 60

var smoothStore = gui.NewFrameStoreWithRetention[float32](smoothRetention)

// Smoothed returns an exponential moving average of v keyed by id. alpha is
// the weight of the new sample, clamped to [0, 1]. The first sample seeds
// the average.
//
//	fps := imx.Smoothed(ctx, "fps", 1/dt, 0.1)
func Smoothed(ctx *gui.Context, id string, v, alpha float32) float32 {
	alpha = min(max(alpha, 0), 1)
	avg := smoothStore.Get(ctx.StableID(id), v)
	*avg += alpha * (v - *avg)
	return *avg
}
