package gui

// ListClipper is the range of equally tall rows that intersect the
// visible area. Rows outside it can be skipped and replaced by Dummy space.
//
//	clip := ctx.ListClipper(len(rows), rowHeight+spacing)
//	clip.SkipBefore(ctx, spacing)
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    drawRow(i)
//	}
//	clip.SkipAfter(ctx, spacing)
type ListClipper struct {
	StartIdx   int // first visible row, inclusive
	EndIdx     int // last visible row, exclusive
	ItemHeight float32
	TotalItems int
}

// NewListClipper computes the rows of height itemHeight that overlap a
// window visibleHeight tall starting scrollY below the first row.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 {
		return c
	}
	start := max(int(scrollY/itemHeight), 0)
	// One extra row on each side covers partially visible rows.
	end := start + int(visibleHeight/itemHeight) + 2
	c.StartIdx = min(start, totalItems)
	c.EndIdx = min(end, totalItems)
	return c
}

// ListClipper returns the visible rows of a list whose first row is laid
// out at the cursor inside the innermost Scrollable. Outside a Scrollable
// every row is visible.
func (ctx *Context) ListClipper(totalItems int, itemHeight float32) ListClipper {
	n := len(ctx.scrollStack)
	if n == 0 {
		return ListClipper{EndIdx: max(totalItems, 0), ItemHeight: itemHeight, TotalItems: totalItems}
	}
	view := ctx.scrollStack[n-1].view
	return NewListClipper(totalItems, itemHeight, view.H, view.Y-ctx.cursor.Y)
}

// VisibleCount returns the number of rows to draw.
func (c ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the height of all rows.
func (c ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// SkipBefore reserves the space of the rows above StartIdx. gap is the
// layout gap already counted in ItemHeight.
func (c ListClipper) SkipBefore(ctx *Context, gap float32) {
	if c.StartIdx > 0 {
		ctx.Dummy(Vec2{Y: float32(c.StartIdx)*c.ItemHeight - gap})
	}
}

// SkipAfter reserves the space of the rows from EndIdx on.
func (c ListClipper) SkipAfter(ctx *Context, gap float32) {
	if c.EndIdx < c.TotalItems {
		ctx.Dummy(Vec2{Y: float32(c.TotalItems-c.EndIdx)*c.ItemHeight - gap})
	}
}
