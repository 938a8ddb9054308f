package gui

import "hash/fnv"

// ID identifies a widget across frames. The same label under the same
// parent yields the same ID every frame as long as call order is stable.
type ID uint64

// GetID derives an ID from label, the ID stack and a per-frame call counter
// so that identical labels in a loop stay distinct.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++

	h := fnv.New64a()
	h.Write([]byte(label))

	// parent (32 bits) | counter (16 bits) | label hash (16 bits)
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | h.Sum64()&0xFFFF)
}

// StableID derives an ID from label and the ID stack only. Use it when a
// widget may be skipped on some frames but must keep its state.
func (ctx *Context) StableID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(uint64(ctx.CurrentID())<<32 ^ h.Sum64())
}

// GetIDFromInt derives an ID from n, for slice elements.
func (ctx *Context) GetIDFromInt(n int) ID {
	ctx.idCounter++
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | uint64(n)&0xFFFF)
}

// PushID makes subsequent IDs relative to label.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.StableID(label))
}

// PushIDInt makes subsequent IDs relative to n.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDFromInt(n))
}

// PopID pops the ID stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the top of the ID stack, or 0.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
