package imx

import "github.com/go-theft-auto/imx/gui"

// NotifyKind selects a notification's color and icon.
type NotifyKind uint8

const (
	NotifyInfo NotifyKind = iota
	NotifySuccess
	NotifyWarning
	NotifyError
)

func (k NotifyKind) String() string {
	switch k {
	case NotifySuccess:
		return "success"
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "error"
	default:
		return "info"
	}
}

func (k NotifyKind) color() gui.StyleColor {
	switch k {
	case NotifySuccess:
		return gui.ColNotifySuccess
	case NotifyWarning:
		return gui.ColNotifyWarning
	case NotifyError:
		return gui.ColNotifyError
	default:
		return gui.ColNotifyInfo
	}
}

func (k NotifyKind) icon() string {
	switch k {
	case NotifySuccess:
		return "+"
	case NotifyWarning:
		return "!"
	case NotifyError:
		return "x"
	default:
		return "i"
	}
}

// Notification is one queued message. Duration and Elapsed are seconds.
type Notification struct {
	ID       uint64
	Title    string
	Message  string
	Kind     NotifyKind
	Duration float32
	Elapsed  float32
}

func (n *Notification) opacity() float32 {
	const fadeIn, fadeOutAt = 0.15, 0.7
	switch {
	case n.Elapsed < fadeIn:
		return n.Elapsed / fadeIn
	case n.Elapsed > n.Duration*fadeOutAt:
		return max(0, 1-(n.Elapsed-n.Duration*fadeOutAt)/(n.Duration*(1-fadeOutAt)))
	}
	return 1
}

const (
	// DefaultNotifyDuration is used when Push gets a non-positive duration.
	DefaultNotifyDuration float32 = 3

	// NotifyMaxVisible caps how many notifications Draw shows at once.
	NotifyMaxVisible = 5
)

// Notifier queues notifications and draws them stacked in the bottom-right
// corner of the display. The zero value is ready to use. Call Update once
// per frame and Draw after the rest of the UI.
type Notifier struct {
	items  []Notification
	nextID uint64
}

// Push queues a notification and returns its ID.
func (n *Notifier) Push(kind NotifyKind, title, message string, duration float32) uint64 {
	if duration <= 0 {
		duration = DefaultNotifyDuration
	}
	n.nextID++
	n.items = append(n.items, Notification{
		ID:       n.nextID,
		Title:    title,
		Message:  message,
		Kind:     kind,
		Duration: duration,
	})
	if len(n.items) > NotifyMaxVisible*2 {
		n.items = n.items[len(n.items)-NotifyMaxVisible:]
	}
	return n.nextID
}

func (n *Notifier) Info(title, message string) uint64 {
	return n.Push(NotifyInfo, title, message, 0)
}

func (n *Notifier) Success(title, message string) uint64 {
	return n.Push(NotifySuccess, title, message, 0)
}

func (n *Notifier) Warning(title, message string) uint64 {
	return n.Push(NotifyWarning, title, message, 0)
}

func (n *Notifier) Error(title, message string) uint64 {
	return n.Push(NotifyError, title, message, 0)
}

// Dismiss removes the notification with the given ID.
func (n *Notifier) Dismiss(id uint64) bool {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of queued notifications.
func (n *Notifier) Len() int { return len(n.items) }

// Items returns a copy of the queue, oldest first.
func (n *Notifier) Items() []Notification {
	return append([]Notification(nil), n.items...)
}

// Update advances timers by dt and drops expired notifications.
func (n *Notifier) Update(dt float32) {
	live := n.items[:0]
	for _, it := range n.items {
		it.Elapsed += dt
		if it.Elapsed < it.Duration {
			live = append(live, it)
		}
	}
	n.items = live
}

// Draw renders the newest NotifyMaxVisible notifications into the overlay,
// newest at the bottom. Clicking one dismisses it.
func (n *Notifier) Draw(ctx *gui.Context) {
	if len(n.items) == 0 {
		return
	}
	const (
		padX   = 12
		padY   = 8
		margin = 10
		gap    = 6
	)
	dl := ctx.Overlay()
	lh := ctx.LineHeight()
	baseX := ctx.DisplaySize.X - margin
	baseY := ctx.DisplaySize.Y - margin

	first := max(0, len(n.items)-NotifyMaxVisible)
	dismiss := uint64(0)
	for i := len(n.items) - 1; i >= first; i-- {
		it := &n.items[i]
		a := it.opacity()
		if a <= 0 {
			continue
		}

		icon := it.Kind.icon() + " "
		iconW := ctx.MeasureText(icon).X
		w := max(ctx.MeasureText(it.Title).X, ctx.MeasureText(it.Message).X) + iconW + padX*2
		h := lh + padY*2
		if it.Title != "" && it.Message != "" {
			h += lh + 2
		}
		r := gui.Rect{X: baseX - w, Y: baseY - h, W: w, H: h}

		dl.AddRect(r.X, r.Y, r.W, r.H, gui.WithAlpha(ctx.Color(it.Kind.color()), a))
		dl.AddRectOutline(r.X, r.Y, r.W, r.H, gui.RGBA(255, 255, 255, uint8(60*a)), 1)

		fg := gui.WithAlpha(ctx.Color(gui.ColText), a)
		ty := r.Y + padY
		ctx.AddTextTo(dl, r.X+padX, ty, icon, fg)
		if it.Title != "" {
			ctx.AddTextTo(dl, r.X+padX+iconW, ty, it.Title, fg)
			ty += lh + 2
		}
		if it.Message != "" {
			ctx.AddTextTo(dl, r.X+padX+iconW, ty, it.Message, fg)
		}

		if ctx.IsHovered(r) {
			ctx.WantCaptureMouse = true
			if ctx.IsClicked(r) {
				dismiss = it.ID
			}
		}
		baseY -= h + gap
	}
	if dismiss != 0 {
		n.Dismiss(dismiss)
	}
}
