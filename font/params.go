package font

import (
	"errors"
	"fmt"
)

// BuildParams is the immutable snapshot an atlas was built from.
type BuildParams struct {
	DPI         float32
	UIScale     float32
	BaseDir     string
	UseFreetype bool // hinted rasterization
	Locale      string
}

// Defaults for a fresh Manager.
const (
	DefaultDPI     float32 = 72
	DefaultUIScale float32 = 1
	DefaultLocale          = "en"
)

// MarkdownSizes holds point sizes of the body and heading roles.
type MarkdownSizes struct {
	Body, H1, H2, H3 float32
}

// DefaultMarkdownSizes is used for zero fields passed to SetMarkdownSizes.
var DefaultMarkdownSizes = MarkdownSizes{Body: 14, H1: 24, H2: 20, H3: 16}

func (s MarkdownSizes) withDefaults() MarkdownSizes {
	d := DefaultMarkdownSizes
	if s.Body <= 0 {
		s.Body = d.Body
	}
	if s.H1 <= 0 {
		s.H1 = d.H1
	}
	if s.H2 <= 0 {
		s.H2 = d.H2
	}
	if s.H3 <= 0 {
		s.H3 = d.H3
	}
	return s
}

// Role names a font slot.
type Role uint8

const (
	RoleBody Role = iota
	RoleBold
	RoleItalic
	RoleMono
	RoleH1
	RoleH2
	RoleH3
	RoleIcon
	roleCount
)

var roleNames = [roleCount]string{
	RoleBody:   "body",
	RoleBold:   "bold",
	RoleItalic: "italic",
	RoleMono:   "mono",
	RoleH1:     "h1",
	RoleH2:     "h2",
	RoleH3:     "h3",
	RoleIcon:   "icon",
}

func (r Role) String() string {
	if r < roleCount {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// ParseRole maps a role name back to its Role.
func ParseRole(name string) (Role, bool) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), true
		}
	}
	return 0, false
}

// size returns the point size of r before UI scaling.
func (s MarkdownSizes) size(r Role) float32 {
	switch r {
	case RoleH1:
		return s.H1
	case RoleH2:
		return s.H2
	case RoleH3:
		return s.H3
	}
	return s.Body
}

// defaultSources maps every role to an embedded Go font.
var defaultSources = [roleCount]string{
	RoleBody:   "builtin:goregular",
	RoleBold:   "builtin:gobold",
	RoleItalic: "builtin:goitalic",
	RoleMono:   "builtin:gomono",
	RoleH1:     "builtin:gobold",
	RoleH2:     "builtin:gobold",
	RoleH3:     "builtin:gobold",
	RoleIcon:   "builtin:goregular",
}

// RebuildState is the outcome of RebuildIfNeeded.
type RebuildState uint8

const (
	RebuildSkipped  RebuildState = iota // nothing was dirty
	RebuildDone                         // new fonts are live
	RebuildFailed                       // previous fonts kept
	RebuildDeferred                     // called during a frame
)

func (s RebuildState) String() string {
	switch s {
	case RebuildSkipped:
		return "skipped"
	case RebuildDone:
		return "done"
	case RebuildFailed:
		return "failed"
	case RebuildDeferred:
		return "deferred"
	}
	return "unknown"
}

// RebuildResult reports a rebuild attempt. Err is set only for RebuildFailed.
type RebuildResult struct {
	State RebuildState
	Err   error
}

// Changed reports whether fonts were replaced.
func (r RebuildResult) Changed() bool { return r.State == RebuildDone }

var (
	// ErrSourceNotFound is wrapped when a font file or builtin name cannot
	// be resolved.
	ErrSourceNotFound = errors.New("font source not found")

	// ErrAtlasFull is wrapped when the glyphs do not fit the largest atlas.
	ErrAtlasFull = errors.New("font atlas full")
)
