package theme

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/go-theft-auto/imx/gui"
)

// A theme file holds one or more blocks:
//
//	// comments run to the end of the line
//	theme "Ocean" extends dark {
//	    text = #e0e0e0
//	    button = #204060ff
//	    rounding = 4
//	}
//
// Keys are style color names (gui.StyleColor.String) taking #rrggbb or
// #rrggbbaa, or one of rounding, alpha and font_scale taking a number.

var (
	themeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6})`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}=;]`},
	})

	fileParser = participle.MustBuild[fileAST](
		participle.Lexer(themeLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

type fileAST struct {
	Themes []*themeAST `parser:"@@*"`
}

type themeAST struct {
	Pos     lexer.Position
	Name    string      `parser:"'theme' ( @String | @Ident )"`
	Base    string      `parser:"( 'extends' ( @String | @Ident ) )?"`
	Entries []*entryAST `parser:"'{' ( @@ ';'? )* '}'"`
}

type entryAST struct {
	Pos    lexer.Position
	Key    string   `parser:"@Ident '='"`
	Color  *string  `parser:"( @Color"`
	Number *float64 `parser:"| @Number )"`
}

// Parse reads every theme in r. name labels errors.
func Parse(name string, r io.Reader) ([]Theme, error) {
	ast, err := fileParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return fromAST(ast)
}

// ParseString is Parse over a string.
func ParseString(name, src string) ([]Theme, error) {
	ast, err := fileParser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return fromAST(ast)
}

func fromAST(ast *fileAST) ([]Theme, error) {
	out := make([]Theme, 0, len(ast.Themes))
	for _, ta := range ast.Themes {
		t := Theme{Name: ta.Name, Base: ta.Base}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("theme: %s: %w", ta.Pos, err)
		}
		for _, e := range ta.Entries {
			if err := t.set(e); err != nil {
				return nil, fmt.Errorf("theme: %s: %w", e.Pos, err)
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (t *Theme) set(e *entryAST) error {
	if e.Color != nil {
		c, ok := gui.ParseStyleColor(e.Key)
		if !ok {
			return fmt.Errorf("unknown color %q", e.Key)
		}
		v, err := parseHexColor(*e.Color)
		if err != nil {
			return err
		}
		if t.Colors == nil {
			t.Colors = make(map[gui.StyleColor]uint32)
		}
		t.Colors[c] = v
		return nil
	}

	v := float32(*e.Number)
	switch e.Key {
	case "rounding":
		t.Rounding = &v
	case "alpha":
		t.Alpha = &v
	case "font_scale":
		t.FontScale = &v
	default:
		if _, ok := gui.ParseStyleColor(e.Key); ok {
			return fmt.Errorf("%s wants a #color", e.Key)
		}
		return fmt.Errorf("unknown setting %q", e.Key)
	}
	return nil
}

// parseHexColor converts #rrggbb or #rrggbbaa to a packed color.
func parseHexColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 8 {
		return 0, fmt.Errorf("bad color %q", s)
	}
	return gui.RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

func formatHexColor(c uint32) string {
	r, g, b, a := gui.UnpackRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Format writes t in the theme file syntax. Colors are emitted in
// StyleColor order, so output is stable.
func Format(w io.Writer, t Theme) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "theme %s", strconv.Quote(t.Name))
	if t.Base != "" {
		fmt.Fprintf(&sb, " extends %s", t.Base)
	}
	sb.WriteString(" {\n")
	cols := make([]gui.StyleColor, 0, len(t.Colors))
	for c := range t.Colors {
		cols = append(cols, c)
	}
	slices.Sort(cols)
	for _, c := range cols {
		fmt.Fprintf(&sb, "\t%s = %s\n", c, formatHexColor(t.Colors[c]))
	}
	for _, s := range []struct {
		key string
		v   *float32
	}{{"rounding", t.Rounding}, {"alpha", t.Alpha}, {"font_scale", t.FontScale}} {
		if s.v != nil {
			fmt.Fprintf(&sb, "\t%s = %s\n", s.key, strconv.FormatFloat(float64(*s.v), 'f', -1, 32))
		}
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
