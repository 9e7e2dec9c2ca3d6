package styles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // configured main color - chart, borders, progress bar
	Highlight lipgloss.Color // configured highlight color - titles, cursor, key hints

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color
	Error    lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Dimmed text
	Subtle    lipgloss.Style // Very dim text
	Title     lipgloss.Style // Bold, highlight color
	Primary   lipgloss.Style // Main color
	Highlight lipgloss.Style
	Cursor    lipgloss.Style // Cursor row
	Error     lipgloss.Style
}

// namedColors maps color names to xterm hex values so gradients can blend them.
var namedColors = map[string]string{
	"black":         "#000000",
	"red":           "#cd0000",
	"green":         "#00cd00",
	"yellow":        "#cdcd00",
	"blue":          "#0000ee",
	"magenta":       "#cd00cd",
	"cyan":          "#00cdcd",
	"white":         "#e5e5e5",
	"gray":          "#7f7f7f",
	"grey":          "#7f7f7f",
	"lightred":      "#ff0000",
	"lightgreen":    "#00ff00",
	"lightyellow":   "#ffff00",
	"lightblue":     "#5c5cff",
	"lightmagenta":  "#ff00ff",
	"lightcyan":     "#00ffff",
	"brightwhite":   "#ffffff",
	"darkgray":      "#4d4d4d",
	"darkgrey":      "#4d4d4d",
	"purple":        "#a78bfa",
	"orange":        "#f1a208",
	"pink":          "#ff87d7",
	"brightred":     "#ff0000",
	"brightgreen":   "#00ff00",
	"brightyellow":  "#ffff00",
	"brightblue":    "#5c5cff",
	"brightmagenta": "#ff00ff",
	"brightcyan":    "#00ffff",
}

// ansi16 holds the xterm values of the 16 base ANSI colors.
var ansi16 = [16]string{
	"#000000", "#cd0000", "#00cd00", "#cdcd00", "#0000ee", "#cd00cd", "#00cdcd", "#e5e5e5",
	"#7f7f7f", "#ff0000", "#00ff00", "#ffff00", "#5c5cff", "#ff00ff", "#00ffff", "#ffffff",
}

// ParseColor resolves a color name, an ANSI 256 number or a #rrggbb value
// to a hex lipgloss color.
func ParseColor(s string) (lipgloss.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", errors.New("empty color")
	}
	if hex, ok := namedColors[strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)]; ok {
		return lipgloss.Color(hex), nil
	}
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		return lipgloss.Color(s), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return lipgloss.Color(ansiToHex(n)), nil
}

// ansiToHex converts an xterm 256-color index to hex.
func ansiToHex(n int) string {
	switch {
	case n < 16:
		return ansi16[n]
	case n < 232:
		levels := [6]int{0, 95, 135, 175, 215, 255}
		n -= 16
		return fmt.Sprintf("#%02x%02x%02x", levels[n/36], levels[(n/6)%6], levels[n%6])
	default:
		g := 8 + 10*(n-232)
		return fmt.Sprintf("#%02x%02x%02x", g, g, g)
	}
}

// New builds a theme from the configured main and highlight colors.
// Unparseable colors fall back to cyan and magenta.
func New(primary, highlight string) *Theme {
	p, err := ParseColor(primary)
	if err != nil {
		p = lipgloss.Color(namedColors["cyan"])
	}
	h, err := ParseColor(highlight)
	if err != nil {
		h = lipgloss.Color(namedColors["magenta"])
	}
	return &Theme{
		Primary:   p,
		Highlight: h,
		FgBase:    lipgloss.Color("#c0c0c0"),
		FgMuted:   lipgloss.Color("#808080"),
		FgSubtle:  lipgloss.Color("#585858"),
		BgCursor:  lipgloss.Color("#303030"),
		Error:     lipgloss.Color("#ff5555"),
	}
}

// Default returns the theme for the default configuration.
func Default() *Theme {
	return New("cyan", "magenta")
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:     lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		Primary:   lipgloss.NewStyle().Foreground(t.Primary),
		Highlight: lipgloss.NewStyle().Foreground(t.Highlight),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.Highlight).
			Bold(true),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}

// Panel returns a rounded border panel style, using the main color when
// focused.
func (t *Theme) Panel(focused bool) lipgloss.Style {
	border := t.FgSubtle
	if focused {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
