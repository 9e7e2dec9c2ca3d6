package playerbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/vocal/internal/ui/render"
	"github.com/llehouerou/vocal/internal/ui/styles"
)

// RenderFooter renders the key hints, or custom text when hints are hidden.
func RenderFooter(showHotkeys bool, custom string, bindings []key.Binding, width int, theme *styles.Theme) string {
	if width <= 0 {
		return ""
	}
	if !showHotkeys {
		return render.Center(theme.S().Primary.Render(render.Truncate(custom, width)), width)
	}

	h := help.New()
	h.Width = width
	h.Styles.ShortKey = theme.S().Highlight
	h.Styles.ShortDesc = theme.S().Primary
	h.Styles.ShortSeparator = theme.S().Subtle
	h.Styles.Ellipsis = theme.S().Subtle
	return render.Center(h.ShortHelpView(bindings), width)
}
