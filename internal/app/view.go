package app

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vocal/internal/errmsg"
	"github.com/llehouerou/vocal/internal/ui/chart"
	"github.com/llehouerou/vocal/internal/ui/layout"
	"github.com/llehouerou/vocal/internal/ui/playerbar"
	"github.com/llehouerou/vocal/internal/ui/render"
)

// View renders the current screen.
func (m Model) View() string {
	w, h := m.screen.width, m.screen.height
	if w <= 0 || h <= 0 {
		return ""
	}

	var body string
	var bindings []key.Binding
	switch m.mode {
	case ModePlayer:
		body = m.playerView(w)
		bindings = m.playerKeys.HelpBindings()
	case ModeLoading:
		body = m.loadingView(w)
		bindings = m.playerKeys.HelpBindings()
	default:
		body = m.selection.View()
		bindings = m.selectionKeys.HelpBindings()
	}

	status := render.EmptyLine(w)
	if m.status != "" {
		status = render.Center(m.theme.S().Error.Render(render.Truncate(m.status, w)), w)
	}
	footer := playerbar.RenderFooter(m.cfg.ShowHotkeys, m.cfg.Footer(), bindings, w, m.theme)

	body = lipgloss.Place(w, layout.ContentHeight(h), lipgloss.Center, lipgloss.Center, body)
	return strings.Join([]string{body, status, footer}, "\n")
}

func (m Model) playerView(width int) string {
	var parts []string
	if c := m.renderChart(width); c != "" {
		parts = append(parts, c, "")
	}

	name := ""
	if t := m.queue.Current(); t != nil {
		name = t.Name()
	}
	info := playerbar.NewInfo(name, m.opts, m.frame.Passed, m.frame.Duration)
	info.Index = m.queue.CurrentIndex() + 1
	info.Total = m.queue.Len()
	parts = append(parts, playerbar.RenderInfo(info, width, m.theme), "")

	bar := playerbar.RenderProgressBar(m.frame.Progress, layout.ProgressBarWidth(width), m.theme.S().Primary)
	parts = append(parts, render.Center(bar, width))

	return strings.Join(parts, "\n")
}

// renderChart draws the waveform of the last frame. It returns "" when the
// frame has no data or the area is too small.
func (m Model) renderChart(width int) string {
	if !m.frame.HasBars {
		return ""
	}
	out, err := chart.Render(m.frame.Bars, chart.Options{
		Width:    layout.ChartWidth(width),
		Height:   layout.ChartHeight(m.screen.height),
		BarWidth: m.cfg.GetBarWidth(),
		BarGap:   m.cfg.GetBarGap(),
		Max:      m.scale.Ceiling(),
		From:     m.theme.Primary,
		To:       m.theme.Highlight,
	})
	if err != nil {
		log.Print(errmsg.Format(errmsg.OpChartRender, err))
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
}

func (m Model) loadingView(width int) string {
	label := "Loading"
	if t := m.queue.Current(); t != nil {
		label = "Loading " + t.Name()
	}
	line := m.spinner.View() + " " + m.theme.S().Muted.Render(render.Truncate(label, max(width-2, 0)))
	return render.Center(line, width)
}
