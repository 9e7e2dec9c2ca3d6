package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/vocal/internal/playback"
	"github.com/llehouerou/vocal/internal/ui/render"
	"github.com/llehouerou/vocal/internal/ui/styles"
)

// Info holds everything the info panel shows.
type Info struct {
	Name     string // track display name
	Index    int    // 1-based queue position, 0 to hide
	Total    int
	Volume   int // percent
	Muted    bool
	Speed    int // percent
	Paused   bool
	Passed   time.Duration
	Duration time.Duration
}

// NewInfo builds the panel state from the runtime options.
func NewInfo(name string, opts *playback.Options, passed, duration time.Duration) Info {
	return Info{
		Name:     name,
		Volume:   opts.Volume(),
		Muted:    opts.Muted(),
		Speed:    opts.Speed(),
		Paused:   opts.Paused(),
		Passed:   passed,
		Duration: duration,
	}
}

// RenderInfo renders the centered three-line info panel.
func RenderInfo(info Info, width int, theme *styles.Theme) string {
	s := theme.S()

	name := render.Sanitize(info.Name)
	if info.Index > 0 && info.Total > 0 {
		name = fmt.Sprintf("%s  [%d/%d]", name, info.Index, info.Total)
	}
	title := styles.ApplyBoldGradient(render.Truncate(name, width), theme.Highlight, theme.Primary)

	volume := fmt.Sprintf("%d%%", info.Volume)
	if info.Muted {
		volume = "muted"
	}
	status := s.Muted.Render("volume ") + s.Primary.Render(volume) +
		s.Muted.Render("   speed ") + s.Primary.Render(fmt.Sprintf("%d%%", info.Speed))
	if info.Paused {
		status += "   " + s.Highlight.Render("paused")
	}

	passed := min(info.Passed, info.Duration)
	clock := s.Base.Render(render.Duration(passed)) + s.Muted.Render(" / ") + s.Base.Render(render.Duration(info.Duration))

	return strings.Join([]string{
		render.Center(title, width),
		render.Center(status, width),
		render.Center(clock, width),
	}, "\n")
}
