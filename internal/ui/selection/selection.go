// Package selection renders the screen where files are picked and queued.
package selection

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vocal/internal/keymap"
	"github.com/llehouerou/vocal/internal/library"
	"github.com/llehouerou/vocal/internal/playlist"
	"github.com/llehouerou/vocal/internal/ui/layout"
	"github.com/llehouerou/vocal/internal/ui/render"
	"github.com/llehouerou/vocal/internal/ui/styles"
)

// Focus is the list receiving navigation keys.
type Focus int

const (
	FocusAudio Focus = iota
	FocusQueue
)

// Model is the selection screen: the audio list next to the queue.
type Model struct {
	entries []library.Entry
	queue   *playlist.Queue
	dir     string
	theme   *styles.Theme

	audio  cursor
	queued cursor
	focus  Focus

	width  int
	height int
}

// New creates the screen over queue. dir is shown when there is nothing to list.
func New(queue *playlist.Queue, dir string, theme *styles.Theme) *Model {
	return &Model{queue: queue, dir: dir, theme: theme}
}

// SetEntries replaces the audio list.
func (m *Model) SetEntries(entries []library.Entry) {
	m.entries = entries
	m.audio.clampTo(len(entries), m.listHeight())
}

// Entries returns the audio list.
func (m *Model) Entries() []library.Entry { return m.entries }

// SetSize sets the area available to the screen.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.audio.ensureVisible(len(m.entries), m.listHeight())
	m.queued.ensureVisible(m.queue.Len(), m.listHeight())
}

// Focus returns the focused list.
func (m *Model) Focus() Focus { return m.focus }

// Selected returns the entry under the audio cursor.
func (m *Model) Selected() (library.Entry, bool) {
	if len(m.entries) == 0 {
		return library.Entry{}, false
	}
	return m.entries[m.audio.pos], true
}

// HandleAction applies a selection-screen action. It reports whether
// playback of the queue should start.
func (m *Model) HandleAction(action keymap.Action) (play bool) {
	h := m.listHeight()
	cur, n := &m.audio, len(m.entries)
	if m.focus == FocusQueue {
		cur, n = &m.queued, m.queue.Len()
	}

	switch action {
	case keymap.ActionMoveUp:
		cur.move(-1, n, h)
	case keymap.ActionMoveDown:
		cur.move(1, n, h)
	case keymap.ActionJumpStart:
		cur.jumpStart()
	case keymap.ActionJumpEnd:
		cur.jumpEnd(n, h)
	case keymap.ActionSwitchFocus:
		if m.focus == FocusAudio {
			m.focus = FocusQueue
		} else {
			m.focus = FocusAudio
		}
	case keymap.ActionAdd:
		m.addSelected()
	case keymap.ActionDelete:
		if m.focus == FocusQueue {
			m.queue.RemoveAt(m.queued.pos)
		} else {
			m.queue.RemoveLast()
		}
		m.queued.clampTo(m.queue.Len(), h)
	case keymap.ActionClear:
		m.queue.Clear()
		m.queued.clampTo(0, h)
	case keymap.ActionSelect:
		if m.queue.IsEmpty() {
			m.addSelected()
		}
		return !m.queue.IsEmpty()
	}
	return false
}

func (m *Model) addSelected() {
	e, ok := m.Selected()
	if !ok {
		return
	}
	m.queue.Add(playlist.Track{Path: e.Path, Title: e.DisplayName()})
	m.queued.ensureVisible(m.queue.Len(), m.listHeight())
}

// listHeight is the number of rows inside a panel.
func (m *Model) listHeight() int {
	return max(m.height-3, 0) // borders and title
}

// View renders the screen.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	s := m.theme.S()

	if len(m.entries) == 0 {
		msg := s.Title.Render("No audio files") + "\n" +
			s.Muted.Render(render.Truncate("Nothing playable in "+m.dir, m.width))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	audioWidth := layout.AudioPanelWidth(m.width)
	queueWidth := layout.QueuePanelWidth(m.width)

	names := make([]string, len(m.entries))
	sizes := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.DisplayName()
		sizes[i] = e.SizeString()
	}
	audio := m.panel("Audio", names, sizes, m.audio, audioWidth, m.focus == FocusAudio)

	tracks := m.queue.Tracks()
	queued := make([]string, len(tracks))
	for i, t := range tracks {
		queued[i] = t.Name()
	}
	queue := m.panel("Queue", queued, nil, m.queued, queueWidth, m.focus == FocusQueue)

	return lipgloss.JoinHorizontal(lipgloss.Top, audio, queue)
}

func (m *Model) panel(title string, items, details []string, cur cursor, width int, focused bool) string {
	s := m.theme.S()
	inner := max(width-2, 1)
	h := m.listHeight()

	rows := make([]string, 0, h+1)
	rows = append(rows, s.Title.Render(render.Truncate(title, inner)))

	start, end := cur.visibleRange(len(items), h)
	for i := start; i < end; i++ {
		line := items[i]
		if details != nil && details[i] != "" {
			line = render.Row(render.Truncate(line, max(inner-len(details[i])-1, 1)), details[i], inner)
		}
		line = render.TruncateAndPad(line, inner)
		switch {
		case i == cur.pos && focused:
			line = s.Cursor.Render(line)
		case i == cur.pos:
			line = s.Highlight.Render(line)
		default:
			line = s.Base.Render(line)
		}
		rows = append(rows, line)
	}
	for len(rows) < h+1 {
		rows = append(rows, render.EmptyLine(inner))
	}

	return m.theme.Panel(focused).Width(inner).Render(strings.Join(rows, "\n"))
}
