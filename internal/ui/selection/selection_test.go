package selection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/vocal/internal/keymap"
	"github.com/llehouerou/vocal/internal/library"
	"github.com/llehouerou/vocal/internal/playlist"
	"github.com/llehouerou/vocal/internal/ui/styles"
	"github.com/llehouerou/vocal/internal/ui/testutil"
)

func newModel(t *testing.T, names ...string) (*Model, *playlist.Queue) {
	t.Helper()
	q := playlist.NewQueue()
	m := New(q, "/music", styles.Default())
	entries := make([]library.Entry, len(names))
	for i, n := range names {
		entries[i] = library.Entry{Name: n, Path: "/music/" + n, Size: 1024}
	}
	m.SetEntries(entries)
	m.SetSize(80, 10)
	return m, q
}

func queuedPaths(q *playlist.Queue) []string {
	var out []string
	for _, tr := range q.Tracks() {
		out = append(out, tr.Path)
	}
	return out
}

func TestHandleAction_AddAndNavigate(t *testing.T) {
	m, q := newModel(t, "a.mp3", "b.mp3", "c.mp3")

	m.HandleAction(keymap.ActionAdd)
	m.HandleAction(keymap.ActionMoveDown)
	m.HandleAction(keymap.ActionMoveDown)
	m.HandleAction(keymap.ActionAdd)
	m.HandleAction(keymap.ActionMoveDown)

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "c.mp3", sel.Name, "cursor stops at the last entry")
	assert.Equal(t, []string{"/music/a.mp3", "/music/c.mp3"}, queuedPaths(q))

	m.HandleAction(keymap.ActionJumpStart)
	sel, _ = m.Selected()
	assert.Equal(t, "a.mp3", sel.Name)

	m.HandleAction(keymap.ActionJumpEnd)
	sel, _ = m.Selected()
	assert.Equal(t, "c.mp3", sel.Name)
}

func TestHandleAction_DeleteAndClear(t *testing.T) {
	m, q := newModel(t, "a.mp3", "b.mp3")
	m.HandleAction(keymap.ActionAdd)
	m.HandleAction(keymap.ActionMoveDown)
	m.HandleAction(keymap.ActionAdd)

	m.HandleAction(keymap.ActionDelete)
	assert.Equal(t, []string{"/music/a.mp3"}, queuedPaths(q), "delete from audio list removes the last queued")

	m.HandleAction(keymap.ActionAdd)
	m.HandleAction(keymap.ActionSwitchFocus)
	assert.Equal(t, FocusQueue, m.Focus())
	m.HandleAction(keymap.ActionJumpStart)
	m.HandleAction(keymap.ActionDelete)
	assert.Equal(t, []string{"/music/b.mp3"}, queuedPaths(q), "delete in queue removes the row under the cursor")

	m.HandleAction(keymap.ActionClear)
	assert.True(t, q.IsEmpty())

	m.HandleAction(keymap.ActionSwitchFocus)
	assert.Equal(t, FocusAudio, m.Focus())
}

func TestHandleAction_Select(t *testing.T) {
	m, q := newModel(t, "a.mp3", "b.mp3")
	m.HandleAction(keymap.ActionMoveDown)

	play := m.HandleAction(keymap.ActionSelect)
	assert.True(t, play)
	assert.Equal(t, []string{"/music/b.mp3"}, queuedPaths(q), "empty queue gets the selected entry")

	m.HandleAction(keymap.ActionJumpStart)
	play = m.HandleAction(keymap.ActionSelect)
	assert.True(t, play)
	assert.Equal(t, []string{"/music/b.mp3"}, queuedPaths(q), "non-empty queue is played as is")
}

func TestHandleAction_EmptyList(t *testing.T) {
	m, q := newModel(t)
	assert.False(t, m.HandleAction(keymap.ActionSelect))
	m.HandleAction(keymap.ActionAdd)
	m.HandleAction(keymap.ActionMoveDown)
	assert.True(t, q.IsEmpty())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestView(t *testing.T) {
	m, _ := newModel(t, "a.mp3", "b.mp3")
	m.HandleAction(keymap.ActionAdd)

	out := m.View()
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, 80, testutil.MeasureWidth(line))
	}
	assert.True(t, testutil.ContainsLine(out, "Audio"))
	assert.True(t, testutil.ContainsLine(out, "Queue"))
	assert.True(t, testutil.ContainsLine(out, "b.mp3"))
	assert.True(t, testutil.ContainsLine(out, "1.0 KiB"))
}

func TestView_Scrolls(t *testing.T) {
	names := make([]string, 30)
	for i := range names {
		names[i] = string(rune('a'+i%26)) + strings.Repeat("x", i/26) + ".mp3"
	}
	m, _ := newModel(t, names...)
	m.HandleAction(keymap.ActionJumpEnd)

	out := m.View()
	assert.True(t, testutil.ContainsLine(out, names[29]))
	assert.False(t, testutil.ContainsLine(out, "a.mp3"))
}

func TestView_NoEntries(t *testing.T) {
	m, _ := newModel(t)
	out := m.View()
	assert.True(t, testutil.ContainsLine(out, "No audio files"))
	assert.True(t, testutil.ContainsLine(out, "/music"))
}

func TestView_ZeroSize(t *testing.T) {
	m, _ := newModel(t, "a.mp3")
	m.SetSize(0, 0)
	assert.Empty(t, m.View())
}

func TestCursor(t *testing.T) {
	var c cursor
	c.move(5, 10, 3)
	assert.Equal(t, 5, c.pos)
	start, end := c.visibleRange(10, 3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	c.clampTo(2, 3)
	assert.Equal(t, 1, c.pos)
	assert.Equal(t, 0, c.offset)

	c.clampTo(0, 3)
	assert.Equal(t, 0, c.pos)
}
