package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vocal/internal/decode"
	"github.com/llehouerou/vocal/internal/library"
	"github.com/llehouerou/vocal/internal/sample"
)

// FrameCmd returns a command that sends FrameMsg after interval.
func FrameCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

// LoadTrackCmd decodes path in the background.
func LoadTrackCmd(id int, path string, reg *decode.Registry) tea.Cmd {
	return func() tea.Msg {
		store, err := sample.Load(path, reg)
		return TrackLoadedMsg{ID: id, Path: path, Store: store, Err: err}
	}
}

// ListDirCmd lists the playable files of dir.
func ListDirCmd(dir string, reg *decode.Registry) tea.Cmd {
	return func() tea.Msg {
		entries, err := library.List(dir, reg)
		return EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

// LoadPathsCmd builds entries for files given on the command line.
func LoadPathsCmd(paths []string, reg *decode.Registry) tea.Cmd {
	return func() tea.Msg {
		entries, err := library.FromPaths(paths, reg)
		return PathsLoadedMsg{Entries: entries, Err: err}
	}
}
