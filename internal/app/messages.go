// Package app contains the bubbletea model tying the selection screen, the
// audio device and the frame scheduler together.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vocal/internal/library"
	"github.com/llehouerou/vocal/internal/sample"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// PlaybackMessage is implemented by messages driving the current track.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// LoadingMessage is implemented by messages carrying file listings.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// FrameMsg wakes the scheduler for one step. Frames from a previous track
// carry a stale ID and are dropped.
type FrameMsg struct {
	ID int
}

func (FrameMsg) playbackMessage() {}

// TrackLoadedMsg is sent when a track finished decoding in the background.
type TrackLoadedMsg struct {
	ID    int
	Path  string
	Store *sample.Store
	Err   error
}

func (TrackLoadedMsg) playbackMessage() {}

// EntriesLoadedMsg carries the audio directory listing.
type EntriesLoadedMsg struct {
	Entries []library.Entry
	Err     error
}

func (EntriesLoadedMsg) loadingMessage() {}

// PathsLoadedMsg carries the files given on the command line.
type PathsLoadedMsg struct {
	Entries []library.Entry
	Err     error
}

func (PathsLoadedMsg) loadingMessage() {}
