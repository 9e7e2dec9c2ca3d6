package app

import (
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vocal/internal/errmsg"
	"github.com/llehouerou/vocal/internal/playlist"
	"github.com/llehouerou/vocal/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.width, m.screen.height = msg.Width, msg.Height
		m.selection.SetSize(msg.Width, layout.ContentHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case LoadingMessage:
		return m.handleLoadingMsg(msg)
	}
	return m, nil
}

func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m.handleFrame(msg)
	case TrackLoadedMsg:
		return m.handleTrackLoaded(msg)
	}
	return m, nil
}

func (m Model) handleLoadingMsg(msg LoadingMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntriesLoadedMsg:
		if msg.Err != nil {
			log.Printf("list %s: %v", m.cfg.AudioDirectory, msg.Err)
			m.status = errmsg.FormatWith(errmsg.OpDirectoryRead, m.cfg.AudioDirectory, msg.Err)
		}
		if len(m.paths) == 0 {
			m.selection.SetEntries(msg.Entries)
		}
		return m, nil

	case PathsLoadedMsg:
		if msg.Err != nil {
			log.Printf("load paths: %v", msg.Err)
			m.status = errmsg.Format(errmsg.OpTrackLoad, msg.Err)
		}
		m.selection.SetEntries(msg.Entries)
		for _, e := range msg.Entries {
			m.queue.Add(playlist.Track{Path: e.Path, Title: e.DisplayName()})
		}
		if !m.exitWhenDone {
			return m, nil
		}
		if m.queue.IsEmpty() {
			m.err = msg.Err
			return m, tea.Quit
		}
		m.queue.Start(0)
		cmd := m.loadCurrent()
		return m, cmd
	}
	return m, nil
}
