package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vocal/internal/app/handler"
	"github.com/llehouerou/vocal/internal/keymap"
	"github.com/llehouerou/vocal/internal/playback"
)

// handleKey routes a key press. While a track plays, keys wait in a FIFO
// and are applied one per frame, after the frame was computed.
func (m Model) handleKey(k string) (tea.Model, tea.Cmd) {
	if m.playerKeys.Resolve(k) == keymap.ActionQuit {
		m.queue.Interrupt()
		m.device.Stop()
		return m, tea.Quit
	}

	switch m.mode {
	case ModePlayer:
		m.pending = append(m.pending, k)
		return m, nil
	case ModeLoading:
		cmd := m.handleLoadingKey(k)
		return m, cmd
	default:
		return m.handleSelectionKey(k)
	}
}

func (m Model) handleSelectionKey(k string) (tea.Model, tea.Cmd) {
	action := m.selectionKeys.Resolve(k)
	switch action {
	case "":
		return m, nil
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionRefresh:
		if len(m.paths) > 0 {
			return m, nil
		}
		m.status = ""
		return m, ListDirCmd(m.cfg.AudioDirectory, m.registry)
	}

	m.status = ""
	if m.selection.HandleAction(action) {
		cmd := m.startQueue()
		return m, cmd
	}
	return m, nil
}

// handlePlayerKey applies one queued key press to the playing track.
func (m *Model) handlePlayerKey(k string) tea.Cmd {
	_, cmd := handler.Chain(m.playerKeys.Resolve(k), m.handleOptionAction, m.handleQueueAction)
	return cmd
}

// handleLoadingKey applies a key press while no track is playing yet.
func (m *Model) handleLoadingKey(k string) tea.Cmd {
	action := m.playerKeys.Resolve(k)
	if m.handleOptionAction(action).Handled {
		return nil
	}
	switch action {
	case keymap.ActionStop:
		m.queue.ResetSignals()
		return m.finishQueue()
	case keymap.ActionNextTrack:
		if m.queue.SkipNext() {
			m.queue.ResetSignals()
			return m.loadCurrent()
		}
	case keymap.ActionPrevTrack:
		if m.queue.SkipPrevious() {
			m.queue.ResetSignals()
			return m.loadCurrent()
		}
	}
	return nil
}

// handleOptionAction changes a runtime option and applies it to the device.
func (m *Model) handleOptionAction(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionPlayPause:
		m.device.SetPaused(m.opts.TogglePause())
	case keymap.ActionToggleMute:
		m.device.SetMuted(m.opts.ToggleMute())
	case keymap.ActionVolumeUp:
		m.opts.AdjustVolume(playback.VolumeStep)
		m.device.SetVolume(m.opts.VolumeRatio())
	case keymap.ActionVolumeDown:
		m.opts.AdjustVolume(-playback.VolumeStep)
		m.device.SetVolume(m.opts.VolumeRatio())
	case keymap.ActionSpeedUp:
		m.opts.AdjustSpeed(playback.SpeedStep)
		m.device.SetSpeed(m.opts.SpeedRatio())
	case keymap.ActionSpeedDown:
		m.opts.AdjustSpeed(-playback.SpeedStep)
		m.device.SetSpeed(m.opts.SpeedRatio())
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleQueueAction raises the queue flags polled by the scheduler.
func (m *Model) handleQueueAction(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionNextTrack:
		m.queue.SkipNext()
	case keymap.ActionPrevTrack:
		m.queue.SkipPrevious()
	case keymap.ActionStop:
		m.queue.Interrupt()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}
