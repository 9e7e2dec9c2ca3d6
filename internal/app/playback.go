package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vocal/internal/errmsg"
	"github.com/llehouerou/vocal/internal/scheduler"
)

// startQueue plays the queue from its first track.
func (m *Model) startQueue() tea.Cmd {
	if m.queue.Start(0) == nil {
		return nil
	}
	m.opts.SetPaused(false)
	m.device.SetPaused(false)
	return m.loadCurrent()
}

// loadCurrent decodes the queue's current track in the background.
func (m *Model) loadCurrent() tea.Cmd {
	t := m.queue.Current()
	if t == nil {
		return m.finishQueue()
	}
	m.sched, m.store = nil, nil
	m.frameID++
	m.loadID++
	m.mode = ModeLoading
	return LoadTrackCmd(m.loadID, t.Path, m.registry)
}

// skipCurrent moves past a track that could not be played.
func (m *Model) skipCurrent() tea.Cmd {
	m.queue.Advance()
	return m.loadCurrent()
}

func (m Model) handleTrackLoaded(msg TrackLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.loadID || m.mode != ModeLoading {
		return m, nil
	}
	t := m.queue.Current()
	if t == nil {
		cmd := m.finishQueue()
		return m, cmd
	}

	if msg.Err != nil {
		log.Printf("load %s: %v", msg.Path, msg.Err)
		m.status = errmsg.FormatWith(errmsg.OpTrackLoad, t.Name(), msg.Err)
		cmd := m.skipCurrent()
		return m, cmd
	}

	if err := m.device.Play(msg.Store); err != nil {
		log.Printf("play %s: %v", msg.Path, err)
		m.status = errmsg.FormatWith(errmsg.OpTrackPlay, t.Name(), err)
		cmd := m.skipCurrent()
		return m, cmd
	}

	m.queue.ResetSignals()
	m.listener = &trackListener{device: m.device, queue: m.queue}
	sched, err := scheduler.New(msg.Store, m.opts, scheduler.Config{
		Signals:  m.queue,
		Listener: m.listener,
		Size:     m.size,
		Interval: m.interval,
		Now:      m.now,
	})
	if err != nil {
		m.device.Stop()
		log.Printf("schedule %s: %v", msg.Path, err)
		m.status = errmsg.FormatWith(errmsg.OpTrackPlay, t.Name(), err)
		cmd := m.skipCurrent()
		return m, cmd
	}

	log.Printf("playing %s (%s, %d Hz, %s)", msg.Path, msg.Store.Format(), msg.Store.SampleRate(), msg.Store.Duration())
	m.sched, m.store = sched, msg.Store
	m.frame = scheduler.Frame{State: scheduler.Running, Duration: msg.Store.Duration()}
	m.mode = ModePlayer
	m.frameID++
	return m, FrameCmd(m.frameID, sched.Interval())
}

// handleFrame runs one scheduler step, then at most one queued key press.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.frameID || m.sched == nil {
		return m, nil
	}

	f, err := m.sched.Step()
	if err != nil {
		log.Printf("frame: %v", err)
		m.device.Stop()
		m.err = err
		return m, tea.Quit
	}
	m.frame = f
	if f.State.Done() {
		cmd := m.trackDone()
		return m, cmd
	}

	if len(m.pending) > 0 {
		k := m.pending[0]
		m.pending = m.pending[1:]
		if cmd := m.handlePlayerKey(k); cmd != nil {
			return m, cmd
		}
	}
	return m, FrameCmd(m.frameID, m.sched.Interval())
}

// trackDone moves on after the scheduler reached a terminal state. A
// completed track was already advanced past by the listener.
func (m *Model) trackDone() tea.Cmd {
	m.sched = nil
	m.frameID++

	switch {
	case m.listener != nil && m.listener.completed:
		return m.loadCurrent()
	case m.queue.Interrupted():
		m.queue.ResetSignals()
		return m.finishQueue()
	default:
		m.queue.ResetSignals()
		return m.loadCurrent()
	}
}

// finishQueue leaves playback: back to the selection screen, or out of the
// program when it was started to play files.
func (m *Model) finishQueue() tea.Cmd {
	m.sched, m.store = nil, nil
	m.pending = nil
	m.frameID++
	m.loadID++
	if m.exitWhenDone {
		return tea.Quit
	}
	m.mode = ModeSelection
	return nil
}
