package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vocal/internal/config"
	"github.com/llehouerou/vocal/internal/decode"
	"github.com/llehouerou/vocal/internal/keymap"
	"github.com/llehouerou/vocal/internal/playback"
	"github.com/llehouerou/vocal/internal/player"
	"github.com/llehouerou/vocal/internal/playlist"
	"github.com/llehouerou/vocal/internal/sample"
	"github.com/llehouerou/vocal/internal/scheduler"
	"github.com/llehouerou/vocal/internal/ui/selection"
	"github.com/llehouerou/vocal/internal/ui/styles"
	"github.com/llehouerou/vocal/internal/waveform"
)

// Mode is the screen being shown.
type Mode int

const (
	ModeSelection Mode = iota
	ModeLoading
	ModePlayer
)

// Options configures New.
type Options struct {
	Config   *config.Config
	Device   player.Interface
	Registry *decode.Registry // decode.DefaultRegistry when nil
	Playback *playback.Options

	// Paths are queued at startup. With Play set they start playing at once
	// and the program exits when the queue is done.
	Paths []string
	Play  bool

	Size     scheduler.SizeFunc // last window size when nil
	Interval time.Duration
	Now      func() time.Time
}

// Model is the application state. It is owned by the bubbletea loop.
type Model struct {
	cfg      *config.Config
	device   player.Interface
	registry *decode.Registry
	opts     *playback.Options
	queue    *playlist.Queue
	theme    *styles.Theme

	selection     *selection.Model
	selectionKeys *keymap.Resolver
	playerKeys    *keymap.Resolver
	spinner       spinner.Model

	mode         Mode
	paths        []string
	exitWhenDone bool

	sched    *scheduler.Scheduler
	store    *sample.Store
	frame    scheduler.Frame
	listener *trackListener
	scale    waveform.Scale
	pending  []string // key presses waiting for the next frame
	frameID  int
	loadID   int

	screen   *screenSize
	size     scheduler.SizeFunc
	interval time.Duration
	now      func() time.Time

	status string // last user-facing error
	err    error  // fatal error, set before quitting
}

// New creates the application model.
func New(o Options) (Model, error) {
	if o.Device == nil {
		return Model{}, errors.New("app: nil device")
	}
	cfg := o.Config
	if cfg == nil {
		cfg = config.Default()
	}
	reg := o.Registry
	if reg == nil {
		reg = decode.DefaultRegistry()
	}
	opts := o.Playback
	if opts == nil {
		opts = playback.NewOptions(cfg.GetVolume(), cfg.GetSpeed())
	}

	theme := styles.New(cfg.Color, cfg.HighlightColor)
	queue := playlist.NewQueue()
	screen := &screenSize{}
	size := o.Size
	if size == nil {
		size = screen.get
	}

	m := Model{
		cfg:           cfg,
		device:        o.Device,
		registry:      reg,
		opts:          opts,
		queue:         queue,
		theme:         theme,
		selection:     selection.New(queue, cfg.AudioDirectory, theme),
		selectionKeys: keymap.ForContexts(keymap.ContextGlobal, keymap.ContextSelection),
		playerKeys:    keymap.ForContexts(keymap.ContextGlobal, keymap.ContextPlayer, keymap.ContextQueue),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.S().Primary),
		),
		paths:        o.Paths,
		exitWhenDone: o.Play && len(o.Paths) > 0,
		scale:        waveform.DefaultScale,
		screen:       screen,
		size:         size,
		interval:     o.Interval,
		now:          o.Now,
	}
	if m.exitWhenDone {
		m.mode = ModeLoading
	}
	return m, nil
}

// Init starts the spinner and the initial file listings.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if !m.exitWhenDone {
		cmds = append(cmds, ListDirCmd(m.cfg.AudioDirectory, m.registry))
	}
	if len(m.paths) > 0 {
		cmds = append(cmds, LoadPathsCmd(m.paths, m.registry))
	}
	return tea.Batch(cmds...)
}

// Mode returns the screen being shown.
func (m Model) Mode() Mode { return m.mode }

// Queue returns the play queue.
func (m Model) Queue() *playlist.Queue { return m.queue }

// Frame returns the last computed frame.
func (m Model) Frame() scheduler.Frame { return m.frame }

// Status returns the last user-facing error message.
func (m Model) Status() string { return m.status }

// Err returns the error that ended the program, if any.
func (m Model) Err() error { return m.err }

var errNoSize = errors.New("window size unknown")

type screenSize struct {
	width, height int
}

func (s *screenSize) get() (int, int, error) {
	if s.width <= 0 || s.height <= 0 {
		return 0, 0, errNoSize
	}
	return s.width, s.height, nil
}

// trackListener stops the device when a track ends and moves the queue on
// when it played to the end.
type trackListener struct {
	device    player.Interface
	queue     *playlist.Queue
	completed bool
}

func (l *trackListener) Stop() { l.device.Stop() }

func (l *trackListener) TrackComplete() {
	l.completed = true
	l.queue.Advance()
}
