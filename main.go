package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/llehouerou/vocal/internal/app"
	"github.com/llehouerou/vocal/internal/config"
	"github.com/llehouerou/vocal/internal/decode"
	"github.com/llehouerou/vocal/internal/errmsg"
	"github.com/llehouerou/vocal/internal/playback"
	"github.com/llehouerou/vocal/internal/player"
	"github.com/llehouerou/vocal/internal/stderr"
)

// pathList collects a repeatable path flag.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(fmt.Sprintf("vocal: %v\n", err))
		os.Exit(1)
	}
}

func run() error {
	var play, load pathList
	var debugFile string
	flag.Var(&play, "play", "play `file` and exit when done (repeatable)")
	flag.Var(&load, "load", "list `file` on the selection screen instead of the audio directory (repeatable)")
	flag.StringVar(&debugFile, "debug", "", "write a debug log to `file`")
	flag.Parse()
	play = append(play, flag.Args()...)

	if _, _, err := config.EnsureDefault(); err != nil {
		// Not fatal: the defaults still apply.
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigWrite, err))
	}
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	if debugFile == "" {
		debugFile = cfg.DebugLog
	}
	if debugFile != "" {
		f, err := tea.LogToFile(debugFile, "vocal")
		if err != nil {
			return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	fd := int(os.Stdout.Fd()) //nolint:gosec // fd fits in int
	if !term.IsTerminal(fd) {
		return errors.New(errmsg.Format(errmsg.OpTerminalCheck, errors.New("stdout is not a terminal")))
	}
	if _, _, err := term.GetSize(fd); err != nil {
		return errors.New(errmsg.Format(errmsg.OpTerminalCheck, err))
	}

	// Capture C library noise (ALSA) before the device is opened.
	if err := stderr.Start(func(line string) { log.Print(line) }); err != nil {
		log.Printf("stderr capture: %v", err)
	}
	defer stderr.Stop()

	opts := playback.NewOptions(cfg.GetVolume(), cfg.GetSpeed())
	dev, err := player.Open(player.Options{
		Volume: opts.VolumeRatio(),
		Speed:  opts.SpeedRatio(),
	})
	if err != nil {
		log.Print(errmsg.Format(errmsg.OpDeviceOpen, err))
		return err
	}
	defer dev.Close()

	paths := []string(load)
	if len(play) > 0 {
		paths = play
	}
	m, err := app.New(app.Options{
		Config:   cfg,
		Device:   dev,
		Registry: decode.DefaultRegistry(),
		Playback: opts,
		Paths:    paths,
		Play:     len(play) > 0,
		Size: func() (int, int, error) {
			return term.GetSize(fd)
		},
	})
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(app.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
