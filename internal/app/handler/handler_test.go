package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vocal/internal/keymap"
)

func TestNotHandled(t *testing.T) {
	if NotHandled.Handled {
		t.Error("NotHandled.Handled should be false")
	}
	if NotHandled.Cmd != nil {
		t.Error("NotHandled.Cmd should be nil")
	}
}

func TestHandled(t *testing.T) {
	cmd := func() tea.Msg { return "test" }
	result := Handled(cmd)
	if !result.Handled {
		t.Error("Handled(cmd).Handled should be true")
	}
	if result.Cmd == nil {
		t.Error("Handled(cmd).Cmd should not be nil")
	}
}

func TestChain_EmptyAction(t *testing.T) {
	called := false
	h := func(keymap.Action) Result {
		called = true
		return HandledNoCmd
	}

	handled, _ := Chain("", h)
	if handled {
		t.Error("empty action should not be handled")
	}
	if called {
		t.Error("handlers should not run for an empty action")
	}
}

func TestChain_PassesAction(t *testing.T) {
	var got keymap.Action
	h := func(a keymap.Action) Result {
		got = a
		return HandledNoCmd
	}

	Chain(keymap.ActionVolumeUp, h)
	if got != keymap.ActionVolumeUp {
		t.Errorf("handler got %q, want %q", got, keymap.ActionVolumeUp)
	}
}

func TestChain_StopsAtFirstHandled(t *testing.T) {
	tests := []struct {
		name      string
		results   []Result
		wantCalls int
		wantOK    bool
		wantCmd   bool
	}{
		{"none", nil, 0, false, false},
		{"first handles", []Result{HandledNoCmd, HandledNoCmd}, 1, true, false},
		{"second handles", []Result{NotHandled, Handled(tea.Quit), HandledNoCmd}, 2, true, true},
		{"nobody handles", []Result{NotHandled, NotHandled, NotHandled}, 3, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			handlers := make([]Handler, len(tt.results))
			for i, r := range tt.results {
				handlers[i] = func(keymap.Action) Result {
					calls++
					return r
				}
			}

			ok, cmd := Chain(keymap.ActionStop, handlers...)
			if ok != tt.wantOK {
				t.Errorf("handled = %v, want %v", ok, tt.wantOK)
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd present = %v, want %v", cmd != nil, tt.wantCmd)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}
