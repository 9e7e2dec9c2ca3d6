// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"

	// Player actions
	ActionPlayPause  Action = "play_pause"
	ActionToggleMute Action = "toggle_mute"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"
	ActionSpeedUp    Action = "speed_up"
	ActionSpeedDown  Action = "speed_down"

	// Queue actions while playing
	ActionNextTrack Action = "next_track"
	ActionPrevTrack Action = "prev_track"
	ActionStop      Action = "stop"

	// Selection screen actions
	ActionMoveUp      Action = "move_up"
	ActionMoveDown    Action = "move_down"
	ActionJumpStart   Action = "jump_start"
	ActionJumpEnd     Action = "jump_end"
	ActionSwitchFocus Action = "switch_focus"
	ActionSelect      Action = "select"  // enter - play
	ActionAdd         Action = "add"     // a - add to queue
	ActionDelete      Action = "delete"  // d - remove from queue
	ActionClear       Action = "clear"   // c - clear queue
	ActionRefresh     Action = "refresh" // r - reread the directory
)
