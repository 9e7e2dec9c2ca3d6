package player

// State represents the device playback state.
//
//	Stopped ──Play──▶ Playing ◀──SetPaused(false)──▶ Paused
//	   ▲                 │                              │
//	   └──────Stop───────┴─────────────Stop─────────────┘
//
// Play on an active device stops the current clip first.
// SetPaused on a stopped device only records the flag; the next clip starts
// paused.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a clip is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
