package keymap

// Binding contexts.
const (
	ContextGlobal    = "global"
	ContextPlayer    = "player"
	ContextQueue     = "queue"
	ContextSelection = "selection"
)

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "quit", ContextGlobal},

	// Player
	{ActionPlayPause, []string{" "}, "pause", ContextPlayer},
	{ActionToggleMute, []string{"m"}, "mute", ContextPlayer},
	{ActionVolumeUp, []string{"+", "="}, "vol +", ContextPlayer},
	{ActionVolumeDown, []string{"-"}, "vol -", ContextPlayer},
	{ActionSpeedUp, []string{"]", "right"}, "speed +", ContextPlayer},
	{ActionSpeedDown, []string{"[", "left"}, "speed -", ContextPlayer},

	// Queue while playing
	{ActionNextTrack, []string{"n", "pgdown"}, "next", ContextQueue},
	{ActionPrevTrack, []string{"p", "pgup"}, "prev", ContextQueue},
	{ActionStop, []string{"q", "esc"}, "stop", ContextQueue},

	// Selection screen
	{ActionMoveUp, []string{"k", "up"}, "up", ContextSelection},
	{ActionMoveDown, []string{"j", "down"}, "down", ContextSelection},
	{ActionJumpStart, []string{"g", "home"}, "top", ContextSelection},
	{ActionJumpEnd, []string{"G", "end"}, "bottom", ContextSelection},
	{ActionSwitchFocus, []string{"tab"}, "focus", ContextSelection},
	{ActionAdd, []string{"a"}, "add", ContextSelection},
	{ActionDelete, []string{"d", "delete"}, "remove", ContextSelection},
	{ActionClear, []string{"c"}, "clear", ContextSelection},
	{ActionRefresh, []string{"r"}, "refresh", ContextSelection},
	{ActionSelect, []string{"enter"}, "play", ContextSelection},
	{ActionQuit, []string{"q"}, "quit", ContextSelection},
}

// ByContext returns key bindings filtered by context.
func ByContext(contexts ...string) []Binding {
	var result []Binding
	for _, kb := range All {
		for _, c := range contexts {
			if kb.Context == c {
				result = append(result, kb)
				break
			}
		}
	}
	return result
}
