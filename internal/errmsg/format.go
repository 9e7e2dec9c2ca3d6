// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Track operations
	OpTrackLoad Op = "load track"
	OpTrackPlay Op = "play track"
	OpTagsRead  Op = "read tags"

	// Library operations
	OpDirectoryRead Op = "read audio directory"

	// Rendering
	OpFrameRender Op = "render frame"
	OpChartRender Op = "render waveform"

	// Initialization
	OpDeviceOpen    Op = "open audio device"
	OpConfigLoad    Op = "load config"
	OpConfigWrite   Op = "write default config"
	OpLogOpen       Op = "open log file"
	OpTerminalCheck Op = "query terminal"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
