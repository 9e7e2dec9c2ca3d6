// Package playback holds the runtime options shared by every track of a
// session: volume, speed, mute and pause.
//
// A single *Options is created at startup and passed explicitly to whatever
// reads or changes it; there is no package-level state.
package playback

// Limits and key-press steps.
const (
	MinVolume  = 0
	MaxVolume  = 100
	VolumeStep = 5

	MinSpeed  = 5
	MaxSpeed  = 400
	SpeedStep = 5
)

// Options is the mutable runtime context of a player session.
// It is owned by the UI goroutine and not safe for concurrent use.
type Options struct {
	volume int // percent
	speed  int // percent of normal speed
	muted  bool
	paused bool
}

// NewOptions returns options with volume and speed clamped to their limits.
func NewOptions(volume, speed int) *Options {
	o := &Options{}
	o.SetVolume(volume)
	o.SetSpeed(speed)
	return o
}

// Volume returns the volume in percent.
func (o *Options) Volume() int { return o.volume }

// VolumeRatio returns the volume as a 0.0–1.0 level.
func (o *Options) VolumeRatio() float64 { return float64(o.volume) / 100 }

// SetVolume sets the volume in percent, clamped to [MinVolume, MaxVolume].
func (o *Options) SetVolume(v int) {
	o.volume = min(max(v, MinVolume), MaxVolume)
}

// AdjustVolume changes the volume by delta percent and returns the result.
func (o *Options) AdjustVolume(delta int) int {
	o.SetVolume(o.volume + delta)
	return o.volume
}

// Speed returns the speed in percent of normal speed.
func (o *Options) Speed() int { return o.speed }

// SpeedRatio returns the speed multiplier (1.0 is normal speed).
func (o *Options) SpeedRatio() float64 { return float64(o.speed) / 100 }

// SetSpeed sets the speed in percent, clamped to [MinSpeed, MaxSpeed].
func (o *Options) SetSpeed(s int) {
	o.speed = min(max(s, MinSpeed), MaxSpeed)
}

// AdjustSpeed changes the speed by delta percent and returns the result.
func (o *Options) AdjustSpeed(delta int) int {
	o.SetSpeed(o.speed + delta)
	return o.speed
}

// Muted reports whether output is muted.
func (o *Options) Muted() bool { return o.muted }

// ToggleMute flips the mute flag and returns the new value.
func (o *Options) ToggleMute() bool {
	o.muted = !o.muted
	return o.muted
}

// Paused reports whether playback is paused.
func (o *Options) Paused() bool { return o.paused }

// SetPaused sets the pause flag.
func (o *Options) SetPaused(p bool) { o.paused = p }

// TogglePause flips the pause flag and returns the new value.
func (o *Options) TogglePause() bool {
	o.paused = !o.paused
	return o.paused
}
