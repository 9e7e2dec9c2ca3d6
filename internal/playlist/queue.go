// Package playlist holds the play queue.
package playlist

import "path/filepath"

// Track is one queued file.
type Track struct {
	Path  string
	Title string // display name; the file name when empty
}

// Name returns the title, or the file name when there is none.
func (t Track) Name() string {
	if t.Title != "" {
		return t.Title
	}
	return filepath.Base(t.Path)
}

// Queue is the ordered list of tracks to play, with the flags the frame
// scheduler polls to stop the current track early.
type Queue struct {
	tracks       []Track
	currentIndex int // -1 if nothing playing
	interrupted  bool
	trackChanged bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{currentIndex: -1}
}

// Add appends tracks without changing playback.
func (q *Queue) Add(tracks ...Track) {
	q.tracks = append(q.tracks, tracks...)
}

// RemoveAt removes the track at index. The current index keeps pointing at
// the same track when possible.
func (q *Queue) RemoveAt(index int) bool {
	if index < 0 || index >= len(q.tracks) {
		return false
	}
	q.tracks = append(q.tracks[:index], q.tracks[index+1:]...)
	switch {
	case q.currentIndex > index:
		q.currentIndex--
	case q.currentIndex >= len(q.tracks):
		q.currentIndex = len(q.tracks) - 1
	}
	return true
}

// RemoveLast removes the most recently added track.
func (q *Queue) RemoveLast() bool {
	return q.RemoveAt(len(q.tracks) - 1)
}

// Clear removes all tracks and resets playback.
func (q *Queue) Clear() {
	q.tracks = nil
	q.currentIndex = -1
	q.ResetSignals()
}

// Tracks returns a copy of the queued tracks.
func (q *Queue) Tracks() []Track {
	out := make([]Track, len(q.tracks))
	copy(out, q.tracks)
	return out
}

// Len returns the number of queued tracks.
func (q *Queue) Len() int { return len(q.tracks) }

// IsEmpty reports whether the queue has no tracks.
func (q *Queue) IsEmpty() bool { return len(q.tracks) == 0 }

// CurrentIndex returns the index of the playing track, -1 if none.
func (q *Queue) CurrentIndex() int { return q.currentIndex }

// Current returns the playing track, or nil.
func (q *Queue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= len(q.tracks) {
		return nil
	}
	return &q.tracks[q.currentIndex]
}

// HasNext reports whether a track follows the current one.
func (q *Queue) HasNext() bool {
	return q.currentIndex < len(q.tracks)-1
}

// Start makes index the current track and clears the stop flags.
// It returns nil for an invalid index.
func (q *Queue) Start(index int) *Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	q.currentIndex = index
	q.ResetSignals()
	return q.Current()
}

// Advance moves to the next track after the current one finished.
// It returns nil, and leaves the queue idle, at the end.
func (q *Queue) Advance() *Track {
	if !q.HasNext() {
		q.currentIndex = -1
		return nil
	}
	return q.Start(q.currentIndex + 1)
}

// SkipNext asks the playing track to stop in favor of the next one.
// It returns false when there is no next track.
func (q *Queue) SkipNext() bool {
	if q.Current() == nil || !q.HasNext() {
		return false
	}
	q.currentIndex++
	q.trackChanged = true
	return true
}

// SkipPrevious asks the playing track to stop in favor of the previous one.
// On the first track it restarts that track.
func (q *Queue) SkipPrevious() bool {
	if q.Current() == nil {
		return false
	}
	if q.currentIndex > 0 {
		q.currentIndex--
	}
	q.trackChanged = true
	return true
}

// Interrupt asks the playing track to stop without advancing.
func (q *Queue) Interrupt() {
	q.interrupted = true
}

// Interrupted reports whether a stop was requested.
func (q *Queue) Interrupted() bool { return q.interrupted }

// TrackChanged reports whether a skip was requested.
func (q *Queue) TrackChanged() bool { return q.trackChanged }

// ResetSignals clears the interrupted and track-changed flags.
func (q *Queue) ResetSignals() {
	q.interrupted = false
	q.trackChanged = false
}
