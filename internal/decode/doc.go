// Package decode turns audio files into fully decoded PCM frames.
//
// Decoders are registered per file extension in a Registry. Every decoder
// reads the whole stream into memory and returns stereo frames normalized to
// [-1, 1]; mono sources are duplicated on both channels and extra channels
// beyond the second are dropped.
//
// Supported formats with the default registry:
//   - MP3 (.mp3) via github.com/llehouerou/go-mp3
//   - FLAC (.flac) via github.com/gopxl/beep/v2/flac
//   - WAV (.wav) via github.com/go-audio/wav
//   - AIFF (.aif, .aiff) via github.com/go-audio/aiff
//   - Ogg Vorbis (.ogg, .oga) via github.com/jfreymuth/oggvorbis
package decode
