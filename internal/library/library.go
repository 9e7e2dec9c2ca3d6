// Package library lists the playable files of the audio directory.
package library

import (
	"cmp"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/vocal/internal/decode"
)

// Entry is one playable file.
type Entry struct {
	Name   string // file name
	Path   string
	Size   int64
	Title  string // from tags, may be empty
	Artist string // from tags, may be empty
}

// DisplayName returns "Artist - Title", the title alone, or the file name.
func (e Entry) DisplayName() string {
	switch {
	case e.Title != "" && e.Artist != "":
		return e.Artist + " - " + e.Title
	case e.Title != "":
		return e.Title
	default:
		return e.Name
	}
}

// SizeString returns the file size in human-readable form.
func (e Entry) SizeString() string {
	if e.Size < 0 {
		return ""
	}
	return humanize.IBytes(uint64(e.Size)) //nolint:gosec // checked non-negative above
}

// List returns the files of dir that reg can decode, sorted by name.
// Hidden files and subdirectories are skipped.
func List(dir string, reg *decode.Registry) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		if !reg.Supports(path) {
			continue
		}
		entries = append(entries, newEntry(path, e))
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return entries, nil
}

// FromPaths builds entries for explicit paths, keeping their order.
// Paths that do not exist or are not supported are reported in the joined
// error and left out.
func FromPaths(paths []string, reg *decode.Registry) ([]Entry, error) {
	entries := make([]Entry, 0, len(paths))
	var errs []error
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if info.IsDir() || !reg.Supports(path) {
			errs = append(errs, &os.PathError{Op: "open", Path: path, Err: decode.ErrUnsupportedFormat})
			continue
		}
		entries = append(entries, newEntry(path, nil))
	}
	return entries, errors.Join(errs...)
}

type sizer interface {
	Info() (os.FileInfo, error)
}

func newEntry(path string, de sizer) Entry {
	entry := Entry{Name: filepath.Base(path), Path: path, Size: -1}

	var info os.FileInfo
	var err error
	if de != nil {
		info, err = de.Info()
	} else {
		info, err = os.Stat(path)
	}
	if err == nil {
		entry.Size = info.Size()
	}

	if title, artist, err := ReadTags(path); err == nil {
		entry.Title, entry.Artist = title, artist
	}
	return entry
}

// ReadTags reads the title and artist of a file.
func ReadTags(path string) (title, artist string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(m.Title()), strings.TrimSpace(m.Artist()), nil
}
