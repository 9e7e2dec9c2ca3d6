package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/vocal/internal/decode"
)

func touch(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.wav", 2048)
	touch(t, dir, "A.mp3", 10)
	touch(t, dir, ".hidden.flac", 10)
	touch(t, dir, "notes.txt", 10)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.wav"), 0o755))

	entries, err := List(dir, decode.DefaultRegistry())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "A.mp3", entries[0].Name)
	assert.Equal(t, "b.wav", entries[1].Name)
	assert.Equal(t, filepath.Join(dir, "b.wav"), entries[1].Path)
	assert.Equal(t, int64(2048), entries[1].Size)
	assert.Equal(t, "2.0 KiB", entries[1].SizeString())
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), decode.DefaultRegistry())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestList_Empty(t *testing.T) {
	entries, err := List(t.TempDir(), decode.DefaultRegistry())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFromPaths(t *testing.T) {
	dir := t.TempDir()
	second := touch(t, dir, "z.ogg", 1)
	first := touch(t, dir, "a.aiff", 1)
	text := touch(t, dir, "readme.txt", 1)
	missing := filepath.Join(dir, "missing.mp3")

	entries, err := FromPaths([]string{second, text, missing, first}, decode.DefaultRegistry())
	require.Error(t, err)
	assert.ErrorIs(t, err, decode.ErrUnsupportedFormat)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.Len(t, entries, 2)
	assert.Equal(t, "z.ogg", entries[0].Name, "order is kept")
	assert.Equal(t, "a.aiff", entries[1].Name)
}

func TestEntry_DisplayName(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Name: "a.mp3"}, "a.mp3"},
		{Entry{Name: "a.mp3", Title: "Song"}, "Song"},
		{Entry{Name: "a.mp3", Title: "Song", Artist: "Band"}, "Band - Song"},
		{Entry{Name: "a.mp3", Artist: "Band"}, "a.mp3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.entry.DisplayName())
	}
}

func TestEntry_SizeString(t *testing.T) {
	assert.Empty(t, Entry{Size: -1}.SizeString())
	assert.Equal(t, "0 B", Entry{Size: 0}.SizeString())
	assert.Equal(t, "1.5 MiB", Entry{Size: 1536 * 1024}.SizeString())
}

func TestReadTags_Untagged(t *testing.T) {
	path := touch(t, t.TempDir(), "blank.mp3", 64)
	_, _, err := ReadTags(path)
	require.Error(t, err)
}
