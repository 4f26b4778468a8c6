package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"show.mkv", true},
		{"show.mp4", true},
		{"show.rmvb", true},
		{"SHOW.MKV", true},
		{"show.srt", false},
		{"show.txt", false},
		{"show", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsVideoFile(tt.path), "IsVideoFile(%q)", tt.path)
	}
}

func TestScan_Flat(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mkv"))
	touch(t, filepath.Join(dir, "a.mp4"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "nested", "c.mkv"))

	files, err := New(false).Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.mp4"),
		filepath.Join(dir, "b.mkv"),
	}, files, "flat scan must not descend into subdirectories")
}

func TestScan_Recursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mkv"))
	touch(t, filepath.Join(dir, "nested", "c.mkv"))
	touch(t, filepath.Join(dir, "nested", "deeper", "d.avi"))

	files, err := New(true).Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "b.mkv"),
		filepath.Join(dir, "nested", "c.mkv"),
		filepath.Join(dir, "nested", "deeper", "d.avi"),
	}, files)
}

func TestScan_SkipsSamples(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "show - 01.mkv"))
	touch(t, filepath.Join(dir, "show - Sample.mkv"))

	files, err := New(false).Scan(dir)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "show - 01.mkv"), files[0])
}

func TestScan_SingleFile(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "show - 01.mkv")
	touch(t, video)

	files, err := New(false).Scan(video)
	require.NoError(t, err)
	assert.Equal(t, []string{video}, files)

	other := filepath.Join(dir, "notes.txt")
	touch(t, other)

	files, err = New(false).Scan(other)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := New(false).Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
