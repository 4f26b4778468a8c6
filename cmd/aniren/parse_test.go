package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/aniren/pkg/fansub"
)

func TestReadNameFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "names.txt")

	content := `[字幕组] 鬼灭之刃 26 [1080p].mkv
# this line is a comment
[DBD-RAWS]妖精的尾巴_S001[1080].mkv

  [Sub] Show S2 - 05 [720p].mkv
`
	err := os.WriteFile(testFile, []byte(content), 0644)
	require.NoError(t, err, "failed to write test file")

	names, err := readNameFile(testFile)
	require.NoError(t, err)

	want := []string{
		"[字幕组] 鬼灭之刃 26 [1080p].mkv",
		"[DBD-RAWS]妖精的尾巴_S001[1080].mkv",
		"[Sub] Show S2 - 05 [720p].mkv",
	}

	require.Len(t, names, len(want))
	for i, got := range names {
		assert.Equal(t, want[i], got, "names[%d]", i)
	}
}

func TestReadNameFile_NotFound(t *testing.T) {
	_, err := readNameFile("/nonexistent/file.txt")
	assert.Error(t, err, "expected error for nonexistent file")
}

func TestReadNameFile_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "empty.txt")

	err := os.WriteFile(testFile, []byte(""), 0644)
	require.NoError(t, err, "failed to write test file")

	names, err := readNameFile(testFile)
	require.NoError(t, err)

	assert.Empty(t, names)
}

func TestToParseResult(t *testing.T) {
	season := 3
	parsed := &fansub.ParsedFile{
		Title:   "One-Punch Man",
		Episode: 4,
		Season:  &season,
		Type:    fansub.ContentNormal,
		Tags:    []string{"LoliHouse", "WebRip 1080p HEVC-10bit AAC"},
		Ext:     "mkv",
	}

	result := toParseResult("input.mkv", parsed, nil)

	assert.Equal(t, "input.mkv", result.Input)
	assert.Equal(t, "One-Punch Man", result.Title)
	assert.Equal(t, 4, result.Episode)
	assert.Equal(t, 3, result.Season)
	assert.Equal(t, "normal", result.Type)
	assert.Equal(t, []string{"LoliHouse", "WebRip 1080p HEVC-10bit AAC"}, result.Tags)
	assert.Equal(t, "mkv", result.Ext)
	assert.False(t, result.AlreadyFormatted)
	assert.Empty(t, result.Error)
}

func TestToParseResult_NoSeason(t *testing.T) {
	parsed := &fansub.ParsedFile{
		Title:   "鬼灭之刃",
		Episode: 28,
		Type:    fansub.ContentNormal,
		Ext:     "mkv",
	}

	result := toParseResult("x.mkv", parsed, nil)

	assert.Equal(t, 0, result.Season, "nil season maps to zero")
}

func TestToParseResult_Error(t *testing.T) {
	parseErr := errors.New(`parse "bad.mkv": no episode number found`)

	result := toParseResult("bad.mkv", nil, parseErr)

	assert.Equal(t, "bad.mkv", result.Input)
	assert.Equal(t, parseErr.Error(), result.Error)
	assert.Empty(t, result.Title)
}

func TestToParseResult_Special(t *testing.T) {
	parsed := &fansub.ParsedFile{
		Title:   "Haruhi",
		Episode: 1,
		Type:    fansub.ContentOVA,
		Ext:     "mkv",
	}

	result := toParseResult("x.mkv", parsed, nil)

	assert.Equal(t, "ova", result.Type)
}

func TestParseResultJSON_Marshal(t *testing.T) {
	result := parseResultJSON{
		Input:   "[字幕组] 鬼灭之刃 28 [1080p].mkv",
		Title:   "鬼灭之刃",
		Episode: 28,
		Type:    "normal",
		Tags:    []string{"字幕组", "1080p"},
		Ext:     "mkv",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	jsonStr := string(data)
	assert.Contains(t, jsonStr, `"title":"鬼灭之刃"`)
	assert.Contains(t, jsonStr, `"episode":28`)
	assert.NotContains(t, jsonStr, `"season"`, "zero season should be omitted")
	assert.NotContains(t, jsonStr, `"error"`, "empty error should be omitted")
}

func TestValueOrEmpty(t *testing.T) {
	assert.Equal(t, "(none)", valueOrEmpty(""))
	assert.Equal(t, "test", valueOrEmpty("test"))
}

func TestBoolToYesNo(t *testing.T) {
	assert.Equal(t, "yes", boolToYesNo(true))
	assert.Equal(t, "no", boolToYesNo(false))
}
