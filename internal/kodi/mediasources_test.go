package kodi

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaSourcesFile_Add_AssignsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	f := NewMediaSourcesFile(path)

	id, added, err := f.Add(mustSource(t, "Serien", "http://127.0.0.1:13531/", "tvshows"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "0", id)

	id, added, err = f.Add(mustSource(t, "Filme", "http://127.0.0.1:8080/", "movies"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "1", id)

	got := readFile(t, path)
	assert.Contains(t, got, `<mediasources><network><location id="0">http://127.0.0.1:13531/</location><location id="1">http://127.0.0.1:8080/</location></network></mediasources>`)
}

func TestMediaSourcesFile_Add_Duplicate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	f := NewMediaSourcesFile(path)
	src := mustSource(t, "Serien", "http://127.0.0.1:13531/", "tvshows")

	_, _, err := f.Add(src)
	require.NoError(t, err)

	id, added, err := f.Add(src)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, "0", id)

	assert.Equal(t, 1, strings.Count(readFile(t, path), "<location"))
}

func TestMediaSourcesFile_Add_ContinuesFromHighestID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	writeFile(t, path, `<mediasources>
  <network>
    <location id="3">smb://nas/a/</location>
    <location id="7">smb://nas/b/</location>
    <location>smb://nas/c/</location>
  </network>
</mediasources>`)
	f := NewMediaSourcesFile(path)

	id, added, err := f.Add(mustSource(t, "x", "http://127.0.0.1:1/", "movies"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "8", id)

	locations, err := f.Locations()
	require.NoError(t, err)
	assert.Equal(t, []Location{
		{ID: "3", Path: "smb://nas/a/"},
		{ID: "7", Path: "smb://nas/b/"},
		{ID: "", Path: "smb://nas/c/"},
		{ID: "8", Path: "http://127.0.0.1:1/"},
	}, locations)
}

func TestMediaSourcesFile_Add_IndentsLikeSiblings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	writeFile(t, path, "<mediasources>\n  <network>\n    <location id=\"0\">smb://nas/a/</location>\n  </network>\n</mediasources>\n")
	f := NewMediaSourcesFile(path)

	_, _, err := f.Add(mustSource(t, "x", "http://127.0.0.1:1/", "movies"))
	require.NoError(t, err)
	assert.Contains(t, readFile(t, path), "</location>\n    <location id=\"1\">http://127.0.0.1:1/</location>\n  </network>")
}

func TestMediaSourcesFile_Add_PathTextMustMatchExactly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	writeFile(t, path, `<mediasources><network><location id="0">http://127.0.0.1:1/
</location></network></mediasources>`)
	f := NewMediaSourcesFile(path)

	id, added, err := f.Add(mustSource(t, "x", "http://127.0.0.1:1/", "movies"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "1", id)
}

func TestMediaSourcesFile_Add_MissingNetworkSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	writeFile(t, path, `<mediasources></mediasources>`)
	f := NewMediaSourcesFile(path)

	id, added, err := f.Add(mustSource(t, "x", "http://127.0.0.1:1/", "movies"))
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, "0", id)
}

func TestMediaSourcesFile_Add_NonNumericID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	content := `<mediasources><network><location id="abc">smb://nas/a/</location></network></mediasources>`
	writeFile(t, path, content)
	f := NewMediaSourcesFile(path)

	_, _, err := f.Add(mustSource(t, "x", "http://127.0.0.1:1/", "movies"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, content, readFile(t, path))
}

func TestMediaSourcesFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	writeFile(t, path, `<mediasources><network>`)
	f := NewMediaSourcesFile(path)

	_, _, err := f.Add(mustSource(t, "x", "http://127.0.0.1:1/", "movies"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "mediasources", se.Store)
	assert.Equal(t, path, se.Path)
}

func TestMediaSourcesFile_TrailingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mediasources.xml")
	content := `<mediasources><network></network></mediasources><network></network>`
	writeFile(t, path, content)
	f := NewMediaSourcesFile(path)

	_, _, err := f.Add(mustSource(t, "x", "http://127.0.0.1:1/", "movies"))
	require.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, content, readFile(t, path))
}

func TestMediaSourcesFile_Locations_MissingDocument(t *testing.T) {
	f := NewMediaSourcesFile(filepath.Join(t.TempDir(), "mediasources.xml"))

	locations, err := f.Locations()
	require.NoError(t, err)
	assert.Empty(t, locations)
	assert.NoFileExists(t, f.Path())
}
